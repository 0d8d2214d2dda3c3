// file: internals/helpers/pagination_test.go
package helper

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalizeListParams_Defaults(t *testing.T) {
	p := NormalizeListParams("", "", "", "", "")

	assert.Equal(t, "", p.Search)
	assert.Equal(t, "created_at", p.SortBy)
	assert.Equal(t, "desc", p.SortOrder)
	assert.Equal(t, DefaultPage, p.Page)
	assert.Equal(t, DefaultPerPage, p.PerPage)
}

func TestNormalizeListParams_SortAllowList(t *testing.T) {
	cases := []struct {
		name   string
		sortBy string
		want   string
	}{
		{"kolom valid", "title", "title"},
		{"kolom valid lain", "publish_at", "publish_at"},
		{"di luar allow-list", "password", "created_at"},
		{"injeksi lewat sort_by", "title; DROP TABLE announcements", "created_at"},
		{"case sensitif", "Title", "created_at"},
		{"kosong", "", "created_at"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			p := NormalizeListParams("", tc.sortBy, "", "", "")
			assert.Equal(t, tc.want, p.SortBy)
		})
	}
}

func TestNormalizeListParams_SortOrder(t *testing.T) {
	assert.Equal(t, "asc", NormalizeListParams("", "", "asc", "", "").SortOrder)
	assert.Equal(t, "asc", NormalizeListParams("", "", "ASC", "", "").SortOrder)
	assert.Equal(t, "desc", NormalizeListParams("", "", "descending", "", "").SortOrder)
	assert.Equal(t, "desc", NormalizeListParams("", "", "random", "", "").SortOrder)
}

func TestNormalizeListParams_PerPageClamp(t *testing.T) {
	cases := []struct {
		raw  string
		want int
	}{
		{"", 15},
		{"abc", 15},
		{"0", 1},
		{"-5", 1},
		{"1", 1},
		{"50", 50},
		{"100", 100},
		{"101", 100},
		{"99999", 100},
	}
	for _, tc := range cases {
		p := NormalizeListParams("", "", "", "", tc.raw)
		assert.Equal(t, tc.want, p.PerPage, "per_page=%q", tc.raw)
	}
}

func TestNormalizeListParams_Page(t *testing.T) {
	assert.Equal(t, 1, NormalizeListParams("", "", "", "", "").Page)
	assert.Equal(t, 1, NormalizeListParams("", "", "", "0", "").Page)
	assert.Equal(t, 1, NormalizeListParams("", "", "", "-3", "").Page)
	assert.Equal(t, 1, NormalizeListParams("", "", "", "x", "").Page)
	assert.Equal(t, 7, NormalizeListParams("", "", "", "7", "").Page)
}

func TestNormalizeListParams_SearchTrimmed(t *testing.T) {
	p := NormalizeListParams("  libur  ", "", "", "", "")
	assert.Equal(t, "libur", p.Search)
}

func TestListParams_Offset(t *testing.T) {
	p := NormalizeListParams("", "", "", "3", "20")
	assert.Equal(t, 20, p.Limit())
	assert.Equal(t, 40, p.Offset())
}

func TestListParams_OrderClause(t *testing.T) {
	p := NormalizeListParams("", "title", "asc", "", "")
	assert.Equal(t, "title ASC", p.OrderClause())

	p = NormalizeListParams("", "nope", "nope", "", "")
	assert.Equal(t, "created_at DESC", p.OrderClause())
}
