// file: internals/helpers/json_response_test.go
package helper

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildPagination_Basic(t *testing.T) {
	p := BuildPagination(45, 2, 15, 15)

	assert.Equal(t, 2, p.CurrentPage)
	assert.Equal(t, 15, p.PerPage)
	assert.Equal(t, int64(45), p.Total)
	assert.Equal(t, 3, p.LastPage)
	require.NotNil(t, p.From)
	require.NotNil(t, p.To)
	assert.Equal(t, 16, *p.From)
	assert.Equal(t, 30, *p.To)
}

func TestBuildPagination_LastPageCeil(t *testing.T) {
	assert.Equal(t, 4, BuildPagination(46, 1, 15, 15).LastPage)
	assert.Equal(t, 1, BuildPagination(15, 1, 15, 15).LastPage)
	assert.Equal(t, 1, BuildPagination(1, 1, 15, 1).LastPage)
}

// Hasil kosong: last_page minimal 1, from/to null.
func TestBuildPagination_Empty(t *testing.T) {
	p := BuildPagination(0, 1, 15, 0)

	assert.Equal(t, 1, p.LastPage)
	assert.Nil(t, p.From)
	assert.Nil(t, p.To)
}

// Halaman di luar jangkauan tetap menghasilkan meta konsisten (data kosong).
func TestBuildPagination_PageBeyondLast(t *testing.T) {
	p := BuildPagination(10, 5, 15, 0)

	assert.Equal(t, 5, p.CurrentPage)
	assert.Equal(t, 1, p.LastPage)
	assert.Nil(t, p.From)
	assert.Nil(t, p.To)
}

func TestBuildPagination_PartialLastPage(t *testing.T) {
	p := BuildPagination(17, 2, 15, 2)

	require.NotNil(t, p.From)
	require.NotNil(t, p.To)
	assert.Equal(t, 16, *p.From)
	assert.Equal(t, 17, *p.To)
}

// Kontrak wire lama: key JSON harus persis, from/to literal null saat kosong.
func TestPagination_JSONKeys(t *testing.T) {
	raw, err := json.Marshal(BuildPagination(0, 1, 15, 0))
	require.NoError(t, err)

	assert.JSONEq(t, `{
		"current_page": 1,
		"per_page": 15,
		"total": 0,
		"last_page": 1,
		"from": null,
		"to": null
	}`, string(raw))
}
