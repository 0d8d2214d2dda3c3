// file: internals/helpers/pagination.go
package helper

import (
	"strconv"
	"strings"

	"github.com/gofiber/fiber/v2"
)

const (
	DefaultPage    = 1
	DefaultPerPage = 15
	MaxPerPage     = 100
)

// ListParams = parameter listing yang SUDAH dinormalisasi.
// Semua input liar dari query string dipetakan ke nilai aman di sini;
// tidak ada kombinasi input yang menghasilkan error.
type ListParams struct {
	Search    string
	SortBy    string // dijamin anggota allow-list
	SortOrder string // dijamin "asc" | "desc"
	Page      int    // >= 1
	PerPage   int    // 1..100
}

// Allow-list kolom sort. Ini kontrol keamanan (mencegah injeksi lewat
// ORDER BY dinamis), bukan sekadar default — jangan longgarkan tanpa
// memetakan nama ke kolom secara eksplisit.
var allowedSortFields = map[string]struct{}{
	"id":         {},
	"title":      {},
	"created_at": {},
	"updated_at": {},
	"publish_at": {},
	"is_active":  {},
}

// ParseListParams membaca search/sort_by/sort_order/page/per_page dari query
// dan menormalisasi dengan kebijakan permisif:
//   - sort_by di luar allow-list → created_at
//   - sort_order selain asc/desc (case-insensitive) → desc
//   - per_page di-clamp ke [1,100]; kosong/non-angka → 15
//   - page < 1 atau non-angka → 1
func ParseListParams(c *fiber.Ctx) ListParams {
	return NormalizeListParams(
		c.Query("search"),
		c.Query("sort_by"),
		c.Query("sort_order"),
		c.Query("page"),
		c.Query("per_page"),
	)
}

// NormalizeListParams = inti murni dari ParseListParams, dipisah agar mudah diuji.
func NormalizeListParams(search, sortBy, sortOrder, pageRaw, perPageRaw string) ListParams {
	p := ListParams{
		Search:    strings.TrimSpace(search),
		SortBy:    "created_at",
		SortOrder: "desc",
		Page:      DefaultPage,
		PerPage:   DefaultPerPage,
	}

	if sb := strings.TrimSpace(sortBy); sb != "" {
		if _, ok := allowedSortFields[sb]; ok {
			p.SortBy = sb
		}
	}

	if so := strings.ToLower(strings.TrimSpace(sortOrder)); so == "asc" || so == "desc" {
		p.SortOrder = so
	}

	if n, err := strconv.Atoi(strings.TrimSpace(pageRaw)); err == nil && n >= 1 {
		p.Page = n
	}

	if raw := strings.TrimSpace(perPageRaw); raw != "" {
		if n, err := strconv.Atoi(raw); err == nil {
			switch {
			case n < 1:
				p.PerPage = 1
			case n > MaxPerPage:
				p.PerPage = MaxPerPage
			default:
				p.PerPage = n
			}
		}
	}

	return p
}

func (p ListParams) Limit() int  { return p.PerPage }
func (p ListParams) Offset() int { return (p.Page - 1) * p.PerPage }

// OrderClause merakit ORDER BY dari nilai yang sudah tervalidasi.
// Tidak ada secondary key: baris dengan nilai sort sama mengikuti urutan
// natural Postgres (limitasi yang diterima, bukan bug).
func (p ListParams) OrderClause() string {
	dir := "DESC"
	if p.SortOrder == "asc" {
		dir = "ASC"
	}
	return p.SortBy + " " + dir
}
