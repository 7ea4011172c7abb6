package resource

import (
	"strconv"

	"github.com/gin-gonic/gin"
)

// Batas halaman disatukan di sini; dulu tiap route punya default sendiri
// (200 sampai 2000) — sekarang satu default dan satu max.
const (
	DefaultLimit = 500
	MaxLimit     = 2000
)

// Descriptor mendeskripsikan satu entity untuk Store generik:
// tabel, kolom tanggal natural untuk sort/range, dan filter equality
// yang boleh dipakai caller (query param → kolom).
type Descriptor struct {
	DateColumn   string            // kolom sort default (DESC) dan range from/to
	Filters      map[string]string // query param → kolom equality
	DefaultLimit int               // 0 → DefaultLimit
}

// ListQuery adalah hasil parsing query string yang sudah tervalidasi.
type ListQuery struct {
	Equals map[string]string // kolom → nilai
	From   string            // YYYY-MM-DD, kosong = terbuka
	To     string
	Limit  int
	Offset int
}

// ParseListQuery membaca filter, range tanggal, dan pagination dari request
// sesuai Descriptor. Nilai limit di-clamp ke MaxLimit.
func ParseListQuery(c *gin.Context, d Descriptor) ListQuery {
	q := ListQuery{Equals: make(map[string]string)}

	for param, column := range d.Filters {
		if v := c.Query(param); v != "" {
			q.Equals[column] = v
		}
	}

	if d.DateColumn != "" {
		q.From = c.Query("from")
		q.To = c.Query("to")
	}

	limit := d.DefaultLimit
	if limit <= 0 {
		limit = DefaultLimit
	}
	if raw := c.Query("limit"); raw != "" {
		if n, err := strconv.Atoi(raw); err == nil && n > 0 {
			limit = n
		}
	}
	if limit > MaxLimit {
		limit = MaxLimit
	}
	q.Limit = limit

	if raw := c.Query("page"); raw != "" {
		if page, err := strconv.Atoi(raw); err == nil && page > 1 {
			q.Offset = (page - 1) * limit
		}
	}

	return q
}
