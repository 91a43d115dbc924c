// Package query translates list parameters (pagination, sort, search,
// range filters) into GORM scopes and computes result metadata.
package query

import (
	"strings"

	"gorm.io/gorm"
)

const (
	DefaultPage  = 1
	DefaultLimit = 10
	MaxLimit     = 100
)

// Params are the resource-independent list parameters.
type Params struct {
	Page   int
	Limit  int
	Sort   string
	Search string
}

// Normalized clamps out-of-range pagination values rather than
// rejecting them: page < 1 becomes 1, limit outside [1, MaxLimit]
// falls back to the default.
func (p Params) Normalized() Params {
	if p.Page < 1 {
		p.Page = DefaultPage
	}
	if p.Limit < 1 || p.Limit > MaxLimit {
		p.Limit = DefaultLimit
	}
	return p
}

func (p Params) Offset() int {
	return (p.Page - 1) * p.Limit
}

// Meta describes one page of a filtered result set. Total counts all
// filtered rows before pagination; Pages is ceil(total/limit).
type Meta struct {
	Page  int   `json:"page"`
	Limit int   `json:"limit"`
	Total int64 `json:"total"`
	Pages int64 `json:"pages"`
}

func PageMeta(p Params, total int64) Meta {
	return Meta{
		Page:  p.Page,
		Limit: p.Limit,
		Total: total,
		Pages: (total + int64(p.Limit) - 1) / int64(p.Limit),
	}
}

// Paginate applies the offset/limit window.
func Paginate(p Params) func(*gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		return db.Offset(p.Offset()).Limit(p.Limit)
	}
}

// Search matches the term as a case-insensitive substring in any of
// the given columns (OR across columns). Empty terms are a no-op.
func Search(term string, columns ...string) func(*gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		if term == "" || len(columns) == 0 {
			return db
		}
		pattern := "%" + strings.ToLower(term) + "%"
		cond := db.Session(&gorm.Session{NewDB: true}).
			Where("LOWER("+columns[0]+") LIKE ?", pattern)
		for _, col := range columns[1:] {
			cond = cond.Or("LOWER("+col+") LIKE ?", pattern)
		}
		return db.Where(cond)
	}
}

// Contains is a single-column case-insensitive substring filter.
func Contains(column, term string) func(*gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		if term == "" {
			return db
		}
		return db.Where("LOWER("+column+") LIKE ?", "%"+strings.ToLower(term)+"%")
	}
}

// Range filters a numeric column with optional inclusive bounds.
// Each bound applies independently; both combine with AND.
func Range(column string, min, max *float64) func(*gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		if min != nil {
			db = db.Where(column+" >= ?", *min)
		}
		if max != nil {
			db = db.Where(column+" <= ?", *max)
		}
		return db
	}
}

// Order builds an ORDER BY clause from an API sort expression: a field
// name with an optional leading '-' for descending. Fields not in the
// allow-list fall back to the default. Ties are unordered; no secondary
// sort key is applied.
func Order(sort, fallback string, allowed map[string]string) string {
	if sort == "" {
		sort = fallback
	}
	desc := strings.HasPrefix(sort, "-")
	field := strings.TrimPrefix(sort, "-")

	column, ok := allowed[field]
	if !ok {
		desc = strings.HasPrefix(fallback, "-")
		column = allowed[strings.TrimPrefix(fallback, "-")]
	}
	if desc {
		return column + " DESC"
	}
	return column + " ASC"
}
