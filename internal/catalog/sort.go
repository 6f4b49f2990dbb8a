package catalog

import (
	"sort"
	"strings"

	"edu-turkish-backend/internal/dto"
	"edu-turkish-backend/internal/locale"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"
	"gorm.io/gorm"
)

type SortKey string

const (
	SortPopular   SortKey = "pop"
	SortPriceAsc  SortKey = "price_asc"
	SortPriceDesc SortKey = "price_desc"
	SortAlpha     SortKey = "alpha"
	SortEnglish   SortKey = "lang_en"
)

// ParseSort maps a raw sort parameter to a key. Unknown values mean SortPopular.
func ParseSort(raw string) SortKey {
	switch k := SortKey(strings.ToLower(strings.TrimSpace(raw))); k {
	case SortPriceAsc, SortPriceDesc, SortAlpha, SortEnglish:
		return k
	}
	return SortPopular
}

// OrderScope is the database half of sorting. Keys that need resolved
// translations fall back to insertion order and are finished by PostSort.
func OrderScope(key SortKey) func(*gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		// Universities without a price sort after priced ones in both
		// directions. Postgres would put NULLs first for a bare DESC.
		switch key {
		case SortPriceAsc:
			db = db.Order("universities.tuition_min ASC NULLS LAST")
		case SortPriceDesc:
			db = db.Order("universities.tuition_max DESC NULLS LAST")
		}
		return db.Order("universities.id ASC")
	}
}

// NeedsPostSort reports whether the key is only partially expressible in SQL.
func (k SortKey) NeedsPostSort() bool {
	return k == SortAlpha || k == SortEnglish
}

// PostSort reorders mapped rows in place for alpha and lang_en. Other keys
// leave the slice untouched. The result is always a permutation of the input.
func PostSort(rows []dto.University, key SortKey, loc locale.Resolved) {
	if !key.NeedsPostSort() || len(rows) < 2 {
		return
	}

	col := collate.New(language.Make(loc.Normalized))
	byTitle := func(a, b dto.University) bool {
		return col.CompareString(a.Title, b.Title) < 0
	}

	switch key {
	case SortAlpha:
		sort.SliceStable(rows, func(i, j int) bool {
			return byTitle(rows[i], rows[j])
		})
	case SortEnglish:
		sort.SliceStable(rows, func(i, j int) bool {
			ei, ej := OffersEnglish(rows[i]), OffersEnglish(rows[j])
			if ei != ej {
				return ei
			}
			return byTitle(rows[i], rows[j])
		})
	}
}

// OffersEnglish reports whether any program is taught in English.
func OffersEnglish(u dto.University) bool {
	for _, code := range u.Languages {
		if strings.EqualFold(code, "en") {
			return true
		}
	}
	return false
}

// CompareTitles compares two display strings with the locale's collation.
func CompareTitles(loc locale.Resolved, a, b string) int {
	return collate.New(language.Make(loc.Normalized)).CompareString(a, b)
}
