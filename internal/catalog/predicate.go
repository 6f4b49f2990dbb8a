package catalog

import (
	"strings"

	"edu-turkish-backend/internal/locale"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// Filter carries the already-coerced list parameters of the universities endpoint.
type Filter struct {
	Q        string
	City     string
	Type     string
	Level    string
	Langs    []string
	PriceMin *float64
	PriceMax *float64
	Sort     string
	Page     int
	Limit    int
}

// Values that mean "no filter" in the UI selects.
var sentinels = map[string]struct{}{
	"все":            {},
	"all":            {},
	"все города":     {},
	"all cities":     {},
	"барлығы":        {},
	"барлық қалалар": {},
	"tümü":           {},
	"tüm şehirler":   {},
}

func isAbsent(v string) bool {
	v = strings.TrimSpace(v)
	if v == "" {
		return true
	}
	_, ok := sentinels[strings.ToLower(v)]
	return ok
}

// Predicate is a conjunction of independent where clauses on universities.
type Predicate struct {
	exprs []clause.Expression
}

func (p Predicate) Len() int {
	return len(p.exprs)
}

func (p Predicate) Expressions() []clause.Expression {
	return p.exprs
}

// Scope applies every clause with AND.
func (p Predicate) Scope() func(*gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		for _, expr := range p.exprs {
			db = db.Where(expr)
		}
		return db
	}
}

// BuildPredicate composes the where clause for a universities listing.
// Absent or "all" parameters add nothing.
func BuildPredicate(f Filter, loc locale.Resolved, labels *LabelTables) Predicate {
	var p Predicate

	if !isAbsent(f.Q) {
		pattern := ContainsPattern(f.Q)
		p.exprs = append(p.exprs, clause.Expr{
			SQL: "(EXISTS (SELECT 1 FROM university_translations ut WHERE ut.university_id = universities.id AND ut.locale IN ? AND (ut.title ILIKE ? OR ut.description ILIKE ?))" +
				" OR EXISTS (SELECT 1 FROM city_translations ct WHERE ct.city_id = universities.city_id AND ct.locale IN ? AND ct.name ILIKE ?))",
			Vars: []interface{}{loc.Fallbacks, pattern, pattern, loc.Fallbacks, pattern},
		})
	}

	if !isAbsent(f.City) {
		p.exprs = append(p.exprs, clause.Expr{
			SQL:  "EXISTS (SELECT 1 FROM city_translations ct WHERE ct.city_id = universities.city_id AND ct.locale IN ? AND ct.name = ?)",
			Vars: []interface{}{loc.Fallbacks, strings.TrimSpace(f.City)},
		})
	}

	if !isAbsent(f.Type) {
		p.exprs = append(p.exprs, clause.Expr{
			SQL:  "universities.type = ?",
			Vars: []interface{}{labels.UniversityType(strings.TrimSpace(f.Type), loc)},
		})
	}

	if !isAbsent(f.Level) {
		p.exprs = append(p.exprs, clause.Expr{
			SQL:  "EXISTS (SELECT 1 FROM academic_programs ap WHERE ap.university_id = universities.id AND ap.degree_type = ?)",
			Vars: []interface{}{labels.DegreeType(strings.TrimSpace(f.Level), loc)},
		})
	}

	if langs := normalizeLangs(f.Langs); len(langs) > 0 {
		p.exprs = append(p.exprs, clause.Expr{
			SQL:  "EXISTS (SELECT 1 FROM academic_programs ap WHERE ap.university_id = universities.id AND LOWER(ap.language_code) IN ?)",
			Vars: []interface{}{langs},
		})
	}

	p.exprs = append(p.exprs, NewPriceRange(f.PriceMin, f.PriceMax).Expressions()...)

	return p
}

func normalizeLangs(langs []string) []string {
	seen := make(map[string]struct{}, len(langs))
	out := make([]string, 0, len(langs))
	for _, l := range langs {
		l = strings.ToLower(strings.TrimSpace(l))
		if isAbsent(l) {
			continue
		}
		if _, ok := seen[l]; ok {
			continue
		}
		seen[l] = struct{}{}
		out = append(out, l)
	}
	return out
}

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

func escapeLike(s string) string {
	return likeEscaper.Replace(s)
}

// ContainsPattern builds an ILIKE pattern matching s anywhere, with wildcards in s escaped.
func ContainsPattern(s string) string {
	return "%" + escapeLike(strings.TrimSpace(s)) + "%"
}

// IsAbsent reports whether a filter value means "no filter".
func IsAbsent(v string) bool {
	return isAbsent(v)
}
