package catalog

import (
	"math"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// PriceRange is a requested tuition interval. Either bound may be absent.
type PriceRange struct {
	Min *float64
	Max *float64
}

// NewPriceRange drops unusable bounds and swaps inverted ones.
func NewPriceRange(lo, hi *float64) PriceRange {
	r := PriceRange{Min: validBound(lo), Max: validBound(hi)}
	if r.Min != nil && r.Max != nil && *r.Min > *r.Max {
		r.Min, r.Max = r.Max, r.Min
	}
	return r
}

func validBound(v *float64) *float64 {
	if v == nil || math.IsNaN(*v) || math.IsInf(*v, 0) || *v < 0 {
		return nil
	}
	out := *v
	return &out
}

func (r PriceRange) IsEmpty() bool {
	return r.Min == nil && r.Max == nil
}

// Expressions returns the overlap clauses. A university passes the max side
// when its own lower bound is at most the requested max (or unknown), and the
// min side when its own upper bound is at least the requested min (or unknown).
func (r PriceRange) Expressions() []clause.Expression {
	var exprs []clause.Expression
	if r.Max != nil {
		exprs = append(exprs, clause.Expr{
			SQL:  "(universities.tuition_min <= ? OR universities.tuition_min IS NULL)",
			Vars: []interface{}{*r.Max},
		})
	}
	if r.Min != nil {
		exprs = append(exprs, clause.Expr{
			SQL:  "(universities.tuition_max >= ? OR universities.tuition_max IS NULL)",
			Vars: []interface{}{*r.Min},
		})
	}
	return exprs
}

// Scope applies the overlap predicate to a universities query.
func (r PriceRange) Scope() func(*gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		for _, expr := range r.Expressions() {
			db = db.Where(expr)
		}
		return db
	}
}

// Matches evaluates the same predicate in memory.
func (r PriceRange) Matches(tuitionMin, tuitionMax *float64) bool {
	if r.Max != nil && tuitionMin != nil && *tuitionMin > *r.Max {
		return false
	}
	if r.Min != nil && tuitionMax != nil && *tuitionMax < *r.Min {
		return false
	}
	return true
}
