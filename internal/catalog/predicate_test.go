package catalog

import (
	"testing"

	"edu-turkish-backend/internal/locale"
	"edu-turkish-backend/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func dryRunDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(postgres.New(postgres.Config{
		DSN: "host=localhost user=test password=test dbname=test port=5432 sslmode=disable",
	}), &gorm.Config{DryRun: true, DisableAutomaticPing: true})
	require.NoError(t, err)
	return db
}

func buildSQL(t *testing.T, scopes ...func(*gorm.DB) *gorm.DB) (string, []interface{}) {
	t.Helper()
	var rows []models.University
	stmt := dryRunDB(t).Model(&models.University{}).Scopes(scopes...).Find(&rows).Statement
	return stmt.SQL.String(), stmt.Vars
}

func TestBuildPredicateEmpty(t *testing.T) {
	labels := NewLabelTables()
	loc := locale.Resolve("en")

	p := BuildPredicate(Filter{}, loc, labels)
	assert.Equal(t, 0, p.Len())

	p = BuildPredicate(Filter{City: "All cities", Type: "Все", Level: "all", Q: "  ", Langs: []string{"", "All"}}, loc, labels)
	assert.Equal(t, 0, p.Len())
}

func TestBuildPredicateClauses(t *testing.T) {
	labels := NewLabelTables()
	loc := locale.Resolve("en")

	p := BuildPredicate(Filter{
		Q:        "tech",
		City:     "Istanbul",
		Type:     "Государственный",
		Level:    "Doctorate",
		Langs:    []string{"EN", "tr", "en"},
		PriceMin: f(3000),
		PriceMax: f(8000),
	}, loc, labels)
	require.Equal(t, 7, p.Len())

	sql, vars := buildSQL(t, p.Scope())

	assert.Contains(t, sql, "ut.title ILIKE")
	assert.Contains(t, sql, "ct.name ILIKE")
	assert.Contains(t, sql, "ct.name = ")
	assert.Contains(t, sql, "universities.type = ")
	assert.Contains(t, sql, "ap.degree_type = ")
	assert.Contains(t, sql, "LOWER(ap.language_code) IN (")
	assert.Contains(t, sql, "universities.tuition_min <= ")
	assert.Contains(t, sql, "universities.tuition_max >= ")

	assert.Contains(t, vars, "%tech%")
	assert.Contains(t, vars, "Istanbul")
	assert.Contains(t, vars, "state")
	assert.Contains(t, vars, "phd")
	assert.Contains(t, vars, "en")
	assert.Contains(t, vars, "tr")
	assert.Contains(t, vars, 3000.0)
	assert.Contains(t, vars, 8000.0)
}

func TestBuildPredicateEscapesSearch(t *testing.T) {
	p := BuildPredicate(Filter{Q: "100%_sure"}, locale.Resolve("ru"), NewLabelTables())
	_, vars := buildSQL(t, p.Scope())
	assert.Contains(t, vars, `%100\%\_sure%`)
}

func TestBuildPredicateUnknownLabelsPassThrough(t *testing.T) {
	p := BuildPredicate(Filter{Type: "Community", Level: "Associate"}, locale.Resolve("en"), NewLabelTables())
	_, vars := buildSQL(t, p.Scope())
	assert.Contains(t, vars, "Community")
	assert.Contains(t, vars, "Associate")
}

func TestBuildPredicateOnlyPriceMax(t *testing.T) {
	p := BuildPredicate(Filter{PriceMax: f(5000), PriceMin: f(-10)}, locale.Resolve("ru"), NewLabelTables())
	require.Equal(t, 1, p.Len())

	sql, _ := buildSQL(t, p.Scope())
	assert.Contains(t, sql, "universities.tuition_min IS NULL")
	assert.NotContains(t, sql, "universities.tuition_max >= ")
}

func TestOrderScope(t *testing.T) {
	sql, _ := buildSQL(t, OrderScope(SortPriceAsc))
	assert.Contains(t, sql, "ORDER BY universities.tuition_min ASC NULLS LAST,universities.id ASC")

	sql, _ = buildSQL(t, OrderScope(SortPriceDesc))
	assert.Contains(t, sql, "ORDER BY universities.tuition_max DESC NULLS LAST,universities.id ASC")

	for _, key := range []SortKey{SortPopular, SortAlpha, SortEnglish} {
		sql, _ = buildSQL(t, OrderScope(key))
		assert.Contains(t, sql, "ORDER BY universities.id ASC")
		assert.NotContains(t, sql, "tuition")
	}
}
