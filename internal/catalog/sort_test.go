package catalog

import (
	"testing"

	"edu-turkish-backend/internal/dto"
	"edu-turkish-backend/internal/locale"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func titles(rows []dto.University) []string {
	out := make([]string, len(rows))
	for i, r := range rows {
		out[i] = r.Title
	}
	return out
}

func ids(rows []dto.University) []uint {
	out := make([]uint, len(rows))
	for i, r := range rows {
		out[i] = r.ID
	}
	return out
}

func TestParseSort(t *testing.T) {
	assert.Equal(t, SortPriceAsc, ParseSort("price_asc"))
	assert.Equal(t, SortPriceDesc, ParseSort(" PRICE_DESC "))
	assert.Equal(t, SortAlpha, ParseSort("alpha"))
	assert.Equal(t, SortEnglish, ParseSort("lang_en"))
	assert.Equal(t, SortPopular, ParseSort("pop"))
	assert.Equal(t, SortPopular, ParseSort(""))
	assert.Equal(t, SortPopular, ParseSort("rating"))
}

func TestOrderScopePutsUnpricedLast(t *testing.T) {
	tests := []struct {
		key  SortKey
		want string
	}{
		{SortPriceAsc, "ORDER BY universities.tuition_min ASC NULLS LAST,universities.id ASC"},
		{SortPriceDesc, "ORDER BY universities.tuition_max DESC NULLS LAST,universities.id ASC"},
		{SortPopular, "ORDER BY universities.id ASC"},
		{SortAlpha, "ORDER BY universities.id ASC"},
	}

	for _, tt := range tests {
		t.Run(string(tt.key), func(t *testing.T) {
			sql, _ := buildSQL(t, OrderScope(tt.key))
			assert.Contains(t, sql, tt.want)
		})
	}
}

func TestPostSortAlpha(t *testing.T) {
	rows := []dto.University{
		{ID: 1, Title: "Zeta Institute"},
		{ID: 2, Title: "Alpha University"},
	}
	PostSort(rows, SortAlpha, locale.Resolve("en"))
	assert.Equal(t, []string{"Alpha University", "Zeta Institute"}, titles(rows))
}

func TestPostSortAlphaUsesCollation(t *testing.T) {
	rows := []dto.University{
		{ID: 1, Title: "banana"},
		{ID: 2, Title: "Cherry"},
		{ID: 3, Title: "apple"},
	}
	PostSort(rows, SortAlpha, locale.Resolve("en"))
	assert.Equal(t, []string{"apple", "banana", "Cherry"}, titles(rows))

	for i := 1; i < len(rows); i++ {
		assert.LessOrEqual(t, CompareTitles(locale.Resolve("en"), rows[i-1].Title, rows[i].Title), 0)
	}
}

func TestPostSortEnglishFirst(t *testing.T) {
	rows := []dto.University{
		{ID: 1, Title: "Turkish Academy", Languages: []string{"TR"}},
		{ID: 2, Title: "International College", Languages: []string{"EN"}},
	}
	PostSort(rows, SortEnglish, locale.Resolve("en"))
	assert.Equal(t, []string{"International College", "Turkish Academy"}, titles(rows))
}

func TestPostSortEnglishPartition(t *testing.T) {
	rows := []dto.University{
		{ID: 1, Title: "Delta", Languages: []string{"tr"}},
		{ID: 2, Title: "Charlie", Languages: []string{"tr", "en"}},
		{ID: 3, Title: "Bravo"},
		{ID: 4, Title: "Alpha", Languages: []string{"En"}},
		{ID: 5, Title: "Echo", Languages: []string{"ru"}},
	}
	PostSort(rows, SortEnglish, locale.Resolve("en"))

	assert.Equal(t, []uint{4, 2, 3, 1, 5}, ids(rows))

	seenNonEnglish := false
	for _, r := range rows {
		if !OffersEnglish(r) {
			seenNonEnglish = true
			continue
		}
		assert.False(t, seenNonEnglish, "english row %d after a non-english row", r.ID)
	}
}

func TestPostSortIsPermutation(t *testing.T) {
	input := []dto.University{
		{ID: 10, Title: "b", Languages: []string{"en"}},
		{ID: 11, Title: "a"},
		{ID: 12, Title: "b"},
		{ID: 13, Title: "c", Languages: []string{"tr"}},
		{ID: 14, Title: ""},
	}

	for _, key := range []SortKey{SortPopular, SortPriceAsc, SortPriceDesc, SortAlpha, SortEnglish} {
		rows := append([]dto.University(nil), input...)
		PostSort(rows, key, locale.Resolve("ru"))
		require.Len(t, rows, len(input))
		assert.ElementsMatch(t, ids(input), ids(rows), key)
	}
}

func TestPostSortLeavesDatabaseOrder(t *testing.T) {
	rows := []dto.University{{ID: 3, Title: "c"}, {ID: 1, Title: "a"}}
	PostSort(rows, SortPriceAsc, locale.Resolve("en"))
	assert.Equal(t, []uint{3, 1}, ids(rows))
}
