package locale

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

type row struct {
	Locale string
	Slug   string
	Title  string
}

func (r row) GetLocale() string { return r.Locale }
func (r row) GetSlug() string   { return r.Slug }

type recorder struct {
	events []string
}

func (r *recorder) TranslationFallback(entity, requested, used string) {
	r.events = append(r.events, entity+":"+requested+"->"+used)
}

func TestSelect(t *testing.T) {
	rows := []row{
		{Locale: "tr", Title: "Türkçe"},
		{Locale: "ru", Title: "Русский"},
		{Locale: "en", Title: "English"},
	}

	t.Run("exact match", func(t *testing.T) {
		got, ok := Select(rows, Resolve("en"))
		assert.True(t, ok)
		assert.Equal(t, "English", got.Title)
	})

	t.Run("falls back along the chain", func(t *testing.T) {
		got, ok := Select(rows, Resolve("kz"))
		assert.True(t, ok)
		assert.Equal(t, "Русский", got.Title)
	})

	t.Run("last resort is the first row", func(t *testing.T) {
		got, ok := Select(rows[:1], Resolve("en"))
		assert.True(t, ok)
		assert.Equal(t, "Türkçe", got.Title)
	})

	t.Run("empty input", func(t *testing.T) {
		got, ok := Select([]row{}, Resolve("en"))
		assert.False(t, ok)
		assert.Equal(t, row{}, got)
	})

	t.Run("empty locale never matches", func(t *testing.T) {
		got, ok := Select([]row{{Title: "none"}, {Locale: "ru", Title: "ru"}}, Resolve("ru"))
		assert.True(t, ok)
		assert.Equal(t, "ru", got.Title)
	})
}

func TestSelectReturnsMember(t *testing.T) {
	rows := []row{{Locale: "tr", Title: "a"}, {Locale: "kk", Title: "b"}}
	for _, raw := range []string{"ru", "en", "kk", "tr", "zz"} {
		got, ok := Select(rows, Resolve(raw))
		assert.True(t, ok)
		assert.Contains(t, rows, got)
	}
}

func TestSelectObserved(t *testing.T) {
	rec := &recorder{}
	rows := []row{{Locale: "tr", Title: "x"}}

	SelectObserved(rows, Resolve("en"), "university", rec)
	SelectObserved([]row{{Locale: "en"}}, Resolve("en"), "university", rec)
	SelectObserved([]row{}, Resolve("en"), "university", rec)

	assert.Equal(t, []string{"university:en->tr"}, rec.events)
}

func TestSelectSlug(t *testing.T) {
	t.Run("skips in-chain rows without slug", func(t *testing.T) {
		rows := []row{
			{Locale: "en", Slug: ""},
			{Locale: "ru", Slug: "ru-slug"},
		}
		slug, ok := SelectSlug(rows, Resolve("en"))
		assert.True(t, ok)
		assert.Equal(t, "ru-slug", slug)
	})

	t.Run("falls to any slug", func(t *testing.T) {
		rows := []row{{Locale: "kk"}, {Locale: "tr", Slug: "tr-slug"}}
		slug, ok := SelectSlug(rows, Resolve("en"))
		assert.True(t, ok)
		assert.Equal(t, "tr-slug", slug)
	})

	t.Run("no slugs", func(t *testing.T) {
		slug, ok := SelectSlug([]row{{Locale: "en"}}, Resolve("en"))
		assert.False(t, ok)
		assert.Empty(t, slug)
	})
}
