package mapper

import (
	"edu-turkish-backend/internal/locale"
)

// URLResolver turns stored media paths into public URLs.
type URLResolver interface {
	PublicURL(path string) string
}

// Mapper assembles public DTOs from loaded aggregates. It holds no per-request state.
type Mapper struct {
	urls     URLResolver
	observer locale.FallbackObserver
}

func New(urls URLResolver, observer locale.FallbackObserver) *Mapper {
	return &Mapper{urls: urls, observer: observer}
}

func (m *Mapper) url(path string) string {
	if m == nil || m.urls == nil || path == "" {
		return path
	}
	return m.urls.PublicURL(path)
}

func (m *Mapper) obs() locale.FallbackObserver {
	if m == nil {
		return nil
	}
	return m.observer
}

func pick[T locale.Localized](m *Mapper, rows []T, loc locale.Resolved, entity string) (T, bool) {
	return locale.SelectObserved(rows, loc, entity, m.obs())
}

// text returns a locale-specific static string, defaulting to the base language.
func text(table map[string]string, loc locale.Resolved) string {
	for _, code := range loc.Fallbacks {
		if v, ok := table[code]; ok {
			return v
		}
	}
	return table[locale.Default]
}
