package locale

// Localized is implemented by every translation row.
type Localized interface {
	GetLocale() string
}

// Sluggable is a translation row that also carries a URL slug.
type Sluggable interface {
	Localized
	GetSlug() string
}

// FallbackObserver is told whenever a row outside the fallback chain had to be used.
type FallbackObserver interface {
	TranslationFallback(entity, requested, used string)
}

// Select walks the fallback chain and returns the first row whose locale
// matches. When nothing in the chain matches, the first row is returned.
// The boolean is false only when rows is empty.
func Select[T Localized](rows []T, loc Resolved) (T, bool) {
	row, ok, _ := pick(rows, loc)
	return row, ok
}

// SelectObserved is Select that reports last-resort picks to obs.
func SelectObserved[T Localized](rows []T, loc Resolved, entity string, obs FallbackObserver) (T, bool) {
	row, ok, inChain := pick(rows, loc)
	if ok && !inChain && obs != nil {
		obs.TranslationFallback(entity, loc.Normalized, row.GetLocale())
	}
	return row, ok
}

func pick[T Localized](rows []T, loc Resolved) (T, bool, bool) {
	var zero T
	if len(rows) == 0 {
		return zero, false, false
	}
	for _, code := range loc.Fallbacks {
		for _, row := range rows {
			if row.GetLocale() == code {
				return row, true, true
			}
		}
	}
	return rows[0], true, false
}

// SelectSlug returns the slug from the first in-chain row that has one,
// otherwise the first row with any slug.
func SelectSlug[T Sluggable](rows []T, loc Resolved) (string, bool) {
	for _, code := range loc.Fallbacks {
		for _, row := range rows {
			if row.GetLocale() == code && row.GetSlug() != "" {
				return row.GetSlug(), true
			}
		}
	}
	for _, row := range rows {
		if row.GetSlug() != "" {
			return row.GetSlug(), true
		}
	}
	return "", false
}
