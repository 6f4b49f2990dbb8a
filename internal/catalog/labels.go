package catalog

import (
	"strings"

	"edu-turkish-backend/internal/locale"
	"edu-turkish-backend/internal/models"
)

// LabelTables maps human filter labels to canonical enum values per locale.
// Built once by NewLabelTables and never mutated afterwards.
type LabelTables struct {
	types  map[string]map[string]string
	levels map[string]map[string]string
}

var typeLabels = map[string]map[string]models.UniversityType{
	locale.Russian: {
		"Государственный": models.UniversityTypeState,
		"Частный":         models.UniversityTypePrivate,
		"Технический":     models.UniversityTypeTech,
		"Элитный":         models.UniversityTypeElite,
	},
	locale.English: {
		"State":     models.UniversityTypeState,
		"Public":    models.UniversityTypeState,
		"Private":   models.UniversityTypePrivate,
		"Technical": models.UniversityTypeTech,
		"Elite":     models.UniversityTypeElite,
	},
	locale.Kazakh: {
		"Мемлекеттік": models.UniversityTypeState,
		"Жеке":        models.UniversityTypePrivate,
		"Техникалық":  models.UniversityTypeTech,
		"Элиталық":    models.UniversityTypeElite,
	},
	locale.Turkish: {
		"Devlet": models.UniversityTypeState,
		"Özel":   models.UniversityTypePrivate,
		"Vakıf":  models.UniversityTypePrivate,
		"Teknik": models.UniversityTypeTech,
		"Seçkin": models.UniversityTypeElite,
	},
}

var levelLabels = map[string]map[string]models.DegreeType{
	locale.Russian: {
		"Бакалавриат":  models.DegreeBachelor,
		"Магистратура": models.DegreeMaster,
		"Докторантура": models.DegreePhD,
		"Аспирантура":  models.DegreePhD,
	},
	locale.English: {
		"Bachelor":   models.DegreeBachelor,
		"Bachelor's": models.DegreeBachelor,
		"Master":     models.DegreeMaster,
		"Master's":   models.DegreeMaster,
		"Doctorate":  models.DegreePhD,
		"doctorate":  models.DegreePhD,
		"PhD":        models.DegreePhD,
	},
	locale.Kazakh: {
		"Бакалавриат":  models.DegreeBachelor,
		"Магистратура": models.DegreeMaster,
		"Докторантура": models.DegreePhD,
	},
	locale.Turkish: {
		"Lisans":        models.DegreeBachelor,
		"Yüksek Lisans": models.DegreeMaster,
		"Doktora":       models.DegreePhD,
	},
}

// NewLabelTables builds the immutable lookup tables.
func NewLabelTables() *LabelTables {
	t := &LabelTables{
		types:  make(map[string]map[string]string, len(typeLabels)),
		levels: make(map[string]map[string]string, len(levelLabels)),
	}
	for loc, labels := range typeLabels {
		m := make(map[string]string, len(labels))
		for label, v := range labels {
			m[label] = string(v)
		}
		t.types[loc] = m
	}
	for loc, labels := range levelLabels {
		m := make(map[string]string, len(labels))
		for label, v := range labels {
			m[label] = string(v)
		}
		t.levels[loc] = m
	}
	return t
}

// UniversityType maps a type label to its enum value. Unknown labels are returned unchanged.
func (t *LabelTables) UniversityType(label string, loc locale.Resolved) string {
	if v, ok := lookup(t.types, label, loc); ok {
		return v
	}
	switch models.UniversityType(strings.ToLower(label)) {
	case models.UniversityTypeState, models.UniversityTypePrivate, models.UniversityTypeTech, models.UniversityTypeElite:
		return strings.ToLower(label)
	}
	return label
}

// DegreeType maps a level label to its degree enum. Unknown labels are returned unchanged.
func (t *LabelTables) DegreeType(label string, loc locale.Resolved) string {
	if v, ok := lookup(t.levels, label, loc); ok {
		return v
	}
	switch models.DegreeType(strings.ToLower(label)) {
	case models.DegreeBachelor, models.DegreeMaster, models.DegreePhD:
		return strings.ToLower(label)
	}
	return label
}

// lookup tries the request's fallback chain first, then the other locales in
// a fixed order, so a label from another language still resolves.
func lookup(tables map[string]map[string]string, label string, loc locale.Resolved) (string, bool) {
	order := append(append([]string{}, loc.Fallbacks...), loc.Others()...)
	for _, code := range order {
		if v, ok := tables[code][label]; ok {
			return v, true
		}
	}
	return "", false
}
