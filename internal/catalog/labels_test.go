package catalog

import (
	"testing"

	"edu-turkish-backend/internal/locale"

	"github.com/stretchr/testify/assert"
)

func TestLabelTablesUniversityType(t *testing.T) {
	labels := NewLabelTables()

	tests := []struct {
		label  string
		locale string
		want   string
	}{
		{"Государственный", "ru", "state"},
		{"Государственный", "en", "state"},
		{"State", "ru", "state"},
		{"Technical", "en", "tech"},
		{"Vakıf", "tr", "private"},
		{"Мемлекеттік", "kz", "state"},
		{"elite", "en", "elite"},
		{"PRIVATE", "en", "private"},
		{"Unknown", "en", "Unknown"},
	}

	for _, tt := range tests {
		t.Run(tt.label+"/"+tt.locale, func(t *testing.T) {
			assert.Equal(t, tt.want, labels.UniversityType(tt.label, locale.Resolve(tt.locale)))
		})
	}
}

func TestLabelTablesDegreeType(t *testing.T) {
	labels := NewLabelTables()

	tests := []struct {
		label  string
		locale string
		want   string
	}{
		{"Магистратура", "ru", "master"},
		{"Бакалавриат", "kk", "bachelor"},
		{"Doctorate", "en", "phd"},
		{"doctorate", "ru", "phd"},
		{"Doktora", "tr", "phd"},
		{"Yüksek Lisans", "en", "master"},
		{"phd", "en", "phd"},
		{"Diploma", "en", "Diploma"},
	}

	for _, tt := range tests {
		t.Run(tt.label+"/"+tt.locale, func(t *testing.T) {
			assert.Equal(t, tt.want, labels.DegreeType(tt.label, locale.Resolve(tt.locale)))
		})
	}
}
