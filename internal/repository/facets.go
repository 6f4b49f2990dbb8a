package repository

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"strings"

	"edu-turkish-backend/internal/cache"
	"edu-turkish-backend/internal/dto"
	"edu-turkish-backend/internal/locale"
	"edu-turkish-backend/internal/models"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"
	"gorm.io/gorm"
)

const facetsCacheKeyPrefix = "facets:universities:"

func facetsCacheKey(loc locale.Resolved) string {
	return facetsCacheKeyPrefix + loc.Normalized
}

type priceBounds struct {
	Lo *float64
	Hi *float64
}

// GetFilters returns every facet value in the catalog. It ignores the
// filters of the current request.
func (r *universityRepository) GetFilters(ctx context.Context, loc locale.Resolved) (dto.UniversityFilters, error) {
	if r.cache != nil {
		var cached dto.UniversityFilters
		err := r.cache.GetJSON(ctx, facetsCacheKey(loc), &cached)
		if err == nil {
			return cached, nil
		}
		if !errors.Is(err, cache.ErrNotFound) {
			r.log.WithError(err).WithField("locale", loc.Normalized).Warn("Failed to read facet cache")
		}
	}

	filters, err := r.buildFilters(ctx, loc)
	if err != nil {
		return dto.UniversityFilters{}, err
	}

	if r.cache != nil && r.facetsTTL > 0 {
		if err := r.cache.SetJSON(ctx, facetsCacheKey(loc), filters, r.facetsTTL); err != nil {
			r.log.WithError(err).WithField("locale", loc.Normalized).Warn("Failed to write facet cache")
		}
	}

	return filters, nil
}

func (r *universityRepository) buildFilters(ctx context.Context, loc locale.Resolved) (dto.UniversityFilters, error) {
	ctx, cancel := r.withTimeout(ctx)
	defer cancel()

	db := r.db.WithContext(ctx)
	out := dto.UniversityFilters{
		Cities:    []string{},
		Types:     []string{},
		Levels:    []string{},
		Languages: []string{},
	}

	var cityIDs []uint
	if err := db.Model(&models.University{}).
		Where("city_id IS NOT NULL").
		Group("city_id").
		Pluck("city_id", &cityIDs).Error; err != nil {
		return out, fmt.Errorf("facet cities: %w", err)
	}
	cities, err := r.cityNames(db, cityIDs, loc)
	if err != nil {
		return out, err
	}
	out.Cities = cities

	if err := db.Model(&models.University{}).
		Where("type <> ''").
		Group("type").
		Order("type ASC").
		Pluck("type", &out.Types).Error; err != nil {
		return out, fmt.Errorf("facet types: %w", err)
	}

	if err := db.Model(&models.AcademicProgram{}).
		Where("degree_type <> ''").
		Group("degree_type").
		Order("degree_type ASC").
		Pluck("degree_type", &out.Levels).Error; err != nil {
		return out, fmt.Errorf("facet levels: %w", err)
	}

	if err := db.Model(&models.AcademicProgram{}).
		Where("language_code IS NOT NULL AND language_code <> ''").
		Group("LOWER(language_code)").
		Order("LOWER(language_code) ASC").
		Pluck("LOWER(language_code)", &out.Languages).Error; err != nil {
		return out, fmt.Errorf("facet languages: %w", err)
	}

	var bounds priceBounds
	if err := db.Model(&models.University{}).
		Select("LEAST(MIN(tuition_min), MIN(tuition_max)) AS lo, GREATEST(MAX(tuition_min), MAX(tuition_max)) AS hi").
		Scan(&bounds).Error; err != nil {
		return out, fmt.Errorf("facet price range: %w", err)
	}
	out.PriceRange = priceRange(bounds)

	// Pluck leaves nil slices on empty results.
	if out.Types == nil {
		out.Types = []string{}
	}
	if out.Levels == nil {
		out.Levels = []string{}
	}
	if out.Languages == nil {
		out.Languages = []string{}
	}

	return out, nil
}

func (r *universityRepository) cityNames(db *gorm.DB, ids []uint, loc locale.Resolved) ([]string, error) {
	if len(ids) == 0 {
		return []string{}, nil
	}

	var cities []models.City
	if err := db.Preload("Translations").Where("id IN ?", ids).Find(&cities).Error; err != nil {
		return nil, fmt.Errorf("facet city names: %w", err)
	}

	return cityFacet(cities, loc), nil
}

// cityFacet selects one display name per city, drops blanks and duplicates
// and sorts with the locale's collation.
func cityFacet(cities []models.City, loc locale.Resolved) []string {
	seen := make(map[string]struct{}, len(cities))
	names := make([]string, 0, len(cities))
	for _, c := range cities {
		t, ok := locale.Select(c.Translations, loc)
		if !ok {
			continue
		}
		name := strings.TrimSpace(t.Name)
		if name == "" {
			continue
		}
		if _, dup := seen[name]; dup {
			continue
		}
		seen[name] = struct{}{}
		names = append(names, name)
	}

	col := collate.New(language.Make(loc.Normalized))
	sort.SliceStable(names, func(i, j int) bool {
		return col.CompareString(names[i], names[j]) < 0
	})
	return names
}

func priceRange(b priceBounds) [2]float64 {
	var out [2]float64
	if b.Lo != nil {
		out[0] = *b.Lo
	}
	if b.Hi != nil {
		out[1] = *b.Hi
	}
	return out
}

// InvalidateFilters drops cached facets for every supported locale.
func InvalidateFilters(ctx context.Context, c cache.Cache) error {
	if c == nil {
		return nil
	}
	keys := make([]string, 0, len(locale.Supported))
	for _, code := range locale.Supported {
		keys = append(keys, facetsCacheKeyPrefix+code)
	}
	return c.Delete(ctx, keys...)
}
