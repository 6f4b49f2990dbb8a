package repository

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"edu-turkish-backend/internal/cache"
	"edu-turkish-backend/internal/catalog"
	"edu-turkish-backend/internal/dto"
	"edu-turkish-backend/internal/locale"
	"edu-turkish-backend/internal/mapper"
	"edu-turkish-backend/internal/models"
	"edu-turkish-backend/testing/testdb"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

var catalogTables = []string{
	"universities", "university_translations", "academic_programs", "program_translations",
	"featured_programs", "featured_program_translations", "scholarships", "scholarship_translations",
	"cities", "city_translations", "countries", "country_translations",
	"study_directions", "study_direction_translations", "university_study_directions",
	"faqs", "faq_translations", "reviews", "review_translations",
	"blog_articles", "blog_article_translations", "application_requests",
}

func fptr(v float64) *float64 { return &v }

type seedUniversity struct {
	title     string
	locale    string
	slug      string
	typ       models.UniversityType
	tuitionLo *float64
	tuitionHi *float64
	cityID    *uint
	langs     []string
}

func seed(t *testing.T, db *gorm.DB, s seedUniversity) models.University {
	t.Helper()

	loc := s.locale
	if loc == "" {
		loc = "en"
	}
	typ := s.typ
	if typ == "" {
		typ = models.UniversityTypeState
	}

	u := models.University{
		Type:       typ,
		TuitionMin: s.tuitionLo,
		TuitionMax: s.tuitionHi,
		Currency:   "USD",
		CityID:     s.cityID,
		Translations: []models.UniversityTranslation{
			{Locale: loc, Title: s.title, Description: s.title + " description", Slug: s.slug},
		},
	}
	for _, lang := range s.langs {
		u.Programs = append(u.Programs, models.AcademicProgram{DegreeType: models.DegreeBachelor, LanguageCode: lang})
	}
	require.NoError(t, db.Create(&u).Error)
	return u
}

func seedCity(t *testing.T, db *gorm.DB, names map[string]string) uint {
	t.Helper()

	c := models.City{}
	for code, name := range names {
		c.Translations = append(c.Translations, models.CityTranslation{Locale: code, Name: name})
	}
	require.NoError(t, db.Create(&c).Error)
	return c.ID
}

func titlesOf(rows []dto.University) []string {
	out := make([]string, len(rows))
	for i, r := range rows {
		out[i] = r.Title
	}
	return out
}

type memoryCache struct {
	mu    sync.Mutex
	items map[string]any
	sets  int
}

func newMemoryCache() *memoryCache {
	return &memoryCache{items: make(map[string]any)}
}

func (c *memoryCache) GetJSON(_ context.Context, key string, dest any) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	v, ok := c.items[key]
	if !ok {
		return cache.ErrNotFound
	}
	f, ok := v.(dto.UniversityFilters)
	if !ok {
		return errors.New("unexpected cached type")
	}
	*(dest.(*dto.UniversityFilters)) = f
	return nil
}

func (c *memoryCache) SetJSON(_ context.Context, key string, value any, _ time.Duration) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.items[key] = value
	c.sets++
	return nil
}

func (c *memoryCache) Delete(_ context.Context, keys ...string) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	for _, k := range keys {
		delete(c.items, k)
	}
	return nil
}

func TestUniversityRepository(t *testing.T) {
	pg := testdb.SetupSharedPostgres(t)
	db := pg.DB.DB
	ctx := context.Background()

	newRepo := func(opts UniversityRepositoryOptions) UniversityRepository {
		return NewUniversityRepository(pg.DB, mapper.New(nil, nil), catalog.NewLabelTables(), opts)
	}

	t.Run("price overlap", func(t *testing.T) {
		testdb.CleanupTables(t, db, catalogTables...)
		seed(t, db, seedUniversity{title: "X", slug: "x", tuitionLo: fptr(2000), tuitionHi: fptr(6000)})
		seed(t, db, seedUniversity{title: "Y", slug: "y", tuitionHi: fptr(3500)})
		seed(t, db, seedUniversity{title: "Z", slug: "z", tuitionLo: fptr(9000), tuitionHi: fptr(12000)})

		got, err := newRepo(UniversityRepositoryOptions{}).FindAll(ctx, catalog.Filter{
			PriceMin: fptr(3000),
			PriceMax: fptr(8000),
		}, locale.Resolve("en"))
		require.NoError(t, err)

		assert.ElementsMatch(t, []string{"X", "Y"}, titlesOf(got.Data))
		assert.Equal(t, int64(2), got.Total)
	})

	t.Run("price sort keeps unpriced last", func(t *testing.T) {
		testdb.CleanupTables(t, db, catalogTables...)
		seed(t, db, seedUniversity{title: "Unpriced", slug: "unpriced"})
		seed(t, db, seedUniversity{title: "Cheap", slug: "cheap", tuitionLo: fptr(1000), tuitionHi: fptr(2000)})
		seed(t, db, seedUniversity{title: "Costly", slug: "costly", tuitionLo: fptr(8000), tuitionHi: fptr(15000)})

		repo := newRepo(UniversityRepositoryOptions{})

		got, err := repo.FindAll(ctx, catalog.Filter{Sort: "price_desc"}, locale.Resolve("en"))
		require.NoError(t, err)
		assert.Equal(t, []string{"Costly", "Cheap", "Unpriced"}, titlesOf(got.Data))

		got, err = repo.FindAll(ctx, catalog.Filter{Sort: "price_asc"}, locale.Resolve("en"))
		require.NoError(t, err)
		assert.Equal(t, []string{"Cheap", "Costly", "Unpriced"}, titlesOf(got.Data))
	})

	t.Run("locale fallback", func(t *testing.T) {
		testdb.CleanupTables(t, db, catalogTables...)
		u := seed(t, db, seedUniversity{title: "Университет", locale: "ru", slug: "universitet"})

		got, err := newRepo(UniversityRepositoryOptions{}).FindByID(ctx, u.ID, locale.Resolve("kz"))
		require.NoError(t, err)
		require.NotNil(t, got)
		assert.Equal(t, "Университет", got.Title)
		assert.Equal(t, "Университет description", got.Description)
		assert.Equal(t, "universitet", got.Slug)
	})

	t.Run("lang_en sort", func(t *testing.T) {
		testdb.CleanupTables(t, db, catalogTables...)
		seed(t, db, seedUniversity{title: "Turkish Academy", slug: "turkish-academy", langs: []string{"TR"}})
		seed(t, db, seedUniversity{title: "International College", slug: "international-college", langs: []string{"EN"}})

		got, err := newRepo(UniversityRepositoryOptions{}).FindAll(ctx, catalog.Filter{Sort: "lang_en"}, locale.Resolve("en"))
		require.NoError(t, err)
		assert.Equal(t, []string{"International College", "Turkish Academy"}, titlesOf(got.Data))
	})

	t.Run("alpha sort", func(t *testing.T) {
		testdb.CleanupTables(t, db, catalogTables...)
		seed(t, db, seedUniversity{title: "Zeta Institute", slug: "zeta"})
		seed(t, db, seedUniversity{title: "Alpha University", slug: "alpha"})

		got, err := newRepo(UniversityRepositoryOptions{}).FindAll(ctx, catalog.Filter{Sort: "alpha"}, locale.Resolve("en"))
		require.NoError(t, err)
		assert.Equal(t, []string{"Alpha University", "Zeta Institute"}, titlesOf(got.Data))
	})

	t.Run("filters and pagination", func(t *testing.T) {
		testdb.CleanupTables(t, db, catalogTables...)
		istanbul := seedCity(t, db, map[string]string{"en": "Istanbul", "ru": "Стамбул"})
		ankara := seedCity(t, db, map[string]string{"en": "Ankara", "ru": "Анкара"})

		seed(t, db, seedUniversity{title: "Bogazici", slug: "bogazici", cityID: &istanbul, langs: []string{"en"}})
		seed(t, db, seedUniversity{title: "ITU", slug: "itu", typ: models.UniversityTypeTech, cityID: &istanbul, langs: []string{"tr"}})
		seed(t, db, seedUniversity{title: "METU", slug: "metu", typ: models.UniversityTypeTech, cityID: &ankara, langs: []string{"EN"}})

		repo := newRepo(UniversityRepositoryOptions{})
		en := locale.Resolve("en")

		got, err := repo.FindAll(ctx, catalog.Filter{City: "Istanbul"}, en)
		require.NoError(t, err)
		assert.ElementsMatch(t, []string{"Bogazici", "ITU"}, titlesOf(got.Data))

		got, err = repo.FindAll(ctx, catalog.Filter{City: "Стамбул"}, locale.Resolve("ru"))
		require.NoError(t, err)
		assert.Len(t, got.Data, 2)

		got, err = repo.FindAll(ctx, catalog.Filter{Type: "Technical"}, en)
		require.NoError(t, err)
		assert.ElementsMatch(t, []string{"ITU", "METU"}, titlesOf(got.Data))
		for _, u := range got.Data {
			require.NotNil(t, u.Badge)
			assert.Equal(t, mapper.BadgeColorPurple, u.Badge.Color)
		}

		got, err = repo.FindAll(ctx, catalog.Filter{Langs: []string{"en"}, City: "All cities"}, en)
		require.NoError(t, err)
		assert.ElementsMatch(t, []string{"Bogazici", "METU"}, titlesOf(got.Data))

		got, err = repo.FindAll(ctx, catalog.Filter{Q: "anka"}, en)
		require.NoError(t, err)
		assert.Equal(t, []string{"METU"}, titlesOf(got.Data))

		got, err = repo.FindAll(ctx, catalog.Filter{Page: 2, Limit: 2}, en)
		require.NoError(t, err)
		assert.Equal(t, int64(3), got.Total)
		assert.Equal(t, []string{"METU"}, titlesOf(got.Data))

		got, err = repo.FindAll(ctx, catalog.Filter{Page: -1, Limit: 0}, en)
		require.NoError(t, err)
		assert.Equal(t, 1, got.Page)
		assert.Equal(t, catalog.DefaultLimit, got.Limit)
	})

	t.Run("facets ignore filters", func(t *testing.T) {
		testdb.CleanupTables(t, db, catalogTables...)
		izmir := seedCity(t, db, map[string]string{"en": "Izmir"})
		antalya := seedCity(t, db, map[string]string{"en": "Antalya"})

		seed(t, db, seedUniversity{title: "A", slug: "a", cityID: &izmir, tuitionLo: fptr(1500), langs: []string{"EN", "tr"}})
		seed(t, db, seedUniversity{title: "B", slug: "b", cityID: &antalya, typ: models.UniversityTypePrivate, tuitionLo: fptr(4000), tuitionHi: fptr(20000)})

		repo := newRepo(UniversityRepositoryOptions{})
		en := locale.Resolve("en")

		all, err := repo.FindAll(ctx, catalog.Filter{}, en)
		require.NoError(t, err)
		filtered, err := repo.FindAll(ctx, catalog.Filter{Type: "private", PriceMin: fptr(10000)}, en)
		require.NoError(t, err)

		assert.Equal(t, all.Filters, filtered.Filters)
		assert.Equal(t, []string{"Antalya", "Izmir"}, all.Filters.Cities)
		assert.Equal(t, []string{"private", "state"}, all.Filters.Types)
		assert.Equal(t, []string{"bachelor"}, all.Filters.Levels)
		assert.Equal(t, []string{"en", "tr"}, all.Filters.Languages)
		assert.Equal(t, [2]float64{1500, 20000}, all.Filters.PriceRange)
	})

	t.Run("facets are cached per locale", func(t *testing.T) {
		testdb.CleanupTables(t, db, catalogTables...)
		seed(t, db, seedUniversity{title: "A", slug: "a"})

		c := newMemoryCache()
		repo := newRepo(UniversityRepositoryOptions{Cache: c, FacetsTTL: time.Minute})

		first, err := repo.GetFilters(ctx, locale.Resolve("en"))
		require.NoError(t, err)
		_, err = repo.GetFilters(ctx, locale.Resolve("en"))
		require.NoError(t, err)
		assert.Equal(t, 1, c.sets)

		seed(t, db, seedUniversity{title: "B", slug: "b", typ: models.UniversityTypeElite})
		cached, err := repo.GetFilters(ctx, locale.Resolve("en"))
		require.NoError(t, err)
		assert.Equal(t, first, cached)

		require.NoError(t, InvalidateFilters(ctx, c))
		fresh, err := repo.GetFilters(ctx, locale.Resolve("en"))
		require.NoError(t, err)
		assert.Contains(t, fresh.Types, "elite")
	})

	t.Run("find by id and slug", func(t *testing.T) {
		testdb.CleanupTables(t, db, catalogTables...)
		u := models.University{
			Type: models.UniversityTypePrivate,
			Translations: []models.UniversityTranslation{
				{Locale: "ru", Title: "Кодж", Slug: "koc"},
				{Locale: "en", Title: "Koc", Slug: "koc-university",
					About: datatypes.JSON(`{"history":"1993","advantages":["Campus"]}`)},
			},
			Scholarships: []models.Scholarship{
				{Translations: []models.ScholarshipTranslation{{Locale: "en", Name: "Merit"}}},
			},
		}
		require.NoError(t, db.Create(&u).Error)

		repo := newRepo(UniversityRepositoryOptions{})

		got, err := repo.FindBySlug(ctx, "koc-university", locale.Resolve("en"))
		require.NoError(t, err)
		require.NotNil(t, got)
		assert.Equal(t, u.ID, got.ID)
		assert.Equal(t, "Koc", got.Title)
		assert.Equal(t, "1993", got.About.History)
		assert.Equal(t, []dto.Advantage{{Title: "Campus"}}, got.About.Advantages)
		require.NotNil(t, got.Badge)
		assert.Equal(t, mapper.BadgeColorGreen, got.Badge.Color)
		require.Len(t, got.Admission.Scholarships, 1)

		got, err = repo.FindBySlug(ctx, "koc", locale.Resolve("en"))
		require.NoError(t, err)
		require.NotNil(t, got)
		assert.Equal(t, u.ID, got.ID)

		got, err = repo.FindBySlug(ctx, "missing", locale.Resolve("en"))
		require.NoError(t, err)
		assert.Nil(t, got)

		got, err = repo.FindByID(ctx, u.ID+1000, locale.Resolve("en"))
		require.NoError(t, err)
		assert.Nil(t, got)
	})

	t.Run("directions", func(t *testing.T) {
		testdb.CleanupTables(t, db, catalogTables...)
		a := seed(t, db, seedUniversity{title: "A", slug: "a"})
		seed(t, db, seedUniversity{title: "B", slug: "b"})
		c := seed(t, db, seedUniversity{title: "C", slug: "c"})

		cs := models.StudyDirection{Code: "computer-science", Translations: []models.StudyDirectionTranslation{
			{Locale: "en", Name: "Computer Science", Slug: "computer-science"},
			{Locale: "ru", Name: "Информатика", Slug: "informatika"},
		}}
		med := models.StudyDirection{Code: "medicine", Translations: []models.StudyDirectionTranslation{
			{Locale: "en", Name: "Medicine", Slug: "medicine"},
		}}
		require.NoError(t, db.Create(&cs).Error)
		require.NoError(t, db.Create(&med).Error)
		require.NoError(t, db.Create(&[]models.UniversityStudyDirection{
			{UniversityID: a.ID, DirectionID: cs.ID},
			{UniversityID: c.ID, DirectionID: cs.ID, CostPerYear: fptr(4500)},
		}).Error)

		repo := newRepo(UniversityRepositoryOptions{})

		list, err := repo.FindByDirection(ctx, "informatika", locale.Resolve("ru"))
		require.NoError(t, err)
		assert.Equal(t, []string{"A", "C"}, titlesOf(list))

		list, err = repo.FindByDirection(ctx, "unknown", locale.Resolve("ru"))
		require.NoError(t, err)
		assert.NotNil(t, list)
		assert.Empty(t, list)

		dirs, err := repo.GetAllDirections(ctx, locale.Resolve("ru"), DirectionQuery{})
		require.NoError(t, err)
		assert.Equal(t, int64(2), dirs.Total)
		require.Len(t, dirs.Data, 2)
		assert.Equal(t, "Информатика", dirs.Data[0].Name)
		assert.Equal(t, int64(2), dirs.Data[0].UniversitiesCount)
		assert.Equal(t, "Medicine", dirs.Data[1].Name)
		assert.Equal(t, int64(0), dirs.Data[1].UniversitiesCount)

		dirs, err = repo.GetAllDirections(ctx, locale.Resolve("en"), DirectionQuery{Search: "medic"})
		require.NoError(t, err)
		assert.Equal(t, int64(1), dirs.Total)
		assert.Equal(t, "medicine", dirs.Data[0].Slug)
	})
}
