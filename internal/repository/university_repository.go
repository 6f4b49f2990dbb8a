package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"edu-turkish-backend/internal/cache"
	"edu-turkish-backend/internal/catalog"
	"edu-turkish-backend/internal/database"
	"edu-turkish-backend/internal/dto"
	"edu-turkish-backend/internal/locale"
	"edu-turkish-backend/internal/mapper"
	"edu-turkish-backend/internal/models"

	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

type UniversityRepository interface {
	FindAll(ctx context.Context, f catalog.Filter, loc locale.Resolved) (*dto.UniversityList, error)
	FindByID(ctx context.Context, id uint, loc locale.Resolved) (*dto.UniversityDetail, error)
	FindBySlug(ctx context.Context, slug string, loc locale.Resolved) (*dto.UniversityDetail, error)
	FindByDirection(ctx context.Context, directionSlug string, loc locale.Resolved) ([]dto.University, error)
	GetAllDirections(ctx context.Context, loc locale.Resolved, q DirectionQuery) (*dto.DirectionList, error)
	GetFilters(ctx context.Context, loc locale.Resolved) (dto.UniversityFilters, error)
}

// DirectionQuery narrows the study direction listing.
type DirectionQuery struct {
	Search string
	Page   int
	Limit  int
}

// UniversityRepositoryOptions holds the optional collaborators of the repository.
type UniversityRepositoryOptions struct {
	Cache     cache.Cache
	FacetsTTL time.Duration
	Logger    *logrus.Logger
}

type universityRepository struct {
	db        *database.Database
	mapper    *mapper.Mapper
	labels    *catalog.LabelTables
	cache     cache.Cache
	facetsTTL time.Duration
	log       *logrus.Logger
	timeout   time.Duration
}

func NewUniversityRepository(db *database.Database, m *mapper.Mapper, labels *catalog.LabelTables, opts UniversityRepositoryOptions) UniversityRepository {
	if labels == nil {
		labels = catalog.NewLabelTables()
	}
	log := opts.Logger
	if log == nil {
		log = logrus.StandardLogger()
	}
	return &universityRepository{
		db:        db,
		mapper:    m,
		labels:    labels,
		cache:     opts.Cache,
		facetsTTL: opts.FacetsTTL,
		log:       log,
		timeout:   db.GetQueryTimeout(),
	}
}

func (r *universityRepository) withTimeout(ctx context.Context) (context.Context, context.CancelFunc) {
	if _, ok := ctx.Deadline(); ok {
		return ctx, func() {}
	}
	return context.WithTimeout(ctx, r.timeout)
}

func listPreloads(db *gorm.DB) *gorm.DB {
	return db.
		Preload("Translations").
		Preload("City.Translations").
		Preload("City.Country.Translations").
		Preload("Country.Translations").
		Preload("Programs", orderByID)
}

func detailPreloads(db *gorm.DB) *gorm.DB {
	return listPreloads(db).
		Preload("Programs.Translations").
		Preload("FeaturedPrograms", orderByDisplay).
		Preload("FeaturedPrograms.Translations").
		Preload("FeaturedPrograms.Program.Translations").
		Preload("Facilities", orderByDisplay).
		Preload("Facilities.Translations").
		Preload("Requirements", orderByDisplay).
		Preload("Requirements.Translations").
		Preload("Documents", orderByDisplay).
		Preload("Documents.Translations").
		Preload("ImportantDates", func(db *gorm.DB) *gorm.DB { return db.Order("date ASC, id ASC") }).
		Preload("ImportantDates.Translations").
		Preload("Scholarships", orderByID).
		Preload("Scholarships.Translations").
		Preload("StudyDirections", orderByID).
		Preload("StudyDirections.Direction.Translations").
		Preload("Media", orderByDisplay).
		Preload("Media.Translations")
}

func orderByID(db *gorm.DB) *gorm.DB {
	return db.Order("id ASC")
}

func orderByDisplay(db *gorm.DB) *gorm.DB {
	return db.Order("display_order ASC, id ASC")
}

// FindAll runs the count and the page query in one transaction so both see
// the same snapshot. Facets are read afterwards, outside of it.
func (r *universityRepository) FindAll(ctx context.Context, f catalog.Filter, loc locale.Resolved) (*dto.UniversityList, error) {
	ctx, cancel := r.withTimeout(ctx)
	defer cancel()

	page, limit := catalog.NormalizePage(f.Page, f.Limit)
	predicate := catalog.BuildPredicate(f, loc, r.labels)
	key := catalog.ParseSort(f.Sort)

	var (
		total int64
		rows  []models.University
	)
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Model(&models.University{}).Scopes(predicate.Scope()).Count(&total).Error; err != nil {
			return err
		}
		return tx.Model(&models.University{}).
			Scopes(predicate.Scope(), catalog.OrderScope(key), listPreloads).
			Offset(catalog.Offset(page, limit)).
			Limit(limit).
			Find(&rows).Error
	})
	if err != nil {
		return nil, fmt.Errorf("list universities: %w", err)
	}

	data := r.mapper.ToUniversities(rows, loc)
	catalog.PostSort(data, key, loc)

	filters, err := r.GetFilters(ctx, loc)
	if err != nil {
		return nil, err
	}

	return &dto.UniversityList{
		Data:    data,
		Total:   total,
		Page:    page,
		Limit:   limit,
		Filters: filters,
	}, nil
}

func (r *universityRepository) FindByID(ctx context.Context, id uint, loc locale.Resolved) (*dto.UniversityDetail, error) {
	ctx, cancel := r.withTimeout(ctx)
	defer cancel()

	var u models.University
	err := r.db.WithContext(ctx).Scopes(detailPreloads).First(&u, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("find university %d: %w", id, err)
	}

	detail := r.mapper.ToUniversityDetail(u, loc)
	return &detail, nil
}

// FindBySlug resolves the slug through the translations, preferring rows in
// the fallback chain, and then loads the university by id.
func (r *universityRepository) FindBySlug(ctx context.Context, slug string, loc locale.Resolved) (*dto.UniversityDetail, error) {
	ctx, cancel := r.withTimeout(ctx)
	defer cancel()

	var matches []models.UniversityTranslation
	err := r.db.WithContext(ctx).
		Select("id", "university_id", "locale", "slug").
		Where("slug = ?", slug).
		Order("id ASC").
		Find(&matches).Error
	if err != nil {
		return nil, fmt.Errorf("find university slug %q: %w", slug, err)
	}

	match, ok := locale.Select(matches, loc)
	if !ok {
		return nil, nil
	}
	return r.FindByID(ctx, match.UniversityID, loc)
}
