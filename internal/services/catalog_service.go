package services

import (
	"context"

	"edu-turkish-backend/internal/catalog"
	"edu-turkish-backend/internal/config"
	"edu-turkish-backend/internal/dto"
	"edu-turkish-backend/internal/locale"
	"edu-turkish-backend/internal/repository"

	"github.com/sirupsen/logrus"
)

type CatalogService interface {
	ListUniversities(ctx context.Context, f catalog.Filter, loc locale.Resolved) (*dto.UniversityList, error)
	GetUniversity(ctx context.Context, id uint, loc locale.Resolved) (*dto.UniversityDetail, error)
	GetUniversityBySlug(ctx context.Context, slug string, loc locale.Resolved) (*dto.UniversityDetail, error)
	GetFilters(ctx context.Context, loc locale.Resolved) (dto.UniversityFilters, error)

	ListDirections(ctx context.Context, loc locale.Resolved, q repository.DirectionQuery) (*dto.DirectionList, error)
	UniversitiesByDirection(ctx context.Context, slug string, loc locale.Resolved) ([]dto.University, error)

	ListFAQs(ctx context.Context, loc locale.Resolved, q repository.FAQQuery) (*dto.Page[dto.FAQ], error)
	ListReviews(ctx context.Context, loc locale.Resolved, q repository.ReviewQuery) (*dto.Page[dto.Review], error)
	ListBlogArticles(ctx context.Context, loc locale.Resolved, q repository.BlogQuery) (*dto.Page[dto.BlogArticle], error)
	GetBlogArticle(ctx context.Context, slug string, loc locale.Resolved) (*dto.BlogArticle, error)
}

type catalogService struct {
	universities repository.UniversityRepository
	faqs         repository.FAQRepository
	reviews      repository.ReviewRepository
	blog         repository.BlogRepository
	defaultLimit int
	logger       *logrus.Logger
}

func NewCatalogService(
	universities repository.UniversityRepository,
	faqs repository.FAQRepository,
	reviews repository.ReviewRepository,
	blog repository.BlogRepository,
	cfg *config.CatalogConfig,
	logger *logrus.Logger,
) CatalogService {
	limit := catalog.DefaultLimit
	if cfg != nil && cfg.DefaultLimit > 0 {
		limit = cfg.DefaultLimit
	}
	return &catalogService{
		universities: universities,
		faqs:         faqs,
		reviews:      reviews,
		blog:         blog,
		defaultLimit: limit,
		logger:       logger,
	}
}

func (s *catalogService) limit(requested int) int {
	if requested <= 0 {
		return s.defaultLimit
	}
	return requested
}

func (s *catalogService) ListUniversities(ctx context.Context, f catalog.Filter, loc locale.Resolved) (*dto.UniversityList, error) {
	f.Limit = s.limit(f.Limit)

	s.logger.WithFields(logrus.Fields{
		"locale": loc.Normalized,
		"q":      f.Q,
		"city":   f.City,
		"type":   f.Type,
		"level":  f.Level,
		"langs":  f.Langs,
		"sort":   f.Sort,
		"page":   f.Page,
		"limit":  f.Limit,
	}).Debug("Listing universities")

	return s.universities.FindAll(ctx, f, loc)
}

func (s *catalogService) GetUniversity(ctx context.Context, id uint, loc locale.Resolved) (*dto.UniversityDetail, error) {
	return s.universities.FindByID(ctx, id, loc)
}

func (s *catalogService) GetUniversityBySlug(ctx context.Context, slug string, loc locale.Resolved) (*dto.UniversityDetail, error) {
	return s.universities.FindBySlug(ctx, slug, loc)
}

func (s *catalogService) GetFilters(ctx context.Context, loc locale.Resolved) (dto.UniversityFilters, error) {
	return s.universities.GetFilters(ctx, loc)
}

func (s *catalogService) ListDirections(ctx context.Context, loc locale.Resolved, q repository.DirectionQuery) (*dto.DirectionList, error) {
	q.Limit = s.limit(q.Limit)
	return s.universities.GetAllDirections(ctx, loc, q)
}

func (s *catalogService) UniversitiesByDirection(ctx context.Context, slug string, loc locale.Resolved) ([]dto.University, error) {
	return s.universities.FindByDirection(ctx, slug, loc)
}

func (s *catalogService) ListFAQs(ctx context.Context, loc locale.Resolved, q repository.FAQQuery) (*dto.Page[dto.FAQ], error) {
	q.Limit = s.limit(q.Limit)
	return s.faqs.FindAll(ctx, loc, q)
}

func (s *catalogService) ListReviews(ctx context.Context, loc locale.Resolved, q repository.ReviewQuery) (*dto.Page[dto.Review], error) {
	q.Limit = s.limit(q.Limit)
	return s.reviews.FindAll(ctx, loc, q)
}

func (s *catalogService) ListBlogArticles(ctx context.Context, loc locale.Resolved, q repository.BlogQuery) (*dto.Page[dto.BlogArticle], error) {
	q.Limit = s.limit(q.Limit)
	return s.blog.FindAll(ctx, loc, q)
}

func (s *catalogService) GetBlogArticle(ctx context.Context, slug string, loc locale.Resolved) (*dto.BlogArticle, error) {
	return s.blog.FindBySlug(ctx, slug, loc)
}
