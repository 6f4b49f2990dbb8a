package repository

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"edu-turkish-backend/internal/catalog"
	"edu-turkish-backend/internal/database"
	"edu-turkish-backend/internal/dto"
	"edu-turkish-backend/internal/locale"
	"edu-turkish-backend/internal/mapper"
	"edu-turkish-backend/internal/models"

	"gorm.io/gorm"
)

type FAQQuery struct {
	Category string
	Search   string
	Page     int
	Limit    int
}

type ReviewQuery struct {
	UniversityID *uint
	Page         int
	Limit        int
}

type BlogQuery struct {
	Category string
	Search   string
	Page     int
	Limit    int
}

type FAQRepository interface {
	FindAll(ctx context.Context, loc locale.Resolved, q FAQQuery) (*dto.Page[dto.FAQ], error)
}

type ReviewRepository interface {
	FindAll(ctx context.Context, loc locale.Resolved, q ReviewQuery) (*dto.Page[dto.Review], error)
}

type BlogRepository interface {
	FindAll(ctx context.Context, loc locale.Resolved, q BlogQuery) (*dto.Page[dto.BlogArticle], error)
	FindBySlug(ctx context.Context, slug string, loc locale.Resolved) (*dto.BlogArticle, error)
}

// contentRepository backs the FAQ, review and blog listings.
type contentRepository struct {
	db      *database.Database
	mapper  *mapper.Mapper
	timeout time.Duration
}

func newContentRepository(db *database.Database, m *mapper.Mapper) contentRepository {
	return contentRepository{db: db, mapper: m, timeout: db.GetQueryTimeout()}
}

func (r *contentRepository) withTimeout(ctx context.Context) (context.Context, context.CancelFunc) {
	if _, ok := ctx.Deadline(); ok {
		return ctx, func() {}
	}
	return context.WithTimeout(ctx, r.timeout)
}

// paginate counts the query and loads one ordered page of it, with translations, into dest.
func paginate(query *gorm.DB, order string, page, limit int, dest any) (int64, error) {
	var total int64
	if err := query.Count(&total).Error; err != nil {
		return 0, err
	}
	err := query.
		Preload("Translations").
		Order(order).
		Offset(catalog.Offset(page, limit)).
		Limit(limit).
		Find(dest).Error
	if err != nil {
		return 0, err
	}
	return total, nil
}

type faqRepository struct{ contentRepository }

func NewFAQRepository(db *database.Database, m *mapper.Mapper) FAQRepository {
	return &faqRepository{newContentRepository(db, m)}
}

func (r *faqRepository) FindAll(ctx context.Context, loc locale.Resolved, q FAQQuery) (*dto.Page[dto.FAQ], error) {
	ctx, cancel := r.withTimeout(ctx)
	defer cancel()

	page, limit := catalog.NormalizePage(q.Page, q.Limit)

	// rows without any translation are never rendered, so they must not count
	query := r.db.WithContext(ctx).Model(&models.FAQ{}).
		Where("faqs.is_active = ?", true).
		Where("EXISTS (SELECT 1 FROM faq_translations ft0 WHERE ft0.faq_id = faqs.id)")
	if !catalog.IsAbsent(q.Category) {
		query = query.Where("faqs.category = ?", strings.TrimSpace(q.Category))
	}
	if !catalog.IsAbsent(q.Search) {
		pattern := catalog.ContainsPattern(q.Search)
		query = query.Where(
			"EXISTS (SELECT 1 FROM faq_translations ft WHERE ft.faq_id = faqs.id AND ft.locale IN ? AND (ft.question ILIKE ? OR ft.answer ILIKE ?))",
			loc.Fallbacks, pattern, pattern,
		)
	}

	var rows []models.FAQ
	total, err := paginate(query, "faqs.display_order ASC, faqs.id ASC", page, limit, &rows)
	if err != nil {
		return nil, fmt.Errorf("list faqs: %w", err)
	}

	data := make([]dto.FAQ, 0, len(rows))
	for _, f := range rows {
		if item, ok := r.mapper.ToFAQ(f, loc); ok {
			data = append(data, item)
		}
	}
	return &dto.Page[dto.FAQ]{Data: data, Total: total, Page: page, Limit: limit}, nil
}

type reviewRepository struct{ contentRepository }

func NewReviewRepository(db *database.Database, m *mapper.Mapper) ReviewRepository {
	return &reviewRepository{newContentRepository(db, m)}
}

// FindAll lists published reviews, newest first.
func (r *reviewRepository) FindAll(ctx context.Context, loc locale.Resolved, q ReviewQuery) (*dto.Page[dto.Review], error) {
	ctx, cancel := r.withTimeout(ctx)
	defer cancel()

	page, limit := catalog.NormalizePage(q.Page, q.Limit)

	query := r.db.WithContext(ctx).Model(&models.Review{}).
		Where("reviews.is_published = ?", true).
		Where("EXISTS (SELECT 1 FROM review_translations rt WHERE rt.review_id = reviews.id)")
	if q.UniversityID != nil {
		query = query.Where("reviews.university_id = ?", *q.UniversityID)
	}

	var rows []models.Review
	total, err := paginate(query, "reviews.created_at DESC, reviews.id DESC", page, limit, &rows)
	if err != nil {
		return nil, fmt.Errorf("list reviews: %w", err)
	}

	data := make([]dto.Review, 0, len(rows))
	for _, rv := range rows {
		if item, ok := r.mapper.ToReview(rv, loc); ok {
			data = append(data, item)
		}
	}
	return &dto.Page[dto.Review]{Data: data, Total: total, Page: page, Limit: limit}, nil
}

type blogRepository struct{ contentRepository }

func NewBlogRepository(db *database.Database, m *mapper.Mapper) BlogRepository {
	return &blogRepository{newContentRepository(db, m)}
}

func (r *blogRepository) FindAll(ctx context.Context, loc locale.Resolved, q BlogQuery) (*dto.Page[dto.BlogArticle], error) {
	ctx, cancel := r.withTimeout(ctx)
	defer cancel()

	page, limit := catalog.NormalizePage(q.Page, q.Limit)

	query := r.db.WithContext(ctx).Model(&models.BlogArticle{}).
		Where("blog_articles.is_published = ?", true).
		Where("EXISTS (SELECT 1 FROM blog_article_translations bt0 WHERE bt0.article_id = blog_articles.id)")
	if !catalog.IsAbsent(q.Category) {
		query = query.Where("blog_articles.category = ?", strings.TrimSpace(q.Category))
	}
	if !catalog.IsAbsent(q.Search) {
		pattern := catalog.ContainsPattern(q.Search)
		query = query.Where(
			"EXISTS (SELECT 1 FROM blog_article_translations bt WHERE bt.article_id = blog_articles.id AND bt.locale IN ? AND (bt.title ILIKE ? OR bt.excerpt ILIKE ?))",
			loc.Fallbacks, pattern, pattern,
		)
	}

	var rows []models.BlogArticle
	total, err := paginate(query, "blog_articles.published_at DESC NULLS LAST, blog_articles.id DESC", page, limit, &rows)
	if err != nil {
		return nil, fmt.Errorf("list blog articles: %w", err)
	}

	data := make([]dto.BlogArticle, 0, len(rows))
	for _, a := range rows {
		if item, ok := r.mapper.ToBlogArticle(a, loc, false); ok {
			data = append(data, item)
		}
	}
	return &dto.Page[dto.BlogArticle]{Data: data, Total: total, Page: page, Limit: limit}, nil
}

// FindBySlug returns nil, nil when no published article carries the slug.
func (r *blogRepository) FindBySlug(ctx context.Context, slug string, loc locale.Resolved) (*dto.BlogArticle, error) {
	ctx, cancel := r.withTimeout(ctx)
	defer cancel()

	var matches []models.BlogArticleTranslation
	err := r.db.WithContext(ctx).
		Select("id", "article_id", "locale", "slug").
		Where("slug = ?", slug).
		Order("id ASC").
		Find(&matches).Error
	if err != nil {
		return nil, fmt.Errorf("find blog slug %q: %w", slug, err)
	}

	match, ok := locale.Select(matches, loc)
	if !ok {
		return nil, nil
	}

	var article models.BlogArticle
	err = r.db.WithContext(ctx).
		Preload("Translations").
		Where("is_published = ?", true).
		First(&article, match.ArticleID).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("find blog article %d: %w", match.ArticleID, err)
	}

	item, ok := r.mapper.ToBlogArticle(article, loc, true)
	if !ok {
		return nil, nil
	}
	return &item, nil
}
