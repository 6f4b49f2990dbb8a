package repository

import (
	"context"
	"testing"
	"time"

	"edu-turkish-backend/internal/locale"
	"edu-turkish-backend/internal/mapper"
	"edu-turkish-backend/internal/models"
	"edu-turkish-backend/testing/testdb"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/datatypes"
)

func TestContentRepositories(t *testing.T) {
	pg := testdb.SetupSharedPostgres(t)
	db := pg.DB.DB
	ctx := context.Background()
	m := mapper.New(nil, nil)

	t.Run("faqs", func(t *testing.T) {
		testdb.CleanupTables(t, db, catalogTables...)
		require.NoError(t, db.Create(&[]models.FAQ{
			{Category: "visa", DisplayOrder: 2, IsActive: true, Translations: []models.FAQTranslation{{Locale: "ru", Question: "Нужна ли виза?", Answer: "Да"}}},
			{Category: "visa", DisplayOrder: 1, IsActive: true, Translations: []models.FAQTranslation{{Locale: "en", Question: "How long?", Answer: "Weeks"}}},
			{Category: "costs", DisplayOrder: 0, IsActive: true, Translations: []models.FAQTranslation{{Locale: "en", Question: "Fees?", Answer: "Varies"}}},
		}).Error)
		hidden := models.FAQ{Category: "visa", Translations: []models.FAQTranslation{{Locale: "en", Question: "Hidden"}}}
		require.NoError(t, db.Create(&hidden).Error)
		require.NoError(t, db.Model(&hidden).Update("is_active", false).Error)
		require.NoError(t, db.Create(&models.FAQ{Category: "visa", DisplayOrder: 3, IsActive: true}).Error)

		repo := NewFAQRepository(pg.DB, m)

		page, err := repo.FindAll(ctx, locale.Resolve("en"), FAQQuery{Category: "visa"})
		require.NoError(t, err)
		assert.Equal(t, int64(2), page.Total)
		require.Len(t, page.Data, 2)
		assert.Equal(t, "How long?", page.Data[0].Question)
		assert.Equal(t, "Нужна ли виза?", page.Data[1].Question)

		page, err = repo.FindAll(ctx, locale.Resolve("en"), FAQQuery{Search: "fee"})
		require.NoError(t, err)
		require.Len(t, page.Data, 1)
		assert.Equal(t, "costs", page.Data[0].Category)
	})

	t.Run("reviews", func(t *testing.T) {
		testdb.CleanupTables(t, db, catalogTables...)
		now := time.Now().UTC()
		require.NoError(t, db.Create(&[]models.Review{
			{Rating: 5, IsPublished: true, CreatedAt: now.Add(-time.Hour), Translations: []models.ReviewTranslation{{Locale: "en", AuthorName: "Older"}}},
			{Rating: 4, IsPublished: true, CreatedAt: now, Translations: []models.ReviewTranslation{{Locale: "en", AuthorName: "Newer"}}},
			{Rating: 1, IsPublished: false, CreatedAt: now, Translations: []models.ReviewTranslation{{Locale: "en", AuthorName: "Draft"}}},
			{Rating: 3, IsPublished: true, CreatedAt: now.Add(time.Hour)},
		}).Error)

		page, err := NewReviewRepository(pg.DB, m).FindAll(ctx, locale.Resolve("en"), ReviewQuery{})
		require.NoError(t, err)
		assert.Equal(t, int64(2), page.Total)
		require.Len(t, page.Data, 2)
		assert.Equal(t, "Newer", page.Data[0].AuthorName)
		assert.Equal(t, "Older", page.Data[1].AuthorName)
	})

	t.Run("blog", func(t *testing.T) {
		testdb.CleanupTables(t, db, catalogTables...)
		published := time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC)
		require.NoError(t, db.Create(&[]models.BlogArticle{
			{Category: "guides", IsPublished: true, PublishedAt: &published, Translations: []models.BlogArticleTranslation{
				{Locale: "en", Title: "Visa guide", Slug: "visa-guide", Excerpt: "How to", Content: "Full text", Tags: datatypes.JSON(`["visa"]`)},
				{Locale: "ru", Title: "Виза", Slug: "viza", Content: "Текст"},
			}},
			{Category: "news", IsPublished: false, Translations: []models.BlogArticleTranslation{{Locale: "en", Title: "Draft", Slug: "draft"}}},
			{Category: "news", IsPublished: true, PublishedAt: &published},
		}).Error)

		repo := NewBlogRepository(pg.DB, m)

		page, err := repo.FindAll(ctx, locale.Resolve("en"), BlogQuery{})
		require.NoError(t, err)
		assert.Equal(t, int64(1), page.Total)
		require.Len(t, page.Data, 1)
		assert.Empty(t, page.Data[0].Content)
		assert.Equal(t, []string{"visa"}, page.Data[0].Tags)

		article, err := repo.FindBySlug(ctx, "viza", locale.Resolve("ru"))
		require.NoError(t, err)
		require.NotNil(t, article)
		assert.Equal(t, "Текст", article.Content)

		article, err = repo.FindBySlug(ctx, "draft", locale.Resolve("en"))
		require.NoError(t, err)
		assert.Nil(t, article)
	})

	t.Run("applications", func(t *testing.T) {
		testdb.CleanupTables(t, db, catalogTables...)
		req := &models.ApplicationRequest{ID: uuid.NewString(), Name: "Aida", Phone: "+77001234567", Locale: "kk"}

		require.NoError(t, NewApplicationRepository(pg.DB).Create(ctx, req))

		var stored models.ApplicationRequest
		require.NoError(t, db.First(&stored, "id = ?", req.ID).Error)
		assert.Equal(t, "Aida", stored.Name)
	})
}
