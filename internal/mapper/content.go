package mapper

import (
	"encoding/json"
	"strings"

	"edu-turkish-backend/internal/dto"
	"edu-turkish-backend/internal/locale"
	"edu-turkish-backend/internal/models"
)

func (m *Mapper) ToFAQ(f models.FAQ, loc locale.Resolved) (dto.FAQ, bool) {
	t, ok := pick(m, f.Translations, loc, "faq")
	if !ok {
		return dto.FAQ{}, false
	}
	return dto.FAQ{ID: f.ID, Category: f.Category, Question: t.Question, Answer: t.Answer}, true
}

func (m *Mapper) ToReview(r models.Review, loc locale.Resolved) (dto.Review, bool) {
	t, ok := pick(m, r.Translations, loc, "review")
	if !ok {
		return dto.Review{}, false
	}
	return dto.Review{
		ID:           r.ID,
		UniversityID: r.UniversityID,
		Rating:       r.Rating,
		AuthorName:   t.AuthorName,
		AuthorRole:   t.AuthorRole,
		AuthorImage:  m.url(r.AuthorImage),
		Text:         t.Text,
		CreatedAt:    r.CreatedAt,
	}, true
}

// ToBlogArticle maps an article; withContent controls whether the body is included.
func (m *Mapper) ToBlogArticle(a models.BlogArticle, loc locale.Resolved, withContent bool) (dto.BlogArticle, bool) {
	t, ok := pick(m, a.Translations, loc, "blog_article")
	if !ok {
		return dto.BlogArticle{}, false
	}

	out := dto.BlogArticle{
		ID:          a.ID,
		Category:    a.Category,
		Image:       m.url(a.Image),
		Title:       t.Title,
		Excerpt:     t.Excerpt,
		Slug:        t.Slug,
		Tags:        []string{},
		PublishedAt: a.PublishedAt,
	}
	if withContent {
		out.Content = t.Content
	}

	if len(t.Tags) > 0 {
		var tags []string
		if err := json.Unmarshal(t.Tags, &tags); err == nil {
			for _, tag := range tags {
				if tag = strings.TrimSpace(tag); tag != "" {
					out.Tags = append(out.Tags, tag)
				}
			}
		}
	}
	return out, true
}
