package models

import (
	"time"

	"gorm.io/datatypes"
)

type FAQ struct {
	ID           uint             `gorm:"primaryKey" json:"id"`
	Category     string           `gorm:"size:50;index" json:"category"`
	DisplayOrder int              `gorm:"default:0" json:"display_order"`
	IsActive     bool             `gorm:"default:true" json:"is_active"`
	Translations []FAQTranslation `gorm:"foreignKey:FAQID" json:"translations,omitempty"`
	CreatedAt    time.Time        `json:"created_at"`
}

func (FAQ) TableName() string {
	return "faqs"
}

type FAQTranslation struct {
	ID       uint   `gorm:"primaryKey" json:"id"`
	FAQID    uint   `gorm:"not null;uniqueIndex:idx_faq_translation_locale" json:"faq_id"`
	Locale   string `gorm:"size:8;not null;uniqueIndex:idx_faq_translation_locale" json:"locale"`
	Question string `gorm:"type:text;not null" json:"question"`
	Answer   string `gorm:"type:text;not null" json:"answer"`
}

func (FAQTranslation) TableName() string {
	return "faq_translations"
}

func (t FAQTranslation) GetLocale() string { return t.Locale }

type Review struct {
	ID           uint                `gorm:"primaryKey" json:"id"`
	UniversityID *uint               `gorm:"index" json:"university_id"`
	Rating       int                 `gorm:"not null;default:5" json:"rating"`
	AuthorImage  string              `json:"author_image"`
	IsPublished  bool                `gorm:"default:false;index" json:"is_published"`
	Translations []ReviewTranslation `gorm:"foreignKey:ReviewID" json:"translations,omitempty"`
	CreatedAt    time.Time           `gorm:"index" json:"created_at"`
}

func (Review) TableName() string {
	return "reviews"
}

type ReviewTranslation struct {
	ID         uint   `gorm:"primaryKey" json:"id"`
	ReviewID   uint   `gorm:"not null;uniqueIndex:idx_review_translation_locale" json:"review_id"`
	Locale     string `gorm:"size:8;not null;uniqueIndex:idx_review_translation_locale" json:"locale"`
	AuthorName string `json:"author_name"`
	AuthorRole string `json:"author_role"`
	Text       string `gorm:"type:text" json:"text"`
}

func (ReviewTranslation) TableName() string {
	return "review_translations"
}

func (t ReviewTranslation) GetLocale() string { return t.Locale }

type BlogArticle struct {
	ID           uint                     `gorm:"primaryKey" json:"id"`
	Category     string                   `gorm:"size:50;index" json:"category"`
	Image        string                   `json:"image"`
	IsPublished  bool                     `gorm:"default:false;index" json:"is_published"`
	PublishedAt  *time.Time               `gorm:"index" json:"published_at"`
	Translations []BlogArticleTranslation `gorm:"foreignKey:ArticleID" json:"translations,omitempty"`
	CreatedAt    time.Time                `json:"created_at"`
	UpdatedAt    time.Time                `json:"updated_at"`
}

func (BlogArticle) TableName() string {
	return "blog_articles"
}

type BlogArticleTranslation struct {
	ID        uint           `gorm:"primaryKey" json:"id"`
	ArticleID uint           `gorm:"not null;uniqueIndex:idx_article_translation_locale" json:"article_id"`
	Locale    string         `gorm:"size:8;not null;uniqueIndex:idx_article_translation_locale;uniqueIndex:idx_article_translation_slug" json:"locale"`
	Title     string         `gorm:"not null" json:"title"`
	Excerpt   string         `gorm:"type:text" json:"excerpt"`
	Content   string         `gorm:"type:text" json:"content"`
	Slug      string         `gorm:"not null;uniqueIndex:idx_article_translation_slug" json:"slug"`
	Tags      datatypes.JSON `gorm:"type:jsonb" json:"tags,omitempty"`
}

func (BlogArticleTranslation) TableName() string {
	return "blog_article_translations"
}

func (t BlogArticleTranslation) GetLocale() string { return t.Locale }
func (t BlogArticleTranslation) GetSlug() string { return t.Slug }

// ApplicationRequest is a lead submitted from one of the site forms.
type ApplicationRequest struct {
	ID           string    `gorm:"primaryKey;size:36" json:"id"`
	Name         string    `gorm:"not null" json:"name"`
	Phone        string    `gorm:"not null" json:"phone"`
	Email        string    `json:"email"`
	UniversityID *uint     `gorm:"index" json:"university_id"`
	Program      string    `json:"program"`
	Level        string    `json:"level"`
	Message      string    `gorm:"type:text" json:"message"`
	Source       string    `gorm:"size:50" json:"source"`
	Locale       string    `gorm:"size:8" json:"locale"`
	CreatedAt    time.Time `gorm:"index" json:"created_at"`
}

func (ApplicationRequest) TableName() string {
	return "application_requests"
}
