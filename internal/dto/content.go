package dto

import "time"

type FAQ struct {
	ID       uint   `json:"id"`
	Category string `json:"category"`
	Question string `json:"question"`
	Answer   string `json:"answer"`
}

type Review struct {
	ID           uint      `json:"id"`
	UniversityID *uint     `json:"university_id"`
	Rating       int       `json:"rating"`
	AuthorName   string    `json:"author_name"`
	AuthorRole   string    `json:"author_role"`
	AuthorImage  string    `json:"author_image"`
	Text         string    `json:"text"`
	CreatedAt    time.Time `json:"created_at"`
}

type BlogArticle struct {
	ID          uint       `json:"id"`
	Category    string     `json:"category"`
	Image       string     `json:"image"`
	Title       string     `json:"title"`
	Excerpt     string     `json:"excerpt"`
	Content     string     `json:"content,omitempty"`
	Slug        string     `json:"slug"`
	Tags        []string   `json:"tags"`
	PublishedAt *time.Time `json:"published_at"`
}

// Page is a slice of results plus the total matching count.
type Page[T any] struct {
	Data  []T   `json:"data"`
	Total int64 `json:"total"`
	Page  int   `json:"page"`
	Limit int   `json:"limit"`
}
