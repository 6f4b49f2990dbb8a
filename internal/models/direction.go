package models

import "time"

// StudyDirection is a catalog-wide subject area such as "computer-science".
type StudyDirection struct {
	ID           uint                        `gorm:"primaryKey" json:"id"`
	Code         string                      `gorm:"uniqueIndex;not null;size:100" json:"code"`
	Translations []StudyDirectionTranslation `gorm:"foreignKey:DirectionID" json:"translations,omitempty"`
	CreatedAt    time.Time                   `json:"created_at"`
	UpdatedAt    time.Time                   `json:"updated_at"`
}

func (StudyDirection) TableName() string {
	return "study_directions"
}

type StudyDirectionTranslation struct {
	ID          uint   `gorm:"primaryKey" json:"id"`
	DirectionID uint   `gorm:"not null;uniqueIndex:idx_direction_translation_locale" json:"direction_id"`
	Locale      string `gorm:"size:8;not null;uniqueIndex:idx_direction_translation_locale;uniqueIndex:idx_direction_translation_slug" json:"locale"`
	Name        string `gorm:"not null" json:"name"`
	Description string `gorm:"type:text" json:"description"`
	Slug        string `gorm:"not null;uniqueIndex:idx_direction_translation_slug" json:"slug"`
}

func (StudyDirectionTranslation) TableName() string {
	return "study_direction_translations"
}

func (t StudyDirectionTranslation) GetLocale() string { return t.Locale }
func (t StudyDirectionTranslation) GetSlug() string { return t.Slug }

// UniversityStudyDirection links a university to a direction, optionally
// overriding duration and cost for that university.
type UniversityStudyDirection struct {
	ID            uint            `gorm:"primaryKey" json:"id"`
	UniversityID  uint            `gorm:"not null;uniqueIndex:idx_university_direction" json:"university_id"`
	DirectionID   uint            `gorm:"not null;uniqueIndex:idx_university_direction;index" json:"direction_id"`
	Direction     *StudyDirection `gorm:"foreignKey:DirectionID" json:"direction,omitempty"`
	DurationYears *float64        `json:"duration_years"`
	CostPerYear   *float64        `gorm:"type:numeric(12,2)" json:"cost_per_year"`
}

func (UniversityStudyDirection) TableName() string {
	return "university_study_directions"
}
