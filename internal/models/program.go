package models

import "time"

type DegreeType string

const (
	DegreeBachelor DegreeType = "bachelor"
	DegreeMaster   DegreeType = "master"
	DegreePhD      DegreeType = "phd"
)

type AcademicProgram struct {
	ID             uint                 `gorm:"primaryKey" json:"id"`
	UniversityID   uint                 `gorm:"not null;index" json:"university_id"`
	DegreeType     DegreeType           `gorm:"type:varchar(20);not null;index" json:"degree_type"`
	LanguageCode   string               `gorm:"size:8;not null;index" json:"language_code"`
	DurationYears  *float64             `json:"duration_years"`
	TuitionPerYear *float64             `gorm:"type:numeric(12,2)" json:"tuition_per_year"`
	Translations   []ProgramTranslation `gorm:"foreignKey:ProgramID" json:"translations,omitempty"`
	CreatedAt      time.Time            `json:"created_at"`
	UpdatedAt      time.Time            `json:"updated_at"`
}

func (AcademicProgram) TableName() string {
	return "academic_programs"
}

type ProgramTranslation struct {
	ID          uint   `gorm:"primaryKey" json:"id"`
	ProgramID   uint   `gorm:"not null;uniqueIndex:idx_program_translation_locale" json:"program_id"`
	Locale      string `gorm:"size:8;not null;uniqueIndex:idx_program_translation_locale" json:"locale"`
	Name        string `gorm:"not null" json:"name"`
	Description string `gorm:"type:text" json:"description"`
}

func (ProgramTranslation) TableName() string {
	return "program_translations"
}

func (t ProgramTranslation) GetLocale() string { return t.Locale }

// FeaturedProgram puts one of the university's programs into a display category.
type FeaturedProgram struct {
	ID           uint                         `gorm:"primaryKey" json:"id"`
	UniversityID uint                         `gorm:"not null;index" json:"university_id"`
	ProgramID    uint                         `gorm:"not null;index" json:"program_id"`
	Program      *AcademicProgram             `gorm:"foreignKey:ProgramID" json:"program,omitempty"`
	DisplayOrder int                          `gorm:"default:0" json:"display_order"`
	Translations []FeaturedProgramTranslation `gorm:"foreignKey:FeaturedProgramID" json:"translations,omitempty"`
}

func (FeaturedProgram) TableName() string {
	return "featured_programs"
}

type FeaturedProgramTranslation struct {
	ID                uint   `gorm:"primaryKey" json:"id"`
	FeaturedProgramID uint   `gorm:"not null;uniqueIndex:idx_featured_translation_locale" json:"featured_program_id"`
	Locale            string `gorm:"size:8;not null;uniqueIndex:idx_featured_translation_locale" json:"locale"`
	CategoryLabel     string `json:"category_label"`
}

func (FeaturedProgramTranslation) TableName() string {
	return "featured_program_translations"
}

func (t FeaturedProgramTranslation) GetLocale() string { return t.Locale }
