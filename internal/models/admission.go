package models

import "time"

type AdmissionRequirement struct {
	ID           uint                              `gorm:"primaryKey" json:"id"`
	UniversityID uint                              `gorm:"not null;index" json:"university_id"`
	DisplayOrder int                               `gorm:"default:0" json:"display_order"`
	Translations []AdmissionRequirementTranslation `gorm:"foreignKey:RequirementID" json:"translations,omitempty"`
}

func (AdmissionRequirement) TableName() string {
	return "admission_requirements"
}

type AdmissionRequirementTranslation struct {
	ID            uint   `gorm:"primaryKey" json:"id"`
	RequirementID uint   `gorm:"not null;uniqueIndex:idx_requirement_translation_locale" json:"requirement_id"`
	Locale        string `gorm:"size:8;not null;uniqueIndex:idx_requirement_translation_locale" json:"locale"`
	Category      string `json:"category"`
	Requirement   string `gorm:"type:text" json:"requirement"`
	Details       string `gorm:"type:text" json:"details"`
}

func (AdmissionRequirementTranslation) TableName() string {
	return "admission_requirement_translations"
}

func (t AdmissionRequirementTranslation) GetLocale() string { return t.Locale }

type RequiredDocument struct {
	ID           uint                          `gorm:"primaryKey" json:"id"`
	UniversityID uint                          `gorm:"not null;index" json:"university_id"`
	IsRequired   bool                          `gorm:"default:true" json:"is_required"`
	DisplayOrder int                           `gorm:"default:0" json:"display_order"`
	Translations []RequiredDocumentTranslation `gorm:"foreignKey:DocumentID" json:"translations,omitempty"`
}

func (RequiredDocument) TableName() string {
	return "required_documents"
}

type RequiredDocumentTranslation struct {
	ID          uint   `gorm:"primaryKey" json:"id"`
	DocumentID  uint   `gorm:"not null;uniqueIndex:idx_document_translation_locale" json:"document_id"`
	Locale      string `gorm:"size:8;not null;uniqueIndex:idx_document_translation_locale" json:"locale"`
	Name        string `json:"name"`
	Description string `gorm:"type:text" json:"description"`
	Format      string `json:"format"`
}

func (RequiredDocumentTranslation) TableName() string {
	return "required_document_translations"
}

func (t RequiredDocumentTranslation) GetLocale() string { return t.Locale }

type ImportantDateType string

const (
	DateTypeDeadline     ImportantDateType = "deadline"
	DateTypeEvent        ImportantDateType = "event"
	DateTypeExam         ImportantDateType = "exam"
	DateTypeNotification ImportantDateType = "notification"
)

type ImportantDate struct {
	ID           uint                       `gorm:"primaryKey" json:"id"`
	UniversityID uint                       `gorm:"not null;index" json:"university_id"`
	Date         time.Time                  `gorm:"not null;index" json:"date"`
	Type         ImportantDateType          `gorm:"type:varchar(20);not null" json:"type"`
	Translations []ImportantDateTranslation `gorm:"foreignKey:DateID" json:"translations,omitempty"`
}

func (ImportantDate) TableName() string {
	return "important_dates"
}

type ImportantDateTranslation struct {
	ID     uint   `gorm:"primaryKey" json:"id"`
	DateID uint   `gorm:"not null;uniqueIndex:idx_date_translation_locale" json:"date_id"`
	Locale string `gorm:"size:8;not null;uniqueIndex:idx_date_translation_locale" json:"locale"`
	Event  string `json:"event"`
}

func (ImportantDateTranslation) TableName() string {
	return "important_date_translations"
}

func (t ImportantDateTranslation) GetLocale() string { return t.Locale }

type Scholarship struct {
	ID              uint                     `gorm:"primaryKey" json:"id"`
	UniversityID    uint                     `gorm:"not null;index" json:"university_id"`
	CoveragePercent *int                     `json:"coverage_percent"`
	Amount          *float64                 `gorm:"type:numeric(12,2)" json:"amount"`
	Currency        string                   `gorm:"size:8" json:"currency"`
	Translations    []ScholarshipTranslation `gorm:"foreignKey:ScholarshipID" json:"translations,omitempty"`
}

func (Scholarship) TableName() string {
	return "scholarships"
}

type ScholarshipTranslation struct {
	ID            uint   `gorm:"primaryKey" json:"id"`
	ScholarshipID uint   `gorm:"not null;uniqueIndex:idx_scholarship_translation_locale" json:"scholarship_id"`
	Locale        string `gorm:"size:8;not null;uniqueIndex:idx_scholarship_translation_locale" json:"locale"`
	Name          string `json:"name"`
	Description   string `gorm:"type:text" json:"description"`
	Eligibility   string `gorm:"type:text" json:"eligibility"`
}

func (ScholarshipTranslation) TableName() string {
	return "scholarship_translations"
}

func (t ScholarshipTranslation) GetLocale() string { return t.Locale }
