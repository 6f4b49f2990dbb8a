package models

import (
	"time"

	"gorm.io/datatypes"
)

type UniversityType string

const (
	UniversityTypeState   UniversityType = "state"
	UniversityTypePrivate UniversityType = "private"
	UniversityTypeTech    UniversityType = "tech"
	UniversityTypeElite   UniversityType = "elite"
)

type University struct {
	ID                    uint           `gorm:"primaryKey" json:"id"`
	FoundedYear           *int           `json:"founded_year"`
	Type                  UniversityType `gorm:"type:varchar(20);not null;index" json:"type"`
	TuitionMin            *float64       `gorm:"type:numeric(12,2);index" json:"tuition_min"`
	TuitionMax            *float64       `gorm:"type:numeric(12,2);index" json:"tuition_max"`
	Currency              string         `gorm:"size:8;default:USD" json:"currency"`
	TotalStudents         *int           `json:"total_students"`
	InternationalStudents *int           `json:"international_students"`
	HasAccommodation      bool           `gorm:"default:false" json:"has_accommodation"`
	HasScholarships       bool           `gorm:"default:false" json:"has_scholarships"`
	HeroImage             string         `json:"hero_image"`
	Image                 string         `json:"image"`
	Website               string         `json:"website"`
	CityID                *uint          `gorm:"index" json:"city_id"`
	City                  *City          `gorm:"foreignKey:CityID" json:"city,omitempty"`
	CountryID             *uint          `gorm:"index" json:"country_id"`
	Country               *Country       `gorm:"foreignKey:CountryID" json:"country,omitempty"`

	Translations         []UniversityTranslation    `gorm:"foreignKey:UniversityID" json:"translations,omitempty"`
	Programs             []AcademicProgram          `gorm:"foreignKey:UniversityID" json:"programs,omitempty"`
	FeaturedPrograms     []FeaturedProgram          `gorm:"foreignKey:UniversityID" json:"featured_programs,omitempty"`
	Facilities           []CampusFacility           `gorm:"foreignKey:UniversityID" json:"facilities,omitempty"`
	Requirements         []AdmissionRequirement     `gorm:"foreignKey:UniversityID" json:"requirements,omitempty"`
	Documents            []RequiredDocument         `gorm:"foreignKey:UniversityID" json:"documents,omitempty"`
	ImportantDates       []ImportantDate            `gorm:"foreignKey:UniversityID" json:"important_dates,omitempty"`
	Scholarships         []Scholarship              `gorm:"foreignKey:UniversityID" json:"scholarships,omitempty"`
	StudyDirections      []UniversityStudyDirection `gorm:"foreignKey:UniversityID" json:"study_directions,omitempty"`
	Media                []UniversityMedia          `gorm:"foreignKey:UniversityID" json:"media,omitempty"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (University) TableName() string {
	return "universities"
}

// UniversityTranslation holds the locale-specific copy of a university.
// About and KeyInfoTexts are free-form JSON authored by the import scripts.
type UniversityTranslation struct {
	ID           uint           `gorm:"primaryKey" json:"id"`
	UniversityID uint           `gorm:"not null;uniqueIndex:idx_university_translation_locale" json:"university_id"`
	Locale       string         `gorm:"size:8;not null;uniqueIndex:idx_university_translation_locale;uniqueIndex:idx_university_translation_slug" json:"locale"`
	Title        string         `gorm:"not null" json:"title"`
	Description  string         `gorm:"type:text" json:"description"`
	Slug         string         `gorm:"not null;uniqueIndex:idx_university_translation_slug" json:"slug"`
	About        datatypes.JSON `gorm:"type:jsonb" json:"about,omitempty"`
	KeyInfoTexts datatypes.JSON `gorm:"type:jsonb" json:"key_info_texts,omitempty"`
	CreatedAt    time.Time      `json:"created_at"`
	UpdatedAt    time.Time      `json:"updated_at"`
}

func (UniversityTranslation) TableName() string {
	return "university_translations"
}

func (t UniversityTranslation) GetLocale() string { return t.Locale }
func (t UniversityTranslation) GetSlug() string { return t.Slug }
