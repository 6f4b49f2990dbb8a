package models

type CampusFacility struct {
	ID           uint                        `gorm:"primaryKey" json:"id"`
	UniversityID uint                        `gorm:"not null;index" json:"university_id"`
	Icon         string                      `json:"icon"`
	Image        string                      `json:"image"`
	IsActive     bool                        `gorm:"default:true" json:"is_active"`
	DisplayOrder int                         `gorm:"default:0" json:"display_order"`
	Translations []CampusFacilityTranslation `gorm:"foreignKey:FacilityID" json:"translations,omitempty"`
}

func (CampusFacility) TableName() string {
	return "campus_facilities"
}

type CampusFacilityTranslation struct {
	ID          uint   `gorm:"primaryKey" json:"id"`
	FacilityID  uint   `gorm:"not null;uniqueIndex:idx_facility_translation_locale" json:"facility_id"`
	Locale      string `gorm:"size:8;not null;uniqueIndex:idx_facility_translation_locale" json:"locale"`
	Name        string `json:"name"`
	Description string `gorm:"type:text" json:"description"`
}

func (CampusFacilityTranslation) TableName() string {
	return "campus_facility_translations"
}

func (t CampusFacilityTranslation) GetLocale() string { return t.Locale }

type MediaType string

const (
	MediaTypeImage MediaType = "image"
	MediaTypeVideo MediaType = "video"
)

type UniversityMedia struct {
	ID           uint                         `gorm:"primaryKey" json:"id"`
	UniversityID uint                         `gorm:"not null;index" json:"university_id"`
	Type         MediaType                    `gorm:"type:varchar(20);not null" json:"type"`
	URL          string                       `gorm:"not null" json:"url"`
	ThumbnailURL string                       `json:"thumbnail_url"`
	DisplayOrder int                          `gorm:"default:0" json:"display_order"`
	Translations []UniversityMediaTranslation `gorm:"foreignKey:MediaID" json:"translations,omitempty"`
}

func (UniversityMedia) TableName() string {
	return "university_media"
}

type UniversityMediaTranslation struct {
	ID      uint   `gorm:"primaryKey" json:"id"`
	MediaID uint   `gorm:"not null;uniqueIndex:idx_media_translation_locale" json:"media_id"`
	Locale  string `gorm:"size:8;not null;uniqueIndex:idx_media_translation_locale" json:"locale"`
	Alt     string `json:"alt"`
	Title   string `json:"title"`
}

func (UniversityMediaTranslation) TableName() string {
	return "university_media_translations"
}

func (t UniversityMediaTranslation) GetLocale() string { return t.Locale }
