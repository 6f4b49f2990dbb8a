package models

type Country struct {
	ID           uint                 `gorm:"primaryKey" json:"id"`
	Code         string               `gorm:"uniqueIndex;not null;size:2" json:"code"`
	Translations []CountryTranslation `gorm:"foreignKey:CountryID" json:"translations,omitempty"`
}

func (Country) TableName() string {
	return "countries"
}

type CountryTranslation struct {
	ID        uint   `gorm:"primaryKey" json:"id"`
	CountryID uint   `gorm:"not null;uniqueIndex:idx_country_translation_locale" json:"country_id"`
	Locale    string `gorm:"size:8;not null;uniqueIndex:idx_country_translation_locale" json:"locale"`
	Name      string `gorm:"not null" json:"name"`
}

func (CountryTranslation) TableName() string {
	return "country_translations"
}

func (t CountryTranslation) GetLocale() string { return t.Locale }

type City struct {
	ID           uint              `gorm:"primaryKey" json:"id"`
	CountryID    *uint             `gorm:"index" json:"country_id"`
	Country      *Country          `gorm:"foreignKey:CountryID" json:"country,omitempty"`
	Translations []CityTranslation `gorm:"foreignKey:CityID" json:"translations,omitempty"`
}

func (City) TableName() string {
	return "cities"
}

type CityTranslation struct {
	ID     uint   `gorm:"primaryKey" json:"id"`
	CityID uint   `gorm:"not null;uniqueIndex:idx_city_translation_locale" json:"city_id"`
	Locale string `gorm:"size:8;not null;uniqueIndex:idx_city_translation_locale" json:"locale"`
	Name   string `gorm:"not null;index" json:"name"`
}

func (CityTranslation) TableName() string {
	return "city_translations"
}

func (t CityTranslation) GetLocale() string { return t.Locale }
