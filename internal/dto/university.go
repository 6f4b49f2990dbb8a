package dto

type Badge struct {
	Label string `json:"label"`
	Color string `json:"color"`
}

type TuitionRange struct {
	Min      *float64 `json:"min"`
	Max      *float64 `json:"max"`
	Currency string   `json:"currency"`
}

// University is the list-view shape of a university.
type University struct {
	ID                    uint         `json:"id"`
	Title                 string       `json:"title"`
	Description           string       `json:"description"`
	Slug                  string       `json:"slug"`
	City                  string       `json:"city"`
	Country               string       `json:"country"`
	FoundedYear           *int         `json:"founded_year"`
	Type                  string       `json:"type"`
	Tuition               TuitionRange `json:"tuition"`
	TotalStudents         *int         `json:"total_students"`
	InternationalStudents *int         `json:"international_students"`
	HasAccommodation      bool         `json:"has_accommodation"`
	HasScholarships       bool         `json:"has_scholarships"`
	Image                 string       `json:"image"`
	HeroImage             string       `json:"hero_image"`
	Languages             []string     `json:"languages"`
	Levels                []string     `json:"levels"`
	ProgramsCount         int          `json:"programs_count"`
	Badge                 *Badge       `json:"badge"`
}

type UniversityDetail struct {
	University
	KeyInfo        KeyInfo           `json:"key_info"`
	About          About             `json:"about"`
	CampusLife     CampusLife        `json:"campus_life"`
	StrongPrograms []ProgramCategory `json:"strong_programs"`
	Directions     []Direction       `json:"directions"`
	Admission      Admission         `json:"admission"`
	Programs       []Program         `json:"programs"`
}

type KeyInfo struct {
	FoundedYear           *int              `json:"founded_year"`
	Type                  string            `json:"type"`
	City                  string            `json:"city"`
	Country               string            `json:"country"`
	TotalStudents         *int              `json:"total_students"`
	InternationalStudents *int              `json:"international_students"`
	HasAccommodation      bool              `json:"has_accommodation"`
	Tuition               TuitionRange      `json:"tuition"`
	Languages             []string          `json:"languages"`
	Texts                 map[string]string `json:"texts"`
}

type Advantage struct {
	Title       string `json:"title"`
	Description string `json:"description"`
}

type About struct {
	History        string      `json:"history"`
	Mission        string      `json:"mission"`
	CampusFeatures []string    `json:"campus_features"`
	Advantages     []Advantage `json:"advantages"`
}

type Facility struct {
	ID          uint   `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
	Icon        string `json:"icon"`
	Image       string `json:"image"`
}

type GalleryItem struct {
	ID        uint   `json:"id"`
	URL       string `json:"url"`
	Thumbnail string `json:"thumbnail"`
	Alt       string `json:"alt"`
	Title     string `json:"title"`
}

type Activity struct {
	Key  string `json:"key"`
	Icon string `json:"icon"`
}

type CampusLife struct {
	Facilities []Facility    `json:"facilities"`
	Gallery    []GalleryItem `json:"gallery"`
	Activities []Activity    `json:"activities"`
}

type ProgramCategory struct {
	Category string   `json:"category"`
	Programs []string `json:"programs"`
}

type Program struct {
	ID             uint     `json:"id"`
	Name           string   `json:"name"`
	Description    string   `json:"description"`
	DegreeType     string   `json:"degree_type"`
	Language       string   `json:"language"`
	DurationYears  *float64 `json:"duration_years"`
	TuitionPerYear *float64 `json:"tuition_per_year"`
}

type Requirement struct {
	Category    string `json:"category"`
	Requirement string `json:"requirement"`
	Details     string `json:"details"`
}

type Document struct {
	Name        string `json:"name"`
	Description string `json:"description"`
	Format      string `json:"format"`
	IsRequired  bool   `json:"is_required"`
}

// DeadlineType is the display flavor of an important date.
type DeadlineType string

const (
	DeadlineUrgent DeadlineType = "deadline"
	DeadlineEvent  DeadlineType = "event"
	DeadlineExam   DeadlineType = "exam"
	DeadlineInfo   DeadlineType = "info"
)

type Deadline struct {
	Event string       `json:"event"`
	Date  string       `json:"date"`
	Type  DeadlineType `json:"type"`
}

type Scholarship struct {
	Name            string   `json:"name"`
	Description     string   `json:"description"`
	Eligibility     string   `json:"eligibility"`
	CoveragePercent *int     `json:"coverage_percent"`
	Amount          *float64 `json:"amount"`
	Currency        string   `json:"currency"`
}

type Admission struct {
	Requirements []Requirement `json:"requirements"`
	Documents    []Document    `json:"documents"`
	Deadlines    []Deadline    `json:"deadlines"`
	Scholarships []Scholarship `json:"scholarships"`
}

type Direction struct {
	ID                uint     `json:"id"`
	Code              string   `json:"code"`
	Name              string   `json:"name"`
	Slug              string   `json:"slug"`
	Description       string   `json:"description"`
	DurationYears     *float64 `json:"duration_years,omitempty"`
	CostPerYear       *float64 `json:"cost_per_year,omitempty"`
	UniversitiesCount int64    `json:"universities_count"`
}

// UniversityFilters lists every facet value present in the catalog.
type UniversityFilters struct {
	Cities     []string   `json:"cities"`
	Types      []string   `json:"types"`
	Levels     []string   `json:"levels"`
	Languages  []string   `json:"languages"`
	PriceRange [2]float64 `json:"price_range"`
}

type UniversityList struct {
	Data    []University      `json:"data"`
	Total   int64             `json:"total"`
	Page    int               `json:"page"`
	Limit   int               `json:"limit"`
	Filters UniversityFilters `json:"filters"`
}

type DirectionList struct {
	Data  []Direction `json:"data"`
	Total int64       `json:"total"`
	Page  int         `json:"page"`
	Limit int         `json:"limit"`
}
