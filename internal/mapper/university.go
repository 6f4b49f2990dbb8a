package mapper

import (
	"sort"
	"strings"

	"edu-turkish-backend/internal/dto"
	"edu-turkish-backend/internal/locale"
	"edu-turkish-backend/internal/models"
)

const (
	BadgeColorGreen  = "green"
	BadgeColorPurple = "purple"
)

var scholarshipBadge = map[string]string{
	locale.Russian: "Гранты",
	locale.English: "Scholarships",
	locale.Kazakh:  "Гранттар",
	locale.Turkish: "Burslar",
}

var technicalBadge = map[string]string{
	locale.Russian: "Технический",
	locale.English: "Technical",
	locale.Kazakh:  "Техникалық",
	locale.Turkish: "Teknik",
}

// ToUniversity maps a list aggregate. Scholarships are not loaded for lists,
// so only the technical badge can appear here.
func (m *Mapper) ToUniversity(u models.University, loc locale.Resolved) dto.University {
	out := m.base(u, loc)
	out.Badge = badge(u, loc, false)
	return out
}

func (m *Mapper) ToUniversities(rows []models.University, loc locale.Resolved) []dto.University {
	out := make([]dto.University, 0, len(rows))
	for _, u := range rows {
		out = append(out, m.ToUniversity(u, loc))
	}
	return out
}

func (m *Mapper) base(u models.University, loc locale.Resolved) dto.University {
	out := dto.University{
		ID:                    u.ID,
		FoundedYear:           u.FoundedYear,
		Type:                  string(u.Type),
		Tuition:               dto.TuitionRange{Min: u.TuitionMin, Max: u.TuitionMax, Currency: u.Currency},
		TotalStudents:         u.TotalStudents,
		InternationalStudents: u.InternationalStudents,
		HasAccommodation:      u.HasAccommodation,
		HasScholarships:       u.HasScholarships,
		Image:                 m.url(u.Image),
		HeroImage:             m.url(u.HeroImage),
		Languages:             programLanguages(u.Programs),
		Levels:                programLevels(u.Programs),
		ProgramsCount:         len(u.Programs),
	}

	if t, ok := pick(m, u.Translations, loc, "university"); ok {
		out.Title = t.Title
		out.Description = t.Description
	}
	if slug, ok := locale.SelectSlug(u.Translations, loc); ok {
		out.Slug = slug
	}

	out.City = m.cityName(u.City, loc)
	out.Country = m.countryName(u.Country, loc)
	if out.Country == "" && u.City != nil {
		out.Country = m.countryName(u.City.Country, loc)
	}

	return out
}

func (m *Mapper) cityName(c *models.City, loc locale.Resolved) string {
	if c == nil {
		return ""
	}
	if t, ok := pick(m, c.Translations, loc, "city"); ok {
		return t.Name
	}
	return ""
}

func (m *Mapper) countryName(c *models.Country, loc locale.Resolved) string {
	if c == nil {
		return ""
	}
	if t, ok := pick(m, c.Translations, loc, "country"); ok {
		return t.Name
	}
	return ""
}

// badge applies the display rule: scholarships win over the technical type.
func badge(u models.University, loc locale.Resolved, withScholarships bool) *dto.Badge {
	if withScholarships && len(u.Scholarships) > 0 {
		return &dto.Badge{Label: text(scholarshipBadge, loc), Color: BadgeColorGreen}
	}
	if u.Type == models.UniversityTypeTech {
		return &dto.Badge{Label: text(technicalBadge, loc), Color: BadgeColorPurple}
	}
	return nil
}

func programLanguages(programs []models.AcademicProgram) []string {
	seen := make(map[string]struct{}, len(programs))
	out := make([]string, 0, len(programs))
	for _, p := range programs {
		code := strings.ToLower(strings.TrimSpace(p.LanguageCode))
		if code == "" {
			continue
		}
		if _, ok := seen[code]; ok {
			continue
		}
		seen[code] = struct{}{}
		out = append(out, code)
	}
	sort.Strings(out)
	return out
}

var degreeOrder = map[models.DegreeType]int{
	models.DegreeBachelor: 0,
	models.DegreeMaster:   1,
	models.DegreePhD:      2,
}

func programLevels(programs []models.AcademicProgram) []string {
	seen := make(map[models.DegreeType]struct{}, 3)
	levels := make([]models.DegreeType, 0, 3)
	for _, p := range programs {
		if p.DegreeType == "" {
			continue
		}
		if _, ok := seen[p.DegreeType]; ok {
			continue
		}
		seen[p.DegreeType] = struct{}{}
		levels = append(levels, p.DegreeType)
	}
	sort.SliceStable(levels, func(i, j int) bool {
		oi, iok := degreeOrder[levels[i]]
		oj, jok := degreeOrder[levels[j]]
		if iok != jok {
			return iok
		}
		if oi != oj {
			return oi < oj
		}
		return levels[i] < levels[j]
	})

	out := make([]string, len(levels))
	for i, l := range levels {
		out[i] = string(l)
	}
	return out
}
