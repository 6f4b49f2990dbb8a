package mapper

import (
	"encoding/json"
	"sort"
	"strconv"
	"strings"
	"time"

	"edu-turkish-backend/internal/dto"
	"edu-turkish-backend/internal/locale"
	"edu-turkish-backend/internal/models"

	"gorm.io/datatypes"
)

// Placeholder activities shown on every campus page until activities get
// their own table.
var campusActivities = []dto.Activity{
	{Key: "sports", Icon: "dumbbell"},
	{Key: "clubs", Icon: "users"},
	{Key: "culture", Icon: "music"},
	{Key: "excursions", Icon: "map"},
}

// ToUniversityDetail maps a fully loaded aggregate into the detail view.
func (m *Mapper) ToUniversityDetail(u models.University, loc locale.Resolved) dto.UniversityDetail {
	base := m.base(u, loc)
	base.Badge = badge(u, loc, true)

	var about, keyTexts datatypes.JSON
	if t, ok := locale.Select(u.Translations, loc); ok {
		about = t.About
		keyTexts = t.KeyInfoTexts
	}

	return dto.UniversityDetail{
		University: base,
		KeyInfo: dto.KeyInfo{
			FoundedYear:           base.FoundedYear,
			Type:                  base.Type,
			City:                  base.City,
			Country:               base.Country,
			TotalStudents:         base.TotalStudents,
			InternationalStudents: base.InternationalStudents,
			HasAccommodation:      base.HasAccommodation,
			Tuition:               base.Tuition,
			Languages:             base.Languages,
			Texts:                 parseKeyInfoTexts(keyTexts),
		},
		About:          parseAbout(about),
		CampusLife:     m.campusLife(u, loc),
		StrongPrograms: m.strongPrograms(u, loc),
		Directions:     m.universityDirections(u.StudyDirections, loc),
		Admission:      m.admission(u, loc),
		Programs:       m.programs(u.Programs, loc),
	}
}

// parseKeyInfoTexts keeps scalar entries only. Nested values are dropped.
func parseKeyInfoTexts(raw datatypes.JSON) map[string]string {
	out := make(map[string]string)
	if len(raw) == 0 {
		return out
	}

	var values map[string]any
	if err := json.Unmarshal(raw, &values); err != nil {
		return out
	}
	for k, v := range values {
		switch val := v.(type) {
		case string:
			out[k] = val
		case float64:
			out[k] = strconv.FormatFloat(val, 'f', -1, 64)
		case bool:
			out[k] = strconv.FormatBool(val)
		}
	}
	return out
}

type aboutPayload struct {
	History             string            `json:"history"`
	Mission             string            `json:"mission"`
	CampusFeatures      []string          `json:"campusFeatures"`
	CampusFeaturesSnake []string          `json:"campus_features"`
	Advantages          []json.RawMessage `json:"advantages"`
}

func parseAbout(raw datatypes.JSON) dto.About {
	out := dto.About{CampusFeatures: []string{}, Advantages: []dto.Advantage{}}
	if len(raw) == 0 {
		return out
	}

	var p aboutPayload
	if err := json.Unmarshal(raw, &p); err != nil {
		return out
	}

	out.History = p.History
	out.Mission = p.Mission
	features := p.CampusFeatures
	if len(features) == 0 {
		features = p.CampusFeaturesSnake
	}
	for _, f := range features {
		if f = strings.TrimSpace(f); f != "" {
			out.CampusFeatures = append(out.CampusFeatures, f)
		}
	}
	for _, item := range p.Advantages {
		if adv, ok := parseAdvantage(item); ok {
			out.Advantages = append(out.Advantages, adv)
		}
	}
	return out
}

// parseAdvantage accepts either a plain string or a {title, description} object.
func parseAdvantage(raw json.RawMessage) (dto.Advantage, bool) {
	var s string
	if err := json.Unmarshal(raw, &s); err == nil {
		s = strings.TrimSpace(s)
		return dto.Advantage{Title: s}, s != ""
	}

	var obj dto.Advantage
	if err := json.Unmarshal(raw, &obj); err != nil {
		return dto.Advantage{}, false
	}
	obj.Title = strings.TrimSpace(obj.Title)
	obj.Description = strings.TrimSpace(obj.Description)
	return obj, obj.Title != "" || obj.Description != ""
}

func (m *Mapper) campusLife(u models.University, loc locale.Resolved) dto.CampusLife {
	facilities := append([]models.CampusFacility(nil), u.Facilities...)
	sort.SliceStable(facilities, func(i, j int) bool {
		return facilities[i].DisplayOrder < facilities[j].DisplayOrder
	})

	out := dto.CampusLife{
		Facilities: make([]dto.Facility, 0, len(facilities)),
		Gallery:    make([]dto.GalleryItem, 0, len(u.Media)),
		Activities: append([]dto.Activity(nil), campusActivities...),
	}

	for _, f := range facilities {
		if !f.IsActive {
			continue
		}
		item := dto.Facility{ID: f.ID, Icon: f.Icon, Image: m.url(f.Image)}
		if t, ok := pick(m, f.Translations, loc, "facility"); ok {
			item.Name = t.Name
			item.Description = t.Description
		}
		out.Facilities = append(out.Facilities, item)
	}

	media := append([]models.UniversityMedia(nil), u.Media...)
	sort.SliceStable(media, func(i, j int) bool {
		return media[i].DisplayOrder < media[j].DisplayOrder
	})
	for _, md := range media {
		if md.Type != models.MediaTypeImage {
			continue
		}
		item := dto.GalleryItem{ID: md.ID, URL: m.url(md.URL), Thumbnail: m.url(md.ThumbnailURL)}
		if t, ok := pick(m, md.Translations, loc, "media"); ok {
			item.Alt = t.Alt
			item.Title = t.Title
		}
		out.Gallery = append(out.Gallery, item)
	}

	return out
}

func (m *Mapper) universityDirections(links []models.UniversityStudyDirection, loc locale.Resolved) []dto.Direction {
	out := make([]dto.Direction, 0, len(links))
	for _, link := range links {
		if link.Direction == nil {
			continue
		}
		d := m.ToDirection(*link.Direction, loc)
		d.DurationYears = link.DurationYears
		d.CostPerYear = link.CostPerYear
		out = append(out, d)
	}
	return out
}

// ToDirection maps a study direction without university-specific overrides.
func (m *Mapper) ToDirection(d models.StudyDirection, loc locale.Resolved) dto.Direction {
	out := dto.Direction{ID: d.ID, Code: d.Code}
	if t, ok := pick(m, d.Translations, loc, "direction"); ok {
		out.Name = t.Name
		out.Description = t.Description
	}
	if slug, ok := locale.SelectSlug(d.Translations, loc); ok {
		out.Slug = slug
	}
	return out
}

func (m *Mapper) admission(u models.University, loc locale.Resolved) dto.Admission {
	out := dto.Admission{
		Requirements: make([]dto.Requirement, 0, len(u.Requirements)),
		Documents:    make([]dto.Document, 0, len(u.Documents)),
		Deadlines:    make([]dto.Deadline, 0, len(u.ImportantDates)),
		Scholarships: make([]dto.Scholarship, 0, len(u.Scholarships)),
	}

	requirements := append([]models.AdmissionRequirement(nil), u.Requirements...)
	sort.SliceStable(requirements, func(i, j int) bool {
		return requirements[i].DisplayOrder < requirements[j].DisplayOrder
	})
	for _, r := range requirements {
		t, ok := pick(m, r.Translations, loc, "requirement")
		if !ok {
			continue
		}
		out.Requirements = append(out.Requirements, dto.Requirement{
			Category:    t.Category,
			Requirement: t.Requirement,
			Details:     t.Details,
		})
	}

	documents := append([]models.RequiredDocument(nil), u.Documents...)
	sort.SliceStable(documents, func(i, j int) bool {
		return documents[i].DisplayOrder < documents[j].DisplayOrder
	})
	for _, d := range documents {
		t, ok := pick(m, d.Translations, loc, "document")
		if !ok {
			continue
		}
		out.Documents = append(out.Documents, dto.Document{
			Name:        t.Name,
			Description: t.Description,
			Format:      t.Format,
			IsRequired:  d.IsRequired,
		})
	}

	dates := append([]models.ImportantDate(nil), u.ImportantDates...)
	sort.SliceStable(dates, func(i, j int) bool {
		return dates[i].Date.Before(dates[j].Date)
	})
	for _, d := range dates {
		t, ok := pick(m, d.Translations, loc, "important_date")
		if !ok {
			continue
		}
		out.Deadlines = append(out.Deadlines, dto.Deadline{
			Event: t.Event,
			Date:  d.Date.UTC().Format(time.RFC3339),
			Type:  DeadlineType(d.Type),
		})
	}

	for _, s := range u.Scholarships {
		item := dto.Scholarship{
			CoveragePercent: s.CoveragePercent,
			Amount:          s.Amount,
			Currency:        s.Currency,
		}
		if t, ok := pick(m, s.Translations, loc, "scholarship"); ok {
			item.Name = t.Name
			item.Description = t.Description
			item.Eligibility = t.Eligibility
		}
		out.Scholarships = append(out.Scholarships, item)
	}

	return out
}

// DeadlineType maps a stored date type to its display flavor.
func DeadlineType(t models.ImportantDateType) dto.DeadlineType {
	switch t {
	case models.DateTypeDeadline:
		return dto.DeadlineUrgent
	case models.DateTypeEvent:
		return dto.DeadlineEvent
	case models.DateTypeExam:
		return dto.DeadlineExam
	default:
		return dto.DeadlineInfo
	}
}

func (m *Mapper) programs(rows []models.AcademicProgram, loc locale.Resolved) []dto.Program {
	out := make([]dto.Program, 0, len(rows))
	for _, p := range rows {
		item := dto.Program{
			ID:             p.ID,
			DegreeType:     string(p.DegreeType),
			Language:       strings.ToLower(p.LanguageCode),
			DurationYears:  p.DurationYears,
			TuitionPerYear: p.TuitionPerYear,
		}
		if t, ok := pick(m, p.Translations, loc, "program"); ok {
			item.Name = t.Name
			item.Description = t.Description
		}
		out = append(out, item)
	}
	return out
}
