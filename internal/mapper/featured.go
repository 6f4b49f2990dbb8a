package mapper

import (
	"sort"
	"strings"

	"edu-turkish-backend/internal/dto"
	"edu-turkish-backend/internal/locale"
	"edu-turkish-backend/internal/models"
)

var defaultCategory = map[string]string{
	locale.Russian: "Избранная программа",
	locale.English: "Featured Program",
	locale.Kazakh:  "Таңдаулы бағдарлама",
	locale.Turkish: "Öne Çıkan Program",
}

type featuredItem struct {
	name  string
	order int
}

type featuredGroup struct {
	category string
	minOrder int
	items    []featuredItem
}

// strongPrograms groups featured programs by their translated category.
// Groups are ordered by the smallest display order they contain, programs
// inside a group by their own display order; ties fall back to the name.
func (m *Mapper) strongPrograms(u models.University, loc locale.Resolved) []dto.ProgramCategory {
	programs := make(map[uint]*models.AcademicProgram, len(u.Programs))
	for i := range u.Programs {
		programs[u.Programs[i].ID] = &u.Programs[i]
	}

	groups := make(map[string]*featuredGroup)
	for _, fp := range u.FeaturedPrograms {
		program := fp.Program
		if program == nil {
			program = programs[fp.ProgramID]
		}
		if program == nil {
			continue
		}

		var name string
		if t, ok := pick(m, program.Translations, loc, "program"); ok {
			name = strings.TrimSpace(t.Name)
		}
		if name == "" {
			continue
		}

		var category string
		if t, ok := pick(m, fp.Translations, loc, "featured_program"); ok {
			category = strings.TrimSpace(t.CategoryLabel)
		}
		if category == "" {
			category = text(defaultCategory, loc)
		}

		g, ok := groups[category]
		if !ok {
			g = &featuredGroup{category: category, minOrder: fp.DisplayOrder}
			groups[category] = g
		}
		if fp.DisplayOrder < g.minOrder {
			g.minOrder = fp.DisplayOrder
		}
		g.items = append(g.items, featuredItem{name: name, order: fp.DisplayOrder})
	}

	ordered := make([]*featuredGroup, 0, len(groups))
	for _, g := range groups {
		ordered = append(ordered, g)
	}
	sort.Slice(ordered, func(i, j int) bool {
		if ordered[i].minOrder != ordered[j].minOrder {
			return ordered[i].minOrder < ordered[j].minOrder
		}
		return ordered[i].category < ordered[j].category
	})

	out := make([]dto.ProgramCategory, 0, len(ordered))
	for _, g := range ordered {
		sort.Slice(g.items, func(i, j int) bool {
			if g.items[i].order != g.items[j].order {
				return g.items[i].order < g.items[j].order
			}
			return g.items[i].name < g.items[j].name
		})
		names := make([]string, len(g.items))
		for i, it := range g.items {
			names[i] = it.name
		}
		out = append(out, dto.ProgramCategory{Category: g.category, Programs: names})
	}
	return out
}
