package repository

import (
	"context"
	"fmt"

	"edu-turkish-backend/internal/catalog"
	"edu-turkish-backend/internal/dto"
	"edu-turkish-backend/internal/locale"
	"edu-turkish-backend/internal/models"
)

// FindByDirection lists the universities linked to the direction with the given slug.
// An unknown slug yields an empty list.
func (r *universityRepository) FindByDirection(ctx context.Context, directionSlug string, loc locale.Resolved) ([]dto.University, error) {
	ctx, cancel := r.withTimeout(ctx)
	defer cancel()

	var matches []models.StudyDirectionTranslation
	err := r.db.WithContext(ctx).
		Select("id", "direction_id", "locale", "slug").
		Where("slug = ?", directionSlug).
		Order("id ASC").
		Find(&matches).Error
	if err != nil {
		return nil, fmt.Errorf("find direction slug %q: %w", directionSlug, err)
	}

	match, ok := locale.Select(matches, loc)
	if !ok {
		return []dto.University{}, nil
	}

	var rows []models.University
	err = r.db.WithContext(ctx).
		Where("EXISTS (SELECT 1 FROM university_study_directions usd WHERE usd.university_id = universities.id AND usd.direction_id = ?)", match.DirectionID).
		Scopes(listPreloads).
		Order("universities.id ASC").
		Find(&rows).Error
	if err != nil {
		return nil, fmt.Errorf("list universities for direction %d: %w", match.DirectionID, err)
	}

	return r.mapper.ToUniversities(rows, loc), nil
}

type directionCount struct {
	DirectionID uint
	Count       int64
}

func (r *universityRepository) GetAllDirections(ctx context.Context, loc locale.Resolved, q DirectionQuery) (*dto.DirectionList, error) {
	ctx, cancel := r.withTimeout(ctx)
	defer cancel()

	page, limit := catalog.NormalizePage(q.Page, q.Limit)

	query := r.db.WithContext(ctx).Model(&models.StudyDirection{})
	if !catalog.IsAbsent(q.Search) {
		pattern := catalog.ContainsPattern(q.Search)
		query = query.Where(
			"EXISTS (SELECT 1 FROM study_direction_translations sdt WHERE sdt.direction_id = study_directions.id AND sdt.locale IN ? AND (sdt.name ILIKE ? OR sdt.description ILIKE ?))",
			loc.Fallbacks, pattern, pattern,
		)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, fmt.Errorf("count directions: %w", err)
	}

	var rows []models.StudyDirection
	err := query.
		Preload("Translations").
		Order("study_directions.id ASC").
		Offset(catalog.Offset(page, limit)).
		Limit(limit).
		Find(&rows).Error
	if err != nil {
		return nil, fmt.Errorf("list directions: %w", err)
	}

	counts := make(map[uint]int64, len(rows))
	if len(rows) > 0 {
		ids := make([]uint, len(rows))
		for i, d := range rows {
			ids[i] = d.ID
		}

		var grouped []directionCount
		err := r.db.WithContext(ctx).
			Model(&models.UniversityStudyDirection{}).
			Select("direction_id, COUNT(*) AS count").
			Where("direction_id IN ?", ids).
			Group("direction_id").
			Scan(&grouped).Error
		if err != nil {
			return nil, fmt.Errorf("count universities per direction: %w", err)
		}
		for _, g := range grouped {
			counts[g.DirectionID] = g.Count
		}
	}

	data := make([]dto.Direction, 0, len(rows))
	for _, d := range rows {
		item := r.mapper.ToDirection(d, loc)
		item.UniversitiesCount = counts[d.ID]
		data = append(data, item)
	}

	return &dto.DirectionList{Data: data, Total: total, Page: page, Limit: limit}, nil
}
