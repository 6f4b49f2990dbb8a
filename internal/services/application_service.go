package services

import (
	"context"
	"fmt"
	"strings"
	"time"

	"edu-turkish-backend/internal/dto"
	"edu-turkish-backend/internal/locale"
	"edu-turkish-backend/internal/models"
	"edu-turkish-backend/internal/repository"
	"edu-turkish-backend/internal/utils"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

// ValidationError carries per-field messages for a rejected submission.
type ValidationError struct {
	Fields map[string]string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("validation failed for %d field(s)", len(e.Fields))
}

type ApplicationService interface {
	Submit(ctx context.Context, in dto.ApplicationInput, loc locale.Resolved) (*dto.ApplicationReceipt, error)
}

type applicationService struct {
	repo      repository.ApplicationRepository
	validator *utils.Validator
	logger    *logrus.Logger
	now       func() time.Time
}

func NewApplicationService(repo repository.ApplicationRepository, logger *logrus.Logger) ApplicationService {
	return &applicationService{
		repo:      repo,
		validator: utils.NewValidator(),
		logger:    logger,
		now:       func() time.Time { return time.Now().UTC() },
	}
}

func (s *applicationService) Submit(ctx context.Context, in dto.ApplicationInput, loc locale.Resolved) (*dto.ApplicationReceipt, error) {
	in.Name = strings.TrimSpace(in.Name)
	in.Phone = strings.ReplaceAll(strings.TrimSpace(in.Phone), " ", "")
	in.Email = strings.TrimSpace(in.Email)
	in.Level = strings.ToLower(strings.TrimSpace(in.Level))

	if err := s.validator.ValidateStruct(in); err != nil {
		return nil, &ValidationError{Fields: utils.FormatValidationErrors(err)}
	}

	source := in.Source
	if source == "" {
		source = "website"
	}

	req := &models.ApplicationRequest{
		ID:           uuid.NewString(),
		Name:         in.Name,
		Phone:        in.Phone,
		Email:        in.Email,
		UniversityID: in.UniversityID,
		Program:      in.Program,
		Level:        in.Level,
		Message:      in.Message,
		Source:       source,
		Locale:       loc.Normalized,
		CreatedAt:    s.now(),
	}

	if err := s.repo.Create(ctx, req); err != nil {
		return nil, fmt.Errorf("store application: %w", err)
	}

	s.logger.WithFields(logrus.Fields{
		"id":     req.ID,
		"source": req.Source,
		"locale": req.Locale,
	}).Info("Application request stored")

	return &dto.ApplicationReceipt{ID: req.ID, CreatedAt: req.CreatedAt}, nil
}
