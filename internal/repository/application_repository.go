package repository

import (
	"context"
	"time"

	"edu-turkish-backend/internal/database"
	"edu-turkish-backend/internal/models"
)

type ApplicationRepository interface {
	Create(ctx context.Context, req *models.ApplicationRequest) error
}

type applicationRepository struct {
	db      *database.Database
	timeout time.Duration
}

func NewApplicationRepository(db *database.Database) ApplicationRepository {
	return &applicationRepository{
		db:      db,
		timeout: db.GetQueryTimeout(),
	}
}

func (r *applicationRepository) withTimeout(ctx context.Context) (context.Context, context.CancelFunc) {
	if _, ok := ctx.Deadline(); ok {
		return ctx, func() {}
	}
	return context.WithTimeout(ctx, r.timeout)
}

func (r *applicationRepository) Create(ctx context.Context, req *models.ApplicationRequest) error {
	ctx, cancel := r.withTimeout(ctx)
	defer cancel()

	return r.db.WithContext(ctx).Create(req).Error
}
