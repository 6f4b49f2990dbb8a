package database

import (
	"context"
	"fmt"
	"time"

	"edu-turkish-backend/internal/config"
	"edu-turkish-backend/internal/models"

	"github.com/sirupsen/logrus"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

type Database struct {
	*gorm.DB
	config config.DatabaseConfig
}

func Connect(cfg config.DatabaseConfig) (*Database, error) {
	db, err := gorm.Open(postgres.Open(cfg.DSN()), gormConfig())
	if err != nil {
		logrus.WithError(err).Error("Failed to connect to database")
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		logrus.WithError(err).Error("Failed to get underlying sql.DB")
		return nil, fmt.Errorf("failed to get underlying sql.DB: %w", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := sqlDB.PingContext(ctx); err != nil {
		logrus.WithError(err).Error("Failed to ping database")
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	// Configure connection pool
	sqlDB.SetMaxOpenConns(cfg.MaxOpenConns)
	sqlDB.SetMaxIdleConns(cfg.MaxIdleConns)
	sqlDB.SetConnMaxLifetime(cfg.ConnMaxLifetime)
	sqlDB.SetConnMaxIdleTime(2 * time.Minute)

	logrus.Info("Database connection established successfully")

	database := New(db, cfg)

	if cfg.AutoMigrate {
		if err := Migrate(db); err != nil {
			logrus.WithError(err).Error("Failed to run auto migration")
			return nil, fmt.Errorf("failed to run auto migration: %w", err)
		}
	}

	return database, nil
}

// New wraps an already opened gorm handle.
func New(db *gorm.DB, cfg config.DatabaseConfig) *Database {
	if cfg.QueryTimeout <= 0 {
		cfg.QueryTimeout = 10 * time.Second
	}
	return &Database{DB: db, config: cfg}
}

func gormConfig() *gorm.Config {
	return &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
		NowFunc: func() time.Time {
			return time.Now().UTC()
		},
		DisableForeignKeyConstraintWhenMigrating: true,
		PrepareStmt:                              true,
	}
}

func (d *Database) WithContext(ctx context.Context) *gorm.DB {
	return d.DB.WithContext(ctx)
}

func (d *Database) GetQueryTimeout() time.Duration {
	return d.config.QueryTimeout
}

func (d *Database) HealthCheck(ctx context.Context) error {
	sqlDB, err := d.DB.DB()
	if err != nil {
		return err
	}

	ctx, cancel := context.WithTimeout(ctx, 3*time.Second)
	defer cancel()

	return sqlDB.PingContext(ctx)
}

func (d *Database) Close() error {
	sqlDB, err := d.DB.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}

// Migrate creates or updates every catalog table.
func Migrate(db *gorm.DB) error {
	logrus.Info("Running auto migration...")

	err := db.AutoMigrate(
		&models.Country{},
		&models.CountryTranslation{},
		&models.City{},
		&models.CityTranslation{},
		&models.University{},
		&models.UniversityTranslation{},
		&models.AcademicProgram{},
		&models.ProgramTranslation{},
		&models.FeaturedProgram{},
		&models.FeaturedProgramTranslation{},
		&models.CampusFacility{},
		&models.CampusFacilityTranslation{},
		&models.AdmissionRequirement{},
		&models.AdmissionRequirementTranslation{},
		&models.RequiredDocument{},
		&models.RequiredDocumentTranslation{},
		&models.ImportantDate{},
		&models.ImportantDateTranslation{},
		&models.Scholarship{},
		&models.ScholarshipTranslation{},
		&models.StudyDirection{},
		&models.StudyDirectionTranslation{},
		&models.UniversityStudyDirection{},
		&models.UniversityMedia{},
		&models.UniversityMediaTranslation{},
		&models.FAQ{},
		&models.FAQTranslation{},
		&models.Review{},
		&models.ReviewTranslation{},
		&models.BlogArticle{},
		&models.BlogArticleTranslation{},
		&models.ApplicationRequest{},
	)
	if err != nil {
		return err
	}

	logrus.Info("Auto migration completed successfully")
	return nil
}
