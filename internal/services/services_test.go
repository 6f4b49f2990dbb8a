package services

import (
	"context"
	"errors"
	"regexp"
	"testing"

	"edu-turkish-backend/internal/catalog"
	"edu-turkish-backend/internal/config"
	"edu-turkish-backend/internal/dto"
	"edu-turkish-backend/internal/locale"
	"edu-turkish-backend/internal/models"
	"edu-turkish-backend/internal/repository"

	"github.com/sirupsen/logrus"
	"github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeApplications struct {
	stored []*models.ApplicationRequest
	err    error
}

func (f *fakeApplications) Create(_ context.Context, req *models.ApplicationRequest) error {
	if f.err != nil {
		return f.err
	}
	f.stored = append(f.stored, req)
	return nil
}

func TestApplicationServiceSubmit(t *testing.T) {
	log, _ := test.NewNullLogger()
	repo := &fakeApplications{}
	svc := NewApplicationService(repo, log)

	receipt, err := svc.Submit(context.Background(), dto.ApplicationInput{
		Name:  "  Aida  ",
		Phone: "+7 700 123 4567",
		Level: "Master",
	}, locale.Resolve("kz"))
	require.NoError(t, err)
	require.Len(t, repo.stored, 1)

	stored := repo.stored[0]
	assert.Equal(t, receipt.ID, stored.ID)
	assert.Regexp(t, regexp.MustCompile(`^[0-9a-f-]{36}$`), stored.ID)
	assert.Equal(t, "Aida", stored.Name)
	assert.Equal(t, "+77001234567", stored.Phone)
	assert.Equal(t, "master", stored.Level)
	assert.Equal(t, "kk", stored.Locale)
	assert.Equal(t, "website", stored.Source)
}

func TestApplicationServiceRejectsInvalidInput(t *testing.T) {
	log, _ := test.NewNullLogger()
	repo := &fakeApplications{}
	svc := NewApplicationService(repo, log)

	_, err := svc.Submit(context.Background(), dto.ApplicationInput{
		Phone: "call me",
		Email: "nope",
		Level: "diploma",
	}, locale.Resolve("en"))

	var verr *ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Contains(t, verr.Fields, "name")
	assert.Contains(t, verr.Fields, "phone")
	assert.Contains(t, verr.Fields, "email")
	assert.Contains(t, verr.Fields, "level")
	assert.Empty(t, repo.stored)
}

func TestApplicationServicePropagatesStoreErrors(t *testing.T) {
	log, _ := test.NewNullLogger()
	boom := errors.New("connection reset")
	svc := NewApplicationService(&fakeApplications{err: boom}, log)

	_, err := svc.Submit(context.Background(), dto.ApplicationInput{Name: "Ali", Phone: "+905551234567"}, locale.Resolve("tr"))
	assert.ErrorIs(t, err, boom)
}

func TestMediaServicePublicURL(t *testing.T) {
	log, _ := test.NewNullLogger()
	svc := NewStaticMediaService(&config.MinIOConfig{BucketName: "edu", PublicURL: "https://cdn.example/edu/"}, log)

	assert.Equal(t, "https://cdn.example/edu/universities/a.jpg", svc.PublicURL("universities/a.jpg"))
	assert.Equal(t, "https://cdn.example/edu/universities/a.jpg", svc.PublicURL("edu/universities/a.jpg"))
	assert.Equal(t, "https://other.example/x.png", svc.PublicURL("https://other.example/x.png"))
	assert.Equal(t, "/static/x.png", svc.PublicURL("/static/x.png"))
	assert.Equal(t, "", svc.PublicURL(""))
	assert.False(t, svc.UploadsEnabled())

	_, err := svc.GeneratePresignedURL(context.Background(), "gallery", "a.jpg")
	assert.ErrorIs(t, err, ErrUploadsDisabled)

	var none *MediaService
	assert.Equal(t, "a.jpg", none.PublicURL("a.jpg"))
}

func TestPublicBase(t *testing.T) {
	assert.Equal(t, "https://s3.example/edu",
		publicBase(&config.MinIOConfig{Endpoint: "https://s3.example/", BucketName: "edu", UseSSL: true}))
	assert.Equal(t, "http://localhost:9000/edu",
		publicBase(&config.MinIOConfig{Endpoint: "localhost:9000", BucketName: "edu"}))
	assert.Equal(t, "https://cdn.example",
		publicBase(&config.MinIOConfig{Endpoint: "s3", BucketName: "edu", PublicURL: "https://cdn.example/"}))
}

func TestUniqueObjectName(t *testing.T) {
	name := uniqueObjectName(`C:\photos\Main Hall (1).JPG`)
	assert.Regexp(t, regexp.MustCompile(`^main-hall--1_[0-9a-f]{8}\.jpg$`), name)

	assert.Regexp(t, regexp.MustCompile(`^file_[0-9a-f]{8}$`), uniqueObjectName("???"))
	assert.NotEqual(t, uniqueObjectName("a.png"), uniqueObjectName("a.png"))
}

type fakeUniversities struct {
	repository.UniversityRepository
	lastFilter catalog.Filter
	lastDirQ   repository.DirectionQuery
}

func (f *fakeUniversities) FindAll(_ context.Context, flt catalog.Filter, _ locale.Resolved) (*dto.UniversityList, error) {
	f.lastFilter = flt
	return &dto.UniversityList{Data: []dto.University{}}, nil
}

func (f *fakeUniversities) GetAllDirections(_ context.Context, _ locale.Resolved, q repository.DirectionQuery) (*dto.DirectionList, error) {
	f.lastDirQ = q
	return &dto.DirectionList{Data: []dto.Direction{}}, nil
}

func TestCatalogServiceAppliesDefaultLimit(t *testing.T) {
	log := logrus.New()
	log.SetLevel(logrus.PanicLevel)
	repo := &fakeUniversities{}
	svc := NewCatalogService(repo, nil, nil, nil, &config.CatalogConfig{DefaultLimit: 24}, log)

	_, err := svc.ListUniversities(context.Background(), catalog.Filter{}, locale.Resolve("en"))
	require.NoError(t, err)
	assert.Equal(t, 24, repo.lastFilter.Limit)

	_, err = svc.ListUniversities(context.Background(), catalog.Filter{Limit: 5}, locale.Resolve("en"))
	require.NoError(t, err)
	assert.Equal(t, 5, repo.lastFilter.Limit)

	_, err = svc.ListDirections(context.Background(), locale.Resolve("en"), repository.DirectionQuery{})
	require.NoError(t, err)
	assert.Equal(t, 24, repo.lastDirQ.Limit)

	svc = NewCatalogService(repo, nil, nil, nil, nil, log)
	_, err = svc.ListUniversities(context.Background(), catalog.Filter{}, locale.Resolve("en"))
	require.NoError(t, err)
	assert.Equal(t, catalog.DefaultLimit, repo.lastFilter.Limit)
}

