package services

import (
	"context"
	"errors"
	"fmt"
	"path"
	"path/filepath"
	"strings"
	"time"

	"edu-turkish-backend/internal/config"

	"github.com/google/uuid"
	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"
	"github.com/sirupsen/logrus"
)

var (
	ErrUploadsDisabled   = errors.New("media storage is not configured")
	ErrUnknownUploadKind = errors.New("unknown upload kind")
)

// allowed upload folders, keyed by the kind sent by the admin tooling
var uploadFolders = map[string]string{
	"university": "universities",
	"gallery":    "gallery",
	"blog":       "blog",
	"review":     "reviews",
}

// PresignedUpload is returned to the client before a direct upload to storage.
type PresignedUpload struct {
	UploadURL  string        `json:"upload_url"`
	PublicURL  string        `json:"public_url"`
	ObjectPath string        `json:"object_path"`
	ExpiresIn  time.Duration `json:"expires_in" swaggertype:"integer"`
}

// MediaService resolves stored media paths to public URLs and issues
// presigned uploads. Without a client it only resolves URLs.
type MediaService struct {
	client    *minio.Client
	bucket    string
	publicURL string
	expiry    time.Duration
	logger    *logrus.Logger
}

func NewMediaService(cfg *config.MinIOConfig, logger *logrus.Logger) (*MediaService, error) {
	endpoint := cfg.Endpoint
	endpoint = strings.TrimPrefix(endpoint, "https://")
	endpoint = strings.TrimPrefix(endpoint, "http://")

	minioClient, err := minio.New(endpoint, &minio.Options{
		Creds:  credentials.NewStaticV4(cfg.AccessKeyID, cfg.SecretAccessKey, ""),
		Secure: cfg.UseSSL,
		Region: cfg.Region,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create MinIO client: %w", err)
	}

	logger.WithFields(logrus.Fields{
		"endpoint": endpoint,
		"bucket":   cfg.BucketName,
		"useSSL":   cfg.UseSSL,
	}).Info("MinIO client initialized successfully")

	service := &MediaService{
		client:    minioClient,
		bucket:    cfg.BucketName,
		publicURL: publicBase(cfg),
		expiry:    cfg.PresignExpiry,
		logger:    logger,
	}

	if err := service.ensureBucket(context.Background(), cfg.Region); err != nil {
		logger.WithError(err).Warn("Failed to configure bucket, but continuing...")
	}

	return service, nil
}

// NewStaticMediaService resolves URLs against a fixed base and has uploads disabled.
func NewStaticMediaService(cfg *config.MinIOConfig, logger *logrus.Logger) *MediaService {
	return &MediaService{
		bucket:    cfg.BucketName,
		publicURL: strings.TrimRight(cfg.PublicURL, "/"),
		logger:    logger,
	}
}

func publicBase(cfg *config.MinIOConfig) string {
	if cfg.PublicURL != "" {
		return strings.TrimRight(cfg.PublicURL, "/")
	}
	scheme := "http://"
	if cfg.UseSSL {
		scheme = "https://"
	}
	host := strings.TrimPrefix(strings.TrimPrefix(cfg.Endpoint, "https://"), "http://")
	return scheme + strings.TrimRight(host, "/") + "/" + cfg.BucketName
}

func (s *MediaService) ensureBucket(ctx context.Context, region string) error {
	exists, err := s.client.BucketExists(ctx, s.bucket)
	if err != nil {
		return fmt.Errorf("failed to check bucket existence: %w", err)
	}

	if !exists {
		if err := s.client.MakeBucket(ctx, s.bucket, minio.MakeBucketOptions{Region: region}); err != nil {
			return fmt.Errorf("failed to create bucket: %w", err)
		}
		s.logger.WithField("bucket", s.bucket).Info("Bucket created successfully")
	}

	policy := fmt.Sprintf(`{
		"Version": "2012-10-17",
		"Statement": [
			{
				"Effect": "Allow",
				"Principal": {"AWS": ["*"]},
				"Action": ["s3:GetObject"],
				"Resource": ["arn:aws:s3:::%s/*"]
			}
		]
	}`, s.bucket)

	if err := s.client.SetBucketPolicy(ctx, s.bucket, policy); err != nil {
		return fmt.Errorf("failed to set bucket policy: %w", err)
	}

	s.logger.WithField("bucket", s.bucket).Info("Bucket policy set to public read")
	return nil
}

// PublicURL turns a stored object path into an absolute URL. Absolute URLs
// and site-relative paths are returned unchanged.
func (s *MediaService) PublicURL(objectPath string) string {
	if objectPath == "" || s == nil || s.publicURL == "" {
		return objectPath
	}
	if strings.HasPrefix(objectPath, "http://") || strings.HasPrefix(objectPath, "https://") || strings.HasPrefix(objectPath, "/") {
		return objectPath
	}
	return s.publicURL + "/" + strings.TrimPrefix(objectPath, s.bucket+"/")
}

func (s *MediaService) UploadsEnabled() bool {
	return s != nil && s.client != nil
}

// GeneratePresignedURL issues a PUT URL for a new object under the folder of kind.
func (s *MediaService) GeneratePresignedURL(ctx context.Context, kind, filename string) (*PresignedUpload, error) {
	if !s.UploadsEnabled() {
		return nil, ErrUploadsDisabled
	}

	folder, ok := uploadFolders[kind]
	if !ok {
		return nil, fmt.Errorf("%w %q", ErrUnknownUploadKind, kind)
	}

	objectPath := path.Join(folder, uniqueObjectName(filename))

	expiry := s.expiry
	if expiry <= 0 {
		expiry = 15 * time.Minute
	}

	presignedURL, err := s.client.PresignedPutObject(ctx, s.bucket, objectPath, expiry)
	if err != nil {
		s.logger.WithError(err).Error("Failed to generate presigned URL")
		return nil, fmt.Errorf("failed to generate presigned URL: %w", err)
	}

	s.logger.WithFields(logrus.Fields{
		"filename":   filename,
		"objectPath": objectPath,
		"expiry":     expiry,
	}).Info("Generated presigned URL")

	return &PresignedUpload{
		UploadURL:  presignedURL.String(),
		PublicURL:  s.PublicURL(objectPath),
		ObjectPath: objectPath,
		ExpiresIn:  expiry,
	}, nil
}

func uniqueObjectName(filename string) string {
	base := filepath.Base(strings.ReplaceAll(filename, "\\", "/"))
	ext := strings.ToLower(filepath.Ext(base))
	name := strings.TrimSuffix(base, filepath.Ext(base))

	name = strings.Map(func(r rune) rune {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9', r == '-', r == '_':
			return r
		case r >= 'A' && r <= 'Z':
			return r + ('a' - 'A')
		default:
			return '-'
		}
	}, name)
	name = strings.Trim(name, "-")
	if name == "" || name == "." {
		name = "file"
	}

	return fmt.Sprintf("%s_%s%s", name, uuid.New().String()[:8], ext)
}

func (s *MediaService) DeleteFile(ctx context.Context, objectPath string) error {
	if !s.UploadsEnabled() {
		return ErrUploadsDisabled
	}

	objectPath = strings.TrimPrefix(objectPath, s.publicURL+"/")
	objectPath = strings.TrimPrefix(objectPath, s.bucket+"/")

	if err := s.client.RemoveObject(ctx, s.bucket, objectPath, minio.RemoveObjectOptions{}); err != nil {
		s.logger.WithError(err).WithField("objectPath", objectPath).Error("Failed to delete file")
		return fmt.Errorf("failed to delete file: %w", err)
	}

	s.logger.WithField("objectPath", objectPath).Info("File deleted successfully from MinIO")
	return nil
}
