package services

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"
	"time"

	"stagebook/internal/config"

	"github.com/google/uuid"
	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"
	"github.com/sirupsen/logrus"
)

// MediaService stores venue and artist images in a MinIO/S3 bucket.
// Browsers upload directly through a presigned PUT URL and submit the
// resulting public URL as the record's image link.
type MediaService struct {
	client    *minio.Client
	bucket    string
	publicURL string
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
		publicURL: cfg.PublicURL,
		logger:    logger,
	}

	if err := service.ensureBucket(context.Background()); err != nil {
		logger.WithError(err).Warn("Failed to configure bucket, but continuing...")
	}

	return service, nil
}

func (s *MediaService) ensureBucket(ctx context.Context) error {
	exists, err := s.client.BucketExists(ctx, s.bucket)
	if err != nil {
		return fmt.Errorf("failed to check bucket existence: %w", err)
	}

	if !exists {
		if err := s.client.MakeBucket(ctx, s.bucket, minio.MakeBucketOptions{Region: "us-east-1"}); err != nil {
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

// GeneratePresignedURL returns a short-lived PUT URL for the upload and
// the public URL the record should store as its image link. Object names
// get a uuid suffix so repeated uploads of the same filename never clash.
func (s *MediaService) GeneratePresignedURL(filename, contentType string) (string, string, error) {
	ext := filepath.Ext(filename)
	nameWithoutExt := strings.TrimSuffix(filename, ext)
	objectPath := fmt.Sprintf("%s_%s%s", nameWithoutExt, uuid.New().String()[:8], ext)

	// Presigned PUT URLs stay valid for 15 minutes.
	expiry := 15 * time.Minute

	presignedURL, err := s.client.PresignedPutObject(
		context.Background(),
		s.bucket,
		objectPath,
		expiry,
	)
	if err != nil {
		s.logger.WithError(err).Error("Failed to generate presigned URL")
		return "", "", fmt.Errorf("failed to generate presigned URL: %w", err)
	}

	publicBase := strings.TrimPrefix(s.publicURL, "https://")
	publicBase = strings.TrimPrefix(publicBase, "http://")
	if idx := strings.Index(publicBase, "/"); idx != -1 {
		publicBase = publicBase[:idx]
	}

	protocol := "http://"
	if strings.Contains(s.publicURL, "https://") {
		protocol = "https://"
	}

	publicURL := fmt.Sprintf("%s%s/%s/%s", protocol, publicBase, s.bucket, objectPath)

	s.logger.WithFields(logrus.Fields{
		"filename":   filename,
		"objectPath": objectPath,
		"expiry":     expiry,
	}).Info("Generated presigned URL")

	return presignedURL.String(), publicURL, nil
}

// DeleteManagedObject removes the object behind an image link, but only
// when the link points into our bucket. External links and failures are
// logged and otherwise ignored; a stale object never blocks an update.
func (s *MediaService) DeleteManagedObject(link string) {
	if link == "" || !strings.Contains(link, "http") || !strings.Contains(link, s.bucket) {
		return
	}

	parts := strings.Split(link, "/")
	objectPath := parts[len(parts)-1]
	if idx := strings.Index(objectPath, "?"); idx != -1 {
		objectPath = objectPath[:idx]
	}

	err := s.client.RemoveObject(
		context.Background(),
		s.bucket,
		objectPath,
		minio.RemoveObjectOptions{},
	)
	if err != nil {
		s.logger.WithError(err).WithField("object", objectPath).Warn("Failed to delete replaced image")
		return
	}

	s.logger.WithField("object", objectPath).Info("Deleted replaced image")
}
