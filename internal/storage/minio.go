// Package storage keeps user-uploaded files (profile photos) in a MinIO bucket.
package storage

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"
	"github.com/whenwework/platform-go/internal/config"
)

var ErrDisabled = errors.New("object storage is not configured")

type ObjectStore interface {
	Upload(ctx context.Context, objectName, contentType string, r io.Reader, size int64) (string, error)
	Delete(ctx context.Context, objectName string) error
}

type objectAPI interface {
	PutObject(ctx context.Context, bucketName, objectName string, reader io.Reader, objectSize int64, opts minio.PutObjectOptions) (minio.UploadInfo, error)
	RemoveObject(ctx context.Context, bucketName, objectName string, opts minio.RemoveObjectOptions) error
}

type MinioStore struct {
	client  objectAPI
	bucket  string
	baseURL string
}

// NewMinioStore connects and makes sure the bucket exists.
func NewMinioStore(ctx context.Context, cfg config.MinioConfig) (*MinioStore, error) {
	client, err := minio.New(cfg.Endpoint, &minio.Options{
		Creds:  credentials.NewStaticV4(cfg.AccessKey, cfg.SecretKey, ""),
		Secure: cfg.UseSSL,
	})
	if err != nil {
		return nil, fmt.Errorf("connect minio: %w", err)
	}

	exists, err := client.BucketExists(ctx, cfg.Bucket)
	if err != nil {
		return nil, fmt.Errorf("check bucket: %w", err)
	}
	if !exists {
		if err := client.MakeBucket(ctx, cfg.Bucket, minio.MakeBucketOptions{}); err != nil {
			return nil, fmt.Errorf("create bucket: %w", err)
		}
	}

	baseURL := cfg.PublicURL
	if baseURL == "" {
		scheme := "http"
		if cfg.UseSSL {
			scheme = "https"
		}
		baseURL = fmt.Sprintf("%s://%s", scheme, cfg.Endpoint)
	}
	return &MinioStore{client: client, bucket: cfg.Bucket, baseURL: strings.TrimRight(baseURL, "/")}, nil
}

// Upload stores the object and returns its public URL.
func (s *MinioStore) Upload(ctx context.Context, objectName, contentType string, r io.Reader, size int64) (string, error) {
	if strings.TrimSpace(objectName) == "" {
		return "", fmt.Errorf("object name cannot be empty")
	}
	_, err := s.client.PutObject(ctx, s.bucket, objectName, r, size, minio.PutObjectOptions{
		ContentType: contentType,
	})
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("%s/%s/%s", s.baseURL, s.bucket, objectName), nil
}

func (s *MinioStore) Delete(ctx context.Context, objectName string) error {
	return s.client.RemoveObject(ctx, s.bucket, objectName, minio.RemoveObjectOptions{})
}

// DisabledStore is used when MinIO is switched off.
type DisabledStore struct{}

func (DisabledStore) Upload(context.Context, string, string, io.Reader, int64) (string, error) {
	return "", ErrDisabled
}

func (DisabledStore) Delete(context.Context, string) error {
	return ErrDisabled
}
