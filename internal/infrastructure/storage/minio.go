package storage

import (
	"context"
	"fmt"
	"io"
	"strings"
	"time"

	backoff "github.com/cenkalti/backoff/v4"
	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"
	"go.uber.org/zap"

	"github.com/johnquangdev/meeting-scribe/pkg/config"
)

// MinIOClient wraps the MinIO operations used by the meeting store
type MinIOClient struct {
	client *minio.Client
	bucket string
	logger *zap.Logger
}

// NewMinIOClient creates a new MinIO client and makes sure the bucket exists.
// The server may still be starting, so bucket setup is retried for a short while.
func NewMinIOClient(ctx context.Context, cfg *config.StorageConfig, logger *zap.Logger) (*MinIOClient, error) {
	if logger == nil {
		logger = zap.NewNop()
	}
	minioClient, err := minio.New(cfg.Endpoint, &minio.Options{
		Creds:  credentials.NewStaticV4(cfg.AccessKeyID, cfg.SecretAccessKey, ""),
		Secure: cfg.UseSSL,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create MinIO client: %w", err)
	}

	client := &MinIOClient{
		client: minioClient,
		bucket: cfg.BucketName,
		logger: logger,
	}

	bo := backoff.NewExponentialBackOff()
	bo.InitialInterval = time.Second
	bo.MaxInterval = 5 * time.Second
	bo.MaxElapsedTime = 30 * time.Second

	notify := func(err error, wait time.Duration) {
		logger.Warn("MinIO not ready, retrying",
			zap.String("endpoint", cfg.Endpoint),
			zap.Duration("wait", wait),
			zap.Error(err),
		)
	}
	if err := backoff.RetryNotify(func() error { return client.ensureBucket(ctx) }, backoff.WithContext(bo, ctx), notify); err != nil {
		return nil, fmt.Errorf("failed to initialize bucket: %w", err)
	}

	return client, nil
}

// ensureBucket creates the bucket if it does not exist
func (m *MinIOClient) ensureBucket(ctx context.Context) error {
	exists, err := m.client.BucketExists(ctx, m.bucket)
	if err != nil {
		return fmt.Errorf("failed to check bucket existence: %w", err)
	}
	if exists {
		return nil
	}
	if err := m.client.MakeBucket(ctx, m.bucket, minio.MakeBucketOptions{}); err != nil {
		return fmt.Errorf("failed to create bucket: %w", err)
	}
	m.logger.Info("created bucket", zap.String("bucket", m.bucket))
	return nil
}

// UploadText uploads text content
func (m *MinIOClient) UploadText(ctx context.Context, objectName string, content string) error {
	reader := strings.NewReader(content)
	_, err := m.client.PutObject(ctx, m.bucket, objectName, reader, int64(len(content)), minio.PutObjectOptions{
		ContentType: "text/plain; charset=utf-8",
	})
	if err != nil {
		return fmt.Errorf("failed to upload %s: %w", objectName, err)
	}
	return nil
}

// DownloadText reads an object. ok is false when the object does not exist.
func (m *MinIOClient) DownloadText(ctx context.Context, objectName string) (content string, ok bool, err error) {
	obj, err := m.client.GetObject(ctx, m.bucket, objectName, minio.GetObjectOptions{})
	if err != nil {
		if isNotFound(err) {
			return "", false, nil
		}
		return "", false, fmt.Errorf("failed to get %s: %w", objectName, err)
	}
	defer obj.Close()

	data, err := io.ReadAll(obj)
	if err != nil {
		if isNotFound(err) {
			return "", false, nil
		}
		return "", false, fmt.Errorf("failed to read %s: %w", objectName, err)
	}
	return string(data), true, nil
}

// Stat returns the last modification time of an object. ok is false when
// the object does not exist.
func (m *MinIOClient) Stat(ctx context.Context, objectName string) (modified time.Time, ok bool, err error) {
	info, err := m.client.StatObject(ctx, m.bucket, objectName, minio.StatObjectOptions{})
	if err != nil {
		if isNotFound(err) {
			return time.Time{}, false, nil
		}
		return time.Time{}, false, fmt.Errorf("failed to stat %s: %w", objectName, err)
	}
	return info.LastModified, true, nil
}

// ListPrefixes returns the first path segment of every object under prefix
func (m *MinIOClient) ListPrefixes(ctx context.Context, prefix string) ([]string, error) {
	var names []string

	objectCh := m.client.ListObjects(ctx, m.bucket, minio.ListObjectsOptions{
		Prefix:    prefix,
		Recursive: false,
	})
	for object := range objectCh {
		if object.Err != nil {
			return nil, fmt.Errorf("error listing objects: %w", object.Err)
		}
		name := strings.TrimPrefix(object.Key, prefix)
		if !strings.HasSuffix(name, "/") {
			continue
		}
		names = append(names, strings.TrimSuffix(name, "/"))
	}
	return names, nil
}

func isNotFound(err error) bool {
	code := minio.ToErrorResponse(err).Code
	return code == "NoSuchKey" || code == "NoSuchObject"
}
