package summary

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"time"

	"country-pulse/core/storage"
	"country-pulse/feature/countries/models"

	"github.com/minio/minio-go/v7"
	"go.uber.org/zap"
)

// ObjectName is the storage key of the latest summary image. Each refresh
// overwrites it.
const ObjectName = "summary/latest.png"

// Sink renders the post-refresh summary and stores it as an object.
type Sink struct {
	client storage.Client
	bucket string
	logger *zap.Logger
}

// NewSink creates a storage-backed summary sink.
func NewSink(client storage.Client, bucket string, logger *zap.Logger) *Sink {
	return &Sink{client: client, bucket: bucket, logger: logger}
}

// Publish renders the top-N view and uploads it, creating the bucket on
// first use.
func (s *Sink) Publish(ctx context.Context, top []models.Country, total int, refreshedAt time.Time) error {
	data, err := Render(top, total, refreshedAt)
	if err != nil {
		return err
	}

	exists, err := s.client.BucketExists(ctx, s.bucket)
	if err != nil {
		return fmt.Errorf("failed to check bucket: %w", err)
	}
	if !exists {
		if err := s.client.MakeBucket(ctx, s.bucket, minio.MakeBucketOptions{}); err != nil {
			return fmt.Errorf("failed to create bucket: %w", err)
		}
	}

	_, err = s.client.PutObject(ctx, s.bucket, ObjectName,
		bytes.NewReader(data), int64(len(data)),
		minio.PutObjectOptions{ContentType: "image/png"})
	if err != nil {
		return fmt.Errorf("failed to upload summary image: %w", err)
	}

	s.logger.Info("Summary image published",
		zap.Int("countries", len(top)),
		zap.Int("total", total),
		zap.Time("refreshed_at", refreshedAt),
	)
	return nil
}

// Fetch returns the latest stored summary image.
func (s *Sink) Fetch(ctx context.Context) ([]byte, error) {
	obj, err := s.client.GetObject(ctx, s.bucket, ObjectName, minio.GetObjectOptions{})
	if err != nil {
		return nil, fmt.Errorf("failed to fetch summary image: %w", err)
	}
	defer obj.Close()

	data, err := io.ReadAll(obj)
	if err != nil {
		return nil, fmt.Errorf("failed to read summary image: %w", err)
	}
	return data, nil
}
