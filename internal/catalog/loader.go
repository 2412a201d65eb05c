// Package catalog serves the read-only flight, hotel and weather catalogues.
// Each catalogue is a JSON snapshot loaded from object storage; reloads swap
// the whole snapshot behind an atomic pointer, readers never block.
package catalog

import (
	"context"
	"fmt"
	"io"

	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"
	"github.com/statravel/sta/internal/config"
	"github.com/statravel/sta/internal/logger"
)

// Loader fetches the raw catalogue object.
type Loader interface {
	Load(ctx context.Context) ([]byte, error)
}

// MinioLoader reads one object from a MinIO bucket.
type MinioLoader struct {
	client *minio.Client
	bucket string
	object string
	logger *logger.Logger
}

func NewMinioLoader(cfg config.CatalogConfig, log *logger.Logger) (*MinioLoader, error) {
	client, err := minio.New(cfg.Endpoint, &minio.Options{
		Creds:  credentials.NewStaticV4(cfg.AccessKey, cfg.SecretKey, ""),
		Secure: cfg.UseSSL,
	})
	if err != nil {
		log.Err(err).Str("func", "NewMinioLoader").Msg("error creating object storage client")
		return nil, fmt.Errorf("error creating object storage client: %w", err)
	}

	return &MinioLoader{
		client: client,
		bucket: cfg.Bucket,
		object: cfg.Object,
		logger: log,
	}, nil
}

func (l *MinioLoader) Load(ctx context.Context) ([]byte, error) {
	object, err := l.client.GetObject(ctx, l.bucket, l.object, minio.GetObjectOptions{})
	if err != nil {
		return nil, fmt.Errorf("error fetching catalogue object %s/%s: %w", l.bucket, l.object, err)
	}
	defer object.Close()

	data, err := io.ReadAll(object)
	if err != nil {
		return nil, fmt.Errorf("error reading catalogue object %s/%s: %w", l.bucket, l.object, err)
	}

	return data, nil
}
