package repositories

import (
	"context"
	"errors"
	"fmt"
	"io"

	"cloud.google.com/go/storage"
	"google.golang.org/api/option"

	"github.com/erpcore/go-fin-ledger/internal/common"
	"github.com/erpcore/go-fin-ledger/internal/config"
	"github.com/erpcore/go-fin-ledger/internal/models"
	"github.com/erpcore/go-fin-ledger/internal/monitoring"
)

//go:generate mockgen -source=gcs.go -destination=mock/gcs.go -package=mock
type CloudStorageRepository interface {
	// Upload writes data to payload and returns its public URL.
	Upload(ctx context.Context, payload models.CloudStoragePayload, contentType string, data []byte) (string, error)
	NewReader(ctx context.Context, payload models.CloudStoragePayload) (io.ReadCloser, error)
	IsObjectExist(ctx context.Context, payload models.CloudStoragePayload) (isExist bool, url string)
	DeleteFile(ctx context.Context, payload models.CloudStoragePayload) error
	GetURL(payload models.CloudStoragePayload) string
	Close() error
}

type cloudStorageClient struct {
	config *config.CloudStorageConfig
	client *storage.Client
}

func NewCloudStorageRepository(cfg *config.Config, opts ...option.ClientOption) (CloudStorageRepository, error) {
	if cfg.CloudStorageConfig.BucketName == "" {
		return nil, fmt.Errorf("failed to init cloud storage bucket name not set")
	}

	client, err := storage.NewClient(context.Background(), opts...)
	if err != nil {
		return nil, err
	}

	return &cloudStorageClient{client: client, config: &cfg.CloudStorageConfig}, nil
}

func (cs *cloudStorageClient) object(payload models.CloudStoragePayload) *storage.ObjectHandle {
	return cs.client.Bucket(cs.config.BucketName).Object(payload.GetFilePath())
}

func (cs *cloudStorageClient) GetURL(payload models.CloudStoragePayload) string {
	return fmt.Sprintf("%s/%s/%s", cs.config.BaseURL, cs.config.BucketName, payload.GetFilePath())
}

func (cs *cloudStorageClient) Upload(ctx context.Context, payload models.CloudStoragePayload, contentType string, data []byte) (url string, err error) {
	monitor := monitoring.New(ctx)
	defer func() { monitor.Finish(monitoring.WithFinishCheckError(err)) }()

	writer := cs.object(payload).NewWriter(ctx)
	writer.ContentType = contentType
	writer.ContentDisposition = fmt.Sprintf("attachment; filename=%s", payload.Filename)

	if _, err = writer.Write(data); err != nil {
		_ = writer.Close()
		return "", fmt.Errorf("failed to write %s: %w", payload.GetFilePath(), err)
	}
	if err = writer.Close(); err != nil {
		return "", fmt.Errorf("failed to close %s: %w", payload.GetFilePath(), err)
	}

	return cs.GetURL(payload), nil
}

func (cs *cloudStorageClient) NewReader(ctx context.Context, payload models.CloudStoragePayload) (io.ReadCloser, error) {
	rc, err := cs.object(payload).NewReader(ctx)
	if errors.Is(err, storage.ErrObjectNotExist) {
		return nil, fmt.Errorf("object %s: %w", payload.GetFilePath(), common.ErrDataNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to open object in bucket: %w", err)
	}

	return rc, nil
}

func (cs *cloudStorageClient) IsObjectExist(ctx context.Context, payload models.CloudStoragePayload) (isExist bool, url string) {
	if _, err := cs.object(payload).Attrs(ctx); err == nil {
		isExist = true
		url = cs.GetURL(payload)
	}

	return
}

func (cs *cloudStorageClient) DeleteFile(ctx context.Context, payload models.CloudStoragePayload) error {
	return cs.object(payload).Delete(ctx)
}

func (cs *cloudStorageClient) Close() error {
	return cs.client.Close()
}
