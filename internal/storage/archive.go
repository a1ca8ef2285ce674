// backend-go/internal/storage/archive.go
package storage

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"
	"github.com/rs/zerolog/log"

	"github.com/smartshelfx/backend-go/internal/config"
)

// Exchange captures a single request/response round trip with the decision
// oracle, kept verbatim for offline diagnostics.
type Exchange struct {
	RunID     string    `json:"run_id"`
	ProductID int64     `json:"product_id"`
	Model     string    `json:"model"`
	Prompt    string    `json:"prompt"`
	Response  string    `json:"response"`
	CreatedAt time.Time `json:"created_at"`
}

// ExchangeArchive persists oracle exchanges. Archival is best-effort: the
// orchestration pipeline logs and ignores errors from it.
type ExchangeArchive interface {
	Archive(ctx context.Context, ex Exchange) error
}

// New returns an S3-backed archive, or a noop one when disabled.
func New(cfg config.ArchiveConfig) (ExchangeArchive, error) {
	if !cfg.Enabled || cfg.Endpoint == "" {
		return &noopArchive{}, nil
	}

	client, err := minio.New(cfg.Endpoint, &minio.Options{
		Creds:  credentials.NewStaticV4(cfg.AccessKey, cfg.SecretKey, ""),
		Secure: cfg.UseSSL,
		Region: cfg.Region,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create archive client: %w", err)
	}

	return &s3Archive{client: client, bucket: cfg.Bucket}, nil
}

type s3Archive struct {
	client *minio.Client
	bucket string
}

func (a *s3Archive) Archive(ctx context.Context, ex Exchange) error {
	payload, err := json.Marshal(ex)
	if err != nil {
		return fmt.Errorf("failed to encode exchange: %w", err)
	}

	key := fmt.Sprintf("oracle/%d/%s.json", ex.ProductID, ex.RunID)
	_, err = a.client.PutObject(ctx, a.bucket, key, bytes.NewReader(payload), int64(len(payload)), minio.PutObjectOptions{
		ContentType: "application/json",
	})
	if err != nil {
		return fmt.Errorf("failed to archive exchange %s: %w", key, err)
	}

	log.Debug().Str("key", key).Int64("product_id", ex.ProductID).Msg("archived oracle exchange")
	return nil
}

type noopArchive struct{}

func (a *noopArchive) Archive(ctx context.Context, ex Exchange) error {
	return nil
}
