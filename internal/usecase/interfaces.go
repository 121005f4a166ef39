package usecase

import (
	"context"

	"github.com/siyam-display/catalog-api/internal/infra/queue"
)

// ObjectStorage is the S3-compatible bucket the image uploader writes to.
type ObjectStorage interface {
	Upload(ctx context.Context, key string, data []byte, contentType string) error
	PublicURL(key string) string
}

type QueueProducerInterface interface {
	PublishLeadCaptured(ctx context.Context, payload queue.LeadCapturedPayload) error
}
