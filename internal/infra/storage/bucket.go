package storage

import (
	"bytes"
	"context"
	"fmt"
	"strings"

	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"
)

// BucketClient talks to the public display bucket over the S3 API
// (Cloudflare R2 in production, but any S3-compatible endpoint works).
type BucketClient struct {
	client        *minio.Client
	bucket        string
	publicBaseURL string
}

func NewBucketClient(endpoint, accessKey, secretKey, bucket, publicBaseURL string) (*BucketClient, error) {
	client, err := minio.New(endpoint, &minio.Options{
		Creds:  credentials.NewStaticV4(accessKey, secretKey, ""),
		Secure: true,
		Region: "auto",
	})
	if err != nil {
		return nil, fmt.Errorf("creating bucket client: %w", err)
	}

	return &BucketClient{
		client:        client,
		bucket:        bucket,
		publicBaseURL: strings.TrimSuffix(publicBaseURL, "/"),
	}, nil
}

func (c *BucketClient) Upload(ctx context.Context, key string, data []byte, contentType string) error {
	_, err := c.client.PutObject(ctx, c.bucket, key, bytes.NewReader(data), int64(len(data)), minio.PutObjectOptions{
		ContentType: contentType,
	})
	if err != nil {
		return fmt.Errorf("uploading %s: %w", key, err)
	}
	return nil
}

// PublicURL derives the CDN-facing URL for an uploaded key.
func (c *BucketClient) PublicURL(key string) string {
	return c.publicBaseURL + "/" + key
}
