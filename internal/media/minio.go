package media

import (
	"context"
	"fmt"
	"io"
	"net/url"

	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"
)

// Uploader stores an object and returns the reference to keep on the record.
// Absolute URLs are served as is; relative ones are resolved against the
// media base URL.
type Uploader interface {
	Upload(ctx context.Context, key string, r io.Reader, size int64, contentType string) (string, error)
}

// MinioStore writes audio assets to a MinIO (or any S3 compatible) bucket.
type MinioStore struct {
	client    *minio.Client
	bucket    string
	publicURL *url.URL
}

// NewMinioStore connects to endpoint. Object URLs are built on publicURL, or
// on the endpoint itself when publicURL is empty.
func NewMinioStore(endpoint, accessKey, secretKey, bucket string, useSSL bool, publicURL string) (*MinioStore, error) {
	client, err := minio.New(endpoint, &minio.Options{
		Creds:  credentials.NewStaticV4(accessKey, secretKey, ""),
		Secure: useSSL,
	})
	if err != nil {
		return nil, fmt.Errorf("minio client: %w", err)
	}

	base := client.EndpointURL()
	if publicURL != "" {
		base, err = url.Parse(publicURL)
		if err != nil || base.Scheme == "" || base.Host == "" {
			return nil, fmt.Errorf("invalid minio public url %q", publicURL)
		}
	}
	return &MinioStore{client: client, bucket: bucket, publicURL: base}, nil
}

// ObjectURL is the absolute address of key inside the bucket.
func (s *MinioStore) ObjectURL(key string) string {
	return s.publicURL.JoinPath(s.bucket, key).String()
}

// EnsureBucket creates the bucket if it is missing.
func (s *MinioStore) EnsureBucket(ctx context.Context) error {
	exists, err := s.client.BucketExists(ctx, s.bucket)
	if err != nil {
		return fmt.Errorf("check bucket %s: %w", s.bucket, err)
	}
	if exists {
		return nil
	}
	if err := s.client.MakeBucket(ctx, s.bucket, minio.MakeBucketOptions{}); err != nil {
		return fmt.Errorf("create bucket %s: %w", s.bucket, err)
	}
	return nil
}

// Upload puts the object and returns its absolute URL.
func (s *MinioStore) Upload(ctx context.Context, key string, r io.Reader, size int64, contentType string) (string, error) {
	_, err := s.client.PutObject(ctx, s.bucket, key, r, size, minio.PutObjectOptions{
		ContentType: contentType,
	})
	if err != nil {
		return "", fmt.Errorf("upload %s: %w", key, err)
	}
	return s.ObjectURL(key), nil
}
