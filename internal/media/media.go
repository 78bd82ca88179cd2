// Package media stores profile and chat images in an S3-compatible blob store.
package media

import (
	"context"
	"fmt"
	"io"
	"net/url"
	"time"

	"github.com/google/uuid"
	"github.com/minio/minio-go/v7"
	"github.com/sirupsen/logrus"
)

type IMediaService interface {
	// Upload writes the object under a fresh uuid key and returns the key
	// together with a presigned GET URL.
	Upload(ctx context.Context, r io.Reader, size int64, contentType string) (key, presignedURL string, err error)

	PresignedURL(ctx context.Context, key string) (string, error)
}

const presignExpiry = 7 * 24 * time.Hour

type mediaService struct {
	client *minio.Client
	bucket string
}

func New(client *minio.Client, bucket string) (IMediaService, error) {
	exists, err := client.BucketExists(context.Background(), bucket)
	if err != nil {
		return nil, err
	}

	if !exists {
		logrus.WithField("bucket", bucket).Info("create media bucket")
		if err := client.MakeBucket(context.Background(), bucket, minio.MakeBucketOptions{}); err != nil {
			return nil, err
		}
	}

	return &mediaService{
		client: client,
		bucket: bucket,
	}, nil
}

func (s *mediaService) Upload(ctx context.Context, r io.Reader, size int64, contentType string) (string, string, error) {
	key := uuid.NewString()

	if _, err := s.client.PutObject(ctx, s.bucket, key, r, size, minio.PutObjectOptions{
		ContentType: contentType,
	}); err != nil {
		return "", "", fmt.Errorf("failed to put object: %w", err)
	}

	presigned, err := s.PresignedURL(ctx, key)
	if err != nil {
		return "", "", err
	}

	return key, presigned, nil
}

func (s *mediaService) PresignedURL(ctx context.Context, key string) (string, error) {
	presigned, err := s.client.PresignedGetObject(ctx, s.bucket, key, presignExpiry, url.Values{})
	if err != nil {
		return "", fmt.Errorf("failed to presign object: %w", err)
	}

	return presigned.String(), nil
}
