package storage

import (
	"bytes"
	"context"
	"fmt"
	"strings"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/sangkips/cafeteria-pos/internal/config"
	"github.com/sangkips/cafeteria-pos/internal/domain/repository"
)

const imagePrefix = "products/"

type s3Store struct {
	client    *s3.Client
	bucket    string
	publicURL string
}

// NewS3Store keeps images in an S3 compatible bucket
func NewS3Store(cfg config.S3Config) (repository.ImageStore, error) {
	bucket := strings.TrimSpace(cfg.Bucket)
	region := strings.TrimSpace(cfg.Region)
	if bucket == "" || region == "" || cfg.AccessKey == "" || cfg.SecretKey == "" {
		return nil, fmt.Errorf("incomplete s3 config: bucket/region/access key/secret key are required")
	}

	opts := s3.Options{
		Region:      region,
		Credentials: credentials.NewStaticCredentialsProvider(cfg.AccessKey, cfg.SecretKey, ""),
	}
	if endpoint := strings.TrimSpace(cfg.Endpoint); endpoint != "" {
		if !strings.HasPrefix(endpoint, "http://") && !strings.HasPrefix(endpoint, "https://") {
			endpoint = "https://" + endpoint
		}
		opts.BaseEndpoint = aws.String(strings.TrimSuffix(endpoint, "/"))
		// custom endpoints (minio, r2) only serve path style
		opts.UsePathStyle = true
	}

	publicURL := strings.TrimRight(strings.TrimSpace(cfg.PublicURL), "/")
	if publicURL == "" {
		publicURL = fmt.Sprintf("https://%s.s3.%s.amazonaws.com", bucket, region)
	}

	return &s3Store{
		client:    s3.New(opts),
		bucket:    bucket,
		publicURL: publicURL,
	}, nil
}

func (s *s3Store) Save(ctx context.Context, name string, data []byte, contentType string) (string, error) {
	clean, err := objectName(name)
	if err != nil {
		return "", err
	}
	if contentType == "" {
		contentType = "application/octet-stream"
	}
	key := imagePrefix + clean

	_, err = s.client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:      aws.String(s.bucket),
		Key:         aws.String(key),
		Body:        bytes.NewReader(data),
		ContentType: aws.String(contentType),
	})
	if err != nil {
		return "", fmt.Errorf("storage: put %s: %w", key, err)
	}
	return s.publicURL + "/" + key, nil
}

func (s *s3Store) Delete(ctx context.Context, location string) error {
	key, ok := s.keyFor(location)
	if !ok {
		return nil
	}
	_, err := s.client.DeleteObject(ctx, &s3.DeleteObjectInput{
		Bucket: aws.String(s.bucket),
		Key:    aws.String(key),
	})
	if err != nil {
		return fmt.Errorf("storage: delete %s: %w", key, err)
	}
	return nil
}

// keyFor maps a public URL saved on an item back to its object key
func (s *s3Store) keyFor(location string) (string, bool) {
	key, found := strings.CutPrefix(location, s.publicURL+"/")
	if !found || key == "" {
		return "", false
	}
	return key, true
}
