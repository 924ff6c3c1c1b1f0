package storage

import (
	"context"
	"fmt"
	"io"
	"path"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

// Uploader stores billboard images and returns their public URLs.
type Uploader interface {
	Upload(ctx context.Context, filename, contentType string, body io.Reader) (string, error)
}

// S3Uploader writes images to a public S3 bucket under images/.
type S3Uploader struct {
	client *s3.Client
	bucket string
	region string
	logger *logrus.Logger
}

func NewS3Uploader(ctx context.Context, bucket, region string, logger *logrus.Logger) (*S3Uploader, error) {
	cfg, err := awsconfig.LoadDefaultConfig(ctx, awsconfig.WithRegion(region))
	if err != nil {
		return nil, fmt.Errorf("failed to load AWS config: %w", err)
	}
	return &S3Uploader{
		client: s3.NewFromConfig(cfg),
		bucket: bucket,
		region: region,
		logger: logger,
	}, nil
}

func (u *S3Uploader) Upload(ctx context.Context, filename, contentType string, body io.Reader) (string, error) {
	key := fmt.Sprintf("images/%s%s", uuid.New().String(), path.Ext(filename))

	_, err := u.client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:      aws.String(u.bucket),
		Key:         aws.String(key),
		Body:        body,
		ContentType: aws.String(contentType),
	})
	if err != nil {
		return "", fmt.Errorf("failed to upload image: %w", err)
	}

	url := fmt.Sprintf("https://%s.s3.%s.amazonaws.com/%s", u.bucket, u.region, key)
	u.logger.WithFields(logrus.Fields{
		"bucket": u.bucket,
		"key":    key,
	}).Info("Image uploaded")
	return url, nil
}

// LocalNoop is used when no bucket is configured. Uploads are skipped and
// listings keep whatever image URLs the client supplied.
type LocalNoop struct{}

func (LocalNoop) Upload(ctx context.Context, filename, contentType string, body io.Reader) (string, error) {
	return "", nil
}
