package s3

import (
	"context"
	"fmt"
	"io"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/feature/s3/manager"
	awss3 "github.com/aws/aws-sdk-go-v2/service/s3"

	"studydesk/internal/config"
)

// Client wraps the object store holding original uploaded PDFs. Works
// against AWS S3 or a MinIO endpoint (path-style when Endpoint is set).
type Client struct {
	bucket   string
	uploader *manager.Uploader
	s3       *awss3.Client
}

func New(cfg config.S3Config) *Client {
	var opts []func(*awss3.Options)
	if cfg.Endpoint != "" {
		opts = append(opts, func(o *awss3.Options) {
			o.BaseEndpoint = aws.String(cfg.Endpoint)
			o.UsePathStyle = true
		})
	}

	awsCfg := aws.Config{
		Region: cfg.Region,
		Credentials: credentials.NewStaticCredentialsProvider(
			cfg.AccessKeyID,
			cfg.SecretAccessKey,
			"",
		),
	}

	client := awss3.NewFromConfig(awsCfg, opts...)
	return &Client{
		bucket:   cfg.Bucket,
		uploader: manager.NewUploader(client),
		s3:       client,
	}
}

func (c *Client) Put(ctx context.Context, key, contentType string, body io.Reader) error {
	_, err := c.uploader.Upload(ctx, &awss3.PutObjectInput{
		Bucket:      aws.String(c.bucket),
		Key:         aws.String(key),
		Body:        body,
		ContentType: aws.String(contentType),
	})
	if err != nil {
		return fmt.Errorf("upload object failed: %w", err)
	}
	return nil
}

func (c *Client) PresignGet(ctx context.Context, key string, expires time.Duration) (string, error) {
	presign := awss3.NewPresignClient(c.s3)
	request, err := presign.PresignGetObject(ctx, &awss3.GetObjectInput{
		Bucket: aws.String(c.bucket),
		Key:    aws.String(key),
	}, awss3.WithPresignExpires(expires))
	if err != nil {
		return "", fmt.Errorf("presign object failed: %w", err)
	}
	return request.URL, nil
}

func (c *Client) Ping(ctx context.Context) error {
	if _, err := c.s3.HeadBucket(ctx, &awss3.HeadBucketInput{Bucket: aws.String(c.bucket)}); err != nil {
		return fmt.Errorf("head bucket failed: %w", err)
	}
	return nil
}
