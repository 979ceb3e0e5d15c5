// Package assets wraps the S3-compatible object store holding image and
// document files. Records in the content model keep only the object key;
// public URLs are resolved here.
package assets

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	awscfg "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"

	"github.com/helenb/wagtail-torchbox/config"
)

// Client wraps the AWS S3 client configured for an S3-compatible store.
type Client struct {
	s3       *s3.Client
	presig   *s3.PresignClient
	endpoint string
	bucket   string
	ttl      time.Duration
}

// New creates a new asset-store client.
func New(cfg config.AssetsConfig) (*Client, error) {
	if cfg.Bucket == "" {
		return nil, fmt.Errorf("assets: bucket name is required")
	}

	resolver := aws.EndpointResolverWithOptionsFunc(
		func(service, region string, options ...any) (aws.Endpoint, error) {
			return aws.Endpoint{
				URL:               cfg.Endpoint,
				SigningRegion:     cfg.Region,
				HostnameImmutable: true,
			}, nil
		},
	)

	awsCfg, err := awscfg.LoadDefaultConfig(context.Background(),
		awscfg.WithRegion(cfg.Region),
		awscfg.WithCredentialsProvider(credentials.NewStaticCredentialsProvider(
			cfg.AccessKeyID,
			cfg.SecretAccessKey,
			"",
		)),
		awscfg.WithEndpointResolverWithOptions(resolver),
	)
	if err != nil {
		return nil, fmt.Errorf("assets: load config: %w", err)
	}

	cli := s3.NewFromConfig(awsCfg, func(o *s3.Options) {
		o.UsePathStyle = true
	})

	ttl := time.Duration(cfg.PresignTTLSec) * time.Second
	if ttl <= 0 {
		ttl = 5 * time.Minute
	}

	return &Client{
		s3:       cli,
		presig:   s3.NewPresignClient(cli),
		endpoint: strings.TrimRight(cfg.Endpoint, "/"),
		bucket:   cfg.Bucket,
		ttl:      ttl,
	}, nil
}

// URL returns the public path-style URL for an object key. Buckets holding
// site media are public-read, so no request is made.
func (c *Client) URL(key string) string {
	return c.endpoint + "/" + c.bucket + "/" + strings.TrimLeft(key, "/")
}

// PresignDownload generates a presigned GET URL valid for the configured TTL.
func (c *Client) PresignDownload(ctx context.Context, key string) (string, error) {
	req, err := c.presig.PresignGetObject(ctx, &s3.GetObjectInput{
		Bucket: aws.String(c.bucket),
		Key:    aws.String(key),
	}, s3.WithPresignExpires(c.ttl))
	if err != nil {
		return "", fmt.Errorf("assets presign %q: %w", key, err)
	}
	return req.URL, nil
}
