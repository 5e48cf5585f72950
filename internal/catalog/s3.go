// Streamscout - Cross-Platform Title Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/streamscout

package catalog

import (
	"context"
	"fmt"
	"io"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/rs/zerolog"

	"github.com/tomtom215/streamscout/internal/recommend"
)

// S3Config locates a catalog document in an S3-compatible bucket.
type S3Config struct {
	Bucket string
	Key    string
	Region string

	// Endpoint overrides the AWS endpoint, e.g. "http://127.0.0.1:9000" for MinIO.
	Endpoint string

	// AccessKey and SecretKey select static credentials. When empty, requests
	// are sent unsigned.
	AccessKey string
	SecretKey string

	// UsePathStyle addresses the bucket in the path rather than the host.
	UsePathStyle bool
}

// objectGetter is the subset of the S3 client used by S3Source.
type objectGetter interface {
	GetObject(ctx context.Context, params *s3.GetObjectInput, optFns ...func(*s3.Options)) (*s3.GetObjectOutput, error)
}

// S3Source reads a JSON catalog from an S3 object.
type S3Source struct {
	client objectGetter
	bucket string
	key    string
	logger zerolog.Logger
}

// NewS3Source creates a source for cfg.Bucket/cfg.Key.
//
//nolint:gocritic // logger passed by value is acceptable for zerolog
func NewS3Source(cfg S3Config, logger zerolog.Logger) (*S3Source, error) {
	if cfg.Bucket == "" || cfg.Key == "" {
		return nil, fmt.Errorf("s3 source requires bucket and key")
	}
	region := cfg.Region
	if region == "" {
		region = "us-east-1"
	}

	client := s3.NewFromConfig(aws.Config{Region: region}, func(o *s3.Options) {
		if cfg.Endpoint != "" {
			o.BaseEndpoint = aws.String(cfg.Endpoint)
		}
		if cfg.AccessKey != "" {
			o.Credentials = credentials.NewStaticCredentialsProvider(cfg.AccessKey, cfg.SecretKey, "")
		}
		o.UsePathStyle = cfg.UsePathStyle
	})

	return newS3Source(client, cfg.Bucket, cfg.Key, logger), nil
}

//nolint:gocritic // logger passed by value is acceptable for zerolog
func newS3Source(client objectGetter, bucket, key string, logger zerolog.Logger) *S3Source {
	return &S3Source{
		client: client,
		bucket: bucket,
		key:    key,
		logger: logger.With().Str("source", "s3").Str("bucket", bucket).Str("key", key).Logger(),
	}
}

// Name implements Source.
func (s *S3Source) Name() string {
	return "s3"
}

// Load implements Source.
func (s *S3Source) Load(ctx context.Context) ([]recommend.TitleRecord, error) {
	out, err := s.client.GetObject(ctx, &s3.GetObjectInput{
		Bucket: aws.String(s.bucket),
		Key:    aws.String(s.key),
	})
	if err != nil {
		return nil, fmt.Errorf("%w: get s3://%s/%s: %v", ErrSourceUnavailable, s.bucket, s.key, err)
	}
	defer out.Body.Close()

	data, err := io.ReadAll(out.Body)
	if err != nil {
		return nil, fmt.Errorf("%w: read s3://%s/%s: %v", ErrSourceUnavailable, s.bucket, s.key, err)
	}
	return decodeDocument(data, s.logger)
}
