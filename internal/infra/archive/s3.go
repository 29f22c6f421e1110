package archive

import (
	"bytes"
	"context"
	"fmt"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
)

type S3Options struct {
	Bucket    string
	Endpoint  string
	Region    string
	AccessKey string
	SecretKey string
}

type objectPutter interface {
	PutObject(ctx context.Context, in *s3.PutObjectInput, optFns ...func(*s3.Options)) (*s3.PutObjectOutput, error)
}

// S3Archive stores a copy of every exported PDF in an S3-compatible bucket.
type S3Archive struct {
	client objectPutter
	bucket string
}

func NewS3Archive(opts S3Options) *S3Archive {
	s3opts := s3.Options{
		Region:      opts.Region,
		Credentials: credentials.NewStaticCredentialsProvider(opts.AccessKey, opts.SecretKey, ""),
	}
	// MinIO and other self-hosted endpoints need path-style addressing.
	if opts.Endpoint != "" {
		s3opts.BaseEndpoint = aws.String(opts.Endpoint)
		s3opts.UsePathStyle = true
	}

	return &S3Archive{
		client: s3.New(s3opts),
		bucket: opts.Bucket,
	}
}

func (a *S3Archive) Store(ctx context.Context, key string, content []byte) error {
	_, err := a.client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:      aws.String(a.bucket),
		Key:         aws.String(key),
		Body:        bytes.NewReader(content),
		ContentType: aws.String("application/pdf"),
	})
	if err != nil {
		return fmt.Errorf("archive: put %s/%s: %w", a.bucket, key, err)
	}
	return nil
}

// Noop discards everything. It is used when no bucket is configured.
type Noop struct{}

func (Noop) Store(context.Context, string, []byte) error { return nil }
