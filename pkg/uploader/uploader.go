package uploader

import (
	"context"
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/google/uuid"

	"github.com/carmegar/blogpage/metal/env"
)

// ObjectStore is the slice of the S3 client the uploader needs; tests swap
// in a fake.
type ObjectStore interface {
	PutObject(ctx context.Context, params *s3.PutObjectInput, optFns ...func(*s3.Options)) (*s3.PutObjectOutput, error)
	DeleteObject(ctx context.Context, params *s3.DeleteObjectInput, optFns ...func(*s3.Options)) (*s3.DeleteObjectOutput, error)
}

// Uploader stores media in an S3-compatible bucket and hands back the
// public URL the client can embed.
type Uploader struct {
	client  ObjectStore
	storage env.StorageEnvironment
}

func New(ctx context.Context, storage env.StorageEnvironment) (*Uploader, error) {
	opts := []func(*config.LoadOptions) error{
		config.WithRegion(storage.Region),
		config.WithCredentialsProvider(
			credentials.NewStaticCredentialsProvider(storage.AccessKey, storage.SecretKey, ""),
		),
	}

	if storage.Endpoint != "" {
		endpoint := storage.Endpoint

		resolver := aws.EndpointResolverWithOptionsFunc(func(service, region string, options ...interface{}) (aws.Endpoint, error) {
			return aws.Endpoint{URL: endpoint}, nil
		})

		opts = append(opts, config.WithEndpointResolverWithOptions(resolver))
	}

	awsCfg, err := config.LoadDefaultConfig(ctx, opts...)
	if err != nil {
		return nil, fmt.Errorf("load storage config: %w", err)
	}

	return &Uploader{
		client:  s3.NewFromConfig(awsCfg),
		storage: storage,
	}, nil
}

func NewWithClient(client ObjectStore, storage env.StorageEnvironment) *Uploader {
	return &Uploader{
		client:  client,
		storage: storage,
	}
}

// Put streams body into the bucket under key and returns the public URL.
func (u *Uploader) Put(ctx context.Context, key string, body io.Reader, contentType string) (string, error) {
	_, err := u.client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:      aws.String(u.storage.Bucket),
		Key:         aws.String(key),
		Body:        body,
		ContentType: aws.String(contentType),
	})

	if err != nil {
		return "", fmt.Errorf("put object %s: %w", key, err)
	}

	return u.PublicURL(key), nil
}

// Delete removes a previously stored object. Unknown keys succeed; S3 treats
// the delete as idempotent, and so do we.
func (u *Uploader) Delete(ctx context.Context, key string) error {
	_, err := u.client.DeleteObject(ctx, &s3.DeleteObjectInput{
		Bucket: aws.String(u.storage.Bucket),
		Key:    aws.String(strings.TrimLeft(key, "/")),
	})

	if err != nil {
		return fmt.Errorf("delete object %s: %w", key, err)
	}

	return nil
}

// KeyFromURL maps a public URL served by this bucket back onto its object
// key; it returns an empty string for foreign URLs.
func (u *Uploader) KeyFromURL(publicURL string) string {
	base := strings.TrimRight(u.storage.PublicURL, "/")
	if base == "" {
		base = fmt.Sprintf("https://%s.s3.%s.amazonaws.com", u.storage.Bucket, u.storage.Region)
	}

	if !strings.HasPrefix(publicURL, base+"/") {
		return ""
	}

	return strings.TrimPrefix(publicURL, base+"/")
}

func (u *Uploader) PublicURL(key string) string {
	base := strings.TrimRight(u.storage.PublicURL, "/")

	if base == "" {
		base = fmt.Sprintf("https://%s.s3.%s.amazonaws.com", u.storage.Bucket, u.storage.Region)
	}

	return base + "/" + strings.TrimLeft(key, "/")
}

// MakeKey builds a collision-free object key preserving the original file
// extension.
func MakeKey(folder, filename string) string {
	ext := strings.ToLower(filepath.Ext(filename))

	return fmt.Sprintf("%s/%s%s", strings.Trim(folder, "/"), uuid.NewString(), ext)
}
