package filestore

import (
	"bytes"
	"context"
	"fmt"
	"strings"

	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"
)

// S3 stores images in an S3-compatible bucket behind a public host.
type S3 struct {
	client *minio.Client
	bucket string
	host   string
}

var _ FileStore = (*S3)(nil)

type S3Config struct {
	Endpoint  string
	AccessKey string
	SecretKey string
	Bucket    string
	UseSSL    bool

	// Host is the public origin the bucket is served from.
	Host string
}

func NewS3(conf S3Config) (*S3, error) {
	client, err := minio.New(conf.Endpoint, &minio.Options{
		Creds:  credentials.NewStaticV4(conf.AccessKey, conf.SecretKey, ""),
		Secure: conf.UseSSL,
	})
	if err != nil {
		return nil, fmt.Errorf("creating s3 client: %w", err)
	}

	return &S3{
		client: client,
		bucket: conf.Bucket,
		host:   strings.TrimRight(conf.Host, "/"),
	}, nil
}

// EnsureBucket creates the bucket if it does not exist yet.
func (s *S3) EnsureBucket(ctx context.Context) error {
	exists, err := s.client.BucketExists(ctx, s.bucket)
	if err != nil {
		return fmt.Errorf("checking bucket: %w", err)
	}
	if exists {
		return nil
	}
	if err := s.client.MakeBucket(ctx, s.bucket, minio.MakeBucketOptions{}); err != nil {
		return fmt.Errorf("creating bucket: %w", err)
	}
	return nil
}

func (s *S3) WriteRecipeImage(ctx context.Context, suffix string, data []byte) (string, int, error) {
	key := recipeImageKey("", suffix)
	info, err := s.client.PutObject(ctx, s.bucket, key,
		bytes.NewReader(data), int64(len(data)), minio.PutObjectOptions{})
	if err != nil {
		return "", 0, fmt.Errorf("putting object: %w", err)
	}
	return "/" + key, int(info.Size), nil
}

func (s *S3) Delete(ctx context.Context, key string) error {
	return s.client.RemoveObject(ctx, s.bucket, strings.TrimLeft(key, "/"), minio.RemoveObjectOptions{})
}

func (s *S3) FileURL(key string) string {
	return s.host + "/" + strings.TrimLeft(key, "/")
}
