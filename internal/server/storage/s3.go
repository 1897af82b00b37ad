package storage

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	v4 "github.com/aws/aws-sdk-go-v2/aws/signer/v4"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"

	"github.com/dmitrijs2005/recipeadmin/internal/logging"
)

// PictureStore persists optimized pictures by id and hands out URLs to them.
type PictureStore interface {
	Put(ctx context.Context, id string, data []byte) error
	Delete(ctx context.Context, id string) error
	URL(ctx context.Context, id string) (string, error)
}

// ObjectAPI is the part of *s3.Client the store uses.
type ObjectAPI interface {
	PutObject(ctx context.Context, in *s3.PutObjectInput, optFns ...func(*s3.Options)) (*s3.PutObjectOutput, error)
	DeleteObject(ctx context.Context, in *s3.DeleteObjectInput, optFns ...func(*s3.Options)) (*s3.DeleteObjectOutput, error)
}

// Presigner is the part of *s3.PresignClient the store uses.
type Presigner interface {
	PresignGetObject(ctx context.Context, in *s3.GetObjectInput, optFns ...func(*s3.PresignOptions)) (*v4.PresignedHTTPRequest, error)
}

// S3Config names the bucket and how to reach it.
type S3Config struct {
	AccessKey    string
	SecretKey    string
	Bucket       string
	Region       string
	BaseEndpoint string
	URLValidity  time.Duration
}

var (
	loadDefaultAWSConfig  = config.LoadDefaultConfig
	newS3ClientFromConfig = func(cfg aws.Config, optFns ...func(*s3.Options)) *s3.Client {
		return s3.NewFromConfig(cfg, optFns...)
	}
)

// S3Store is a PictureStore over an S3 bucket.
type S3Store struct {
	api       ObjectAPI
	presigner Presigner
	bucket    string
	validity  time.Duration
	logger    logging.Logger
}

// NewS3Store builds the S3 client with static credentials and path-style
// addressing, which MinIO and most S3 clones need.
func NewS3Store(ctx context.Context, cfg S3Config, logger logging.Logger) (*S3Store, error) {
	awsCfg, err := loadDefaultAWSConfig(ctx,
		config.WithRegion(cfg.Region),
		config.WithCredentialsProvider(credentials.NewStaticCredentialsProvider(cfg.AccessKey, cfg.SecretKey, "")),
	)
	if err != nil {
		return nil, fmt.Errorf("load aws config: %w", err)
	}

	client := newS3ClientFromConfig(awsCfg, func(o *s3.Options) {
		if cfg.BaseEndpoint != "" {
			o.BaseEndpoint = aws.String(cfg.BaseEndpoint)
		}
		o.UsePathStyle = true
	})

	return NewS3StoreWith(client, s3.NewPresignClient(client), cfg.Bucket, cfg.URLValidity, logger), nil
}

// NewS3StoreWith assembles a store from ready clients.
func NewS3StoreWith(api ObjectAPI, presigner Presigner, bucket string, validity time.Duration, logger logging.Logger) *S3Store {
	if validity <= 0 {
		validity = 15 * time.Minute
	}
	return &S3Store{api: api, presigner: presigner, bucket: bucket, validity: validity, logger: logger.With("module", "storage")}
}

func (s *S3Store) Put(ctx context.Context, id string, data []byte) error {
	_, err := s.api.PutObject(ctx, &s3.PutObjectInput{
		Bucket:        aws.String(s.bucket),
		Key:           aws.String(id),
		Body:          bytes.NewReader(data),
		ContentLength: aws.Int64(int64(len(data))),
		ContentType:   aws.String("image/jpeg"),
	})
	if err != nil {
		return fmt.Errorf("put picture %s: %w", id, err)
	}
	s.logger.Debug(ctx, "picture stored", "id", id, "size", len(data))
	return nil
}

func (s *S3Store) Delete(ctx context.Context, id string) error {
	_, err := s.api.DeleteObject(ctx, &s3.DeleteObjectInput{
		Bucket: aws.String(s.bucket),
		Key:    aws.String(id),
	})
	if err != nil {
		return fmt.Errorf("delete picture %s: %w", id, err)
	}
	return nil
}

// URL returns a presigned GET URL valid for the configured duration.
func (s *S3Store) URL(ctx context.Context, id string) (string, error) {
	req, err := s.presigner.PresignGetObject(ctx, &s3.GetObjectInput{
		Bucket: aws.String(s.bucket),
		Key:    aws.String(id),
	}, s3.WithPresignExpires(s.validity))
	if err != nil {
		return "", fmt.Errorf("presign picture %s: %w", id, err)
	}
	if req == nil || req.URL == "" {
		return "", errors.New("presign returned empty url")
	}
	return req.URL, nil
}
