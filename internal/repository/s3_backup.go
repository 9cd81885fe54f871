package repository

import (
	"bytes"
	"context"
	"fmt"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	appConfig "github.com/mansoorceksport/gymlogger/internal/config"
)

// S3BackupRepository uploads exported backup files to an S3-compatible
// store (MinIO, SeaweedFS, or real S3) so a user can pull a backup onto
// another device by hand. This is manual one-way sharing, not sync.
type S3BackupRepository struct {
	client    *s3.Client
	bucket    string
	publicURL string
}

// NewS3BackupRepository creates an S3 backup repository and ensures the
// target bucket exists.
func NewS3BackupRepository(ctx context.Context, cfg appConfig.S3Config) (*S3BackupRepository, error) {
	// Static credentials because self-hosted S3-compatible stores still
	// require request signatures.
	awsCfg, err := config.LoadDefaultConfig(ctx,
		config.WithRegion(cfg.Region),
		config.WithCredentialsProvider(credentials.NewStaticCredentialsProvider(cfg.AccessKey, cfg.SecretKey, "")),
	)
	if err != nil {
		return nil, fmt.Errorf("unable to load SDK config, %v", err)
	}

	client := s3.NewFromConfig(awsCfg, func(o *s3.Options) {
		o.BaseEndpoint = aws.String(cfg.Endpoint)
		o.UsePathStyle = true // Required for many S3-compatible stores
	})

	repo := &S3BackupRepository{
		client:    client,
		bucket:    cfg.Bucket,
		publicURL: cfg.Endpoint,
	}

	if err := repo.ensureBucket(ctx); err != nil {
		return nil, err
	}

	return repo, nil
}

// Upload saves a backup file to S3 and returns its URL.
func (r *S3BackupRepository) Upload(ctx context.Context, file []byte, filename string, contentType string) (string, error) {
	_, err := r.client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:      aws.String(r.bucket),
		Key:         aws.String(filename),
		Body:        bytes.NewReader(file),
		ContentType: aws.String(contentType),
	})
	if err != nil {
		return "", fmt.Errorf("failed to upload backup to S3: %w", err)
	}

	return fmt.Sprintf("%s/%s/%s", r.publicURL, r.bucket, filename), nil
}

// ensureBucket checks if the bucket exists, creating it if necessary.
func (r *S3BackupRepository) ensureBucket(ctx context.Context) error {
	_, err := r.client.HeadBucket(ctx, &s3.HeadBucketInput{
		Bucket: aws.String(r.bucket),
	})
	if err != nil {
		_, err = r.client.CreateBucket(ctx, &s3.CreateBucketInput{
			Bucket: aws.String(r.bucket),
		})
		if err != nil {
			return fmt.Errorf("failed to create bucket %s: %w", r.bucket, err)
		}
	}
	return nil
}
