package storage

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"path/filepath"
	"restaurant-backend/domain"
	"restaurant-backend/internal/utils"
	"slices"
	"strings"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/gofiber/fiber/v2/log"
)

var AllowImage = []string{"image/jpeg", "image/png", "image/webp", "image/gif"}

type (
	AwsS3 interface {
		UploadFile(ctx context.Context, fileName string, file *multipart.FileHeader, folder string, allowed ...string) (string, error)
		UpdateFile(ctx context.Context, objectKey string, file *multipart.FileHeader, allowed ...string) (string, error)
		DeleteFile(ctx context.Context, objectKey string) error
		GetPublicLinkKey(objectKey string) string
		GetObjectKeyFromLink(link string) string
	}

	objectPutter interface {
		PutObject(ctx context.Context, params *s3.PutObjectInput, optFns ...func(*s3.Options)) (*s3.PutObjectOutput, error)
		DeleteObject(ctx context.Context, params *s3.DeleteObjectInput, optFns ...func(*s3.Options)) (*s3.DeleteObjectOutput, error)
	}

	awsS3 struct {
		client objectPutter
		bucket string
		region string
	}

	disabledS3 struct{}
)

// NewAwsS3 builds a client from AWS_* config keys. Without a bucket the
// returned storage rejects uploads instead of failing at startup.
func NewAwsS3() AwsS3 {
	bucket := utils.GetConfig("AWS_S3_BUCKET")
	region := utils.GetConfig("AWS_S3_REGION")
	if bucket == "" || region == "" {
		log.Warn("AWS_S3_BUCKET/AWS_S3_REGION not set, image uploads disabled")
		return disabledS3{}
	}

	opts := []func(*config.LoadOptions) error{config.WithRegion(region)}
	if key := utils.GetConfig("AWS_ACCESS_KEY"); key != "" {
		opts = append(opts, config.WithCredentialsProvider(
			credentials.NewStaticCredentialsProvider(key, utils.GetConfig("AWS_SECRET_KEY"), ""),
		))
	}
	cfg, err := config.LoadDefaultConfig(context.Background(), opts...)
	if err != nil {
		log.Errorw("failed to load aws config, image uploads disabled", "err", err)
		return disabledS3{}
	}

	return NewAwsS3WithClient(s3.NewFromConfig(cfg), bucket, region)
}

func NewAwsS3WithClient(client objectPutter, bucket, region string) AwsS3 {
	return &awsS3{client: client, bucket: bucket, region: region}
}

func (a *awsS3) UploadFile(ctx context.Context, fileName string, file *multipart.FileHeader, folder string, allowed ...string) (string, error) {
	objectKey := strings.Trim(folder, "/") + "/" + fileName + strings.ToLower(filepath.Ext(file.Filename))
	return a.put(ctx, objectKey, file, allowed)
}

func (a *awsS3) UpdateFile(ctx context.Context, objectKey string, file *multipart.FileHeader, allowed ...string) (string, error) {
	ext := strings.ToLower(filepath.Ext(file.Filename))
	if ext != "" && filepath.Ext(objectKey) != ext {
		if err := a.DeleteFile(ctx, objectKey); err != nil {
			return "", err
		}
		objectKey = strings.TrimSuffix(objectKey, filepath.Ext(objectKey)) + ext
	}
	return a.put(ctx, objectKey, file, allowed)
}

func (a *awsS3) put(ctx context.Context, objectKey string, file *multipart.FileHeader, allowed []string) (string, error) {
	src, err := file.Open()
	if err != nil {
		return "", err
	}
	defer src.Close()

	data, err := io.ReadAll(src)
	if err != nil {
		return "", err
	}

	contentType := http.DetectContentType(data)
	if len(allowed) > 0 && !slices.Contains(allowed, contentType) {
		return "", domain.ErrInvalidImageFormat
	}

	_, err = a.client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:      aws.String(a.bucket),
		Key:         aws.String(objectKey),
		Body:        bytes.NewReader(data),
		ContentType: aws.String(contentType),
	})
	if err != nil {
		return "", fmt.Errorf("put object %s: %w", objectKey, err)
	}
	return objectKey, nil
}

func (a *awsS3) DeleteFile(ctx context.Context, objectKey string) error {
	_, err := a.client.DeleteObject(ctx, &s3.DeleteObjectInput{
		Bucket: aws.String(a.bucket),
		Key:    aws.String(objectKey),
	})
	return err
}

func (a *awsS3) GetPublicLinkKey(objectKey string) string {
	return fmt.Sprintf("https://%s.s3.%s.amazonaws.com/%s", a.bucket, a.region, objectKey)
}

func (a *awsS3) GetObjectKeyFromLink(link string) string {
	prefix := fmt.Sprintf("https://%s.s3.%s.amazonaws.com/", a.bucket, a.region)
	if !strings.HasPrefix(link, prefix) {
		return ""
	}
	return strings.TrimPrefix(link, prefix)
}

func (disabledS3) UploadFile(context.Context, string, *multipart.FileHeader, string, ...string) (string, error) {
	return "", domain.ErrStorageNotConfigured
}

func (disabledS3) UpdateFile(context.Context, string, *multipart.FileHeader, ...string) (string, error) {
	return "", domain.ErrStorageNotConfigured
}

func (disabledS3) DeleteFile(context.Context, string) error {
	return domain.ErrStorageNotConfigured
}

func (disabledS3) GetPublicLinkKey(string) string { return "" }

func (disabledS3) GetObjectKeyFromLink(string) string { return "" }
