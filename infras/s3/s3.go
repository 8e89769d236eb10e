package s3

//go:generate go run go.uber.org/mock/mockgen -source=./s3.go -destination=./mocks/s3_mock.go -package=mocks

import (
	"bytes"
	"context"
	"fmt"
	"hotel/config"
	"hotel/infras/otel"
	"hotel/shared/constant"
	"io"
	"mime/multipart"
	"path"
	"strings"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsConfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/rs/zerolog/log"
)

const (
	otelAttrObjectKey = "object_key"
	otelAttrBucket    = "bucket"

	// Room images never change under the same key, snapshots are replaced often.
	cacheControlImmutable = "public, max-age=31536000, immutable"
	cacheControlNoCache   = "no-cache"
)

// S3 stores room images and channel export snapshots. Objects live under
// <directory>/<name> and are addressed by their public URL.
type S3 interface {
	UploadFile(ctx context.Context, bucketName, directory string, file multipart.File, fileHeader *multipart.FileHeader, fileName string) (url string, err error)
	UploadFileBytes(ctx context.Context, bucketName, directory, fileName, contentType string, fileData []byte) (url string, err error)
	DeleteFile(ctx context.Context, bucketName, directory, objectName string) error
	GetObjectNameFromURL(bucketName, url string) (objectName string)
}

type s3Impl struct {
	client *s3.Client
	cfg    *config.Config
	otel   otel.Otel
}

func New(cfg *config.Config, otel otel.Otel) S3 {
	awsCfg, err := awsConfig.LoadDefaultConfig(
		context.Background(),
		awsConfig.WithRegion(cfg.External.S3.Region),
		awsConfig.WithCredentialsProvider(credentials.NewStaticCredentialsProvider(
			cfg.External.S3.AccessKeyID,
			cfg.External.S3.SecretAccessKey,
			constant.Empty,
		)),
	)
	if err != nil {
		log.Error().Err(err).Msg("failed to load object storage configuration")
	}

	client := s3.NewFromConfig(awsCfg, func(o *s3.Options) {
		if cfg.External.S3.APIEndpoint != constant.Empty {
			o.BaseEndpoint = aws.String(cfg.External.S3.APIEndpoint)
		}

		o.UsePathStyle = true
	})

	return &s3Impl{
		client: client,
		cfg:    cfg,
		otel:   otel,
	}
}

func (svc *s3Impl) UploadFile(ctx context.Context, bucketName, directory string, file multipart.File, fileHeader *multipart.FileHeader, fileName string) (url string, err error) {
	ctx, scope := svc.otel.NewScope(ctx, constant.OtelS3ScopeName, constant.OtelS3ScopeName+".UploadFile")
	defer scope.End()
	defer scope.TraceIfError(err)

	data, err := io.ReadAll(file)
	if err != nil {
		log.Error().Err(err).Str("file", fileName).Msg("failed to read uploaded file")

		return constant.Empty, fmt.Errorf("failed to read file: %w", err)
	}

	contentType := fileHeader.Header.Get(constant.RequestHeaderContentType)

	return svc.put(ctx, scope, svc.bucket(bucketName), path.Join(directory, fileName), contentType, cacheControlImmutable, data)
}

func (svc *s3Impl) UploadFileBytes(ctx context.Context, bucketName, directory, fileName, contentType string, fileData []byte) (url string, err error) {
	ctx, scope := svc.otel.NewScope(ctx, constant.OtelS3ScopeName, constant.OtelS3ScopeName+".UploadFileBytes")
	defer scope.End()
	defer scope.TraceIfError(err)

	cacheControl := cacheControlImmutable
	if contentType == constant.ContentTypeJSON {
		cacheControl = cacheControlNoCache
	}

	return svc.put(ctx, scope, svc.bucket(bucketName), path.Join(directory, fileName), contentType, cacheControl, fileData)
}

func (svc *s3Impl) DeleteFile(ctx context.Context, bucketName, directory, objectName string) (err error) {
	ctx, scope := svc.otel.NewScope(ctx, constant.OtelS3ScopeName, constant.OtelS3ScopeName+".DeleteFile")
	defer scope.End()
	defer scope.TraceIfError(err)

	bucket := svc.bucket(bucketName)
	key := path.Join(directory, objectName)

	scope.SetAttributes(map[string]any{
		otelAttrObjectKey: key,
		otelAttrBucket:    bucket,
	})

	if _, err = svc.client.DeleteObject(ctx, &s3.DeleteObjectInput{
		Bucket: aws.String(bucket),
		Key:    aws.String(key),
	}); err != nil {
		log.Error().Err(err).Str("key", key).Msg("failed to delete object")

		return fmt.Errorf("failed to delete file from S3: %w", err)
	}

	return nil
}

// GetObjectNameFromURL returns the file name of an object this client
// uploaded, or an empty string when url points elsewhere.
func (svc *s3Impl) GetObjectNameFromURL(bucketName, url string) string {
	bucket := svc.bucket(bucketName)

	for _, prefix := range []string{svc.publicBase(bucket), svc.endpointBase(bucket)} {
		if prefix == constant.Empty {
			continue
		}

		if key, ok := strings.CutPrefix(url, prefix+"/"); ok && key != constant.Empty {
			return path.Base(key)
		}
	}

	return constant.Empty
}

func (svc *s3Impl) put(ctx context.Context, scope otel.Scope, bucket, key, contentType, cacheControl string, data []byte) (string, error) {
	scope.SetAttributes(map[string]any{
		otelAttrObjectKey: key,
		otelAttrBucket:    bucket,
		"content_type":    contentType,
		"size":            len(data),
	})

	if _, err := svc.client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:        aws.String(bucket),
		Key:           aws.String(key),
		Body:          bytes.NewReader(data),
		ContentType:   aws.String(contentType),
		CacheControl:  aws.String(cacheControl),
		ContentLength: aws.Int64(int64(len(data))),
	}); err != nil {
		log.Error().Err(err).Str("bucket", bucket).Str("key", key).Msg("failed to upload object")

		return constant.Empty, fmt.Errorf("failed to upload file to S3: %w", err)
	}

	return svc.objectURL(bucket, key), nil
}

func (svc *s3Impl) bucket(name string) string {
	if name == constant.Empty {
		return svc.cfg.External.S3.BucketName
	}

	return name
}

// objectURL prefers the public domain, which serves the default bucket only.
func (svc *s3Impl) objectURL(bucket, key string) string {
	if base := svc.publicBase(bucket); base != constant.Empty {
		return base + "/" + key
	}

	return svc.endpointBase(bucket) + "/" + key
}

func (svc *s3Impl) publicBase(bucket string) string {
	domain := strings.TrimSuffix(svc.cfg.External.S3.PublicDomain, "/")
	if domain == constant.Empty || bucket != svc.cfg.External.S3.BucketName {
		return constant.Empty
	}

	return domain
}

func (svc *s3Impl) endpointBase(bucket string) string {
	return strings.TrimSuffix(svc.cfg.External.S3.APIEndpoint, "/") + "/" + bucket
}
