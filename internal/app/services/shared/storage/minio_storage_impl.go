package storage

import (
	"bytes"
	"context"
	"sync"
	"time"

	"dental-clinic-service/internal/app/contracts"
	"dental-clinic-service/internal/pkg/exceptions"

	"github.com/minio/minio-go/v7"
	"go.uber.org/zap"
)

const presignedURLExpiry = 24 * time.Hour

type minioStorage struct {
	client     *minio.Client
	bucketName string
	log        *zap.Logger
}

var (
	minioStorageInstance contracts.Storage
	onceMinioStorage     sync.Once
)

func NewMinioStorage(client *minio.Client, bucketName string, logger *zap.Logger) contracts.Storage {
	onceMinioStorage.Do(func() {
		minioStorageInstance = &minioStorage{
			client:     client,
			bucketName: bucketName,
			log:        logger,
		}
	})
	return minioStorageInstance
}

// UploadObject stores data under objectName and returns a presigned URL the
// client can render directly.
func (s *minioStorage) UploadObject(ctx context.Context, objectName string, data []byte, contentType string) (string, error) {
	reader := bytes.NewReader(data)
	_, err := s.client.PutObject(ctx, s.bucketName, objectName, reader, int64(len(data)), minio.PutObjectOptions{
		ContentType: contentType,
	})
	if err != nil {
		return "", exceptions.ErrMinioCreateObject(err, s.bucketName)
	}

	presignedURL, err := s.client.PresignedGetObject(ctx, s.bucketName, objectName, presignedURLExpiry, nil)
	if err != nil {
		return "", exceptions.ErrMinioFindObjectPresignedURL(err, s.bucketName)
	}

	s.log.Info("object uploaded",
		zap.String("bucket", s.bucketName),
		zap.String("object", objectName),
	)
	return presignedURL.String(), nil
}
