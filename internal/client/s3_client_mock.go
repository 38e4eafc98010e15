package client

import (
	"context"
	"fmt"
	"path/filepath"
	"time"

	"github.com/google/uuid"
)

// MockS3Client implements AvatarStorage for tests without AWS credentials
type MockS3Client struct {
	Bucket   string
	Region   string
	Endpoint string

	GenerateAvatarKeyFunc   func(userID uuid.UUID, fileExt string) (string, error)
	PresignAvatarUploadFunc func(ctx context.Context, userID uuid.UUID, fileName, contentType string) (string, string, error)
	DeleteFileFunc          func(ctx context.Context, key string) error
	GetFileURLFunc          func(key string) string
}

// NewMockS3Client creates a new mock S3 client for testing
func NewMockS3Client() *MockS3Client {
	return &MockS3Client{
		Bucket: "test-bucket",
		Region: "ap-northeast-2",
	}
}

func (m *MockS3Client) GenerateAvatarKey(userID uuid.UUID, fileExt string) (string, error) {
	if m.GenerateAvatarKeyFunc != nil {
		return m.GenerateAvatarKeyFunc(userID, fileExt)
	}
	return avatarKey(userID, fileExt, time.Now())
}

func (m *MockS3Client) PresignAvatarUpload(ctx context.Context, userID uuid.UUID, fileName, contentType string) (string, string, error) {
	if m.PresignAvatarUploadFunc != nil {
		return m.PresignAvatarUploadFunc(ctx, userID, fileName, contentType)
	}

	fileKey, err := m.GenerateAvatarKey(userID, filepath.Ext(fileName))
	if err != nil {
		return "", "", fmt.Errorf("failed to generate file key: %w", err)
	}

	now := time.Now().UTC()
	presignedURL := fmt.Sprintf("%s?X-Amz-Algorithm=AWS4-HMAC-SHA256&X-Amz-Date=%s&X-Amz-Expires=%d&X-Amz-SignedHeaders=content-type%%3Bhost&X-Amz-Signature=mocksignature123",
		m.GetFileURL(fileKey),
		now.Format("20060102T150405Z"),
		int(AvatarUploadExpiry.Seconds()),
	)
	return presignedURL, fileKey, nil
}

func (m *MockS3Client) DeleteFile(ctx context.Context, key string) error {
	if m.DeleteFileFunc != nil {
		return m.DeleteFileFunc(ctx, key)
	}
	return nil
}

func (m *MockS3Client) GetFileURL(key string) string {
	if m.GetFileURLFunc != nil {
		return m.GetFileURLFunc(key)
	}
	return objectURL(m.Endpoint, m.Bucket, m.Region, key)
}

var _ AvatarStorage = (*MockS3Client)(nil)
