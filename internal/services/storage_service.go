// internal/services/storage_service.go
package services

import (
	"bytes"
	"fmt"
	"io"
	"mime/multipart"
	"os"
	"path"
	"path/filepath"
	"regexp"
	"strings"
	"time"

	"github.com/aws/aws-sdk-go/aws"
	"github.com/aws/aws-sdk-go/aws/credentials"
	"github.com/aws/aws-sdk-go/aws/session"
	"github.com/aws/aws-sdk-go/service/s3"
	"github.com/gabriel-vasile/mimetype"
	"github.com/sirupsen/logrus"

	"github.com/javajoker/variant-catalog/internal/catalog"
	"github.com/javajoker/variant-catalog/internal/config"
)

const (
	FolderProductImages = "product-images"
	FolderGeneral       = "general"
)

var whitespaceRun = regexp.MustCompile(`\s+`)

var allowedImageTypes = []string{"image/jpeg", "image/png", "image/gif", "image/webp"}

// StorageService writes uploaded files to S3 when AWS credentials are
// configured and to the local upload directory otherwise.
type StorageService struct {
	s3Client *s3.S3
	config   *config.Config
	now      func() time.Time
}

type UploadResult struct {
	URL      string `json:"url"`
	Key      string `json:"key"`
	Size     int64  `json:"size"`
	MimeType string `json:"mime_type"`
}

type UploadOptions struct {
	Folder       string
	MaxSize      int64 // in bytes
	AllowedTypes []string
	IsPublic     bool
}

func NewStorageService(config *config.Config) (*StorageService, error) {
	if config.AWS.AccessKeyID == "" {
		return &StorageService{config: config, now: time.Now}, nil
	}

	sess, err := session.NewSession(&aws.Config{
		Region: aws.String(config.AWS.Region),
		Credentials: credentials.NewStaticCredentials(
			config.AWS.AccessKeyID,
			config.AWS.SecretAccessKey,
			"",
		),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create AWS session: %w", err)
	}

	return &StorageService{
		s3Client: s3.New(sess),
		config:   config,
		now:      time.Now,
	}, nil
}

// UploadHeader opens a multipart file header and uploads its content.
func (s *StorageService) UploadHeader(header *multipart.FileHeader, options UploadOptions) (*UploadResult, error) {
	file, err := header.Open()
	if err != nil {
		return nil, fmt.Errorf("failed to open upload: %w", err)
	}
	defer file.Close()

	return s.UploadFile(file, header, options)
}

func (s *StorageService) UploadFile(file multipart.File, header *multipart.FileHeader, options UploadOptions) (*UploadResult, error) {
	if options.MaxSize > 0 && header.Size > options.MaxSize {
		return nil, catalog.ValidationInput("file size %d bytes exceeds maximum allowed size %d bytes", header.Size, options.MaxSize)
	}

	fileBytes, err := io.ReadAll(file)
	if err != nil {
		return nil, fmt.Errorf("failed to read file: %w", err)
	}

	contentType, err := s.ValidateImage(fileBytes, options.AllowedTypes)
	if err != nil {
		return nil, err
	}

	key := s.generateKey(header.Filename, options.Folder)

	if s.s3Client != nil {
		return s.uploadToS3(fileBytes, key, contentType, options.IsPublic)
	}
	return s.uploadToLocal(fileBytes, key, contentType)
}

func (s *StorageService) uploadToS3(fileBytes []byte, key, contentType string, isPublic bool) (*UploadResult, error) {
	params := &s3.PutObjectInput{
		Bucket:        aws.String(s.config.AWS.S3Bucket),
		Key:           aws.String(key),
		Body:          bytes.NewReader(fileBytes),
		ContentType:   aws.String(contentType),
		ContentLength: aws.Int64(int64(len(fileBytes))),
	}

	if isPublic {
		params.ACL = aws.String("public-read")
	}

	if _, err := s.s3Client.PutObject(params); err != nil {
		return nil, fmt.Errorf("failed to upload to S3: %w", err)
	}

	return &UploadResult{
		URL:      s.getS3URL(key),
		Key:      key,
		Size:     int64(len(fileBytes)),
		MimeType: contentType,
	}, nil
}

func (s *StorageService) uploadToLocal(fileBytes []byte, key, contentType string) (*UploadResult, error) {
	target := filepath.Join(s.config.Storage.UploadDir, filepath.FromSlash(key))
	if err := os.MkdirAll(filepath.Dir(target), 0o755); err != nil {
		return nil, fmt.Errorf("failed to create upload directory: %w", err)
	}
	if err := os.WriteFile(target, fileBytes, 0o644); err != nil {
		return nil, fmt.Errorf("failed to write upload: %w", err)
	}

	return &UploadResult{
		URL:      path.Join(s.config.Storage.PublicPath, key),
		Key:      key,
		Size:     int64(len(fileBytes)),
		MimeType: contentType,
	}, nil
}

func (s *StorageService) DeleteFile(key string) error {
	if s.s3Client == nil {
		target := filepath.Join(s.config.Storage.UploadDir, filepath.FromSlash(key))
		if err := os.Remove(target); err != nil && !os.IsNotExist(err) {
			return fmt.Errorf("failed to delete local file: %w", err)
		}
		logrus.WithField("key", key).Debug("Local upload removed")
		return nil
	}

	_, err := s.s3Client.DeleteObject(&s3.DeleteObjectInput{
		Bucket: aws.String(s.config.AWS.S3Bucket),
		Key:    aws.String(key),
	})
	if err != nil {
		return fmt.Errorf("failed to delete file from S3: %w", err)
	}

	return nil
}

func (s *StorageService) GetDefaultUploadOptions(folder string) UploadOptions {
	maxSize := int64(s.config.Storage.MaxUploadSizeMB) * 1024 * 1024

	switch folder {
	case FolderProductImages:
		return UploadOptions{
			Folder:       FolderProductImages,
			MaxSize:      maxSize,
			AllowedTypes: allowedImageTypes,
			IsPublic:     true,
		}
	default:
		return UploadOptions{
			Folder:       FolderGeneral,
			MaxSize:      maxSize,
			AllowedTypes: allowedImageTypes,
			IsPublic:     true,
		}
	}
}

// generateKey builds "<folder>/<unix millis>-<name>" with whitespace runs in
// the original name replaced by underscores.
func (s *StorageService) generateKey(originalName, folder string) string {
	name := whitespaceRun.ReplaceAllString(filepath.Base(originalName), "_")
	filename := fmt.Sprintf("%d-%s", s.now().UnixMilli(), name)

	if folder != "" {
		return fmt.Sprintf("%s/%s", folder, filename)
	}
	return filename
}

func (s *StorageService) getS3URL(key string) string {
	if s.config.AWS.CloudFrontURL != "" {
		return fmt.Sprintf("%s/%s", strings.TrimSuffix(s.config.AWS.CloudFrontURL, "/"), key)
	}

	return fmt.Sprintf("https://%s.s3.%s.amazonaws.com/%s",
		s.config.AWS.S3Bucket, s.config.AWS.Region, key)
}

// ValidateImage sniffs the content and returns its MIME type when it is one
// of the allowed image types.
func (s *StorageService) ValidateImage(content []byte, allowedTypes []string) (string, error) {
	detected := mimetype.Detect(content)
	if len(allowedTypes) == 0 {
		return detected.String(), nil
	}

	for _, allowed := range allowedTypes {
		if detected.Is(allowed) {
			return allowed, nil
		}
	}
	return "", catalog.ValidationInput("file type %s is not allowed", detected.String())
}
