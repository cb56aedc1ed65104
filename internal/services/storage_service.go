// internal/services/storage_service.go
package services

import (
	"bytes"
	"fmt"
	"mime"
	"os"
	"path/filepath"
	"strings"

	"github.com/aws/aws-sdk-go/aws"
	"github.com/aws/aws-sdk-go/aws/credentials"
	"github.com/aws/aws-sdk-go/aws/session"
	"github.com/aws/aws-sdk-go/service/s3"
	"github.com/google/uuid"

	"github.com/epoint/product-comparator/internal/config"
)

// StorageService publishes catalog media (product and category images) to
// S3. Products only ever reference images by URL, so this runs at seed or
// import time, never on the request path.
type StorageService struct {
	s3Client *s3.S3
	config   *config.Config
}

type UploadResult struct {
	URL  string `json:"url"`
	Key  string `json:"key"`
	Size int64  `json:"size"`
}

func NewStorageService(cfg *config.Config) (*StorageService, error) {
	if cfg.AWS.AccessKeyID == "" {
		// Return service without S3 for local development
		return &StorageService{config: cfg}, nil
	}

	// Create AWS session
	sess, err := session.NewSession(&aws.Config{
		Region: aws.String(cfg.AWS.Region),
		Credentials: credentials.NewStaticCredentials(
			cfg.AWS.AccessKeyID,
			cfg.AWS.SecretAccessKey,
			"",
		),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create AWS session: %w", err)
	}

	return &StorageService{
		s3Client: s3.New(sess),
		config:   cfg,
	}, nil
}

// Enabled reports whether media uploads are configured.
func (s *StorageService) Enabled() bool {
	return s.s3Client != nil
}

// PublishImage uploads a local image file under the given folder and
// returns its public URL.
func (s *StorageService) PublishImage(path, folder string) (*UploadResult, error) {
	if !s.Enabled() {
		return nil, fmt.Errorf("storage service is not configured")
	}

	ext := strings.ToLower(filepath.Ext(path))
	contentType := mime.TypeByExtension(ext)
	if contentType == "" || !strings.HasPrefix(contentType, "image/") {
		return nil, fmt.Errorf("unsupported image type %q", ext)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read image %s: %w", path, err)
	}

	key := fmt.Sprintf("%s/%s%s", strings.Trim(folder, "/"), uuid.New().String(), ext)
	_, err = s.s3Client.PutObject(&s3.PutObjectInput{
		Bucket:       aws.String(s.config.AWS.S3Bucket),
		Key:          aws.String(key),
		Body:         bytes.NewReader(data),
		ContentType:  aws.String(contentType),
		CacheControl: aws.String("public, max-age=31536000"),
		ACL:          aws.String("public-read"),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to upload image %s: %w", path, err)
	}

	return &UploadResult{
		URL:  s.publicURL(key),
		Key:  key,
		Size: int64(len(data)),
	}, nil
}

func (s *StorageService) publicURL(key string) string {
	if s.config.AWS.CloudFrontURL != "" {
		return strings.TrimRight(s.config.AWS.CloudFrontURL, "/") + "/" + key
	}
	return fmt.Sprintf("https://%s.s3.%s.amazonaws.com/%s", s.config.AWS.S3Bucket, s.config.AWS.Region, key)
}
