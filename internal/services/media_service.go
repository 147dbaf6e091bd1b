// internal/services/media_service.go
package services

import (
	"bytes"
	"encoding/base64"
	"fmt"
	"image"
	"image/png"
	"os"
	"path/filepath"
	"strings"

	// Register the decoders the admin UI is known to send.
	_ "image/gif"
	_ "image/jpeg"

	"github.com/aws/aws-sdk-go/aws"
	"github.com/aws/aws-sdk-go/aws/credentials"
	"github.com/aws/aws-sdk-go/aws/session"
	"github.com/aws/aws-sdk-go/service/s3"
	"github.com/sirupsen/logrus"

	"github.com/epocha/admin-backend/internal/config"
)

// MediaService decodes base64 image payloads and writes them as PNG
// under <StaticRoot>/img. When an S3 bucket is configured the written
// file is mirrored there as well; local disk remains the source the
// static mount serves from.
type MediaService struct {
	storage  *config.StorageConfig
	s3Client *s3.S3
}

func NewMediaService(storage *config.StorageConfig) (*MediaService, error) {
	if storage.AWS.S3Bucket == "" || storage.AWS.AccessKeyID == "" {
		// Local-only storage for development and single-host deploys.
		return &MediaService{storage: storage}, nil
	}

	sess, err := session.NewSession(&aws.Config{
		Region: aws.String(storage.AWS.Region),
		Credentials: credentials.NewStaticCredentials(
			storage.AWS.AccessKeyID,
			storage.AWS.SecretAccessKey,
			"",
		),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create AWS session: %w", err)
	}

	return &MediaService{
		storage:  storage,
		s3Client: s3.New(sess),
	}, nil
}

// SaveImage decodes the payload and writes <StaticRoot>/img/<filename>
// as PNG, returning the relative path stored in the database
// ("static/img/<filename>"). Clients are not guaranteed to send
// correctly padded base64, so padding is repaired before decoding.
func (s *MediaService) SaveImage(encoded, filename string) (string, error) {
	data, err := base64.StdEncoding.DecodeString(padBase64(strings.TrimSpace(encoded)))
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrInvalidImage, err)
	}

	img, _, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrInvalidImage, err)
	}

	dir := filepath.Join(s.storage.StaticRoot, "img")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("failed to create image directory: %w", err)
	}

	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		return "", fmt.Errorf("failed to encode image: %w", err)
	}

	path := filepath.Join(dir, filename)
	if err := os.WriteFile(path, buf.Bytes(), 0o644); err != nil {
		return "", fmt.Errorf("failed to write image: %w", err)
	}

	if s.s3Client != nil {
		if err := s.mirrorToS3("img/"+filename, buf.Bytes()); err != nil {
			// The local file is authoritative; a failed mirror is not
			// a request failure.
			logrus.WithError(err).WithField("file", filename).Warn("Failed to mirror image to S3")
		}
	}

	return "static/img/" + filename, nil
}

func (s *MediaService) mirrorToS3(key string, data []byte) error {
	_, err := s.s3Client.PutObject(&s3.PutObjectInput{
		Bucket:        aws.String(s.storage.AWS.S3Bucket),
		Key:           aws.String(key),
		Body:          bytes.NewReader(data),
		ContentType:   aws.String("image/png"),
		ContentLength: aws.Int64(int64(len(data))),
	})
	return err
}

// ResolveURL turns a stored relative path into an absolute URL. This
// runs for every stored path on every read; nothing is cached.
func (s *MediaService) ResolveURL(relPath string) string {
	return strings.TrimRight(s.storage.BaseURL, "/") + "/" + relPath
}

// padBase64 pads the payload to a multiple of 4 characters. The admin
// UI strips padding from some payloads.
func padBase64(data string) string {
	if rem := len(data) % 4; rem != 0 {
		return data + strings.Repeat("=", 4-rem)
	}
	return data
}
