package service

import (
	"bytes"
	"context"
	"fmt"
	"log"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/google/uuid"

	"github.com/safebite/backend/config"
)

// BarcodeImageService stores uploaded barcode photos. The engine never
// inspects image bytes; the upload ID handed back is the opaque token the
// barcode analysis stub accepts.
type BarcodeImageService struct {
	s3Config *config.S3Config
}

// NewBarcodeImageService creates a BarcodeImageService.
func NewBarcodeImageService(s3Config *config.S3Config) *BarcodeImageService {
	return &BarcodeImageService{s3Config: s3Config}
}

// Store uploads the image bytes and returns the upload ID.
func (s *BarcodeImageService) Store(ctx context.Context, data []byte, contentType string) (string, error) {
	if len(data) == 0 {
		return "", &ValidationError{Reason: "please upload a barcode image first"}
	}
	if contentType == "" {
		contentType = "image/jpeg"
	}

	uploadID := uuid.NewString()
	key := fmt.Sprintf("barcodes/%s", uploadID)

	_, err := s.s3Config.Client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:      aws.String(s.s3Config.BucketName),
		Key:         aws.String(key),
		Body:        bytes.NewReader(data),
		ContentType: aws.String(contentType),
	})
	if err != nil {
		return "", fmt.Errorf("failed to store barcode image: %w", err)
	}

	log.Printf("[BarcodeImageService] stored barcode image %s (%d bytes)", key, len(data))
	return uploadID, nil
}
