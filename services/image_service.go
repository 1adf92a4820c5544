package services

import (
	"fmt"
	"mime/multipart"

	appconfig "github.com/amelia-reyes/boutique-api/config"
	"github.com/amelia-reyes/boutique-api/utils"
)

// ImageService stores product images and produces the reference saved on the
// product row. The reference is either a local /img path or a presigned S3
// URL depending on the backing implementation.
type ImageService interface {
	// UploadImage validates and stores an image file, returns the storage key
	UploadImage(fileHeader *multipart.FileHeader) (string, error)

	// GetImageURL generates a URL for accessing a stored image
	GetImageURL(imageKey string) (string, error)

	// DeleteImage removes an image from storage
	DeleteImage(imageKey string) error
}

// NewImageService picks the storage backend: S3 when a bucket is configured,
// the local image directory otherwise.
func NewImageService(cfg *appconfig.Config) (ImageService, error) {
	if cfg.AWSS3Bucket != "" {
		s3Service, err := NewS3Service(cfg)
		if err != nil {
			return nil, err
		}
		return &S3ImageService{s3Service: s3Service}, nil
	}
	return &LocalImageService{imageDir: cfg.ImageDir}, nil
}

// S3ImageService implements ImageService using AWS S3 for storage
type S3ImageService struct {
	s3Service S3Interface
}

// UploadImage validates and uploads an image file to S3
func (s *S3ImageService) UploadImage(fileHeader *multipart.FileHeader) (string, error) {
	if err := utils.ValidateImageFile(fileHeader); err != nil {
		return "", err
	}

	s3Key, err := s.s3Service.UploadFile(fileHeader)
	if err != nil {
		return "", fmt.Errorf("failed to upload image: %w", err)
	}
	return s3Key, nil
}

// GetImageURL generates a presigned URL for accessing an image
func (s *S3ImageService) GetImageURL(imageKey string) (string, error) {
	if imageKey == "" {
		return "", nil
	}

	url, err := s.s3Service.GetPresignedURL(imageKey)
	if err != nil {
		return "", fmt.Errorf("failed to generate image URL: %w", err)
	}
	return url, nil
}

// DeleteImage deletes an image from S3
func (s *S3ImageService) DeleteImage(imageKey string) error {
	if imageKey == "" {
		return nil
	}

	if err := s.s3Service.DeleteFile(imageKey); err != nil {
		return fmt.Errorf("failed to delete image: %w", err)
	}
	return nil
}

// LocalImageService implements ImageService on the local image directory,
// served by the /img static route.
type LocalImageService struct {
	imageDir string
}

// UploadImage validates and saves an image into the image directory
func (s *LocalImageService) UploadImage(fileHeader *multipart.FileHeader) (string, error) {
	if err := utils.ValidateImageFile(fileHeader); err != nil {
		return "", err
	}

	filename, err := utils.SaveUploadedFile(fileHeader, s.imageDir)
	if err != nil {
		return "", fmt.Errorf("failed to save image: %w", err)
	}
	return filename, nil
}

// GetImageURL returns the /img path the static file server exposes
func (s *LocalImageService) GetImageURL(imageKey string) (string, error) {
	if imageKey == "" {
		return "", nil
	}
	return "/img/" + imageKey, nil
}

// DeleteImage removes an image file from the image directory
func (s *LocalImageService) DeleteImage(imageKey string) error {
	if imageKey == "" {
		return nil
	}
	return utils.RemoveUploadedFile(imageKey, s.imageDir)
}
