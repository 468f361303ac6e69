package service

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"github.com/google/uuid"

	"github.com/redect/members-api/internal/domain"
	"github.com/redect/members-api/internal/media"
	"github.com/redect/members-api/internal/repository/ports"
)

var (
	ErrFileValidation = errors.New("file validation failed")
	ErrFileTooLarge   = errors.New("file exceeds maximum size")
	ErrFileNotFound   = errors.New("file not found")
	ErrFileForbidden  = errors.New("not allowed to manage this file")
)

type FileUpload struct {
	Reader      io.Reader
	Size        int64
	FileName    string
	ContentType string
}

type FileServiceConfig struct {
	Bucket            string
	MaxBytes          int64
	ImageProcessor    media.Processor
	ImageMaxDimension int
}

type FileService struct {
	files   ports.FileRepository
	storage ports.ObjectStorage

	bucket       string
	maxBytes     int64
	processor    media.Processor
	maxDimension int
}

const defaultUploadMaxBytes = int64(10 * 1024 * 1024)

func NewFileService(files ports.FileRepository, storage ports.ObjectStorage, cfg FileServiceConfig) *FileService {
	maxBytes := cfg.MaxBytes
	if maxBytes <= 0 {
		maxBytes = defaultUploadMaxBytes
	}
	maxDimension := cfg.ImageMaxDimension
	if maxDimension <= 0 {
		maxDimension = media.DefaultMaxDimension
	}
	return &FileService{
		files:        files,
		storage:      storage,
		bucket:       strings.TrimSpace(cfg.Bucket),
		maxBytes:     maxBytes,
		processor:    cfg.ImageProcessor,
		maxDimension: maxDimension,
	}
}

func (s *FileService) Upload(ctx context.Context, authorID uuid.UUID, upload FileUpload) (*domain.File, error) {
	name := strings.TrimSpace(upload.FileName)
	if name == "" || upload.Reader == nil || upload.Size <= 0 {
		return nil, ErrFileValidation
	}
	if upload.Size > s.maxBytes {
		return nil, ErrFileTooLarge
	}

	reader := upload.Reader
	size := upload.Size
	contentType := strings.TrimSpace(upload.ContentType)
	if contentType == "" {
		contentType = "application/octet-stream"
	}

	if s.processor != nil && media.IsImage(contentType) {
		result, err := s.processor.Process(ctx, media.Upload{
			Reader:      reader,
			Size:        size,
			FileName:    name,
			ContentType: contentType,
		}, s.maxDimension)
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrFileValidation, err)
		}
		reader = bytes.NewReader(result.Bytes)
		size = int64(len(result.Bytes))
		contentType = result.ContentType
	}

	objectKey := uuid.NewString() + strings.ToLower(filepath.Ext(name))
	url, err := s.storage.Upload(ctx, s.bucket, objectKey, contentType, reader, size)
	if err != nil {
		return nil, err
	}

	stored, err := s.files.Create(ctx, &domain.File{
		Name:        name,
		ContentType: contentType,
		SizeBytes:   size,
		ObjectKey:   objectKey,
		URL:         url,
		AuthorID:    authorID,
	})
	if err != nil {
		// keep storage consistent with the DB when the metadata insert fails
		_ = s.storage.Remove(ctx, s.bucket, objectKey)
		return nil, err
	}
	return stored, nil
}

func (s *FileService) List(ctx context.Context, limit, offset int) ([]domain.File, error) {
	limit, offset = normalizePagination(limit, offset)
	return s.files.List(ctx, limit, offset)
}

func (s *FileService) Delete(ctx context.Context, id, requesterID uuid.UUID, isAdmin bool) error {
	file, err := s.files.GetByID(ctx, id)
	if err != nil {
		if isNotFound(err) {
			return ErrFileNotFound
		}
		return err
	}
	if file.AuthorID != requesterID && !isAdmin {
		return ErrFileForbidden
	}
	if err := s.files.Delete(ctx, id); err != nil {
		return err
	}
	// object removal is best effort; an orphaned object is harmless
	_ = s.storage.Remove(ctx, s.bucket, file.ObjectKey)
	return nil
}
