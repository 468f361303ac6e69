package service

import (
	"bytes"
	"context"
	"errors"
	"io"
	"strings"
	"testing"

	"github.com/google/uuid"

	"github.com/redect/members-api/internal/domain"
)

type fakeFileRepo struct {
	created   *domain.File
	createErr error
	deleted   uuid.UUID

	getResult *domain.File
	getErr    error
}

func (f *fakeFileRepo) Create(ctx context.Context, file *domain.File) (*domain.File, error) {
	f.created = file
	if f.createErr != nil {
		return nil, f.createErr
	}
	return file, nil
}

func (f *fakeFileRepo) GetByID(ctx context.Context, id uuid.UUID) (*domain.File, error) {
	return f.getResult, f.getErr
}

func (f *fakeFileRepo) List(ctx context.Context, limit, offset int) ([]domain.File, error) {
	return nil, nil
}

func (f *fakeFileRepo) Delete(ctx context.Context, id uuid.UUID) error {
	f.deleted = id
	return nil
}

type fakeObjectStorage struct {
	uploadedKey  string
	uploadedType string
	uploadedData []byte
	uploadErr    error

	removedKeys []string
}

func (f *fakeObjectStorage) Upload(ctx context.Context, bucket, objectName, contentType string, reader io.Reader, size int64) (string, error) {
	f.uploadedKey = objectName
	f.uploadedType = contentType
	data, err := io.ReadAll(reader)
	if err != nil {
		return "", err
	}
	f.uploadedData = data
	if f.uploadErr != nil {
		return "", f.uploadErr
	}
	return "https://storage.redect.com/" + bucket + "/" + objectName, nil
}

func (f *fakeObjectStorage) Remove(ctx context.Context, bucket, objectName string) error {
	f.removedKeys = append(f.removedKeys, objectName)
	return nil
}

func newFileService(repo *fakeFileRepo, storage *fakeObjectStorage, maxBytes int64) *FileService {
	return NewFileService(repo, storage, FileServiceConfig{Bucket: "member-files", MaxBytes: maxBytes})
}

func TestFileUploadStoresObjectAndMetadata(t *testing.T) {
	repo := &fakeFileRepo{}
	storage := &fakeObjectStorage{}
	svc := newFileService(repo, storage, 1024)

	file, err := svc.Upload(context.Background(), uuid.New(), FileUpload{
		Reader:      strings.NewReader("statute contents"),
		Size:        16,
		FileName:    "statute.pdf",
		ContentType: "application/pdf",
	})
	if err != nil {
		t.Fatalf("Upload returned error: %v", err)
	}
	if !strings.HasSuffix(storage.uploadedKey, ".pdf") {
		t.Fatalf("expected object key to keep the extension, got %q", storage.uploadedKey)
	}
	if !bytes.Equal(storage.uploadedData, []byte("statute contents")) {
		t.Fatalf("uploaded bytes do not match input")
	}
	if file.ObjectKey != storage.uploadedKey {
		t.Fatalf("metadata must record the object key")
	}
	if file.URL == "" {
		t.Fatalf("expected a public URL")
	}
}

func TestFileUploadRejectsOversize(t *testing.T) {
	svc := newFileService(&fakeFileRepo{}, &fakeObjectStorage{}, 8)

	_, err := svc.Upload(context.Background(), uuid.New(), FileUpload{
		Reader:   strings.NewReader("way too many bytes"),
		Size:     18,
		FileName: "big.bin",
	})
	if !errors.Is(err, ErrFileTooLarge) {
		t.Fatalf("expected ErrFileTooLarge, got %v", err)
	}
}

func TestFileUploadRollsBackObjectOnMetadataFailure(t *testing.T) {
	repo := &fakeFileRepo{createErr: errors.New("insert failed")}
	storage := &fakeObjectStorage{}
	svc := newFileService(repo, storage, 1024)

	_, err := svc.Upload(context.Background(), uuid.New(), FileUpload{
		Reader:   strings.NewReader("data"),
		Size:     4,
		FileName: "doc.txt",
	})
	if err == nil {
		t.Fatalf("expected error when metadata insert fails")
	}
	if len(storage.removedKeys) != 1 || storage.removedKeys[0] != storage.uploadedKey {
		t.Fatalf("expected the uploaded object to be removed, got %v", storage.removedKeys)
	}
}

func TestFileDeleteRemovesObject(t *testing.T) {
	owner := uuid.New()
	repo := &fakeFileRepo{getResult: &domain.File{ID: uuid.New(), AuthorID: owner, ObjectKey: "abc.pdf"}}
	storage := &fakeObjectStorage{}
	svc := newFileService(repo, storage, 1024)

	if err := svc.Delete(context.Background(), repo.getResult.ID, uuid.New(), false); !errors.Is(err, ErrFileForbidden) {
		t.Fatalf("expected ErrFileForbidden for non-owner, got %v", err)
	}

	if err := svc.Delete(context.Background(), repo.getResult.ID, owner, false); err != nil {
		t.Fatalf("Delete returned error: %v", err)
	}
	if repo.deleted != repo.getResult.ID {
		t.Fatalf("expected metadata row deleted")
	}
	if len(storage.removedKeys) != 1 || storage.removedKeys[0] != "abc.pdf" {
		t.Fatalf("expected object removed, got %v", storage.removedKeys)
	}
}
