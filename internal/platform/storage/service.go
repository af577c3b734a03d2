package storage

import (
	"fmt"
	"mime/multipart"
	"path/filepath"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/storage/s3/v2"
	"github.com/google/uuid"
)

// MaxUploadSize is the upload ceiling for article images.
const MaxUploadSize = 5 * 1024 * 1024

// StorageService defines methods for file storage operations
type StorageService interface {
	// SaveFile saves an uploaded file under the given name
	SaveFile(c *fiber.Ctx, file *multipart.FileHeader, filename string) error

	// IsFileExtensionAllowed checks if file extension is allowed
	IsFileExtensionAllowed(filename string) bool

	// GenerateFileName generates a unique storage name keeping the extension
	GenerateFileName(original string) string
}

type storageService struct {
	storage   *s3.Storage
	uploadDir string
}

// NewStorageService creates a StorageService backed by S3 when storage is
// non-nil, or by the local upload directory otherwise.
func NewStorageService(storage *s3.Storage, uploadDir string) StorageService {
	return &storageService{
		storage:   storage,
		uploadDir: uploadDir,
	}
}

func (s *storageService) SaveFile(c *fiber.Ctx, file *multipart.FileHeader, filename string) error {
	if s.storage != nil {
		return c.SaveFileToStorage(file, filename, s.storage)
	}
	return c.SaveFile(file, filepath.Join(s.uploadDir, filename))
}

func (s *storageService) IsFileExtensionAllowed(filename string) bool {
	allowedExtensions := []string{"jpg", "jpeg", "png", "webp", "gif"}
	for _, ext := range allowedExtensions {
		if strings.HasSuffix(strings.ToLower(filename), "."+ext) {
			return true
		}
	}
	return false
}

func (s *storageService) GenerateFileName(original string) string {
	return fmt.Sprintf("%s%s", uuid.NewString(), strings.ToLower(filepath.Ext(original)))
}
