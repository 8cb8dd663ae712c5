package storage

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
)

// LocalStorageService keeps logos on the local filesystem so development
// and tests need no cloud account.
type LocalStorageService struct {
	baseURL  string
	logosDir string
}

func NewLocalStorageService(baseURL, uploadDir string) (*LocalStorageService, error) {
	logosDir := filepath.Join(uploadDir, "logos")
	if err := os.MkdirAll(logosDir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create logos directory: %w", err)
	}
	return &LocalStorageService{
		baseURL:  baseURL,
		logosDir: logosDir,
	}, nil
}

func (s *LocalStorageService) SaveFile(key string, reader io.Reader) error {
	f, err := os.Create(s.path(key))
	if err != nil {
		return fmt.Errorf("failed to create logo file: %w", err)
	}
	defer f.Close()

	if _, err := io.Copy(f, reader); err != nil {
		return fmt.Errorf("failed to write logo file: %w", err)
	}
	return nil
}

func (s *LocalStorageService) ReadFile(key string) (io.ReadCloser, error) {
	return os.Open(s.path(key))
}

func (s *LocalStorageService) DeleteFile(key string) error {
	err := os.Remove(s.path(key))
	if err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("failed to delete logo file: %w", err)
	}
	return nil
}

func (s *LocalStorageService) FileURL(key string) string {
	return fmt.Sprintf("%s/api/v1/uploads/logo/%s", s.baseURL, filepath.Base(key))
}

// path flattens the key so a crafted key cannot escape the logos dir.
func (s *LocalStorageService) path(key string) string {
	return filepath.Join(s.logosDir, filepath.Base(key))
}
