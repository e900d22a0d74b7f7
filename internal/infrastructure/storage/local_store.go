// Package storage holds the out-of-band attachment file store. The local
// disk implementation is the default; the leave.FileStore port keeps it
// swappable for an object-store adapter.
package storage

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/google/uuid"
	"github.com/soprahr/leavedesk-api/internal/application/leave"
)

var _ leave.FileStore = (*LocalStore)(nil)

// LocalStore writes attachment files under a local directory served
// statically by the HTTP server.
type LocalStore struct {
	dir     string
	baseURL string
}

// NewLocalStore builds the store. dir is created on first save.
func NewLocalStore(dir, baseURL string) *LocalStore {
	return &LocalStore{dir: dir, baseURL: baseURL}
}

// Save writes the file under a collision-free name and returns its public
// URL. Only the base name of the client-supplied filename is kept.
func (s *LocalStore) Save(ctx context.Context, leaveRequestID, filename string, r io.Reader) (string, error) {
	if err := os.MkdirAll(s.dir, 0o755); err != nil {
		return "", fmt.Errorf("create upload dir: %w", err)
	}

	name := fmt.Sprintf("%s-%s", uuid.New().String(), filepath.Base(filename))
	path := filepath.Join(s.dir, name)

	f, err := os.Create(path)
	if err != nil {
		return "", fmt.Errorf("create upload file: %w", err)
	}
	defer f.Close()

	if _, err := io.Copy(f, r); err != nil {
		_ = os.Remove(path)
		return "", fmt.Errorf("write upload file: %w", err)
	}
	return s.baseURL + "/" + name, nil
}
