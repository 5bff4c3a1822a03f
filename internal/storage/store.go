// Package storage owns the upload directory: saving incoming documents
// under stable names and serving them back for display.
package storage

import (
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"

	"github.com/CodeNinja0929/PDF-Metadata-Extractor/constants"
	"github.com/CodeNinja0929/PDF-Metadata-Extractor/internal/common"
)

// Store writes uploads into a single directory and hands out retrieval
// handles of the form /uploads/<name>. The directory is created by Init at
// startup, not lazily.
type Store struct {
	dir    string
	logger *slog.Logger
}

// SaveResult describes one stored upload.
type SaveResult struct {
	Name    string // stored file name (uuid + extension)
	FileURL string // retrieval handle for the HTTP surface
	HashHex string // sha256 of the stored content
	Size    int64
}

func NewStore(dir string, logger *slog.Logger) *Store {
	if logger == nil {
		logger = slog.Default()
	}
	return &Store{dir: dir, logger: logger}
}

// Init creates the upload directory. Call once during startup before the
// store is used.
func (s *Store) Init() error {
	if err := os.MkdirAll(s.dir, 0o750); err != nil {
		return fmt.Errorf("create upload dir %s: %w", s.dir, err)
	}
	abs, err := filepath.Abs(s.dir)
	if err != nil {
		return fmt.Errorf("resolve upload dir %s: %w", s.dir, err)
	}
	s.dir = abs
	return nil
}

// Save streams the upload to disk under a fresh uuid-based name, hashing the
// content as it is written. The original file name contributes only its
// extension, which must be on the allowlist.
func (s *Store) Save(r io.Reader, originalName string) (SaveResult, error) {
	var out SaveResult

	ext := constants.NormalizeExt(filepath.Ext(originalName))
	if ext == "" || !constants.AllowedExt(ext) {
		return out, common.InvalidInputErrorf("unsupported or missing extension: %q", ext)
	}

	name := uuid.New().String() + "." + ext
	path := filepath.Join(s.dir, name)

	f, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0o640)
	if err != nil {
		s.logger.Error("storage.save.open_failed", "path", path, "error", err)
		return out, fmt.Errorf("create upload file: %w", err)
	}
	defer func(f *os.File) {
		if cerr := f.Close(); cerr != nil {
			s.logger.Warn("storage.save.close_failed", "path", path, "error", cerr)
		}
	}(f)

	h := sha256.New()
	size, err := io.Copy(f, io.TeeReader(r, h))
	if err != nil {
		// Leave nothing half-written behind.
		_ = os.Remove(path)
		s.logger.Error("storage.save.write_failed", "path", path, "error", err)
		return out, fmt.Errorf("write upload file: %w", err)
	}

	out = SaveResult{
		Name:    name,
		FileURL: "/uploads/" + name,
		HashHex: hex.EncodeToString(h.Sum(nil)),
		Size:    size,
	}
	s.logger.Info("storage.save.ok", "name", name, "bytes", size, "sha256", out.HashHex)
	return out, nil
}

// Read returns the full content of a stored upload.
func (s *Store) Read(name string) ([]byte, error) {
	path, err := s.resolve(name)
	if err != nil {
		return nil, err
	}
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, common.NotFoundError("File not found")
		}
		return nil, fmt.Errorf("read upload %s: %w", name, err)
	}
	return data, nil
}

// Open returns the stored file for streaming. The caller closes it.
func (s *Store) Open(name string) (*os.File, error) {
	path, err := s.resolve(name)
	if err != nil {
		return nil, err
	}
	f, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, common.NotFoundError("File not found")
		}
		return nil, fmt.Errorf("open upload %s: %w", name, err)
	}
	return f, nil
}

// resolve maps a requested name to a path inside the upload directory,
// rejecting anything that would escape it.
func (s *Store) resolve(name string) (string, error) {
	if name == "" {
		return "", common.InvalidInputError("file name is required")
	}
	path := filepath.Join(s.dir, filepath.Clean("/"+name))
	if !strings.HasPrefix(path, s.dir+string(filepath.Separator)) {
		return "", common.NotFoundError("File not found")
	}
	return path, nil
}
