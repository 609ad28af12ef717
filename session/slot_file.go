package session

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
)

// FileSlot persists the session record as a single file on disk, the durable
// storage available to a client process across restarts. Writes go through a
// temp file plus rename so a crash mid-write never leaves a torn payload.
type FileSlot struct {
	path string
}

// NewFileSlot creates a file-backed slot at path. The parent directory must
// exist; the file itself is created on first Write.
func NewFileSlot(path string) *FileSlot {
	return &FileSlot{path: path}
}

// Read describes the read operation and its observable behavior.
func (s *FileSlot) Read(context.Context) ([]byte, error) {
	data, err := os.ReadFile(s.path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, ErrSlotEmpty
		}
		return nil, fmt.Errorf("%w: %v", ErrSlotUnavailable, err)
	}
	return data, nil
}

// Write describes the write operation and its observable behavior.
func (s *FileSlot) Write(_ context.Context, data []byte) error {
	dir := filepath.Dir(s.path)

	tmp, err := os.CreateTemp(dir, ".session-*")
	if err != nil {
		return fmt.Errorf("%w: %v", ErrSlotUnavailable, err)
	}
	tmpName := tmp.Name()

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return fmt.Errorf("%w: %v", ErrSlotUnavailable, err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("%w: %v", ErrSlotUnavailable, err)
	}
	if err := os.Chmod(tmpName, 0o600); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("%w: %v", ErrSlotUnavailable, err)
	}

	if err := os.Rename(tmpName, s.path); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("%w: %v", ErrSlotUnavailable, err)
	}

	return nil
}

// Delete describes the delete operation and its observable behavior.
func (s *FileSlot) Delete(context.Context) error {
	if err := os.Remove(s.path); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("%w: %v", ErrSlotUnavailable, err)
	}
	return nil
}
