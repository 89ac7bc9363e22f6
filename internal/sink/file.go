package sink

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/afero"
	"go.uber.org/multierr"
)

// FileSink writes straight through to a file
type FileSink struct {
	fs   afero.Fs
	path string
	file afero.File
}

// creates or truncates path, creating parent directories as needed
func NewFile(fs afero.Fs, path string) (*FileSink, error) {
	if err := fs.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return nil, fmt.Errorf("failed to create output directory: %w", err)
	}

	file, err := fs.OpenFile(path, os.O_CREATE|os.O_TRUNC|os.O_WRONLY, 0644)
	if err != nil {
		return nil, fmt.Errorf("failed to create output file: %w", err)
	}

	return &FileSink{fs: fs, path: path, file: file}, nil
}

func (s *FileSink) Write(p []byte) (int, error) {
	return s.file.Write(p)
}

func (s *FileSink) Close() error {
	return s.file.Close()
}

// closes and removes the partially written file
func (s *FileSink) Abort() error {
	return multierr.Append(s.file.Close(), s.fs.Remove(s.path))
}

func (s *FileSink) Path() string {
	return s.path
}
