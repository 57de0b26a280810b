package export

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/runoshun/timers/internal/domain"
)

var (
	_ domain.Exporter = (*FileExporter)(nil)
	_ domain.Exporter = (*WriterExporter)(nil)
)

// FileExporter writes exports into a directory.
type FileExporter struct {
	dir string
}

// NewFileExporter creates a FileExporter that writes into dir.
func NewFileExporter(dir string) *FileExporter {
	return &FileExporter{dir: dir}
}

// Export writes req.Data to dir/req.Filename and returns the file path.
func (e *FileExporter) Export(ctx context.Context, req domain.ExportRequest) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	if req.Filename == "" {
		return "", fmt.Errorf("%w: missing filename", domain.ErrExportFailed)
	}

	if err := os.MkdirAll(e.dir, 0o750); err != nil {
		return "", fmt.Errorf("create export directory: %w", err)
	}

	path := filepath.Join(e.dir, filepath.Base(req.Filename))
	tmpPath := path + ".tmp"
	if err := os.WriteFile(tmpPath, req.Data, 0o600); err != nil {
		return "", fmt.Errorf("write export file: %w", err)
	}
	if err := os.Rename(tmpPath, path); err != nil {
		_ = os.Remove(tmpPath)
		return "", fmt.Errorf("rename export file: %w", err)
	}
	return path, nil
}

// WriterExporter prints exports to a stream, e.g. stdout for piping.
type WriterExporter struct {
	w io.Writer
}

// NewWriterExporter creates a WriterExporter.
func NewWriterExporter(w io.Writer) *WriterExporter {
	return &WriterExporter{w: w}
}

// Export writes req.Data to the stream.
func (e *WriterExporter) Export(ctx context.Context, req domain.ExportRequest) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	if _, err := e.w.Write(req.Data); err != nil {
		return "", fmt.Errorf("write export: %w", err)
	}
	return req.Filename, nil
}
