package tracing

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"go.opentelemetry.io/otel/exporters/stdout/stdouttrace"
)

// fileExporter appends spans to a file as one JSON object per line. It owns
// the file and closes it on shutdown.
type fileExporter struct {
	*stdouttrace.Exporter
	file *os.File
}

func newFileExporter(path string) (*fileExporter, error) {
	path = filepath.Clean(path)
	if err := os.MkdirAll(filepath.Dir(path), 0o750); err != nil {
		return nil, fmt.Errorf("create trace directory: %w", err)
	}
	file, err := os.OpenFile(path, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o600) // #nosec G304 -- path comes from the user's config
	if err != nil {
		return nil, fmt.Errorf("open trace file: %w", err)
	}

	exp, err := stdouttrace.New(stdouttrace.WithWriter(file))
	if err != nil {
		_ = file.Close()
		return nil, err
	}
	return &fileExporter{Exporter: exp, file: file}, nil
}

// Shutdown stops the exporter and closes the file. Later calls are no-ops.
func (e *fileExporter) Shutdown(ctx context.Context) error {
	err := e.Exporter.Shutdown(ctx)
	if cerr := e.file.Close(); cerr != nil && !errors.Is(cerr, os.ErrClosed) {
		err = errors.Join(err, fmt.Errorf("close trace file: %w", cerr))
	}
	return err
}
