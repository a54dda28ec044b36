package pipeline

import (
	"io"
	"os"
	"path/filepath"

	"github.com/ajitpratap0/fakes/pkg/errors"
)

// Stdout is the output path meaning standard output.
const Stdout = "-"

// OpenOutput returns stdout when path is "-" or empty, and otherwise
// creates the file, along with missing parent directories. Closing the
// stdout writer is a no-op.
func OpenOutput(path string, stdout io.Writer) (io.WriteCloser, error) {
	if path == "" || path == Stdout {
		return nopCloser{stdout}, nil
	}

	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, errors.Wrap(err, errors.ErrorTypeOutput, "failed to create output directory").
				WithDetail("path", dir)
		}
	}
	f, err := os.Create(path) //nolint:gosec // G304: path comes from the --output flag
	if err != nil {
		return nil, errors.Wrap(err, errors.ErrorTypeOutput, "failed to create output file").
			WithDetail("path", path)
	}
	return f, nil
}

type nopCloser struct {
	io.Writer
}

func (nopCloser) Close() error { return nil }
