package worklog

import (
	"os"
	"path/filepath"
)

// FileSink appends log blocks to a file on disk.
type FileSink struct {
	path string
}

// NewFileSink returns a sink writing to the given path.
func NewFileSink(path string) *FileSink {
	return &FileSink{path: path}
}

// Append writes data to the end of the log file, creating it if needed.
func (s *FileSink) Append(data []byte) error {
	if err := os.MkdirAll(filepath.Dir(s.path), 0o755); err != nil {
		return err
	}
	f, err := os.OpenFile(s.path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
	if err != nil {
		return err
	}
	if _, err := f.Write(data); err != nil {
		if cerr := f.Close(); cerr != nil {
			// Best-effort close after failed write.
			_ = cerr
		}
		return err
	}
	return f.Close()
}

// ReadAll returns the whole log. A missing file surfaces as fs.ErrNotExist
// so callers can report "no log yet" instead of a failure.
func (s *FileSink) ReadAll() ([]byte, error) {
	return os.ReadFile(s.path)
}
