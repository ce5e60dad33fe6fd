package sink

import (
	"bytes"
	"io"
	"os"
	"path/filepath"

	"github.com/arthur-debert/wordstorm/pkg/errors"
	"github.com/arthur-debert/wordstorm/pkg/logging"
)

// DefaultBufferSize is the number of bytes held before a flush.
const DefaultBufferSize = 64 * 1024

// LineWriter receives accepted candidates, one per call.
type LineWriter interface {
	WriteLine(line string) error
	Close() error
}

// Sink buffers whole lines and hands them to the underlying writer only on
// line boundaries. When that writer is a file, a failed write is rolled
// back to the last complete line.
type Sink struct {
	w       io.Writer
	closer  io.Closer
	file    *os.File
	path    string
	buf     []byte
	bufSize int

	committedBytes int64
	committedLines int64
	pendingLines   int64
	failed         error
	closed         bool
}

// OpenFile creates (or truncates) the file at path, creating parent
// directories as needed.
func OpenFile(path string) (*Sink, error) {
	logger := logging.GetLogger("sink")

	if dir := filepath.Dir(path); dir != "" {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return nil, errors.Wrapf(err, errors.ErrDirCreate, "failed to create output directory %s", dir).
				WithDetail("path", path)
		}
	}

	file, err := os.Create(path)
	if err != nil {
		return nil, errors.Wrapf(err, errors.ErrFileCreate, "failed to create output file %s", path).
			WithDetail("path", path)
	}

	logger.Debug().Str("path", path).Msg("Output file opened")

	return &Sink{
		w:       file,
		closer:  file,
		file:    file,
		path:    path,
		bufSize: DefaultBufferSize,
	}, nil
}

// NewStream wraps w. The stream is flushed on Close but not closed.
//
// A stream cannot be rewound: if w fails partway through a batch, the
// lines it fully accepted are counted as committed and the tail it did
// accept may end mid-line. Use OpenFile when output must never end on a
// partial line.
func NewStream(w io.Writer) *Sink {
	return &Sink{
		w:       w,
		path:    "-",
		bufSize: DefaultBufferSize,
	}
}

// WithBufferSize sets the flush threshold. Sizes below one flush every line.
func (s *Sink) WithBufferSize(n int) *Sink {
	if n < 1 {
		n = 1
	}
	s.bufSize = n
	return s
}

// Path returns the output location, "-" for streams.
func (s *Sink) Path() string {
	return s.path
}

// Bytes returns the number of bytes known to be fully written.
func (s *Sink) Bytes() int64 {
	return s.committedBytes
}

// Lines returns the number of lines known to be fully written.
func (s *Sink) Lines() int64 {
	return s.committedLines
}

// WriteLine appends line and a newline terminator.
func (s *Sink) WriteLine(line string) error {
	if s.closed {
		return errors.New(errors.ErrFileWrite, "write to closed sink").WithDetail("path", s.path)
	}
	if s.failed != nil {
		return s.failed
	}

	s.buf = append(s.buf, line...)
	s.buf = append(s.buf, '\n')
	s.pendingLines++

	if len(s.buf) >= s.bufSize {
		return s.flush()
	}
	return nil
}

// Flush writes any buffered lines.
func (s *Sink) Flush() error {
	if s.failed != nil {
		return s.failed
	}
	return s.flush()
}

func (s *Sink) flush() error {
	if len(s.buf) == 0 {
		return nil
	}

	n, err := s.w.Write(s.buf)
	if err == nil && n < len(s.buf) {
		err = io.ErrShortWrite
	}
	if err != nil {
		if s.file == nil {
			// Count the complete lines the stream did take.
			done := s.buf[:min(max(n, 0), len(s.buf))]
			if i := bytes.LastIndexByte(done, '\n'); i >= 0 {
				s.committedBytes += int64(i + 1)
				s.committedLines += int64(bytes.Count(done[:i+1], []byte{'\n'}))
			}
		}
		s.failed = errors.Wrapf(err, errors.ErrFileWrite, "failed to write to %s", s.path).
			WithDetail("path", s.path).
			WithDetail("committed_lines", s.committedLines)
		s.rollback()
		s.buf = s.buf[:0]
		s.pendingLines = 0
		return s.failed
	}

	s.committedBytes += int64(n)
	s.committedLines += s.pendingLines
	s.buf = s.buf[:0]
	s.pendingLines = 0
	return nil
}

// rollback cuts a partially written batch off the file so it ends on a line
// boundary.
func (s *Sink) rollback() {
	if s.file == nil {
		return
	}
	logger := logging.GetLogger("sink")
	if err := s.file.Truncate(s.committedBytes); err != nil {
		logger.Warn().Err(err).Str("path", s.path).Msg("Failed to truncate output after write error")
		return
	}
	if _, err := s.file.Seek(s.committedBytes, io.SeekStart); err != nil {
		logger.Warn().Err(err).Str("path", s.path).Msg("Failed to reposition output after write error")
	}
}

// Close flushes buffered lines and releases the underlying file. It is safe
// to call more than once.
func (s *Sink) Close() error {
	if s.closed {
		return nil
	}
	s.closed = true

	flushErr := s.Flush()

	var closeErr error
	if s.closer != nil {
		if err := s.closer.Close(); err != nil {
			closeErr = errors.Wrapf(err, errors.ErrFileClose, "failed to close %s", s.path).
				WithDetail("path", s.path)
		}
	}

	if flushErr != nil {
		return flushErr
	}
	return closeErr
}
