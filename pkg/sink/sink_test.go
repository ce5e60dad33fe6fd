package sink

import (
	"bytes"
	stderrors "errors"
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/arthur-debert/wordstorm/pkg/errors"
	"github.com/arthur-debert/wordstorm/pkg/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// partialWriter writes at most n bytes of each call to w, then fails.
type partialWriter struct {
	w io.Writer
	n int
}

func (p *partialWriter) Write(b []byte) (int, error) {
	if len(b) <= p.n {
		return p.w.Write(b)
	}
	written, _ := p.w.Write(b[:p.n])
	return written, stderrors.New("device full")
}

func TestOpenFile(t *testing.T) {
	t.Run("creates_parent_directories", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "lists", "nested", "out.txt")

		s, err := OpenFile(path)
		require.NoError(t, err)
		require.NoError(t, s.WriteLine("Nepal2021"))
		require.NoError(t, s.Close())

		data, err := os.ReadFile(path)
		require.NoError(t, err)
		assert.Equal(t, "Nepal2021\n", string(data))
		assert.Equal(t, path, s.Path())
	})

	t.Run("parent_is_a_file", func(t *testing.T) {
		blocker := testutil.Blocker(t)

		_, err := OpenFile(filepath.Join(blocker, "out.txt"))
		require.Error(t, err)
		assert.True(t, errors.IsErrorCode(err, errors.ErrDirCreate))
		assert.True(t, errors.IsIO(err))
	})

	t.Run("path_is_a_directory", func(t *testing.T) {
		_, err := OpenFile(t.TempDir())
		require.Error(t, err)
		assert.True(t, errors.IsErrorCode(err, errors.ErrFileCreate))
	})

	t.Run("truncates_existing", func(t *testing.T) {
		path := testutil.CreateFile(t, t.TempDir(), "out.txt", "stale\nlines\n")

		s, err := OpenFile(path)
		require.NoError(t, err)
		require.NoError(t, s.WriteLine("fresh"))
		require.NoError(t, s.Close())

		data, err := os.ReadFile(path)
		require.NoError(t, err)
		assert.Equal(t, "fresh\n", string(data))
	})
}

func TestBufferingAndCounters(t *testing.T) {
	var buf bytes.Buffer
	s := NewStream(&buf).WithBufferSize(16)

	require.NoError(t, s.WriteLine("abc"))
	assert.Equal(t, 0, buf.Len(), "below threshold stays buffered")
	assert.Equal(t, int64(0), s.Lines())

	require.NoError(t, s.WriteLine("KathmanduNepal"))
	assert.Equal(t, "abc\nKathmanduNepal\n", buf.String())
	assert.Equal(t, int64(2), s.Lines())
	assert.Equal(t, int64(19), s.Bytes())

	require.NoError(t, s.WriteLine("tail"))
	require.NoError(t, s.Close())
	assert.Equal(t, "abc\nKathmanduNepal\ntail\n", buf.String())
	assert.Equal(t, int64(3), s.Lines())
}

func TestCloseIsIdempotent(t *testing.T) {
	var buf bytes.Buffer
	s := NewStream(&buf)
	require.NoError(t, s.WriteLine("x"))
	require.NoError(t, s.Close())
	require.NoError(t, s.Close())

	err := s.WriteLine("late")
	require.Error(t, err)
	assert.True(t, errors.IsErrorCode(err, errors.ErrFileWrite))
	assert.Equal(t, "x\n", buf.String())
}

func TestStreamWriteFailure(t *testing.T) {
	var buf bytes.Buffer
	s := NewStream(&partialWriter{w: &buf, n: 0}).WithBufferSize(1)

	err := s.WriteLine("Nepal123")
	require.Error(t, err)
	assert.True(t, errors.IsIO(err))
	assert.Equal(t, int64(0), s.Lines())

	// The sink stays failed; nothing more is attempted.
	assert.Equal(t, err, s.WriteLine("more"))
	assert.Equal(t, err, s.Close())
}

func TestStreamPartialBatchCountsCompleteLines(t *testing.T) {
	var buf bytes.Buffer
	s := NewStream(&partialWriter{w: &buf, n: 4})

	require.NoError(t, s.WriteLine("ab"))
	require.NoError(t, s.WriteLine("cd"))
	require.NoError(t, s.WriteLine("efgh"))

	err := s.Flush()
	require.Error(t, err)
	assert.True(t, errors.IsErrorCode(err, errors.ErrFileWrite))
	assert.Equal(t, int64(1), errors.GetErrorDetails(err)["committed_lines"])

	// Only "ab" made it through whole; the stream keeps the cut-off tail.
	assert.Equal(t, int64(1), s.Lines())
	assert.Equal(t, int64(3), s.Bytes())
	assert.Equal(t, "ab\nc", buf.String())
}

func TestFileRollbackOnPartialWrite(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out.txt")
	s, err := OpenFile(path)
	require.NoError(t, err)
	s.WithBufferSize(1)

	require.NoError(t, s.WriteLine("Nepal2021"))
	require.NoError(t, s.WriteLine("School123"))

	// Next batch only half reaches the file before the device fails.
	s.w = &partialWriter{w: s.file, n: 4}
	err = s.WriteLine("Montessori")
	require.Error(t, err)
	assert.True(t, errors.IsErrorCode(err, errors.ErrFileWrite))
	assert.Equal(t, int64(2), errors.GetErrorDetails(err)["committed_lines"])

	_ = s.Close()

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "Nepal2021\nSchool123\n", string(data))
}

func TestShortWriteWithoutError(t *testing.T) {
	s := NewStream(writerFunc(func(b []byte) (int, error) { return len(b) - 1, nil })).WithBufferSize(1)

	err := s.WriteLine("abc")
	require.Error(t, err)
	assert.True(t, stderrors.Is(err, io.ErrShortWrite))
}

type writerFunc func([]byte) (int, error)

func (f writerFunc) Write(b []byte) (int, error) { return f(b) }
