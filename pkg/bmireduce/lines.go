package bmireduce

import (
	"bufio"
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
)

const readBufferSize = 64 * 1024

// LineReader reads newline-terminated lines from an underlying reader.
// A final fragment without a trailing newline counts as a line, which is the
// same rule CountLines applies.
type LineReader struct {
	r   *bufio.Reader
	buf []byte
}

// NewLineReader wraps r in a buffered line reader.
func NewLineReader(r io.Reader) *LineReader {
	return &LineReader{r: bufio.NewReaderSize(r, readBufferSize)}
}

// Next returns the next line without its newline. The returned slice is only
// valid until the following call. At end of input it returns io.EOF.
func (lr *LineReader) Next() ([]byte, error) {
	lr.buf = lr.buf[:0]
	for {
		frag, err := lr.r.ReadSlice('\n')
		switch {
		case err == nil:
			frag = frag[:len(frag)-1]
			if len(lr.buf) == 0 {
				return frag, nil
			}
			lr.buf = append(lr.buf, frag...)
			return lr.buf, nil
		case errors.Is(err, bufio.ErrBufferFull):
			lr.buf = append(lr.buf, frag...)
		case errors.Is(err, io.EOF):
			if len(frag) == 0 && len(lr.buf) == 0 {
				return nil, io.EOF
			}
			lr.buf = append(lr.buf, frag...)
			return lr.buf, nil
		default:
			return nil, err
		}
	}
}

// Skip discards up to n lines and returns how many were discarded.
// Running out of input is not an error.
func (lr *LineReader) Skip(n int) (int, error) {
	for i := 0; i < n; i++ {
		if _, err := lr.Next(); err != nil {
			if errors.Is(err, io.EOF) {
				return i, nil
			}
			return i, err
		}
	}
	return n, nil
}

// CountLines returns the number of lines in the file at path, header included.
func CountLines(path string) (int, error) {
	f, err := os.Open(path)
	if err != nil {
		return 0, fmt.Errorf("%w %q: %w", ErrOpenInput, path, err)
	}
	defer f.Close()

	return countLines(f)
}

func countLines(r io.Reader) (int, error) {
	buf := make([]byte, readBufferSize)
	count := 0
	var last byte
	seen := false

	for {
		n, err := r.Read(buf)
		if n > 0 {
			count += bytes.Count(buf[:n], []byte{'\n'})
			last = buf[n-1]
			seen = true
		}
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return 0, fmt.Errorf("%w: %w", ErrReadInput, err)
		}
	}

	if seen && last != '\n' {
		count++
	}
	return count, nil
}
