package pkg

import (
	"fmt"
	"io"
	"os"

	"go.uber.org/multierr"
)

// CombinedWriter fans every log line out to all of its writers, e.g. stdout and a rotated log file.
type CombinedWriter struct {
	Writers []io.Writer
}

func NewCombinedWriter(writers ...io.Writer) *CombinedWriter {
	cw := &CombinedWriter{}
	for _, w := range writers {
		if w == nil {
			continue
		}
		cw.Writers = append(cw.Writers, w)
	}
	return cw
}

// Write reports the bytes written across all writers; a failing writer does not stop the others.
func (cw *CombinedWriter) Write(p []byte) (n int, err error) {
	for i, w := range cw.Writers {
		written, werr := w.Write(p)
		if werr != nil {
			err = multierr.Append(err, fmt.Errorf("writer %d: %w", i, werr))
			continue
		}
		n += written
	}
	return n, err
}

// Close closes every writer that can be closed, leaving the process std streams open.
func (cw *CombinedWriter) Close() (err error) {
	for i, w := range cw.Writers {
		if w == os.Stdout || w == os.Stderr {
			continue
		}
		c, ok := w.(io.Closer)
		if !ok {
			continue
		}
		if cerr := c.Close(); cerr != nil {
			err = multierr.Append(err, fmt.Errorf("close writer %d: %w", i, cerr))
		}
	}
	return err
}
