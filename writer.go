package redact

import (
	"bytes"
	"io"

	"github.com/cockroachdb/errors"
	"gopkg.in/natefinch/lumberjack.v2"
)

// maxPending bounds the bytes a scrubbing writer buffers while waiting
// for a newline. Output that exceeds it without one is scrubbed and
// flushed as a chunk, so newline-free streams cannot grow the buffer
// without limit.
const maxPending = 8 << 10

// Writer returns a WriteCloser that scrubs everything written through
// it before forwarding to w. Output is scrubbed one line at a time: a
// trailing partial line is held back until its newline arrives, so a
// secret split across Write calls is still caught. Close flushes
// whatever is held back and closes w when it is an [io.Closer].
//
// Registered literals are matched within a line; a literal containing
// a newline will not be found.
func (s *Scrubber) Writer(w io.Writer) io.WriteCloser {
	return &scrubWriter{s: s, w: w}
}

type scrubWriter struct {
	s   *Scrubber
	w   io.Writer
	buf []byte
}

func (sw *scrubWriter) Write(p []byte) (int, error) {
	sw.buf = append(sw.buf, p...)
	for {
		i := bytes.IndexByte(sw.buf, '\n')
		if i < 0 {
			break
		}
		line := sw.s.Scrub(string(sw.buf[:i+1]))
		sw.buf = append(sw.buf[:0], sw.buf[i+1:]...)
		if _, err := io.WriteString(sw.w, line); err != nil {
			return len(p), err
		}
	}
	if len(sw.buf) > maxPending {
		if err := sw.flush(); err != nil {
			return len(p), err
		}
	}
	return len(p), nil
}

func (sw *scrubWriter) flush() error {
	if len(sw.buf) == 0 {
		return nil
	}
	out := sw.s.Scrub(string(sw.buf))
	sw.buf = sw.buf[:0]
	_, err := io.WriteString(sw.w, out)
	return err
}

func (sw *scrubWriter) Close() error {
	err := sw.flush()
	if c, ok := sw.w.(io.Closer); ok {
		err = errors.CombineErrors(err, c.Close())
	}
	return err
}

// File returns a size-rotated file writer, the usual sink behind
// [Scrubber.Writer] when scrubbed output needs to be durable. maxSize
// is the size in megabytes at which the file rotates; maxBackups is
// how many rotated files to keep, 0 keeping all of them.
func File(path string, maxSize, maxBackups int, compress ...bool) io.WriteCloser {
	w := &lumberjack.Logger{
		Filename:   path,
		MaxSize:    maxSize,
		MaxBackups: maxBackups,
		LocalTime:  true,
	}
	if len(compress) > 0 && compress[0] {
		w.Compress = true
	}
	return w
}

type multiWriteCloser struct {
	writers []io.Writer
}

func (t *multiWriteCloser) Write(p []byte) (n int, err error) {
	for _, w := range t.writers {
		n, err = w.Write(p)
		if err != nil {
			return
		}
		if n != len(p) {
			err = io.ErrShortWrite
			return
		}
	}
	return len(p), nil
}

// Close closes every underlying writer that is an io.Closer. All of
// them are attempted; the errors are combined.
func (t *multiWriteCloser) Close() error {
	var err error
	for _, w := range t.writers {
		if c, ok := w.(io.Closer); ok {
			err = errors.CombineErrors(err, c.Close())
		}
	}
	return err
}

// MultiWriteCloser creates a writer that duplicates its writes to all
// the provided writers, similar to the Unix tee(1) command, so one
// scrubbed stream can feed both a console and a [File]. Each write
// goes to each listed writer, one at a time; a write error stops the
// overall write and returns the error.
func MultiWriteCloser(writers ...io.Writer) io.WriteCloser {
	all := make([]io.Writer, 0, len(writers))
	for _, w := range writers {
		if mw, ok := w.(*multiWriteCloser); ok {
			all = append(all, mw.writers...)
		} else {
			all = append(all, w)
		}
	}
	return &multiWriteCloser{all}
}
