// Package ioutil provides I/O helpers shared by renderers.
package ioutil

import (
	"io"
	"sync"

	"braces.dev/errtrace"
)

// CountingWriter wraps an [io.Writer], sums written bytes and remembers the first error.
// Once an error occurs every further write is a no-op returning that error,
// so renderers can emit pieces unconditionally and check [CountingWriter.Result] once.
type CountingWriter struct {
	w   io.Writer
	num int
	err error
}

// NewCountingWriter creates a new CountingWriter wrapping w.
func NewCountingWriter(w io.Writer) *CountingWriter { return &CountingWriter{w: w} }

// Write implements [io.Writer].
func (cw *CountingWriter) Write(p []byte) (int, error) {
	if cw.err != nil {
		return 0, errtrace.Wrap(cw.err)
	}
	n, err := cw.w.Write(p)
	return n, errtrace.Wrap(cw.track(n, err))
}

// WriteString implements [io.StringWriter].
func (cw *CountingWriter) WriteString(s string) (int, error) {
	if cw.err != nil {
		return 0, errtrace.Wrap(cw.err)
	}
	n, err := io.WriteString(cw.w, s)
	return n, errtrace.Wrap(cw.track(n, err))
}

// WriteByte implements [io.ByteWriter].
func (cw *CountingWriter) WriteByte(c byte) error {
	_, err := cw.Write([]byte{c})
	return errtrace.Wrap(err)
}

func (cw *CountingWriter) track(n int, err error) error {
	cw.num += n
	if err != nil {
		cw.err = err
	}
	return err //errtrace:skip
}

// Result returns the total number of bytes written and the first error encountered.
func (cw *CountingWriter) Result() (int, error) { return cw.num, errtrace.Wrap(cw.err) }

// Count returns the total number of bytes written.
func (cw *CountingWriter) Count() int { return cw.num }

var cntWrtPool = &sync.Pool{
	New: func() any { return new(CountingWriter) },
}

// GetCountingWriter takes a CountingWriter bound to w from the pool.
func GetCountingWriter(w io.Writer) *CountingWriter {
	cw := cntWrtPool.Get().(*CountingWriter) //nolint:forcetypeassert
	cw.w = w
	return cw
}

// FreeCountingWriter resets cw and returns it to the pool.
func FreeCountingWriter(cw *CountingWriter) {
	*cw = CountingWriter{}
	cntWrtPool.Put(cw)
}
