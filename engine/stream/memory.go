package stream

import (
	"fmt"
	"io"
	"math"
)

// maxStreamSize caps in-memory streams at 2 GiB so position indicators stay well
// inside int64 arithmetic and a runaway writer cannot exhaust memory unnoticed.
const maxStreamSize = math.MaxInt32

// SpanStream is an in-memory Stream over a caller-provided backing buffer, opened
// with fopen w+b semantics: a single shared read/write cursor, a size equal to the
// high-water mark of writes, and reads bounded by that size rather than the buffer
// capacity. Writes that would not fit the backing buffer fail with ErrSizeLimit and
// leave the stream unchanged.
type SpanStream struct {
	buf    []byte
	end    int // effective size of the data in the buffer
	cursor int // position indicator
	grow   bool
}

// Ensure both in-memory stream types implement the Stream interface.
var (
	_ Stream = &SpanStream{}
	_ Stream = &MemoryStream{}
)

// NewSpanStream creates an empty stream over the provided fixed-capacity buffer.
// The buffer's existing contents are ignored; the stream's size starts at zero.
//
// Parameters:
//   - buf: the backing buffer; its length bounds how much can be written
//
// Returns:
//   - *SpanStream: the newly created stream
func NewSpanStream(buf []byte) *SpanStream {
	return &SpanStream{buf: buf}
}

// MemoryStream is a self-allocating in-memory Stream. It behaves like a SpanStream
// whose backing buffer grows on demand, up to maxStreamSize.
type MemoryStream struct {
	SpanStream
}

// NewMemoryStream creates an empty self-growing memory stream.
//
// Returns:
//   - *MemoryStream: the newly created stream
func NewMemoryStream() *MemoryStream {
	return &MemoryStream{SpanStream{grow: true}}
}

// Opened reports whether the stream is usable. In-memory streams are always open.
//
// Returns:
//   - bool: always true
func (s *SpanStream) Opened() bool {
	return true
}

// resize ensures the backing buffer holds at least size bytes, growing it when the
// stream is growable. Returns false if the requested size cannot be provided.
func (s *SpanStream) resize(size int) bool {
	if size <= len(s.buf) {
		return true
	}
	if !s.grow || size > maxStreamSize {
		return false
	}
	capacity := len(s.buf) * 2
	if capacity < size {
		capacity = size
	}
	if capacity > maxStreamSize {
		capacity = maxStreamSize
	}
	grown := make([]byte, capacity)
	copy(grown, s.buf[:s.end])
	s.buf = grown
	return true
}

// Read reads up to len(p) bytes from the current position, advancing the position
// indicator by the number of bytes read. Reading at or past the stream size returns
// io.EOF.
func (s *SpanStream) Read(p []byte) (int, error) {
	if len(p) == 0 {
		return 0, nil
	}
	if s.cursor >= s.end {
		return 0, io.EOF
	}
	n := copy(p, s.buf[s.cursor:s.end])
	s.cursor += n
	return n, nil
}

// Write writes len(p) bytes at the current position, growing the stream as needed.
// Writing past the current size after a forward seek zero-fills the gap, matching
// file semantics. A write that cannot fit fails with ErrSizeLimit before any byte is
// written.
func (s *SpanStream) Write(p []byte) (int, error) {
	needed := s.cursor + len(p)
	if needed < 0 || !s.resize(needed) {
		return 0, ErrSizeLimit
	}
	// A forward seek can leave the cursor past the end; the gap reads as zeros,
	// so clear it even when the backing buffer came from the caller.
	for i := s.end; i < s.cursor; i++ {
		s.buf[i] = 0
	}
	n := copy(s.buf[s.cursor:needed], p)
	s.cursor += n
	if s.cursor > s.end {
		s.end = s.cursor
	}
	return n, nil
}

// Seek sets the position indicator relative to whence (io.SeekStart, io.SeekCurrent,
// io.SeekEnd) and returns the new position. Seeking past the end is allowed; seeking
// before the start or past maxStreamSize fails and leaves the position unchanged.
func (s *SpanStream) Seek(offset int64, whence int) (int64, error) {
	var base int64
	switch whence {
	case io.SeekStart:
		base = 0
	case io.SeekCurrent:
		base = int64(s.cursor)
	case io.SeekEnd:
		base = int64(s.end)
	default:
		return int64(s.cursor), fmt.Errorf("stream: invalid seek whence %d", whence)
	}
	target := base + offset
	if target < 0 || target > maxStreamSize {
		return int64(s.cursor), ErrSizeLimit
	}
	s.cursor = int(target)
	return target, nil
}

// Tell returns the current position indicator.
//
// Returns:
//   - int64: the current position in bytes
func (s *SpanStream) Tell() int64 {
	return int64(s.cursor)
}

// Size returns the effective size of the stream: the high-water mark of writes.
//
// Returns:
//   - int64: the stream size in bytes
func (s *SpanStream) Size() int64 {
	return int64(s.end)
}
