// Package stream provides the byte-stream capability consumed by asset-loading code:
// a seekable read/write stream with CRT FILE-like semantics, backed interchangeably
// by a file on disk or an in-memory growable buffer. The motion jobs never touch this
// package directly; it exists so code producing the transform data they operate on
// can be remapped between files and memory without changing.
package stream

import (
	"errors"
	"io"
)

// ErrClosed is returned by operations on a stream that is not opened.
var ErrClosed = errors.New("stream: not opened")

// ErrSizeLimit is returned when a write or seek would push an in-memory stream past
// its maximum size, or past the end of a fixed-span backing buffer. The stream is
// left unchanged; there is no partial-write state.
var ErrSizeLimit = errors.New("stream: size limit exceeded")

// Stream is a seekable byte stream. Seek origins follow the io package conventions
// (io.SeekStart, io.SeekCurrent, io.SeekEnd), so any Stream also satisfies
// io.ReadWriteSeeker and can be handed to code written against the standard
// library's io interfaces.
type Stream interface {
	// Opened reports whether the stream is usable. Read, Write, and Seek fail with
	// ErrClosed on a stream that is not opened.
	//
	// Returns:
	//   - bool: true if the stream is open
	Opened() bool

	io.Reader
	io.Writer
	io.Seeker

	// Tell returns the current position indicator of the stream, or -1 if the
	// position cannot be determined.
	//
	// Returns:
	//   - int64: the current stream position in bytes, or -1 on error
	Tell() int64

	// Size returns the current size of the stream, or -1 if the size cannot be
	// determined. The position indicator is unaffected.
	//
	// Returns:
	//   - int64: the stream size in bytes, or -1 on error
	Size() int64
}
