package stream

import (
	"fmt"
	"io"
	"os"
)

// File is a Stream backed by an operating-system file handle.
type File struct {
	f *os.File
}

// Ensure File implements the Stream interface.
var _ Stream = &File{}

// Exists tests whether a file exists at path. Note that this check is costly; if you
// intend to open the file right after, open it and use Opened to test the result
// instead.
//
// Parameters:
//   - path: the file path to test
//
// Returns:
//   - bool: true if a file exists at path
func Exists(path string) bool {
	info, err := os.Stat(path)
	return err == nil && !info.IsDir()
}

// Open opens the file at path for reading.
//
// Parameters:
//   - path: the file path to open
//
// Returns:
//   - *File: the opened file stream
//   - error: error if the file could not be opened
func Open(path string) (*File, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("stream: open %s: %w", path, err)
	}
	return &File{f: f}, nil
}

// Create creates (or truncates) the file at path and opens it for reading and
// writing, equivalent to fopen's "w+b" mode.
//
// Parameters:
//   - path: the file path to create
//
// Returns:
//   - *File: the opened file stream
//   - error: error if the file could not be created
func Create(path string) (*File, error) {
	f, err := os.OpenFile(path, os.O_RDWR|os.O_CREATE|os.O_TRUNC, 0o644)
	if err != nil {
		return nil, fmt.Errorf("stream: create %s: %w", path, err)
	}
	return &File{f: f}, nil
}

// FromOSFile wraps an already-open os.File, which may be nil. The returned File
// takes ownership of the handle and closes it on Close.
//
// Parameters:
//   - f: the os.File to take ownership of, or nil
//
// Returns:
//   - *File: the wrapping file stream
func FromOSFile(f *os.File) *File {
	return &File{f: f}
}

// Opened reports whether the underlying file handle is open.
//
// Returns:
//   - bool: true if the file is open
func (f *File) Opened() bool {
	return f.f != nil
}

// Close closes the file if it is opened. Closing an already-closed File is a no-op.
//
// Returns:
//   - error: error if the underlying close fails
func (f *File) Close() error {
	if f.f == nil {
		return nil
	}
	err := f.f.Close()
	f.f = nil
	return err
}

// Read reads up to len(p) bytes into p, advancing the position indicator by the
// number of bytes read.
func (f *File) Read(p []byte) (int, error) {
	if f.f == nil {
		return 0, ErrClosed
	}
	return f.f.Read(p)
}

// Write writes len(p) bytes from p, advancing the position indicator by the number
// of bytes written.
func (f *File) Write(p []byte) (int, error) {
	if f.f == nil {
		return 0, ErrClosed
	}
	return f.f.Write(p)
}

// Seek sets the position indicator relative to whence (io.SeekStart, io.SeekCurrent,
// io.SeekEnd) and returns the new position.
func (f *File) Seek(offset int64, whence int) (int64, error) {
	if f.f == nil {
		return 0, ErrClosed
	}
	return f.f.Seek(offset, whence)
}

// Tell returns the current position indicator, or -1 on error.
//
// Returns:
//   - int64: the current position in bytes, or -1 on error
func (f *File) Tell() int64 {
	if f.f == nil {
		return -1
	}
	pos, err := f.f.Seek(0, io.SeekCurrent)
	if err != nil {
		return -1
	}
	return pos
}

// Size returns the file size in bytes without moving the position indicator, or -1
// on error.
//
// Returns:
//   - int64: the file size in bytes, or -1 on error
func (f *File) Size() int64 {
	if f.f == nil {
		return -1
	}
	info, err := f.f.Stat()
	if err != nil {
		return -1
	}
	return info.Size()
}
