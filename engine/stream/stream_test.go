package stream

import (
	"bytes"
	"errors"
	"io"
	"path/filepath"
	"testing"
)

func TestMemoryStreamReadWrite(t *testing.T) {
	s := NewMemoryStream()
	if !s.Opened() {
		t.Fatal("memory stream should always be opened")
	}
	if s.Size() != 0 || s.Tell() != 0 {
		t.Fatalf("new stream Size=%d Tell=%d, want 0 0", s.Size(), s.Tell())
	}

	payload := []byte("transform data")
	n, err := s.Write(payload)
	if err != nil || n != len(payload) {
		t.Fatalf("Write = %d, %v", n, err)
	}
	if s.Tell() != int64(len(payload)) || s.Size() != int64(len(payload)) {
		t.Fatalf("after write Tell=%d Size=%d", s.Tell(), s.Size())
	}

	if _, err := s.Seek(0, io.SeekStart); err != nil {
		t.Fatalf("Seek: %v", err)
	}
	got := make([]byte, len(payload))
	if n, err := s.Read(got); err != nil || n != len(payload) {
		t.Fatalf("Read = %d, %v", n, err)
	}
	if !bytes.Equal(got, payload) {
		t.Fatalf("Read = %q, want %q", got, payload)
	}

	// At the end of the data the next read reports EOF.
	if _, err := s.Read(make([]byte, 1)); err != io.EOF {
		t.Fatalf("Read at end = %v, want io.EOF", err)
	}
}

func TestMemoryStreamSeekOrigins(t *testing.T) {
	s := NewMemoryStream()
	if _, err := s.Write([]byte("0123456789")); err != nil {
		t.Fatalf("Write: %v", err)
	}

	tests := []struct {
		name   string
		offset int64
		whence int
		want   int64
	}{
		{"start", 2, io.SeekStart, 2},
		{"current forward", 3, io.SeekCurrent, 5},
		{"current backward", -4, io.SeekCurrent, 1},
		{"end", -2, io.SeekEnd, 8},
		{"past end", 4, io.SeekEnd, 14},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			pos, err := s.Seek(tt.offset, tt.whence)
			if err != nil {
				t.Fatalf("Seek: %v", err)
			}
			if pos != tt.want || s.Tell() != tt.want {
				t.Fatalf("Seek = %d (Tell %d), want %d", pos, s.Tell(), tt.want)
			}
		})
	}

	if _, err := s.Seek(-1, io.SeekStart); err == nil {
		t.Fatal("seeking before the start should fail")
	}
	if got := s.Tell(); got != 14 {
		t.Fatalf("failed Seek moved the cursor to %d", got)
	}
	if _, err := s.Seek(0, 42); err == nil {
		t.Fatal("invalid whence should fail")
	}
}

func TestMemoryStreamGapZeroFill(t *testing.T) {
	s := NewMemoryStream()
	if _, err := s.Write([]byte("ab")); err != nil {
		t.Fatalf("Write: %v", err)
	}
	if _, err := s.Seek(6, io.SeekStart); err != nil {
		t.Fatalf("Seek: %v", err)
	}
	if _, err := s.Write([]byte("cd")); err != nil {
		t.Fatalf("Write: %v", err)
	}
	if s.Size() != 8 {
		t.Fatalf("Size = %d, want 8", s.Size())
	}

	if _, err := s.Seek(0, io.SeekStart); err != nil {
		t.Fatalf("Seek: %v", err)
	}
	got := make([]byte, 8)
	if _, err := io.ReadFull(s, got); err != nil {
		t.Fatalf("ReadFull: %v", err)
	}
	want := []byte{'a', 'b', 0, 0, 0, 0, 'c', 'd'}
	if !bytes.Equal(got, want) {
		t.Fatalf("stream contents = %v, want %v", got, want)
	}
}

func TestSpanStreamCapacity(t *testing.T) {
	s := NewSpanStream(make([]byte, 4))

	if n, err := s.Write([]byte("hello")); !errors.Is(err, ErrSizeLimit) || n != 0 {
		t.Fatalf("oversized Write = %d, %v, want 0, ErrSizeLimit", n, err)
	}
	if s.Size() != 0 || s.Tell() != 0 {
		t.Fatalf("failed Write changed state: Size=%d Tell=%d", s.Size(), s.Tell())
	}

	if n, err := s.Write([]byte("hey!")); err != nil || n != 4 {
		t.Fatalf("Write = %d, %v", n, err)
	}
	if _, err := s.Write([]byte("x")); !errors.Is(err, ErrSizeLimit) {
		t.Fatal("writing past a fixed span should fail")
	}
}

func TestFileStream(t *testing.T) {
	path := filepath.Join(t.TempDir(), "poses.bin")
	if Exists(path) {
		t.Fatal("file should not exist yet")
	}

	f, err := Create(path)
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	if !f.Opened() {
		t.Fatal("created file should be opened")
	}

	payload := []byte("binary pose payload")
	if n, err := f.Write(payload); err != nil || n != len(payload) {
		t.Fatalf("Write = %d, %v", n, err)
	}
	if f.Tell() != int64(len(payload)) {
		t.Fatalf("Tell = %d, want %d", f.Tell(), len(payload))
	}
	if f.Size() != int64(len(payload)) {
		t.Fatalf("Size = %d, want %d", f.Size(), len(payload))
	}

	if _, err := f.Seek(7, io.SeekStart); err != nil {
		t.Fatalf("Seek: %v", err)
	}
	got := make([]byte, len(payload)-7)
	if _, err := io.ReadFull(f, got); err != nil {
		t.Fatalf("ReadFull: %v", err)
	}
	if !bytes.Equal(got, payload[7:]) {
		t.Fatalf("Read = %q, want %q", got, payload[7:])
	}

	if err := f.Close(); err != nil {
		t.Fatalf("Close: %v", err)
	}
	if f.Opened() {
		t.Fatal("closed file should not report opened")
	}
	if _, err := f.Read(make([]byte, 1)); !errors.Is(err, ErrClosed) {
		t.Fatalf("Read after Close = %v, want ErrClosed", err)
	}
	if f.Tell() != -1 || f.Size() != -1 {
		t.Fatal("Tell/Size on a closed file should return -1")
	}
	if err := f.Close(); err != nil {
		t.Fatalf("double Close: %v", err)
	}

	if !Exists(path) {
		t.Fatal("file should exist after Create")
	}

	r, err := Open(path)
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	defer r.Close()
	if r.Size() != int64(len(payload)) {
		t.Fatalf("reopened Size = %d, want %d", r.Size(), len(payload))
	}
}

func TestOpenMissingFile(t *testing.T) {
	if _, err := Open(filepath.Join(t.TempDir(), "missing.bin")); err == nil {
		t.Fatal("opening a missing file should fail")
	}
}
