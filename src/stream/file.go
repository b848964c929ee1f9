// FILE: clilogger/src/stream/file.go
package stream

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"sync"
	"sync/atomic"

	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/encoding/unicode"
)

var (
	ErrUnknownFlags    = errors.New("unknown file flags")
	ErrUnknownEncoding = errors.New("unknown file encoding")
	ErrFileClosed      = errors.New("file stream closed")
)

// FileOptions configures a File stream. Zero values select append mode,
// permission 0666 and UTF-8.
type FileOptions struct {
	Flags    string
	Mode     os.FileMode
	Encoding string
}

// File is a writer over a path that opens the file on first write.
type File struct {
	path    string
	flag    int
	mode    os.FileMode
	encoder *encoding.Encoder

	mu     sync.Mutex
	file   *os.File
	closed bool

	bytesWritten atomic.Uint64
	writeErrors  atomic.Uint64
}

// NewFile validates the options and returns an unopened file stream.
func NewFile(path string, opts FileOptions) (*File, error) {
	if path == "" {
		return nil, fmt.Errorf("file stream path cannot be empty")
	}

	flag, err := parseFlags(opts.Flags)
	if err != nil {
		return nil, err
	}

	enc, err := lookupEncoding(opts.Encoding)
	if err != nil {
		return nil, err
	}

	mode := opts.Mode
	if mode == 0 {
		mode = 0o666
	}

	return &File{
		path:    path,
		flag:    flag,
		mode:    mode,
		encoder: enc,
	}, nil
}

// Path returns the file path.
func (f *File) Path() string {
	return f.path
}

// Write opens the file if needed, encodes p and writes it.
func (f *File) Write(p []byte) (int, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	if f.closed {
		return 0, ErrFileClosed
	}

	if f.file == nil {
		file, err := os.OpenFile(f.path, f.flag, f.mode)
		if err != nil {
			f.writeErrors.Add(1)
			return 0, fmt.Errorf("failed to open %s: %w", f.path, err)
		}
		f.file = file
	}

	data := p
	if f.encoder != nil {
		encoded, err := f.encoder.Bytes(p)
		if err != nil {
			f.writeErrors.Add(1)
			return 0, fmt.Errorf("failed to encode output for %s: %w", f.path, err)
		}
		data = encoded
	}

	if _, err := f.file.Write(data); err != nil {
		f.writeErrors.Add(1)
		return 0, err
	}
	f.bytesWritten.Add(uint64(len(data)))
	return len(p), nil
}

// Close closes the underlying file. Later writes fail with ErrFileClosed.
func (f *File) Close() error {
	f.mu.Lock()
	defer f.mu.Unlock()

	f.closed = true
	if f.file == nil {
		return nil
	}
	err := f.file.Close()
	f.file = nil
	return err
}

// GetStats returns the stream's statistics.
func (f *File) GetStats() map[string]any {
	f.mu.Lock()
	open := f.file != nil
	f.mu.Unlock()

	return map[string]any{
		"type":          "file",
		"path":          f.path,
		"open":          open,
		"bytes_written": f.bytesWritten.Load(),
		"write_errors":  f.writeErrors.Load(),
	}
}

// parseFlags maps fopen-style flag strings to os.OpenFile flags.
func parseFlags(flags string) (int, error) {
	switch flags {
	case "", "a":
		return os.O_WRONLY | os.O_CREATE | os.O_APPEND, nil
	case "a+":
		return os.O_RDWR | os.O_CREATE | os.O_APPEND, nil
	case "ax":
		return os.O_WRONLY | os.O_CREATE | os.O_APPEND | os.O_EXCL, nil
	case "w":
		return os.O_WRONLY | os.O_CREATE | os.O_TRUNC, nil
	case "w+":
		return os.O_RDWR | os.O_CREATE | os.O_TRUNC, nil
	case "wx":
		return os.O_WRONLY | os.O_CREATE | os.O_TRUNC | os.O_EXCL, nil
	case "r+":
		return os.O_RDWR, nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrUnknownFlags, flags)
	}
}

// lookupEncoding returns nil for UTF-8, which needs no transform.
func lookupEncoding(name string) (*encoding.Encoder, error) {
	switch strings.ToLower(strings.ReplaceAll(name, "-", "")) {
	case "", "utf8":
		return nil, nil
	case "latin1", "binary", "iso88591":
		return encoding.ReplaceUnsupported(charmap.ISO8859_1.NewEncoder()), nil
	case "utf16le", "ucs2":
		return unicode.UTF16(unicode.LittleEndian, unicode.IgnoreBOM).NewEncoder(), nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownEncoding, name)
	}
}
