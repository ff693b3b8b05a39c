package pushshift

import (
	"compress/gzip"
	"errors"
	"io"
	"os"
	"strings"

	"cragsift/internal/platform/logger"

	"github.com/klauspost/compress/zstd"
)

const (
	// DefaultChunkSize is how many decompressed bytes each read requests.
	DefaultChunkSize = 1 << 20
	sampleRawMax     = 2048 // max bytes of a raw line to log for the sample
)

// Format identifies the compression framing of a dump file.
type Format int

const (
	// FormatZstd is the native Pushshift dump format.
	FormatZstd Format = iota
	// FormatGzip covers .gz repackaged dumps.
	FormatGzip
)

// FormatForPath picks the Format from the file extension; zstd is the default.
func FormatForPath(path string) Format {
	if strings.HasSuffix(path, ".gz") {
		return FormatGzip
	}
	return FormatZstd
}

// Option configures a Reader.
type Option func(*Reader)

// WithChunkSize overrides the decompressed bytes requested per read.
// Values <= 0 keep the default.
func WithChunkSize(n int) Option {
	return func(rd *Reader) {
		if n > 0 {
			rd.buf = make([]byte, n)
		}
	}
}

// Reader streams raw newline-delimited records from a compressed dump.
// Lines are yielded in file order; the trailing unterminated line, if any,
// is dropped at end of stream.
type Reader struct {
	src     io.ReadCloser
	zr      io.Reader
	closeZ  func() error
	split   LineSplitter
	queue   [][]byte
	buf     []byte
	err     error
	lines   int
	bytes   int64
	sampled bool // logs exactly one sample raw line per dump
}

// Open opens the dump at path, picking the decompressor from the extension.
func Open(path string, opts ...Option) (*Reader, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	return NewReader(f, FormatForPath(path), opts...)
}

// NewReader creates a Reader over rc using the given Format.
// rc is closed on construction failure.
func NewReader(rc io.ReadCloser, format Format, opts ...Option) (*Reader, error) {
	rd := &Reader{src: rc, buf: make([]byte, DefaultChunkSize)}
	for _, o := range opts {
		o(rd)
	}

	switch format {
	case FormatGzip:
		gz, err := gzip.NewReader(rc)
		if err != nil {
			if cerr := rc.Close(); cerr != nil {
				return nil, cerr
			}
			return nil, err
		}
		rd.zr = gz
		rd.closeZ = gz.Close
	default:
		dec, err := zstd.NewReader(rc, zstd.WithDecoderConcurrency(1))
		if err != nil {
			if cerr := rc.Close(); cerr != nil {
				return nil, cerr
			}
			return nil, err
		}
		rd.zr = dec
		rd.closeZ = func() error {
			dec.Close()
			return nil
		}
	}
	return rd, nil
}

// Next returns the next complete line; io.EOF when the stream is exhausted.
// Decompression errors are sticky and abort the stream.
func (rd *Reader) Next() ([]byte, error) {
	for len(rd.queue) == 0 {
		if rd.err != nil {
			return nil, rd.err
		}
		n, err := rd.zr.Read(rd.buf)
		if n > 0 {
			rd.bytes += int64(n)
			rd.queue = rd.split.Feed(rd.buf[:n])
		}
		if err != nil {
			if errors.Is(err, io.EOF) {
				// pending partial line without a terminator is dropped here
				rd.err = io.EOF
			} else {
				rd.err = err
			}
		}
	}

	line := rd.queue[0]
	rd.queue = rd.queue[1:]
	rd.lines++

	// Log a single raw-line sample per dump
	if !rd.sampled {
		rd.sampled = true
		l := logger.Named("pushshift")
		l.Debug().
			Int("line_bytes", len(line)).
			Str("sample_raw", truncateUTF8(line, sampleRawMax)).
			Msg("pushshift: sample raw line")
	}

	return line, nil
}

// Close closes the decompressor and the underlying reader
func (rd *Reader) Close() error {
	var first error
	if rd.closeZ != nil {
		if err := rd.closeZ(); err != nil {
			first = err
		}
	}
	if rd.src != nil {
		if err := rd.src.Close(); err != nil && first == nil {
			first = err
		}
	}
	return first
}

// Stats returns lines yielded and decompressed bytes consumed so far
func (rd *Reader) Stats() (lines int, bytes int64) {
	return rd.lines, rd.bytes
}

// truncateUTF8 returns a string made from b, truncated to at most max bytes,
// backing up to a UTF-8 boundary if needed, and appending an ellipsis if truncated
func truncateUTF8(b []byte, max int) string {
	if max <= 0 || len(b) <= max {
		return string(b)
	}
	i := max
	// back up to the start of a rune (0b10xxxxxx indicates continuation byte)
	for i > 0 && (b[i]&0xC0) == 0x80 {
		i--
	}
	if i <= 0 {
		i = max
	}
	return string(b[:i]) + "..."
}
