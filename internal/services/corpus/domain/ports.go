package domain

import (
	"context"

	"cragsift/internal/core/sift"
)

// RunnerPort is the public port exposed by the module (what callers invoke)
type RunnerPort interface {
	Run(ctx context.Context, inputPath, outputPath string) (Stats, error)
}

// ReaderPort yields raw dump lines
type ReaderPort interface {
	Next() ([]byte, error)
	Close() error
	Stats() (lines int, bytes int64) // return zeros if not supported
}

// ReaderFactory opens a ReaderPort for a dump path
type ReaderFactory interface {
	Open(path string) (ReaderPort, error)
}

// WriterPort persists output records
type WriterPort interface {
	Write(rec sift.OutputRecord) error
	Close() error
}
