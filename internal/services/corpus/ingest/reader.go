// Package ingest adapts the pushshift dump reader to the corpus domain ports
package ingest

import (
	"cragsift/internal/adapters/archive/pushshift"
	"cragsift/internal/services/corpus/domain"
)

// readerFactory adapts pushshift.Open to the domain.ReaderFactory
type readerFactory struct {
	chunkSize int
}

// NewReaderFactory returns a factory that wraps pushshift.Open.
// chunkSize <= 0 keeps the reader default (1 MiB).
func NewReaderFactory(chunkSize int) domain.ReaderFactory {
	return readerFactory{chunkSize: chunkSize}
}

func (f readerFactory) Open(path string) (domain.ReaderPort, error) {
	r, err := pushshift.Open(path, pushshift.WithChunkSize(f.chunkSize))
	if err != nil {
		return nil, err
	}
	return r, nil
}
