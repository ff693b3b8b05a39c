// Package pushshift handles reading Pushshift dump files record-by-record
//
// Design choices:
// - Decompress in fixed-size chunks (1 MiB of output per read) and reassemble
//   newline-terminated records with an explicit carry buffer, so a chunk
//   boundary can never split a record.
// - A trailing line with no terminator is dropped at end of stream; dump
//   producers terminate every record, so leftover bytes mean a cut file.
// - Lines stay opaque bytes here. JSON decode and field policy live in
//   core/sift so the reader imposes no schema.
// - zstd is the dumps' native format; gzip is accepted for .gz inputs.
package pushshift
