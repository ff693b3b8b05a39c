// Package service implements the corpus extraction pipeline: stream a
// compressed dump, evaluate each line against the sift rules, and append the
// kept records to a JSONL output file
package service

import (
	"context"
	"errors"
	"io"
	"os"

	"cragsift/internal/core/sift"
	perr "cragsift/internal/platform/errors"
	"cragsift/internal/platform/logger"
	"cragsift/internal/services/corpus/domain"
	"cragsift/internal/services/corpus/ingest"

	"github.com/google/uuid"
)

// Config holds configuration options for the corpus service
type Config struct {
	// Rules gate and shape every record
	Rules sift.Rules

	// ProgressEvery logs a progress line every N consumed lines; <=0 -> 1e6
	ProgressEvery int
}

// Service implements domain.RunnerPort. Processing is strictly sequential:
// each line is fully evaluated and written before the next is read.
type Service struct {
	Readers domain.ReaderFactory
	Cfg     Config
}

// New constructs the corpus service
func New(rf domain.ReaderFactory, cfg Config) *Service {
	if rf == nil {
		rf = ingest.NewReaderFactory(0)
	}
	if cfg.Rules == (sift.Rules{}) {
		cfg.Rules = sift.DefaultRules()
	}
	if cfg.ProgressEvery <= 0 {
		cfg.ProgressEvery = 1_000_000
	}
	return &Service{Readers: rf, Cfg: cfg}
}

// Run streams inputPath through the rules into outputPath and returns the
// run stats. The input must exist before any output file is created; a
// missing input is a NotFound error and leaves no output behind. Stream
// corruption aborts the run and may leave a partial output file.
func (s *Service) Run(ctx context.Context, inputPath, outputPath string) (st domain.Stats, err error) {
	runID := uuid.NewString()
	log := logger.WithRun(runID)

	if _, serr := os.Stat(inputPath); serr != nil {
		if os.IsNotExist(serr) {
			return st, perr.NotFoundf("input file %q not found", inputPath)
		}
		return st, perr.Wrapf(serr, perr.ErrorCodeIO, "stat input %q", inputPath)
	}

	rd, err := s.Readers.Open(inputPath)
	if err != nil {
		return st, perr.Wrapf(err, perr.ErrorCodeCorruptArchive, "open dump %q", inputPath)
	}
	defer func() {
		if cerr := rd.Close(); cerr != nil && err == nil {
			err = perr.Wrap(cerr, perr.ErrorCodeIO, "close dump")
		}
	}()

	w, err := NewJSONLWriter(outputPath)
	if err != nil {
		return st, perr.Wrapf(err, perr.ErrorCodeIO, "create output %q", outputPath)
	}
	defer func() {
		if cerr := w.Close(); cerr != nil && err == nil {
			err = perr.Wrap(cerr, perr.ErrorCodeIO, "close output")
		}
	}()

	log.Info().
		Str("input", inputPath).
		Str("output", outputPath).
		Str("subreddit", s.Cfg.Rules.Subreddit).
		Int64("min_score", s.Cfg.Rules.MinScore).
		Int("min_body_len", s.Cfg.Rules.MinBodyRunes).
		Msg("corpus run starting")

	for {
		if cerr := ctx.Err(); cerr != nil {
			return st, perr.Wrap(cerr, perr.ErrorCodeUnknown, "run canceled")
		}

		line, rerr := rd.Next()
		if errors.Is(rerr, io.EOF) {
			break
		}
		if rerr != nil {
			return st, perr.WithOp(
				perr.Wrap(rerr, perr.ErrorCodeCorruptArchive, "read dump"), "corpus.run")
		}

		st.Lines++
		out := s.Cfg.Rules.Evaluate(line)
		if !out.Kept() {
			st.CountSkip(out.Skip)
		} else {
			if werr := w.Write(out.Record); werr != nil {
				return st, perr.Wrap(werr, perr.ErrorCodeIO, "write record")
			}
			st.Kept++
		}

		if st.Lines%s.Cfg.ProgressEvery == 0 {
			_, bytes := rd.Stats()
			log.Info().
				Int("lines", st.Lines).
				Int("kept", st.Kept).
				Int64("bytes", bytes).
				Msg("corpus run progress")
		}
	}

	_, st.BytesRead = rd.Stats()

	log.Info().
		Int("lines", st.Lines).
		Int("kept", st.Kept).
		Int("skipped", st.Skipped()).
		Int("blank", st.Blank).
		Int("bad_json", st.BadJSON).
		Int("wrong_subreddit", st.WrongSubreddit).
		Int("low_score", st.LowScore).
		Int("short_body", st.ShortBody).
		Int64("bytes", st.BytesRead).
		Msg("corpus run complete")

	return st, nil
}
