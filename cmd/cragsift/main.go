package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"path/filepath"

	"cragsift/internal/core/sift"
	"cragsift/internal/core/version"
	"cragsift/internal/platform/config"
	perr "cragsift/internal/platform/errors"
	"cragsift/internal/platform/logger"
	"cragsift/internal/services/corpus/ingest"
	corpus "cragsift/internal/services/corpus/service"
)

func usage() {
	fmt.Fprintf(os.Stderr, "Usage: %s <input_file.zst> <output_file.jsonl>\n", filepath.Base(os.Args[0]))
	flag.PrintDefaults()
}

func main() {
	fVersion := flag.Bool("version", false, "print build info and exit")
	flag.Usage = usage
	flag.Parse()

	if *fVersion {
		bi := version.Info()
		fmt.Printf("%s %s (%s, %s)\n", bi.Service, bi.Version, bi.Commit, bi.Date)
		return
	}

	if flag.NArg() != 2 {
		usage()
		os.Exit(2)
	}
	inputPath, outputPath := flag.Arg(0), flag.Arg(1)

	l := logger.Get()

	// Corpus rules are compiled-in defaults, overridable via env only
	siftCfg := config.New().Prefix("SIFT_")
	rules := sift.DefaultRules()
	rules.Subreddit = siftCfg.MayString("SUBREDDIT", rules.Subreddit)
	rules.MinScore = int64(siftCfg.MayInt("MIN_SCORE", int(rules.MinScore)))
	rules.MinBodyRunes = siftCfg.MayInt("MIN_BODY_LEN", rules.MinBodyRunes)
	chunkKB := siftCfg.MayInt("CHUNK_KB", 1024)

	svc := corpus.New(ingest.NewReaderFactory(chunkKB*1024), corpus.Config{
		Rules:         rules,
		ProgressEvery: siftCfg.MayInt("PROGRESS_EVERY", 1_000_000),
	})

	_, err := svc.Run(context.Background(), inputPath, outputPath)
	if err != nil {
		if perr.IsCode(err, perr.ErrorCodeNotFound) {
			// expected condition, no output file was created
			fmt.Fprintf(os.Stderr, "Error: file %q not found.\n", inputPath)
			return
		}
		l.Fatal().Err(err).Msg("corpus run failed")
	}
}
