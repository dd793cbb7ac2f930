package main

import (
	"context"

	"github.com/urfave/cli/v3"

	"github.com/samcharles93/shallowmodel/internal/logger"
	"github.com/samcharles93/shallowmodel/internal/vocab"
)

func vocabCmd() *cli.Command {
	return &cli.Command{
		Name:  "vocab",
		Usage: "build and persist class counts",
		Commands: []*cli.Command{
			{
				Name:  "build",
				Usage: "accumulate class counts from an examples file into a SQLite store, then snapshot to JSON",
				Flags: []cli.Flag{
					&cli.StringFlag{Name: "examples", Required: true},
					&cli.StringFlag{Name: "store", Value: ":memory:", Usage: "sqlite store path"},
					&cli.StringFlag{Name: "out", Required: true, Usage: "output counts JSON file"},
				},
				Action: runVocabBuild,
			},
		},
	}
}

func runVocabBuild(ctx context.Context, cmd *cli.Command) error {
	log := logger.Default()

	examples, err := LoadExamples(cmd.String("examples"))
	if err != nil {
		return err
	}

	store, err := vocab.OpenStore(cmd.String("store"))
	if err != nil {
		return err
	}
	defer store.Close()

	for _, ex := range examples {
		if err := store.Increment(int64(ex.Target), 1); err != nil {
			return err
		}
	}

	counts, err := store.Counts()
	if err != nil {
		return err
	}
	if err := counts.SaveJSON(cmd.String("out")); err != nil {
		return err
	}
	log.Info("vocab build complete", "classes", len(counts), "out", cmd.String("out"))
	return nil
}
