package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"sync/atomic"
	"time"

	"github.com/google/uuid"
	"github.com/urfave/cli/v3"
	"golang.org/x/sync/errgroup"
	"golang.org/x/time/rate"

	"github.com/samcharles93/shallowmodel/internal/engine"
	"github.com/samcharles93/shallowmodel/internal/logger"
	"github.com/samcharles93/shallowmodel/internal/runconfig"
	"github.com/samcharles93/shallowmodel/internal/vocab"
)

func trainCmd() *cli.Command {
	return &cli.Command{
		Name:  "train",
		Usage: "run Hogwild SGD training over a pre-tokenized examples file",
		Flags: []cli.Flag{
			&cli.StringFlag{Name: "config", Usage: "path to a YAML run config"},
			&cli.StringFlag{Name: "examples", Required: true, Usage: "path to the pre-tokenized examples file"},
			&cli.StringFlag{Name: "counts", Required: true, Usage: "path to a vocab.Counts JSON file"},
			&cli.StringFlag{Name: "out", Value: "model.bin", Usage: "output model file"},
			&cli.IntFlag{Name: "threads", Usage: "override config threads"},
			&cli.BoolFlag{Name: "status-server", Usage: "serve training status on :8089 while running"},
		},
		Action: runTrain,
	}
}

func runTrain(ctx context.Context, cmd *cli.Command) error {
	cfg := runconfig.Default()
	if p := cmd.String("config"); p != "" {
		loaded, err := runconfig.Load(p)
		if err != nil {
			return err
		}
		cfg = loaded
	}
	if cmd.IsSet("threads") {
		cfg.Threads = int(cmd.Int("threads"))
	}
	if cfg.Threads < 1 {
		cfg.Threads = 1
	}

	args, err := cfg.EngineArgs()
	if err != nil {
		return err
	}

	counts, err := vocab.LoadJSON(cmd.String("counts"))
	if err != nil {
		return err
	}
	examples, err := LoadExamples(cmd.String("examples"))
	if err != nil {
		return err
	}

	oszRows := len(counts)
	if args.Loss == engine.HierarchicalSoftmax {
		oszRows = len(counts) - 1
	}
	vocabSize := maxFeatureID(examples) + 1
	const positions = 8 // discretized relative-position slots for attention

	params := newModelParams(vocabSize, oszRows, args.Dim, positions, cfg.Seed)

	runID := uuid.New()
	log := logger.Pretty(os.Stderr, slog.LevelInfo).With("run_id", runID.String())
	log.Info("starting training", "threads", cfg.Threads, "epochs", cfg.Epochs, "examples", len(examples), "loss_fn", args.Loss.String())

	var statusSrv *statusServer
	if cmd.Bool("status-server") {
		statusSrv = newStatusServer()
		go func() {
			if err := statusSrv.Start(ctx, ":8089"); err != nil {
				log.Warn("status server stopped", "err", err)
			}
		}()
	}

	states := make([]*engine.State, cfg.Threads)
	for i := range states {
		states[i] = engine.New(&params.wi, &params.wo, &params.attn, params.bias, args, cfg.Seed+int64(i))
		states[i].SetTargetCounts(counts)
	}

	limiter := rate.NewLimiter(rate.Every(500*time.Millisecond), 1)
	var examplesDone int64

	for epoch := 0; epoch < cfg.Epochs; epoch++ {
		lr := cfg.LR * (1 - float32(epoch)/float32(cfg.Epochs))

		g, gctx := errgroup.WithContext(ctx)
		for w := 0; w < cfg.Threads; w++ {
			worker := w
			g.Go(func() error {
				state := states[worker]
				for i := worker; i < len(examples); i += cfg.Threads {
					if gctx.Err() != nil {
						return gctx.Err()
					}
					ex := examples[i]
					state.Update(ex.Input, ex.Target, lr)
					n := atomic.AddInt64(&examplesDone, 1)
					if limiter.Allow() {
						loss := state.GetLoss()
						log.Info("progress", "epoch", epoch, "examples_done", n, "loss", loss)
						if statusSrv != nil {
							statusSrv.update(loss, n)
						}
					}
				}
				return nil
			})
		}
		if err := g.Wait(); err != nil {
			return fmt.Errorf("training epoch %d: %w", epoch, err)
		}
	}

	if err := params.save(cmd.String("out")); err != nil {
		return err
	}
	log.Info("training complete", "model_path", cmd.String("out"))
	return nil
}

func maxFeatureID(examples []Example) int {
	max := 0
	for _, ex := range examples {
		for _, f := range ex.Input {
			if int(f) > max {
				max = int(f)
			}
		}
		if int(ex.Target) > max {
			max = int(ex.Target)
		}
	}
	return max
}
