package main

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/goccy/go-json"
	"github.com/samber/lo"
	"github.com/urfave/cli/v3"

	"github.com/samcharles93/shallowmodel/internal/engine"
	"github.com/samcharles93/shallowmodel/internal/logger"
	"github.com/samcharles93/shallowmodel/internal/runconfig"
	"github.com/samcharles93/shallowmodel/internal/version"
	"github.com/samcharles93/shallowmodel/internal/vocab"
)

func predictCmd() *cli.Command {
	return &cli.Command{
		Name:  "predict",
		Usage: "read bags of feature indices from stdin, print top-k predictions as JSON",
		Flags: []cli.Flag{
			&cli.StringFlag{Name: "config", Usage: "path to a YAML run config"},
			&cli.StringFlag{Name: "model", Required: true, Usage: "path to a saved model file"},
			&cli.StringFlag{Name: "counts", Required: true, Usage: "path to a vocab.Counts JSON file"},
			&cli.IntFlag{Name: "k", Value: 5, Usage: "number of predictions per line"},
		},
		Action: runPredict,
	}
}

func runPredict(ctx context.Context, cmd *cli.Command) error {
	cfg := runconfig.Default()
	if p := cmd.String("config"); p != "" {
		loaded, err := runconfig.Load(p)
		if err != nil {
			return err
		}
		cfg = loaded
	}
	args, err := cfg.EngineArgs()
	if err != nil {
		return err
	}

	counts, err := vocab.LoadJSON(cmd.String("counts"))
	if err != nil {
		return err
	}
	params, trainedWith, err := loadModelParams(cmd.String("model"))
	if err != nil {
		return err
	}
	logger.Default().Info("loaded model", "trained_with", trainedWith, "running_with", version.String())

	state := engine.New(&params.wi, &params.wo, &params.attn, params.bias, args, cfg.Seed)
	state.SetTargetCounts(counts)

	k := int(cmd.Int("k"))
	scanner := bufio.NewScanner(os.Stdin)
	enc := json.NewEncoder(os.Stdout)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		fields := strings.Fields(line)
		input := lo.Map(fields, func(f string, _ int) int32 {
			n, _ := strconv.ParseInt(f, 10, 32)
			return int32(n)
		})
		preds := state.Predict(input, k)
		if err := enc.Encode(preds); err != nil {
			return fmt.Errorf("encode predictions: %w", err)
		}
	}
	return scanner.Err()
}
