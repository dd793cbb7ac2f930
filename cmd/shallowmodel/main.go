// Command shallowmodel is a minimal Hogwild training/prediction driver
// around the internal/engine package. It exists to demonstrate the
// engine running under real thread fan-out; it deliberately does not
// implement a full learning-rate schedule or epoch bookkeeping beyond
// what that demonstration needs.
package main

import (
	"context"
	"fmt"
	"os"

	"github.com/urfave/cli/v3"

	"github.com/samcharles93/shallowmodel/internal/logger"
	"github.com/samcharles93/shallowmodel/internal/version"
)

func main() {
	app := &cli.Command{
		Name:    "shallowmodel",
		Usage:   "train and query a shallow feature-embedding model",
		Version: version.String(),
		Commands: []*cli.Command{
			trainCmd(),
			predictCmd(),
			vocabCmd(),
		},
	}

	if err := app.Run(context.Background(), os.Args); err != nil {
		log := logger.Default()
		log.Error("shallowmodel failed", "err", err)
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
