// Package runconfig loads the driver's YAML run configuration and
// translates it into engine.Args. The engine package never imports this
// one — a RunConfig is a CLI/file concern, not an engine concern.
package runconfig

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/samcharles93/shallowmodel/internal/engine"
)

// Config is the on-disk (and flag-overridable) shape of a training run.
type Config struct {
	Dim       int    `yaml:"dim"`
	Loss      string `yaml:"loss"`
	Model     string `yaml:"model"`
	Neg       int    `yaml:"neg"`
	Threads   int    `yaml:"threads"`
	Epochs    int    `yaml:"epochs"`
	LR        float32 `yaml:"lr"`
	Seed      int64  `yaml:"seed"`
	CountsPath string `yaml:"counts_path"`
	VocabSize int    `yaml:"vocab_size"`
}

// Default returns a Config with the values a new run should start from
// absent any file or flags.
func Default() Config {
	return Config{
		Dim:     100,
		Loss:    "ns",
		Model:   "sup",
		Neg:     5,
		Threads: 1,
		Epochs:  5,
		LR:      0.05,
		Seed:    1,
	}
}

// Load reads and parses a YAML config file, starting from Default() so
// that a partial file only overrides what it mentions.
func Load(path string) (Config, error) {
	cfg := Default()
	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("runconfig: read %s: %w", path, err)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("runconfig: parse %s: %w", path, err)
	}
	return cfg, nil
}

// EngineArgs translates the driver-facing Config into the plain
// engine.Args the engine package actually understands.
func (c Config) EngineArgs() (engine.Args, error) {
	var loss engine.Loss
	switch c.Loss {
	case "ns":
		loss = engine.NegativeSampling
	case "hs":
		loss = engine.HierarchicalSoftmax
	case "softmax":
		loss = engine.Softmax
	default:
		return engine.Args{}, fmt.Errorf("runconfig: unknown loss %q", c.Loss)
	}

	var model engine.ModelKind
	switch c.Model {
	case "sup":
		model = engine.Supervised
	case "cbow", "sg":
		model = engine.Unsupervised
	default:
		return engine.Args{}, fmt.Errorf("runconfig: unknown model %q", c.Model)
	}

	return engine.Args{
		Dim:   c.Dim,
		Loss:  loss,
		Model: model,
		Neg:   c.Neg,
	}, nil
}
