package main

import (
	"bytes"
	"cmp"
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/amp-labs/collate/envutil"
	"github.com/amp-labs/collate/input"
	"gopkg.in/yaml.v3"
)

const (
	envOrder   = "COLLATE_ORDER"
	envCharset = "COLLATE_CHARSET"
	envCheck   = "COLLATE_CHECK"
	envMetrics = "COLLATE_METRICS"
	envNorm    = "COLLATE_NORMALIZE"

	defaultOrder = "lexical"
)

// Config is the shape of the --config file. Every field is optional.
type Config struct {
	Order     string `yaml:"order"`
	Charset   string `yaml:"charset"`
	Normalize string `yaml:"normalize"`
	Check     bool   `yaml:"check"`
	Metrics   bool   `yaml:"metrics"`
}

func loadConfig(path string) (Config, error) {
	var cfg Config

	if path == "" {
		return cfg, nil
	}

	data, err := os.ReadFile(path) //nolint:gosec
	if err != nil {
		return cfg, fmt.Errorf("error reading config: %w", err)
	}

	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)

	if err := dec.Decode(&cfg); err != nil && !errors.Is(err, io.EOF) {
		return cfg, fmt.Errorf("error parsing config %s: %w", path, err)
	}

	return cfg, nil
}

type settings struct {
	order     string
	charset   string
	normalize string
	check     bool
	metrics   bool
}

// resolve fills in every setting whose flag wasn't given, first from the
// environment and then from cfg.
func resolve(ctx context.Context, fs *flag.FlagSet, flags settings, cfg Config) (settings, error) {
	given := make(map[string]bool)

	fs.Visit(func(f *flag.Flag) {
		given[f.Name] = true
	})

	out := flags

	var err error

	if !given["order"] {
		out.order, err = envutil.String(ctx, envOrder,
			envutil.Default(cmp.Or(cfg.Order, defaultOrder))).Value()
		if err != nil {
			return out, err
		}
	}

	if !given["charset"] {
		out.charset, err = envutil.String(ctx, envCharset,
			envutil.Default(cmp.Or(cfg.Charset, input.AutoCharset))).Value()
		if err != nil {
			return out, err
		}
	}

	if !given["normalize"] {
		out.normalize, err = envutil.String(ctx, envNorm,
			envutil.Default(cmp.Or(cfg.Normalize, input.NoNormalization))).Value()
		if err != nil {
			return out, err
		}
	}

	if !given["check"] {
		out.check, err = envutil.Bool(ctx, envCheck, envutil.Default(cfg.Check)).Value()
		if err != nil {
			return out, err
		}
	}

	if !given["metrics"] {
		out.metrics, err = envutil.Bool(ctx, envMetrics, envutil.Default(cfg.Metrics)).Value()
		if err != nil {
			return out, err
		}
	}

	return out, nil
}
