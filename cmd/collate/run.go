package main

import (
	"bufio"
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"strings"

	"github.com/amp-labs/collate/collate"
	collerrors "github.com/amp-labs/collate/errors"
	"github.com/amp-labs/collate/input"
	"github.com/amp-labs/collate/logger"
	"github.com/amp-labs/collate/should"
	"github.com/amp-labs/collate/stream"
	"github.com/amp-labs/collate/xform"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/common/expfmt"
)

const (
	modeMerge = "merge"
	modeDiff  = "diff"

	metricsPrefix = "collate_"
)

var errUsage = errors.New("usage: collate [flags] <merge|diff> LEFT RIGHT")

func run(ctx context.Context, args []string, stdout, stderr io.Writer) error {
	fs := flag.NewFlagSet("collate", flag.ContinueOnError)
	fs.SetOutput(stderr)

	var flags settings

	fs.StringVar(&flags.order, "order", defaultOrder,
		"collation order: lexical, natural or locale:<bcp47>, optionally prefixed with reverse: ($"+envOrder+")")
	fs.StringVar(&flags.charset, "charset", input.AutoCharset,
		"input charset, or auto to detect it ($"+envCharset+")")
	fs.StringVar(&flags.normalize, "normalize", input.NoNormalization,
		"Unicode normalization applied before comparing: nfc, nfd, nfkc, nfkd or none ($"+envNorm+")")
	fs.BoolVar(&flags.check, "check", false, "fail if an input is not sorted ($"+envCheck+")")
	fs.BoolVar(&flags.metrics, "metrics", false, "write stream metrics to stderr on exit ($"+envMetrics+")")
	configPath := fs.String("config", "", "YAML file with defaults for the flags above")

	fs.Usage = func() {
		fmt.Fprintln(fs.Output(), errUsage.Error()) //nolint:errcheck
		fs.PrintDefaults()
	}

	if err := fs.Parse(args); err != nil {
		return err
	}

	if fs.NArg() != 3 { //nolint:mnd
		fs.Usage()

		return errUsage
	}

	mode, err := xform.OneOf(modeMerge, modeDiff)(strings.ToLower(fs.Arg(0)))
	if err != nil {
		return fmt.Errorf("%w: %w", collerrors.ErrUnknownMode, err)
	}

	cfg, err := loadConfig(*configPath)
	if err != nil {
		return err
	}

	opts, err := resolve(ctx, fs, flags, cfg)
	if err != nil {
		return err
	}

	if opts.metrics {
		defer writeMetrics(ctx, stderr)
	}

	collator, err := collate.ByName(opts.order)
	if err != nil {
		return err
	}

	logger.Get(ctx).Debug("collating",
		"mode", mode, "order", opts.order, "charset", opts.charset, "normalize", opts.normalize, "check", opts.check)

	left, err := openSide(ctx, fs.Arg(1), collator, opts)
	if err != nil {
		return err
	}
	defer should.Close(ctx, left, "closing left input", "path", fs.Arg(1))

	right, err := openSide(ctx, fs.Arg(2), collator, opts)
	if err != nil {
		return err
	}
	defer should.Close(ctx, right, "closing right input", "path", fs.Arg(2))

	var combined stream.Source[string]

	switch mode {
	case modeMerge:
		combined = stream.MergeSources(collator, left.lines, right.lines)
	default:
		combined = stream.DiffSources(collator, left.lines, right.lines)
	}

	return write(ctx, combined, stdout)
}

type side struct {
	io.Closer

	lines stream.Source[string]
}

func openSide(ctx context.Context, path string, c collate.Collator[string], opts settings) (*side, error) {
	rc, err := input.Open(ctx, path, opts.charset)
	if err != nil {
		return nil, logger.AnnotateError(err, "path", path)
	}

	text, err := input.Normalize(rc, opts.normalize)
	if err != nil {
		should.Close(ctx, rc, "closing input", "path", path)

		return nil, err
	}

	lines := input.Lines(text)
	if opts.check {
		lines = stream.Checked(c, lines)
	}

	return &side{Closer: rc, lines: annotated(lines, path)}, nil
}

// annotated tags any failure of src with the path it was read from.
func annotated(src stream.Source[string], path string) stream.Source[string] { //nolint:ireturn
	return stream.SourceFunc[string](func(ctx context.Context) (string, bool, error) {
		line, ok, err := src.Next(ctx)
		if err != nil {
			return line, ok, logger.AnnotateError(fmt.Errorf("%s: %w", path, err), "path", path)
		}

		return line, ok, nil
	})
}

func write(ctx context.Context, src stream.Source[string], stdout io.Writer) error {
	out := bufio.NewWriter(stdout)

	var written int

	for line, err := range stream.All(ctx, src) {
		if err != nil {
			return errors.Join(err, out.Flush())
		}

		if _, err := out.WriteString(line); err != nil {
			return err
		}

		if err := out.WriteByte('\n'); err != nil {
			return err
		}

		written++
	}

	logger.Get(ctx).Debug("collated", "lines", written)

	return out.Flush()
}

// writeMetrics dumps the collate_ metric families in the text exposition format.
func writeMetrics(ctx context.Context, w io.Writer) {
	families, err := prometheus.DefaultGatherer.Gather()
	if err != nil {
		logger.Get(ctx).Warn("error gathering metrics", "error", err)

		return
	}

	for _, family := range families {
		if !strings.HasPrefix(family.GetName(), metricsPrefix) {
			continue
		}

		if _, err := expfmt.MetricFamilyToText(w, family); err != nil {
			logger.Get(ctx).Warn("error writing metrics", "error", err)

			return
		}
	}
}
