// Package pipeline walks a catalog, generates every image and hands the
// interchange encoding to a Converter.
//
// Each entry is generated exactly once from its own seed into its own
// buffer, so entries may run concurrently (see WithWorkers) without changing
// any output. The Report lists results in catalog order regardless of the
// execution order.
package pipeline

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/gogpu/moodgen"
	"github.com/gogpu/moodgen/catalog"
	"github.com/gogpu/moodgen/internal/parallel"
	"github.com/gogpu/moodgen/scene"
)

// Converter produces the final image file for one entry from its PPM
// interchange encoding. dst is the slash-separated destination path. A
// Converter must be safe for concurrent use when the pipeline runs with
// more than one worker.
type Converter interface {
	Convert(ctx context.Context, ppm []byte, dst string) error
}

// ConverterFunc adapts a function to the Converter interface.
type ConverterFunc func(ctx context.Context, ppm []byte, dst string) error

// Convert calls f(ctx, ppm, dst).
func (f ConverterFunc) Convert(ctx context.Context, ppm []byte, dst string) error {
	return f(ctx, ppm, dst)
}

// Pipeline generates the images of a catalog.
type Pipeline struct {
	cat  *catalog.Catalog
	conv Converter
	opts options
}

// New creates a pipeline over cat that hands every image to conv.
func New(cat *catalog.Catalog, conv Converter, opts ...Option) *Pipeline {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	return &Pipeline{cat: cat, conv: conv, opts: o}
}

// Catalog returns the catalog the pipeline runs over.
func (p *Pipeline) Catalog() *catalog.Catalog {
	return p.cat
}

// Dst returns the destination path of an entry.
func (p *Pipeline) Dst(e catalog.Entry) string {
	return e.Path(p.opts.root, p.opts.ext)
}

func (p *Pipeline) logger() *slog.Logger {
	if p.opts.logger != nil {
		return p.opts.logger
	}
	return moodgen.Logger()
}

// Generate renders one entry: it checks that the entry belongs to the
// catalog, looks up the style palette, seeds a fresh random source from the
// entry and calls the generator selected by the section name. Entries that
// are not part of the catalog fail with a *catalog.ConfigError.
func (p *Pipeline) Generate(e catalog.Entry) (*moodgen.Buffer, error) {
	if err := p.cat.Check(e); err != nil {
		return nil, fmt.Errorf("pipeline: %w", err)
	}
	pal, _ := p.cat.Palette(e.Style)
	gen := scene.KindForSection(e.Section).Generator()
	return gen(pal, e.Index, e.Rand()), nil
}

// Run processes every entry of the catalog. See RunEntries.
func (p *Pipeline) Run(ctx context.Context) (*Report, error) {
	return p.RunEntries(ctx, p.cat.Entries())
}

// RunEntries generates and converts the given entries. Entries that do not
// belong to the catalog fail (see Generate) without reaching the converter.
//
// Under SkipAndContinue every entry is attempted; failures are collected in
// the report. Under AbortOnError the first failure stops scheduling and the
// entries that had not started are reported with ErrAborted. In both cases
// the returned error joins every entry error, or is nil when all entries
// converted.
func (p *Pipeline) RunEntries(ctx context.Context, entries []catalog.Entry) (*Report, error) {
	log := p.logger()
	start := time.Now()
	log.Info("pipeline: run started",
		"entries", len(entries),
		"workers", p.opts.workers,
		"policy", p.opts.policy.String(),
		"root", p.opts.root)

	rep := &Report{Results: make([]Result, len(entries))}

	runCtx, cancel := context.WithCancelCause(ctx)
	defer cancel(nil)

	pool := parallel.NewWorkerPool(p.opts.workers)
	defer pool.Close()

	pool.ForEach(runCtx, len(entries), func(ctx context.Context, i int) {
		res := p.process(ctx, entries[i])
		rep.Results[i] = res
		if res.Err != nil && p.opts.policy == AbortOnError {
			cancel(ErrAborted)
		}
	}, func(i int) {
		rep.Results[i] = Result{
			Entry: entries[i],
			Dst:   p.Dst(entries[i]),
			Err:   context.Cause(runCtx),
		}
	})

	rep.tally()
	log.Info("pipeline: run finished",
		"converted", rep.Converted,
		"failed", rep.Failed,
		"skipped", rep.Skipped,
		"elapsed", time.Since(start))

	return rep, rep.Err()
}

// process runs one entry: one generation, then up to 1+retries conversions.
func (p *Pipeline) process(ctx context.Context, e catalog.Entry) Result {
	log := p.logger()
	res := Result{Entry: e, Dst: p.Dst(e)}

	buf, err := p.Generate(e)
	if err != nil {
		res.Err = err
		log.Warn("pipeline: generate failed", "entry", e.ID(), "err", err)
		return res
	}
	log.Debug("pipeline: generated",
		"entry", e.ID(),
		"seed", e.Seed(),
		"scene", scene.KindForSection(e.Section).String(),
		"dst", res.Dst)

	ppm := moodgen.EncodePPM(buf)
	for res.Attempts < 1+p.opts.retries {
		res.Attempts++
		err = p.conv.Convert(ctx, ppm, res.Dst)
		if err == nil || ctx.Err() != nil {
			break
		}
		if res.Attempts <= p.opts.retries {
			log.Warn("pipeline: conversion failed, retrying",
				"entry", e.ID(), "attempt", res.Attempts, "err", err)
		}
	}
	if err != nil {
		res.Err = &ConversionError{Entry: e, Dst: res.Dst, Attempts: res.Attempts, Err: err}
		log.Warn("pipeline: conversion failed", "entry", e.ID(), "err", err)
	}
	return res
}

// Result is the outcome of one entry.
type Result struct {
	Entry    catalog.Entry
	Dst      string
	Attempts int   // conversion attempts; 0 if the entry never reached the converter
	Err      error // nil on success
}

// Report collects the results of a run in catalog order.
type Report struct {
	Results   []Result
	Converted int // entries converted successfully
	Failed    int // entries that were attempted and failed
	Skipped   int // entries never started (aborted or canceled)
}

func (r *Report) tally() {
	r.Converted, r.Failed, r.Skipped = 0, 0, 0
	for _, res := range r.Results {
		switch {
		case res.Err == nil:
			r.Converted++
		case res.Attempts == 0 && isSkip(res.Err):
			r.Skipped++
		default:
			r.Failed++
		}
	}
}

func isSkip(err error) bool {
	return errors.Is(err, ErrAborted) || errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded)
}

// Failures returns the results that carry an error, in catalog order.
func (r *Report) Failures() []Result {
	var out []Result
	for _, res := range r.Results {
		if res.Err != nil {
			out = append(out, res)
		}
	}
	return out
}

// Err joins the errors of all failed and skipped entries, or returns nil.
func (r *Report) Err() error {
	var errs []error
	for _, res := range r.Results {
		if res.Err != nil {
			errs = append(errs, fmt.Errorf("%s: %w", res.Entry, res.Err))
		}
	}
	return errors.Join(errs...)
}
