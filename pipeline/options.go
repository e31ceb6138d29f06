package pipeline

import (
	"fmt"
	"log/slog"
	"strings"
)

// Policy decides what a run does after a failed conversion.
type Policy uint8

const (
	// SkipAndContinue records the failure in the report and keeps going.
	// This is the default.
	SkipAndContinue Policy = iota

	// AbortOnError stops scheduling new entries after the first failure.
	// Entries that had not started are reported with ErrAborted.
	AbortOnError
)

// String returns the flag spelling of the policy.
func (p Policy) String() string {
	switch p {
	case SkipAndContinue:
		return "skip"
	case AbortOnError:
		return "abort"
	default:
		return "unknown"
	}
}

// ParsePolicy parses "skip" or "abort".
func ParsePolicy(s string) (Policy, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "skip", "continue", "":
		return SkipAndContinue, nil
	case "abort", "fail-fast":
		return AbortOnError, nil
	default:
		return 0, fmt.Errorf("pipeline: unknown policy %q", s)
	}
}

// Option configures a Pipeline during creation.
//
// Example:
//
//	p := pipeline.New(cat, conv,
//	    pipeline.WithRoot("public/moodboard"),
//	    pipeline.WithWorkers(8),
//	    pipeline.WithPolicy(pipeline.AbortOnError))
type Option func(*options)

type options struct {
	root    string
	ext     string
	workers int
	policy  Policy
	retries int
	logger  *slog.Logger
}

// Default output settings.
const (
	DefaultRoot      = "public/moodboard"
	DefaultExtension = "jpg"
)

func defaultOptions() options {
	return options{
		root:    DefaultRoot,
		ext:     DefaultExtension,
		workers: 1,
		policy:  SkipAndContinue,
	}
}

// WithRoot sets the output root directory or key prefix.
func WithRoot(root string) Option {
	return func(o *options) {
		o.root = root
	}
}

// WithExtension sets the file extension of converted images, without dot.
func WithExtension(ext string) Option {
	return func(o *options) {
		o.ext = strings.TrimPrefix(ext, ".")
	}
}

// WithWorkers sets the number of entries processed concurrently.
// 1 (the default) runs sequentially; 0 or negative uses GOMAXPROCS.
func WithWorkers(n int) Option {
	return func(o *options) {
		o.workers = n
	}
}

// WithPolicy sets the conversion failure policy.
func WithPolicy(p Policy) Option {
	return func(o *options) {
		o.policy = p
	}
}

// WithRetries sets how many times a failed conversion is retried.
// Generation is never retried; it cannot fail for a loaded catalog.
func WithRetries(n int) Option {
	return func(o *options) {
		o.retries = max(n, 0)
	}
}

// WithLogger overrides moodgen.Logger for this pipeline.
func WithLogger(l *slog.Logger) Option {
	return func(o *options) {
		o.logger = l
	}
}
