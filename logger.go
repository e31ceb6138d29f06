package moodgen

import (
	"io"
	"log/slog"
	"sync/atomic"
)

// silent is installed until SetLogger is called. slog.DiscardHandler
// reports every level as disabled, so log calls on the generation path cost
// a single Enabled check.
var silent = slog.New(slog.DiscardHandler)

var current atomic.Pointer[slog.Logger]

func init() {
	current.Store(silent)
}

// SetLogger installs the logger shared by moodgen, pipeline and convert.
// Nothing is logged until it is called; nil switches logging off again.
// It may be called while a pipeline is running.
//
// Levels:
//   - Debug: one record per catalog entry (entry ID, seed, scene, destination)
//     and per encoded or externally converted file
//   - Info: start and end of a run with converted, failed and skipped counts
//   - Warn: conversion failures and retries
//
// The moodgen command installs NewTextLogger(os.Stderr, level) from its
// -log-level flag.
func SetLogger(l *slog.Logger) {
	if l == nil {
		l = silent
	}
	current.Store(l)
}

// Logger returns the logger installed by SetLogger.
func Logger() *slog.Logger {
	return current.Load()
}

// NewTextLogger returns a text logger writing records at or above level to w.
func NewTextLogger(w io.Writer, level slog.Leveler) *slog.Logger {
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: level}))
}
