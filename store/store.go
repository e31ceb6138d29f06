// Package store writes finished image files to their destination.
package store

import (
	"context"
	"errors"
)

// Sink stores one object under a slash-separated key.
// Implementations must be safe for concurrent use.
type Sink interface {
	Put(ctx context.Context, key string, data []byte) error
}

// ErrEmptyKey is returned by sinks for an empty or root-escaping key.
var ErrEmptyKey = errors.New("store: invalid key")

// SinkFunc adapts a function to the Sink interface.
type SinkFunc func(ctx context.Context, key string, data []byte) error

// Put calls f(ctx, key, data).
func (f SinkFunc) Put(ctx context.Context, key string, data []byte) error {
	return f(ctx, key, data)
}
