package cache

import (
	"context"
	"time"
)

// Noop is used when no cache server is configured: every Get misses and
// Set discards the value.
type Noop struct{}

func (Noop) Get(context.Context, string) (string, bool, error) { return "", false, nil }

func (Noop) Set(context.Context, string, string, time.Duration) error { return nil }
