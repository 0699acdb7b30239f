package service

import (
	"context"
	"log/slog"
	"time"

	"github.com/Scott-Fukuda/CUCaresTesting/internal/metrics"
	"github.com/Scott-Fukuda/CUCaresTesting/internal/models"
)

// mutate runs one read-modify-replace cycle. apply edits snap in place and
// reports whether anything changed; the snapshot is written back only then.
// Every call is logged with its duration and counted by outcome.
func (c *Community) mutate(ctx context.Context, op string, attrs []any, apply func(snap *models.Snapshot) (bool, error)) error {
	start := time.Now()
	slog.Info(op+" request received", attrs...)

	changed, err := c.apply(ctx, apply)

	attrs = append(attrs, "duration_ms", time.Since(start).Milliseconds())
	switch {
	case err != nil:
		c.metrics.ObserveMutation(op, metrics.OutcomeRejected)
		slog.Warn(op+" failed", append(attrs, "error", err)...)
	case !changed:
		c.metrics.ObserveMutation(op, metrics.OutcomeNoop)
		slog.Debug(op+" had no effect", attrs...)
	default:
		c.metrics.ObserveMutation(op, metrics.OutcomeApplied)
		slog.Info(op+" successful", attrs...)
	}
	return err
}

func (c *Community) apply(ctx context.Context, apply func(snap *models.Snapshot) (bool, error)) (bool, error) {
	c.writeMu.Lock()
	defer c.writeMu.Unlock()

	snap, err := c.store.Snapshot(ctx)
	if err != nil {
		return false, err
	}
	changed, err := apply(snap)
	if err != nil || !changed {
		return false, err
	}
	if err := c.store.Replace(ctx, snap); err != nil {
		return false, err
	}
	return true, nil
}

// view computes a derived value from the current snapshot and records how
// long it took. Nothing is cached.
func view[T any](ctx context.Context, c *Community, name string, compute func(snap *models.Snapshot) (T, error)) (T, error) {
	var zero T
	start := time.Now()

	snap, err := c.store.Snapshot(ctx)
	if err != nil {
		slog.Error(name+" failed", "error", err)
		return zero, err
	}
	out, err := compute(snap)
	c.metrics.ObserveAggregation(name, time.Since(start))
	if err != nil {
		slog.Debug(name+" failed", "error", err)
		return zero, err
	}
	return out, nil
}
