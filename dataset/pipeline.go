package dataset

import (
	"context"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/Phenomenology-group-uniandes/hep-pheno-tools/kinrow"
)

// DefaultWorkers is the worker count Accumulate uses when the caller passes 0.
const DefaultWorkers = 4

// Option tweaks Accumulate. Use the With* constructors.
type Option func(*options)

type options struct {
	logger *zap.Logger
}

// WithLogger attaches a structured logger; Accumulate reports batch progress
// on it at debug level. Without this option the pipeline is silent.
func WithLogger(l *zap.Logger) Option {
	return func(o *options) {
		if l != nil {
			o.logger = l
		}
	}
}

// Accumulate produces one feature row per item via fn, fanned out over a
// bounded worker pool, and merges everything into a single table whose row
// order matches the input order. workers ≤ 0 selects DefaultWorkers. Items
// are split into contiguous batches, one per worker; each worker accumulates
// into a private table, and the batches are concatenated in input order, so
// the result is identical to a sequential run.
//
// fn returning an error cancels the remaining work and Accumulate returns
// that error. A nil row from fn skips the item (no table row is emitted).
//
// Errors:
//   - ErrBadWorkerCount — workers is negative (0 means default).
//   - ctx.Err()         — the context was cancelled mid-run.
//   - the first error returned by fn.
func Accumulate[T any](ctx context.Context, items []T, workers int, fn func(T) (*kinrow.Row, error), opts ...Option) (*Table, error) {
	if workers < 0 {
		return nil, ErrBadWorkerCount
	}
	if workers == 0 {
		workers = DefaultWorkers
	}

	cfg := options{logger: zap.NewNop()}
	for _, opt := range opts {
		opt(&cfg)
	}

	if len(items) == 0 {
		return NewTable(), nil
	}
	if workers > len(items) {
		workers = len(items)
	}

	// contiguous batches keep the merged row order equal to the input order
	batches := make([]*Table, workers)
	per := (len(items) + workers - 1) / workers

	g, ctx := errgroup.WithContext(ctx)
	for w := 0; w < workers; w++ {
		w := w
		lo := w * per
		hi := lo + per
		if hi > len(items) {
			hi = len(items)
		}
		if lo >= hi {
			batches[w] = NewTable()
			continue
		}

		g.Go(func() error {
			part := NewTable()
			for _, item := range items[lo:hi] {
				if err := ctx.Err(); err != nil {
					return err
				}
				row, err := fn(item)
				if err != nil {
					return err
				}
				if row == nil {
					continue
				}
				if err := part.Append(row); err != nil {
					return err
				}
			}
			batches[w] = part
			cfg.logger.Debug("batch accumulated",
				zap.Int("worker", w),
				zap.Int("items", hi-lo),
				zap.Int("rows", part.Rows()))

			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}

	merged := Concat(batches...)
	cfg.logger.Debug("accumulation done",
		zap.Int("workers", workers),
		zap.Int("rows", merged.Rows()),
		zap.Int("columns", len(merged.Labels())))

	return merged, nil
}
