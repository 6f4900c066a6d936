package workq

import (
	"context"

	"github.com/pkg/errors"
	"go.uber.org/zap"
)

type walkOptions struct {
	logger *zap.Logger
}

// WalkOption configures Walk.
type WalkOption func(*walkOptions)

// WithLogger sets the logger Walk reports to. Completed walks are logged at
// debug level and failed walks at error level. A nil logger is ignored.
func WithLogger(l *zap.Logger) WalkOption {
	return func(o *walkOptions) {
		if l != nil {
			o.logger = l
		}
	}
}

// Walk drains q, calling fn for each item in FIFO order. fn may add items to
// q; they are visited by the same walk.
//
// Walk returns the first error from fn, annotated with the item's position,
// or ctx.Err() if ctx is done between items. Items not yet pulled stay in q,
// so a walk can be resumed by calling Walk again.
func Walk[T any](ctx context.Context, q *Queue[T], fn func(ctx context.Context, item T) error, opts ...WalkOption) error {
	o := walkOptions{logger: zap.NewNop()}
	for _, opt := range opts {
		opt(&o)
	}

	start := q.Worked()
	for {
		if err := ctx.Err(); err != nil {
			o.logger.Debug("walk stopped",
				zap.Error(err),
				zap.Int("worked", q.Worked()-start),
				zap.Int("pending", q.Len()))
			return err
		}
		item, ok := q.Next()
		if !ok {
			break
		}
		if err := fn(ctx, item); err != nil {
			ordinal := q.Worked()
			o.logger.Error("walk failed",
				zap.Error(err),
				zap.Int("item", ordinal),
				zap.Int("pending", q.Len()))
			return errors.WithMessagef(err, "workq: item %d", ordinal)
		}
	}

	o.logger.Debug("walk finished",
		zap.Int("worked", q.Worked()-start),
		zap.Int("count", q.Count()))
	return nil
}
