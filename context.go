package dice

import (
	"context"

	"go.uber.org/atomic"
)

// MaxRequestRolls is the default ceiling on the number of individual dice an
// evaluation context will draw across every roll it performs, guarding
// against pathological nested expressions even though each individual
// modifier loop is already bounded to 100 dice.
var MaxRequestRolls uint64 = 100000

// contextKey is a value for use with context.WithValue.
type contextKey string

const (
	contextKeyTotalRolls = contextKey("dice: total rolls")
	contextKeyMaxRolls   = contextKey("dice: max rolls")
)

func (k contextKey) String() string {
	return "github.com/rollforge/dicechat/dice context value " + string(k)
}

// NewEvalContext returns a context carrying a fresh roll counter, suitable
// for a single top-level chat render or CLI evaluation.
func NewEvalContext(ctx context.Context) context.Context {
	return context.WithValue(ctx, contextKeyTotalRolls, atomic.NewUint64(0))
}

// WithMaxRolls overrides the total-roll ceiling for the returned context.
func WithMaxRolls(ctx context.Context, max uint64) context.Context {
	return context.WithValue(ctx, contextKeyMaxRolls, max)
}

// totalRolls returns the counter embedded in ctx, creating a throwaway one
// if the context was not set up via NewEvalContext.
func totalRolls(ctx context.Context) *atomic.Uint64 {
	if c, ok := ctx.Value(contextKeyTotalRolls).(*atomic.Uint64); ok {
		return c
	}
	return atomic.NewUint64(0)
}

func maxRolls(ctx context.Context) uint64 {
	if m, ok := ctx.Value(contextKeyMaxRolls).(uint64); ok {
		return m
	}
	return MaxRequestRolls
}

// ContextTotalRollCount reports how many individual dice have been rolled
// against ctx so far.
func ContextTotalRollCount(ctx context.Context) uint64 {
	return totalRolls(ctx).Load()
}

// addRolls bumps ctx's roll counter by n and reports whether the context's
// budget has been exceeded.
func addRolls(ctx context.Context, n int) bool {
	if n <= 0 {
		return totalRolls(ctx).Load() > maxRolls(ctx)
	}
	return totalRolls(ctx).Add(uint64(n)) > maxRolls(ctx)
}
