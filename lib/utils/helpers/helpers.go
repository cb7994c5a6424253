package helpers

import (
	"context"
	"math/rand/v2"
	"time"
)

// Sleep ждет d либо завершения контекста
func Sleep(ctx context.Context, d time.Duration) error {
	timer := time.NewTimer(d)
	defer timer.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}

// RandomDuration случайная длительность в диапазоне [from, to]
func RandomDuration(from, to time.Duration) time.Duration {
	if to <= from {
		return from
	}
	return from + time.Duration(rand.Int64N(int64(to-from)+1))
}
