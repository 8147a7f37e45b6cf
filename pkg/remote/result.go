package remote

import (
	"context"
	"errors"
)

// FromResult turns a Go (value, error) pair into a Remote. A cancelled or
// timed-out request produced nothing, so it maps back to NotAsked.
func FromResult[T any](v T, err error) Remote[T, error] {
	if err == nil {
		return Loaded[error](v)
	}
	if IsCancellationError(err) {
		return NotAsked[T, error]()
	}
	return Failed[T](err)
}

func IsCancellationError(err error) bool {
	return errors.Is(err, context.DeadlineExceeded) || errors.Is(err, context.Canceled)
}
