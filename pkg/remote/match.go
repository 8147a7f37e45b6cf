package remote

import (
	"errors"
	"fmt"
	"strings"
)

var ErrIncompleteMatch = errors.New("remote: incomplete match")

// Match holds one handler per state. All four are required.
type Match[T, E, U any] struct {
	NotAsked func() U
	Loading  func() U
	Loaded   func(T) U
	Failed   func(E) U
}

// Validate reports the handlers that are missing, wrapped in ErrIncompleteMatch.
func (m Match[T, E, U]) Validate() error {
	var missing []string
	if m.NotAsked == nil {
		missing = append(missing, "NotAsked")
	}
	if m.Loading == nil {
		missing = append(missing, "Loading")
	}
	if m.Loaded == nil {
		missing = append(missing, "Loaded")
	}
	if m.Failed == nil {
		missing = append(missing, "Failed")
	}
	if len(missing) > 0 {
		return fmt.Errorf("%w: missing %s", ErrIncompleteMatch, strings.Join(missing, ", "))
	}
	return nil
}

// Apply calls the handler for r's state and returns its result. It panics if
// any handler is nil, whichever state r is in.
func (m Match[T, E, U]) Apply(r Remote[T, E]) U {
	if err := m.Validate(); err != nil {
		panic(err)
	}

	switch r.state {
	case StateLoading:
		return m.Loading()
	case StateLoaded:
		return m.Loaded(r.value)
	case StateFailed:
		return m.Failed(r.err)
	default:
		return m.NotAsked()
	}
}

// Fold is Match in positional form; the compiler enforces every handler.
func Fold[T, E, U any](r Remote[T, E],
	onNotAsked func() U,
	onLoading func() U,
	onLoaded func(T) U,
	onFailed func(E) U) U {

	return Match[T, E, U]{
		NotAsked: onNotAsked,
		Loading:  onLoading,
		Loaded:   onLoaded,
		Failed:   onFailed,
	}.Apply(r)
}
