package remote

import "fmt"

// Remote is the state of a value fetched from an external source. The zero
// value is NotAsked.
type Remote[T, E any] struct {
	state State
	value T // set only when state is StateLoaded
	err   E // set only when state is StateFailed
}

func NotAsked[T, E any]() Remote[T, E] {
	return Remote[T, E]{state: StateNotAsked}
}

func Loading[T, E any]() Remote[T, E] {
	return Remote[T, E]{state: StateLoading}
}

// Loaded takes the error type first so that Loaded[string](5) infers T.
func Loaded[E, T any](v T) Remote[T, E] {
	return Remote[T, E]{state: StateLoaded, value: v}
}

// Failed takes the value type first so that Failed[int]("timeout") infers E.
func Failed[T, E any](err E) Remote[T, E] {
	return Remote[T, E]{state: StateFailed, err: err}
}

func (r Remote[T, E]) State() State {
	return r.state
}

func (r Remote[T, E]) IsNotAsked() bool {
	return r.state == StateNotAsked
}

func (r Remote[T, E]) IsLoading() bool {
	return r.state == StateLoading
}

func (r Remote[T, E]) IsLoaded() bool {
	return r.state == StateLoaded
}

func (r Remote[T, E]) IsFailed() bool {
	return r.state == StateFailed
}

// UnwrapOr returns the loaded value, or fallback for every other state.
func (r Remote[T, E]) UnwrapOr(fallback T) T {
	if r.state == StateLoaded {
		return r.value
	}
	return fallback
}

func (r Remote[T, E]) String() string {
	switch r.state {
	case StateLoaded:
		return fmt.Sprintf("Loaded(%v)", r.value)
	case StateFailed:
		return fmt.Sprintf("Failed(%v)", r.err)
	default:
		return r.state.String()
	}
}

// Map applies fn to a loaded value. Other states pass through untouched and
// fn is not called.
func Map[T, U, E any](r Remote[T, E], fn func(T) U) Remote[U, E] {
	if r.state == StateLoaded {
		return Loaded[E](fn(r.value))
	}
	return Remote[U, E]{state: r.state, err: r.err}
}

// MapErr applies fn to a failure. Other states pass through untouched and
// fn is not called.
func MapErr[T, E, F any](r Remote[T, E], fn func(E) F) Remote[T, F] {
	if r.state == StateFailed {
		return Failed[T](fn(r.err))
	}
	return Remote[T, F]{state: r.state, value: r.value}
}

// AndThen returns fn(v) for Loaded(v), whatever state fn decides on.
func AndThen[T, U, E any](r Remote[T, E], fn func(T) Remote[U, E]) Remote[U, E] {
	if r.state == StateLoaded {
		return fn(r.value)
	}
	return Remote[U, E]{state: r.state, err: r.err}
}

// Map2 combines two remotes sharing an error type. The result is Loaded only
// when both are; otherwise a failure wins (a before b), then Loading, then
// NotAsked.
func Map2[A, B, C, E any](a Remote[A, E], b Remote[B, E], fn func(A, B) C) Remote[C, E] {
	switch {
	case a.state == StateLoaded && b.state == StateLoaded:
		return Loaded[E](fn(a.value, b.value))
	case a.state == StateFailed:
		return Failed[C](a.err)
	case b.state == StateFailed:
		return Failed[C](b.err)
	case a.state == StateLoading || b.state == StateLoading:
		return Loading[C, E]()
	default:
		return NotAsked[C, E]()
	}
}
