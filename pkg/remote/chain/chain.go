package chain

import (
	"github.com/ib-77/remote/pkg/remote"
)

type Chain[T, E any] struct {
	res remote.Remote[T, E]
}

func Start[T, E any](r remote.Remote[T, E]) Chain[T, E] {
	return Chain[T, E]{res: r}
}

func FromValue[E, T any](v T) Chain[T, E] {
	return Start(remote.Loaded[E](v))
}

func (c Chain[T, E]) Result() remote.Remote[T, E] {
	return c.res
}

// Then composes functions that already return remote.Remote[T, E]
func (c Chain[T, E]) Then(onLoaded func(v T) remote.Remote[T, E]) Chain[T, E] {
	return Chain[T, E]{res: remote.AndThen(c.res, onLoaded)}
}

func (c Chain[T, E]) Map(onLoaded func(v T) T) Chain[T, E] {
	return Chain[T, E]{res: remote.Map(c.res, onLoaded)}
}

func (c Chain[T, E]) MapErr(onFailed func(err E) E) Chain[T, E] {
	return Chain[T, E]{res: remote.MapErr(c.res, onFailed)}
}

// Ensure triggers side effects for loaded/failed without changing the result
func (c Chain[T, E]) Ensure(onLoaded func(T), onFailed func(E)) Chain[T, E] {
	remote.Fold(c.res,
		func() struct{} { return struct{}{} },
		func() struct{} { return struct{}{} },
		func(v T) struct{} {
			if onLoaded != nil {
				onLoaded(v)
			}
			return struct{}{}
		},
		func(err E) struct{} {
			if onFailed != nil {
				onFailed(err)
			}
			return struct{}{}
		})
	return c
}

// While repeats onLoaded as long as the chain stays loaded and while holds.
func (c Chain[T, E]) While(onLoaded func(v T) remote.Remote[T, E], while func(v T) bool) Chain[T, E] {
	var zero T
	for c.res.IsLoaded() && while(c.res.UnwrapOr(zero)) {
		c = c.Then(onLoaded)
	}
	return c
}

// Or returns the first loaded chain. Without one, the first failure wins,
// then the first loading chain, and finally the receiver itself.
func (c Chain[T, E]) Or(alternatives ...Chain[T, E]) Chain[T, E] {
	candidates := make([]Chain[T, E], 0, len(alternatives)+1)
	candidates = append(candidates, c)
	candidates = append(candidates, alternatives...)

	var failed, loading *Chain[T, E]
	for i := range candidates {
		ch := &candidates[i]

		switch ch.res.State() {
		case remote.StateLoaded:
			return *ch
		case remote.StateFailed:
			if failed == nil {
				failed = ch
			}
		case remote.StateLoading:
			if loading == nil {
				loading = ch
			}
		}
	}

	if failed != nil {
		return *failed
	}
	if loading != nil {
		return *loading
	}

	return c
}

// Finally collapses the chain to a final value via the match handlers.
func Finally[T, E, U any](c Chain[T, E], m remote.Match[T, E, U]) U {
	return m.Apply(c.res)
}
