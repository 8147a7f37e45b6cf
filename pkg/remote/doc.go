// Package remote contains Remote[T, E], a four-state value describing data
// that comes from somewhere else: not yet requested, in flight, loaded or
// failed. Remote values are immutable and every operation returns a new one.
//
// Highlights:
// - NotAsked/Loading/Loaded/Failed: construct Remote[T, E]
// - IsNotAsked/IsLoading/IsLoaded/IsFailed: state predicates
// - Map/MapErr: transform the value or the error
// - AndThen: sequence a dependent step that returns its own Remote
// - Match/Fold: exhaustive case analysis, one handler per state
// - UnwrapOr: take the value or a fallback
// - Map2/FromResult: combine two remotes, bridge (T, error) results
package remote
