// Package chain provides a fluent Chain[T, E] for synchronous composition of
// remote.Remote[T, E] values that keep the same value type.
//
// Key operations:
// - Start/FromValue: begin a chain from a Remote or a loaded value
// - Then: continue with a step that returns its own Remote
// - Map/MapErr: transform the value or the error
// - Ensure: run side effects without changing the result
// - While: repeat a step while the value satisfies a condition
// - Or: fall back to alternative chains
// - Finally: collapse the chain through a remote.Match
//
// For steps that change the value type use remote.Map and remote.AndThen.
package chain
