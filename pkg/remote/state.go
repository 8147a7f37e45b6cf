package remote

import "strconv"

// State identifies which variant a Remote holds.
type State uint8

const (
	StateNotAsked State = iota // no request has been made
	StateLoading               // request in flight
	StateLoaded                // value obtained
	StateFailed                // request failed
)

func (s State) String() string {
	switch s {
	case StateNotAsked:
		return "NotAsked"
	case StateLoading:
		return "Loading"
	case StateLoaded:
		return "Loaded"
	case StateFailed:
		return "Failed"
	default:
		return "State(" + strconv.Itoa(int(s)) + ")"
	}
}
