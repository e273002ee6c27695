package types

// RequestType identifies a command submitted to the car from outside.
type RequestType int

const (
	StopAt RequestType = iota
	CallUp
	CallDown
	HaltAt
	UnHalt
)

func (r RequestType) String() string {
	switch r {
	case StopAt:
		return "StopAt"
	case CallUp:
		return "CallUp"
	case CallDown:
		return "CallDown"
	case HaltAt:
		return "HaltAt"
	case UnHalt:
		return "UnHalt"
	}
	return "Unknown"
}

// StateID identifies one of the four car states. The set is closed:
// there is exactly one active state at any time.
type StateID int

const (
	Halted StateID = iota
	Waiting
	Rising
	Sinking
)

func (s StateID) String() string {
	switch s {
	case Halted:
		return "Halted"
	case Waiting:
		return "Waiting"
	case Rising:
		return "Rising"
	case Sinking:
		return "Sinking"
	}
	return "Undefined"
}

// Moving reports whether the state is one of the two travel states.
func (s StateID) Moving() bool {
	return s == Rising || s == Sinking
}

// DecisionPolicy selects how the waiting state picks a travel direction.
type DecisionPolicy int

const (
	// EarlyDecision rises if any request is pending above, otherwise
	// sinks if any is pending below, without comparing counts.
	EarlyDecision DecisionPolicy = iota
	// CountBased rises only if more requests are pending above than
	// below, otherwise sinks if anything is pending below.
	CountBased
)

func (p DecisionPolicy) String() string {
	switch p {
	case EarlyDecision:
		return "early"
	case CountBased:
		return "count"
	}
	return "unknown"
}

// Request pairs a request type with its floor. HaltAt and UnHalt
// ignore the floor.
type Request struct {
	Type  RequestType
	Floor int
}
