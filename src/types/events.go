package types

// EventKind tags an observation emitted by the car core. The core
// never formats output itself; an external observer renders events.
type EventKind int

const (
	TransitionEvent EventKind = iota
	RequestAdmitted
	RequestRejected
	FloorServiced
	BoundaryViolation
)

func (k EventKind) String() string {
	switch k {
	case TransitionEvent:
		return "transition"
	case RequestAdmitted:
		return "admitted"
	case RequestRejected:
		return "rejected"
	case FloorServiced:
		return "serviced"
	case BoundaryViolation:
		return "boundary"
	}
	return "unknown"
}

// Event is a structured observation of something the car did.
// From/To are meaningful for TransitionEvent, Request for the
// admission events, Floor for everything floor-bearing.
type Event struct {
	Kind    EventKind
	Car     string
	From    StateID
	To      StateID
	Request RequestType
	Floor   int
}
