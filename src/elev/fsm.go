package elev

import (
	"fmt"
	"log/slog"
	"sync/atomic"
	"time"

	"liftsim/src/board"
	"liftsim/src/config"
	"liftsim/src/types"
)

// stateHandlers binds per-state behavior to a StateID. States are
// values, not objects: the closed set lives in this table. onEntry
// and onExit are the only places allowed to seed etaNextFloor or do
// one-time bookkeeping.
type stateHandlers struct {
	onEntry  func(m *Machine)
	onExit   func(m *Machine)
	onUpdate func(m *Machine)
}

// Filled in init: the update methods reach setState, which reads the
// table, so a map literal here would be an initialization cycle.
var handlers map[types.StateID]stateHandlers

func init() {
	handlers = map[types.StateID]stateHandlers{
		types.Waiting: {
			onEntry:  func(m *Machine) { m.car.waitAt() },
			onUpdate: (*Machine).waitingUpdate,
		},
		types.Rising: {
			onEntry:  (*Machine).seedTransit,
			onUpdate: (*Machine).risingUpdate,
		},
		types.Sinking: {
			onEntry:  (*Machine).seedTransit,
			onUpdate: (*Machine).sinkingUpdate,
		},
		types.Halted: {
			onUpdate: func(m *Machine) {},
		},
	}
}

// Machine is the car's state machine and the public surface of the
// simulation. Exactly one of the four states is active; savedState is
// meaningful only while halted. All mutation happens inside Submit
// and Update, which must not run concurrently with each other.
type Machine struct {
	car             car
	current         types.StateID
	savedState      types.StateID
	haveSaved       bool
	policy          types.DecisionPolicy
	lastStateChange time.Time

	now      func() time.Time
	updating atomic.Bool
	events   chan types.Event
}

// New builds a car named name spanning floors minFloor..maxFloor,
// updated every tickPeriod. The machine starts halted; call Start to
// begin normal operation. Timing constants scale down when tickPeriod
// is shorter than the calibration period.
func New(name string, minFloor, maxFloor int, tickPeriod time.Duration) (*Machine, error) {
	if tickPeriod <= 0 {
		return nil, fmt.Errorf("tick period must be positive, got %v", tickPeriod)
	}
	if maxFloor <= minFloor {
		return nil, fmt.Errorf("need at least two floors, got %d..%d", minFloor, maxFloor)
	}
	m := &Machine{
		car: car{
			name:     name,
			minFloor: minFloor,
			maxFloor: maxFloor,
			floor:    minFloor,
			board:    board.New(minFloor, maxFloor),
			timing:   config.Default().Scaled(tickPeriod),
		},
		current: types.Halted,
		policy:  types.EarlyDecision,
		now:     time.Now,
		events:  make(chan types.Event, 64),
	}
	m.lastStateChange = m.now()
	slog.Debug("Car created",
		"car", name,
		"floors", maxFloor-minFloor+1,
		"tickPeriod", tickPeriod)
	return m, nil
}

// SetTiming replaces the movement time constants, rescaled for the
// configured tick period. Call before Start.
func (m *Machine) SetTiming(t config.Timing) {
	m.car.timing = t.Scaled(m.car.timing.TickPeriod)
}

// SetPolicy selects the waiting-state direction policy. Call before Start.
func (m *Machine) SetPolicy(p types.DecisionPolicy) {
	m.policy = p
}

// Start moves the freshly built machine from its initial halted state
// into normal waiting operation.
func (m *Machine) Start() {
	if m.current != types.Halted || m.haveSaved {
		slog.Error("Start on a running machine ignored", "car", m.car.name, "state", m.current)
		return
	}
	m.setState(types.Waiting)
}

// Update advances the machine by exactly one step. The external
// driver must call it at the configured period; overlapping calls are
// refused, since every step has to finish before the next begins.
func (m *Machine) Update() {
	if !m.updating.CompareAndSwap(false, true) {
		slog.Error("Overlapping update tick dropped", "car", m.car.name)
		return
	}
	defer m.updating.Store(false)
	handlers[m.current].onUpdate(m)
}

// CurrentFloor returns the floor the car last arrived at.
func (m *Machine) CurrentFloor() int { return m.car.floor }

// CurrentState returns the active state.
func (m *Machine) CurrentState() types.StateID { return m.current }

// PendingAbove returns the number of pending requests above the car.
func (m *Machine) PendingAbove() int { return m.car.board.CountAbove(m.car.floor) }

// PendingBelow returns the number of pending requests below the car.
func (m *Machine) PendingBelow() int { return m.car.board.CountBelow(m.car.floor) }

// Events exposes the car's structured observations. The channel is
// buffered; events overflow silently when nobody listens.
func (m *Machine) Events() <-chan types.Event { return m.events }

// Submit delivers an external request and reports whether it was
// newly accepted. Duplicates, out-of-range floors and meaningless
// requests (a floor call for the floor an idle car already occupies)
// are refused without error. Only while waiting can an accepted
// request itself move the machine into a travel state.
func (m *Machine) Submit(req types.RequestType, floor int) bool {
	switch req {
	case types.HaltAt:
		return m.halt()
	case types.UnHalt:
		return m.resume()
	}

	if !m.car.board.InRange(floor) {
		slog.Debug("Request out of range refused", "car", m.car.name, "request", req, "floor", floor)
		m.reject(req, floor)
		return false
	}
	if floor == m.car.floor && !m.current.Moving() {
		slog.Debug("Request for occupied floor refused", "car", m.car.name, "request", req, "floor", floor)
		m.reject(req, floor)
		return false
	}

	var added bool
	switch req {
	case types.StopAt:
		added = m.car.board.AddStop(floor)
	case types.CallUp:
		added = m.car.board.AddCallUp(floor)
	case types.CallDown:
		added = m.car.board.AddCallDown(floor)
	default:
		slog.Error("Unknown request type", "car", m.car.name, "request", req)
		return false
	}
	if !added {
		m.reject(req, floor)
		return false
	}

	slog.Debug("Request admitted", "car", m.car.name, "request", req, "floor", floor, "state", m.current)
	m.emit(types.Event{Kind: types.RequestAdmitted, Car: m.car.name, Request: req, Floor: floor})

	if m.current == types.Waiting {
		if floor > m.car.floor {
			m.setState(types.Rising)
		} else {
			m.setState(types.Sinking)
		}
	}
	return true
}

// halt enters the halted state from any running state, remembering
// where to resume. Halting twice is a tolerated no-op.
func (m *Machine) halt() bool {
	if m.current == types.Halted {
		slog.Debug("Halt while already halted ignored", "car", m.car.name)
		return false
	}
	if !m.car.haltNow() {
		return false
	}
	m.savedState = m.current
	m.haveSaved = true
	m.setState(types.Halted)
	return true
}

// resume restores the state saved by halt. Resuming a machine that is
// not halted is a sequencing error.
func (m *Machine) resume() bool {
	if m.current != types.Halted || !m.haveSaved {
		slog.Error("Resume refused: not halted", "car", m.car.name, "state", m.current)
		return false
	}
	if !m.car.unHalt() {
		return false
	}
	restored := m.savedState
	m.haveSaved = false
	m.setState(restored)
	return true
}

// setState runs the transition protocol: exit the old state, swap,
// stamp the change, enter the new one. A transition to the already
// active state is a programming error and refused.
func (m *Machine) setState(next types.StateID) {
	if next == m.current {
		slog.Error("Self transition refused", "car", m.car.name, "state", next)
		return
	}
	if h := handlers[m.current]; h.onExit != nil {
		h.onExit(m)
	}
	prev := m.current
	m.current = next
	m.lastStateChange = m.now()
	slog.Debug("State change", "car", m.car.name, "from", prev, "to", next, "floor", m.car.floor)
	m.emit(types.Event{Kind: types.TransitionEvent, Car: m.car.name, From: prev, To: next, Floor: m.car.floor})
	if h := handlers[next]; h.onEntry != nil {
		h.onEntry(m)
	}
}

// seedTransit schedules the first floor hop of a travel state. The
// first hop carries the standstill overhead.
func (m *Machine) seedTransit() {
	m.car.etaNextFloor = m.lastStateChange.Add(m.car.timing.FirstFloorTransit)
}

// waitingUpdate applies the direction policy to decide whether to
// leave the waiting state.
func (m *Machine) waitingUpdate() {
	above := m.PendingAbove()
	below := m.PendingBelow()
	switch m.policy {
	case types.CountBased:
		if above > below {
			m.setState(types.Rising)
		} else if below > 0 {
			m.setState(types.Sinking)
		}
	default: // EarlyDecision
		if above > 0 {
			m.setState(types.Rising)
		} else if below > 0 {
			m.setState(types.Sinking)
		}
	}
}

func (m *Machine) risingUpdate() {
	if !m.now().Before(m.car.etaNextFloor) {
		m.moveUp()
	}
}

func (m *Machine) sinkingUpdate() {
	if !m.now().Before(m.car.etaNextFloor) {
		m.moveDown()
	}
}

func (m *Machine) reject(req types.RequestType, floor int) {
	m.emit(types.Event{Kind: types.RequestRejected, Car: m.car.name, Request: req, Floor: floor})
}

// emit delivers an event without ever blocking an update step.
func (m *Machine) emit(ev types.Event) {
	select {
	case m.events <- ev:
	default:
	}
}
