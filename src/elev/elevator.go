// Package elev implements the simulated elevator car: the movement
// model and the four-state machine driving it. One Update call per
// tick mutates all state; callers must serialize ticks.
package elev

import (
	"log/slog"
	"time"

	"liftsim/src/board"
	"liftsim/src/config"
	"liftsim/src/types"
)

// car owns the physical side of the simulation: the request board,
// the current floor and the tick-clock deadline for the next floor
// transition. Floor and board mutation happens only in moveUp and
// moveDown.
type car struct {
	name         string
	minFloor     int
	maxFloor     int
	floor        int
	board        *board.Board
	timing       config.Timing
	etaNextFloor time.Time
}

// moveUp advances the car one floor towards the next stop above. The
// target is recomputed before stepping so requests that arrived since
// the previous hop can shorten the path.
func (m *Machine) moveUp() {
	c := &m.car
	if c.floor >= c.maxFloor {
		slog.Error("Cannot rise above top floor", "car", c.name, "floor", c.floor)
		m.emit(types.Event{Kind: types.BoundaryViolation, Car: c.name, Floor: c.floor})
		m.setState(types.Waiting)
		return
	}
	target := c.board.NextStopAbove(c.floor)
	if target == c.floor {
		slog.Warn("Rising with no target above", "car", c.name, "floor", c.floor)
		m.setState(types.Waiting)
		return
	}
	c.floor++
	if c.floor < target {
		c.etaNextFloor = c.etaNextFloor.Add(c.timing.FloorTransit)
		slog.Debug("Passing floor", "car", c.name, "floor", c.floor, "target", target)
		return
	}
	m.serviceFloor(types.Rising)
	if c.board.NextStopAbove(c.floor) == c.floor {
		m.setState(types.Waiting)
		return
	}
	c.etaNextFloor = c.etaNextFloor.Add(c.timing.FirstFloorTransit)
}

// moveDown mirrors moveUp for a sinking car.
func (m *Machine) moveDown() {
	c := &m.car
	if c.floor <= c.minFloor {
		slog.Error("Cannot sink below bottom floor", "car", c.name, "floor", c.floor)
		m.emit(types.Event{Kind: types.BoundaryViolation, Car: c.name, Floor: c.floor})
		m.setState(types.Waiting)
		return
	}
	target := c.board.NextStopBelow(c.floor)
	if target == c.floor {
		slog.Warn("Sinking with no target below", "car", c.name, "floor", c.floor)
		m.setState(types.Waiting)
		return
	}
	c.floor--
	if c.floor > target {
		c.etaNextFloor = c.etaNextFloor.Add(c.timing.FloorTransit)
		slog.Debug("Passing floor", "car", c.name, "floor", c.floor, "target", target)
		return
	}
	m.serviceFloor(types.Sinking)
	if c.board.NextStopBelow(c.floor) == c.floor {
		m.setState(types.Waiting)
		return
	}
	c.etaNextFloor = c.etaNextFloor.Add(c.timing.FirstFloorTransit)
}

// serviceFloor clears the request flags satisfied by stopping at the
// current floor while travelling in dir. Stops clear first (riders
// getting off), then the same-direction call (riders getting on); the
// opposite call clears only when nothing else was pending, as when
// the car fetches the topmost down caller.
func (m *Machine) serviceFloor(dir types.StateID) {
	c := &m.car
	cleared := false
	if c.board.ClearStop(c.floor) {
		cleared = true
	}
	switch dir {
	case types.Rising:
		if c.board.ClearCallUp(c.floor) {
			cleared = true
		}
		if !cleared {
			cleared = c.board.ClearCallDown(c.floor)
		}
	case types.Sinking:
		if c.board.ClearCallDown(c.floor) {
			cleared = true
		}
		if !cleared {
			cleared = c.board.ClearCallUp(c.floor)
		}
	}
	if !cleared {
		slog.Error("Serviced a floor with no pending request", "car", c.name, "floor", c.floor)
		return
	}
	slog.Debug("Serviced floor", "car", c.name, "floor", c.floor, "direction", dir)
	m.emit(types.Event{Kind: types.FloorServiced, Car: c.name, Floor: c.floor})
}

// waitAt is the mechanical hook of the waiting state. The car sits
// with doors open; nothing to do in the model.
func (c *car) waitAt() {
	slog.Debug("Waiting", "car", c.name, "floor", c.floor)
}

// haltNow acknowledges an emergency halt. The machine tracks
// halted-ness; the car only confirms it can stop.
func (c *car) haltNow() bool {
	slog.Debug("Halting", "car", c.name, "floor", c.floor)
	return true
}

// unHalt acknowledges a resume.
func (c *car) unHalt() bool {
	slog.Debug("Resuming", "car", c.name, "floor", c.floor)
	return true
}
