// Package board tracks the pending stop and call requests of one car.
// It is a pure data structure: no timing, no state machine knowledge.
package board

// Board holds one flag per floor and request kind. Flags are set by
// request submission and cleared by the car when it services the
// floor. A call up can never be pending on the top floor, nor a call
// down on the bottom floor.
type Board struct {
	Min       int
	Max       int
	Stops     []bool
	CallsUp   []bool
	CallsDown []bool
}

// New returns an empty board spanning floors min..max inclusive.
func New(min, max int) *Board {
	n := max - min + 1
	return &Board{
		Min:       min,
		Max:       max,
		Stops:     make([]bool, n),
		CallsUp:   make([]bool, n),
		CallsDown: make([]bool, n),
	}
}

func (b *Board) idx(floor int) int { return floor - b.Min }

// InRange reports whether floor is on the board.
func (b *Board) InRange(floor int) bool {
	return floor >= b.Min && floor <= b.Max
}

// AddStop marks a cab stop at floor. Reports whether the flag was
// newly set; a duplicate is a no-op.
func (b *Board) AddStop(floor int) bool {
	if !b.InRange(floor) || b.Stops[b.idx(floor)] {
		return false
	}
	b.Stops[b.idx(floor)] = true
	return true
}

// AddCallUp marks an upward hall call at floor. The top floor has no
// up call; such submissions are refused.
func (b *Board) AddCallUp(floor int) bool {
	if !b.InRange(floor) || floor == b.Max || b.CallsUp[b.idx(floor)] {
		return false
	}
	b.CallsUp[b.idx(floor)] = true
	return true
}

// AddCallDown marks a downward hall call at floor. The bottom floor
// has no down call; such submissions are refused.
func (b *Board) AddCallDown(floor int) bool {
	if !b.InRange(floor) || floor == b.Min || b.CallsDown[b.idx(floor)] {
		return false
	}
	b.CallsDown[b.idx(floor)] = true
	return true
}

// ClearStop clears the stop flag at floor and reports whether it was set.
func (b *Board) ClearStop(floor int) bool {
	set := b.Stops[b.idx(floor)]
	b.Stops[b.idx(floor)] = false
	return set
}

// ClearCallUp clears the up-call flag at floor and reports whether it was set.
func (b *Board) ClearCallUp(floor int) bool {
	set := b.CallsUp[b.idx(floor)]
	b.CallsUp[b.idx(floor)] = false
	return set
}

// ClearCallDown clears the down-call flag at floor and reports whether it was set.
func (b *Board) ClearCallDown(floor int) bool {
	set := b.CallsDown[b.idx(floor)]
	b.CallsDown[b.idx(floor)] = false
	return set
}

// NextStopAbove returns the next floor above current the car should
// stop at while rising: the first floor with a stop or up call.
// With no upward work left it returns the highest floor holding a
// down call, since the car must still reach the topmost down caller
// before it can serve them on the way back. Returns current when
// nothing above is pending.
func (b *Board) NextStopAbove(current int) int {
	for f := current + 1; f <= b.Max; f++ {
		if b.Stops[b.idx(f)] || b.CallsUp[b.idx(f)] {
			return f
		}
	}
	for f := b.Max; f > current; f-- {
		if b.CallsDown[b.idx(f)] {
			return f
		}
	}
	return current
}

// NextStopBelow is the mirror of NextStopAbove for a sinking car:
// first stop or down call below current, else the lowest floor with
// an up call, else current.
func (b *Board) NextStopBelow(current int) int {
	for f := current - 1; f >= b.Min; f-- {
		if b.Stops[b.idx(f)] || b.CallsDown[b.idx(f)] {
			return f
		}
	}
	for f := b.Min; f < current; f++ {
		if b.CallsUp[b.idx(f)] {
			return f
		}
	}
	return current
}

// CountAbove returns the number of pending flags strictly above current.
func (b *Board) CountAbove(current int) int {
	return b.count(current+1, b.Max)
}

// CountBelow returns the number of pending flags strictly below current.
func (b *Board) CountBelow(current int) int {
	return b.count(b.Min, current-1)
}

func (b *Board) count(from, to int) (result int) {
	for f := from; f <= to; f++ {
		if b.Stops[b.idx(f)] {
			result++
		}
		if b.CallsUp[b.idx(f)] {
			result++
		}
		if b.CallsDown[b.idx(f)] {
			result++
		}
	}
	return result
}
