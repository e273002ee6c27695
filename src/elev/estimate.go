package elev

import (
	"fmt"
	"time"

	"github.com/tiendc/go-deepcopy"

	"liftsim/src/board"
	"liftsim/src/types"
)

// EstimateArrival estimates how long the car would take to service
// the given request, by playing it out on a deep copy of the request
// board. The estimate counts whole-floor hops plus the standstill
// overhead of every pending stop on the way; it never touches the
// live board.
func (m *Machine) EstimateArrival(req types.RequestType, floor int) (time.Duration, error) {
	if !m.car.board.InRange(floor) {
		return 0, fmt.Errorf("floor %d outside %d..%d", floor, m.car.minFloor, m.car.maxFloor)
	}

	sim := new(board.Board)
	if err := deepcopy.Copy(sim, m.car.board); err != nil {
		panic(err)
	}
	switch req {
	case types.StopAt:
		sim.AddStop(floor)
	case types.CallUp:
		sim.AddCallUp(floor)
	case types.CallDown:
		sim.AddCallDown(floor)
	default:
		return 0, fmt.Errorf("request %v carries no floor", req)
	}

	t := m.car.timing
	distance := abs(floor - m.car.floor)
	est := time.Duration(distance) * t.FloorTransit

	// Every pending request between here and the target forces a stop.
	var onTheWay int
	if floor > m.car.floor {
		onTheWay = sim.CountAbove(m.car.floor) - sim.CountAbove(floor)
	} else if floor < m.car.floor {
		onTheWay = sim.CountBelow(m.car.floor) - sim.CountBelow(floor)
	}
	if onTheWay > 0 {
		// The target itself is among the counted flags; it costs one
		// standstill overhead, intermediate stops add doors time too.
		est += time.Duration(onTheWay)*(t.FirstFloorTransit-t.FloorTransit) +
			time.Duration(onTheWay-1)*t.MinDoorsOpen
	}

	// A car travelling away from the target finishes its run first.
	if (m.current == types.Rising && floor < m.car.floor) ||
		(m.current == types.Sinking && floor > m.car.floor) {
		est += 2 * t.FirstFloorTransit
	}
	return est, nil
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
