// Package timer drives a car with a fixed-period tick clock.
package timer

import (
	"log/slog"
	"time"

	"liftsim/src/types"
)

type Action int

const (
	Start Action = iota
	Stop
)

// Car is the slice of the state machine the driver needs.
type Car interface {
	Update()
	Submit(req types.RequestType, floor int) bool
}

// Drive invokes exactly one Update per tick period and delivers
// submitted requests between ticks. Running everything on this one
// goroutine is what keeps updates serialized: a step always finishes
// before the next tick or request is handled. Stop pauses the tick
// clock, Start resumes it; closing done returns.
func Drive(period time.Duration, car Car, requests <-chan types.Request, action <-chan Action, done <-chan struct{}) {
	ticker := time.NewTicker(period)
	defer ticker.Stop()
	running := true

	for {
		select {
		case a := <-action:
			switch a {
			case Start:
				if !running {
					ticker.Reset(period)
					running = true
					slog.Debug("Tick clock resumed")
				}
			case Stop:
				if running {
					ticker.Stop()
					running = false
					slog.Debug("Tick clock paused")
				}
			}
		case req := <-requests:
			car.Submit(req.Type, req.Floor)
		case <-ticker.C:
			if running {
				car.Update()
			}
		case <-done:
			return
		}
	}
}
