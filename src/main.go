package main

import (
	"flag"
	"fmt"
	"log/slog"
	"math/rand"
	"os"
	"strings"
	"time"

	"liftsim/src/config"
	"liftsim/src/elev"
	"liftsim/src/timer"
	"liftsim/src/types"
)

func main() {
	name := flag.String("name", "car-0", "Name of the simulated car")
	minFloor := flag.Int("min", 0, "Bottom floor")
	maxFloor := flag.Int("max", 9, "Top floor")
	tick := flag.Duration("tick", config.DefaultTickPeriod, "Update period")
	configPath := flag.String("config", "", "Optional YAML timing config")
	gen := flag.Bool("gen", false, "Generate random test requests")
	runFor := flag.Duration("for", 60*time.Second, "How long to run")
	flag.Parse()

	initLogger()

	timing := config.Default()
	if *configPath != "" {
		var err error
		if timing, err = config.Load(*configPath); err != nil {
			slog.Warn("Config not loaded, using defaults", "path", *configPath, "err", err)
		}
	}

	tickSet := false
	flag.Visit(func(f *flag.Flag) {
		if f.Name == "tick" {
			tickSet = true
		}
	})
	tickPeriod := effectiveTick(tickSet, *tick, timing.TickPeriod)

	car, err := elev.New(*name, *minFloor, *maxFloor, tickPeriod)
	if err != nil {
		slog.Error("Cannot build car", "err", err)
		os.Exit(1)
	}
	car.SetTiming(timing)
	car.SetPolicy(parsePolicy(timing.Policy))

	go observe(car)

	requests := make(chan types.Request)
	done := make(chan struct{})
	if *gen {
		go generate(*minFloor, *maxFloor, tickPeriod, requests, done)
	}

	car.Start()
	go func() {
		time.Sleep(*runFor)
		close(done)
	}()
	timer.Drive(tickPeriod, estimatingCar{car}, requests, nil, done)
}

// effectiveTick resolves the update period: an explicit -tick flag
// wins, otherwise the config file's tick period applies.
func effectiveTick(flagSet bool, flagTick, configTick time.Duration) time.Duration {
	if flagSet || configTick <= 0 {
		return flagTick
	}
	return configTick
}

// estimatingCar logs a service-time estimate before each submission.
// It runs on the driver goroutine, so the estimate never races an
// update step.
type estimatingCar struct {
	*elev.Machine
}

func (c estimatingCar) Submit(req types.RequestType, floor int) bool {
	if eta, err := c.EstimateArrival(req, floor); err == nil {
		slog.Debug("Estimated time to service", "request", req, "floor", floor, "estimate", eta)
	}
	return c.Machine.Submit(req, floor)
}

// observe renders the car's structured events.
func observe(car *elev.Machine) {
	for ev := range car.Events() {
		switch ev.Kind {
		case types.TransitionEvent:
			slog.Info("Transition", "car", ev.Car, "from", ev.From, "to", ev.To, "floor", ev.Floor)
		case types.FloorServiced:
			slog.Info("Floor serviced", "car", ev.Car, "floor", ev.Floor)
		case types.RequestAdmitted:
			slog.Info("Request admitted", "car", ev.Car, "request", ev.Request, "floor", ev.Floor)
		case types.RequestRejected:
			slog.Info("Request rejected", "car", ev.Car, "request", ev.Request, "floor", ev.Floor)
		case types.BoundaryViolation:
			slog.Warn("Boundary violation", "car", ev.Car, "floor", ev.Floor)
		}
	}
}

// generate feeds random stop and call requests into the driver, the
// way a test bench would.
func generate(minFloor, maxFloor int, tick time.Duration, requests chan<- types.Request, done <-chan struct{}) {
	kinds := []types.RequestType{types.StopAt, types.CallUp, types.CallDown}
	for {
		pause := time.Duration(5+rand.Intn(30)) * tick
		select {
		case <-done:
			return
		case <-time.After(pause):
		}
		req := types.Request{
			Type:  kinds[rand.Intn(len(kinds))],
			Floor: minFloor + rand.Intn(maxFloor-minFloor+1),
		}
		select {
		case requests <- req:
		case <-done:
			return
		}
	}
}

func parsePolicy(s string) types.DecisionPolicy {
	if s == "count" {
		return types.CountBased
	}
	return types.EarlyDecision
}

// initLogger sets up global logging with compact time and file:line source.
func initLogger() {
	handler := slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{
		Level:     slog.LevelDebug,
		AddSource: true,
		ReplaceAttr: func(groups []string, a slog.Attr) slog.Attr {
			if a.Key == slog.TimeKey {
				if t, ok := a.Value.Any().(time.Time); ok {
					a.Value = slog.StringValue(t.Format("15:04:05"))
				}
			}
			if a.Key == slog.SourceKey {
				if source, ok := a.Value.Any().(*slog.Source); ok {
					file := source.File
					if lastSlash := strings.LastIndexByte(file, '/'); lastSlash >= 0 {
						file = file[lastSlash+1:]
					}
					a.Value = slog.StringValue(fmt.Sprintf("%s:%d", file, source.Line))
				}
			}
			return a
		},
	})
	slog.SetDefault(slog.New(handler))
}
