package sim

import (
	"fmt"
	"time"

	"gridlife/internal/core"
)

// State tracks where the scheduler is in the per-generation pipeline.
type State int

const (
	// StateNeedsCalculation means no generation is in flight and the next
	// pass should dispatch one.
	StateNeedsCalculation State = iota
	// StateCalculating means a computation was dispatched and has not yet
	// signaled completion.
	StateCalculating
	// StateCalculated means a finished Result is waiting on the tick timer
	// before being applied to the board.
	StateCalculated
)

func (s State) String() string {
	switch s {
	case StateNeedsCalculation:
		return "NeedsCalculation"
	case StateCalculating:
		return "Calculating"
	case StateCalculated:
		return "Calculated"
	default:
		return fmt.Sprintf("State(%d)", int(s))
	}
}

// Applier consumes a generation Result, flipping the alive and visual state
// of exactly the listed cells.
type Applier interface {
	Apply(Result)
}

// Dispatcher executes a unit of work. The default dispatcher runs it
// immediately; tests substitute one that defers execution to observe the
// Calculating state.
type Dispatcher func(run func())

// Scheduler drives the generation pipeline. It keeps at most one engine
// computation in flight, holds the finished result until the tick timer
// fires, and hands each result to the applier exactly once.
type Scheduler struct {
	engine   *Engine
	view     AliveView
	applier  Applier
	timer    *core.TickTimer
	dispatch Dispatcher

	state       State
	pending     Result
	generations int
}

// NewScheduler wires the pipeline together. The view supplies the live set
// the engine reads and the applier receives each completed result.
func NewScheduler(engine *Engine, view AliveView, applier Applier, timer *core.TickTimer) *Scheduler {
	return &Scheduler{
		engine:   engine,
		view:     view,
		applier:  applier,
		timer:    timer,
		dispatch: func(run func()) { run() },
		state:    StateNeedsCalculation,
	}
}

// SetDispatcher replaces the unit-of-work executor.
func (s *Scheduler) SetDispatcher(d Dispatcher) {
	if d != nil {
		s.dispatch = d
	}
}

// State returns the current pipeline state.
func (s *Scheduler) State() State { return s.state }

// Generations returns how many results have been applied so far.
func (s *Scheduler) Generations() int { return s.generations }

// Pass drives one scheduling step at the given wall-clock time. The caller
// invokes it once per frame while the simulation is running.
func (s *Scheduler) Pass(now time.Time) {
	switch s.state {
	case StateNeedsCalculation:
		s.RequestGeneration()
	case StateCalculating:
		// Waiting on the completion callback.
	case StateCalculated:
		if !s.timer.Tick(now) {
			return
		}
		s.applier.Apply(s.pending)
		s.pending = Result{}
		s.generations++
		s.state = StateNeedsCalculation
	}
}

// RequestGeneration dispatches one engine computation. Requesting while one
// is already in flight, or while a result is still waiting to be applied,
// would break the at-most-one guarantee, so it panics rather than quietly
// overlapping.
func (s *Scheduler) RequestGeneration() {
	if s.state != StateNeedsCalculation {
		panic("sim: generation requested in state " + s.state.String())
	}
	s.state = StateCalculating
	s.dispatch(func() {
		s.complete(s.engine.NextGeneration(s.view))
	})
}

func (s *Scheduler) complete(res Result) {
	if s.state != StateCalculating {
		panic("sim: generation completion signaled in state " + s.state.String())
	}
	s.pending = res
	s.state = StateCalculated
}
