// Package action is the action pipeline that chart components notify
// when user interaction changes chart state.
package action

import (
	"log/slog"
	"sync"

	"github.com/gogpu/ggchart"
)

// AxisBreakExpand is dispatched after a collapsed axis break was expanded.
const AxisBreakExpand = "axisBreakExpand"

// Action is a notification sent through the pipeline.
type Action struct {
	Type string

	// BreakStart and BreakEnd identify the break for AxisBreakExpand.
	BreakStart float64
	BreakEnd   float64
}

// Handler reacts to a dispatched action.
type Handler func(a Action)

// Dispatcher delivers actions to the handlers registered for their type,
// in registration order. Handlers run synchronously on the dispatching
// goroutine.
type Dispatcher struct {
	mu       sync.RWMutex
	handlers map[string][]Handler
	log      *slog.Logger
}

// NewDispatcher creates a dispatcher that logs through ggchart.Logger.
func NewDispatcher() *Dispatcher {
	return &Dispatcher{
		handlers: make(map[string][]Handler),
		log:      ggchart.Logger(),
	}
}

// On registers h for actions of type typ.
func (d *Dispatcher) On(typ string, h Handler) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.handlers[typ] = append(d.handlers[typ], h)
}

// DispatchAction delivers a to every handler registered for a.Type.
// Actions nobody listens to are dropped.
func (d *Dispatcher) DispatchAction(a Action) {
	d.mu.RLock()
	hs := d.handlers[a.Type]
	d.mu.RUnlock()

	if len(hs) == 0 {
		d.log.Debug("action: no handlers", "type", a.Type)
		return
	}
	for _, h := range hs {
		h(a)
	}
}

// Recorder is a handler that keeps every action it receives.
type Recorder struct {
	mu      sync.Mutex
	actions []Action
}

// Handle implements Handler.
func (r *Recorder) Handle(a Action) {
	r.mu.Lock()
	r.actions = append(r.actions, a)
	r.mu.Unlock()
}

// DispatchAction lets a Recorder stand in for a Dispatcher.
func (r *Recorder) DispatchAction(a Action) {
	r.Handle(a)
}

// Actions returns a copy of the recorded actions.
func (r *Recorder) Actions() []Action {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]Action(nil), r.actions...)
}
