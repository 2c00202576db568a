package action

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDispatcherOrder(t *testing.T) {
	d := NewDispatcher()
	var got []string
	d.On(AxisBreakExpand, func(Action) { got = append(got, "first") })
	d.On(AxisBreakExpand, func(Action) { got = append(got, "second") })
	d.On("other", func(Action) { got = append(got, "other") })

	d.DispatchAction(Action{Type: AxisBreakExpand, BreakStart: 1, BreakEnd: 2})
	assert.Equal(t, []string{"first", "second"}, got)
}

func TestDispatcherNoHandlers(t *testing.T) {
	d := NewDispatcher()
	assert.NotPanics(t, func() {
		d.DispatchAction(Action{Type: AxisBreakExpand})
	})
}

func TestDispatcherHandlerMayRegister(t *testing.T) {
	d := NewDispatcher()
	var rec Recorder
	d.On(AxisBreakExpand, func(a Action) {
		d.On(AxisBreakExpand, rec.Handle)
	})
	d.DispatchAction(Action{Type: AxisBreakExpand})
	assert.Empty(t, rec.Actions(), "handlers added during dispatch run next time")

	d.DispatchAction(Action{Type: AxisBreakExpand, BreakStart: 3})
	assert.Len(t, rec.Actions(), 1)
}

func TestRecorder(t *testing.T) {
	var rec Recorder
	var wg sync.WaitGroup
	for i := 0; i < 10; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			rec.DispatchAction(Action{Type: AxisBreakExpand, BreakStart: float64(i)})
		}(i)
	}
	wg.Wait()

	acts := rec.Actions()
	assert.Len(t, acts, 10)
	acts[0].Type = "changed"
	assert.Equal(t, AxisBreakExpand, rec.Actions()[0].Type, "Actions returns a copy")
}
