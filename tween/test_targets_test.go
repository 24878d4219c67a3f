package tween_test

import "github.com/plus3/kinet/tween"

// Attribute selectors shared by the test accessors.
const (
	kindPosition = iota + 1 // X, Y
	kindScale               // Scale
	kindAll                 // X, Y, Scale
)

const (
	particleTag tween.TypeTag = iota + 1
)

// particle is the standard moving test target.
type particle struct {
	X, Y  float64
	Scale float64
}

type particleAccessor struct{}

func (particleAccessor) GetValues(target any, kind int, out []float64) int {
	p := target.(*particle)
	switch kind {
	case kindPosition:
		out[0], out[1] = p.X, p.Y
		return 2
	case kindScale:
		out[0] = p.Scale
		return 1
	case kindAll:
		out[0], out[1], out[2] = p.X, p.Y, p.Scale
		return 3
	}
	return 0
}

func (particleAccessor) SetValues(target any, kind int, in []float64) {
	p := target.(*particle)
	switch kind {
	case kindPosition:
		p.X, p.Y = in[0], in[1]
	case kindScale:
		p.Scale = in[0]
	case kindAll:
		p.X, p.Y, p.Scale = in[0], in[1], in[2]
	}
}

// label accesses itself: no registry entry needed.
type label struct {
	Alpha float64
}

func (l *label) GetValues(target any, kind int, out []float64) int {
	out[0] = target.(*label).Alpha
	return 1
}

func (l *label) SetValues(target any, kind int, in []float64) {
	target.(*label).Alpha = in[0]
}

// countAccessor reports a fixed channel count without touching the buffer.
type countAccessor struct {
	channels int
}

func (c countAccessor) GetValues(target any, kind int, out []float64) int { return c.channels }
func (c countAccessor) SetValues(target any, kind int, in []float64)      {}

// recorder collects fired events in order.
type recorder struct {
	events []tween.Event
}

func (r *recorder) callback() tween.Callback {
	return func(ev tween.Event, t *tween.Tween) {
		r.events = append(r.events, ev)
	}
}

// subscribeAll registers the recorder once per physical slot, so every event
// is captured exactly once.
func subscribeAll(t *tween.Tween, r *recorder) {
	t.AddCallback(tween.Start, r.callback())
	t.AddCallback(tween.End, r.callback())
	t.AddCallback(tween.BackStart, r.callback())
	t.AddCallback(tween.BackEnd, r.callback())
}

func newTestRegistry() *tween.Registry {
	reg := tween.NewRegistry()
	reg.Register(particleTag, particleAccessor{})
	return reg
}
