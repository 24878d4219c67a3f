package tween_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/plus3/kinet/tween"
)

func TestRegistryRegisterAndResolve(t *testing.T) {
	reg := tween.NewRegistry()
	assert.Equal(t, 0, reg.Len())

	reg.Register(particleTag, particleAccessor{})
	assert.Equal(t, 1, reg.Len())

	a, ok := reg.Resolve(particleTag)
	assert.True(t, ok)
	assert.IsType(t, particleAccessor{}, a)

	_, ok = reg.Resolve(tween.TypeTag(1234))
	assert.False(t, ok)
}

func TestRegistryReplacesBinding(t *testing.T) {
	reg := tween.NewRegistry()
	reg.Register(particleTag, particleAccessor{})
	reg.Register(particleTag, countAccessor{channels: 1})

	assert.Equal(t, 1, reg.Len())
	a, ok := reg.Resolve(particleTag)
	assert.True(t, ok)
	assert.IsType(t, countAccessor{}, a)
}

func TestRegistryNilAccessorPanics(t *testing.T) {
	reg := tween.NewRegistry()
	assert.Panics(t, func() { reg.Register(particleTag, nil) })
}

func TestSelfAccessingTarget(t *testing.T) {
	lbl := &label{Alpha: 1}

	tw := tween.To(nil, lbl, 0, 0, 100).Target(0).Start()
	tw.Update(50)
	assert.Equal(t, 0.5, lbl.Alpha)

	tw.Update(50)
	assert.True(t, tw.IsFinished())
	assert.Equal(t, 0.0, lbl.Alpha)
}

func TestRegistryBindingWinsOverSelfAccessor(t *testing.T) {
	// label can access itself, but an explicit registry binding for its tag
	// takes precedence.
	const labelTag tween.TypeTag = 7
	reg := tween.NewRegistry()
	reg.Register(labelTag, countAccessor{channels: 1})

	lbl := &label{Alpha: 1}
	tw := tween.To(reg, lbl, labelTag, 0, 100).Target(0).Start()
	tw.Update(100)

	// countAccessor never writes, so Alpha must be untouched.
	assert.Equal(t, 1.0, lbl.Alpha)
}

func TestMultiChannelKinds(t *testing.T) {
	reg := newTestRegistry()
	p := &particle{X: 1, Y: 2, Scale: 3}

	tw := tween.To(reg, p, particleTag, kindAll, 100).Target(11, 12, 13).Start()
	assert.Equal(t, 3, tw.GetChannelCount())

	tw.Update(50)
	assert.Equal(t, 6.0, p.X)
	assert.Equal(t, 7.0, p.Y)
	assert.Equal(t, 8.0, p.Scale)

	tw.Update(50)
	assert.Equal(t, 11.0, p.X)
	assert.Equal(t, 12.0, p.Y)
	assert.Equal(t, 13.0, p.Scale)
}
