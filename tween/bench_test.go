package tween_test

import (
	"testing"

	"github.com/plus3/kinet/tween"
)

func BenchmarkTweenUpdate(b *testing.B) {
	reg := newTestRegistry()
	p := &particle{}
	tw := tween.To(reg, p, particleTag, kindPosition, 1000).
		Target(100, 100).
		Repeat(tween.Infinity, 0).
		Start()

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		tw.Update(7)
	}
}

func BenchmarkTweenUpdateSweepingPasses(b *testing.B) {
	reg := newTestRegistry()
	p := &particle{}
	tw := tween.To(reg, p, particleTag, kindPosition, 10).
		Target(100, 100).
		Repeat(tween.Infinity, 0).
		Start()

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		// Each delta crosses a hundred pass boundaries.
		tw.Update(1000)
	}
}

func BenchmarkManagerUpdate1000(b *testing.B) {
	reg := newTestRegistry()
	m := tween.NewManager()
	for i := 0; i < 1000; i++ {
		m.Add(tween.To(reg, &particle{}, particleTag, kindPosition, 1000).
			Target(100, 100).
			Repeat(tween.Infinity, 0))
	}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		m.Update(7)
	}
}

func BenchmarkPoolAcquireRelease(b *testing.B) {
	pool := tween.NewPool()

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		pool.Release(pool.Acquire())
	}
}
