package tween_test

import (
	"context"
	"testing"
	"time"

	"github.com/plus3/kinet/tween"
)

func TestManagerStartsAddedTweens(t *testing.T) {
	reg := newTestRegistry()
	p := &particle{}
	m := tween.NewManager()

	m.Add(tween.To(reg, p, particleTag, kindPosition, 100).Target(10, 0))
	m.Update(50)

	if p.X != 5 {
		t.Errorf("X = %v, want 5", p.X)
	}
}

func TestManagerKeepsExternallyStartedState(t *testing.T) {
	reg := newTestRegistry()
	p := &particle{}

	tw := tween.To(reg, p, particleTag, kindPosition, 100).Target(10, 0).Start()
	tw.Update(40)

	m := tween.NewManager()
	m.Add(tw)
	m.Update(10)

	if p.X != 5 {
		t.Errorf("X = %v, want 5 after resuming at 40 ms", p.X)
	}
}

func TestManagerReapsFinishedIntoPool(t *testing.T) {
	reg := newTestRegistry()
	pool := tween.NewPool()
	p := &particle{}
	m := tween.NewManager()

	m.Add(pool.To(reg, p, particleTag, kindPosition, 100).Target(10, 0))

	m.Update(100)
	if got := m.Len(); got != 1 {
		t.Fatalf("Len after finishing update = %d, want 1 (reap happens next update)", got)
	}
	if got := pool.Idle(); got != 0 {
		t.Fatalf("pool.Idle = %d, want 0 before the reap", got)
	}

	m.Update(0)
	if got := m.Len(); got != 0 {
		t.Errorf("Len after reap = %d, want 0", got)
	}
	if got := pool.Idle(); got != 1 {
		t.Errorf("pool.Idle = %d, want 1 after the reap", got)
	}
}

func TestManagerKillRemovesInfiniteTween(t *testing.T) {
	reg := newTestRegistry()
	p := &particle{}
	m := tween.NewManager()

	m.Add(tween.To(reg, p, particleTag, kindPosition, 100).
		Target(10, 0).
		Repeat(tween.Infinity, 0))
	m.Update(30)

	// An infinite tween never finishes on its own; Kill must stick even
	// though updating it would recompute the flag.
	m.Kill(p)
	m.Update(0)

	if got := m.Len(); got != 0 {
		t.Errorf("Len after Kill = %d, want 0", got)
	}
	if p.X != 3 {
		t.Errorf("X = %v, want 3 (no movement after Kill)", p.X)
	}
}

func TestManagerKillKind(t *testing.T) {
	reg := newTestRegistry()
	p := &particle{}
	m := tween.NewManager()

	m.Add(tween.To(reg, p, particleTag, kindPosition, 100).Target(10, 0))
	m.Add(tween.To(reg, p, particleTag, kindScale, 100).Target(4))

	m.KillKind(p, kindScale)
	m.Update(50)

	if got := m.Len(); got != 1 {
		t.Errorf("Len = %d, want 1", got)
	}
	if p.X != 5 {
		t.Errorf("X = %v, want 5 (position tween must survive)", p.X)
	}
	if p.Scale != 0 {
		t.Errorf("Scale = %v, want 0 (scale tween was killed)", p.Scale)
	}
}

func TestManagerKillAll(t *testing.T) {
	reg := newTestRegistry()
	m := tween.NewManager()

	for i := 0; i < 5; i++ {
		m.Add(tween.To(reg, &particle{}, particleTag, kindPosition, 100).Target(1, 1))
	}
	if got := m.Len(); got != 5 {
		t.Fatalf("Len = %d, want 5", got)
	}

	m.KillAll()
	m.Update(0)

	if got := m.Len(); got != 0 {
		t.Errorf("Len after KillAll = %d, want 0", got)
	}
}

func TestManagerStats(t *testing.T) {
	reg := newTestRegistry()
	p := &particle{}
	m := tween.NewManager()

	m.Add(tween.To(reg, p, particleTag, kindPosition, 200).Target(10, 0).RepeatYoyo(2, 30))
	m.Update(50)

	stats := m.GetStats()
	if stats.TweenCount != 1 {
		t.Fatalf("TweenCount = %d, want 1", stats.TweenCount)
	}
	if stats.TotalUpdates != 1 {
		t.Errorf("TotalUpdates = %d, want 1", stats.TotalUpdates)
	}

	ts := stats.Tweens[0]
	if ts.Kind != kindPosition {
		t.Errorf("Kind = %d, want %d", ts.Kind, kindPosition)
	}
	if ts.ChannelCount != 2 {
		t.Errorf("ChannelCount = %d, want 2", ts.ChannelCount)
	}
	if ts.DurationMillis != 200 {
		t.Errorf("DurationMillis = %d, want 200", ts.DurationMillis)
	}
	if ts.RepeatCount != 2 || ts.RepeatDelayMillis != 30 || !ts.Yoyo {
		t.Errorf("repeat fields = (%d, %d, %v), want (2, 30, true)",
			ts.RepeatCount, ts.RepeatDelayMillis, ts.Yoyo)
	}
	if ts.Iteration != 0 || ts.PositionMillis != 50 || ts.InGap {
		t.Errorf("position fields = (%d, %d, %v), want (0, 50, false)",
			ts.Iteration, ts.PositionMillis, ts.InGap)
	}
	if ts.Progress != 0.25 {
		t.Errorf("Progress = %v, want 0.25", ts.Progress)
	}
	if ts.Finished {
		t.Error("Finished = true, want false")
	}
}

func TestManagerRunStopsOnCancel(t *testing.T) {
	reg := newTestRegistry()
	p := &particle{}
	m := tween.NewManager()
	m.Add(tween.To(reg, p, particleTag, kindPosition, 10_000).Target(1, 0))

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})
	go func() {
		m.Run(ctx, time.Millisecond)
		close(done)
	}()

	time.Sleep(10 * time.Millisecond)
	cancel()

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("Run did not return after cancel")
	}

	if got := m.GetStats().TotalUpdates; got < 1 {
		t.Errorf("TotalUpdates = %d, want at least 1", got)
	}
}
