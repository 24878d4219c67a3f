package tween

import (
	"context"
	"time"
)

// ManagerStats is a point-in-time snapshot of a manager for inspection.
type ManagerStats struct {
	TweenCount   int
	TotalUpdates int64
	Tweens       []TweenStats
}

// TweenStats describes one managed instance.
type TweenStats struct {
	Kind              int
	ChannelCount      int
	DurationMillis    int
	DelayMillis       int
	RepeatCount       int
	RepeatDelayMillis int
	Iteration         int
	PositionMillis    int
	InGap             bool
	Yoyo              bool
	Finished          bool
	Progress          float64
}

// Manager drives a set of tweens under one clock and reaps them when they
// finish. Reaping happens at the top of Update, before any instance is
// stepped, so Kill takes effect before the flag can be recomputed from
// position. Reaped instances that came from a Pool go back to it.
type Manager struct {
	tweens       []*Tween
	totalUpdates int64
}

// NewManager creates an empty manager.
func NewManager() *Manager {
	return &Manager{
		tweens: make([]*Tween, 0),
	}
}

// Add places t under this manager's clock, starting it first when needed.
func (m *Manager) Add(t *Tween) *Manager {
	if t == nil {
		return m
	}
	if !t.started {
		t.Start()
	}
	m.tweens = append(m.tweens, t)
	return m
}

// Update reaps finished instances, then advances the survivors by
// deltaMillis in insertion order.
func (m *Manager) Update(deltaMillis int) {
	kept := m.tweens[:0]
	for _, t := range m.tweens {
		if t.finished {
			t.Free()
			continue
		}
		kept = append(kept, t)
	}
	for i := len(kept); i < len(m.tweens); i++ {
		m.tweens[i] = nil
	}
	m.tweens = kept

	for _, t := range m.tweens {
		t.Update(deltaMillis)
	}
	m.totalUpdates++
}

// Kill marks every tween driving target as finished. Targets compare by
// identity, so pointer targets are expected. The instances disappear on the
// next Update.
func (m *Manager) Kill(target any) {
	for _, t := range m.tweens {
		if t.target == target {
			t.Kill()
		}
	}
}

// KillKind narrows Kill to the tweens driving one attribute set of target.
func (m *Manager) KillKind(target any, kind int) {
	for _, t := range m.tweens {
		if t.target == target && t.kind == kind {
			t.Kill()
		}
	}
}

// KillAll marks every managed tween as finished.
func (m *Manager) KillAll() {
	for _, t := range m.tweens {
		t.Kill()
	}
}

// Len reports how many instances are under management, including finished
// ones not yet reaped.
func (m *Manager) Len() int {
	return len(m.tweens)
}

// Run drives Update from a wall-clock ticker until ctx is cancelled.
func (m *Manager) Run(ctx context.Context, interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	lastTime := time.Now()

	for {
		select {
		case <-ctx.Done():
			return
		case now := <-ticker.C:
			delta := now.Sub(lastTime)
			lastTime = now
			m.Update(int(delta.Milliseconds()))
		}
	}
}

// GetStats snapshots the manager and every instance under it.
func (m *Manager) GetStats() *ManagerStats {
	stats := &ManagerStats{
		TweenCount:   len(m.tweens),
		TotalUpdates: m.totalUpdates,
		Tweens:       make([]TweenStats, len(m.tweens)),
	}

	for i, t := range m.tweens {
		stats.Tweens[i] = TweenStats{
			Kind:              t.kind,
			ChannelCount:      t.channels,
			DurationMillis:    t.duration,
			DelayMillis:       t.delay,
			RepeatCount:       t.repeatCount,
			RepeatDelayMillis: t.repeatDelay,
			Iteration:         t.iteration,
			PositionMillis:    t.current,
			InGap:             t.betweenIterations,
			Yoyo:              t.yoyo,
			Finished:          t.finished,
			Progress:          t.progress(),
		}
	}
	return stats
}

// progress is the linear fraction of the current pass, reversed for yoyo
// passes so it tracks the on-screen motion. Gaps and finished instances
// report a full bar.
func (t *Tween) progress() float64 {
	if !t.initialized {
		return 0
	}
	if t.finished || t.betweenIterations || t.duration <= 0 {
		return 1
	}

	frac := float64(t.current) / float64(t.duration)
	if frac < 0 {
		frac = 0
	} else if frac > 1 {
		frac = 1
	}
	if t.iterationYoyo(t.iteration) {
		frac = 1 - frac
	}
	return frac
}
