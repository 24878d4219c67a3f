// Package debugui renders a Dear ImGui inspection overlay for tween
// managers: live instance tables, repeat state and frame-time history
// through immediate-mode widgets.
package debugui

import "time"

// InspectorComponent keeps the rolling frame-time history shown by the
// inspector window.
type InspectorComponent struct {
	historyFrames int
	frameHistory  []float32
	frameIndex    int
}

func NewInspectorComponent(historyFrames int) InspectorComponent {
	return InspectorComponent{
		historyFrames: historyFrames,
		frameHistory:  make([]float32, historyFrames),
		frameIndex:    0,
	}
}

type FrameTimer struct {
	lastFrameTime time.Time
}

func NewFrameTimer() *FrameTimer {
	return &FrameTimer{
		lastFrameTime: time.Now(),
	}
}

func (ft *FrameTimer) GetDeltaTime() float32 {
	now := time.Now()
	delta := float32(now.Sub(ft.lastFrameTime).Seconds())
	ft.lastFrameTime = now
	return delta
}
