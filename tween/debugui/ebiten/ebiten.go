// Package ebiten integrates the tween inspector with the Ebiten game
// engine through the Dear ImGui Ebiten backend.
package ebiten

import (
	ebitenbackend "github.com/AllenDang/cimgui-go/backend/ebiten-backend"
	"github.com/AllenDang/cimgui-go/imgui"
	"github.com/hajimehoshi/ebiten/v2"

	"github.com/plus3/kinet/tween"
	"github.com/plus3/kinet/tween/debugui"
)

// Overlay owns the ImGui backend and renders the tween inspector plus any
// custom windows on top of an Ebiten game.
type Overlay struct {
	backend   *ebitenbackend.EbitenBackend
	inspector debugui.InspectorComponent
	manager   *tween.Manager
	timer     *debugui.FrameTimer
	windows   []func()
	enabled   bool
}

// NewOverlay creates the application window and wires the inspector to m.
func NewOverlay(title string, width, height int, m *tween.Manager) *Overlay {
	backend := ebitenbackend.NewEbitenBackend()
	backend.CreateWindow(title, width, height)
	imgui.CurrentIO().SetIniFilename("") // Disable imgui.ini

	return &Overlay{
		backend:   backend,
		inspector: debugui.NewInspectorComponent(100),
		manager:   m,
		timer:     debugui.NewFrameTimer(),
		enabled:   true,
	}
}

// AddWindow registers a render function drawn inside every ImGui frame
// while the overlay is enabled.
func (o *Overlay) AddWindow(render func()) {
	o.windows = append(o.windows, render)
}

// Update runs one ImGui frame. Call it from the game's Update after
// stepping the manager.
func (o *Overlay) Update() {
	// The timer ticks even while hidden so re-enabling does not feed one
	// huge delta into the graph.
	delta := o.timer.GetDeltaTime()
	if !o.enabled {
		return
	}

	o.backend.BeginFrame()
	o.inspector.Render(o.manager, delta)
	for _, render := range o.windows {
		render()
	}
	o.backend.EndFrame()
}

// Draw paints the overlay onto screen. Call it at the end of the game's
// Draw.
func (o *Overlay) Draw(screen *ebiten.Image) {
	if !o.enabled {
		return
	}
	o.backend.Draw(screen)
}

// Layout forwards the window geometry to the backend.
func (o *Overlay) Layout(outsideWidth, outsideHeight int) {
	o.backend.Layout(outsideWidth, outsideHeight)
}

// Toggle flips overlay visibility.
func (o *Overlay) Toggle() {
	o.enabled = !o.enabled
}

// SetEnabled shows or hides the overlay.
func (o *Overlay) SetEnabled(enabled bool) {
	o.enabled = enabled
}

// Enabled reports whether the overlay currently renders.
func (o *Overlay) Enabled() bool {
	return o.enabled
}

// Backend exposes the underlying ImGui backend for direct configuration.
func (o *Overlay) Backend() *ebitenbackend.EbitenBackend {
	return o.backend
}
