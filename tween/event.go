package tween

//go:generate go run golang.org/x/tools/cmd/stringer -type=Event

// Event identifies a lifecycle moment of a tween.
//
// Begin and Complete bracket the whole tween: Begin fires once, right before
// the first Start, and Complete fires when the final forward pass has been
// left behind. Start and End bracket each individual pass. The Back variants
// are the mirrors reached by rewinding with negative deltas.
type Event uint8

const (
	Begin Event = iota + 1
	Start
	End
	Complete
	BackStart
	BackEnd
	BackComplete
)

// Callback receives lifecycle notifications for a tween. Callbacks run
// synchronously on the goroutine calling Update, in registration order.
type Callback func(ev Event, t *Tween)
