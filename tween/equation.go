package tween

// Equation shapes the motion of a tween within one pass. It maps an elapsed
// time in [0, duration] to an attribute value, given the start value and the
// total delta to cover. Equations must be pure: the engine may evaluate any
// point any number of times, in any order.
type Equation func(elapsed, start, delta, duration float64) float64

// Linear interpolates at constant speed. To and From preset it; replace it
// with Ease.
func Linear(elapsed, start, delta, duration float64) float64 {
	if duration <= 0 {
		return start + delta
	}
	return start + delta*elapsed/duration
}
