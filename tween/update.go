package tween

// Update advances the tween by deltaMillis. Negative deltas rewind, zero is
// harmless, and a delta sweeping several pass boundaries lands on the exact
// spot the sum of smaller deltas would reach. Update never fails: unstarted
// instances ignore it, and a missing target or equation only suppresses
// value writes, never the position bookkeeping.
func (t *Tween) Update(deltaMillis int) {
	if !t.started {
		return
	}

	t.current += deltaMillis

	t.initialize()
	if !t.initialized {
		return
	}

	t.testCompletion()
	t.testRelaunch()

	lastIteration := t.iteration
	lastMillis := t.current - deltaMillis

	if t.repeatCount < 0 && t.duration == 0 && t.repeatDelay == 0 {
		// An endless instant tween would cycle in the transition loop
		// forever; pin it to the start of its iteration instead.
		t.current = 0
	} else {
		t.settle()
	}

	t.fireTransitions(lastIteration, lastMillis)
	t.fireLimits(lastIteration)
	t.testCompletion()
	t.apply()
}

// initialize consumes the start delay and snapshots the starting values. It
// runs once per configuration; restarts keep the original snapshot.
func (t *Tween) initialize() {
	if t.initialized || t.current < t.delay {
		return
	}

	t.current -= t.delay
	t.initialized = true

	if t.target != nil {
		t.accessor.GetValues(t.target, t.kind, t.startValues[:])
		if t.isRelative {
			for i := 0; i < t.channels; i++ {
				t.targetValues[i] += t.startValues[i]
			}
		}
	}

	t.fire(Begin)
	t.fire(Start)
}

func (t *Tween) testCompletion() {
	t.finished = t.repeatCount >= 0 && (t.iteration > t.repeatCount*2 || t.iteration < 0)
}

// testRelaunch pulls an out-of-range iteration back in once the accumulator
// has flowed back toward the valid range, so a finished tween resumes when
// updated across its limit in the other direction. An accumulator resting
// exactly on the limit stays finished.
func (t *Tween) testRelaunch() {
	switch {
	case t.repeatCount >= 0 && t.iteration < 0 && t.current >= 0:
		t.betweenIterations = false
		t.iteration++
	case t.repeatCount >= 0 && t.iteration > t.repeatCount*2 && t.current < 0:
		t.betweenIterations = false
		t.current += t.duration
		t.iteration--
	}
}

// settle normalizes the accumulator into its local range by walking pass and
// gap boundaries one at a time. Crossings are eager: landing exactly on a
// boundary moves past it, so a settled pass position lives in [0, duration)
// and a settled gap position in [0, repeatDelay). The walk stops as soon as
// the iteration leaves the valid range.
func (t *Tween) settle() {
loop:
	for t.validIteration(t.iteration) {
		switch {
		case t.betweenIterations && t.current < 0:
			t.betweenIterations = false
			t.current += t.duration
			t.iteration--
		case t.betweenIterations && t.current >= t.repeatDelay:
			t.betweenIterations = false
			t.current -= t.repeatDelay
			t.iteration++
		case !t.betweenIterations && t.current < 0:
			t.betweenIterations = true
			t.iteration--
			if t.validIteration(t.iteration) {
				t.current += t.repeatDelay
			}
		case !t.betweenIterations && t.current >= t.duration:
			t.betweenIterations = true
			t.current -= t.duration
			t.iteration++
		default:
			break loop
		}
	}
}

// fireTransitions compares where the update started against where it
// settled and fires the pass-boundary events that separation implies.
// Intermediate passes swept over by a large delta are not observable; only
// the departure and the arrival fire.
func (t *Tween) fireTransitions(lastIteration, lastMillis int) {
	switch {
	case t.iteration > lastIteration:
		if t.validIteration(lastIteration) && lastMillis <= t.duration {
			t.fire(End)
		}
		if t.validIteration(t.iteration) {
			t.fire(Start)
		}
	case t.iteration < lastIteration:
		if t.validIteration(lastIteration) {
			t.fire(BackEnd)
		}
		if t.validIteration(t.iteration) && t.current < t.duration {
			t.fire(BackStart)
		}
	default:
		if t.validIteration(t.iteration) && t.current > t.duration && lastMillis <= t.duration {
			t.fire(End)
		}
		if t.validIteration(t.iteration) && t.current < t.duration && lastMillis >= t.duration {
			t.fire(BackStart)
		}
	}
}

// fireLimits detects a departure out of the repeat range and fires the
// terminal events, first forcing the target onto the matching boundary
// values so no eased residue is left behind. The lastIteration guard keeps a
// departed tween from refiring on later updates.
func (t *Tween) fireLimits(lastIteration int) {
	if t.repeatCount < 0 {
		return
	}
	switch {
	case t.iteration > t.repeatCount*2 && t.validIteration(lastIteration):
		if t.iterationYoyo(t.repeatCount * 2) {
			t.forceStartValues()
		} else {
			t.forceEndValues()
		}
		t.fire(Complete)
	case t.iteration < 0 && t.validIteration(lastIteration):
		if t.iterationYoyo(0) {
			t.forceEndValues()
		} else {
			t.forceStartValues()
		}
		t.fire(BackComplete)
	}
}

// apply writes the eased values for the settled position. Gap positions,
// out-of-range iterations and finished instances leave the target alone.
func (t *Tween) apply() {
	if t.target == nil || t.equation == nil || !t.initialized || t.finished {
		return
	}
	if !t.validIteration(t.iteration) || t.betweenIterations {
		return
	}

	millis := t.current
	if t.iterationYoyo(t.iteration) {
		millis = t.duration - t.current
	}

	var buf [MaxCombined]float64
	for i := 0; i < t.channels; i++ {
		start := t.startValues[i]
		delta := t.targetValues[i] - t.startValues[i]
		if t.isFrom {
			start = t.targetValues[i]
			delta = -delta
		}
		buf[i] = t.equation(float64(millis), start, delta, float64(t.duration))
	}
	t.accessor.SetValues(t.target, t.kind, buf[:t.channels])
}

// forceStartValues writes the pass-start side of the value range to the
// target. Under From the configured values are that side.
func (t *Tween) forceStartValues() {
	if t.target == nil || !t.initialized {
		return
	}
	if t.isFrom {
		t.accessor.SetValues(t.target, t.kind, t.targetValues[:t.channels])
	} else {
		t.accessor.SetValues(t.target, t.kind, t.startValues[:t.channels])
	}
}

// forceEndValues writes the pass-end side of the value range to the target.
func (t *Tween) forceEndValues() {
	if t.target == nil || !t.initialized {
		return
	}
	if t.isFrom {
		t.accessor.SetValues(t.target, t.kind, t.startValues[:t.channels])
	} else {
		t.accessor.SetValues(t.target, t.kind, t.targetValues[:t.channels])
	}
}

func (t *Tween) fire(ev Event) {
	t.callbacks.Fire(ev, t)
}

// validIteration reports whether i addresses a pass or gap inside the
// repeat range. Infinite repeats accept every iteration, negatives included.
func (t *Tween) validIteration(i int) bool {
	if t.repeatCount < 0 {
		return true
	}
	return i >= 0 && i <= t.repeatCount*2
}

// iterationYoyo reports whether the pass at iteration i plays reversed.
// Passes sit on even iterations; with yoyo on, every second pass reverses.
func (t *Tween) iterationYoyo(i int) bool {
	if !t.yoyo {
		return false
	}
	m := i % 4
	if m < 0 {
		m = -m
	}
	return m == 2
}
