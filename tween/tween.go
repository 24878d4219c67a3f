package tween

import "strconv"

const (
	// Infinity as a repeat count repeats a tween without end.
	Infinity = -1

	// MaxCombined caps how many value channels a single tween can drive.
	MaxCombined = 10
)

// Tween interpolates one attribute set of a single target over time.
//
// Position bookkeeping counts passes and the gaps between them on one axis:
// even iterations are playing passes, odd iterations are repeat-delay gaps.
// The accumulator is local to the current iteration; within a pass it holds
// elapsed pass time, within a gap it holds time since the previous pass
// ended. With yoyo enabled every second pass plays reversed.
//
// Instances are built through To, From, Set, Call or Mark (or their Pool
// equivalents), configured with the chainable setters, armed with Start and
// driven with Update.
type Tween struct {
	target   any
	accessor Accessor
	kind     int
	equation Equation

	startValues  [MaxCombined]float64
	targetValues [MaxCombined]float64
	channels     int

	delay       int
	duration    int
	repeatDelay int
	repeatCount int
	yoyo        bool

	current           int
	iteration         int
	betweenIterations bool

	started     bool
	initialized bool
	finished    bool
	isFrom      bool
	isRelative  bool

	callbacks Callbacks
	userData  any

	pool *Pool
	slot int
}

// To builds a tween that eases target's attributes from their values at
// initialization time toward the values set with Target. The equation is
// preset to Linear. A nil target is legal and produces a timer that drives
// no values.
func To(reg *Registry, target any, tag TypeTag, kind, durationMillis int) *Tween {
	return new(Tween).setupTo(reg, target, tag, kind, durationMillis)
}

// From builds the reverse of To: the values set with Target become the
// origin, and the snapshot taken at initialization becomes the destination.
func From(reg *Registry, target any, tag TypeTag, kind, durationMillis int) *Tween {
	return new(Tween).setupFrom(reg, target, tag, kind, durationMillis)
}

// Set builds a zero-duration tween that jumps target's attributes to the
// values set with Target on its first update.
func Set(reg *Registry, target any, tag TypeTag, kind int) *Tween {
	return new(Tween).setupSet(reg, target, tag, kind)
}

// Call builds a targetless tween that invokes cb when its delay elapses.
func Call(cb Callback) *Tween {
	return new(Tween).setupCall(cb)
}

// Mark builds an empty targetless tween, useful as a plain timer to hang
// callbacks on.
func Mark() *Tween {
	return new(Tween).setupMark()
}

func (t *Tween) setupTo(reg *Registry, target any, tag TypeTag, kind, durationMillis int) *Tween {
	t.setup(reg, target, tag, kind, durationMillis)
	t.equation = Linear
	return t
}

func (t *Tween) setupFrom(reg *Registry, target any, tag TypeTag, kind, durationMillis int) *Tween {
	t.setup(reg, target, tag, kind, durationMillis)
	t.equation = Linear
	t.isFrom = true
	return t
}

func (t *Tween) setupSet(reg *Registry, target any, tag TypeTag, kind int) *Tween {
	t.setup(reg, target, tag, kind, 0)
	t.equation = Linear
	return t
}

func (t *Tween) setupCall(cb Callback) *Tween {
	t.setup(nil, nil, 0, 0, 0)
	t.callbacks.Add(Start, cb)
	return t
}

func (t *Tween) setupMark() *Tween {
	return t.setup(nil, nil, 0, 0, 0)
}

// setup binds the tween to its target and resolves the channel count. A
// target without accessor capability, or an accessor reporting a channel
// count outside [1, MaxCombined], is a configuration error and panics.
func (t *Tween) setup(reg *Registry, target any, tag TypeTag, kind, durationMillis int) *Tween {
	t.target = target
	t.kind = kind
	t.duration = durationMillis

	if target != nil {
		t.accessor = resolveAccessor(reg, target, tag)

		var probe [MaxCombined]float64
		n := t.accessor.GetValues(target, kind, probe[:])
		if n < 1 || n > MaxCombined {
			panic("tween: accessor reported " + strconv.Itoa(n) +
				" channels, want 1 to " + strconv.Itoa(MaxCombined))
		}
		t.channels = n
	}
	return t
}

func (t *Tween) mustBeUnstarted(what string) {
	if t.started {
		panic("tween: cannot change " + what + " of a started tween")
	}
}

func (t *Tween) requireTarget() {
	if t.target == nil || t.accessor == nil {
		panic("tween: current target values require a target with an accessor")
	}
}

func checkValueCount(n int) {
	if n > MaxCombined {
		panic("tween: " + strconv.Itoa(n) + " target values exceed the limit of " +
			strconv.Itoa(MaxCombined))
	}
}

// Target sets the absolute destination values, one per channel.
func (t *Tween) Target(values ...float64) *Tween {
	t.mustBeUnstarted("targets")
	checkValueCount(len(values))
	copy(t.targetValues[:], values)
	return t
}

// TargetRelative sets destination values as offsets from the start snapshot.
// The offsets are resolved when the snapshot is taken; on an already
// initialized tween they resolve immediately.
func (t *Tween) TargetRelative(values ...float64) *Tween {
	t.mustBeUnstarted("targets")
	checkValueCount(len(values))
	for i, v := range values {
		if t.initialized {
			t.targetValues[i] = v + t.startValues[i]
		} else {
			t.targetValues[i] = v
		}
	}
	t.isRelative = true
	return t
}

// TargetCurrent sets the destination to the target's values as they are
// right now.
func (t *Tween) TargetCurrent() *Tween {
	t.mustBeUnstarted("targets")
	t.requireTarget()
	t.accessor.GetValues(t.target, t.kind, t.targetValues[:])
	return t
}

// TargetCurrentRelative sets the destination to the target's values as they
// are right now, shifted by the given offsets.
func (t *Tween) TargetCurrentRelative(values ...float64) *Tween {
	t.mustBeUnstarted("targets")
	t.requireTarget()
	checkValueCount(len(values))
	t.accessor.GetValues(t.target, t.kind, t.targetValues[:])
	for i, v := range values {
		t.targetValues[i] += v
	}
	return t
}

// Ease replaces the easing equation. To, From and Set preset Linear.
func (t *Tween) Ease(eq Equation) *Tween {
	t.mustBeUnstarted("easing")
	t.equation = eq
	return t
}

// Delay postpones initialization by millis. Repeated calls accumulate.
func (t *Tween) Delay(millis int) *Tween {
	t.mustBeUnstarted("delay")
	t.delay += millis
	return t
}

// Repeat replays the tween count more times, pausing delayMillis between
// passes. A negative count (Infinity) repeats without end; a negative pause
// is clamped to zero.
func (t *Tween) Repeat(count, delayMillis int) *Tween {
	t.mustBeUnstarted("repeat")
	t.repeatCount = count
	if delayMillis > 0 {
		t.repeatDelay = delayMillis
	} else {
		t.repeatDelay = 0
	}
	t.yoyo = false
	return t
}

// RepeatYoyo is Repeat with every second pass playing reversed.
func (t *Tween) RepeatYoyo(count, delayMillis int) *Tween {
	t.Repeat(count, delayMillis)
	t.yoyo = true
	return t
}

// AddCallback subscribes cb to ev's firing slot. Legal at any time, also on
// started tweens.
func (t *Tween) AddCallback(ev Event, cb Callback) *Tween {
	t.callbacks.Add(ev, cb)
	return t
}

// SetUserData attaches an application value to the tween.
func (t *Tween) SetUserData(v any) *Tween {
	t.userData = v
	return t
}

// Start arms the tween: the accumulator rewinds to zero and Update begins
// consuming deltas. Starting again re-arms timing without taking a fresh
// start snapshot.
func (t *Tween) Start() *Tween {
	t.current = 0
	t.started = true
	return t
}

// Kill marks the tween finished so a manager reaps it. The flag is
// recomputed from position by the next direct Update, so killed instances
// must be reaped (or dropped) before being updated again.
func (t *Tween) Kill() {
	t.finished = true
}

// IsFinished reports whether the tween has run off either end of its repeat
// range or has been killed.
func (t *Tween) IsFinished() bool {
	return t.finished
}

// Reset clears the configuration back to the zero state. Pool ownership is
// untouched; use Free to hand a pooled instance back.
func (t *Tween) Reset() {
	t.target = nil
	t.accessor = nil
	t.kind = 0
	t.equation = nil
	t.startValues = [MaxCombined]float64{}
	t.targetValues = [MaxCombined]float64{}
	t.channels = 0
	t.delay = 0
	t.duration = 0
	t.repeatDelay = 0
	t.repeatCount = 0
	t.yoyo = false
	t.current = 0
	t.iteration = 0
	t.betweenIterations = false
	t.started = false
	t.initialized = false
	t.finished = false
	t.isFrom = false
	t.isRelative = false
	t.callbacks.reset()
	t.userData = nil
}

// Free returns the instance to the pool it came from. Instances that were
// not acquired from a pool are left to the garbage collector.
func (t *Tween) Free() {
	if t.pool != nil {
		t.pool.Release(t)
	}
}

// GetTarget returns the tweened object, nil for targetless tweens.
func (t *Tween) GetTarget() any { return t.target }

// GetKind returns the attribute selector passed through to the accessor.
func (t *Tween) GetKind() int { return t.kind }

// GetEasing returns the easing equation in effect.
func (t *Tween) GetEasing() Equation { return t.equation }

// GetDuration returns the length of one pass in milliseconds.
func (t *Tween) GetDuration() int { return t.duration }

// GetDelay returns the accumulated start delay in milliseconds.
func (t *Tween) GetDelay() int { return t.delay }

// GetRepeatCount returns the configured repeat count; negative means
// infinite.
func (t *Tween) GetRepeatCount() int { return t.repeatCount }

// GetRepeatDelay returns the pause between passes in milliseconds.
func (t *Tween) GetRepeatDelay() int { return t.repeatDelay }

// GetChannelCount returns how many value channels the tween drives, 0 for
// targetless tweens.
func (t *Tween) GetChannelCount() int { return t.channels }

// GetTargetValues returns a copy of the destination values, one per channel.
func (t *Tween) GetTargetValues() []float64 {
	if t.channels == 0 {
		return nil
	}
	out := make([]float64, t.channels)
	copy(out, t.targetValues[:t.channels])
	return out
}

// GetUserData returns the value attached with SetUserData.
func (t *Tween) GetUserData() any { return t.userData }
