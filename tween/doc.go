// Package tween implements a time-stepping interpolation engine. A Tween
// drives one or more numeric attributes of a single target object from their
// current values toward configured destination values, shaping the motion
// with an easing equation and honoring start delays, finite or infinite
// repeats, and yoyo (ping-pong) playback.
//
// Attribute access is decoupled from the engine through the Accessor
// interface: the application registers one Accessor per target type in a
// Registry, keyed by an integer TypeTag, and selects which attribute set a
// tween drives with an integer kind. Targets may instead implement Accessor
// themselves.
//
// Time flows only through Update, as signed millisecond deltas supplied by
// the caller. Negative deltas rewind. A Manager batches instances under one
// clock and reaps them when they finish; a Pool recycles instances for
// allocation-heavy workloads.
//
//	reg := tween.NewRegistry()
//	reg.Register(spriteTag, spriteAccessor{})
//
//	t := tween.To(reg, sprite, spriteTag, kindPosition, 500).
//		Target(120, 80).
//		Delay(100).
//		RepeatYoyo(1, 0).
//		Start()
//
//	for running {
//		t.Update(frameMillis)
//	}
//
// Instances are not safe for concurrent use; drive each instance (or each
// Manager) from a single goroutine.
package tween
