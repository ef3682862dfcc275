package apu

// envelope is the volume decay unit shared by the pulse and noise
// channels: a start flag, a divider clocked once per quarter-frame,
// and a 4-bit decay counter that loops or holds at 0.
type envelope struct {
	start    bool
	loop     bool
	constant bool
	volume   uint8 // constant-volume level, or the divider's reload period

	divider uint8
	decay   uint8
}

// clock is called once per quarter-frame (envelope clock) by the
// frame sequencer.
func (e *envelope) clock() {
	if e.start {
		e.start = false
		e.decay = 15
		e.divider = e.volume
		return
	}
	if e.divider == 0 {
		e.divider = e.volume
		if e.decay > 0 {
			e.decay--
		} else if e.loop {
			e.decay = 15
		}
		return
	}
	e.divider--
}

// output returns the channel's current volume: the constant level if
// set, otherwise the decaying envelope value.
func (e *envelope) output() uint8 {
	if e.constant {
		return e.volume
	}
	return e.decay
}
