package apu

// Frame-sequencer cycle boundaries, in CPU cycles since the last
// mode-write reset (or power-on). Both modes share the first three;
// 4-step mode fires its final quarter/half-frame clock (plus IRQ) at
// 14915, 5-step mode at 18641 with no IRQ.
const (
	frameStep1     = 3729
	frameStep2     = 7457
	frameStep3     = 11186
	frameStep4Four = 14915
	frameStep4Five = 18641
)

// frameSequencer tracks the APU's internal cycle counter and dispatches
// quarter-frame (envelope/linear) and half-frame (length/sweep) clocks
// at the cycle counts spec.md documents.
type frameSequencer struct {
	cycle      uint16
	fiveStep   bool
	irqInhibit bool
	irqFlag    bool
}

// result reports which clock categories fire on this cycle, and
// whether the sequencer should reset afterward.
type frameResult struct {
	quarter bool
	half    bool
	reset   bool
}

func (f *frameSequencer) tick() frameResult {
	f.cycle++

	var r frameResult
	switch f.cycle {
	case frameStep1:
		r.quarter = true
	case frameStep2:
		r.quarter, r.half = true, true
	case frameStep3:
		r.quarter = true
	case frameStep4Four:
		if !f.fiveStep {
			r.quarter, r.half, r.reset = true, true, true
			if !f.irqInhibit {
				f.irqFlag = true
			}
		}
	case frameStep4Five:
		if f.fiveStep {
			r.quarter, r.half, r.reset = true, true, true
		}
	}
	if r.reset {
		f.cycle = 0
	}
	return r
}

// writeMode handles a $4017 write: mode select, IRQ inhibit, and an
// immediate sequencer reset. A 5-step write also immediately clocks
// quarter/half-frame units (real hardware does this one or two CPU
// cycles later depending on write alignment; approximated here as
// immediate, a documented simplification).
func (f *frameSequencer) writeMode(v uint8) frameResult {
	f.fiveStep = v&0x80 != 0
	f.irqInhibit = v&0x40 != 0
	f.cycle = 0
	if f.irqInhibit {
		f.irqFlag = false
	}
	if f.fiveStep {
		return frameResult{quarter: true, half: true}
	}
	return frameResult{}
}
