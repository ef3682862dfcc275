package apu

import "testing"

type stubBus struct {
	mem map[uint16]uint8
}

func (s *stubBus) PrgRead(addr uint16) uint8 { return s.mem[addr] }

func TestPulseLengthCounterStopsAtZero(t *testing.T) {
	p := newPulse(true)
	p.lengthEnabled = true
	p.length = 1

	p.clockLength()
	if p.length != 0 {
		t.Fatalf("length = %d, want 0", p.length)
	}
	p.clockLength()
	if p.length != 0 {
		t.Fatalf("length underflowed: %d, want 0", p.length)
	}
}

func TestPulseEnvelopeStartThenDecay(t *testing.T) {
	p := newPulse(true)
	p.env.start = true
	p.env.volume = 2

	p.env.clock() // consumes the start flag, sets decay=15, divider=volume
	if p.env.decay != 15 {
		t.Fatalf("decay after start = %d, want 15", p.env.decay)
	}

	for i := 0; i < 3; i++ {
		p.env.clock() // divider counts 2->1->0, then reloads and decays (volume+1 clocks)
	}
	if p.env.decay != 14 {
		t.Fatalf("decay after one full divider period = %d, want 14", p.env.decay)
	}
}

func TestSweepMutesLowPeriod(t *testing.T) {
	s := sweep{}
	if !s.muted(4) {
		t.Errorf("period 4 should be muted (below 8)")
	}
	if s.muted(100) {
		t.Errorf("period 100 with no shift should not be muted")
	}
}

func TestSweepOnesComplementVsTwosComplement(t *testing.T) {
	one := sweep{channelOne: true, negate: true, shift: 1}
	two := sweep{channelOne: false, negate: true, shift: 1}

	// period 100, shift 1: change = 50.
	if got := one.target(100); got != 100-50-1 {
		t.Errorf("pulse1 target = %d, want %d", got, 100-50-1)
	}
	if got := two.target(100); got != 100-50 {
		t.Errorf("pulse2 target = %d, want %d", got, 100-50)
	}
}

func TestNoiseLFSRFeedbackMode0(t *testing.T) {
	n := newNoise()
	n.shift = 1 // bit0=1, bit1=0 -> feedback = 1^0 = 1
	n.timer = 0
	n.periodIndex = 0

	n.clockTimer()
	if n.shift&0x4000 == 0 {
		t.Fatalf("feedback bit should have been fed into bit14")
	}
}

func TestNoiseOutputSilencedWhenLengthZero(t *testing.T) {
	n := newNoise()
	n.length = 0
	n.shift = 0 // bit0 clear, would otherwise be audible
	if got := n.output(); got != 0 {
		t.Errorf("output = %d, want 0 when length is 0", got)
	}
}

func TestDMCMemoryReaderRefillsAndWrapsAddress(t *testing.T) {
	bus := &stubBus{mem: map[uint16]uint8{0xFFFF: 0xAB}}
	d := newDMC()
	d.currentAddr = 0xFFFF
	d.bytesRemaining = 2

	d.clockMemoryReader(bus)
	if d.sampleBuffer != 0xAB {
		t.Fatalf("sampleBuffer = %02x, want 0xAB", d.sampleBuffer)
	}
	if d.currentAddr != 0x8000 {
		t.Fatalf("currentAddr after wrap = %04x, want 0x8000", d.currentAddr)
	}
	if d.bytesRemaining != 1 {
		t.Fatalf("bytesRemaining = %d, want 1", d.bytesRemaining)
	}
}

func TestDMCRaisesIRQOnSampleExhaustionWhenEnabled(t *testing.T) {
	bus := &stubBus{mem: map[uint16]uint8{0x8000: 0x00}}
	d := newDMC()
	d.irqEnable = true
	d.currentAddr = 0x8000
	d.bytesRemaining = 1

	d.clockMemoryReader(bus)
	if !d.irqFlag {
		t.Fatalf("irqFlag should be set once the sample is exhausted and IRQ is enabled")
	}
}

func TestFrameSequencerFourStepFiresIRQAtFinalTick(t *testing.T) {
	f := &frameSequencer{}
	var r frameResult
	for i := 0; i < frameStep4Four; i++ {
		r = f.tick()
	}
	if !r.reset || !r.half || !r.quarter {
		t.Fatalf("tick %d should be a full reset clock, got %+v", frameStep4Four, r)
	}
	if !f.irqFlag {
		t.Fatalf("4-step mode should set irqFlag at the final tick when not inhibited")
	}
}

func TestFrameSequencerFiveStepNeverSetsIRQ(t *testing.T) {
	f := &frameSequencer{fiveStep: true}
	for i := 0; i < frameStep4Five; i++ {
		f.tick()
	}
	if f.irqFlag {
		t.Fatalf("5-step mode must never set the frame IRQ")
	}
}

func TestWriteStatusDisablingChannelZeroesLength(t *testing.T) {
	a := New(&stubBus{mem: map[uint16]uint8{}})
	a.pulse1.lengthEnabled = true
	a.pulse1.length = 20

	a.writeStatus(0x00) // disable every channel
	if a.pulse1.length != 0 {
		t.Fatalf("pulse1.length = %d, want 0 after disabling", a.pulse1.length)
	}
}

func TestReadStatusReportsLengthBitsAndClearsFrameIRQ(t *testing.T) {
	a := New(&stubBus{mem: map[uint16]uint8{}})
	a.pulse1.lengthEnabled, a.pulse1.length = true, 5
	a.frame.irqFlag = true

	got := a.ReadReg(Status)
	if got&0x01 == 0 {
		t.Errorf("status bit 0 should report pulse1 length nonzero")
	}
	if got&0x80 == 0 {
		t.Errorf("status bit 7 should report the pending frame IRQ")
	}
	if a.frame.irqFlag {
		t.Errorf("reading status should clear the frame IRQ")
	}
}

func TestMixerFormula(t *testing.T) {
	a := New(&stubBus{mem: map[uint16]uint8{}})
	got := a.mix()
	// At power-on only the triangle contributes: its output is not gated
	// and sits at the first step of its sequence.
	want := 0.00851 * float64(triangleSequence[0])
	if got != want {
		t.Fatalf("mix() at power-on = %v, want %v (triangle only)", got, want)
	}
}
