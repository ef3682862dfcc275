package mappers

import "github.com/bdwalton/gintendo/nesrom"

// dummyMapper is a trivial flat-memory Mapper for unit tests that
// don't care about bank switching: PRG and CHR space are each backed
// by a plain byte slice addressed directly.
type dummyMapper struct {
	prg, chr []uint8
	mm       uint8
	irq      bool
}

// NewDummy returns a fresh dummy mapper with 32KB of PRG and 8KB of
// CHR, both read/write, for use in package tests across the module.
func NewDummy() Mapper {
	return &dummyMapper{
		prg: make([]uint8, 0x8000),
		chr: make([]uint8, 0x2000),
	}
}

func (dm *dummyMapper) ID() uint16       { return 0xFFFF }
func (dm *dummyMapper) Name() string     { return "dummy" }
func (dm *dummyMapper) Init(*nesrom.ROM) {}
func (dm *dummyMapper) Reset()           {}

func (dm *dummyMapper) PrgRead(addr uint16) uint8 {
	if addr < 0x8000 {
		return 0
	}
	return dm.prg[addr-0x8000]
}

func (dm *dummyMapper) PrgWrite(addr uint16, val uint8) {
	if addr < 0x8000 {
		return
	}
	dm.prg[addr-0x8000] = val
}

func (dm *dummyMapper) ChrRead(addr uint16) uint8       { return dm.chr[addr] }
func (dm *dummyMapper) ChrWrite(addr uint16, val uint8) { dm.chr[addr] = val }

func (dm *dummyMapper) MirrorMode() uint8 { return dm.mm }

// SetMirrorMode lets tests pick a nametable layout without going
// through a ROM header.
func (dm *dummyMapper) SetMirrorMode(mm uint8) { dm.mm = mm }

func (dm *dummyMapper) IRQLine() bool { return dm.irq }

// SetIRQLine lets tests force the mapper's IRQ line for bus/clock
// wiring tests.
func (dm *dummyMapper) SetIRQLine(v bool) { dm.irq = v }
