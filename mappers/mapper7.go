package mappers

import "github.com/bdwalton/gintendo/nesrom"

func init() {
	registerMapper(7, func() Mapper {
		return &axrom{baseMapper: newBaseMapper(7, "AxROM")}
	})
}

// axrom implements iNES mapper 7: a single switchable 32KB PRG bank
// filling the whole $8000-$FFFF window, plus single-screen mirroring
// selected by the bank register's bit 4. CHR is always RAM. Used by
// Battletoads, Rocket Ranger.
type axrom struct {
	*baseMapper
	prgBank uint8
}

func (m *axrom) Init(r *nesrom.ROM) {
	m.baseMapper.Init(r)
	m.mirror = MirrorSingleLower
}

func (m *axrom) Reset() { m.prgBank = 0; m.mirror = MirrorSingleLower }

func (m *axrom) PrgRead(addr uint16) uint8 {
	if addr < 0x8000 {
		return m.sramRead(addr)
	}
	return m.rom.PrgRead(uint16(m.prgBank)*0x8000 + (addr - 0x8000))
}

func (m *axrom) PrgWrite(addr uint16, val uint8) {
	if addr < 0x8000 {
		m.sramWrite(addr, val)
		return
	}
	m.prgBank = val & 0x07
	if val&0x10 != 0 {
		m.mirror = MirrorSingleUpper
	} else {
		m.mirror = MirrorSingleLower
	}
}

func (m *axrom) ChrRead(addr uint16) uint8      { return m.rom.ChrRead(addr) }
func (m *axrom) ChrWrite(addr uint16, val uint8) { m.rom.ChrWrite(addr, val) }

type axromState struct {
	Base    baseMapperState
	PrgBank uint8
}

func (m *axrom) SaveState() ([]byte, error) {
	return encodeState(axromState{Base: m.state(), PrgBank: m.prgBank})
}

func (m *axrom) LoadState(data []byte) error {
	var s axromState
	if err := decodeState(data, &s); err != nil {
		return err
	}
	m.restore(s.Base)
	m.prgBank = s.PrgBank
	return nil
}
