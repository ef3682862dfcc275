package mappers

func init() {
	registerMapper(2, func() Mapper {
		return &uxrom{baseMapper: newBaseMapper(2, "UxROM")}
	})
}

// uxrom implements iNES mapper 2: a single switchable 16KB PRG bank
// at $8000-$BFFF, with $C000-$FFFF fixed to the last bank. CHR is
// always RAM (8KB), since UxROM boards never ship CHR ROM.
type uxrom struct {
	*baseMapper
	prgBank uint8
}

func (m *uxrom) Reset() { m.prgBank = 0 }

func (m *uxrom) prgBanks() uint16 { return uint16(m.rom.PrgSize() / 0x4000) }

func (m *uxrom) PrgRead(addr uint16) uint8 {
	switch {
	case addr < 0x8000:
		return m.sramRead(addr)
	case addr < 0xC000:
		return m.rom.PrgRead(uint16(m.prgBank)*0x4000 + (addr - 0x8000))
	default:
		last := m.prgBanks() - 1
		return m.rom.PrgRead(last*0x4000 + (addr - 0xC000))
	}
}

func (m *uxrom) PrgWrite(addr uint16, val uint8) {
	switch {
	case addr < 0x8000:
		m.sramWrite(addr, val)
	default:
		m.prgBank = val & 0x0F
	}
}

func (m *uxrom) ChrRead(addr uint16) uint8      { return m.rom.ChrRead(addr) }
func (m *uxrom) ChrWrite(addr uint16, val uint8) { m.rom.ChrWrite(addr, val) }

type uxromState struct {
	Base    baseMapperState
	PrgBank uint8
}

func (m *uxrom) SaveState() ([]byte, error) {
	return encodeState(uxromState{Base: m.state(), PrgBank: m.prgBank})
}

func (m *uxrom) LoadState(data []byte) error {
	var s uxromState
	if err := decodeState(data, &s); err != nil {
		return err
	}
	m.restore(s.Base)
	m.prgBank = s.PrgBank
	return nil
}
