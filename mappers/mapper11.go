package mappers

func init() {
	registerMapper(11, func() Mapper {
		return &colorDreams{baseMapper: newBaseMapper(11, "Color Dreams")}
	})
}

// colorDreams implements iNES mapper 11: a single register at
// $8000-$FFFF packs both the 32KB PRG bank (low 2 bits) and the 8KB
// CHR bank (high nibble) selection. Mirroring is fixed by the header.
// Used by Crystal Mines, Metal Fighter.
type colorDreams struct {
	*baseMapper
	prgBank uint8
	chrBank uint8
}

func (m *colorDreams) Reset() { m.prgBank, m.chrBank = 0, 0 }

func (m *colorDreams) PrgRead(addr uint16) uint8 {
	if addr < 0x8000 {
		return m.sramRead(addr)
	}
	return m.rom.PrgRead(uint16(m.prgBank)*0x8000 + (addr - 0x8000))
}

func (m *colorDreams) PrgWrite(addr uint16, val uint8) {
	if addr < 0x8000 {
		m.sramWrite(addr, val)
		return
	}
	m.prgBank = val & 0x03
	m.chrBank = (val >> 4) & 0x0F
}

func (m *colorDreams) ChrRead(addr uint16) uint8 {
	return m.rom.ChrRead(uint16(m.chrBank)*0x2000 + addr)
}

func (m *colorDreams) ChrWrite(addr uint16, val uint8) {
	if m.rom.HasChrRAM() {
		m.rom.ChrWrite(uint16(m.chrBank)*0x2000+addr, val)
	}
}

type colorDreamsState struct {
	Base    baseMapperState
	PrgBank uint8
	ChrBank uint8
}

func (m *colorDreams) SaveState() ([]byte, error) {
	return encodeState(colorDreamsState{Base: m.state(), PrgBank: m.prgBank, ChrBank: m.chrBank})
}

func (m *colorDreams) LoadState(data []byte) error {
	var s colorDreamsState
	if err := decodeState(data, &s); err != nil {
		return err
	}
	m.restore(s.Base)
	m.prgBank, m.chrBank = s.PrgBank, s.ChrBank
	return nil
}
