package mappers

func init() {
	registerMapper(3, func() Mapper {
		return &cnrom{baseMapper: newBaseMapper(3, "CNROM")}
	})
}

// cnrom implements iNES mapper 3: fixed PRG (16 or 32KB, mirrored the
// same way as NROM) and a single switchable 8KB CHR bank. Used by
// games with no need for PRG banking but larger graphics sets, e.g.
// Gradius, Adventure Island.
type cnrom struct {
	*baseMapper
	chrBank uint8
}

func (m *cnrom) Reset() { m.chrBank = 0 }

func (m *cnrom) PrgRead(addr uint16) uint8 {
	if addr < 0x8000 {
		return m.sramRead(addr)
	}
	off := uint32(addr - 0x8000)
	return m.rom.PrgRead(uint16(off % uint32(m.rom.PrgSize())))
}

func (m *cnrom) PrgWrite(addr uint16, val uint8) {
	if addr < 0x8000 {
		m.sramWrite(addr, val)
		return
	}
	// CNROM's bus conflict behavior is a non-goal; any write to ROM
	// space selects the CHR bank from the low bits of val.
	m.chrBank = val & 0x03
}

func (m *cnrom) ChrRead(addr uint16) uint8 {
	return m.rom.ChrRead(uint16(m.chrBank)*0x2000 + addr)
}

func (m *cnrom) ChrWrite(addr uint16, val uint8) {
	if m.rom.HasChrRAM() {
		m.rom.ChrWrite(uint16(m.chrBank)*0x2000+addr, val)
	}
}

type cnromState struct {
	Base    baseMapperState
	ChrBank uint8
}

func (m *cnrom) SaveState() ([]byte, error) {
	return encodeState(cnromState{Base: m.state(), ChrBank: m.chrBank})
}

func (m *cnrom) LoadState(data []byte) error {
	var s cnromState
	if err := decodeState(data, &s); err != nil {
		return err
	}
	m.restore(s.Base)
	m.chrBank = s.ChrBank
	return nil
}
