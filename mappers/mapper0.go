package mappers

func init() {
	registerMapper(0, func() Mapper {
		return &nrom{baseMapper: newBaseMapper(0, "NROM")}
	})
}

// nrom implements iNES mapper 0: no bank switching at all. 16KB PRG
// ROMs are mirrored across both $8000-$BFFF and $C000-$FFFF; 32KB
// ROMs fill the whole window. CHR is either a single fixed 8KB ROM
// bank or CHR RAM.
type nrom struct {
	*baseMapper
}

func (m *nrom) Reset() {}

func (m *nrom) PrgRead(addr uint16) uint8 {
	if addr < 0x8000 {
		return m.sramRead(addr)
	}
	off := uint32(addr - 0x8000)
	return m.rom.PrgRead(uint16(off % uint32(m.rom.PrgSize())))
}

func (m *nrom) PrgWrite(addr uint16, val uint8) {
	if addr < 0x8000 {
		m.sramWrite(addr, val)
	}
	// PRG-ROM is not writable.
}

func (m *nrom) ChrRead(addr uint16) uint8 { return m.rom.ChrRead(addr) }

func (m *nrom) ChrWrite(addr uint16, val uint8) {
	if m.rom.HasChrRAM() {
		m.rom.ChrWrite(addr, val)
	}
}

type nromState struct {
	Base baseMapperState
}

func (m *nrom) SaveState() ([]byte, error) { return encodeState(nromState{Base: m.state()}) }

func (m *nrom) LoadState(data []byte) error {
	var s nromState
	if err := decodeState(data, &s); err != nil {
		return err
	}
	m.restore(s.Base)
	return nil
}
