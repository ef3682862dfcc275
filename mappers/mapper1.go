package mappers

import "github.com/bdwalton/gintendo/nesrom"

func init() {
	registerMapper(1, func() Mapper {
		return &mmc1{baseMapper: newBaseMapper(1, "MMC1"), prgMode: 3}
	})
}

// mmc1 implements iNES mapper 1 (MMC1, "SxROM"). Every write to
// $8000-$FFFF feeds a 5-bit shift register one bit at a time, least
// significant bit first; the fifth write copies the accumulated value
// into one of four internal registers selected by the address range.
// A write with bit 7 set resets the shift register immediately and
// forces PRG mode 3 (fix last bank at $C000), regardless of where it
// lands. Used by The Legend of Zelda, Metroid, Mega Man 2.
type mmc1 struct {
	*baseMapper

	shift      uint8
	shiftCount uint8

	prgMode uint8 // 0/1: 32KB; 2: fix first bank; 3: fix last bank
	chrMode uint8 // 0: 8KB CHR bank; 1: two 4KB CHR banks

	chrBank0, chrBank1 uint8
	prgBank            uint8

	prgRAMEnabled bool
}

func (m *mmc1) Init(r *nesrom.ROM) {
	m.baseMapper.Init(r)
	m.prgRAMEnabled = true
}

func (m *mmc1) Reset() {
	m.shift, m.shiftCount = 0, 0
	m.prgMode = 3
	m.chrMode = 0
	m.chrBank0, m.chrBank1, m.prgBank = 0, 0, 0
	m.prgRAMEnabled = true
}

func (m *mmc1) prgBanks() uint16 { return uint16(m.rom.PrgSize() / 0x4000) }

func (m *mmc1) PrgRead(addr uint16) uint8 {
	if addr < 0x8000 {
		if !m.prgRAMEnabled {
			return 0
		}
		return m.sramRead(addr)
	}

	var bank uint16
	switch {
	case addr < 0xC000:
		switch m.prgMode {
		case 0, 1:
			bank = uint16(m.prgBank &^ 1)
		case 2:
			bank = 0
		case 3:
			bank = uint16(m.prgBank)
		}
		return m.rom.PrgRead(bank*0x4000 + (addr - 0x8000))
	default:
		switch m.prgMode {
		case 0, 1:
			bank = uint16(m.prgBank) | 1
		case 2:
			bank = uint16(m.prgBank)
		case 3:
			bank = m.prgBanks() - 1
		}
		return m.rom.PrgRead(bank*0x4000 + (addr - 0xC000))
	}
}

func (m *mmc1) PrgWrite(addr uint16, val uint8) {
	if addr < 0x8000 {
		if m.prgRAMEnabled {
			m.sramWrite(addr, val)
		}
		return
	}

	if val&0x80 != 0 {
		m.shift, m.shiftCount = 0, 0
		m.prgMode = 3
		return
	}

	m.shift = m.shift>>1 | (val&1)<<4
	m.shiftCount++
	if m.shiftCount < 5 {
		return
	}

	value := m.shift
	m.shift, m.shiftCount = 0, 0

	switch {
	case addr < 0xA000: // control
		switch value & 0x03 {
		case 0:
			m.mirror = MirrorSingleLower
		case 1:
			m.mirror = MirrorSingleUpper
		case 2:
			m.mirror = MirrorVertical
		case 3:
			m.mirror = MirrorHorizontal
		}
		m.prgMode = (value >> 2) & 0x03
		m.chrMode = (value >> 4) & 0x01
	case addr < 0xC000: // CHR bank 0
		m.chrBank0 = value & 0x1F
	case addr < 0xE000: // CHR bank 1
		m.chrBank1 = value & 0x1F
	default: // PRG bank
		m.prgBank = value & 0x0F
		m.prgRAMEnabled = value&0x10 == 0
	}
}

func (m *mmc1) ChrRead(addr uint16) uint8 {
	return m.rom.ChrRead(m.chrAddr(addr))
}

func (m *mmc1) ChrWrite(addr uint16, val uint8) {
	if m.rom.HasChrRAM() {
		m.rom.ChrWrite(m.chrAddr(addr), val)
	}
}

func (m *mmc1) chrAddr(addr uint16) uint16 {
	if m.chrMode == 0 {
		bank := uint16(m.chrBank0 &^ 1)
		return bank*0x1000 + addr
	}
	if addr < 0x1000 {
		return uint16(m.chrBank0)*0x1000 + addr
	}
	return uint16(m.chrBank1)*0x1000 + (addr - 0x1000)
}

type mmc1State struct {
	Base baseMapperState

	Shift, ShiftCount  uint8
	PrgMode, ChrMode   uint8
	ChrBank0, ChrBank1 uint8
	PrgBank            uint8
	PrgRAMEnabled      bool
}

func (m *mmc1) SaveState() ([]byte, error) {
	return encodeState(mmc1State{
		Base:          m.state(),
		Shift:         m.shift,
		ShiftCount:    m.shiftCount,
		PrgMode:       m.prgMode,
		ChrMode:       m.chrMode,
		ChrBank0:      m.chrBank0,
		ChrBank1:      m.chrBank1,
		PrgBank:       m.prgBank,
		PrgRAMEnabled: m.prgRAMEnabled,
	})
}

func (m *mmc1) LoadState(data []byte) error {
	var s mmc1State
	if err := decodeState(data, &s); err != nil {
		return err
	}
	m.restore(s.Base)
	m.shift, m.shiftCount = s.Shift, s.ShiftCount
	m.prgMode, m.chrMode = s.PrgMode, s.ChrMode
	m.chrBank0, m.chrBank1 = s.ChrBank0, s.ChrBank1
	m.prgBank = s.PrgBank
	m.prgRAMEnabled = s.PrgRAMEnabled
	return nil
}
