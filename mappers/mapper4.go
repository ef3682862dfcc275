package mappers

func init() {
	registerMapper(4, func() Mapper {
		return &mmc3{baseMapper: newBaseMapper(4, "MMC3")}
	})
}

// a12LowThreshold is the number of consecutive PPU cycles CHR address
// bit 12 must sit low before a rising edge is allowed to clock the
// scanline counter. The PPU's background/sprite fetch cadence toggles
// A12 multiple times within a single scanline; only the transition
// that follows the long idle stretch between sprite fetches and the
// next scanline's background fetches corresponds to a real scanline
// boundary. Real MMC3 hardware applies the same kind of debounce.
const a12LowThreshold = 13

// mmc3 implements iNES mapper 4 (MMC3/TxROM): two independently
// switchable 8KB PRG windows plus a fixed pair, six switchable CHR
// windows, and a scanline-driven IRQ counter clocked off CHR address
// bit 12. Used by Super Mario Bros. 3, Mega Man 3-6.
type mmc3 struct {
	*baseMapper

	bankSelect uint8
	prgMode    uint8 // 0: R6 swaps at $8000; 1: R6 swaps at $C000
	chrMode    uint8 // 0: 2KB banks at $0000; 1: 2KB banks at $1000
	regs       [8]uint8

	prgRAMEnabled      bool
	prgRAMWriteProtect bool

	irqLatch   uint8
	irqCounter uint8
	irqEnabled bool
	irqPending bool
	irqReload  bool

	a12Low  uint8
	lastA12 bool
}

func (m *mmc3) Reset() {
	*m = mmc3{baseMapper: m.baseMapper}
	m.prgRAMEnabled = true
}

func (m *mmc3) prgBanks() uint16 { return uint16(m.rom.PrgSize() / 0x2000) }

func (m *mmc3) PrgRead(addr uint16) uint8 {
	if addr < 0x8000 {
		if !m.prgRAMEnabled {
			return 0
		}
		return m.sramRead(addr)
	}

	last := m.prgBanks() - 1
	secondLast := last - 1
	var bank uint16
	switch {
	case addr < 0xA000:
		if m.prgMode == 0 {
			bank = uint16(m.regs[6])
		} else {
			bank = secondLast
		}
		return m.rom.PrgRead(bank*0x2000 + (addr - 0x8000))
	case addr < 0xC000:
		bank = uint16(m.regs[7])
		return m.rom.PrgRead(bank*0x2000 + (addr - 0xA000))
	case addr < 0xE000:
		if m.prgMode == 0 {
			bank = secondLast
		} else {
			bank = uint16(m.regs[6])
		}
		return m.rom.PrgRead(bank*0x2000 + (addr - 0xC000))
	default:
		return m.rom.PrgRead(last*0x2000 + (addr - 0xE000))
	}
}

func (m *mmc3) PrgWrite(addr uint16, val uint8) {
	switch {
	case addr < 0x8000:
		if m.prgRAMEnabled && !m.prgRAMWriteProtect {
			m.sramWrite(addr, val)
		}
	case addr < 0xA000:
		if addr&1 == 0 {
			m.bankSelect = val & 0x07
			m.prgMode = (val >> 6) & 0x01
			m.chrMode = (val >> 7) & 0x01
		} else {
			m.regs[m.bankSelect] = val
		}
	case addr < 0xC000:
		if addr&1 == 0 {
			if val&1 == 0 {
				m.mirror = MirrorVertical
			} else {
				m.mirror = MirrorHorizontal
			}
		} else {
			m.prgRAMWriteProtect = val&0x40 != 0
			m.prgRAMEnabled = val&0x80 != 0
		}
	case addr < 0xE000:
		if addr&1 == 0 {
			m.irqLatch = val
		} else {
			m.irqCounter = 0
			m.irqReload = true
		}
	default:
		if addr&1 == 0 {
			m.irqEnabled = false
			m.irqPending = false
		} else {
			m.irqEnabled = true
		}
	}
}

func (m *mmc3) ChrRead(addr uint16) uint8  { return m.rom.ChrRead(m.chrAddr(addr)) }
func (m *mmc3) ChrWrite(addr uint16, val uint8) {
	if m.rom.HasChrRAM() {
		m.rom.ChrWrite(m.chrAddr(addr), val)
	}
}

func (m *mmc3) chrAddr(addr uint16) uint16 {
	addr &= 0x1FFF
	a := addr
	if m.chrMode == 1 {
		a ^= 0x1000
	}
	switch {
	case a < 0x0800:
		return uint16(m.regs[0]&0xFE)*0x400 + a
	case a < 0x1000:
		return uint16(m.regs[1]&0xFE)*0x400 + (a - 0x0800)
	case a < 0x1400:
		return uint16(m.regs[2])*0x400 + (a - 0x1000)
	case a < 0x1800:
		return uint16(m.regs[3])*0x400 + (a - 0x1400)
	case a < 0x1C00:
		return uint16(m.regs[4])*0x400 + (a - 0x1800)
	default:
		return uint16(m.regs[5])*0x400 + (a - 0x1C00)
	}
}

func (m *mmc3) IRQLine() bool { return m.irqPending }

// ClockA12 is driven by the PPU with the CHR address of every pattern
// fetch; it implements the debounced A12 rising-edge detector that
// drives the scanline counter.
func (m *mmc3) ClockA12(addr uint16) {
	high := addr&0x1000 != 0
	if high {
		if !m.lastA12 && m.a12Low >= a12LowThreshold {
			m.clockScanlineCounter()
		}
		m.a12Low = 0
	} else if m.a12Low < 255 {
		m.a12Low++
	}
	m.lastA12 = high
}

type mmc3State struct {
	Base baseMapperState

	BankSelect uint8
	PrgMode    uint8
	ChrMode    uint8
	Regs       [8]uint8

	PrgRAMEnabled      bool
	PrgRAMWriteProtect bool

	IRQLatch   uint8
	IRQCounter uint8
	IRQEnabled bool
	IRQPending bool
	IRQReload  bool

	A12Low  uint8
	LastA12 bool
}

func (m *mmc3) SaveState() ([]byte, error) {
	return encodeState(mmc3State{
		Base:               m.state(),
		BankSelect:         m.bankSelect,
		PrgMode:            m.prgMode,
		ChrMode:            m.chrMode,
		Regs:               m.regs,
		PrgRAMEnabled:      m.prgRAMEnabled,
		PrgRAMWriteProtect: m.prgRAMWriteProtect,
		IRQLatch:           m.irqLatch,
		IRQCounter:         m.irqCounter,
		IRQEnabled:         m.irqEnabled,
		IRQPending:         m.irqPending,
		IRQReload:          m.irqReload,
		A12Low:             m.a12Low,
		LastA12:            m.lastA12,
	})
}

func (m *mmc3) LoadState(data []byte) error {
	var s mmc3State
	if err := decodeState(data, &s); err != nil {
		return err
	}
	m.restore(s.Base)
	m.bankSelect = s.BankSelect
	m.prgMode, m.chrMode = s.PrgMode, s.ChrMode
	m.regs = s.Regs
	m.prgRAMEnabled = s.PrgRAMEnabled
	m.prgRAMWriteProtect = s.PrgRAMWriteProtect
	m.irqLatch, m.irqCounter = s.IRQLatch, s.IRQCounter
	m.irqEnabled, m.irqPending, m.irqReload = s.IRQEnabled, s.IRQPending, s.IRQReload
	m.a12Low, m.lastA12 = s.A12Low, s.LastA12
	return nil
}

func (m *mmc3) clockScanlineCounter() {
	if m.irqCounter == 0 || m.irqReload {
		m.irqCounter = m.irqLatch
		m.irqReload = false
	} else {
		m.irqCounter--
	}
	if m.irqCounter == 0 && m.irqEnabled {
		m.irqPending = true
	}
}
