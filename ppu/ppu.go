// Package ppu implements the NES Picture Processing Unit: background
// and sprite compositing, the full register interface at
// $2000-$2007, and vblank/NMI timing.
package ppu

import "fmt"

const (
	VRAM_SIZE    = 2048
	OAM_SIZE     = 256
	PALETTE_SIZE = 32
)

// Display constants
const (
	NES_RES_WIDTH  = 256
	NES_RES_HEIGHT = 240

	scanlinesPerFrame = 262
	dotsPerScanline   = 341
	postRenderLine    = 240
	vblankStartLine   = 241
	preRenderLine     = 261
)

// Register addresses, mirrored every 8 bytes between $2000 and $3FFF.
const (
	PPUCTRL   = 0x2000
	PPUMASK   = 0x2001
	PPUSTATUS = 0x2002
	OAMADDR   = 0x2003
	OAMDATA   = 0x2004
	PPUSCROLL = 0x2005
	PPUADDR   = 0x2006
	PPUDATA   = 0x2007
	OAMDMA    = 0x4014
)

// Mirroring modes. Values match mappers.Mirror* exactly since a
// mapper's MirrorMode() return value flows straight into nametableAddr.
const (
	MIRROR_HORIZONTAL = iota
	MIRROR_VERTICAL
	MIRROR_FOUR_SCREEN
	MIRROR_SINGLE_LOWER
	MIRROR_SINGLE_UPPER
)

// Bus is the set of capabilities the PPU needs from its host: CHR
// access through the cartridge mapper, the mapper's scanline IRQ edge
// detector, NMI delivery to the CPU, and the caller-provided
// video-sink that receives one palette index per visible dot.
type Bus interface {
	ChrRead(addr uint16) uint8
	ChrWrite(addr uint16, val uint8)
	ClockA12(addr uint16)
	MirrorMode() uint8
	TriggerNMI()
	EmitPixel(index uint8, emphasis uint8)
}

type PPU struct {
	bus Bus

	vram       [VRAM_SIZE]uint8
	paletteRAM [PALETTE_SIZE]uint8
	oam        [OAM_SIZE]uint8

	ctrl, mask, status uint8
	oamAddr            uint8

	v, t  loopy
	fineX uint8
	w     writeToggle

	busLatch   uint8
	readBuffer uint8

	// Background pipeline: two 16-bit tile shift registers (current
	// tile in the high byte, next tile reloaded into the low byte)
	// and two 1-bit attribute latches feeding two 8-bit shift
	// registers, reloaded every 8 dots and shifted every dot, exactly
	// as the real PPU's fetch/shift pipeline works.
	tileRegLo, tileRegHi     uint16
	tileLatchLo, tileLatchHi uint8
	attrRegLo, attrRegHi     uint8
	attrLatchLo, attrLatchHi uint8
	ntByte, atByte           uint8

	// Sprites visible on the scanline currently being rendered,
	// evaluated at dot 257 of the previous scanline against that
	// scanline's Y range (an OAM Y value is the sprite's desired top
	// row minus one, so this lines up with rendering one line later).
	sprites  [8]spriteSlot
	nSprites int

	scanline int
	dot      int
	frame    uint64
	oddFrame bool
}

func New(bus Bus) *PPU {
	return &PPU{bus: bus, scanline: preRenderLine}
}

func (p *PPU) Reset() {
	*p = PPU{bus: p.bus, scanline: preRenderLine}
}

func (p *PPU) String() string {
	return fmt.Sprintf("PPU scanline=%d dot=%d frame=%d ctrl=%02x mask=%02x status=%02x v=%04x t=%04x",
		p.scanline, p.dot, p.frame, p.ctrl, p.mask, p.status, p.v.data, p.t.data)
}

func (p *PPU) GetResolution() (int, int) { return NES_RES_WIDTH, NES_RES_HEIGHT }

// State is the gob-encodable snapshot of everything a PPU needs to
// resume mid-frame: nametable/palette/OAM RAM, the register file, the
// loopy v/t registers and write toggle, and the scanline/dot/frame
// counters. The host-owned Bus (mapper, video sink) is not part of it.
type State struct {
	VRAM       [VRAM_SIZE]uint8
	PaletteRAM [PALETTE_SIZE]uint8
	OAM        [OAM_SIZE]uint8

	Ctrl, Mask, Status uint8
	OAMAddr            uint8

	V, T    uint16
	FineX   uint8
	WSecond bool

	BusLatch   uint8
	ReadBuffer uint8

	Scanline int
	Dot      int
	Frame    uint64
	OddFrame bool
}

// Snapshot captures the PPU's current state for save-state purposes.
func (p *PPU) Snapshot() State {
	return State{
		VRAM:       p.vram,
		PaletteRAM: p.paletteRAM,
		OAM:        p.oam,
		Ctrl:       p.ctrl,
		Mask:       p.mask,
		Status:     p.status,
		OAMAddr:    p.oamAddr,
		V:          p.v.data,
		T:          p.t.data,
		FineX:      p.fineX,
		WSecond:    p.w.second,
		BusLatch:   p.busLatch,
		ReadBuffer: p.readBuffer,
		Scanline:   p.scanline,
		Dot:        p.dot,
		Frame:      p.frame,
		OddFrame:   p.oddFrame,
	}
}

// Restore replaces the PPU's state with a previously captured
// Snapshot. The Bus the PPU was constructed with is left untouched.
func (p *PPU) Restore(s State) {
	p.vram = s.VRAM
	p.paletteRAM = s.PaletteRAM
	p.oam = s.OAM
	p.ctrl = s.Ctrl
	p.mask = s.Mask
	p.status = s.Status
	p.oamAddr = s.OAMAddr
	p.v.data = s.V
	p.t.data = s.T
	p.fineX = s.FineX
	p.w.second = s.WSecond
	p.busLatch = s.BusLatch
	p.readBuffer = s.ReadBuffer
	p.scanline = s.Scanline
	p.dot = s.Dot
	p.frame = s.Frame
	p.oddFrame = s.OddFrame
}

func (p *PPU) renderingEnabled() bool { return p.mask&(maskShowBG|maskShowSpr) != 0 }

// Tick advances the PPU by exactly one dot. The host is responsible
// for calling it three times per CPU cycle on NTSC hardware.
func (p *PPU) Tick() {
	switch {
	case p.scanline == preRenderLine && p.dot == 1:
		p.status &^= statusVBlank | statusSprite0 | statusOverflow
	case p.scanline == vblankStartLine && p.dot == 1:
		p.status |= statusVBlank
		if p.ctrl&ctrlGenerateNMI != 0 {
			p.bus.TriggerNMI()
		}
	}

	if p.scanline < NES_RES_HEIGHT || p.scanline == preRenderLine {
		p.tickRenderScanline()
	}

	p.advanceDot()
}

// tickRenderScanline drives the background/sprite fetch pipeline for
// one dot of a visible scanline or the pre-render line, matching the
// real PPU's per-dot cadence: tile/attribute/pattern bytes are
// fetched two cycles apart and the shift registers reload and shift
// every 8 dots, so register writes mid-scanline (raster-split scroll
// and pattern-bank tricks) take effect before the dots that follow
// them, not just at the next scanline boundary.
func (p *PPU) tickRenderScanline() {
	switch {
	case p.dot == 0:
		// Idle dot.
	case p.dot >= 1 && p.dot <= NES_RES_WIDTH:
		p.tickRenderCycle()
	case p.dot >= 257 && p.dot <= 320:
		p.tickSpriteFetchCycle()
	case p.dot >= 321 && p.dot <= 336:
		p.tickPrefetchCycle()
	default: // 337-340
		p.tickUnknownFetch()
	}

	p.handleScrolling()
}

func (p *PPU) tickRenderCycle() {
	if p.dot%8 == 1 {
		p.reloadShiftRegisters()
	}
	p.fetchTileData()

	if p.scanline != preRenderLine {
		p.renderPixel()
	}

	p.shiftRegisters()
}

// tickSpriteFetchCycle covers dots 257-320: the background pipeline
// reloads once more for the first tile of the next fetch window, and
// (at dot 257 only) the sprites visible on the scanline that just
// finished are evaluated from OAM, to be rendered one scanline later.
func (p *PPU) tickSpriteFetchCycle() {
	if p.dot != 257 {
		return
	}

	p.reloadShiftRegisters()

	if p.scanline != preRenderLine && p.mask&maskShowSpr != 0 {
		p.nSprites = p.evaluateSprites(p.scanline, p.sprites[:])
	} else {
		p.nSprites = 0
	}
}

// tickPrefetchCycle covers dots 321-336: the first two tiles of the
// next scanline are fetched and shifted into the background registers
// ahead of that scanline's dot 1.
func (p *PPU) tickPrefetchCycle() {
	if p.dot%8 == 1 {
		p.reloadShiftRegisters()
	}
	p.fetchTileData()
	p.shiftRegisters()
}

// tickUnknownFetch covers dots 337-340: the nametable byte at v is read
// on each of these dots for no rendering purpose. The read stays inside
// the PPU's nametable RAM and is not reported to the mapper's A12 edge
// detector.
func (p *PPU) tickUnknownFetch() {
	ntAddr := uint16(0x2000) | (p.v.data & 0x0FFF)
	p.ntByte = p.vramRead(ntAddr)
}

// reloadShiftRegisters loads the low byte of each tile shift register
// from the latch filled by the last pattern-byte fetch, and mux the
// freshly-fetched attribute byte's two bits into the 1-bit latches
// that feed the attribute shift registers.
func (p *PPU) reloadShiftRegisters() {
	p.tileRegLo = (p.tileRegLo &^ 0x00FF) | uint16(p.tileLatchLo)
	p.tileRegHi = (p.tileRegHi &^ 0x00FF) | uint16(p.tileLatchHi)
	p.attrLatchLo = p.atByte & 1
	p.attrLatchHi = (p.atByte >> 1) & 1
}

func (p *PPU) shiftRegisters() {
	p.tileRegLo <<= 1
	p.tileRegHi <<= 1
	p.attrRegLo = (p.attrRegLo << 1) | p.attrLatchLo
	p.attrRegHi = (p.attrRegHi << 1) | p.attrLatchHi
}

// fetchTileData performs the four two-cycle-apart memory reads that
// feed the background pipeline: nametable byte, attribute byte, then
// the tile's low and high pattern-table planes.
func (p *PPU) fetchTileData() {
	switch p.dot % 8 {
	case 1:
		ntAddr := uint16(0x2000) | (p.v.data & 0x0FFF)
		p.ntByte = p.vramRead(ntAddr)
	case 3:
		coarseX, coarseY := p.v.coarseX(), p.v.coarseY()
		atAddr := uint16(0x23C0) | (p.v.data & 0x0C00) | ((coarseY << 1) & 0x38) | ((coarseX >> 2) & 0x07)
		shift := ((coarseY << 1) & 4) | (coarseX & 2)
		p.atByte = p.vramRead(atAddr) >> shift
	case 5:
		addr := p.bgPatternBase() | (uint16(p.ntByte) << 4) | p.v.fineY()
		p.tileLatchLo = p.patternRead(addr)
	case 7:
		addr := p.bgPatternBase() | (uint16(p.ntByte) << 4) | 0x8 | p.v.fineY()
		p.tileLatchHi = p.patternRead(addr)
	}
}

func (p *PPU) bgPatternBase() uint16 {
	if p.ctrl&ctrlBGPattern != 0 {
		return 0x1000
	}
	return 0
}

// renderPixel composites the background and sprite shift-register
// output for the dot currently being drawn (dot 1 draws screen column
// 0) and emits it to the video sink.
func (p *PPU) renderPixel() {
	x := p.dot - 1

	var bgPixel uint8
	if p.mask&maskShowBG != 0 && (x >= 8 || p.mask&maskShowBGLeft != 0) {
		bit := uint(15 - p.fineX)
		lo := uint8(p.tileRegLo>>bit) & 1
		hi := uint8(p.tileRegHi>>bit) & 1
		if colour := hi<<1 | lo; colour != 0 {
			pbit := 7 - p.fineX
			palLo := (p.attrRegLo >> pbit) & 1
			palHi := (p.attrRegHi >> pbit) & 1
			bgPixel = (palHi<<1|palLo)<<2 | colour
		}
	}

	var sprPixel uint8
	var sprFront, sprZero bool
	if p.mask&maskShowSpr != 0 && (x >= 8 || p.mask&maskShowSprLeft != 0) {
		for s := 0; s < p.nSprites; s++ {
			slot := &p.sprites[s]
			off := x - int(slot.x)
			if off < 0 || off > 7 {
				continue
			}
			c := slot.pixel(uint8(off))
			if c == 0 {
				continue
			}
			sprPixel = slot.palette<<2 | c
			sprFront = slot.front
			sprZero = slot.isZero
			break
		}
	}

	var out uint8
	switch {
	case bgPixel != 0 && sprPixel != 0:
		if sprZero && x != 255 {
			p.status |= statusSprite0
		}
		if sprFront {
			out = 0x10 | sprPixel
		} else {
			out = bgPixel
		}
	case sprPixel != 0:
		out = 0x10 | sprPixel
	case bgPixel != 0:
		out = bgPixel
	}

	emphasis := p.mask & maskEmphasis
	idx := p.paletteRAM[out&0x1F] & 0x3F
	if p.mask&maskGrayscale != 0 {
		idx &= 0x30
	}
	p.bus.EmitPixel(idx, emphasis)
}

// handleScrolling applies the loopy v/t register updates hardware
// performs at fixed dots of every visible scanline and the pre-render
// line, gated on rendering being enabled exactly as real hardware
// gates them.
func (p *PPU) handleScrolling() {
	if !p.renderingEnabled() {
		return
	}

	if p.dot == NES_RES_WIDTH {
		p.incrementY()
	}
	if p.dot == 257 {
		p.v.copyHorizontalFrom(&p.t)
	}
	if p.scanline == preRenderLine && p.dot >= 280 && p.dot <= 304 {
		p.v.copyVerticalFrom(&p.t)
	}
	if ((p.dot > 0 && p.dot <= NES_RES_WIDTH) || p.dot >= 328) && p.dot%8 == 0 {
		p.incrementCoarseX()
	}
}

func (p *PPU) incrementCoarseX() {
	if p.v.coarseX() == 31 {
		p.v.setCoarseX(0)
		p.v.toggleNametableX()
	} else {
		p.v.incrementCoarseX()
	}
}

func (p *PPU) incrementY() {
	if p.v.fineY() < 7 {
		p.v.incrementFineY()
		return
	}
	p.v.setFineY(0)
	switch p.v.coarseY() {
	case 29:
		p.v.setCoarseY(0)
		p.v.toggleNametableY()
	case 31:
		p.v.setCoarseY(0)
	default:
		p.v.incrementCoarseY()
	}
}

func (p *PPU) advanceDot() {
	p.dot++
	limit := dotsPerScanline
	if p.scanline == preRenderLine && p.oddFrame && p.renderingEnabled() {
		limit-- // skip the idle dot on odd frames when rendering is on
	}
	if p.dot < limit {
		return
	}

	p.dot = 0
	p.scanline++
	if p.scanline < scanlinesPerFrame {
		return
	}

	p.scanline = 0
	p.frame++
	p.oddFrame = !p.oddFrame
}

// evaluateSprites fills out (capacity 8) with the sprites visible on
// line and returns how many it found. It reproduces the canonical
// sprite-overflow bug: once 8 sprites are found, the scan keeps
// advancing both the sprite index and the in-sprite byte offset
// together, so it can trip the overflow flag on bytes that were never
// meant to be compared as a Y coordinate.
func (p *PPU) evaluateSprites(line int, out []spriteSlot) int {
	height := 8
	if p.ctrl&ctrlSpriteSize != 0 {
		height = 16
	}

	type match struct {
		idx              int
		y, tile, attr, x uint8
	}
	var found [8]match
	count := 0
	n := 0
	for n < 64 && count < 8 {
		y := p.oam[n*4]
		if line >= int(y) && line < int(y)+height {
			found[count] = match{n, y, p.oam[n*4+1], p.oam[n*4+2], p.oam[n*4+3]}
			count++
		}
		n++
	}

	if count == 8 {
		m := 0
		for n < 64 {
			y := p.oam[n*4+m]
			if line >= int(y) && line < int(y)+height {
				p.status |= statusOverflow
				break
			}
			n++
			m = (m + 1) % 4
		}
	}

	spritePatternBase := uint16(0)
	if p.ctrl&ctrlSpritePattern != 0 {
		spritePatternBase = 0x1000
	}

	for i := 0; i < count; i++ {
		f := found[i]
		flipV := f.attr&0x80 != 0
		flipH := f.attr&0x40 != 0
		front := f.attr&0x20 == 0

		row := line - int(f.y)
		base := spritePatternBase
		tile := uint16(f.tile)
		if height == 16 {
			base = 0
			if f.tile&1 != 0 {
				base = 0x1000
			}
			tile &^= 1
		}
		if flipV {
			row = height - 1 - row
		}
		if height == 16 && row >= 8 {
			tile++
			row -= 8
		}

		addr := base | (tile << 4) | uint16(row)
		lo := p.patternRead(addr)
		hi := p.patternRead(addr + 8)

		out[i] = spriteSlot{
			x:       f.x,
			lo:      lo,
			hi:      hi,
			palette: f.attr & 0x03,
			front:   front,
			flipH:   flipH,
			isZero:  f.idx == 0,
		}
	}

	return count
}

// patternRead fetches a CHR byte for a background or sprite tile and
// reports the address to the mapper's A12 edge detector; only pattern
// table fetches touch CHR memory, so only these calls matter for
// MMC3-style scanline counters.
func (p *PPU) patternRead(addr uint16) uint8 {
	v := p.bus.ChrRead(addr)
	p.bus.ClockA12(addr)
	return v
}

func (p *PPU) vramRead(addr uint16) uint8 {
	addr &= 0x3FFF
	switch {
	case addr < 0x2000:
		return p.bus.ChrRead(addr)
	case addr < 0x3F00:
		return p.vram[p.nametableAddr(addr)]
	default:
		return p.paletteRAM[p.paletteAddr(addr)]
	}
}

func (p *PPU) vramWrite(addr uint16, val uint8) {
	addr &= 0x3FFF
	switch {
	case addr < 0x2000:
		p.bus.ChrWrite(addr, val)
	case addr < 0x3F00:
		p.vram[p.nametableAddr(addr)] = val
	default:
		a := p.paletteAddr(addr)
		p.paletteRAM[a] = val
		if a&0x03 == 0 {
			p.paletteRAM[a^0x10] = val
		}
	}
}

func (p *PPU) paletteAddr(addr uint16) uint16 { return (addr - 0x3F00) % 0x20 }

func (p *PPU) nametableAddr(addr uint16) uint16 {
	a := (addr - 0x2000) % 0x1000
	switch p.bus.MirrorMode() {
	case MIRROR_VERTICAL:
		return a % 0x800
	case MIRROR_SINGLE_LOWER:
		return a % 0x400
	case MIRROR_SINGLE_UPPER:
		return 0x400 + a%0x400
	case MIRROR_FOUR_SCREEN:
		return a % VRAM_SIZE
	default: // horizontal
		if a >= 0x800 {
			return 0x400 + (a-0x800)%0x400
		}
		return a % 0x400
	}
}

// WriteReg handles a CPU write to a mirrored PPU register ($2000-$2007).
func (p *PPU) WriteReg(reg uint16, val uint8) {
	p.busLatch = val

	switch reg {
	case PPUCTRL:
		if val&ctrlGenerateNMI != 0 && p.ctrl&ctrlGenerateNMI == 0 && p.status&statusVBlank != 0 {
			p.bus.TriggerNMI()
		}
		p.ctrl = val
		p.t.data = (p.t.data &^ 0x0C00) | (uint16(val&0x03) << 10)
	case PPUMASK:
		p.mask = val
	case OAMADDR:
		p.oamAddr = val
	case OAMDATA:
		if p.renderingEnabled() && (p.scanline < NES_RES_HEIGHT || p.scanline == preRenderLine) {
			return
		}
		p.oam[p.oamAddr] = val
		p.oamAddr++
	case PPUSCROLL:
		if !p.w.latch() {
			p.t.setCoarseX(uint16(val) >> 3)
			p.fineX = val & 0x07
		} else {
			p.t.setCoarseY(uint16(val) >> 3)
			p.t.setFineY(uint16(val & 0x07))
		}
	case PPUADDR:
		if !p.w.latch() {
			p.t.data = (p.t.data & 0x00FF) | (uint16(val&0x3F) << 8)
		} else {
			p.t.data = (p.t.data & 0xFF00) | uint16(val)
			p.v.copyFrom(&p.t)
		}
	case PPUDATA:
		p.vramWrite(p.v.data, val)
		p.incrementV()
	}
}

// ReadReg handles a CPU read of a mirrored PPU register ($2000-$2007).
func (p *PPU) ReadReg(reg uint16) uint8 {
	switch reg {
	case PPUSTATUS:
		ret := (p.status & 0xE0) | (p.busLatch & 0x1F)
		p.status &^= statusVBlank
		p.w.reset()
		p.busLatch = ret
		return ret
	case OAMDATA:
		return p.oam[p.oamAddr]
	case PPUDATA:
		var ret uint8
		if p.v.data < 0x3F00 {
			ret = p.readBuffer
			p.readBuffer = p.vramRead(p.v.data)
		} else {
			ret = p.vramRead(p.v.data)
			p.readBuffer = p.vramRead(p.v.data & 0x2FFF)
		}
		p.incrementV()
		p.busLatch = ret
		return ret
	}

	return p.busLatch
}

func (p *PPU) incrementV() {
	if p.ctrl&ctrlVRAMIncrement != 0 {
		p.v.data += vramIncrementDown
	} else {
		p.v.data += vramIncrementAcross
	}
}

// WriteOAM stores val directly into OAM at addr, bypassing OAMADDR;
// used by OAM DMA.
func (p *PPU) WriteOAM(addr uint8, val uint8) { p.oam[addr] = val }

type color []uint8

func newColor(r, g, b uint8) color {
	return []uint8{r, g, b, 0xff}
}

// RGBA returns the red/green/blue/alpha bytes for a 6-bit system
// palette index, clamped to the 64-entry table.
func RGBA(index uint8) (r, g, b, a uint8) {
	c := SYSTEM_PALETTE[index&0x3F]
	return c[0], c[1], c[2], c[3]
}

var SYSTEM_PALETTE [64]color = [64]color{
	newColor(0x80, 0x80, 0x80), newColor(0x00, 0x3D, 0xA6), newColor(0x00, 0x12, 0xB0), newColor(0x44, 0x00, 0x96), newColor(0xA1, 0x00, 0x5E),
	newColor(0xC7, 0x00, 0x28), newColor(0xBA, 0x06, 0x00), newColor(0x8C, 0x17, 0x00), newColor(0x5C, 0x2F, 0x00), newColor(0x10, 0x45, 0x00),
	newColor(0x05, 0x4A, 0x00), newColor(0x00, 0x47, 0x2E), newColor(0x00, 0x41, 0x66), newColor(0x00, 0x00, 0x00), newColor(0x05, 0x05, 0x05),
	newColor(0x05, 0x05, 0x05), newColor(0xC7, 0xC7, 0xC7), newColor(0x00, 0x77, 0xFF), newColor(0x21, 0x55, 0xFF), newColor(0x82, 0x37, 0xFA),
	newColor(0xEB, 0x2F, 0xB5), newColor(0xFF, 0x29, 0x50), newColor(0xFF, 0x22, 0x00), newColor(0xD6, 0x32, 0x00), newColor(0xC4, 0x62, 0x00),
	newColor(0x35, 0x80, 0x00), newColor(0x05, 0x8F, 0x00), newColor(0x00, 0x8A, 0x55), newColor(0x00, 0x99, 0xCC), newColor(0x21, 0x21, 0x21),
	newColor(0x09, 0x09, 0x09), newColor(0x09, 0x09, 0x09), newColor(0xFF, 0xFF, 0xFF), newColor(0x0F, 0xD7, 0xFF), newColor(0x69, 0xA2, 0xFF),
	newColor(0xD4, 0x80, 0xFF), newColor(0xFF, 0x45, 0xF3), newColor(0xFF, 0x61, 0x8B), newColor(0xFF, 0x88, 0x33), newColor(0xFF, 0x9C, 0x12),
	newColor(0xFA, 0xBC, 0x20), newColor(0x9F, 0xE3, 0x0E), newColor(0x2B, 0xF0, 0x35), newColor(0x0C, 0xF0, 0xA4), newColor(0x05, 0xFB, 0xFF),
	newColor(0x5E, 0x5E, 0x5E), newColor(0x0D, 0x0D, 0x0D), newColor(0x0D, 0x0D, 0x0D), newColor(0xFF, 0xFF, 0xFF), newColor(0xA6, 0xFC, 0xFF),
	newColor(0xB3, 0xEC, 0xFF), newColor(0xDA, 0xAB, 0xEB), newColor(0xFF, 0xA8, 0xF9), newColor(0xFF, 0xAB, 0xB3), newColor(0xFF, 0xD2, 0xB0),
	newColor(0xFF, 0xEF, 0xA6), newColor(0xFF, 0xF7, 0x9C), newColor(0xD7, 0xE8, 0x95), newColor(0xA6, 0xED, 0xAF), newColor(0xA2, 0xF2, 0xDA),
	newColor(0x99, 0xFF, 0xFC), newColor(0xDD, 0xDD, 0xDD), newColor(0x11, 0x11, 0x11), newColor(0x11, 0x11, 0x11),
}
