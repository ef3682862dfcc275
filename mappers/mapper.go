// Package mappers implements and registers cartridge mappers that are
// referenced numerically by iNES and NES2.0 ROM files.
package mappers

import (
	"bytes"
	"encoding/gob"
	"fmt"

	"github.com/bdwalton/gintendo/nesrom"
)

// Mirroring modes a mapper can report. The first three match
// nesrom's header-derived values; the single-screen variants are a
// runtime mapper decision (MMC1, AxROM) that the header can't express.
const (
	MirrorHorizontal  = nesrom.MIRROR_HORIZONTAL
	MirrorVertical    = nesrom.MIRROR_VERTICAL
	MirrorFourScreen  = nesrom.MIRROR_FOUR_SCREEN
	MirrorSingleLower = 3
	MirrorSingleUpper = 4
)

// Mapper is the interface the CPU/PPU buses use to reach cartridge
// memory. PrgRead/PrgWrite operate in CPU address space ($6000-$FFFF,
// covering PRG-RAM and PRG-ROM); ChrRead/ChrWrite operate in PPU
// address space ($0000-$1FFF).
type Mapper interface {
	ID() uint16
	Name() string
	Init(*nesrom.ROM)
	Reset()

	PrgRead(addr uint16) uint8
	PrgWrite(addr uint16, val uint8)
	ChrRead(addr uint16) uint8
	ChrWrite(addr uint16, val uint8)

	MirrorMode() uint8

	// IRQLine reports the mapper's IRQ line level. Only MMC3 ever
	// asserts it; every other mapper returns false.
	IRQLine() bool
}

// A12Clocked is implemented by mappers that need the PPU to report
// CHR address bit 12 transitions (MMC3's scanline IRQ counter).
// Mappers that don't care simply don't implement it.
type A12Clocked interface {
	ClockA12(addr uint16)
}

// StateSaver is implemented by every mapper for console.Bus's
// save-state support. encodeState/decodeState below do the actual
// gob round-trip; each mapper just supplies its own snapshot struct.
type StateSaver interface {
	SaveState() ([]byte, error)
	LoadState([]byte) error
}

// baseMapperState is the bank-switching-independent portion every
// concrete mapper's snapshot embeds: PRG-RAM contents and the current
// mirroring mode (mutable at runtime for MMC1/MMC3/AxROM).
type baseMapperState struct {
	SRAM   []uint8
	Mirror uint8
}

func (bm *baseMapper) state() baseMapperState {
	sram := make([]uint8, len(bm.sram))
	copy(sram, bm.sram)
	return baseMapperState{SRAM: sram, Mirror: bm.mirror}
}

func (bm *baseMapper) restore(s baseMapperState) {
	copy(bm.sram, s.SRAM)
	bm.mirror = s.Mirror
}

func encodeState(v any) ([]byte, error) {
	var buf bytes.Buffer
	if err := gob.NewEncoder(&buf).Encode(v); err != nil {
		return nil, fmt.Errorf("mappers: encode state: %w", err)
	}
	return buf.Bytes(), nil
}

func decodeState(data []byte, v any) error {
	if err := gob.NewDecoder(bytes.NewReader(data)).Decode(v); err != nil {
		return fmt.Errorf("mappers: decode state: %w", err)
	}
	return nil
}

// allMappers is a registry of mapper constructors keyed by iNES mapper
// id. Each entry builds a fresh instance so that two ROMs using the
// same mapper id never share state.
var allMappers = map[uint16]func() Mapper{}

func registerMapper(id uint16, new func() Mapper) {
	if _, ok := allMappers[id]; ok {
		panic(fmt.Sprintf("mappers: id %d registered twice", id))
	}
	allMappers[id] = new
}

// Get constructs the mapper named by rom's header and initializes it
// against rom, or returns an error if the mapper id isn't supported.
func Get(rom *nesrom.ROM) (Mapper, error) {
	id := rom.MapperNum()
	new, ok := allMappers[id]
	if !ok {
		return nil, fmt.Errorf("mappers: unsupported mapper id %d", id)
	}

	m := new()
	m.Init(rom)
	return m, nil
}

const sramSize = 0x2000 // $6000-$7FFF

// baseMapper carries the bookkeeping every mapper needs: the id/name
// pair, the backing ROM, and the 8KB PRG-RAM window. Concrete mappers
// embed it and only implement their bank-switching logic.
type baseMapper struct {
	id   uint16
	name string
	rom  *nesrom.ROM
	sram []uint8

	mirror uint8
}

func newBaseMapper(id uint16, name string) *baseMapper {
	return &baseMapper{id: id, name: name, sram: make([]uint8, sramSize)}
}

func (bm *baseMapper) ID() uint16   { return bm.id }
func (bm *baseMapper) Name() string { return bm.name }
func (bm *baseMapper) String() string {
	return bm.name
}

func (bm *baseMapper) Init(r *nesrom.ROM) {
	bm.rom = r
	bm.mirror = r.MirroringMode()
}

func (bm *baseMapper) MirrorMode() uint8 { return bm.mirror }
func (bm *baseMapper) IRQLine() bool     { return false }

func (bm *baseMapper) sramRead(addr uint16) uint8      { return bm.sram[addr-0x6000] }
func (bm *baseMapper) sramWrite(addr uint16, v uint8)  { bm.sram[addr-0x6000] = v }
