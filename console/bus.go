package console

import (
	"bytes"
	"context"
	"encoding/gob"
	"fmt"
	"io"
	"math"
	"os"
	"os/signal"
	"syscall"

	"github.com/bdwalton/gintendo/apu"
	"github.com/bdwalton/gintendo/clock"
	"github.com/bdwalton/gintendo/mappers"
	"github.com/bdwalton/gintendo/mos6502"
	"github.com/bdwalton/gintendo/ppu"
	"github.com/hajimehoshi/ebiten/v2"
)

// Master-clock divisors (NTSC): the PPU runs at master/4, the CPU and
// (as modeled here, since apu.Tick is driven once per CPU cycle rather
// than once per true half-rate APU cycle) the APU both run at
// master/12. See clock.Scheduler and DESIGN.md.
const (
	ppuDivisor = 4
	cpuDivisor = 12
	apuDivisor = 12
)

const (
	NES_BASE_MEMORY = 0x800 // 2KB built in RAM

	MAX_ADDRESS          = math.MaxUint16
	MEM_SIZE             = MAX_ADDRESS + 1
	MAX_NES_BASE_RAM     = 0x1FFF
	MAX_PPU_REG_MIRRORED = 0x3FFF
	MAX_IO_REG           = 0x4020
	MAX_SRAM             = 0x6000
)

const (
	OAMDMA = 0x4014 // Triggers DMA from CPU memory to PPU OAM
)

type Bus struct {
	cpu    *mos6502.CPU
	ppu    *ppu.PPU
	apu    *apu.APU
	mapper mappers.Mapper
	ram    []uint8
	ticks  uint64

	pad1, pad2 controller

	frame        []uint8 // RGBA, filled by EmitPixel, blitted in Draw
	emitX, emitY int

	audio *audioStream

	dmaCycles int // extra CPU cycles owed for the OAM DMA stall

	sched *clock.Scheduler
}

// cpuTicker drives the CPU one instruction per Tick, folding in any
// IRQ-line updates and pending OAM DMA stall cycles, and reports the
// cycles that instruction consumed in CPU-cycle units.
type cpuTicker struct{ b *Bus }

func (t cpuTicker) Tick() uint32 {
	t.b.cpu.SetIRQLine(t.b.mapper.IRQLine() || t.b.apu.IRQLine())
	cycles := t.b.cpu.Step() + t.b.dmaCycles
	t.b.dmaCycles = 0
	t.b.ticks += uint64(cycles)
	return uint32(cycles)
}

// ppuTicker advances the PPU exactly one dot per Tick.
type ppuTicker struct{ b *Bus }

func (t ppuTicker) Tick() uint32 {
	t.b.ppu.Tick()
	return 1
}

// apuTicker advances the APU exactly one CPU-cycle's worth of work per
// Tick, pushing the resulting mixed sample to the audio stream.
type apuTicker struct{ b *Bus }

func (t apuTicker) Tick() uint32 {
	t.b.audio.push(t.b.apu.Tick())
	return 1
}

// New builds a Bus around the given mapper. Any mos6502.Option values
// (WithBCD, WithTrace) are forwarded to the CPU's constructor, letting
// cmd/gintendo's flags reach the core without the Bus knowing their
// meaning.
func New(m mappers.Mapper, cpuOpts ...mos6502.Option) *Bus {
	bus := &Bus{
		mapper: m,
		ram:    make([]uint8, NES_BASE_MEMORY),
		frame:  make([]uint8, ppu.NES_RES_WIDTH*ppu.NES_RES_HEIGHT*4),
		audio:  newAudioStream(),
	}

	bus.cpu = mos6502.New(bus, cpuOpts...)
	bus.ppu = ppu.New(bus)
	bus.apu = apu.New(bus)

	bus.sched = clock.NewScheduler()
	bus.sched.Manage(clock.ScaledTicker{Delegate: cpuTicker{bus}, Factor: cpuDivisor})
	bus.sched.Manage(clock.ScaledTicker{Delegate: ppuTicker{bus}, Factor: ppuDivisor})
	bus.sched.Manage(clock.ScaledTicker{Delegate: apuTicker{bus}, Factor: apuDivisor})

	w, h := bus.ppu.GetResolution()
	ebiten.SetWindowSize(w*2, h*2) // Start with 2x the screen size
	ebiten.SetWindowTitle("Gintendo")
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)

	return bus
}

func (b *Bus) MirrorMode() uint8 {
	return b.mapper.MirrorMode()
}

// Layout returns the constant resolution of the NES and is part of
// the ebiten.Game interface. By returning constants here, we will
// force ebiten to scale the display when the window size changes.
func (b *Bus) Layout(w, h int) (int, int) {
	return b.ppu.GetResolution()
}

// Draw updates the displayed ebiten window with the current contents
// of the Bus's frame buffer, filled pixel by pixel through EmitPixel.
func (b *Bus) Draw(screen *ebiten.Image) {
	screen.WritePixels(b.frame)
}

// Update does no work; the controllers are polled when the CPU strobes
// $4016. ebiten calls it roughly every 1/60s;
// the emulation itself is driven by Run in a separate goroutine.
func (b *Bus) Update() error {
	return nil
}

// TriggerNMI is used by the PPU to signal the CPU that it is in vblank.
func (b *Bus) TriggerNMI() {
	b.cpu.RequestNMI()
}

// ChrRead is used by the PPU to access CHR-ROM/RAM in the loaded Mapper.
func (b *Bus) ChrRead(addr uint16) uint8 {
	return b.mapper.ChrRead(addr)
}

// ChrWrite is used by the PPU to access CHR-RAM in the loaded Mapper.
func (b *Bus) ChrWrite(addr uint16, val uint8) {
	b.mapper.ChrWrite(addr, val)
}

// ClockA12 forwards a CHR address touched by a pattern-table fetch to
// the mapper, for mappers (MMC3) whose scanline IRQ counter is driven
// by CHR address bit 12 transitions.
func (b *Bus) ClockA12(addr uint16) {
	if a12, ok := b.mapper.(mappers.A12Clocked); ok {
		a12.ClockA12(addr)
	}
}

// PrgRead is used by the APU's DMC channel to fetch sample bytes
// directly from cartridge PRG space.
func (b *Bus) PrgRead(addr uint16) uint8 {
	return b.mapper.PrgRead(addr)
}

// Audio exposes the mixed APU sample stream as an io.Reader of 16-bit
// stereo PCM, for wiring into an ebiten audio.Player.
func (b *Bus) Audio() io.Reader {
	return b.audio
}

// AudioSampleRate is the PCM sample rate Audio's stream is produced at:
// one sample per CPU cycle, i.e. the NTSC CPU clock.
const AudioSampleRate = 1789773

// emphasisAttenuation approximates the PPU's color-emphasis hardware,
// which darkens the non-emphasized channels rather than boosting the
// emphasized one.
const emphasisAttenuation = 0.75

func attenuate(c uint8) uint8 {
	return uint8(float64(c) * emphasisAttenuation)
}

// EmitPixel is the PPU's video sink: it is called exactly once per
// visible dot, in raster order, with a 6-bit system palette index and
// the PPUMASK emphasis bits still in their register positions (bits
// 5-7).
func (b *Bus) EmitPixel(index uint8, emphasis uint8) {
	r, g, bl, a := ppu.RGBA(index)
	if emphasis&0x20 != 0 { // emphasize red
		g, bl = attenuate(g), attenuate(bl)
	}
	if emphasis&0x40 != 0 { // emphasize green
		r, bl = attenuate(r), attenuate(bl)
	}
	if emphasis&0x80 != 0 { // emphasize blue
		r, g = attenuate(r), attenuate(g)
	}

	off := (b.emitY*ppu.NES_RES_WIDTH + b.emitX) * 4
	b.frame[off], b.frame[off+1], b.frame[off+2], b.frame[off+3] = r, g, bl, a

	b.emitX++
	if b.emitX == ppu.NES_RES_WIDTH {
		b.emitX = 0
		b.emitY++
		if b.emitY == ppu.NES_RES_HEIGHT {
			b.emitY = 0
		}
	}
}

func (b *Bus) Read(addr uint16) uint8 {
	// https://www.nesdev.org/wiki/CPU_memory_map
	switch {
	case addr <= MAX_NES_BASE_RAM:
		// 0x800-0x1FFF mirrors 0x0000-0x07FF
		return b.ram[addr&0x7FF]
	case addr <= MAX_PPU_REG_MIRRORED:
		// PPU registers are mirrored between 0x2000 and 0x4000
		return b.ppu.ReadReg(addr & 0x2007)
	case addr == 0x4016:
		return b.pad1.read()
	case addr == 0x4017:
		// $4017 is dual-purpose: writes go to the APU frame counter,
		// reads come from controller 2.
		return b.pad2.read()
	case addr == apu.Status:
		return b.apu.ReadReg(addr)
	case addr < MAX_IO_REG:
		return 0
	case addr < MAX_SRAM:
		return 0
	case addr <= MAX_ADDRESS:
		return b.mapper.PrgRead(addr)
	}

	panic("should never happen") // hah, prod crashes await!
}

func (b *Bus) ClearMem() {
	b.ram = make([]uint8, len(b.ram))
}

func (b *Bus) Write(addr uint16, val uint8) {
	// https://www.nesdev.org/wiki/CPU_memory_map
	switch {
	case addr <= MAX_NES_BASE_RAM:
		// 0x800-0x1FFF mirrors 0x0000-0x07FF
		b.ram[addr&0x07FF] = val
	case addr <= MAX_PPU_REG_MIRRORED:
		// PPU registers are mirrored between 0x2000 and 0x4000
		b.ppu.WriteReg(addr&0x2007, val)
	case addr == 0x4016:
		// Bit 0 strobes both controller shift registers at once;
		// only pad1 owns the physical latch line in this layout.
		b.pad1.write(val)
		b.pad2.write(val)
	case addr < MAX_IO_REG:
		switch addr {
		case OAMDMA:
			base := uint16(val) << 8
			for i := uint16(0); i < 256; i++ {
				b.ppu.WriteOAM(uint8(i), b.Read(base+i))
			}
			// 513 cycles (514 on an odd CPU cycle); the +1 for
			// alignment is approximated away, matching spec.md's
			// "sub-instruction-accurate CPU bus modeling" non-goal.
			b.dmaCycles += 513
		case apu.Pulse1Control, apu.Pulse1Sweep, apu.Pulse1TimerLow, apu.Pulse1TimerHigh,
			apu.Pulse2Control, apu.Pulse2Sweep, apu.Pulse2TimerLow, apu.Pulse2TimerHigh,
			apu.TriangleLinear, apu.TriangleTimerLo, apu.TriangleTimerHi,
			apu.NoiseControl, apu.NoiseMode, apu.NoiseLength,
			apu.DMCControl, apu.DMCDirectLoad, apu.DMCSampleAddr, apu.DMCSampleLength,
			apu.Status:
			b.apu.WriteReg(addr, val)
		case apu.FrameCounter:
			// 0x4017 on write is the APU frame counter; the pad1/pad2
			// strobe write above only applies to 0x4016.
			b.apu.WriteReg(addr, val)
		}
	case addr < MAX_SRAM:
		// nothing for now
	case addr <= MAX_ADDRESS:
		b.mapper.PrgWrite(addr, val)
	}
}

// SaveState is the opaque, gob-encodable snapshot of an entire running
// console: CPU and PPU architectural state, work RAM, the loaded
// mapper's bank-switching state (if it carries any beyond PRG-RAM),
// and the master-clock tick count. The ebiten window, the mapper's
// identity (ROM image) and anything presentation-layer are not part
// of it — RestoreState assumes the same ROM is already loaded.
type SaveState struct {
	CPU       mos6502.State
	PPU       ppu.State
	APU       apu.State
	RAM       []uint8
	MapperID  uint16
	MapperRaw []uint8 // mapper-specific bank state, or nil if none
	Ticks     uint64
}

// SaveState captures the console's entire architectural state.
func (b *Bus) SaveState() (SaveState, error) {
	s := SaveState{
		CPU:      b.cpu.Snapshot(),
		PPU:      b.ppu.Snapshot(),
		APU:      b.apu.Snapshot(),
		RAM:      append([]uint8(nil), b.ram...),
		MapperID: b.mapper.ID(),
		Ticks:    b.ticks,
	}
	if saver, ok := b.mapper.(mappers.StateSaver); ok {
		raw, err := saver.SaveState()
		if err != nil {
			return SaveState{}, fmt.Errorf("console: save mapper state: %w", err)
		}
		s.MapperRaw = raw
	}
	return s, nil
}

// RestoreState replaces the console's state with a previously captured
// SaveState. The mapper must already be loaded with the same ROM the
// snapshot was taken against (MapperID is checked as a sanity guard).
func (b *Bus) RestoreState(s SaveState) error {
	if s.MapperID != b.mapper.ID() {
		return fmt.Errorf("console: save state is for mapper id %d, loaded mapper is %d", s.MapperID, b.mapper.ID())
	}
	b.cpu.Restore(s.CPU)
	b.ppu.Restore(s.PPU)
	b.apu.Restore(s.APU)
	copy(b.ram, s.RAM)
	b.ticks = s.Ticks
	if s.MapperRaw != nil {
		saver, ok := b.mapper.(mappers.StateSaver)
		if !ok {
			return fmt.Errorf("console: save state carries mapper state but loaded mapper doesn't support it")
		}
		if err := saver.LoadState(s.MapperRaw); err != nil {
			return fmt.Errorf("console: restore mapper state: %w", err)
		}
	}
	return nil
}

// SaveStateToFile writes a SaveState to path via gob encoding.
func (b *Bus) SaveStateToFile(path string) error {
	s, err := b.SaveState()
	if err != nil {
		return err
	}
	var buf bytes.Buffer
	if err := gob.NewEncoder(&buf).Encode(s); err != nil {
		return fmt.Errorf("console: encode save state: %w", err)
	}
	return os.WriteFile(path, buf.Bytes(), 0644)
}

// LoadStateFromFile reads a gob-encoded SaveState from path and
// applies it via RestoreState.
func (b *Bus) LoadStateFromFile(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("console: read save state: %w", err)
	}
	var s SaveState
	if err := gob.NewDecoder(bytes.NewReader(data)).Decode(&s); err != nil {
		return fmt.Errorf("console: decode save state: %w", err)
	}
	return b.RestoreState(s)
}

func readAddress(prompt string) uint16 {
	var a uint16
	fmt.Printf(prompt)
	fmt.Scanf("%04x\n", &a)
	return a
}

// Run drives the emulation via the master-clock scheduler: whichever
// of the CPU, PPU or APU ticker is soonest due runs next, keeping all
// three interleaved at their real NTSC clock ratios (CPU/APU at
// master/12, PPU at master/4) rather than bursting a fixed ratio after
// each CPU instruction.
func (b *Bus) Run(ctx context.Context) {
	for {
		select {
		case <-ctx.Done():
			return
		default:
			b.sched.Tick()
		}
	}
}

func (b *Bus) BIOS(ctx context.Context) {
	sigQuit := make(chan os.Signal, 1)
	signal.Notify(sigQuit, syscall.SIGINT, syscall.SIGTERM)

	breaks := make(map[uint16]struct{})

	for {
		fmt.Printf("%s\n\n", b.cpu)
		fmt.Println("(B)reak - add breakpoint")
		fmt.Println("(C)lear - cleear breakpoints")
		fmt.Println("(R)un - run to completion")
		fmt.Println("(S)step - step the cpu one instruction")
		fmt.Println("R(e)set - hit the reset button")
		fmt.Println("(M)memory - select a memory range to display")
		fmt.Println("S(t)ack - show last 3 items on the stack")
		fmt.Println("(I)instruction - show instruction memory locations")
		fmt.Println("(P)C - set program counter")
		fmt.Println("PP(U) - show PPU status")
		fmt.Println("(Q)uit - shutdown the gintentdo")
		fmt.Printf("Choice: ")

		var in rune
		fmt.Scanf("%c\n", &in)

		switch in {
		case 'b', 'B':
			breaks[readAddress("Breakpoint (eg: ff15): ")] = struct{}{}
		case 'c', 'C':
			breaks = make(map[uint16]struct{})
		case 'p', 'P':
			b.cpu.SetPC(readAddress("Set PC to what address (eg: 0400)?: "))
		case 'q', 'Q':
			return
		case 'r', 'R':
			cctx, cancel := context.WithCancel(ctx)
			go func(ctx context.Context) {
				for {
					select {
					case <-sigQuit:
						cancel()
					case <-ctx.Done():
						return
					}
				}
			}(cctx)

			b.Run(cctx)
		case 's', 'S':
			// Single-step bypasses the scheduler for simplicity: run one
			// CPU instruction, then catch the PPU/APU up to it directly.
			b.cpu.SetIRQLine(b.mapper.IRQLine() || b.apu.IRQLine())
			cycles := b.cpu.Step() + b.dmaCycles
			b.dmaCycles = 0
			for i := 0; i < cycles; i++ {
				b.audio.push(b.apu.Tick())
				b.ppu.Tick()
				b.ppu.Tick()
				b.ppu.Tick()
			}
			b.ticks += uint64(cycles)
		case 't', 'T':
			fmt.Println()
			i := 0
			for {
				m := b.cpu.StackAddr() + uint16(i)
				fmt.Printf("0x%04x: 0x%02x ", m, b.Read(m))
				if m == 0x01ff || i == 2 {
					break
				}
				i += 1
			}
			fmt.Printf("\n\n")
		case 'i', 'I':
			fmt.Printf("\n%s\n\n", b.cpu.Inst())
		case 'u', 'U':
			fmt.Println(b.ppu)
		case 'e', 'E':
			b.cpu.Reset()
		case 'm', 'M':
			fmt.Println()
			low := readAddress("Low address (eg f00d): ")
			high := readAddress("High address (eg beef): ")
			fmt.Println()

			x := 1
			i := low
			for {
				fmt.Printf("0x%04x: 0x%02x ", i, b.Read(i))
				if x%5 == 0 {
					fmt.Println()
				}
				if i == high || i == math.MaxUint16 {
					break
				}
				x += 1
				i += 1
			}
			fmt.Printf("\n\n")
		}
	}
}
