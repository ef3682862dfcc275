package main

import (
	"context"
	"flag"
	"log"
	"os"

	"github.com/bdwalton/gintendo/console"
	"github.com/bdwalton/gintendo/mappers"
	"github.com/bdwalton/gintendo/mos6502"
	"github.com/bdwalton/gintendo/nesrom"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/audio"
)

var (
	romFile     = flag.String("nes_rom", "", "Path to NES ROM to run.")
	bcd         = flag.Bool("bcd", false, "Enable 6502 decimal-mode arithmetic (not used by real NES software).")
	traceSize   = flag.Int("trace", 0, "Capacity of the CPU instruction trace ring buffer (0 disables tracing).")
	saveOnExit  = flag.String("save_state", "", "If set, write a save state to this path on exit.")
	loadAtStart = flag.String("load_state", "", "If set, restore a previously written save state before running.")
)

func main() {
	flag.Parse()

	rom, err := nesrom.New(*romFile)
	if err != nil {
		log.Fatalf("Invalid ROM: %v", err)
	}

	m, err := mappers.Get(rom)
	if err != nil {
		log.Fatalf("Couldn't Get() mapper: %v", err)
	}

	var opts []mos6502.Option
	if *bcd {
		opts = append(opts, mos6502.WithBCD(true))
	}
	if *traceSize > 0 {
		opts = append(opts, mos6502.WithTrace(*traceSize))
	}

	gintendo := console.New(m, opts...)

	audioCtx := audio.NewContext(console.AudioSampleRate)
	player, err := audioCtx.NewPlayer(gintendo.Audio())
	if err != nil {
		log.Fatalf("couldn't start audio player: %v", err)
	}
	player.Play()

	if *loadAtStart != "" {
		if err := gintendo.LoadStateFromFile(*loadAtStart); err != nil {
			log.Fatalf("load state failed: %v", err)
		}
	}

	ctx, cancel := context.WithCancel(context.Background())
	go func(ctx context.Context) {
		gintendo.Run(ctx)
	}(ctx)

	if err := ebiten.RunGame(gintendo); err != nil {
		log.Fatal(err)
	}

	cancel()

	if *saveOnExit != "" {
		if err := gintendo.SaveStateToFile(*saveOnExit); err != nil {
			log.Printf("save state failed: %v", err)
		}
	}

	os.Exit(0)
}
