package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"
	"os/signal"

	"github.com/thelolagemann/gbcore/internal/gameboy"
	"github.com/thelolagemann/gbcore/pkg/log"
	"github.com/thelolagemann/gbcore/pkg/saves"
	"github.com/thelolagemann/gbcore/pkg/utils"
)

func main() {
	romFile := flag.String("rom", "", "The rom file to load (.gb, .gz, .zst, .xz, .zip or .7z)")
	steps := flag.Uint64("steps", 0, "The number of instructions to execute, 0 runs until an error or interrupt")
	debug := flag.Bool("debug", false, "Log every executed instruction")
	state := flag.String("state", "", "The state file to load")
	saveState := flag.String("save-state", "", "The file to write the state to once stopped")
	saveDir := flag.String("save-dir", "", "The folder to keep per-cartridge save states in, a new state is written once stopped")
	resume := flag.Bool("resume", false, "Load the newest state from -save-dir")
	disasm := flag.Int("disasm", 0, "Disassemble this many instructions from the entry point and exit")
	flag.Parse()

	var logger log.Logger
	if *debug {
		logger = log.NewDebug()
	} else {
		logger = log.New()
	}

	if *romFile == "" {
		flag.Usage()
		os.Exit(2)
	}

	var opts []gameboy.Opt
	opts = append(opts, gameboy.WithLogger(logger))
	if *debug {
		opts = append(opts, gameboy.Debug())
	}
	gb := gameboy.NewGameBoy(opts...)

	if err := gb.LoadCartridge(*romFile); err != nil {
		logger.Fatalf("unable to load cartridge: %v", err)
	}

	if *state != "" {
		b, err := utils.LoadFile(*state)
		if err != nil {
			logger.Fatalf("unable to read state: %v", err)
		}
		if err := gb.LoadState(b); err != nil {
			logger.Fatalf("unable to load state: %v", err)
		}
		logger.Infof("loaded state from %s", *state)
	}

	var folder *saves.Folder
	if *saveDir != "" {
		folder = saves.New(*saveDir)
	}
	if *resume && folder != nil {
		b, path, err := folder.Latest(gb.MMU.Cart.Fingerprint())
		switch {
		case errors.Is(err, saves.ErrNoSaves):
			logger.Infof("no save states for %s", gb.MMU.Cart.Title())
		case err != nil:
			logger.Fatalf("unable to read state: %v", err)
		default:
			if err := gb.LoadState(b); err != nil {
				logger.Fatalf("unable to load state: %v", err)
			}
			logger.Infof("resumed from %s", path)
		}
	}

	if *disasm > 0 {
		pc := gb.CPU.PC
		for i := 0; i < *disasm; i++ {
			text, length, err := gb.CPU.Disassemble(pc)
			if err != nil {
				logger.Fatalf("disassembly stopped at 0x%04X: %v", pc, err)
			}
			fmt.Printf("%04X: %s\n", pc, text)
			pc += uint16(length)
		}
		return
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	cycles, err := gb.Run(ctx, *steps)
	switch {
	case err == nil:
	case errors.Is(err, context.Canceled):
		logger.Infof("interrupted")
	default:
		logger.Errorf("%v", err)
	}
	logger.Infof("executed %d cycles (%d ticks)", cycles, gameboy.ClockTicks(cycles))
	fmt.Println(gb.CPU)
	fmt.Println("Flags:", gb.CPU.Flags())

	if *saveState != "" {
		b, err := gb.SaveState()
		if err != nil {
			logger.Fatalf("unable to save state: %v", err)
		}
		if err := os.WriteFile(*saveState, b, 0644); err != nil {
			logger.Fatalf("unable to write state: %v", err)
		}
		logger.Infof("saved state to %s", *saveState)
	}
	if folder != nil {
		b, err := gb.SaveState()
		if err != nil {
			logger.Fatalf("unable to save state: %v", err)
		}
		path, err := folder.Write(gb.MMU.Cart.Fingerprint(), b)
		if err != nil {
			logger.Fatalf("unable to write state: %v", err)
		}
		logger.Infof("saved state to %s", path)
	}
}
