package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log"
	"os"
	"runtime/debug"

	"github.com/gdamore/tcell/v2"

	"github.com/fxi/framepusher/audio"
	"github.com/fxi/framepusher/config"
	"github.com/fxi/framepusher/constants"
	"github.com/fxi/framepusher/status"
)

var (
	configFlag = flag.String("config", "", "Path to a TOML config file")
	debugFlag  = flag.Bool("debug", false, "Write logs to "+constants.LogDir+"/"+constants.LogFileName)
	muteFlag   = flag.Bool("mute", false, "Start with audio muted")
	settleFlag = flag.Bool("settle", true, "Settle frames with spring physics after a drag")
)

func main() {
	flag.Parse()
	os.Exit(realMain())
}

// realMain returns the exit code so deferred cleanup runs before os.Exit
func realMain() int {
	if logFile := setupLogging(*debugFlag); logFile != nil {
		defer logFile.Close()
	}

	cfg, err := loadConfig()
	if err != nil {
		log.Printf("config: %v", err)
		fmt.Fprintf(os.Stderr, "Config error: %v\n", err)
		return 2
	}

	if err := run(cfg); err != nil {
		log.Printf("exit: %v", err)
		fmt.Fprintf(os.Stderr, "%v\n", err)
		return 1
	}
	return 0
}

// loadConfig layers file, environment and flags over the defaults
func loadConfig() (*config.Config, error) {
	cfg, err := config.Load(*configFlag)
	if err != nil {
		return nil, err
	}
	cfg.ApplyEnv()

	// Only an explicit -settle overrides file and environment
	flag.Visit(func(f *flag.Flag) {
		if f.Name == "settle" {
			cfg.Physics.SettleOnRelease = *settleFlag
		}
	})

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func run(cfg *config.Config) error {
	screen, err := tcell.NewScreen()
	if err != nil {
		return fmt.Errorf("create screen: %w", err)
	}
	if err := screen.Init(); err != nil {
		return fmt.Errorf("init screen: %w", err)
	}
	defer screen.Fini()

	// Panic Recovery: restore the terminal before the stack is printed
	defer func() {
		if r := recover(); r != nil {
			screen.Fini()
			fmt.Fprintf(os.Stderr, "\n\x1b[31mFRAMEPUSHER CRASHED: %v\x1b[0m\n", r)
			fmt.Fprintf(os.Stderr, "Stack Trace:\n%s\n", debug.Stack())
			os.Exit(1)
		}
	}()

	screen.EnableMouse(tcell.MouseButtonEvents | tcell.MouseDragEvents)
	screen.HideCursor()
	screen.SetStyle(tcell.StyleDefault)

	reg := status.NewRegistry(constants.EnergyHistoryLen)

	sound := audio.NewSoundManager(cfg.Audio, reg)
	switch err := sound.Initialize(); {
	case errors.Is(err, audio.ErrDisabled):
		log.Printf("audio disabled by config")
	case err != nil:
		log.Printf("audio initialization failed: %v (continuing without audio)", err)
	default:
		defer sound.Cleanup()
	}
	if *muteFlag {
		sound.ToggleMute()
	}

	a, err := newApp(cfg, screen, sound, reg)
	if err != nil {
		return err
	}
	return a.run(context.Background())
}
