package main

import (
	"errors"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/automoto/ascent/config"
	"github.com/automoto/ascent/engine"
	"github.com/automoto/ascent/persistence"
	"github.com/hajimehoshi/ebiten/v2"
	"go.uber.org/zap"
)

func main() {
	configPath := flag.String("config", "", "TOML config file (defaults when empty)")
	buffPath := flag.String("buffs", "", "YAML buff table (built-in table when empty)")
	levelRoot := flag.String("levels", "", "Level directory (overrides [level].root)")
	levelID := flag.Int("level", 0, "Level to start (overrides [level].start)")
	slot := flag.String("slot", "", "Save slot to restore on start and write with F5")
	headless := flag.Bool("headless", false, "Run the simulation without a window until interrupted")
	flag.Parse()

	if err := run(*configPath, *buffPath, *levelRoot, *levelID, *slot, *headless); err != nil {
		fmt.Fprintln(os.Stderr, "ascent:", err)
		os.Exit(1)
	}
}

func run(configPath, buffPath, levelRoot string, levelID int, slot string, headless bool) error {
	cfg := config.Default()
	if configPath != "" {
		var err error
		if cfg, err = config.Load(configPath); err != nil {
			return err
		}
	}
	if levelRoot != "" {
		cfg.Level.Root = levelRoot
	}
	if levelID > 0 {
		cfg.Level.Start = levelID
		cfg.Level.StartSubLevel = 1
	}

	log, err := newLogger(cfg.Logging)
	if err != nil {
		return fmt.Errorf("logger: %w", err)
	}
	defer func() { _ = log.Sync() }()

	var buffs *config.BuffTable
	if buffPath != "" {
		if buffs, err = config.LoadBuffTable(buffPath); err != nil {
			return err
		}
	}

	e, err := engine.New(cfg, os.DirFS(cfg.Level.Root), buffs, log)
	if err != nil {
		return err
	}

	var store persistence.Store
	if slot != "" {
		gd, err := persistence.OpenGData("ascent", log.Named("save"))
		if err != nil {
			log.Warn("saves disabled", zap.Error(err))
		} else {
			store = gd
		}
	}
	restored := false
	if store != nil {
		if restored, err = e.LoadFrom(store, slot); err != nil {
			log.Warn("could not restore save", zap.String("slot", slot), zap.Error(err))
		}
	}
	if !restored {
		if err := e.LoadLevel(cfg.Level.Start, cfg.Level.StartSubLevel); err != nil {
			return err
		}
	}

	if headless {
		return runHeadless(e, cfg.Game.TPS, log)
	}

	ebiten.SetWindowSize(cfg.Game.Width, cfg.Game.Height)
	ebiten.SetWindowTitle("ascent")
	ebiten.SetTPS(cfg.Game.TPS)
	if err := ebiten.RunGame(newViewer(e, store, slot, log)); err != nil && !errors.Is(err, ebiten.Termination) {
		return err
	}
	return nil
}

func runHeadless(e *engine.Engine, tps int, log *zap.Logger) error {
	loop := engine.NewGameLoop(e, tps)
	go loop.Run()

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
	sig := <-sigChan
	log.Info("shutting down", zap.String("signal", sig.String()))

	loop.Stop()
	<-loop.Done()
	return nil
}
