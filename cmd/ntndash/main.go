package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"os/signal"
	"strings"
	"syscall"

	tea "github.com/charmbracelet/bubbletea"
	"golang.org/x/sync/errgroup"

	"github.com/jackyw99/NR-NTN-satellite/internal/detail"
	"github.com/jackyw99/NR-NTN-satellite/internal/params"
	"github.com/jackyw99/NR-NTN-satellite/internal/tui"
)

var (
	version   = "dev"
	commit    = "unknown"
	buildTime = "unknown"
)

func main() {
	var configPath string
	var link string
	var preset string
	var stateDir string
	var listenAddr string
	var showVersion bool

	flag.StringVar(&configPath, "config", "", "config file (default is $HOME/.config/ntndash/config.yml)")
	flag.StringVar(&link, "link", "", "share link or query string restoring parameter values")
	flag.StringVar(&preset, "preset", "", "named parameter preset to apply at startup")
	flag.StringVar(&stateDir, "state-dir", "", "override directory holding the saved parameter snapshot")
	flag.StringVar(&listenAddr, "listen", "", "override detail server listen address")
	flag.BoolVar(&showVersion, "version", false, "print version information")
	flag.Parse()

	if showVersion {
		fmt.Printf("ntndash - NR-NTN Satellite Dashboard\n")
		fmt.Printf("  Version: %s\n", version)
		fmt.Printf("  Commit:  %s\n", commit)
		fmt.Printf("  Built:   %s\n", buildTime)
		return
	}

	cfg, err := loadCLIConfig(configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
		os.Exit(1)
	}

	if stateDir != "" {
		cfg.StateDir = stateDir
	}
	if listenAddr != "" {
		cfg.ListenAddr = listenAddr
	}

	if err := run(cfg, link, preset, flag.Args()); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run(cfg cliConfig, link, preset string, args []string) error {
	persister, err := params.NewFilePersister(cfg.StateDir)
	if err != nil {
		return err
	}

	store := params.New()
	restore(store, persister, link, preset, cfg.PresetsFile, args)

	// Persistence attaches only after restore, so restoring never
	// rewrites the snapshot it is reading from.
	store.SetPersister(persister)
	if err := store.SaveNow(); err != nil {
		log.Printf("Warning: could not save parameter snapshot: %v", err)
	}

	srv := detail.New(cfg.ListenAddr, store)
	if err := srv.Start(); err != nil {
		log.Printf("Warning: detail server unavailable: %v", err)
		srv = nil
	} else {
		defer srv.Stop()
	}

	app := tui.NewApp(store,
		tui.NewOverviewPage(store),
		tui.NewConfigPage(store),
		tui.NewTrajectoryPage(store),
		tui.NewCoveragePage(store),
		tui.NewPerformancePage(store, cfg.UpdateInterval),
	)
	if srv != nil {
		app.DetailURL = func(detailType, detailID string) string {
			return srv.URL(store.DetailQuery(detailType, detailID))
		}
		app.OpenURL = detail.OpenBrowser
	}

	p := tea.NewProgram(app, tea.WithAltScreen())

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	ctx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer stop()

	g, gctx := errgroup.WithContext(ctx)

	// A signal or watcher failure winds the TUI down so the final save
	// still runs. Quit after normal exit is harmless.
	g.Go(func() error {
		<-gctx.Done()
		p.Quit()
		return nil
	})

	// Live-reload external edits of the snapshot file into the store,
	// routed through the UI loop to keep mutations single-threaded.
	g.Go(func() error {
		return persister.Watch(gctx, func(values map[string]string) {
			p.Send(tui.ExternalParamsMsg{Values: values})
		})
	})

	g.Go(func() error {
		defer cancel()
		if _, err := p.Run(); err != nil {
			if strings.Contains(err.Error(), "TTY") || strings.Contains(err.Error(), "/dev/tty") {
				return fmt.Errorf("dashboard requires a real terminal")
			}
			return fmt.Errorf("error running dashboard: %w", err)
		}
		return nil
	})

	runErr := g.Wait()

	// Final snapshot, the page-unload save.
	if err := store.SaveNow(); err != nil {
		log.Printf("Warning: could not save parameter snapshot: %v", err)
	}

	return runErr
}

// restore seeds the store: defaults first, then the durable snapshot, then
// an optional preset, then link/argument overrides. Later sources win.
func restore(store *params.Store, persister *params.FilePersister, link, preset, presetsFile string, args []string) {
	store.Load(params.Defaults())

	saved, err := persister.Load()
	if err != nil {
		log.Printf("Warning: could not read saved parameters: %v", err)
	} else {
		store.Load(saved)
	}

	if preset != "" {
		presets, err := params.LoadPresets(presetsFile)
		if err != nil {
			log.Printf("Warning: could not load presets: %v", err)
		} else if _, ok := presets[preset]; !ok {
			log.Printf("Warning: unknown preset %q", preset)
		} else {
			presets.Apply(preset, store)
		}
	}

	overrides := params.ParseLink(link)
	for key, values := range params.OverridesFromArgs(args) {
		overrides[key] = values
	}
	store.ApplyQuery(overrides)
}
