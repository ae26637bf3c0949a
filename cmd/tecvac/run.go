package main

import (
	"context"
	"fmt"
	"io"
	"log"
	"os"
	"os/signal"
	"strings"
	"syscall"

	tea "github.com/charmbracelet/bubbletea"
	"golang.org/x/sync/errgroup"

	"github.com/tinytelemetry/tecvac/internal/intake"
	"github.com/tinytelemetry/tecvac/internal/model"
	"github.com/tinytelemetry/tecvac/internal/sample"
	"github.com/tinytelemetry/tecvac/internal/tui"
)

func runTUI(cfg appConfig) error {
	cleanupLogger, err := configureLogger(cfg.LogFile)
	if err != nil {
		return err
	}
	defer cleanupLogger()

	if err := tui.InitializeSkin(cfg.Skin, cfg.ConfigDir); err != nil {
		fmt.Fprintf(os.Stderr, "Warning: Failed to load skin '%s': %v (using default)\n", cfg.Skin, err)
	}

	sink, closeSink, err := openIntakeSink(cfg.IntakeJournal)
	if err != nil {
		return err
	}
	defer closeSink()

	app, err := tui.NewApp(tui.Options{
		StartRoute:         model.Route(cfg.StartRoute),
		StartCollapsed:     cfg.StartCollapsed,
		UserName:           cfg.UserName,
		UserTitle:          cfg.UserTitle,
		Sink:               sink,
		ReverseScrollWheel: cfg.ReverseScrollWheel,
	}, tui.NewOverviewPage(sample.Dashboard()))
	if err != nil {
		return err
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	defer signal.Stop(sigCh)

	p := tea.NewProgram(app, tea.WithAltScreen(), tea.WithMouseCellMotion())

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		defer cancel()
		if _, err := p.Run(); err != nil {
			if strings.Contains(err.Error(), "TTY") || strings.Contains(err.Error(), "/dev/tty") {
				return fmt.Errorf("TUI requires a real terminal")
			}
			return fmt.Errorf("error running TUI: %w", err)
		}
		return nil
	})

	// Quit the program on SIGTERM/SIGINT delivered from outside the terminal.
	g.Go(func() error {
		select {
		case sig := <-sigCh:
			log.Printf("main: received %s, quitting", sig)
			p.Quit()
		case <-gctx.Done():
		}
		return nil
	})

	return g.Wait()
}

// configureLogger sends the standard logger to path, or discards it when
// path is empty. stdout belongs to the terminal UI either way.
func configureLogger(path string) (func(), error) {
	if path == "" {
		log.SetOutput(io.Discard)
		return func() {}, nil
	}

	f, err := tea.LogToFile(path, "tecvac")
	if err != nil {
		return nil, fmt.Errorf("opening log file %s: %w", path, err)
	}
	log.SetFlags(log.LstdFlags | log.Lmicroseconds)
	return func() {
		_ = f.Close()
	}, nil
}

// openIntakeSink returns the journal at path, or a log-only sink when path
// is empty.
func openIntakeSink(path string) (model.IntakeSink, func(), error) {
	if path == "" {
		return intake.NewLogSink(), func() {}, nil
	}

	j, err := intake.OpenJournal(path)
	if err != nil {
		return nil, nil, fmt.Errorf("opening intake journal: %w", err)
	}
	if entries, err := j.Entries(); err == nil {
		log.Printf("main: intake journal %s holds %d records", path, len(entries))
	}
	return j, func() {
		if err := j.Close(); err != nil {
			log.Printf("main: closing intake journal: %v", err)
		}
	}, nil
}
