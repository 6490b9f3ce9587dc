package app

import (
	"context"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"go.trai.ch/hoop/internal/adapters/watcher" //nolint:depguard // Wired in app layer
	"go.trai.ch/hoop/internal/core/ports"
	"go.trai.ch/hoop/internal/ui/output"
)

const defaultDebounce = watcher.DefaultDebounceWindow

// watch re-runs run after changes under src settle, until ctx ends.
func (a *App) watch(ctx context.Context, src string, extensions []string, run func(context.Context) error) error {
	root, err := filepath.Abs(src)
	if err != nil {
		return err
	}

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	if err := a.watcher.Start(ctx, root); err != nil {
		return err
	}
	defer func() { _ = a.watcher.Stop() }()

	trigger := make(chan struct{}, 1)
	debouncer := watcher.NewDebouncer(a.debounce, func([]string) {
		select {
		case trigger <- struct{}{}:
		default:
		}
	})
	defer debouncer.Stop()

	go func() {
		for ev := range a.watcher.Events() {
			if relevant(ev, extensions) {
				debouncer.Add(ev.Path)
			}
		}
	}()

	a.logger.Info("watching " + root + " for changes")
	for {
		select {
		case <-ctx.Done():
			return nil
		case <-trigger:
			a.logger.Debug("source tree changed, planning again")
			a.clearScreen()
			if err := run(ctx); err != nil {
				if ctx.Err() != nil {
					return nil
				}
				a.logger.Error(err)
			}
		}
	}
}

// clearScreen wipes the previous summary when it went to a terminal.
func (a *App) clearScreen() {
	if f, ok := a.out.(*os.File); ok && output.Interactive(f) {
		output.New(f).ClearScreen()
	}
}

// relevant keeps pattern files and extensionless paths, which may be directories.
func relevant(ev ports.WatchEvent, extensions []string) bool {
	ext := strings.ToLower(filepath.Ext(ev.Path))
	if ext == "" {
		return true
	}
	return slices.ContainsFunc(extensions, func(e string) bool {
		e = strings.ToLower(e)
		if !strings.HasPrefix(e, ".") {
			e = "." + e
		}
		return e == ext
	})
}
