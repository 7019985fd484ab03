package app

import (
	"errors"
	"fmt"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/atomicstack/multipage-hmi/hmi"
	"github.com/atomicstack/multipage-hmi/internal/logging"
	"github.com/atomicstack/multipage-hmi/internal/logging/events"
	"github.com/atomicstack/multipage-hmi/internal/manifest"
	"github.com/atomicstack/multipage-hmi/internal/sim"
	"github.com/atomicstack/multipage-hmi/internal/watch"
)

// watchInterval is how often the manifest file is probed for edits.
const watchInterval = 1500 * time.Millisecond

// Config describes user-provided application options.
type Config struct {
	ManifestPath string
	TickInterval time.Duration
}

// Run loads the page tree and executes the Bubble Tea simulator around it.
func Run(cfg Config) error {
	man, err := manifest.Load(cfg.ManifestPath)
	if err != nil {
		return fmt.Errorf("load manifest: %w", err)
	}
	display := &sim.Display{}
	manager, _, err := man.Build(display)
	if err != nil {
		return fmt.Errorf("build page tree: %w", err)
	}
	defer manager.Close()

	model := sim.NewModel(manager, cfg.TickInterval)
	program := tea.NewProgram(model, tea.WithAltScreen())

	if cfg.ManifestPath != "" {
		model.SetReload(func() (*hmi.Manager[*sim.Display], error) {
			reloaded, err := manifest.Load(cfg.ManifestPath)
			if err != nil {
				return nil, err
			}
			rebuilt, _, err := reloaded.Build(display)
			return rebuilt, err
		})
		watcher := watch.NewWatcher(cfg.ManifestPath, watchInterval)
		defer watcher.Stop()
		go func() {
			for evt := range watcher.Events() {
				if evt.Err != nil {
					logging.Error(evt.Err)
					continue
				}
				events.App.Reload(evt.Path)
				program.Send(sim.ReloadMsg{})
			}
		}()
	}

	final, err := program.Run()
	if errors.Is(err, tea.ErrProgramKilled) {
		return nil
	}
	if err != nil {
		return err
	}
	if m, ok := final.(*sim.Model); ok {
		return m.Err()
	}
	return nil
}
