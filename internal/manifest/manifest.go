// Package manifest loads a page tree description from YAML and registers
// it on a page manager, so the simulator's tree can be reshaped without
// recompiling.
package manifest

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/atomicstack/multipage-hmi/hmi"
	"github.com/atomicstack/multipage-hmi/hmi/pages"
	"github.com/atomicstack/multipage-hmi/internal/logging/events"
	"github.com/atomicstack/multipage-hmi/internal/sim"
)

// Manifest is the root of the page tree description.
type Manifest struct {
	Startup  *Phase             `yaml:"startup,omitempty"`
	Shutdown *Phase             `yaml:"shutdown,omitempty"`
	Home     Home               `yaml:"home"`
	Settings map[string]Setting `yaml:"settings,omitempty"`
	Pages    []Page             `yaml:"pages,omitempty"`
}

// Phase describes the startup or shutdown page and how many update ticks
// it survives.
type Phase struct {
	Text    string `yaml:"text"`
	Updates uint16 `yaml:"updates"`
}

// Home describes the root page. Its sub pages hang below it; the entries
// under the manifest's top-level pages key become its siblings.
type Home struct {
	Title string `yaml:"title"`
	Text  string `yaml:"text"`
	Pages []Page `yaml:"pages,omitempty"`
}

// Setting declares a named typed value that enter-string pages bind to.
type Setting struct {
	Type    string `yaml:"type"`
	Initial string `yaml:"initial,omitempty"`
}

// Page describes one page and, through Pages, the subtree below it.
type Page struct {
	Title    string    `yaml:"title"`
	Kind     string    `yaml:"kind"`
	Text     string    `yaml:"text,omitempty"`
	Back     string    `yaml:"back,omitempty"`
	Alphabet string    `yaml:"alphabet,omitempty"`
	OK       string    `yaml:"ok,omitempty"`
	Value    string    `yaml:"value,omitempty"`
	Lifetime *Lifetime `yaml:"lifetime,omitempty"`
	Pages    []Page    `yaml:"pages,omitempty"`
}

// Lifetime describes a page lifetime: where to go and after how many
// update ticks.
type Lifetime struct {
	Target  string `yaml:"target"`
	Updates uint16 `yaml:"updates"`
}

// Parse decodes a manifest from YAML.
func Parse(data []byte) (Manifest, error) {
	var m Manifest
	if err := yaml.Unmarshal(data, &m); err != nil {
		return Manifest{}, fmt.Errorf("parse manifest: %w", err)
	}
	if err := m.validate(); err != nil {
		return Manifest{}, err
	}
	return m, nil
}

// Load reads a manifest file, falling back to the built-in default tree
// when path is empty.
func Load(path string) (Manifest, error) {
	if path == "" {
		return Parse([]byte(defaultManifest))
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return Manifest{}, fmt.Errorf("read manifest: %w", err)
	}
	return Parse(data)
}

func (m Manifest) validate() error {
	if m.Home.Title == "" {
		return fmt.Errorf("manifest: home page needs a title")
	}
	for name, setting := range m.Settings {
		switch setting.Type {
		case "", "string", "int", "float":
		default:
			return fmt.Errorf("manifest: setting %q has unknown type %q", name, setting.Type)
		}
	}
	var walk func(specs []Page) error
	walk = func(specs []Page) error {
		for _, spec := range specs {
			if spec.Title == "" {
				return fmt.Errorf("manifest: page without title")
			}
			switch spec.Kind {
			case "", "text", "menu", "clock", "settings":
			case "enterstring":
				if _, ok := m.Settings[spec.Value]; !ok {
					return fmt.Errorf("manifest: page %q binds unknown setting %q", spec.Title, spec.Value)
				}
			default:
				return fmt.Errorf("manifest: page %q has unknown kind %q", spec.Title, spec.Kind)
			}
			if spec.Lifetime != nil {
				if _, err := navTarget(spec.Lifetime.Target); err != nil {
					return fmt.Errorf("manifest: page %q: %w", spec.Title, err)
				}
			}
			if err := walk(spec.Pages); err != nil {
				return err
			}
		}
		return nil
	}
	if err := walk(m.Pages); err != nil {
		return err
	}
	return walk(m.Home.Pages)
}

func navTarget(name string) (hmi.Navigation, error) {
	switch name {
	case "left":
		return hmi.NavLeft, nil
	case "right":
		return hmi.NavRight, nil
	case "up":
		return hmi.NavUp, nil
	case "home":
		return hmi.NavHome, nil
	default:
		return hmi.Navigation{}, fmt.Errorf("unknown lifetime target %q", name)
	}
}

// Build registers the described tree on a fresh manager bound to display.
// The returned settings map holds the value cells the enter-string pages
// write through, keyed by their manifest names.
func (m Manifest) Build(display *sim.Display) (*hmi.Manager[*sim.Display], map[string]pages.Value, error) {
	settings := make(map[string]pages.Value, len(m.Settings))
	for name, setting := range m.Settings {
		cell, err := newCell(setting)
		if err != nil {
			return nil, nil, fmt.Errorf("manifest: setting %q: %w", name, err)
		}
		settings[name] = cell
	}

	manager := hmi.New(display, sim.Wrap(newHomePage(m.Home.Title, m.Home.Text)))
	events.Page.Register(m.Home.Title, "home")
	if m.Startup != nil {
		manager.RegisterStartup(sim.Wrap(pages.NewStartup(m.Startup.Text, m.Startup.Updates)))
		events.Page.Register("Startup", "startup")
	}
	if m.Shutdown != nil {
		manager.RegisterShutdown(sim.Wrap(pages.NewShutdown(m.Shutdown.Text, m.Shutdown.Updates)))
		events.Page.Register("Shutdown", "shutdown")
	}

	if err := addRow(manager, settings, m.Pages, false); err != nil {
		return nil, nil, err
	}
	if len(m.Home.Pages) > 0 {
		if _, err := manager.Dispatch(hmi.NavHome); err != nil {
			return nil, nil, err
		}
		if err := addRow(manager, settings, m.Home.Pages, true); err != nil {
			return nil, nil, err
		}
	}
	if _, err := manager.Dispatch(hmi.NavHome); err != nil {
		return nil, nil, err
	}
	return manager, settings, nil
}

// addRow registers specs as one level of the tree. The parent of the row
// must be the active page on entry; descend picks between starting a new
// level below it and extending the parent's own row.
func addRow(manager *hmi.Manager[*sim.Display], settings map[string]pages.Value, specs []Page, descend bool) error {
	for i, spec := range specs {
		page, err := newPage(spec, settings)
		if err != nil {
			return err
		}
		if i == 0 && descend {
			manager.RegisterSub(sim.Wrap(page))
			events.Page.Register(spec.Title, "sub")
		} else {
			manager.Register(sim.Wrap(page))
			events.Page.Register(spec.Title, "sibling")
		}
		if len(spec.Pages) > 0 {
			if err := addRow(manager, settings, spec.Pages, true); err != nil {
				return err
			}
			// come back up to this row for the next sibling
			if _, err := manager.Dispatch(hmi.NavUp); err != nil {
				return err
			}
		}
	}
	return nil
}

func newPage(spec Page, settings map[string]pages.Value) (pages.ContentPage, error) {
	lifetime, err := newLifetime(spec.Lifetime)
	if err != nil {
		return nil, err
	}
	switch spec.Kind {
	case "", "text":
		return pages.NewText(spec.Title, spec.Text, lifetime), nil
	case "menu":
		return pages.NewMenu(spec.Title, spec.Back), nil
	case "clock":
		return pages.NewClock(spec.Title, nil), nil
	case "settings":
		return newSettingsPage(spec.Title, settings), nil
	case "enterstring":
		return pages.NewEnterString(spec.Title, spec.Alphabet, spec.Back, spec.OK, settings[spec.Value]), nil
	default:
		return nil, fmt.Errorf("manifest: page %q has unknown kind %q", spec.Title, spec.Kind)
	}
}

func newLifetime(spec *Lifetime) (*hmi.Lifetime, error) {
	if spec == nil {
		return nil, nil
	}
	target, err := navTarget(spec.Target)
	if err != nil {
		return nil, err
	}
	return hmi.NewLifetime(target, spec.Updates), nil
}

func newCell(setting Setting) (pages.Value, error) {
	var cell pages.Value
	switch setting.Type {
	case "", "string":
		cell = pages.StringCell("")
	case "int":
		cell = pages.IntCell(0)
	case "float":
		cell = pages.FloatCell(0)
	default:
		return nil, fmt.Errorf("unknown type %q", setting.Type)
	}
	if setting.Initial != "" {
		if err := cell.SetString(setting.Initial); err != nil {
			return nil, fmt.Errorf("initial value %q: %w", setting.Initial, err)
		}
	}
	return cell, nil
}
