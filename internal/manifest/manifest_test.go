package manifest

import (
	"strings"
	"testing"

	"github.com/atomicstack/multipage-hmi/hmi"
	"github.com/atomicstack/multipage-hmi/internal/sim"
)

func mustParse(t *testing.T, data string) Manifest {
	t.Helper()
	m, err := Parse([]byte(data))
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	return m
}

func mustDispatch(t *testing.T, manager *hmi.Manager[*sim.Display], nav hmi.Navigation) {
	t.Helper()
	if _, err := manager.Dispatch(nav); err != nil {
		t.Fatalf("dispatch %v: %v", nav, err)
	}
}

func TestParseDefaultManifest(t *testing.T) {
	m := mustParse(t, defaultManifest)
	if m.Home.Title != "Home" {
		t.Fatalf("home title: got %q", m.Home.Title)
	}
	if len(m.Pages) != 2 {
		t.Fatalf("top level pages: got %d", len(m.Pages))
	}
	if m.Startup == nil || m.Shutdown == nil {
		t.Fatal("default manifest misses startup or shutdown page")
	}
	if _, ok := m.Settings["greeting"]; !ok {
		t.Fatal("default manifest misses the greeting setting")
	}
}

func TestParseRejectsUnknownKind(t *testing.T) {
	_, err := Parse([]byte("home:\n  title: Home\npages:\n  - title: Broken\n    kind: carousel\n"))
	if err == nil || !strings.Contains(err.Error(), "unknown kind") {
		t.Fatalf("expected unknown kind error, got %v", err)
	}
}

func TestParseRejectsUnknownLifetimeTarget(t *testing.T) {
	_, err := Parse([]byte("home:\n  title: Home\npages:\n  - title: Broken\n    lifetime:\n      target: sideways\n      updates: 3\n"))
	if err == nil || !strings.Contains(err.Error(), "unknown lifetime target") {
		t.Fatalf("expected lifetime target error, got %v", err)
	}
}

func TestParseRejectsUnboundValue(t *testing.T) {
	_, err := Parse([]byte("home:\n  title: Home\npages:\n  - title: Broken\n    kind: enterstring\n    value: nothing\n"))
	if err == nil || !strings.Contains(err.Error(), "unknown setting") {
		t.Fatalf("expected unknown setting error, got %v", err)
	}
}

func TestLoadMissingFile(t *testing.T) {
	if _, err := Load("does/not/exist.yaml"); err == nil {
		t.Fatal("expected read error")
	}
}

func TestBuildDefaultTree(t *testing.T) {
	display := &sim.Display{}
	manager, settings, err := mustParse(t, defaultManifest).Build(display)
	if err != nil {
		t.Fatalf("build: %v", err)
	}
	defer manager.Close()

	if display.Title() != "Home" {
		t.Fatalf("displayed after build: got %q", display.Title())
	}
	if got := settings["greeting"].String(); got != "hello" {
		t.Fatalf("greeting initial value: got %q", got)
	}

	mustDispatch(t, manager, hmi.NthSubpage(1))
	if display.Title() != "Menu" {
		t.Fatalf("menu not below home: displaying %q", display.Title())
	}
	if got := display.Frame(); got != "[ Config-1 ] Sub-Menu Greeting Settings " {
		t.Fatalf("menu entries: got %q", got)
	}

	mustDispatch(t, manager, hmi.NthSubpage(2))
	if display.Title() != "Sub-Menu" {
		t.Fatalf("submenu not below menu: displaying %q", display.Title())
	}
	if got := display.Frame(); got != "[ Config-2 ] Config-3 " {
		t.Fatalf("submenu entries: got %q", got)
	}

	mustDispatch(t, manager, hmi.NavHome)
	if display.Title() != "Home" {
		t.Fatalf("home after reset: displaying %q", display.Title())
	}
	mustDispatch(t, manager, hmi.NavLeft)
	if display.Title() != "First" {
		t.Fatalf("first sibling: displaying %q", display.Title())
	}
	mustDispatch(t, manager, hmi.NavLeft)
	if display.Title() != "Time" {
		t.Fatalf("second sibling: displaying %q", display.Title())
	}
}

func TestSettingsPageShowsValues(t *testing.T) {
	display := &sim.Display{}
	manager, _, err := mustParse(t, defaultManifest).Build(display)
	if err != nil {
		t.Fatalf("build: %v", err)
	}
	defer manager.Close()

	mustDispatch(t, manager, hmi.NthSubpage(1))
	mustDispatch(t, manager, hmi.NthSubpage(4))
	if display.Title() != "Settings" {
		t.Fatalf("settings page: displaying %q", display.Title())
	}
	if got := display.Frame(); got != "greeting  hello" {
		t.Fatalf("settings content: got %q", got)
	}
}

func TestBuildRegistersStartupAndShutdown(t *testing.T) {
	display := &sim.Display{}
	manager, _, err := mustParse(t, defaultManifest).Build(display)
	if err != nil {
		t.Fatalf("build: %v", err)
	}
	defer manager.Close()

	mustDispatch(t, manager, hmi.NavSystemStart)
	if display.Title() != "Startup" {
		t.Fatalf("startup page: displaying %q", display.Title())
	}
	if manager.State() != hmi.StateStartup {
		t.Fatalf("state: got %v", manager.State())
	}
}

func TestHomePageMapping(t *testing.T) {
	page := newHomePage("Home", "welcome")
	if got := page.Dispatch(hmi.Action); got != hmi.NthSubpage(1) {
		t.Fatalf("action: got %v", got)
	}
	if got := page.Dispatch(hmi.Back); got != hmi.NavSystemStop {
		t.Fatalf("back: got %v", got)
	}
	if got := page.Dispatch(hmi.Previous); got != hmi.NavSystemStart {
		t.Fatalf("previous: got %v", got)
	}
	if got := page.Dispatch(hmi.Next); got != hmi.NavLeft {
		t.Fatalf("next: got %v", got)
	}
	if got := page.Dispatch(hmi.Home); got != hmi.NavHome {
		t.Fatalf("home: got %v", got)
	}
}
