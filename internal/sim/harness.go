package sim

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// Harness drives the simulator model programmatically for tests.
type Harness struct {
	model *Model
}

// NewHarness creates a harness for the provided model and runs its Init
// commands, so the system-start dispatch and the first tick have happened
// before the first assertion.
func NewHarness(model *Model) *Harness {
	h := &Harness{model: model}
	h.processCmd(model.Init())
	return h
}

// Send routes a message through the model and executes any returned
// commands, except the tick timer, which tests advance explicitly.
func (h *Harness) Send(msg tea.Msg) {
	if h.model == nil {
		return
	}
	mdl, cmd := h.model.Update(msg)
	if updated, ok := mdl.(*Model); ok {
		h.model = updated
	}
	h.processCmd(cmd)
}

// Tick delivers one update tick without waiting for the timer.
func (h *Harness) Tick() {
	h.Send(tickMsg(time.Now()))
}

func (h *Harness) processCmd(cmd tea.Cmd) {
	if cmd == nil {
		return
	}
	msg := cmd()
	switch msg := msg.(type) {
	case nil:
		return
	case tea.BatchMsg:
		for _, sub := range msg {
			h.processCmd(sub)
		}
	default:
		if isTimer(msg) {
			return
		}
		mdl, next := h.model.Update(msg)
		if updated, ok := mdl.(*Model); ok {
			h.model = updated
		}
		h.processCmd(next)
	}
}

func isTimer(msg tea.Msg) bool {
	_, ok := msg.(tickMsg)
	return ok
}

// View returns the current view string.
func (h *Harness) View() string {
	if h.model == nil {
		return ""
	}
	return h.model.View()
}

// Model exposes the underlying model.
func (h *Harness) Model() *Model {
	return h.model
}
