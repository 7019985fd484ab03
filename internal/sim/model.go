// Package sim hosts the on-host simulator: a Bubble Tea front end that
// maps keyboard input onto the few-button interaction vocabulary and
// renders the in-memory display to the terminal.
package sim

import (
	"errors"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/atomicstack/multipage-hmi/hmi"
	"github.com/atomicstack/multipage-hmi/internal/logging/events"
	"github.com/atomicstack/multipage-hmi/internal/theme"
)

var styles = theme.Default()

type tickMsg time.Time

type startMsg struct{}

// ReloadMsg asks the model to rebuild its page tree, typically because
// the manifest file changed on disk.
type ReloadMsg struct{}

type keyMap struct {
	Action   key.Binding
	Next     key.Binding
	Previous key.Binding
	Back     key.Binding
	Home     key.Binding
	Quit     key.Binding
	Kill     key.Binding
}

var defaultKeys = keyMap{
	Action:   key.NewBinding(key.WithKeys(" ", "enter"), key.WithHelp("space", "action")),
	Next:     key.NewBinding(key.WithKeys("n", "right", "tab"), key.WithHelp("n", "next")),
	Previous: key.NewBinding(key.WithKeys("p", "left", "shift+tab"), key.WithHelp("p", "prev")),
	Back:     key.NewBinding(key.WithKeys("b", "backspace"), key.WithHelp("b", "back")),
	Home:     key.NewBinding(key.WithKeys("h", "esc"), key.WithHelp("h", "home")),
	Quit:     key.NewBinding(key.WithKeys("q"), key.WithHelp("q", "shutdown")),
	Kill:     key.NewBinding(key.WithKeys("ctrl+c"), key.WithHelp("ctrl+c", "kill")),
}

// Model implements the Bubble Tea model around a page manager. Every tick
// runs one manager update so page lifetimes age in real time; key presses
// become interactions routed through the manager's run state.
type Model struct {
	manager  *hmi.Manager[*Display]
	interval time.Duration
	keys     keyMap
	last     hmi.Navigation
	reload   func() (*hmi.Manager[*Display], error)
	width    int
	err      error
}

// NewModel wraps manager in a simulator model updating every interval.
func NewModel(manager *hmi.Manager[*Display], interval time.Duration) *Model {
	if interval <= 0 {
		interval = time.Second
	}
	return &Model{
		manager:  manager,
		interval: interval,
		keys:     defaultKeys,
		last:     hmi.NavUpdate,
	}
}

// SetReload installs the rebuild callback invoked on ReloadMsg.
func (m *Model) SetReload(fn func() (*hmi.Manager[*Display], error)) {
	m.reload = fn
}

// Err reports the failure that terminated the program, nil after a clean
// shutdown.
func (m *Model) Err() error {
	return m.err
}

// Manager exposes the driven manager, for tests.
func (m *Model) Manager() *hmi.Manager[*Display] {
	return m.manager
}

func (m *Model) Init() tea.Cmd {
	return tea.Batch(func() tea.Msg { return startMsg{} }, m.tick())
}

func (m *Model) tick() tea.Cmd {
	return tea.Tick(m.interval, func(t time.Time) tea.Msg { return tickMsg(t) })
}

func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case startMsg:
		return m.dispatch(hmi.NavSystemStart)
	case tickMsg:
		// idle ticks re-dispatch the previous result, so a startup or
		// shutdown page stays in charge until its lifetime hands over
		mdl, cmd := m.dispatch(m.last)
		if cmd != nil {
			return mdl, cmd
		}
		return mdl, m.tick()
	case ReloadMsg:
		return m.handleReload()
	case tea.WindowSizeMsg:
		m.width = msg.Width
		return m, nil
	case tea.KeyMsg:
		return m.handleKey(msg)
	}
	return m, nil
}

func (m *Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Kill):
		return m, tea.Quit
	case key.Matches(msg, m.keys.Quit):
		return m.interact(hmi.SystemStop)
	case key.Matches(msg, m.keys.Action):
		return m.interact(hmi.Action)
	case key.Matches(msg, m.keys.Next):
		return m.interact(hmi.Next)
	case key.Matches(msg, m.keys.Previous):
		return m.interact(hmi.Previous)
	case key.Matches(msg, m.keys.Back):
		return m.interact(hmi.Back)
	case key.Matches(msg, m.keys.Home):
		return m.interact(hmi.Home)
	}
	return m, nil
}

// handleReload swaps in a freshly built page tree and boots it through
// the regular startup sequence. A failing rebuild keeps the current tree
// running, so editing a manifest into a broken state does not take the
// panel down.
func (m *Model) handleReload() (tea.Model, tea.Cmd) {
	if m.reload == nil {
		return m, nil
	}
	manager, err := m.reload()
	if err != nil {
		events.App.ReloadError(err)
		return m, nil
	}
	m.manager.Close()
	m.manager = manager
	m.last = hmi.NavUpdate
	return m.dispatch(hmi.NavSystemStart)
}

func (m *Model) dispatch(navigation hmi.Navigation) (tea.Model, tea.Cmd) {
	result, err := m.manager.Dispatch(navigation)
	events.Nav.Dispatch(navigation.String(), result.String(), m.manager.State().String())
	if err != nil {
		return m.fail(err)
	}
	m.last = result
	return m, nil
}

func (m *Model) interact(interaction hmi.Interaction) (tea.Model, tea.Cmd) {
	events.Nav.Interaction(interaction.String(), m.manager.State().String())
	result, err := m.manager.DispatchInteraction(interaction)
	if err != nil {
		return m.fail(err)
	}
	m.last = result
	return m, nil
}

// fail ends the program. An exhausted shutdown page reports itself through
// a page error, so in the shutdown state that error is the clean exit.
func (m *Model) fail(err error) (tea.Model, tea.Cmd) {
	var pageErr *hmi.PageError
	if errors.As(err, &pageErr) && m.manager.State() == hmi.StateShutdown {
		events.App.Stop(pageErr.Page)
		return m, tea.Quit
	}
	m.err = err
	events.Nav.Error(err)
	return m, tea.Quit
}

func (m *Model) View() string {
	display := m.manager.Display()
	header := styles.Header.Render(display.Title())
	body := styles.Body
	switch m.manager.State() {
	case hmi.StateStartup:
		body = styles.Startup
	case hmi.StateShutdown:
		body = styles.Shutdown
	}
	lines := []string{header, body.Render(display.Frame()), m.footerView()}
	if m.err != nil {
		lines = append(lines, styles.Error.Render("error: "+m.err.Error()))
	}
	return lipgloss.JoinVertical(lipgloss.Left, lines...)
}

func (m *Model) footerView() string {
	hints := []key.Binding{
		m.keys.Action, m.keys.Next, m.keys.Previous,
		m.keys.Back, m.keys.Home, m.keys.Quit,
	}
	parts := make([]string, 0, len(hints))
	for _, hint := range hints {
		help := hint.Help()
		parts = append(parts, styles.FooterKey.Render(help.Key)+" "+help.Desc)
	}
	return styles.Footer.Render(strings.Join(parts, "  "))
}
