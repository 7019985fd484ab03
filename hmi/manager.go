package hmi

import "iter"

// State tracks which phase of its life the manager is in. Interactions are
// routed to the startup page while starting and to the shutdown page while
// stopping; the active page handles everything in between.
type State int

const (
	StateStartup State = iota
	StateOperational
	StateShutdown
)

// String returns the canonical lower-case name of the state.
func (s State) String() string {
	switch s {
	case StateStartup:
		return "startup"
	case StateOperational:
		return "operational"
	case StateShutdown:
		return "shutdown"
	}
	return "unknown"
}

// node wraps one parked page. The same-axis field doubles as the chain
// link (left chains link through left, down chains through down); the
// other-axis fields stash the context the page owned while it was focused,
// so that context survives until the page is focused again.
type node[D any] struct {
	page  Page[D]
	left  *node[D]
	right *node[D]
	up    *node[D]
	down  *node[D]
}

// Manager is the tree cursor that owns every registered page and switches
// among them. Exactly one page is active at a time; all others are parked
// on one of four singly linked chains relative to the focus:
//
//	left / right - siblings on the current level, nearest first
//	up           - ancestor levels exited by descending, innermost first
//	down         - children of the active page
//
//	a-------------------b-----------c
//	|                   |
//	d-----e-----f       o-p
//	|     |     |
//	g-h-i j-k-l m-n
//
// With a active, b and c sit on the left chain and d, e, f hang below; the
// root is wherever both up and left are empty. Every move swaps the focus
// with a chain head and exchanges the stashed other-axis context, so each
// move is the exact inverse of its opposite.
//
// The manager is single-threaded and not reentrant: no method may be
// called from inside a page's Display or Update.
type Manager[D any] struct {
	display  D
	page     Page[D]
	left     *node[D]
	right    *node[D]
	up       *node[D]
	down     *node[D]
	startup  Page[D]
	shutdown Page[D]
	state    State
}

// New returns a manager rendering to display with home as the mandatory
// initial page. Further pages are added with the Register calls.
func New[D any](display D, home Page[D]) *Manager[D] {
	return &Manager[D]{display: display, page: home, state: StateStartup}
}

// Register adds a page as a new sibling of the active page and focuses it.
/// Registration order therefore determines navigation order: the previously
// focused sibling is one Right move away.
func (m *Manager[D]) Register(page Page[D]) {
	m.pushLeft(page, nil, nil)
	m.activateLeft()
}

// RegisterSub adds a page as a new child of the active page and focuses it.
func (m *Manager[D]) RegisterSub(page Page[D]) {
	m.pushDown(page, nil, nil)
	m.activateDown()
}

// RegisterStartup sets the page shown during system start. Calling it again
// replaces the previous startup page.
func (m *Manager[D]) RegisterStartup(page Page[D]) {
	m.startup = page
}

// RegisterShutdown sets the page shown during system stop. Calling it again
// replaces the previous shutdown page.
func (m *Manager[D]) RegisterShutdown(page Page[D]) {
	m.shutdown = page
}

// State reports the current run state.
func (m *Manager[D]) State() State {
	return m.state
}

// Active exposes the focused page for diagnostics.
func (m *Manager[D]) Active() Page[D] {
	return m.page
}

// Display exposes the display driver the manager renders to.
func (m *Manager[D]) Display() D {
	return m.display
}

func (m *Manager[D]) pushLeft(page Page[D], up, down *node[D]) {
	m.left = &node[D]{page: page, left: m.left, up: up, down: down}
}

func (m *Manager[D]) pushRight(page Page[D], up, down *node[D]) {
	m.right = &node[D]{page: page, right: m.right, up: up, down: down}
}

func (m *Manager[D]) popLeft() (Page[D], *node[D], *node[D], bool) {
	n := m.left
	if n == nil {
		return nil, nil, nil, false
	}
	m.left = n.left
	return n.page, n.up, n.down, true
}

func (m *Manager[D]) popRight() (Page[D], *node[D], *node[D], bool) {
	n := m.right
	if n == nil {
		return nil, nil, nil, false
	}
	m.right = n.right
	return n.page, n.up, n.down, true
}

func (m *Manager[D]) pushDown(page Page[D], left, right *node[D]) {
	m.down = &node[D]{page: page, down: m.down, left: left, right: right}
}

func (m *Manager[D]) pushUp(page Page[D], left, right *node[D]) {
	m.up = &node[D]{page: page, up: m.up, left: left, right: right}
}

func (m *Manager[D]) popDown() (Page[D], *node[D], *node[D], bool) {
	n := m.down
	if n == nil {
		return nil, nil, nil, false
	}
	m.down = n.down
	return n.page, n.left, n.right, true
}

func (m *Manager[D]) popUp() (Page[D], *node[D], *node[D], bool) {
	n := m.up
	if n == nil {
		return nil, nil, nil, false
	}
	m.up = n.up
	return n.page, n.left, n.right, true
}

// activateLeft focuses the nearest left sibling. The displaced page moves
// onto the right chain carrying its own up/down context; the new focus gets
// its stashed up/down context installed. Returns false at the row end, in
// which case nothing changes.
func (m *Manager[D]) activateLeft() bool {
	page, up, down, ok := m.popLeft()
	if !ok {
		return false
	}
	displaced := m.page
	m.page = page
	m.pushRight(displaced, m.up, m.down)
	m.up, m.down = up, down
	return true
}

// activateRight is the exact inverse of activateLeft.
func (m *Manager[D]) activateRight() bool {
	page, up, down, ok := m.popRight()
	if !ok {
		return false
	}
	displaced := m.page
	m.page = page
	m.pushLeft(displaced, m.up, m.down)
	m.up, m.down = up, down
	return true
}

func (m *Manager[D]) activateMostRight() {
	for m.activateRight() {
	}
}

// activateDown descends into the head of the child chain, parking the level
// just left on the up chain. The displaced page carries its left/right
// context; the new focus restores its own.
func (m *Manager[D]) activateDown() bool {
	page, left, right, ok := m.popDown()
	if !ok {
		return false
	}
	displaced := m.page
	m.page = page
	m.pushUp(displaced, m.left, m.right)
	m.left, m.right = left, right
	return true
}

// activateUp first normalizes the current level to its rightmost sibling,
// then ascends one level, parking the normalized row on the down chain.
// Ascending always leaves a level from its rightmost page regardless of
// which sibling was focused when the move was requested.
func (m *Manager[D]) activateUp() bool {
	m.activateMostRight()
	page, left, right, ok := m.popUp()
	if !ok {
		return false
	}
	displaced := m.page
	m.page = page
	m.pushDown(displaced, m.left, m.right)
	m.left, m.right = left, right
	return true
}

// activateHome ascends until no parent remains, then walks to the rightmost
// root sibling. Landing on the rightmost rather than the first-registered
// sibling is long-standing behaviour the regression tests depend on.
func (m *Manager[D]) activateHome() {
	for m.activateUp() {
	}
	m.activateMostRight()
}

// subTitles enumerates the titles of the active page's children in
// registration order. The sequence is finite and restartable; it must not
// be consumed after the manager has moved again.
func (m *Manager[D]) subTitles() iter.Seq[string] {
	return func(yield func(string) bool) {
		for n := m.down; n != nil; n = n.left {
			if !yield(n.page.Title()) {
				return
			}
		}
	}
}

// SubPages enumerates the children of the active page for diagnostics and
// tests.
func (m *Manager[D]) SubPages() iter.Seq[Page[D]] {
	return func(yield func(Page[D]) bool) {
		for n := m.down; n != nil; n = n.left {
			if !yield(n.page) {
				return
			}
		}
	}
}

// Update runs one tick of the active page: its Update is fed the child
// titles, any resulting directive other than "stay" is executed
// immediately, and the (possibly new) active page is displayed.
//
// A page whose lifetime target re-triggers another zero-length lifetime
// can loop through here forever; the engine deliberately carries no cycle
// guard, so registries must not chain instantly expiring pages.
func (m *Manager[D]) Update() error {
	navigation, err := m.page.Update(m.subTitles())
	if err != nil {
		return err
	}
	if navigation != NavUpdate {
		if _, err := m.Dispatch(navigation); err != nil {
			return err
		}
	}
	m.page.Display(m.display)
	return nil
}

// DispatchInteraction routes a raw interaction to the page owning the
// current run state (startup page while starting, shutdown page while
// stopping, active page otherwise, falling back to the active page when
// the optional page is absent) and executes the directive it answers with.
func (m *Manager[D]) DispatchInteraction(interaction Interaction) (Navigation, error) {
	target := m.page
	switch m.state {
	case StateStartup:
		if m.startup != nil {
			target = m.startup
		}
	case StateShutdown:
		if m.shutdown != nil {
			target = m.shutdown
		}
	}
	return m.Dispatch(target.Dispatch(interaction))
}

// Dispatch executes a navigation directive against the cursor.
//
// Movement directives mutate the cursor, tick the new focus, and report
// back as "update" since the move has already been applied; walking past
// the end of a row, ascending from the root, or descending without
// children are silent no-ops. System directives run the startup/shutdown
// page instead and return whatever directive that page produced. The only
// error path is a PageError from a page's Update, which propagates
// unchanged; the canonical producer is the shutdown page's exhausted
// lifetime ending the run loop.
func (m *Manager[D]) Dispatch(navigation Navigation) (Navigation, error) {
	switch navigation.kind {
	case navSystemStart:
		m.activateHome()
		if m.startup == nil {
			m.state = StateOperational
			break
		}
		next, err := m.startup.Update(nil)
		if err != nil {
			return navigation, err
		}
		m.startup.Display(m.display)
		navigation = next
		switch navigation.kind {
		case navSystemStart:
			m.state = StateStartup
		case navSystemStop:
			m.state = StateShutdown
		default:
			m.state = StateOperational
		}
	case navSystemStop:
		m.state = StateShutdown
		if m.shutdown == nil {
			break
		}
		next, err := m.shutdown.Update(nil)
		if err != nil {
			return navigation, err
		}
		m.shutdown.Display(m.display)
		navigation = next
	case navLeft:
		// Left is the "next page" direction of the default mapping; at the
		// end of the row it cycles back to the rightmost sibling so a
		// single next button can loop through a level forever. Right
		// deliberately clamps instead.
		if !m.activateLeft() {
			m.activateMostRight()
		}
		if err := m.Update(); err != nil {
			return navigation, err
		}
		navigation = NavUpdate
		m.state = StateOperational
	case navRight:
		m.activateRight()
		if err := m.Update(); err != nil {
			return navigation, err
		}
		navigation = NavUpdate
		m.state = StateOperational
	case navUp:
		m.activateUp()
		if err := m.Update(); err != nil {
			return navigation, err
		}
		navigation = NavUpdate
		m.state = StateOperational
	case navHome:
		m.activateHome()
		if err := m.Update(); err != nil {
			return navigation, err
		}
		navigation = NavUpdate
		m.state = StateOperational
	case navNthSubpage:
		m.activateDown()
		for index := navigation.index; index > 1; index-- {
			m.activateLeft()
		}
		if err := m.Update(); err != nil {
			return navigation, err
		}
		navigation = NavUpdate
		m.state = StateOperational
	case navUpdate:
		if err := m.Update(); err != nil {
			return navigation, err
		}
	}
	return navigation, nil
}

// Close unlinks every chain iteratively, including the sub-chains stashed
// inside parked nodes. Registries can be arbitrarily wide and deep; an
// explicit worklist keeps tear-down flat instead of leaning on chained
// pointer traversal during collection.
func (m *Manager[D]) Close() {
	worklist := make([]*node[D], 0, 8)
	push := func(n *node[D]) {
		if n != nil {
			worklist = append(worklist, n)
		}
	}
	push(m.left)
	push(m.right)
	push(m.up)
	push(m.down)
	m.left, m.right, m.up, m.down = nil, nil, nil, nil
	m.page = nil
	m.startup = nil
	m.shutdown = nil
	for len(worklist) > 0 {
		n := worklist[len(worklist)-1]
		worklist = worklist[:len(worklist)-1]
		push(n.left)
		push(n.right)
		push(n.up)
		push(n.down)
		n.left, n.right, n.up, n.down = nil, nil, nil, nil
		n.page = nil
	}
}
