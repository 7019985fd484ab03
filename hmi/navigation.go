// Package hmi implements a page-based navigation engine for single-display,
// few-button human-machine interfaces.
//
// Exactly one page is visible at a time. A small fixed set of input events
// (action, next, previous, back, home, plus system start/stop) moves focus
// through a tree of pages held by a Manager. Pages never reference each
// other or the manager; they only answer interactions with navigation
// directives and render themselves onto whatever display type the embedding
// application provides.
package hmi

// Interaction is one of the raw input events an input driver can produce.
//
// SystemStart and SystemStop are lifecycle pseudo-events injected by the
// owner of the run loop, never by a button.
type Interaction int

const (
	SystemStart Interaction = iota
	SystemStop
	Action
	Next
	Previous
	Back
	Home
)

// String returns the canonical lower-case name of the interaction.
func (i Interaction) String() string {
	switch i {
	case SystemStart:
		return "system-start"
	case SystemStop:
		return "system-stop"
	case Action:
		return "action"
	case Next:
		return "next"
	case Previous:
		return "previous"
	case Back:
		return "back"
	case Home:
		return "home"
	}
	return "unknown"
}

type navKind int

const (
	navSystemStart navKind = iota
	navSystemStop
	navUpdate
	navLeft
	navRight
	navUp
	navHome
	navNthSubpage
)

// Navigation is a directive produced by a page's Dispatch or Update and
// executed by the Manager. The set is closed; NthSubpage is the only
// directive carrying a payload. Navigation values are comparable with ==.
type Navigation struct {
	kind  navKind
	index int
}

var (
	// NavSystemStart requests the startup sequence.
	NavSystemStart = Navigation{kind: navSystemStart}
	// NavSystemStop requests the shutdown sequence.
	NavSystemStop = Navigation{kind: navSystemStop}
	// NavUpdate keeps the focus where it is and refreshes the page.
	NavUpdate = Navigation{kind: navUpdate}
	// NavLeft moves focus to the nearest left sibling.
	NavLeft = Navigation{kind: navLeft}
	// NavRight moves focus to the nearest right sibling.
	NavRight = Navigation{kind: navRight}
	// NavUp ascends one tree level.
	NavUp = Navigation{kind: navUp}
	// NavHome returns focus to the root level.
	NavHome = Navigation{kind: navHome}
)

// NthSubpage descends into the n-th child of the active page. Indices are
// 1-based; 0 and 1 both select the first-registered child, and indices past
// the end of the child row stop on the last-registered child.
func NthSubpage(n int) Navigation {
	return Navigation{kind: navNthSubpage, index: n}
}

// SubpageIndex returns the payload of an NthSubpage directive, or 0.
func (n Navigation) SubpageIndex() int {
	if n.kind != navNthSubpage {
		return 0
	}
	return n.index
}

// String returns the canonical lower-case name of the directive.
func (n Navigation) String() string {
	switch n.kind {
	case navSystemStart:
		return "system-start"
	case navSystemStop:
		return "system-stop"
	case navUpdate:
		return "update"
	case navLeft:
		return "left"
	case navRight:
		return "right"
	case navUp:
		return "up"
	case navHome:
		return "home"
	case navNthSubpage:
		return "nth-subpage"
	}
	return "unknown"
}

// DefaultNavigation is the mechanical interaction-to-directive mapping used
// by pages that do not override Dispatch: action refreshes, next/previous
// walk the sibling row, back ascends, home resets. System events pass
// through unchanged.
func DefaultNavigation(interaction Interaction) Navigation {
	switch interaction {
	case SystemStart:
		return NavSystemStart
	case SystemStop:
		return NavSystemStop
	case Action:
		return NavUpdate
	case Next:
		return NavLeft
	case Previous:
		return NavRight
	case Back:
		return NavUp
	case Home:
		return NavHome
	}
	return NavUpdate
}
