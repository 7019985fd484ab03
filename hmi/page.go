package hmi

import (
	"fmt"
	"iter"
)

// Page is the capability contract every displayable unit implements.
//
// The type parameter D is the display driver the embedding application
// renders to; the engine never inspects it. Pages are unaware of their
// position in the tree: they receive interactions, answer with navigation
// directives, and render on demand.
type Page[D any] interface {
	// Display renders the current content onto the display driver. It is
	// called once per tick for the active page only and must not mutate
	// domain state.
	Display(display D)

	// Dispatch turns a raw interaction into a navigation directive.
	// Pages with internal state (selection cursors, text buffers) consume
	// next/previous/action here and only emit a movement directive when
	// leaving the page; everything else uses DefaultNavigation.
	Dispatch(interaction Interaction) Navigation

	// Update is called once per tick for the active page before Display.
	// titles enumerates the titles of the page's direct children in
	// registration order; it is finite and restartable, and nil when the
	// caller has no child row to offer. Menu-style pages consume it to
	// build their label list, pages with a lifetime age themselves here.
	// A non-nil error is fatal and propagates to the run loop unchanged.
	Update(titles iter.Seq[string]) (Navigation, error)

	// Title names the page when a parent menu lists its children.
	Title() string
}

// PageError is the single fatal error a page can raise from Update. It is
// used in practice by the shutdown page to signal that its timer is truly
// exhausted and the run loop should end.
type PageError struct {
	Page string
}

func (e *PageError) Error() string {
	if e.Page == "" {
		return "page update failed"
	}
	return fmt.Sprintf("page %q update failed", e.Page)
}
