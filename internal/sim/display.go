package sim

import (
	"github.com/atomicstack/multipage-hmi/hmi"
	"github.com/atomicstack/multipage-hmi/hmi/pages"
	"github.com/atomicstack/multipage-hmi/internal/logging/events"
)

// Display is the in-memory display driver of the simulator. Pages render
// into it and the view reads the latest frame back out, so the display
// always holds exactly one page, like the character LCD it stands in for.
type Display struct {
	title string
	frame string
}

// Show replaces the displayed page.
func (d *Display) Show(title, content string) {
	d.title = title
	d.frame = content
	events.Page.Display(title)
}

// Title returns the title of the page on the display.
func (d *Display) Title() string {
	return d.title
}

// Frame returns the content of the page on the display.
func (d *Display) Frame() string {
	return d.frame
}

// wrapped adapts a content page to the simulator display.
type wrapped struct {
	pages.ContentPage
}

func (w *wrapped) Display(d *Display) {
	d.Show(w.Title(), w.Content())
}

// Wrap turns a stock content page into a page the simulator can manage.
func Wrap(page pages.ContentPage) hmi.Page[*Display] {
	return &wrapped{ContentPage: page}
}
