// Package pages provides the stock page kinds used on top of the hmi
// engine: plain text, menus, string entry, a clock, and the dedicated
// startup/shutdown pages.
//
// None of them knows how to draw itself onto a concrete display; they
// expose their Content as a string and leave the Display method to the
// embedding application, which knows the display driver type. All of them
// embed Basic and therefore inherit the default interaction mapping.
package pages

import (
	"iter"

	"github.com/atomicstack/multipage-hmi/hmi"
)

// ContentPage is what the stock pages implement: the full page contract
// except Display, plus a textual Content. Applications wrap a ContentPage
// in a type that knows how to put the content onto their display.
type ContentPage interface {
	Dispatch(hmi.Interaction) hmi.Navigation
	Update(iter.Seq[string]) (hmi.Navigation, error)
	Title() string
	Content() string
}

// Basic carries what every stock page has: a title and an optional
// lifetime. It supplies the default Dispatch, Update, and Title so
// concrete kinds only override what they need.
type Basic struct {
	title    string
	lifetime *hmi.Lifetime
}

// NewBasic returns page basics with the given title. lifetime may be nil
// for pages that live forever.
func NewBasic(title string, lifetime *hmi.Lifetime) Basic {
	return Basic{title: title, lifetime: lifetime}
}

// Title implements the Page contract.
func (b *Basic) Title() string {
	return b.title
}

// Lifetime exposes the optional lifetime, nil when the page lives forever.
func (b *Basic) Lifetime() *hmi.Lifetime {
	return b.lifetime
}

// Dispatch applies the default interaction mapping.
func (b *Basic) Dispatch(interaction hmi.Interaction) hmi.Navigation {
	return hmi.DefaultNavigation(interaction)
}

// Update ages the lifetime when one is configured and stays put otherwise.
func (b *Basic) Update(iter.Seq[string]) (hmi.Navigation, error) {
	nav, _ := b.tick()
	return nav, nil
}

// tick records one update and reports whether the lifetime just expired.
// On expiry the counter restarts, so an aging page alternates between
// staying and emitting its target, tick after tick.
func (b *Basic) tick() (hmi.Navigation, bool) {
	if b.lifetime == nil {
		return hmi.NavUpdate, false
	}
	b.lifetime.Age()
	if b.lifetime.Over() {
		b.lifetime.Reset()
		return b.lifetime.Target(), true
	}
	return hmi.NavUpdate, false
}

// Text is a static information page.
type Text struct {
	Basic
	text string
}

// NewText returns a text page. With a lifetime the page expires itself
// after the configured number of ticks and asks for the lifetime target.
func NewText(title, text string, lifetime *hmi.Lifetime) *Text {
	return &Text{Basic: NewBasic(title, lifetime), text: text}
}

// Content returns the page body.
func (p *Text) Content() string {
	return p.text
}

// Startup is the page shown while the system starts. Its lifetime is
// mandatory: while alive it keeps the manager in the startup phase by
// answering system-start, and on expiry it hands over to the home page.
type Startup struct {
	Text
}

// NewStartup returns a startup page surviving the given number of ticks.
func NewStartup(text string, updates uint16) *Startup {
	return &Startup{Text: Text{
		Basic: NewBasic("Startup", hmi.NewLifetime(hmi.NavHome, updates)),
		text:  text,
	}}
}

func (p *Startup) Update(iter.Seq[string]) (hmi.Navigation, error) {
	if nav, over := p.tick(); over {
		return nav, nil
	}
	return hmi.NavSystemStart, nil
}

// Shutdown is the page shown while the system stops. While its lifetime
// is alive it answers system-stop; once exhausted its Update fails with a
// PageError, the in-band signal for the run loop to terminate.
type Shutdown struct {
	Text
}

// NewShutdown returns a shutdown page surviving the given number of ticks.
func NewShutdown(text string, updates uint16) *Shutdown {
	return &Shutdown{Text: Text{
		Basic: NewBasic("Shutdown", hmi.NewLifetime(hmi.NavSystemStop, updates)),
		text:  text,
	}}
}

func (p *Shutdown) Update(iter.Seq[string]) (hmi.Navigation, error) {
	lifetime := p.Lifetime()
	lifetime.Age()
	if lifetime.Over() {
		return hmi.NavUpdate, &hmi.PageError{Page: p.Title()}
	}
	return hmi.NavSystemStop, nil
}
