package manifest

import (
	"github.com/atomicstack/multipage-hmi/hmi"
	"github.com/atomicstack/multipage-hmi/hmi/pages"
)

// homePage is a text page with the interaction mapping the root of the
// tree needs: action enters the first sub page, back requests the system
// shutdown, and previous restarts the system, so every run-state change
// is reachable from the root of a few-button panel.
type homePage struct {
	*pages.Text
}

func newHomePage(title, text string) *homePage {
	return &homePage{Text: pages.NewText(title, text, nil)}
}

func (p *homePage) Dispatch(interaction hmi.Interaction) hmi.Navigation {
	switch interaction {
	case hmi.Action:
		return hmi.NthSubpage(1)
	case hmi.Back:
		return hmi.NavSystemStop
	case hmi.Previous:
		return hmi.NavSystemStart
	default:
		return hmi.DefaultNavigation(interaction)
	}
}

// defaultManifest reproduces the stock demo tree: an aging info page and
// a clock beside the home page, and a config menu with a nested submenu
// below it.
const defaultManifest = `
startup:
  text: Welcome message
  updates: 8
shutdown:
  text: Bye bye message
  updates: 10
home:
  title: Home
  text: "!!! This is the home page !!!"
  pages:
    - title: Menu
      kind: menu
      pages:
        - title: Config-1
          text: First config Page
        - title: Sub-Menu
          kind: menu
          pages:
            - title: Config-2
              text: Second config Page
            - title: Config-3
              text: Third config Page
        - title: Greeting
          kind: enterstring
          alphabet: "abcdefghijklmnopqrstuvwxyz"
          back: Del
          ok: Ok
          value: greeting
        - title: Settings
          kind: settings
settings:
  greeting:
    type: string
    initial: hello
pages:
  - title: First
    text: First Information Page with a short lifetime; moving to next page
    lifetime:
      target: left
      updates: 6
  - title: Time
    kind: clock
`
