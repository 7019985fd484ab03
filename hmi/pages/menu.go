package pages

import (
	"iter"
	"strings"

	"github.com/lithammer/fuzzysearch/fuzzy"

	"github.com/atomicstack/multipage-hmi/hmi"
)

// Menu lists the sub pages of its position in the page tree and lets the
// user pick one with next/previous/action. The entries are rebuilt on
// every update from the titles the manager hands in, so registering a new
// sub page shows up without any bookkeeping here.
type Menu struct {
	Basic
	selected int
	back     string
	titles   []string
	filter   string
}

// NewMenu returns a menu page. back, when non-empty, appends a synthetic
// entry of that label which navigates up instead of down.
func NewMenu(title, back string) *Menu {
	return &Menu{Basic: NewBasic(title, nil), selected: 1, back: back}
}

// maxItems counts the selectable entries, the synthetic back entry
// included.
func (m *Menu) maxItems() int {
	n := len(m.titles)
	if m.back != "" {
		n++
	}
	return n
}

// Selected returns the 1-based index of the highlighted entry.
func (m *Menu) Selected() int {
	return m.selected
}

// SetFilter installs a fuzzy query. The next update jumps the selection
// to the best-matching entry; an empty query leaves the selection alone.
func (m *Menu) SetFilter(query string) {
	m.filter = query
}

func (m *Menu) Dispatch(interaction hmi.Interaction) hmi.Navigation {
	switch interaction {
	case hmi.Action:
		if m.back != "" && m.selected == len(m.titles)+1 {
			return hmi.NavUp
		}
		return hmi.NthSubpage(m.selected)
	case hmi.Next:
		m.selected++
		if m.selected > m.maxItems() {
			m.selected = 1
		}
		return hmi.NavUpdate
	case hmi.Previous:
		if m.selected > 1 {
			m.selected--
		}
		return hmi.NavUpdate
	default:
		return hmi.DefaultNavigation(interaction)
	}
}

func (m *Menu) Update(subTitles iter.Seq[string]) (hmi.Navigation, error) {
	m.titles = m.titles[:0]
	if subTitles != nil {
		for title := range subTitles {
			m.titles = append(m.titles, title)
		}
	}
	if max := m.maxItems(); m.selected > max && max > 0 {
		m.selected = max
	}
	if best := m.bestMatch(); best > 0 {
		m.selected = best
	}
	nav, _ := m.tick()
	return nav, nil
}

// bestMatch resolves the filter against the current entries, 1-based,
// 0 when the filter is empty or matches nothing.
func (m *Menu) bestMatch() int {
	trimmed := strings.TrimSpace(m.filter)
	if trimmed == "" {
		return 0
	}
	ranks := fuzzy.RankFindNormalizedFold(trimmed, m.titles)
	best := -1
	bestRank := 0
	for _, rank := range ranks {
		if best == -1 || rank.Distance < bestRank {
			best = rank.OriginalIndex
			bestRank = rank.Distance
		}
	}
	if best >= 0 {
		return best + 1
	}
	lowered := strings.ToLower(trimmed)
	for i, title := range m.titles {
		if strings.Contains(strings.ToLower(title), lowered) {
			return i + 1
		}
	}
	return 0
}

// Content renders the entries in one line with the selected one
// bracketed, e.g. "[ foo ] bar baz ".
func (m *Menu) Content() string {
	var sb strings.Builder
	entries := m.titles
	if m.back != "" {
		entries = append(append([]string{}, m.titles...), m.back)
	}
	for i, entry := range entries {
		if i+1 == m.selected {
			sb.WriteString("[ ")
			sb.WriteString(entry)
			sb.WriteString(" ] ")
		} else {
			sb.WriteString(entry)
			sb.WriteString(" ")
		}
	}
	return sb.String()
}
