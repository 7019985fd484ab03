package manifest

import (
	"iter"
	"sort"
	"strings"

	"github.com/atomicstack/multipage-hmi/hmi"
	"github.com/atomicstack/multipage-hmi/hmi/pages"
	"github.com/atomicstack/multipage-hmi/internal/format/table"
)

// settingsPage lists every named setting with its current value, aligned
// in two columns. The values are re-read on every update, so edits made
// through an enter-string page show up on the next tick.
type settingsPage struct {
	pages.Basic
	settings map[string]pages.Value
	names    []string
	content  string
}

func newSettingsPage(title string, settings map[string]pages.Value) *settingsPage {
	names := make([]string, 0, len(settings))
	for name := range settings {
		names = append(names, name)
	}
	sort.Strings(names)
	return &settingsPage{
		Basic:    pages.NewBasic(title, nil),
		settings: settings,
		names:    names,
	}
}

func (p *settingsPage) Update(iter.Seq[string]) (hmi.Navigation, error) {
	rows := make([][]string, 0, len(p.names))
	for _, name := range p.names {
		rows = append(rows, []string{name, p.settings[name].String()})
	}
	p.content = strings.Join(table.Format(rows, []table.Alignment{table.AlignLeft, table.AlignRight}), "\n")
	return hmi.NavUpdate, nil
}

func (p *settingsPage) Content() string {
	return p.content
}
