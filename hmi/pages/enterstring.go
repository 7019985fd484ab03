package pages

import (
	"iter"
	"strings"

	"github.com/atomicstack/multipage-hmi/hmi"
)

// EnterString collects a string from a fixed alphabet with the few-button
// vocabulary. Next and previous cycle a cursor over the alphabet plus the
// optional delete and ok keys, action applies the key under the cursor.
//
// The back interaction removes the last collected character rather than
// leaving the page, so input can be corrected on hardware that has the
// button. Home leaves with up-navigation. Both the delete key and the ok
// key exist so that a two-button panel, next and action only, can still
// erase and finish.
//
// On finish the collected buffer is written through the bound Value; a
// buffer the value rejects keeps the page open.
type EnterString struct {
	Basic
	alphabet []rune
	cursor   int
	buffer   []rune

	backLabel string
	okLabel   string
	value     Value
}

// NewEnterString returns an input page over the given alphabet bound to
// value. The buffer starts from the value's current representation.
// backLabel and okLabel, when non-empty, append the delete and the finish
// key to the cursor row, in that order.
func NewEnterString(title, alphabet, backLabel, okLabel string, value Value) *EnterString {
	return &EnterString{
		Basic:     NewBasic(title, nil),
		alphabet:  []rune(alphabet),
		buffer:    []rune(value.String()),
		backLabel: backLabel,
		okLabel:   okLabel,
		value:     value,
	}
}

// maxKeys counts the cursor positions, optional keys included.
func (p *EnterString) maxKeys() int {
	n := len(p.alphabet)
	if p.backLabel != "" {
		n++
	}
	if p.okLabel != "" {
		n++
	}
	return n
}

// onDelete reports whether the cursor sits on the delete key.
func (p *EnterString) onDelete() bool {
	return p.backLabel != "" && p.cursor == len(p.alphabet)
}

// onFinish reports whether the cursor sits on the ok key.
func (p *EnterString) onFinish() bool {
	if p.okLabel == "" {
		return false
	}
	if p.backLabel != "" {
		return p.cursor == len(p.alphabet)+1
	}
	return p.cursor == len(p.alphabet)
}

// Buffer returns the characters collected so far.
func (p *EnterString) Buffer() string {
	return string(p.buffer)
}

// KeyLabel returns what the action button would do at the current cursor,
// for rendering.
func (p *EnterString) KeyLabel() string {
	if p.onDelete() {
		return p.backLabel
	}
	if p.onFinish() {
		return p.okLabel
	}
	return string(p.alphabet[p.cursor])
}

func (p *EnterString) Dispatch(interaction hmi.Interaction) hmi.Navigation {
	switch interaction {
	case hmi.Action:
		if p.onDelete() {
			p.pop()
			return hmi.NavUpdate
		}
		if p.onFinish() {
			if err := p.value.SetString(string(p.buffer)); err != nil {
				return hmi.NavUpdate
			}
			return hmi.NavUp
		}
		p.buffer = append(p.buffer, p.alphabet[p.cursor])
		return hmi.NavUpdate
	case hmi.Back:
		p.pop()
		return hmi.NavUpdate
	case hmi.Home:
		return hmi.NavUp
	case hmi.Next:
		p.cursor++
		if p.cursor >= p.maxKeys() {
			p.cursor = 0
		}
		return hmi.NavUpdate
	case hmi.Previous:
		if p.cursor == 0 {
			p.cursor = p.maxKeys() - 1
		} else {
			p.cursor--
		}
		return hmi.NavUpdate
	default:
		return hmi.DefaultNavigation(interaction)
	}
}

func (p *EnterString) pop() {
	if len(p.buffer) > 0 {
		p.buffer = p.buffer[:len(p.buffer)-1]
	}
}

func (p *EnterString) Update(iter.Seq[string]) (hmi.Navigation, error) {
	return hmi.NavUpdate, nil
}

// Content renders the buffer and the key row with the cursor bracketed.
func (p *EnterString) Content() string {
	var sb strings.Builder
	sb.WriteString(string(p.buffer))
	sb.WriteString("\n")
	keys := make([]string, 0, p.maxKeys())
	for _, r := range p.alphabet {
		keys = append(keys, string(r))
	}
	if p.backLabel != "" {
		keys = append(keys, p.backLabel)
	}
	if p.okLabel != "" {
		keys = append(keys, p.okLabel)
	}
	for i, key := range keys {
		if i == p.cursor {
			sb.WriteString("[ ")
			sb.WriteString(key)
			sb.WriteString(" ] ")
		} else {
			sb.WriteString(key)
			sb.WriteString(" ")
		}
	}
	return sb.String()
}
