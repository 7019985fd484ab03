package pages

import (
	"strings"
	"testing"

	"github.com/atomicstack/multipage-hmi/hmi"
)

func digitsPage(value Value) *EnterString {
	return NewEnterString("MyTitle", "0123", "Back", "Ok", value)
}

func TestEnterStringInit(t *testing.T) {
	page := digitsPage(IntCell(123))
	if page.Title() != "MyTitle" {
		t.Fatalf("title: got %q", page.Title())
	}
	if page.Buffer() != "123" {
		t.Fatalf("buffer: got %q", page.Buffer())
	}
	if page.maxKeys() != 6 {
		t.Fatalf("max keys: got %d", page.maxKeys())
	}

	bare := NewEnterString("MyTitle", "0123", "", "", IntCell(123))
	if bare.maxKeys() != 4 {
		t.Fatalf("max keys without back and ok: got %d", bare.maxKeys())
	}
}

func TestEnterStringNextWrapsAround(t *testing.T) {
	page := digitsPage(IntCell(0))
	for _, want := range []int{1, 2, 3, 4, 5, 0} {
		if got := page.Dispatch(hmi.Next); got != hmi.NavUpdate {
			t.Fatalf("next: got %v", got)
		}
		if page.cursor != want {
			t.Fatalf("cursor: got %d, want %d", page.cursor, want)
		}
	}
}

func TestEnterStringPreviousWrapsAround(t *testing.T) {
	page := digitsPage(IntCell(0))
	for _, want := range []int{5, 4, 3, 2, 1, 0} {
		if got := page.Dispatch(hmi.Previous); got != hmi.NavUpdate {
			t.Fatalf("previous: got %v", got)
		}
		if page.cursor != want {
			t.Fatalf("cursor: got %d, want %d", page.cursor, want)
		}
	}
}

func TestEnterStringActions(t *testing.T) {
	value := IntCell(0)
	page := digitsPage(value)

	// first key appends its character
	if got := page.Dispatch(hmi.Action); got != hmi.NavUpdate {
		t.Fatalf("action: got %v", got)
	}
	if page.Buffer() != "00" {
		t.Fatalf("buffer: got %q", page.Buffer())
	}

	// the delete key erases, harmlessly on an empty buffer too
	page.cursor = 4
	for _, want := range []string{"0", "", ""} {
		if got := page.Dispatch(hmi.Action); got != hmi.NavUpdate {
			t.Fatalf("delete action: got %v", got)
		}
		if page.Buffer() != want {
			t.Fatalf("buffer: got %q, want %q", page.Buffer(), want)
		}
	}

	page.cursor = 3
	page.Dispatch(hmi.Action)
	page.Dispatch(hmi.Action)
	page.cursor = 2
	page.Dispatch(hmi.Action)
	if page.Buffer() != "332" {
		t.Fatalf("buffer: got %q", page.Buffer())
	}

	// the back interaction erases without leaving the page
	if got := page.Dispatch(hmi.Back); got != hmi.NavUpdate {
		t.Fatalf("back: got %v", got)
	}
	if page.Buffer() != "33" {
		t.Fatalf("buffer: got %q", page.Buffer())
	}
	page.cursor = 4
	page.Dispatch(hmi.Action)
	if page.Buffer() != "3" {
		t.Fatalf("buffer: got %q", page.Buffer())
	}

	// home leaves without committing
	if got := page.Dispatch(hmi.Home); got != hmi.NavUp {
		t.Fatalf("home: got %v", got)
	}
	if value.Get() != 0 {
		t.Fatalf("value after home: got %d", value.Get())
	}

	// the ok key commits and leaves
	page.cursor = 5
	if got := page.Dispatch(hmi.Action); got != hmi.NavUp {
		t.Fatalf("finish action: got %v", got)
	}
	if value.Get() != 3 {
		t.Fatalf("value after finish: got %d", value.Get())
	}
}

func TestEnterStringRejectedValueKeepsPageOpen(t *testing.T) {
	value := IntCell(7)
	page := NewEnterString("MyTitle", "abc", "", "Ok", value)
	page.buffer = []rune("abc")
	page.cursor = 3
	if got := page.Dispatch(hmi.Action); got != hmi.NavUpdate {
		t.Fatalf("finish with unparsable buffer: got %v", got)
	}
	if value.Get() != 7 {
		t.Fatalf("value: got %d", value.Get())
	}
}

func TestEnterStringKeyLabel(t *testing.T) {
	page := digitsPage(IntCell(0))
	for cursor, want := range map[int]string{0: "0", 3: "3", 4: "Back", 5: "Ok"} {
		page.cursor = cursor
		if got := page.KeyLabel(); got != want {
			t.Fatalf("key label at %d: got %q, want %q", cursor, got, want)
		}
	}
}

func TestEnterStringContent(t *testing.T) {
	page := digitsPage(IntCell(12))
	content := page.Content()
	if !strings.HasPrefix(content, "12\n") {
		t.Fatalf("content: got %q", content)
	}
	if !strings.Contains(content, "[ 0 ] 1 2 3 Back Ok ") {
		t.Fatalf("content key row: got %q", content)
	}
}
