package pages

import "strconv"

// Value is a settable value with a string representation. Pages that
// collect input, EnterString in particular, write their result through
// this interface so the application can bind any typed cell behind it.
type Value interface {
	SetString(string) error
	String() string
}

// Cell is a typed value with pluggable string conversion in both
// directions. The zero conversion functions are not allowed; use the
// StringCell, IntCell, and FloatCell constructors for the common cases.
type Cell[T any] struct {
	value  T
	format func(T) string
	parse  func(string) (T, error)
}

// NewCell returns a cell holding initial, converting with format and
// parse.
func NewCell[T any](initial T, format func(T) string, parse func(string) (T, error)) *Cell[T] {
	return &Cell[T]{value: initial, format: format, parse: parse}
}

// Get returns the current value.
func (c *Cell[T]) Get() T {
	return c.value
}

// Set replaces the current value.
func (c *Cell[T]) Set(value T) {
	c.value = value
}

// String implements Value.
func (c *Cell[T]) String() string {
	return c.format(c.value)
}

// SetString implements Value. The value is untouched when parsing fails.
func (c *Cell[T]) SetString(s string) error {
	parsed, err := c.parse(s)
	if err != nil {
		return err
	}
	c.value = parsed
	return nil
}

// StringCell returns a cell for plain text.
func StringCell(initial string) *Cell[string] {
	return NewCell(initial,
		func(s string) string { return s },
		func(s string) (string, error) { return s, nil })
}

// IntCell returns a cell for decimal integers.
func IntCell(initial int) *Cell[int] {
	return NewCell(initial, strconv.Itoa,
		func(s string) (int, error) { return strconv.Atoi(s) })
}

// FloatCell returns a cell for decimal floats.
func FloatCell(initial float64) *Cell[float64] {
	return NewCell(initial,
		func(f float64) string { return strconv.FormatFloat(f, 'f', -1, 64) },
		func(s string) (float64, error) { return strconv.ParseFloat(s, 64) })
}
