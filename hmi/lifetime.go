package hmi

// Lifetime counts update ticks and maps "limit ticks without a reset" to a
// navigation target. It is owned by a page and mutated only from that
// page's Update; the manager never touches it.
type Lifetime struct {
	target  Navigation
	limit   uint16
	counter uint16
}

// NewLifetime returns a lifetime that expires after limit update calls and
// then asks for target. A limit of 0 is over immediately, before the page
// is ever shown.
func NewLifetime(target Navigation, limit uint16) *Lifetime {
	return &Lifetime{target: target, limit: limit}
}

// Over reports whether the lifetime has expired.
func (l *Lifetime) Over() bool {
	return l.counter >= l.limit
}

// Target is the directive to emit once the lifetime is over.
func (l *Lifetime) Target() Navigation {
	return l.target
}

// Age records one update tick.
func (l *Lifetime) Age() {
	l.counter++
}

// Reset restarts the countdown, typically on page (re)activation.
func (l *Lifetime) Reset() {
	l.counter = 0
}
