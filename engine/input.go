package engine

// InputBuffer holds the single pending direction for the next tick
// The reversal guard compares against the direction applied on the last tick,
// so two quick requests within one tick cannot chain into a 180° turn
type InputBuffer struct {
	current Direction // Effective direction of the previous tick
	pending Direction // Most recent accepted request
}

// Reset sets both the effective and pending direction
func (b *InputBuffer) Reset(d Direction) {
	b.current = d
	b.pending = d
}

// Request stores d unless it reverses the current direction, returns acceptance
func (b *InputBuffer) Request(d Direction) bool {
	if !d.Valid() || b.current.IsOpposite(d) {
		return false
	}
	b.pending = d
	return true
}

// Commit makes the pending direction effective for this tick and returns it
func (b *InputBuffer) Commit() Direction {
	b.current = b.pending
	return b.current
}

// Current returns the effective direction of the last tick
func (b *InputBuffer) Current() Direction {
	return b.current
}

// Pending returns the direction the next tick will apply
func (b *InputBuffer) Pending() Direction {
	return b.pending
}
