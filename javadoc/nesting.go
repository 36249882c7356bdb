package javadoc

// NestingCounter is a small non-negative depth counter.
//
// It deliberately exposes exactly three mutations instead of being a generic
// counter, because the lexer's three counters need different semantics:
//
//   - brace depth uses Increment for "{@foo" but IncrementIfPositive for a
//     bare "{", so a brace with no enclosing inline tag stays inert;
//   - pre/table depth use Increment on open tags and DecrementIfPositive on
//     close tags, so a stray close tag can't push the depth below zero.
type NestingCounter struct {
	value int
}

// Increment increases the depth unconditionally.
func (c *NestingCounter) Increment() {
	c.value++
}

// IncrementIfPositive increases the depth only if it is already positive.
func (c *NestingCounter) IncrementIfPositive() {
	if c.value > 0 {
		c.value++
	}
}

// DecrementIfPositive decreases the depth only if it is positive,
// keeping the counter non-negative for unbalanced input.
func (c *NestingCounter) DecrementIfPositive() {
	if c.value > 0 {
		c.value--
	}
}

// IsPositive reports whether the counter is above zero.
func (c *NestingCounter) IsPositive() bool {
	return c.value > 0
}
