package javadoc

import (
	"regexp"
	"strings"
)

// CharCursor is a forward-only scanner over the stripped comment body.
//
// The cursor records everything it consumes. TakeRecorded returns the
// recorded span and resets the record, so the lexer can turn "whatever the
// matched rule just ate" into a token without keeping offsets itself.
//
// There is no backtracking: once a TryConsume* call succeeds the consumed
// bytes belong to the current token.
type CharCursor struct {
	input string
	pos   int

	// mark is the start of the recorded-but-not-taken span.
	// Invariant: mark <= pos.
	mark int
}

// NewCharCursor creates a cursor positioned at the start of input.
func NewCharCursor(input string) *CharCursor {
	return &CharCursor{input: input}
}

// Exhausted reports whether the cursor has consumed the entire input.
func (c *CharCursor) Exhausted() bool {
	return c.pos >= len(c.input)
}

// TryConsume consumes lit and returns true only if the input at the current
// position starts with lit exactly. Otherwise the cursor does not move.
func (c *CharCursor) TryConsume(lit string) bool {
	if !strings.HasPrefix(c.input[c.pos:], lit) {
		return false
	}
	c.pos += len(lit)
	return true
}

// TryConsumeRegex consumes the text matched by re and returns true only if
// re matches at the current position. The match is anchored: the cursor
// never scans ahead looking for a later match.
//
// All patterns passed here must start with "^" so the regexp engine can't
// find a match past the current position.
func (c *CharCursor) TryConsumeRegex(re *regexp.Regexp) bool {
	loc := re.FindStringIndex(c.input[c.pos:])
	if loc == nil || loc[0] != 0 {
		return false
	}
	c.pos += loc[1]
	return true
}

// rest returns the unconsumed tail of the input. Only used for diagnostics.
func (c *CharCursor) rest() string {
	return c.input[c.pos:]
}

// TakeRecorded returns every character consumed since the previous call to
// TakeRecorded (or since the cursor was created) and resets the record.
func (c *CharCursor) TakeRecorded() string {
	s := c.input[c.mark:c.pos]
	c.mark = c.pos
	return s
}
