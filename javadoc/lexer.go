// Package javadoc tokenizes Javadoc comments ("/** ... */") into a lossless
// sequence of typed tokens for the line re-wrapping renderer.
//
// The lexer never interprets the comment: concatenating the Text of the raw
// token sequence reproduces the stripped input exactly. Classification only
// decides where the renderer is allowed to break or collapse whitespace.
package javadoc

import (
	"errors"
	"fmt"
	"strings"
)

const (
	openMarker  = "/**"
	closeMarker = "*/"
)

var (
	// ErrMissingOpen means the input does not start with "/**".
	ErrMissingOpen = errors.New(`comment must start with "/**"`)

	// ErrMissingClose means the input does not end with "*/" or is too short
	// to carry both markers.
	ErrMissingClose = errors.New(`comment must end with "*/"`)
)

// lexer drives the cursor through the rule table. One instance is created
// per comment, used once, and discarded; nothing is shared between runs.
type lexer struct {
	input      *CharCursor
	braceDepth NestingCounter
	preDepth   NestingCounter
	tableDepth NestingCounter

	// somethingSinceNewline is true once any non-whitespace content has been
	// consumed on the current line. Footer tags are only recognized while it
	// is false, so "@param" mid-sentence stays a literal.
	somethingSinceNewline bool
}

// Lex takes a full Javadoc comment, including "/**" and "*/", and returns the
// merged token sequence, including the marker tokens.
//
// Character escapes are not interpreted: an escaped "*/" is lexed as the
// literal escape text, never as the end marker.
func Lex(input string) ([]Token, error) {
	body, err := stripCommentMarkers(input)
	if err != nil {
		return nil, err
	}

	lx := &lexer{input: NewCharCursor(body)}

	return joinAdjacentLiterals(lx.tokenize()), nil
}

// stripCommentMarkers checks both comment markers up front and returns the
// text between them. Doing this ahead of time keeps the rule patterns simple:
// the newline rule can eat trailing whitespace without worrying about
// accidentally swallowing the "*/".
func stripCommentMarkers(input string) (string, error) {
	if !strings.HasPrefix(input, openMarker) {
		return "", fmt.Errorf("%w, got %q", ErrMissingOpen, truncateForError(input))
	}
	if !strings.HasSuffix(input, closeMarker) || len(input) <= len(openMarker)+1 {
		return "", fmt.Errorf("%w, got %q", ErrMissingClose, truncateForError(input))
	}
	return input[len(openMarker) : len(input)-len(closeMarker)], nil
}

// truncateForError keeps error messages readable for huge comments.
func truncateForError(s string) string {
	const limit = 80
	if len(s) <= limit {
		return s
	}
	return s[:limit] + "..."
}

// tokenize produces the raw (pre-merge) token sequence, one token per
// iteration, with the marker tokens attached on both ends.
func (lx *lexer) tokenize() []Token {
	tokens := []Token{{Type: TypeBeginComment, Text: openMarker}}

	for !lx.input.Exhausted() {
		typ := lx.consumeToken()
		tokens = append(tokens, Token{Type: typ, Text: lx.input.TakeRecorded()})
	}

	tokens = append(tokens, Token{Type: TypeEndComment, Text: closeMarker})
	return tokens
}

// consumeToken advances the cursor past exactly one token and returns its
// type. The rules run in fixed priority order; the first match wins.
//
// The ordering matters:
//   - whitespace and newline units go first so every later rule can assume it
//     sits on content;
//   - brace tracking goes before HTML detection so HTML-like text inside
//     "{@code ...}" is never misread as markup;
//   - pre/table detection goes before the preserving fallback and the
//     structural tags so verbatim regions open and close correctly;
//   - the literal fallback is last and matches any remaining character.
func (lx *lexer) consumeToken() Type {
	preserveExistingFormatting := lx.preDepth.IsPositive() || lx.tableDepth.IsPositive()

	if lx.input.TryConsumeRegex(newlinePattern) {
		lx.somethingSinceNewline = false
		if preserveExistingFormatting {
			return TypeForcedNewline
		}
		return TypeWhitespace
	}
	if lx.input.TryConsume(" ") || lx.input.TryConsume("\t") {
		// Inside <pre>/<table> a space is a literal, not whitespace, so the
		// renderer can't reflow it away.
		if preserveExistingFormatting {
			return TypeLiteral
		}
		return TypeWhitespace
	}

	if !lx.somethingSinceNewline && lx.input.TryConsumeRegex(footerTagPattern) {
		lx.somethingSinceNewline = true
		return TypeFooterTag
	}
	lx.somethingSinceNewline = true

	if lx.input.TryConsumeRegex(inlineTagOpenPattern) {
		lx.braceDepth.Increment()
		return TypeLiteral
	}
	if lx.input.TryConsume("{") {
		// A bare "{" only deepens an already open inline tag;
		// on its own it does not start one.
		lx.braceDepth.IncrementIfPositive()
		return TypeLiteral
	}
	if lx.input.TryConsume("}") {
		lx.braceDepth.DecrementIfPositive()
		return TypeLiteral
	}

	// Inside an inline tag no HTML interpretation is attempted at all.
	if lx.braceDepth.IsPositive() {
		lx.mustConsumeLiteral()
		return TypeLiteral
	}

	if lx.input.TryConsumeRegex(preOpenPattern) {
		lx.preDepth.Increment()
		return TypePreOpen
	}
	if lx.input.TryConsumeRegex(preClosePattern) {
		lx.preDepth.DecrementIfPositive()
		return TypePreClose
	}
	if lx.input.TryConsumeRegex(tableOpenPattern) {
		lx.tableDepth.Increment()
		return TypeTableOpen
	}
	if lx.input.TryConsumeRegex(tableClosePattern) {
		lx.tableDepth.DecrementIfPositive()
		return TypeTableClose
	}

	// Anything else inside a verbatim region is consumed as-is, before the
	// structural tags below get a chance to reinterpret it.
	if preserveExistingFormatting {
		lx.mustConsumeLiteral()
		return TypeLiteral
	}

	switch {
	case lx.input.TryConsumeRegex(paragraphOpenPattern):
		return TypeParagraphOpen
	case lx.input.TryConsumeRegex(paragraphClosePattern):
		return TypeParagraphClose
	case lx.input.TryConsumeRegex(listOpenPattern):
		return TypeListOpen
	case lx.input.TryConsumeRegex(listClosePattern):
		return TypeListClose
	case lx.input.TryConsumeRegex(listItemOpenPattern):
		return TypeListItemOpen
	case lx.input.TryConsumeRegex(listItemClosePattern):
		return TypeListItemClose
	case lx.input.TryConsumeRegex(blockquoteOpenPattern):
		return TypeBlockquoteOpen
	case lx.input.TryConsumeRegex(blockquoteClosePattern):
		return TypeBlockquoteClose
	case lx.input.TryConsumeRegex(headerOpenPattern):
		return TypeHeaderOpen
	case lx.input.TryConsumeRegex(headerClosePattern):
		return TypeHeaderClose
	case lx.input.TryConsumeRegex(breakPattern):
		return TypeBreak
	case lx.input.TryConsumeRegex(htmlCommentPattern):
		return TypeHTMLComment
	case lx.input.TryConsumeRegex(literalPattern):
		return TypeLiteral
	}

	// Unreachable: literalPattern matches any single character except the
	// ones handled by the rules above.
	panic(fmt.Sprintf("javadoc: no lexer rule matched at %q", truncateForError(lx.input.rest())))
}

// mustConsumeLiteral consumes one literal chunk and panics if it can't.
// The callers have already ruled out every character the literal pattern
// excludes, so a failure here is a defect in the rule table, not bad input.
func (lx *lexer) mustConsumeLiteral() {
	if !lx.input.TryConsumeRegex(literalPattern) {
		panic("javadoc: literal pattern failed to consume inside nested region")
	}
}
