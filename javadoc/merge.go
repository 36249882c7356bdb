package javadoc

import "strings"

// joinAdjacentLiterals rejoins the "words" the literal pattern split at tag
// and brace boundaries, e.g. ["foo", "<b>", "bar"] => ["foo<b>bar"].
//
// It also glues a "@word" literal that follows accumulated literals across
// whitespace, joined by one synthesized space. Without that, the renderer
// could break a line right before the "@", and the next formatting pass would
// lex it as a footer tag.
//
// The walk is position based rather than iterator based on purpose: after
// peeking past a whitespace run the merger sometimes has to re-examine the
// token it stopped on instead of consuming it.
func joinAdjacentLiterals(tokens []Token) []Token {
	output := make([]Token, 0, len(tokens))

	var accumulated strings.Builder

	i := 0
	for i < len(tokens) {
		if tokens[i].Type == TypeLiteral {
			accumulated.WriteString(tokens[i].Text)
			i++
			continue
		}

		// Current token is not a literal. If nothing is accumulated it passes
		// through unchanged.
		if accumulated.Len() == 0 {
			output = append(output, tokens[i])
			i++
			continue
		}

		// Peek past any whitespace run. The final token is always the end
		// marker, so this can't run off the slice while there is still a
		// non-whitespace token ahead.
		j := i
		for j < len(tokens) && tokens[j].Type == TypeWhitespace {
			j++
		}
		seenWhitespace := j > i

		if j < len(tokens) && tokens[j].Type == TypeLiteral && strings.HasPrefix(tokens[j].Text, "@") {
			// "text @word" case: absorb the @-literal and keep accumulating
			// instead of flushing, so the pair can never be split.
			accumulated.WriteString(" ")
			accumulated.WriteString(tokens[j].Text)
			i = j + 1
			continue
		}

		// Flush the accumulated literal, collapse the skipped whitespace run
		// to a single space, and re-examine the non-literal token.
		output = append(output, Token{Type: TypeLiteral, Text: accumulated.String()})
		accumulated.Reset()

		if seenWhitespace {
			output = append(output, Token{Type: TypeWhitespace, Text: " "})
		}

		i = j
	}

	// The end marker token always flushes the accumulator above, but guard
	// against a caller handing in a sequence without one.
	if accumulated.Len() > 0 {
		output = append(output, Token{Type: TypeLiteral, Text: accumulated.String()})
	}

	return output
}
