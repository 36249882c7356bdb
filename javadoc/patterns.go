package javadoc

import (
	"fmt"
	"regexp"
)

// Every pattern here starts with "^" so CharCursor.TryConsumeRegex can only
// match at the current position.

var (
	// newlinePattern consumes a line break as one unit: trailing blanks on the
	// old line, the newline itself, the indentation of the new line, an
	// optional "*" continuation marker and at most one space after it.
	//
	// Eating the trailing blanks here also strips trailing whitespace the
	// renderer would otherwise have to count against the line limit. Inside
	// <pre>/<table> the whole unit becomes a forced newline, so nothing of the
	// original layout survives past the continuation marker — which is exactly
	// what the renderer re-synthesizes.
	newlinePattern = regexp.MustCompile(`^[ \t]*\n[ \t]*[*]?[ \t]?`)

	// footerTagPattern matches "@" plus word characters. The lexer makes sure
	// it is only tried at the beginning of a line's content.
	footerTagPattern = regexp.MustCompile(`^@\w*`)

	// inlineTagOpenPattern matches "{@" plus word characters, e.g. "{@code".
	inlineTagOpenPattern = regexp.MustCompile(`^[{]@\w*`)

	// htmlCommentPattern matches a full "<!-- -->" comment, non-greedily and
	// across lines.
	htmlCommentPattern = regexp.MustCompile(`(?s)^<!--.*?-->`)

	preOpenPattern     = openTagPattern("pre")
	preClosePattern    = closeTagPattern("pre")
	tableOpenPattern   = openTagPattern("table")
	tableClosePattern  = closeTagPattern("table")
	paragraphOpenPattern  = openTagPattern("p")
	paragraphClosePattern = closeTagPattern("p")
	listOpenPattern       = openTagPattern("ul|ol|dl")
	listClosePattern      = closeTagPattern("ul|ol|dl")
	listItemOpenPattern   = openTagPattern("li|dt|dd")
	listItemClosePattern  = closeTagPattern("li|dt|dd")
	blockquoteOpenPattern  = openTagPattern("blockquote")
	blockquoteClosePattern = closeTagPattern("blockquote")
	headerOpenPattern  = openTagPattern("h[1-6]")
	headerClosePattern = closeTagPattern("h[1-6]")
	breakPattern       = openTagPattern("br")

	// literalPattern consumes one character plus everything up to the next
	// character that could start another rule. Excluding "<", "{", "}" splits
	// "words" like "foo<b>bar" at tag boundaries so the tag detection above
	// gets a chance to run; the merger rejoins the pieces afterwards.
	literalPattern = regexp.MustCompile(`^.[^ \t\n@<{}*]*`)
)

// openTagPattern builds the case-insensitive pattern for an HTML open tag
// with any of the alternated names. Attributes inside the tag are consumed
// and ignored.
func openTagPattern(names string) *regexp.Regexp {
	return regexp.MustCompile(fmt.Sprintf(`(?i)^<(?:%s)\b[^>]*>`, names))
}

// closeTagPattern is openTagPattern for the "</name>" form.
func closeTagPattern(names string) *regexp.Regexp {
	return regexp.MustCompile(fmt.Sprintf(`(?i)^</(?:%s)\b[^>]*>`, names))
}
