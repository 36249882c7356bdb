// Package render re-assembles a javadoc token sequence into formatted
// comment text: prose is wrapped at a target width, block tags each start
// their own line, and <pre>/<table> regions come out exactly as they went in.
package render

import (
	"strings"

	"github.com/Drolfothesgnir/docfmt/javadoc"
)

const (
	// DefaultMaxLineLength is the target width used when Options does not set one.
	DefaultMaxLineLength = 100

	// footerContinuationIndent is the extra indentation of wrapped footer
	// clause lines, so "@param foo the very long ..." continuations read as
	// part of the clause.
	footerContinuationIndent = 4
)

// Options controls the rendered layout. The lexer does not know about any of
// this: width and indentation are purely a rendering concern.
type Options struct {
	// MaxLineLength is the total line width budget, including the indent and
	// the " * " comment margin. Zero means DefaultMaxLineLength.
	MaxLineLength int `json:"max_line_length"`

	// Indent is the number of spaces before "/**" on every line.
	Indent int `json:"indent"`
}

func (opts Options) normalized() Options {
	if opts.MaxLineLength <= 0 {
		opts.MaxLineLength = DefaultMaxLineLength
	}
	if opts.Indent < 0 {
		opts.Indent = 0
	}
	return opts
}

// writer accumulates finished content lines (without the indent and " * "
// margin, which are attached at assembly time).
type writer struct {
	opts Options

	lines []string
	cur   strings.Builder

	// pendingSpace is an unmaterialized breakable space: the next word either
	// follows it on the same line or starts a new one.
	pendingSpace bool

	// preserveDepth counts open <pre>/<table> regions. While positive the
	// writer never wraps on its own.
	preserveDepth int

	// inFooter is true once the first block tag was seen.
	inFooter bool
}

// Render turns the token sequence produced by javadoc.Lex into formatted
// comment text. Comments that fit render as a single "/** ... */" line,
// everything else as a standard multi-line comment block.
func Render(tokens []javadoc.Token, opts Options) string {
	w := &writer{opts: opts.normalized()}

	for _, tok := range tokens {
		w.write(tok)
	}

	return w.assemble()
}

func (w *writer) write(tok javadoc.Token) {
	switch tok.Type {
	case javadoc.TypeBeginComment, javadoc.TypeEndComment:
		// markers are re-synthesized at assembly time

	case javadoc.TypeWhitespace:
		w.pendingSpace = true

	case javadoc.TypeForcedNewline:
		w.newLine()

	case javadoc.TypeLiteral, javadoc.TypeHTMLComment:
		w.appendWord(tok.Text)

	case javadoc.TypeFooterTag:
		// every block tag starts its own line; the first one also gets a
		// blank separator line after the prose
		if !w.inFooter && w.hasContent() {
			w.flushLine()
			w.lines = append(w.lines, "")
		}
		w.inFooter = true
		w.flushLine()
		w.appendWord(tok.Text)

	case javadoc.TypeParagraphOpen, javadoc.TypeHeaderOpen:
		if w.hasContent() {
			w.flushLine()
			w.lines = append(w.lines, "")
		}
		w.appendWord(tok.Text)

	case javadoc.TypePreOpen, javadoc.TypeTableOpen:
		w.flushLine()
		w.appendWord(tok.Text)
		w.preserveDepth++

	case javadoc.TypePreClose, javadoc.TypeTableClose:
		w.flushLine()
		w.appendWord(tok.Text)
		if w.preserveDepth > 0 {
			w.preserveDepth--
		}

	case javadoc.TypeListOpen, javadoc.TypeListClose,
		javadoc.TypeListItemOpen, javadoc.TypeBlockquoteOpen,
		javadoc.TypeBlockquoteClose:
		w.flushLine()
		w.appendWord(tok.Text)

	case javadoc.TypeHeaderClose, javadoc.TypeBreak:
		w.appendWord(tok.Text)
		w.newLine()

	default:
		// paragraph close, list item close: inline, like an ordinary word
		w.appendWord(tok.Text)
	}
}

// appendWord places text on the current line, materializing a pending space
// or wrapping to a new line when the width budget is exceeded.
func (w *writer) appendWord(text string) {
	if w.pendingSpace {
		w.pendingSpace = false
		if w.cur.Len() > 0 {
			if w.preserveDepth == 0 && w.cur.Len()+1+len(text) > w.contentWidth() {
				w.newLine()
				// wrapped continuations of a footer clause read as part of it
				if w.inFooter {
					w.cur.WriteString(strings.Repeat(" ", footerContinuationIndent))
				}
			} else {
				w.cur.WriteByte(' ')
			}
		}
	}
	w.cur.WriteString(text)
}

// contentWidth is the budget for the text after the indent and " * " margin.
func (w *writer) contentWidth() int {
	width := w.opts.MaxLineLength - w.opts.Indent - len(" * ")
	if width < 1 {
		width = 1
	}
	return width
}

func (w *writer) hasContent() bool {
	return w.cur.Len() > 0 || len(w.lines) > 0
}

// flushLine ends the current line if it has any content; blank lines are
// only ever added explicitly.
func (w *writer) flushLine() {
	if w.cur.Len() > 0 {
		w.newLine()
	}
	w.pendingSpace = false
}

func (w *writer) newLine() {
	w.lines = append(w.lines, w.cur.String())
	w.cur.Reset()
	w.pendingSpace = false
}

func (w *writer) assemble() string {
	pad := strings.Repeat(" ", w.opts.Indent)

	// a comment with a single content line renders as a one-liner when it fits
	if len(w.lines) == 0 {
		line := w.cur.String()
		if w.opts.Indent+len("/** ")+len(line)+len(" */") <= w.opts.MaxLineLength {
			if line == "" {
				return pad + "/** */"
			}
			return pad + "/** " + line + " */"
		}
	}

	w.flushLine()

	var b strings.Builder
	b.WriteString(pad)
	b.WriteString("/**\n")
	for _, line := range w.lines {
		b.WriteString(pad)
		if line == "" {
			b.WriteString(" *\n")
			continue
		}
		b.WriteString(" * ")
		b.WriteString(line)
		b.WriteByte('\n')
	}
	b.WriteString(pad)
	b.WriteString(" */")
	return b.String()
}
