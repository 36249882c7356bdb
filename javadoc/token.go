package javadoc

// Type defines the kind of token, e.g. literal, whitespace, footer tag start, etc.
type Type int

const (
	// TypeBeginComment is the synthesized leading "/**" marker.
	TypeBeginComment Type = iota
	// TypeEndComment is the synthesized trailing "*/" marker.
	TypeEndComment
	// TypeLiteral is text that must be reproduced unchanged and may be merged
	// with adjacent literals. Inline tag delimiters ("{@foo", bare "{", bare "}")
	// are literals too: they only affect the brace depth counter.
	TypeLiteral
	// TypeWhitespace is breakable whitespace: the renderer may collapse it or
	// turn it into a line break.
	TypeWhitespace
	// TypeForcedNewline is a newline inside a <pre> or <table> region.
	// The renderer must keep the break exactly where it is.
	TypeForcedNewline
	// TypeFooterTag is a block tag at the start of a line, e.g. "@param".
	TypeFooterTag
	TypeParagraphOpen
	TypeParagraphClose
	TypeListOpen
	TypeListClose
	TypeListItemOpen
	TypeListItemClose
	TypeBlockquoteOpen
	TypeBlockquoteClose
	TypeHeaderOpen
	TypeHeaderClose
	// TypeBreak is a <br> tag. It has no close variant.
	TypeBreak
	TypeHTMLComment
	TypePreOpen
	TypePreClose
	TypeTableOpen
	TypeTableClose
)

// typeNames maps token Types to their snake_case names for debug output and
// the /tokenize endpoint. This avoids a large switch.
var typeNames = map[Type]string{
	TypeBeginComment:    "begin_comment",
	TypeEndComment:      "end_comment",
	TypeLiteral:         "literal",
	TypeWhitespace:      "whitespace",
	TypeForcedNewline:   "forced_newline",
	TypeFooterTag:       "footer_tag",
	TypeParagraphOpen:   "paragraph_open",
	TypeParagraphClose:  "paragraph_close",
	TypeListOpen:        "list_open",
	TypeListClose:       "list_close",
	TypeListItemOpen:    "list_item_open",
	TypeListItemClose:   "list_item_close",
	TypeBlockquoteOpen:  "blockquote_open",
	TypeBlockquoteClose: "blockquote_close",
	TypeHeaderOpen:      "header_open",
	TypeHeaderClose:     "header_close",
	TypeBreak:           "break",
	TypeHTMLComment:     "html_comment",
	TypePreOpen:         "pre_open",
	TypePreClose:        "pre_close",
	TypeTableOpen:       "table_open",
	TypeTableClose:      "table_close",
}

// String returns the snake_case name of the token Type.
func (t Type) String() string {
	if name, ok := typeNames[t]; ok {
		return name
	}
	return "unknown"
}

// Token represents a single javadoc token.
//
// Except for the two synthesized comment markers and the single spaces
// synthesized by the merger, Text is always an exact contiguous substring of
// the stripped comment body. Tokens are immutable once created.
type Token struct {
	// Type defines the kind of the Token, e.g. literal, whitespace, or one of
	// the structural HTML tag kinds.
	Type Type

	// Text is the exact token string as it appeared in the input.
	Text string
}
