package render

import (
	"strings"
	"testing"

	"github.com/Drolfothesgnir/docfmt/javadoc"
	"github.com/stretchr/testify/require"
)

func lexForTest(t *testing.T, input string) []javadoc.Token {
	t.Helper()
	tokens, err := javadoc.Lex(input)
	require.NoError(t, err)
	return tokens
}

func TestRender_OneLiner(t *testing.T) {
	tokens := lexForTest(t, "/** Hello <b>world</b>. */")

	got := Render(tokens, Options{})
	require.Equal(t, "/** Hello <b>world</b>. */", got)
}

func TestRender_EmptyComment(t *testing.T) {
	tokens := lexForTest(t, "/***/")

	got := Render(tokens, Options{})
	require.Equal(t, "/** */", got)
}

func TestRender_WrapsAtWidth(t *testing.T) {
	tokens := lexForTest(t, "/** aaa bbb ccc ddd eee fff */")

	got := Render(tokens, Options{MaxLineLength: 14})
	require.Equal(t, "/**\n * aaa bbb ccc\n * ddd eee fff\n */", got)

	for _, line := range strings.Split(got, "\n") {
		require.LessOrEqual(t, len(line), 14, "line %q exceeds the width budget", line)
	}
}

func TestRender_FooterSection(t *testing.T) {
	input := "/**\n * Does a thing.\n *\n * @param a the first\n * @return the result\n */"
	tokens := lexForTest(t, input)

	// a comment already in canonical shape renders back to itself
	got := Render(tokens, Options{})
	require.Equal(t, input, got)
}

func TestRender_FooterTagsEachStartALine(t *testing.T) {
	tokens := lexForTest(t, "/**Summary. @ignored\n@param a x\n@return y*/")

	got := Render(tokens, Options{})
	lines := strings.Split(got, "\n")

	// "@ignored" was mid-line, so it stays glued to the prose; the real block
	// tags each open their own line
	require.Contains(t, lines, " * Summary. @ignored")
	require.Contains(t, lines, " * @param a x")
	require.Contains(t, lines, " * @return y")
}

func TestRender_WrappedFooterClauseGetsContinuationIndent(t *testing.T) {
	tokens := lexForTest(t, "/**@param averyword another word here*/")

	got := Render(tokens, Options{MaxLineLength: 20})
	require.Equal(t,
		"/**\n * @param averyword\n *     another word\n *     here\n */",
		got)
}

func TestRender_PreservesPreRegion(t *testing.T) {
	tokens := lexForTest(t, "/**<pre>\nint x = 1;\n</pre>*/")

	got := Render(tokens, Options{})
	require.Equal(t, "/**\n * <pre>\n * int x = 1;\n * </pre>\n */", got)
}

func TestRender_PreLinesAreNeverRewrapped(t *testing.T) {
	// far over any width budget, but inside <pre> the line must survive as-is
	tokens := lexForTest(t, "/**<pre>\na b c d e f g h i j k l m n o p\n</pre>*/")

	got := Render(tokens, Options{MaxLineLength: 10})
	require.Contains(t, got, " * a b c d e f g h i j k l m n o p\n")
}

func TestRender_ParagraphGetsBlankSeparator(t *testing.T) {
	tokens := lexForTest(t, "/**One.\n<p>Two.*/")

	got := Render(tokens, Options{})
	require.Equal(t, "/**\n * One.\n *\n * <p>Two.\n */", got)
}

func TestRender_BreakForcesNewline(t *testing.T) {
	tokens := lexForTest(t, "/**a<br>b*/")

	got := Render(tokens, Options{})
	require.Equal(t, "/**\n * a<br>\n * b\n */", got)
}

func TestRender_Indent(t *testing.T) {
	tokens := lexForTest(t, "/** Hi */")
	require.Equal(t, "  /** Hi */", Render(tokens, Options{Indent: 2}))

	tokens = lexForTest(t, "/**a\n@b c*/")
	require.Equal(t, "  /**\n   * a\n   *\n   * @b c\n   */", Render(tokens, Options{Indent: 2}))
}

func TestRender_LongCommentNeverRendersAsOneLiner(t *testing.T) {
	tokens := lexForTest(t, "/** this single line of prose is clearly longer than the tiny budget */")

	got := Render(tokens, Options{MaxLineLength: 24})
	require.True(t, strings.HasPrefix(got, "/**\n"), "expected a multi-line comment, got %q", got)
}

func TestRender_MergedAtWordIsNeverSplitFromItsText(t *testing.T) {
	// the merger glued "word @tag" together; no width budget may separate them
	tokens := lexForTest(t, "/**leading words then word @tag more*/")

	for width := 10; width <= 40; width++ {
		got := Render(tokens, Options{MaxLineLength: width})
		require.NotContains(t, got, "\n * @tag", "width %d broke the line right before @tag", width)
	}
}
