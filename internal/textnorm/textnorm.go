// Package textnorm shapes clipboard text on its way to and from the
// clipboard. Nothing here touches the clipboard itself.
package textnorm

import "strings"

// lineEndings maps every line-ending sequence Windows programs produce to a
// single line feed. CRLF is listed first so it is not split into two breaks.
var lineEndings = strings.NewReplacer(
	"\r\n", "\n",
	"\r", "\n",
	"\f", "\n",
	"\u0085", "\n",
	"\u2028", "\n",
	"\u2029", "\n",
)

// CanonicalizeLineEndings rewrites all line endings in s to "\n".
func CanonicalizeLineEndings(s string) string {
	return lineEndings.Replace(s)
}

// TrimTrailingNewline removes every trailing "\n", not just the last one.
func TrimTrailingNewline(s string) string {
	return strings.TrimRight(s, "\n")
}

// ComposeAppend returns the clipboard value after appending in to old.
func ComposeAppend(old, in string) string {
	return old + in
}
