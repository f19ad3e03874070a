package syntax

import (
	"fmt"
	"strings"
)

// Dump renders the tree rooted at n as an indented outline of
// Kind@start..end spans, one node or token per line; trivia and newline
// tokens are left out. It is meant for test assertions and debug
// output, not for machine consumption.
func Dump(n *Node) string {
	var b strings.Builder
	dump(&b, NewCursor(n), 0)
	return b.String()
}

func dump(b *strings.Builder, c *Cursor, depth int) {
	start, end := c.Range()
	if _, ok := c.Token(); ok {
		if c.Kind().IsTrivia() || c.Kind() == Newline {
			return
		}
		fmt.Fprintf(b, "%s%s@%d..%d %q\n", strings.Repeat("  ", depth), c.Kind(), start, end, c.Text())
		return
	}
	fmt.Fprintf(b, "%s%s@%d..%d\n", strings.Repeat("  ", depth), c.Kind(), start, end)
	for _, child := range c.ChildrenWithTokens() {
		dump(b, child, depth+1)
	}
}
