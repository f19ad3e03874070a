package syntax

// Cursor is a read-only view onto a position in the green tree that
// additionally knows its own absolute byte offsets. The green tree
// itself stores only relative lengths so that subtrees remain
// structurally shared; Cursor reconstructs absolute positions by
// carrying the running offset as it walks down from the root.
//
// This plays the role gotypst's LinkedNode plays over its own green
// tree, minus the Numberize/ReplaceChildren/UpdateParent incremental-
// edit machinery: lfr never reparses incrementally, so a Cursor is
// built fresh over a finished tree and never mutated in place.
type Cursor struct {
	inner  NodeOrToken
	start  int
	parent *Cursor
}

// NewCursor builds a cursor rooted at n, starting at byte offset 0.
func NewCursor(n *Node) *Cursor {
	return &Cursor{inner: n, start: 0, parent: nil}
}

// Kind returns the syntax kind of the element the cursor points at.
func (c *Cursor) Kind() SyntaxKind {
	switch v := c.inner.(type) {
	case *Node:
		return v.Kind()
	case *Token:
		return v.Kind()
	default:
		panic("syntax: cursor over unknown NodeOrToken implementation")
	}
}

// Start returns the absolute byte offset where the element begins.
func (c *Cursor) Start() int { return c.start }

// End returns the absolute byte offset just past the element.
func (c *Cursor) End() int { return c.start + c.inner.Len() }

// Range returns [Start, End).
func (c *Cursor) Range() (int, int) { return c.Start(), c.End() }

// Parent returns the cursor's parent, or nil at the root.
func (c *Cursor) Parent() *Cursor { return c.parent }

// Node returns the underlying Node if the cursor points at one, and ok.
func (c *Cursor) Node() (n *Node, ok bool) {
	n, ok = c.inner.(*Node)
	return
}

// Token returns the underlying Token if the cursor points at one, and ok.
func (c *Cursor) Token() (t *Token, ok bool) {
	t, ok = c.inner.(*Token)
	return
}

// ChildrenWithTokens returns cursors over the element's direct children,
// including trivia tokens, in source order with correct absolute
// offsets. It returns nil for a leaf Token.
func (c *Cursor) ChildrenWithTokens() []*Cursor {
	n, ok := c.inner.(*Node)
	if !ok {
		return nil
	}
	kids := n.ChildrenWithTokens()
	out := make([]*Cursor, len(kids))
	offset := c.start
	for i, k := range kids {
		out[i] = &Cursor{inner: k, start: offset, parent: c}
		offset += k.Len()
	}
	return out
}

// Children returns cursors over the element's direct Node children
// only, skipping tokens, with correct absolute offsets.
func (c *Cursor) Children() []*Cursor {
	var out []*Cursor
	for _, k := range c.ChildrenWithTokens() {
		if _, ok := k.Node(); ok {
			out = append(out, k)
		}
	}
	return out
}

// Text returns the exact source text spanned by the cursor's element.
func (c *Cursor) Text() string {
	switch v := c.inner.(type) {
	case *Node:
		return v.Text()
	case *Token:
		return v.Text()
	default:
		return ""
	}
}
