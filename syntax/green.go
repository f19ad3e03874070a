package syntax

import "strings"

// NodeOrToken is the element type of a node's children: either a nested
// Node or a leaf Token. Modelled on rowan's NodeOrToken, which is what
// the reference grammar is itself built on.
type NodeOrToken interface {
	Len() int
	nodeOrToken()
}

// Token is a leaf of the green tree: a single lexeme (or, for a fused
// composite like `==`, the concatenated text of 2-3 adjacent lexemes)
// together with its kind. Every byte of the input appears in exactly one
// Token across the whole tree.
type Token struct {
	kind SyntaxKind
	text string
}

// NewToken builds a leaf token. kind must not be Tombstone().
func NewToken(kind SyntaxKind, text string) *Token {
	return &Token{kind: kind, text: text}
}

// Kind returns the token's syntax kind.
func (t *Token) Kind() SyntaxKind { return t.kind }

// Text returns the token's exact source text.
func (t *Token) Text() string { return t.text }

// Len returns the byte length of the token's text.
func (t *Token) Len() int { return len(t.text) }

func (*Token) nodeOrToken() {}

// Node is an inner node of the green tree: a kind plus an ordered list of
// children, each of which is itself a Node or a Token. Nodes are
// immutable once built and safe to share.
type Node struct {
	kind     SyntaxKind
	children []NodeOrToken
	length   int
}

// NewNode builds an inner node from its children. The node's byte length
// is the sum of its children's lengths.
func NewNode(kind SyntaxKind, children []NodeOrToken) *Node {
	length := 0
	for _, c := range children {
		length += c.Len()
	}
	return &Node{kind: kind, children: children, length: length}
}

// Kind returns the node's syntax kind.
func (n *Node) Kind() SyntaxKind { return n.kind }

// Len returns the total byte length spanned by the node.
func (n *Node) Len() int { return n.length }

func (*Node) nodeOrToken() {}

// ChildrenWithTokens returns the node's direct children, nodes and
// tokens (including trivia) interleaved in source order.
func (n *Node) ChildrenWithTokens() []NodeOrToken {
	return n.children
}

// Children returns only the direct children that are themselves Nodes,
// skipping tokens. Useful for typed walkers that don't care about
// trivia or punctuation.
func (n *Node) Children() []*Node {
	var out []*Node
	for _, c := range n.children {
		if nd, ok := c.(*Node); ok {
			out = append(out, nd)
		}
	}
	return out
}

// Text reconstructs the node's full source text by concatenating every
// leaf token in tree order. For any input s, Parse(s) reconstructs s
// exactly byte-for-byte — this is the lossless round-trip invariant.
func (n *Node) Text() string {
	var b strings.Builder
	b.Grow(n.length)
	writeText(&b, n)
	return b.String()
}

func writeText(b *strings.Builder, n NodeOrToken) {
	switch v := n.(type) {
	case *Token:
		b.WriteString(v.text)
	case *Node:
		for _, c := range v.children {
			writeText(b, c)
		}
	}
}
