package syntax

import "testing"

func TestNodeTextRoundTrip(t *testing.T) {
	ident := NewToken(Ident, "x")
	eq := NewToken(Eq, "=")
	ws := NewToken(Whitespace, " ")
	num := NewToken(IntNumber, "1")

	decl := NewNode(DeclarationStmt, []NodeOrToken{ident, ws, eq, ws, num})

	const want = "x = 1"
	if got := decl.Text(); got != want {
		t.Errorf("Text() = %q, want %q", got, want)
	}
	if decl.Len() != len(want) {
		t.Errorf("Len() = %d, want %d", decl.Len(), len(want))
	}
}

func TestNodeChildrenFiltersToNodes(t *testing.T) {
	inner := NewNode(PrimaryExpr, []NodeOrToken{NewToken(IntNumber, "1")})
	tok := NewToken(Plus, "+")
	outer := NewNode(BinExpr, []NodeOrToken{inner, tok, inner})

	kids := outer.Children()
	if len(kids) != 2 {
		t.Fatalf("Children() returned %d nodes, want 2", len(kids))
	}
	for _, k := range kids {
		if k.Kind() != PrimaryExpr {
			t.Errorf("Children()[i].Kind() = %s, want PrimaryExpr", k.Kind())
		}
	}

	withTokens := outer.ChildrenWithTokens()
	if len(withTokens) != 3 {
		t.Fatalf("ChildrenWithTokens() returned %d, want 3", len(withTokens))
	}
}

func TestEmptyNodeLen(t *testing.T) {
	n := NewNode(Block, nil)
	if n.Len() != 0 {
		t.Errorf("empty node Len() = %d, want 0", n.Len())
	}
	if n.Text() != "" {
		t.Errorf("empty node Text() = %q, want empty", n.Text())
	}
}
