package parser

import (
	"testing"

	"github.com/dblanovschi/lfr/syntax"
)

func TestTokenStreamSkipsTrivia(t *testing.T) {
	s := NewTokenStream(Lex("a  b"))
	if s.Current() != syntax.Ident {
		t.Fatalf("Current() = %s, want Ident", s.Current())
	}
	s.Bump()
	if s.Current() != syntax.Ident {
		t.Fatalf("after bumping past whitespace, Current() = %s, want Ident", s.Current())
	}
}

func TestTokenStreamLookaheadEOF(t *testing.T) {
	s := NewTokenStream(Lex("a"))
	if got := s.Lookahead(5); got != syntax.EOF {
		t.Errorf("Lookahead(5) = %s, want EOF", got)
	}
}

func TestTokenStreamContiguousCompositeFuses(t *testing.T) {
	s := NewTokenStream(Lex("a==b"))
	s.Bump() // consume "a"
	ft := s.Find(KindIs(syntax.EqEq))
	if ft.Kind != syntax.EqEq {
		t.Fatalf("Find(EqEq) on contiguous \"==\" = %v, want EqEq", ft)
	}
	if n := s.BumpTo(ft); n != 0 {
		t.Errorf("BumpTo should require 0 bumps when already positioned at the match, got %d", n)
	}
}

// Regression test: composite tokens must never fuse across trivia.
// "a = = b" has two whitespace-separated "=" characters and must be
// seen as Eq, Eq — not as a single EqEq — or the parser would silently
// misread a double-assignment typo as an equality comparison.
func TestTokenStreamDoesNotFuseAcrossTrivia(t *testing.T) {
	s := NewTokenStream(Lex("a = = b"))
	s.Bump() // "a"
	if s.Current() != syntax.Eq {
		t.Fatalf("Current() = %s, want Eq", s.Current())
	}
	ft := s.Find(KindIs(syntax.EqEq))
	if ft.Kind == syntax.EqEq {
		t.Fatalf("Find(EqEq) matched across whitespace-separated '=' '=' tokens, want no match")
	}
}

func TestTokenStreamAdjacentReflectsTrivia(t *testing.T) {
	s := NewTokenStream(Lex("= ="))
	if s.Adjacent(1) {
		t.Error("Adjacent(1) should be false: the second '=' is separated by a space")
	}

	s2 := NewTokenStream(Lex("=="))
	if !s2.Adjacent(1) {
		t.Error("Adjacent(1) should be true: the two '=' characters are back to back")
	}
}

func TestTokenStreamFindNotIn(t *testing.T) {
	s := NewTokenStream(Lex("\n\n\nfoo"))
	ft := s.Find(NotIn(syntax.Newline))
	if ft.Kind != syntax.Ident {
		t.Fatalf("Find(NotIn(Newline)) = %v, want Ident", ft)
	}
	if n := s.BumpTo(ft); n != 3 {
		t.Errorf("BumpTo = %d, want 3 (three newlines skipped)", n)
	}
}

func TestTokenStreamFindNoMatchReturnsNotFound(t *testing.T) {
	s := NewTokenStream(Lex("abc"))
	ft := s.Find(KindIs(syntax.RBrace))
	if ft.Kind != syntax.EOF {
		t.Errorf("Find with no match = %v, want the EOF sentinel", ft)
	}
	if n := s.BumpTo(ft); n != 0 {
		t.Errorf("BumpTo(notFound) = %d, want 0", n)
	}
}

func TestMatchesAtCompositeRequiresFullLength(t *testing.T) {
	toks := []filteredTok{{Token: Token{Kind: syntax.Amp}, adjacent: true}}
	if matchesAt(toks, 0, syntax.AmpAmp) {
		t.Error("matchesAt should refuse to match a composite that runs past the end of the slice")
	}
}
