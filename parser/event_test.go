package parser

import (
	"testing"

	"github.com/dblanovschi/lfr/syntax"
)

// recordingSink captures the calls process makes so tests can assert on
// call order without needing a real syntax.Node.
type recordingSink struct {
	calls []string
}

func (s *recordingSink) StartNode(kind syntax.SyntaxKind) {
	s.calls = append(s.calls, "start:"+kind.String())
}
func (s *recordingSink) FinishNode() { s.calls = append(s.calls, "finish") }
func (s *recordingSink) Token(kind syntax.SyntaxKind, n int) {
	s.calls = append(s.calls, "token:"+kind.String())
}
func (s *recordingSink) Error(msg string) { s.calls = append(s.calls, "error:"+msg) }

func TestProcessSimpleNode(t *testing.T) {
	p := NewParser(nil)
	m := p.Start()
	p.pushEvent(tokenEvent(syntax.Ident, 1))
	m.Complete(p, syntax.PrimaryExpr)

	sink := &recordingSink{}
	process(sink, p.Events())

	want := []string{"start:primary expression", "token:identifier", "finish"}
	assertCalls(t, sink.calls, want)
}

// TestProcessForwardParent mirrors how parsePrecedence1Expr wraps an
// already-completed PrimaryExpr into a FnCallExpr via Precede: the
// FnCallExpr's StartNode call must be emitted BEFORE the PrimaryExpr's,
// even though the PrimaryExpr's Start event was recorded first.
func TestProcessForwardParent(t *testing.T) {
	p := NewParser(nil)
	inner := p.Start()
	p.pushEvent(tokenEvent(syntax.Ident, 1))
	completedInner := inner.Complete(p, syntax.PrimaryExpr)

	outer := completedInner.Precede(p)
	p.pushEvent(tokenEvent(syntax.LParen, 1))
	p.pushEvent(tokenEvent(syntax.RParen, 1))
	outer.Complete(p, syntax.FnCallExpr)

	sink := &recordingSink{}
	process(sink, p.Events())

	want := []string{
		"start:function call",
		"start:primary expression",
		"token:identifier",
		"finish",
		"token:`(`",
		"token:`)`",
		"finish",
	}
	assertCalls(t, sink.calls, want)
}

func TestProcessErrorEvent(t *testing.T) {
	p := NewParser(nil)
	m := p.Start()
	p.Error("unexpected end of file")
	m.Complete(p, syntax.Root)

	sink := &recordingSink{}
	process(sink, p.Events())

	want := []string{"start:root", "error:unexpected end of file", "finish"}
	assertCalls(t, sink.calls, want)
}

func assertCalls(t *testing.T, got, want []string) {
	t.Helper()
	if len(got) != len(want) {
		t.Fatalf("calls = %v, want %v", got, want)
	}
	for i := range got {
		if got[i] != want[i] {
			t.Errorf("calls[%d] = %q, want %q (full: %v)", i, got[i], want[i], got)
		}
	}
}
