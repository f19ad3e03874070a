// Package parser turns lfr source text into a lossless green syntax tree
// plus a list of diagnostics. It is organised the way the reference
// grammar is: a Lexer produces raw tokens, a TokenSource wraps the raw
// token stream with trivia-skipping lookahead, a Parser walks that
// source emitting a flat Event log, and a TreeSink replays the events
// into an actual syntax.Node.
package parser

import "github.com/dblanovschi/lfr/syntax"

// Token is a single raw lexeme: a kind and a byte length. The lexer
// never carries text on a Token directly — callers slice the original
// source with the running offset, which keeps the lexer allocation-free.
type Token struct {
	Kind syntax.SyntaxKind
	Len  int
}

// ForwardToken is an opaque bookmark into the token stream returned by
// TokenSource.Find, consumable only by TokenSource.BumpTo. State is the
// token-source-private position the search started from; Offset is how
// many tokens beyond that position the match sits at.
type ForwardToken struct {
	Kind   syntax.SyntaxKind
	Offset int
	State  int
}

// notFound is the sentinel returned by Find when no token satisfies the
// predicate before the stream runs out.
var notFound = ForwardToken{Kind: syntax.EOF, Offset: 0, State: 0}

// FindProperty selects what TokenSource.Find searches for. Exactly one
// field is meaningful per value; use the constructors below.
type FindProperty struct {
	in      []syntax.SyntaxKind
	notIn   []syntax.SyntaxKind
	kindIs  syntax.SyntaxKind
	mode    findMode
	hasKind bool
}

type findMode uint8

const (
	findIn findMode = iota
	findNotIn
	findKindIs
	findKindIsNot
)

// In finds the first position whose (possibly composite) kind is one of kinds.
func In(kinds ...syntax.SyntaxKind) FindProperty {
	return FindProperty{in: kinds, mode: findIn}
}

// NotIn finds the first position whose kind is none of kinds.
func NotIn(kinds ...syntax.SyntaxKind) FindProperty {
	return FindProperty{notIn: kinds, mode: findNotIn}
}

// KindIs finds the first position at the given (possibly composite) kind.
func KindIs(kind syntax.SyntaxKind) FindProperty {
	return FindProperty{kindIs: kind, mode: findKindIs, hasKind: true}
}

// KindIsNot finds the first position not at the given kind.
func KindIsNot(kind syntax.SyntaxKind) FindProperty {
	return FindProperty{kindIs: kind, mode: findKindIsNot, hasKind: true}
}

// TokenSource is the parser's view of the token stream: trivia-free
// lookahead plus a way to probe ahead for a matching token without
// committing to bumping through everything in between.
type TokenSource interface {
	// Current returns the kind at lookahead 0.
	Current() syntax.SyntaxKind
	// Lookahead returns the kind n tokens ahead of the current position.
	Lookahead(n int) syntax.SyntaxKind
	// Adjacent reports whether lookahead n directly abuts lookahead n-1
	// with no trivia in between. Composite operators like `&&` must
	// check this for every part past the first, or whitespace-separated
	// tokens (`& &`) would be misread as one fused token.
	Adjacent(n int) bool
	// Bump consumes the current token.
	Bump()
	// Find searches forward from the current position for a token
	// satisfying prop, without consuming anything.
	Find(prop FindProperty) ForwardToken
	// BumpTo returns how many tokens lie between the current position
	// and the one found by a prior Find call. It does not move the
	// cursor; the caller bumps that many times itself.
	BumpTo(ft ForwardToken) int
}
