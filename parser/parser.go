package parser

import (
	"fmt"

	"github.com/dblanovschi/lfr/syntax"
)

// compositeParts mirrors the composites table in source.go but keyed
// for the parser's own at()/doBump() bookkeeping, which needs to
// reason about composites independently of how TokenStream matches
// them, since the parser also has to know how many raw tokens to bump.
func compositeParts(kind syntax.SyntaxKind) ([]syntax.SyntaxKind, bool) {
	parts, ok := composites[kind]
	return parts, ok
}

// Parser drives the token stream and emits the flat Event log that
// process later resolves into a tree. It never looks at source text
// directly — only at kinds, via the TokenSource — and it never fails:
// unrecognised input is recorded as a diagnostic, the token that
// confused it is consumed as an ordinary leaf, and parsing presses on.
type Parser struct {
	source TokenSource
	events []Event
}

// NewParser creates a parser driven by source.
func NewParser(source TokenSource) *Parser {
	return &Parser{source: source}
}

// Events returns the raw event log accumulated so far. Exposed for
// process and for tests that want to inspect parser output directly.
func (p *Parser) Events() []Event { return p.events }

func (p *Parser) pushEvent(e Event) { p.events = append(p.events, e) }

// Current returns the kind at the current position.
func (p *Parser) Current() syntax.SyntaxKind { return p.Nth(0) }

// Nth returns the kind n tokens ahead of the current position.
func (p *Parser) Nth(n int) syntax.SyntaxKind { return p.source.Lookahead(n) }

// At reports whether the current position starts an occurrence of
// kind, fusing adjacent raw tokens into composites (`&&`, `==`, ...) as
// needed without ever mutating the underlying token stream.
func (p *Parser) At(kind syntax.SyntaxKind) bool {
	if parts, ok := compositeParts(kind); ok {
		for i, part := range parts {
			if p.Nth(i) != part {
				return false
			}
			if i > 0 && !p.source.Adjacent(i) {
				return false
			}
		}
		return true
	}
	return p.Current() == kind
}

// AtAny returns the first of kinds that At is true for, or (EOF, false).
func (p *Parser) AtAny(kinds ...syntax.SyntaxKind) (syntax.SyntaxKind, bool) {
	for _, k := range kinds {
		if p.At(k) {
			return k, true
		}
	}
	return syntax.EOF, false
}

func rawTokenCountFor(kind syntax.SyntaxKind) int {
	if parts, ok := compositeParts(kind); ok {
		return len(parts)
	}
	return 1
}

func (p *Parser) doBump(kind syntax.SyntaxKind, nRawTokens int) {
	for i := 0; i < nRawTokens; i++ {
		p.source.Bump()
	}
	p.pushEvent(tokenEvent(kind, nRawTokens))
}

// Bump consumes the current occurrence of kind, panicking if the
// parser isn't actually positioned at it — callers must check At/Eat
// first; Bump is for call sites that already know they matched.
func (p *Parser) Bump(kind syntax.SyntaxKind) {
	if !p.Eat(kind) {
		panic(fmt.Sprintf("syntax: Bump(%s): not at that kind", kind))
	}
}

// BumpAny consumes whatever single raw token is current, regardless of
// kind, unless the stream is already at EOF.
func (p *Parser) BumpAny() {
	kind := p.Current()
	if kind == syntax.EOF {
		return
	}
	p.doBump(kind, 1)
}

// Eat consumes an occurrence of kind if present and reports whether it
// did.
func (p *Parser) Eat(kind syntax.SyntaxKind) bool {
	if p.At(kind) {
		p.doBump(kind, rawTokenCountFor(kind))
		return true
	}
	return false
}

// EatAny consumes whichever of kinds matches first, if any.
func (p *Parser) EatAny(kinds ...syntax.SyntaxKind) bool {
	if kind, ok := p.AtAny(kinds...); ok {
		p.doBump(kind, rawTokenCountFor(kind))
		return true
	}
	return false
}

// Expect consumes an occurrence of kind, recording an error if absent.
func (p *Parser) Expect(kind syntax.SyntaxKind) bool {
	if p.Eat(kind) {
		return true
	}
	p.Error(fmt.Sprintf("expected %s, got %s", kind, p.Current()))
	return false
}

// Error records a diagnostic at the parser's current position without
// consuming anything.
func (p *Parser) Error(msg string) {
	p.pushEvent(errorEvent(msg))
}

// RequireNewline consumes a statement-terminating newline, treating
// end of input as an acceptable terminator too.
func (p *Parser) RequireNewline() {
	if p.Eat(syntax.Newline) {
		return
	}
	if p.At(syntax.EOF) {
		return
	}
	p.Error(fmt.Sprintf("expected %s, got %s", syntax.Newline, p.Current()))
}

// SkipNewlines consumes a run of blank-line newlines. Newline is not
// trivia — it matters to the grammar as a statement terminator — but
// sequences of them between statements carry no meaning and are always
// skipped wherever the grammar looks for the next real token.
func (p *Parser) SkipNewlines() {
	for p.At(syntax.Newline) {
		p.doBump(syntax.Newline, 1)
	}
}

// bumpTo replays nth's buffered position as a sequence of ordinary
// single-token bumps, used after a lookahead-only Find call decided the
// parser should skip forward (past any number of blank-line newlines)
// to reach a token it already confirmed is there.
func (p *Parser) bumpTo(ft ForwardToken) {
	n := p.source.BumpTo(ft)
	for i := 0; i < n; i++ {
		p.BumpAny()
	}
}

// nextNotNewline looks past any run of newlines without consuming them.
func (p *Parser) nextNotNewline() ForwardToken {
	return p.source.Find(KindIsNot(syntax.Newline))
}

// BumpToIfNextNonNewlineIs skips past any intervening newlines and
// consumes them, but only if the first non-newline token after them is
// kind; otherwise nothing is consumed. This is how `else`, on its own
// line after a closing `}`, still attaches to the conditional above it,
// while a `.` on the next line still continues a postfix chain.
func (p *Parser) BumpToIfNextNonNewlineIs(kind syntax.SyntaxKind) bool {
	ft := p.nextNotNewline()
	if ft.Kind == kind {
		p.bumpTo(ft)
		return true
	}
	return false
}

// BumpToIfNextNonNewlineIsAny is BumpToIfNextNonNewlineIs for a set of
// candidate kinds.
func (p *Parser) BumpToIfNextNonNewlineIsAny(kinds ...syntax.SyntaxKind) bool {
	ft := p.nextNotNewline()
	for _, k := range kinds {
		if ft.Kind == k {
			p.bumpTo(ft)
			return true
		}
	}
	return false
}

// Unexpected records an error at the current token and then consumes
// it (unless already at EOF), so that a single malformed token can't
// make the parser loop forever.
//
// The error is pushed before the token is bumped, not after: a
// diagnostic's reported offset is always "wherever the sink's cursor
// currently sits" (see the tree sink), so to have that offset land on
// the start of the offending token rather than just past its end, the
// Error event has to be emitted first.
func (p *Parser) Unexpected() {
	current := p.Current()
	p.Error(fmt.Sprintf("unexpected %s", current))
	if current != syntax.EOF {
		p.doBump(current, rawTokenCountFor(current))
	}
}

// Start opens a new, not-yet-completed node.
func (p *Parser) Start() Marker {
	pos := len(p.events)
	p.pushEvent(startEvent())
	return newMarker(pos)
}

// Parse runs the grammar to exhaustion and returns the accumulated
// event log, ready for process.
func (p *Parser) Parse() []Event {
	parseRoot(p)
	return p.events
}
