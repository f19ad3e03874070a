package parser

import "github.com/dblanovschi/lfr/syntax"

// Marker stands for a not-yet-complete Start event: the index into the
// parser's event log where it was opened. Complete fills in its kind;
// until then it occupies a tombstone slot.
type Marker struct {
	pos int
}

func newMarker(pos int) Marker {
	return Marker{pos: pos}
}

// Complete finalises the node opened by m as kind, closing it with a
// Finish event, and returns a handle that lets a later, enclosing
// construct (a binary operator discovering its left operand, a `.`
// discovering it was actually `.method(...)`) wrap it retroactively.
func (m Marker) Complete(p *Parser, kind syntax.SyntaxKind) CompletedMarker {
	p.events[m.pos].startKind = kind
	p.pushEvent(finishEvent())
	return CompletedMarker{pos: m.pos, kind: kind}
}

// Abandon discards the marker without ever emitting a node for it. Only
// valid if m is the most recently opened, still-incomplete marker.
func (m Marker) Abandon(p *Parser) {
	if m.pos == len(p.events)-1 {
		p.events = p.events[:m.pos]
	}
}

// CompletedMarker is the handle to an already-closed node, returned by
// Marker.Complete.
type CompletedMarker struct {
	pos  int
	kind syntax.SyntaxKind
}

// Kind returns the syntax kind the marker was completed with.
func (m CompletedMarker) Kind() syntax.SyntaxKind { return m.kind }

// Precede opens a new marker that will end up enclosing m's node once
// completed, without moving or re-recording any of the events already
// emitted for m. This is how `1 + 2` becomes `BinExpr(1, +, 2)` even
// though `1`'s PrimaryExpr was already closed before `+` was ever seen:
// the new marker's Start event is linked to m's via forwardParent, and
// event processing later opens the new Start before replaying m's.
func (m CompletedMarker) Precede(p *Parser) Marker {
	newPos := len(p.events)
	p.pushEvent(startEvent())
	p.events[m.pos].forwardParent = newPos - m.pos
	return newMarker(newPos)
}

// UndoCompletion reopens an already-completed node as an incomplete
// Marker, discarding its kind and Finish event so that the caller can
// complete it again under a different kind. Used to rewrite a
// MemberAccessExpr into a MethodCallExpr once a trailing `(` reveals
// the `.name` was actually a call.
func (m CompletedMarker) UndoCompletion(p *Parser) Marker {
	p.events[m.pos].startKind = syntax.Tombstone()

	depth := 0
	for i := m.pos; i < len(p.events); i++ {
		switch p.events[i].kind {
		case eventStart:
			depth++
		case eventFinish:
			depth--
			if depth == 0 {
				p.events = append(p.events[:i], p.events[i+1:]...)
				return newMarker(m.pos)
			}
		}
	}
	panic("syntax: UndoCompletion found no matching Finish event")
}
