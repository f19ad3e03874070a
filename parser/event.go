package parser

import "github.com/dblanovschi/lfr/syntax"

// Event is one entry in the flat log the Parser produces as it walks
// the token stream. The parser never builds a tree directly — it can't,
// because a node's kind is often only known after the fact (binary
// expressions grow a new parent around an already-completed operand,
// method calls rewrite a member access after seeing a trailing `(`).
// Recording a flat log and resolving structure afterwards in process
// is what makes that backtracking-free.
type Event struct {
	kind eventKind

	// Start
	startKind     syntax.SyntaxKind // Tombstone() until Complete sets it
	forwardParent int               // 0 = none, else raw event-index distance to the parent Start event

	// Finish has no payload.

	// Token
	tokenKind    syntax.SyntaxKind
	nRawTokens   int

	// Error
	errMsg string
}

type eventKind uint8

const (
	eventStart eventKind = iota
	eventFinish
	eventToken
	eventError
)

func tombstoneEvent() Event {
	return Event{kind: eventStart, startKind: syntax.Tombstone()}
}

func startEvent() Event {
	return Event{kind: eventStart, startKind: syntax.Tombstone()}
}

func finishEvent() Event {
	return Event{kind: eventFinish}
}

func tokenEvent(kind syntax.SyntaxKind, nRawTokens int) Event {
	return Event{kind: eventToken, tokenKind: kind, nRawTokens: nRawTokens}
}

func errorEvent(msg string) Event {
	return Event{kind: eventError, errMsg: msg}
}

// process resolves the forward-parent chains left in events by
// Marker.Precede and replays the result into sink as a well-formed
// sequence of StartNode/Token/Error/FinishNode calls.
//
// A completed node that later turns out to be the first child of an
// outer node (the left operand of a binary expression, once its
// operator is seen) doesn't get re-recorded — its Start event's
// forwardParent field is patched to point at the new outer Start
// instead, forming a singly-linked chain of Start events that all
// belong to the same source position. Processing walks each chain from
// the innermost Start outward, tombstoning each link as it's consumed,
// and opens the sink nodes in outside-in order before replaying
// whatever came after the original Start unchanged.
func process(sink TreeSink, events []Event) {
	for i := 0; i < len(events); i++ {
		switch events[i].kind {
		case eventStart:
			if syntax.IsTombstone(events[i].startKind) {
				continue
			}

			var kinds []syntax.SyntaxKind
			idx := i
			fp := events[idx].forwardParent
			for fp != 0 {
				next := idx + fp
				kinds = append(kinds, events[idx].startKind)
				events[idx].startKind = syntax.Tombstone()
				idx = next
				fp = events[idx].forwardParent
			}
			kinds = append(kinds, events[idx].startKind)
			events[idx].startKind = syntax.Tombstone()

			for j := len(kinds) - 1; j >= 0; j-- {
				sink.StartNode(kinds[j])
			}

		case eventFinish:
			sink.FinishNode()

		case eventToken:
			sink.Token(events[i].tokenKind, events[i].nRawTokens)

		case eventError:
			sink.Error(events[i].errMsg)
		}
	}
}
