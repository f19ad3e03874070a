package parser

import "github.com/dblanovschi/lfr/syntax"

// TreeSink receives the well-formed, already-resolved stream of calls
// process replays from a parser's Event log and turns it into whatever
// concrete representation it wants. TextTreeSink is the only
// implementation: it builds a syntax.Node.
type TreeSink interface {
	StartNode(kind syntax.SyntaxKind)
	FinishNode()
	Token(kind syntax.SyntaxKind, nRawTokens int)
	Error(msg string)
}

// builder accumulates the children of one not-yet-finished node.
type builder struct {
	kind     syntax.SyntaxKind
	children []syntax.NodeOrToken
}

// TextTreeSink builds the green tree for a source text. It owns the
// full, trivia-including raw token list (the Parser's own TokenStream
// only ever sees the trivia-filtered subset) and is responsible for
// re-attaching trivia tokens as children of whichever node is open when
// the next real token or error is encountered.
type TextTreeSink struct {
	text      string
	rawTokens []Token
	rawPos    int
	textPos   int

	stack  []*builder
	result *syntax.Node
	errors []syntax.Error
}

// NewTextTreeSink creates a sink over text's full (unfiltered) raw
// token list, as produced by Lex.
func NewTextTreeSink(text string, rawTokens []Token) *TextTreeSink {
	return &TextTreeSink{text: text, rawTokens: rawTokens}
}

func (s *TextTreeSink) StartNode(kind syntax.SyntaxKind) {
	s.stack = append(s.stack, &builder{kind: kind})
}

func (s *TextTreeSink) FinishNode() {
	// The root's Finish event is the last thing process ever replays, so
	// this is the only place trivia after the final real token (or, for
	// a trivia-only file, all of it) ever gets a chance to attach
	// anywhere. Drain it into the root before it closes, or it's lost.
	if len(s.stack) == 1 {
		s.eatTrivia()
	}

	top := s.stack[len(s.stack)-1]
	s.stack = s.stack[:len(s.stack)-1]
	node := syntax.NewNode(top.kind, top.children)

	if len(s.stack) == 0 {
		s.result = node
		return
	}
	parent := s.stack[len(s.stack)-1]
	parent.children = append(parent.children, node)
}

// Token drains any leading trivia, then fuses the next nRawTokens
// non-trivia raw tokens (plus any trivia sandwiched between them, which
// has nowhere else to attach and so rides along inside this token's own
// text) into a single leaf of kind kind.
func (s *TextTreeSink) Token(kind syntax.SyntaxKind, nRawTokens int) {
	s.eatTrivia()

	textStart := s.textPos
	consumed := 0
	for consumed < nRawTokens {
		t := s.rawTokens[s.rawPos]
		s.rawPos++
		s.textPos += t.Len
		if !t.Kind.IsTrivia() {
			consumed++
		}
	}

	s.push(syntax.NewToken(kind, s.text[textStart:s.textPos]))
}

// Error drains leading trivia, same as Token, then records a diagnostic
// at the byte offset immediately following — the start of whatever
// token comes next. Error never itself consumes a token: the offending
// token is always bumped separately, producing its own Token event.
func (s *TextTreeSink) Error(msg string) {
	s.eatTrivia()
	s.errors = append(s.errors, syntax.Error{Message: msg, Offset: s.textPos})
}

func (s *TextTreeSink) eatTrivia() {
	for s.rawPos < len(s.rawTokens) && s.rawTokens[s.rawPos].Kind.IsTrivia() {
		t := s.rawTokens[s.rawPos]
		text := s.text[s.textPos : s.textPos+t.Len]
		s.rawPos++
		s.textPos += t.Len
		s.push(syntax.NewToken(t.Kind, text))
	}
}

func (s *TextTreeSink) push(tok *syntax.Token) {
	top := s.stack[len(s.stack)-1]
	top.children = append(top.children, tok)
}

// Finish returns the completed tree and the accumulated diagnostics.
// Must be called only after process has replayed every event.
func (s *TextTreeSink) Finish() (*syntax.Node, []syntax.Error) {
	return s.result, s.errors
}
