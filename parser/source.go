package parser

import "github.com/dblanovschi/lfr/syntax"

// composite describes a multi-token operator the parser treats as one
// logical token even though the lexer emits its parts separately: `&&`
// is two adjacent Amp tokens, `&&=` is Amp, Amp, Eq, and so on. Neither
// the lexer nor the token source ever fuses these bytes into a single
// raw token — fusing happens only in the parser's lookahead, via At and
// the Find predicates below, which is what lets `&` and `&=` keep
// working as their own single-character tokens too.
var composites = map[syntax.SyntaxKind][]syntax.SyntaxKind{
	syntax.AmpAmp:    {syntax.Amp, syntax.Amp},
	syntax.PipePipe:  {syntax.Pipe, syntax.Pipe},
	syntax.PlusEq:    {syntax.Plus, syntax.Eq},
	syntax.MinusEq:   {syntax.Minus, syntax.Eq},
	syntax.StarEq:    {syntax.Star, syntax.Eq},
	syntax.SlashEq:   {syntax.Slash, syntax.Eq},
	syntax.PercentEq: {syntax.Percent, syntax.Eq},
	syntax.AmpEq:     {syntax.Amp, syntax.Eq},
	syntax.PipeEq:    {syntax.Pipe, syntax.Eq},
	syntax.CaretEq:   {syntax.Caret, syntax.Eq},
	syntax.AmpAmpEq:  {syntax.Amp, syntax.Amp, syntax.Eq},
	syntax.PipePipeEq: {syntax.Pipe, syntax.Pipe, syntax.Eq},
	syntax.EqEq:      {syntax.Eq, syntax.Eq},
	syntax.NotEq:     {syntax.Bang, syntax.Eq},
	syntax.LtEq:      {syntax.Lt, syntax.Eq},
	syntax.GtEq:      {syntax.Gt, syntax.Eq},
}

// filteredTok is one entry of TokenStream's trivia-free view: a raw
// token plus whether it directly abuts the previous filtered token in
// the source, with no intervening trivia. adjacent is what lets a
// composite like `==` require its halves be written back-to-back
// (`a==b`) while correctly refusing to fuse `a = = b`, where a space
// separates the two `=` — see matchesAt.
type filteredTok struct {
	Token
	adjacent bool
}

// matchesAt reports whether the tokens starting at index i in toks
// form an occurrence of kind. For a composite kind, every part after
// the first must be adjacent (no trivia skipped to reach it) — trivia
// is dropped from this slice entirely, so adjacency is the only thing
// left that can tell "&&" apart from "& &".
func matchesAt(toks []filteredTok, i int, kind syntax.SyntaxKind) bool {
	if parts, ok := composites[kind]; ok {
		if i+len(parts) > len(toks) {
			return false
		}
		for j, part := range parts {
			if toks[i+j].Kind != part {
				return false
			}
			if j > 0 && !toks[i+j].adjacent {
				return false
			}
		}
		return true
	}
	return i < len(toks) && toks[i].Kind == kind
}

// TokenStream is the TokenSource implementation the parser actually
// drives: a flat, pre-lexed, trivia-filtered slice of tokens plus a
// cursor into it. Trivia is dropped here and re-attached later by the
// tree sink, which holds the original (unfiltered) token list; only
// the adjacency bit needed for composite fusion survives the filtering.
type TokenStream struct {
	toks []filteredTok
	pos  int
}

// NewTokenStream builds a TokenStream over the trivia-filtered subset
// of toks, preserving order and recording, for each surviving token,
// whether trivia separated it from the previous surviving token.
func NewTokenStream(toks []Token) *TokenStream {
	filtered := make([]filteredTok, 0, len(toks))
	sawTrivia := false
	for _, t := range toks {
		if t.Kind.IsTrivia() {
			sawTrivia = true
			continue
		}
		filtered = append(filtered, filteredTok{Token: t, adjacent: !sawTrivia})
		sawTrivia = false
	}
	return &TokenStream{toks: filtered}
}

func (s *TokenStream) Current() syntax.SyntaxKind { return s.Lookahead(0) }

func (s *TokenStream) Lookahead(n int) syntax.SyntaxKind {
	if s.pos+n >= len(s.toks) {
		return syntax.EOF
	}
	return s.toks[s.pos+n].Kind
}

// Adjacent reports whether lookahead(n) directly abuts lookahead(n-1)
// with no trivia between them in the source. Meaningless for n <= 0.
func (s *TokenStream) Adjacent(n int) bool {
	if n <= 0 || s.pos+n >= len(s.toks) {
		return true
	}
	return s.toks[s.pos+n].adjacent
}

func (s *TokenStream) Bump() {
	if s.pos < len(s.toks) {
		s.pos++
	}
}

func (s *TokenStream) Find(prop FindProperty) ForwardToken {
	if s.pos >= len(s.toks) {
		return notFound
	}

	switch prop.mode {
	case findIn:
		for i := s.pos; i < len(s.toks); i++ {
			for _, k := range prop.in {
				if matchesAt(s.toks, i, k) {
					return ForwardToken{Kind: k, Offset: i - s.pos, State: s.pos}
				}
			}
		}
	case findNotIn:
		for i := s.pos; i < len(s.toks); i++ {
			matched := false
			for _, k := range prop.notIn {
				if matchesAt(s.toks, i, k) {
					matched = true
					break
				}
			}
			if !matched {
				return ForwardToken{Kind: s.toks[i].Kind, Offset: i - s.pos, State: s.pos}
			}
		}
	case findKindIs:
		for i := s.pos; i < len(s.toks); i++ {
			if matchesAt(s.toks, i, prop.kindIs) {
				return ForwardToken{Kind: prop.kindIs, Offset: i - s.pos, State: s.pos}
			}
		}
	case findKindIsNot:
		for i := s.pos; i < len(s.toks); i++ {
			if !matchesAt(s.toks, i, prop.kindIs) {
				return ForwardToken{Kind: s.toks[i].Kind, Offset: i - s.pos, State: s.pos}
			}
		}
	}
	return notFound
}

func (s *TokenStream) BumpTo(ft ForwardToken) int {
	if ft.Kind == syntax.EOF && ft.Offset == 0 && ft.State == 0 {
		return 0
	}
	n := ft.State + ft.Offset - s.pos
	return n
}
