package parser

import (
	"testing"

	"github.com/dblanovschi/lfr/syntax"
)

func lexKinds(t *testing.T, src string) []syntax.SyntaxKind {
	t.Helper()
	toks := Lex(src)
	kinds := make([]syntax.SyntaxKind, len(toks))
	for i, tok := range toks {
		kinds[i] = tok.Kind
	}
	return kinds
}

func TestLexTokenClasses(t *testing.T) {
	cases := []struct {
		src  string
		want []syntax.SyntaxKind
	}{
		{"foo", []syntax.SyntaxKind{syntax.Ident}},
		{"foo2_bar", []syntax.SyntaxKind{syntax.Ident}},
		{"123", []syntax.SyntaxKind{syntax.IntNumber}},
		{"0x1F", []syntax.SyntaxKind{syntax.IntNumber}},
		{"0b101", []syntax.SyntaxKind{syntax.IntNumber}},
		{"42uL", []syntax.SyntaxKind{syntax.IntNumber}},
		{"'hi'", []syntax.SyntaxKind{syntax.Str}},
		{"'''multi\nline'''", []syntax.SyntaxKind{syntax.MultilineStr}},
		{"// a comment", []syntax.SyntaxKind{syntax.Comment}},
		{"/* a block */", []syntax.SyntaxKind{syntax.BlockComment}},
		{"+-*/%", []syntax.SyntaxKind{syntax.Plus, syntax.Minus, syntax.Star, syntax.Slash, syntax.Percent}},
		{"&|^", []syntax.SyntaxKind{syntax.Amp, syntax.Pipe, syntax.Caret}},
		{"\n", []syntax.SyntaxKind{syntax.Newline}},
		{"  \t", []syntax.SyntaxKind{syntax.Whitespace}},
	}
	for _, c := range cases {
		got := lexKinds(t, c.src)
		if len(got) != len(c.want) {
			t.Fatalf("Lex(%q) = %v, want %v", c.src, got, c.want)
		}
		for i := range got {
			if got[i] != c.want[i] {
				t.Errorf("Lex(%q)[%d] = %s, want %s", c.src, i, got[i], c.want[i])
			}
		}
	}
}

func TestLexKeywords(t *testing.T) {
	cases := map[string]syntax.SyntaxKind{
		"in":       syntax.In,
		"let":      syntax.Let,
		"if":       syntax.If,
		"else":     syntax.Else,
		"foreach":  syntax.For,
		"continue": syntax.Continue,
		"break":    syntax.Break,
		"return":   syntax.Return,
		"true":     syntax.True,
		"false":    syntax.False,
		"fn":       syntax.Fn,
		"import":   syntax.Import,
		"as":       syntax.As,
		"while":    syntax.While,
	}
	for src, want := range cases {
		got := lexKinds(t, src)
		if len(got) != 1 || got[0] != want {
			t.Errorf("Lex(%q) = %v, want [%s]", src, got, want)
		}
	}
	// "foreachy" is an identifier, not the "foreach" keyword plus a
	// stray "y" — keyword matching must not stop short of maximal munch.
	if got := lexKinds(t, "foreachy"); len(got) != 1 || got[0] != syntax.Ident {
		t.Errorf("Lex(%q) = %v, want [Ident]", "foreachy", got)
	}
}

func TestLexUnterminatedString(t *testing.T) {
	got := lexKinds(t, "'oops")
	if len(got) != 1 || got[0] != syntax.Error {
		t.Fatalf("Lex(%q) = %v, want [Error]", "'oops", got)
	}
}

func TestLexUnterminatedStringStopsAtNewline(t *testing.T) {
	toks := Lex("'oops\nmore")
	if len(toks) < 1 || toks[0].Kind != syntax.Error {
		t.Fatalf("first token should be Error, got %v", toks)
	}
}

func TestLexUnterminatedBlockComment(t *testing.T) {
	got := lexKinds(t, "/* oops")
	if len(got) != 1 || got[0] != syntax.Error {
		t.Fatalf("Lex(%q) = %v, want [Error]", "/* oops", got)
	}
}

func TestLexStringEscapes(t *testing.T) {
	toks := Lex(`'a\'b'`)
	if len(toks) != 1 || toks[0].Kind != syntax.Str {
		t.Fatalf("Lex(escaped quote) = %v, want single Str token", toks)
	}
	if toks[0].Len != len(`'a\'b'`) {
		t.Errorf("Str token length = %d, want %d", toks[0].Len, len(`'a\'b'`))
	}
}

func TestLexFusesNoComposites(t *testing.T) {
	// The lexer must never fuse "&&" into one token — that's the
	// parser's job, done in lookahead only.
	got := lexKinds(t, "&&")
	want := []syntax.SyntaxKind{syntax.Amp, syntax.Amp}
	if len(got) != len(want) || got[0] != want[0] || got[1] != want[1] {
		t.Errorf("Lex(%q) = %v, want %v", "&&", got, want)
	}
}

func TestLexUnknownByteIsError(t *testing.T) {
	got := lexKinds(t, "@")
	if len(got) != 1 || got[0] != syntax.Error {
		t.Fatalf("Lex(%q) = %v, want [Error]", "@", got)
	}
}

func TestLexCoversEveryByte(t *testing.T) {
	src := "let x = 1 + 2 // comment\nfn foo() { foreach x in y {} }"
	toks := Lex(src)
	total := 0
	for _, tok := range toks {
		total += tok.Len
	}
	if total != len(src) {
		t.Errorf("token lengths sum to %d, want %d (full source length)", total, len(src))
	}
}
