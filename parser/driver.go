package parser

import "github.com/dblanovschi/lfr/syntax"

// Parse lexes and parses text in full, returning the resulting green
// tree and any diagnostics collected along the way. Parsing never
// aborts early: a malformed program still yields a complete tree, with
// the offending tokens kept in it as ordinary leaves and its problems
// reported in the returned slice.
//
// For any input text, Parse(text) is lossless: Tree.Text() reproduces
// text exactly, byte for byte.
func Parse(text string) (*syntax.Node, []syntax.Error) {
	toks := Lex(text)
	source := NewTokenStream(toks)
	sink := NewTextTreeSink(text, toks)

	ParseToSink(source, sink)

	return sink.Finish()
}

// ParseToSink runs the grammar against source and replays the resulting
// event log into sink. Exposed separately from Parse so callers can
// supply their own TokenSource/TreeSink.
func ParseToSink(source TokenSource, sink TreeSink) {
	p := NewParser(source)
	events := p.Parse()
	process(sink, events)
}
