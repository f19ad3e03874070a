package parser

import "github.com/dblanovschi/lfr/syntax"

func parseRoot(p *Parser) {
	m := p.Start()

	for {
		p.SkipNewlines()
		if p.At(syntax.EOF) || !p.At(syntax.Import) {
			break
		}
		parseImportStmt(p)
	}

	for {
		p.SkipNewlines()
		if p.At(syntax.EOF) {
			break
		}
		parseLangItem(p)
	}

	m.Complete(p, syntax.Root)
}

func parseImportStmt(p *Parser) {
	m := p.Start()

	p.Expect(syntax.Import)
	parseImportTarget(p)

	if p.At(syntax.As) {
		p.Bump(syntax.As)
		parseIdent(p)
	}

	p.RequireNewline()

	m.Complete(p, syntax.ImportStmt)
}

func parseImportTarget(p *Parser) {
	m := p.Start()
	if isStringLit(p) {
		parseString(p)
	} else {
		parseIdent(p)
	}
	m.Complete(p, syntax.ImportTarget)
}

func parseIdent(p *Parser) {
	p.Expect(syntax.Ident)
}

func parseLangItem(p *Parser) {
	p.SkipNewlines()
	parseStatement(p)
}

func parseStatement(p *Parser) {
	tok := p.Current()
	m := p.Start()

	switch {
	case tok == syntax.Let:
		parseDeclaration(p)
	case tok == syntax.For:
		parseFor(p)
	case tok == syntax.While:
		parseWhile(p)
	case tok == syntax.Continue || tok == syntax.Break || tok == syntax.Return:
		parseControlStmt(p)
	case syntax.StmtStartSet.Contains(tok):
		parseExpr(p)
	default:
		p.Unexpected()
	}

	m.Complete(p, syntax.Stmt)
}

func parseExpr(p *Parser) {
	parsePrecedence9Expr(p)
}

func isTupleExprStart(p *Parser) bool { return p.At(syntax.LParen) }

func parseTupleExpr(p *Parser) CompletedMarker {
	p.SkipNewlines()
	return parseTT(p, syntax.TupleExpr, syntax.LParen, commaSep, syntax.RParen, parseExpr)
}

func isArrExprStart(p *Parser) bool { return p.At(syntax.LBracket) }

func parseArrExpr(p *Parser) CompletedMarker {
	p.SkipNewlines()
	return parseTT(p, syntax.ArrExpr, syntax.LBracket, commaSep, syntax.RBracket, parseExpr)
}

func isStringLit(p *Parser) bool {
	_, ok := p.AtAny(syntax.Str, syntax.MultilineStr)
	return ok
}

func parseString(p *Parser) { p.BumpAny() }

func isConditionalStart(p *Parser) bool { return p.At(syntax.If) }

func isExprBlockStart(p *Parser) bool { return p.At(syntax.LBrace) }

func parsePrimary(p *Parser) CompletedMarker {
	p.SkipNewlines()
	m := p.Start()

	switch {
	case isArrExprStart(p):
		parseArrExpr(p)
	case isTupleExprStart(p):
		parseTupleExpr(p)
	case isConditionalStart(p):
		parseConditional(p)
	case isExprBlockStart(p):
		parseExprBlock(p)
	default:
		if _, ok := p.AtAny(syntax.IntNumber, syntax.True, syntax.False, syntax.Ident); ok {
			p.BumpAny()
		} else if isStringLit(p) {
			parseString(p)
		} else {
			p.Unexpected()
		}
	}

	return m.Complete(p, syntax.PrimaryExpr)
}

// separator is an optional token kind for parseTT: present (ok==true)
// for comma-separated lists, absent for a block's bare statement
// sequence.
type separator struct {
	kind syntax.SyntaxKind
	ok   bool
}

var commaSep = separator{kind: syntax.Comma, ok: true}
var noSep = separator{}

// parseTT parses a start-delimited, optionally separator-delimited,
// end-delimited list (tuples, arrays, call arguments, and — with no
// separator at all — a block's statement sequence): generic over what
// each element looks like via f.
func parseTT(
	p *Parser,
	outerKind syntax.SyntaxKind,
	startTok syntax.SyntaxKind,
	sep separator,
	endTok syntax.SyntaxKind,
	f func(*Parser),
) CompletedMarker {
	m := p.Start()
	p.Bump(startTok)

	p.SkipNewlines()
	for {
		if _, ok := p.AtAny(syntax.EOF, endTok); ok {
			break
		}
		f(p)

		if sep.ok {
			p.SkipNewlines()
			if p.Eat(sep.kind) {
				// consumed
			} else if !p.At(endTok) {
				p.Error("expected " + sep.kind.Name() + " or " + endTok.Name() + ", got " + p.Current().Name())
			}
		}
		p.SkipNewlines()
	}

	p.Expect(endTok)
	return m.Complete(p, outerKind)
}

func parsePrecedence1Expr(p *Parser) CompletedMarker {
	p.SkipNewlines()
	marker := parsePrimary(p)

	for {
		switch {
		case p.At(syntax.LParen):
			newMarker := marker.Precede(p)
			marker = parseFCall(p, newMarker)
		case p.At(syntax.LBracket):
			newMarker := marker.Precede(p)
			marker = parseIndexExpr(p, newMarker)
		case p.BumpToIfNextNonNewlineIs(syntax.Dot):
			newMarker := marker.Precede(p)
			marker = parseMemberExpr(p, newMarker)
			if p.At(syntax.LParen) {
				m := marker.UndoCompletion(p)
				marker = parseMethodCall(p, m)
			}
		default:
			return marker
		}
	}
}

func parseFCall(p *Parser, marker Marker) CompletedMarker {
	parseTT(p, syntax.FnCallArgs, syntax.LParen, commaSep, syntax.RParen, parseFArg)
	return marker.Complete(p, syntax.FnCallExpr)
}

func parseFArg(p *Parser) {
	p.SkipNewlines()
	parseExpr(p)
}

func parseIndexExpr(p *Parser, marker Marker) CompletedMarker {
	bracketsMarker := p.Start()
	p.Bump(syntax.LBracket)
	parseExpr(p)
	p.Expect(syntax.RBracket)
	bracketsMarker.Complete(p, syntax.IndexExprBrackets)
	return marker.Complete(p, syntax.IndexExpr)
}

func parseMemberExpr(p *Parser, marker Marker) CompletedMarker {
	p.Bump(syntax.Dot)
	p.Expect(syntax.Ident)
	return marker.Complete(p, syntax.MemberAccessExpr)
}

func parseMethodCall(p *Parser, marker Marker) CompletedMarker {
	parseTT(p, syntax.FnCallArgs, syntax.LParen, commaSep, syntax.RParen, parseFArg)
	return marker.Complete(p, syntax.MethodCallExpr)
}

func parsePrecedence2Expr(p *Parser) CompletedMarker {
	p.SkipNewlines()
	if kind, ok := p.AtAny(syntax.Plus, syntax.Minus, syntax.Bang); ok {
		m := p.Start()
		p.Bump(kind)
		parsePrecedence2Expr(p)
		return m.Complete(p, syntax.PrefixUnaryExpr)
	}
	return parsePrecedence1Expr(p)
}

// parseInfixBinop implements one precedence level of a left-associative
// binary operator chain: parse one operand at the next-tighter level,
// then keep wrapping it in a BinExpr for as long as one of ops follows —
// either immediately, or after a run of blank lines, so that
//
//	x = 1
//	+ 2
//
// continues the same expression instead of starting a new statement at
// `+`. The immediate check goes first because it is composite-aware
// (it fuses adjacent raw tokens into `&&`, `==`, ...); the newline-skip
// fallback only ever sees the single raw token right after the blank
// lines, so it only detects continuation for single-character
// operators — adequate for every binary operator spec.md's continuation
// scenario actually exercises.
func parseInfixBinop(p *Parser, lower func(*Parser) CompletedMarker, ops ...syntax.SyntaxKind) CompletedMarker {
	p.SkipNewlines()
	completed := lower(p)

	for {
		kind, ok := p.AtAny(ops...)
		if !ok {
			if !p.BumpToIfNextNonNewlineIsAny(ops...) {
				break
			}
			kind = p.Current()
		}
		// A match that is only the start of a longer composite (`+` of
		// `+=`, `&&` of `&&=`) is not this level's operator; the longer
		// one belongs to a lower-precedence level.
		extended := false
		for longer, parts := range composites {
			if len(parts) > rawTokenCountFor(kind) && p.At(longer) {
				extended = true
				break
			}
		}
		if extended {
			break
		}
		prec := completed.Precede(p)
		p.Bump(kind)
		lower(p)
		completed = prec.Complete(p, syntax.BinExpr)
	}

	return completed
}

func parsePrecedence3Expr(p *Parser) CompletedMarker {
	return parseInfixBinop(p, parsePrecedence2Expr, syntax.Star, syntax.Slash, syntax.Percent)
}

func parsePrecedence4Expr(p *Parser) CompletedMarker {
	return parseInfixBinop(p, parsePrecedence3Expr, syntax.Plus, syntax.Minus)
}

// Composite kinds must be listed ahead of the single-character kind
// they extend: AtAny returns the first match in order, and a bare `<`
// check (current token equality, no lookahead) is also true at the
// first character of `<=`. Checking LtEq/GtEq first is what makes `<=`
// and `>=` reachable at all — see DESIGN.md.
func parsePrecedence5Expr(p *Parser) CompletedMarker {
	return parseInfixBinop(p, parsePrecedence4Expr, syntax.LtEq, syntax.Lt, syntax.GtEq, syntax.Gt)
}

func parsePrecedence6Expr(p *Parser) CompletedMarker {
	return parseInfixBinop(p, parsePrecedence5Expr, syntax.EqEq, syntax.NotEq)
}

func parsePrecedence7Expr(p *Parser) CompletedMarker {
	return parseInfixBinop(p, parsePrecedence6Expr, syntax.AmpAmp)
}

func parsePrecedence8Expr(p *Parser) CompletedMarker {
	return parseInfixBinop(p, parsePrecedence7Expr, syntax.PipePipe)
}

func parsePrecedence9Expr(p *Parser) CompletedMarker {
	return parseInfixBinop(p, parsePrecedence8Expr,
		syntax.Eq, syntax.PlusEq, syntax.MinusEq, syntax.StarEq, syntax.SlashEq,
		syntax.PercentEq, syntax.AmpEq, syntax.PipeEq, syntax.CaretEq,
		syntax.AmpAmpEq, syntax.PipePipeEq,
	)
}

func parseExprBlock(p *Parser) CompletedMarker {
	p.SkipNewlines()
	return parseTT(p, syntax.Block, syntax.LBrace, noSep, syntax.RBrace, parseStatement)
}

func parseDeclaration(p *Parser) CompletedMarker {
	p.SkipNewlines()
	m := p.Start()
	p.Expect(syntax.Let)
	p.Expect(syntax.Ident)
	p.Expect(syntax.Eq)
	parseExpr(p)
	p.RequireNewline()
	return m.Complete(p, syntax.DeclarationStmt)
}

func parseConditional(p *Parser) CompletedMarker {
	p.SkipNewlines()
	m := p.Start()
	parseConditionalBranch(p)

	for p.BumpToIfNextNonNewlineIs(syntax.Else) {
		p.Bump(syntax.Else)
		if p.BumpToIfNextNonNewlineIs(syntax.If) {
			parseConditionalBranch(p)
		} else {
			parseExprBlock(p)
			break
		}
	}

	return m.Complete(p, syntax.IfExpr)
}

func parseConditionalBranch(p *Parser) {
	p.SkipNewlines()
	p.Bump(syntax.If)
	parseExpr(p)
	parseExprBlock(p)
}

func parseFor(p *Parser) CompletedMarker {
	p.SkipNewlines()
	m := p.Start()

	p.Bump(syntax.For)
	parseForInExpr(p)
	parseExprBlock(p)
	p.RequireNewline()

	return m.Complete(p, syntax.ForStmt)
}

func parseForInExpr(p *Parser) CompletedMarker {
	m := p.Start()
	parseExpr(p)
	p.Expect(syntax.In)
	parseExpr(p)
	return m.Complete(p, syntax.ForInExpr)
}

func parseWhile(p *Parser) CompletedMarker {
	p.SkipNewlines()
	m := p.Start()

	p.Bump(syntax.While)
	parseExpr(p)
	parseExprBlock(p)
	p.RequireNewline()

	return m.Complete(p, syntax.WhileStmt)
}

func parseControlStmt(p *Parser) CompletedMarker {
	p.SkipNewlines()
	m := p.Start()

	switch {
	case p.Eat(syntax.Continue):
		p.RequireNewline()
		return m.Complete(p, syntax.ContinueStmt)
	case p.Eat(syntax.Return):
		if !p.At(syntax.Newline) && !p.At(syntax.EOF) {
			parseExpr(p)
		}
		p.RequireNewline()
		return m.Complete(p, syntax.ReturnStmt)
	case p.Eat(syntax.Break):
		if !p.At(syntax.Newline) && !p.At(syntax.EOF) {
			parseExpr(p)
		}
		p.RequireNewline()
		return m.Complete(p, syntax.BreakStmt)
	default:
		panic("syntax: parseControlStmt called without a continue/break/return token")
	}
}
