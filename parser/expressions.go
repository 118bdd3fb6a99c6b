package parser

import (
	"github.com/rubyparse/rubyparse/ast"
	"github.com/rubyparse/rubyparse/internal/diag"
	"github.com/rubyparse/rubyparse/token"
)

// parseExpression is the Pratt loop: parse one prefix expression, then
// repeatedly fold in infix operators whose precedence exceeds minPrec
// (spec.md §4.2's binding-power table).
func (p *Parser) parseExpression(minPrec Precedence) ast.Node {
	left := p.parsePrefix()
	for {
		prec, ok := infixPrecedence[p.cur.Kind]
		if !ok || prec <= minPrec {
			break
		}
		left = p.parseInfix(left, prec)
	}
	return left
}

func (p *Parser) parsePrefix() ast.Node {
	start := p.cur.Start
	switch p.cur.Kind {
	case token.BANG:
		p.advance()
		operand := p.parseExpression(PrecUnaryBang)
		return ast.NewNot(p.loc(start, p.prev.End), operand)
	case token.KNOT:
		p.advance()
		operand := p.parseExpression(PrecNot)
		return ast.NewNot(p.loc(start, p.prev.End), operand)
	case token.UMINUS, token.UMINUS_NUM:
		p.advance()
		operand := p.parseExpression(PrecUnaryMinus)
		return p.buildUnaryCall(start, "-@", operand)
	case token.UPLUS:
		p.advance()
		operand := p.parseExpression(PrecUnaryMinus)
		return p.buildUnaryCall(start, "+@", operand)
	case token.TILDE:
		p.advance()
		operand := p.parseExpression(PrecUnaryMinus)
		return p.buildUnaryCall(start, "~", operand)
	case token.USTAR:
		p.advance()
		operand := p.parseExpression(PrecUnaryMinus)
		return ast.NewSplat(p.loc(start, p.prev.End), operand)
	case token.USTAR2:
		p.advance()
		operand := p.parseExpression(PrecUnaryMinus)
		return ast.NewDoubleSplat(p.loc(start, p.prev.End), operand)
	case token.UAMP:
		p.advance()
		var operand ast.Node
		if !p.atArgTerminator() {
			operand = p.parseExpression(PrecUnaryMinus)
		}
		return ast.NewBlockArgument(p.loc(start, p.prev.End), operand)
	case token.UDOT2:
		p.advance()
		right := p.parseExpression(PrecRange)
		return ast.NewRange(p.loc(start, p.prev.End), nil, right, false)
	case token.UDOT3:
		p.advance()
		right := p.parseExpression(PrecRange)
		return ast.NewRange(p.loc(start, p.prev.End), nil, right, true)
	case token.LAMBDA_ARROW:
		return p.parseLambda()
	case token.KDEFINED:
		return p.parseDefined()
	case token.KYIELD:
		return p.parseYield()
	case token.KSUPER:
		return p.parseSuper()
	case token.KBREAK:
		p.advance()
		args := p.parseOptionalJumpArguments()
		return ast.NewBreak(p.loc(start, p.prev.End), args)
	case token.KNEXT:
		p.advance()
		args := p.parseOptionalJumpArguments()
		return ast.NewNext(p.loc(start, p.prev.End), args)
	case token.KRETURN:
		p.checkReturnPlacement(start, start+len("return"))
		p.advance()
		args := p.parseOptionalJumpArguments()
		return ast.NewReturn(p.loc(start, p.prev.End), args)
	case token.KREDO:
		p.advance()
		return ast.NewRedo(p.loc(start, p.prev.End))
	case token.KRETRY:
		p.advance()
		return ast.NewRetry(p.loc(start, p.prev.End))
	case token.KBEGIN_UPPER:
		return p.parsePreExecution()
	case token.KEND_UPPER:
		return p.parsePostExecution()
	case token.KALIAS:
		return p.parseAlias()
	case token.KUNDEF:
		return p.parseUndef()
	default:
		return p.parsePrimary()
	}
}

func (p *Parser) buildUnaryCall(start int, opName string, operand ast.Node) ast.Node {
	call := ast.NewCall(p.loc(start, p.prev.End), operand, p.pool.InternOwned(opName), nil, nil)
	call.OperatorLoc = p.loc(start, start+1)
	return call
}

func (p *Parser) atArgTerminator() bool {
	switch p.cur.Kind {
	case token.NEWLINE, token.SEMICOLON, token.RPAREN, token.EOF, token.KDO, token.KTHEN:
		return true
	}
	return false
}

// parseInfix handles one binary/postfix operator given its precedence,
// dispatching assignment, ternary, range, and ordinary binary-operator
// forms.
func (p *Parser) parseInfix(left ast.Node, prec Precedence) ast.Node {
	switch p.cur.Kind {
	case token.ASSIGN:
		return p.parseAssignment(left)
	case token.PLUS_EQ, token.MINUS_EQ, token.STAR_EQ, token.SLASH_EQ, token.PERCENT_EQ,
		token.POW_EQ, token.AMP_EQ, token.PIPE_EQ, token.CARET_EQ, token.LSHIFT_EQ, token.RSHIFT_EQ:
		return p.parseOperatorAssignment(left)
	case token.ANDAND_EQ:
		return p.parseShortCircuitAssignment(left, true)
	case token.OROR_EQ:
		return p.parseShortCircuitAssignment(left, false)
	case token.QUESTION:
		return p.parseTernary(left)
	case token.DOT2:
		p.advance()
		var right ast.Node
		if !p.atExpressionEnd() {
			right = p.parseExpression(prec)
		}
		return ast.NewRange(left.Loc().Union(p.prevLoc()), left, right, false)
	case token.DOT3:
		p.advance()
		var right ast.Node
		if !p.atExpressionEnd() {
			right = p.parseExpression(prec)
		}
		return ast.NewRange(left.Loc().Union(p.prevLoc()), left, right, true)
	case token.AMP2:
		p.checkVoidExpression(left)
		p.advance()
		right := p.parseExpression(prec)
		return ast.NewAnd(left.Loc().Union(right.Loc()), left, right)
	case token.PIPE2:
		p.checkVoidExpression(left)
		p.advance()
		right := p.parseExpression(prec)
		return ast.NewOr(left.Loc().Union(right.Loc()), left, right)
	case token.KAND:
		p.checkVoidExpression(left)
		p.advance()
		right := p.parseExpression(prec)
		return ast.NewAnd(left.Loc().Union(right.Loc()), left, right)
	case token.KOR:
		p.checkVoidExpression(left)
		p.advance()
		right := p.parseExpression(prec)
		return ast.NewOr(left.Loc().Union(right.Loc()), left, right)
	case token.DOT, token.AMPDOT, token.COLON2:
		return p.parsePostfixCall(left)
	case token.LBRACKET, token.LBRACKET_ARG:
		return p.parseIndexCall(left)
	default:
		return p.parseBinaryOperator(left, prec)
	}
}

func (p *Parser) prevLoc() ast.Location { return ast.Location{Start: p.prev.Start, End: p.prev.End} }

func (p *Parser) atExpressionEnd() bool {
	switch p.cur.Kind {
	case token.NEWLINE, token.SEMICOLON, token.EOF, token.RPAREN, token.RBRACKET, token.RBRACE, token.COMMA:
		return true
	}
	return false
}

var operatorMethodName = map[token.Kind]string{
	token.EQ: "==", token.NEQ: "!=", token.EQQ: "===", token.EQTILDE: "=~", token.NMATCH: "!~",
	token.LT: "<", token.LEQ: "<=", token.GT: ">", token.GEQ: ">=", token.CMP: "<=>",
	token.PIPE: "|", token.CARET: "^", token.AMP: "&", token.LSHIFT: "<<", token.RSHIFT: ">>",
	token.PLUS: "+", token.MINUS: "-", token.STAR: "*", token.SLASH: "/", token.PERCENT: "%", token.POW: "**",
}

func (p *Parser) parseBinaryOperator(left ast.Node, prec Precedence) ast.Node {
	opTok := p.cur
	name, ok := operatorMethodName[opTok.Kind]
	if !ok {
		return left
	}
	// left may itself be a Regexp literal (the documented primary trigger,
	// spec.md §4.6: "the left operand is a Regexp literal"), in which case
	// its named captures are already sitting in pendingNamedCaptures from
	// when left was parsed. Capture those before parsing right clears the
	// field for right's own (mutually exclusive, since only one side of
	// `=~` is ever a Regexp literal) potential captures.
	leftCaptures := p.pendingNamedCaptures
	p.advance()
	p.pendingNamedCaptures = nil
	right := p.parseExpression(prec)
	loc := left.Loc().Union(right.Loc())
	call := ast.NewCall(loc, left, p.pool.InternOwned(name),
		ast.NewArguments(right.Loc(), []ast.Node{right}, false), nil)
	call.OperatorLoc = p.loc(opTok.Start, opTok.End)

	captures := leftCaptures
	if len(p.pendingNamedCaptures) > 0 {
		captures = p.pendingNamedCaptures
	}
	if opTok.Kind == token.EQTILDE && len(captures) > 0 {
		targets := make([]*ast.LocalVariableTargetNode, 0, len(captures))
		for _, name := range captures {
			id := p.pool.InternOwned(name)
			p.scopes.Add(id)
			targets = append(targets, ast.NewLocalVariableTarget(loc, id, 0))
		}
		p.pendingNamedCaptures = nil
		return ast.NewMatchWrite(loc, call, targets)
	}
	return call
}

func (p *Parser) parseTernary(predicate ast.Node) ast.Node {
	predicate = p.checkConditionPredicate(predicate)
	p.advance() // '?'
	thenExpr := p.parseExpression(PrecTernary)
	p.expect(token.COLON, "':'")
	elseExpr := p.parseExpression(PrecTernary)
	loc := predicate.Loc().Union(elseExpr.Loc())
	thenStmts := ast.NewStatements(thenExpr.Loc(), []ast.Node{thenExpr})
	elseStmts := ast.NewStatements(elseExpr.Loc(), []ast.Node{elseExpr})
	n := ast.NewIf(loc, predicate, thenStmts, ast.NewElse(elseExpr.Loc(), elseStmts))
	n.IsTernary = true
	return n
}

func (p *Parser) parseOptionalJumpArguments() *ast.ArgumentsNode {
	if p.atArgTerminator() || p.atExpressionEnd() {
		return nil
	}
	return p.parseBareArgumentList()
}

func (p *Parser) parseBareArgumentList() *ast.ArgumentsNode {
	start := p.cur.Start
	var args []ast.Node
	args = append(args, p.parseArgument())
	for p.cur.Kind == token.COMMA {
		p.advance()
		p.skipTerminators()
		args = append(args, p.parseArgument())
	}
	return ast.NewArguments(p.loc(start, p.prev.End), args, false)
}

func (p *Parser) parseArgument() ast.Node {
	if p.cur.Kind == token.LABEL {
		return p.parseKeywordArgument()
	}
	if p.cur.Kind == token.STAR2 || (p.cur.Kind == token.USTAR2) {
		p.advance()
		val := p.parseExpression(PrecAssignment)
		return ast.NewAssocSplat(p.prevLoc().Union(val.Loc()), val)
	}
	arg := p.parseExpression(PrecModifier)
	p.checkVoidExpression(arg)
	return arg
}

func (p *Parser) parseKeywordArgument() ast.Node {
	labelTok := p.cur
	p.advance()
	key := ast.NewSymbol(p.loc(labelTok.Start, labelTok.End-1), p.text(labelTok)[:len(p.text(labelTok))-1])
	if p.atArgTerminator() || p.cur.Kind == token.COMMA {
		name := string(key.Unescaped)
		implicit := p.resolveBareIdentifier(labelTok, name)
		return ast.NewAssoc(key.Loc(), key, implicit, false)
	}
	val := p.parseExpression(PrecModifier)
	return ast.NewAssoc(key.Loc().Union(val.Loc()), key, val, false)
}
