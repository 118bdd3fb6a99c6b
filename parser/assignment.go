package parser

import (
	"github.com/rubyparse/rubyparse/ast"
	"github.com/rubyparse/rubyparse/token"
)

// parseAssignment handles `target = value`, right-associative so
// `a = b = c` parses as `a = (b = c)`.
func (p *Parser) parseAssignment(left ast.Node) ast.Node {
	p.advance() // '='
	p.skipTerminators()
	value := p.parseExpression(PrecAssignment - 1)
	p.checkVoidExpression(value)
	return p.toWrite(left, value)
}

var compoundAssignOperator = map[token.Kind]string{
	token.PLUS_EQ:    "+",
	token.MINUS_EQ:   "-",
	token.STAR_EQ:    "*",
	token.SLASH_EQ:   "/",
	token.PERCENT_EQ: "%",
	token.POW_EQ:     "**",
	token.AMP_EQ:     "&",
	token.PIPE_EQ:    "|",
	token.CARET_EQ:   "^",
	token.LSHIFT_EQ:  "<<",
	token.RSHIFT_EQ:  ">>",
}

// parseOperatorAssignment handles `target op= value` for every binary
// operator that has a compound-assignment form (spec.md §4.3).
func (p *Parser) parseOperatorAssignment(left ast.Node) ast.Node {
	opName := compoundAssignOperator[p.cur.Kind]
	p.advance()
	p.skipTerminators()
	value := p.parseExpression(PrecAssignment - 1)
	p.checkVoidExpression(value)
	return p.toOperatorWrite(left, opName, value)
}

// parseShortCircuitAssignment handles `target &&= value` / `target ||=
// value`.
func (p *Parser) parseShortCircuitAssignment(left ast.Node, and bool) ast.Node {
	p.advance()
	p.skipTerminators()
	value := p.parseExpression(PrecAssignment - 1)
	p.checkVoidExpression(value)
	return p.toShortCircuitWrite(left, and, value)
}
