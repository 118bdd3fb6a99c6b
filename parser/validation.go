package parser

import (
	"github.com/rubyparse/rubyparse/ast"
	"github.com/rubyparse/rubyparse/internal/diag"
)

// checkVoidExpression implements spec.md §4.2's void-expression detection:
// after parsing an assignment value, a conditional left operand, an `and`/
// `or` left operand, or an argument, the produced tree is walked looking for
// a node whose value is never actually usable. if/unless/begin/parens and
// statement lists transparently descend into their last-reached position;
// `and`/`or` only ever descend into their left operand, since a void right
// operand is merely dead code rather than a used-as-a-value error.
func (p *Parser) checkVoidExpression(n ast.Node) {
	if void := findVoidNode(n); void != nil {
		p.warnf(diag.VoidExpression, void.Loc().Start, void.Loc().End, "void value expression")
	}
}

func findVoidNode(n ast.Node) ast.Node {
	if n == nil {
		return nil
	}
	switch v := n.(type) {
	case *ast.ReturnNode, *ast.BreakNode, *ast.NextNode, *ast.RedoNode, *ast.RetryNode, *ast.MatchRequiredNode:
		return n
	case *ast.StatementsNode:
		return findVoidInStatements(v)
	case *ast.IfNode:
		if void := findVoidInStatements(v.Statements); void != nil {
			return void
		}
		return findVoidNode(v.Consequent)
	case *ast.UnlessNode:
		if void := findVoidInStatements(v.Statements); void != nil {
			return void
		}
		if v.Consequent != nil {
			return findVoidInStatements(v.Consequent.Statements)
		}
		return nil
	case *ast.ElseNode:
		return findVoidInStatements(v.Statements)
	case *ast.BeginNode:
		return findVoidInStatements(v.Statements)
	case *ast.ParenthesesNode:
		return findVoidNode(v.Body)
	case *ast.AndNode:
		return findVoidNode(v.Left)
	case *ast.OrNode:
		return findVoidNode(v.Left)
	default:
		return nil
	}
}

func findVoidInStatements(s *ast.StatementsNode) ast.Node {
	if s == nil || len(s.Body) == 0 {
		return nil
	}
	return findVoidNode(s.Body[len(s.Body)-1])
}

// checkConditionPredicate implements spec.md §4.2's predicate-position
// analysis for if/unless/while/until/?:: static-literal conditions warn
// (LiteralInCondition), a bare Range predicate retags to FlipFlop (the
// source's flip-flop operator), a bare Regexp predicate retags to
// MatchLastLine (matches against $_), and an assignment used directly as the
// predicate warns as a probable `==` typo.
func (p *Parser) checkConditionPredicate(cond ast.Node) ast.Node {
	if cond == nil {
		return cond
	}
	p.checkVoidExpression(cond)
	switch v := cond.(type) {
	case *ast.RangeNode:
		if isIntegerLiteral(v.Left) || isIntegerLiteral(v.Right) {
			p.warnf(diag.IntegerInFlipFlop, v.Loc().Start, v.Loc().End, "integer literal in flip-flop")
		}
		return ast.NewFlipFlop(v.Loc(), v.Left, v.Right, v.HasFlags(ast.FlagRangeExclusive))
	case *ast.RegexpNode:
		return ast.NewMatchLastLine(v.Loc(), v.Unescaped, v.Options)
	case *ast.LocalVariableWriteNode, *ast.InstanceVariableWriteNode, *ast.ClassVariableWriteNode,
		*ast.GlobalVariableWriteNode, *ast.ConstantWriteNode:
		p.warnf(diag.AssignmentInCondition, cond.Loc().Start, cond.Loc().End, "found `=` in conditional, should be `==`")
		return cond
	}
	if isStaticConditionLiteral(cond) {
		p.warnf(diag.LiteralInCondition, cond.Loc().Start, cond.Loc().End, "literal in condition")
	}
	return cond
}

// checkDuplicateWhenClauses implements spec.md §2's duplicate when-clause
// warning: two `when` conditions that are both statically-known literals
// with the same value are almost certainly a copy-paste mistake, since the
// second can never be reached.
func (p *Parser) checkDuplicateWhenClauses(whens []*ast.WhenNode) {
	seen := make(map[string]bool)
	for _, w := range whens {
		for _, cond := range w.Conditions {
			key, ok := staticHashKeyText(cond)
			if !ok {
				continue
			}
			if seen[key] {
				p.warnf(diag.DuplicatedWhenClause, cond.Loc().Start, cond.Loc().End, "duplicated when clause for %s", key)
				continue
			}
			seen[key] = true
		}
	}
}

// checkClassOrModuleInMethod implements spec.md §7's ClassOrModuleInMethod
// error: `class`/`module`/`class << self` cannot be nested inside a def's
// body (real Ruby raises SyntaxError here rather than letting it parse).
func (p *Parser) checkClassOrModuleInMethod(start, end int) {
	if p.defDepth > 0 {
		p.errorf(diag.ClassOrModuleInMethod, start, end, "class/module definition in method body")
	}
}

// checkReturnPlacement implements spec.md §7's ReturnOutsideMethod error:
// top-level `return` is legal (it ends the script early), but `return`
// written directly in a class/module body, outside any def, is not.
func (p *Parser) checkReturnPlacement(start, end int) {
	if p.defDepth == 0 && p.classModuleDepth > 0 {
		p.errorf(diag.ReturnOutsideMethod, start, end, "return used outside of a method")
	}
}

func isIntegerLiteral(n ast.Node) bool {
	return n != nil && n.Kind() == ast.KindIntegerNode
}

func isStaticConditionLiteral(n ast.Node) bool {
	switch n.Kind() {
	case ast.KindNilNode, ast.KindTrueNode, ast.KindFalseNode,
		ast.KindIntegerNode, ast.KindFloatNode, ast.KindRationalNode, ast.KindImaginaryNode,
		ast.KindSymbolNode, ast.KindStringNode, ast.KindRegexpNode,
		ast.KindFileNode, ast.KindLineNode, ast.KindEncodingNode,
		ast.KindInterpolatedStringNode, ast.KindInterpolatedSymbolNode:
		return true
	}
	return false
}
