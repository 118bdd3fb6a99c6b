package parser

import (
	"github.com/rubyparse/rubyparse/ast"
	"github.com/rubyparse/rubyparse/internal/diag"
)

// isIndexCallName reports whether name is the synthetic "[]" method name
// parseIndexCall gives every `recv[args]` CallNode, distinguishing it from
// an ordinary `recv.name` attribute call built by parsePostfixCall.
func (p *Parser) isIndexCallName(name ast.Node) bool {
	call, ok := name.(*ast.CallNode)
	return ok && call.Receiver != nil && p.pool.String(call.Name) == "[]"
}

// toTarget implements spec component J: a node parsed as a plain read
// expression is rewritten into its Target counterpart once the parser
// discovers it sits on the left of `=`, inside a multi-assign list, a block
// destructure, or a pattern binding. Unsupported left-hand sides report
// diag.InvalidWriteTarget and are returned as a MissingNode so the caller
// can keep building a complete tree.
func (p *Parser) toTarget(n ast.Node) ast.Node {
	switch v := n.(type) {
	case *ast.LocalVariableReadNode:
		p.scopes.Add(v.Name)
		return ast.NewLocalVariableTarget(v.Loc(), v.Name, v.Depth)
	case *ast.InstanceVariableReadNode:
		return ast.NewInstanceVariableTarget(v.Loc(), v.Name)
	case *ast.ClassVariableReadNode:
		return ast.NewClassVariableTarget(v.Loc(), v.Name)
	case *ast.GlobalVariableReadNode:
		return ast.NewGlobalVariableTarget(v.Loc(), v.Name)
	case *ast.ConstantReadNode:
		return ast.NewConstantTarget(v.Loc(), v.Name)
	case *ast.ConstantPathNode:
		return ast.NewConstantPathTarget(v.Loc(), v)
	case *ast.SplatNode, *ast.MultiTargetNode, *ast.ImplicitRestNode,
		*ast.LocalVariableTargetNode, *ast.IndexTargetNode:
		return v
	case *ast.CallNode:
		if v.HasFlags(ast.FlagCallVariableCall) {
			p.scopes.Add(v.Name)
			return ast.NewLocalVariableTarget(v.Loc(), v.Name, 0)
		}
		if p.isIndexCallName(v) {
			return ast.NewIndexTarget(v.Loc(), v.Receiver, v.Arguments)
		}
		v.AddFlags(ast.FlagCallAttributeWrite)
		return v
	default:
		p.errorf(diag.InvalidWriteTarget, n.Loc().Start, n.Loc().End, "cannot assign to this expression")
		return ast.NewMissing(n.Loc())
	}
}

// toWrite converts a just-parsed left-hand expression plus a parsed `=`
// value into the appropriate write node: a `*WriteNode` for a plain
// variable/constant, or a CallNode renamed to its setter method
// ("foo=" / "[]=") for attribute and index assignment — mirroring how Ruby
// itself desugars both forms into ordinary method calls.
func (p *Parser) toWrite(left ast.Node, value ast.Node) ast.Node {
	loc := left.Loc().Union(value.Loc())
	switch v := left.(type) {
	case *ast.LocalVariableReadNode:
		p.scopes.Add(v.Name)
		return ast.NewLocalVariableWrite(loc, v.Name, v.Depth, value)
	case *ast.InstanceVariableReadNode:
		return ast.NewInstanceVariableWrite(loc, v.Name, value)
	case *ast.ClassVariableReadNode:
		return ast.NewClassVariableWrite(loc, v.Name, value)
	case *ast.GlobalVariableReadNode:
		return ast.NewGlobalVariableWrite(loc, v.Name, value)
	case *ast.ConstantReadNode:
		return ast.NewConstantWrite(loc, v.Name, value)
	case *ast.ConstantPathNode:
		return ast.NewConstantPathWrite(loc, v, value)
	case *ast.CallNode:
		if v.HasFlags(ast.FlagCallVariableCall) {
			p.scopes.Add(v.Name)
			return ast.NewLocalVariableWrite(loc, v.Name, 0, value)
		}
		if p.isIndexCallName(v) {
			args := append(append([]ast.Node{}, v.Arguments.Arguments...), value)
			call := ast.NewCall(loc, v.Receiver, p.pool.InternOwned("[]="), ast.NewArguments(loc, args, false), nil)
			call.AddFlags(ast.FlagCallAttributeWrite)
			return call
		}
		call := ast.NewCall(loc, v.Receiver, p.pool.InternOwned(p.pool.String(v.Name)+"="), ast.NewArguments(value.Loc(), []ast.Node{value}, false), nil)
		call.OperatorLoc = v.OperatorLoc
		call.AddFlags(ast.FlagCallAttributeWrite)
		if v.HasFlags(ast.FlagCallSafeNavigation) {
			call.AddFlags(ast.FlagCallSafeNavigation)
		}
		return call
	default:
		p.errorf(diag.InvalidWriteTarget, left.Loc().Start, left.Loc().End, "cannot assign to this expression")
		return ast.NewMissing(loc)
	}
}

// toOperatorWrite handles `target op= value` (spec.md §4.3): a variable or
// constant target desugars to Write(Call(Read(target), op, value)); an
// attribute/index target uses the dedicated CallOperatorWrite/
// IndexOperatorWrite node, which carries the operator name separately so the
// interpreter can read-modify-write the receiver in one step.
func (p *Parser) toOperatorWrite(left ast.Node, opName string, value ast.Node) ast.Node {
	loc := left.Loc().Union(value.Loc())
	opID := p.pool.InternOwned(opName)

	if call, ok := left.(*ast.CallNode); ok && !call.HasFlags(ast.FlagCallVariableCall) {
		if p.isIndexCallName(call) {
			return ast.NewIndexOperatorWrite(loc, call.Receiver, call.Arguments, opID, value)
		}
		return ast.NewCallOperatorWrite(loc, call.Receiver, call.Name, opID, value)
	}

	read := p.asRead(left)
	if read == nil {
		p.errorf(diag.InvalidWriteTarget, left.Loc().Start, left.Loc().End, "cannot assign to this expression")
		return ast.NewMissing(loc)
	}
	combined := p.buildOperatorCall(read, opName, value)
	return p.toWrite(left, combined)
}

// toShortCircuitWrite handles `target &&= value` / `target ||= value`:
// attribute/index targets get the dedicated CallAndWrite/CallOrWrite/
// IndexAndWrite/IndexOrWrite nodes; everything else desugars to
// And(Read(target), Write(target, value)) / Or(...), matching Ruby's own
// `target && (target = value)` semantics exactly.
func (p *Parser) toShortCircuitWrite(left ast.Node, and bool, value ast.Node) ast.Node {
	loc := left.Loc().Union(value.Loc())

	if call, ok := left.(*ast.CallNode); ok && !call.HasFlags(ast.FlagCallVariableCall) {
		if p.isIndexCallName(call) {
			if and {
				return ast.NewIndexAndWrite(loc, call.Receiver, call.Arguments, value)
			}
			return ast.NewIndexOrWrite(loc, call.Receiver, call.Arguments, value)
		}
		if and {
			return ast.NewCallAndWrite(loc, call.Receiver, call.Name, value)
		}
		return ast.NewCallOrWrite(loc, call.Receiver, call.Name, value)
	}

	read := p.asRead(left)
	if read == nil {
		p.errorf(diag.InvalidWriteTarget, left.Loc().Start, left.Loc().End, "cannot assign to this expression")
		return ast.NewMissing(loc)
	}
	write := p.toWrite(left, value)
	if and {
		return ast.NewAnd(loc, read, write)
	}
	return ast.NewOr(loc, read, write)
}

// asRead returns a fresh read-node equivalent to a just-parsed assignment
// target, used to build the `target op value` / `target && ...` left side
// of a compound-assignment desugaring without mutating the original node.
func (p *Parser) asRead(n ast.Node) ast.Node {
	switch v := n.(type) {
	case *ast.LocalVariableReadNode:
		return v
	case *ast.InstanceVariableReadNode:
		return v
	case *ast.ClassVariableReadNode:
		return v
	case *ast.GlobalVariableReadNode:
		return v
	case *ast.ConstantReadNode:
		return v
	case *ast.ConstantPathNode:
		return v
	case *ast.CallNode:
		if v.HasFlags(ast.FlagCallVariableCall) {
			return v
		}
	}
	return nil
}

func (p *Parser) buildOperatorCall(left ast.Node, opName string, right ast.Node) ast.Node {
	call := ast.NewCall(left.Loc().Union(right.Loc()), left, p.pool.InternOwned(opName),
		ast.NewArguments(right.Loc(), []ast.Node{right}, false), nil)
	return call
}
