package main

import (
	"os"

	"github.com/fxamacker/cbor/v2"

	"github.com/rubyparse/rubyparse/ast"
	"github.com/rubyparse/rubyparse/internal/diag"
	"github.com/rubyparse/rubyparse/parser"
)

// diagnosticSnapshot is the wire shape one diag.Diagnostic takes in a
// --dump-cbor snapshot: a plain value, never the tree itself.
type diagnosticSnapshot struct {
	Severity string `cbor:"severity"`
	Message  string `cbor:"message"`
	Line     int    `cbor:"line"`
	Column   int    `cbor:"column"`
}

// snapshot is what --dump-cbor writes: the diagnostic list plus a
// flattened node-shape summary (top-level statement kinds and a shallow node
// count: the program node plus its top-level statements), not the full
// pointer-laden AST (spec.md §1 keeps serialization
// of the tree itself out of core scope).
type snapshot struct {
	Errors         []diagnosticSnapshot `cbor:"errors"`
	Warnings       []diagnosticSnapshot `cbor:"warnings"`
	StatementKinds []string             `cbor:"statement_kinds"`
	NodeCount      int                  `cbor:"node_count"`
}

// writeCBORSnapshot encodes res as a snapshot and writes it to path.
func writeCBORSnapshot(path string, res parser.Result) error {
	out := snapshot{
		Errors:   diagnosticSnapshots(res.Errors, res),
		Warnings: diagnosticSnapshots(res.Warnings, res),
	}
	if res.Program != nil && res.Program.Statements != nil {
		for _, stmt := range res.Program.Statements.Body {
			out.StatementKinds = append(out.StatementKinds, stmt.Kind().String())
		}
		out.NodeCount = countNodes(res.Program)
	}

	encoded, err := cbor.Marshal(out)
	if err != nil {
		return err
	}
	return os.WriteFile(path, encoded, 0o644)
}

func diagnosticSnapshots(items []diag.Diagnostic, res parser.Result) []diagnosticSnapshot {
	out := make([]diagnosticSnapshot, 0, len(items))
	for _, d := range items {
		pos := d.Location(res.Lines)
		out = append(out, diagnosticSnapshot{
			Severity: d.Severity.String(),
			Message:  d.Message,
			Line:     pos.Line,
			Column:   pos.Column,
		})
	}
	return out
}

// countNodes is a shallow, single-level-plus-program count: the program
// node itself plus its direct top-level statements. A full recursive walk
// would need a generic child-visitor the AST package doesn't expose (it
// trades that generality for ~150 concrete, non-reflective node types);
// this stays within what Kind()/Statements already surface.
func countNodes(prog *ast.ProgramNode) int {
	if prog.Statements == nil {
		return 1
	}
	return 1 + len(prog.Statements.Body)
}
