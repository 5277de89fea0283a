// Package compiler is the front door: it runs source text through the
// lexer, parser and validator and hands back every finding as data.
package compiler

import (
	"lumen/internal/ast"
	"lumen/internal/diag"
	"lumen/internal/parser"
	"lumen/internal/validate"
)

// Result is the outcome of one compilation. Nodes is nil when the parse
// failed; validator findings only exist for trees that parsed.
type Result struct {
	Filename string
	Nodes    []ast.Node
	Errors   []diag.Finding
	Warnings []diag.Finding
}

// OK reports whether downstream consumers may use the tree: no errors.
// Warnings alone never block.
func (r Result) OK() bool {
	return len(r.Errors) == 0
}

// Findings returns errors then warnings, for reporting in one pass.
func (r Result) Findings() []diag.Finding {
	out := make([]diag.Finding, 0, len(r.Errors)+len(r.Warnings))
	out = append(out, r.Errors...)
	out = append(out, r.Warnings...)
	return out
}

// Compile parses and validates source. A parse failure yields exactly one
// error and no tree; a parsed tree carries all validator findings at once.
func Compile(filename, source string) Result {
	res := Result{Filename: filename}

	nodes, err := parser.ParseSource(filename, source)
	if err != nil {
		pe := err.(*parser.ParseError)
		res.Errors = append(res.Errors, diag.Finding{
			Severity: diag.Error,
			Code:     pe.Code,
			Message:  pe.Message,
			Position: pe.Position,
		})
		return res
	}
	res.Nodes = nodes

	checked := validate.Check(nodes)
	res.Errors = checked.Errors
	res.Warnings = checked.Warnings
	return res
}
