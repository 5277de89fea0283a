package lsp

import (
	protocol "github.com/tliron/glsp/protocol_3_16"

	"lumen/internal/ast"
	"lumen/internal/diag"
)

// ConvertFindings transforms compiler findings into LSP diagnostics.
// Positions shift from the front end's 1-based lines and columns to the
// protocol's 0-based indexing.
func ConvertFindings(findings []diag.Finding) []protocol.Diagnostic {
	var diagnostics []protocol.Diagnostic
	for _, f := range findings {
		severity := protocol.DiagnosticSeverityError
		if f.Severity == diag.Warning {
			severity = protocol.DiagnosticSeverityWarning
		}
		diagnostics = append(diagnostics, protocol.Diagnostic{
			Range:    findingRange(f.Position),
			Severity: &severity,
			Code:     &protocol.IntegerOrString{Value: f.Code},
			Source:   ptrString("lumen"),
			Message:  f.Message,
		})
	}
	return diagnostics
}

// findingRange spans a few characters after the finding's column so editors
// have something visible to underline. Findings carry a point, not a span.
func findingRange(pos ast.Position) protocol.Range {
	return protocol.Range{
		Start: protocol.Position{
			Line:      uint32(pos.Line - 1),
			Character: uint32(pos.Column - 1),
		},
		End: protocol.Position{
			Line:      uint32(pos.Line - 1),
			Character: uint32(pos.Column + 4),
		},
	}
}

// rangeFor converts a node's 1-based start/end positions to a protocol range.
func rangeFor(start, end ast.Position) protocol.Range {
	return protocol.Range{
		Start: protocol.Position{
			Line:      uint32(start.Line - 1),
			Character: uint32(start.Column - 1),
		},
		End: protocol.Position{
			Line:      uint32(end.Line - 1),
			Character: uint32(end.Column - 1),
		},
	}
}

func ptrString(s string) *string {
	return &s
}
