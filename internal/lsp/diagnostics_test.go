package lsp

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	protocol "github.com/tliron/glsp/protocol_3_16"

	"lumen/internal/ast"
	"lumen/internal/compiler"
	"lumen/internal/diag"
)

func TestConvertFindingsShiftsToZeroBased(t *testing.T) {
	findings := []diag.Finding{
		diag.Errorf(diag.ErrUnknownKeyword, ast.Position{Line: 2, Column: 3}, "unknown keyword 'stat'"),
		diag.Warnf(diag.WarnUnusedState, ast.Position{Line: 5, Column: 9}, "state 'x' is declared but never used"),
	}

	diagnostics := ConvertFindings(findings)
	require.Len(t, diagnostics, 2)

	first := diagnostics[0]
	assert.Equal(t, uint32(1), first.Range.Start.Line)
	assert.Equal(t, uint32(2), first.Range.Start.Character)
	assert.Equal(t, protocol.DiagnosticSeverityError, *first.Severity)
	assert.Equal(t, "lumen", *first.Source)
	assert.Equal(t, diag.ErrUnknownKeyword, diagnostics[0].Code.Value)

	second := diagnostics[1]
	assert.Equal(t, uint32(4), second.Range.Start.Line)
	assert.Equal(t, protocol.DiagnosticSeverityWarning, *second.Severity)
}

func TestConvertFindingsEmpty(t *testing.T) {
	assert.Empty(t, ConvertFindings(nil))
}

func TestCompiledFindingsSurviveConversion(t *testing.T) {
	res := compiler.Compile("doc.lum", `page P:
  state count = 0
  state count = 1
  text count
`)
	diagnostics := ConvertFindings(res.Findings())
	require.Len(t, diagnostics, 1)
	assert.Contains(t, diagnostics[0].Message, "previously declared")
	assert.Equal(t, uint32(2), diagnostics[0].Range.Start.Line, "line 3 becomes 2 zero-based")
}

func TestSymbolsForTopLevelDecls(t *testing.T) {
	res := compiler.Compile("doc.lum", `page Home:
  text "hi"

model Todo:
  title: string

store cart:
  state items = []
  fn add(x):
    items.push(x)
`)
	require.True(t, res.OK())

	var names []string
	var kinds []protocol.SymbolKind
	for _, node := range res.Nodes {
		sym, ok := symbolFor(node)
		require.True(t, ok)
		names = append(names, sym.Name)
		kinds = append(kinds, sym.Kind)
	}
	assert.Equal(t, []string{"Home", "Todo", "cart"}, names)
	assert.Equal(t, []protocol.SymbolKind{
		protocol.SymbolKindClass,
		protocol.SymbolKindStruct,
		protocol.SymbolKindObject,
	}, kinds)
}
