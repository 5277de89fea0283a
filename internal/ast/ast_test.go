package ast_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"lumen/internal/ast"
	"lumen/internal/parser"
)

func TestInspectVisitsEveryLayer(t *testing.T) {
	source := `page Home:
  state count = 0
  derived label = "count: {count}"
  fn reset():
    count = 0
  layout:
    text label
    button "Reset" @click: reset()
`
	nodes, err := parser.Parse(source)
	require.NoError(t, err)

	counts := map[ast.NodeType]int{}
	ast.Inspect(nodes[0], func(n ast.Node) bool {
		counts[n.NodeType()]++
		return true
	})

	assert.Equal(t, 1, counts[ast.PAGE])
	assert.Equal(t, 1, counts[ast.STATE_DECL])
	assert.Equal(t, 1, counts[ast.DERIVED_DECL])
	assert.Equal(t, 1, counts[ast.FN_DECL])
	assert.Equal(t, 3, counts[ast.ELEMENT], "layout, text and button")
	assert.Equal(t, 1, counts[ast.TEMPLATE_EXPR])
	assert.Equal(t, 1, counts[ast.EVENT_HANDLER])
	// count in the template and the fn assignment, label under text, reset
	// as the call target.
	assert.Equal(t, 4, counts[ast.IDENT_EXPR])
}

func TestInspectPruning(t *testing.T) {
	nodes, err := parser.Parse(`page P:
  layout:
    text "a"
    text "b"
`)
	require.NoError(t, err)

	var visited []ast.NodeType
	ast.Inspect(nodes[0], func(n ast.Node) bool {
		visited = append(visited, n.NodeType())
		return n.NodeType() != ast.ELEMENT
	})

	assert.Equal(t, []ast.NodeType{ast.PAGE, ast.ELEMENT}, visited,
		"returning false must skip the element's children")
}

func TestDumpOutline(t *testing.T) {
	nodes, err := parser.Parse(`page Home:
  state count = 0
  text count
`)
	require.NoError(t, err)

	out := ast.Dump(nodes)
	assert.Contains(t, out, "PAGE Home (1:1)")
	assert.Contains(t, out, "  STATE_DECL count (2:3)")
	assert.Contains(t, out, "  ELEMENT text (3:3)")
}
