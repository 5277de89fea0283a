package compiler

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"lumen/internal/diag"
)

func TestCompileCleanSource(t *testing.T) {
	res := Compile("app.lum", `page Home:
  state count = 0
  text count
  button "+" @click: count += 1
`)
	assert.True(t, res.OK())
	require.Len(t, res.Nodes, 1)
	assert.Empty(t, res.Findings())
	assert.Equal(t, "app.lum", res.Filename)
}

func TestCompileParseFailure(t *testing.T) {
	res := Compile("bad.lum", `page Home:
  stat count = 0
`)
	assert.False(t, res.OK())
	assert.Nil(t, res.Nodes, "no tree survives a parse failure")
	require.Len(t, res.Errors, 1)
	assert.Equal(t, diag.ErrUnknownKeyword, res.Errors[0].Code)
	assert.Equal(t, "bad.lum", res.Errors[0].Position.Filename)
}

func TestCompileFailsClosedOnValidationErrors(t *testing.T) {
	res := Compile("dup.lum", `page Home:
  state count = 0
  state count = 1
  text count
`)
	assert.False(t, res.OK(), "validation errors block downstream use")
	assert.NotNil(t, res.Nodes, "the tree itself parsed and is kept for tooling")
	require.Len(t, res.Errors, 1)
}

func TestCompileProceedsOnWarnings(t *testing.T) {
	res := Compile("warn.lum", `page Home:
  state silent = 0
  text "hello"
`)
	assert.True(t, res.OK(), "warnings alone never block")
	require.Len(t, res.Warnings, 1)
	assert.Equal(t, diag.WarnUnusedState, res.Warnings[0].Code)
}

func TestFindingsOrdersErrorsFirst(t *testing.T) {
	res := Compile("mixed.lum", `page Home:
  state unused = 0
  derived a = a
  text "x"
`)
	findings := res.Findings()
	require.Len(t, findings, 2)
	assert.Equal(t, diag.Error, findings[0].Severity)
	assert.Equal(t, diag.Warning, findings[1].Severity)
}
