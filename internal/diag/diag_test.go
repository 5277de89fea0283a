package diag

import (
	"testing"

	"github.com/fatih/color"
	"github.com/stretchr/testify/assert"

	"lumen/internal/ast"
)

func TestReporterFormat(t *testing.T) {
	color.NoColor = true
	defer func() { color.NoColor = false }()

	source := "page Home:\n  stat count = 0\n"
	r := NewReporter("app.lum", source)

	out := r.Format(Errorf(ErrUnknownKeyword, ast.Position{Line: 2, Column: 3}, "unknown keyword 'stat'"))

	assert.Contains(t, out, "error[P101]: unknown keyword 'stat'")
	assert.Contains(t, out, "app.lum:2:3")
	assert.Contains(t, out, "  stat count = 0")
	assert.Contains(t, out, "  ^", "marker should sit under column 3")
}

func TestReporterWarningLevel(t *testing.T) {
	color.NoColor = true
	defer func() { color.NoColor = false }()

	r := NewReporter("app.lum", "page P:\n  state x = 0\n")
	out := r.Format(Warnf(WarnUnusedState, ast.Position{Line: 2, Column: 9}, "state 'x' is declared but never used"))

	assert.Contains(t, out, "warning[W800]")
}

func TestReporterOutOfRangeLine(t *testing.T) {
	color.NoColor = true
	defer func() { color.NoColor = false }()

	r := NewReporter("app.lum", "page P:\n")
	out := r.Format(Errorf(ErrUnterminatedBlock, ast.Position{Line: 99, Column: 1}, "unexpected end of file"))

	assert.Contains(t, out, "app.lum:99:1", "the header still renders without a source window")
}

func TestIsWarning(t *testing.T) {
	assert.True(t, IsWarning(WarnUnusedState))
	assert.False(t, IsWarning(ErrDuplicateDeclaration))
	assert.False(t, IsWarning(""))
}

func TestDescribeKnownCodes(t *testing.T) {
	for _, code := range []string{
		ErrUnterminatedString, ErrUnknownCharacter, ErrUnexpectedToken,
		ErrUnknownKeyword, ErrBadIndentation, ErrUnterminatedBlock,
		ErrDuplicateDeclaration, ErrCircularDerived, WarnUnusedState,
	} {
		assert.NotEqual(t, "Unknown diagnostic code", Describe(code))
	}
	assert.Equal(t, "Unknown diagnostic code", Describe("X999"))
}

func TestFindingString(t *testing.T) {
	f := Errorf(ErrDuplicateDeclaration, ast.Position{Line: 3, Column: 9}, "duplicate declaration 'count'")
	assert.Equal(t, "error[V200]: duplicate declaration 'count' (3:9)", f.String())
}
