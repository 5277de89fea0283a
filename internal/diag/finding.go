package diag

import (
	"fmt"

	"lumen/internal/ast"
)

// Severity ranks a finding.
type Severity string

const (
	Error   Severity = "error"
	Warning Severity = "warning"
)

// Finding is one diagnostic produced by the front end. Validator findings
// are returned in batches; lexer and parser failures are converted into a
// single Finding by the compiler facade.
type Finding struct {
	Severity Severity
	Code     string
	Message  string
	Position ast.Position
}

func (f Finding) String() string {
	return fmt.Sprintf("%s[%s]: %s (%d:%d)", f.Severity, f.Code, f.Message, f.Position.Line, f.Position.Column)
}

// Errorf builds an error finding.
func Errorf(code string, pos ast.Position, format string, args ...any) Finding {
	return Finding{Severity: Error, Code: code, Message: fmt.Sprintf(format, args...), Position: pos}
}

// Warnf builds a warning finding.
func Warnf(code string, pos ast.Position, format string, args ...any) Finding {
	return Finding{Severity: Warning, Code: code, Message: fmt.Sprintf(format, args...), Position: pos}
}
