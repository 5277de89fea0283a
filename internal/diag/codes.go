package diag

// Diagnostic codes used across the front end.
//
// Ranges:
//   L0xx  lexical errors
//   P1xx  parser errors
//   V2xx  validator errors
//   W8xx  validator warnings
const (
	// L001: unterminated string literal
	ErrUnterminatedString = "L001"

	// L002: character outside every lexical production
	ErrUnknownCharacter = "L002"

	// P100: unexpected token for the current production
	ErrUnexpectedToken = "P100"

	// P101: unknown keyword in dispatch position
	ErrUnknownKeyword = "P101"

	// P102: malformed indentation (unexpected INDENT/DEDENT)
	ErrBadIndentation = "P102"

	// P103: end of file inside an open block
	ErrUnterminatedBlock = "P103"

	// V200: name declared more than once in a container body
	ErrDuplicateDeclaration = "V200"

	// V201: circular dependency among derived values
	ErrCircularDerived = "V201"

	// W800: state declared but never read
	WarnUnusedState = "W800"
)

// Describe returns a human-readable description for a code.
func Describe(code string) string {
	switch code {
	case ErrUnterminatedString:
		return "String literal is missing its closing quote"
	case ErrUnknownCharacter:
		return "Character does not match any lexical production"
	case ErrUnexpectedToken:
		return "Token is not valid at this position"
	case ErrUnknownKeyword:
		return "Word is not a known declaration keyword"
	case ErrBadIndentation:
		return "Block indentation does not match the enclosing structure"
	case ErrUnterminatedBlock:
		return "File ended inside an open block"
	case ErrDuplicateDeclaration:
		return "Name is declared more than once in the same container"
	case ErrCircularDerived:
		return "Derived values depend on each other in a cycle"
	case WarnUnusedState:
		return "State is declared but never read"
	default:
		return "Unknown diagnostic code"
	}
}

// IsWarning reports whether the code denotes a non-blocking finding.
func IsWarning(code string) bool {
	return len(code) > 0 && code[0] == 'W'
}
