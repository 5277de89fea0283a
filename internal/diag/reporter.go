package diag

import (
	"fmt"
	"strings"

	"github.com/fatih/color"
)

// Reporter renders findings as source windows with an underline marker,
// in the style the CLI prints to the terminal.
type Reporter struct {
	filename string
	lines    []string
}

func NewReporter(filename, source string) *Reporter {
	return &Reporter{
		filename: filename,
		lines:    strings.Split(source, "\n"),
	}
}

// Format renders one finding with its source context.
func (r *Reporter) Format(f Finding) string {
	var out strings.Builder

	levelColor := r.levelColor(f.Severity)
	dim := color.New(color.Faint).SprintFunc()
	bold := color.New(color.Bold).SprintFunc()

	if f.Code != "" {
		out.WriteString(fmt.Sprintf("%s[%s]: %s\n", levelColor(string(f.Severity)), f.Code, f.Message))
	} else {
		out.WriteString(fmt.Sprintf("%s: %s\n", levelColor(string(f.Severity)), f.Message))
	}

	width := lineNumberWidth(f.Position.Line)
	indent := strings.Repeat(" ", width)
	out.WriteString(fmt.Sprintf("%s %s %s:%d:%d\n", indent, dim("-->"), r.filename, f.Position.Line, f.Position.Column))
	out.WriteString(fmt.Sprintf("%s %s\n", indent, dim("│")))

	if f.Position.Line > 0 && f.Position.Line <= len(r.lines) {
		content := r.lines[f.Position.Line-1]
		out.WriteString(fmt.Sprintf("%s %s %s\n", bold(fmt.Sprintf("%*d", width, f.Position.Line)), dim("│"), content))

		marker := strings.Repeat(" ", maxInt(0, f.Position.Column-1)) + levelColor("^")
		out.WriteString(fmt.Sprintf("%s %s %s\n", indent, dim("│"), marker))
	}

	out.WriteString("\n")
	return out.String()
}

func (r *Reporter) levelColor(sev Severity) func(...interface{}) string {
	switch sev {
	case Warning:
		return color.New(color.FgYellow, color.Bold).SprintFunc()
	default:
		return color.New(color.FgRed, color.Bold).SprintFunc()
	}
}

func lineNumberWidth(line int) int {
	width := len(fmt.Sprintf("%d", line))
	if width < 3 {
		width = 3
	}
	return width
}

func maxInt(a, b int) int {
	if a > b {
		return a
	}
	return b
}
