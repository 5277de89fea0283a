// SPDX-License-Identifier: Apache-2.0
package main

import (
	"fmt"
	"os"
	"time"

	"github.com/fatih/color"

	"lumen/internal/ast"
	"lumen/internal/compiler"
	"lumen/internal/diag"
	"lumen/internal/lexer"
)

func main() {
	var path string
	var showTokens, showAST bool
	for _, arg := range os.Args[1:] {
		switch arg {
		case "--tokens":
			showTokens = true
		case "--ast":
			showAST = true
		default:
			path = arg
		}
	}
	if path == "" {
		fmt.Println("Usage: lumen [--tokens] [--ast] <file.lum>")
		os.Exit(1)
	}

	startTime := time.Now()
	source, err := os.ReadFile(path)
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to read file: %v\n", err)
		os.Exit(1)
	}

	if showTokens {
		dumpTokens(string(source))
	}

	res := compiler.Compile(path, string(source))

	reporter := diag.NewReporter(path, string(source))
	for _, f := range res.Findings() {
		fmt.Print(reporter.Format(f))
	}

	duration := formatDuration(time.Since(startTime))
	if !res.OK() {
		color.Red("Compilation failed after %s", duration)
		os.Exit(1)
	}

	if showAST {
		fmt.Print(ast.Dump(res.Nodes))
	}
	color.Green("Successfully processed %s in %s", path, duration)
}

func dumpTokens(source string) {
	tokens, err := lexer.Tokenize(source)
	if err != nil {
		fmt.Fprintf(os.Stderr, "%v\n", err)
		return
	}
	for _, tok := range tokens {
		fmt.Printf("%4d:%-3d %-12s %q\n", tok.Position.Line, tok.Position.Column, tok.Type, tok.Value)
	}
}

func formatDuration(d time.Duration) string {
	switch {
	case d >= time.Minute:
		return fmt.Sprintf("%.2fmin", d.Minutes())
	case d >= time.Second:
		return fmt.Sprintf("%.2fs", d.Seconds())
	case d >= time.Millisecond:
		return fmt.Sprintf("%.1fms", float64(d.Nanoseconds())/1000000.0)
	case d >= time.Microsecond:
		return fmt.Sprintf("%.1fμs", float64(d.Nanoseconds())/1000.0)
	default:
		return fmt.Sprintf("%dns", d.Nanoseconds())
	}
}
