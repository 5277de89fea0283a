// Package validate runs the post-parse semantic passes. Every pass is pure:
// findings come back as data on the Result, never as errors or panics, and
// the tree is never mutated.
package validate

import (
	"lumen/internal/ast"
	"lumen/internal/diag"
)

// Result collects everything the passes found, split by severity.
type Result struct {
	Errors   []diag.Finding
	Warnings []diag.Finding
}

// OK reports whether the tree passed with no errors. Warnings do not count.
func (r Result) OK() bool {
	return len(r.Errors) == 0
}

// Check runs all passes over the top-level declarations. Containers are
// checked independently: a name in one page never collides with the same
// name in another.
func Check(nodes []ast.Node) Result {
	v := &validator{}
	for _, node := range nodes {
		switch n := node.(type) {
		case *ast.Page:
			v.checkContainer(n.Body)
		case *ast.Component:
			v.checkContainer(n.Body)
		case *ast.App:
			v.checkContainer(n.Body)
		case *ast.StoreDecl:
			v.checkContainer(n.Body)
		}
	}
	return v.result
}

type validator struct {
	result Result
}

func (v *validator) errorf(code string, pos ast.Position, format string, args ...any) {
	v.result.Errors = append(v.result.Errors, diag.Errorf(code, pos, format, args...))
}

func (v *validator) warnf(code string, pos ast.Position, format string, args ...any) {
	v.result.Warnings = append(v.result.Warnings, diag.Warnf(code, pos, format, args...))
}

func (v *validator) checkContainer(body []ast.BodyItem) {
	v.checkDuplicates(body)
	v.checkDerivedCycles(body)
	v.checkUnusedState(body)

	// Nested stores get the same treatment as their enclosing container.
	for _, item := range body {
		if store, ok := item.(*ast.StoreDecl); ok {
			v.checkContainer(store.Body)
		}
	}
}

// namedDecl is one named declaration in a container's immediate body.
type namedDecl struct {
	name string
	kind string
	pos  ast.Position
}

func declsOf(body []ast.BodyItem) []namedDecl {
	var decls []namedDecl
	for _, item := range body {
		switch d := item.(type) {
		case *ast.StateDecl:
			decls = append(decls, namedDecl{d.Name.Value, "state", d.Name.Pos})
		case *ast.DerivedDecl:
			decls = append(decls, namedDecl{d.Name.Value, "derived", d.Name.Pos})
		case *ast.PropDecl:
			decls = append(decls, namedDecl{d.Name.Value, "prop", d.Name.Pos})
		case *ast.FnDecl:
			decls = append(decls, namedDecl{d.Name.Value, "fn", d.Name.Pos})
		}
	}
	return decls
}

// checkDuplicates reports every redeclaration of a name in the container's
// immediate body. Collisions across kinds count: a fn shadowing a state is
// as much an error as two states.
func (v *validator) checkDuplicates(body []ast.BodyItem) {
	firstSeen := map[string]namedDecl{}
	for _, decl := range declsOf(body) {
		if prior, ok := firstSeen[decl.name]; ok {
			v.errorf(diag.ErrDuplicateDeclaration, decl.pos,
				"duplicate declaration '%s': previously declared as %s on line %d",
				decl.name, prior.kind, prior.pos.Line)
			continue
		}
		firstSeen[decl.name] = decl
	}
}

// checkDerivedCycles finds circular dependencies among derived values. Only
// edges to other derived names in the same container count; a derived that
// reads state or calls a fn is fine. Each cycle is reported once, at the
// declaration whose reference closes it.
func (v *validator) checkDerivedCycles(body []ast.BodyItem) {
	derived := map[string]*ast.DerivedDecl{}
	var order []string
	for _, item := range body {
		if d, ok := item.(*ast.DerivedDecl); ok {
			if _, dup := derived[d.Name.Value]; !dup {
				derived[d.Name.Value] = d
				order = append(order, d.Name.Value)
			}
		}
	}

	deps := map[string][]string{}
	for name, decl := range derived {
		seen := map[string]bool{}
		ast.Inspect(decl.Value, func(n ast.Node) bool {
			if ref, ok := n.(*ast.IdentExpr); ok {
				if _, isDerived := derived[ref.Name]; isDerived && !seen[ref.Name] {
					seen[ref.Name] = true
					deps[name] = append(deps[name], ref.Name)
				}
			}
			return true
		})
	}

	const (
		white = 0
		gray  = 1
		black = 2
	)
	color := map[string]int{}
	var visit func(name string)
	visit = func(name string) {
		color[name] = gray
		for _, dep := range deps[name] {
			switch color[dep] {
			case white:
				visit(dep)
			case gray:
				if dep == name {
					v.errorf(diag.ErrCircularDerived, derived[name].Name.Pos,
						"circular dependency: derived '%s' depends on itself", name)
				} else {
					v.errorf(diag.ErrCircularDerived, derived[name].Name.Pos,
						"circular dependency: derived '%s' depends on '%s', which depends back on '%s'",
						name, dep, name)
				}
			}
		}
		color[name] = black
	}
	for _, name := range order {
		if color[name] == white {
			visit(name)
		}
	}
}

// checkUnusedState warns about state nobody reads or writes. References are
// counted anywhere in the container's body, watch targets included. Derived
// values are exempt: an unread derived is harmless.
func (v *validator) checkUnusedState(body []ast.BodyItem) {
	var states []*ast.StateDecl
	for _, item := range body {
		if s, ok := item.(*ast.StateDecl); ok {
			states = append(states, s)
		}
	}
	if len(states) == 0 {
		return
	}

	used := map[string]bool{}
	for _, item := range body {
		ast.Inspect(item, func(n ast.Node) bool {
			switch ref := n.(type) {
			case *ast.IdentExpr:
				used[ref.Name] = true
			case *ast.Ident:
				// watch targets and route/nav destinations
				used[ref.Value] = true
			}
			return true
		})
	}

	for _, s := range states {
		if !used[s.Name.Value] {
			v.warnf(diag.WarnUnusedState, s.Name.Pos,
				"state '%s' is declared but never used", s.Name.Value)
		}
	}
}
