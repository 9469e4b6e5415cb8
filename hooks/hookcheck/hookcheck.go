// Package hookcheck defines an analyzer that reports hook calls whose
// execution depends on control flow.
//
// Hooks are matched by position, so every render of a scope must make the
// same hook calls in the same order. A call to hooks.Use*, hooks.Next or
// hooks.NextRef nested in an if, switch, select or loop of the enclosing
// function can be skipped or repeated between renders. hooks.Push is not
// reported: registering only when Next reports ErrExhausted is its normal use.
package hookcheck

import (
	"go/ast"
	"go/token"
	"go/types"
	"strings"

	"golang.org/x/tools/go/analysis"
	"golang.org/x/tools/go/analysis/passes/inspect"
	"golang.org/x/tools/go/ast/inspector"
)

// HooksPath is the import path of the hooks package.
const HooksPath = "github.com/plus3/hooklist/hooks"

// Analyzer reports hook calls that do not run on every render.
var Analyzer = &analysis.Analyzer{
	Name:     "hookcheck",
	Doc:      "report hook calls made conditionally or in loops",
	URL:      "https://pkg.go.dev/github.com/plus3/hooklist/hooks/hookcheck",
	Requires: []*analysis.Analyzer{inspect.Analyzer},
	Run:      run,
}

func run(pass *analysis.Pass) (any, error) {
	insp := pass.ResultOf[inspect.Analyzer].(*inspector.Inspector)

	filter := []ast.Node{(*ast.CallExpr)(nil)}
	insp.WithStack(filter, func(n ast.Node, push bool, stack []ast.Node) bool {
		if !push {
			return true
		}
		call := n.(*ast.CallExpr)
		name, ok := hookName(pass.TypesInfo, call)
		if !ok {
			return true
		}
		if where := enclosingControl(stack); where != "" {
			pass.Reportf(call.Pos(), "hooks.%s called %s; hooks must run unconditionally and in the same order on every render", name, where)
		}
		return true
	})
	return nil, nil
}

// hookName returns the name of the hooks package function called by call.
func hookName(info *types.Info, call *ast.CallExpr) (string, bool) {
	fun := ast.Unparen(call.Fun)
	switch f := fun.(type) {
	case *ast.IndexExpr:
		fun = f.X
	case *ast.IndexListExpr:
		fun = f.X
	}

	var ident *ast.Ident
	switch f := fun.(type) {
	case *ast.Ident:
		ident = f
	case *ast.SelectorExpr:
		ident = f.Sel
	default:
		return "", false
	}

	fn, ok := info.Uses[ident].(*types.Func)
	if !ok || fn.Pkg() == nil || fn.Pkg().Path() != HooksPath {
		return "", false
	}
	if sig, ok := fn.Type().(*types.Signature); ok && sig.Recv() != nil {
		return "", false
	}

	name := fn.Name()
	switch {
	case strings.HasPrefix(name, "Use"), name == "Next", name == "NextRef":
		return name, true
	}
	return "", false
}

// enclosingControl walks from the call outwards to the nearest function and
// describes the first construct that makes the call conditional.
func enclosingControl(stack []ast.Node) string {
	for i := len(stack) - 2; i >= 0; i-- {
		child := stack[i+1]
		switch n := stack[i].(type) {
		case *ast.FuncDecl, *ast.FuncLit:
			return ""
		case *ast.IfStmt:
			if child == n.Body || child == n.Else {
				return "conditionally"
			}
		case *ast.CaseClause, *ast.CommClause:
			return "inside a switch or select case"
		case *ast.ForStmt:
			if child == n.Body || child == n.Cond || child == n.Post {
				return "inside a loop"
			}
		case *ast.RangeStmt:
			if child == n.Body {
				return "inside a loop"
			}
		case *ast.BinaryExpr:
			if child == n.Y && (n.Op == token.LAND || n.Op == token.LOR) {
				return "conditionally"
			}
		}
	}
	return ""
}
