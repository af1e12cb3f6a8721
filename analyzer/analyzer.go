package analyzer

import (
	"go/ast"

	"golang.org/x/tools/go/analysis"
	"golang.org/x/tools/go/analysis/passes/inspect"
	"golang.org/x/tools/go/ast/inspector"
)

var Analyzer = &analysis.Analyzer{
	Name:     "scopedstats",
	Doc:      "Checks that recording scopes opened with Record are closed again",
	Run:      run,
	Requires: []*analysis.Analyzer{inspect.Analyzer},
}

func run(pass *analysis.Pass) (interface{}, error) {
	inspector := pass.ResultOf[inspect.Analyzer].(*inspector.Inspector)

	nodeFilter := []ast.Node{
		(*ast.ExprStmt)(nil),
		(*ast.AssignStmt)(nil),
	}

	inspector.Preorder(nodeFilter, func(node ast.Node) {
		switch stmt := node.(type) {
		// `recorder.Record(ctx)` as a bare statement drops both return
		// values, the scope can never be closed
		case *ast.ExprStmt:
			if isRecordCall(stmt.X) {
				pass.Reportf(stmt.Pos(), "result of Record is discarded. the scope stays open, defer the returned finish function")
			}

		case *ast.AssignStmt:
			if len(stmt.Rhs) != 1 || len(stmt.Lhs) != 2 {
				return
			}

			if !isRecordCall(stmt.Rhs[0]) {
				return
			}

			if ident, ok := stmt.Lhs[1].(*ast.Ident); ok && ident.Name == "_" {
				pass.Reportf(stmt.Pos(), "finish function returned by Record is discarded. the scope stays open, defer it instead")
			}
		}
	})

	return nil, nil
}

// isRecordCall matches any `<expr>.Record(...)` call. Like the rest of this
// analyzer it works syntactically, so a Record method on an unrelated type
// matches as well.
func isRecordCall(expr ast.Expr) bool {
	call, ok := expr.(*ast.CallExpr)
	if !ok {
		return false
	}

	sel, ok := call.Fun.(*ast.SelectorExpr)
	if !ok {
		return false
	}

	return sel.Sel.Name == "Record"
}
