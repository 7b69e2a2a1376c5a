// Copyright 2026 The prefer Authors. All Rights Reserved.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.
//
// SPDX-License-Identifier: Apache-2.0

package checks

import (
	"go/ast"
	"go/types"

	"golang.org/x/tools/go/analysis"

	"github.com/preferlint/prefer/internal/astutil"
	"github.com/preferlint/prefer/internal/report"
)

// timeArith flags Sub calls on time.Time that spell out what time.Since and
// time.Until already express: time.Now().Sub(x) is time.Since(x), and
// x.Sub(time.Now()) is time.Until(x).
func (r *Runner) timeArith(call *ast.CallExpr) {
	if len(call.Args) != 1 || call.Ellipsis.IsValid() {
		return
	}

	sel, ok := ast.Unparen(call.Fun).(*ast.SelectorExpr)
	if !ok {
		return
	}

	if !timeMethod(r.callee(call), "Sub") {
		return
	}

	fset := r.Pass.Fset

	f := report.Finding{
		Pos:      call.Pos(),
		End:      call.End(),
		Category: "timearith",
	}

	switch {
	case r.isTimeNow(sel.X):
		f.Message = "time.Now().Sub can be replaced with time.Since"

		prefix, known := r.timeQualifier(sel.X)
		if text, ok := astutil.Render(fset, call.Args[0]); ok && known {
			f.Edits = []analysis.TextEdit{report.Replace(call, prefix+"Since("+text+")")}
		}

	case r.isTimeNow(call.Args[0]):
		f.Message = "Sub(time.Now()) can be replaced with time.Until"

		prefix, known := r.timeQualifier(call.Args[0])
		if text, ok := astutil.Render(fset, sel.X); ok && known {
			f.Edits = []analysis.TextEdit{report.Replace(call, prefix+"Until("+text+")")}
		}

	default:
		return
	}

	report.Report(r.Pass, r.File, f)
}

// timeMethod reports whether obj is the method with the given name on time.Time.
func timeMethod(obj types.Object, name string) bool {
	fn, ok := obj.(*types.Func)
	if !ok || fn.Name() != name || fn.Pkg() == nil || fn.Pkg().Path() != "time" {
		return false
	}

	recv := fn.Signature().Recv()
	if recv == nil {
		return false
	}

	t := recv.Type()
	if ptr, ok := t.(*types.Pointer); ok {
		t = ptr.Elem()
	}

	named, ok := t.(*types.Named)

	return ok && named.Obj().Name() == "Time"
}

// isTimeNow reports whether expr is a direct call to time.Now.
func (r *Runner) isTimeNow(expr ast.Expr) bool {
	call, ok := ast.Unparen(expr).(*ast.CallExpr)

	return ok && len(call.Args) == 0 && pkgFunc(r.callee(call), "time", "Now")
}

// timeQualifier returns the qualifier of the time package as written at the
// given time.Now call: "time." in the common case, the alias for renamed
// imports, and empty for dot imports.
func (r *Runner) timeQualifier(expr ast.Expr) (string, bool) {
	call, ok := ast.Unparen(expr).(*ast.CallExpr)
	if !ok {
		return "", false
	}

	switch fun := ast.Unparen(call.Fun).(type) {
	case *ast.SelectorExpr:
		if id, ok := fun.X.(*ast.Ident); ok {
			return id.Name + ".", true
		}

		return "", false

	case *ast.Ident:
		return "", true // dot import

	default:
		return "", false
	}
}
