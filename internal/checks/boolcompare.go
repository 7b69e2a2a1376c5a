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
	"fmt"
	"go/ast"
	"go/token"
	"go/types"

	"golang.org/x/tools/go/analysis"

	"github.com/preferlint/prefer/internal/astutil"
	"github.com/preferlint/prefer/internal/report"
)

// boolCompare flags comparisons of a boolean expression with the predeclared
// literals true and false. The comparison is redundant: `x == true` is `x`,
// and `x == false` is `!x`.
func (r *Runner) boolCompare(expr *ast.BinaryExpr) {
	if expr.Op != token.EQL && expr.Op != token.NEQ {
		return
	}

	info := r.Pass.TypesInfo

	lit, operand := expr.X, expr.Y
	value, ok := universeBool(info, lit)
	if !ok {
		lit, operand = expr.Y, expr.X
		if value, ok = universeBool(info, lit); !ok {
			return
		}
	}

	// Comparing two literals is a constant expression, not a redundant comparison.
	if _, both := universeBool(info, operand); both {
		return
	}

	t := info.TypeOf(operand)
	if t == nil {
		return
	}

	if basic, ok := t.Underlying().(*types.Basic); !ok || basic.Info()&types.IsBoolean == 0 {
		return
	}

	// The comparison has untyped bool type regardless of the operand's type.
	// Rewriting is only type-preserving when the operand is a plain bool, so
	// named boolean types get a diagnostic without a fix.
	_, plain := t.(*types.Basic)

	// `x == true` and `x != false` keep the operand, the other two negate it.
	keep := value == (expr.Op == token.EQL)

	f := report.Finding{
		Pos:      expr.Pos(),
		End:      expr.End(),
		Category: "boolcompare",
		Message:  fmt.Sprintf("Comparison with '%t' can be simplified", value),
	}

	if text, ok := r.rewriteOperand(operand, keep); ok && plain {
		f.Edits = []analysis.TextEdit{report.Replace(expr, text)}
	}

	report.Report(r.Pass, r.File, f)
}

// rewriteOperand renders the replacement for the whole comparison: the operand
// as written, negated and parenthesized as precedence requires.
func (r *Runner) rewriteOperand(operand ast.Expr, keep bool) (string, bool) {
	text, ok := astutil.Render(r.Pass.Fset, operand)
	if !ok {
		return "", false
	}

	if keep {
		return text, true
	}

	if _, binary := operand.(*ast.BinaryExpr); binary {
		text = "(" + text + ")"
	}

	return "!" + text, true
}

// universeBool reports whether expr is the predeclared constant true or false,
// and which one. A shadowed true or false is not a match.
func universeBool(info *types.Info, expr ast.Expr) (value, ok bool) {
	id, ok := ast.Unparen(expr).(*ast.Ident)
	if !ok {
		return false, false
	}

	switch id.Name {
	case "true", "false":
	default:
		return false, false
	}

	if info.Uses[id] != types.Universe.Lookup(id.Name) {
		return false, false
	}

	return id.Name == "true", true
}
