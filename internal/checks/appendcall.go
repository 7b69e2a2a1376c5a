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

// appendCall flags calls of the predeclared append with no element arguments.
// `append(x)` evaluates to x; the call is a no-op. A local function named
// append or a spread call `append(x, y...)` is not a match.
func (r *Runner) appendCall(call *ast.CallExpr) {
	if len(call.Args) != 1 || call.Ellipsis.IsValid() {
		return
	}

	id, ok := ast.Unparen(call.Fun).(*ast.Ident)
	if !ok {
		return
	}

	builtin, ok := r.Pass.TypesInfo.Uses[id].(*types.Builtin)
	if !ok || builtin.Name() != "append" {
		return
	}

	f := report.Finding{
		Pos:      call.Pos(),
		End:      call.End(),
		Category: "appendcall",
		Message:  "append with no elements is a no-op; use the slice directly",
	}

	if text, ok := astutil.Render(r.Pass.Fset, call.Args[0]); ok {
		f.Edits = []analysis.TextEdit{report.Replace(call, text)}
	}

	report.Report(r.Pass, r.File, f)
}
