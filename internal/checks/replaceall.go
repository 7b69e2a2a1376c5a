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
	"go/constant"

	"golang.org/x/tools/go/analysis"

	"github.com/preferlint/prefer/internal/report"
)

// replaceAll flags strings.Replace and bytes.Replace calls with a constant
// count of -1, which is what ReplaceAll spells out. The rewrite renames the
// callee and drops the count argument.
func (r *Runner) replaceAll(call *ast.CallExpr) {
	if len(call.Args) != 4 || call.Ellipsis.IsValid() {
		return
	}

	obj := r.callee(call)

	var pkg string

	switch {
	case pkgFunc(obj, "strings", "Replace"):
		pkg = "strings"
	case pkgFunc(obj, "bytes", "Replace"):
		pkg = "bytes"
	default:
		return
	}

	count := r.Pass.TypesInfo.Types[call.Args[3]].Value
	if count == nil {
		return
	}

	if n, ok := constant.Int64Val(constant.ToInt(count)); !ok || n != -1 {
		return
	}

	id := calleeIdent(call)
	if id == nil {
		return
	}

	report.Report(r.Pass, r.File, report.Finding{
		Pos:      call.Pos(),
		End:      call.End(),
		Category: "replaceall",
		Message:  fmt.Sprintf("%s.Replace with count -1 can be replaced with %s.ReplaceAll", pkg, pkg),
		Edits: []analysis.TextEdit{
			report.Replace(id, "ReplaceAll"),
			report.Delete(call.Args[2].End(), call.Args[3].End()),
		},
	})
}
