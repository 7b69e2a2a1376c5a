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
	"go/constant"
	"strings"

	"golang.org/x/tools/go/analysis"

	"github.com/preferlint/prefer/internal/astutil"
	"github.com/preferlint/prefer/internal/report"
)

// sprintf flags fmt.Sprintf and fmt.Errorf calls whose only argument is a
// constant format string without formatting verbs. The formatting machinery is
// a meaningless wrapper there: Sprintf returns its argument, and Errorf is
// errors.New. The Errorf rewrite is offered only when the file already imports
// the errors package, since fixes never edit the import block.
func (r *Runner) sprintf(call *ast.CallExpr) {
	if len(call.Args) != 1 || call.Ellipsis.IsValid() {
		return
	}

	obj := r.callee(call)

	var errorf bool

	switch {
	case pkgFunc(obj, "fmt", "Sprintf"):
		errorf = false
	case pkgFunc(obj, "fmt", "Errorf"):
		errorf = true
	default:
		return
	}

	format := r.Pass.TypesInfo.Types[call.Args[0]].Value
	if format == nil || format.Kind() != constant.String {
		return
	}

	// A '%' anywhere disqualifies the call, including the '%%' escape: the
	// output would differ from the format string.
	if strings.ContainsRune(constant.StringVal(format), '%') {
		return
	}

	text, rendered := astutil.Render(r.Pass.Fset, call.Args[0])

	f := report.Finding{
		Pos:      call.Pos(),
		End:      call.End(),
		Category: "sprintf",
	}

	if errorf {
		f.Message = "fmt.Errorf without formatting verbs; use errors.New"

		if name, imported := r.File.ImportName("errors"); imported && rendered {
			f.Edits = []analysis.TextEdit{report.Replace(call, name+".New("+text+")")}
		}
	} else {
		f.Message = "fmt.Sprintf without formatting verbs is a no-op; use the string directly"

		if rendered {
			f.Edits = []analysis.TextEdit{report.Replace(call, text)}
		}
	}

	report.Report(r.Pass, r.File, f)
}
