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

package astutil

import (
	"bytes"
	"go/ast"
	"go/printer"
	"go/token"
)

var rawcfg = &printer.Config{Mode: printer.RawFormat}

// Render formats a syntax node as source text without reformatting it.
// Rewrites splice the result into surrounding code, so the text must
// reproduce what the author wrote.
func Render(fset *token.FileSet, node ast.Node) (string, bool) {
	var buf bytes.Buffer
	if err := rawcfg.Fprint(&buf, fset, node); err != nil {
		return "", false
	}

	return buf.String(), true
}
