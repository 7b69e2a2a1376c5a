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

// Package checks implements the individual pattern checks of the prefer analyzer.
//
// Each check is an independent pattern match over a single syntax node kind,
// guarded by type information from the pass, reporting at most one diagnostic
// per matched node. A check that offers a rewrite attaches plain text edits
// confined to the flagged expression; a check never edits the import block.
package checks

import (
	"go/ast"
	"go/types"

	"golang.org/x/tools/go/analysis"
	"golang.org/x/tools/go/types/typeutil"

	"github.com/preferlint/prefer/internal/astutil"
	"github.com/preferlint/prefer/internal/config"
)

// Runner dispatches enabled checks over the nodes of a single file.
type Runner struct {
	Pass    *analysis.Pass
	File    astutil.CurrentFile
	Enabled config.Checks
}

// Types returns the node kinds the checks need to visit.
func Types() []ast.Node {
	return []ast.Node{
		(*ast.BinaryExpr)(nil),
		(*ast.CallExpr)(nil),
		(*ast.GenDecl)(nil),
	}
}

// Visit runs all enabled checks that apply to the given node.
func (r *Runner) Visit(node ast.Node) {
	switch node := node.(type) {
	case *ast.BinaryExpr:
		if r.Enabled.Enabled(config.BoolCompareCheck) {
			r.boolCompare(node)
		}

	case *ast.CallExpr:
		if r.Enabled.Enabled(config.SprintfCheck) {
			r.sprintf(node)
		}

		if r.Enabled.Enabled(config.TimeArithCheck) {
			r.timeArith(node)
		}

		if r.Enabled.Enabled(config.AppendCheck) {
			r.appendCall(node)
		}

		if r.Enabled.Enabled(config.ReplaceAllCheck) {
			r.replaceAll(node)
		}

	case *ast.GenDecl:
		if r.Enabled.Enabled(config.BitFlagCheck) {
			r.bitFlag(node)
		}
	}
}

// callee resolves the named target of a call expression, if any.
func (r *Runner) callee(call *ast.CallExpr) types.Object {
	return typeutil.Callee(r.Pass.TypesInfo, call)
}

// calleeIdent returns the identifier naming the called function. It handles
// both selector calls and plain identifiers after a dot import.
func calleeIdent(call *ast.CallExpr) *ast.Ident {
	switch fun := ast.Unparen(call.Fun).(type) {
	case *ast.SelectorExpr:
		return fun.Sel
	case *ast.Ident:
		return fun
	}

	return nil
}

// pkgFunc reports whether obj is the package-level function name of the package with the given path.
func pkgFunc(obj types.Object, path, name string) bool {
	if obj == nil || obj.Pkg() == nil {
		return false
	}

	return obj.Pkg().Path() == path && obj.Name() == name
}
