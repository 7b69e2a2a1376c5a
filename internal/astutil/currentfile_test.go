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

package astutil_test

import (
	"go/ast"
	"go/parser"
	"go/token"
	"testing"

	"github.com/preferlint/prefer/internal/astutil"
)

func parse(tb testing.TB, src string) (*token.FileSet, *ast.File) {
	tb.Helper()

	fset := token.NewFileSet()

	f, err := parser.ParseFile(fset, "test.go", src, parser.ParseComments|parser.SkipObjectResolution)
	if err != nil {
		tb.Fatalf("Failed to parse source: %v", err)
	}

	return fset, f
}

func TestCommentHasNoLint(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		comment string
		want    bool
	}{
		{"prefer", "//nolint:prefer", true},
		{"all", "//nolint:all", true},
		{"list", "//nolint:gocritic,prefer", true},
		{"spaced", "// nolint:prefer", true},
		{"other linter", "//nolint:gocritic", false},
		{"bare nolint", "//nolint", false},
		{"unrelated", "// a comment", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			comment := &ast.Comment{Text: tt.comment}
			if got := astutil.CommentHasNoLint(comment); got != tt.want {
				t.Errorf("CommentHasNoLint(%q) = %v, want %v", tt.comment, got, tt.want)
			}
		})
	}
}

func TestNoLintComment(t *testing.T) {
	t.Parallel()

	const src = `package test

func _() {
	a := 1 //nolint:prefer
	b := 2
	c := 1 /* one */ + 2 //nolint:prefer
	_, _, _ = a, b, c
}
`

	fset, f := parse(t, src)
	current := astutil.NewCurrentFile(fset, f)

	if !current.Valid() {
		t.Fatal("CurrentFile is not valid")
	}

	body := f.Decls[0].(*ast.FuncDecl).Body

	if !current.NoLintComment(body.List[0].Pos()) {
		t.Error("Suppressed line reported as not suppressed")
	}

	if current.NoLintComment(body.List[1].Pos()) {
		t.Error("Unsuppressed line reported as suppressed")
	}

	if !current.NoLintComment(body.List[2].Pos()) {
		t.Error("Inline comment masked the trailing nolint directive")
	}
}

func TestImportName(t *testing.T) {
	t.Parallel()

	const src = `package test

import (
	"errors"
	stdfmt "fmt"
	_ "sort"
	. "strings"
)
`

	fset, f := parse(t, src)
	current := astutil.NewCurrentFile(fset, f)

	tests := []struct {
		path string
		want string
		ok   bool
	}{
		{"errors", "errors", true},
		{"fmt", "stdfmt", true},
		{"sort", "", false},
		{"strings", "", false},
		{"time", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			t.Parallel()

			got, ok := current.ImportName(tt.path)
			if got != tt.want || ok != tt.ok {
				t.Errorf("ImportName(%q) = %q, %v, want %q, %v", tt.path, got, ok, tt.want, tt.ok)
			}
		})
	}
}

func TestGenerated(t *testing.T) {
	t.Parallel()

	const src = `// Code generated by stringer; DO NOT EDIT.

package test
`

	fset, f := parse(t, src)

	if current := astutil.NewCurrentFile(fset, f); !current.Generated() {
		t.Error("Generated file not detected")
	}
}
