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

// Package report converts check findings into host diagnostics.
package report

import (
	"go/token"

	"golang.org/x/tools/go/analysis"

	"github.com/preferlint/prefer/internal/astutil"
)

// Finding describes a single diagnostic before it is reported.
// Edits, when present, become the suggested fix for the flagged range.
type Finding struct {
	Pos, End token.Pos
	Category string
	Message  string
	Related  []analysis.RelatedInformation
	Edits    []analysis.TextEdit
}

// Report emits a finding, honoring nolint suppression on the flagged line.
func Report(p *analysis.Pass, file astutil.CurrentFile, f Finding) {
	if file.NoLintComment(f.Pos) {
		return
	}

	diagnostic := analysis.Diagnostic{
		Pos:      f.Pos,
		End:      f.End,
		Category: f.Category,
		Message:  f.Message,
		Related:  f.Related,
	}

	if len(f.Edits) > 0 {
		diagnostic.SuggestedFixes = []analysis.SuggestedFix{{Message: f.Message, TextEdits: f.Edits}}
	}

	p.Report(diagnostic)
}
