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

package analyzer_test

import (
	"testing"

	"golang.org/x/tools/go/analysis/analysistest"

	. "github.com/preferlint/prefer/analyzer"
)

func TestAnalyzer(t *testing.T) {
	t.Parallel()

	testdata := analysistest.TestData()

	tests := []struct {
		name    string
		dir     string
		options Option
		fix     bool
	}{
		{
			name: "BoolCompare",
			dir:  "./boolcompare",
			fix:  true,
		},
		{
			name: "BitFlag",
			dir:  "./bitflag",
		},
		{
			name: "Sprintf",
			dir:  "./sprintf",
			fix:  true,
		},
		{
			name: "TimeArith",
			dir:  "./timearith",
			fix:  true,
		},
		{
			name: "AppendCall",
			dir:  "./appendcall",
			fix:  true,
		},
		{
			name: "ReplaceAll",
			dir:  "./replaceall",
			fix:  true,
		},
		{
			name: "NoLint",
			dir:  "./nolint",
		},
		{
			name: "Generated",
			dir:  "./generated",
		},
		{
			name: "Disabled",
			dir:  "./disabled",
			options: Options{
				WithBoolCompare(false), WithBitFlag(false), WithSprintf(false),
				WithTimeArith(false), WithAppend(false), WithReplaceAll(false),
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			if a := New(tt.options); tt.fix {
				analysistest.RunWithSuggestedFixes(t, testdata, a, tt.dir)
			} else {
				analysistest.Run(t, testdata, a, tt.dir)
			}
		})
	}
}
