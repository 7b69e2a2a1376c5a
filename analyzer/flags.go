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

package analyzer

import (
	"flag"

	"github.com/preferlint/prefer/internal/config"
)

// registerFlags binds the configuration of r to command line flag values.
func registerFlags(flags *flag.FlagSet, r *runOptions) {
	checkFlags := []struct {
		name  string
		flag  config.CheckFlags
		usage string
	}{
		{"bool-compare", config.BoolCompareCheck, "check comparisons with boolean literals"},
		{"bit-flag", config.BitFlagCheck, "check bit-flag constant groups"},
		{"sprintf", config.SprintfCheck, "check fmt.Sprintf and fmt.Errorf without verbs"},
		{"time-arith", config.TimeArithCheck, "check for time.Since and time.Until candidates"},
		{"append", config.AppendCheck, "check append calls without elements"},
		{"replace-all", config.ReplaceAllCheck, "check Replace calls with count -1"},
	}

	for _, f := range checkFlags {
		flags.Var(boolValue[config.CheckFlags, *config.Checks]{flags: &r.checks, value: f.flag}, f.name, f.usage)
	}

	flags.Var(boolValue[config.Config, *config.Behavior]{flags: &r.behavior, value: config.IncludeGenerated},
		"generated", "check generated files")
}
