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

package config

// CheckFlags represents the individual pattern checks of the analyzer.
type CheckFlags uint8

const (
	// BoolCompareCheck flags comparisons of boolean expressions with the literals true and false.
	BoolCompareCheck CheckFlags = 1 << iota

	// BitFlagCheck flags bit-flag constant groups containing members that are
	// neither powers of two nor combinations of other members.
	BitFlagCheck

	// SprintfCheck flags fmt.Sprintf and fmt.Errorf calls without formatting verbs.
	SprintfCheck

	// TimeArithCheck flags time.Time.Sub calls expressible as time.Since or time.Until.
	TimeArithCheck

	// AppendCheck flags append calls without element arguments.
	AppendCheck

	// ReplaceAllCheck flags strings.Replace and bytes.Replace calls with count -1.
	ReplaceAllCheck
)

// Checks is the set of enabled checks.
type Checks = BitMask[CheckFlags]

// DefaultChecks returns the default check set, with every check enabled.
func DefaultChecks() Checks {
	return NewBitMask(
		BoolCompareCheck | BitFlagCheck | SprintfCheck | TimeArithCheck | AppendCheck | ReplaceAllCheck,
	)
}

// Config represents behavioral options for the analyzer.
type Config uint8

const (
	// IncludeGenerated specifies whether to include analysis of generated files.
	IncludeGenerated Config = 1 << iota
)

// Behavior holds the enabled behavioral options.
type Behavior = BitMask[Config]

// DefaultBehavior returns the default behavior, with generated files excluded.
func DefaultBehavior() Behavior {
	return NewBitMask[Config]()
}
