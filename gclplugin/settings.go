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

package gclplugin

import prefer "github.com/preferlint/prefer/analyzer"

// Settings represents the configuration options for an instance of the [Plugin].
type Settings struct {
	// BoolCompare enables comparisons-with-boolean-literal checks.
	BoolCompare *bool `json:"bool-compare,omitzero"`
	// BitFlag enables bit-flag constant group checks.
	BitFlag *bool `json:"bit-flag,omitzero"`
	// Sprintf enables verb-free fmt.Sprintf and fmt.Errorf checks.
	Sprintf *bool `json:"sprintf,omitzero"`
	// TimeArith enables time.Since and time.Until checks.
	TimeArith *bool `json:"time-arith,omitzero"`
	// Append enables no-op append checks.
	Append *bool `json:"append,omitzero"`
	// ReplaceAll enables Replace-with-count--1 checks.
	ReplaceAll *bool `json:"replace-all,omitzero"`
}

// Options converts [Settings] into a list of [prefer.Option] for the prefer analyzer.
// It processes settings and applies them only when explicitly set (non-nil).
func (s Settings) Options() []prefer.Option {
	var opts []prefer.Option

	opts = appendOption(opts, s.BoolCompare, prefer.WithBoolCompare)
	opts = appendOption(opts, s.BitFlag, prefer.WithBitFlag)
	opts = appendOption(opts, s.Sprintf, prefer.WithSprintf)
	opts = appendOption(opts, s.TimeArith, prefer.WithTimeArith)
	opts = appendOption(opts, s.Append, prefer.WithAppend)
	opts = appendOption(opts, s.ReplaceAll, prefer.WithReplaceAll)

	return opts
}

// appendOption appends a non-nil setting to a [prefer.Option] list.
func appendOption[T any](opts []prefer.Option, value *T, constructor func(T) prefer.Option) []prefer.Option {
	if value == nil {
		return opts
	}

	return append(opts, constructor(*value))
}
