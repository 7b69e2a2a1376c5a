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

// Package analyzer implements the prefer static analysis pass.
//
// # Overview
//
// Prefer flags code that spells out what a simpler equivalent form already
// says, and rewrites it mechanically where a rewrite exists.
//
// # Example
//
// Before:
//
//	if done == false {
//	    elapsed := time.Now().Sub(start)
//	    msg := fmt.Sprintf("still waiting")
//	    log.Println(msg, elapsed)
//	}
//
// After applying prefer's suggested fixes:
//
//	if !done {
//	    elapsed := time.Since(start)
//	    msg := "still waiting"
//	    log.Println(msg, elapsed)
//	}
//
// # Checks
//
// The analyzer bundles six independent checks, each individually
// configurable:
//
//   - bool-compare: comparisons with the literals true and false
//   - bit-flag: bit-flag constant groups with overlapping members (no rewrite)
//   - sprintf: fmt.Sprintf and fmt.Errorf calls without formatting verbs
//   - time-arith: Sub calls expressible as time.Since or time.Until
//   - append: append calls without element arguments
//   - replace-all: strings.Replace and bytes.Replace with count -1
//
// Diagnostics on a line followed by a //nolint:prefer comment are suppressed,
// as are generated files unless configured otherwise.
package analyzer
