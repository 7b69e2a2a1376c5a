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
	"slices"
	"testing"
)

func TestFlagLike(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		vals []uint64
		want bool
	}{
		{"empty", nil, false},
		{"single power", []uint64{1}, false},
		{"two powers", []uint64{1, 2}, true},
		{"shifted powers", []uint64{4, 8, 16}, true},
		{"duplicate power", []uint64{1, 1}, false},
		{"zero and powers", []uint64{0, 1, 2, 4}, true},
		{"sequential", []uint64{0, 1, 2, 3}, true},
		{"arbitrary", []uint64{3, 5, 7}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			if got := flagLike(tt.vals); got != tt.want {
				t.Errorf("flagLike(%v) = %v, want %v", tt.vals, got, tt.want)
			}
		})
	}
}

func TestCovered(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		vals []uint64
		want []int // indices of uncovered members
	}{
		{"all powers", []uint64{1, 2, 4, 8}, nil},
		{"zero member", []uint64{0, 1, 2}, nil},
		{"union member", []uint64{1, 2, 3}, nil},
		{"sequential", []uint64{0, 1, 2, 3, 4, 5, 6, 7}, nil},
		{"stray bit", []uint64{1, 2, 5}, []int{2}},
		{"missing union part", []uint64{1, 2, 4, 11}, []int{3}},
		{"mask of masks", []uint64{1, 2, 3, 4, 7}, nil},
		{"stray union", []uint64{1, 2, 6}, []int{2}},
		{"aliases cover each other", []uint64{1, 2, 6, 6}, nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			var got []int
			for i := range tt.vals {
				if !covered(tt.vals, i) {
					got = append(got, i)
				}
			}

			if !slices.Equal(got, tt.want) {
				t.Errorf("uncovered members of %v = %v, want %v", tt.vals, got, tt.want)
			}
		})
	}
}

func TestOverlap(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		vals []uint64
		i    int
		want int
	}{
		{"disjoint", []uint64{1, 2, 4}, 2, -1},
		{"shared bit", []uint64{3, 6}, 0, 1},
		{"contained is no overlap", []uint64{1, 3}, 1, -1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			if got := overlap(tt.vals, tt.i); got != tt.want {
				t.Errorf("overlap(%v, %d) = %d, want %d", tt.vals, tt.i, got, tt.want)
			}
		})
	}
}
