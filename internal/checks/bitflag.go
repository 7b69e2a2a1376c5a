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
	"fmt"
	"go/ast"
	"go/constant"
	"go/token"
	"go/types"

	"golang.org/x/tools/go/analysis"

	"github.com/preferlint/prefer/internal/report"
)

// flagMember is one constant of a bit-flag group.
// Blank members contribute their value to the union test but are never reported.
type flagMember struct {
	name  *ast.Ident
	rng   ast.Node // value expression when written, name otherwise
	value uint64
	blank bool
}

// bitFlag inspects a parenthesized constant group declaring members of a
// single defined integer type. When the group looks like a bit-flag set,
// members whose value is neither zero, a power of two, nor a union of other
// members are reported. There is no rewrite: the intended value is unknowable.
func (r *Runner) bitFlag(decl *ast.GenDecl) {
	if decl.Tok != token.CONST || !decl.Lparen.IsValid() {
		return
	}

	members, ok := r.flagMembers(decl)
	if !ok {
		return
	}

	vals := make([]uint64, len(members))
	for i, m := range members {
		vals[i] = m.value
	}

	if !flagLike(vals) {
		return
	}

	for i, m := range members {
		if m.blank || covered(vals, i) {
			continue
		}

		f := report.Finding{
			Pos:      m.rng.Pos(),
			End:      m.rng.End(),
			Category: "bitflag",
			Message: fmt.Sprintf(
				"Bit flag constant '%s' has value %#x, which is not a power of two or a combination of other flags",
				m.name.Name, m.value),
		}

		if o := overlap(vals, i); o >= 0 {
			f.Related = []analysis.RelatedInformation{{
				Pos:     members[o].name.Pos(),
				End:     members[o].name.End(),
				Message: fmt.Sprintf("Shares bits with '%s'", members[o].name.Name),
			}}
		}

		report.Report(r.Pass, r.File, f)
	}
}

// flagMembers collects the constants of the group. It reports false when the
// group mixes types, is not of a defined integer type, or holds values outside
// the unsigned 64-bit range.
func (r *Runner) flagMembers(decl *ast.GenDecl) ([]flagMember, bool) {
	info := r.Pass.TypesInfo

	var (
		members   []flagMember
		groupType types.Type
	)

	for _, spec := range decl.Specs {
		vs, ok := spec.(*ast.ValueSpec)
		if !ok {
			return nil, false
		}

		for i, name := range vs.Names {
			obj, ok := info.Defs[name].(*types.Const)
			if !ok {
				return nil, false
			}

			named, ok := obj.Type().(*types.Named)
			if !ok {
				return nil, false
			}

			if basic, ok := named.Underlying().(*types.Basic); !ok || basic.Info()&types.IsInteger == 0 {
				return nil, false
			}

			switch {
			case groupType == nil:
				groupType = obj.Type()
			case !types.Identical(groupType, obj.Type()):
				return nil, false
			}

			value, ok := constant.Uint64Val(constant.ToInt(obj.Val()))
			if !ok {
				return nil, false
			}

			rng := ast.Node(name)
			if i < len(vs.Values) {
				rng = vs.Values[i]
			}

			members = append(members, flagMember{name: name, rng: rng, value: value, blank: name.Name == "_"})
		}
	}

	return members, len(members) > 0
}

// flagLike reports whether the values look like a bit-flag set: at least two
// distinct nonzero powers of two. Sequential enumerations pass this test but
// produce no findings, since every value below the largest power of two is a
// union of smaller members.
func flagLike(vals []uint64) bool {
	var seen uint64

	n := 0

	for _, v := range vals {
		if v != 0 && v&(v-1) == 0 && seen&v == 0 {
			seen |= v
			n++
		}
	}

	return n >= 2
}

// covered reports whether vals[i] is zero, a power of two, or a union of
// other values in the group.
func covered(vals []uint64, i int) bool {
	v := vals[i]
	if v == 0 || v&(v-1) == 0 {
		return true
	}

	var union uint64

	for j, w := range vals {
		if j != i && w&^v == 0 {
			union |= w
		}
	}

	return union == v
}

// overlap returns the index of a member sharing bits with vals[i] without
// being contained in it, or -1 when no such member exists.
func overlap(vals []uint64, i int) int {
	v := vals[i]

	for j, w := range vals {
		if j != i && w&v != 0 && w&^v != 0 {
			return j
		}
	}

	return -1
}
