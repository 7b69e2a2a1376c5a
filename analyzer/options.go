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
	"log/slog"

	"github.com/preferlint/prefer/internal/config"
)

// Option configures specific behavior of a [New] prefer analyzer.
type Option interface {
	apply(r *runOptions)
	LogAttr() slog.Attr
}

// Options is a list of [Option] values that itself satisfies the [Option] interface.
type Options []Option

// LogValue implements [slog.LogValuer].
func (o Options) LogValue() slog.Value {
	as := make([]slog.Attr, 0, len(o))
	as = appendOptions(as, o)

	return slog.GroupValue(as...)
}

func appendOptions(as []slog.Attr, o Options) []slog.Attr {
	for _, opt := range o {
		switch opt := opt.(type) {
		case nil:
			as = append(as, slog.String("nil", "<nil>"))

		case Options:
			as = appendOptions(as, opt)

		default:
			as = append(as, opt.LogAttr())
		}
	}

	return as
}

func (o Options) apply(r *runOptions) {
	for _, opt := range o {
		if opt == nil {
			continue
		}

		opt.apply(r)
	}
}

// LogAttr is for logging with [slog.Logger.LogAttrs].
func (o Options) LogAttr() slog.Attr {
	return slog.Any("options", o)
}

// checkOption toggles a single check flag.
type checkOption struct {
	key   string
	flag  config.CheckFlags
	value bool
}

func (o checkOption) apply(r *runOptions) {
	r.checks.Set(o.flag, o.value)
}

func (o checkOption) LogAttr() slog.Attr {
	return slog.Bool(o.key, o.value)
}

// WithBoolCompare is an [Option] to configure whether boolean literal comparison checks are enabled.
func WithBoolCompare(enabled bool) Option {
	return checkOption{key: "bool-compare", flag: config.BoolCompareCheck, value: enabled}
}

// WithBitFlag is an [Option] to configure whether bit-flag constant group checks are enabled.
func WithBitFlag(enabled bool) Option {
	return checkOption{key: "bit-flag", flag: config.BitFlagCheck, value: enabled}
}

// WithSprintf is an [Option] to configure whether verb-free Sprintf and Errorf checks are enabled.
func WithSprintf(enabled bool) Option {
	return checkOption{key: "sprintf", flag: config.SprintfCheck, value: enabled}
}

// WithTimeArith is an [Option] to configure whether time.Since and time.Until checks are enabled.
func WithTimeArith(enabled bool) Option {
	return checkOption{key: "time-arith", flag: config.TimeArithCheck, value: enabled}
}

// WithAppend is an [Option] to configure whether no-op append checks are enabled.
func WithAppend(enabled bool) Option {
	return checkOption{key: "append", flag: config.AppendCheck, value: enabled}
}

// WithReplaceAll is an [Option] to configure whether ReplaceAll checks are enabled.
func WithReplaceAll(enabled bool) Option {
	return checkOption{key: "replace-all", flag: config.ReplaceAllCheck, value: enabled}
}

// WithGenerated is an [Option] to configure diagnostics in generated files.
func WithGenerated(generated bool) Option { return generatedOption{generated: generated} }

type generatedOption struct{ generated bool }

func (o generatedOption) apply(r *runOptions) {
	r.behavior.Set(config.IncludeGenerated, o.generated)
}

func (o generatedOption) LogAttr() slog.Attr {
	return slog.Bool("generated", o.generated)
}
