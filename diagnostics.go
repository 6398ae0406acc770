// Copyright 2025 The Rivaas Authors
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

package endpoint

import "log/slog"

// DiagnosticEvent describes one construction-time observation.
// These are informational only: fatal configuration problems surface as
// errors from [NewCodec], never as diagnostics.
type DiagnosticEvent struct {
	Kind    DiagnosticKind
	Message string
	Fields  map[string]any // Structured context
}

// DiagnosticKind categorizes diagnostic events.
type DiagnosticKind string

const (
	// DiagVariantRegistered is emitted once per variant with its resolved
	// template.
	DiagVariantRegistered DiagnosticKind = "variant_registered"

	// DiagTemplateDefaulted is emitted for variants that declared no
	// template and had the name-plus-fields pattern inferred.
	DiagTemplateDefaulted DiagnosticKind = "template_defaulted"
)

// DiagnosticHandler receives diagnostic events during codec construction.
// Implementations may log, emit metrics, or ignore them.
//
// This interface is optional; if not provided, diagnostics are silently
// dropped and codec behavior is unchanged.
type DiagnosticHandler interface {
	OnDiagnostic(DiagnosticEvent)
}

// DiagnosticHandlerFunc is a function adapter for DiagnosticHandler.
type DiagnosticHandlerFunc func(DiagnosticEvent)

func (f DiagnosticHandlerFunc) OnDiagnostic(e DiagnosticEvent) {
	f(e)
}

// SlogDiagnostics returns a handler that logs each diagnostic event at
// debug level through the given [slog.Logger]. A nil logger uses
// [slog.Default].
//
// Example:
//
//	c := endpoint.MustNewCodec[Page](
//	    endpoint.WithVariant(Home{}, "/"),
//	    endpoint.WithDiagnostics(endpoint.SlogDiagnostics(nil)),
//	)
func SlogDiagnostics(logger *slog.Logger) DiagnosticHandler {
	return DiagnosticHandlerFunc(func(e DiagnosticEvent) {
		l := logger
		if l == nil {
			l = slog.Default()
		}
		attrs := make([]any, 0, 2+2*len(e.Fields))
		attrs = append(attrs, "kind", string(e.Kind))
		for k, v := range e.Fields {
			attrs = append(attrs, k, v)
		}
		l.Debug(e.Message, attrs...)
	})
}
