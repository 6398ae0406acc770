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

import (
	"fmt"
	"reflect"
	"strings"
	"time"

	"rivaas.dev/endpoint/segment"
	"rivaas.dev/endpoint/shape"
)

// Codec is the bidirectional mapping between values of an endpoint type E
// and URL paths. E is usually an interface whose variant structs were
// registered with [WithVariant]; a plain struct type works as well and is
// encoded positionally.
//
// Use [NewCodec] or [MustNewCodec] to build one. A Codec is immutable and
// safe for concurrent use.
type Codec[E any] struct {
	seg      segment.Segment
	shape    *shape.Shape
	recorder Recorder
}

// NewCodec derives the codec for E from its registered variants.
//
// Every configuration error is reported here: unknown or duplicate
// template fields, templates referencing only part of a variant's
// fields, misplaced or mistyped rest parameters, variants whose paths
// overlap, and parameters at the same position that disagree on type or
// capture mode. Decoding problems at runtime are never errors, only
// misses.
func NewCodec[E any](opts ...Option) (*Codec[E], error) {
	cfg := defaultConfig()
	for _, opt := range opts {
		opt(cfg)
	}
	if err := cfg.validate(); err != nil {
		return nil, err
	}

	reg := shape.NewRegistry()
	for _, vc := range cfg.variants {
		if err := reg.Register(vc.prototype, vc.template, vc.declared); err != nil {
			return nil, fmt.Errorf("endpoint: %w", err)
		}
	}

	t := reflect.TypeFor[E]()
	sh, err := reg.Of(t)
	if err != nil {
		return nil, fmt.Errorf("endpoint: %w", err)
	}

	seg, err := segment.NewBuilder().Segment(sh)
	if err != nil {
		return nil, fmt.Errorf("endpoint: %w", err)
	}

	if cfg.diagnostics != nil {
		emitShapeDiagnostics(cfg.diagnostics, sh)
	}

	return &Codec[E]{seg: seg, shape: sh, recorder: cfg.recorder}, nil
}

// MustNewCodec is like [NewCodec] but panics on configuration errors.
// Use in main() or init() where panic on startup is acceptable.
func MustNewCodec[E any](opts ...Option) *Codec[E] {
	c, err := NewCodec[E](opts...)
	if err != nil {
		panic(fmt.Sprintf("endpoint.MustNewCodec: %v", err))
	}
	return c
}

// Encode writes v as a slash-joined absolute path. It never fails for a
// registered variant value; passing a value whose type was not registered
// is a programming error and panics. No percent-encoding is applied.
func (c *Codec[E]) Encode(v E) string {
	start := time.Now()

	rv := reflect.ValueOf(v)
	if !rv.IsValid() || (rv.Kind() == reflect.Interface && rv.IsNil()) {
		panic("endpoint: Encode called with nil endpoint value")
	}

	frags := c.seg.Append(nil, rv)
	path := "/"
	if len(frags) > 0 {
		path += strings.Join(frags, "/")
	}

	if c.recorder != nil {
		c.recorder.ObserveEncode(variantName(rv), time.Since(start))
	}
	return path
}

// Decode parses a path back into an endpoint value. It reports false when
// any fragment fails to match or when the path carries trailing fragments
// beyond a full match; a successful decode consumes the entire path.
func (c *Codec[E]) Decode(path string) (E, bool) {
	start := time.Now()
	var zero E

	rv, rest, ok := c.seg.Parse(splitPath(path))
	if !ok || len(rest) != 0 {
		if c.recorder != nil {
			c.recorder.ObserveDecode(path, "", false, time.Since(start))
		}
		return zero, false
	}

	v, ok := rv.Interface().(E)
	if !ok {
		// Unreachable: the segment was derived from E's own shape.
		return zero, false
	}

	if c.recorder != nil {
		c.recorder.ObserveDecode(path, variantName(rv), true, time.Since(start))
	}
	return v, true
}

// splitPath breaks a path into fragments. "" and "/" are the empty
// fragment list; otherwise only the single leading slash is dropped, so
// a trailing slash becomes a final empty fragment, mirroring the slash
// Encode emits for a value whose last fragment is empty.
func splitPath(path string) []string {
	path = strings.TrimPrefix(path, "/")
	if path == "" {
		return nil
	}
	return strings.Split(path, "/")
}

// variantName names the concrete type inside rv for observability labels.
func variantName(rv reflect.Value) string {
	if rv.Kind() == reflect.Interface {
		rv = rv.Elem()
	}
	if !rv.IsValid() {
		return ""
	}
	return rv.Type().Name()
}

// emitShapeDiagnostics reports how the codec was assembled.
func emitShapeDiagnostics(h DiagnosticHandler, sh *shape.Shape) {
	for i := range sh.Variants {
		v := &sh.Variants[i]
		h.OnDiagnostic(DiagnosticEvent{
			Kind:    DiagVariantRegistered,
			Message: "variant registered",
			Fields: map[string]any{
				"variant":  v.Name,
				"template": v.Template.String(),
			},
		})
		if v.Defaulted {
			h.OnDiagnostic(DiagnosticEvent{
				Kind:    DiagTemplateDefaulted,
				Message: "no template declared, inferred from fields",
				Fields: map[string]any{
					"variant":  v.Name,
					"template": v.Template.String(),
				},
			})
		}
	}
}
