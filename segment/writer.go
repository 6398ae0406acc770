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

package segment

import (
	"reflect"
	"strings"

	"rivaas.dev/endpoint/shape"
)

type stepKind uint8

const (
	stepLiteral stepKind = iota
	stepBasic
	stepRestSlice
	stepRestString
)

// writeStep is one pre-resolved emission of a variant writer: a literal,
// a field's segment output, or a flattened rest capture.
type writeStep struct {
	kind    stepKind
	literal string
	field   int // struct field index
	seg     Segment
}

// variantWriter emits a variant's fragments in template order. Writers
// are resolved once at build time so writing needs no tree walk.
type variantWriter struct {
	steps []writeStep
}

func (b *Builder) newVariantWriter(v *shape.Variant) (*variantWriter, error) {
	w := &variantWriter{steps: make([]writeStep, 0, len(v.Template.Fragments))}

	for _, frag := range v.Template.Fragments {
		switch {
		case !frag.IsParam():
			w.steps = append(w.steps, writeStep{kind: stepLiteral, literal: frag.Literal})

		case frag.Rest:
			field := v.Fields[frag.Field]
			if field.Shape.Type.Kind() == reflect.String {
				w.steps = append(w.steps, writeStep{kind: stepRestString, field: field.Index})
				continue
			}
			elem, err := b.Segment(field.Shape.Elem)
			if err != nil {
				return nil, err
			}
			w.steps = append(w.steps, writeStep{kind: stepRestSlice, field: field.Index, seg: elem})

		default:
			field := v.Fields[frag.Field]
			seg, err := b.Segment(field.Shape)
			if err != nil {
				return nil, err
			}
			w.steps = append(w.steps, writeStep{kind: stepBasic, field: field.Index, seg: seg})
		}
	}

	return w, nil
}

func (w *variantWriter) append(dst []string, v reflect.Value) []string {
	for _, step := range w.steps {
		switch step.kind {
		case stepLiteral:
			dst = append(dst, step.literal)

		case stepBasic:
			dst = step.seg.Append(dst, v.Field(step.field))

		case stepRestSlice:
			fv := v.Field(step.field)
			for i := range fv.Len() {
				dst = step.seg.Append(dst, fv.Index(i))
			}

		case stepRestString:
			s := v.Field(step.field).String()
			if s != "" {
				for part := range strings.SplitSeq(s, "/") {
					dst = append(dst, part)
				}
			}
		}
	}
	return dst
}
