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

	"rivaas.dev/endpoint/shape"
)

// product encodes a struct as the positional concatenation of its
// exported fields' fragments in declaration order. No field name appears
// on the wire; the encoding is fixed-arity and order-dependent.
type product struct {
	typ    reflect.Type
	fields []shape.Field
	segs   []Segment
}

func newProduct(typ reflect.Type, fields []shape.Field, segs []Segment) Segment {
	return &product{typ: typ, fields: fields, segs: segs}
}

func (p *product) Parse(in []string) (reflect.Value, []string, bool) {
	out := reflect.New(p.typ).Elem()
	rest := in
	for i, seg := range p.segs {
		v, r, ok := seg.Parse(rest)
		if !ok {
			return reflect.Value{}, nil, false
		}
		out.Field(p.fields[i].Index).Set(v)
		rest = r
	}
	return out, rest, true
}

func (p *product) Append(dst []string, v reflect.Value) []string {
	for i, seg := range p.segs {
		dst = seg.Append(dst, v.Field(p.fields[i].Index))
	}
	return dst
}
