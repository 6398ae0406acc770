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
	"strconv"
)

// primitive is a single-fragment codec for string, bool, integer, and
// float types. It carries the concrete type so named primitive types
// (e.g. type UserID int64) round-trip with their own type.
type primitive struct {
	typ    reflect.Type
	parse  func(s string, out reflect.Value) bool
	format func(v reflect.Value) string
}

func (p *primitive) Parse(in []string) (reflect.Value, []string, bool) {
	if len(in) == 0 {
		return reflect.Value{}, nil, false
	}
	out := reflect.New(p.typ).Elem()
	if !p.parse(in[0], out) {
		return reflect.Value{}, nil, false
	}
	return out, in[1:], true
}

func (p *primitive) Append(dst []string, v reflect.Value) []string {
	return append(dst, p.format(v))
}

// newPrimitive returns the codec for a primitive type, or ok=false for
// kinds with no path encoding.
//
// Formats are the strconv canonical forms: base-10 integers, shortest
// round-trip floats, and lowercase "true"/"false" for booleans. Parsing
// is exactly as strict as strconv: integers and floats reject any
// non-canonical text, while ParseBool also accepts "1", "t", "T",
// "TRUE", "True" and the false equivalents.
func newPrimitive(typ reflect.Type) (Segment, bool) {
	p := &primitive{typ: typ}

	switch typ.Kind() {
	case reflect.String:
		p.parse = func(s string, out reflect.Value) bool {
			out.SetString(s)
			return true
		}
		p.format = func(v reflect.Value) string { return v.String() }

	case reflect.Bool:
		p.parse = func(s string, out reflect.Value) bool {
			b, err := strconv.ParseBool(s)
			if err != nil {
				return false
			}
			out.SetBool(b)
			return true
		}
		p.format = func(v reflect.Value) string { return strconv.FormatBool(v.Bool()) }

	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		bits := typ.Bits()
		p.parse = func(s string, out reflect.Value) bool {
			n, err := strconv.ParseInt(s, 10, bits)
			if err != nil {
				return false
			}
			out.SetInt(n)
			return true
		}
		p.format = func(v reflect.Value) string { return strconv.FormatInt(v.Int(), 10) }

	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		bits := typ.Bits()
		p.parse = func(s string, out reflect.Value) bool {
			n, err := strconv.ParseUint(s, 10, bits)
			if err != nil {
				return false
			}
			out.SetUint(n)
			return true
		}
		p.format = func(v reflect.Value) string { return strconv.FormatUint(v.Uint(), 10) }

	case reflect.Float32, reflect.Float64:
		bits := typ.Bits()
		p.parse = func(s string, out reflect.Value) bool {
			f, err := strconv.ParseFloat(s, bits)
			if err != nil {
				return false
			}
			out.SetFloat(f)
			return true
		}
		p.format = func(v reflect.Value) string {
			return strconv.FormatFloat(v.Float(), 'g', -1, bits)
		}

	default:
		return nil, false
	}

	return p, true
}
