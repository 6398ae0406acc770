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

// sequence encodes a slice as an element count fragment followed by the
// flattened fragments of each element in order. The explicit count makes
// the slice's extent unambiguous even when more fragments follow it,
// unlike a rest capture, which is always the tail of the path.
type sequence struct {
	typ  reflect.Type // slice type
	elem Segment
}

func newSequence(typ reflect.Type, elem Segment) Segment {
	return &sequence{typ: typ, elem: elem}
}

func (s *sequence) Parse(in []string) (reflect.Value, []string, bool) {
	if len(in) == 0 {
		return reflect.Value{}, nil, false
	}
	n, err := strconv.Atoi(in[0])
	if err != nil || n < 0 {
		return reflect.Value{}, nil, false
	}

	out := reflect.MakeSlice(s.typ, n, n)
	rest := in[1:]
	for i := range n {
		v, r, ok := s.elem.Parse(rest)
		if !ok {
			return reflect.Value{}, nil, false
		}
		out.Index(i).Set(v)
		rest = r
	}
	return out, rest, true
}

func (s *sequence) Append(dst []string, v reflect.Value) []string {
	n := v.Len()
	dst = append(dst, strconv.Itoa(n))
	for i := range n {
		dst = s.elem.Append(dst, v.Index(i))
	}
	return dst
}
