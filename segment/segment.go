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

import "reflect"

// Segment is a bidirectional codec between a typed value and a run of
// path fragments.
//
// Parse consumes a prefix of in and returns the decoded value together
// with the unconsumed remainder, or ok=false on mismatch. Parse never
// panics on malformed input.
//
// Append writes v's fragments onto dst and returns the extended slice.
// Append is total for any value of the segment's type; passing a value of
// the wrong type is a programming error and panics.
//
// Segments are immutable once built and safe for concurrent use.
type Segment interface {
	Parse(in []string) (v reflect.Value, rest []string, ok bool)
	Append(dst []string, v reflect.Value) []string
}

// forward is a placeholder segment installed in the builder cache before
// a type's real segment exists. It lets a self-referential shape resolve
// to its own segment by indirection: the cell is set exactly once, when
// construction of the real segment completes. A forward is never invoked
// during construction, only during later parsing or writing, by which
// time it has been resolved.
type forward struct {
	seg Segment
}

func (f *forward) resolve(s Segment) { f.seg = s }

func (f *forward) Parse(in []string) (reflect.Value, []string, bool) {
	if f.seg == nil {
		panic("segment: forward reference used before construction completed")
	}
	return f.seg.Parse(in)
}

func (f *forward) Append(dst []string, v reflect.Value) []string {
	if f.seg == nil {
		panic("segment: forward reference used before construction completed")
	}
	return f.seg.Append(dst, v)
}
