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
	"fmt"
	"reflect"

	"rivaas.dev/endpoint/shape"
)

// Builder derives segments from shapes, memoizing one segment per type.
//
// Construction follows a two-phase install-then-resolve protocol: before
// recursing into a shape's sub-shapes, a forward placeholder is cached
// under the shape's type. A self-referential shape then resolves to the
// placeholder instead of recursing forever; once the real segment exists,
// the placeholder's cell is fixed up and the cache entry replaced. The
// placeholder is only ever invoked after construction, through values
// parsed or written at runtime.
//
// A Builder is used during a single-threaded construction phase. The
// segments it returns are immutable and safe for concurrent use.
type Builder struct {
	cache map[reflect.Type]Segment
}

// NewBuilder creates an empty Builder.
func NewBuilder() *Builder {
	return &Builder{cache: make(map[reflect.Type]Segment)}
}

// Segment returns the codec for s, building and caching it on first use.
// All configuration errors (ambiguous variant overlaps, conflicting
// merged parameters, unsupported shapes) surface here, never at parse
// or write time.
func (b *Builder) Segment(s *shape.Shape) (Segment, error) {
	if seg, ok := b.cache[s.Type]; ok {
		return seg, nil
	}

	fwd := &forward{}
	b.cache[s.Type] = fwd

	seg, err := b.build(s)
	if err != nil {
		delete(b.cache, s.Type)
		return nil, err
	}

	fwd.resolve(seg)
	b.cache[s.Type] = seg
	return seg, nil
}

func (b *Builder) build(s *shape.Shape) (Segment, error) {
	switch s.Kind {
	case shape.Primitive:
		seg, ok := newPrimitive(s.Type)
		if !ok {
			return nil, fmt.Errorf("%w: %s", ErrUnsupportedShape, s.Type)
		}
		return seg, nil

	case shape.Sequence:
		elem, err := b.Segment(s.Elem)
		if err != nil {
			return nil, err
		}
		return newSequence(s.Type, elem), nil

	case shape.Product:
		segs := make([]Segment, len(s.Fields))
		for i, f := range s.Fields {
			seg, err := b.Segment(f.Shape)
			if err != nil {
				return nil, err
			}
			segs[i] = seg
		}
		return newProduct(s.Type, s.Fields, segs), nil

	case shape.Sum:
		return b.sum(s)

	default:
		return nil, fmt.Errorf("%w: %s", ErrUnsupportedShape, s.Type)
	}
}
