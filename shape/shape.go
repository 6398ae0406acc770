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

package shape

import "reflect"

// Kind classifies a shape.
type Kind uint8

const (
	// Invalid is the zero Kind.
	Invalid Kind = iota

	// Primitive is a string, bool, sized integer, or float type.
	Primitive

	// Sequence is a slice of a supported element shape.
	Sequence

	// Product is a struct encoded as the positional concatenation of its
	// exported fields.
	Product

	// Sum is an interface type with registered variants.
	Sum
)

// String returns the string representation of the kind.
func (k Kind) String() string {
	switch k {
	case Primitive:
		return "primitive"
	case Sequence:
		return "sequence"
	case Product:
		return "product"
	case Sum:
		return "sum"
	default:
		return "invalid"
	}
}

// Shape describes the wire-relevant structure of a Go type.
// Shapes are immutable after construction and safe for concurrent reads.
type Shape struct {
	Kind     Kind
	Type     reflect.Type // the Go type this shape describes
	Elem     *Shape       // Sequence: element shape
	Fields   []Field      // Product: exported fields in declaration order
	Variants []Variant    // Sum: variants in registration order
}

// Field is one exported struct field of a product or variant.
type Field struct {
	Name  string
	Index int // struct field index for reflect access
	Shape *Shape
}

// Variant is one registered case of a sum type.
type Variant struct {
	Name     string
	Type     reflect.Type
	Fields   []Field
	Template Template

	// Defaulted reports that no template was declared and the default
	// name-plus-fields pattern was inferred.
	Defaulted bool
}

// PathTemplater is implemented by variant types that declare their own
// path template. It takes precedence over the inferred default but not
// over a template passed at registration.
type PathTemplater interface {
	PathTemplate() string
}

var pathTemplaterType = reflect.TypeFor[PathTemplater]()
