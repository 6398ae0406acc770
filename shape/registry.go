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

import (
	"fmt"
	"reflect"
)

// Registry collects variant declarations and builds shapes from them.
//
// Registration and shape construction happen during a single-threaded
// configuration phase, the same discipline the routing tree uses: mutate
// while wiring, then share immutably. Shapes returned from [Registry.Of]
// are safe for concurrent use; the Registry itself must not be mutated
// concurrently with Of.
type Registry struct {
	variants []registration
	shapes   map[reflect.Type]*Shape
}

// registration is one declared sum variant.
type registration struct {
	typ      reflect.Type
	template string
	declared bool
}

// NewRegistry creates an empty Registry.
func NewRegistry() *Registry {
	return &Registry{
		shapes: make(map[reflect.Type]*Shape),
	}
}

// Register declares a variant struct type, optionally with an explicit
// path template. The prototype is only inspected for its type. Variants
// belong to whichever interface types they implement; registration order
// fixes variant order within a sum.
func (r *Registry) Register(prototype any, template string, declared bool) error {
	if prototype == nil {
		return fmt.Errorf("%w: nil prototype", ErrVariantNotStruct)
	}
	t := reflect.TypeOf(prototype)
	if t.Kind() == reflect.Ptr {
		t = t.Elem()
	}
	if t.Kind() != reflect.Struct {
		return fmt.Errorf("%w: %s", ErrVariantNotStruct, t)
	}
	for _, reg := range r.variants {
		if reg.typ == t {
			return fmt.Errorf("%w: %s", ErrDuplicateVariant, t)
		}
	}
	r.variants = append(r.variants, registration{typ: t, template: template, declared: declared})
	return nil
}

// Of returns the shape for t, building and caching it on first use.
//
// The shape pointer is installed in the cache before its contents are
// filled so that self-referential types (a variant holding a field of its
// own interface type) resolve to the same *Shape instead of recursing
// forever.
func (r *Registry) Of(t reflect.Type) (*Shape, error) {
	if s, ok := r.shapes[t]; ok {
		return s, nil
	}

	s := &Shape{Type: t}
	r.shapes[t] = s
	if err := r.fill(s); err != nil {
		delete(r.shapes, t)
		return nil, err
	}
	return s, nil
}

// fill populates an installed shape from its reflect.Type.
func (r *Registry) fill(s *Shape) error {
	t := s.Type

	switch t.Kind() {
	case reflect.String, reflect.Bool,
		reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64,
		reflect.Float32, reflect.Float64:
		s.Kind = Primitive
		return nil

	case reflect.Slice:
		elem, err := r.Of(t.Elem())
		if err != nil {
			return err
		}
		s.Kind = Sequence
		s.Elem = elem
		return nil

	case reflect.Struct:
		fields, err := r.fieldsOf(t)
		if err != nil {
			return err
		}
		s.Kind = Product
		s.Fields = fields
		return nil

	case reflect.Interface:
		return r.fillSum(s)

	default:
		return fmt.Errorf("%w: %s (%s)", ErrUnsupportedType, t, t.Kind())
	}
}

// fillSum resolves an interface type against the registered variants.
func (r *Registry) fillSum(s *Shape) error {
	s.Kind = Sum

	for _, reg := range r.variants {
		if !reg.typ.Implements(s.Type) {
			continue
		}

		fields, err := r.fieldsOf(reg.typ)
		if err != nil {
			return fmt.Errorf("variant %s: %w", reg.typ.Name(), err)
		}

		v := Variant{
			Name:   reg.typ.Name(),
			Type:   reg.typ,
			Fields: fields,
		}

		raw, declared := reg.template, reg.declared
		if !declared && reg.typ.Implements(pathTemplaterType) {
			raw = reflect.New(reg.typ).Elem().Interface().(PathTemplater).PathTemplate()
			declared = true
		}

		var tmpl Template
		if declared {
			tmpl, err = parseTemplate(raw)
			if err != nil {
				return fmt.Errorf("variant %s: %w", v.Name, err)
			}
		} else {
			tmpl = defaultTemplate(v.Name, fields)
			v.Defaulted = true
		}

		v.Template, err = bindTemplate(tmpl, v.Name, fields)
		if err != nil {
			return err
		}

		s.Variants = append(s.Variants, v)
	}

	if len(s.Variants) == 0 {
		return fmt.Errorf("%w: %s", ErrNoVariants, s.Type)
	}
	return nil
}

// fieldsOf walks a struct's exported fields in declaration order.
func (r *Registry) fieldsOf(t reflect.Type) ([]Field, error) {
	var fields []Field
	for i := range t.NumField() {
		sf := t.Field(i)
		if !sf.IsExported() {
			continue
		}
		fs, err := r.Of(sf.Type)
		if err != nil {
			return nil, fmt.Errorf("field %s.%s: %w", t.Name(), sf.Name, err)
		}
		fields = append(fields, Field{Name: sf.Name, Index: i, Shape: fs})
	}
	return fields, nil
}
