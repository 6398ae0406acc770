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
	"strings"

	"rivaas.dev/endpoint/shape"
)

// sumSegment parses and writes a sum type through a decision tree merged
// from every variant's path template.
type sumSegment struct {
	typ     reflect.Type // the interface type
	meta    []variantMeta
	root    *decisionNode
	writers map[reflect.Type]*variantWriter
}

// variantMeta is the construction data for one variant.
type variantMeta struct {
	name   string
	typ    reflect.Type
	fields []shape.Field
}

// decisionNode is one merge level shared by all variants with a common
// path prefix. Literal edges are kept in first-seen order and scanned
// linearly; literals are unique per node, so a match commits. At most one
// parameter child and at most one terminal variant exist per node.
type decisionNode struct {
	edges    []literalEdge
	param    *paramNode
	terminal int // index into meta, or -1
}

type literalEdge struct {
	label string
	node  *decisionNode
}

// paramNode is the merged parameter child of a decision node. Every
// contributing variant agreed on field type and capture mode at build
// time; a single decoded value feeds each contributing (variant, field)
// slot.
type paramNode struct {
	seg      Segment // field segment (basic) or element segment (rest over slice)
	rest     bool
	restStr  bool         // rest bound to a string field
	restType reflect.Type // rest container type (slice or string)
	bindings []slotRef
	child    *decisionNode
}

// slotRef addresses one field slot of one variant.
type slotRef struct {
	variant int
	field   int // index into variantMeta.fields
}

// variantPath is a variant with its not-yet-merged template fragments.
type variantPath struct {
	variant int
	frags   []shape.Fragment
}

// sum compiles a sum shape into a segment.
func (b *Builder) sum(s *shape.Shape) (Segment, error) {
	ss := &sumSegment{
		typ:     s.Type,
		meta:    make([]variantMeta, len(s.Variants)),
		writers: make(map[reflect.Type]*variantWriter, len(s.Variants)),
	}

	paths := make([]variantPath, len(s.Variants))
	for i := range s.Variants {
		v := &s.Variants[i]
		ss.meta[i] = variantMeta{name: v.Name, typ: v.Type, fields: v.Fields}
		paths[i] = variantPath{variant: i, frags: v.Template.Fragments}

		w, err := b.newVariantWriter(v)
		if err != nil {
			return nil, err
		}
		ss.writers[v.Type] = w
	}

	root, err := b.merge(ss, paths)
	if err != nil {
		return nil, err
	}
	ss.root = root
	return ss, nil
}

// merge groups variant paths by their first fragment into one decision
// node: distinct literals become separate edges, all parameters collapse
// into a single parameter child, and an exhausted template becomes the
// node's terminal variant. Each group is stripped of its head fragment
// and merged recursively.
func (b *Builder) merge(ss *sumSegment, paths []variantPath) (*decisionNode, error) {
	node := &decisionNode{terminal: -1}

	type litGroup struct {
		label string
		paths []variantPath
	}
	var lits []litGroup
	var params []variantPath

	for _, p := range paths {
		switch {
		case len(p.frags) == 0:
			if node.terminal >= 0 {
				return nil, fmt.Errorf("%w: %s and %s",
					ErrOverlappingVariants, ss.meta[node.terminal].name, ss.meta[p.variant].name)
			}
			node.terminal = p.variant

		case p.frags[0].IsParam():
			params = append(params, p)

		default:
			label := p.frags[0].Literal
			grouped := false
			for i := range lits {
				if lits[i].label == label {
					lits[i].paths = append(lits[i].paths, variantPath{p.variant, p.frags[1:]})
					grouped = true
					break
				}
			}
			if !grouped {
				lits = append(lits, litGroup{label, []variantPath{{p.variant, p.frags[1:]}}})
			}
		}
	}

	for _, g := range lits {
		child, err := b.merge(ss, g.paths)
		if err != nil {
			return nil, err
		}
		node.edges = append(node.edges, literalEdge{label: g.label, node: child})
	}

	if len(params) > 0 {
		pn, err := b.mergeParams(ss, params)
		if err != nil {
			return nil, err
		}
		node.param = pn
	}

	return node, nil
}

// mergeParams collapses every path starting with a parameter fragment
// into one parameter child. Contributing variants must agree on the
// bound field's type and on basic versus rest capture; disagreement
// means the union definition is ambiguous and construction fails.
func (b *Builder) mergeParams(ss *sumSegment, params []variantPath) (*paramNode, error) {
	head := params[0].frags[0]
	fieldType := ss.fieldType(params[0].variant, head.Field)

	pn := &paramNode{rest: head.Rest}
	stripped := make([]variantPath, 0, len(params))

	for _, p := range params {
		f := p.frags[0]
		ft := ss.fieldType(p.variant, f.Field)
		if f.Rest != head.Rest || ft != fieldType {
			return nil, fmt.Errorf("%w: {%s} of %s vs {%s} of %s",
				ErrParameterConflict,
				head.Param, ss.meta[params[0].variant].name,
				f.Param, ss.meta[p.variant].name)
		}
		pn.bindings = append(pn.bindings, slotRef{variant: p.variant, field: f.Field})
		stripped = append(stripped, variantPath{p.variant, p.frags[1:]})
	}

	fs := ss.fieldShape(params[0].variant, head.Field)
	if pn.rest {
		pn.restType = fieldType
		if fieldType.Kind() == reflect.String {
			pn.restStr = true
		} else {
			elem, err := b.Segment(fs.Elem)
			if err != nil {
				return nil, err
			}
			pn.seg = elem
		}
	} else {
		seg, err := b.Segment(fs)
		if err != nil {
			return nil, err
		}
		pn.seg = seg
	}

	child, err := b.merge(ss, stripped)
	if err != nil {
		return nil, err
	}
	pn.child = child
	return pn, nil
}

func (ss *sumSegment) fieldShape(variant, field int) *shape.Shape {
	return ss.meta[variant].fields[field].Shape
}

func (ss *sumSegment) fieldType(variant, field int) reflect.Type {
	return ss.fieldShape(variant, field).Type
}

// Parse walks the decision tree over the input fragments, recording
// parameter values in a per-variant slot arena and constructing the
// terminal variant where the accepted template runs out. The parse may
// leave a remainder; the top-level decoder rejects it, while an
// enclosing product or sequence keeps consuming from it. Literal
// selection is deterministic, so the only alternatives ever attempted at
// a node are its parameter child and, last, its own terminal; total work
// is linear in path length.
func (ss *sumSegment) Parse(in []string) (reflect.Value, []string, bool) {
	slots := make([][]reflect.Value, len(ss.meta))
	return ss.root.parse(ss, in, slots)
}

func (n *decisionNode) parse(ss *sumSegment, in []string, slots [][]reflect.Value) (reflect.Value, []string, bool) {
	if len(in) == 0 {
		if n.terminal >= 0 {
			return ss.construct(n.terminal, slots), nil, true
		}
		// A rest capture matches the empty remainder, binding an empty
		// sequence or string.
		if n.param != nil {
			return n.param.parse(ss, in, slots)
		}
		return reflect.Value{}, nil, false
	}

	for i := range n.edges {
		if n.edges[i].label == in[0] {
			// A literal match commits; no backtracking to the parameter
			// child or the terminal.
			return n.edges[i].node.parse(ss, in[1:], slots)
		}
	}

	if n.param != nil {
		if v, rest, ok := n.param.parse(ss, in, slots); ok {
			return v, rest, true
		}
	}

	// No child matched: accept here, leaving the rest of the input for
	// the enclosing codec.
	if n.terminal >= 0 {
		return ss.construct(n.terminal, slots), in, true
	}
	return reflect.Value{}, nil, false
}

func (p *paramNode) parse(ss *sumSegment, in []string, slots [][]reflect.Value) (reflect.Value, []string, bool) {
	if !p.rest {
		v, rest, ok := p.seg.Parse(in)
		if !ok {
			return reflect.Value{}, nil, false
		}
		p.record(slots, ss, v)
		return p.child.parse(ss, rest, slots)
	}

	if p.restStr {
		v := reflect.New(p.restType).Elem()
		v.SetString(strings.Join(in, "/"))
		p.record(slots, ss, v)
		return p.child.parse(ss, nil, slots)
	}

	// Greedy rest over a slice: consume one element at a time until input
	// is exhausted or the element parser fails. Each iteration must make
	// strictly positive progress, otherwise an element codec that accepts
	// zero fragments would loop forever. The capture always decodes to an
	// allocated slice; the empty capture is an empty slice, never nil.
	var elems []reflect.Value
	rest := in
	for len(rest) > 0 {
		v, r, ok := p.seg.Parse(rest)
		if !ok || len(r) >= len(rest) {
			break
		}
		elems = append(elems, v)
		rest = r
	}

	out := reflect.MakeSlice(p.restType, len(elems), len(elems))
	for i, e := range elems {
		out.Index(i).Set(e)
	}
	p.record(slots, ss, out)
	return p.child.parse(ss, rest, slots)
}

// record stores one decoded value under every contributing variant slot.
func (p *paramNode) record(slots [][]reflect.Value, ss *sumSegment, v reflect.Value) {
	for _, b := range p.bindings {
		if slots[b.variant] == nil {
			slots[b.variant] = make([]reflect.Value, len(ss.meta[b.variant].fields))
		}
		slots[b.variant][b.field] = v
	}
}

// construct assembles the accepted variant from its recorded slots,
// leaving unwritten fields at their zero value, and boxes it in the sum's
// interface type.
func (ss *sumSegment) construct(variant int, slots [][]reflect.Value) reflect.Value {
	m := ss.meta[variant]
	out := reflect.New(m.typ).Elem()
	if vs := slots[variant]; vs != nil {
		for i, f := range m.fields {
			if vs[i].IsValid() {
				out.Field(f.Index).Set(vs[i])
			}
		}
	}

	boxed := reflect.New(ss.typ).Elem()
	boxed.Set(out)
	return boxed
}

// Append dispatches on the value's concrete type to its pre-resolved
// variant writer.
func (ss *sumSegment) Append(dst []string, v reflect.Value) []string {
	if v.Kind() == reflect.Interface {
		v = v.Elem()
	}
	if !v.IsValid() {
		panic("segment: cannot write nil sum value")
	}
	w, ok := ss.writers[v.Type()]
	if !ok {
		panic(fmt.Sprintf("segment: %s is not a registered variant of %s", v.Type(), ss.typ))
	}
	return w.append(dst, v)
}
