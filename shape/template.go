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
	"strings"
)

// Fragment is one node of a path template: either a constant literal or a
// parameter bound to a variant field.
type Fragment struct {
	Literal string // constant text; empty for parameters
	Param   string // field name; empty for literals
	Field   int    // index into Variant.Fields, set when the template is bound
	Rest    bool   // trailing rest capture
}

// IsParam reports whether the fragment is a parameter.
func (f Fragment) IsParam() bool { return f.Param != "" }

// Template is a variant's declared or inferred path pattern.
type Template struct {
	Fragments []Fragment
}

// String renders the template in authoring syntax, e.g. "user/{id}".
// The empty template renders as "/".
func (t Template) String() string {
	if len(t.Fragments) == 0 {
		return "/"
	}
	parts := make([]string, len(t.Fragments))
	for i, f := range t.Fragments {
		switch {
		case !f.IsParam():
			parts[i] = f.Literal
		case f.Rest:
			parts[i] = "{*" + f.Param + "}"
		default:
			parts[i] = "{" + f.Param + "}"
		}
	}
	return strings.Join(parts, "/")
}

// parseTemplate parses a slash-separated template string into fragments.
// Parameters are written "{name}", rest parameters "{*name}". The strings
// "" and "/" denote the empty template, which matches the root path.
func parseTemplate(s string) (Template, error) {
	trimmed := strings.Trim(s, "/")
	if trimmed == "" {
		return Template{}, nil
	}

	var frags []Fragment
	for part := range strings.SplitSeq(trimmed, "/") {
		switch {
		case part == "":
			return Template{}, fmt.Errorf("%w: empty fragment in %q", ErrTemplateSyntax, s)

		case strings.HasPrefix(part, "{") && strings.HasSuffix(part, "}"):
			name := part[1 : len(part)-1]
			rest := strings.HasPrefix(name, "*")
			if rest {
				name = name[1:]
			}
			if name == "" || strings.ContainsAny(name, "{}*/") {
				return Template{}, fmt.Errorf("%w: bad parameter %q in %q", ErrTemplateSyntax, part, s)
			}
			frags = append(frags, Fragment{Param: name, Rest: rest})

		case strings.ContainsAny(part, "{}"):
			return Template{}, fmt.Errorf("%w: unbalanced braces in %q", ErrTemplateSyntax, part)

		default:
			frags = append(frags, Fragment{Literal: part})
		}
	}

	return Template{Fragments: frags}, nil
}

// defaultTemplate infers the template for a variant with no declaration:
// the variant type name as a literal followed by one basic parameter per
// field in declaration order.
func defaultTemplate(name string, fields []Field) Template {
	frags := make([]Fragment, 0, len(fields)+1)
	frags = append(frags, Fragment{Literal: name})
	for _, f := range fields {
		frags = append(frags, Fragment{Param: f.Name})
	}
	return Template{Fragments: frags}
}

// bindTemplate resolves each parameter against the variant's fields and
// enforces the template invariants: every parameter names an existing
// field, every field is referenced exactly once, at most one rest
// parameter exists and it is the final fragment, and a rest parameter
// binds to a slice or string field.
func bindTemplate(t Template, variant string, fields []Field) (Template, error) {
	rests := 0
	for _, f := range t.Fragments {
		if f.Rest {
			rests++
		}
	}
	if rests > 1 {
		return Template{}, fmt.Errorf("%w: variant %s", ErrMultipleRest, variant)
	}

	seen := make(map[string]bool, len(fields))

	for i := range t.Fragments {
		frag := &t.Fragments[i]
		if !frag.IsParam() {
			continue
		}

		idx := -1
		for j, f := range fields {
			if f.Name == frag.Param {
				idx = j
				break
			}
		}
		if idx < 0 {
			return Template{}, fmt.Errorf("%w: %q in variant %s", ErrUnknownTemplateField, frag.Param, variant)
		}
		if seen[frag.Param] {
			return Template{}, fmt.Errorf("%w: %q in variant %s", ErrDuplicateTemplateField, frag.Param, variant)
		}
		seen[frag.Param] = true
		frag.Field = idx

		if frag.Rest {
			if i != len(t.Fragments)-1 {
				return Template{}, fmt.Errorf("%w: {*%s} in variant %s", ErrRestNotLast, frag.Param, variant)
			}
			fk := fields[idx].Shape.Type.Kind()
			if fk != reflect.Slice && fk != reflect.String {
				return Template{}, fmt.Errorf("%w: field %q of variant %s is %s",
					ErrRestTarget, frag.Param, variant, fields[idx].Shape.Type)
			}
		}
	}

	if len(seen) != len(fields) {
		return Template{}, fmt.Errorf("%w: variant %s references %d of %d fields",
			ErrUnreferencedField, variant, len(seen), len(fields))
	}

	return t, nil
}
