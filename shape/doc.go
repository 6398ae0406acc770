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

// Package shape describes the wire-relevant structure of Go types used as
// routable endpoints.
//
// A shape classifies a type as one of four kinds:
//
//   - Primitive: string, bool, and the sized integer and float types
//     (named types with those underlying kinds included)
//   - Sequence: a slice of any supported shape
//   - Product: a struct whose exported fields are encoded positionally
//   - Sum: an interface type with an explicitly registered set of
//     variant struct types
//
// Go interfaces cannot enumerate their implementations, so sums are
// declared through a [Registry]: each variant struct type is registered
// together with an optional path template. Shape discovery then walks
// types with reflection, resolving interface-typed fields against the
// same registry so that nested and self-referential sums work.
//
// # Path templates
//
// A variant's path template is a slash-separated pattern where each
// fragment is a literal, a `{field}` parameter, or a trailing `{*field}`
// rest parameter bound to a slice- or string-typed field:
//
//	"user/{id}"
//	"files/{*segments}"
//
// Templates come from the registration call, from a PathTemplate() string
// method on the variant type, or, when neither is present, from the
// default pattern: the variant type name followed by one parameter per
// exported field in declaration order. The empty template (declared as ""
// or "/") matches the root path.
//
// Template validation is strict and happens at shape construction:
// every parameter must name an existing field, no field may be referenced
// twice, templates that reference some but not all fields are rejected,
// and a rest parameter must be the final fragment.
//
// Shape values are immutable once built. A Registry is not safe for
// concurrent use during construction; the shapes it produces are safe
// for unlimited concurrent reads afterward.
package shape
