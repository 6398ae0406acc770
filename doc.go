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

// Package endpoint maps structured endpoint values to and from URL paths.
//
// An endpoint type is an interface with a registered set of variant
// structs. Each variant declares, or has inferred, a slash-separated path
// template; the package derives, once, a pair of functions that write a
// value into path fragments and parse path fragments back into a value.
// Application state can then be mirrored into a navigable URL and
// recovered from it with a guaranteed round trip.
//
// # Quick Start
//
//	type Page interface{ page() }
//
//	type Home struct{}
//	type User struct{ ID int }
//	type Files struct{ Segments []string }
//
//	func (Home) page()  {}
//	func (User) page()  {}
//	func (Files) page() {}
//
//	c := endpoint.MustNewCodec[Page](
//	    endpoint.WithVariant(Home{}, "/"),
//	    endpoint.WithVariant(User{}, "user/{ID}"),
//	    endpoint.WithVariant(Files{}, "files/{*Segments}"),
//	)
//
//	c.Encode(User{ID: 42})   // "/user/42"
//	c.Decode("/files/a/b")   // Files{Segments: []string{"a", "b"}}, true
//	c.Decode("/user/oops")   // nil, false
//
// Variants may also implement [shape.PathTemplater] instead of passing a
// template at registration, and variants registered without any template
// encode as their type name followed by their fields in declaration
// order.
//
// # Construction versus runtime
//
// All configuration problems, such as two variants claiming the same
// path, a template referencing a missing field, or parameters at the same
// position disagreeing on type, fail [NewCodec] immediately. At runtime a
// non-matching path is an ordinary miss reported as a false boolean, and
// encoding never fails for a registered variant value.
//
// Decode requires the entire path to be consumed: a path whose prefix
// matches a shorter variant but which carries trailing fragments yields
// no result.
//
// Codecs are immutable after construction and safe for concurrent use.
//
// # Escaping
//
// The codec neither percent-encodes nor decodes fragments. Apply
// url.PathEscape/PathUnescape around Encode and Decode when fragment
// values may contain reserved characters.
//
// # State integration
//
// [NewRouter] pairs a codec with two accessors, state to endpoint and
// endpoint to message, giving the encode(state) and decode(path) surface
// a state-driven UI or any other navigation consumer needs.
package endpoint
