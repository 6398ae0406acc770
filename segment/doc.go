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

// Package segment derives bidirectional codecs between typed values and
// runs of slash-delimited path fragments.
//
// A [Segment] pairs a parser, which consumes a prefix of an input fragment
// list or reports a mismatch, with a writer, which appends a value's
// fragments to an output list. Parsing never panics on malformed input;
// a non-matching path is an ordinary miss, not an error.
//
// Segments are derived from [shape.Shape] values by a [Builder]:
//
//   - primitives consume exactly one fragment in strconv canonical form
//   - sequences write an element count followed by flattened elements
//   - products concatenate their fields positionally
//   - sums compile every variant's path template into a single decision
//     tree so that variants sharing a literal or parametric prefix are
//     parsed through one shared decision per fragment
//
// The decision tree mirrors the routing tree used for HTTP dispatch:
// ordered literal edges scanned linearly, at most one parameter child per
// node, and at most one variant accepted at any node. Overlaps that would
// make parsing ambiguous, such as two variants terminating at the same
// path or parameters at the same position disagreeing on field type or
// rest capture, are rejected while the tree is built, never at parse time.
//
// The Builder caches one segment per type and installs a forward
// placeholder before recursing, so self-referential types build in finite
// time. Construction is single-threaded; the segments it produces are
// immutable and safe for unlimited concurrent use.
package segment
