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

package endpoint

// Router binds a [Codec] to application state: it derives the current URL
// path from a state value and turns a navigated path into a message for
// the application's update loop.
//
// A Router holds no mutable state and is safe for concurrent use.
type Router[S, M any] struct {
	encode func(S) string
	decode func(string) (M, bool)
}

// NewRouter pairs a codec with two pure accessors: endpointOf extracts
// the routable endpoint value from the full application state, and msgOf
// converts a decoded endpoint into a message. Both must be non-nil;
// passing nil is a programming error and panics.
//
// Example:
//
//	r := endpoint.NewRouter(codec,
//	    func(s AppState) Page { return s.Current },
//	    func(p Page) Msg { return SetPage{Page: p} },
//	)
//	r.Encode(state)        // "/user/42"
//	r.Decode("/user/42")   // SetPage{User{ID: 42}}, true
func NewRouter[S, M, E any](c *Codec[E], endpointOf func(S) E, msgOf func(E) M) *Router[S, M] {
	if c == nil {
		panic("endpoint.NewRouter: nil codec")
	}
	if endpointOf == nil || msgOf == nil {
		panic("endpoint.NewRouter: nil accessor")
	}
	return &Router[S, M]{
		encode: func(s S) string { return c.Encode(endpointOf(s)) },
		decode: func(path string) (M, bool) {
			e, ok := c.Decode(path)
			if !ok {
				var zero M
				return zero, false
			}
			return msgOf(e), true
		},
	}
}

// Encode derives the URL path reflecting the given state.
func (r *Router[S, M]) Encode(state S) string {
	return r.encode(state)
}

// Decode turns a navigated path into a message, reporting false for a
// path that matches no endpoint. Callers typically fall back to a default
// page on a miss.
func (r *Router[S, M]) Decode(path string) (M, bool) {
	return r.decode(path)
}
