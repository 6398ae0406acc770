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

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type appState struct {
	Current Page
	Theme   string
}

type setPage struct {
	Page Page
}

func pageRouter(t *testing.T) *Router[appState, setPage] {
	t.Helper()
	return NewRouter(pageCodec(t),
		func(s appState) Page { return s.Current },
		func(p Page) setPage { return setPage{Page: p} },
	)
}

func TestRouterEncode(t *testing.T) {
	r := pageRouter(t)

	assert.Equal(t, "/", r.Encode(appState{Current: Home{}}))
	assert.Equal(t, "/user/42", r.Encode(appState{Current: User{ID: 42}, Theme: "dark"}))
}

func TestRouterDecode(t *testing.T) {
	r := pageRouter(t)

	msg, ok := r.Decode("/user/42")
	require.True(t, ok)
	assert.Equal(t, setPage{Page: User{ID: 42}}, msg)

	msg, ok = r.Decode("/")
	require.True(t, ok)
	assert.Equal(t, setPage{Page: Home{}}, msg)

	_, ok = r.Decode("/user/42/extra")
	assert.False(t, ok)
}

func TestRouterStateRoundTrip(t *testing.T) {
	r := pageRouter(t)

	state := appState{Current: UserPost{ID: 9, Slug: "go-generics"}}
	path := r.Encode(state)

	msg, ok := r.Decode(path)
	require.True(t, ok)
	assert.Equal(t, state.Current, msg.Page)
}

func TestNewRouterNilArguments(t *testing.T) {
	c := pageCodec(t)

	assert.Panics(t, func() {
		NewRouter[appState, setPage, Page](nil, nil, nil)
	})
	assert.Panics(t, func() {
		NewRouter(c, (func(appState) Page)(nil), func(p Page) setPage { return setPage{Page: p} })
	})
	assert.Panics(t, func() {
		NewRouter(c, func(s appState) Page { return s.Current }, (func(Page) setPage)(nil))
	})
}
