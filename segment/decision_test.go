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
	"reflect"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"rivaas.dev/endpoint/shape"
)

// Test fixture: a page sum with literal, parametric, and rest templates.
type page interface{ page() }

type home struct{}

type about struct{}

type user struct {
	ID int
}

type userPost struct {
	ID   int
	Post string
}

type files struct {
	Segments []string
}

type docs struct {
	Path string
}

func (home) page()     {}
func (about) page()    {}
func (user) page()     {}
func (userPost) page() {}
func (files) page()    {}
func (docs) page()     {}

// variantSpec registers one variant with an optional template.
type variantSpec struct {
	proto    any
	template string
}

func buildSum[T any](specs ...variantSpec) (Segment, error) {
	reg := shape.NewRegistry()
	for _, s := range specs {
		if err := reg.Register(s.proto, s.template, s.template != ""); err != nil {
			return nil, err
		}
	}
	sh, err := reg.Of(reflect.TypeFor[T]())
	if err != nil {
		return nil, err
	}
	return NewBuilder().Segment(sh)
}

func mustBuildSum[T any](t *testing.T, specs ...variantSpec) Segment {
	t.Helper()
	seg, err := buildSum[T](specs...)
	require.NoError(t, err)
	return seg
}

// parseSum decodes the fragments the way the top-level decoder does,
// requiring the parse to consume every fragment, and unwraps the boxed
// interface value.
func parseSum(t *testing.T, seg Segment, in []string) (any, bool) {
	t.Helper()
	v, rest, ok := seg.Parse(in)
	if !ok || len(rest) != 0 {
		return nil, false
	}
	return v.Interface(), true
}

func pageSum(t *testing.T) Segment {
	t.Helper()
	return mustBuildSum[page](t,
		variantSpec{home{}, "/"},
		variantSpec{about{}, "about"},
		variantSpec{user{}, "user/{ID}"},
		variantSpec{userPost{}, "user/{ID}/post/{Post}"},
		variantSpec{files{}, "files/{*Segments}"},
	)
}

func TestSumParseLiterals(t *testing.T) {
	seg := pageSum(t)

	v, ok := parseSum(t, seg, nil)
	require.True(t, ok)
	assert.Equal(t, home{}, v)

	v, ok = parseSum(t, seg, []string{"about"})
	require.True(t, ok)
	assert.Equal(t, about{}, v)
}

func TestSumParseSharedPrefix(t *testing.T) {
	seg := pageSum(t)

	// "user" is a shared literal prefix; "{ID}" a shared parameter
	// position feeding both user and userPost.
	v, ok := parseSum(t, seg, []string{"user", "42"})
	require.True(t, ok)
	assert.Equal(t, user{ID: 42}, v)

	v, ok = parseSum(t, seg, []string{"user", "42", "post", "intro"})
	require.True(t, ok)
	assert.Equal(t, userPost{ID: 42, Post: "intro"}, v)
}

func TestSumParseMisses(t *testing.T) {
	seg := pageSum(t)

	for _, in := range [][]string{
		{"nope"},
		{"user"},                       // missing parameter
		{"user", "abc"},                // parameter fails lexically
		{"user", "1", "post"},          // incomplete deeper template
		{"about", "extra"},             // trailing fragment after a full match
		{"user", "1", "comments", "2"}, // unknown branch under shared prefix
	} {
		_, ok := parseSum(t, seg, in)
		assert.False(t, ok, "%v", in)
	}
}

func TestSumRestGreediness(t *testing.T) {
	seg := pageSum(t)

	v, ok := parseSum(t, seg, []string{"files", "a", "b", "c"})
	require.True(t, ok)
	assert.Equal(t, files{Segments: []string{"a", "b", "c"}}, v)

	// Empty remainder binds an empty sequence.
	v, ok = parseSum(t, seg, []string{"files"})
	require.True(t, ok)
	assert.Equal(t, files{Segments: []string{}}, v)
}

func TestSumRestOverString(t *testing.T) {
	seg := mustBuildSum[page](t,
		variantSpec{docs{}, "docs/{*Path}"},
	)

	v, ok := parseSum(t, seg, []string{"docs", "guides", "intro"})
	require.True(t, ok)
	assert.Equal(t, docs{Path: "guides/intro"}, v)

	v, ok = parseSum(t, seg, []string{"docs"})
	require.True(t, ok)
	assert.Equal(t, docs{Path: ""}, v)

	frags := seg.Append(nil, reflect.ValueOf(page(docs{Path: "guides/intro"})))
	assert.Equal(t, []string{"docs", "guides", "intro"}, frags)

	frags = seg.Append(nil, reflect.ValueOf(page(docs{Path: ""})))
	assert.Equal(t, []string{"docs"}, frags)
}

func TestSumWrite(t *testing.T) {
	seg := pageSum(t)

	tests := []struct {
		value    page
		expected []string
	}{
		{home{}, nil},
		{about{}, []string{"about"}},
		{user{ID: 7}, []string{"user", "7"}},
		{userPost{ID: 7, Post: "a"}, []string{"user", "7", "post", "a"}},
		{files{Segments: []string{"x", "y"}}, []string{"files", "x", "y"}},
		{files{}, []string{"files"}},
	}

	for _, tt := range tests {
		frags := seg.Append(nil, reflect.ValueOf(tt.value))
		assert.Equal(t, tt.expected, frags, "%#v", tt.value)
	}
}

func TestSumRoundTrip(t *testing.T) {
	seg := pageSum(t)

	for _, v := range []page{
		home{},
		about{},
		user{ID: -3},
		userPost{ID: 1, Post: "hello"},
		files{Segments: []string{"a", "b"}},
	} {
		frags := seg.Append(nil, reflect.ValueOf(v))
		got, ok := parseSum(t, seg, frags)
		require.True(t, ok, "%#v", v)
		assert.Equal(t, v, got)
	}
}

func TestSumLiteralMatchCommits(t *testing.T) {
	// "detail" matches the literal edge, so the parameter alternative is
	// never retried even though {Name} could have accepted "detail".
	type show struct{ Name string }
	type detail struct{}
	ifaceSeg := mustBuildSum[any](t,
		variantSpec{show{}, "item/{Name}"},
		variantSpec{detail{}, "item/detail"},
	)

	v, ok := parseSum(t, ifaceSeg, []string{"item", "detail"})
	require.True(t, ok)
	assert.Equal(t, detail{}, v)

	v, ok = parseSum(t, ifaceSeg, []string{"item", "other"})
	require.True(t, ok)
	assert.Equal(t, show{Name: "other"}, v)
}

func TestSumParseLeavesRemainder(t *testing.T) {
	// A sum accepted mid-path hands the unconsumed fragments back to the
	// caller. The top-level decoder rejects them, but a sequence of sums
	// relies on the remainder to keep consuming elements.
	seg := pageSum(t)

	v, rest, ok := seg.Parse([]string{"about", "extra"})
	require.True(t, ok)
	assert.Equal(t, about{}, v.Interface())
	assert.Equal(t, []string{"extra"}, rest)

	v, rest, ok = seg.Parse([]string{"user", "7", "about"})
	require.True(t, ok)
	assert.Equal(t, user{ID: 7}, v.Interface())
	assert.Equal(t, []string{"about"}, rest)
}

func TestSumOverlappingVariantsRejected(t *testing.T) {
	type a struct{}
	type b struct{}

	_, err := buildSum[any](
		variantSpec{a{}, "same/path"},
		variantSpec{b{}, "same/path"},
	)
	assert.ErrorIs(t, err, ErrOverlappingVariants)
}

func TestSumParameterConflictRejected(t *testing.T) {
	type byID struct{ ID int }
	type byName struct{ Name string }

	// Same position, different field types.
	_, err := buildSum[any](
		variantSpec{byID{}, "item/{ID}"},
		variantSpec{byName{}, "item/{Name}"},
	)
	assert.ErrorIs(t, err, ErrParameterConflict)
}

func TestSumBasicVersusRestConflictRejected(t *testing.T) {
	type one struct{ Name string }
	type many struct{ Names []string }

	_, err := buildSum[any](
		variantSpec{one{}, "x/{Name}"},
		variantSpec{many{}, "x/{*Names}"},
	)
	assert.ErrorIs(t, err, ErrParameterConflict)
}

func TestSumSharedParameterRecordsAllContributors(t *testing.T) {
	type edit struct{ ID int }
	type view struct{ ID int }

	seg := mustBuildSum[any](t,
		variantSpec{edit{}, "doc/{ID}/edit"},
		variantSpec{view{}, "doc/{ID}"},
	)

	v, ok := parseSum(t, seg, []string{"doc", "9", "edit"})
	require.True(t, ok)
	assert.Equal(t, edit{ID: 9}, v)

	v, ok = parseSum(t, seg, []string{"doc", "9"})
	require.True(t, ok)
	assert.Equal(t, view{ID: 9}, v)
}

func TestSumSequenceFieldNonRest(t *testing.T) {
	type batch struct{ IDs []int }

	seg := mustBuildSum[any](t,
		variantSpec{batch{}, "batch/{IDs}"},
	)

	frags := seg.Append(nil, reflect.ValueOf(any(batch{IDs: []int{1, 2}})))
	assert.Equal(t, []string{"batch", "2", "1", "2"}, frags)

	v, ok := parseSum(t, seg, frags)
	require.True(t, ok)
	assert.Equal(t, batch{IDs: []int{1, 2}}, v)

	// Count beyond the available fragments must miss.
	_, ok = parseSum(t, seg, []string{"batch", "3", "1", "2"})
	assert.False(t, ok)
}

func TestSumWriteUnregisteredVariantPanics(t *testing.T) {
	seg := pageSum(t)
	type stranger struct{}

	assert.Panics(t, func() {
		seg.Append(nil, reflect.ValueOf(any(stranger{})))
	})
}
