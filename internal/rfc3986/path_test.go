/*
Copyright 2025 Trident Authors

Licensed under the Apache License, Version 2.0 (the "License");
you may not use this file except in compliance with the License.
You may obtain a copy of the License at

    http://www.apache.org/licenses/LICENSE-2.0

Unless required by applicable law or agreed to in writing, software
distributed under the License is distributed on an "AS IS" BASIS,
WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
See the License for the specific language governing permissions and
limitations under the License.
*/

package rfc3986

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestRemoveDotSegments(t *testing.T) {
	cases := map[string]string{
		"/a/b/c/./../../g": "/a/g",
		"mid/content=5/../6": "mid/6",
		"/./a":             "/a",
		"/a/./":            "/a/",
		"/a/..":            "/",
		"/a/../..":         "/",
		".":                "",
		"..":               "",
	}
	for in, want := range cases {
		require.Equal(t, want, RemoveDotSegments(in), "input %q", in)
	}
}

func TestMergePaths(t *testing.T) {
	require.Equal(t, "/g", MergePaths(true, "", "g"))
	require.Equal(t, "/a/b/g", MergePaths(false, "/a/b/c", "g"))
	require.Equal(t, "g", MergePaths(false, "", "g"))
}

func TestSplitJoinSegmentsAbsolute(t *testing.T) {
	segs := SplitSegments("/a/b/c", true)
	require.Equal(t, []string{"a", "b", "c"}, segs)

	out, err := JoinSegments(segs, true)
	require.NoError(t, err)
	require.Equal(t, "/a/b/c", out)
}

func TestSplitJoinSegmentsAbsoluteEmpty(t *testing.T) {
	segs := SplitSegments("/", true)
	require.Nil(t, segs)

	out, err := JoinSegments(segs, true)
	require.NoError(t, err)
	require.Equal(t, "/", out)
}

func TestSplitJoinSegmentsSingleEmptySegment(t *testing.T) {
	// "//" is path-absolute's own "/" (contributing no segment) followed by
	// path-abempty's "/" + an empty segment: one segment total, not two.
	segs := SplitSegments("//", true)
	require.Equal(t, []string{""}, segs)

	out, err := JoinSegments(segs, true)
	require.NoError(t, err)
	require.Equal(t, "//", out)
}

func TestSplitJoinSegmentsLeadingEmptySegment(t *testing.T) {
	// A leading empty segment ahead of "a" needs a third slash: the
	// path-absolute slash, the empty segment's slash, then "a"'s slash.
	segs := SplitSegments("///a", true)
	require.Equal(t, []string{"", "a"}, segs)

	out, err := JoinSegments(segs, true)
	require.NoError(t, err)
	require.Equal(t, "///a", out)
	require.Equal(t, segs, SplitSegments(out, true))
}

func TestSplitJoinSegmentsRelative(t *testing.T) {
	segs := SplitSegments("a/b", false)
	require.Equal(t, []string{"a", "b"}, segs)

	out, err := JoinSegments(segs, false)
	require.NoError(t, err)
	require.Equal(t, "a/b", out)
}

func TestJoinSegmentsRelativeRejectsLeadingEmpty(t *testing.T) {
	_, err := JoinSegments([]string{"", "a"}, false)
	require.Error(t, err)
}

func TestJoinSegmentsEmptyList(t *testing.T) {
	out, err := JoinSegments(nil, true)
	require.NoError(t, err)
	require.Equal(t, "/", out)

	out, err = JoinSegments(nil, false)
	require.NoError(t, err)
	require.Equal(t, "", out)
}

func TestSplitSegmentsEmptyPath(t *testing.T) {
	require.Nil(t, SplitSegments("", true))
	require.Nil(t, SplitSegments("", false))
}
