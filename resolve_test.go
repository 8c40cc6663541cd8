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

package uri

import (
	"testing"

	"github.com/stretchr/testify/require"
)

// TestResolveReferenceExamples exercises RFC 3986 §5.4.1's normal
// resolution examples against the fixed base "http://a/b/c/d;p?q".
func TestResolveReferenceExamples(t *testing.T) {
	const base = "http://a/b/c/d;p?q"

	cases := map[string]string{
		"g:h":     "g:h",
		"g":       "http://a/b/c/g",
		"./g":     "http://a/b/c/g",
		"g/":      "http://a/b/c/g/",
		"/g":      "http://a/g",
		"//g":     "http://g",
		"?y":      "http://a/b/c/d;p?y",
		"g?y":     "http://a/b/c/g?y",
		"#s":      "http://a/b/c/d;p?q#s",
		"g#s":     "http://a/b/c/g#s",
		"g?y#s":   "http://a/b/c/g?y#s",
		";x":      "http://a/b/c/;x",
		"g;x":     "http://a/b/c/g;x",
		"g;x?y#s": "http://a/b/c/g;x?y#s",
		"":        "http://a/b/c/d;p?q",
		".":       "http://a/b/c/",
		"./":      "http://a/b/c/",
		"..":      "http://a/b/",
		"../":     "http://a/b/",
		"../g":    "http://a/b/g",
		"../..":   "http://a/",
		"../../":  "http://a/",
		"../../g": "http://a/g",
	}

	for ref, want := range cases {
		got, err := ResolveString(base, ref)
		require.NoErrorf(t, err, "resolving %q", ref)
		require.Equalf(t, want, got, "resolving %q", ref)
	}
}

func TestResolveRequiresSchemeBase(t *testing.T) {
	base, err := Parse("/no/scheme")
	require.NoError(t, err)
	ref, err := Parse("g")
	require.NoError(t, err)

	_, err = Resolve(base, ref)
	require.Error(t, err)
	var e *Error
	require.ErrorAs(t, err, &e)
	require.Equal(t, KindNotABase, e.Kind)
}

func TestResolveAuthorityReference(t *testing.T) {
	base, err := ParseURI("http://a/b/c/d;p?q")
	require.NoError(t, err)
	ref, err := Parse("//g/h")
	require.NoError(t, err)

	out, err := Resolve(base, ref)
	require.NoError(t, err)
	require.Equal(t, "http://g/h", out.String())
	require.Equal(t, "http", out.Scheme())
}
