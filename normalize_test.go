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

func TestNormalizeLowercasesSchemeAndHost(t *testing.T) {
	v, err := Parse("HTTP://EXAMPLE.COM/path")
	require.NoError(t, err)

	n, err := v.Normalize()
	require.NoError(t, err)
	require.Equal(t, "http://example.com/path", n.String())
}

func TestNormalizeDecodesUnreservedEscapes(t *testing.T) {
	v, err := Parse("http://example.com/%7Euser/%41%42")
	require.NoError(t, err)

	n, err := v.Normalize()
	require.NoError(t, err)
	require.Equal(t, "http://example.com/~user/AB", n.String())
}

func TestNormalizeCanonicalizesEscapeHexCase(t *testing.T) {
	v, err := Parse("http://example.com/a%2fb")
	require.NoError(t, err)

	n, err := v.Normalize()
	require.NoError(t, err)
	require.Equal(t, "http://example.com/a%2Fb", n.String())

	nLower, err := v.Normalize(WithLowerCaseEscapes(true))
	require.NoError(t, err)
	require.Equal(t, "http://example.com/a%2fb", nLower.String())
}

func TestNormalizeLeavesIPLiteralHostAlone(t *testing.T) {
	v, err := Parse("http://[::1]/path")
	require.NoError(t, err)

	n, err := v.Normalize()
	require.NoError(t, err)
	require.Equal(t, "http://[::1]/path", n.String())
}

func TestNormalizeRemovesDotSegments(t *testing.T) {
	v, err := Parse("http://example.com/a/b/../c")
	require.NoError(t, err)

	n, err := v.Normalize()
	require.NoError(t, err)
	require.Equal(t, "http://example.com/a/c", n.String())
}

func TestNormalizeForcesSlashPathWhenAuthorityPresent(t *testing.T) {
	v, err := Parse("http://example.com")
	require.NoError(t, err)

	n, err := v.Normalize()
	require.NoError(t, err)
	require.Equal(t, "http://example.com/", n.String())
}

func TestNormalizePreservesQueryAndFragment(t *testing.T) {
	v, err := Parse("http://example.com/path?A=%61#%46rag")
	require.NoError(t, err)

	n, err := v.Normalize()
	require.NoError(t, err)
	require.Equal(t, "http://example.com/path?A=a#Frag", n.String())
}
