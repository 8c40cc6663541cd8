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

package charset

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestUnreserved(t *testing.T) {
	for _, c := range []byte("abcZAZ09-._~") {
		require.Truef(t, Unreserved.Contains(c), "expected %q unreserved", c)
	}
	for _, c := range []byte(":/?#[]@!$&'()*+,;=") {
		require.Falsef(t, Unreserved.Contains(c), "expected %q reserved", c)
	}
}

func TestPCharExcludesSlash(t *testing.T) {
	require.False(t, PChar.Contains('/'))
	require.True(t, PChar.Contains(':'))
	require.True(t, PChar.Contains('@'))
}

func TestQueryIncludesSlashAndQuestion(t *testing.T) {
	require.True(t, Query.Contains('/'))
	require.True(t, Query.Contains('?'))
	require.Same(t, Fragment, Query)
}

func TestUserinfoNoColonExcludesColon(t *testing.T) {
	require.True(t, Userinfo.Contains(':'))
	require.False(t, UserinfoNoColon.Contains(':'))
}

func TestQueryKeyAndValue(t *testing.T) {
	require.False(t, QueryKey.Contains('&'))
	require.False(t, QueryKey.Contains('='))
	require.False(t, QueryValue.Contains('&'))
	require.True(t, QueryValue.Contains('='))
}

func TestFindIf(t *testing.T) {
	s := []byte("abc/def")
	require.Equal(t, 3, FindIf(s, Func(func(c byte) bool { return c == '/' })))
	require.Equal(t, len(s), FindIf(s, Func(func(c byte) bool { return c == 'z' })))
}

func TestFindIfNot(t *testing.T) {
	s := []byte("aaab")
	require.Equal(t, 3, FindIfNot(s, Func(func(c byte) bool { return c == 'a' })))
}

func TestIsHexDigitAndHexVal(t *testing.T) {
	require.True(t, IsHexDigit('a'))
	require.True(t, IsHexDigit('F'))
	require.True(t, IsHexDigit('9'))
	require.False(t, IsHexDigit('g'))
	require.Equal(t, byte(10), HexVal('a'))
	require.Equal(t, byte(15), HexVal('F'))
	require.Equal(t, byte(9), HexVal('9'))
}

func TestMaskOr(t *testing.T) {
	a := NewMask(func(c byte) bool { return c == 'x' })
	b := NewMask(func(c byte) bool { return c == 'y' })
	combined := a.Or(b)
	require.True(t, combined.Contains('x'))
	require.True(t, combined.Contains('y'))
	require.False(t, combined.Contains('z'))
}
