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

package pct

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/uriproto/uri/internal/charset"
)

func TestEncodeDecodeString(t *testing.T) {
	t.Run("reserved chars get escaped", func(t *testing.T) {
		got := EncodeString("a b/c", charset.Unreserved, Default)
		require.Equal(t, "a%20b%2Fc", got)
	})

	t.Run("round-trips through decode", func(t *testing.T) {
		enc := EncodeString("hello world!", charset.Unreserved, Default)
		dec, err := DecodeString(enc, Default)
		require.NoError(t, err)
		require.Equal(t, "hello world!", dec)
	})

	t.Run("lowercase hex digits", func(t *testing.T) {
		got := EncodeString("/", charset.Unreserved, Options{LowerCase: true})
		require.Equal(t, "%2f", got)
	})

	t.Run("space as plus", func(t *testing.T) {
		got := EncodeString("a b", charset.Func(func(c byte) bool { return c != ' ' }), Options{SpaceAsPlus: true})
		require.Equal(t, "a+b", got)
	})
}

func TestDecodeStringErrors(t *testing.T) {
	t.Run("incomplete escape", func(t *testing.T) {
		_, err := DecodeString("a%2", Default)
		require.Error(t, err)
		var pe *Error
		require.ErrorAs(t, err, &pe)
		require.Equal(t, KindIncompleteEncoding, pe.Kind)
	})

	t.Run("bad hex digit", func(t *testing.T) {
		_, err := DecodeString("%zz", Default)
		require.Error(t, err)
		var pe *Error
		require.ErrorAs(t, err, &pe)
		require.Equal(t, KindBadHexDigit, pe.Kind)
	})

	t.Run("illegal null rejected by default", func(t *testing.T) {
		_, err := DecodeString("%00", Default)
		require.Error(t, err)
		var pe *Error
		require.ErrorAs(t, err, &pe)
		require.Equal(t, KindIllegalNull, pe.Kind)
	})

	t.Run("null allowed when requested", func(t *testing.T) {
		dec, err := DecodeString("%00", Options{AllowNull: true})
		require.NoError(t, err)
		require.Equal(t, "\x00", dec)
	})

	t.Run("plus to space", func(t *testing.T) {
		dec, err := DecodeString("a+b", Options{PlusToSpace: true})
		require.NoError(t, err)
		require.Equal(t, "a b", dec)
	})
}

func TestValidate(t *testing.T) {
	t.Run("accepts already-encoded text", func(t *testing.T) {
		n, err := Validate("a%20b", charset.Unreserved, Default)
		require.NoError(t, err)
		require.Equal(t, 3, n)
	})

	t.Run("rejects a raw disallowed octet", func(t *testing.T) {
		_, err := Validate("a b", charset.Unreserved, Default)
		require.Error(t, err)
		var pe *Error
		require.ErrorAs(t, err, &pe)
		require.Equal(t, KindIllegalReservedChar, pe.Kind)
	})
}

func TestReEncode(t *testing.T) {
	t.Run("canonicalizes hex case without changing what's escaped", func(t *testing.T) {
		dst := make([]byte, 16)
		n, err := ReEncode(dst, "a%2fb", charset.Unreserved, Default)
		require.NoError(t, err)
		require.Equal(t, "a%2Fb", string(dst[:n]))
	})

	t.Run("insufficient space", func(t *testing.T) {
		dst := make([]byte, 1)
		_, err := ReEncode(dst, "%2f", charset.Unreserved, Default)
		require.Error(t, err)
		var pe *Error
		require.ErrorAs(t, err, &pe)
		require.Equal(t, KindNoSpace, pe.Kind)
	})
}

func TestReEncodeUnsafe(t *testing.T) {
	require.Equal(t, "a%2Fb", ReEncodeUnsafe("a%2fb", Default))
	require.Equal(t, "a%2fB", ReEncodeUnsafe("a%2FB", Options{LowerCase: true}))
}

func TestCompareDecoded(t *testing.T) {
	require.Equal(t, 0, CompareDecoded("a%20b", "a b", Default))
	require.Equal(t, -1, CompareDecoded("a", "b", Default))
	require.Equal(t, 1, CompareDecoded("ab", "a", Default))
}

func TestCICompareDecoded(t *testing.T) {
	require.Equal(t, 0, CICompareDecoded("A%20B", "a b", Default))
	require.NotEqual(t, 0, CompareDecoded("A%20B", "a b", Default))
}

func TestStartsWithDecoded(t *testing.T) {
	require.Equal(t, 5, StartsWithDecoded("a%20bc", "a b", Default))
	require.Equal(t, 0, StartsWithDecoded("abc", "xyz", Default))
}

func TestEncodedSizeAndDecodedSize(t *testing.T) {
	require.Equal(t, 9, EncodedSize("a b/c", charset.Unreserved, Default))
	n, err := DecodedSize("a%20b", Default)
	require.NoError(t, err)
	require.Equal(t, 3, n)
}
