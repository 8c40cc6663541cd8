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

package grammar

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/uriproto/uri/internal/charset"
)

func TestLiteralAndDelim(t *testing.T) {
	in := NewInput("http://x")
	require.NoError(t, Literal("http")(in))
	require.Equal(t, 4, in.Pos())

	require.Error(t, Delim('/')(NewInput("x")))
	in2 := NewInput("//x")
	require.NoError(t, Delim('/')(in2))
	require.Equal(t, 1, in2.Pos())
}

func TestLiteralRewindsOnFailure(t *testing.T) {
	in := NewInput("ftp://x")
	err := Literal("http")(in)
	require.Error(t, err)
	require.Equal(t, 0, in.Pos())
}

func TestToken(t *testing.T) {
	alpha := charset.Func(func(c byte) bool { return c >= 'a' && c <= 'z' })
	in := NewInput("abc123")
	tok, err := Token(alpha)(in)
	require.NoError(t, err)
	require.Equal(t, "abc", tok)
	require.Equal(t, 3, in.Pos())
}

func TestNotEmptyToken(t *testing.T) {
	alpha := charset.Func(func(c byte) bool { return c >= 'a' && c <= 'z' })
	_, err := NotEmptyToken(alpha)(NewInput("123"))
	require.Error(t, err)

	tok, err := NotEmptyToken(alpha)(NewInput("abc"))
	require.NoError(t, err)
	require.Equal(t, "abc", tok)
}

func TestPctEncodedToken(t *testing.T) {
	rule := PctEncodedToken(charset.Unreserved)
	in := NewInput("abc%20def?rest")
	tok, err := rule(in)
	require.NoError(t, err)
	require.Equal(t, "abc%20def", tok)
	require.Equal(t, "?rest", in.Rest())
}

func TestOptional(t *testing.T) {
	digit := charset.Func(func(c byte) bool { return c >= '0' && c <= '9' })
	opt := Optional(NotEmptyToken(digit))

	in := NewInput("abc")
	v, err := opt(in)
	require.NoError(t, err)
	require.False(t, v.Present)
	require.Equal(t, 0, in.Pos())

	in2 := NewInput("123abc")
	v2, err := opt(in2)
	require.NoError(t, err)
	require.True(t, v2.Present)
	require.Equal(t, "123", v2.Value)
}

func TestSequence(t *testing.T) {
	in := NewInput("http://")
	err := Sequence(Literal("http"), Delim(':'), Literal("//"))(in)
	require.NoError(t, err)
	require.True(t, in.Done())
}

func TestSequenceRewindsOnFailure(t *testing.T) {
	in := NewInput("http:/x")
	err := Sequence(Literal("http"), Delim(':'), Literal("//"))(in)
	require.Error(t, err)
	require.Equal(t, 0, in.Pos())
}

func TestVariant(t *testing.T) {
	digit := NotEmptyToken(charset.Func(func(c byte) bool { return c >= '0' && c <= '9' }))
	alpha := NotEmptyToken(charset.Func(func(c byte) bool { return c >= 'a' && c <= 'z' }))
	rule := Variant(digit, alpha)

	tok, err := rule(NewInput("abc"))
	require.NoError(t, err)
	require.Equal(t, "abc", tok)

	tok, err = rule(NewInput("123"))
	require.NoError(t, err)
	require.Equal(t, "123", tok)

	_, err = rule(NewInput("!!!"))
	require.Error(t, err)
}

func TestRepeat(t *testing.T) {
	digit := charset.Func(func(c byte) bool { return c >= '0' && c <= '9' })
	rule := RepeatCount(NotEmptyToken(digit), 1, -1)

	values, err := rule(NewInput("123abc"))
	require.NoError(t, err)
	require.Equal(t, []string{"123"}, values)

	_, err = rule(NewInput("abc"))
	require.Error(t, err)

	_, err = rule(NewInput(""))
	require.Error(t, err)
}

func TestRepeatCount(t *testing.T) {
	slash := Sequence(Delim('/'), Squelch(NotEmptyToken(charset.Func(func(c byte) bool { return c == 'x' }))))
	rule := RepeatCount(func(in *Input) (struct{}, error) {
		return struct{}{}, slash(in)
	}, 0, -1)

	in := NewInput("/x/x/xz")
	out, err := rule(in)
	require.NoError(t, err)
	require.Len(t, out, 3)
	require.Equal(t, "z", in.Rest())
}
