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
)

func TestInputCursor(t *testing.T) {
	in := NewInput("abc")
	require.Equal(t, 0, in.Pos())
	require.Equal(t, 3, in.Len())
	require.False(t, in.Done())

	c, ok := in.Peek()
	require.True(t, ok)
	require.Equal(t, byte('a'), c)

	c, ok = in.PeekAt(2)
	require.True(t, ok)
	require.Equal(t, byte('c'), c)

	_, ok = in.PeekAt(5)
	require.False(t, ok)

	in.Advance(1)
	require.Equal(t, 1, in.Pos())
	require.Equal(t, "bc", in.Rest())

	require.True(t, in.StartsWith("bc"))
	require.False(t, in.StartsWith("xyz"))

	start := in.Pos()
	in.Advance(2)
	require.True(t, in.Done())
	require.Equal(t, "bc", in.SliceFrom(start))

	in.Seek(0)
	require.Equal(t, 0, in.Pos())
	require.Equal(t, "abc", in.Full())
}
