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
	"errors"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestParseErrorIsExportedKind(t *testing.T) {
	_, err := ParseURI("/no/scheme")
	require.Error(t, err)

	var e *Error
	require.ErrorAs(t, err, &e)
	require.Equal(t, KindBadSchemeStart, e.Kind)
}

func TestErrorIsMatchesByKind(t *testing.T) {
	_, err := ParseURI("/no/scheme")
	require.Error(t, err)
	require.True(t, errors.Is(err, &Error{Kind: KindBadSchemeStart}))
	require.False(t, errors.Is(err, &Error{Kind: KindBadIPv4}))
}

func TestPercentDecodeErrorWrapped(t *testing.T) {
	v, err := Parse("/path%00bad")
	require.NoError(t, err)

	_, err = v.PathDecoded()
	require.Error(t, err)
	var e *Error
	require.ErrorAs(t, err, &e)
	require.Equal(t, KindIllegalNull, e.Kind)
}

func TestMustParsePanicsOnInvalid(t *testing.T) {
	require.Panics(t, func() {
		MustParse("http://[bad")
	})
}

func TestMustParseSucceeds(t *testing.T) {
	require.NotPanics(t, func() {
		v := MustParse("http://example.com/")
		require.Equal(t, "http", v.Scheme())
	})
}
