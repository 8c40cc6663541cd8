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

func TestValidateScheme(t *testing.T) {
	require.NoError(t, ValidateScheme("https"))
	require.NoError(t, ValidateScheme("z39.50"))
	require.Error(t, ValidateScheme(""))
	require.Error(t, ValidateScheme("1http"))
	require.Error(t, ValidateScheme("http:"))
}

func TestValidatePort(t *testing.T) {
	n, err := ValidatePort("8080")
	require.NoError(t, err)
	require.Equal(t, 8080, n)

	n, err = ValidatePort("")
	require.NoError(t, err)
	require.Equal(t, 0, n)

	_, err = ValidatePort("99999")
	require.Error(t, err)

	_, err = ValidatePort("8a80")
	require.Error(t, err)
}

func TestParseHost(t *testing.T) {
	text, ht, _, err := ParseHost("example.com")
	require.NoError(t, err)
	require.Equal(t, "example.com", text)
	require.Equal(t, HostName, ht)

	text, ht, addr, err := ParseHost("127.0.0.1")
	require.NoError(t, err)
	require.Equal(t, "127.0.0.1", text)
	require.Equal(t, HostIPv4, ht)
	require.Equal(t, "127.0.0.1", FormatIPv4([4]byte{addr[12], addr[13], addr[14], addr[15]}))

	text, ht, addr, err = ParseHost("[::1]")
	require.NoError(t, err)
	require.Equal(t, "::1", text)
	require.Equal(t, HostIPv6, ht)
	require.Equal(t, "[::1]", FormatIPv6(addr))

	_, _, _, err = ParseHost("exa mple.com")
	require.Error(t, err)
}
