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
	"net/netip"

	"github.com/uriproto/uri/internal/grammar"
)

// ValidateScheme checks that s is a complete, valid scheme (without its
// trailing ":"), for use by the edit engine's SetScheme.
func ValidateScheme(s string) error {
	in := grammar.NewInput(s)
	if _, err := schemeRule(in); err != nil {
		return err
	}
	if !in.Done() {
		return grammar.At(grammar.KindBadSchemeChar, in.Pos())
	}
	return nil
}

// ValidatePort checks that s is all-decimal and fits in 16 bits, for use
// by the edit engine's SetPort. An empty string is a valid, zero-value
// port (spec §4.4: "an empty port with a present ':' is a distinct
// state").
func ValidatePort(s string) (int, error) {
	val := 0
	for i := 0; i < len(s); i++ {
		c := s[i]
		if c < '0' || c > '9' {
			return 0, grammar.At(grammar.KindBadPortChar, i)
		}
		val = val*10 + int(c-'0')
		if val > 65535 {
			return 0, grammar.At(grammar.KindPortOverflow, i)
		}
	}
	return val, nil
}

// ParseHost validates s as a complete host production (IP-literal /
// IPv4address / reg-name), for use by the edit engine's SetHost.
func ParseHost(s string) (string, HostType, [16]byte, error) {
	in := grammar.NewInput(s)
	text, ht, addr, err := hostRule(in)
	if err != nil {
		return "", HostNone, addr, err
	}
	if !in.Done() {
		return "", HostNone, addr, grammar.At(grammar.KindBadAuthority, in.Pos())
	}
	return text, ht, addr, nil
}

// FormatIPv4 renders the 4-byte IPv4 address b as dotted-quad text.
func FormatIPv4(b [4]byte) string {
	return netip.AddrFrom4(b).String()
}

// FormatIPv6 renders a 16-byte address as a bracketed IP-literal.
func FormatIPv6(b [16]byte) string {
	return "[" + netip.AddrFrom16(b).String() + "]"
}
