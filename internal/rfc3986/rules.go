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
	"github.com/uriproto/uri/internal/charset"
	"github.com/uriproto/uri/internal/grammar"
)

// schemeRule matches ALPHA *( ALPHA / DIGIT / "+" / "-" / "." ), the
// character-level scheme production of RFC 3986 §3.1. It does not look for
// the trailing ':'; the caller does that, since the same character run can
// also be the start of a relative-path reference.
func schemeRule(in *grammar.Input) (string, error) {
	start := in.Pos()
	b, ok := in.Peek()
	if !ok || !charset.Alpha.Contains(b) {
		return "", grammar.At(grammar.KindBadSchemeStart, start)
	}
	in.Advance(1)
	for {
		c, ok := in.Peek()
		if !ok || !charset.Scheme.Contains(c) {
			break
		}
		in.Advance(1)
	}
	return in.SliceFrom(start), nil
}

// userinfoRule matches userinfo = *( unreserved / pct-encoded / sub-delims / ":" ).
var userinfoRule = grammar.PctEncodedToken(charset.Userinfo)

// regNameRule matches reg-name = *( unreserved / pct-encoded / sub-delims ).
var regNameRule = grammar.PctEncodedToken(charset.RegName)

// singleDigit matches exactly one DIGIT and returns it.
func singleDigit(in *grammar.Input) (byte, error) {
	c, ok := in.Peek()
	if !ok || !charset.Digit.Contains(c) {
		return 0, grammar.At(grammar.KindBadIPv4, in.Pos())
	}
	in.Advance(1)
	return c, nil
}

// decOctetRule matches dec-octet: 1-3 DIGIT with value 0..255 and no
// leading zero in a multi-digit octet.
func decOctetRule(in *grammar.Input) (byte, error) {
	start := in.Pos()
	digits, err := grammar.Repeat[byte](nil, singleDigit, 1, 3)(in)
	if err != nil {
		return 0, err
	}
	if len(digits) > 1 && digits[0] == '0' {
		in.Seek(start)
		return 0, grammar.At(grammar.KindBadIPv4, start)
	}
	val := 0
	for _, d := range digits {
		val = val*10 + int(d-'0')
	}
	if val > 255 {
		in.Seek(start)
		return 0, grammar.At(grammar.KindBadIPv4, start)
	}
	return byte(val), nil
}

// ipv4AddressRule matches IPv4address = dec-octet "." dec-octet "." dec-octet "." dec-octet,
// returning the four octets.
func ipv4AddressRule(in *grammar.Input) ([4]byte, error) {
	start := in.Pos()
	var out [4]byte
	for i := 0; i < 4; i++ {
		if i > 0 {
			if err := grammar.Delim('.')(in); err != nil {
				in.Seek(start)
				return out, grammar.At(grammar.KindBadIPv4, start)
			}
		}
		b, err := decOctetRule(in)
		if err != nil {
			in.Seek(start)
			return out, grammar.At(grammar.KindBadIPv4, start)
		}
		out[i] = b
	}
	return out, nil
}
