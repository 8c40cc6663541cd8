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

	"github.com/uriproto/uri/internal/charset"
	"github.com/uriproto/uri/internal/grammar"
)

// ipvFutureRule matches IPvFuture = "v" 1*HEXDIG "." 1*( unreserved / sub-delims / ":" ),
// returning the matched text (without brackets).
func ipvFutureRule(in *grammar.Input) (string, error) {
	start := in.Pos()
	c, ok := in.Peek()
	if !ok || (c != 'v' && c != 'V') {
		return "", grammar.At(grammar.KindBadIPv6, start)
	}
	in.Advance(1)
	hexStart := in.Pos()
	for {
		b, ok := in.Peek()
		if !ok || !charset.HexDigit.Contains(b) {
			break
		}
		in.Advance(1)
	}
	if in.Pos() == hexStart {
		in.Seek(start)
		return "", grammar.At(grammar.KindBadIPv6, start)
	}
	if err := grammar.Delim('.')(in); err != nil {
		in.Seek(start)
		return "", grammar.At(grammar.KindBadIPv6, start)
	}
	tailStart := in.Pos()
	ipvFutureTail := charset.NewMask(func(c byte) bool {
		return charset.Unreserved.Contains(c) || charset.SubDelims.Contains(c) || c == ':'
	})
	for {
		b, ok := in.Peek()
		if !ok || !ipvFutureTail.Contains(b) {
			break
		}
		in.Advance(1)
	}
	if in.Pos() == tailStart {
		in.Seek(start)
		return "", grammar.At(grammar.KindBadIPv6, start)
	}
	return in.SliceFrom(start), nil
}

// ipLiteralRule matches IP-literal = "[" ( IPv6address / IPvFuture ) "]",
// returning the text inside the brackets, whether it was IPv6 or IPvFuture,
// and the 16-byte address when IPv6.
func ipLiteralRule(in *grammar.Input) (text string, isFuture bool, addr [16]byte, err error) {
	start := in.Pos()
	if e := grammar.Delim('[')(in); e != nil {
		return "", false, addr, grammar.At(grammar.KindBadIPv6, start)
	}
	inner := in.Pos()
	closeIdx := -1
	for i := inner; i < len(in.Full()); i++ {
		if in.Full()[i] == ']' {
			closeIdx = i
			break
		}
	}
	if closeIdx < 0 {
		in.Seek(start)
		return "", false, addr, grammar.At(grammar.KindBadIPv6, start)
	}
	body := in.Full()[inner:closeIdx]
	if len(body) > 0 && (body[0] == 'v' || body[0] == 'V') {
		sub := grammar.NewInput(body)
		if _, e := ipvFutureRule(sub); e != nil || !sub.Done() {
			in.Seek(start)
			return "", false, addr, grammar.At(grammar.KindBadIPv6, inner)
		}
		in.Seek(closeIdx + 1)
		return body, true, addr, nil
	}
	a, e := netip.ParseAddr(body)
	if e != nil || !a.Is6() {
		in.Seek(start)
		return "", false, addr, grammar.At(grammar.KindBadIPv6, inner)
	}
	in.Seek(closeIdx + 1)
	return body, false, a.As16(), nil
}

// hostRule matches host = IP-literal / IPv4address / reg-name, tie-breaking
// in that order as spec §4.4 requires ("Host classification tie-breaks in
// the order IP-literal, IPv4address, reg-name").
func hostRule(in *grammar.Input) (text string, ht HostType, addr [16]byte, err error) {
	if c, ok := in.Peek(); ok && c == '[' {
		t, isFuture, a, e := ipLiteralRule(in)
		if e != nil {
			return "", HostNone, addr, e
		}
		if isFuture {
			return t, HostIPvFuture, addr, nil
		}
		return t, HostIPv6, a, nil
	}

	start := in.Pos()
	if octets, e := ipv4AddressRule(in); e == nil {
		// IPv4address only matches if nothing else follows that would make
		// this actually a reg-name (e.g. "1.2.3.4.com"); reg-name is a
		// superset of IPv4's character class, so if more reg-name
		// characters remain right after, re-try as reg-name instead.
		if c, ok := in.Peek(); !ok || !charset.RegName.Contains(c) {
			var a [16]byte
			copy(a[12:], octets[:])
			return in.SliceFrom(start), HostIPv4, a, nil
		}
		in.Seek(start)
	}

	name, _ := regNameRule(in)
	return name, HostName, addr, nil
}
