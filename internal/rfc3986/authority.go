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
	"github.com/uriproto/uri/internal/pct"
)

// parseAuthority matches authority = [ userinfo "@" ] host [ ":" port ] and
// fills the User/Pass/Host/Port slots of ix starting at base (the offset
// right after the "//" that was already consumed into the User slot).
func parseAuthority(in *grammar.Input, ix *Index, base int) error {
	start := in.Pos()

	// Userinfo is ambiguous with host up to the first unescaped "@": scan
	// ahead for "@" within the authority's extent (bounded by "/", "?", "#",
	// or end of input) before committing to parsing it as userinfo.
	authEnd := authorityExtent(in)
	atIdx := -1
	for i := start; i < authEnd; i++ {
		c := in.Full()[i]
		if c == '@' {
			atIdx = i
			break
		}
		if c == '[' {
			// An IP-literal's contents are scanned like any other byte;
			// this is safe because '@' is not legal inside a valid literal.
		}
	}

	ix.Off[SlotPass] = base
	if atIdx >= 0 {
		ix.HasUserinfo = true
		ix.HasAuthority = true
		userText := in.Full()[start:atIdx]
		sub := grammar.NewInput(userText)
		if _, err := userinfoRule(sub); err != nil || !sub.Done() {
			return grammar.At(grammar.KindBadAuthority, start)
		}
		if colon := indexByte(userText, ':'); colon >= 0 {
			ix.HasPassword = true
			ix.Off[SlotPass] = start + colon
		} else {
			ix.Off[SlotPass] = atIdx
		}
		in.Seek(atIdx + 1)
	}

	hostStart := in.Pos()
	text, ht, addr, err := hostRule(in)
	if err != nil {
		return err
	}
	ix.HostType = ht
	ix.IP = addr
	if n, derr := pct.DecodedSize(text, pct.Default); derr == nil {
		ix.DecodedHostLen = n
	} else {
		ix.DecodedHostLen = len(text)
	}
	ix.Off[SlotHost] = hostStart
	ix.Off[SlotPort] = in.Pos()

	if c, ok := in.Peek(); ok && c == ':' {
		in.Advance(1)
		portStart := in.Pos()
		for {
			c, ok := in.Peek()
			if !ok || !charset.Digit.Contains(c) {
				break
			}
			in.Advance(1)
		}
		portText := in.SliceFrom(portStart)
		ix.HasPort = true
		if len(portText) > 0 {
			val := 0
			overflow := false
			for i := 0; i < len(portText); i++ {
				val = val*10 + int(portText[i]-'0')
				if val > 65535 {
					overflow = true
				}
			}
			if overflow {
				return grammar.At(grammar.KindPortOverflow, portStart)
			}
			ix.PortNumber = val
		}
	}
	ix.Off[SlotPath] = in.Pos()
	return nil
}

// authorityExtent returns the absolute offset where the authority
// production must end: the first '/', '?', '#' at or after the cursor, or
// the end of input.
func authorityExtent(in *grammar.Input) int {
	s := in.Full()
	for i := in.Pos(); i < len(s); i++ {
		switch s[i] {
		case '/', '?', '#':
			return i
		}
	}
	return len(s)
}

