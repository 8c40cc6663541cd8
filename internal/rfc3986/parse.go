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
	"strings"

	"github.com/uriproto/uri/internal/charset"
	"github.com/uriproto/uri/internal/grammar"
	"github.com/uriproto/uri/internal/pct"
)

var queryRule = grammar.PctEncodedToken(charset.Query)
var fragmentRule = grammar.PctEncodedToken(charset.Fragment)

// Parse validates raw against the production selected by kind and returns
// its populated ComponentIndex. The returned Index's offsets are positions
// within raw itself: Parse never rewrites or re-encodes input, which is
// what gives the library its round-trip contract (spec §6: "url(s).buffer()
// == s byte-for-byte").
func Parse(raw string, kind Kind) (*Index, error) {
	ix := &Index{}
	in := grammar.NewInput(raw)

	switch kind {
	case KindAuthority:
		ix.IsAuthorityOnly = true
		ix.HasAuthority = true
		ix.Off[SlotUser] = 0
		if err := parseAuthority(in, ix, 0); err != nil {
			return nil, err
		}
		ix.Off[SlotPath] = in.Pos()
		ix.Off[SlotQuery] = in.Pos()
		ix.Off[SlotFrag] = in.Pos()
		ix.Off[SlotEnd] = in.Pos()
		if !in.Done() {
			return nil, grammar.At(grammar.KindLeftoverInput, in.Pos())
		}
		return ix, nil

	case KindOriginForm:
		ix.Off[SlotUser] = 0
		ix.Off[SlotPass] = 0
		ix.Off[SlotHost] = 0
		ix.Off[SlotPort] = 0
		pathStart := in.Pos()
		nseg, err := pathAbsolute(in)
		if err != nil {
			return nil, err
		}
		ix.NSeg = nseg
		ix.IsAbsolutePath = true
		ix.Off[SlotPath] = pathStart
		if err := finishCommon(in, ix, false); err != nil {
			return nil, err
		}
		return ix, nil
	}

	hasScheme, err := parseOptionalScheme(in, ix, kind)
	if err != nil {
		return nil, err
	}
	if !hasScheme && kind == KindURI {
		return nil, grammar.At(grammar.KindBadSchemeStart, 0)
	}
	if hasScheme && kind == KindRelativeRef {
		return nil, grammar.At(grammar.KindInvalid, 0)
	}

	if err := parseHierPart(in, ix, hasScheme); err != nil {
		return nil, err
	}

	noFragment := kind == KindAbsoluteURI
	if err := finishCommon(in, ix, noFragment); err != nil {
		return nil, err
	}
	return ix, nil
}

// parseOptionalScheme attempts "ALPHA *schemeChar ':'" at the start of the
// input. It succeeds with hasScheme=false, leaving the cursor untouched, if
// no scheme is present (a relative reference).
func parseOptionalScheme(in *grammar.Input, ix *Index, kind Kind) (bool, error) {
	start := in.Pos()
	text, err := schemeRule(in)
	if err != nil {
		in.Seek(start)
		ix.Off[SlotScheme] = start
		return false, nil
	}
	if c, ok := in.Peek(); !ok || c != ':' {
		in.Seek(start)
		ix.Off[SlotScheme] = start
		return false, nil
	}
	in.Advance(1)
	ix.HasScheme = true
	ix.SchemeID = ClassifyScheme(text)
	ix.Off[SlotScheme] = start
	ix.Off[SlotUser] = in.Pos()
	return true, nil
}

// parseHierPart parses hier-part (or relative-part when !hasScheme):
// "//" authority path-abempty / path-absolute / path-rootless /
// path-noscheme / path-empty.
func parseHierPart(in *grammar.Input, ix *Index, hasScheme bool) error {
	if !ix.HasScheme {
		ix.Off[SlotUser] = in.Pos()
	}
	userStart := in.Pos()
	base := userStart

	if in.StartsWith("//") {
		in.Advance(2)
		ix.HasAuthority = true
		ix.Off[SlotUser] = userStart
		afterSlashes := in.Pos()
		if err := parseAuthority(in, ix, afterSlashes); err != nil {
			return err
		}
		pathStart := in.Pos()
		nseg, err := pathAbempty(in)
		if err != nil {
			return err
		}
		ix.NSeg = nseg
		ix.IsAbsolutePath = true
		ix.Off[SlotPath] = pathStart
		return nil
	}

	// No authority: user/pass/host/port are all empty, sitting at `base`.
	ix.Off[SlotPass] = base
	ix.Off[SlotHost] = base
	ix.Off[SlotPort] = base
	ix.Off[SlotPath] = base

	c, ok := in.Peek()
	switch {
	case !ok || c == '?' || c == '#':
		// path-empty
		ix.NSeg = 0
		ix.IsAbsolutePath = false
		return nil
	case c == '/':
		nseg, err := pathAbsolute(in)
		if err != nil {
			return err
		}
		ix.NSeg = nseg
		ix.IsAbsolutePath = true
		return nil
	default:
		var nseg int
		var err error
		if hasScheme {
			nseg, err = pathRootless(in)
		} else {
			nseg, err = pathNoscheme(in)
		}
		if err != nil {
			return err
		}
		ix.NSeg = nseg
		ix.IsAbsolutePath = false
		return nil
	}
}

// finishCommon parses the optional "?" query and "#" fragment and fills the
// End slot, then checks for any unparsed leftover input.
func finishCommon(in *grammar.Input, ix *Index, noFragment bool) error {
	ix.Off[SlotQuery] = in.Pos()
	if c, ok := in.Peek(); ok && c == '?' {
		in.Advance(1)
		text, err := queryRule(in)
		if err != nil {
			return err
		}
		ix.HasQuery = true
		ix.NParam = countParams(text)
		if n, derr := pct.DecodedSize(text, pct.Default); derr == nil {
			ix.DecodedQueryLen = n
		}
	}
	ix.Off[SlotFrag] = in.Pos()

	if !noFragment {
		if c, ok := in.Peek(); ok && c == '#' {
			in.Advance(1)
			text, err := fragmentRule(in)
			if err != nil {
				return err
			}
			ix.HasFragment = true
			if n, derr := pct.DecodedSize(text, pct.Default); derr == nil {
				ix.DecodedFragLen = n
			}
		}
	}
	ix.Off[SlotEnd] = in.Pos()

	if !in.Done() {
		return grammar.At(grammar.KindLeftoverInput, in.Pos())
	}

	if n, derr := pct.DecodedSize(ix.SliceStr(in.Full(), SlotPath), pct.Default); derr == nil {
		ix.DecodedPathLen = n
	}
	return nil
}

// countParams returns nparam for a query substring (without the leading
// "?"), per spec §4.4: an absent query is 0 params, a present-but-empty
// query is 1 (the single empty-keyed parameter), and otherwise it's the
// number of "&"-separated pairs.
func countParams(query string) int {
	if query == "" {
		return 1
	}
	return strings.Count(query, "&") + 1
}

// CountParams exports countParams for use by the edit engine's SetQuery,
// so a freshly assigned query string gets the same nparam a reparse of it
// would produce.
func CountParams(query string) int { return countParams(query) }
