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
	"strings"

	"github.com/uriproto/uri/internal/charset"
	"github.com/uriproto/uri/internal/pct"
	"github.com/uriproto/uri/internal/rfc3986"
)

// pathCharset is pchar widened by "/", the character class a full path
// (as opposed to a single segment) is built from.
var pathCharset = charset.PChar.Or(charset.NewMask(func(c byte) bool { return c == '/' }))

// NormalizeOption tunes Normalize, following the teacher's functional-
// option pattern (`_examples/fredbi-uri/options.go`'s `Option`/`options`),
// narrowed to the one knob spec §4.7 names for normalization instead of
// the teacher's full validation-tolerance surface.
type NormalizeOption func(*normalizeConfig)

type normalizeConfig struct {
	lowerCase bool
}

func applyNormalizeOptions(opts []NormalizeOption) normalizeConfig {
	var cfg normalizeConfig
	for _, apply := range opts {
		apply(&cfg)
	}
	return cfg
}

// WithLowerCaseEscapes emits lowercase hex digits in any escape that
// survives unreserved-octet decoding, instead of the canonical uppercase.
func WithLowerCaseEscapes(enabled bool) NormalizeOption {
	return func(c *normalizeConfig) { c.lowerCase = enabled }
}

// Normalize applies RFC 3986 §6.2.2's syntax-based normalization and
// returns a new, freshly parsed View: the scheme and any reg-name host are
// lowercased, percent-encoded octets that decode to an unreserved
// character are un-escaped, remaining escapes are canonicalized to a
// consistent hex case, and the path has its dot-segments removed.
//
// Grounded on the teacher's (*Ref).Normalize (_examples/jplu-trident/iri/
// iri.go), with its IDNA and Unicode-NFC steps dropped (this package is
// RFC 3986 ASCII URIs, not RFC 3987 IRIs) and normalizePercentEncoding/
// normalizeHostAndPort's case folding reimplemented directly against this
// package's ComponentIndex and pct codec rather than the teacher's
// string-splitting helpers.
func (v *View) Normalize(opts ...NormalizeOption) (*View, error) {
	cfg := applyNormalizeOptions(opts)
	popt := pct.Options{LowerCase: cfg.lowerCase}

	var b strings.Builder

	if v.ix.HasScheme {
		b.WriteString(strings.ToLower(v.Scheme()))
		b.WriteByte(':')
	}

	path := v.Path()

	if v.ix.HasAuthority {
		b.WriteString("//")
		if v.ix.HasUserinfo {
			u, err := normalizeEscapes(v.User(), charset.UserinfoNoColon, popt)
			if err != nil {
				return nil, wrapErr(err)
			}
			b.WriteString(u)
			if v.ix.HasPassword {
				p, err := normalizeEscapes(v.Password(), charset.Userinfo, popt)
				if err != nil {
					return nil, wrapErr(err)
				}
				b.WriteByte(':')
				b.WriteString(p)
			}
			b.WriteByte('@')
		}
		if v.ix.HostType == rfc3986.HostName {
			h, err := normalizeEscapesLower(v.Host(), charset.RegName, popt)
			if err != nil {
				return nil, wrapErr(err)
			}
			b.WriteString(h)
		} else {
			b.WriteString(v.Host())
		}
		if v.ix.HasPort {
			b.WriteByte(':')
			b.WriteString(v.Port())
		}
		if path == "" {
			path = "/"
		}
	}

	normPath, err := normalizeEscapes(path, pathCharset, popt)
	if err != nil {
		return nil, wrapErr(err)
	}
	b.WriteString(rfc3986.RemoveDotSegments(normPath))

	if v.ix.HasQuery {
		q, err := normalizeEscapes(v.Query(), charset.Query, popt)
		if err != nil {
			return nil, wrapErr(err)
		}
		b.WriteByte('?')
		b.WriteString(q)
	}

	if v.ix.HasFragment {
		f, err := normalizeEscapes(v.Fragment(), charset.Fragment, popt)
		if err != nil {
			return nil, wrapErr(err)
		}
		b.WriteByte('#')
		b.WriteString(f)
	}

	return parseView(b.String(), rfc3986.KindURIReference)
}

// normalizeEscapes walks an already-encoded component and decodes any
// percent-triplet whose octet is unreserved back to its literal form,
// leaving every other octet (literal or escaped) as-is apart from
// canonicalizing the escape's hex digit case. Grounded on the teacher's
// normalizePercentEncoding (_examples/jplu-trident/iri/encoding.go),
// generalized to validate against the component's own charset rather than
// assuming the input is already well-formed.
func normalizeEscapes(s string, cset charset.Set, opt pct.Options) (string, error) {
	return normalizeEscapesCase(s, cset, opt, false)
}

// normalizeEscapesLower is normalizeEscapes with ASCII-lowercasing applied
// to literal (non-escaped) octets, for reg-name hosts: RFC 3986 §6.2.2.1
// case-folds the host but must not touch an escape triplet's own hex
// digits, which are governed by opt.LowerCase instead.
func normalizeEscapesLower(s string, cset charset.Set, opt pct.Options) (string, error) {
	return normalizeEscapesCase(s, cset, opt, true)
}

func normalizeEscapesCase(s string, cset charset.Set, opt pct.Options, lowerLiteral bool) (string, error) {
	if _, err := pct.Validate(s, cset, opt); err != nil {
		return "", err
	}
	hexUpper := "0123456789ABCDEF"
	hexLower := "0123456789abcdef"
	hexDigits := hexUpper
	if opt.LowerCase {
		hexDigits = hexLower
	}

	var b strings.Builder
	b.Grow(len(s))
	for i := 0; i < len(s); {
		if s[i] == '%' {
			hi, lo := s[i+1], s[i+2]
			val := charset.HexVal(hi)<<4 | charset.HexVal(lo)
			if charset.Unreserved.Contains(val) {
				if lowerLiteral {
					val = lowerASCIIByte(val)
				}
				b.WriteByte(val)
			} else {
				b.WriteByte('%')
				b.WriteByte(hexDigits[val>>4])
				b.WriteByte(hexDigits[val&0xF])
			}
			i += 3
			continue
		}
		c := s[i]
		if lowerLiteral {
			c = lowerASCIIByte(c)
		}
		b.WriteByte(c)
		i++
	}
	return b.String(), nil
}

func lowerASCIIByte(c byte) byte {
	if c >= 'A' && c <= 'Z' {
		return c + ('a' - 'A')
	}
	return c
}
