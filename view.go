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
	"github.com/uriproto/uri/internal/pct"
	"github.com/uriproto/uri/internal/rfc3986"
)

// HostType discriminates which alternative of the host production matched
// a View's or URL's host component.
type HostType = rfc3986.HostType

const (
	HostNone      = rfc3986.HostNone
	HostName      = rfc3986.HostName
	HostIPv4      = rfc3986.HostIPv4
	HostIPv6      = rfc3986.HostIPv6
	HostIPvFuture = rfc3986.HostIPvFuture
)

// SchemeID classifies a View's or URL's scheme against a small well-known
// set, ASCII case-insensitively.
type SchemeID = rfc3986.SchemeID

const (
	SchemeNone    = rfc3986.SchemeNone
	SchemeHTTP    = rfc3986.SchemeHTTP
	SchemeHTTPS   = rfc3986.SchemeHTTPS
	SchemeWS      = rfc3986.SchemeWS
	SchemeWSS     = rfc3986.SchemeWSS
	SchemeFTP     = rfc3986.SchemeFTP
	SchemeFile    = rfc3986.SchemeFile
	SchemeUnknown = rfc3986.SchemeUnknown
)

// View is a read-only, parsed URI reference over a borrowed string: a
// ComponentIndex paired with the buffer it was computed from (spec §3's
// "URL view" entity). View never copies or owns buf; the caller must
// ensure buf outlives the View, mirroring the teacher's Ref holding the
// exact input string it was parsed from
// (_examples/jplu-trident/iri/iri.go's Ref).
type View struct {
	buf string
	ix  *rfc3986.Index
}

// Parse parses s as a URI-reference (variant_rule(URI, relative-ref) per
// spec §4.4), the most permissive top-level production.
func Parse(s string) (*View, error) {
	return parseView(s, rfc3986.KindURIReference)
}

// ParseURI requires s to be an absolute URI (scheme required).
func ParseURI(s string) (*View, error) {
	return parseView(s, rfc3986.KindURI)
}

// ParseRelativeRef requires s to be a relative reference (no scheme).
func ParseRelativeRef(s string) (*View, error) {
	return parseView(s, rfc3986.KindRelativeRef)
}

// ParseAbsoluteURI requires s to be a URI without a fragment.
func ParseAbsoluteURI(s string) (*View, error) {
	return parseView(s, rfc3986.KindAbsoluteURI)
}

// ParseOriginForm requires s to be path-absolute ["?" query], the form
// used by an HTTP request target.
func ParseOriginForm(s string) (*View, error) {
	return parseView(s, rfc3986.KindOriginForm)
}

func parseView(s string, kind rfc3986.Kind) (*View, error) {
	ix, err := rfc3986.Parse(s, kind)
	if err != nil {
		return nil, wrapErr(err)
	}
	return &View{buf: s, ix: ix}, nil
}

// String returns the exact buffer the View was parsed from. Spec §6's
// round-trip contract guarantees parsing this string again succeeds and
// reproduces an equal component index.
func (v *View) String() string { return v.buf }

// HasScheme reports whether the URI reference has a scheme component.
func (v *View) HasScheme() bool { return v.ix.HasScheme }

// Scheme returns the scheme (without its trailing ":"), or "" if absent.
func (v *View) Scheme() string {
	if !v.ix.HasScheme {
		return ""
	}
	raw := v.ix.SliceStr(v.buf, rfc3986.SlotScheme)
	return raw[:len(raw)-1]
}

// SchemeID returns the well-known classification of the scheme.
func (v *View) SchemeID() SchemeID { return v.ix.SchemeID }

// HasAuthority reports whether the URI reference has an authority
// component (introduced by "//").
func (v *View) HasAuthority() bool { return v.ix.HasAuthority }

// Authority returns the authority sub-view and whether one was present.
func (v *View) Authority() (Authority, bool) {
	if !v.ix.HasAuthority {
		return Authority{}, false
	}
	return Authority{buf: v.buf, ix: v.ix}, true
}

// HasUserinfo reports whether the authority has a userinfo component
// (i.e. an unescaped "@" was present in the authority).
func (v *View) HasUserinfo() bool { return v.ix.HasUserinfo }

// User returns the (still encoded) username, or "" if absent.
func (v *View) User() string {
	if !v.ix.HasUserinfo {
		return ""
	}
	raw := v.ix.SliceStr(v.buf, rfc3986.SlotUser)
	return raw[2:] // strip the leading "//"
}

// HasPassword reports whether the userinfo carried a ":password" part.
func (v *View) HasPassword() bool { return v.ix.HasPassword }

// Password returns the (still encoded) password, or "" if absent.
func (v *View) Password() string {
	if !v.ix.HasPassword {
		return ""
	}
	raw := v.ix.SliceStr(v.buf, rfc3986.SlotPass)
	return raw[1 : len(raw)-1] // strip leading ":" and trailing "@"
}

// HostType reports which alternative of the host production matched.
func (v *View) HostType() HostType { return v.ix.HostType }

// Host returns the encoded host substring, brackets included for an
// IP-literal (IPv6 or IPvFuture).
func (v *View) Host() string { return v.ix.SliceStr(v.buf, rfc3986.SlotHost) }

// HostDecoded returns the percent-decoded host. IP hosts have no
// percent-encoding to decode and are returned verbatim (brackets
// included).
func (v *View) HostDecoded() (string, error) {
	if v.ix.HostType != rfc3986.HostName {
		return v.Host(), nil
	}
	s, err := pct.DecodeString(v.Host(), pct.Default)
	if err != nil {
		return "", wrapErr(err)
	}
	return s, nil
}

// IP returns the 16-byte address form of the host when HostType is
// HostIPv4 (IPv4-mapped) or HostIPv6.
func (v *View) IP() [16]byte { return v.ix.IP }

// HasPort reports whether the authority had a ":port" part, even an
// empty one ("host:" has_port=true, port_number=0).
func (v *View) HasPort() bool { return v.ix.HasPort }

// Port returns the port's decimal digits, or "" if absent.
func (v *View) Port() string {
	if !v.ix.HasPort {
		return ""
	}
	raw := v.ix.SliceStr(v.buf, rfc3986.SlotPort)
	return raw[1:] // strip leading ":"
}

// PortNumber returns the port's numeric value (0 if absent or empty).
func (v *View) PortNumber() int { return v.ix.PortNumber }

// Path returns the raw, still-encoded path component. It is always
// present, though it may be empty.
func (v *View) Path() string { return v.ix.SliceStr(v.buf, rfc3986.SlotPath) }

// PathDecoded returns the percent-decoded path.
func (v *View) PathDecoded() (string, error) {
	s, err := pct.DecodeString(v.Path(), pct.Default)
	if err != nil {
		return "", wrapErr(err)
	}
	return s, nil
}

// IsAbsolutePath reports whether the path begins with "/".
func (v *View) IsAbsolutePath() bool { return v.ix.IsAbsolutePath }

// Segments returns the lazy segment view over the path.
func (v *View) Segments() Segments { return Segments{path: v.Path(), absolute: v.ix.IsAbsolutePath, nseg: v.ix.NSeg} }

// HasQuery reports whether the URI reference has a query component
// (a "?" was present, possibly followed by nothing).
func (v *View) HasQuery() bool { return v.ix.HasQuery }

// Query returns the encoded query substring without the leading "?", or
// "" if absent.
func (v *View) Query() string {
	if !v.ix.HasQuery {
		return ""
	}
	raw := v.ix.SliceStr(v.buf, rfc3986.SlotQuery)
	return raw[1:]
}

// Params returns the lazy parameter view over the query.
func (v *View) Params() Params { return Params{query: v.Query(), has: v.ix.HasQuery, nparam: v.ix.NParam} }

// HasFragment reports whether the URI reference has a fragment
// component.
func (v *View) HasFragment() bool { return v.ix.HasFragment }

// Fragment returns the encoded fragment substring without the leading
// "#", or "" if absent.
func (v *View) Fragment() string {
	if !v.ix.HasFragment {
		return ""
	}
	raw := v.ix.SliceStr(v.buf, rfc3986.SlotFrag)
	return raw[1:]
}

// FragmentDecoded returns the percent-decoded fragment.
func (v *View) FragmentDecoded() (string, error) {
	if !v.ix.HasFragment {
		return "", nil
	}
	s, err := pct.DecodeString(v.Fragment(), pct.Default)
	if err != nil {
		return "", wrapErr(err)
	}
	return s, nil
}
