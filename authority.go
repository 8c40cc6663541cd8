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

// Authority is the sub-view over "[userinfo \"@\"] host [\":\" port]"
// (spec §4.5: "Authority exposes a sub-view that presents
// userinfo/host/port without the surrounding scheme/path context"),
// grounded on the teacher's splitAuthority
// (_examples/jplu-trident/iri/autority.go), generalized here to a view
// backed directly by the shared ComponentIndex rather than re-splitting a
// substring.
type Authority struct {
	buf string
	ix  *rfc3986.Index
}

// ParseAuthority validates s as a standalone authority production
// ("[userinfo \"@\"] host [\":\" port]", no leading "//" and no
// path/query/fragment) and returns its sub-view, for callers that hold an
// authority string on its own rather than as part of a full URI reference.
func ParseAuthority(s string) (*Authority, error) {
	ix, err := rfc3986.Parse(s, rfc3986.KindAuthority)
	if err != nil {
		return nil, wrapErr(err)
	}
	return &Authority{buf: s, ix: ix}, nil
}

// prefixLen is how many leading bytes of the User slot are the "//" that
// introduces an embedded authority; a bare authority parsed on its own
// (IsAuthorityOnly) carries no such prefix.
func (a Authority) prefixLen() int {
	if a.ix.IsAuthorityOnly {
		return 0
	}
	return 2
}

// String returns the authority's encoded form, "//" not included.
func (a Authority) String() string {
	return a.buf[a.ix.Off[rfc3986.SlotUser]+a.prefixLen() : a.ix.Off[rfc3986.SlotPath]]
}

// HasUserinfo reports whether an unescaped "@" was present.
func (a Authority) HasUserinfo() bool { return a.ix.HasUserinfo }

// User returns the encoded username, or "" if absent.
func (a Authority) User() string {
	if !a.ix.HasUserinfo {
		return ""
	}
	raw := a.ix.SliceStr(a.buf, rfc3986.SlotUser)
	return raw[a.prefixLen():]
}

// HasPassword reports whether the userinfo carried a ":password" part.
func (a Authority) HasPassword() bool { return a.ix.HasPassword }

// Password returns the encoded password, or "" if absent.
func (a Authority) Password() string {
	if !a.ix.HasPassword {
		return ""
	}
	raw := a.ix.SliceStr(a.buf, rfc3986.SlotPass)
	return raw[1 : len(raw)-1]
}

// HostType reports which alternative of the host production matched.
func (a Authority) HostType() HostType { return a.ix.HostType }

// Host returns the encoded host substring, brackets included for an
// IP-literal.
func (a Authority) Host() string { return a.ix.SliceStr(a.buf, rfc3986.SlotHost) }

// HostDecoded returns the percent-decoded host.
func (a Authority) HostDecoded() (string, error) {
	if a.ix.HostType != rfc3986.HostName {
		return a.Host(), nil
	}
	s, err := pct.DecodeString(a.Host(), pct.Default)
	if err != nil {
		return "", wrapErr(err)
	}
	return s, nil
}

// IP returns the 16-byte address form of the host when HostType is
// HostIPv4 or HostIPv6.
func (a Authority) IP() [16]byte { return a.ix.IP }

// HasPort reports whether a ":port" part was present, even an empty one.
func (a Authority) HasPort() bool { return a.ix.HasPort }

// Port returns the port's decimal digits, or "" if absent.
func (a Authority) Port() string {
	if !a.ix.HasPort {
		return ""
	}
	raw := a.ix.SliceStr(a.buf, rfc3986.SlotPort)
	return raw[1:]
}

// PortNumber returns the port's numeric value (0 if absent or empty).
func (a Authority) PortNumber() int { return a.ix.PortNumber }
