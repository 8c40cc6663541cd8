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

// Package rfc3986 builds the RFC 3986 grammar productions on top of
// internal/grammar and internal/charset, and maintains the ComponentIndex
// fixed-slot offset table spec §3 and §4.5 describe. It is the leaf above
// Grammar in the dependency order given by spec §2
// (CharSet -> PctCodec -> Grammar -> URI Rules -> ComponentIndex).
package rfc3986

// Slot names one of the nine offset boundaries of a parsed URI reference,
// in serial order. Component i's substring is buffer[Off[i]:Off[i+1]].
type Slot int

const (
	SlotScheme Slot = iota
	SlotUser
	SlotPass
	SlotHost
	SlotPort
	SlotPath
	SlotQuery
	SlotFrag
	SlotEnd
	numSlots
)

// HostType discriminates which alternative of the host production matched.
type HostType int

const (
	HostNone HostType = iota
	HostName
	HostIPv4
	HostIPv6
	HostIPvFuture
)

func (h HostType) String() string {
	switch h {
	case HostName:
		return "name"
	case HostIPv4:
		return "ipv4"
	case HostIPv6:
		return "ipv6"
	case HostIPvFuture:
		return "ipv_future"
	default:
		return "none"
	}
}

// SchemeID classifies the scheme component against a small well-known set,
// ASCII case-insensitively, per spec §3's ComponentIndex.scheme_id and
// §4.4's "scheme comparison... is ASCII case-insensitive".
type SchemeID int

const (
	SchemeNone SchemeID = iota
	SchemeHTTP
	SchemeHTTPS
	SchemeWS
	SchemeWSS
	SchemeFTP
	SchemeFile
	SchemeUnknown
)

var wellKnownSchemes = map[string]SchemeID{
	"http":  SchemeHTTP,
	"https": SchemeHTTPS,
	"ws":    SchemeWS,
	"wss":   SchemeWSS,
	"ftp":   SchemeFTP,
	"file":  SchemeFile,
}

// ClassifyScheme maps a scheme's bytes (as written, any case) to its
// SchemeID. An empty scheme maps to SchemeNone.
func ClassifyScheme(scheme string) SchemeID {
	if scheme == "" {
		return SchemeNone
	}
	lower := make([]byte, len(scheme))
	for i := 0; i < len(scheme); i++ {
		c := scheme[i]
		if c >= 'A' && c <= 'Z' {
			c += 'a' - 'A'
		}
		lower[i] = c
	}
	if id, ok := wellKnownSchemes[string(lower)]; ok {
		return id
	}
	return SchemeUnknown
}

// Kind selects which top-level production Parse validates against,
// matching spec §4.4's production list and letting the caller resolve
// grammar ambiguity as §4.3 requires ("For ambiguous grammars... the
// caller selects the rule").
type Kind int

const (
	// KindURIReference is variant_rule(URI, relative-ref): the most
	// permissive top-level grammar.
	KindURIReference Kind = iota
	// KindURI requires an absolute URI (scheme required).
	KindURI
	// KindRelativeRef requires a relative-ref (no scheme).
	KindRelativeRef
	// KindAbsoluteURI is a URI without a fragment.
	KindAbsoluteURI
	// KindOriginForm is path-absolute ["?" query], e.g. an HTTP request target.
	KindOriginForm
	// KindAuthority parses only the authority production (no leading "//",
	// no path/query/fragment), for the Authority sub-view's own validation.
	KindAuthority
)

// Index is the ComponentIndex of spec §3: the fixed-slot offset table plus
// discriminants, cached decoded sizes, and segment/parameter counts. It
// never owns or references a buffer itself — callers pair it with the bytes
// it was computed from (a borrowed slice for View, an owned buffer for URL).
type Index struct {
	Off [numSlots]int

	HasScheme    bool
	HasAuthority bool
	HasUserinfo  bool
	HasPassword  bool
	HasPort      bool
	HasQuery     bool
	HasFragment  bool

	HostType   HostType
	SchemeID   SchemeID
	PortNumber int
	IP         [16]byte // valid when HostType is HostIPv4 or HostIPv6

	DecodedHostLen  int
	DecodedPathLen  int
	DecodedQueryLen int
	DecodedFragLen  int

	NSeg   int
	NParam int

	// IsAbsolutePath records whether Path begins with "/", distinct from
	// NSeg so that "/" (absolute, 0 segments) and "" (empty, 0 segments)
	// remain distinguishable.
	IsAbsolutePath bool

	// IsAuthorityOnly marks an Index produced by parsing just the
	// authority production (Kind = KindAuthority), as opposed to a full
	// URI reference; spec §3 calls this out as a distinct ComponentIndex
	// field rather than something inferred from context.
	IsAuthorityOnly bool
}

// Len returns the byte length of the component at slot s.
func (ix *Index) Len(s Slot) int { return ix.Off[s+1] - ix.Off[s] }

// Slice returns the raw (still-encoded, delimiter-included) substring of buf
// at slot s.
func (ix *Index) Slice(buf []byte, s Slot) []byte {
	return buf[ix.Off[s]:ix.Off[s+1]]
}

// SliceStr is the string-typed form of Slice.
func (ix *Index) SliceStr(buf string, s Slot) string {
	return buf[ix.Off[s]:ix.Off[s+1]]
}

// End returns the total buffer length the index was computed over.
func (ix *Index) End() int { return ix.Off[SlotEnd] }
