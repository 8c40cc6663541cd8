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

// growChunk is the minimum amount of slack added on top of the 1.5x
// growth factor, so repeatedly setting a short component doesn't force a
// reallocation on every single call.
const growChunk = 16

// URL is an owning, mutable URI reference (spec §4.6's "URL builder"): a
// ComponentIndex paired with a buffer URL itself owns and can grow or
// shrink in place. It embeds View so every read accessor (Scheme, Host,
// Path, Segments, ...) is promoted unmodified; only the mutating
// operations below are new. Mirrors the teacher's pattern of a single Ref
// type serving both read and resolve paths
// (_examples/jplu-trident/iri/iri.go), generalized into two types here so
// the read-only View can stay a zero-allocation borrow.
type URL struct {
	View
	raw []byte
}

// ParseURL parses s as a URI reference into an owning, mutable URL.
func ParseURL(s string) (*URL, error) { return newURL(s, rfc3986.KindURIReference) }

// ParseURIURL requires s to be an absolute URI (scheme required).
func ParseURIURL(s string) (*URL, error) { return newURL(s, rfc3986.KindURI) }

// ParseRelativeRefURL requires s to be a relative reference (no scheme).
func ParseRelativeRefURL(s string) (*URL, error) { return newURL(s, rfc3986.KindRelativeRef) }

func newURL(s string, kind rfc3986.Kind) (*URL, error) {
	ix, err := rfc3986.Parse(s, kind)
	if err != nil {
		return nil, wrapErr(err)
	}
	raw := []byte(s)
	return &URL{View: View{buf: string(raw), ix: ix}, raw: raw}, nil
}

// Snapshot returns a read-only View over the current buffer, independent
// of further edits to u (unlike the embedded View, which is u's own
// index and reflects every subsequent mutation in place).
func (u *URL) Snapshot() *View {
	v := View{buf: string(u.raw), ix: &rfc3986.Index{}}
	*v.ix = *u.ix
	return &v
}

// replaceSlot is the edit engine's sole primitive (spec §4.6): it
// substitutes the bytes at slot s for encoded, growing or shrinking the
// backing buffer as needed, and shifts every later slot's offset by the
// resulting length delta. Every Set*/Clear* operation below this line is
// built by calling it once (or, for operations spanning a delimiter
// shared by two slots such as userinfo/password, via replaceRange).
func (u *URL) replaceSlot(s rfc3986.Slot, encoded []byte) {
	u.replaceRange(s, s+1, encoded)
}

// replaceRange substitutes the combined span of slots [first, boundary)
// for encoded. Offsets of slot boundary and every slot after it are
// shifted by the length delta; offsets of any slot strictly between
// first and boundary are left untouched and must be repaired by the
// caller, since only the caller knows how encoded's bytes redistribute
// across them (e.g. where within encoded the password delimiter now
// falls).
func (u *URL) replaceRange(first, boundary rfc3986.Slot, encoded []byte) {
	ix := u.ix
	oldStart := ix.Off[first]
	oldEnd := ix.Off[boundary]
	lold := oldEnd - oldStart
	lnew := len(encoded)
	delta := lnew - lold
	oldLen := len(u.raw)
	newLen := oldLen + delta

	buf := u.raw
	if cap(buf) < newLen {
		newCap := cap(buf) + cap(buf)/2 + growChunk
		if newCap < newLen {
			newCap = newLen
		}
		grown := make([]byte, oldLen, newCap)
		copy(grown, buf)
		buf = grown
	}
	// work spans the larger of the old and new lengths so the tail-shift
	// below can read the full old tail (when shrinking) or has room to
	// write the full new tail (when growing) before being trimmed to its
	// final length. copy has memmove semantics, so this is safe even
	// though the source and destination ranges can overlap.
	workLen := oldLen
	if newLen > workLen {
		workLen = newLen
	}
	work := buf[:workLen]
	copy(work[oldEnd+delta:oldEnd+delta+(oldLen-oldEnd)], work[oldEnd:oldLen])
	copy(work[oldStart:oldStart+lnew], encoded)
	u.raw = work[:newLen]

	for k := boundary; k <= rfc3986.SlotEnd; k++ {
		ix.Off[k] += delta
	}
	u.buf = string(u.raw)
}

// SetScheme replaces the scheme with s, a plain (unescaped) scheme name.
// An empty s removes the scheme entirely.
func (u *URL) SetScheme(s string) error {
	if s == "" {
		u.replaceSlot(rfc3986.SlotScheme, nil)
		u.ix.HasScheme = false
		u.ix.SchemeID = rfc3986.SchemeNone
		return nil
	}
	if err := rfc3986.ValidateScheme(s); err != nil {
		return wrapErr(err)
	}
	u.replaceSlot(rfc3986.SlotScheme, []byte(s+":"))
	u.ix.HasScheme = true
	u.ix.SchemeID = rfc3986.ClassifyScheme(s)
	return nil
}

// SetCredentials sets the authority's userinfo as a single operation,
// since the "@" delimiter is shared between the username and the
// password and can't be relocated by a single-slot edit. user and
// password are plain (unescaped) text; password is only written, and the
// ":" separator only emitted, when hasPassword is true. It fails if the
// URL has no authority to attach userinfo to.
func (u *URL) SetCredentials(user, password string, hasPassword bool) error {
	if !u.ix.HasAuthority {
		return &Error{Kind: KindBadAuthority, Detail: "cannot set userinfo without an authority"}
	}
	var b strings.Builder
	b.WriteString("//")
	b.WriteString(pct.EncodeString(user, charset.UserinfoNoColon, pct.Default))
	userEnd := b.Len()
	if hasPassword {
		b.WriteByte(':')
		b.WriteString(pct.EncodeString(password, charset.Userinfo, pct.Default))
	}
	b.WriteByte('@')

	oldStart := u.ix.Off[rfc3986.SlotUser]
	u.replaceRange(rfc3986.SlotUser, rfc3986.SlotHost, []byte(b.String()))
	u.ix.Off[rfc3986.SlotPass] = oldStart + userEnd
	u.ix.HasUserinfo = true
	u.ix.HasPassword = hasPassword
	return nil
}

// SetUser replaces the username, preserving whatever password state the
// authority already had.
func (u *URL) SetUser(user string) error {
	return u.SetCredentials(user, u.Password(), u.ix.HasPassword)
}

// SetPassword sets the password, preserving the current username (adding
// one, as an empty string, if the authority had no userinfo at all).
func (u *URL) SetPassword(password string) error {
	return u.SetCredentials(u.User(), password, true)
}

// ClearUserinfo removes the userinfo entirely, leaving a bare host.
func (u *URL) ClearUserinfo() error {
	if !u.ix.HasAuthority {
		return &Error{Kind: KindBadAuthority, Detail: "no authority present"}
	}
	oldStart := u.ix.Off[rfc3986.SlotUser]
	u.replaceRange(rfc3986.SlotUser, rfc3986.SlotHost, []byte("//"))
	u.ix.Off[rfc3986.SlotPass] = oldStart + 2
	u.ix.HasUserinfo = false
	u.ix.HasPassword = false
	return nil
}

// errNoAuthority reports that a host/port/userinfo mutator was called on
// a reference with no authority at all. Growing one from scratch would
// need to splice in the "//" marker itself, which these single-component
// setters deliberately don't attempt (spec's edit operations are
// documented as single-slot substitutions); parse a new reference with
// the authority already present instead.
func errNoAuthority() error {
	return &Error{Kind: KindBadAuthority, Detail: "reference has no authority to set a host on"}
}

// SetHost replaces the host with a plain (unescaped) registered name,
// percent-encoding it against the reg-name character class. The
// reference must already have an authority.
func (u *URL) SetHost(name string) error {
	if !u.ix.HasAuthority {
		return errNoAuthority()
	}
	encoded := pct.EncodeString(name, charset.RegName, pct.Default)
	u.replaceSlot(rfc3986.SlotHost, []byte(encoded))
	u.ix.HostType = rfc3986.HostName
	if n, err := pct.DecodedSize(encoded, pct.Default); err == nil {
		u.ix.DecodedHostLen = n
	}
	return nil
}

// SetHostEncoded replaces the host with encoded, an already percent-
// encoded reg-name or a bracketed IP-literal/IPv4address, whichever the
// host production recognizes. The reference must already have an
// authority.
func (u *URL) SetHostEncoded(encoded string) error {
	if !u.ix.HasAuthority {
		return errNoAuthority()
	}
	_, ht, addr, err := rfc3986.ParseHost(encoded)
	if err != nil {
		return wrapErr(err)
	}
	u.replaceSlot(rfc3986.SlotHost, []byte(encoded))
	u.ix.HostType = ht
	u.ix.IP = addr
	if n, derr := pct.DecodedSize(encoded, pct.Default); derr == nil {
		u.ix.DecodedHostLen = n
	} else {
		u.ix.DecodedHostLen = len(encoded)
	}
	return nil
}

// SetHostIPv4 replaces the host with the dotted-quad form of b. The
// reference must already have an authority.
func (u *URL) SetHostIPv4(b [4]byte) error {
	if !u.ix.HasAuthority {
		return errNoAuthority()
	}
	text := rfc3986.FormatIPv4(b)
	u.replaceSlot(rfc3986.SlotHost, []byte(text))
	u.ix.HostType = rfc3986.HostIPv4
	var ip [16]byte
	copy(ip[12:], b[:])
	u.ix.IP = ip
	u.ix.DecodedHostLen = len(text)
	return nil
}

// SetHostIPv6 replaces the host with the bracketed IP-literal form of b.
// The reference must already have an authority.
func (u *URL) SetHostIPv6(b [16]byte) error {
	if !u.ix.HasAuthority {
		return errNoAuthority()
	}
	text := rfc3986.FormatIPv6(b)
	u.replaceSlot(rfc3986.SlotHost, []byte(text))
	u.ix.HostType = rfc3986.HostIPv6
	u.ix.IP = b
	u.ix.DecodedHostLen = len(text)
	return nil
}

// SetPort sets the port to port's decimal digits. An empty string is the
// distinct "present but empty" port state (spec §4.4: "host:" has_port =
// true, port_number = 0).
func (u *URL) SetPort(port string) error {
	if !u.ix.HasAuthority {
		return errNoAuthority()
	}
	val, err := rfc3986.ValidatePort(port)
	if err != nil {
		return wrapErr(err)
	}
	u.replaceSlot(rfc3986.SlotPort, []byte(":"+port))
	u.ix.HasPort = true
	u.ix.PortNumber = val
	return nil
}

// ClearPort removes the ":port" part entirely.
func (u *URL) ClearPort() {
	u.replaceSlot(rfc3986.SlotPort, nil)
	u.ix.HasPort = false
	u.ix.PortNumber = 0
}

// errPathStartsWithSlashes mirrors the teacher's errPathStartingWithSlashes
// (_examples/jplu-trident/iri/errors.go): a rootless/no-authority path
// that starts with "//" is syntactically legal on its own but would be
// misparsed as carrying an authority when recomposed into a full
// reference, so the edit engine refuses it rather than silently producing
// an unparsable string.
func errPathStartsWithSlashes() error {
	return &Error{Kind: KindInvalid, Detail: `path cannot start with "//" without an authority`}
}

// SetPath replaces the path with plain, a decoded path string whose "/"
// characters are taken as segment separators; every segment between them
// is percent-encoded against pchar independently, so a literal "/" inside
// segment text cannot be expressed here (use the Segments mutators for
// that). A leading "/" is preserved or, if absent, the path becomes
// rootless.
func (u *URL) SetPath(plain string) error {
	absolute := strings.HasPrefix(plain, "/")
	body := plain
	if absolute {
		body = body[1:]
	}
	var segs []string
	if body != "" {
		segs = strings.Split(body, "/")
	}
	return u.setPathSegments(segs, absolute)
}

func (u *URL) setPathSegments(segs []string, absolute bool) error {
	encoded := make([]string, len(segs))
	for i, s := range segs {
		encoded[i] = pct.EncodeString(s, charset.PChar, pct.Default)
	}
	path, err := rfc3986.JoinSegments(encoded, absolute)
	if err != nil {
		return wrapErr(err)
	}
	if !u.ix.HasAuthority && strings.HasPrefix(path, "//") {
		return errPathStartsWithSlashes()
	}
	u.replaceSlot(rfc3986.SlotPath, []byte(path))
	u.ix.IsAbsolutePath = absolute
	u.ix.NSeg = len(segs)
	if n, derr := pct.DecodedSize(path, pct.Default); derr == nil {
		u.ix.DecodedPathLen = n
	}
	return nil
}

// InsertSegment inserts plain (percent-encoded against pchar) as a new
// segment at index i, shifting later segments back. i == Segments().Len()
// appends.
func (u *URL) InsertSegment(i int, plain string) error {
	segs := u.Segments().All()
	if i < 0 || i > len(segs) {
		return &Error{Kind: KindInvalid, Detail: "segment index out of range"}
	}
	out := make([]string, 0, len(segs)+1)
	out = append(out, segs[:i]...)
	out = append(out, pct.EncodeString(plain, charset.PChar, pct.Default))
	out = append(out, segs[i:]...)
	return u.setEncodedPathSegments(out)
}

// ReplaceSegment overwrites the segment at index i with plain
// (percent-encoded against pchar).
func (u *URL) ReplaceSegment(i int, plain string) error {
	segs := u.Segments().All()
	if i < 0 || i >= len(segs) {
		return &Error{Kind: KindInvalid, Detail: "segment index out of range"}
	}
	segs[i] = pct.EncodeString(plain, charset.PChar, pct.Default)
	return u.setEncodedPathSegments(segs)
}

// EraseSegment removes the segment at index i, shifting later segments
// forward.
func (u *URL) EraseSegment(i int) error {
	segs := u.Segments().All()
	if i < 0 || i >= len(segs) {
		return &Error{Kind: KindInvalid, Detail: "segment index out of range"}
	}
	out := append(segs[:i:i], segs[i+1:]...)
	return u.setEncodedPathSegments(out)
}

// PushBackSegment appends plain (percent-encoded against pchar) as a new
// final segment.
func (u *URL) PushBackSegment(plain string) error {
	return u.InsertSegment(u.Segments().Len(), plain)
}

// setEncodedPathSegments reassembles the path from segs, which are
// already percent-encoded, preserving the current IsAbsolutePath state.
func (u *URL) setEncodedPathSegments(segs []string) error {
	absolute := u.ix.IsAbsolutePath
	path, err := rfc3986.JoinSegments(segs, absolute)
	if err != nil {
		return wrapErr(err)
	}
	if !u.ix.HasAuthority && strings.HasPrefix(path, "//") {
		return errPathStartsWithSlashes()
	}
	u.replaceSlot(rfc3986.SlotPath, []byte(path))
	u.ix.NSeg = len(segs)
	if n, derr := pct.DecodedSize(path, pct.Default); derr == nil {
		u.ix.DecodedPathLen = n
	}
	return nil
}

// SetAbsolutePath toggles the path's leading "/" without touching segment
// text, matching spec §4.6's "adjusts the leading '/' without touching
// segment text".
func (u *URL) SetAbsolutePath(absolute bool) error {
	if absolute == u.ix.IsAbsolutePath {
		return nil
	}
	segs := u.Segments().All()
	if !absolute && len(segs) > 0 && segs[0] == "" {
		return &Error{Kind: KindEmptyPathSegment, Detail: "first segment of a relative path cannot be empty"}
	}
	path, err := rfc3986.JoinSegments(segs, absolute)
	if err != nil {
		return wrapErr(err)
	}
	if !absolute && !u.ix.HasAuthority && strings.HasPrefix(path, "//") {
		return errPathStartsWithSlashes()
	}
	u.replaceSlot(rfc3986.SlotPath, []byte(path))
	u.ix.IsAbsolutePath = absolute
	if n, derr := pct.DecodedSize(path, pct.Default); derr == nil {
		u.ix.DecodedPathLen = n
	}
	return nil
}

// SetQuery replaces the query with plain; "&" and "=" in plain are left
// unescaped (they are legal query characters) so callers building a
// "k=v&k2=v2" string by hand get the separators they asked for. Use the
// Params mutators when individual key/value text might itself contain
// "&" or "=".
func (u *URL) SetQuery(plain string) error {
	encoded := pct.EncodeString(plain, charset.Query, pct.Default)
	u.replaceSlot(rfc3986.SlotQuery, []byte("?"+encoded))
	u.ix.HasQuery = true
	u.ix.NParam = rfc3986.CountParams(encoded)
	if n, err := pct.DecodedSize(encoded, pct.Default); err == nil {
		u.ix.DecodedQueryLen = n
	}
	return nil
}

// ClearQuery removes the query entirely.
func (u *URL) ClearQuery() {
	u.replaceSlot(rfc3986.SlotQuery, nil)
	u.ix.HasQuery = false
	u.ix.NParam = 0
	u.ix.DecodedQueryLen = 0
}

// setEncodedParams reassembles the query from params, whose Key/Value are
// assumed already percent-encoded (against pchar-&-= and pchar-&
// respectively) — as Params.All() returns them, and as the *Param
// mutators below produce for the one entry they add or change. It never
// re-encodes, so it can't double-escape an existing, already-encoded
// parameter it's just passing through unchanged.
func (u *URL) setEncodedParams(params []Param) error {
	if len(params) == 0 {
		// An empty parameter list has no unambiguous encoding: "" itself
		// reparses as one present-but-empty parameter (spec §4.4's
		// countParams convention). Removing the last parameter therefore
		// removes the query entirely rather than leaving a dangling "?".
		u.ClearQuery()
		return nil
	}
	parts := make([]string, len(params))
	for i, p := range params {
		if !p.HasValue {
			parts[i] = p.Key
			continue
		}
		parts[i] = p.Key + "=" + p.Value
	}
	encoded := strings.Join(parts, "&")
	u.replaceSlot(rfc3986.SlotQuery, []byte("?"+encoded))
	u.ix.HasQuery = true
	u.ix.NParam = len(params)
	if n, err := pct.DecodedSize(encoded, pct.Default); err == nil {
		u.ix.DecodedQueryLen = n
	}
	return nil
}

// encodeParam percent-encodes a plain key/value pair for storage in a
// Param alongside the already-encoded entries Params.All() returns.
func encodeParam(key, value string, hasValue bool) Param {
	p := Param{Key: pct.EncodeString(key, charset.QueryKey, pct.Default), HasValue: hasValue}
	if hasValue {
		p.Value = pct.EncodeString(value, charset.QueryValue, pct.Default)
	}
	return p
}

// AssignParam appends a new "key=value" (or bare "key" if hasValue is
// false) parameter, plain key/value text percent-encoded before storage.
func (u *URL) AssignParam(key, value string, hasValue bool) error {
	params := u.Params().All()
	return u.setEncodedParams(append(params, encodeParam(key, value, hasValue)))
}

// SetParam overwrites the value of the first parameter whose key matches
// key (plain text, encoded the same way before comparing), or appends a
// new one if none matches.
func (u *URL) SetParam(key, value string, hasValue bool) error {
	params := u.Params().All()
	entry := encodeParam(key, value, hasValue)
	for i, p := range params {
		if p.Key == entry.Key {
			params[i] = entry
			return u.setEncodedParams(params)
		}
	}
	return u.setEncodedParams(append(params, entry))
}

// DeleteParam removes every parameter whose key matches key exactly
// (plain text, encoded the same way SetParam encodes a key before
// comparing).
func (u *URL) DeleteParam(key string) error {
	encKey := pct.EncodeString(key, charset.QueryKey, pct.Default)
	params := u.Params().All()
	out := params[:0]
	for _, p := range params {
		if p.Key != encKey {
			out = append(out, p)
		}
	}
	return u.setEncodedParams(out)
}

// SetFragment replaces the fragment with plain, percent-encoded against
// the fragment character class.
func (u *URL) SetFragment(plain string) error {
	encoded := pct.EncodeString(plain, charset.Fragment, pct.Default)
	u.replaceSlot(rfc3986.SlotFrag, []byte("#"+encoded))
	u.ix.HasFragment = true
	if n, err := pct.DecodedSize(encoded, pct.Default); err == nil {
		u.ix.DecodedFragLen = n
	}
	return nil
}

// ClearFragment removes the fragment entirely.
func (u *URL) ClearFragment() {
	u.replaceSlot(rfc3986.SlotFrag, nil)
	u.ix.HasFragment = false
	u.ix.DecodedFragLen = 0
}
