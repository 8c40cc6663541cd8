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
	"errors"
	"fmt"

	"github.com/uriproto/uri/internal/grammar"
	"github.com/uriproto/uri/internal/pct"
)

// Kind is the flat error-kind enumeration shared by every failing parse,
// edit, or resolve operation in this package.
type Kind = grammar.Kind

// The parse- and edit-time error kinds, re-exported from the internal
// grammar engine so callers can switch on them without importing an
// internal package.
const (
	KindMismatch       = grammar.KindMismatch
	KindEndOfInput     = grammar.KindEndOfInput
	KindLeftoverInput  = grammar.KindLeftoverInput
	KindInvalid        = grammar.KindInvalid
	KindBadSchemeStart = grammar.KindBadSchemeStart
	KindBadSchemeChar  = grammar.KindBadSchemeChar
	KindBadPortChar    = grammar.KindBadPortChar
	KindPortOverflow   = grammar.KindPortOverflow
	KindBadIPv4        = grammar.KindBadIPv4
	KindBadIPv6        = grammar.KindBadIPv6
	KindBadAuthority   = grammar.KindBadAuthority

	KindIncompleteEncoding  = grammar.KindIncompleteEncoding
	KindBadHexDigit         = grammar.KindBadHexDigit
	KindIllegalNull         = grammar.KindIllegalNull
	KindIllegalReservedChar = grammar.KindIllegalReservedChar

	KindEmptyPathSegment     = grammar.KindEmptyPathSegment
	KindMissingPathSegment   = grammar.KindMissingPathSegment
	KindMissingPathSeparator = grammar.KindMissingPathSeparator

	KindNotABase   = grammar.KindNotABase
	KindNoSpace    = grammar.KindNoSpace
	KindLengthError = grammar.KindLengthError
)

// Error is the error type returned by every failing operation in this
// package: a {kind, offset} pair (spec §7) plus an optional human-readable
// detail. It copies the internal error's kind, offset and detail rather
// than wrapping it (there is no Unwrap), so the package boundary exposes
// only the documented Kind enumeration.
type Error struct {
	Kind   Kind
	Offset int
	Detail string
}

// Error implements the error interface.
func (e *Error) Error() string {
	if e.Detail != "" {
		return fmt.Sprintf("uri: %s at offset %d: %s", e.Kind, e.Offset, e.Detail)
	}
	return fmt.Sprintf("uri: %s at offset %d", e.Kind, e.Offset)
}

// Is reports whether target is an *Error with the same Kind, so callers
// can write errors.Is(err, &uri.Error{Kind: uri.KindBadIPv4}).
func (e *Error) Is(target error) bool {
	var o *Error
	if !errors.As(target, &o) {
		return false
	}
	return e.Kind == o.Kind
}

// wrapErr adapts an internal grammar/rfc3986 error into the exported
// Error type, following the teacher's kindError/ParseError split
// (_examples/jplu-trident/iri/errors.go's newParseError): an unexported
// parse-time error wrapped by an exported, documented error at the
// package boundary.
func wrapErr(err error) error {
	if err == nil {
		return nil
	}
	var ge *grammar.Error
	if errors.As(err, &ge) {
		return &Error{Kind: ge.Kind, Offset: ge.Offset, Detail: ge.Detail}
	}
	var pe *pct.Error
	if errors.As(err, &pe) {
		return &Error{Kind: pctKind(pe.Kind), Offset: pe.Offset}
	}
	return err
}

// pctKind maps internal/pct's small error taxonomy onto the package's own
// Kind enumeration, so a percent-encoding failure surfaced through
// Normalize, SetPath, SetQuery, etc. carries the same Kind values a
// grammar-level parse failure would.
func pctKind(k pct.Kind) Kind {
	switch k {
	case pct.KindIncompleteEncoding:
		return KindIncompleteEncoding
	case pct.KindBadHexDigit:
		return KindBadHexDigit
	case pct.KindIllegalNull:
		return KindIllegalNull
	case pct.KindIllegalReservedChar:
		return KindIllegalReservedChar
	case pct.KindNoSpace:
		return KindNoSpace
	default:
		return KindInvalid
	}
}

// MustParse parses s as a URI reference and panics if it fails to parse.
// It is a thin wrapper over Parse, matching spec §7's "throwing variants
// are offered for ergonomic call sites but are implemented as thin
// wrappers".
func MustParse(s string) *View {
	v, err := Parse(s)
	if err != nil {
		panic(err)
	}
	return v
}

// MustParseURL parses s into an owning, mutable URL and panics if it
// fails to parse.
func MustParseURL(s string) *URL {
	u, err := ParseURL(s)
	if err != nil {
		panic(err)
	}
	return u
}
