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

package grammar

import "fmt"

// Kind enumerates the flat error taxonomy of spec §7, shared by the grammar
// engine, the RFC 3986 rules built on it, and re-exported at the package
// boundary by the root uri package.
type Kind int

const (
	_ Kind = iota

	// Structural parse failures.
	KindMismatch
	KindEndOfInput
	KindLeftoverInput
	KindInvalid

	// Component-specific parse failures.
	KindBadSchemeStart
	KindBadSchemeChar
	KindBadPortChar
	KindPortOverflow
	KindBadIPv4
	KindBadIPv6
	KindBadAuthority

	// Percent-encoding failures (mirroring internal/pct.Kind one-to-one).
	KindIncompleteEncoding
	KindBadHexDigit
	KindIllegalNull
	KindIllegalReservedChar

	// Path shape failures.
	KindEmptyPathSegment
	KindMissingPathSegment
	KindMissingPathSeparator

	// Operational failures.
	KindNotABase
	KindNoSpace
	KindLengthError
)

var kindNames = map[Kind]string{
	KindMismatch:              "mismatch",
	KindEndOfInput:            "end_of_input",
	KindLeftoverInput:         "leftover_input",
	KindInvalid:               "invalid",
	KindBadSchemeStart:        "bad_scheme_start",
	KindBadSchemeChar:         "bad_scheme_char",
	KindBadPortChar:           "bad_port_char",
	KindPortOverflow:          "port_overflow",
	KindBadIPv4:               "bad_ipv4",
	KindBadIPv6:               "bad_ipv6",
	KindBadAuthority:          "bad_authority",
	KindIncompleteEncoding:    "incomplete_encoding",
	KindBadHexDigit:           "bad_hex_digit",
	KindIllegalNull:           "illegal_null",
	KindIllegalReservedChar:   "illegal_reserved_char",
	KindEmptyPathSegment:      "empty_path_segment",
	KindMissingPathSegment:    "missing_path_segment",
	KindMissingPathSeparator:  "missing_path_separator",
	KindNotABase:              "not_a_base",
	KindNoSpace:               "no_space",
	KindLengthError:           "length_error",
}

// String implements fmt.Stringer, returning the snake_case name used by
// spec §7.
func (k Kind) String() string {
	if name, ok := kindNames[k]; ok {
		return name
	}
	return "unknown"
}

// Error is the tagged {kind, offset} result carried by every failing parse
// operation (spec §7: "a tagged result carrying either the value or a
// {kind, offset} pair"). It mirrors the teacher's kindError
// (_examples/jplu-trident/iri/errors.go) but replaces the free-form message
// with the flat Kind enumeration the spec mandates, keeping the byte offset.
type Error struct {
	Kind   Kind
	Offset int
	// Detail is an optional, human-readable elaboration; never consulted
	// for error identity (use Kind via errors.As for that).
	Detail string
}

func (e *Error) Error() string {
	if e.Detail != "" {
		return fmt.Sprintf("uri: %s at offset %d: %s", e.Kind, e.Offset, e.Detail)
	}
	return fmt.Sprintf("uri: %s at offset %d", e.Kind, e.Offset)
}

// Errorf builds an *Error with a formatted Detail.
func Errorf(kind Kind, offset int, format string, args ...any) *Error {
	return &Error{Kind: kind, Offset: offset, Detail: fmt.Sprintf(format, args...)}
}

// At builds a plain *Error with no detail message.
func At(kind Kind, offset int) *Error {
	return &Error{Kind: kind, Offset: offset}
}
