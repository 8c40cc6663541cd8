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

// Package grammar implements the PEG-like rule combinator framework spec §4.3
// describes: character sets, sequence, alternative, repetition, delimited
// ranges, optional, and not-empty, parsing in place over an Input cursor and
// producing either a value or a tagged Error. It has no notion of RFC 3986
// productions itself — those are built on top of it in internal/rfc3986 —
// mirroring the teacher's separation of a generic parsing engine
// (_examples/jplu-trident/internal/parser) from the RFC-specific grammar
// built on it (_examples/jplu-trident/iri).
package grammar

import "github.com/uriproto/uri/internal/charset"

// Rule parses a value of type T from in, returning an error that does not
// advance the input's position (i.e. implementations must restore in's
// original position before returning a non-nil error) so that alternatives
// and optionals can retry cleanly.
type Rule[T any] func(in *Input) (T, error)

// VoidRule is a Rule that produces no value, used for literals, delimiters,
// and Squelch — the void-valued rules spec §4.3 says are "dropped" from a
// tuple's value type.
type VoidRule func(in *Input) error

// Literal matches the exact string lit, failing with KindMismatch (rewound)
// if the input does not start with it.
func Literal(lit string) VoidRule {
	return func(in *Input) error {
		if !in.StartsWith(lit) {
			return At(KindMismatch, in.Pos())
		}
		in.Advance(len(lit))
		return nil
	}
}

// Delim matches a single literal octet.
func Delim(c byte) VoidRule {
	return func(in *Input) error {
		b, ok := in.Peek()
		if !ok || b != c {
			return At(KindMismatch, in.Pos())
		}
		in.Advance(1)
		return nil
	}
}

// Token matches the maximal run of bytes in cs (possibly empty) and returns
// it as a borrowed substring of the input.
func Token(cs charset.Set) Rule[string] {
	return func(in *Input) (string, error) {
		rest := in.Rest()
		n := charset.FindIfNotStr(rest, cs)
		in.Advance(n)
		return rest[:n], nil
	}
}

// NotEmpty wraps r and fails with KindInvalid if r consumed zero bytes,
// implementing not_empty_rule.
func NotEmpty[T any](r Rule[T]) Rule[T] {
	return func(in *Input) (T, error) {
		start := in.Pos()
		v, err := r(in)
		if err != nil {
			var zero T
			return zero, err
		}
		if in.Pos() == start {
			in.Seek(start)
			var zero T
			return zero, At(KindInvalid, start)
		}
		return v, nil
	}
}

// NotEmptyToken is the common case of NotEmpty(Token(cs)), used for
// 1*pchar-style productions (segment-nz and friends).
func NotEmptyToken(cs charset.Set) Rule[string] {
	return NotEmpty(Token(cs))
}

// PctEncodedToken matches the maximal run of bytes that are either members
// of cs or well-formed "%" HEXDIG HEXDIG triples — the common shape of
// every RFC 3986 production that allows pct-encoded octets interleaved with
// a character class (userinfo, reg-name, segment, query, fragment). It does
// not decode or otherwise validate the escaped octet; internal/pct.Validate
// is used for that once the component's extent is known.
func PctEncodedToken(cs charset.Set) Rule[string] {
	return func(in *Input) (string, error) {
		rest := in.Rest()
		i := 0
	scan:
		for i < len(rest) {
			switch {
			case rest[i] == '%' && i+2 < len(rest) && charset.IsHexDigit(rest[i+1]) && charset.IsHexDigit(rest[i+2]):
				i += 3
			case cs.Contains(rest[i]):
				i++
			default:
				break scan
			}
		}
		in.Advance(i)
		return rest[:i], nil
	}
}

// Optional runs r; if it fails without consuming input, Optional succeeds
// with (zero, false). If r fails having consumed input, the failure
// propagates (it was a firm commitment, not an absent optional element).
func Optional[T any](r Rule[T]) Rule[OptionalValue[T]] {
	return func(in *Input) (OptionalValue[T], error) {
		start := in.Pos()
		v, err := r(in)
		if err != nil {
			if in.Pos() != start {
				var zero OptionalValue[T]
				return zero, err
			}
			in.Seek(start)
			return OptionalValue[T]{}, nil
		}
		return OptionalValue[T]{Present: true, Value: v}, nil
	}
}

// OptionalValue is the result of Optional: a value that may or may not have
// been present in the input.
type OptionalValue[T any] struct {
	Present bool
	Value   T
}

// Squelch runs r and discards its value, producing a VoidRule. Used to fold
// a typed rule into a Sequence.
func Squelch[T any](r Rule[T]) VoidRule {
	return func(in *Input) error {
		_, err := r(in)
		return err
	}
}

// Sequence is tuple_rule over void-valued rules: each rule runs in order: on
// any failure, the whole sequence rewinds to its starting position.
func Sequence(rules ...VoidRule) VoidRule {
	return func(in *Input) error {
		start := in.Pos()
		for _, r := range rules {
			if err := r(in); err != nil {
				in.Seek(start)
				return err
			}
		}
		return nil
	}
}

// Variant is variant_rule: it tries each rule in order and succeeds with the
// first one that matches (rule functions are expected to rewind on failure
// themselves, per the Rule contract); if every alternative fails, Variant
// returns the last error.
func Variant[T any](rules ...Rule[T]) Rule[T] {
	return func(in *Input) (T, error) {
		start := in.Pos()
		var lastErr error
		for _, r := range rules {
			in.Seek(start)
			v, err := r(in)
			if err == nil {
				return v, nil
			}
			lastErr = err
		}
		in.Seek(start)
		var zero T
		return zero, lastErr
	}
}

// Repeat is range_rule: it applies first once (if first is non-nil) and
// then next repeatedly, greedily, collecting each produced value, subject to
// min <= count <= max (max < 0 means unbounded). If the count requirement
// isn't met, it fails with KindInvalid, rewound to the start.
//
// Unlike the C++ original's lazily re-parsable range (spec §4.3's "parse
// range laziness"), this collects eagerly into a slice: RFC 3986 inputs are
// bounded in size and parsed once per Parse call, so eager collection is the
// idiomatic Go choice here. The lazy, re-iterable view over path segments
// and query parameters required by spec §4.5 is implemented separately, in
// the root package's Segments/Params types, which reparse their component
// substring directly rather than going through this combinator — mirroring
// how the teacher's path.go/resolve.go reparse path text on demand instead
// of caching a segment list in Positions.
func Repeat[T any](first, next Rule[T], min, max int) Rule[[]T] {
	return func(in *Input) ([]T, error) {
		start := in.Pos()
		var out []T
		r := next
		if first != nil {
			r = first
		}
		for max < 0 || len(out) < max {
			elemStart := in.Pos()
			v, err := r(in)
			if err != nil {
				in.Seek(elemStart)
				break
			}
			if in.Pos() == elemStart && len(out) > 0 {
				// A zero-width match would loop forever; stop here.
				break
			}
			out = append(out, v)
			r = next
		}
		if len(out) < min {
			in.Seek(start)
			return nil, At(KindInvalid, start)
		}
		return out, nil
	}
}

// RepeatCount is a convenience form of Repeat for simple *Rule / 1*Rule
// productions with no distinct "first" element: every element is parsed
// with next, and the collected values are returned as Repeat returns them.
func RepeatCount[T any](next Rule[T], min, max int) Rule[[]T] {
	return Repeat(nil, next, min, max)
}
