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

// Input is a cursor over a byte string being parsed. Positions reported by
// Pos are always relative to the start of the string the Input was
// constructed with, matching spec §7's requirement that error offsets are
// "relative to the parse call's input". It plays the role the teacher's
// parserInput plays (_examples/jplu-trident/iri/input.go), adapted from a
// rune reader to a byte cursor since RFC 3986 grammar, unlike RFC 3987, is
// pure US-ASCII.
type Input struct {
	s   string
	pos int
}

// NewInput wraps s for parsing, starting at position 0.
func NewInput(s string) *Input {
	return &Input{s: s}
}

// Pos returns the current byte offset from the start of the original string.
func (in *Input) Pos() int { return in.pos }

// Len returns the number of unconsumed bytes.
func (in *Input) Len() int { return len(in.s) - in.pos }

// Done reports whether the input is fully consumed.
func (in *Input) Done() bool { return in.pos >= len(in.s) }

// Rest returns the unconsumed remainder of the input.
func (in *Input) Rest() string { return in.s[in.pos:] }

// Peek returns the next unconsumed byte without advancing, or (0, false) at
// end of input.
func (in *Input) Peek() (byte, bool) {
	if in.Done() {
		return 0, false
	}
	return in.s[in.pos], true
}

// PeekAt returns the byte n positions ahead of the cursor without advancing.
func (in *Input) PeekAt(n int) (byte, bool) {
	i := in.pos + n
	if i < 0 || i >= len(in.s) {
		return 0, false
	}
	return in.s[i], true
}

// Advance moves the cursor forward by n bytes. The caller must ensure n does
// not run past the end of input.
func (in *Input) Advance(n int) { in.pos += n }

// Seek moves the cursor to an absolute offset. Used to rewind on a failed
// alternative, as variant_rule requires.
func (in *Input) Seek(pos int) { in.pos = pos }

// StartsWith reports whether the unconsumed input begins with lit.
func (in *Input) StartsWith(lit string) bool {
	return len(in.Rest()) >= len(lit) && in.Rest()[:len(lit)] == lit
}

// SliceFrom returns the substring consumed between start (a previously
// observed Pos()) and the cursor's current position.
func (in *Input) SliceFrom(start int) string {
	return in.s[start:in.pos]
}

// Full returns the entire original string the Input was constructed with.
func (in *Input) Full() string { return in.s }
