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

// Segments is the lazy view over a path's "/"-separated segments (spec
// §4.5's "Segments view"). It holds no allocation of its own; every
// accessor reparses the path substring on demand, following how the
// teacher's path.go/resolve.go reparse path text rather than caching a
// segment list.
type Segments struct {
	path     string
	absolute bool
	nseg     int
}

// Len returns the number of segments.
func (s Segments) Len() int { return s.nseg }

// IsAbsolute reports whether the path begins with "/". The leading "/"
// is not itself a segment.
func (s Segments) IsAbsolute() bool { return s.absolute }

// All returns every segment, still encoded, in order.
func (s Segments) All() []string {
	return rfc3986.SplitSegments(s.path, s.absolute)
}

// At returns the i-th encoded segment, or ("", false) if i is out of
// range.
func (s Segments) At(i int) (string, bool) {
	all := s.All()
	if i < 0 || i >= len(all) {
		return "", false
	}
	return all[i], true
}

// AtDecoded returns the i-th segment, percent-decoded.
func (s Segments) AtDecoded(i int) (string, bool, error) {
	raw, ok := s.At(i)
	if !ok {
		return "", false, nil
	}
	dec, err := pct.DecodeString(raw, pct.Default)
	if err != nil {
		return "", false, wrapErr(err)
	}
	return dec, true, nil
}

// Front returns the first segment. It is defined only when Len() > 0.
func (s Segments) Front() (string, bool) { return s.At(0) }

// Back returns the last segment. It is defined only when Len() > 0.
func (s Segments) Back() (string, bool) { return s.At(s.nseg - 1) }

// SegmentIter is a forward iterator over a Segments view's elements.
type SegmentIter struct {
	segs []string
	i    int
}

// Iter returns a forward iterator over the segments, first to last.
func (s Segments) Iter() *SegmentIter { return &SegmentIter{segs: s.All()} }

// Next returns the next segment, or ("", false) once exhausted.
func (it *SegmentIter) Next() (string, bool) {
	if it.i >= len(it.segs) {
		return "", false
	}
	v := it.segs[it.i]
	it.i++
	return v, true
}

// HasNext reports whether another segment remains.
func (it *SegmentIter) HasNext() bool { return it.i < len(it.segs) }

// ReverseSegmentIter is a backward iterator over a Segments view's
// elements, supported because "/" never occurs inside a percent-encoded
// octet, so segment boundaries are self-synchronizing in either
// direction (spec §9's design note on iterator categories).
type ReverseSegmentIter struct {
	segs []string
	i    int
}

// ReverseIter returns a backward iterator over the segments, last to
// first.
func (s Segments) ReverseIter() *ReverseSegmentIter {
	all := s.All()
	return &ReverseSegmentIter{segs: all, i: len(all) - 1}
}

// Next returns the previous segment, or ("", false) once exhausted.
func (it *ReverseSegmentIter) Next() (string, bool) {
	if it.i < 0 {
		return "", false
	}
	v := it.segs[it.i]
	it.i--
	return v, true
}

// HasNext reports whether another (earlier) segment remains.
func (it *ReverseSegmentIter) HasNext() bool { return it.i >= 0 }
