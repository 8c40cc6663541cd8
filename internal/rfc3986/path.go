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

package rfc3986

import (
	"strings"

	"github.com/uriproto/uri/internal/charset"
	"github.com/uriproto/uri/internal/grammar"
)

var segmentRule = grammar.PctEncodedToken(charset.Segment)
var segmentNZRule = grammar.NotEmpty(grammar.PctEncodedToken(charset.SegmentNZ))
var segmentNZNCRule = grammar.NotEmpty(grammar.PctEncodedToken(charset.SegmentNZNC))

// pathAbempty matches path-abempty = *( "/" segment ), counting segments.
// A leading "/" introduces a (possibly empty) segment; consecutive "//"
// therefore yields an empty segment, matching spec §4.5.
func pathAbempty(in *grammar.Input) (nseg int, err error) {
	for {
		c, ok := in.Peek()
		if !ok || c != '/' {
			return nseg, nil
		}
		in.Advance(1)
		if _, e := segmentRule(in); e != nil {
			return nseg, e
		}
		nseg++
	}
}

// pathAbsolute matches path-absolute = "/" [ segment-nz *( "/" segment ) ].
// When the character right after the leading "/" is itself "/", "?" or "#"
// (or end of input), the optional segment-nz is simply absent — e.g. path "//" is
// absolute with nseg = 1 (one empty segment contributed by path-abempty),
// not a parse failure, matching spec §8's boundary example.
func pathAbsolute(in *grammar.Input) (nseg int, err error) {
	start := in.Pos()
	if e := grammar.Delim('/')(in); e != nil {
		return 0, grammar.At(grammar.KindMissingPathSeparator, start)
	}
	if c, ok := in.Peek(); ok && c != '/' && c != '?' && c != '#' {
		if _, e := segmentNZRule(in); e != nil {
			return 0, e
		}
		nseg++
	}
	n, e := pathAbempty(in)
	return nseg + n, e
}

// pathRootless matches path-rootless = segment-nz *( "/" segment ).
func pathRootless(in *grammar.Input) (nseg int, err error) {
	if _, e := segmentNZRule(in); e != nil {
		return 0, e
	}
	nseg = 1
	n, e := pathAbempty(in)
	return nseg + n, e
}

// pathNoscheme matches path-noscheme = segment-nz-nc *( "/" segment ).
func pathNoscheme(in *grammar.Input) (nseg int, err error) {
	if _, e := segmentNZNCRule(in); e != nil {
		return 0, e
	}
	nseg = 1
	n, e := pathAbempty(in)
	return nseg + n, e
}

// removeDotSegments implements RFC 3986 §5.2.4, the "remove_dot_segments"
// algorithm used by Normalize and Resolve. Grounded on
// _examples/jplu-trident/iri/path.go's removeDotSegments/applyDotSegmentRules,
// generalized from IRI segments (which may contain non-ASCII) down to the
// ASCII-only RFC 3986 case.
func removeDotSegments(path string) string {
	var out []string
	in := path
	for len(in) > 0 {
		switch {
		case hasPrefix(in, "../"):
			in = in[3:]
		case hasPrefix(in, "./"):
			in = in[2:]
		case hasPrefix(in, "/./"):
			in = "/" + in[3:]
		case in == "/.":
			in = "/"
		case hasPrefix(in, "/../") || in == "/..":
			tail := "/"
			if len(in) > 3 {
				tail += in[4:]
			}
			if len(out) > 0 {
				out = out[:len(out)-1]
			}
			in = tail
		case in == "." || in == "..":
			in = ""
		default:
			seg, rest := firstPathSegment(in)
			out = append(out, seg)
			in = rest
		}
	}
	result := ""
	for _, s := range out {
		result += s
	}
	return result
}

func hasPrefix(s, prefix string) bool {
	return len(s) >= len(prefix) && s[:len(prefix)] == prefix
}

// firstPathSegment splits off the first "/"-delimited chunk of in,
// including its leading slash if any, per RFC 3986 §5.2.4 rule 2E.
func firstPathSegment(in string) (segment, rest string) {
	if len(in) == 0 {
		return "", ""
	}
	if in[0] == '/' {
		idx := indexByte(in[1:], '/')
		if idx < 0 {
			return in, ""
		}
		return in[:idx+1], in[idx+1:]
	}
	idx := indexByte(in, '/')
	if idx < 0 {
		return in, ""
	}
	return in[:idx], in[idx:]
}

func indexByte(s string, c byte) int {
	for i := 0; i < len(s); i++ {
		if s[i] == c {
			return i
		}
	}
	return -1
}

// MergePaths implements RFC 3986 §5.2.3's merge routine used during
// reference resolution: when the base URI has an authority and an empty
// path, the merged path is "/" + refPath; otherwise it is everything in
// basePath up to and including the last "/", followed by refPath.
func MergePaths(baseHasAuthority bool, basePath, refPath string) string {
	if baseHasAuthority && basePath == "" {
		return "/" + refPath
	}
	idx := -1
	for i := len(basePath) - 1; i >= 0; i-- {
		if basePath[i] == '/' {
			idx = i
			break
		}
	}
	if idx < 0 {
		return refPath
	}
	return basePath[:idx+1] + refPath
}

// RemoveDotSegments exports removeDotSegments for use by the root package's
// Normalize and Resolve operations.
func RemoveDotSegments(path string) string { return removeDotSegments(path) }

// SplitSegments splits an encoded path into its segment substrings
// following the same production structure pathAbsolute/pathRootless/
// pathNoscheme/pathAbempty parse against, so that the returned slice's
// length always equals the nseg a Parse of the same path would have
// produced. absolute must match Index.IsAbsolutePath for this path.
func SplitSegments(path string, absolute bool) []string {
	if absolute {
		if len(path) == 0 {
			return nil
		}
		path = path[1:]
	}
	if path == "" {
		return nil
	}
	var segs []string
	if !absolute || path[0] != '/' {
		idx := indexByte(path, '/')
		if idx < 0 {
			return append(segs, path)
		}
		segs = append(segs, path[:idx])
		path = path[idx:]
	}
	for len(path) > 0 {
		rest := path[1:]
		idx := indexByte(rest, '/')
		if idx < 0 {
			segs = append(segs, rest)
			path = ""
		} else {
			segs = append(segs, rest[:idx])
			path = rest[idx:]
		}
	}
	return segs
}

// JoinSegments is SplitSegments's inverse: given the segments an edit
// engine wants a path to contain, it returns the encoded path text that
// reparses (via SplitSegments with the same absolute flag) to that exact
// list. For a non-absolute path, segs[0] empty is rejected since
// segment-nz/segment-nz-nc can never be empty. For an absolute path, a
// leading empty segment can only arise from path-abempty's own "/"
// (segment-nz absent), so it is serialized with an extra leading "/"
// rather than via the ambiguous plain join.
func JoinSegments(segs []string, absolute bool) (string, error) {
	if !absolute {
		if len(segs) > 0 && segs[0] == "" {
			return "", grammar.At(grammar.KindEmptyPathSegment, 0)
		}
		return strings.Join(segs, "/"), nil
	}
	if len(segs) == 0 {
		return "/", nil
	}
	prefix := "/"
	if segs[0] == "" {
		prefix = "//"
	}
	return prefix + strings.Join(segs, "/"), nil
}
