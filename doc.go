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

// Package uri provides types and functions for working with Uniform
// Resource Identifiers and URI references as defined by RFC 3986.
//
// The package offers two main types:
//   - View: a read-only parsed URI reference over a borrowed string.
//   - URL: an owning, mutable URI reference that supports targeted edits
//     (set scheme, swap host, insert/remove path segments, assign query
//     parameters) while keeping its buffer a valid serialization.
//
// Key features include:
//   - Strict parsing and validation against RFC 3986.
//   - Component views for scheme, authority (userinfo/host/port), path,
//     query and fragment, with lazily decoded accessors.
//   - Segment and parameter iteration over path and query.
//   - Reference resolution (Resolve) per RFC 3986 §5.3.
//   - Syntax-based normalization (Normalize) per RFC 3986 §6.2.2.
package uri
