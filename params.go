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

	"github.com/uriproto/uri/internal/pct"
)

// Param is one "&"-separated key/value pair of a query (spec §4.5's
// "(key, value, has_value) triple"). HasValue distinguishes a present
// empty value ("k=") from an absent one ("k").
type Param struct {
	Key      string
	Value    string
	HasValue bool
}

// Params is the lazy view over a query's "&"-separated parameters. Like
// Segments, it holds no allocation and reparses the query substring on
// demand.
type Params struct {
	query  string
	has    bool
	nparam int
}

// Len returns the number of parameters (0 for an absent query, 1 for a
// present-but-empty one).
func (p Params) Len() int { return p.nparam }

// All returns every parameter, still encoded, in order.
func (p Params) All() []Param {
	if !p.has {
		return nil
	}
	if p.query == "" {
		return []Param{{}}
	}
	parts := strings.Split(p.query, "&")
	out := make([]Param, len(parts))
	for i, part := range parts {
		if idx := strings.IndexByte(part, '='); idx >= 0 {
			out[i] = Param{Key: part[:idx], Value: part[idx+1:], HasValue: true}
		} else {
			out[i] = Param{Key: part}
		}
	}
	return out
}

// At returns the i-th parameter, or (Param{}, false) if i is out of
// range.
func (p Params) At(i int) (Param, bool) {
	all := p.All()
	if i < 0 || i >= len(all) {
		return Param{}, false
	}
	return all[i], true
}

// Get returns the value of the first parameter whose encoded key equals
// key, case-sensitively.
func (p Params) Get(key string) (string, bool) {
	for _, kv := range p.All() {
		if kv.Key == key {
			return kv.Value, true
		}
	}
	return "", false
}

// GetFold is Get with an ASCII case-insensitive key comparison, using
// pct.CICompareDecoded so percent-encoded keys compare by decoded
// octets.
func (p Params) GetFold(key string) (string, bool) {
	for _, kv := range p.All() {
		if pct.CICompareDecoded(kv.Key, key, pct.Default) == 0 {
			return kv.Value, true
		}
	}
	return "", false
}

// ParamIter is a forward iterator over a Params view's elements.
type ParamIter struct {
	params []Param
	i      int
}

// Iter returns a forward iterator over the parameters, first to last.
func (p Params) Iter() *ParamIter { return &ParamIter{params: p.All()} }

// Next returns the next parameter, or (Param{}, false) once exhausted.
func (it *ParamIter) Next() (Param, bool) {
	if it.i >= len(it.params) {
		return Param{}, false
	}
	v := it.params[it.i]
	it.i++
	return v, true
}

// HasNext reports whether another parameter remains.
func (it *ParamIter) HasNext() bool { return it.i < len(it.params) }

// ReverseParamIter is a backward iterator over a Params view's elements,
// supported because "&" never occurs inside a percent-encoded octet in a
// buffer produced by this package's edit engine (spec §9's design note).
type ReverseParamIter struct {
	params []Param
	i      int
}

// ReverseIter returns a backward iterator over the parameters, last to
// first.
func (p Params) ReverseIter() *ReverseParamIter {
	all := p.All()
	return &ReverseParamIter{params: all, i: len(all) - 1}
}

// Next returns the previous parameter, or (Param{}, false) once
// exhausted.
func (it *ReverseParamIter) Next() (Param, bool) {
	if it.i < 0 {
		return Param{}, false
	}
	v := it.params[it.i]
	it.i--
	return v, true
}

// HasNext reports whether another (earlier) parameter remains.
func (it *ReverseParamIter) HasNext() bool { return it.i >= 0 }
