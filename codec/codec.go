// Copyright 2026 The httpc Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

package codec

import (
	"fmt"
	"strings"
)

// A Codec converts typed application values to wire bytes and back,
// keyed by the MIME content type it produces and consumes.
//
// Implementations of Codec must be stateless or internally
// synchronized, as one codec instance is shared by all in-flight calls
// on a client.
type Codec interface {
	// ContentType returns the MIME type tag the codec encodes to and
	// decodes from, without media type parameters, for example
	// "application/json".
	ContentType() string

	// Encode serializes v into wire bytes.
	Encode(v interface{}) ([]byte, error)

	// Decode deserializes data into the value pointed to by v.
	Decode(data []byte, v interface{}) error
}

// A Registry maps MIME type tags to codecs. The zero value is an empty
// registry; use NewRegistry to get one pre-loaded with the built-in
// JSON codec.
//
// A Registry must not be mutated once a client is using it. To vary
// codecs per call, give the call its own registry.
type Registry struct {
	codecs map[string]Codec
}

// Default is the registry used by clients that do not configure their
// own. It contains the built-in JSON codec.
var Default = NewRegistry()

// NewRegistry returns a registry containing the built-in JSON codec
// plus any extra codecs given.
func NewRegistry(extra ...Codec) *Registry {
	r := &Registry{codecs: make(map[string]Codec)}
	r.Register(JSON)
	for _, c := range extra {
		r.Register(c)
	}
	return r
}

// Register adds c to the registry, replacing any codec previously
// registered for the same content type.
func (r *Registry) Register(c Codec) {
	if c == nil {
		panic("httpc/codec: nil codec")
	}
	if r.codecs == nil {
		r.codecs = make(map[string]Codec)
	}
	r.codecs[normalize(c.ContentType())] = c
}

// Lookup returns the codec registered for the given MIME type tag.
// Media type parameters in tag, such as "; charset=utf-8", are
// ignored. The second return value reports whether a codec was found.
func (r *Registry) Lookup(tag string) (Codec, bool) {
	if r == nil || r.codecs == nil {
		return nil, false
	}
	c, ok := r.codecs[normalize(tag)]
	return c, ok
}

// Encode serializes v using the codec registered for tag.
func (r *Registry) Encode(v interface{}, tag string) ([]byte, error) {
	c, ok := r.Lookup(tag)
	if !ok {
		return nil, fmt.Errorf("httpc/codec: no codec for content type %q", tag)
	}
	return c.Encode(v)
}

// Decode deserializes data into v using the codec registered for tag.
func (r *Registry) Decode(data []byte, v interface{}, tag string) error {
	c, ok := r.Lookup(tag)
	if !ok {
		return fmt.Errorf("httpc/codec: no codec for content type %q", tag)
	}
	return c.Decode(data, v)
}

// normalize strips media type parameters and case from a MIME tag so
// that "Application/JSON; charset=utf-8" finds the codec registered
// under "application/json".
func normalize(tag string) string {
	if i := strings.IndexByte(tag, ';'); i >= 0 {
		tag = tag[:i]
	}
	return strings.ToLower(strings.TrimSpace(tag))
}
