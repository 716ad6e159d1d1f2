// Copyright 2026 The httpc Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

package codec

import "encoding/json"

// ContentTypeJSON is the MIME type tag of the built-in JSON codec.
const ContentTypeJSON = "application/json"

// JSON is the built-in JSON codec. It is registered in every registry
// returned by NewRegistry, including Default.
var JSON Codec = jsonCodec{}

type jsonCodec struct{}

func (jsonCodec) ContentType() string {
	return ContentTypeJSON
}

func (jsonCodec) Encode(v interface{}) ([]byte, error) {
	return json.Marshal(v)
}

func (jsonCodec) Decode(data []byte, v interface{}) error {
	return json.Unmarshal(data, v)
}
