// Copyright 2026 The httpc Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

package httpc

import (
	"context"

	"github.com/narq/httpc/codec"
	"github.com/narq/httpc/httperr"
	"github.com/narq/httpc/request"
)

// A FetchOption customizes the typed Fetch surface: which codecs tag
// the exchange, which status codes mean "no content", and what counts
// as an expected status.
type FetchOption func(*fetchConfig)

type fetchConfig struct {
	contentType string
	accept      string
	empty       []int
	expect      func(int) bool
	callOpts    []CallOption
}

// ContentType sets the MIME type tag used to encode the payload. The
// request's Content-Type header is always derived from this tag, never
// supplied independently, so the header cannot disagree with the codec
// that produced the body. The default is codec.ContentTypeJSON.
func ContentType(tag string) FetchOption {
	return func(cfg *fetchConfig) {
		cfg.contentType = tag
	}
}

// Accept sets the MIME type tag used to decode the response body. The
// request's Accept header is derived from this tag. The default is
// codec.ContentTypeJSON.
func Accept(tag string) FetchOption {
	return func(cfg *fetchConfig) {
		cfg.accept = tag
	}
}

// EmptyStatus declares status codes whose responses carry no decodable
// content. A successful response with one of these codes yields the
// zero value of the result type instead of attempting to decode an
// empty body. A typical use is EmptyStatus(204).
func EmptyStatus(codes ...int) FetchOption {
	return func(cfg *fetchConfig) {
		cfg.empty = append(cfg.empty, codes...)
	}
}

// ExpectStatus overrides the expected-status check applied after the
// pipeline succeeds. The default accepts 200 through 299 inclusive.
// Endpoints that legitimately succeed with 3xx codes can widen the
// check here. A successful response failing the check yields an
// UnexpectedStatus failure carrying the full response.
func ExpectStatus(ok func(status int) bool) FetchOption {
	return func(cfg *fetchConfig) {
		cfg.expect = ok
	}
}

// WithCallOptions forwards per-call options, such as WithInterceptors
// and WithTags, to the underlying Send.
func WithCallOptions(opts ...CallOption) FetchOption {
	return func(cfg *fetchConfig) {
		cfg.callOpts = append(cfg.callOpts, opts...)
	}
}

// Fetch executes a typed call: it encodes payload with the codec for
// the content type tag, sends the request through c's full pipeline,
// and decodes the response body into a T with the codec for the accept
// tag.
//
// A nil payload sends no body. A successful response whose status is
// listed in EmptyStatus yields the zero T without decoding. Every
// failure is an *httperr.Error: encoding failures are Encoding,
// decoding failures are Decoding, and unexpected-but-successful status
// codes are UnexpectedStatus; pipeline failures pass through from
// Send unchanged.
func Fetch[T any](ctx context.Context, c *Client, method, url string, payload interface{}, opts ...FetchOption) (T, error) {
	return fetch[T](ctx, c, method, url, payload, nil, opts)
}

// FetchParsed is Fetch with a caller-supplied parser replacing the
// codec registry on the decode side, for response formats no codec
// covers. The parser receives the full buffered body of a successful
// response; a parser error yields a Decoding failure.
func FetchParsed[T any](ctx context.Context, c *Client, method, url string, payload interface{}, parser func([]byte) (T, error), opts ...FetchOption) (T, error) {
	return fetch[T](ctx, c, method, url, payload, parser, opts)
}

func fetch[T any](ctx context.Context, c *Client, method, url string, payload interface{}, parser func([]byte) (T, error), opts []FetchOption) (T, error) {
	var zero T

	cfg := &fetchConfig{
		contentType: codec.ContentTypeJSON,
		accept:      codec.ContentTypeJSON,
		expect:      expect2xx,
	}
	for _, opt := range opts {
		opt(cfg)
	}
	reg := c.codecs(newCallConfig(cfg.callOpts))

	req, err := request.New(method, url, nil)
	if err != nil {
		return zero, httperr.New(httperr.Preparation, err)
	}
	if payload != nil {
		body, err := reg.Encode(payload, cfg.contentType)
		if err != nil {
			return zero, httperr.New(httperr.Encoding, err)
		}
		req.Body = body
		req.Header.Set("Content-Type", cfg.contentType)
	}
	req.Header.Set("Accept", cfg.accept)

	resp, err := c.Send(ctx, req, cfg.callOpts...)
	if err != nil {
		return zero, err
	}

	for _, code := range cfg.empty {
		if resp.StatusCode == code {
			return zero, nil
		}
	}
	if !cfg.expect(resp.StatusCode) {
		return zero, httperr.WithResponse(httperr.UnexpectedStatus, resp)
	}

	if parser != nil {
		v, err := parser(resp.Body)
		if err != nil {
			return zero, httperr.New(httperr.Decoding, err)
		}
		return v, nil
	}
	var v T
	if err := reg.Decode(resp.Body, &v, cfg.accept); err != nil {
		return zero, httperr.New(httperr.Decoding, err)
	}
	return v, nil
}

func expect2xx(status int) bool {
	return status >= 200 && status < 300
}
