// Copyright 2026 The httpc Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

package httpc

import (
	"context"
	"net/url"

	"github.com/narq/httpc/httperr"
	"github.com/narq/httpc/request"
)

// Sender is the interface that wraps the basic Send method.
//
// Send executes one logical HTTP call through a request pipeline and
// returns the final response or a taxonomy failure. Client implements
// the Sender interface, and any other Sender implementation must
// behave substantially the same as Client.Send.
type Sender interface {
	Send(ctx context.Context, req *request.Request, opts ...CallOption) (*request.Response, error)
}

// Get uses the specified Sender to issue a GET to the specified URL,
// using the same pipeline as s.Send.
//
// To make a request with custom headers, use request.New and s.Send.
func Get(ctx context.Context, s Sender, url string, opts ...CallOption) (*request.Response, error) {
	req, err := request.New("GET", url, nil)
	if err != nil {
		return nil, httperr.New(httperr.Preparation, err)
	}
	return s.Send(ctx, req, opts...)
}

// Head uses the specified Sender to issue a HEAD to the specified URL,
// using the same pipeline as s.Send.
//
// To make a request with custom headers, use request.New and s.Send.
func Head(ctx context.Context, s Sender, url string, opts ...CallOption) (*request.Response, error) {
	req, err := request.New("HEAD", url, nil)
	if err != nil {
		return nil, httperr.New(httperr.Preparation, err)
	}
	return s.Send(ctx, req, opts...)
}

// Post uses the specified Sender to issue a POST to the specified URL,
// using the same pipeline as s.Send.
//
// The body parameter may be nil for an empty body, or may be any of
// the types supported by request.New and request.BodyBytes, namely:
// string; []byte; io.Reader; and io.ReadCloser.
//
// To make a request with custom headers, use request.New and s.Send.
func Post(ctx context.Context, s Sender, url, contentType string, body interface{}, opts ...CallOption) (*request.Response, error) {
	req, err := request.New("POST", url, body)
	if err != nil {
		return nil, httperr.New(httperr.Preparation, err)
	}
	req.Header.Set("Content-Type", contentType)
	return s.Send(ctx, req, opts...)
}

// PostForm uses the specified Sender to issue a POST to the specified
// URL, with data's keys and values URL-encoded as the request body.
//
// The Content-Type header is set to application/x-www-form-urlencoded.
// To set other headers, use request.New and s.Send.
func PostForm(ctx context.Context, s Sender, url string, data url.Values, opts ...CallOption) (*request.Response, error) {
	return Post(ctx, s, url, "application/x-www-form-urlencoded", data.Encode(), opts...)
}
