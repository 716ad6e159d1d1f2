// Copyright 2026 The httpc Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

package httpc

import (
	"context"
	"io"
	"net/http"

	"github.com/narq/httpc/request"
)

// An HTTPDoer implements a Do method in the same manner as the GoLang
// standard library http.Client from the net/http package.
type HTTPDoer interface {
	// Do sends an HTTP request and returns an HTTP response following
	// policy (such as redirects, cookies, auth) configured on the
	// HTTPDoer.
	//
	// The Do method must follow the contract documented on the GoLang
	// standard library http.Client from the net/http package.
	Do(r *http.Request) (*http.Response, error)
}

// A Transport sends one prepared request attempt and returns the
// buffered result. It is the boundary between the pipeline and the
// wire: the pipeline treats it as an opaque request/response function.
//
// A Transport must honor cancellation of ctx where the underlying
// mechanism supports it, must honor the request's FollowRedirects
// flag, and must fully read and buffer the response body before
// returning. A returned error means the exchange itself failed; a
// response with any status code, including 4xx and 5xx, is not an
// error at this boundary.
type Transport interface {
	Send(ctx context.Context, req *request.Request) (*request.Response, error)
}

// An HTTPTransport is a Transport backed by an HTTPDoer from the
// net/http ecosystem. Its zero value is valid and uses built-in
// http.Client instances.
//
// HTTPTransport's doer typically has internal state (cached TCP
// connections), so HTTPTransport instances should be reused instead of
// created per call. HTTPTransport is safe for concurrent use by
// multiple goroutines.
type HTTPTransport struct {
	// Doer, if non-nil, sends every wire-level request. A custom doer
	// owns its own redirect policy, so the request's FollowRedirects
	// flag is advisory for it.
	//
	// If Doer is nil, the transport uses a built-in http.Client that
	// follows redirects only when the request's FollowRedirects flag
	// is set.
	Doer HTTPDoer
}

var (
	followClient   = &http.Client{}
	noFollowClient = &http.Client{
		CheckRedirect: func(_ *http.Request, _ []*http.Request) error {
			return http.ErrUseLastResponse
		},
	}
)

// Send converts req into a wire-level request with ctx attached,
// sends it through the doer, and buffers the whole response body.
func (t *HTTPTransport) Send(ctx context.Context, req *request.Request) (*request.Response, error) {
	hr := req.ToHTTP(ctx)
	resp, err := t.doer(req).Do(hr)
	if err != nil {
		return nil, err
	}
	defer func() {
		_ = resp.Body.Close()
	}()
	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, err
	}
	return &request.Response{
		StatusCode: resp.StatusCode,
		Header:     resp.Header,
		Body:       body,
	}, nil
}

// CloseIdleConnections invokes the same method on the transport's
// underlying doer, if it has one.
func (t *HTTPTransport) CloseIdleConnections() {
	if t.Doer == nil {
		followClient.CloseIdleConnections()
		noFollowClient.CloseIdleConnections()
		return
	}
	if ic, ok := t.Doer.(IdleCloser); ok {
		ic.CloseIdleConnections()
	}
}

func (t *HTTPTransport) doer(req *request.Request) HTTPDoer {
	if t.Doer != nil {
		return t.Doer
	}
	if req != nil && req.FollowRedirects {
		return followClient
	}
	return noFollowClient
}

// IdleCloser is the interface that wraps the basic CloseIdleConnections
// method.
//
// If the underlying implementation supports it, CloseIdleConnections
// closes connections which were previously established for requests
// but are now sitting idle in a "keep-alive" state. It does not
// interrupt any connections currently in use.
type IdleCloser interface {
	CloseIdleConnections()
}
