// Copyright 2026 The httpc Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

package httpc

import (
	"context"
	"crypto/tls"
	"errors"
	"io"
	"net"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/net/http2"
	"golang.org/x/net/http2/h2c"

	"github.com/narq/httpc/request"
)

func TestHTTPTransportSend(t *testing.T) {
	t.Run("buffers response body", func(t *testing.T) {
		t.Parallel()
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Header().Set("X-Test", "yes")
			w.WriteHeader(201)
			_, _ = w.Write([]byte("created"))
		}))
		defer server.Close()
		trans := &HTTPTransport{}
		req, err := request.New("GET", server.URL, nil)
		require.NoError(t, err)

		resp, err := trans.Send(context.Background(), req)

		require.NoError(t, err)
		assert.Equal(t, 201, resp.StatusCode)
		assert.Equal(t, "yes", resp.Header.Get("X-Test"))
		assert.Equal(t, []byte("created"), resp.Body)
	})
	t.Run("sends request body", func(t *testing.T) {
		t.Parallel()
		var received []byte
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			received, _ = io.ReadAll(r.Body)
		}))
		defer server.Close()
		trans := &HTTPTransport{}
		req, err := request.New("PUT", server.URL, "wire me")
		require.NoError(t, err)

		_, err = trans.Send(context.Background(), req)

		require.NoError(t, err)
		assert.Equal(t, []byte("wire me"), received)
	})
	t.Run("redirects", func(t *testing.T) {
		t.Parallel()
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			switch r.URL.Path {
			case "/old":
				http.Redirect(w, r, "/new", http.StatusFound)
			case "/new":
				_, _ = w.Write([]byte("landed"))
			}
		}))
		defer server.Close()
		t.Run("not followed by default", func(t *testing.T) {
			trans := &HTTPTransport{}
			req, err := request.New("GET", server.URL+"/old", nil)
			require.NoError(t, err)

			resp, err := trans.Send(context.Background(), req)

			require.NoError(t, err)
			assert.Equal(t, 302, resp.StatusCode)
			assert.Equal(t, "/new", resp.Header.Get("Location"))
		})
		t.Run("followed on request", func(t *testing.T) {
			trans := &HTTPTransport{}
			req, err := request.New("GET", server.URL+"/old", nil)
			require.NoError(t, err)
			req.FollowRedirects = true

			resp, err := trans.Send(context.Background(), req)

			require.NoError(t, err)
			assert.Equal(t, 200, resp.StatusCode)
			assert.Equal(t, []byte("landed"), resp.Body)
		})
	})
	t.Run("context cancellation", func(t *testing.T) {
		t.Parallel()
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			select {
			case <-r.Context().Done():
			case <-time.After(5 * time.Second):
			}
		}))
		defer server.Close()
		trans := &HTTPTransport{}
		req, err := request.New("GET", server.URL, nil)
		require.NoError(t, err)
		ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
		defer cancel()

		resp, err := trans.Send(ctx, req)

		assert.Nil(t, resp)
		require.Error(t, err)
		assert.True(t, errors.Is(err, context.DeadlineExceeded))
	})
	t.Run("http2 cleartext doer", func(t *testing.T) {
		t.Parallel()
		server := httptest.NewServer(h2c.NewHandler(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			_, _ = w.Write([]byte(r.Proto))
		}), &http2.Server{}))
		defer server.Close()
		doer := &http.Client{
			Transport: &http2.Transport{
				AllowHTTP: true,
				DialTLSContext: func(ctx context.Context, network, addr string, _ *tls.Config) (net.Conn, error) {
					var d net.Dialer
					return d.DialContext(ctx, network, addr)
				},
			},
		}
		trans := &HTTPTransport{Doer: doer}
		req, err := request.New("GET", server.URL, nil)
		require.NoError(t, err)

		resp, err := trans.Send(context.Background(), req)

		require.NoError(t, err)
		assert.Equal(t, []byte("HTTP/2.0"), resp.Body)
	})
	t.Run("custom doer", func(t *testing.T) {
		t.Parallel()
		doer := &recordingDoer{
			resp: &http.Response{
				StatusCode: 200,
				Header:     http.Header{},
				Body:       io.NopCloser(strings.NewReader("from doer")),
			},
		}
		trans := &HTTPTransport{Doer: doer}
		req, err := request.New("GET", "test", nil)
		require.NoError(t, err)

		resp, err := trans.Send(context.Background(), req)

		require.NoError(t, err)
		assert.Equal(t, []byte("from doer"), resp.Body)
		require.NotNil(t, doer.last)
		assert.Equal(t, "GET", doer.last.Method)
	})
	t.Run("doer error", func(t *testing.T) {
		t.Parallel()
		boom := errors.New("wire down")
		trans := &HTTPTransport{Doer: &recordingDoer{err: boom}}
		req, err := request.New("GET", "test", nil)
		require.NoError(t, err)

		resp, err := trans.Send(context.Background(), req)

		assert.Nil(t, resp)
		assert.Same(t, boom, err)
	})
}

func TestHTTPTransportCloseIdleConnections(t *testing.T) {
	t.Run("built-in clients", func(t *testing.T) {
		trans := &HTTPTransport{}
		trans.CloseIdleConnections()
	})
	t.Run("closing doer", func(t *testing.T) {
		doer := &closableDoer{}
		trans := &HTTPTransport{Doer: doer}
		trans.CloseIdleConnections()
		assert.True(t, doer.closed)
	})
	t.Run("non-closing doer", func(t *testing.T) {
		trans := &HTTPTransport{Doer: &recordingDoer{err: errors.New("unused")}}
		trans.CloseIdleConnections()
	})
}

type recordingDoer struct {
	last *http.Request
	resp *http.Response
	err  error
}

func (d *recordingDoer) Do(r *http.Request) (*http.Response, error) {
	d.last = r
	return d.resp, d.err
}

type closableDoer struct {
	recordingDoer
	closed bool
}

func (d *closableDoer) CloseIdleConnections() {
	d.closed = true
}
