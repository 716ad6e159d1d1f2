// Copyright 2026 The httpc Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

package request

import (
	"context"
	"io"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew(t *testing.T) {
	t.Run("happy path", func(t *testing.T) {
		testCases := []struct {
			name           string
			method         string
			url            string
			body           interface{}
			expectedMethod string
			expectedBody   []byte
		}{
			{
				name:           "empty method means GET",
				method:         "",
				url:            "http://example.com",
				expectedMethod: "GET",
			},
			{
				name:           "string body",
				method:         "POST",
				url:            "http://example.com/upload",
				body:           "foo",
				expectedMethod: "POST",
				expectedBody:   []byte("foo"),
			},
			{
				name:           "byte slice body",
				method:         "PUT",
				url:            "http://example.com/put",
				body:           []byte("bar"),
				expectedMethod: "PUT",
				expectedBody:   []byte("bar"),
			},
		}
		for _, testCase := range testCases {
			t.Run(testCase.name, func(t *testing.T) {
				req, err := New(testCase.method, testCase.url, testCase.body)
				require.NoError(t, err)
				assert.Equal(t, testCase.expectedMethod, req.Method)
				assert.Equal(t, testCase.expectedBody, req.Body)
				assert.NotNil(t, req.Header)
				assert.False(t, req.FollowRedirects)
			})
		}
	})
	t.Run("invalid method", func(t *testing.T) {
		req, err := New("GET IT", "http://example.com", nil)
		assert.Nil(t, req)
		assert.EqualError(t, err, `httpc/request: invalid method "GET IT"`)
	})
	t.Run("invalid url", func(t *testing.T) {
		req, err := New("GET", "://nope", nil)
		assert.Nil(t, req)
		assert.Error(t, err)
	})
	t.Run("empty port removed", func(t *testing.T) {
		req, err := New("GET", "http://example.com:/x", nil)
		require.NoError(t, err)
		assert.Equal(t, "example.com", req.URL.Host)
	})
	t.Run("invalid body type", func(t *testing.T) {
		req, err := New("GET", "http://example.com", 10)
		assert.Nil(t, req)
		assert.EqualError(t, err, badBodyTypeMsg)
	})
}

func TestRequestClone(t *testing.T) {
	req, err := New("POST", "http://example.com/a", "body")
	require.NoError(t, err)
	req.Header.Set("X-Foo", "1")

	req2 := req.Clone()
	req2.URL.Path = "/b"
	req2.Header.Set("X-Foo", "2")

	assert.Equal(t, "/a", req.URL.Path)
	assert.Equal(t, "1", req.Header.Get("X-Foo"))
	assert.Equal(t, "/b", req2.URL.Path)
	assert.Equal(t, "2", req2.Header.Get("X-Foo"))
	assert.Equal(t, req.Body, req2.Body)
}

func TestRequestSetBasicAuth(t *testing.T) {
	req, err := New("GET", "http://example.com", nil)
	require.NoError(t, err)
	req.SetBasicAuth("Aladdin", "open sesame")
	assert.Equal(t, "Basic QWxhZGRpbjpvcGVuIHNlc2FtZQ==", req.Header.Get("Authorization"))
}

func TestRequestAddCookie(t *testing.T) {
	req, err := New("GET", "http://example.com", nil)
	require.NoError(t, err)
	req.AddCookie(&http.Cookie{Name: "a", Value: "1"})
	assert.Equal(t, "a=1", req.Header.Get("Cookie"))
	req.AddCookie(&http.Cookie{Name: "b", Value: "2"})
	assert.Equal(t, "a=1; b=2", req.Header.Get("Cookie"))
}

func TestRequestToHTTP(t *testing.T) {
	t.Run("with body", func(t *testing.T) {
		req, err := New("POST", "http://example.com/upload", "payload")
		require.NoError(t, err)
		req.Header.Set("Content-Type", "text/plain")

		hr := req.ToHTTP(context.Background())

		assert.Equal(t, "POST", hr.Method)
		assert.Same(t, req.URL, hr.URL)
		assert.Equal(t, "text/plain", hr.Header.Get("Content-Type"))
		assert.Equal(t, int64(7), hr.ContentLength)
		b, err := io.ReadAll(hr.Body)
		require.NoError(t, err)
		assert.Equal(t, []byte("payload"), b)
		require.NotNil(t, hr.GetBody)
		rc, err := hr.GetBody()
		require.NoError(t, err)
		b, err = io.ReadAll(rc)
		require.NoError(t, err)
		assert.Equal(t, []byte("payload"), b)
	})
	t.Run("without body", func(t *testing.T) {
		req, err := New("GET", "http://example.com", nil)
		require.NoError(t, err)

		hr := req.ToHTTP(context.Background())

		assert.Nil(t, hr.Body)
		assert.Equal(t, int64(0), hr.ContentLength)
		assert.Equal(t, "example.com", hr.Host)
	})
}
