// Copyright 2026 The httpc Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

package httpc

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/narq/httpc/request"
)

func TestLogObserver(t *testing.T) {
	t.Run("request", func(t *testing.T) {
		var buf bytes.Buffer
		o := NewLogObserver(zerolog.New(&buf))
		state := newTestState(t)
		state.Request.Body = []byte("abc")

		o.OnPrepared(context.Background(), state.Request, state)

		line := decodeLogLine(t, buf.Bytes())
		assert.Equal(t, "debug", line["level"])
		assert.Equal(t, "request prepared", line["message"])
		assert.Equal(t, "GET", line["method"])
		assert.Equal(t, "test", line["url"])
		assert.Equal(t, float64(3), line["body_bytes"])
		assert.Equal(t, float64(0), line["attempt"])
		assert.NotContains(t, line, "trace_id")
	})
	t.Run("transport error", func(t *testing.T) {
		var buf bytes.Buffer
		o := NewLogObserver(zerolog.New(&buf))
		state := newTestState(t)
		state.Attempt = 2

		o.OnTransportError(context.Background(), errors.New("wire down"), state)

		line := decodeLogLine(t, buf.Bytes())
		assert.Equal(t, "warn", line["level"])
		assert.Equal(t, "transport error", line["message"])
		assert.Equal(t, "wire down", line["error"])
		assert.Equal(t, float64(2), line["attempt"])
	})
	t.Run("response", func(t *testing.T) {
		var buf bytes.Buffer
		o := NewLogObserver(zerolog.New(&buf))
		state := newTestState(t)
		state.Response = &request.Response{StatusCode: 503, Body: []byte("busy")}

		o.OnResponse(context.Background(), state.Response, state)

		line := decodeLogLine(t, buf.Bytes())
		assert.Equal(t, "debug", line["level"])
		assert.Equal(t, "response received", line["message"])
		assert.Equal(t, float64(503), line["status"])
		assert.Equal(t, float64(4), line["body_bytes"])
	})
	t.Run("trace id carried", func(t *testing.T) {
		var buf bytes.Buffer
		o := NewLogObserver(zerolog.New(&buf))
		state := newTestState(t)
		state.SetValue(TraceIDKey, "trace-123")

		o.OnPrepared(context.Background(), state.Request, state)

		line := decodeLogLine(t, buf.Bytes())
		assert.Equal(t, "trace-123", line["trace_id"])
	})
}

func decodeLogLine(t *testing.T, b []byte) map[string]interface{} {
	t.Helper()
	var line map[string]interface{}
	require.NoError(t, json.Unmarshal(b, &line))
	return line
}
