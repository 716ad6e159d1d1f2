// Copyright 2026 The httpc Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

package httpc

import (
	"context"
	"time"

	"github.com/narq/httpc/codec"
	"github.com/narq/httpc/httperr"
	"github.com/narq/httpc/request"
)

const (
	// DefaultMaxRetries is the retry budget used by a client whose
	// MaxRetries field is zero.
	DefaultMaxRetries = 5

	// NoRetries disables retries entirely when assigned to a client's
	// MaxRetries field. An interceptor vote to retry then immediately
	// exhausts the budget.
	NoRetries = -1

	// DefaultTimeout is the per-attempt timeout used by a client whose
	// Timeout field is zero.
	DefaultTimeout = 30 * time.Second
)

// A Client executes logical HTTP calls through a pipeline of
// interceptors with evaluation-driven retries. Its zero value is a
// valid configuration.
//
// The zero value client uses a zero HTTPTransport as the Transport,
// no interceptors, no observers, a retry budget of DefaultMaxRetries,
// a per-attempt timeout of DefaultTimeout, and codec.Default as the
// codec registry.
//
// All fields must be treated as read-only once the client is in use.
// Client is safe for concurrent use by multiple goroutines; in-flight
// calls share no mutable state beyond the interceptor and observer
// instances themselves, which must be concurrency-safe.
//
// Within one call everything is strictly sequential: Prepare hooks run
// in list order before the transport call, Handle and Process hooks
// run in reverse list order after it, and a retry attempt only starts
// once the previous attempt has been fully evaluated. The pipeline
// never fans out in parallel.
type Client struct {
	// Transport sends prepared request attempts and returns buffered
	// results.
	//
	// If Transport is nil, a zero HTTPTransport is used.
	Transport Transport

	// Interceptors is the client-level interceptor list. It applies to
	// every call; per-call interceptors given via WithInterceptors are
	// concatenated after it, so client-level Prepare hooks run first
	// and client-level Handle/Process hooks vote last.
	Interceptors []Interceptor

	// Observers is the list of notification sinks told about prepared
	// requests, transport errors and responses. Observers never
	// influence the outcome of a call.
	Observers []Observer

	// MaxRetries is the maximum number of retries per call, not
	// counting the initial attempt. A value of zero means
	// DefaultMaxRetries; use NoRetries to disable retries.
	MaxRetries int

	// Timeout is the deadline applied to each individual attempt,
	// surfaced to the transport through the attempt context. A value
	// of zero means DefaultTimeout. An attempt exceeding it fails with
	// a transport error, which is distinct from cancellation of the
	// caller's context.
	Timeout time.Duration

	// Codecs resolves MIME type tags for the typed Fetch surface. If
	// Codecs is nil, codec.Default is used.
	Codecs *codec.Registry
}

// A CallOption customizes a single Send or Fetch call.
type CallOption func(*callConfig)

type callConfig struct {
	interceptors []Interceptor
	tags         map[interface{}]interface{}
	codecs       *codec.Registry
}

// WithInterceptors appends per-call interceptors to the chain, after
// the client-level list. Their Prepare hooks therefore finalize the
// request last, and their Handle and Process hooks get first refusal
// on the outcome.
func WithInterceptors(ics ...Interceptor) CallOption {
	return func(cfg *callConfig) {
		cfg.interceptors = append(cfg.interceptors, ics...)
	}
}

// WithTags seeds the call state's tag map. Keys follow the rules of
// request.State.SetValue.
func WithTags(tags map[interface{}]interface{}) CallOption {
	return func(cfg *callConfig) {
		if cfg.tags == nil {
			cfg.tags = make(map[interface{}]interface{}, len(tags))
		}
		for k, v := range tags {
			cfg.tags[k] = v
		}
	}
}

// WithCodecs overrides the client's codec registry for one call.
func WithCodecs(r *codec.Registry) CallOption {
	return func(cfg *callConfig) {
		cfg.codecs = r
	}
}

// Send executes one logical call through the full pipeline and returns
// the final response.
//
// The request is prepared by every interceptor in list order, sent
// through the transport, and the outcome is evaluated by every
// interceptor in reverse list order. Any interceptor voting to retry
// re-runs the pipeline from preparation with the state's attempt
// counter incremented, until the retry budget is exhausted.
//
// Every error returned by Send is an *httperr.Error carrying exactly
// one failure kind. For the status classification kinds the response
// is returned alongside the error, and also travels inside it, so the
// caller can attempt candidate decodings of the error body.
func (c *Client) Send(ctx context.Context, req *request.Request, opts ...CallOption) (*request.Response, error) {
	if ctx == nil {
		ctx = context.Background()
	}
	cfg := newCallConfig(opts)

	ics := make(chain, 0, len(c.Interceptors)+len(cfg.interceptors))
	ics = append(ics, c.Interceptors...)
	ics = append(ics, cfg.interceptors...)
	obs := observers(c.Observers)

	state := request.NewState(req)
	for k, v := range cfg.tags {
		state.SetValue(k, v)
	}
	defer func() {
		state.End = time.Now()
	}()

	maxRetries := c.maxRetries()

	for {
		if err := ctx.Err(); err != nil {
			return nil, canceled(err)
		}
		state.Response = nil
		state.Err = nil

		if err := ics.prepare(ctx, state); err != nil {
			if ctx.Err() != nil {
				return nil, canceled(ctx.Err())
			}
			return nil, httperr.New(httperr.Preparation, err)
		}
		obs.onPrepared(ctx, state)

		resp, err := c.sendAttempt(ctx, state.Request)
		if ctx.Err() != nil {
			return nil, canceled(ctx.Err())
		}

		var ev Evaluation
		if err != nil {
			state.Err = err
			obs.onTransportError(ctx, err, state)
			ev, _ = ics.handle(ctx, err, state)
			if ctx.Err() != nil {
				return nil, canceled(ctx.Err())
			}
			if !ev.retry() {
				return nil, httperr.New(httperr.Transport, err)
			}
		} else {
			state.Response = resp
			obs.onResponse(ctx, state)
			var perr error
			ev, perr = ics.process(ctx, state)
			if ctx.Err() != nil {
				return nil, canceled(ctx.Err())
			}
			if perr != nil {
				return nil, httperr.New(httperr.Processing, perr)
			}
			if !ev.retry() {
				if cerr := httperr.FromStatus(state.Response); cerr != nil {
					return state.Response, cerr
				}
				return state.Response, nil
			}
		}

		if state.Attempt >= maxRetries {
			return nil, httperr.Exhausted(state.Attempt + 1)
		}
		if d := ev.Delay(); d > 0 {
			timer := time.NewTimer(d)
			select {
			case <-timer.C:
			case <-ctx.Done():
				timer.Stop()
				return nil, canceled(ctx.Err())
			}
		}
		state.Attempt++
	}
}

// sendAttempt surfaces the per-attempt timeout to the transport
// through the attempt context.
func (c *Client) sendAttempt(ctx context.Context, req *request.Request) (*request.Response, error) {
	attemptCtx, cancel := context.WithTimeout(ctx, c.timeout())
	defer cancel()
	return c.transport().Send(attemptCtx, req)
}

// CloseIdleConnections invokes the same method on the client's
// transport.
//
// If the transport has no CloseIdleConnections method, this method
// does nothing.
func (c *Client) CloseIdleConnections() {
	if ic, ok := c.transport().(IdleCloser); ok {
		ic.CloseIdleConnections()
	}
}

var defaultTransport = &HTTPTransport{}

func (c *Client) transport() Transport {
	if c.Transport == nil {
		return defaultTransport
	}
	return c.Transport
}

func (c *Client) maxRetries() int {
	if c.MaxRetries == 0 {
		return DefaultMaxRetries
	}
	if c.MaxRetries < 0 {
		return 0
	}
	return c.MaxRetries
}

func (c *Client) timeout() time.Duration {
	if c.Timeout == 0 {
		return DefaultTimeout
	}
	return c.Timeout
}

func (c *Client) codecs(cfg *callConfig) *codec.Registry {
	if cfg != nil && cfg.codecs != nil {
		return cfg.codecs
	}
	if c.Codecs != nil {
		return c.Codecs
	}
	return codec.Default
}

func newCallConfig(opts []CallOption) *callConfig {
	cfg := &callConfig{}
	for _, opt := range opts {
		opt(cfg)
	}
	return cfg
}

func canceled(err error) error {
	return httperr.New(httperr.Canceled, err)
}
