// Copyright 2026 The httpc Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

package httperr

// A Kind identifies which member of the closed failure taxonomy a
// pipeline error belongs to. Every failed call produces exactly one
// Kind; no other error types escape the pipeline.
type Kind int

const (
	// Encoding indicates the request payload could not be serialized.
	// Encoding failures happen before any wire activity and are never
	// retried.
	Encoding Kind = iota
	// Decoding indicates the response body could not be deserialized
	// into the expected type. Decoding failures are fatal.
	Decoding
	// Preparation indicates an interceptor's Prepare hook failed. A
	// preparation failure is fatal and is never classified as a
	// transport failure.
	Preparation
	// Processing indicates an interceptor's Process hook failed while
	// handling an otherwise successful transport response. Fatal.
	Processing
	// Transport indicates the underlying transport failed to complete
	// the exchange. A transport failure propagates as-is, carrying the
	// original cause, unless an interceptor votes to retry it.
	Transport
	// ClientStatus indicates the final response carried a 4xx status
	// code. The full response travels with the error so the caller can
	// attempt its own decodings of the error body.
	ClientStatus
	// ServerStatus indicates the final response carried a 5xx status
	// code. The full response travels with the error.
	ServerStatus
	// UnexpectedStatus indicates the final response carried a status
	// code outside every recognized range. The full response travels
	// with the error.
	UnexpectedStatus
	// RetryBudget indicates the call's retry budget was exhausted: an
	// interceptor voted to retry but the attempt counter had reached
	// the client's maximum retry count.
	RetryBudget
	// Canceled indicates cancellation of the caller's context was
	// observed at a suspension point. It is distinct from any
	// transport error.
	Canceled
	// kindSentinel provides the total number of kinds typed as a Kind.
	kindSentinel

	// numKinds provides the total number of kinds as an int.
	numKinds = int(kindSentinel)
)

var kindNames = []string{
	"encoding",
	"decoding",
	"preparation",
	"processing",
	"transport",
	"client status",
	"server status",
	"unexpected status",
	"retry budget",
	"canceled",
}

// Kinds returns a slice containing every failure kind a pipeline call
// can produce.
func Kinds() []Kind {
	ks := make([]Kind, numKinds)
	for i := range ks {
		ks[i] = Kind(i)
	}
	return ks
}

// Name returns the name of the failure kind.
func (k Kind) Name() string {
	return kindNames[int(k)]
}

// String returns the name of the failure kind.
func (k Kind) String() string {
	return k.Name()
}
