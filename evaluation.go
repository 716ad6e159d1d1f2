// Copyright 2026 The httpc Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

package httpc

import "time"

// A Verdict is the decision component of an Evaluation: whether the
// pipeline should proceed with the current outcome or re-run the
// attempt.
type Verdict int

const (
	// VerdictProceed lets the pipeline continue with the current
	// outcome; the remaining interceptors in the pass still get to
	// vote.
	VerdictProceed Verdict = iota
	// VerdictRetry re-runs the attempt immediately. The first
	// interceptor voting VerdictRetry short-circuits the remaining
	// interceptors in the pass.
	VerdictRetry
	// VerdictRetryAfter re-runs the attempt after a delay. The first
	// interceptor voting VerdictRetryAfter short-circuits the
	// remaining interceptors in the pass.
	VerdictRetryAfter
)

var verdictNames = []string{
	"proceed",
	"retry",
	"retry after",
}

// String returns the name of the verdict.
func (v Verdict) String() string {
	return verdictNames[int(v)]
}

// An Evaluation is an interceptor's vote on a transport error or a
// completed response: proceed with the outcome, retry immediately, or
// retry after a delay. Each interceptor renders exactly one Evaluation
// per pipeline pass.
type Evaluation struct {
	verdict Verdict
	delay   time.Duration
}

// Proceed returns the evaluation that lets the pipeline continue with
// the current outcome. It is the zero value of Evaluation.
func Proceed() Evaluation {
	return Evaluation{}
}

// Retry returns the evaluation that forces an immediate retry.
func Retry() Evaluation {
	return Evaluation{verdict: VerdictRetry}
}

// RetryAfter returns the evaluation that forces a retry after waiting
// for d. The wait is cancellable: cancellation of the call context
// during the wait aborts the call with a Canceled failure.
func RetryAfter(d time.Duration) Evaluation {
	return Evaluation{verdict: VerdictRetryAfter, delay: d}
}

// Verdict returns the decision component of the evaluation.
func (e Evaluation) Verdict() Verdict {
	return e.verdict
}

// Delay returns the wait duration of a VerdictRetryAfter evaluation,
// and zero for every other verdict.
func (e Evaluation) Delay() time.Duration {
	return e.delay
}

// retry reports whether the evaluation dissents from proceeding.
func (e Evaluation) retry() bool {
	return e.verdict != VerdictProceed
}
