// Copyright 2026 The httpc Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

package retry

import (
	"errors"
	"syscall"
)

// transient reports whether err is transient from the perspective of
// completing an attempt successfully, in other words whether a retry
// after encountering err has some prospect of success.
//
// Transient errors are client-side timeouts (the server may be going
// through a temporary period of slowness), refused connections (the
// remote service may be mid-restart and not yet listening), and reset
// connections (the remote service, or a load balancer in front of it,
// dropped an active connection prematurely).
//
// In assessing transience, transient looks at wrapped cause errors
// contained within err, not just err itself. It never checks whether
// an error has a Temporary() function that returns true, as the
// semantics of Temporary() aren't entirely clear.
func transient(err error) bool {
	if err == nil {
		return false
	}

	var hasTimeout interface{ Timeout() bool }
	if errors.As(err, &hasTimeout) && hasTimeout.Timeout() {
		return true
	}

	var errno syscall.Errno
	if errors.As(err, &errno) {
		return errno == syscall.ECONNRESET || errno == syscall.ECONNREFUSED
	}

	return false
}
