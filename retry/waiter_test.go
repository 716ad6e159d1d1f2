// Copyright 2026 The httpc Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

package retry

import (
	"math/rand"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/narq/httpc/request"
)

func TestFixedWaiter(t *testing.T) {
	w := NewFixedWaiter(250 * time.Millisecond)
	assert.Equal(t, 250*time.Millisecond, w.Wait(&request.State{}))
	assert.Equal(t, 250*time.Millisecond, w.Wait(&request.State{Attempt: 10}))
}

func TestNewExpWaiterPanics(t *testing.T) {
	assert.Panics(t, func() { NewExpWaiter(0, time.Second, nil) })
	assert.Panics(t, func() { NewExpWaiter(time.Second, time.Millisecond, nil) })
	assert.Panics(t, func() { NewExpWaiter(time.Second, time.Minute, "jitter") })
	var r *rand.Rand
	assert.Panics(t, func() { NewExpWaiter(time.Second, time.Minute, r) })
}

func TestExpWaiterNoJitter(t *testing.T) {
	w := NewExpWaiter(50*time.Millisecond, time.Second, nil)
	assert.Equal(t, 50*time.Millisecond, w.Wait(&request.State{Attempt: 0}))
	assert.Equal(t, 100*time.Millisecond, w.Wait(&request.State{Attempt: 1}))
	assert.Equal(t, 200*time.Millisecond, w.Wait(&request.State{Attempt: 2}))
	assert.Equal(t, 400*time.Millisecond, w.Wait(&request.State{Attempt: 3}))
	assert.Equal(t, 800*time.Millisecond, w.Wait(&request.State{Attempt: 4}))
	assert.Equal(t, time.Second, w.Wait(&request.State{Attempt: 5}))
	assert.Equal(t, time.Second, w.Wait(&request.State{Attempt: 60}))
	// Shifting past 63 bits must saturate, not wrap negative.
	assert.Equal(t, time.Second, w.Wait(&request.State{Attempt: 64}))
}

func TestExpWaiterJitter(t *testing.T) {
	testCases := []struct {
		name   string
		jitter interface{}
	}{
		{name: "time seed", jitter: time.Now()},
		{name: "int seed", jitter: 42},
		{name: "int64 seed", jitter: int64(42)},
		{name: "source", jitter: rand.NewSource(42)},
		{name: "rand", jitter: rand.New(rand.NewSource(42))},
	}
	for _, testCase := range testCases {
		t.Run(testCase.name, func(t *testing.T) {
			w := NewExpWaiter(50*time.Millisecond, time.Second, testCase.jitter)
			for attempt := 0; attempt < 10; attempt++ {
				d := w.Wait(&request.State{Attempt: attempt})
				assert.GreaterOrEqual(t, d, time.Duration(0))
				assert.Less(t, d, time.Second)
			}
		})
	}
}
