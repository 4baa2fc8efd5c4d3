// Package testutils has channel assertion helpers shared by tests.
package testutils

import (
	"time"

	"github.com/stretchr/testify/assert"

	"go.lepak.sg/treewalk/chops"
)

// TestT is the subset of testing.T these helpers need.
type TestT interface {
	Log(...any)
	Logf(string, ...any)
	Error(...any)
	Errorf(string, ...any) // also used by testify/assert
}

// Drain expects to receive data in order from ch, then expects
// ch to be closed.
// The channel must already be filled with the expected data.
// This will not work if the producer is still sending
// when this is called; use DrainBlocking for that.
func Drain[T any](t TestT, data []T, ch <-chan T) {
	t.Logf("draining: expecting %v", data)
	for i, datum := range data {
		chops.TryRecv(ch).Match(
			func(el T) {
				assert.Equal(t, datum, el)
			},
			func() {
				t.Errorf("channel closed early, expecting %v", datum)
			},
			func() {
				t.Errorf("channel was empty, expecting i=%d %v", i, datum)
			},
		)
	}

	chops.TryRecv(ch).Match(
		func(el T) {
			t.Errorf("channel should be closed, but received: %v", el)
		},
		func() {},
		func() {
			t.Error("at the end of draining, channel was empty but unclosed")
		},
	)
}

// DrainBlocking expects to receive data in order from ch, then
// expects ch to be closed. Unlike Drain, each receive may block, so
// the producer may still be sending when this is called. timeout
// bounds each individual receive, not the whole drain.
func DrainBlocking[T any](t TestT, data []T, ch <-chan T, timeout time.Duration) {
	t.Logf("draining: expecting %v", data)
	timer := time.NewTimer(timeout)
	defer timer.Stop()

	for i, datum := range data {
		if !timer.Stop() {
			<-timer.C
		}
		timer.Reset(timeout)
		select {
		case el, ok := <-ch:
			if !ok {
				t.Errorf("channel closed early, expecting %v", datum)
				return
			}
			assert.Equal(t, datum, el)
		case <-timer.C:
			t.Errorf("timed out, expecting i=%d %v", i, datum)
			return
		}
	}

	if !timer.Stop() {
		<-timer.C
	}
	timer.Reset(timeout)
	select {
	case el, ok := <-ch:
		if ok {
			t.Errorf("channel should be closed, but received: %v", el)
		}
	case <-timer.C:
		t.Error("timed out waiting for the channel to close")
	}
}
