// Copyright (c) 2025 Z5Labs and Contributors
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

package idgen

import (
	"context"
	"sync"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"go.opentelemetry.io/otel/trace"
)

func TestGenerator_NewIDs(t *testing.T) {
	t.Run("will return the pre-assigned trace id", func(t *testing.T) {
		t.Run("if the override slot is armed", func(t *testing.T) {
			want := trace.TraceID{0x01, 0x02, 0x03, 0x04}

			g := New()
			g.SetNextTraceID(want)

			tid, sid := g.NewIDs(context.Background())
			if !assert.Equal(t, want, tid) {
				return
			}
			if !assert.True(t, sid.IsValid()) {
				return
			}
		})

		t.Run("if the slot was armed twice without being consumed", func(t *testing.T) {
			first := trace.TraceID{0x01}
			second := trace.TraceID{0x02}

			g := New()
			g.SetNextTraceID(first)
			g.SetNextTraceID(second)

			tid, _ := g.NewIDs(context.Background())
			if !assert.Equal(t, second, tid) {
				return
			}
		})
	})

	t.Run("will return a random trace id", func(t *testing.T) {
		t.Run("if the override slot is empty", func(t *testing.T) {
			g := New()

			tid, sid := g.NewIDs(context.Background())
			if !assert.True(t, tid.IsValid()) {
				return
			}
			if !assert.True(t, sid.IsValid()) {
				return
			}
		})

		t.Run("if the override slot was already consumed", func(t *testing.T) {
			armed := trace.TraceID{0xab, 0xcd}

			g := New()
			g.SetNextTraceID(armed)

			first, _ := g.NewIDs(context.Background())
			if !assert.Equal(t, armed, first) {
				return
			}

			second, _ := g.NewIDs(context.Background())
			if !assert.True(t, second.IsValid()) {
				return
			}
			if !assert.NotEqual(t, armed, second) {
				return
			}
		})
	})

	t.Run("will hand an armed trace id to exactly one caller", func(t *testing.T) {
		t.Run("if multiple callers generate ids concurrently", func(t *testing.T) {
			armed := trace.TraceID{0xfe, 0xed}

			const callers = 16
			for range 100 {
				g := New()
				g.SetNextTraceID(armed)

				ids := make([]trace.TraceID, callers)

				var start sync.WaitGroup
				start.Add(1)
				var done sync.WaitGroup
				for i := range callers {
					done.Add(1)
					go func() {
						defer done.Done()
						start.Wait()
						ids[i], _ = g.NewIDs(context.Background())
					}()
				}
				start.Done()
				done.Wait()

				observed := 0
				for _, id := range ids {
					if id == armed {
						observed += 1
					}
				}
				if !assert.Equal(t, 1, observed) {
					return
				}
			}
		})
	})
}

func TestGenerator_NewSpanID(t *testing.T) {
	t.Run("will always return a valid span id", func(t *testing.T) {
		t.Run("if the override slot is armed", func(t *testing.T) {
			g := New()
			g.SetNextTraceID(trace.TraceID{0x01})

			sid := g.NewSpanID(context.Background(), trace.TraceID{0x01})
			if !assert.True(t, sid.IsValid()) {
				return
			}

			// span ids have no override path so the slot must still be armed
			tid, _ := g.NewIDs(context.Background())
			if !assert.Equal(t, trace.TraceID{0x01}, tid) {
				return
			}
		})
	})
}

func TestFromUUID(t *testing.T) {
	t.Run("will produce a matching hex rendering", func(t *testing.T) {
		t.Run("if the uuid is random", func(t *testing.T) {
			id := uuid.New()

			tid := FromUUID(id)
			if !assert.Equal(t, id.String(), formatAsUUID(tid)) {
				return
			}
		})
	})
}

func TestParseTraceID(t *testing.T) {
	t.Run("will round-trip", func(t *testing.T) {
		t.Run("if given the hex rendering of a trace id", func(t *testing.T) {
			g := New()

			want, _ := g.NewIDs(context.Background())

			got, err := ParseTraceID(want.String())
			if !assert.Nil(t, err) {
				return
			}
			if !assert.Equal(t, want, got) {
				return
			}
		})
	})

	t.Run("will return an error", func(t *testing.T) {
		t.Run("if the hex string is too short", func(t *testing.T) {
			_, err := ParseTraceID("abcd")
			if !assert.NotNil(t, err) {
				return
			}
		})
	})
}

func formatAsUUID(tid trace.TraceID) string {
	return uuid.UUID(tid).String()
}
