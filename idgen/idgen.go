// Copyright (c) 2025 Z5Labs and Contributors
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

// Package idgen provides an OpenTelemetry ID generator whose next trace ID
// can be pre-assigned by the caller.
package idgen

import (
	"context"
	"encoding/binary"
	"math/rand/v2"
	"sync/atomic"

	"github.com/google/uuid"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.opentelemetry.io/otel/trace"
)

// Generator implements [sdktrace.IDGenerator]. It behaves exactly like the
// SDKs default generator except that the trace ID for the next root span
// can be pre-assigned with [Generator.SetNextTraceID]. This allows external
// tooling to be told the trace ID before the traced call even executes.
//
// Each Generator owns a single override slot. A Generator must not be
// shared between telemetry identities since the slot would race across
// unrelated root spans.
//
// The zero value is ready to use.
type Generator struct {
	nextTraceID atomic.Pointer[trace.TraceID]
}

var _ sdktrace.IDGenerator = (*Generator)(nil)

// New returns an initialized Generator.
func New() *Generator {
	return &Generator{}
}

// SetNextTraceID arms the override slot with id. The next call to NewIDs
// returns id instead of a random trace ID and disarms the slot.
//
// The slot holds at most one ID: arming it twice without an intervening
// NewIDs silently discards the earlier ID. Callers coordinating with
// external tooling should arm the slot immediately before starting the
// root span.
func (g *Generator) SetNextTraceID(id trace.TraceID) {
	g.nextTraceID.Store(&id)
}

// NewIDs implements the [sdktrace.IDGenerator] interface.
//
// If an override is armed it is taken and cleared in a single atomic step
// so concurrent callers can never both observe the same pre-assigned ID.
func (g *Generator) NewIDs(ctx context.Context) (trace.TraceID, trace.SpanID) {
	if id := g.nextTraceID.Swap(nil); id != nil {
		return *id, g.NewSpanID(ctx, *id)
	}

	var tid trace.TraceID
	for {
		binary.NativeEndian.PutUint64(tid[:8], rand.Uint64())
		binary.NativeEndian.PutUint64(tid[8:], rand.Uint64())
		if tid.IsValid() {
			break
		}
	}
	return tid, g.NewSpanID(ctx, tid)
}

// NewSpanID implements the [sdktrace.IDGenerator] interface.
//
// Span IDs are never pre-assigned; a fresh random non-zero ID is
// returned for every span.
func (g *Generator) NewSpanID(_ context.Context, _ trace.TraceID) trace.SpanID {
	var sid trace.SpanID
	for {
		binary.NativeEndian.PutUint64(sid[:], rand.Uint64())
		if sid.IsValid() {
			break
		}
	}
	return sid
}

// FromUUID converts a UUID into a trace ID. Both are 128 bit values so
// the conversion is lossless and the hex renderings match, which lets a
// caller mint the trace ID as a UUID and cross-reference it in systems
// that only understand UUIDs.
func FromUUID(id uuid.UUID) trace.TraceID {
	return trace.TraceID(id)
}

// ParseTraceID parses the 32 character lowercase hex encoding of a trace
// ID, i.e. the exact format produced by [trace.TraceID.String] and by the
// announcer URLs.
func ParseTraceID(s string) (trace.TraceID, error) {
	return trace.TraceIDFromHex(s)
}
