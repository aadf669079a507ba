// Copyright (c) 2025 Z5Labs and Contributors
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

package telemetry

import (
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
)

// AddEvent appends a structured event to the given span.
//
// The span is threaded explicitly rather than looked up from ambient
// state so events always land on the span the caller is actually
// working within. A nil or non-recording span makes this a no-op, not
// an error, which keeps call sites free of conditionals.
func AddEvent(span trace.Span, name string, attrs ...attribute.KeyValue) {
	if span == nil || !span.IsRecording() {
		return
	}
	span.AddEvent(name, trace.WithAttributes(attrs...))
}
