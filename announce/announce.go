// Copyright (c) 2025 Z5Labs and Contributors
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

// Package announce renders human-actionable references for a trace.
package announce

import (
	"fmt"
	"net/url"

	"go.opentelemetry.io/otel/trace"
)

const (
	defaultJaegerBaseURL = "http://localhost:16686"
	defaultKibanaBaseURL = "http://localhost:5601"
)

type options struct {
	jaegerBaseURL string
	kibanaBaseURL string
}

// Option configures an [Announcer].
type Option func(*options)

// JaegerBaseURL overrides the base URL of the Jaeger UI.
func JaegerBaseURL(base string) Option {
	return func(o *options) {
		o.jaegerBaseURL = base
	}
}

// KibanaBaseURL overrides the base URL of the Kibana UI.
func KibanaBaseURL(base string) Option {
	return func(o *options) {
		o.kibanaBaseURL = base
	}
}

// Announcer deterministically renders viewer URLs for a trace ID.
//
// The point of announcing is ordering: a caller can arm its ID
// generator with a trace ID, print these references and only then
// perform the traced call, so a human or external system can watch
// the trace live instead of digging its ID out of the backend after
// the fact.
type Announcer struct {
	jaegerBaseURL string
	kibanaBaseURL string
}

// New returns an initialized Announcer.
func New(opts ...Option) *Announcer {
	o := &options{
		jaegerBaseURL: defaultJaegerBaseURL,
		kibanaBaseURL: defaultKibanaBaseURL,
	}
	for _, opt := range opts {
		opt(o)
	}
	return &Announcer{
		jaegerBaseURL: o.jaegerBaseURL,
		kibanaBaseURL: o.kibanaBaseURL,
	}
}

// Announce renders one reference string per configured viewer for the
// given trace ID. It performs no I/O.
//
// The trace ID is rendered with [trace.TraceID.String], the exact
// lowercase hex encoding the OTel SDK reports to telemetry backends.
// Rendering any other format here would silently break
// cross-referencing between the announced links and the recorded
// trace.
func (a *Announcer) Announce(id trace.TraceID) []string {
	hex := id.String()
	return []string{
		fmt.Sprintf("Jaeger: %s/trace/%s", a.jaegerBaseURL, hex),
		fmt.Sprintf("Kibana: %s/app/discover#/?%s", a.kibanaBaseURL, kibanaQuery(hex)),
	}
}

func kibanaQuery(hex string) string {
	g := "(filters:!(),refreshInterval:(pause:!t,value:0),time:(from:now-1h,to:now))"
	a := fmt.Sprintf("(columns:!(message,log.level),filters:!(),query:(language:kuery,query:'trace.id:%q'))", hex)

	v := url.Values{}
	v.Set("_g", g)
	v.Set("_a", a)
	return v.Encode()
}
