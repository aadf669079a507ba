// Copyright (c) 2025 Z5Labs and Contributors
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

package announce

import (
	"strings"
	"testing"

	"github.com/z5labs/echotel/idgen"

	"github.com/stretchr/testify/assert"
	"go.opentelemetry.io/otel/trace"
)

func TestAnnouncer_Announce(t *testing.T) {
	t.Run("will render the lowercase hex trace id", func(t *testing.T) {
		t.Run("if given any valid trace id", func(t *testing.T) {
			id := trace.TraceID{0xab, 0xcd, 0xef, 0x01, 0x23, 0x45, 0x67, 0x89}

			refs := New().Announce(id)
			if !assert.Len(t, refs, 2) {
				return
			}
			for _, ref := range refs {
				if !assert.Contains(t, ref, id.String()) {
					return
				}
			}
		})
	})

	t.Run("will render a parseable trace id", func(t *testing.T) {
		t.Run("if the jaeger reference is split on its path", func(t *testing.T) {
			want := trace.TraceID{0x01, 0x02, 0x03, 0x04}

			refs := New().Announce(want)

			_, hex, found := strings.Cut(refs[0], "/trace/")
			if !assert.True(t, found) {
				return
			}

			got, err := idgen.ParseTraceID(hex)
			if !assert.Nil(t, err) {
				return
			}
			if !assert.Equal(t, want, got) {
				return
			}
		})
	})

	t.Run("will render deterministically", func(t *testing.T) {
		t.Run("if called multiple times with the same trace id", func(t *testing.T) {
			id := trace.TraceID{0xfe}

			a := New()
			if !assert.Equal(t, a.Announce(id), a.Announce(id)) {
				return
			}
		})
	})

	t.Run("will use the configured base urls", func(t *testing.T) {
		t.Run("if the overriding options are set", func(t *testing.T) {
			id := trace.TraceID{0x01}

			refs := New(
				JaegerBaseURL("https://jaeger.example.com"),
				KibanaBaseURL("https://kibana.example.com"),
			).Announce(id)

			if !assert.Contains(t, refs[0], "https://jaeger.example.com/trace/") {
				return
			}
			if !assert.Contains(t, refs[1], "https://kibana.example.com/app/discover") {
				return
			}
		})
	})
}
