// Copyright (c) 2025 Z5Labs and Contributors
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

package health

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBinary_Healthy(t *testing.T) {
	t.Run("will report healthy", func(t *testing.T) {
		t.Run("if it is the zero value", func(t *testing.T) {
			var m Binary
			if !assert.True(t, m.Healthy(context.Background())) {
				return
			}
		})

		t.Run("if it has been toggled twice", func(t *testing.T) {
			var m Binary
			m.Toggle()
			m.Toggle()
			if !assert.True(t, m.Healthy(context.Background())) {
				return
			}
		})
	})

	t.Run("will report unhealthy", func(t *testing.T) {
		t.Run("if it has been toggled once", func(t *testing.T) {
			var m Binary
			m.Toggle()
			if !assert.False(t, m.Healthy(context.Background())) {
				return
			}
		})
	})
}

func TestAnd_Healthy(t *testing.T) {
	t.Run("will report unhealthy", func(t *testing.T) {
		t.Run("if any underlying metric is unhealthy", func(t *testing.T) {
			var a, b Binary
			b.Toggle()

			m := And(&a, &b)
			if !assert.False(t, m.Healthy(context.Background())) {
				return
			}
		})
	})

	t.Run("will report healthy", func(t *testing.T) {
		t.Run("if all underlying metrics are healthy", func(t *testing.T) {
			var a, b Binary

			m := And(&a, &b)
			if !assert.True(t, m.Healthy(context.Background())) {
				return
			}
		})
	})
}

func TestOr_Healthy(t *testing.T) {
	t.Run("will report healthy", func(t *testing.T) {
		t.Run("if any underlying metric is healthy", func(t *testing.T) {
			var a, b Binary
			b.Toggle()

			m := Or(&a, &b)
			if !assert.True(t, m.Healthy(context.Background())) {
				return
			}
		})
	})

	t.Run("will report unhealthy", func(t *testing.T) {
		t.Run("if all underlying metrics are unhealthy", func(t *testing.T) {
			var a, b Binary
			a.Toggle()
			b.Toggle()

			m := Or(&a, &b)
			if !assert.False(t, m.Healthy(context.Background())) {
				return
			}
		})
	})
}
