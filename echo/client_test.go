// Copyright (c) 2025 Z5Labs and Contributors
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

package echo

import (
	"bytes"
	"context"
	"errors"
	"io"
	"strings"
	"testing"

	"github.com/z5labs/echotel/echopb"

	"github.com/stretchr/testify/assert"
	"go.opentelemetry.io/otel/trace"
	"google.golang.org/grpc"
	"google.golang.org/grpc/metadata"
)

type echoClientStub struct {
	echoFunc   func(context.Context, *echopb.EchoRequest) (*echopb.EchoResponse, error)
	streamFunc func(context.Context, *echopb.EchoStreamRequest) (grpc.ServerStreamingClient[echopb.EchoStreamResponse], error)
}

func (c *echoClientStub) Echo(ctx context.Context, in *echopb.EchoRequest, opts ...grpc.CallOption) (*echopb.EchoResponse, error) {
	return c.echoFunc(ctx, in)
}

func (c *echoClientStub) EchoStream(ctx context.Context, in *echopb.EchoStreamRequest, opts ...grpc.CallOption) (grpc.ServerStreamingClient[echopb.EchoStreamResponse], error) {
	return c.streamFunc(ctx, in)
}

type streamClientStub struct {
	ctx   context.Context
	resps []*echopb.EchoStreamResponse
}

func (s *streamClientStub) Recv() (*echopb.EchoStreamResponse, error) {
	if len(s.resps) == 0 {
		return nil, io.EOF
	}
	resp := s.resps[0]
	s.resps = s.resps[1:]
	return resp, nil
}
func (s *streamClientStub) Header() (metadata.MD, error) { return nil, nil }
func (s *streamClientStub) Trailer() metadata.MD         { return nil }
func (s *streamClientStub) CloseSend() error             { return nil }
func (s *streamClientStub) Context() context.Context     { return s.ctx }
func (s *streamClientStub) SendMsg(m any) error          { return nil }
func (s *streamClientStub) RecvMsg(m any) error          { return nil }

func TestClient_Echo(t *testing.T) {
	t.Run("will announce the trace id before the call", func(t *testing.T) {
		t.Run("if the unary call succeeds", func(t *testing.T) {
			identity, _ := newTestIdentity(t, "echo-client")

			var buf bytes.Buffer
			c := NewClient(identity, nil, AnnounceTo(&buf))

			var announced string
			var callTraceID trace.TraceID
			c.echo = &echoClientStub{
				echoFunc: func(ctx context.Context, in *echopb.EchoRequest) (*echopb.EchoResponse, error) {
					announced = buf.String()
					callTraceID = trace.SpanContextFromContext(ctx).TraceID()
					return &echopb.EchoResponse{Message: in.GetMessage()}, nil
				},
			}

			msg, err := c.Echo(context.Background(), "hello")
			if !assert.Nil(t, err) {
				return
			}
			if !assert.Equal(t, "hello", msg) {
				return
			}

			// both references were rendered before the request left
			lines := strings.Split(strings.TrimSpace(announced), "\n")
			if !assert.Len(t, lines, 2) {
				return
			}
			for _, line := range lines {
				if !assert.Contains(t, line, callTraceID.String()) {
					return
				}
			}
		})
	})

	t.Run("will assign a fresh trace id per call", func(t *testing.T) {
		t.Run("if multiple calls are made through one client", func(t *testing.T) {
			identity, _ := newTestIdentity(t, "echo-client")

			var buf bytes.Buffer
			c := NewClient(identity, nil, AnnounceTo(&buf))

			var traceIDs []trace.TraceID
			c.echo = &echoClientStub{
				echoFunc: func(ctx context.Context, in *echopb.EchoRequest) (*echopb.EchoResponse, error) {
					traceIDs = append(traceIDs, trace.SpanContextFromContext(ctx).TraceID())
					return &echopb.EchoResponse{Message: in.GetMessage()}, nil
				},
			}

			for range 2 {
				_, err := c.Echo(context.Background(), "hello")
				if !assert.Nil(t, err) {
					return
				}
			}

			if !assert.Len(t, traceIDs, 2) {
				return
			}
			if !assert.NotEqual(t, traceIDs[0], traceIDs[1]) {
				return
			}
		})
	})

	t.Run("will return the transport error unchanged", func(t *testing.T) {
		t.Run("if the unary call fails", func(t *testing.T) {
			identity, _ := newTestIdentity(t, "echo-client")

			var buf bytes.Buffer
			c := NewClient(identity, nil, AnnounceTo(&buf))

			callErr := errors.New("failed to call")
			c.echo = &echoClientStub{
				echoFunc: func(ctx context.Context, in *echopb.EchoRequest) (*echopb.EchoResponse, error) {
					return nil, callErr
				},
			}

			_, err := c.Echo(context.Background(), "hello")
			if !assert.Equal(t, callErr, err) {
				return
			}
		})
	})
}

func TestClient_EchoFirst(t *testing.T) {
	t.Run("will cancel the exchange", func(t *testing.T) {
		t.Run("if the first response arrived", func(t *testing.T) {
			identity, _ := newTestIdentity(t, "echo-client")

			var buf bytes.Buffer
			c := NewClient(identity, nil, AnnounceTo(&buf))

			var callCtx context.Context
			c.echo = &echoClientStub{
				streamFunc: func(ctx context.Context, in *echopb.EchoStreamRequest) (grpc.ServerStreamingClient[echopb.EchoStreamResponse], error) {
					callCtx = ctx
					return &streamClientStub{
						ctx: ctx,
						resps: []*echopb.EchoStreamResponse{
							{Message: in.GetMessage(), Sequence: 0},
							{Message: in.GetMessage(), Sequence: 1},
						},
					}, nil
				},
			}

			msg, err := c.EchoFirst(context.Background(), "hello", 2)
			if !assert.Nil(t, err) {
				return
			}
			if !assert.Equal(t, "hello", msg) {
				return
			}
			if !assert.ErrorIs(t, callCtx.Err(), context.Canceled) {
				return
			}
		})
	})

	t.Run("will return the stream error", func(t *testing.T) {
		t.Run("if the stream ends before the first response", func(t *testing.T) {
			identity, _ := newTestIdentity(t, "echo-client")

			var buf bytes.Buffer
			c := NewClient(identity, nil, AnnounceTo(&buf))

			c.echo = &echoClientStub{
				streamFunc: func(ctx context.Context, in *echopb.EchoStreamRequest) (grpc.ServerStreamingClient[echopb.EchoStreamResponse], error) {
					return &streamClientStub{ctx: ctx}, nil
				},
			}

			_, err := c.EchoFirst(context.Background(), "hello", 2)
			if !assert.Equal(t, io.EOF, err) {
				return
			}
		})
	})
}
