// Copyright (c) 2025 Z5Labs and Contributors
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

// Package echo implements the echo demo service and its client.
//
// The service exists to demonstrate end to end trace correlation: the
// client pre-assigns the trace id of its next root span, announces
// where that trace can be found before performing any call, and the
// server annotates the propagated span instead of starting one of its
// own. The streaming call demonstrates consumer-driven cancellation of
// a paced exchange.
package echo

import (
	"context"
	"time"

	"github.com/z5labs/echotel/echopb"
	"github.com/z5labs/echotel/exchange"
	"github.com/z5labs/echotel/slogfield"
	"github.com/z5labs/echotel/telemetry"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
	"google.golang.org/grpc"
)

type serviceOptions struct {
	pace time.Duration
}

// ServiceOption configures a Service.
type ServiceOption func(*serviceOptions)

// PaceEvery configures the delay between consecutive streamed
// responses. By default responses are streamed back to back.
func PaceEvery(d time.Duration) ServiceOption {
	return func(so *serviceOptions) {
		so.pace = d
	}
}

// Service implements the echopb.EchoServer interface.
type Service struct {
	echopb.UnimplementedEchoServer

	identity *telemetry.Identity
	pace     time.Duration
}

// NewService returns a fully initialized Service which attributes its
// telemetry to the given identity.
func NewService(identity *telemetry.Identity, opts ...ServiceOption) *Service {
	so := &serviceOptions{}
	for _, opt := range opts {
		opt(so)
	}

	return &Service{
		identity: identity,
		pace:     so.pace,
	}
}

// Echo implements the echopb.EchoServer interface.
//
// The RPC span is started by the server transport before Echo runs, so
// Echo only annotates it. When the caller pre-assigned its trace id the
// events land on the exact trace the caller announced.
func (s *Service) Echo(ctx context.Context, req *echopb.EchoRequest) (*echopb.EchoResponse, error) {
	span := trace.SpanFromContext(ctx)
	telemetry.AddEvent(span, "request received",
		attribute.String("echo.message", req.GetMessage()),
	)

	log := s.identity.Logger()
	log.InfoContext(ctx, "echoing message", slogfield.String("message", req.GetMessage()))

	resp := &echopb.EchoResponse{
		Message: req.GetMessage(),
	}
	telemetry.AddEvent(span, "response prepared")
	return resp, nil
}

// EchoStream implements the echopb.EchoServer interface.
//
// It streams the request message back count times, paced if the
// Service is configured to pace. The consumer may walk away at any
// point; the exchange then ends quietly with a single "consumer
// cancelled" annotation rather than an error.
func (s *Service) EchoStream(req *echopb.EchoStreamRequest, stream grpc.ServerStreamingServer[echopb.EchoStreamResponse]) error {
	ctx := stream.Context()
	span := trace.SpanFromContext(ctx)
	log := s.identity.Logger()

	log.InfoContext(ctx, "starting echo stream",
		slogfield.String("message", req.GetMessage()),
		slogfield.Int32("count", req.GetCount()),
	)

	state, err := exchange.Produce(
		ctx,
		int(req.GetCount()),
		func(ctx context.Context, seq int) error {
			telemetry.AddEvent(span, "emitting message",
				attribute.Int("echo.sequence", seq),
			)
			return stream.Send(&echopb.EchoStreamResponse{
				Message:  req.GetMessage(),
				Sequence: int32(seq),
			})
		},
		exchange.PaceEvery(s.pace),
		exchange.OnCancel(func(ctx context.Context) {
			telemetry.AddEvent(span, "consumer cancelled")
			log.InfoContext(ctx, "consumer cancelled echo stream")
		}),
	)
	if err != nil {
		log.ErrorContext(ctx, "echo stream aborted", slogfield.Error(err))
		return err
	}

	log.InfoContext(ctx, "echo stream ended", slogfield.String("state", state.String()))
	return nil
}
