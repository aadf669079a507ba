// Copyright (c) 2025 Z5Labs and Contributors
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

package echo

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/z5labs/echotel/announce"
	"github.com/z5labs/echotel/echopb"
	"github.com/z5labs/echotel/idgen"
	"github.com/z5labs/echotel/slogfield"
	"github.com/z5labs/echotel/telemetry"

	"github.com/google/uuid"
	"go.opentelemetry.io/contrib/instrumentation/google.golang.org/grpc/otelgrpc"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials"
	"google.golang.org/grpc/credentials/insecure"
)

type clientOptions struct {
	announcer  *announce.Announcer
	announceTo io.Writer
	tc         credentials.TransportCredentials
}

// ClientOption configures a Client.
type ClientOption func(*clientOptions)

// Announcer configures the announcer used to render correlation
// references for each pre-assigned trace id.
func Announcer(a *announce.Announcer) ClientOption {
	return func(co *clientOptions) {
		co.announcer = a
	}
}

// AnnounceTo configures where correlation references are written.
//
// Default is os.Stdout.
func AnnounceTo(w io.Writer) ClientOption {
	return func(co *clientOptions) {
		co.announceTo = w
	}
}

// WithTransportCredentials configures the gRPC transport credentials
// used when dialing.
func WithTransportCredentials(tc credentials.TransportCredentials) ClientOption {
	return func(co *clientOptions) {
		co.tc = tc
	}
}

// Client calls the echo service with every call correlated up front:
// the trace id is chosen and announced before the request leaves the
// process.
type Client struct {
	identity   *telemetry.Identity
	announcer  *announce.Announcer
	announceTo io.Writer

	conn *grpc.ClientConn
	echo echopb.EchoClient
}

// NewClient returns a Client which performs its calls over the given
// connection.
func NewClient(identity *telemetry.Identity, cc grpc.ClientConnInterface, opts ...ClientOption) *Client {
	co := &clientOptions{
		announcer:  announce.New(),
		announceTo: os.Stdout,
	}
	for _, opt := range opts {
		opt(co)
	}

	return &Client{
		identity:   identity,
		announcer:  co.announcer,
		announceTo: co.announceTo,
		echo:       echopb.NewEchoClient(cc),
	}
}

// Dial connects to an echo service at the given target address. The
// connection carries the identity's propagator and tracer provider so
// client spans and trace context never depend on any process-wide
// defaults.
func Dial(identity *telemetry.Identity, target string, opts ...ClientOption) (*Client, error) {
	co := &clientOptions{
		announcer:  announce.New(),
		announceTo: os.Stdout,
		tc:         insecure.NewCredentials(),
	}
	for _, opt := range opts {
		opt(co)
	}

	conn, err := grpc.NewClient(
		target,
		grpc.WithTransportCredentials(co.tc),
		grpc.WithStatsHandler(otelgrpc.NewClientHandler(
			otelgrpc.WithTracerProvider(identity.TracerProvider()),
			otelgrpc.WithPropagators(identity.Propagator()),
		)),
	)
	if err != nil {
		return nil, err
	}

	return &Client{
		identity:   identity,
		announcer:  co.announcer,
		announceTo: co.announceTo,
		conn:       conn,
		echo:       echopb.NewEchoClient(conn),
	}, nil
}

// Close closes the underlying connection, if this Client owns one.
func (c *Client) Close() error {
	if c.conn == nil {
		return nil
	}
	return c.conn.Close()
}

// Echo performs a unary echo call and returns the echoed message.
//
// The trace id for the call is pre-assigned from a fresh UUID and its
// correlation references are written out before the request is sent,
// so the trace can be looked up even if the call never returns.
func (c *Client) Echo(ctx context.Context, message string) (string, error) {
	ctx, span := c.startAnnouncedSpan(ctx, "Echo")
	defer span.End()

	log := c.identity.Logger()
	log.InfoContext(ctx, "sending echo request", slogfield.String("message", message))

	resp, err := c.echo.Echo(ctx, &echopb.EchoRequest{Message: message})
	if err != nil {
		span.RecordError(err)
		return "", err
	}

	telemetry.AddEvent(span, "response received",
		attribute.String("echo.message", resp.GetMessage()),
	)
	return resp.GetMessage(), nil
}

// EchoFirst performs a streaming echo call asking for count responses
// but abandons the exchange as soon as the first one arrives. The
// per-call context is cancelled before EchoFirst returns, which is how
// the producer learns the remaining responses are unwanted.
func (c *Client) EchoFirst(ctx context.Context, message string, count int32) (string, error) {
	ctx, span := c.startAnnouncedSpan(ctx, "EchoStream")
	defer span.End()

	callCtx, cancel := context.WithCancel(ctx)
	defer cancel()

	log := c.identity.Logger()
	log.InfoContext(ctx, "starting echo stream",
		slogfield.String("message", message),
		slogfield.Int32("count", count),
	)

	stream, err := c.echo.EchoStream(callCtx, &echopb.EchoStreamRequest{
		Message: message,
		Count:   count,
	})
	if err != nil {
		span.RecordError(err)
		return "", err
	}

	resp, err := stream.Recv()
	if err != nil {
		span.RecordError(err)
		return "", err
	}

	telemetry.AddEvent(span, "response received",
		attribute.String("echo.message", resp.GetMessage()),
		attribute.Int("echo.sequence", int(resp.GetSequence())),
	)

	// Abandon the exchange. The deferred cancel would get there
	// eventually but the producer should stop pacing out responses
	// as soon as we know we are done with them.
	cancel()
	return resp.GetMessage(), nil
}

func (c *Client) startAnnouncedSpan(ctx context.Context, name string) (context.Context, trace.Span) {
	id := idgen.FromUUID(uuid.New())
	c.identity.Generator().SetNextTraceID(id)

	for _, ref := range c.announcer.Announce(id) {
		fmt.Fprintln(c.announceTo, ref)
	}

	return c.identity.Tracer().Start(ctx, name)
}
