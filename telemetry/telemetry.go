// Copyright (c) 2025 Z5Labs and Contributors
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

package telemetry

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"sync/atomic"

	"github.com/z5labs/echotel/idgen"
	"github.com/z5labs/echotel/noop"
	"github.com/z5labs/echotel/otelslog"

	logbridge "go.opentelemetry.io/contrib/bridges/otelslog"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/exporters/otlp/otlplog/otlploggrpc"
	"go.opentelemetry.io/otel/exporters/otlp/otlptrace/otlptracegrpc"
	"go.opentelemetry.io/otel/exporters/stdout/stdoutlog"
	"go.opentelemetry.io/otel/exporters/stdout/stdouttrace"
	otellog "go.opentelemetry.io/otel/log"
	"go.opentelemetry.io/otel/log/global"
	"go.opentelemetry.io/otel/propagation"
	sdklog "go.opentelemetry.io/otel/sdk/log"
	"go.opentelemetry.io/otel/sdk/resource"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	semconv "go.opentelemetry.io/otel/semconv/v1.34.0"
	"go.opentelemetry.io/otel/trace"
	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials/insecure"
)

type options struct {
	newExporters func(context.Context) (sdktrace.SpanExporter, sdklog.Exporter, error)
	syncExport   bool
	logHandler   slog.Handler
}

// Option configures how an [Identity] is built.
type Option func(*options)

// OTLP configures the Identity to export spans and log records to an
// OTLP collector, over gRPC, at the given target address.
func OTLP(target string) Option {
	return func(o *options) {
		o.newExporters = func(ctx context.Context) (sdktrace.SpanExporter, sdklog.Exporter, error) {
			// Note the use of insecure transport here. TLS is recommended in production.
			conn, err := grpc.NewClient(
				target,
				grpc.WithTransportCredentials(insecure.NewCredentials()),
			)
			if err != nil {
				return nil, nil, err
			}

			spanExporter, err := otlptracegrpc.New(ctx, otlptracegrpc.WithGRPCConn(conn))
			if err != nil {
				return nil, nil, err
			}

			logExporter, err := otlploggrpc.New(ctx, otlploggrpc.WithGRPCConn(conn))
			if err != nil {
				return nil, nil, err
			}
			return spanExporter, logExporter, nil
		}
	}
}

// Stdout configures the Identity to export spans and log records to
// the given io.Writer in a human readable format.
func Stdout(w io.Writer) Option {
	return func(o *options) {
		o.newExporters = func(ctx context.Context) (sdktrace.SpanExporter, sdklog.Exporter, error) {
			spanExporter, err := stdouttrace.New(stdouttrace.WithWriter(w))
			if err != nil {
				return nil, nil, err
			}

			logExporter, err := stdoutlog.New(stdoutlog.WithWriter(w))
			if err != nil {
				return nil, nil, err
			}
			return spanExporter, logExporter, nil
		}
	}
}

// WithExporters configures the Identity to export spans and log records
// to the given exporters directly. This is primarily meant for testing.
func WithExporters(se sdktrace.SpanExporter, le sdklog.Exporter) Option {
	return func(o *options) {
		o.newExporters = func(ctx context.Context) (sdktrace.SpanExporter, sdklog.Exporter, error) {
			return se, le, nil
		}
	}
}

// ExportSynchronously configures the Identity to export each span and
// log record as soon as it is ended or emitted instead of batching.
//
// Batching is more efficient but buffers telemetry, which can be lost
// if the process exits before the buffer is flushed. Short-lived
// CLI-style processes should export synchronously so process exit
// never races a buffered exporter.
func ExportSynchronously() Option {
	return func(o *options) {
		o.syncExport = true
	}
}

// LogHandler configures a local slog.Handler which mirrors every log
// record, enriched with the active trace and span IDs, alongside the
// exported log records.
func LogHandler(h slog.Handler) Option {
	return func(o *options) {
		o.logHandler = h
	}
}

// Identity bundles a tracer, a logger and an ID generator for one
// logical service. Identities are fully isolated from each other:
// multiple Identities can coexist in one process without sharing any
// telemetry state, most importantly the ID generators override slot.
type Identity struct {
	name string

	gen        *idgen.Generator
	propagator propagation.TextMapPropagator

	tracerProvider *sdktrace.TracerProvider
	loggerProvider *sdklog.LoggerProvider

	log *slog.Logger
}

// New builds a fully isolated Identity for the named service. It never
// mutates any process-wide default tracer, logger or propagator; use
// [Identity.InstallGlobalDefaults] to explicitly opt in to that.
func New(ctx context.Context, name string, opts ...Option) (*Identity, error) {
	o := &options{
		logHandler: noop.LogHandler{},
	}
	Stdout(os.Stdout)(o)
	for _, opt := range opts {
		opt(o)
	}

	res, err := resource.New(
		ctx,
		resource.WithTelemetrySDK(),
		resource.WithAttributes(
			semconv.ServiceName(name),
		),
	)
	if err != nil {
		return nil, err
	}

	spanExporter, logExporter, err := o.newExporters(ctx)
	if err != nil {
		return nil, err
	}

	gen := idgen.New()

	spanProcessorOpt := sdktrace.WithBatcher(spanExporter)
	logProcessor := sdklog.Processor(sdklog.NewBatchProcessor(logExporter))
	if o.syncExport {
		spanProcessorOpt = sdktrace.WithSyncer(spanExporter)
		logProcessor = sdklog.NewSimpleProcessor(logExporter)
	}

	tp := sdktrace.NewTracerProvider(
		sdktrace.WithResource(res),
		sdktrace.WithSampler(sdktrace.AlwaysSample()),
		sdktrace.WithIDGenerator(gen),
		spanProcessorOpt,
	)

	lp := sdklog.NewLoggerProvider(
		sdklog.WithResource(res),
		sdklog.WithProcessor(logProcessor),
	)

	log := slog.New(fanoutHandler{
		handlers: []slog.Handler{
			logbridge.NewHandler(name, logbridge.WithLoggerProvider(lp)),
			otelslog.NewHandler(o.logHandler),
		},
	})

	identity := &Identity{
		name:           name,
		gen:            gen,
		propagator:     propagation.NewCompositeTextMapPropagator(propagation.TraceContext{}, propagation.Baggage{}),
		tracerProvider: tp,
		loggerProvider: lp,
		log:            log,
	}
	return identity, nil
}

// Name returns the service name this Identity attributes telemetry to.
func (i *Identity) Name() string {
	return i.name
}

// Generator returns the ID generator owned by this Identity. Use it to
// pre-assign the trace ID of the next root span started through
// [Identity.Tracer].
func (i *Identity) Generator() *idgen.Generator {
	return i.gen
}

// Tracer returns a tracer scoped to this Identity.
func (i *Identity) Tracer() trace.Tracer {
	return i.tracerProvider.Tracer(i.name)
}

// TracerProvider returns the tracer provider owned by this Identity.
func (i *Identity) TracerProvider() trace.TracerProvider {
	return i.tracerProvider
}

// LoggerProvider returns the logger provider owned by this Identity.
func (i *Identity) LoggerProvider() otellog.LoggerProvider {
	return i.loggerProvider
}

// Logger returns a slog.Logger which emits OTel log records through
// this Identity. Records logged with a context carrying an active span
// are automatically correlated to that span.
func (i *Identity) Logger() *slog.Logger {
	return i.log
}

// Propagator returns the text map propagator used to carry this
// Identity's trace context across RPC boundaries.
func (i *Identity) Propagator() propagation.TextMapPropagator {
	return i.propagator
}

// Shutdown flushes and shuts down the underlying tracer and logger
// providers. No telemetry can be recorded through this Identity
// afterwards.
func (i *Identity) Shutdown(ctx context.Context) error {
	return errors.Join(
		i.tracerProvider.Shutdown(ctx),
		i.loggerProvider.Shutdown(ctx),
	)
}

var globalIdentity atomic.Pointer[Identity]

// AlreadyInstalledError occurs when more than one Identity attempts to
// install itself as the process-wide default.
type AlreadyInstalledError struct {
	// Installed is the name of the Identity already registered as the
	// process-wide default.
	Installed string

	// Rejected is the name of the Identity which attempted to register
	// itself after Installed.
	Rejected string
}

// Error implements the error interface.
func (e AlreadyInstalledError) Error() string {
	return fmt.Sprintf(
		"telemetry: global defaults already installed for %q, refusing to replace them with %q",
		e.Installed,
		e.Rejected,
	)
}

// InstallGlobalDefaults registers this Identity's tracer provider,
// logger provider, propagator and slog logger as the process-wide
// defaults. This is a convenience for single-identity processes.
//
// Mixing global defaults with explicitly passed Identities leads to
// ambiguous "current tracer" resolution, so at most one Identity per
// process may install itself; any further install attempt returns an
// [AlreadyInstalledError].
func (i *Identity) InstallGlobalDefaults() error {
	if !globalIdentity.CompareAndSwap(nil, i) {
		return AlreadyInstalledError{
			Installed: globalIdentity.Load().Name(),
			Rejected:  i.name,
		}
	}

	otel.SetTracerProvider(i.tracerProvider)
	otel.SetTextMapPropagator(i.propagator)
	global.SetLoggerProvider(i.loggerProvider)
	slog.SetDefault(i.log)
	return nil
}

// InstallGlobalDefaults builds an Identity for the named service and
// installs it as the process-wide default. The returned Identity gives
// access to the ID generator for trace ID override control.
func InstallGlobalDefaults(ctx context.Context, name string, opts ...Option) (*Identity, error) {
	identity, err := New(ctx, name, opts...)
	if err != nil {
		return nil, err
	}

	err = identity.InstallGlobalDefaults()
	if err != nil {
		return nil, err
	}
	return identity, nil
}

type fanoutHandler struct {
	handlers []slog.Handler
}

func (h fanoutHandler) Enabled(ctx context.Context, lvl slog.Level) bool {
	for _, handler := range h.handlers {
		if handler.Enabled(ctx, lvl) {
			return true
		}
	}
	return false
}

func (h fanoutHandler) Handle(ctx context.Context, record slog.Record) error {
	errs := make([]error, 0, len(h.handlers))
	for _, handler := range h.handlers {
		if !handler.Enabled(ctx, record.Level) {
			continue
		}
		errs = append(errs, handler.Handle(ctx, record.Clone()))
	}
	return errors.Join(errs...)
}

func (h fanoutHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	handlers := make([]slog.Handler, len(h.handlers))
	for i, handler := range h.handlers {
		handlers[i] = handler.WithAttrs(attrs)
	}
	return fanoutHandler{handlers: handlers}
}

func (h fanoutHandler) WithGroup(name string) slog.Handler {
	handlers := make([]slog.Handler, len(h.handlers))
	for i, handler := range h.handlers {
		handlers[i] = handler.WithGroup(name)
	}
	return fanoutHandler{handlers: handlers}
}
