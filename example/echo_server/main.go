// Copyright (c) 2025 Z5Labs and Contributors
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

package main

import (
	"context"
	"embed"
	"log/slog"
	"os"
	"syscall"
	"time"

	"github.com/z5labs/echotel"
	"github.com/z5labs/echotel/app"
	"github.com/z5labs/echotel/config"
	"github.com/z5labs/echotel/echo"
	"github.com/z5labs/echotel/echopb"
	etgrpc "github.com/z5labs/echotel/grpc"
	"github.com/z5labs/echotel/health"
	"github.com/z5labs/echotel/telemetry"

	"google.golang.org/grpc"
	"google.golang.org/grpc/reflection"
)

type Config struct {
	Logging struct {
		Level slog.Level `config:"level"`
	} `config:"logging"`

	Grpc struct {
		Port uint `config:"port"`
	} `config:"grpc"`

	Otlp struct {
		Target string `config:"target"`
	} `config:"otlp"`

	Echo struct {
		Pace time.Duration `config:"pace"`
	} `config:"echo"`
}

func buildApp(ctx context.Context, cfg Config) (echotel.App, error) {
	logHandler := slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{
		AddSource: true,
		Level:     cfg.Logging.Level,
	})

	opts := []telemetry.Option{
		telemetry.LogHandler(logHandler),
	}
	if cfg.Otlp.Target != "" {
		opts = append(opts, telemetry.OTLP(cfg.Otlp.Target))
	}

	identity, err := telemetry.New(ctx, "echo-server", opts...)
	if err != nil {
		return nil, err
	}

	svc := echo.NewService(identity, echo.PaceEvery(cfg.Echo.Pace))

	rt := etgrpc.NewRuntime(
		etgrpc.ListenOnPort(cfg.Grpc.Port),
		etgrpc.LogHandler(logHandler),
		etgrpc.Identity(identity),
		etgrpc.Service(
			func(s *grpc.Server) {
				echopb.RegisterEchoServer(s, svc)
			},
			etgrpc.ServiceName("echo"),
			etgrpc.Readiness(&health.Binary{}),
		),
		// register reflection service so you can test this example
		// via Insomnia, Postman and any other API testing tool that
		// understands gRPC reflection.
		etgrpc.Service(func(s *grpc.Server) {
			reflection.Register(s)
		}),
	)

	var base echotel.App = rt
	base = app.WithLifecycleHooks(base, app.Lifecycle{
		PostRun: app.LifecycleHookFunc(func(ctx context.Context) error {
			return identity.Shutdown(ctx)
		}),
	})
	base = app.WithSignalNotifications(base, os.Interrupt, os.Kill, syscall.SIGTERM)
	base = app.Recover(base)
	return base, nil
}

//go:embed config.yaml
var configDir embed.FS

func main() {
	err := echotel.Run(
		context.Background(),
		echotel.AppBuilderFunc[Config](buildApp),
		config.FromYaml(
			config.NewFileReader(configDir, "config.yaml"),
		),
	)
	if err != nil {
		slog.Default().Error("failed to run", slog.String("error", err.Error()))
	}
}
