// Copyright (c) 2025 Z5Labs and Contributors
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/z5labs/echotel/announce"
	"github.com/z5labs/echotel/echo"
	"github.com/z5labs/echotel/telemetry"

	"github.com/spf13/cobra"
)

func main() {
	err := newCommand().ExecuteContext(context.Background())
	if err != nil {
		os.Exit(1)
	}
}

func newCommand() *cobra.Command {
	var addr string
	var message string
	var count int32
	var first bool
	var collector string
	var jaeger string
	var kibana string

	cmd := &cobra.Command{
		Use:   "echo_client",
		Short: "Call the echo service with the trace announced before the call",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, cancel := context.WithTimeout(cmd.Context(), 30*time.Second)
			defer cancel()

			// This process is short-lived so telemetry is exported
			// synchronously. Process exit must never race a buffered
			// exporter.
			opts := []telemetry.Option{
				telemetry.ExportSynchronously(),
			}
			if collector != "" {
				opts = append(opts, telemetry.OTLP(collector))
			}

			identity, err := telemetry.New(ctx, "echo-client", opts...)
			if err != nil {
				return err
			}
			defer func() {
				shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
				defer cancel()

				err := identity.Shutdown(shutdownCtx)
				if err != nil {
					slog.Default().Error("failed to shutdown telemetry", slog.String("error", err.Error()))
				}
			}()

			client, err := echo.Dial(
				identity,
				addr,
				echo.Announcer(announce.New(
					announce.JaegerBaseURL(jaeger),
					announce.KibanaBaseURL(kibana),
				)),
				echo.AnnounceTo(cmd.OutOrStdout()),
			)
			if err != nil {
				return err
			}
			defer client.Close()

			var msg string
			if first {
				msg, err = client.EchoFirst(ctx, message, count)
			} else {
				msg, err = client.Echo(ctx, message)
			}
			if err != nil {
				return err
			}

			fmt.Fprintln(cmd.OutOrStdout(), msg)
			return nil
		},
	}

	cmd.Flags().StringVar(&addr, "addr", "localhost:9080", "echo service address")
	cmd.Flags().StringVar(&message, "message", "hello", "message to echo")
	cmd.Flags().Int32Var(&count, "count", 5, "number of streamed responses to request")
	cmd.Flags().BoolVar(&first, "first", false, "use the streaming call and stop after the first response")
	cmd.Flags().StringVar(&collector, "collector", "localhost:4317", "OTLP collector target, empty to export to stdout")
	cmd.Flags().StringVar(&jaeger, "jaeger", "http://localhost:16686", "base url for announced jaeger references")
	cmd.Flags().StringVar(&kibana, "kibana", "http://localhost:5601", "base url for announced kibana references")
	return cmd
}
