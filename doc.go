// Copyright (c) 2025 Z5Labs and Contributors
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

// Package echotel demonstrates end-to-end trace correlation across gRPC
// boundaries with caller-assigned trace identifiers and cooperative
// stream cancellation.
//
// The module is organized around a handful of small packages:
//
//   - [github.com/z5labs/echotel/idgen] lets a caller pre-assign the
//     identifier of the next root trace.
//   - [github.com/z5labs/echotel/telemetry] builds per-service telemetry
//     identities so multiple logical services can coexist in one process.
//   - [github.com/z5labs/echotel/announce] renders human-actionable
//     references for a trace before the traced call executes.
//   - [github.com/z5labs/echotel/exchange] implements the producer side of
//     a paced, cancellable server-streaming exchange.
//   - [github.com/z5labs/echotel/echo] ties everything together as a gRPC
//     echo service and client.
package echotel
