// Copyright (c) 2025 Z5Labs and Contributors
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

// Package telemetry builds isolated tracing and logging identities for
// logical services.
//
// An [Identity] bundles a tracer provider, a logger provider and an
// [github.com/z5labs/echotel/idgen.Generator] under one service name.
// Because every Identity owns its own providers and generator, several
// logical services can coexist in a single process without
// cross-contaminating each other's telemetry or racing on trace ID
// overrides.
//
// The process-wide OTel defaults are only ever touched through the
// explicit opt-in [Identity.InstallGlobalDefaults].
package telemetry
