// Copyright (C) 2025 Aleutian AI (jinterlante@aleutian.ai)
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
// See the LICENSE.txt file for the full license text.
//
// NOTE: This work is subject to additional terms under AGPL v3 Section 7.
// See the NOTICE.txt file for details regarding AI system attribution.

// Package tracing wires OpenTelemetry spans around indexing and query
// evaluation. It ships with a stdout-only exporter: this is a local,
// single-process tool, so there is no collector to send spans to, but
// having the instrumentation in place keeps a trace of one session's
// work inspectable without attaching a debugger.
package tracing

import (
	"context"
	"fmt"
	"io"

	"go.opentelemetry.io/otel"
	stdouttrace "go.opentelemetry.io/otel/exporters/stdout/stdouttrace"
	"go.opentelemetry.io/otel/sdk/resource"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	semconv "go.opentelemetry.io/otel/semconv/v1.24.0"
	"go.opentelemetry.io/otel/trace"
)

const tracerName = "github.com/Ackos95/SimpleSearchEngine"

// Setup installs a stdout-exporting tracer provider as the global
// provider and returns a shutdown function the caller must invoke before
// exit to flush pending spans. Passing nil as w discards span output
// entirely, keeping interactive stdout free of trace noise.
func Setup(w io.Writer) (func(context.Context) error, error) {
	if w == nil {
		w = io.Discard
	}

	exporter, err := stdouttrace.New(stdouttrace.WithWriter(w), stdouttrace.WithPrettyPrint())
	if err != nil {
		return nil, fmt.Errorf("tracing: create exporter: %w", err)
	}

	res, err := resource.New(context.Background(), resource.WithAttributes(
		semconv.ServiceName("simplesearch"),
	))
	if err != nil {
		return nil, fmt.Errorf("tracing: build resource: %w", err)
	}

	provider := sdktrace.NewTracerProvider(
		sdktrace.WithBatcher(exporter),
		sdktrace.WithResource(res),
	)
	otel.SetTracerProvider(provider)

	return provider.Shutdown, nil
}

// SetupDiscard installs a no-op-ish tracer provider that never writes
// anywhere, for machine-mode/quiet runs that want the instrumentation
// calls to stay cheap no-ops.
func SetupDiscard() (func(context.Context) error, error) {
	return Setup(nil)
}

// Start begins a span named name as a child of ctx's current span. Safe
// to call even when Setup was never invoked — it then uses the global
// no-op tracer.
func Start(ctx context.Context, name string) (context.Context, trace.Span) {
	return otel.Tracer(tracerName).Start(ctx, name)
}
