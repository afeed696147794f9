package telemetry

import (
	"context"
	"sync"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/propagation"
	"go.opentelemetry.io/otel/sdk/trace"
	oteltrace "go.opentelemetry.io/otel/trace"
)

var (
	globalConfig Config
	configOnce   sync.Once
)

// ShutdownFunc shuts down the TracerProvider installed by Init.
type ShutdownFunc func(ctx context.Context) error

func noopShutdown(_ context.Context) error { return nil }

// Init installs a global TracerProvider from cfg. If cfg.Enabled is
// false, Init is a no-op and the default no-op provider stays installed.
//
// Safe to call multiple times; only the first call takes effect.
func Init(ctx context.Context, cfg Config) (ShutdownFunc, error) {
	configOnce.Do(func() { globalConfig = cfg })

	if !globalConfig.Enabled {
		return noopShutdown, nil
	}

	res, err := buildResource(ctx, globalConfig)
	if err != nil {
		return noopShutdown, err
	}

	exporter, err := createExporter(ctx, globalConfig)
	if err != nil {
		return noopShutdown, err
	}

	tp := trace.NewTracerProvider(
		trace.WithResource(res),
		trace.WithBatcher(exporter),
		trace.WithSampler(trace.AlwaysSample()),
	)

	otel.SetTracerProvider(tp)
	otel.SetTextMapPropagator(propagation.NewCompositeTextMapPropagator(
		propagation.TraceContext{},
		propagation.Baggage{},
	))

	return func(ctx context.Context) error {
		return tp.Shutdown(ctx)
	}, nil
}

// Tracer returns the module-wide tracer used to instrument the search
// driver and engine invocations.
func Tracer() oteltrace.Tracer {
	return otel.Tracer("github.com/katalvlaran/bisbm")
}
