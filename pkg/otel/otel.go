package otel

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"

	sdkresource "go.opentelemetry.io/otel/sdk/resource"
	semconv "go.opentelemetry.io/otel/semconv/v1.38.0"
)

type Telemetry struct {
	// Metrics serves the Prometheus exposition format, nil unless enabled.
	Metrics http.Handler

	shutdown []func(context.Context) error
}

func (t *Telemetry) Shutdown(ctx context.Context) error {
	var errs []error

	for _, fn := range t.shutdown {
		errs = append(errs, fn(ctx))
	}

	return errors.Join(errs...)
}

// Setup installs the default logger and, when enabled, the trace, metric and
// log pipelines.
func Setup(ctx context.Context, serviceName, serviceVersion string) (*Telemetry, error) {
	t := &Telemetry{}

	if !EnableTelemetry {
		setupConsole()
	}

	if !EnableTelemetry && !EnablePrometheus {
		return t, nil
	}

	resource, err := sdkresource.New(ctx,
		sdkresource.WithFromEnv(),
		sdkresource.WithTelemetrySDK(),
		sdkresource.WithAttributes(
			semconv.ServiceName(serviceName),
			semconv.ServiceVersion(serviceVersion),
		),
	)

	if err != nil {
		return nil, err
	}

	if EnablePrometheus {
		handler, shutdown, err := setupPrometheus(resource)

		if err != nil {
			return nil, err
		}

		t.Metrics = handler
		t.shutdown = append(t.shutdown, shutdown)
	}

	if !EnableTelemetry {
		return t, nil
	}

	setups := []func(context.Context, *sdkresource.Resource) (func(context.Context) error, error){
		setupTracer,
		setupLogger,
	}

	if !EnablePrometheus {
		setups = append(setups, setupMeter)
	}

	for _, setup := range setups {
		shutdown, err := setup(ctx, resource)

		if err != nil {
			return nil, errors.Join(err, t.Shutdown(ctx))
		}

		t.shutdown = append(t.shutdown, shutdown)
	}

	return t, nil
}

func setupConsole() {
	level := slog.LevelInfo

	if EnableDebug {
		level = slog.LevelDebug
	}

	handler := slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: level,
	})

	slog.SetDefault(slog.New(handler))
}
