package otel

import (
	"os"
	"slices"
	"strconv"
	"strings"
)

const instrumentationName = "github.com/hdprajwal/podcast-creator"

var (
	EnableDebug     = envEnabled("DEBUG")
	EnableTelemetry = envEnabled("TELEMETRY")

	// EnablePrometheus serves metrics for scraping instead of pushing them.
	EnablePrometheus = envExporter("OTEL_METRICS_EXPORTER", "prometheus")
)

// envEnabled treats any value as on unless it parses as a false boolean.
func envEnabled(key string) bool {
	val := strings.TrimSpace(os.Getenv(key))

	if val == "" {
		return false
	}

	if enabled, err := strconv.ParseBool(val); err == nil {
		return enabled
	}

	return true
}

// envExporter reports whether name is listed in a comma separated
// OTEL_*_EXPORTER variable.
func envExporter(key, name string) bool {
	var exporters []string

	for _, e := range strings.Split(os.Getenv(key), ",") {
		exporters = append(exporters, strings.ToLower(strings.TrimSpace(e)))
	}

	return slices.Contains(exporters, name)
}

type Observable interface {
	otelSetup()
}
