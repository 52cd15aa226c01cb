package tracing

import (
	"os"

	"github.com/honeycombio/otel-config-go/otelconfig"
	log "github.com/sirupsen/logrus"
	"go.opentelemetry.io/otel"
)

var GlobalTracer = otel.Tracer("djbooking-backend")

// Setup configures the OpenTelemetry SDK. When tracing is disabled it
// returns a no-op shutdown and the global tracer produces no-op spans.
func Setup(enabled bool, serviceName string) (shutdown func(), err error) {
	if !enabled {
		return func() {}, nil
	}

	if os.Getenv("OTEL_SERVICE_NAME") == "" {
		if err := os.Setenv("OTEL_SERVICE_NAME", serviceName); err != nil {
			log.Warnf("set OTEL_SERVICE_NAME: %s", err)
		}
	}

	otelShutdown, err := otelconfig.ConfigureOpenTelemetry()
	if err != nil {
		return nil, err
	}

	return otelShutdown, nil
}
