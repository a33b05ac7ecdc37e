package observability

import (
	"fmt"

	"github.com/prometheus/client_golang/prometheus"
	promexporter "go.opentelemetry.io/otel/exporters/prometheus"
)

// PrometheusReader pairs an OTel metric reader with the registry it feeds.
type PrometheusReader struct {
	Exporter *promexporter.Exporter
	Registry *prometheus.Registry
}

// NewPrometheusReader creates a Prometheus exporter on a private registry.
// Each call gets its own registry so repeated runs do not collide.
func NewPrometheusReader() (*PrometheusReader, error) {
	registry := prometheus.NewRegistry()

	exporter, err := promexporter.New(promexporter.WithRegisterer(registry))
	if err != nil {
		return nil, fmt.Errorf("create prometheus exporter: %w", err)
	}

	return &PrometheusReader{Exporter: exporter, Registry: registry}, nil
}

// WriteTextfile writes the current registry contents in the node_exporter
// textfile format.
func (r *PrometheusReader) WriteTextfile(path string) error {
	err := prometheus.WriteToTextfile(path, r.Registry)
	if err != nil {
		return fmt.Errorf("write metrics textfile %s: %w", path, err)
	}

	return nil
}
