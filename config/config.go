package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"
)

type Config struct {
	AppEnv    string
	Port      string
	CORS      CORSConfig
	Latency   LatencyConfig
	Telemetry TelemetryConfig
}

type CORSConfig struct {
	AllowedOrigins []string
}

// LatencyConfig holds the artificial delays injected into the handlers to
// simulate network conditions for the demo UI.
type LatencyConfig struct {
	FetchDelay  time.Duration
	UpdateDelay time.Duration
}

type TelemetryConfig struct {
	ServiceName          string
	ServiceVersion       string
	OTLPEndpoint         string
	OTLPTracesEndpoint   string
	OTLPMetricsEndpoint  string
	OTLPProtocol         string
	OTLPHeaders          map[string]string
	OTLPInsecure         bool
	ExportTimeout        time.Duration
	MetricExportInterval time.Duration
}

func Load() (Config, error) {
	appEnv := getEnv("APP_ENV", "dev")
	port := getEnv("APP_PORT", "8080")

	fetchDelay, err := time.ParseDuration(getEnv("LATENCY_FETCH", "400ms"))
	if err != nil {
		return Config{}, fmt.Errorf("invalid LATENCY_FETCH: %w", err)
	}
	updateDelay, err := time.ParseDuration(getEnv("LATENCY_UPDATE", "1s"))
	if err != nil {
		return Config{}, fmt.Errorf("invalid LATENCY_UPDATE: %w", err)
	}

	corsOrigins := parseCSV(getEnv("CORS_ALLOWED_ORIGINS", "*"))

	exportTimeout, err := time.ParseDuration(getEnv("OTEL_EXPORT_TIMEOUT", "10s"))
	if err != nil {
		return Config{}, fmt.Errorf("invalid OTEL_EXPORT_TIMEOUT: %w", err)
	}
	metricInterval, err := time.ParseDuration(getEnv("OTEL_METRIC_EXPORT_INTERVAL", "60s"))
	if err != nil {
		return Config{}, fmt.Errorf("invalid OTEL_METRIC_EXPORT_INTERVAL: %w", err)
	}

	cfg := Config{
		AppEnv: appEnv,
		Port:   port,
		CORS: CORSConfig{
			AllowedOrigins: corsOrigins,
		},
		Latency: LatencyConfig{
			FetchDelay:  fetchDelay,
			UpdateDelay: updateDelay,
		},
		Telemetry: TelemetryConfig{
			ServiceName:          getEnv("OTEL_SERVICE_NAME", "profile-service"),
			ServiceVersion:       getEnv("OTEL_SERVICE_VERSION", "dev"),
			OTLPEndpoint:         getEnv("OTEL_EXPORTER_OTLP_ENDPOINT", ""),
			OTLPTracesEndpoint:   getEnv("OTEL_EXPORTER_OTLP_TRACES_ENDPOINT", ""),
			OTLPMetricsEndpoint:  getEnv("OTEL_EXPORTER_OTLP_METRICS_ENDPOINT", ""),
			OTLPProtocol:         getEnv("OTEL_EXPORTER_OTLP_PROTOCOL", "grpc"),
			OTLPHeaders:          parseKeyValueCSV(getEnv("OTEL_EXPORTER_OTLP_HEADERS", "")),
			OTLPInsecure:         getEnvBool("OTEL_EXPORTER_OTLP_INSECURE", appEnv != "prod"),
			ExportTimeout:        exportTimeout,
			MetricExportInterval: metricInterval,
		},
	}

	return cfg, nil
}

func getEnv(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}

func getEnvBool(key string, fallback bool) bool {
	value := os.Getenv(key)
	if value == "" {
		return fallback
	}
	parsed, err := strconv.ParseBool(value)
	if err != nil {
		return fallback
	}
	return parsed
}

func parseCSV(value string) []string {
	parts := strings.Split(value, ",")
	var results []string
	for _, part := range parts {
		trimmed := strings.TrimSpace(part)
		if trimmed != "" {
			results = append(results, trimmed)
		}
	}
	return results
}

func parseKeyValueCSV(value string) map[string]string {
	results := make(map[string]string)
	for _, part := range parseCSV(value) {
		key, val, found := strings.Cut(part, "=")
		if !found {
			continue
		}
		results[strings.TrimSpace(key)] = strings.TrimSpace(val)
	}
	return results
}
