// Package cli implements the calisml command line.
//
// # Commands
//
// serve - Run the ML API server:
//
//	calisml serve [--env-file .env] [--port 5001]
//
// Same as running calismld. Configuration comes from the environment
// (FLASK_ENV, FLASK_PORT, CORS_ORIGIN, LOG_LEVEL, SHUTDOWN_TIMEOUT_SECONDS,
// OTEL_EXPORTER_OTLP_ENDPOINT) after loading the env files.
//
// validate - Check a prediction payload:
//
//	calisml validate -f payload.json [--fail-on-error]
//
// Applies the same shape checks as POST /ml/predict-calories and prints a
// ValidationResult document.
//
// features - Show the feature vector for a payload:
//
//	calisml features -f payload.yaml --format table
//
// Prints a FeatureVector document listing every feature, its value, and
// whether the default was used.
//
// # Global Flags
//
//	--log-level    debug, info, warn, error (env LOG_LEVEL, default info)
//	--help, -h     Show command help
//	--version, -v  Show version information
//
// Output commands also accept:
//
//	--output, -o   Output file path (default: stdout)
//	--format, -t   Output format: yaml, json, table (default: yaml)
package cli
