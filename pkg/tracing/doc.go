// Package tracing configures OpenTelemetry trace export over OTLP/HTTP.
//
// Tracing is opt-in: Init returns a no-op shutdown function when no collector
// endpoint is configured, and the global tracer provider is left untouched.
//
//	shutdown, err := tracing.Init(ctx, cfg.OTLPEndpoint, "calisml", version, cfg.Env.String())
//	if err != nil {
//	    return err
//	}
//	defer shutdown(context.Background())
package tracing
