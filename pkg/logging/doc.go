// Package logging configures structured JSON logging for the ML service.
//
// All components log through log/slog; this package builds the handler once
// at startup so every record carries the module name and version.
//
// # Log Levels
//
// Supported log levels (case-insensitive):
//   - DEBUG: Detailed diagnostic information with source location
//   - INFO: General informational messages (default)
//   - WARN/WARNING: Warning messages for potentially problematic situations
//   - ERROR: Error messages for failures requiring attention
//
// # Usage
//
//	func main() {
//	    logging.SetDefaultStructuredLogger("calismld", version)
//	    slog.Info("server starting", "port", 5001)
//	}
//
// Setting an explicit level (e.g. from config or a CLI flag):
//
//	logging.SetDefaultStructuredLoggerWithLevel("calisml", version, "debug")
//
// # Environment Configuration
//
// The LOG_LEVEL environment variable controls verbosity when no explicit
// level is given:
//
//	LOG_LEVEL=debug calismld
//
// # Output Format
//
// All logs are written to stderr in JSON format:
//
//	{
//	    "time": "2025-01-15T10:30:00.123Z",
//	    "level": "INFO",
//	    "msg": "server started",
//	    "module": "calismld",
//	    "version": "v1.0.0",
//	    "port": 5001
//	}
package logging
