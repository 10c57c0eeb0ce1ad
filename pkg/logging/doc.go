// Package logging configures structured logging for the advisor daemon and CLI.
//
// Both binaries log JSON to stderr through log/slog. Every record carries the
// module name and build version, and debug level adds the source location:
//
//	logging.SetDefaultStructuredLoggerWithLevel("advisord", version, "debug")
//	slog.Info("server listening", "address", addr)
//
// The level comes from LOG_LEVEL (debug, info, warn, error; unknown values
// mean info). advisord reads it from the environment or the .env file; the
// advisor CLI takes it from --log-level, which also honors LOG_LEVEL.
//
// NewLogLogger bridges the slog default to APIs that still want a
// *log.Logger, such as http.Server.ErrorLog:
//
//	srv := &http.Server{ErrorLog: logging.NewLogLogger(slog.LevelError, false)}
//
// MaskSecret shortens credentials before they reach a log line. The Gemini
// API key is only ever logged through it:
//
//	slog.Info("provider configured", "apiKey", logging.MaskSecret(key)) // "AIza..."
package logging
