// Package logging provides structured logging for the launcher.
//
// This package wraps zap with convenience functions for the logging
// patterns used throughout the launcher. Logging is silent unless a
// level is configured, so embedding the launcher core never produces
// unexpected output.
//
// # Configuration
//
// Initialize logging at startup:
//
//	if err := logging.InitializeFromEnv(); err != nil {
//	    log.Fatal(err)
//	}
//	defer logging.Sync()
//
// The LAUNCHER_LOG_LEVEL environment variable selects the verbosity
// ("debug", "info", "warn", "error"); when it is unset the logger is a
// no-op.
//
// # Structured Logging
//
// All log functions use structured fields for queryability:
//
//	logging.Info("configuration loaded",
//	    zap.String("path", store.ConfigPath()),
//	)
//
// # Thread Safety
//
// All logging functions are safe for concurrent use. The underlying
// zap logger handles synchronization automatically.
package logging
