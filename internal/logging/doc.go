// Package logging provides structured logging for the rest of this
// module, wrapping zap with convenience functions for the logging
// patterns the session, transport, and CLI packages need.
//
// Logging is silent by default. Set TUYALINK_LOG_LEVEL to "debug",
// "info", "warn", or "error" to enable console output, or call
// Initialize explicitly from a CLI entry point:
//
//	if err := logging.InitializeFromEnv(); err != nil {
//	    log.Fatal(err)
//	}
//	defer logging.Sync()
//
// LogFrame dumps a raw wire frame as hex/ASCII at debug level, which
// is the first thing worth turning on when a device won't parse.
package logging
