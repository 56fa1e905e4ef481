// Package logging configures the process-wide slog logger.
//
// Logs are JSON on stderr, tagged with the module name and version. The level
// comes from the caller (the --log-level flag or CHARTDOCS_LOG_LEVEL) or,
// when neither is set, from LOG_LEVEL through SetDefaultStructuredLogger.
// Names are case-insensitive: debug, info, warn (or warning), error.
// Anything else is info. Debug output carries the source location.
//
//	logging.SetDefaultStructuredLoggerWithLevel("chartdocs", version, "debug")
//	slog.Debug("invoking renderer", "page", "install.md", "command", inv.String())
//
// A rendered record looks like:
//
//	{"time":"...","level":"WARN","msg":"release line not in catalog, skipping block",
//	 "module":"chartdocs","version":"v0.3.0","page":"install.md",
//	 "code":"CATALOG_VERSION_NOT_FOUND","release":"v9","available":["v3.20","v2.4"]}
package logging
