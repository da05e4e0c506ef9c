/*
Package logger provides logging functionality to a folio server by defining the required behavior in [Logger]
and providing an implementation of it with [FolioLogger].

# Overview

The Logger interface outputs messages at certain levels of importance.
LogLevel is the type to use to represent those levels.
[FolioLogger] accepts a [LogLevel],
and if initialized with [LogLevelWarn],
only [*FolioLogger.Warn], [*FolioLogger.Error], and [*FolioLogger.Fatal] produce messages.

# FolioLogger

Log messages emitted by [FolioLogger] are composed of a few parts:
  - timestamp
  - log level
  - call site
  - message
  - log context

Here's an example:

	2026/04/28 15:55:21 [WARN] http/resp/send.go:88 'aborted send' log_context: {"book":"wikipedia_en","error":"write: broken pipe"}

The log context is a JSON-encoded [LogContext].

# SentryLogger

When a Sentry DSN is configured, [NewSentryLogger] wraps a [FolioLogger]
and additionally captures any [LogContext.Error] logged at WARN or above.
*/
package logger
