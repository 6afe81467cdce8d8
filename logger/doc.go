// Package logger provides structured logging for reqkit using zerolog.
//
// It supports JSON and console output, level configuration, and
// component-scoped loggers with structured fields. The transport and the
// live channels log through this package; exchange diagnostics use the
// field names declared in fields.go.
//
// # Configuration
//
//	logging:
//	  level: "debug"
//	  format: "json"
//
// # Usage
//
//	log := logger.Get("transport")
//	log.Debug("exchange", logger.Fields(logger.FieldMethod, "GET", logger.FieldStatusCode, 200))
package logger
