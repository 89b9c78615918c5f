// Package logger provides structured logging on top of zerolog.
//
// Loggers are configured from a Config, tagged with a component name, and
// accept fields as maps:
//
//	log := logger.New(&logger.Config{Level: "debug"}, "iterpar").WithComponent("parallel")
//	log.Debug("workers joined", logger.Fields("workers", 4))
package logger
