// Package logger provides structured logging for the SDK on top of zerolog.
//
// Components obtain a tagged logger via WithComponent and emit events with
// field maps:
//
//	log := logger.NewDefault("spellforge").WithComponent("stream")
//	log.Info("connected", logger.Fields("url", cfg.URL))
package logger
