// Package logging configures the process-wide logrus logger.
package logging

import (
	"fmt"
	"strings"

	log "github.com/sirupsen/logrus"
)

// Setup configures the standard logrus logger. Level is one of
// debug/info/warn/error (case-insensitive); format is "text" or
// "json". Empty values keep the defaults (info, text).
func Setup(level, format string) error {
	if level != "" {
		parsed, err := log.ParseLevel(strings.ToLower(level))
		if err != nil {
			return fmt.Errorf("parsing log level %q: %w", level, err)
		}
		log.SetLevel(parsed)
	}

	switch strings.ToLower(format) {
	case "", "text":
		log.SetFormatter(&log.TextFormatter{FullTimestamp: true})
	case "json":
		log.SetFormatter(&log.JSONFormatter{})
	default:
		return fmt.Errorf("unknown log format %q", format)
	}
	return nil
}
