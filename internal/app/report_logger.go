package app

import (
	"context"
	"log"

	"github.com/cleitonmarx/symbiont/introspection"
)

// ReportLoggerIntrospector logs the configuration keys the application
// resolved during startup, flagging the ones that fell back to defaults.
type ReportLoggerIntrospector struct {
}

// Introspect writes one log line per configuration access in the report.
func (i ReportLoggerIntrospector) Introspect(_ context.Context, r introspection.Report) error {
	for _, cfg := range r.Configs {
		source := "env"
		if cfg.UsedDefault {
			source = "default"
		}
		log.Printf("config: %s (%s)", cfg.Key, source)
	}
	return nil
}
