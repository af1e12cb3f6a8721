package scopedstats

import (
	"github.com/cschleiden/go-scopedstats/internal/logger"
	"github.com/cschleiden/go-scopedstats/log"
)

// NewDefaultLogger returns a logger writing colored key/value lines to
// standard error. Recorders are silent by default; pass this via
// RecorderOptions.Logger to see scope lifecycle events and misuse warnings.
func NewDefaultLogger() log.Logger {
	return logger.NewDefaultLogger()
}
