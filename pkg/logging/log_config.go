// Package logging configures the zerolog logger used by the command line
// binaries. The library packages themselves never log: generation is pure
// computation and its only outputs are return values.
package logging

import (
	"fmt"
	"io"
	"os"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/diode"
	"github.com/rs/zerolog/log"
)

// LogConfig describes configuration of logger
type LogConfig struct {
	// Log level: 0-debug 1-info 2-warn 3-error 4-fatal 5-panic
	Level int

	// Path to the logfile. "stdout" or "stderr" are possible too.
	Path string

	// The size of diode buffer. 0 disables the diode. Useful when the
	// binary's stdout is a high-throughput data stream that must not be
	// stalled by logging.
	DiodeBuf int
}

// InitLogger initializes the global zerolog logger based on given LogConfig.
// This function should be called once at the very beginning.
// After that all packages can just import "github.com/rs/zerolog/log" and use it:
//
//	log.Info().Int("name", 12).Str("name", "value").Msg("")
func InitLogger(lc LogConfig) error {
	var (
		output io.Writer
		err    error
	)

	switch lc.Path {
	case "stdout":
		output = os.Stdout

	case "stderr":
		output = os.Stderr

	default:
		output, err = os.Create(lc.Path)
		if err != nil {
			return err
		}
	}

	// enable diode
	if lc.DiodeBuf > 0 {
		output = diode.NewWriter(output, lc.DiodeBuf, 0, func(missed int) {
			fmt.Fprintf(os.Stderr, "WARNING: Dropped %d log entries\n", missed)
		})
	}

	log.Logger = zerolog.New(output).With().Timestamp().Logger()
	zerolog.SetGlobalLevel(zerolog.Level(lc.Level))

	return nil
}
