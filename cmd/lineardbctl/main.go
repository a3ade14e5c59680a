// Command lineardbctl is a small operator CLI around a lineardb data file: point it
// at a file with --db (or the LINEARDBCTL_DB environment variable) and run get/put/iterate/
// stat/compact against it.
package main

import (
	"os"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

func main() {
	zerolog.TimeFieldFormat = zerolog.TimeFormatUnix
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr, NoColor: false})

	if err := newRootCmd().Execute(); err != nil {
		log.Fatal().Err(err).Msg("lineardbctl failed")
	}
}
