// Package main is the entry point of the postbox demonstration.
//
// It posts a fixed set of sample mails into a box and prints the total
// postage, the box contents and the number of invalid mails on stdout.
// Structured logs go to stderr.
package main

import (
	"os"

	"github.com/guttosm/postbox/config"
	"github.com/guttosm/postbox/internal/app"
	"github.com/rs/zerolog/log"
)

func main() {
	cfg := config.Load()

	if _, err := app.Run(cfg, os.Stdout, app.SampleMail()); err != nil {
		log.Fatal().Err(err).Msg("report error")
	}
}
