// Package app provides application initialization and dependency injection.
package app

import (
	"fmt"
	"io"

	"github.com/guttosm/postbox/config"
	"github.com/guttosm/postbox/internal/domain/model"
	"github.com/guttosm/postbox/internal/service"
	"github.com/rs/zerolog/log"
)

// InitializeApp creates and wires all application dependencies.
func InitializeApp(cfg config.Config, out io.Writer) *service.Box {
	// Initialize logger first (needed by other components)
	InitializeLogger(cfg.Log)

	return InitializeServices(cfg, out).Box
}

// Run posts mails into a new box and writes the full report to out.
func Run(cfg config.Config, out io.Writer, mails []model.Mail) (*service.Box, error) {
	box := InitializeApp(cfg, out)

	for _, mail := range mails {
		box.AddMail(mail)
	}

	log.Info().
		Str("box_id", box.ID()).
		Int("posted", len(mails)).
		Int("stored", box.Len()).
		Msg("mail posted")

	return box, Report(box, out)
}

// Report writes the total postage, the box contents and the invalid mail count.
func Report(box *service.Box, out io.Writer) error {
	if _, err := fmt.Fprintln(out, box.TotalLine(box.Stamp())); err != nil {
		return fmt.Errorf("write total: %w", err)
	}

	box.Display()

	if _, err := fmt.Fprintln(out, box.InvalidLine(box.CountInvalid())); err != nil {
		return fmt.Errorf("write invalid count: %w", err)
	}
	return nil
}
