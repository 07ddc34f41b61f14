// Package app provides service initialization.
package app

import (
	"io"

	"github.com/guttosm/postbox/config"
	"github.com/guttosm/postbox/internal/logger"
	"github.com/guttosm/postbox/internal/service"
)

// ServiceComponents holds service-related components.
type ServiceComponents struct {
	Box *service.Box
}

// InitializeServices creates the mailbox writing its report to out.
func InitializeServices(cfg config.Config, out io.Writer) *ServiceComponents {
	opts := []service.Option{
		service.WithOutput(out),
		service.WithLogger(logger.Logger()),
	}

	if cfg.Report.Locale != "" {
		opts = append(opts, service.WithLocale(cfg.Report.Locale))
	}

	return &ServiceComponents{
		Box: service.NewBox(cfg.Box.Capacity, opts...),
	}
}
