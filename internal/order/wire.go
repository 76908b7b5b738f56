package order

import (
	"kazhicho/internal/config"

	"go.uber.org/zap"
)

// NewSubmitter picks the order placement variant at construction time.
// Anything other than "http" falls back to the local demo submitter.
func NewSubmitter(cfg config.SubmitterConfig, logger *zap.Logger) Submitter {
	if cfg.Mode == config.SubmitterModeHTTP {
		logger.Info("using http order submitter", zap.String("endpoint", cfg.Endpoint))
		return NewHTTPSubmitter(cfg.Endpoint, cfg.Timeout, logger)
	}

	logger.Info("using local order submitter")
	return NewLocalSubmitter(logger)
}
