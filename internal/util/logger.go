package util

import "go.uber.org/zap"

// NewLogger returns the process-wide sugared logger. Production emits JSON
// tagged with the service name for log aggregation; everything else gets the
// development console encoder.
func NewLogger(env string) *zap.SugaredLogger {
	var logger *zap.SugaredLogger

	if env == "production" {
		logger = zap.Must(zap.NewProduction(zap.Fields(
			zap.String("service", "ujenziiq-api"),
		))).Sugar()
	} else {
		logger = zap.Must(zap.NewDevelopment()).Sugar()
	}

	defer logger.Sync()

	return logger
}
