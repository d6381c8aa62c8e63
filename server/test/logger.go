package test

import (
	"github.com/peer-calls/trackpub/server/logformatter"
	"github.com/peer-calls/trackpub/server/logger"
)

// LogEnvKey configures test logging, for example TRACKPUB_LOG=registry:trace.
const LogEnvKey = "TRACKPUB_LOG"

func NewLogger() logger.Logger {
	return logger.NewFromEnv(LogEnvKey).WithFormatter(logformatter.New())
}
