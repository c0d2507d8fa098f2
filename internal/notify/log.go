package notify

import (
	"github.com/nkiryanov/ledger/internal/logger"
)

// Log forwards notifications to the logger
type Log struct {
	logger logger.Logger
}

func NewLog(l logger.Logger) *Log {
	return &Log{logger: l.WithGroup("notification")}
}

func (n *Log) Send(message string, category string) bool {
	n.logger.Info(message, "category", category)
	return true
}
