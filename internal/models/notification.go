package models

import (
	"time"
)

const (
	CategoryDeposit    = "deposit"
	CategoryWithdrawal = "withdrawal"
	CategoryInfo       = "info"
)

type Notification struct {
	Message  string
	Category string

	// Nil unless the notifier was configured with a clock
	Timestamp *time.Time
}
