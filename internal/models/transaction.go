package models

import (
	"github.com/shopspring/decimal"
)

const (
	TransactionKindDeposit    = "deposit"
	TransactionKindWithdrawal = "withdrawal"
)

// Transaction is a single successful balance mutation.
// BalanceAfter is a full snapshot of the account balance right after the mutation, not a delta.
type Transaction struct {
	Kind         string
	Amount       decimal.Decimal
	BalanceAfter decimal.Decimal
}
