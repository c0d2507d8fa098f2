package account

import (
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/nkiryanov/ledger/internal/apperrors"
	"github.com/nkiryanov/ledger/internal/models"
	"github.com/nkiryanov/ledger/internal/validate"
)

// Checked wraps Account and reports every rejected operation as an error instead of false.
// Amounts are accepted loosely typed and checked with validate.PositiveAmount.
type Checked struct {
	*Account
}

func NewChecked(initial decimal.Decimal, opts ...Option) (*Checked, error) {
	a, err := New(initial, opts...)
	if err != nil {
		return nil, err
	}
	return &Checked{Account: a}, nil
}

func (c *Checked) Deposit(v any) error {
	amount, err := validate.PositiveAmount(v)
	if err != nil {
		c.logger.Debug("Deposit rejected", "error", err)
		return fmt.Errorf("can't deposit. Err: %w", err)
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	c.apply(models.TransactionKindDeposit, amount)
	return nil
}

func (c *Checked) Withdraw(v any) error {
	amount, err := validate.PositiveAmount(v)
	if err != nil {
		c.logger.Debug("Withdraw rejected", "error", err)
		return fmt.Errorf("can't withdraw. Err: %w", err)
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	if amount.GreaterThan(c.balance) {
		c.logger.Debug("Withdraw rejected", "amount", amount.String(), "reason", "insufficient balance")
		return fmt.Errorf("can't withdraw %s from %s. Err: %w", amount.StringFixed(2), c.balance.StringFixed(2), apperrors.ErrBalanceInsufficient)
	}

	c.apply(models.TransactionKindWithdrawal, amount)
	return nil
}
