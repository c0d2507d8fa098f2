package account

import (
	"fmt"
	"sync"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/nkiryanov/ledger/internal/apperrors"
	"github.com/nkiryanov/ledger/internal/logger"
	"github.com/nkiryanov/ledger/internal/models"
)

// Notifier receives a human-readable message after every successful mutation.
// The account does not own the notifier: the same one may be attached to many accounts.
type Notifier interface {
	Send(message string, category string) bool
}

type Option func(*Account)

func WithNotifier(n Notifier) Option {
	return func(a *Account) { a.notifier = n }
}

func WithLogger(l logger.Logger) Option {
	return func(a *Account) { a.logger = l }
}

func WithID(id uuid.UUID) Option {
	return func(a *Account) { a.id = id }
}

// WithNonNegativeInitialBalance makes New reject a negative initial balance.
// By default any initial balance is accepted.
func WithNonNegativeInitialBalance() Option {
	return func(a *Account) { a.rejectNegative = true }
}

// Account keeps the balance and the history of successful operations.
// Invalid amounts are reported with a false result only; see Checked for the error returning variant.
//
// Every mutation validates, changes the balance, appends history and notifies, in that order,
// while holding the account lock.
type Account struct {
	mu sync.Mutex

	id           uuid.UUID
	balance      decimal.Decimal
	transactions []models.Transaction

	notifier       Notifier
	logger         logger.Logger
	rejectNegative bool
}

func New(initial decimal.Decimal, opts ...Option) (*Account, error) {
	a := &Account{
		id:      uuid.New(),
		balance: initial,
	}

	for _, opt := range opts {
		opt(a)
	}

	if a.logger == nil {
		a.logger = logger.NewNoOpLogger()
	}
	a.logger = a.logger.With("account_id", a.id.String())

	if a.rejectNegative && initial.IsNegative() {
		return nil, fmt.Errorf("can't open account with balance %s. Err: %w", initial.StringFixed(2), apperrors.ErrNegativeInitialBalance)
	}

	return a, nil
}

func (a *Account) ID() uuid.UUID {
	return a.id
}

// Deposit adds positive amount to the balance
func (a *Account) Deposit(amount decimal.Decimal) bool {
	a.mu.Lock()
	defer a.mu.Unlock()

	if !amount.IsPositive() {
		a.logger.Debug("Deposit rejected", "amount", amount.String(), "reason", "amount is not positive")
		return false
	}

	a.apply(models.TransactionKindDeposit, amount)
	return true
}

// Withdraw takes positive amount from the balance. Amount can't exceed the balance.
func (a *Account) Withdraw(amount decimal.Decimal) bool {
	a.mu.Lock()
	defer a.mu.Unlock()

	switch {
	case !amount.IsPositive():
		a.logger.Debug("Withdraw rejected", "amount", amount.String(), "reason", "amount is not positive")
		return false
	case amount.GreaterThan(a.balance):
		a.logger.Debug("Withdraw rejected", "amount", amount.String(), "reason", "insufficient balance")
		return false
	}

	a.apply(models.TransactionKindWithdrawal, amount)
	return true
}

func (a *Account) Balance() decimal.Decimal {
	a.mu.Lock()
	defer a.mu.Unlock()

	return a.balance
}

// Transactions returns history copy in the order operations happened
func (a *Account) Transactions() []models.Transaction {
	a.mu.Lock()
	defer a.mu.Unlock()

	out := make([]models.Transaction, len(a.transactions))
	copy(out, a.transactions)
	return out
}

// SetNotifier attaches (or detaches with nil) notifier for the following operations
func (a *Account) SetNotifier(n Notifier) {
	a.mu.Lock()
	defer a.mu.Unlock()

	a.notifier = n
}

// apply mutates already validated amount. Must be called with a.mu held.
// Notifier must not call back into the account.
func (a *Account) apply(kind string, amount decimal.Decimal) {
	switch kind {
	case models.TransactionKindDeposit:
		a.balance = a.balance.Add(amount)
	case models.TransactionKindWithdrawal:
		a.balance = a.balance.Sub(amount)
	}

	a.transactions = append(a.transactions, models.Transaction{
		Kind:         kind,
		Amount:       amount,
		BalanceAfter: a.balance,
	})

	a.logger.Debug("Transaction applied", "kind", kind, "amount", amount.String(), "balance", a.balance.String())

	if a.notifier != nil {
		msg, category := notification(kind, amount, a.balance)
		a.notifier.Send(msg, category)
	}
}

// notification renders message and category for the applied transaction
func notification(kind string, amount decimal.Decimal, balance decimal.Decimal) (string, string) {
	operation, category := "Deposit", models.CategoryDeposit
	if kind == models.TransactionKindWithdrawal {
		operation, category = "Withdrawal", models.CategoryWithdrawal
	}

	msg := fmt.Sprintf("%s of $%s successful. New balance: $%s", operation, amount.StringFixed(2), balance.StringFixed(2))
	return msg, category
}
