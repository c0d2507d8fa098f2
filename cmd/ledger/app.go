package main

import (
	"fmt"
	"io"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/nkiryanov/ledger/internal/account"
	"github.com/nkiryanov/ledger/internal/logger"
	"github.com/nkiryanov/ledger/internal/models"
	"github.com/nkiryanov/ledger/internal/notify"
)

// Operations the demo runs when none passed
var defaultOperations = []string{"deposit:50", "withdraw:30"}

type DemoApp struct {
	Policy string

	account  *account.Account
	checked  *account.Checked
	recorder *notify.Recorder
	logger   logger.Logger
	out      io.Writer
}

func NewDemoApp(c *Config, out io.Writer) (*DemoApp, error) {
	// Initialize logger
	l, err := logger.New(c.Environment, c.LogLevel)
	if err != nil {
		return nil, fmt.Errorf("error while initializing logger: %w", err)
	}

	initial, err := decimal.NewFromString(c.InitialBalance)
	if err != nil {
		return nil, fmt.Errorf("invalid initial balance %q: %w", c.InitialBalance, err)
	}

	// Every notification is kept in memory and logged; posted to webhook if configured
	recorder := notify.NewRecorder()
	senders := notify.Fanout{recorder, notify.NewLog(l)}
	if c.WebhookURL != "" {
		senders = append(senders, notify.NewWebhook(c.WebhookURL, l))
	}

	opts := []account.Option{
		account.WithNotifier(senders),
		account.WithLogger(l),
	}
	if c.RejectNegative {
		opts = append(opts, account.WithNonNegativeInitialBalance())
	}

	app := &DemoApp{
		Policy:   c.Policy,
		recorder: recorder,
		logger:   l,
		out:      out,
	}

	switch c.Policy {
	case PolicyStrict:
		app.checked, err = account.NewChecked(initial, opts...)
		if err == nil {
			app.account = app.checked.Account
		}
	default:
		app.account, err = account.New(initial, opts...)
	}
	if err != nil {
		return nil, fmt.Errorf("error while opening account. Err: %w", err)
	}

	return app, nil
}

// Run applies operations one by one and prints balance after every one.
// Operation has form '<deposit|withdraw>:<amount>'
func (a *DemoApp) Run(operations []string) error {
	if len(operations) == 0 {
		operations = defaultOperations
	}

	a.printf("Initial Balance: %s\n", a.account.Balance())

	for _, op := range operations {
		kind, amount, err := parseOperation(op)
		if err != nil {
			return err
		}

		if err := a.apply(kind, amount); err != nil {
			a.printf("%s of %s rejected: %v\n", kind, amount, err)
			continue
		}
		a.printf("Balance after %s of %s: %s\n", kind, amount, a.account.Balance())
	}

	a.printNotifications(a.recorder.All())
	return nil
}

func (a *DemoApp) apply(kind string, amount decimal.Decimal) error {
	if a.Policy == PolicyStrict {
		if kind == models.TransactionKindDeposit {
			return a.checked.Deposit(amount)
		}
		return a.checked.Withdraw(amount)
	}

	var ok bool
	if kind == models.TransactionKindDeposit {
		ok = a.account.Deposit(amount)
	} else {
		ok = a.account.Withdraw(amount)
	}
	if !ok {
		return fmt.Errorf("operation failed")
	}
	return nil
}

func (a *DemoApp) printNotifications(notifications []models.Notification) {
	a.printf("Notifications: %d\n", len(notifications))
	for _, n := range notifications {
		a.printf("  [%s] %s\n", n.Category, n.Message)
	}
}

func (a *DemoApp) printf(format string, args ...any) {
	_, _ = fmt.Fprintf(a.out, format, args...)
}

func parseOperation(op string) (string, decimal.Decimal, error) {
	name, value, found := strings.Cut(op, ":")
	if !found {
		return "", decimal.Zero, fmt.Errorf("operation %q must look like 'deposit:50'", op)
	}

	var kind string
	switch strings.ToLower(name) {
	case "deposit":
		kind = models.TransactionKindDeposit
	case "withdraw", "withdrawal":
		kind = models.TransactionKindWithdrawal
	default:
		return "", decimal.Zero, fmt.Errorf("unknown operation %q", name)
	}

	amount, err := decimal.NewFromString(value)
	if err != nil {
		return "", decimal.Zero, fmt.Errorf("invalid amount in %q: %w", op, err)
	}

	return kind, amount, nil
}
