package main

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
	"github.com/spf13/pflag"

	"github.com/nkiryanov/ledger/internal/logger"
)

const (
	PolicyBoolean = "boolean"
	PolicyStrict  = "strict"
)

const (
	defaultLoggingLevel   = logger.LevelInfo
	defaultEnvironment    = logger.EnvProduction
	defaultInitialBalance = "100"
	defaultPolicy         = PolicyBoolean
)

type Config struct {
	// Default logging level
	LogLevel string `validate:"oneof=debug info warn error"`

	// Environment
	Environment string `validate:"oneof=dev prod"`

	// Balance the demo account is opened with. Negative is allowed unless RejectNegative is set
	InitialBalance string `validate:"required,numeric"`

	// How rejected operations are reported: 'boolean' just reports failure, 'strict' reports the reason
	Policy string `validate:"oneof=boolean strict"`

	// Optional URL every notification is posted to
	WebhookURL string `validate:"omitempty,url"`

	// Refuse to open account with negative initial balance
	RejectNegative bool
}

func NewConfig() *Config {
	return &Config{
		LogLevel:       defaultLoggingLevel,
		Environment:    defaultEnvironment,
		InitialBalance: defaultInitialBalance,
		Policy:         defaultPolicy,
	}
}

// Load variable from '.env' file (should be located at working directory)
func (c *Config) LoadDotEnv(getwd func() (string, error)) error {
	wd, err := getwd()
	if err != nil {
		return err
	}

	envMap, err := godotenv.Read(filepath.Join(wd, ".env"))

	switch {
	case err == nil:
		return c.LoadEnv(func(key string) string {
			return envMap[key]
		})
	case errors.Is(err, os.ErrNotExist):
		return nil
	default:
		return err
	}
}

func (c *Config) LoadEnv(getenv func(string) string) error {
	// Set option to value if it not empty
	setString := func(o *string) func(value string) error {
		return func(value string) error {
			if value != "" {
				*o = value
			}
			return nil
		}
	}

	setBool := func(o *bool) func(value string) error {
		return func(value string) error {
			if value == "" {
				return nil
			}
			b, err := strconv.ParseBool(value)
			if err != nil {
				return err
			}
			*o = b
			return nil
		}
	}

	envMap := map[string]func(string) error{
		"LOG_LEVEL":       setString(&c.LogLevel),
		"ENVIRONMENT":     setString(&c.Environment),
		"INITIAL_BALANCE": setString(&c.InitialBalance),
		"POLICY":          setString(&c.Policy),
		"WEBHOOK_URL":     setString(&c.WebhookURL),
		"REJECT_NEGATIVE": setBool(&c.RejectNegative),
	}

	for key, parseFn := range envMap {
		if err := parseFn(getenv(key)); err != nil {
			return fmt.Errorf("invalid %s: %w", key, err)
		}
	}

	return nil
}

// ParseFlags parses flags and returns positional arguments (operations)
func (c *Config) ParseFlags(args []string) ([]string, error) {
	fs := pflag.NewFlagSet("ledger", pflag.ContinueOnError)

	fs.StringVarP(&c.LogLevel, "log-level", "l", c.LogLevel, "Logging level (debug, info, warn, error)")
	fs.StringVarP(&c.Environment, "environment", "e", c.Environment, "Environment (dev, prod)")
	fs.StringVarP(&c.InitialBalance, "balance", "b", c.InitialBalance, "Initial account balance")
	fs.StringVarP(&c.Policy, "policy", "p", c.Policy, "Rejected operations policy (boolean, strict)")
	fs.StringVarP(&c.WebhookURL, "webhook", "w", c.WebhookURL, "URL to post notifications to")
	fs.BoolVar(&c.RejectNegative, "reject-negative", c.RejectNegative, "Refuse negative initial balance")

	if err := fs.Parse(args); err != nil {
		return nil, err
	}

	return fs.Args(), nil
}

func (c *Config) Validate() error {
	return validator.New().Struct(c)
}
