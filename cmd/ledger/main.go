package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"
)

func main() {
	if err := run(os.Getenv, os.Getwd, os.Args[1:], os.Stdout); err != nil {
		slog.Error("can't run ledger demo, sorry", "error", err.Error())
		os.Exit(1)
	}
}

// run loads config (defaults, .env, env, flags in that order) and runs the demo
func run(getenv func(string) string, getwd func() (string, error), args []string, out io.Writer) error {
	c := NewConfig()

	if err := c.LoadDotEnv(getwd); err != nil {
		return fmt.Errorf("error while loading .env: %w", err)
	}
	if err := c.LoadEnv(getenv); err != nil {
		return err
	}
	operations, err := c.ParseFlags(args)
	if err != nil {
		return err
	}
	if err := c.Validate(); err != nil {
		return fmt.Errorf("invalid config: %w", err)
	}

	app, err := NewDemoApp(c, out)
	if err != nil {
		return err
	}

	return app.Run(operations)
}
