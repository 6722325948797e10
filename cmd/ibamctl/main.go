package main

import (
	"fmt"
	"os"

	"ibamconsole/internal/adapters/restapi"
	"ibamconsole/internal/cli"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	cfg, err := cli.Load(os.Getenv("IBAMCTL_CONFIG"))
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	session := &restapi.Session{Token: cfg.Server.Token}
	if session.Token != "" && !session.Valid() {
		return fmt.Errorf("the configured token has expired, obtain a new one")
	}
	api := restapi.NewClient(cfg.Server.URL, session, nil)

	app := cli.NewApp(cfg, api, os.Stdout)
	return app.Execute()
}
