package main

import (
	"fmt"
	"os"

	"tasklists/internal/cli"
	"tasklists/internal/config"
	"tasklists/internal/logging"
)

func main() {
	// Defaults, then environment. The root command applies flags and
	// validates, so a flag can repair a bad environment value.
	cfg := config.NewConfig()
	if err := cfg.LoadFromEnvironment(); err != nil {
		fmt.Fprintf(os.Stderr, "Error loading configuration: %v\n", err)
		os.Exit(1)
	}
	logging.Debugf("environment %s, driver %s", config.GetEnvironment(), cfg.Database.Driver)

	root := cli.NewRootCommand(cfg, cli.DefaultAPIFactory)
	if err := root.Execute(); err != nil {
		if !cli.IsReported(err) {
			fmt.Fprintf(os.Stderr, "Error: %v\n", cli.NewErrorHandler().HandleSimple(err))
		}
		os.Exit(1)
	}
}
