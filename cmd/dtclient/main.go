package main

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/danmuck/dtclock/internal/client"
	"github.com/danmuck/dtclock/internal/config"
	"github.com/danmuck/dtclock/internal/logging"
)

func main() {
	configPath := flag.String("config", "", "path to client config toml")
	timeout := flag.Duration("timeout", 0, "response wait, overrides config")
	flag.Usage = func() {
		fmt.Fprintf(flag.CommandLine.Output(), "usage: dtclient [-config path] [-timeout d] date|time [host port]\n")
		flag.PrintDefaults()
	}
	flag.Parse()
	logging.ConfigureRuntime("dtclient")

	cfg, err := config.LoadClientConfig(*configPath)
	if err != nil {
		fail(err)
	}
	if err := applyArgs(&cfg, flag.Args()); err != nil {
		fail(err)
	}
	if *timeout > 0 {
		cfg.Timeout = *timeout
	}
	if err := cfg.Validate(); err != nil {
		fail(err)
	}

	resp, err := client.Exchange(context.Background(), cfg)
	if err != nil {
		fail(err)
	}
	fmt.Print(client.Describe(resp))
}

func fail(err error) {
	fmt.Fprintf(os.Stderr, "dtclient: %v\n", err)
	os.Exit(1)
}
