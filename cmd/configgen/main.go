package main

import (
	"flag"
	"log"

	"github.com/danmuck/dtclock/internal/config"
)

func main() {
	kind := flag.String("kind", "server", "config kind: server|client")
	output := flag.String("output", "", "output path for config template")
	validate := flag.Bool("validate", false, "validate an existing config file")
	input := flag.String("input", "", "config path for validation (defaults to <kind>.toml)")
	force := flag.Bool("force", false, "overwrite existing config file")
	flag.Parse()

	if *validate {
		path := *input
		if path == "" {
			path = *kind + ".toml"
		}
		switch *kind {
		case "server":
			cfg, err := config.LoadServerConfig(path)
			if err != nil {
				log.Fatal(err)
			}
			if err := cfg.Validate(); err != nil {
				log.Fatal(err)
			}
		case "client":
			cfg, err := config.LoadClientConfig(path)
			if err != nil {
				log.Fatal(err)
			}
			if err := cfg.Validate(); err != nil {
				log.Fatal(err)
			}
		default:
			log.Fatalf("unknown kind: %s", *kind)
		}
		log.Printf("Validated %s config at %s", *kind, path)
		return
	}

	target := *output
	if target == "" {
		target = *kind + ".toml"
	}
	if err := config.WriteTemplate(target, *kind, *force); err != nil {
		log.Fatal(err)
	}
	log.Printf("Wrote %s config template to %s", *kind, target)
}
