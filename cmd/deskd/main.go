package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/pcarvalho/deskd/internal/config"
	"github.com/pcarvalho/deskd/internal/daemon"
	"github.com/pcarvalho/deskd/internal/session"
	"go.uber.org/fx"
)

func main() {
	profileFlag := flag.String("profile", "", "profile name (overrides config default)")
	flag.Parse()

	profile := session.Resolve(*profileFlag)
	if err := session.ValidateName(profile); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}

	cfg, err := config.Load(session.ConfigPath())
	if err != nil {
		// A missing config is fine for local use; the server endpoint can
		// be added later.
		cfg = config.Default()
	}

	app := fx.New(
		daemon.Module(daemon.Params{Profile: profile, Config: cfg}),
	)

	app.Run()
}
