/*
Folio serves a library of offline books over HTTP.

Configuration is read from environment variables, after loading any .env file
in the working directory. See package librarian for the variables read.

Usage:

	folio [env files...]
*/
package main

import (
	"context"
	"os"

	"github.com/xy-planning-network/folio/librarian"
	"github.com/xy-planning-network/folio/logger"
)

func main() {
	log := logger.New()

	cfg, err := librarian.LoadConfig(os.Args[1:]...)
	if err != nil {
		log.Fatal("could not configure folio", &logger.LogContext{Error: err})
		os.Exit(1)
	}

	l, err := librarian.New(cfg)
	if err != nil {
		log.Fatal("could not open the library", &logger.LogContext{Error: err})
		os.Exit(1)
	}

	if err := l.Serve(context.Background()); err != nil {
		log.Fatal("library closed unexpectedly", &logger.LogContext{Error: err})
		os.Exit(1)
	}
}
