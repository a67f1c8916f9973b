// ReelMatch - Movie Title Search and Co-Rating Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/reelmatch

// Package main is an interactive ReelMatch prompt.
//
// It loads the same configuration as the server (config.yaml and
// environment), fits the engine once, then reads titles from stdin until EOF
// or "quit":
//
//	$ MOVIES_PATH=movies.csv RATINGS_PATH=ratings.csv reelmatch-cli
//	Enter a movie title (or 'quit'): toy story
//	Recommended Movies:
//	...
//
// With -query the title is answered once and the program exits.
package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/tomtom215/reelmatch/internal/app"
	"github.com/tomtom215/reelmatch/internal/config"
	"github.com/tomtom215/reelmatch/internal/logging"
)

func main() {
	query := flag.String("query", "", "answer a single title and exit")
	logLevel := flag.String("log-level", "warn", "log level for progress messages on stderr")
	flag.Parse()

	cfg, err := config.LoadWithKoanf()
	if err != nil {
		fmt.Fprintf(os.Stderr, "configuration: %v\n", err)
		os.Exit(2)
	}

	logging.Init(logging.Config{
		Level:  *logLevel,
		Format: "console",
		Output: os.Stderr,
	})

	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	engine, err := app.LoadEngine(ctx, cfg, logging.Logger())
	if err != nil {
		fmt.Fprintf(os.Stderr, "loading data: %v\n", err)
		cancel()
		os.Exit(1)
	}

	if err := run(ctx, engine, os.Stdin, os.Stdout, *query); err != nil {
		fmt.Fprintf(os.Stderr, "%v\n", err)
		cancel()
		os.Exit(1)
	}
}
