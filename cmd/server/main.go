// Copyright 2025 Oliver Andrich
// Licensed under the EUPL-1.2

package main

import (
	"context"
	"log"
	"os"

	"github.com/Toitw/sport-team-manager-sub000/internal/config"
	"github.com/Toitw/sport-team-manager-sub000/internal/server"
	"github.com/urfave/cli/v3"
)

func main() {
	cmd := &cli.Command{
		Name:   "server",
		Usage:  "Start the team manager API server",
		Flags:  config.Flags(),
		Action: server.Run,
	}

	if err := cmd.Run(context.Background(), os.Args); err != nil {
		log.Fatal(err)
	}
}
