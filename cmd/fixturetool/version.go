package main

import (
	"context"
	"fmt"

	"github.com/samcharles93/fixturetool/internal/version"

	"github.com/urfave/cli/v3"
)

func versionCmd() *cli.Command {
	return &cli.Command{
		Name:  "version",
		Usage: "Print version information",
		Action: func(ctx context.Context, cmd *cli.Command) error {
			_, err := fmt.Fprint(stdout(cmd), version.Resolve().Details())
			return err
		},
	}
}
