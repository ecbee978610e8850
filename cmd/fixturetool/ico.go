package main

import (
	"context"
	"fmt"

	"github.com/samcharles93/fixturetool/internal/logger"
	"github.com/samcharles93/fixturetool/pkg/ico"

	"github.com/urfave/cli/v3"
)

func icoCmd() *cli.Command {
	var output string

	return &cli.Command{
		Name:      "ico",
		Usage:     "Pack PNG files named <name><W>x<H>.png into a Windows icon",
		ArgsUsage: "<image>... <output.ico>",
		Flags: []cli.Flag{
			outputFlag(&output, "output .ico path (all positional arguments become inputs)"),
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			log := logger.FromContext(ctx)

			inputs, out, err := splitIcoArgs(cmd.Args().Slice(), output)
			if err != nil {
				return fmt.Errorf("ico: %w", err)
			}
			log.Info("converting", "dst", out, "images", len(inputs))
			if err := ico.Pack(inputs, out); err != nil {
				return fmt.Errorf("ico: %w", err)
			}
			return nil
		},
	}
}
