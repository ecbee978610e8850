package main

import (
	"context"
	"fmt"

	"github.com/samcharles93/fixturetool/internal/logger"
	"github.com/samcharles93/fixturetool/pkg/ply"

	"github.com/urfave/cli/v3"
)

func plyCmd() *cli.Command {
	var output string

	return &cli.Command{
		Name:      "ply",
		Usage:     "Pack a YAML point-cloud description into a binary .ply",
		ArgsUsage: "<points.ply.yaml>",
		Flags: []cli.Flag{
			outputFlag(&output, "output path (default: input without its last extension)"),
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			log := logger.FromContext(ctx)

			in, err := singleInput(cmd.Args().Slice())
			if err != nil {
				return fmt.Errorf("ply: %w", err)
			}
			out, err := resolveOut(in, output, "")
			if err != nil {
				return fmt.Errorf("ply: %w", err)
			}
			log.Info("converting", "src", in, "dst", out)
			if err := ply.Convert(in, out); err != nil {
				return fmt.Errorf("ply: %w", err)
			}
			return nil
		},
	}
}
