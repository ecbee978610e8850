package main

import (
	"context"
	"fmt"
	"path/filepath"

	"github.com/samcharles93/fixturetool/internal/logger"
	"github.com/samcharles93/fixturetool/pkg/gltf"

	"github.com/urfave/cli/v3"
)

func embedCmd() *cli.Command {
	var (
		output   string
		noBuffer bool
		noImages bool
	)

	return &cli.Command{
		Name:      "embed",
		Usage:     "Inline external buffers and images of a .gltf as data URIs",
		ArgsUsage: "<input.gltf>",
		Flags: []cli.Flag{
			outputFlag(&output, "output path (default: <input>-embedded.gltf)"),
			&cli.BoolFlag{
				Name:        "no-buffer",
				Usage:       "keep external buffer URIs",
				Destination: &noBuffer,
			},
			&cli.BoolFlag{
				Name:        "no-images",
				Usage:       "keep external image URIs",
				Destination: &noImages,
			},
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			log := logger.FromContext(ctx)

			in, err := singleInput(cmd.Args().Slice())
			if err != nil {
				return fmt.Errorf("embed: %w", err)
			}
			out, err := resolveOut(in, output, "-embedded.gltf")
			if err != nil {
				return fmt.Errorf("embed: %w", err)
			}
			log.Info("converting", "src", in, "dst", out)

			doc, err := readDocument(in)
			if err != nil {
				return fmt.Errorf("embed: %w", err)
			}
			doc, err = gltf.Embed(doc, gltf.EmbedOptions{
				Load:        gltf.DirLoader(filepath.Dir(in)),
				SkipBuffers: noBuffer,
				SkipImages:  noImages,
			})
			if err != nil {
				return fmt.Errorf("embed: %w", err)
			}
			data, err := doc.Encode()
			if err != nil {
				return fmt.Errorf("embed: %w", err)
			}
			if err := writeFile(out, data); err != nil {
				return fmt.Errorf("embed: %w", err)
			}
			return nil
		},
	}
}
