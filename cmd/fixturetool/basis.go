package main

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"github.com/samcharles93/fixturetool/internal/logger"
	"github.com/samcharles93/fixturetool/pkg/gltf"

	"github.com/urfave/cli/v3"
)

func basisCmd() *cli.Command {
	var (
		extension string
		indent    int64
	)

	return &cli.Command{
		Name:      "basis",
		Usage:     "Point every texture of a .gltf at its Basis-compressed image",
		ArgsUsage: "<input.gltf> <output.gltf>",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:        "extension",
				Usage:       "texture extension (" + strings.Join(variantNames(), ", ") + ")",
				Value:       gltf.GoogleTextureBasis.Extension,
				Destination: &extension,
			},
			indentFlag(&indent),
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			log := logger.FromContext(ctx)
			applyIndent(cmd, configFromContext(ctx), &indent)

			args := cmd.Args().Slice()
			if len(args) != 2 {
				return fmt.Errorf("basis: %w: expected <input.gltf> <output.gltf>", errUsage)
			}
			in, out := args[0], args[1]
			variant, ok := gltf.TextureVariants[extension]
			if !ok {
				return fmt.Errorf("basis: %w: %s", gltf.ErrUnsupportedExtension, extension)
			}
			log.Info("converting", "src", in, "dst", out, "extension", variant.Extension)

			doc, err := readDocument(in)
			if err != nil {
				return fmt.Errorf("basis: %w", err)
			}
			doc, err = gltf.WrapTextures(doc, gltf.WrapOptions{
				Variant: variant,
				Exists: func(uri string) bool {
					_, err := os.Stat(sidecarPath(in, uri))
					return err == nil
				},
			})
			if err != nil {
				return fmt.Errorf("basis: %w", err)
			}
			data, err := doc.EncodeIndent(int(indent))
			if err != nil {
				return fmt.Errorf("basis: %w", err)
			}
			if err := writeFile(filepath.Clean(out), data); err != nil {
				return fmt.Errorf("basis: %w", err)
			}
			return nil
		},
	}
}

func variantNames() []string {
	names := make([]string, 0, len(gltf.TextureVariants))
	for name := range gltf.TextureVariants {
		names = append(names, name)
	}
	slices.Sort(names)
	return names
}
