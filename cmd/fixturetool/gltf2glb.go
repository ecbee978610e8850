package main

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/samcharles93/fixturetool/internal/logger"
	"github.com/samcharles93/fixturetool/pkg/glb"
	"github.com/samcharles93/fixturetool/pkg/gltf"

	"github.com/urfave/cli/v3"
)

func gltf2glbCmd() *cli.Command {
	var (
		output       string
		bundleImages bool
	)

	return &cli.Command{
		Name:      "gltf2glb",
		Usage:     "Pack a .gltf and its buffer into a binary .glb",
		ArgsUsage: "<input.gltf>",
		Flags: []cli.Flag{
			outputFlag(&output, "output .glb path (default: input with .glb extension)"),
			&cli.BoolFlag{
				Name:        "bundle-images",
				Usage:       "append external image files to the binary buffer",
				Destination: &bundleImages,
			},
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			log := logger.FromContext(ctx)
			applyBool(cmd, "bundle-images", configFromContext(ctx).BundleImages, &bundleImages)

			in, err := singleInput(cmd.Args().Slice())
			if err != nil {
				return fmt.Errorf("gltf2glb: %w", err)
			}
			out, err := resolveOut(in, output, ".glb")
			if err != nil {
				return fmt.Errorf("gltf2glb: %w", err)
			}
			log.Info("converting", "src", in, "dst", out)

			doc, err := readDocument(in)
			if err != nil {
				return fmt.Errorf("gltf2glb: %w", err)
			}
			jsonChunk, bin, err := gltf.ToGLB(doc, gltf.ToGLBOptions{
				Load:         gltf.DirLoader(filepath.Dir(in)),
				BundleImages: bundleImages,
			})
			if err != nil {
				return fmt.Errorf("gltf2glb: %w", err)
			}
			log.Debug("encoded", "json", len(jsonChunk), "bin", len(bin), "size", glb.Size(len(jsonChunk), len(bin)))
			if err := glb.Create(out, jsonChunk, bin); err != nil {
				return fmt.Errorf("gltf2glb: %w", err)
			}
			return nil
		},
	}
}

func readDocument(path string) (*gltf.Document, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return gltf.Decode(data)
}
