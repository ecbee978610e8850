package main

import (
	"context"
	"fmt"
	"path/filepath"

	"github.com/samcharles93/fixturetool/internal/logger"
	"github.com/samcharles93/fixturetool/pkg/glb"
	"github.com/samcharles93/fixturetool/pkg/gltf"

	"github.com/urfave/cli/v3"
)

func glb2gltfCmd() *cli.Command {
	var (
		output        string
		extractImages bool
		indent        int64
	)

	return &cli.Command{
		Name:      "glb2gltf",
		Usage:     "Split a binary .glb into .gltf JSON and an external .bin buffer",
		ArgsUsage: "<input.glb>",
		Flags: []cli.Flag{
			outputFlag(&output, "output .gltf path (default: input with .gltf extension)"),
			&cli.BoolFlag{
				Name:        "extract-images",
				Usage:       "write buffer-view images to separate files",
				Destination: &extractImages,
			},
			indentFlag(&indent),
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			log := logger.FromContext(ctx)
			cfg := configFromContext(ctx)
			applyBool(cmd, "extract-images", cfg.ExtractImages, &extractImages)
			applyIndent(cmd, cfg, &indent)

			in, err := singleInput(cmd.Args().Slice())
			if err != nil {
				return fmt.Errorf("glb2gltf: %w", err)
			}
			out, err := resolveOut(in, output, ".gltf")
			if err != nil {
				return fmt.Errorf("glb2gltf: %w", err)
			}
			binPath := trimExt(out) + ".bin"
			log.Info("converting", "src", in, "dst", out, "bin", binPath)

			if err := convertGLB(ctx, in, out, binPath, extractImages, int(indent)); err != nil {
				return fmt.Errorf("glb2gltf: %w", err)
			}
			return nil
		},
	}
}

func convertGLB(ctx context.Context, in, out, binPath string, extract bool, indent int) error {
	log := logger.FromContext(ctx)

	c, err := glb.Open(in)
	if err != nil {
		return err
	}
	defer func() { _ = c.Close() }()

	res, err := gltf.FromGLB(c, gltf.FromGLBOptions{
		BinaryURI:     filepath.ToSlash(filepath.Base(binPath)),
		ExtractImages: extract,
	})
	if err != nil {
		return err
	}

	for _, img := range res.Images {
		p := sidecarPath(out, img.URI)
		log.Info("extracting", "dst", p, "bytes", len(img.Data))
		if err := writeFile(p, img.Data); err != nil {
			return err
		}
	}

	data, err := res.Document.EncodeIndent(indent)
	if err != nil {
		return err
	}
	if err := writeFile(out, data); err != nil {
		return err
	}
	if res.Binary == nil {
		log.Debug("no binary buffer to write")
		return nil
	}
	return writeFile(binPath, res.Binary)
}
