package main

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/samcharles93/fixturetool/pkg/glb"
	"github.com/samcharles93/fixturetool/pkg/gltf"
	"github.com/samcharles93/fixturetool/pkg/ico"

	"github.com/urfave/cli/v3"
)

func inspectCmd() *cli.Command {
	return &cli.Command{
		Name:      "inspect",
		Usage:     "Print the header and directory of an .ico or .glb file",
		ArgsUsage: "<file>",
		Action: func(ctx context.Context, cmd *cli.Command) error {
			in, err := singleInput(cmd.Args().Slice())
			if err != nil {
				return fmt.Errorf("inspect: %w", err)
			}
			if err := inspectFile(stdout(cmd), in); err != nil {
				return fmt.Errorf("inspect: %w", err)
			}
			return nil
		},
	}
}

func inspectFile(w io.Writer, path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return err
	}
	fmt.Fprintf(w, "File: %s (%d bytes)\n", filepath.Base(path), len(data))
	if bytes.HasPrefix(data, []byte(glb.Magic)) {
		return inspectGLB(w, data)
	}
	return inspectICO(w, data)
}

func inspectICO(w io.Writer, data []byte) error {
	f, err := ico.Decode(data)
	if err != nil {
		return err
	}
	fmt.Fprintf(w, "ICO: type=%d images=%d\n", f.Header.Type, f.Header.Count)
	for i, e := range f.Entries {
		fmt.Fprintf(w, "%3d  %4dx%-4d size=%-8d off=%d\n", i, iconDim(e.Width), iconDim(e.Height), e.Size, e.Offset)
	}
	return nil
}

// iconDim undoes the 256 -> 0 wrap of directory entries.
func iconDim(v uint8) int {
	if v == 0 {
		return 256
	}
	return int(v)
}

func inspectGLB(w io.Writer, data []byte) error {
	c, err := glb.Parse(data)
	if err != nil {
		return err
	}
	fmt.Fprintf(w, "GLB: version=%d length=%d\n", c.Header.Version, c.Header.Length)
	for i, ch := range c.Chunks() {
		fmt.Fprintf(w, "chunk %d: %-4s length=%d\n", i, glb.ChunkType(ch.Type), ch.Length)
	}

	doc, err := gltf.Decode(bytes.TrimRight(c.JSON, " \x00"))
	if err != nil {
		return err
	}
	counts := []struct {
		label string
		list  func() ([]gltf.Object, error)
	}{
		{"buffers", doc.Buffers},
		{"bufferViews", doc.BufferViews},
		{"images", doc.Images},
		{"textures", doc.Textures},
	}
	for _, n := range counts {
		objs, err := n.list()
		if err != nil {
			return err
		}
		fmt.Fprintf(w, "%-12s %d\n", n.label+":", len(objs))
	}
	return nil
}
