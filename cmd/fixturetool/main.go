package main

import (
	"context"
	"fmt"
	"os"

	"github.com/urfave/cli/v3"
)

func main() {
	if err := newApp().Run(context.Background(), os.Args); err != nil {
		_, _ = fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newApp() *cli.Command {
	s := &session{}
	cmds := []*cli.Command{
		icoCmd(),
		glb2gltfCmd(),
		gltf2glbCmd(),
		embedCmd(),
		basisCmd(),
		plyCmd(),
		inspectCmd(),
	}
	for _, c := range cmds {
		c.Before = s.before
		c.After = s.after
	}

	return &cli.Command{
		Name:  "fixturetool",
		Usage: "Generate and convert test fixture files",
		Flags: loggingFlags(&s.log),
		Action: func(ctx context.Context, cmd *cli.Command) error {
			return cli.ShowAppHelp(cmd)
		},
		Commands: append(cmds, versionCmd()),
	}
}
