package main

import "github.com/urfave/cli/v3"

type logOptions struct {
	level  string
	format string
	file   string
	debug  bool
}

func loggingFlags(o *logOptions) []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:        "log-level",
			Usage:       "log level (debug, info, warn, error)",
			Value:       "info",
			Destination: &o.level,
		},
		&cli.StringFlag{
			Name:        "log-format",
			Usage:       "log format (pretty, json, text)",
			Value:       "pretty",
			Destination: &o.format,
		},
		&cli.StringFlag{
			Name:        "log-file",
			Usage:       "also write JSON logs to a rotating file",
			Destination: &o.file,
		},
		&cli.BoolFlag{
			Name:        "debug",
			Usage:       "enable debug logging (shorthand for --log-level=debug)",
			Destination: &o.debug,
		},
	}
}

func outputFlag(dst *string, usage string) cli.Flag {
	return &cli.StringFlag{
		Name:        "output",
		Aliases:     []string{"o"},
		Usage:       usage,
		Destination: dst,
	}
}

func indentFlag(dst *int64) cli.Flag {
	return &cli.Int64Flag{
		Name:        "indent",
		Usage:       "spaces per indentation level in the written .gltf",
		Value:       defaultIndent,
		Destination: dst,
	}
}
