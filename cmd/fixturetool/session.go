package main

import (
	"context"
	"io"
	"log/slog"
	"os"

	"github.com/samcharles93/fixturetool/internal/logger"

	"github.com/urfave/cli/v3"
)

// session holds per-invocation state shared by the subcommand hooks.
type session struct {
	log      logOptions
	cfg      Config
	closeLog func() error
}

type configKey struct{}

func (s *session) before(ctx context.Context, cmd *cli.Command) (context.Context, error) {
	s.cfg = LoadConfig()
	applyLogConfig(cmd, s.cfg, &s.log)

	level := logger.ParseLevel(s.log.level)
	if s.log.debug {
		level = slog.LevelDebug
	}
	opts := logger.Options{
		Level:   level,
		Format:  s.log.format,
		Console: stdout(cmd),
	}
	if s.log.file != "" {
		opts.File = logger.DefaultFileConfig(s.log.file)
	}
	log, closeLog := logger.Build(opts)
	s.closeLog = closeLog

	log.Debug("config loaded", "path", configPath())
	ctx = logger.WithContext(ctx, log)
	return context.WithValue(ctx, configKey{}, s.cfg), nil
}

func (s *session) after(context.Context, *cli.Command) error {
	if s.closeLog == nil {
		return nil
	}
	err := s.closeLog()
	s.closeLog = nil
	return err
}

func configFromContext(ctx context.Context) Config {
	cfg, _ := ctx.Value(configKey{}).(Config)
	return cfg
}

func stdout(cmd *cli.Command) io.Writer {
	if w := cmd.Root().Writer; w != nil {
		return w
	}
	return os.Stdout
}
