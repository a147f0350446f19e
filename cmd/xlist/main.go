package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"time"

	"go.uber.org/fx"
	"go.uber.org/fx/fxevent"
	"go.uber.org/zap"

	"github.com/benz9527/xlist/lib/xlog"
	"github.com/benz9527/xlist/playground"
)

type stepWriter struct {
	io.Writer
}

func newLogger(cfg *config) xlog.XLogger {
	return xlog.NewXLogger(
		xlog.WithXLoggerLevel(xlog.ParseLogLevel(cfg.logLevel)),
		xlog.WithXLoggerEncoder(xlog.ParseLogEncoder(cfg.logEncoder)),
		xlog.WithXLoggerWriter(xlog.StdErr),
	)
}

func newOps(cfg *config) ([]playground.Op, error) {
	return playground.Parse(cfg.kind, cfg.script)
}

func newRunner(cfg *config, logger xlog.XLogger) (*playground.Runner, error) {
	return playground.NewRunner(cfg.kind, logger)
}

func syncLogger(logger xlog.XLogger) {
	// Syncing a terminal returns EINVAL on some platforms.
	_ = logger.Sync()
}

func replay(
	lc fx.Lifecycle,
	runner *playground.Runner,
	ops []playground.Op,
	out *stepWriter,
	logger xlog.XLogger,
) {
	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) (err error) {
			// fx skips OnStop for a hook whose OnStart failed.
			defer func() {
				if err != nil {
					syncLogger(logger)
				}
			}()

			runner.Reset()
			logger.Info("replay",
				zap.String("kind", string(runner.Kind())),
				zap.Int("ops", len(ops)),
			)
			steps, err := runner.Run(ctx, ops)
			for _, step := range steps {
				if _, werr := fmt.Fprintln(out, step.String()); werr != nil {
					return werr
				}
			}
			return err
		},
		OnStop: func(context.Context) error {
			syncLogger(logger)
			return nil
		},
	})
}

func newApp(cfg *config, out io.Writer) *fx.App {
	return fx.New(
		fx.Supply(cfg, &stepWriter{Writer: out}),
		fx.Provide(newLogger, newOps, newRunner),
		fx.WithLogger(func(logger xlog.XLogger) fxevent.Logger {
			return xlog.NewFxXLogger(logger)
		}),
		fx.Invoke(replay),
	)
}

func run(args []string, out io.Writer) error {
	cfg, err := parseConfig(args, os.LookupEnv)
	if err != nil {
		return err
	}

	app := newApp(cfg, out)
	if err = app.Err(); err != nil {
		return err
	}

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()
	if err = app.Start(ctx); err != nil {
		return err
	}
	return app.Stop(ctx)
}

func main() {
	if err := run(os.Args[1:], os.Stdout); err != nil {
		_, _ = fmt.Fprintf(os.Stderr, "%+v\n", err)
		os.Exit(1)
	}
}
