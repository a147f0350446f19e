package main

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
	"go.uber.org/fx"

	"github.com/benz9527/xlist/lib/xlog"
	"github.com/benz9527/xlist/playground"
)

type hookRecorder struct {
	hooks []fx.Hook
}

func (r *hookRecorder) Append(hook fx.Hook) {
	r.hooks = append(r.hooks, hook)
}

type countingSyncer struct {
	bytes.Buffer
	syncs int
}

func (s *countingSyncer) Sync() error {
	s.syncs++
	return nil
}

func newReplayHook(t *testing.T, kind playground.Kind, script string, out *bytes.Buffer) (fx.Hook, *countingSyncer) {
	ws := &countingSyncer{}
	logger := xlog.NewXLogger(
		xlog.WithXLoggerLevel(xlog.LogLevelInfo),
		xlog.WithXLoggerEncoder(xlog.JSON),
		xlog.WithXLoggerWriteSyncer(ws),
	)
	ops, err := playground.Parse(kind, script)
	require.NoError(t, err)
	runner, err := playground.NewRunner(kind, logger)
	require.NoError(t, err)

	lc := &hookRecorder{}
	replay(lc, runner, ops, &stepWriter{Writer: out}, logger)
	require.Len(t, lc.hooks, 1)
	return lc.hooks[0], ws
}

func envOf(kv map[string]string) func(string) (string, bool) {
	return func(key string) (string, bool) {
		v, ok := kv[key]
		return v, ok
	}
}

func TestParseConfig(t *testing.T) {
	cfg, err := parseConfig([]string{"--kind", "singly", "-s", "push:1,pop"}, envOf(nil))
	require.NoError(t, err)
	require.Equal(t, playground.KindSingly, cfg.kind)
	require.Equal(t, "push:1,pop", cfg.script)
	require.Equal(t, "INFO", cfg.logLevel)
	require.Equal(t, "plain", cfg.logEncoder)

	cfg, err = parseConfig([]string{"push_back:1", "pop_back"}, envOf(nil))
	require.NoError(t, err)
	require.Equal(t, playground.KindDoubly, cfg.kind)
	require.Equal(t, "push_back:1 pop_back", cfg.script)
}

func TestParseConfig_EnvOverrides(t *testing.T) {
	env := envOf(map[string]string{
		"XLIST_KIND":      "arena",
		"XLIST_SCRIPT":    "push_front:1",
		"XLIST_LOG_LEVEL": "ERROR",
	})
	cfg, err := parseConfig(nil, env)
	require.NoError(t, err)
	require.Equal(t, playground.KindArena, cfg.kind)
	require.Equal(t, "push_front:1", cfg.script)
	require.Equal(t, "ERROR", cfg.logLevel)

	// The command line wins.
	cfg, err = parseConfig([]string{"-k", "singly", "-s", "push:1"}, env)
	require.NoError(t, err)
	require.Equal(t, playground.KindSingly, cfg.kind)
	require.Equal(t, "push:1", cfg.script)
}

func TestParseConfig_Invalid(t *testing.T) {
	_, err := parseConfig(nil, envOf(nil))
	require.EqualError(t, err, "[xlist] empty script")

	_, err = parseConfig([]string{"-k", "ring", "pop"}, envOf(nil))
	require.Error(t, err)

	_, err = parseConfig([]string{"--unknown"}, envOf(nil))
	require.Error(t, err)
}

func TestNewApp_Replay(t *testing.T) {
	out := &bytes.Buffer{}
	cfg := &config{
		kind:       playground.KindDoubly,
		script:     "push_back:3 push_back:4 pop_front len push_front:5 pop_back pop_back pop_back",
		logLevel:   "ERROR",
		logEncoder: "json",
	}
	app := newApp(cfg, out)
	require.NoError(t, app.Err())
	require.NoError(t, app.Start(context.Background()))
	require.NoError(t, app.Stop(context.Background()))

	lines := strings.Split(strings.TrimSpace(out.String()), "\n")
	require.Equal(t, []string{
		"push_back:3 -> 3 (len 1)",
		"push_back:4 -> 4 (len 2)",
		"pop_front -> 3 (len 1)",
		"len -> 1 (len 1)",
		"push_front:5 -> 5 (len 2)",
		"pop_back -> 4 (len 1)",
		"pop_back -> 5 (len 0)",
		"pop_back -> none (len 0)",
	}, lines)
}

func TestNewApp_InvalidScript(t *testing.T) {
	cfg := &config{
		kind:       playground.KindSingly,
		script:     "push_back:1",
		logLevel:   "ERROR",
		logEncoder: "json",
	}
	app := newApp(cfg, &bytes.Buffer{})
	require.Error(t, app.Err())
	require.Contains(t, app.Err().Error(), "[playground] invalid script")
}

func TestReplay_ResetsBetweenStarts(t *testing.T) {
	out := &bytes.Buffer{}
	hook, ws := newReplayHook(t, playground.KindSingly, "push:1 push:2 len", out)

	require.NoError(t, hook.OnStart(context.Background()))
	first := out.String()
	out.Reset()
	require.NoError(t, hook.OnStart(context.Background()))
	require.Equal(t, first, out.String())
	require.Contains(t, out.String(), "len -> 2 (len 2)")
	require.Contains(t, ws.String(), `"kind":"singly"`)

	require.Equal(t, 0, ws.syncs)
	require.NoError(t, hook.OnStop(context.Background()))
	require.Equal(t, 1, ws.syncs)
}

func TestReplay_SyncsLoggerWhenStartFails(t *testing.T) {
	hook, ws := newReplayHook(t, playground.KindDoubly, "push_back:1", &bytes.Buffer{})

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	err := hook.OnStart(ctx)
	require.ErrorIs(t, err, context.Canceled)
	require.Equal(t, 1, ws.syncs)
	require.Contains(t, ws.String(), `"msg":"run cancelled"`)
}
