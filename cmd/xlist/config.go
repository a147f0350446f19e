package main

import (
	"strings"

	"github.com/spf13/pflag"

	"github.com/benz9527/xlist/lib/infra"
	"github.com/benz9527/xlist/playground"
)

type config struct {
	kind       playground.Kind
	script     string
	logLevel   string
	logEncoder string
}

// Environment variables only fill the flags not set on the command line.
var envOverrides = []struct {
	flag, env string
}{
	{"kind", "XLIST_KIND"},
	{"script", "XLIST_SCRIPT"},
	{"log-level", "XLIST_LOG_LEVEL"},
	{"log-encoder", "XLIST_LOG_ENCODER"},
}

func parseConfig(args []string, lookupEnv func(string) (string, bool)) (*config, error) {
	var (
		cfg  = &config{}
		kind string
		fs   = pflag.NewFlagSet("xlist", pflag.ContinueOnError)
	)
	fs.StringVarP(&kind, "kind", "k", string(playground.KindDoubly), "list kind: singly, doubly or arena")
	fs.StringVarP(&cfg.script, "script", "s", "", "ops separated by comma, semicolon or spaces, i.e. push_back:3,pop_front")
	fs.StringVar(&cfg.logLevel, "log-level", "INFO", "DEBUG, INFO, WARN or ERROR")
	fs.StringVar(&cfg.logEncoder, "log-encoder", "plain", "json or plain")
	if err := fs.Parse(args); err != nil {
		return nil, infra.WrapErrorStackWithMessage(err, "[xlist] parse flags")
	}

	for _, o := range envOverrides {
		if fs.Changed(o.flag) {
			continue
		}
		if v, ok := lookupEnv(o.env); ok {
			if err := fs.Set(o.flag, v); err != nil {
				return nil, infra.WrapErrorStackWithMessage(err, "[xlist] apply "+o.env)
			}
		}
	}

	// The positional arguments are taken as the script as well.
	if len(strings.TrimSpace(cfg.script)) == 0 && fs.NArg() > 0 {
		cfg.script = strings.Join(fs.Args(), " ")
	}
	if len(strings.TrimSpace(cfg.script)) == 0 {
		return nil, infra.NewErrorStack("[xlist] empty script")
	}

	var err error
	if cfg.kind, err = playground.ParseKind(kind); err != nil {
		return nil, err
	}
	return cfg, nil
}
