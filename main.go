package main

import (
	"context"
	"os"

	"github.com/juju/errors"
	"github.com/peer-calls/trackpub/server/cli"
	"github.com/peer-calls/trackpub/server/logformatter"
	"github.com/peer-calls/trackpub/server/logger"
	"github.com/spf13/pflag"
)

const gitDescribe string = "v0.0.0"

func start(ctx context.Context, log logger.Logger, args []string) error {
	err := cli.Exec(ctx, cli.Props{
		Log:     log,
		Version: gitDescribe,
		Args:    args,
		Stdout:  os.Stdout,
		Stderr:  os.Stderr,
	})

	return errors.Trace(err)
}

func main() {
	log := logger.New().
		WithConfig(logger.ConfigMap{
			"": logger.LevelInfo,
		}).
		WithConfig(logger.NewConfigFromString(os.Getenv("TRACKPUB_LOG"))).
		WithFormatter(logformatter.New()).
		WithNamespaceAppended("trackpub")

	err := start(context.Background(), log, os.Args[1:])

	if errors.Cause(err) == pflag.ErrHelp {
		os.Exit(1)
	} else if err != nil {
		log.Error("Command error", errors.Trace(err), nil)
		os.Exit(1)
	}
}
