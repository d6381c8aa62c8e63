package cli

import (
	"context"
	"io"
	"os"

	"github.com/juju/errors"
	"github.com/peer-calls/trackpub/server/logger"
)

type Props struct {
	Log     logger.Logger
	Version string
	Args    []string
	// Stdout receives command output. Usage and flag errors go to Stderr.
	Stdout io.Writer
	Stderr io.Writer
}

func Exec(ctx context.Context, props Props) error {
	if props.Stdout == nil {
		props.Stdout = os.Stdout
	}

	cmd := NewRootCommand(props)

	if props.Stderr != nil {
		cmd.SetWriter(props.Stderr)
	}

	err := cmd.Exec(ctx, props.Args)

	return errors.Trace(err)
}
