package cli

import (
	"context"
	"fmt"

	"github.com/peer-calls/trackpub/server/command"
)

type versionHandler struct {
	props Props
}

func (v *versionHandler) Handle(ctx context.Context, args []string) error {
	fmt.Fprintln(v.props.Stdout, "trackpub", v.props.Version)

	return nil
}

func newVersionCmd(props Props) *command.Command {
	return command.New(command.Params{
		Name:    "version",
		Desc:    "Show version information",
		Handler: &versionHandler{props},
	})
}
