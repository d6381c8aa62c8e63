package cli

import (
	"github.com/peer-calls/trackpub/server/command"
)

func NewRootCommand(props Props) *command.Command {
	return command.New(command.Params{
		Name: "trackpub",
		Desc: "Inspect track publication state",
		SubCommands: []*command.Command{
			newReplayCmd(props),
			newVersionCmd(props),
		},
	})
}
