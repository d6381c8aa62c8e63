package cli

import (
	"context"
	"fmt"
	"io"
	"os"
	"text/tabwriter"

	"github.com/juju/errors"
	"github.com/peer-calls/trackpub/server/clock"
	"github.com/peer-calls/trackpub/server/command"
	"github.com/peer-calls/trackpub/server/config"
	"github.com/peer-calls/trackpub/server/logger"
	"github.com/peer-calls/trackpub/server/publication"
	"github.com/peer-calls/trackpub/server/signaling"
	"github.com/spf13/pflag"
)

var ErrNoEventsFile = errors.New("no events file")

type replayHandler struct {
	args struct {
		configs []string
		strict  bool
	}

	props Props
}

func (h *replayHandler) RegisterFlags(c *command.Command, flags *pflag.FlagSet) {
	flags.StringSliceVarP(&h.args.configs, "config", "c", nil, "config files to use")
	flags.BoolVar(&h.args.strict, "strict", false, "fail on the first invalid track descriptor")
}

// Handle reads a signaling event log, applies it to an empty registry and
// prints the resulting publications.
func (h *replayHandler) Handle(ctx context.Context, args []string) error {
	cfg, err := config.ReadConfig(h.args.configs)
	if err != nil {
		return errors.Trace(err)
	}

	if h.args.strict {
		cfg.Replay.Strict = true
	}

	if len(args) > 0 {
		cfg.Replay.File = args[0]
	}

	if cfg.Replay.File == "" {
		return errors.Annotatef(ErrNoEventsFile, "replay")
	}

	log := h.props.Log.
		WithConfig(logger.NewConfigFromString(cfg.Log.Levels)).
		WithNamespaceAppended("replay")

	events, err := readEventsFile(cfg.Replay.File)
	if err != nil {
		return errors.Trace(err)
	}

	log.Info("Replaying events", logger.Ctx{
		"file":   cfg.Replay.File,
		"events": len(events),
		"strict": cfg.Replay.Strict,
	})

	registry := publication.NewRegistry(log, clock.New())

	handler := signaling.NewHandler(signaling.HandlerParams{
		Log:      log,
		Registry: registry,
		Strict:   cfg.Replay.Strict,
	})

	if err := handler.HandleAll(events); err != nil {
		return errors.Annotatef(err, "replay: %s", cfg.Replay.File)
	}

	return errors.Trace(printPublications(h.props.Stdout, registry))
}

func readEventsFile(filename string) ([]signaling.Event, error) {
	f, err := os.Open(filename)
	if err != nil {
		return nil, errors.Annotatef(err, "open events file: %s", filename)
	}

	defer f.Close()

	events, err := signaling.ReadEvents(f)

	return events, errors.Annotatef(err, "read events file: %s", filename)
}

func printPublications(w io.Writer, registry *publication.Registry) error {
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)

	fmt.Fprintln(tw, "SID\tKIND\tLOCALITY\tNAME\tSUBSCRIBED")

	for _, pub := range registry.RemotePublications() {
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\t%t\n", pub.SID(), pub.Kind(), "remote", pub.Name(), pub.IsSubscribed())
	}

	return errors.Trace(tw.Flush())
}

func newReplayCmd(props Props) *command.Command {
	h := &replayHandler{
		props: props,
	}

	return command.New(command.Params{
		Name:         "replay",
		Desc:         "Apply a signaling event log and print the publications",
		FlagRegistry: h,
		Handler:      h,
	})
}
