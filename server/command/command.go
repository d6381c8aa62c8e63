package command

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"os"

	"github.com/juju/errors"
	"github.com/spf13/pflag"
)

var ErrCommandNotFound = errors.New("command not found")

// Handler receives the arguments left over after flag parsing.
type Handler interface {
	Handle(ctx context.Context, args []string) error
}

type HandlerFunc func(ctx context.Context, args []string) error

func (h HandlerFunc) Handle(ctx context.Context, args []string) error {
	return h(ctx, args)
}

// FlagRegistry registers the flags of a command.
type FlagRegistry interface {
	RegisterFlags(cmd *Command, flags *pflag.FlagSet)
}

type FlagRegistryFunc func(cmd *Command, flags *pflag.FlagSet)

func (f FlagRegistryFunc) RegisterFlags(cmd *Command, flags *pflag.FlagSet) {
	f(cmd, flags)
}

// Command is a node in a tree of subcommands. Flags are parsed per command,
// up to the first positional argument, which selects the subcommand.
type Command struct {
	params      Params
	subCommands map[string]*Command
	writer      io.Writer
}

type Params struct {
	Name         string
	Desc         string
	FlagRegistry FlagRegistry
	Handler      Handler
	SubCommands  []*Command
}

func New(params Params) *Command {
	subCommands := make(map[string]*Command, len(params.SubCommands))

	for _, cmd := range params.SubCommands {
		subCommands[cmd.Name()] = cmd
	}

	c := &Command{
		params:      params,
		subCommands: subCommands,
	}

	c.SetWriter(os.Stderr)

	return c
}

// SetWriter sets the usage output of c and all of its subcommands.
func (c *Command) SetWriter(w io.Writer) {
	c.writer = w

	for _, s := range c.params.SubCommands {
		s.SetWriter(w)
	}
}

func (c *Command) Name() string {
	return c.params.Name
}

func (c *Command) Desc() string {
	return c.params.Desc
}

func (c *Command) Usage(flags *pflag.FlagSet) {
	var b bytes.Buffer

	hasSubCommands := len(c.params.SubCommands) > 0
	flagUsages := flags.FlagUsages()

	b.WriteString("Usage: ")
	b.WriteString(c.params.Name)

	if flagUsages != "" {
		b.WriteString(" [OPTIONS]")
	}

	if hasSubCommands {
		b.WriteString(" [COMMAND] [ARG...]")
	}

	b.WriteString("\n")
	b.WriteString(c.params.Desc)
	b.WriteString("\n")

	if flagUsages != "" {
		b.WriteString("\nOptions:\n")
		b.WriteString(flagUsages)
	}

	if hasSubCommands {
		b.WriteString("\nCommands:\n")

		for _, s := range c.params.SubCommands {
			b.WriteString(fmt.Sprintf("  %-12s %s\n", s.Name(), s.Desc()))
		}
	}

	_, _ = b.WriteTo(c.writer)
}

func (c *Command) Exec(ctx context.Context, args []string) error {
	flags := pflag.NewFlagSet(c.Name(), pflag.ContinueOnError)

	flags.SetOutput(c.writer)
	flags.SetInterspersed(false)

	flags.Usage = func() {
		c.Usage(flags)
	}

	if c.params.FlagRegistry != nil {
		c.params.FlagRegistry.RegisterFlags(c, flags)
	}

	if err := flags.Parse(args); err != nil {
		return errors.Annotatef(err, "parse args for command: %s", c.params.Name)
	}

	args = flags.Args()

	if len(args) > 0 && args[0] == "--" {
		args = args[1:]
	}

	if len(c.subCommands) == 0 {
		if c.params.Handler == nil {
			return nil
		}

		return errors.Trace(c.params.Handler.Handle(ctx, args))
	}

	if len(args) == 0 {
		c.Usage(flags)

		return errors.Annotatef(pflag.ErrHelp, "command: %s", c.params.Name)
	}

	subCommand, ok := c.subCommands[args[0]]
	if !ok {
		return errors.Annotatef(ErrCommandNotFound, "command: %s", args[0])
	}

	return errors.Trace(subCommand.Exec(ctx, args[1:]))
}
