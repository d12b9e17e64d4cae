package main

import (
	"context"
	"fmt"
	"os"

	"github.com/diwise/playgrounds/internal/pkg/application/exercises"
	"github.com/diwise/playgrounds/pkg/client"
	"github.com/diwise/playgrounds/pkg/greeting"
	"github.com/diwise/playgrounds/pkg/optional"
	"github.com/diwise/playgrounds/pkg/predicates"
	"github.com/spf13/cobra"
)

type Options struct {
	configPath string
	serverURL  string
	token      string
}

func NewCommand() *cobra.Command {
	opts := &Options{}

	cmd := &cobra.Command{
		Use:           appName,
		Short:         "run the language playground exercises",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	flags := cmd.PersistentFlags()
	flags.StringVarP(&opts.configPath, "config", "c", "", "exercises configuration file")
	flags.StringVar(&opts.serverURL, "server", "", "playgrounds api to use instead of running locally")
	flags.StringVar(&opts.token, "token", "", "bearer token for the playgrounds api")

	cmd.AddCommand(NewRun(opts), NewGreet(opts), NewConcat(opts))

	return cmd
}

func (o *Options) loadConfig() (*exercises.Config, error) {
	if o.configPath == "" {
		return exercises.DefaultConfiguration()
	}

	f, err := os.Open(o.configPath)
	if err != nil {
		return nil, fmt.Errorf("cannot read file %q: %w", o.configPath, err)
	}
	defer f.Close()

	return exercises.LoadConfiguration(f)
}

func (o *Options) client() optional.Option[client.Client] {
	if o.serverURL == "" {
		return optional.None[client.Client]()
	}
	return optional.Some(client.NewClient(o.serverURL, client.WithToken(o.token)))
}

type Run struct {
	cmd      *cobra.Command
	mainopts *Options
}

func NewRun(opts *Options) *cobra.Command {
	cmd := &cobra.Command{
		Use:       "run [sections...]",
		Short:     "print the transcript of the exercises",
		ValidArgs: exercises.Sections,
	}

	c := &Run{cmd: cmd, mainopts: opts}
	cmd.RunE = func(cmd *cobra.Command, args []string) error { return c.Run(cmd.Context(), args) }

	return cmd
}

func (c *Run) Run(ctx context.Context, sections []string) error {
	cfg, err := c.mainopts.loadConfig()
	if err != nil {
		return err
	}

	runner, err := exercises.New(cfg)
	if err != nil {
		return err
	}

	return runner.Run(ctx, c.cmd.OutOrStdout(), sections...)
}

type Greet struct {
	cmd      *cobra.Command
	mainopts *Options
	variant  string
}

func NewGreet(opts *Options) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "greet [name]",
		Short: "introduce a person, or nobody if no name is given",
		Args:  cobra.MaximumNArgs(1),
	}

	c := &Greet{cmd: cmd, mainopts: opts}
	cmd.RunE = func(cmd *cobra.Command, args []string) error { return c.Run(cmd.Context(), args) }
	cmd.Flags().StringVar(&c.variant, "variant", "binding", "greeting implementation (binding or match)")

	return cmd
}

func (c *Greet) Run(ctx context.Context, args []string) error {
	variant := greeting.Variant(c.variant)

	greet, err := greeting.Greeter(variant)
	if err != nil {
		return err
	}

	name := optional.None[string]()
	if len(args) == 1 {
		name = optional.Some(args[0])
	}

	if remote, ok := c.mainopts.client().Get(); ok {
		g, err := remote.Greet(ctx, name, variant)
		if err != nil {
			return err
		}
		_, err = fmt.Fprintln(c.cmd.OutOrStdout(), g)
		return err
	}

	_, err = fmt.Fprintln(c.cmd.OutOrStdout(), greet(optional.Map(name, greeting.NewPerson)))
	return err
}

type Concat struct {
	cmd      *cobra.Command
	mainopts *Options
}

func NewConcat(opts *Options) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "concat <a> <b>",
		Short: "concatenate two strings if both are short",
		Args:  cobra.ExactArgs(2),
	}

	c := &Concat{cmd: cmd, mainopts: opts}
	cmd.RunE = func(cmd *cobra.Command, args []string) error { return c.Run(cmd.Context(), args[0], args[1]) }

	return cmd
}

func (c *Concat) Run(ctx context.Context, a, b string) error {
	var transform predicates.Transform = predicates.ConcatenateSmallStrings

	if remote, ok := c.mainopts.client().Get(); ok {
		var remoteErr error
		transform = func(a, b string) optional.Option[string] {
			result, err := remote.Concatenate(ctx, a, b)
			remoteErr = err
			return result
		}

		err := predicates.ManipulateStrings(c.cmd.OutOrStdout(), a, b, transform)
		if remoteErr != nil {
			return remoteErr
		}
		return err
	}

	return predicates.ManipulateStrings(c.cmd.OutOrStdout(), a, b, transform)
}
