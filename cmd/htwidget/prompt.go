package main

import (
	"errors"
	"fmt"
	"os"
	"os/signal"
	"text/tabwriter"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/goliatone/go-htwidget/pkg/orchestrator"
	"github.com/goliatone/go-htwidget/pkg/prompt"
	"github.com/goliatone/go-htwidget/pkg/widgets"
)

// newPromptDriver is swapped in tests.
var newPromptDriver = func() prompt.PromptDriver {
	return prompt.NewSurveyDriver()
}

func promptCmd(global *globalFlags) *cobra.Command {
	var (
		flags      = &renderFlags{}
		valuesOnly bool
	)

	cmd := &cobra.Command{
		Use:   "prompt",
		Short: "Collect widget values interactively, then render",
		Long: `Ask one terminal prompt per writable widget, then render the document
with the collected values. Values from --context are offered as defaults.

Examples:
  htwidget prompt --config signup.yaml
  htwidget prompt -c signup.yaml --values-only > values.yaml`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt)
			defer stop()

			logger := newLogger(cmd.ErrOrStderr(), global.verbose)
			req, err := flags.request()
			if err != nil {
				return err
			}

			o := orchestrator.New(orchestrator.WithFS(configFS(flags.config)), orchestrator.WithLogger(logger))
			f, err := o.Form(ctx, req)
			if err != nil {
				return err
			}

			values, err := prompt.Collect(ctx, newPromptDriver(), f, prompt.WithLogger(logger))
			if errors.Is(err, prompt.ErrAborted) {
				return errors.New("aborted")
			}
			if err != nil {
				return err
			}

			if valuesOnly {
				data, err := yaml.Marshal(values)
				if err != nil {
					return fmt.Errorf("encode values: %w", err)
				}
				return writeOutput(cmd.OutOrStdout(), flags.output, data)
			}

			req.Context = values
			out, err := o.Generate(ctx, req)
			if err != nil {
				return err
			}
			return writeOutput(cmd.OutOrStdout(), flags.output, out)
		},
	}
	flags.bind(cmd)
	cmd.Flags().BoolVar(&valuesOnly, "values-only", false, "Print the collected values as YAML instead of rendering")
	return cmd
}

func kindsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "kinds",
		Short: "List registered widget kinds",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			registry := widgets.NewDefaultRegistry()
			tw := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
			for _, name := range registry.Names() {
				descriptor, _ := registry.Descriptor(name)
				fmt.Fprintf(tw, "%s\t%s\n", name, descriptor.Description)
			}
			return tw.Flush()
		},
	}
}
