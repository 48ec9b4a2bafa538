package main

import (
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/goliatone/go-htwidget/pkg/config"
	"github.com/goliatone/go-htwidget/pkg/orchestrator"
)

type renderFlags struct {
	config   string
	context  string
	errors   string
	output   string
	inner    bool
	readonly bool
}

func (f *renderFlags) bind(cmd *cobra.Command) {
	cmd.Flags().StringVarP(&f.config, "config", "c", "", "Widget document (JSON or YAML)")
	cmd.Flags().StringVar(&f.context, "context", "", "Values file (JSON or YAML mapping)")
	cmd.Flags().StringVar(&f.errors, "errors", "", "Server-side errors file (mapping of path to message list)")
	cmd.Flags().StringVarP(&f.output, "output", "o", "", "Output file (stdout if empty)")
	cmd.Flags().BoolVar(&f.inner, "inner", false, "Omit the per-widget wrapper")
	cmd.Flags().BoolVar(&f.readonly, "readonly", false, "Render read-only presentations")
	_ = cmd.MarkFlagRequired("config")
}

func renderCmd(global *globalFlags) *cobra.Command {
	flags := &renderFlags{}

	cmd := &cobra.Command{
		Use:   "render",
		Short: "Render a widget document to HTML",
		Long: `Render every widget of a document, in document order.

Examples:
  htwidget render --config signup.yaml
  htwidget render -c signup.yaml --context values.yaml --readonly
  htwidget render -c signup.yaml --errors errors.json --inner`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			logger := newLogger(cmd.ErrOrStderr(), global.verbose)
			req, err := flags.request()
			if err != nil {
				return err
			}
			out, err := orchestrator.New(orchestrator.WithFS(configFS(flags.config)), orchestrator.WithLogger(logger)).
				Generate(cmd.Context(), req)
			if err != nil {
				return err
			}
			return writeOutput(cmd.OutOrStdout(), flags.output, out)
		},
	}
	flags.bind(cmd)
	return cmd
}

func (f *renderFlags) request() (orchestrator.Request, error) {
	req := orchestrator.Request{
		Path:     filepath.Base(f.config),
		Inner:    f.inner,
		Readonly: f.readonly,
	}
	if f.context != "" {
		values, err := readContext(f.context)
		if err != nil {
			return req, err
		}
		req.Context = values
	}
	if f.errors != "" {
		payload, err := readErrors(f.errors)
		if err != nil {
			return req, err
		}
		req.Errors = payload
	}
	return req, nil
}

func configFS(path string) fs.FS {
	return os.DirFS(filepath.Dir(path))
}

func readContext(path string) (map[string]any, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read context: %w", err)
	}
	return config.ParseContext(data, path)
}

func readErrors(path string) (map[string][]string, error) {
	raw, err := readContext(path)
	if err != nil {
		return nil, err
	}
	out := make(map[string][]string, len(raw))
	for key, value := range raw {
		switch v := value.(type) {
		case string:
			out[key] = []string{v}
		case []any:
			for _, item := range v {
				msg, ok := item.(string)
				if !ok {
					return nil, fmt.Errorf("errors %s: %q holds a non-string message", path, key)
				}
				out[key] = append(out[key], msg)
			}
		default:
			return nil, fmt.Errorf("errors %s: %q must be a message or list of messages", path, key)
		}
	}
	return out, nil
}

func writeOutput(stdout io.Writer, path string, data []byte) error {
	if path == "" {
		_, err := fmt.Fprintln(stdout, string(data))
		return err
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("write output: %w", err)
	}
	return nil
}
