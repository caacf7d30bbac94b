package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/goliatone/go-bstoolkit/pkg/model"
	"github.com/goliatone/go-bstoolkit/pkg/render"
)

type formFlags struct {
	layout      string
	valuesPath  string
	errorsPath  string
	csrfField   string
	csrfToken   string
	interactive bool
}

func newFormCommand(a *app) *cobra.Command {
	f := &formFlags{}
	cmd := &cobra.Command{
		Use:   "form [form-file]",
		Short: "Render a form document (JSON or YAML) with the Bootstrap templates",
		Example: `  bstoolkit form signup.yaml --layout horizontal
  bstoolkit form signup.yaml --values submitted.json --errors errors.json --csrf-token abc123`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.runForm(cmd, args[0], f)
		},
	}
	flags := cmd.Flags()
	flags.StringVar(&f.layout, "layout", "", "layout argument, e.g. horizontal or vertical,float")
	flags.StringVar(&f.valuesPath, "values", "", "file of submitted values keyed by field name")
	flags.StringVar(&f.errorsPath, "errors", "", "file of server errors keyed by field name or path")
	flags.StringVar(&f.csrfField, "csrf-field", "csrf_token", "name of the CSRF hidden input")
	flags.StringVar(&f.csrfToken, "csrf-token", "", "CSRF token to emit as a hidden input")
	flags.BoolVarP(&f.interactive, "interactive", "i", false, "prompt for field values")
	return cmd
}

func (a *app) runForm(cmd *cobra.Command, path string, f *formFlags) error {
	data, err := os.ReadFile(filepath.Clean(path))
	if err != nil {
		return fmt.Errorf("read form: %w", err)
	}
	doc, err := model.ParseDocument(data, path)
	if err != nil {
		return err
	}
	form := doc.Form()

	var opts render.RenderOptions
	if f.valuesPath != "" {
		if err := decodeFile(f.valuesPath, &opts.Values); err != nil {
			return err
		}
	}
	if f.errorsPath != "" {
		if err := decodeFile(f.errorsPath, &opts.Errors); err != nil {
			return err
		}
	}
	if f.csrfToken != "" {
		opts.Hidden = append(opts.Hidden, render.CSRFToken(f.csrfField, f.csrfToken))
	}

	if f.interactive {
		answers, err := a.collector.CollectForm(cmd.Context(), opts.Apply(form))
		if err != nil {
			return err
		}
		opts.Values = answers
	}

	form = opts.Apply(form)
	a.logger.Debug().
		Str("form", path).
		Int("fields", len(form.Fields)).
		Bool("errors", form.HasErrors()).
		Msg("render form")

	r, err := a.renderer()
	if err != nil {
		return err
	}
	extra := map[string]any{}
	if f.layout != "" {
		extra["layout"] = f.layout
	}
	html, err := r.RenderForm(form, extra)
	if err != nil {
		return err
	}
	_, err = fmt.Fprint(cmd.OutOrStdout(), html)
	return err
}

// decodeFile reads a JSON or YAML file into out. YAML is a superset of the
// JSON documents used here.
func decodeFile(path string, out any) error {
	data, err := os.ReadFile(filepath.Clean(path))
	if err != nil {
		return fmt.Errorf("read %s: %w", path, err)
	}
	if err := yaml.Unmarshal(data, out); err != nil {
		return fmt.Errorf("parse %s: %w", path, err)
	}
	return nil
}
