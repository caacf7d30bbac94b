package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newAssetsCommand(a *app) *cobra.Command {
	var plugins []string
	cmd := &cobra.Command{
		Use:   "assets",
		Short: "Print the Bootstrap stylesheet and script tags for the configuration",
		Example: `  bstoolkit assets
  bstoolkit assets --js modal --js tab`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			r, err := a.renderer()
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			if _, err := fmt.Fprintln(out, r.StylesheetTag()); err != nil {
				return err
			}
			if len(plugins) == 0 {
				plugins = []string{""}
			}
			for _, name := range plugins {
				if tag := r.JavaScriptTag(name); tag != "" {
					if _, err := fmt.Fprintln(out, tag); err != nil {
						return err
					}
				}
			}
			return nil
		},
	}
	cmd.Flags().StringSliceVar(&plugins, "js", nil, "Bootstrap plugin scripts to link (default: the minified bundle)")
	return cmd
}
