package main

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/goliatone/go-bstoolkit/pkg/model"
	"github.com/goliatone/go-bstoolkit/pkg/pagination"
	"github.com/goliatone/go-bstoolkit/pkg/prompt"
)

type paginateFlags struct {
	page        int
	pages       int
	show        int
	url         string
	extra       string
	format      string
	interactive bool
}

func newPaginateCommand(a *app) *cobra.Command {
	f := &paginateFlags{}
	cmd := &cobra.Command{
		Use:   "paginate",
		Short: "Compute a pagination window and print its links",
		Example: `  bstoolkit paginate --page 3 --pages 9 --show 5 --url "/items?sort=name"
  bstoolkit paginate --page 1 --pages 20 --format json`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return a.runPaginate(cmd, f)
		},
	}
	flags := cmd.Flags()
	flags.IntVar(&f.page, "page", 1, "current page (1-based)")
	flags.IntVar(&f.pages, "pages", 1, "total number of pages")
	flags.IntVar(&f.show, "show", 0, "pages to show (defaults to the configured value)")
	flags.StringVar(&f.url, "url", "", "URL the page links are built from")
	flags.StringVar(&f.extra, "extra", "", "extra query fragment appended to every link")
	flags.StringVar(&f.format, "format", "html", "output format: html or json")
	flags.BoolVarP(&f.interactive, "interactive", "i", false, "prompt for the page position")
	return cmd
}

func (a *app) runPaginate(cmd *cobra.Command, f *paginateFlags) error {
	show := f.show
	if show == 0 {
		show = a.cfg.PagesToShow
	}
	page := model.Page{Number: f.page, NumPages: f.pages}
	url := f.url

	if f.interactive {
		answers, err := a.collector.CollectPagination(cmd.Context(), prompt.PaginationRequest{
			Page:        page,
			PagesToShow: show,
			URL:         url,
		})
		if err != nil {
			return err
		}
		page, show, url = answers.Page, answers.PagesToShow, answers.URL
	}

	opts := []pagination.Option{
		pagination.WithPagesToShow(show),
		pagination.WithURL(url),
		pagination.WithExtra(f.extra),
	}
	a.logger.Debug().
		Int("page", page.Number).
		Int("pages", page.NumPages).
		Int("show", show).
		Msg("paginate")

	switch f.format {
	case "json":
		pctx, err := pagination.NewContext(page, opts...)
		if err != nil {
			return err
		}
		payload, err := json.MarshalIndent(pctx, "", "  ")
		if err != nil {
			return fmt.Errorf("encode window: %w", err)
		}
		_, err = fmt.Fprintln(cmd.OutOrStdout(), string(payload))
		return err
	case "html":
		r, err := a.renderer()
		if err != nil {
			return err
		}
		html, err := r.RenderPagination(page, opts...)
		if err != nil {
			return err
		}
		_, err = fmt.Fprint(cmd.OutOrStdout(), html)
		return err
	default:
		return fmt.Errorf("unknown format %q (want html or json)", f.format)
	}
}
