package bstoolkit_test

import (
	"errors"
	"io/fs"
	"testing"

	"github.com/google/go-cmp/cmp"
	theme "github.com/goliatone/go-theme"

	"github.com/goliatone/go-bstoolkit"
	"github.com/goliatone/go-bstoolkit/pkg/config"
	"github.com/goliatone/go-bstoolkit/pkg/pagination"
)

func TestPaginate(t *testing.T) {
	t.Parallel()

	window, err := bstoolkit.Paginate(1, 20, 11)
	if err != nil {
		t.Fatalf("paginate: %v", err)
	}
	if diff := cmp.Diff([]int{1, 2, 3, 4, 5, 6, 7, 8, 9, 10, 11, 12}, window.PagesShown); diff != "" {
		t.Fatalf("pages shown mismatch (-want +got):\n%s", diff)
	}
	if window.HasBack() || !window.HasForward() || *window.PagesForward != 16 {
		t.Fatalf("unexpected jump targets: %+v", window)
	}

	if _, err := bstoolkit.Paginate(1, 20, 0); !errors.Is(err, pagination.ErrInvalidArgument) {
		t.Fatalf("expected ErrInvalidArgument, got %v", err)
	}
}

func TestEmbeddedTemplates(t *testing.T) {
	t.Parallel()

	for _, name := range []string{"form.tmpl", "field.tmpl", "widget.tmpl", "help.tmpl", "pagination.tmpl", "messages.tmpl"} {
		if _, err := fs.Stat(bstoolkit.EmbeddedTemplates(), name); err != nil {
			t.Fatalf("expected %s in embedded templates: %v", name, err)
		}
	}
}

func TestNewFromTheme(t *testing.T) {
	t.Parallel()

	selector := &stubSelector{selection: &theme.Selection{
		Theme:   "docs",
		Variant: "default",
		Manifest: &theme.Manifest{
			Name: "docs",
			Assets: theme.Assets{
				Prefix: "https://cdn.example.com/bootstrap/2.3.2",
				Files: map[string]string{
					config.ThemeStylesheetKey: "css/bootstrap.min.css",
					config.ThemeJavaScriptKey: "js/bootstrap.min.js",
				},
			},
		},
	}}

	r, err := bstoolkit.NewFromTheme(selector, "docs", "default")
	if err != nil {
		t.Fatalf("new from theme: %v", err)
	}
	if got := r.StylesheetTag(); got != `<link rel="stylesheet" href="https://cdn.example.com/bootstrap/2.3.2/css/bootstrap.min.css">` {
		t.Fatalf("stylesheet tag: %q", got)
	}
	if got := r.JavaScriptURL("modal"); got != "https://cdn.example.com/bootstrap/2.3.2/js/bootstrap.min.js" {
		t.Fatalf("themed script should win: %q", got)
	}

	failing := &stubSelector{err: errors.New("unknown theme")}
	if _, err := bstoolkit.NewFromTheme(failing, "missing", ""); err == nil {
		t.Fatalf("expected selector error")
	}
}

type stubSelector struct {
	selection *theme.Selection
	err       error
}

func (s *stubSelector) Select(_, _ string, _ ...theme.QueryOption) (*theme.Selection, error) {
	return s.selection, s.err
}
