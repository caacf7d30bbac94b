package bootstrap_test

import (
	"errors"
	"strings"
	"testing"

	"github.com/flosch/pongo2/v6"

	"github.com/goliatone/go-bstoolkit/pkg/model"
	"github.com/goliatone/go-bstoolkit/pkg/render"
	"github.com/goliatone/go-bstoolkit/pkg/renderers/bootstrap"
)

// Filters bind to the installed renderer, so these tests install a default
// renderer and do not run in parallel.

func TestInstall_BindsRenderer(t *testing.T) {
	r := newRenderer(t).Install()
	if bootstrap.Installed() != r {
		t.Fatalf("expected installed renderer to be the most recent one")
	}
}

func TestFilters_Fields(t *testing.T) {
	newRenderer(t).Install()

	disabled := model.BoundField{Field: model.Field{
		Name:   "code",
		Widget: model.Widget{Kind: model.WidgetTextInput, Attrs: model.Attrs{"disabled": "disabled"}},
	}}
	checkbox := model.BoundField{Field: model.Field{Name: "agree", Widget: model.Widget{Kind: model.WidgetCheckboxInput}}}
	search := model.BoundField{Field: model.Field{Name: "q", Widget: model.Widget{Kind: model.WidgetTextInput}}}

	tests := []struct {
		name     string
		template string
		ctx      pongo2.Context
		want     string
	}{
		{
			name:     "is_disabled",
			template: `{% if field|is_disabled %}off{% else %}on{% endif %}`,
			ctx:      pongo2.Context{"field": disabled},
			want:     "off",
		},
		{
			name:     "is_enabled",
			template: `{% if field|is_enabled %}on{% else %}off{% endif %}`,
			ctx:      pongo2.Context{"field": checkbox},
			want:     "on",
		},
		{
			name:     "input type",
			template: `{{ field|bootstrap_input_type }}`,
			ctx:      pongo2.Context{"field": checkbox},
			want:     "checkbox",
		},
		{
			name:     "as_bootstrap inline",
			template: `{{ field|as_bootstrap:"inline" }}`,
			ctx:      pongo2.Context{"field": search},
			want:     `<input type="text" name="q" id="id_q" value="">`,
		},
		{
			name:     "split",
			template: `{% for part in csv|split:"," %}[{{ part }}]{% endfor %}`,
			ctx:      pongo2.Context{"csv": "a,b,,c"},
			want:     "[a][b][][c]",
		},
		{
			name:     "html_attrs ordered",
			template: `<input {{ attrs|html_attrs }}>`,
			ctx: pongo2.Context{"attrs": []render.Attr{
				{Name: "type", Value: "text"},
				{Name: "data-x", Value: "a&b"},
			}},
			want: `<input type="text" data-x="a&amp;b" >`,
		},
		{
			name:     "sanitize",
			template: `{{ text|bootstrap_sanitize }}`,
			ctx:      pongo2.Context{"text": `  <b>bold</b><script>x()</script> `},
			want:     `<b>bold</b>`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := strings.TrimSpace(executeString(t, tt.template, tt.ctx))
			if got != tt.want {
				t.Fatalf("got %q, want %q", got, tt.want)
			}
		})
	}
}

func TestFilters_AsBootstrapInvalidInput(t *testing.T) {
	newRenderer(t).Install()

	got := executeString(t, `[{{ value|as_bootstrap }}]`, pongo2.Context{"value": "plain"})
	if got != "[]" {
		t.Fatalf("expected empty string for invalid input, got %q", got)
	}
}

func TestFilters_InputTypeRejectsNonField(t *testing.T) {
	newRenderer(t).Install()

	tpl, err := pongo2.FromString(`{{ value|bootstrap_input_type }}`)
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	_, err = tpl.Execute(pongo2.Context{"value": 5})
	if err == nil {
		t.Fatalf("expected error for non-field input")
	}
	if !errors.Is(err, bootstrap.ErrUnsupportedValue) && !strings.Contains(err.Error(), "expected a field") {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestFilters_Pagination(t *testing.T) {
	newRenderer(t).Install()

	got := executeString(t, `{{ page|pagination:"5" }}`, pongo2.Context{
		"page": model.Page{Number: 3, NumPages: 9},
	})
	assertContains(t, got,
		`<li><a href="?page=1">&hellip;</a></li>`,
		`<li class="active"><a href="#">3</a></li>`,
		`<li><a href="?page=7">&hellip;</a></li>`,
	)

	got = executeString(t, `{{ page|pagination }}`, pongo2.Context{
		"page": model.Page{Number: 3, NumPages: 9},
	})
	assertContains(t, got, `<li><a href="?page=9">9</a></li>`)
	assertNotContains(t, got, "&hellip;")
}

func executeString(t *testing.T, source string, ctx pongo2.Context) string {
	t.Helper()

	tpl, err := pongo2.FromString(source)
	if err != nil {
		t.Fatalf("parse %q: %v", source, err)
	}
	out, err := tpl.Execute(ctx)
	if err != nil {
		t.Fatalf("execute %q: %v", source, err)
	}
	return out
}
