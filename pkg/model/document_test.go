package model_test

import (
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/goliatone/go-bstoolkit/pkg/model"
)

func TestParseDocument_YAML(t *testing.T) {
	t.Parallel()

	data := []byte(`
prefix: signup
fields:
  - name: email
    required: true
    helpText: We never share it.
    widget:
      kind: email
      attrs:
        placeholder: you@example.com
  - name: plan
    widget:
      kind: radio-select
      choices:
        - value: free
          label: Free
        - value: pro
          label: Pro
values:
  plan: pro
fieldErrors:
  email:
    - Enter a valid email.
formErrors:
  - Signup is closed today.
`)

	doc, err := model.ParseDocument(data, "signup.yaml")
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	form := doc.Form()

	if got := form.Fields[0].Name(); got != "signup-email" {
		t.Fatalf("prefixed name: %q", got)
	}
	if got := form.Fields[0].Field.Widget.Attrs["placeholder"]; got != "you@example.com" {
		t.Fatalf("attrs not decoded: %q", got)
	}
	if diff := cmp.Diff([]string{"Enter a valid email."}, form.Fields[0].Errors); diff != "" {
		t.Fatalf("field errors mismatch (-want +got):\n%s", diff)
	}
	if got := form.Fields[1].Choices()[1]; !got.Selected || got.ID != "id_signup-plan_1" {
		t.Fatalf("bound choice: %+v", got)
	}
	if diff := cmp.Diff([]string{"Signup is closed today."}, form.NonFieldErrors()); diff != "" {
		t.Fatalf("form errors mismatch (-want +got):\n%s", diff)
	}
}

func TestParseDocument_JSONAndErrors(t *testing.T) {
	t.Parallel()

	doc, err := model.ParseDocument([]byte(`{"fields":[{"name":"q","widget":{"kind":"text"}}],"values":{"q":"lamp"}}`), "search.json")
	if err != nil {
		t.Fatalf("parse json: %v", err)
	}
	if got := doc.Form().Fields[0].StringValue(); got != "lamp" {
		t.Fatalf("bound value: %q", got)
	}

	tests := []struct {
		name    string
		input   string
		message string
	}{
		{name: "empty", input: "  ", message: "is empty"},
		{name: "no fields", input: `{"prefix":"x"}`, message: "declares no fields"},
		{name: "unnamed field", input: `{"fields":[{"label":"Nameless"}]}`, message: "field 0 has no name"},
		{name: "malformed", input: "fields: [", message: "invalid JSON or YAML"},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			_, err := model.ParseDocument([]byte(tt.input), "broken")
			if err == nil || !strings.Contains(err.Error(), tt.message) {
				t.Fatalf("expected error containing %q, got %v", tt.message, err)
			}
		})
	}
}
