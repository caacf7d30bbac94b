package widgets

import (
	"testing"

	"github.com/goliatone/go-bstoolkit/pkg/model"
)

func TestInputType_ExplicitOverrideWins(t *testing.T) {
	reg := NewRegistry()
	field := model.BoundField{
		Field: model.Field{
			Name: "birthday",
			Widget: model.Widget{
				Kind:      model.WidgetDateInput,
				InputType: "datepicker",
			},
		},
	}

	if got := reg.InputType(field); got != "datepicker" {
		t.Fatalf("expected explicit input type to win, got %q", got)
	}
}

func TestInputType_Builtins(t *testing.T) {
	reg := NewRegistry()

	cases := []struct {
		name   string
		kind   model.WidgetKind
		expect string
	}{
		{name: "text", kind: model.WidgetTextInput, expect: InputText},
		{name: "email is text", kind: model.WidgetEmailInput, expect: InputText},
		{name: "date is text", kind: model.WidgetDateInput, expect: InputText},
		{name: "checkbox", kind: model.WidgetCheckboxInput, expect: InputCheckbox},
		{name: "checkbox select multiple", kind: model.WidgetCheckboxSelectMultiple, expect: InputMultiCheckbox},
		{name: "radio select", kind: model.WidgetRadioSelect, expect: InputRadioSet},
		{name: "select", kind: model.WidgetSelect, expect: InputDefault},
		{name: "textarea", kind: model.WidgetTextarea, expect: InputDefault},
		{name: "password", kind: model.WidgetPasswordInput, expect: InputDefault},
		{name: "unknown", kind: model.WidgetKind("color-wheel"), expect: InputDefault},
	}

	for _, tc := range cases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			field := model.BoundField{Field: model.Field{Name: "f", Widget: model.Widget{Kind: tc.kind}}}
			if got := reg.InputType(field); got != tc.expect {
				t.Fatalf("input type %s: want %q, got %q", tc.name, tc.expect, got)
			}
			if got := Resolve(tc.kind); got != tc.expect {
				t.Fatalf("resolve %s: want %q, got %q", tc.name, tc.expect, got)
			}
		})
	}
}

func TestInputType_PriorityOverride(t *testing.T) {
	reg := NewRegistry()
	reg.Register("switch", 999, func(field model.BoundField) bool {
		return field.Field.Widget.Kind == model.WidgetCheckboxInput
	})

	field := model.BoundField{Field: model.Field{Widget: model.Widget{Kind: model.WidgetCheckboxInput}}}
	if got := reg.InputType(field); got != "switch" {
		t.Fatalf("priority matcher should win, got %q", got)
	}
}

func TestInputType_NilRegistryUsesClosedMapping(t *testing.T) {
	var reg *Registry
	field := model.BoundField{Field: model.Field{Widget: model.Widget{Kind: model.WidgetRadioSelect}}}
	if got := reg.InputType(field); got != InputRadioSet {
		t.Fatalf("nil registry: want %q, got %q", InputRadioSet, got)
	}
}
