package widgets

import (
	"sort"
	"strings"
	"sync"

	"github.com/goliatone/go-bstoolkit/pkg/model"
)

// Built-in input type hints consumed by the field template.
const (
	InputText          = "text"
	InputCheckbox      = "checkbox"
	InputMultiCheckbox = "multicheckbox"
	InputRadioSet      = "radioset"
	InputDefault       = "default"
)

// Matcher decides whether an input type hint applies to the supplied field.
type Matcher func(field model.BoundField) bool

type rule struct {
	name     string
	priority int
	match    Matcher
	order    int
}

// Registry selects input type hints for fields based on explicit widget
// overrides or registered matchers. Higher priority wins; ties fall back to
// registration order. Fields no matcher claims resolve to InputDefault.
type Registry struct {
	mu    sync.RWMutex
	rules []rule
}

// NewRegistry constructs a registry with the built-in matchers registered.
func NewRegistry() *Registry {
	reg := &Registry{}
	reg.registerBuiltins()
	return reg
}

// Register adds a matcher producing the named hint. Higher priority values
// take precedence over the built-ins (which use 10 to 40).
func (r *Registry) Register(name string, priority int, matcher Matcher) {
	if r == nil || matcher == nil {
		return
	}
	trimmed := strings.TrimSpace(name)
	if trimmed == "" {
		return
	}
	r.mu.Lock()
	defer r.mu.Unlock()

	r.rules = append(r.rules, rule{
		name:     trimmed,
		priority: priority,
		match:    matcher,
		order:    len(r.rules),
	})
}

// InputType returns the hint for a field. An explicit Widget.InputType is
// honoured before matcher evaluation.
func (r *Registry) InputType(field model.BoundField) string {
	if explicit := strings.TrimSpace(field.Field.Widget.InputType); explicit != "" {
		return explicit
	}
	if r == nil {
		return Resolve(field.Field.Widget.Kind)
	}
	r.mu.RLock()
	rules := append([]rule(nil), r.rules...)
	r.mu.RUnlock()

	sort.SliceStable(rules, func(i, j int) bool {
		if rules[i].priority == rules[j].priority {
			return rules[i].order < rules[j].order
		}
		return rules[i].priority > rules[j].priority
	})
	for _, entry := range rules {
		if entry.match(field) {
			return entry.name
		}
	}
	return InputDefault
}

// Resolve is the closed mapping from widget kind to input type hint.
func Resolve(kind model.WidgetKind) string {
	switch {
	case kind.IsTextInput():
		return InputText
	case kind == model.WidgetCheckboxInput:
		return InputCheckbox
	case kind == model.WidgetCheckboxSelectMultiple:
		return InputMultiCheckbox
	case kind == model.WidgetRadioSelect:
		return InputRadioSet
	default:
		return InputDefault
	}
}

func (r *Registry) registerBuiltins() {
	r.Register(InputText, 40, kindMatcher(InputText))
	r.Register(InputCheckbox, 30, kindMatcher(InputCheckbox))
	r.Register(InputMultiCheckbox, 20, kindMatcher(InputMultiCheckbox))
	r.Register(InputRadioSet, 10, kindMatcher(InputRadioSet))
}

func kindMatcher(hint string) Matcher {
	return func(field model.BoundField) bool {
		return Resolve(field.Field.Widget.Kind) == hint
	}
}
