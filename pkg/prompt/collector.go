package prompt

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/goliatone/go-bstoolkit/pkg/model"
	"github.com/goliatone/go-bstoolkit/pkg/pagination"
)

// Collector walks a form or a pagination request and asks the user for each
// value through a Driver.
type Collector struct {
	driver Driver
}

// Option configures a Collector.
type Option func(*Collector)

// WithDriver overrides the survey driver.
func WithDriver(driver Driver) Option {
	return func(c *Collector) {
		if driver != nil {
			c.driver = driver
		}
	}
}

// New constructs a Collector prompting on the process terminal by default.
func New(options ...Option) *Collector {
	c := &Collector{}
	for _, opt := range options {
		if opt == nil {
			continue
		}
		opt(c)
	}
	if c.driver == nil {
		c.driver = NewSurveyDriver(nil)
	}
	return c
}

// CollectForm prompts for every visible, enabled field of form and returns
// the answers keyed by declared field name. Current values are offered as
// defaults. Hidden and disabled fields keep their bound values.
func (c *Collector) CollectForm(ctx context.Context, form model.Form) (map[string]any, error) {
	if ctx == nil {
		return nil, errors.New("prompt: context is required")
	}
	values := make(map[string]any, len(form.Fields))
	for _, field := range form.Fields {
		if field.IsHidden() || field.IsDisabled() {
			if data := field.Data(); data != nil {
				values[field.Field.Name] = data
			}
			continue
		}
		value, err := c.promptField(ctx, field)
		if err != nil {
			return nil, fmt.Errorf("prompt: field %s: %w", field.Field.Name, err)
		}
		values[field.Field.Name] = value
	}
	return values, nil
}

func (c *Collector) promptField(ctx context.Context, field model.BoundField) (any, error) {
	label := field.Label()
	help := field.HelpText()

	switch field.Field.Widget.Kind {
	case model.WidgetCheckboxInput:
		return c.driver.Confirm(ctx, ConfirmConfig{Message: label, Default: field.Checked(), Help: help})
	case model.WidgetSelect, model.WidgetRadioSelect:
		return c.promptChoice(ctx, field, label, help)
	case model.WidgetSelectMultiple, model.WidgetCheckboxSelectMultiple:
		return c.promptChoices(ctx, field, label, help)
	case model.WidgetTextarea:
		return c.promptText(ctx, field, func() (string, error) {
			return c.driver.TextArea(ctx, TextAreaConfig{Message: label, Default: field.StringValue(), Help: help})
		})
	case model.WidgetPasswordInput:
		return c.promptText(ctx, field, func() (string, error) {
			return c.driver.Password(ctx, InputConfig{Message: label, Help: help})
		})
	case model.WidgetNumberInput:
		return c.promptNumber(ctx, field, label, help)
	default:
		return c.promptText(ctx, field, func() (string, error) {
			return c.driver.Input(ctx, InputConfig{Message: label, Default: field.StringValue(), Help: help})
		})
	}
}

func (c *Collector) promptText(ctx context.Context, field model.BoundField, ask func() (string, error)) (string, error) {
	for {
		response, err := ask()
		if err != nil {
			return "", err
		}
		if field.Required() && strings.TrimSpace(response) == "" {
			_ = c.driver.Info(ctx, fmt.Sprintf("Invalid %s: required", field.Field.Name))
			continue
		}
		return response, nil
	}
}

func (c *Collector) promptNumber(ctx context.Context, field model.BoundField, label, help string) (string, error) {
	for {
		input, err := c.driver.Input(ctx, InputConfig{Message: label, Default: field.StringValue(), Help: help})
		if err != nil {
			return "", err
		}
		input = strings.TrimSpace(input)
		if input == "" {
			if field.Required() {
				_ = c.driver.Info(ctx, fmt.Sprintf("Invalid %s: required", field.Field.Name))
				continue
			}
			return "", nil
		}
		if _, err := strconv.ParseFloat(input, 64); err != nil {
			_ = c.driver.Info(ctx, fmt.Sprintf("Invalid %s: %v", field.Field.Name, err))
			continue
		}
		return input, nil
	}
}

func (c *Collector) promptChoice(ctx context.Context, field model.BoundField, label, help string) (string, error) {
	choices := field.Choices()
	options := choiceLabels(choices)
	defaultIdx := -1
	for idx, choice := range choices {
		if choice.Selected {
			defaultIdx = idx
			break
		}
	}
	for {
		idx, err := c.driver.Select(ctx, SelectConfig{
			Message:      label,
			Options:      options,
			DefaultIndex: defaultIdx,
			Help:         help,
		})
		if err != nil {
			return "", err
		}
		if idx < 0 || idx >= len(choices) {
			_ = c.driver.Info(ctx, fmt.Sprintf("Invalid %s selection", field.Field.Name))
			continue
		}
		return choices[idx].Value, nil
	}
}

func (c *Collector) promptChoices(ctx context.Context, field model.BoundField, label, help string) ([]string, error) {
	choices := field.Choices()
	var defaults []int
	for idx, choice := range choices {
		if choice.Selected {
			defaults = append(defaults, idx)
		}
	}
	for {
		indices, err := c.driver.MultiSelect(ctx, SelectConfig{
			Message:  label,
			Options:  choiceLabels(choices),
			Defaults: defaults,
			Help:     help,
		})
		if err != nil {
			return nil, err
		}
		if field.Required() && len(indices) == 0 {
			_ = c.driver.Info(ctx, fmt.Sprintf("Invalid %s: select at least one option", field.Field.Name))
			continue
		}
		out := make([]string, 0, len(indices))
		for _, idx := range indices {
			if idx >= 0 && idx < len(choices) {
				out = append(out, choices[idx].Value)
			}
		}
		return out, nil
	}
}

// PaginationRequest holds the answers of CollectPagination.
type PaginationRequest struct {
	Page        model.Page
	PagesToShow int
	URL         string
}

// CollectPagination asks for a page position and window size, re-prompting
// until the answers are positive integers with the current page in range.
func (c *Collector) CollectPagination(ctx context.Context, defaults PaginationRequest) (PaginationRequest, error) {
	if ctx == nil {
		return PaginationRequest{}, errors.New("prompt: context is required")
	}
	out := defaults
	if out.PagesToShow == 0 {
		out.PagesToShow = pagination.DefaultPagesToShow
	}

	var err error
	if out.Page.NumPages, err = c.promptInt(ctx, "Number of pages", out.Page.NumPages, 1); err != nil {
		return PaginationRequest{}, err
	}
	for {
		if out.Page.Number, err = c.promptInt(ctx, "Current page", out.Page.Number, 1); err != nil {
			return PaginationRequest{}, err
		}
		if out.Page.Number <= out.Page.NumPages {
			break
		}
		_ = c.driver.Info(ctx, fmt.Sprintf("Invalid current page: must be at most %d", out.Page.NumPages))
	}
	if out.PagesToShow, err = c.promptInt(ctx, "Pages to show", out.PagesToShow, 1); err != nil {
		return PaginationRequest{}, err
	}
	url, err := c.driver.Input(ctx, InputConfig{Message: "Link URL", Default: out.URL, Help: "Leave empty for relative ?page=N links"})
	if err != nil {
		return PaginationRequest{}, err
	}
	out.URL = strings.TrimSpace(url)
	return out, nil
}

func (c *Collector) promptInt(ctx context.Context, label string, def, floor int) (int, error) {
	defaultStr := ""
	if def >= floor {
		defaultStr = strconv.Itoa(def)
	}
	for {
		input, err := c.driver.Input(ctx, InputConfig{Message: label, Default: defaultStr})
		if err != nil {
			return 0, err
		}
		n, err := strconv.Atoi(strings.TrimSpace(input))
		if err != nil {
			_ = c.driver.Info(ctx, fmt.Sprintf("Invalid %s: %v", strings.ToLower(label), err))
			continue
		}
		if n < floor {
			_ = c.driver.Info(ctx, fmt.Sprintf("Invalid %s: must be at least %d", strings.ToLower(label), floor))
			continue
		}
		return n, nil
	}
}

func choiceLabels(choices []model.BoundChoice) []string {
	out := make([]string, 0, len(choices))
	for _, choice := range choices {
		label := choice.Label
		if label == "" {
			label = choice.Value
		}
		out = append(out, label)
	}
	return out
}
