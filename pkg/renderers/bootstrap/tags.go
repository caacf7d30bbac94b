package bootstrap

import (
	"fmt"

	"github.com/flosch/pongo2/v6"

	"github.com/goliatone/go-bstoolkit/pkg/pagination"
)

// Tag names registered with pongo2.
const (
	TagForm       = "bootstrap_form"
	TagField      = "bootstrap_field"
	TagPagination = "bootstrap_pagination"
	TagMessages   = "bootstrap_messages"
)

var paginationKeywords = map[string]struct{}{
	"pages_to_show": {},
	"url":           {},
	"extra":         {},
}

func registerTags() {
	tags := map[string]pongo2.TagParser{
		TagForm:       inclusionTagParser(TagForm, renderFormNode),
		TagField:      inclusionTagParser(TagField, renderFieldNode),
		TagPagination: inclusionTagParser(TagPagination, renderPaginationNode),
		TagMessages:   messagesTagParser,
	}
	for name, parser := range tags {
		if err := pongo2.RegisterTag(name, parser); err != nil {
			_ = pongo2.ReplaceTag(name, parser)
		}
	}
}

type keywordArg struct {
	name  string
	value pongo2.IEvaluator
}

type inclusionRender func(r *Renderer, subject *pongo2.Value, kwargs map[string]*pongo2.Value) (string, error)

// inclusionNode evaluates `{% tag subject key=expr ... %}` and writes the
// rendered template.
type inclusionNode struct {
	name    string
	subject pongo2.IEvaluator
	kwargs  []keywordArg
	render  inclusionRender
}

func inclusionTagParser(name string, fn inclusionRender) pongo2.TagParser {
	return func(_ *pongo2.Parser, start *pongo2.Token, arguments *pongo2.Parser) (pongo2.INodeTag, *pongo2.Error) {
		if arguments.Remaining() == 0 {
			return nil, arguments.Error(fmt.Sprintf("Tag '%s' requires an argument.", name), start)
		}
		subject, err := arguments.ParseExpression()
		if err != nil {
			return nil, err
		}
		node := &inclusionNode{name: name, subject: subject, render: fn}
		for arguments.Remaining() > 0 {
			key := arguments.MatchType(pongo2.TokenIdentifier)
			if key == nil {
				return nil, arguments.Error("Expected an identifier.", nil)
			}
			if name == TagPagination {
				if _, ok := paginationKeywords[key.Val]; !ok {
					return nil, arguments.Error(fmt.Sprintf("Unknown argument '%s' for tag '%s'.", key.Val, name), key)
				}
			}
			if arguments.Match(pongo2.TokenSymbol, "=") == nil {
				return nil, arguments.Error("Expected '='.", nil)
			}
			value, err := arguments.ParseExpression()
			if err != nil {
				return nil, err
			}
			node.kwargs = append(node.kwargs, keywordArg{name: key.Val, value: value})
		}
		return node, nil
	}
}

func (n *inclusionNode) Execute(ctx *pongo2.ExecutionContext, writer pongo2.TemplateWriter) *pongo2.Error {
	r, perr := rendererFor(ctx, n.name)
	if perr != nil {
		return perr
	}
	subject, perr := n.subject.Evaluate(ctx)
	if perr != nil {
		return perr
	}
	kwargs := make(map[string]*pongo2.Value, len(n.kwargs))
	for _, arg := range n.kwargs {
		value, perr := arg.value.Evaluate(ctx)
		if perr != nil {
			return perr
		}
		kwargs[arg.name] = value
	}
	out, err := n.render(r, subject, kwargs)
	if err != nil {
		return &pongo2.Error{Sender: "tag:" + n.name, OrigError: err}
	}
	_, werr := writer.WriteString(out)
	if werr != nil {
		return &pongo2.Error{Sender: "tag:" + n.name, OrigError: werr}
	}
	return nil
}

func renderFormNode(r *Renderer, subject *pongo2.Value, kwargs map[string]*pongo2.Value) (string, error) {
	return r.RenderForm(subject.Interface(), plainValues(kwargs))
}

func renderFieldNode(r *Renderer, subject *pongo2.Value, kwargs map[string]*pongo2.Value) (string, error) {
	return r.RenderField(subject.Interface(), plainValues(kwargs))
}

func renderPaginationNode(r *Renderer, subject *pongo2.Value, kwargs map[string]*pongo2.Value) (string, error) {
	pager, ok := subject.Interface().(pagination.Pager)
	if !ok {
		return "", fmt.Errorf("%w: expected a page, got %T", ErrUnsupportedValue, subject.Interface())
	}
	var opts []pagination.Option
	if value, ok := kwargs["pages_to_show"]; ok {
		n, err := pagination.ParsePagesToShow(value.Interface())
		if err != nil {
			return "", err
		}
		opts = append(opts, pagination.WithPagesToShow(n))
	}
	if value, ok := kwargs["url"]; ok && !value.IsNil() {
		opts = append(opts, pagination.WithURL(value.String()))
	}
	if value, ok := kwargs["extra"]; ok && !value.IsNil() {
		opts = append(opts, pagination.WithExtra(value.String()))
	}
	return r.RenderPagination(pager, opts...)
}

// messagesNode renders the `messages` variable of the calling template.
type messagesNode struct{}

func messagesTagParser(_ *pongo2.Parser, _ *pongo2.Token, arguments *pongo2.Parser) (pongo2.INodeTag, *pongo2.Error) {
	// Arguments are accepted and ignored.
	for arguments.Remaining() > 0 {
		arguments.Consume()
	}
	return &messagesNode{}, nil
}

func (n *messagesNode) Execute(ctx *pongo2.ExecutionContext, writer pongo2.TemplateWriter) *pongo2.Error {
	r, perr := rendererFor(ctx, TagMessages)
	if perr != nil {
		return perr
	}
	raw, ok := ctx.Private["messages"]
	if !ok {
		raw = ctx.Public["messages"]
	}
	if value, isValue := raw.(*pongo2.Value); isValue {
		raw = value.Interface()
	}
	messages, err := messagesFrom(raw)
	if err != nil {
		return &pongo2.Error{Sender: "tag:" + TagMessages, OrigError: err}
	}
	out, err := r.RenderMessages(messages)
	if err != nil {
		return &pongo2.Error{Sender: "tag:" + TagMessages, OrigError: err}
	}
	if _, err := writer.WriteString(out); err != nil {
		return &pongo2.Error{Sender: "tag:" + TagMessages, OrigError: err}
	}
	return nil
}

// rendererFor prefers the renderer whose engine runs the template and falls
// back to the installed one.
func rendererFor(ctx *pongo2.ExecutionContext, sender string) (*Renderer, *pongo2.Error) {
	if r, ok := ctx.Public[ContextKey].(*Renderer); ok && r != nil {
		return r, nil
	}
	if r := active.Load(); r != nil {
		return r, nil
	}
	return nil, &pongo2.Error{Sender: "tag:" + sender, OrigError: ErrNotInstalled}
}

func plainValues(kwargs map[string]*pongo2.Value) map[string]any {
	out := make(map[string]any, len(kwargs))
	for key, value := range kwargs {
		out[key] = value.Interface()
	}
	return out
}
