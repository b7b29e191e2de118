package formatter

import (
	"github.com/teleivo/phpfmt/comment"
	"github.com/teleivo/phpfmt/document"
	"github.com/teleivo/phpfmt/phpast"
)

// shouldHugTheOnlyParameter implements §4.4.3's "hug the only parameter" predicate.
func (c *Context) shouldHugTheOnlyParameter(list phpast.FunctionLikeParameterList) bool {
	if len(list.Parameters) != 1 {
		return false
	}
	p := list.Parameters[0]

	if c.Comments.HasComment(p.Span(), comment.Leading|comment.Trailing|comment.Dangling) {
		return false
	}
	if len(p.AttributeLists) > 0 || p.Hooks != nil {
		return false
	}
	if c.Settings.BreakPromotedPropertiesList && len(p.Modifiers) > 0 {
		return false
	}
	return true
}

// FormatFunctionLikeParameterList formats a function/method/closure/arrow-function parameter
// list per §4.4.3, including the "hug the only parameter" shortcut and the break-promoted-
// properties policy.
func (c *Context) FormatFunctionLikeParameterList(list phpast.FunctionLikeParameterList) document.Doc {
	parenSpan := phpast.Join(list.LeftParenthesis, list.RightParenthesis)
	hug := c.shouldHugTheOnlyParameter(list)

	anyPromoted := false
	for _, p := range list.Parameters {
		if p.IsPromotedProperty() {
			anyPromoted = true
			break
		}
	}
	forceBreak := !hug && c.Settings.BreakPromotedPropertiesList && anyPromoted

	if len(list.Parameters) == 0 {
		if dangling, ok := c.Comments.PrintDanglingComments(parenSpan, false); ok {
			return document.Array(document.Text("("), dangling, document.Text(")"))
		}
		return document.Text("()")
	}

	var items []document.Doc
	for i, p := range list.Parameters {
		items = append(items, c.formatParameter(p))
		if i < len(list.Parameters)-1 {
			items = append(items, document.Text(","))
			if hug {
				items = append(items, document.Text(" "))
			} else {
				items = append(items, document.Space())
			}
			if c.Comments.IsNextLineEmpty(p.Span()) {
				items = append(items, document.BreakParentDoc, document.Hardline())
			}
		}
	}

	if hug {
		parts := []document.Doc{document.Text("(")}
		parts = append(parts, items...)
		parts = append(parts, document.Text(")"))
		return document.Array(parts...)
	}

	body := []document.Doc{document.Softline()}
	body = append(body, items...)
	if c.Settings.TrailingComma {
		body = append(body, document.IfBreakThen(document.Text(",")))
	}
	if dangling, ok := c.Comments.PrintDanglingComments(parenSpan, false); ok {
		body = append(body, dangling)
	} else {
		body = append(body, document.Softline())
	}

	children := []document.Doc{document.Text("("), document.Indent(body...), document.Text(")")}
	if c.argState.expandFirstArgument {
		return document.Array(children...)
	}
	return document.GroupBreak(forceBreak, children...)
}

func (c *Context) formatParameter(p phpast.Parameter) document.Doc {
	var parts []document.Doc
	for _, al := range p.AttributeLists {
		parts = append(parts, c.formatAttributeList(al), document.Text(" "))
	}
	for _, m := range p.Modifiers {
		parts = append(parts, document.Text(m.Keyword), document.Text(" "))
	}
	if p.Type != nil {
		parts = append(parts, document.Text(p.Type.Name), document.Text(" "))
	}
	if p.ByRef {
		parts = append(parts, document.Text("&"))
	}
	if p.Variadic {
		parts = append(parts, document.Text("..."))
	}
	parts = append(parts, document.Text(p.Name.String()))
	if p.Default != nil {
		parts = append(parts, document.Text(" = "), c.Format(p.Default))
	}
	if p.Hooks != nil {
		parts = append(parts, document.Text(" "), c.formatPropertyHookList(*p.Hooks))
	}
	return document.Array(parts...)
}

func (c *Context) formatAttributeList(al phpast.AttributeList) document.Doc {
	var names []document.Doc
	for i, a := range al.Attributes {
		if i > 0 {
			names = append(names, document.Text(", "))
		}
		names = append(names, document.Text(a.Name.Name))
	}
	return document.Array(append([]document.Doc{document.Text("#[")}, append(names, document.Text("]"))...)...)
}

// formatPropertyHookList renders the `{ get; set(int $v) { ... } }` block following a hooked
// property or promoted parameter. Each hook is either abstract (`get;`, no Body) or concrete
// (`get { ... }`, Body is a PropertyHookConcreteBody-tagged Block).
func (c *Context) formatPropertyHookList(hooks phpast.PropertyHookList) document.Doc {
	var items []document.Doc
	for i, h := range hooks.Hooks {
		items = append(items, c.formatPropertyHook(h))
		if i < len(hooks.Hooks)-1 {
			items = append(items, document.Hardline())
		}
	}
	return document.GroupBreak(true,
		document.Text("{"),
		document.Indent(append([]document.Doc{document.Hardline()}, items...)...),
		document.Hardline(),
		document.Text("}"),
	)
}

func (c *Context) formatPropertyHook(h phpast.PropertyHook) document.Doc {
	if h.Body == nil {
		return document.Array(document.Text(h.Name.Name), document.Text(";"))
	}
	block, ok := h.Body.(phpast.Block)
	if !ok {
		return document.Array(document.Text(h.Name.Name), document.Text(";"))
	}
	c.PushParent(phpast.PropertyHookConcreteBody{Hook: &h})
	defer c.PopParent()
	return document.Array(document.Text(h.Name.Name), document.Text(" "), c.FormatBlock(block))
}
