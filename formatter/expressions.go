package formatter

import (
	"github.com/teleivo/phpfmt/document"
	"github.com/teleivo/phpfmt/phpast"
)

func (c *Context) formatArrayExpression(a phpast.ArrayExpression) document.Doc {
	if len(a.Elements) == 0 {
		return document.Text("[]")
	}

	var items []document.Doc
	for i, e := range a.Elements {
		items = append(items, c.Format(e))
		if i < len(a.Elements)-1 {
			items = append(items, document.Text(","), document.Space())
		}
	}

	body := []document.Doc{document.Softline()}
	body = append(body, items...)
	body = append(body, document.IfBreakThen(document.Text(",")))
	body = append(body, document.Softline())

	return document.Group(document.Text("["), document.Indent(body...), document.Text("]"))
}

func (c *Context) formatFunctionCall(f phpast.FunctionCall) document.Doc {
	return document.Array(c.Format(f.Function), c.formatArgumentList(f.Arguments))
}

func (c *Context) formatStaticMethodCall(s phpast.StaticMethodCall) document.Doc {
	return document.Array(
		c.Format(s.Class), document.Text("::"), document.Text(s.Method.Name),
		c.formatArgumentList(s.Arguments),
	)
}

func (c *Context) formatInstantiation(i phpast.Instantiation) document.Doc {
	parts := []document.Doc{document.Text("new "), c.Format(i.Class)}
	if i.Arguments != nil {
		parts = append(parts, c.formatArgumentList(*i.Arguments))
	}
	return document.Array(parts...)
}

func (c *Context) formatBinary(b phpast.Binary) document.Doc {
	return document.Group(
		c.Format(b.Left),
		document.Text(" "), document.Text(b.Operator),
		document.Indent(document.Space(), c.Format(b.Right)),
	)
}

func (c *Context) formatAssignment(a phpast.Assignment) document.Doc {
	return document.Group(
		c.Format(a.Left), document.Text(" "), document.Text(a.Operator), document.Text(" "),
		c.Format(a.Right),
	)
}

func (c *Context) formatConditional(cond phpast.Conditional) document.Doc {
	if cond.Then == nil {
		return document.Group(
			c.Format(cond.Condition), document.Text(" ?: "), c.Format(cond.Else),
		)
	}
	return document.Group(
		c.Format(cond.Condition),
		document.Indent(
			document.Space(), document.Text("? "), c.Format(cond.Then),
			document.Space(), document.Text(": "), c.Format(cond.Else),
		),
	)
}

func (c *Context) formatAnonymousClass(a phpast.AnonymousClass) document.Doc {
	parts := []document.Doc{document.Text("new class")}
	if a.Arguments != nil {
		parts = append(parts, c.formatArgumentList(*a.Arguments))
	}
	parts = append(parts, document.Text(" "))

	c.PushParent(phpast.MethodBody{})
	members := make([]phpast.Node, len(a.Body.Statements))
	for i, s := range a.Body.Statements {
		members[i] = s
	}
	parts = append(parts, c.FormatBlockOfNodes(a.Body.LeftBrace, a.Body.RightBrace, members, false))
	c.PopParent()

	return document.Array(parts...)
}

func (c *Context) formatClosure(cl phpast.Closure) document.Doc {
	var parts []document.Doc
	if cl.Static {
		parts = append(parts, document.Text("static "))
	}
	parts = append(parts, document.Text("function "), c.FormatFunctionLikeParameterList(cl.Parameters))
	if len(cl.Uses) > 0 {
		parts = append(parts, document.Text(" use ("))
		for i, u := range cl.Uses {
			if i > 0 {
				parts = append(parts, document.Text(", "))
			}
			parts = append(parts, document.Text(u.String()))
		}
		parts = append(parts, document.Text(")"))
	}
	parts = append(parts, document.Text(" "))

	c.PushParent(phpast.Function{})
	parts = append(parts, c.FormatBlock(cl.Body))
	c.PopParent()

	return document.Array(parts...)
}

func (c *Context) formatArrowFunction(a phpast.ArrowFunction) document.Doc {
	var parts []document.Doc
	if a.Static {
		parts = append(parts, document.Text("static "))
	}
	parts = append(parts,
		document.Text("fn"), c.FormatFunctionLikeParameterList(a.Parameters),
		document.Text(" => "), c.Format(a.Body),
	)
	return document.Array(parts...)
}

func (c *Context) formatMatch(m phpast.Match) document.Doc {
	var arms []document.Doc
	for i, arm := range m.Arms {
		var cond document.Doc
		if len(arm.Conditions) == 0 {
			cond = document.Text("default")
		} else {
			var conds []document.Doc
			for j, ce := range arm.Conditions {
				if j > 0 {
					conds = append(conds, document.Text(", "))
				}
				conds = append(conds, c.Format(ce))
			}
			cond = document.Array(conds...)
		}
		arms = append(arms, document.Array(cond, document.Text(" => "), c.Format(arm.Body)))
		if i < len(m.Arms)-1 {
			arms = append(arms, document.Text(","), document.Hardline())
		}
	}

	body := append([]document.Doc{document.Hardline()}, arms...)
	if len(m.Arms) > 0 {
		body = append(body, document.IfBreakThen(document.Text(",")))
	}
	body = append(body, document.Hardline())

	return document.Array(
		document.Text("match ("), c.Format(m.Subject), document.Text(") {"),
		document.Indent(body...),
		document.Text("}"),
	)
}

func (c *Context) formatYield(y phpast.Yield) document.Doc {
	if y.Value == nil {
		return document.Text("yield")
	}
	if y.Key != nil {
		return document.Array(document.Text("yield "), c.Format(y.Key), document.Text(" => "), c.Format(y.Value))
	}
	return document.Array(document.Text("yield "), c.Format(y.Value))
}
