package formatter

import (
	"github.com/teleivo/phpfmt/document"
	"github.com/teleivo/phpfmt/phpast"
)

func (c *Context) formatProgram(p phpast.Program) document.Doc {
	var parts []document.Doc
	for i, s := range p.Statements {
		parts = append(parts, c.Format(s))
		if i < len(p.Statements)-1 {
			parts = append(parts, document.Hardline())
			if c.Comments.IsNextLineEmpty(s.Span()) {
				parts = append(parts, document.Hardline())
			}
		}
	}
	parts = append(parts, document.Hardline())
	return document.Array(parts...)
}

func (c *Context) formatEcho(e phpast.Echo) document.Doc {
	parts := []document.Doc{document.Text("echo ")}
	for i, v := range e.Values {
		if i > 0 {
			parts = append(parts, document.Text(", "))
		}
		parts = append(parts, c.Format(v))
	}
	parts = append(parts, document.Text(";"))
	return document.Array(parts...)
}

func (c *Context) formatReturn(r phpast.Return) document.Doc {
	if r.Value == nil {
		return document.Text("return;")
	}
	return document.Array(document.Text("return "), c.Format(r.Value), document.Text(";"))
}

// formatIf formats an if/elseif/else chain. Format already pushed i itself as the current
// parent, so each branch's body sees an ordinary statement node as its parent — not a forcing
// marker — and an empty branch stays compact, consistent with formatWhile/formatFor/formatForeach
// below (see emptyBlockShouldBreak).
func (c *Context) formatIf(i phpast.If) document.Doc {
	parts := []document.Doc{document.Text("if ("), c.Format(i.Condition), document.Text(") ")}
	parts = append(parts, c.FormatBlock(i.Body))

	for idx := range i.ElseIfs {
		ei := i.ElseIfs[idx]
		parts = append(parts, document.Text(" elseif ("), c.Format(ei.Condition), document.Text(") "))
		parts = append(parts, c.FormatBlock(ei.Body))
	}

	if i.Else != nil {
		parts = append(parts, document.Text(" else "))
		parts = append(parts, c.FormatBlock(i.Else.Body))
	}

	return document.Array(parts...)
}

func (c *Context) formatWhile(w phpast.While) document.Doc {
	body := c.FormatBlock(w.Body)
	return document.Array(document.Text("while ("), c.Format(w.Condition), document.Text(") "), body)
}

func (c *Context) formatDoWhile(d phpast.DoWhile) document.Doc {
	// Format already pushed d itself as the current parent, so the body sees parent == DoWhile.
	// emptyBlockShouldBreak does not list DoWhile, so an empty body stays compact like the other
	// loop bodies.
	body := c.FormatBlock(d.Body)
	return document.Array(
		document.Text("do "), body,
		document.Text(" while ("), c.Format(d.Condition), document.Text(");"),
	)
}

func (c *Context) formatFor(f phpast.For) document.Doc {
	init := c.formatExprList(f.Init)
	cond := c.formatExprList(f.Condition)
	step := c.formatExprList(f.Step)

	body := c.FormatBlock(f.Body)

	return document.Array(
		document.Text("for ("), init, document.Text("; "), cond, document.Text("; "), step,
		document.Text(") "), body,
	)
}

func (c *Context) formatExprList(exprs []phpast.Expression) document.Doc {
	var parts []document.Doc
	for i, e := range exprs {
		if i > 0 {
			parts = append(parts, document.Text(", "))
		}
		parts = append(parts, c.Format(e))
	}
	return document.Array(parts...)
}

func (c *Context) formatForeach(f phpast.Foreach) document.Doc {
	parts := []document.Doc{document.Text("foreach ("), c.Format(f.Subject), document.Text(" as ")}
	if f.Key != nil {
		parts = append(parts, c.Format(f.Key), document.Text(" => "))
	}
	if f.ByRef {
		parts = append(parts, document.Text("&"))
	}
	parts = append(parts, c.Format(f.Value), document.Text(") "))

	parts = append(parts, c.FormatBlock(f.Body))

	return document.Array(parts...)
}

func (c *Context) formatTry(t phpast.Try) document.Doc {
	// Format already pushed t itself as the current parent, so the main try body sees
	// parent == Try, matching §4.4.1's first exclusion list directly.
	body := c.FormatBlock(t.Body)

	parts := []document.Doc{document.Text("try "), body}

	for idx := range t.Catches {
		cl := t.Catches[idx]
		parts = append(parts, document.Text(" catch ("))
		for i, ty := range cl.Types {
			if i > 0 {
				parts = append(parts, document.Text("|"))
			}
			parts = append(parts, document.Text(ty.Name))
		}
		if cl.Var != nil {
			parts = append(parts, document.Text(" "), document.Text(cl.Var.String()))
		}
		parts = append(parts, document.Text(") "))

		c.PushParent(phpast.TryCatchClause{Clause: &cl})
		parts = append(parts, c.FormatBlock(cl.Body))
		c.PopParent()
	}

	if t.Finally != nil {
		parts = append(parts, document.Text(" finally "))
		c.PushParent(phpast.TryFinallyClause{Clause: t.Finally})
		parts = append(parts, c.FormatBlock(t.Finally.Body))
		c.PopParent()
	}

	return document.Array(parts...)
}

func (c *Context) formatFunctionDeclaration(f phpast.FunctionDeclaration) document.Doc {
	parts := []document.Doc{
		document.Text("function "), document.Text(f.Name.Name),
		c.FormatFunctionLikeParameterList(f.Parameters),
	}
	if f.ReturnType != nil {
		parts = append(parts, document.Text(": "), document.Text(f.ReturnType.Name))
	}
	parts = append(parts, document.Text(" "))

	c.PushParent(phpast.Function{Decl: &f})
	parts = append(parts, c.FormatBlock(f.Body))
	c.PopParent()

	return document.Array(parts...)
}

func (c *Context) formatMethodDeclaration(m phpast.MethodDeclaration) document.Doc {
	var parts []document.Doc
	for _, mod := range m.Modifiers {
		parts = append(parts, document.Text(mod.Keyword), document.Text(" "))
	}
	parts = append(parts,
		document.Text("function "), document.Text(m.Name.Name),
		c.FormatFunctionLikeParameterList(m.Parameters),
	)
	if m.ReturnType != nil {
		parts = append(parts, document.Text(": "), document.Text(m.ReturnType.Name))
	}

	if m.Body == nil {
		parts = append(parts, document.Text(";"))
		return document.Array(parts...)
	}

	parts = append(parts, document.Text(" "))
	c.PushParent(phpast.MethodBody{Decl: &m})
	parts = append(parts, c.FormatBlock(*m.Body))
	c.PopParent()

	return document.Array(parts...)
}

func (c *Context) formatClassLike(cl phpast.ClassLike) document.Doc {
	var keyword string
	switch cl.Kind {
	case phpast.Interface:
		keyword = "interface"
	case phpast.Trait:
		keyword = "trait"
	case phpast.Enum:
		keyword = "enum"
	default:
		keyword = "class"
	}

	parts := []document.Doc{document.Text(keyword), document.Text(" "), document.Text(cl.Name.Name)}

	if len(cl.Extends) > 0 {
		parts = append(parts, document.Text(" extends "))
		for i, e := range cl.Extends {
			if i > 0 {
				parts = append(parts, document.Text(", "))
			}
			parts = append(parts, document.Text(e.Name))
		}
	}
	if len(cl.Implements) > 0 {
		parts = append(parts, document.Text(" implements "))
		for i, e := range cl.Implements {
			if i > 0 {
				parts = append(parts, document.Text(", "))
			}
			parts = append(parts, document.Text(e.Name))
		}
	}
	parts = append(parts, document.Text(" "))

	members := make([]phpast.Node, len(cl.Members))
	for i, m := range cl.Members {
		members[i] = m
	}
	parts = append(parts, c.FormatBlockOfNodes(cl.LeftBrace, cl.RightBrace, members, false))

	return document.Array(parts...)
}
