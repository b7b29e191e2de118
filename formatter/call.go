package formatter

import (
	"github.com/teleivo/phpfmt/document"
	"github.com/teleivo/phpfmt/phpast"
)

// chainLink is one collected `->method(args)` or `?->method(args)` step of a method-call chain.
type chainLink struct {
	nullSafe  bool
	method    phpast.Identifier
	arguments phpast.ArgumentList
}

// collectMethodCallChain walks down the Object field while expr is a MethodCall or
// NullSafeMethodCall, accumulating links, and returns them outermost-first together with the
// residual base expression at the bottom of the chain.
func collectMethodCallChain(expr phpast.Expression) (base phpast.Expression, links []chainLink) {
	var reversed []chainLink
	cur := expr
	for {
		switch n := cur.(type) {
		case phpast.MethodCall:
			reversed = append(reversed, chainLink{method: n.Method, arguments: n.Arguments})
			cur = n.Object
		case phpast.NullSafeMethodCall:
			reversed = append(reversed, chainLink{nullSafe: true, method: n.Method, arguments: n.Arguments})
			cur = n.Object
		default:
			links = make([]chainLink, len(reversed))
			for i, l := range reversed {
				links[len(reversed)-1-i] = l
			}
			return cur, links
		}
	}
}

// baseNeedsParens reports whether expr must be wrapped in literal parentheses when it appears as
// the base of a method-call chain, so that e.g. `(new Foo())->bar()` or `($a ?? $b)->bar()`
// parse as intended instead of binding `->bar()` to a sub-expression.
func baseNeedsParens(expr phpast.Expression) bool {
	switch n := expr.(type) {
	case phpast.Parenthesized:
		return baseNeedsParens(n.Expression)
	case phpast.Instantiation:
		return true
	case phpast.Binary, phpast.UnaryPrefix, phpast.UnaryPostfix, phpast.Assignment,
		phpast.Conditional, phpast.AnonymousClass, phpast.Closure, phpast.ArrowFunction,
		phpast.Match, phpast.Yield, phpast.Clone:
		return true
	}
	return false
}

// FormatMethodCallChain formats expr, which must be a MethodCall or NullSafeMethodCall, as a
// method-call chain per §4.4.2. A chain of length 1 still goes through this path (a lone call is
// not "collected" as a multi-link chain, but rendering a single link uses the same machinery);
// chains of length ≥ 2 always render multi-line via an appended BreakParent.
func (c *Context) FormatMethodCallChain(expr phpast.Expression) document.Doc {
	base, links := collectMethodCallChain(expr)

	baseDoc := c.Format(base)
	if baseNeedsParens(base) {
		baseDoc = document.Array(document.Text("("), baseDoc, document.Text(")"))
	}

	if len(links) == 0 {
		return baseDoc
	}

	parts := []document.Doc{baseDoc}

	firstInline := c.Settings.MethodChainBreakingStyle == SameLine
	for i, link := range links {
		linkDoc := c.formatChainLink(link)
		if i == 0 && firstInline {
			parts = append(parts, linkDoc)
			continue
		}
		parts = append(parts, document.Indent(document.Hardline(), linkDoc))
	}

	if len(links) >= 2 {
		parts = append(parts, document.BreakParentDoc)
	}

	return document.Group(parts...)
}

func (c *Context) formatChainLink(link chainLink) document.Doc {
	operator := "->"
	if link.nullSafe {
		operator = "?->"
	}
	return document.Array(
		document.Text(operator),
		document.Text(link.method.Name),
		c.formatArgumentList(link.arguments),
	)
}

// formatArgumentList renders a call's parenthesized argument list, sharing the comma/Line/hug
// machinery FormatFunctionLikeParameterList uses for parameter lists.
func (c *Context) formatArgumentList(args phpast.ArgumentList) document.Doc {
	parenSpan := phpast.Join(args.LeftParenthesis, args.RightParenthesis)

	if len(args.Arguments) == 1 && shouldHugTheOnlyArgument(args.Arguments[0]) {
		return document.Array(document.Text("("), c.formatArgument(args.Arguments[0]), document.Text(")"))
	}

	if shouldExpandFirstArgument(args) {
		return c.formatArgumentListExpandingFirst(args)
	}

	var items []document.Doc
	for i, a := range args.Arguments {
		items = append(items, c.formatArgument(a))
		if i < len(args.Arguments)-1 {
			items = append(items, document.Text(","), document.Space())
			if c.Comments.IsNextLineEmpty(a.Span()) {
				items = append(items, document.BreakParentDoc, document.Hardline())
			}
		}
	}

	if len(args.Arguments) == 0 {
		if dangling, ok := c.Comments.PrintDanglingComments(parenSpan, false); ok {
			return document.Array(document.Text("("), dangling, document.Text(")"))
		}
		return document.Text("()")
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

	list := document.Array(document.Text("("), document.Indent(body...), document.Text(")"))
	return document.Group(list)
}

// shouldExpandFirstArgument reports whether args's leading argument is a closure or arrow
// function that should expand its body in place while the remaining, simpler arguments stay
// packed on the call's own line, e.g. array_map(function ($x) { ... }, $xs). Grounded on mago's
// ArgumentState.expand_first_argument (parameters.rs), consumed where
// FormatFunctionLikeParameterList checks Context.argState.expandFirstArgument while formatting
// that closure's own parameter list.
func shouldExpandFirstArgument(args phpast.ArgumentList) bool {
	if len(args.Arguments) < 2 {
		return false
	}
	first := args.Arguments[0]
	if first.Name != nil || first.Spread {
		return false
	}
	switch first.Value.(type) {
	case phpast.Closure, phpast.ArrowFunction:
	default:
		return false
	}
	for _, a := range args.Arguments[1:] {
		if !isSimpleArgument(a) {
			return false
		}
	}
	return true
}

// isSimpleArgument reports whether a is plain enough to sit packed on the call's own line next to
// an expanded first argument: no spread, and not itself a closure/arrow-function/array that would
// want to expand too.
func isSimpleArgument(a phpast.Argument) bool {
	if a.Spread {
		return false
	}
	switch a.Value.(type) {
	case phpast.Closure, phpast.ArrowFunction, phpast.ArrayExpression:
		return false
	}
	return true
}

// formatArgumentListExpandingFirst renders the parenthesized list when shouldExpandFirstArgument
// holds: the first argument formats with Context.argState.expandFirstArgument set so its own
// parameter list doesn't wrap itself in a Group, letting its body break while the remaining
// arguments print packed on the same line as the closing parenthesis.
func (c *Context) formatArgumentListExpandingFirst(args phpast.ArgumentList) document.Doc {
	var firstDoc document.Doc
	c.withExpandFirstArgument(true, func() {
		firstDoc = c.formatArgument(args.Arguments[0])
	})

	parts := []document.Doc{document.Text("("), firstDoc}
	for _, a := range args.Arguments[1:] {
		parts = append(parts, document.Text(", "), c.formatArgument(a))
	}
	parts = append(parts, document.Text(")"))
	return document.Array(parts...)
}

func (c *Context) formatArgument(a phpast.Argument) document.Doc {
	var parts []document.Doc
	if a.Spread {
		parts = append(parts, document.Text("..."))
	}
	if a.Name != nil {
		parts = append(parts, document.Text(a.Name.Name), document.Text(": "))
	}
	parts = append(parts, c.Format(a.Value))
	return document.Array(parts...)
}

// shouldHugTheOnlyArgument mirrors shouldHugTheOnlyParameter for the single-argument case of a
// call: a lone closure/array/arrow-function argument stays adjacent to the parentheses instead
// of forcing the whole call onto its own broken lines.
func shouldHugTheOnlyArgument(a phpast.Argument) bool {
	if a.Name != nil || a.Spread {
		return false
	}
	switch a.Value.(type) {
	case phpast.Closure, phpast.ArrowFunction, phpast.ArrayExpression:
		return true
	}
	return false
}
