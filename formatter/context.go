package formatter

import (
	"github.com/teleivo/phpfmt/comment"
	"github.com/teleivo/phpfmt/document"
	"github.com/teleivo/phpfmt/internal/assert"
	"github.com/teleivo/phpfmt/phpast"
)

// argumentState carries the transient flags that one node formatter sets for the benefit of a
// formatter it is about to call, analogous to a single extra parameter threaded through a
// recursive-descent call rather than a global. expandFirstArgument disables a parameter list's own
// Group so the caller can attempt "expand first callable argument" styling (see
// FormatFunctionLikeParameterList); argument lists do not consult it.
type argumentState struct {
	expandFirstArgument bool
}

// Context is the Formatter Context: parent-stack bookkeeping plus the shared Settings and
// comment.Index every node formatter consults, constructed once per file. It plays the role
// teleivo/dot's single *Printer struct plays for DOT, scoping state through a struct passed by
// pointer rather than free functions.
type Context struct {
	Settings Settings
	Comments *comment.Index

	parents []phpast.Node
	argState argumentState
}

// NewContext constructs a Context ready to format a file's root Program node.
func NewContext(settings Settings, comments *comment.Index) *Context {
	return &Context{Settings: settings, Comments: comments}
}

// PushParent records node as the new innermost parent. Every call must be paired with PopParent,
// typically via `defer c.PopParent()` at the call site, so the stack unwinds symmetrically even
// though formatting in this design never fails partway through (§5).
func (c *Context) PushParent(node phpast.Node) {
	c.parents = append(c.parents, node)
}

// PopParent removes the innermost parent pushed by the matching PushParent call.
func (c *Context) PopParent() {
	assert.That(len(c.parents) > 0, "PopParent called with empty parent stack")
	c.parents = c.parents[:len(c.parents)-1]
}

// ParentNode returns the immediate parent of the node currently being formatted, or nil at the
// root.
func (c *Context) ParentNode() phpast.Node {
	if len(c.parents) == 0 {
		return nil
	}
	return c.parents[len(c.parents)-1]
}

// GrandparentNode returns the parent of ParentNode, or nil if there is none.
func (c *Context) GrandparentNode() phpast.Node {
	if len(c.parents) < 2 {
		return nil
	}
	return c.parents[len(c.parents)-2]
}

// withExpandFirstArgument runs fn with argState.expandFirstArgument set to v for its duration,
// restoring the previous value afterward, the same scoped-flag discipline PushParent/PopParent
// uses for the parent stack.
func (c *Context) withExpandFirstArgument(v bool, fn func()) {
	prev := c.argState.expandFirstArgument
	c.argState.expandFirstArgument = v
	defer func() { c.argState.expandFirstArgument = prev }()
	fn()
}

// Format is the single dispatch entrypoint: it formats node into a Document, pushing node as the
// parent for any nested Format calls it makes and popping on return. The default branch panics
// via assert.That — reaching it means the AST contains a node shape this formatter was never
// taught, which per §7 is an unrecoverable invariant violation rather than a value to degrade
// gracefully on.
func (c *Context) Format(node phpast.Node) document.Doc {
	c.PushParent(node)
	defer c.PopParent()
	return c.format(node)
}

func (c *Context) format(node phpast.Node) document.Doc {
	switch n := node.(type) {
	// Program and statements
	case phpast.Program:
		return c.formatProgram(n)
	case phpast.Noop:
		return document.Empty
	case phpast.ExpressionStatement:
		return document.Array(c.Format(n.Expression), document.Text(";"))
	case phpast.Echo:
		return c.formatEcho(n)
	case phpast.Return:
		return c.formatReturn(n)
	case phpast.Block:
		return c.FormatBlock(n)
	case phpast.If:
		return c.formatIf(n)
	case phpast.While:
		return c.formatWhile(n)
	case phpast.DoWhile:
		return c.formatDoWhile(n)
	case phpast.For:
		return c.formatFor(n)
	case phpast.Foreach:
		return c.formatForeach(n)
	case phpast.Try:
		return c.formatTry(n)
	case phpast.FunctionDeclaration:
		return c.formatFunctionDeclaration(n)
	case phpast.MethodDeclaration:
		return c.formatMethodDeclaration(n)
	case phpast.ClassLike:
		return c.formatClassLike(n)

	// Expressions
	case phpast.Identifier:
		return document.Text(n.Name)
	case phpast.Variable:
		return document.Text(n.String())
	case phpast.Literal:
		return document.Text(n.Raw)
	case phpast.ArrayExpression:
		return c.formatArrayExpression(n)
	case phpast.MethodCall:
		return c.FormatMethodCallChain(n)
	case phpast.NullSafeMethodCall:
		return c.FormatMethodCallChain(n)
	case phpast.FunctionCall:
		return c.formatFunctionCall(n)
	case phpast.StaticMethodCall:
		return c.formatStaticMethodCall(n)
	case phpast.Parenthesized:
		return document.Array(document.Text("("), c.Format(n.Expression), document.Text(")"))
	case phpast.Instantiation:
		return c.formatInstantiation(n)
	case phpast.Binary:
		return c.formatBinary(n)
	case phpast.UnaryPrefix:
		return document.Array(document.Text(n.Operator), c.Format(n.Operand))
	case phpast.UnaryPostfix:
		return document.Array(c.Format(n.Operand), document.Text(n.Operator))
	case phpast.Assignment:
		return c.formatAssignment(n)
	case phpast.Conditional:
		return c.formatConditional(n)
	case phpast.AnonymousClass:
		return c.formatAnonymousClass(n)
	case phpast.Closure:
		return c.formatClosure(n)
	case phpast.ArrowFunction:
		return c.formatArrowFunction(n)
	case phpast.Match:
		return c.formatMatch(n)
	case phpast.Yield:
		return c.formatYield(n)
	case phpast.Clone:
		return document.Array(document.Text("clone "), c.Format(n.Expression))
	}

	assert.That(false, "formatter: no node formatter registered for %T", node)
	return document.Empty
}
