package phpast

// The types below carry no data beyond what the formatter needs to classify a position in the
// parent stack (see formatter.Context.ParentNode). They let an empty block's break decision
// (§4.4.1) type-switch on "what kind of body is this" the same way mago's Node enum does,
// without needing a Node variant for every possible AST shape. Loop and if bodies (While, For,
// Foreach, If) reuse their own statement type directly as the parent marker instead of a
// synthetic tag: a bare `while (...) {}` stays compact (an empty block there is not forced to
// break), so there is nothing for a WhileBody-style marker to distinguish.

// Function marks that the current block is a top-level function's body.
type Function struct {
	Decl *FunctionDeclaration
}

func (Function) Span() Span { return Span{} }
func (Function) stmtNode()  {}

// MethodBody marks that the current block is a method's body.
type MethodBody struct {
	Decl *MethodDeclaration
}

func (MethodBody) Span() Span { return Span{} }
func (MethodBody) stmtNode()  {}

// PropertyHookConcreteBody marks that the current block is a property hook's body.
type PropertyHookConcreteBody struct {
	Hook *PropertyHook
}

func (PropertyHookConcreteBody) Span() Span { return Span{} }
func (PropertyHookConcreteBody) stmtNode()  {}

// TryCatchClause marks that the current block is a catch clause's body.
type TryCatchClause struct {
	Clause *CatchClause
}

func (TryCatchClause) Span() Span { return Span{} }
func (TryCatchClause) stmtNode()  {}

// TryFinallyClause marks that the current block is a finally clause's body.
type TryFinallyClause struct {
	Clause *FinallyClause
}

func (TryFinallyClause) Span() Span { return Span{} }
func (TryFinallyClause) stmtNode()  {}
