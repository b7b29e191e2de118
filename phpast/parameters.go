package phpast

// Parameter is a single entry in a FunctionLikeParameterList.
type Parameter struct {
	Modifiers      []Modifier // constructor-promotion visibility/readonly modifiers
	AttributeLists []AttributeList
	Type           *Identifier
	ByRef          bool
	Variadic       bool
	Name           Variable
	Default        Expression // nil if absent
	Hooks          *PropertyHookList
	Pos            Span
}

// Span returns the full span of the parameter, from its first attribute or modifier (or its
// type, or its name if neither is present) through its default value, hooks, or name.
func (p Parameter) Span() Span { return p.Pos }

// IsPromotedProperty reports whether this parameter uses constructor-promotion syntax, i.e.
// carries at least one visibility/readonly modifier.
func (p Parameter) IsPromotedProperty() bool {
	return len(p.Modifiers) > 0
}

// FunctionLikeParameterList is the parenthesized parameter list of a function, method, closure,
// or arrow function.
type FunctionLikeParameterList struct {
	LeftParenthesis  Span
	Parameters       []Parameter
	RightParenthesis Span
}

func (pl FunctionLikeParameterList) Span() Span {
	return Join(pl.LeftParenthesis, pl.RightParenthesis)
}
