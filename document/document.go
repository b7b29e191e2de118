// Package document provides the intermediate representation consumed by the layout engine
// (package layout): a tree of print instructions describing possibly-breaking content, rather
// than already-decided formatted text.
//
// The design mirrors the teleivo/dot layout package's Doc/tag model, generalized from that
// package's builder-method style to an explicit sum type so that a single Group's break
// decision, IfBreak branch, and BreakParent propagation can all be expressed as plain data built
// bottom-up by the node formatters in package formatter. Doc is a plain value tree: fields are
// exported so package layout can walk it, the same way go/ast exposes its node fields for
// visitors outside the ast package.
package document

// LineKind distinguishes the three flavors of conditional break point.
type LineKind int

const (
	// SoftLineKind renders as nothing when its enclosing group is flat, or a newline+indent
	// when broken.
	SoftLineKind LineKind = iota
	// HardLineKind always renders as a newline+indent, and forces its enclosing group and every
	// ancestor group up to the root into break mode.
	HardLineKind
	// DefaultLineKind renders as a single space when flat, or a newline+indent when broken.
	DefaultLineKind
)

// Kind discriminates the Doc sum type.
type Kind int

const (
	EmptyKind Kind = iota
	StringKind
	LineDocKind
	IndentKind
	GroupKind
	IfBreakKind
	BreakParentKind
	ArrayKind
)

// Doc is the Document sum type. The zero value is Empty: a String must never contain '\n'.
type Doc struct {
	Kind     Kind
	Str      string   // StringKind
	Line     LineKind // LineDocKind
	Children []Doc    // IndentKind, GroupKind, ArrayKind
	Breaks   bool     // GroupKind: explicit break flag set by the caller
	Then     *Doc     // IfBreakKind
	Else     *Doc     // IfBreakKind
}

// Empty is the empty document: renders nothing.
var Empty = Doc{Kind: EmptyKind}

// Text returns a literal atom. Text must not contain '\n'; every newline in the rendered output
// originates from a Line of kind HardLineKind, or from a broken Line of kind
// DefaultLineKind/SoftLineKind.
func Text(s string) Doc {
	return Doc{Kind: StringKind, Str: s}
}

// NewLine returns a conditional break point of the given kind.
func NewLine(k LineKind) Doc {
	return Doc{Kind: LineDocKind, Line: k}
}

// Softline is shorthand for NewLine(SoftLineKind).
func Softline() Doc { return NewLine(SoftLineKind) }

// Hardline is shorthand for NewLine(HardLineKind).
func Hardline() Doc { return NewLine(HardLineKind) }

// Space is shorthand for NewLine(DefaultLineKind): a single space when flat, newline when broken.
func Space() Doc { return NewLine(DefaultLineKind) }

// Indent increases the current indentation level while rendering its children.
func Indent(children ...Doc) Doc {
	return Doc{Kind: IndentKind, Children: children}
}

// Group marks a flat-or-break boundary: the layout engine renders children inline if the whole
// group fits within the remaining print width and contains no hard line, otherwise it breaks.
func Group(children ...Doc) Doc {
	return Doc{Kind: GroupKind, Children: children}
}

// GroupBreak is Group, but forced into break mode when breaks is true, regardless of fit.
func GroupBreak(breaks bool, children ...Doc) Doc {
	return Doc{Kind: GroupKind, Children: children, Breaks: breaks}
}

// IfBreak renders then when the nearest enclosing group broke, or els otherwise.
func IfBreak(then Doc, els Doc) Doc {
	return Doc{Kind: IfBreakKind, Then: &then, Else: &els}
}

// IfBreakThen is IfBreak with an empty else branch.
func IfBreakThen(then Doc) Doc {
	return IfBreak(then, Empty)
}

// BreakParentDoc is a sentinel that forces the nearest enclosing group, and every ancestor group
// up to the root, into break mode.
var BreakParentDoc = Doc{Kind: BreakParentKind}

// Array concatenates children with no group semantics of its own.
func Array(children ...Doc) Doc {
	return Doc{Kind: ArrayKind, Children: children}
}

// Join concatenates docs, interspersing sep between each pair.
func Join(sep Doc, docs ...Doc) Doc {
	if len(docs) == 0 {
		return Empty
	}
	children := make([]Doc, 0, len(docs)*2-1)
	for i, d := range docs {
		if i > 0 {
			children = append(children, sep)
		}
		children = append(children, d)
	}
	return Array(children...)
}
