// Package layout renders a document.Doc to text, deciding per group whether to lay it out
// inline or broken across lines so that the result respects a configured print width.
//
// The algorithm is a two-pass port of teleivo/dot's internal/layout package (itself a Go port of
// mcyoung's allman, see https://mcyoung.xyz/2025/03/11/formatters/), generalized from that
// package's flat tag-slice representation to document.Doc's recursive sum type, and extended
// with document.BreakParent propagation and document.IfBreak, both absent from the DOT printer
// but present in the design this formatter is based on (mago's document IR).
package layout

import (
	"strings"

	"github.com/teleivo/phpfmt/document"
)

// Options configures rendering.
type Options struct {
	// PrintWidth is the soft maximum column; groups try to stay within it.
	PrintWidth int
	// IndentWidth is the number of spaces per indentation level when UseTabs is false.
	IndentWidth int
	// UseTabs renders one tab character per indentation level instead of IndentWidth spaces.
	UseTabs bool
}

// Render renders doc to a string honoring opts. The root document is considered broken: a Line
// or IfBreak that is not inside any Group renders as if its enclosing context already broke,
// matching both the reference prettier/mago algorithm and teleivo/dot's own
// "RootDocIsConsideredBroken" behavior.
func Render(doc document.Doc, opts Options) string {
	marked, _ := propagateBreaks(doc)

	var st state
	renderDoc(&st, marked, modeBreak, 0, 0, opts)

	return st.buf.String()
}

// mode tracks whether the content currently being rendered is flat (fits on one line) or broken
// (spans multiple lines).
type mode int

const (
	modeFlat mode = iota
	modeBreak
)

// state carries the renderer's mutable output buffer and pending-whitespace bookkeeping. A
// pending space is deferred until it is known not to be trailing (dropped before a newline);
// pending indentation is deferred until the next literal text so that two adjacent hardlines
// (preserving a blank line) never leave trailing spaces on the blank line itself.
type state struct {
	buf            strings.Builder
	pendingSpace   bool
	pendingNewline bool
}

func (s *state) writeNewline() {
	s.pendingSpace = false
	s.buf.WriteByte('\n')
	s.pendingNewline = true
}

func (s *state) writeText(indentLevel int, opts Options, text string) {
	if s.pendingSpace {
		s.buf.WriteByte(' ')
		s.pendingSpace = false
	}
	if s.pendingNewline {
		s.buf.WriteString(indentString(indentLevel, opts))
		s.pendingNewline = false
	}
	s.buf.WriteString(text)
}

func indentString(level int, opts Options) string {
	if level <= 0 {
		return ""
	}
	if opts.UseTabs {
		return strings.Repeat("\t", level)
	}
	return strings.Repeat(" ", level*opts.IndentWidth)
}

// renderDoc renders doc under mode at the given indentLevel, starting at column col, and returns
// the column after rendering.
func renderDoc(s *state, doc document.Doc, m mode, indentLevel, col int, opts Options) int {
	switch doc.Kind {
	case document.EmptyKind, document.BreakParentKind:
		return col

	case document.StringKind:
		s.writeText(indentLevel, opts, doc.Str)
		return col + len(doc.Str)

	case document.LineDocKind:
		return renderLine(s, doc.Line, m, indentLevel, col, opts)

	case document.IndentKind:
		return renderChildren(s, doc.Children, m, indentLevel+1, col, opts)

	case document.ArrayKind:
		return renderChildren(s, doc.Children, m, indentLevel, col, opts)

	case document.IfBreakKind:
		if m == modeBreak {
			return renderDoc(s, *doc.Then, m, indentLevel, col, opts)
		}
		return renderDoc(s, *doc.Else, m, indentLevel, col, opts)

	case document.GroupKind:
		groupMode := modeFlat
		if doc.Breaks || flatWidth(doc)+col > opts.PrintWidth {
			groupMode = modeBreak
		}
		return renderChildren(s, doc.Children, groupMode, indentLevel, col, opts)
	}

	return col
}

func renderChildren(s *state, children []document.Doc, m mode, indentLevel, col int, opts Options) int {
	for _, child := range children {
		col = renderDoc(s, child, m, indentLevel, col, opts)
	}
	return col
}

func renderLine(s *state, kind document.LineKind, m mode, indentLevel, col int, opts Options) int {
	indentCol := indentColumn(indentLevel, opts)
	switch kind {
	case document.SoftLineKind:
		if m == modeFlat {
			return col
		}
		s.writeNewline()
		return indentCol // column resets to the indentation that will be written
	case document.HardLineKind:
		s.writeNewline()
		return indentCol
	default: // DefaultLineKind
		if m == modeFlat {
			s.pendingSpace = true
			return col + 1
		}
		s.writeNewline()
		return indentCol
	}
}

// indentColumn returns the visual column indentLevel lands on: one column per tab when UseTabs,
// IndentWidth columns per level otherwise. flatWidth's col+flatWidth(doc) > PrintWidth check at
// the Group case in renderDoc depends on this being the actual rendered width of indentString,
// not the raw nesting level, or a fit decision after a line break underestimates how much room is
// left on the line.
func indentColumn(level int, opts Options) int {
	if level <= 0 {
		return 0
	}
	if opts.UseTabs {
		return level
	}
	return level * opts.IndentWidth
}

// flatWidth returns the width doc would occupy if every Line rendered flat, measuring nested
// groups as plain concatenated content. It is called on groups whose Breaks is false; after
// propagateBreaks such a group contains no HardLine or BreakParent, but it may still contain a
// descendant group whose caller set Breaks explicitly, and that group is measured as if flat.
func flatWidth(doc document.Doc) int {
	switch doc.Kind {
	case document.EmptyKind, document.BreakParentKind:
		return 0
	case document.StringKind:
		return len(doc.Str)
	case document.LineDocKind:
		if doc.Line == document.DefaultLineKind {
			return 1
		}
		return 0
	case document.IfBreakKind:
		return flatWidth(*doc.Else)
	case document.IndentKind, document.ArrayKind, document.GroupKind:
		w := 0
		for _, c := range doc.Children {
			w += flatWidth(c)
		}
		return w
	}
	return 0
}

// propagateBreaks walks doc bottom-up, marking every Group that transitively contains a
// HardLine or BreakParent as Breaks=true, and reports whether doc itself forces a break. A
// forced break bubbles through every ancestor Group up to the root, not just the nearest
// enclosing one, matching §4.4.2's "append BreakParent so the enclosing group always breaks" and
// the equivalent unconditional aggregation in teleivo/dot's sumWidths.
func propagateBreaks(doc document.Doc) (document.Doc, bool) {
	switch doc.Kind {
	case document.LineDocKind:
		return doc, doc.Line == document.HardLineKind
	case document.BreakParentKind:
		return doc, true
	case document.EmptyKind, document.StringKind:
		return doc, false
	case document.IfBreakKind:
		then, thenForced := propagateBreaks(*doc.Then)
		els, elsForced := propagateBreaks(*doc.Else)
		doc.Then, doc.Else = &then, &els
		return doc, thenForced || elsForced
	case document.IndentKind, document.ArrayKind, document.GroupKind:
		children := make([]document.Doc, len(doc.Children))
		forced := false
		for i, c := range doc.Children {
			marked, childForced := propagateBreaks(c)
			children[i] = marked
			forced = forced || childForced
		}
		doc.Children = children
		if doc.Kind == document.GroupKind {
			doc.Breaks = doc.Breaks || forced
		}
		return doc, forced
	}
	return doc, false
}
