// Package comment indexes the comments of a parsed PHP file and answers the attachment queries
// the node formatters need: whether a span has a comment of a given kind, what dangling comments
// belong to a span, and whether a blank line followed a span in the original source.
//
// The index generalizes the single cursor teleivo/dot's printer keeps over a position-sorted
// comment list (advancing a commentIndex while the next comment starts before the token about to
// be printed) into the richer leading/trailing/dangling contract node formatters need, since
// block and parameter-list formatting must ask about comments *inside* a span, not only "before
// position X".
package comment

import (
	"sort"

	"github.com/teleivo/phpfmt/document"
	"github.com/teleivo/phpfmt/phpast"
)

// Kind distinguishes the three PHP comment syntaxes. Doc is a docblock (`/** ... */`); it is
// tracked separately from Block even though both use `/* */` delimiters. Index queries do not
// filter by Kind (parameter hugging in package formatter asks HasComment for any comment), and
// Format renders Doc the same way as Block.
type Kind int

const (
	Line Kind = iota
	Block
	Doc
)

// Flags selects which attachment(s) a query considers, as a bitset so callers can combine them
// (e.g. Leading|Trailing) the way mago's CommentFlags does.
type Flags int

const (
	Leading Flags = 1 << iota
	Trailing
	Dangling
)

// Comment is one source comment together with its raw text (delimiters included) and its
// classification relative to the node it attaches to.
type Comment struct {
	Span  phpast.Span
	Kind  Kind
	Flags Flags
	Text  string
}

// Index answers comment-attachment queries over a sorted comment list. Emitted comments are
// tracked in a set so a structural decision that calls PrintDanglingComments never prints the
// same comment twice, matching spec's "consulted at most once per structural decision; callers
// must mark comments as printed" contract.
type Index struct {
	comments []Comment
	emitted  map[int]bool
	// blankLineAfter records source offsets immediately followed by a blank line, used by
	// IsNextLineEmpty.
	blankLineAfter map[int]bool
}

// NewIndex builds an Index from comments (any order) and the set of source offsets known to be
// immediately followed by a blank line in the original file.
func NewIndex(comments []Comment, blankLineAfter map[int]bool) *Index {
	sorted := make([]Comment, len(comments))
	copy(sorted, comments)
	sort.Slice(sorted, func(i, j int) bool { return sorted[i].Span.Start < sorted[j].Span.Start })
	return &Index{
		comments:       sorted,
		emitted:        make(map[int]bool),
		blankLineAfter: blankLineAfter,
	}
}

// HasComment reports whether any not-yet-emitted comment matching flags attaches to span.
func (ix *Index) HasComment(span phpast.Span, flags Flags) bool {
	for i, c := range ix.comments {
		if ix.emitted[i] {
			continue
		}
		if c.Span.Start < span.Start || c.Span.End > span.End {
			continue
		}
		if c.Flags&flags != 0 {
			return true
		}
	}
	return false
}

// IsNextLineEmpty reports whether the original source had a blank line immediately after span.
func (ix *Index) IsNextLineEmpty(span phpast.Span) bool {
	return ix.blankLineAfter[span.End]
}

// PrintDanglingComments returns a Document containing every not-yet-emitted Dangling comment
// contained in span, in original relative order, each followed by a hardline except the last. ok
// is false (and doc is the zero Doc) when span has no dangling comments. When indent is true the
// result is wrapped in an Indent preceded by a hardline, for callers that render it in place of a
// block's closing-brace hardline.
func (ix *Index) PrintDanglingComments(span phpast.Span, indent bool) (doc document.Doc, ok bool) {
	idx := ix.commentsIn(span)
	if len(idx) == 0 {
		return document.Empty, false
	}

	parts := make([]document.Doc, 0, len(idx)*2)
	for i, ci := range idx {
		c := ix.comments[ci]
		parts = append(parts, document.Text(Format(c.Text, c.Kind)))
		if i < len(idx)-1 {
			parts = append(parts, document.Hardline())
		}
		ix.emitted[ci] = true
	}

	body := document.Array(parts...)
	if indent {
		return document.Indent(document.Hardline(), body), true
	}
	return body, true
}

// commentsIn returns the indices, in source order, of the not-yet-emitted Dangling comments
// strictly contained in span.
func (ix *Index) commentsIn(span phpast.Span) []int {
	var idx []int
	for i, c := range ix.comments {
		if ix.emitted[i] {
			continue
		}
		if c.Flags&Dangling == 0 {
			continue
		}
		if c.Span.Start < span.Start || c.Span.End > span.End {
			continue
		}
		idx = append(idx, i)
	}
	return idx
}

// Format renders a single comment's text, following printCommentGroup's formatComment in
// grindlemire/go-tui's printer_comments.go, adapted from Go's `//`/`/* */` pair to PHP's `//`,
// `#`, and `/* */` comment syntaxes. Line comments get a single space inserted after a `//` or
// `#` marker that is directly followed by text. Block and Doc comments are returned verbatim,
// since reflowing a docblock's `*`-aligned lines would destroy its layout.
func Format(text string, kind Kind) string {
	if kind != Block && kind != Doc {
		if len(text) >= 1 && text[0] == '#' {
			return formatLineComment(text, "#")
		}
		return formatLineComment(text, "//")
	}
	return formatBlockComment(text)
}

func formatLineComment(text, marker string) string {
	content := text[len(marker):]
	if content == "" || content[0] == ' ' || content[0] == '\t' {
		return text
	}
	return marker + " " + content
}

func formatBlockComment(text string) string {
	if len(text) < 4 {
		return text
	}
	// Every block comment and docblock is kept verbatim, padded or not: PHP docblocks carry
	// meaningful per-line `*` alignment that a generic reflow would destroy.
	return text
}
