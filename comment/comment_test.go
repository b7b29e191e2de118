package comment_test

import (
	"testing"

	"github.com/teleivo/assertive/assert"
	"github.com/teleivo/phpfmt/comment"
	"github.com/teleivo/phpfmt/document"
	"github.com/teleivo/phpfmt/phpast"
)

func TestIndexHasComment(t *testing.T) {
	tests := map[string]struct {
		comments []comment.Comment
		span     phpast.Span
		flags    comment.Flags
		want     bool
	}{
		"NoComments": {
			comments: nil,
			span:     phpast.Span{Start: 0, End: 10},
			flags:    comment.Leading,
			want:     false,
		},
		"MatchingLeadingComment": {
			comments: []comment.Comment{
				{Span: phpast.Span{Start: 2, End: 8}, Kind: comment.Line, Flags: comment.Leading, Text: "// hi"},
			},
			span:  phpast.Span{Start: 0, End: 10},
			flags: comment.Leading,
			want:  true,
		},
		"CommentPresentButWrongFlag": {
			comments: []comment.Comment{
				{Span: phpast.Span{Start: 2, End: 8}, Kind: comment.Line, Flags: comment.Trailing, Text: "// hi"},
			},
			span:  phpast.Span{Start: 0, End: 10},
			flags: comment.Leading,
			want:  false,
		},
		"CommentOutsideSpan": {
			comments: []comment.Comment{
				{Span: phpast.Span{Start: 20, End: 25}, Kind: comment.Line, Flags: comment.Leading, Text: "// hi"},
			},
			span:  phpast.Span{Start: 0, End: 10},
			flags: comment.Leading,
			want:  false,
		},
	}

	for name, test := range tests {
		t.Run(name, func(t *testing.T) {
			ix := comment.NewIndex(test.comments, nil)

			got := ix.HasComment(test.span, test.flags)

			assert.EqualValuesf(t, got, test.want, "HasComment()")
		})
	}
}

func TestIndexIsNextLineEmpty(t *testing.T) {
	ix := comment.NewIndex(nil, map[int]bool{10: true})

	assert.EqualValuesf(t, ix.IsNextLineEmpty(phpast.Span{Start: 0, End: 10}), true, "IsNextLineEmpty(end=10)")
	assert.EqualValuesf(t, ix.IsNextLineEmpty(phpast.Span{Start: 0, End: 11}), false, "IsNextLineEmpty(end=11)")
}

func TestPrintDanglingComments(t *testing.T) {
	t.Run("NoDanglingComments", func(t *testing.T) {
		ix := comment.NewIndex(nil, nil)

		_, ok := ix.PrintDanglingComments(phpast.Span{Start: 0, End: 10}, false)

		assert.EqualValuesf(t, ok, false, "ok")
	})

	t.Run("SingleDanglingCommentNotIndented", func(t *testing.T) {
		ix := comment.NewIndex([]comment.Comment{
			{Span: phpast.Span{Start: 2, End: 8}, Kind: comment.Line, Flags: comment.Dangling, Text: "// only"},
		}, nil)

		got, ok := ix.PrintDanglingComments(phpast.Span{Start: 0, End: 10}, false)

		assert.EqualValuesf(t, ok, true, "ok")
		assert.EqualValuesf(t, got, document.Array(document.Text("// only")), "doc")
	})

	t.Run("MarksCommentsAsEmittedSoASecondCallFindsNone", func(t *testing.T) {
		ix := comment.NewIndex([]comment.Comment{
			{Span: phpast.Span{Start: 2, End: 8}, Kind: comment.Line, Flags: comment.Dangling, Text: "// only"},
		}, nil)

		ix.PrintDanglingComments(phpast.Span{Start: 0, End: 10}, false)
		_, ok := ix.PrintDanglingComments(phpast.Span{Start: 0, End: 10}, false)

		assert.EqualValuesf(t, ok, false, "ok on second call")
	})

	t.Run("IndentedWrapsWithLeadingHardline", func(t *testing.T) {
		ix := comment.NewIndex([]comment.Comment{
			{Span: phpast.Span{Start: 2, End: 8}, Kind: comment.Line, Flags: comment.Dangling, Text: "// only"},
		}, nil)

		got, ok := ix.PrintDanglingComments(phpast.Span{Start: 0, End: 10}, true)

		assert.EqualValuesf(t, ok, true, "ok")
		assert.EqualValuesf(t, got, document.Indent(document.Hardline(), document.Array(document.Text("// only"))), "doc")
	})

	t.Run("MultipleCommentsSeparatedByHardlineExceptLast", func(t *testing.T) {
		ix := comment.NewIndex([]comment.Comment{
			{Span: phpast.Span{Start: 2, End: 4}, Kind: comment.Line, Flags: comment.Dangling, Text: "// a"},
			{Span: phpast.Span{Start: 5, End: 7}, Kind: comment.Line, Flags: comment.Dangling, Text: "// b"},
		}, nil)

		got, ok := ix.PrintDanglingComments(phpast.Span{Start: 0, End: 10}, false)

		assert.EqualValuesf(t, ok, true, "ok")
		want := document.Array(
			document.Text("// a"),
			document.Hardline(),
			document.Text("// b"),
		)
		assert.EqualValuesf(t, got, want, "doc")
	})
}

func TestFormatLineComment(t *testing.T) {
	tests := map[string]struct {
		in   string
		want string
	}{
		"SlashSlashWithoutSpace": {in: "//hi", want: "// hi"},
		"SlashSlashWithSpace":    {in: "// hi", want: "// hi"},
		"SlashSlashEmpty":        {in: "//", want: "//"},
		"HashWithoutSpace":       {in: "#hi", want: "# hi"},
		"HashWithSpace":          {in: "# hi", want: "# hi"},
	}

	for name, test := range tests {
		t.Run(name, func(t *testing.T) {
			got := comment.Format(test.in, comment.Line)

			assert.EqualValuesf(t, got, test.want, "Format(%q)", test.in)
		})
	}
}
