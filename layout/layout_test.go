package layout_test

import (
	"testing"

	"github.com/teleivo/assertive/assert"
	"github.com/teleivo/phpfmt/document"
	"github.com/teleivo/phpfmt/layout"
)

func TestRender(t *testing.T) {
	opts := layout.Options{PrintWidth: 10, IndentWidth: 1}

	tests := map[string]struct {
		opts layout.Options
		in   document.Doc
		want string
	}{
		"EmptyDoc": {
			opts: opts,
			in:   document.Empty,
			want: "",
		},
		"EmptyGroup": {
			opts: opts,
			in:   document.Group(),
			want: "",
		},
		"RootDocIsConsideredBroken": {
			opts: layout.Options{PrintWidth: 80, IndentWidth: 1},
			in:   document.Softline(),
			want: "\n",
		},
		"GroupDoesNotBreakIfWithinPrintWidth": {
			opts: opts,
			in: document.Group(
				document.Text("01234"),
				document.Softline(),
				document.Text("56789"),
			),
			want: "0123456789",
		},
		"GroupBreaksIfExceedsPrintWidth": {
			opts: opts,
			in: document.Group(
				document.Text("01234"),
				document.Softline(),
				document.Text("56789a"),
			),
			want: "01234\n56789a",
		},
		"IndentAddsIndentationAfterBreak": {
			opts: opts,
			in: document.Group(
				document.Text("01234"),
				document.Indent(
					document.Softline(),
					document.Text("world56"),
				),
			),
			want: "01234\n world56",
		},
		"HardlineAlwaysBreaksItsGroup": {
			opts: opts,
			in: document.Group(
				document.Text("ab"),
				document.Hardline(),
				document.Text("cd"),
			),
			want: "ab\ncd",
		},
		"BreakParentForcesAncestorGroupsToBreak": {
			opts: opts,
			in: document.Group(
				document.Text("outer"),
				document.Group(
					document.Softline(),
					document.BreakParentDoc,
				),
				document.Softline(),
				document.Text("tail"),
			),
			want: "outer\n\ntail",
		},
		"IfBreakSelectsThenBranchWhenBroken": {
			opts: opts,
			in: document.Group(
				document.Text("01234567890"),
				document.IfBreak(document.Text(","), document.Empty),
			),
			want: "01234567890,",
		},
		"IfBreakSelectsElseBranchWhenFlat": {
			opts: opts,
			in: document.Group(
				document.Text("ab"),
				document.IfBreak(document.Text(","), document.Text(";")),
			),
			want: "ab;",
		},
		"SpaceRendersAsSingleSpaceWhenFlat": {
			opts: opts,
			in: document.Group(
				document.Text("a"),
				document.Space(),
				document.Text("b"),
			),
			want: "a b",
		},
		"TrailingSpaceBeforeBreakIsNotWritten": {
			opts: opts,
			in: document.Array(
				document.Group(
					document.Text("a"),
					document.Space(),
				),
				document.Hardline(),
				document.Text("b"),
			),
			want: "a\nb",
		},
		"NestedGroupFlatWithinBrokenOuter": {
			opts: layout.Options{PrintWidth: 10, IndentWidth: 1},
			in: document.Group(
				document.Text("aaaaaaaaaaaa"),
				document.Hardline(),
				document.Group(
					document.Text("x"),
					document.Softline(),
					document.Text("y"),
				),
			),
			want: "aaaaaaaaaaaa\nxy",
		},
		"GroupFitCheckUsesIndentWidthNotNestingLevel": {
			opts: layout.Options{PrintWidth: 10, IndentWidth: 4},
			in: document.Group(
				document.Text("aa"),
				document.Indent(
					document.Hardline(),
					document.Group(
						document.Text("xxxxxxx"),
						document.Softline(),
						document.Text("yy"),
					),
				),
			),
			want: "aa\n    xxxxxxx\n    yy",
		},
	}

	for name, test := range tests {
		t.Run(name, func(t *testing.T) {
			got := layout.Render(test.in, test.opts)

			assert.EqualValuesf(t, got, test.want, "Render()")
		})
	}
}
