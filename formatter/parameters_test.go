package formatter_test

import (
	"testing"

	"github.com/teleivo/assertive/assert"
	"github.com/teleivo/phpfmt/comment"
	"github.com/teleivo/phpfmt/formatter"
	"github.com/teleivo/phpfmt/phpast"
)

// TestFunctionLikeParameterListHugging exercises §4.4.3's "hug the only parameter" predicate and
// the promoted-properties break policy that disables it.
func TestFunctionLikeParameterListHugging(t *testing.T) {
	settings := formatter.DefaultSettings()

	tests := map[string]struct {
		params []phpast.Parameter
		want   string
	}{
		"SingleParameterHugs": {
			params: []phpast.Parameter{{Name: variable("x")}},
			want:   "function f($x) {\n}",
		},
		"TwoParametersNeverHug": {
			params: []phpast.Parameter{{Name: variable("x")}, {Name: variable("y")}},
			want:   "function f($x, $y) {\n}",
		},
		"PromotedPropertyDisablesHugAndForcesBreak": {
			params: []phpast.Parameter{
				{Name: variable("x"), Modifiers: []phpast.Modifier{{Keyword: "private"}}},
			},
			want: "function f(\n    private $x,\n) {\n}",
		},
	}

	for name, test := range tests {
		t.Run(name, func(t *testing.T) {
			c := formatter.NewContext(settings, noComments())
			fn := phpast.FunctionDeclaration{
				Name:       phpast.Identifier{Name: "f"},
				Parameters: phpast.FunctionLikeParameterList{Parameters: test.params},
				Body:       phpast.Block{},
			}

			got := render(c, fn, settings)

			assert.EqualValuesf(t, got, test.want, "render()")
		})
	}
}

// TestFunctionLikeParameterListHugSuppressedByComment verifies that a documented single
// parameter is never hugged, per shouldHugTheOnlyParameter's leading-comment check. The print
// width is narrow so that the non-hugged list, which is a Group, does not fit and breaks; a hugged
// list has no Group and would stay on one line at any width.
func TestFunctionLikeParameterListHugSuppressedByComment(t *testing.T) {
	settings := formatter.DefaultSettings()
	settings.PrintWidth = 10
	span := phpast.Span{Start: 0, End: 5}
	idx := comment.NewIndex([]comment.Comment{
		{Span: span, Kind: comment.Line, Flags: comment.Leading, Text: "// x"},
	}, nil)
	c := formatter.NewContext(settings, idx)

	fn := phpast.FunctionDeclaration{
		Name: phpast.Identifier{Name: "f"},
		Parameters: phpast.FunctionLikeParameterList{
			Parameters: []phpast.Parameter{{Name: variable("x"), Pos: span}},
		},
		Body: phpast.Block{},
	}

	got := render(c, fn, settings)

	assert.EqualValuesf(t, got, "function f(\n    $x,\n) {\n}", "render()")
}

// TestFunctionLikeParameterListEmpty verifies that an empty parameter list collapses to a bare
// "()" with no trailing comma regardless of TrailingComma.
func TestFunctionLikeParameterListEmpty(t *testing.T) {
	settings := formatter.DefaultSettings()
	c := formatter.NewContext(settings, noComments())

	fn := phpast.FunctionDeclaration{
		Name: phpast.Identifier{Name: "f"},
		Body: phpast.Block{},
	}

	got := render(c, fn, settings)

	assert.EqualValuesf(t, got, "function f() {\n}", "render()")
}
