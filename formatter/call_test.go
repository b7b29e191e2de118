package formatter_test

import (
	"testing"

	"github.com/teleivo/assertive/assert"
	"github.com/teleivo/phpfmt/formatter"
	"github.com/teleivo/phpfmt/phpast"
)

// TestFormatMethodCallChainSingleLink verifies that a chain of length 1 is not forced to break:
// only chains of length ≥ 2 get an appended BreakParent per §4.4.2.
func TestFormatMethodCallChainSingleLink(t *testing.T) {
	settings := formatter.DefaultSettings()
	c := formatter.NewContext(settings, noComments())

	expr := phpast.ExpressionStatement{Expression: methodCall(variable("a"), "b")}

	got := render(c, expr, settings)

	assert.EqualValuesf(t, got, "$a->b();", "render()")
}

// TestFormatMethodCallChainNextLineStyle checks that the NextLine breaking style puts the first
// link on its own indented line instead of keeping it adjacent to the base.
func TestFormatMethodCallChainNextLineStyle(t *testing.T) {
	settings := formatter.DefaultSettings()
	settings.MethodChainBreakingStyle = formatter.NextLine
	c := formatter.NewContext(settings, noComments())

	expr := phpast.ExpressionStatement{
		Expression: methodCall(methodCall(variable("a"), "b"), "c"),
	}

	got := render(c, expr, settings)

	assert.EqualValuesf(t, got, "$a\n    ->b()\n    ->c();", "render()")
}

// TestFormatMethodCallChainNullSafe checks that a nullsafe link in the middle of a chain renders
// its own operator while the rest of the chain is unaffected.
func TestFormatMethodCallChainNullSafe(t *testing.T) {
	settings := formatter.DefaultSettings()
	c := formatter.NewContext(settings, noComments())

	expr := phpast.ExpressionStatement{
		Expression: phpast.MethodCall{
			Object: phpast.NullSafeMethodCall{
				Object: variable("a"),
				Method: phpast.Identifier{Name: "b"},
			},
			Method: phpast.Identifier{Name: "c"},
		},
	}

	got := render(c, expr, settings)

	assert.EqualValuesf(t, got, "$a?->b()\n    ->c();", "render()")
}

// TestShouldHugTheOnlyArgument mirrors shouldHugTheOnlyParameter's predicate for call arguments:
// a lone closure/array/arrow-function argument hugs the parentheses.
func TestShouldHugTheOnlyArgument(t *testing.T) {
	settings := formatter.DefaultSettings()

	tests := map[string]struct {
		args []phpast.Argument
		want string
	}{
		"ClosureArgumentHugs": {
			args: []phpast.Argument{arg(phpast.Closure{Body: phpast.Block{}})},
			want: "foo(function () {\n});",
		},
		"ArrayArgumentHugs": {
			args: []phpast.Argument{arg(phpast.ArrayExpression{})},
			want: "foo([]);",
		},
		"NamedArgumentNeverHugs": {
			args: []phpast.Argument{
				{Name: &phpast.Identifier{Name: "cb"}, Value: phpast.Closure{Body: phpast.Block{}}},
			},
			want: "foo(cb: function () {\n    });",
		},
	}

	for name, test := range tests {
		t.Run(name, func(t *testing.T) {
			c := formatter.NewContext(settings, noComments())
			call := phpast.ExpressionStatement{
				Expression: phpast.FunctionCall{
					Function:  phpast.Identifier{Name: "foo"},
					Arguments: phpast.ArgumentList{Arguments: test.args},
				},
			}

			got := render(c, call, settings)

			assert.EqualValuesf(t, got, test.want, "render()")
		})
	}
}

// TestFormatArgumentListExpandsFirstCallableArgument checks that a leading closure argument
// followed by simple arguments expands its body in place, e.g. array_map(function ($x) { ... },
// $xs), instead of forcing the whole argument list to break onto its own indented lines.
func TestFormatArgumentListExpandsFirstCallableArgument(t *testing.T) {
	settings := formatter.DefaultSettings()
	c := formatter.NewContext(settings, noComments())

	call := phpast.ExpressionStatement{
		Expression: phpast.FunctionCall{
			Function: phpast.Identifier{Name: "array_map"},
			Arguments: phpast.ArgumentList{
				Arguments: []phpast.Argument{
					arg(phpast.Closure{
						Parameters: phpast.FunctionLikeParameterList{
							Parameters: []phpast.Parameter{{Name: variable("x")}},
						},
						Body: phpast.Block{},
					}),
					arg(variable("xs")),
				},
			},
		},
	}

	got := render(c, call, settings)

	assert.EqualValuesf(t, got, "array_map(function ($x) {\n}, $xs);", "render()")
}
