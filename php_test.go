package php_test

import (
	"testing"

	"github.com/teleivo/assertive/assert"
	php "github.com/teleivo/phpfmt"
	"github.com/teleivo/phpfmt/comment"
	"github.com/teleivo/phpfmt/formatter"
	"github.com/teleivo/phpfmt/phpast"
)

func TestFormatProgram(t *testing.T) {
	tests := map[string]struct {
		program phpast.Program
		want    string
	}{
		"EmptyProgram": {
			program: phpast.Program{},
			want:    "\n",
		},
		"SingleEchoStatement": {
			program: phpast.Program{
				Statements: []phpast.Statement{
					phpast.Echo{Values: []phpast.Expression{phpast.Literal{Raw: `"hi"`}}},
				},
			},
			want: "echo \"hi\";\n",
		},
	}

	for name, test := range tests {
		t.Run(name, func(t *testing.T) {
			got, err := php.FormatProgram(test.program, formatter.DefaultSettings(), comment.NewIndex(nil, nil))

			assert.NoErrorf(t, err, "FormatProgram()")
			assert.EqualValuesf(t, got, test.want, "FormatProgram()")
		})
	}
}
