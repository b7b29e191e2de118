package document_test

import (
	"testing"

	"github.com/teleivo/assertive/assert"
	"github.com/teleivo/phpfmt/document"
)

func TestJoin(t *testing.T) {
	tests := map[string]struct {
		sep  document.Doc
		docs []document.Doc
		want document.Doc
	}{
		"NoDocs": {
			sep:  document.Text(","),
			docs: nil,
			want: document.Empty,
		},
		"OneDoc": {
			sep:  document.Text(","),
			docs: []document.Doc{document.Text("a")},
			want: document.Array(document.Text("a")),
		},
		"MultipleDocs": {
			sep:  document.Text(","),
			docs: []document.Doc{document.Text("a"), document.Text("b"), document.Text("c")},
			want: document.Array(
				document.Text("a"),
				document.Text(","),
				document.Text("b"),
				document.Text(","),
				document.Text("c"),
			),
		},
	}

	for name, test := range tests {
		t.Run(name, func(t *testing.T) {
			got := document.Join(test.sep, test.docs...)

			assert.EqualValuesf(t, got, test.want, "Join()")
		})
	}
}

func TestIfBreakThen(t *testing.T) {
	got := document.IfBreakThen(document.Text(","))

	assert.EqualValuesf(t, *got.Then, document.Text(","), "then branch")
	assert.EqualValuesf(t, *got.Else, document.Empty, "else branch")
}
