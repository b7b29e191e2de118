// Package php is the top-level entry point of the formatter: it wires package formatter's
// node formatters to package layout's renderer, the same way dot.go wires the DOT scanner and
// parser to printer.Printer for the teacher module. The PHP lexer/parser is out of scope (see
// spec.md §1) — FormatProgram takes an already-built phpast.Program rather than source bytes.
package php

import (
	"strings"

	"github.com/teleivo/phpfmt/comment"
	"github.com/teleivo/phpfmt/formatter"
	"github.com/teleivo/phpfmt/layout"
	"github.com/teleivo/phpfmt/phpast"
)

// FormatProgram formats program per settings, using comments to resolve comment attachment, and
// returns the formatted source. The result always ends with exactly one trailing newline and no
// trailing whitespace on any line, per spec.md §6.
func FormatProgram(program phpast.Program, settings formatter.Settings, comments *comment.Index) (string, error) {
	if comments == nil {
		comments = comment.NewIndex(nil, nil)
	}

	ctx := formatter.NewContext(settings, comments)
	doc := ctx.Format(program)

	out := layout.Render(doc, layout.Options{
		PrintWidth:  settings.PrintWidth,
		IndentWidth: settings.TabWidth,
		UseTabs:     settings.UseTabs,
	})

	return trimTrailingWhitespace(out), nil
}

// trimTrailingWhitespace strips trailing spaces/tabs from every line and ensures the result ends
// in exactly one newline, a final cleanup pass formatProgram's own trailing Hardline already
// makes mostly redundant but which guards against a node formatter that leaves stray padding
// before a broken Line renders as a newline.
func trimTrailingWhitespace(s string) string {
	lines := strings.Split(s, "\n")
	for i, l := range lines {
		lines[i] = strings.TrimRight(l, " \t")
	}
	return strings.TrimRight(strings.Join(lines, "\n"), "\n") + "\n"
}
