package main

import (
	"errors"

	"github.com/teleivo/phpfmt/comment"
	"github.com/teleivo/phpfmt/phpast"
)

// errNoParser is returned by unimplementedParse: the PHP lexer/parser is an external
// collaborator out of this module's scope (spec.md §1). drive.ParseFunc is the seam a real
// build of this CLI would plug an upstream parser into; this module's own tests exercise
// drive and php.FormatProgram directly against hand-built phpast.Program fixtures instead (see
// DESIGN.md, "Open Questions").
var errNoParser = errors.New("phpfmt: no PHP parser wired in; this module implements only the" +
	" layout engine and AST-to-Document lowering (see spec.md §1 Non-goals)")

func unimplementedParse(_ []byte) (phpast.Program, *comment.Index, error) {
	return phpast.Program{}, nil, errNoParser
}
