package script

import (
	"github.com/alecthomas/participle/v2/lexer"
)

// ScriptLexer defines the tokens of a gesture script. Keywords are plain
// identifiers matched by value in the grammar.
var ScriptLexer = lexer.MustSimple([]lexer.SimpleRule{
	// Comments run from # to end of line
	{Name: "Comment", Pattern: `#[^\n]*`},

	{Name: "Whitespace", Pattern: `[\s]+`},

	{Name: "String", Pattern: `"(?:[^"\\]|\\.)*"`},

	{Name: "Number", Pattern: `[-+]?[0-9]+(?:\.[0-9]+)?`},

	// Component kinds, e.g. resistor/zigzag or label/gnd
	{Name: "Kind", Pattern: `[a-z]+/[a-z]+`},

	{Name: "Ident", Pattern: `[a-zA-Z_][a-zA-Z0-9_]*`},

	{Name: "Punct", Pattern: `[(),]`},
})
