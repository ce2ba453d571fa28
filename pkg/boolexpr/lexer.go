package boolexpr

import (
	"github.com/alecthomas/participle/v2/lexer"
)

// ExprLexer defines the token set of the infix expression language.
// Alternate spellings of the same operator share a token so the grammar
// stays operator-agnostic; the parser resolves the spelling afterwards.
var ExprLexer = lexer.MustSimple([]lexer.SimpleRule{
	// Whitespace separates juxtaposed atoms (implicit And)
	{Name: "Whitespace", Pattern: `[ \t\r\n]+`},

	// Binary operators
	{Name: "OrOp", Pattern: `[|+]`},
	{Name: "AndOp", Pattern: `[&*]`},
	{Name: "XorOp", Pattern: `\^`},
	{Name: "NandOp", Pattern: `@`},
	{Name: "NorOp", Pattern: `%`},

	// Negation accepts !, - and ~
	{Name: "NotOp", Pattern: `[!~-]`},

	// Constants before identifiers; identifiers cannot start with a digit
	{Name: "Const", Pattern: `[01]`},
	{Name: "Ident", Pattern: `[a-zA-Z_][a-zA-Z0-9_]*`},

	{Name: "LParen", Pattern: `\(`},
	{Name: "RParen", Pattern: `\)`},
})
