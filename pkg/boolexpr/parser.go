package boolexpr

import (
	"fmt"
	"strings"

	"github.com/alecthomas/participle/v2"
)

// Grammar, loosest to tightest: Or, Xor and Nor share the outermost
// level and associate left; Nand binds tighter; And tighter still and
// may be written as plain juxtaposition; negation is tightest.

type exprGrammar struct {
	Head *termGrammar `@@`
	Tail []*exprTail  `@@*`
}

type exprTail struct {
	Op  string       `@( OrOp | XorOp | NorOp )`
	RHS *termGrammar `@@`
}

type termGrammar struct {
	Head *factorGrammar `@@`
	Tail []*termTail    `@@*`
}

type termTail struct {
	Op  string         `@NandOp`
	RHS *factorGrammar `@@`
}

type factorGrammar struct {
	Head *atomGrammar  `@@`
	Tail []*factorTail `@@*`
}

// factorTail carries an optional And token; a missing one is the
// implicit And of two juxtaposed atoms.
type factorTail struct {
	Op  string       `@AndOp?`
	RHS *atomGrammar `@@`
}

type atomGrammar struct {
	Neg      *negGrammar   `  @@`
	Constant *string       `| @Const`
	Variable *string       `| @Ident`
	Group    *groupGrammar `| @@`
}

type negGrammar struct {
	Op   string       `@NotOp`
	Atom *atomGrammar `@@`
}

type groupGrammar struct {
	Inner *exprGrammar `LParen @@ RParen`
}

var exprParser = participle.MustBuild[exprGrammar](
	participle.Lexer(ExprLexer),
	participle.Elide("Whitespace"),
	participle.UseLookahead(2),
)

// Parse builds an expression tree from infix text. Malformed input is
// reported as an ErrSyntax-wrapped error; there are no partial results.
func Parse(text string) (Expression, error) {
	if strings.TrimSpace(text) == "" {
		return nil, fmt.Errorf("%w: empty expression", ErrSyntax)
	}
	parsed, err := exprParser.ParseString("", text)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrSyntax, err)
	}
	return parsed.lower(), nil
}

// ParseDefault behaves like Parse but substitutes the default text when
// the input is empty. Used for degenerate terms such as an absent
// don't-care expression.
func ParseDefault(text, defaultText string) (Expression, error) {
	if strings.TrimSpace(text) == "" {
		return Parse(defaultText)
	}
	return Parse(text)
}

func mustLookup(symbol string) Operator {
	op, ok := lookupOperator(symbol)
	if !ok {
		panic(fmt.Sprintf("boolexpr: grammar produced unknown operator %q", symbol))
	}
	return op
}

func (g *exprGrammar) lower() Expression {
	expr := g.Head.lower()
	for _, tail := range g.Tail {
		expr = &Binary{Op: mustLookup(tail.Op), LHS: expr, RHS: tail.RHS.lower()}
	}
	return expr
}

func (g *termGrammar) lower() Expression {
	expr := g.Head.lower()
	for _, tail := range g.Tail {
		expr = &Binary{Op: Nand, LHS: expr, RHS: tail.RHS.lower()}
	}
	return expr
}

func (g *factorGrammar) lower() Expression {
	expr := g.Head.lower()
	for _, tail := range g.Tail {
		expr = &Binary{Op: And, LHS: expr, RHS: tail.RHS.lower()}
	}
	return expr
}

func (g *atomGrammar) lower() Expression {
	switch {
	case g.Neg != nil:
		return &Unary{Op: Not, Operand: g.Neg.Atom.lower()}
	case g.Constant != nil:
		if *g.Constant == "1" {
			return &Constant{Value: 1}
		}
		return &Constant{Value: 0}
	case g.Variable != nil:
		return &Variable{Name: *g.Variable}
	case g.Group != nil:
		return &Paren{Inner: g.Group.Inner.lower()}
	}
	panic("boolexpr: empty atom in parse tree")
}
