// Copyright 2024 Trailmux. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package route

import (
	"github.com/alecthomas/participle/v2"
	"github.com/alecthomas/participle/v2/lexer"
	"github.com/pkg/errors"
)

// Parser is a pattern parser using a stateful lexer. The lexer switches
// into the "Bind" mode between braces, which is what rejects a path
// separator inside a placeholder: "Bind" has no rule for "/".
type Parser struct {
	parser *participle.Parser[Pattern]
}

// Parse parses and returns a single pattern.
func (p *Parser) Parse(s string) (*Pattern, error) {
	if s == "" {
		return nil, errors.New("empty pattern")
	}
	return p.parser.ParseString("", s)
}

// NewParser creates and returns a new Parser.
func NewParser() (*Parser, error) {
	l, err := lexer.New(
		lexer.Rules{
			"Root": {
				{Name: "Text", Pattern: `[^{}]+`},
				{Name: "Bind", Pattern: `{`, Action: lexer.Push("Bind")},
			},
			"Bind": {
				{Name: "BindEnd", Pattern: `}`, Action: lexer.Pop()},
				{Name: "Colon", Pattern: `:`},
				{Name: "Ident", Pattern: `[a-zA-Z_][a-zA-Z0-9_]*`},
				// Everything else up to the closing brace is regex body
				// text. "/" is deliberately absent so that an unclosed
				// placeholder fails at the next path separator.
				{Name: "Expr", Pattern: `[^}/]+`},
			},
		},
	)
	if err != nil {
		return nil, errors.Wrap(err, "new lexer")
	}

	parser, err := participle.Build[Pattern](
		participle.Lexer(l),
		participle.UseLookahead(2),
	)
	if err != nil {
		return nil, errors.Wrap(err, "build parser")
	}

	return &Parser{parser: parser}, nil
}
