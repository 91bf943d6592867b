// Copyright 2024 Trailmux. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package route

import "strings"

// Bind is the inside of a "{name}" or "{name:spec}" placeholder. The Spec
// is empty for a bare "{name}", a type tag such as "digit", or a custom
// regex body.
type Bind struct {
	Name string `parser:"@Ident"`
	Spec string `parser:"( ':' @(Expr | Ident | ':')+ )?"`
}

// Fragment is either a run of literal bytes or a single placeholder.
type Fragment struct {
	Literal *string `parser:"  @Text"`
	Bind    *Bind   `parser:"| '{' @@ '}'"`
}

// Pattern is the parsed form of a route pattern: literal runs and
// placeholders in source order.
type Pattern struct {
	Fragments []Fragment `parser:"@@+"`
}

func (b *Bind) String() string {
	if b.Spec == "" {
		return "{" + b.Name + "}"
	}
	return "{" + b.Name + ":" + b.Spec + "}"
}

func (f *Fragment) String() string {
	if f.Literal != nil {
		return *f.Literal
	}
	return f.Bind.String()
}

func (p *Pattern) String() string {
	var sb strings.Builder
	for i := range p.Fragments {
		sb.WriteString(p.Fragments[i].String())
	}
	return sb.String()
}

// IsStatic reports whether the pattern contains no placeholders.
func (p *Pattern) IsStatic() bool {
	for i := range p.Fragments {
		if p.Fragments[i].Bind != nil {
			return false
		}
	}
	return true
}
