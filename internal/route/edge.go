// Copyright 2024 Trailmux. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package route

import (
	"regexp"
	"strings"
	"sync"

	"github.com/pkg/errors"
)

// edgeKind discriminates the two edge variants.
type edgeKind int8

const (
	edgeLiteral edgeKind = iota
	edgePlaceholder
)

// typeExpansions maps placeholder type tags to regex bodies. A spec that
// is not a known tag is used verbatim as a regex body.
var typeExpansions = map[string]string{
	"":       `[^/]+`,
	"string": `[^/]+`,
	"digit":  `\d+`,
	"alpha":  `[\p{L}]+`,
	"alnum":  `[\p{L}\p{N}]+`,
	"path":   `.*`,
	"any":    `.*`,
}

// Edge is an outbound arc of a node. A literal edge carries a run of
// literal bytes; a placeholder edge carries exactly one "{name}" or
// "{name:spec}" token. The pattern is immutable except that a split trims
// the prefix of a literal edge.
type Edge struct {
	pattern string // literal bytes, or the placeholder token
	kind    edgeKind
	name    string         // placeholder bind name
	spec    string         // type tag or custom regex body
	re      *regexp.Regexp // compiled on first match, at most once
	once    sync.Once      // guards re for concurrent readers
	child   *Node
}

func newLiteralEdge(literal string, child *Node) *Edge {
	return &Edge{
		pattern: literal,
		kind:    edgeLiteral,
		child:   child,
	}
}

func newPlaceholderEdge(b *Bind, child *Node) *Edge {
	return &Edge{
		pattern: b.String(),
		kind:    edgePlaceholder,
		name:    b.Name,
		spec:    b.Spec,
		child:   child,
	}
}

// expansion returns the regex body for the given spec.
func expansion(spec string) string {
	if body, ok := typeExpansions[spec]; ok {
		return body
	}
	return spec
}

// anchored wraps a regex body so it matches only a prefix of the input,
// starting at position 0.
func anchored(body string) string {
	return `\A(?:` + body + `)`
}

// checkBind verifies that the placeholder's matcher compiles. Called
// during insertion so that an uncompilable custom regex fails the add,
// not a later match.
func checkBind(b *Bind) error {
	_, err := regexp.Compile(anchored(expansion(b.Spec)))
	return errors.Wrapf(err, "compile placeholder %q", b.String())
}

// compile returns the edge's matcher, building it on the first call. The
// spec was compile-checked at insertion, so failure here is impossible.
func (e *Edge) compile() *regexp.Regexp {
	e.once.Do(func() {
		e.re = regexp.MustCompile(anchored(expansion(e.spec)))
	})
	return e.re
}

// matchAgainst matches the edge against path at offset. For a literal
// edge the pattern must equal the next len(pattern) bytes. For a
// placeholder edge the matcher runs once against the remaining input and
// the matched prefix becomes the captured value; there is no second try
// with a shorter capture.
func (e *Edge) matchAgainst(path string, offset int) (advance int, value string, ok bool) {
	rest := path[offset:]
	if e.kind == edgeLiteral {
		if !strings.HasPrefix(rest, e.pattern) {
			return 0, "", false
		}
		return len(e.pattern), "", true
	}

	loc := e.compile().FindStringIndex(rest)
	if loc == nil {
		return 0, "", false
	}
	return loc[1], rest[:loc[1]], true
}

// split divides a literal edge after n bytes and returns the new
// intermediate node. The edge keeps the common prefix and the previous
// child moves under a new edge carrying the suffix, payload and subtree
// intact. Placeholder edges are never split: their pattern is a single
// indivisible token.
func (e *Edge) split(n int) *Node {
	next := &Node{}
	next.insertEdge(newLiteralEdge(e.pattern[n:], e.child))
	e.pattern = e.pattern[:n]
	e.child = next
	return next
}
