// Copyright 2024 Trailmux. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package route

// Tree is the routing tree: a radix trie over literal path bytes with
// placeholder edges backed by regular expressions. It is built once
// under Add and is safe for any number of concurrent readers afterwards;
// Add and Match must not interleave across goroutines.
type Tree struct {
	root *Node

	// static indexes terminal nodes of patterns that contain no
	// placeholders, keyed by the full pattern. Lookup consults it before
	// walking the tree; literal routes win over placeholder routes at
	// every node, so the answer is the same either way.
	static map[string]*Node
}

// NewTree creates and returns an empty Tree.
func NewTree() *Tree {
	return &Tree{
		root:   &Node{},
		static: make(map[string]*Node),
	}
}

// Add inserts the pattern and merges the payload into its terminal node.
func (t *Tree) Add(p *Pattern, payload Payload) error {
	for i := range p.Fragments {
		if b := p.Fragments[i].Bind; b != nil {
			if err := checkBind(b); err != nil {
				return err
			}
		}
	}

	n := t.root
	for i := range p.Fragments {
		f := &p.Fragments[i]
		if f.Bind != nil {
			n = addPlaceholder(n, f.Bind)
			continue
		}
		n = addLiteral(n, *f.Literal)
	}
	n.mergePayload(payload)

	if p.IsStatic() {
		t.static[p.String()] = n
	}
	return nil
}

// addPlaceholder descends into the edge carrying the exact placeholder
// token, creating the edge and its child when absent.
func addPlaceholder(n *Node, b *Bind) *Node {
	if e := n.findPlaceholderEdge(b.String()); e != nil {
		return e.child
	}
	child := &Node{}
	n.insertEdge(newPlaceholderEdge(b, child))
	return child
}

// addLiteral consumes a run of literal bytes, extending the tree and
// splitting existing edges at the longest common prefix where the run
// diverges.
func addLiteral(n *Node, literal string) *Node {
	for literal != "" {
		e := n.findLiteralEdge(literal[0])
		if e == nil {
			child := &Node{}
			n.insertEdge(newLiteralEdge(literal, child))
			return child
		}

		cp := commonPrefixLen(e.pattern, literal)
		if cp < len(e.pattern) {
			e.split(cp)
		}
		n = e.child
		literal = literal[cp:]
	}
	return n
}

func commonPrefixLen(a, b string) int {
	n := 0
	for n < len(a) && n < len(b) && a[n] == b[n] {
		n++
	}
	return n
}

// Match looks up path and returns the matching payload with the captured
// placeholder values, or ok == false when no pattern matches.
func (t *Tree) Match(path string) (Payload, Params, bool) {
	if n, ok := t.static[path]; ok && n.payload != nil {
		return n.payload, make(Params), true
	}

	params := make(Params)
	payload, ok := matchNode(t.root, path, 0, params)
	if !ok {
		return nil, nil, false
	}
	return payload, params, true
}

// matchNode is the ordered backtracking lookup. A node is a hit when the
// cursor is exhausted and it holds a payload, children or not. The
// literal edge is probed first, then placeholder edges in insertion
// order; a capture is undone when its subtree fails.
func matchNode(n *Node, path string, offset int, params Params) (Payload, bool) {
	if offset == len(path) && n.payload != nil {
		return n.payload, true
	}

	if offset < len(path) {
		if e := n.findLiteralEdge(path[offset]); e != nil {
			if advance, _, ok := e.matchAgainst(path, offset); ok {
				if payload, ok := matchNode(e.child, path, offset+advance, params); ok {
					return payload, true
				}
			}
		}
	}

	for _, e := range n.placeholders() {
		advance, value, ok := e.matchAgainst(path, offset)
		if !ok {
			continue
		}

		prev, bound := params[e.name]
		params[e.name] = value
		if payload, ok := matchNode(e.child, path, offset+advance, params); ok {
			return payload, true
		}
		if bound {
			params[e.name] = prev
		} else {
			delete(params, e.name)
		}
	}
	return nil, false
}

// WalkFunc visits one edge during a Walk. The pattern is the edge's
// text, depth its distance from the root, and payload the edge's child
// payload, nil for non-terminal nodes.
type WalkFunc func(depth int, pattern string, payload Payload)

// Walk traverses the tree depth-first in match order. The traversal is
// read-only; it exists so callers can render the tree for debugging.
func (t *Tree) Walk(fn WalkFunc) {
	walkNode(t.root, 0, fn)
}

func walkNode(n *Node, depth int, fn WalkFunc) {
	for _, e := range n.edges {
		fn(depth, e.pattern, e.child.payload)
		walkNode(e.child, depth+1, fn)
	}
}
