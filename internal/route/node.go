// Copyright 2024 Trailmux. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package route

// Payload is the opaque mapping attached to a terminal node. Repeated
// adds on the same pattern merge key by key.
type Payload map[string]any

// Params is the set of placeholder values captured during a match.
type Params map[string]string

// Node is a vertex of the routing tree. Its edge list keeps literal
// edges grouped in front of placeholder edges, and placeholder edges in
// insertion order relative to one another; lookup relies on both.
type Node struct {
	edges    []*Edge
	literals int // count of literal edges at the front of the list
	payload  Payload
}

// findLiteralEdge returns the literal edge whose pattern starts with b.
// At most one such edge exists: overlapping literal edges are merged at
// insertion time.
func (n *Node) findLiteralEdge(b byte) *Edge {
	for _, e := range n.edges[:n.literals] {
		if e.pattern[0] == b {
			return e
		}
	}
	return nil
}

// findPlaceholderEdge returns the placeholder edge carrying exactly the
// given token, matching on byte-identical name and spec.
func (n *Node) findPlaceholderEdge(token string) *Edge {
	for _, e := range n.edges[n.literals:] {
		if e.pattern == token {
			return e
		}
	}
	return nil
}

// placeholders returns the placeholder edges in insertion order.
func (n *Node) placeholders() []*Edge {
	return n.edges[n.literals:]
}

// insertEdge adds the edge to the node. Literal edges slot in before the
// first placeholder edge; placeholder edges append at the end.
func (n *Node) insertEdge(e *Edge) {
	if e.kind != edgeLiteral {
		n.edges = append(n.edges, e)
		return
	}
	n.edges = append(n.edges, nil)
	copy(n.edges[n.literals+1:], n.edges[n.literals:])
	n.edges[n.literals] = e
	n.literals++
}

// mergePayload updates the node's payload key by key: new keys are
// added, existing keys are overwritten, other keys are preserved. An
// empty payload leaves the node unchanged, so it does not make the node
// terminal.
func (n *Node) mergePayload(payload Payload) {
	if len(payload) == 0 {
		return
	}
	if n.payload == nil {
		n.payload = make(Payload, len(payload))
	}
	for k, v := range payload {
		n.payload[k] = v
	}
}
