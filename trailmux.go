// Copyright 2024 Trailmux. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

// Package trailmux implements a high-performance URL router. Patterns
// are indexed in a compact radix trie over literal path bytes, augmented
// with typed placeholder edges backed by regular expressions. A pattern
// carries an opaque payload; matching a concrete path returns the
// payload together with the values captured by its placeholders.
//
// Placeholders are written "{name}" or "{name:spec}", where spec is a
// type tag (string, digit, alpha, alnum, path, any) or a custom regex:
//
//	r := trailmux.New()
//	_ = r.Add("/users/{id:digit}", trailmux.Payload{"handler": listUser})
//	payload, params, ok := r.Match("/users/42") // params["id"] == "42"
//
// The router follows the build-once, read-many pattern: complete all Add
// calls before matching, then share it freely across readers.
package trailmux

import (
	"io"

	"github.com/charmbracelet/log"
	"github.com/pkg/errors"

	"github.com/trailmux/trailmux/internal/route"
)

// Payload is the opaque mapping associated with a pattern. Adding the
// same pattern twice merges payloads key by key, later values winning.
type Payload map[string]any

// Params holds the values captured by placeholders during a match,
// keyed by placeholder name. Captured bytes are returned exactly as they
// appear in the path.
type Params map[string]string

// ErrInvalidRoute is returned by Add for malformed patterns: unbalanced
// braces, a path separator inside a placeholder, an empty name or spec,
// or an uncompilable custom regex. Use errors.Is to detect it.
var ErrInvalidRoute = errors.New("invalid route")

// Router indexes URL path patterns and matches request paths against
// them. The zero value is not usable; create instances with New or
// NewWithLogger.
type Router struct {
	parser *route.Parser
	tree   *route.Tree
	logger *log.Logger
}

// NewWithLogger creates and returns an empty Router that writes debug
// logs to w. Use this function if you want to observe route
// registration; otherwise use New.
func NewWithLogger(w io.Writer) *Router {
	parser, err := route.NewParser()
	if err != nil {
		panic("new parser: " + err.Error())
	}
	logger := log.New(w)
	logger.SetLevel(log.DebugLevel)
	return &Router{
		parser: parser,
		tree:   route.NewTree(),
		logger: logger,
	}
}

// New creates and returns an empty Router that discards logs.
func New() *Router {
	return NewWithLogger(io.Discard)
}

// Logger returns the Router's logger for level adjustments.
func (r *Router) Logger() *log.Logger {
	return r.logger
}

// Add registers the pattern and merges payload into its terminal node.
// It returns an error wrapping ErrInvalidRoute when the pattern is
// malformed; the Router stays usable after a failed Add.
func (r *Router) Add(pattern string, payload Payload) error {
	p, err := r.parser.Parse(pattern)
	if err != nil {
		return errors.Wrapf(ErrInvalidRoute, "parse %q: %v", pattern, err)
	}
	if err = r.tree.Add(p, route.Payload(payload)); err != nil {
		return errors.Wrapf(ErrInvalidRoute, "add %q: %v", pattern, err)
	}

	r.logger.Debug("route added", "pattern", pattern)
	return nil
}

// Match looks up path and returns the matching payload with the
// captured placeholder values. On a miss it returns (nil, nil, false),
// never an error.
func (r *Router) Match(path string) (Payload, Params, bool) {
	payload, params, ok := r.tree.Match(path)
	if !ok {
		return nil, nil, false
	}
	return Payload(payload), Params(params), true
}
