// Copyright 2024 Trailmux. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package trailmux

import (
	"fmt"
	"io"
	"sort"
	"strings"

	"github.com/trailmux/trailmux/internal/route"
)

// Dump writes an indented rendering of the routing tree to w, one edge
// per line in match order. Terminal nodes list their payload keys.
func (r *Router) Dump(w io.Writer) {
	r.tree.Walk(func(depth int, pattern string, payload route.Payload) {
		indent := strings.Repeat("    ", depth)
		if payload == nil {
			fmt.Fprintf(w, "%s%q\n", indent, pattern)
			return
		}

		keys := make([]string, 0, len(payload))
		for k := range payload {
			keys = append(keys, k)
		}
		sort.Strings(keys)
		fmt.Fprintf(w, "%s%q => [%s]\n", indent, pattern, strings.Join(keys, ", "))
	})
}
