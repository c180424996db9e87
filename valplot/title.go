// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package valplot

import (
	"fmt"
	"strings"

	"cogentcore.org/geoval/dsmeta"
)

// MapTitle returns the title for a single-variable map plot.
func MapTitle(v dsmeta.Var) string {
	return fmt.Sprintf("Comparing %s (%s) to %s (%s)",
		v.RefPretty, v.RefVersionPretty, v.DatasetPretty, v.VersionPretty)
}

// ComparisonTitle returns the title for a multi-dataset comparison,
// wrapping onto new lines whenever a line would exceed maxLen, and
// joining the dataset names with ", " and a final " and ".
func ComparisonTitle(refPretty string, names []string, maxLen int) string {
	lines := []string{fmt.Sprintf("Comparing %s to ", refPretty)}
	for _, nm := range names {
		ap := nm + ", "
		last := len(lines) - 1
		if len(lines[last])+len(ap) <= maxLen {
			lines[last] += ap
		} else {
			lines = append(lines, ap)
		}
	}
	ttl := strings.TrimSuffix(strings.Join(lines, "\n"), ", ")
	if i := strings.LastIndex(ttl, ", "); i >= 0 {
		rest := ttl[i+2:]
		if strings.HasPrefix(rest, "\n") {
			ttl = ttl[:i] + "\nand " + rest[1:]
		} else {
			ttl = ttl[:i] + " and " + rest
		}
	}
	return ttl
}
