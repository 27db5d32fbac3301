// Copyright ©2026 Dan Kortschak. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package oases

import (
	"bufio"
	"fmt"
	"io"
	"math"
	"strconv"
	"strings"
)

// Coverage maps assembly graph node IDs to their coverage. Nodes
// with undefined or infinite coverage are not present.
type Coverage map[int]float64

// stats.txt columns used to build a Coverage.
const (
	nodeField     = 0
	coverageField = 6

	numStatsFields = coverageField + 1
)

// ReadCoverage returns the node coverage table held in the Oases
// stats.txt data in r. The first line is a column header and is
// discarded.
func ReadCoverage(r io.Reader) (Coverage, error) {
	cov := make(Coverage)
	sc := bufio.NewScanner(r)
	for line := 1; sc.Scan(); line++ {
		if line == 1 {
			continue
		}
		text := strings.TrimSpace(sc.Text())
		if text == "" {
			continue
		}
		fields := strings.Split(text, "\t")
		if len(fields) < numStatsFields {
			return nil, fmt.Errorf("oases: too few fields in stats line %d: %q", line, text)
		}
		id, err := strconv.Atoi(fields[nodeField])
		if err != nil {
			return nil, fmt.Errorf("oases: failed to parse node id on stats line %d: %v", line, err)
		}
		c, err := strconv.ParseFloat(fields[coverageField], 64)
		if err != nil {
			return nil, fmt.Errorf("oases: failed to parse coverage on stats line %d: %v", line, err)
		}
		if math.IsInf(c, 0) || math.IsNaN(c) {
			continue
		}
		if c < 0 {
			return nil, fmt.Errorf("oases: negative coverage on stats line %d: %v", line, c)
		}
		cov[id] = c
	}
	return cov, sc.Err()
}
