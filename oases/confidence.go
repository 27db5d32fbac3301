// Copyright ©2026 Dan Kortschak. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package oases

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/biogo/biogo/alphabet"
	"gonum.org/v1/gonum/stat"
)

// DefaultConfidence is the confidence given to a transcript
// when none of the nodes on its path have a defined coverage.
const DefaultConfidence = 2.0

// Scores holds transcript confidences and the best confidence
// of eligible transcripts at each locus.
type Scores struct {
	Confidence map[Key]float64
	Best       map[int]float64
}

// ParsePath returns the node IDs of a contig-ordering path,
//  <node>:<extra>-><node>:<extra>->...
// Node IDs may be signed to indicate direction; the sign is
// discarded.
func ParsePath(path string) ([]int, error) {
	var nodes []int
	for _, tok := range strings.Split(path, "->") {
		if tok == "" {
			continue
		}
		id := tok
		if i := strings.Index(id, ":"); i >= 0 {
			id = id[:i]
		}
		id = strings.TrimPrefix(strings.TrimPrefix(id, "-"), "+")
		n, err := strconv.Atoi(id)
		if err != nil {
			return nil, fmt.Errorf("oases: bad node in path token %q: %v", tok, err)
		}
		nodes = append(nodes, n)
	}
	return nodes, nil
}

// GeometricMean returns the geometric mean coverage of the nodes in path
// that have a defined coverage in cov, and the number of such nodes. If no
// node has a defined coverage, DefaultConfidence and zero are returned.
func GeometricMean(path []int, cov Coverage) (mean float64, n int) {
	var vals []float64
	for _, id := range path {
		c, ok := cov[id]
		if !ok {
			continue
		}
		vals = append(vals, c)
	}
	if len(vals) == 0 {
		return DefaultConfidence, 0
	}
	return stat.GeometricMean(vals, nil), len(vals)
}

// Score reads the contig-ordering.txt data in r and returns the confidence
// of each transcript in idx, and the highest confidence at each locus among
// transcripts that are at least frac of the length of the longest transcript
// at the locus. Records in r that do not describe a transcript or describe a
// transcript absent from idx are ignored.
func Score(r io.Reader, idx *Index, cov Coverage, frac float64) (*Scores, error) {
	s := &Scores{
		Confidence: make(map[Key]float64),
		Best:       make(map[int]float64),
	}
	sc := newPathScanner(r)
	for sc.Next() {
		t := sc.Transcript()
		length, ok := idx.Length(t.Key)
		if !ok {
			continue
		}
		path, err := ParsePath(string(alphabet.LettersToBytes(t.Seq.Seq)))
		if err != nil {
			return nil, fmt.Errorf("%v: %v", t.Key, err)
		}
		conf, _ := GeometricMean(path, cov)
		s.Confidence[t.Key] = conf

		if !idx.Loci[t.Locus].Eligible(length, frac) {
			continue
		}
		best, ok := s.Best[t.Locus]
		if !ok || conf > best {
			s.Best[t.Locus] = conf
		}
	}
	if err := sc.Error(); err != nil {
		return nil, err
	}
	return s, nil
}
