// Copyright ©2026 Dan Kortschak. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package oases

import (
	"fmt"
	"io"
)

// NoEligibleError is returned by Select when no transcript at a locus
// matches the locus's best confidence while being long enough.
type NoEligibleError struct {
	Locus int
}

func (e *NoEligibleError) Error() string {
	return fmt.Sprintf("oases: no eligible transcript at locus %d", e.Locus)
}

// Choice is the transcript selected to represent a locus.
type Choice struct {
	Transcript

	// Confidence is the geometric mean
	// coverage of the transcript.
	Confidence float64

	// Longest is true if the transcript is as
	// long as the longest transcript at its locus.
	Longest bool

	// Others holds the IDs of the other transcripts at
	// the locus that are long enough to have been chosen.
	Others []int

	// PercentOfLongest is the length of the transcript as
	// a percentage of the longest transcript at its locus.
	PercentOfLongest float64
}

// Select reads the transcript records in r, which must be the data used to
// build idx, and returns the first transcript in each locus that has the
// locus's best confidence in s and is at least frac of the length of the
// longest transcript at the locus. Loci must be contiguous in r. If any locus
// has no such transcript a *NoEligibleError is returned and no choices.
func Select(r io.Reader, idx *Index, s *Scores, frac float64) ([]Choice, error) {
	var (
		choices []Choice

		locus  *Locus
		chosen *Choice
		seen   = make(map[int]bool)
	)
	flush := func() error {
		if locus == nil {
			return nil
		}
		if chosen == nil {
			return &NoEligibleError{Locus: locus.ID}
		}
		choices = append(choices, *chosen)
		return nil
	}

	sc := NewScanner(r)
	for sc.Next() {
		t := sc.Transcript()
		length, ok := idx.Length(t.Key)
		if !ok {
			return nil, fmt.Errorf("oases: transcript %v not in index", t.Key)
		}
		if length != t.Length {
			return nil, fmt.Errorf("oases: length mismatch for %v: indexed %d, read %d", t.Key, length, t.Length)
		}

		if locus == nil || t.Locus != locus.ID {
			err := flush()
			if err != nil {
				return nil, err
			}
			if seen[t.Locus] {
				return nil, fmt.Errorf("oases: locus %d is not contiguous", t.Locus)
			}
			seen[t.Locus] = true
			locus = idx.Loci[t.Locus]
			chosen = nil
		}
		if chosen != nil {
			// Later ties are ignored.
			continue
		}

		conf, ok := s.Confidence[t.Key]
		if !ok {
			continue
		}
		best, ok := s.Best[t.Locus]
		if !ok || conf != best || !locus.Eligible(t.Length, frac) {
			continue
		}
		chosen = idx.choose(t, conf, frac)
	}
	if err := sc.Error(); err != nil {
		return nil, err
	}
	err := flush()
	if err != nil {
		return nil, err
	}
	return choices, nil
}

// choose returns a Choice for t with the derived fields filled in.
func (idx *Index) choose(t Transcript, conf, frac float64) *Choice {
	locus := idx.Loci[t.Locus]
	c := Choice{
		Transcript:       t,
		Confidence:       conf,
		Longest:          t.Length == locus.MaxLength,
		PercentOfLongest: 100,
	}
	if locus.MaxLength != 0 {
		c.PercentOfLongest = 100 * float64(t.Length) / float64(locus.MaxLength)
	}
	for _, k := range locus.Keys() {
		if k == t.Key {
			continue
		}
		if locus.Eligible(idx.lengths[k], frac) {
			c.Others = append(c.Others, k.Transcript)
		}
	}
	return &c
}
