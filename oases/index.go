// Copyright ©2026 Dan Kortschak. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package oases

import (
	"fmt"
	"io"

	"github.com/biogo/store/llrb"
)

// Locus is the aggregate of the transcripts assembled for a single locus.
type Locus struct {
	ID int

	// MaxLength is the length of the
	// longest transcript at the locus.
	MaxLength int

	// Transcripts holds the Key of each
	// transcript at the locus.
	Transcripts *llrb.Tree
}

// Eligible returns whether a transcript of the given length is long enough
// relative to the longest transcript at l to be considered for selection.
func (l *Locus) Eligible(length int, frac float64) bool {
	return float64(length) >= float64(l.MaxLength)*frac
}

// Keys returns the keys of the transcripts at l in ascending order.
func (l *Locus) Keys() []Key {
	keys := make([]Key, 0, l.Transcripts.Len())
	l.Transcripts.Do(func(c llrb.Comparable) (done bool) {
		keys = append(keys, c.(Key))
		return false
	})
	return keys
}

// Index holds transcript lengths and per-locus aggregates
// collected from a transcripts.fa file.
type Index struct {
	Loci map[int]*Locus

	lengths map[Key]int
	dist    []int
}

// BuildIndex reads the transcript records in r and returns the
// resulting Index. A malformed header or a repeated transcript
// is an error.
func BuildIndex(r io.Reader) (*Index, error) {
	idx := &Index{
		Loci:    make(map[int]*Locus),
		lengths: make(map[Key]int),
	}
	sc := NewScanner(r)
	for sc.Next() {
		t := sc.Transcript()
		if _, dup := idx.lengths[t.Key]; dup {
			return nil, fmt.Errorf("oases: duplicate transcript %v", t.Key)
		}
		idx.lengths[t.Key] = t.Length
		idx.dist = append(idx.dist, t.Length)

		l, ok := idx.Loci[t.Locus]
		if !ok {
			l = &Locus{ID: t.Locus, MaxLength: t.Length, Transcripts: &llrb.Tree{}}
			idx.Loci[t.Locus] = l
		} else if t.Length > l.MaxLength {
			l.MaxLength = t.Length
		}
		l.Transcripts.Insert(t.Key)
	}
	if err := sc.Error(); err != nil {
		return nil, err
	}
	return idx, nil
}

// Length returns the length of the transcript identified by k
// and whether it is present in the index.
func (idx *Index) Length(k Key) (length int, ok bool) {
	length, ok = idx.lengths[k]
	return length, ok
}

// Lengths returns the lengths of all indexed transcripts in file order.
func (idx *Index) Lengths() []int {
	return append([]int(nil), idx.dist...)
}

// Len returns the number of indexed transcripts.
func (idx *Index) Len() int { return len(idx.dist) }
