// Copyright ©2026 Dan Kortschak. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package oases

import (
	"fmt"
	"io"
	"strings"

	"github.com/biogo/biogo/alphabet"
	"github.com/biogo/biogo/io/seqio"
	"github.com/biogo/biogo/io/seqio/fasta"
	"github.com/biogo/biogo/seq/linear"
)

// Transcript is a single Oases transcript record.
type Transcript struct {
	Header

	// Length is the length of the assembled sequence.
	Length int

	// Seq is the sequence as read, retaining
	// the ID and description from the input.
	Seq *linear.Seq
}

// Scanner provides an interface for reading Oases FASTA-framed records.
// Successive calls to Next step through the records of the underlying
// reader; multi-line bodies are joined and blank lines are ignored.
type Scanner struct {
	sc *seqio.Scanner

	// skip reports whether a record
	// should be silently ignored.
	skip func(id string) bool

	t   Transcript
	err error
}

// NewScanner returns a Scanner that reads transcript records from r.
func NewScanner(r io.Reader) *Scanner {
	return &Scanner{sc: seqio.NewScanner(fasta.NewReader(r, linear.NewSeq("", nil, alphabet.DNA)))}
}

// newPathScanner returns a Scanner over contig-ordering.txt records,
// ignoring records that do not describe a transcript.
func newPathScanner(r io.Reader) *Scanner {
	s := NewScanner(r)
	s.skip = func(id string) bool { return !strings.Contains(id, "Transcript") }
	return s
}

// Next advances the Scanner past the next record, which will then be available
// through the Transcript method. It returns false when the scan stops, either by
// reaching the end of the input or an error. After Next returns false, the Error
// method will return any error that occurred during scanning, except that if it
// was io.EOF, Error will return nil.
func (s *Scanner) Next() bool {
	if s.err != nil {
		return false
	}
	for s.sc.Next() {
		seq := s.sc.Seq().(*linear.Seq)
		if s.skip != nil && s.skip(seq.ID) {
			continue
		}
		h, err := ParseHeader(seq.ID)
		if err != nil {
			s.err = err
			return false
		}
		s.t = Transcript{Header: h, Length: seq.Len(), Seq: seq}
		return true
	}
	if err := s.sc.Error(); err != nil {
		s.err = fmt.Errorf("error during fasta read: %v", err)
	}
	return false
}

// Transcript returns the most recent record read by a call to Next.
func (s *Scanner) Transcript() Transcript { return s.t }

// Error returns the first non-EOF error that was encountered by the Scanner.
func (s *Scanner) Error() error { return s.err }
