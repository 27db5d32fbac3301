// Copyright ©2026 Dan Kortschak. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package oases provides readers for the transcripts.fa, stats.txt and
// contig-ordering.txt outputs of the Oases transcriptome assembler and
// selection of a representative transcript for each assembly locus.
package oases

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/biogo/store/llrb"
)

var (
	ErrMalformedHeader = errors.New("oases: malformed header")
	ErrInvalidFraction = errors.New("oases: length cutoff fraction must be in (0, 1]")
)

// Key identifies a transcript within an assembly.
type Key struct {
	Locus      int
	Transcript int
}

// Compare satisfies the llrb.Comparable interface, ordering keys
// by locus and then by transcript.
func (k Key) Compare(c llrb.Comparable) int {
	o := c.(Key)
	switch {
	case k.Locus < o.Locus:
		return -1
	case k.Locus > o.Locus:
		return 1
	case k.Transcript < o.Transcript:
		return -1
	case k.Transcript > o.Transcript:
		return 1
	}
	return 0
}

func (k Key) String() string {
	return fmt.Sprintf("Locus_%d_Transcript_%d", k.Locus, k.Transcript)
}

// Header is the information held in an Oases transcript identifier,
//  Locus_<locus>_Transcript_<transcript>/<total>_Confidence_<confidence>_Length_<length>
// Only the locus, transcript and total fields are required.
type Header struct {
	Key

	// Total is the number of transcripts
	// the assembler reports for the locus.
	Total int

	// Confidence is the assembler's transcript
	// confidence label, zero if not present.
	Confidence float64
}

const (
	locusTag = iota
	locusField
	transcriptTag
	transcriptField
	confidenceTag
	confidenceField

	minFields = transcriptField + 1
)

// ParseHeader parses an Oases transcript identifier. The returned error
// wraps ErrMalformedHeader if id does not have the expected form.
func ParseHeader(id string) (Header, error) {
	fields := strings.Split(id, "_")
	if len(fields) < minFields {
		return Header{}, fmt.Errorf("%w: too few fields: %q", ErrMalformedHeader, id)
	}
	if fields[locusTag] != "Locus" || fields[transcriptTag] != "Transcript" {
		return Header{}, fmt.Errorf("%w: not a locus transcript: %q", ErrMalformedHeader, id)
	}

	var (
		h   Header
		err error
	)
	h.Locus, err = atoi(fields[locusField])
	if err != nil {
		return Header{}, fmt.Errorf("%w: bad locus in %q: %v", ErrMalformedHeader, id, err)
	}
	counts := strings.Split(fields[transcriptField], "/")
	if len(counts) < 2 {
		return Header{}, fmt.Errorf("%w: missing transcript count: %q", ErrMalformedHeader, id)
	}
	h.Transcript, err = atoi(counts[0])
	if err != nil {
		return Header{}, fmt.Errorf("%w: bad transcript in %q: %v", ErrMalformedHeader, id, err)
	}
	h.Total, err = atoi(counts[1])
	if err != nil {
		return Header{}, fmt.Errorf("%w: bad transcript count in %q: %v", ErrMalformedHeader, id, err)
	}

	if len(fields) > confidenceField && fields[confidenceTag] == "Confidence" {
		h.Confidence, err = strconv.ParseFloat(fields[confidenceField], 64)
		if err != nil {
			return Header{}, fmt.Errorf("%w: bad confidence in %q: %v", ErrMalformedHeader, id, err)
		}
	}

	return h, nil
}

// atoi parses a non-negative decimal integer.
func atoi(s string) (int, error) {
	i, err := strconv.Atoi(s)
	if err != nil {
		return 0, err
	}
	if i < 0 {
		return 0, fmt.Errorf("negative value: %d", i)
	}
	return i, nil
}

// ValidFraction returns an error wrapping ErrInvalidFraction if f is not
// a usable length cutoff fraction.
func ValidFraction(f float64) error {
	if !(0 < f && f <= 1) {
		return fmt.Errorf("%w: %v", ErrInvalidFraction, f)
	}
	return nil
}
