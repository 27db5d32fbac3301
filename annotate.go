// Copyright ©2026 Dan Kortschak. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/biogo/biogo/io/featio/gff"
	"github.com/biogo/biogo/seq"
	"github.com/biogo/hts/fai"

	"github.com/kortschak/bestrans/oases"
)

// writeGFF writes a GFF feature for each chosen transcript to the
// named file. Each feature spans its whole transcript and carries the
// locus, the transcript's relationship to the longest transcript at the
// locus and the other transcripts that were long enough to be chosen.
func writeGFF(path string, choices []oases.Choice) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	w := gff.NewWriter(f, 60, true)
	for _, c := range choices {
		_, err = w.Write(&gff.Feature{
			SeqName:    c.Seq.Name(),
			Source:     "bestrans",
			Feature:    "transcript",
			FeatStart:  0,
			FeatEnd:    c.Length,
			FeatScore:  floatPtr(c.Confidence),
			FeatStrand: seq.None,
			FeatFrame:  gff.NoFrame,
			FeatAttributes: gff.Attributes{
				{Tag: "Locus", Value: strconv.Itoa(c.Locus)},
				{Tag: "Transcript", Value: fmt.Sprintf("%d %d", c.Transcript.Transcript, c.Total)},
				{Tag: "Longest", Value: strconv.FormatBool(c.Longest)},
				{Tag: "PercentLongest", Value: fmt.Sprintf("%.2f", c.PercentOfLongest)},
				{Tag: "Others", Value: others(c.Others)},
				{Tag: "AssemblyConfidence", Value: strconv.FormatFloat(c.Header.Confidence, 'f', -1, 64)},
			},
		})
		if err != nil {
			f.Close()
			return err
		}
	}
	return f.Close()
}

// others returns a space-separated list of transcript IDs
// or "none" if ids is empty.
func others(ids []int) string {
	if len(ids) == 0 {
		return "none"
	}
	s := make([]string, len(ids))
	for i, id := range ids {
		s[i] = strconv.Itoa(id)
	}
	return strings.Join(s, " ")
}

func floatPtr(f float64) *float64 {
	return &f
}

// writeIndex writes a samtools fai index for the named
// fasta file to a file with the same name and a .fai suffix.
func writeIndex(path string) error {
	f, err := os.Open(path)
	if err != nil {
		return err
	}
	idx, err := fai.NewIndex(f)
	f.Close()
	if err != nil {
		return err
	}

	out, err := os.Create(path + ".fai")
	if err != nil {
		return err
	}
	err = fai.WriteTo(out, idx)
	if err != nil {
		out.Close()
		return err
	}
	return out.Close()
}
