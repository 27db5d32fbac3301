// Copyright ©2026 Dan Kortschak. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package oases

import (
	"errors"
	"fmt"
	"strings"
	"testing"

	"github.com/grailbio/testutil/expect"
)

// choices runs the complete selection over the given
// Oases output texts.
func choices(t *testing.T, transcripts, stats, ordering string, frac float64) ([]Choice, *Index, error) {
	t.Helper()
	idx, err := BuildIndex(strings.NewReader(transcripts))
	expect.NoError(t, err)
	cov, err := ReadCoverage(strings.NewReader(stats))
	expect.NoError(t, err)
	s, err := Score(strings.NewReader(ordering), idx, cov, frac)
	expect.NoError(t, err)
	c, err := Select(strings.NewReader(transcripts), idx, s, frac)
	return c, idx, err
}

func TestSelect(t *testing.T) {
	got, idx, err := choices(t, testTranscripts, testStats, testOrdering, 0.8)
	expect.NoError(t, err)
	expect.EQ(t, len(got), 2)

	c := got[0]
	expect.EQ(t, c.Key, Key{Locus: 1, Transcript: 1})
	expect.EQ(t, c.Length, 10)
	expect.True(t, c.Longest)
	expect.EQ(t, c.Others, []int{2})
	expect.EQ(t, c.PercentOfLongest, 100.0)
	expect.EQ(t, c.Seq.Name(), "Locus_1_Transcript_1/2_Confidence_0.750_Length_10")

	// The 850 long transcript is better covered than
	// the 1000 long transcript and so is chosen.
	c = got[1]
	expect.EQ(t, c.Key, Key{Locus: 7, Transcript: 2})
	expect.EQ(t, c.Length, 850)
	expect.False(t, c.Longest)
	expect.EQ(t, c.Others, []int{1})
	expect.EQ(t, c.PercentOfLongest, 85.0)
	expect.EQ(t, c.Header.Confidence, 0.4)

	for _, c := range got {
		l := idx.Loci[c.Locus]
		expect.True(t, float64(c.Length) >= float64(l.MaxLength)*0.8, "chosen transcript too short: %v", c.Key)
	}
}

func TestSelectOnePerLocus(t *testing.T) {
	for _, frac := range []float64{0.01, 0.25, 0.5, 0.8, 0.9, 1} {
		got, idx, err := choices(t, testTranscripts, testStats, testOrdering, frac)
		expect.NoError(t, err, frac)
		seen := make(map[int]int)
		for _, c := range got {
			seen[c.Locus]++
			expect.True(t, idx.Loci[c.Locus].Eligible(c.Length, frac), "chosen transcript too short: %v at %v", c.Key, frac)
		}
		expect.EQ(t, seen, map[int]int{1: 1, 7: 1}, frac)
	}
}

func TestSelectTie(t *testing.T) {
	transcripts := fastaText(
		"Locus_4_Transcript_1/3", 80,
		"Locus_4_Transcript_2/3", 100,
		"Locus_4_Transcript_3/3", 100,
	)
	const stats = "ID\tlgth\tout\tin\tlong_cov\tshort1_cov\tshort1_Ocov\n" +
		"1\t1\t0\t0\t0\t0\t3\n" +
		"2\t1\t0\t0\t0\t0\t5\n" +
		"3\t1\t0\t0\t0\t0\t5\n"
	const ordering = ">Locus_4_Transcript_1/3\n1:80\n" +
		">Locus_4_Transcript_2/3\n2:100\n" +
		">Locus_4_Transcript_3/3\n3:100\n"

	got, _, err := choices(t, transcripts, stats, ordering, 0.8)
	expect.NoError(t, err)
	expect.EQ(t, len(got), 1)
	expect.EQ(t, got[0].Key, Key{Locus: 4, Transcript: 2})
	expect.EQ(t, got[0].Others, []int{1, 3})
}

func TestSelectDefaultConfidence(t *testing.T) {
	// No node on any path has a defined coverage, so all
	// transcripts tie at the default and the first eligible
	// transcript is chosen.
	transcripts := fastaText(
		"Locus_5_Transcript_1/2", 10,
		"Locus_5_Transcript_2/2", 100,
	)
	const stats = "ID\tlgth\tout\tin\tlong_cov\tshort1_cov\tshort1_Ocov\n" +
		"1\t1\t0\t0\t0\t0\tInf\n"
	const ordering = ">Locus_5_Transcript_1/2\n1:10\n" +
		">Locus_5_Transcript_2/2\n9:100\n"

	got, _, err := choices(t, transcripts, stats, ordering, 0.8)
	expect.NoError(t, err)
	expect.EQ(t, len(got), 1)
	expect.EQ(t, got[0].Key, Key{Locus: 5, Transcript: 2})
	expect.EQ(t, got[0].Confidence, DefaultConfidence)
	expect.EQ(t, len(got[0].Others), 0)
}

func TestSelectNoEligible(t *testing.T) {
	// Locus 7 has no paths, so has no best confidence.
	ordering := testOrdering[:strings.Index(testOrdering, ">Locus_7")]
	_, _, err := choices(t, testTranscripts, testStats, ordering, 0.8)
	var e *NoEligibleError
	expect.True(t, errors.As(err, &e), "unexpected error: %v", err)
	expect.EQ(t, e.Locus, 7)

	// Locus 1 has a best confidence, but no
	// transcripts with a path at the final locus.
	transcripts := testTranscripts + fastaText("Locus_9_Transcript_1/1", 20)
	_, _, err = choices(t, transcripts, testStats, testOrdering, 0.8)
	expect.True(t, errors.As(err, &e), "unexpected error: %v", err)
	expect.EQ(t, e.Locus, 9)
}

func TestSelectNotContiguous(t *testing.T) {
	transcripts := fastaText(
		"Locus_1_Transcript_1/2", 10,
		"Locus_2_Transcript_1/1", 10,
		"Locus_1_Transcript_2/2", 10,
	)
	const stats = "ID\tlgth\tout\tin\tlong_cov\tshort1_cov\tshort1_Ocov\n" +
		"1\t1\t0\t0\t0\t0\t3\n"
	const ordering = ">Locus_1_Transcript_1/2\n1:10\n" +
		">Locus_2_Transcript_1/1\n1:10\n" +
		">Locus_1_Transcript_2/2\n1:10\n"
	_, _, err := choices(t, transcripts, stats, ordering, 0.8)
	expect.HasSubstr(t, err.Error(), "locus 1 is not contiguous")
}

func TestSelectChangedInput(t *testing.T) {
	idx, err := BuildIndex(strings.NewReader(testTranscripts))
	expect.NoError(t, err)
	cov, err := ReadCoverage(strings.NewReader(testStats))
	expect.NoError(t, err)
	s, err := Score(strings.NewReader(testOrdering), idx, cov, 0.8)
	expect.NoError(t, err)

	_, err = Select(strings.NewReader(fastaText("Locus_1_Transcript_1/2", 11)), idx, s, 0.8)
	expect.HasSubstr(t, err.Error(), "length mismatch")

	_, err = Select(strings.NewReader(fastaText("Locus_2_Transcript_1/2", 10)), idx, s, 0.8)
	expect.HasSubstr(t, err.Error(), "not in index")
}

func TestSelectEmpty(t *testing.T) {
	got, _, err := choices(t, "", testStats, testOrdering, 0.8)
	expect.NoError(t, err)
	expect.EQ(t, len(got), 0)
}

func TestSelectReselection(t *testing.T) {
	got, _, err := choices(t, testTranscripts, testStats, testOrdering, 0.8)
	expect.NoError(t, err)

	var buf strings.Builder
	for _, c := range got {
		fmt.Fprintf(&buf, "%60a\n", c.Seq)
	}
	again, _, err := choices(t, buf.String(), testStats, testOrdering, 0.8)
	expect.NoError(t, err)
	expect.EQ(t, len(again), len(got))
	for i := range got {
		expect.EQ(t, again[i].Key, got[i].Key)
		expect.EQ(t, again[i].Length, got[i].Length)
		expect.True(t, again[i].Longest)
		expect.EQ(t, len(again[i].Others), 0)
	}
}
