// Copyright ©2026 Dan Kortschak. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package oases

import (
	"fmt"
	"strings"
)

// Test assembly with two loci. At a cutoff fraction of 0.8:
//
// Locus 1: longest 10, both transcripts eligible, T1 has
// coverage gmean(4, 16) = 8, T2 has only an Inf node so
// scores the default 2; T1 is chosen.
//
// Locus 7: longest 1000, T3 (300) is ineligible despite its
// high coverage, T2 (850) has gmean(9, 4) = 6 and beats T1
// with coverage 1; T2 is chosen.
var (
	testTranscripts = fastaText(
		"Locus_1_Transcript_1/2_Confidence_0.750_Length_10", 10,
		"Locus_1_Transcript_2/2_Confidence_0.250_Length_8", 8,
		"Locus_7_Transcript_1/3_Confidence_0.400_Length_1000", 1000,
		"Locus_7_Transcript_2/3_Confidence_0.400_Length_850", 850,
		"Locus_7_Transcript_3/3_Confidence_0.200_Length_300", 300,
	)

	testStats = `ID	lgth	out	in	long_cov	short1_cov	short1_Ocov	short2_cov	short2_Ocov	long_nb	short1_nb	short2_nb
1	10	1	0	0.000000	4.000000	4.000000	0.000000	0.000000	0	4	0
2	300	1	1	0.000000	16.000000	16.000000	0.000000	0.000000	0	16	0
3	8	0	1	0.000000	Inf	Inf	0.000000	0.000000	0	0	0
4	850	1	0	0.000000	9.000000	9.000000	0.000000	0.000000	0	9	0
5	1000	0	0	0.000000	1.000000	1.000000	0.000000	0.000000	0	1	0
`

	testOrdering = `>Locus_1_Transcript_1/2_Confidence_0.750_Length_10
1:10->-2:5->
>Locus_1_Transcript_2/2_Confidence_0.250_Length_8
3:8
>Locus_7_Transcript_1/3_Confidence_0.400_Length_1000
5:1000
>Locus_7_Transcript_2/3_Confidence_0.400_Length_850
4:850->
-1:10
>Locus_7_Transcript_3/3_Confidence_0.200_Length_300
2:300
>Locus_7_Contig_12
-4:850->5:12
`
)

// fastaText returns a multiple fasta text from alternating IDs and sequence
// lengths. Sequences are wrapped at 60 columns and followed by a blank line.
func fastaText(args ...interface{}) string {
	var buf strings.Builder
	for i := 0; i < len(args); i += 2 {
		fmt.Fprintf(&buf, ">%s\n", args[i])
		s := strings.Repeat("ACGT", args[i+1].(int)/4+1)[:args[i+1].(int)]
		for len(s) > 60 {
			fmt.Fprintln(&buf, s[:60])
			s = s[60:]
		}
		fmt.Fprintf(&buf, "%s\n\n", s)
	}
	return buf.String()
}
