// Copyright ©2026 Dan Kortschak. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// bestrans reads the transcripts.fa, contig-ordering.txt and stats.txt output
// of an Oases assembly and writes a fasta file holding the single best transcript
// of each locus. The best transcript is the transcript with the highest
// geometric mean node coverage among transcripts that are at least a given
// fraction of the length of the longest transcript at the locus.
package main

import (
	"bufio"
	"flag"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strings"

	"github.com/kortschak/bestrans/oases"
)

var (
	frac    = flag.Float64("l", 0.8, "transcript length cutoff fraction of the longest transcript in a locus")
	dir     = flag.String("dir", ".", "directory holding the Oases assembly output")
	width   = flag.Int("width", 60, "output fasta line width (0 for unwrapped sequence)")
	gffOut  = flag.Bool("gff", false, "output GFF file of chosen transcript annotations")
	faiOut  = flag.Bool("index", false, "output fai index of the chosen transcript fasta file")
	hist    = flag.String("hist", "", "output transcript length histogram in the given format (eps, jpg, jpeg, pdf, png, svg, tiff)")
	errFile = flag.String("err", "", "output log file name (default to stderr)")
)

// Oases output file names.
const (
	transcriptsFile = "transcripts.fa"
	orderingFile    = "contig-ordering.txt"
	statsFile       = "stats.txt"
)

func main() {
	flag.Parse()
	if err := oases.ValidFraction(*frac); err != nil {
		fmt.Fprintf(os.Stderr, "invalid argument: %v\n", err)
		flag.Usage()
		os.Exit(1)
	}
	if *width < 0 {
		fmt.Fprintln(os.Stderr, "invalid argument: width must not be negative")
		flag.Usage()
		os.Exit(1)
	}
	if *hist != "" && !validFormat(*hist) {
		fmt.Fprintf(os.Stderr, "invalid argument: unknown histogram format %q\n", *hist)
		flag.Usage()
		os.Exit(1)
	}

	if *errFile != "" {
		w, err := os.Create(*errFile)
		if err != nil {
			// Oh, the irony.
			log.Fatalf("failed to create log file: %v", err)
		}
		defer w.Close()
		log.SetOutput(w)
	}

	missing := missingInputs(*dir)
	if len(missing) != 0 {
		fmt.Println("This program requires the unaltered output of an Oases assembly.")
		fmt.Println("The following file(s) are missing:", strings.Join(missing, " "))
		return
	}

	res, err := run(*dir, *frac)
	if err != nil {
		log.Fatalf("failed to choose transcripts: %v", err)
	}

	out := filepath.Join(*dir, outputName(*frac))
	log.Printf("writing %d chosen transcripts to %q", len(res.choices), out)
	err = writeFasta(out, res.choices, *width)
	if err != nil {
		log.Fatalf("failed to write transcripts: %v", err)
	}
	if *faiOut {
		log.Printf("indexing %q", out)
		err = writeIndex(out)
		if err != nil {
			log.Fatalf("failed to write fasta index: %v", err)
		}
	}
	if *gffOut {
		gf := strings.TrimSuffix(out, ".fa") + ".gff"
		log.Printf("writing transcript annotations to %q", gf)
		err = writeGFF(gf, res.choices)
		if err != nil {
			log.Fatalf("failed to write GFF: %v", err)
		}
	}
	if *hist != "" {
		hf := strings.TrimSuffix(out, ".fa") + ".lengths." + *hist
		log.Printf("writing length histogram to %q", hf)
		err = writeHist(hf, res.all, res.lengths())
		if err != nil {
			log.Fatalf("failed to write histogram: %v", err)
		}
	}

	fmt.Printf("You have a total of %d transcripts in your file.\n", len(res.choices))
	fmt.Printf("The N50 of the transcriptome in the file is: %d\n", oases.N50(res.lengths()))
}

// outputName returns the name of the chosen transcript file for the
// given length cutoff fraction.
func outputName(frac float64) string {
	return fmt.Sprintf("transcripts.best.%.f%%Longest.fa", frac*100)
}

// missingInputs returns the names of required Oases output
// files that are not present in dir.
func missingInputs(dir string) []string {
	var missing []string
	for _, name := range []string{transcriptsFile, orderingFile, statsFile} {
		_, err := os.Stat(filepath.Join(dir, name))
		if err != nil {
			missing = append(missing, name)
		}
	}
	return missing
}

// result holds the outcome of a transcript selection.
type result struct {
	// all is the length of every
	// transcript in the assembly.
	all []int

	choices []oases.Choice
}

// lengths returns the lengths of the chosen transcripts.
func (r *result) lengths() []int {
	l := make([]int, len(r.choices))
	for i, c := range r.choices {
		l[i] = c.Length
	}
	return l
}

// run chooses the best transcripts from the Oases output in dir
// using the given length cutoff fraction.
func run(dir string, frac float64) (*result, error) {
	tf := filepath.Join(dir, transcriptsFile)
	log.Printf("measuring transcripts in %q", tf)
	f, err := os.Open(tf)
	if err != nil {
		return nil, err
	}
	idx, err := oases.BuildIndex(f)
	f.Close()
	if err != nil {
		return nil, fmt.Errorf("failed to index %s: %w", transcriptsFile, err)
	}
	all := idx.Lengths()
	log.Printf("read %d transcripts in %d loci: N50=%d", idx.Len(), len(idx.Loci), oases.N50(all))

	sf := filepath.Join(dir, statsFile)
	log.Printf("reading node coverage from %q", sf)
	f, err = os.Open(sf)
	if err != nil {
		return nil, err
	}
	cov, err := oases.ReadCoverage(f)
	f.Close()
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", statsFile, err)
	}

	of := filepath.Join(dir, orderingFile)
	log.Printf("scoring transcript paths in %q", of)
	f, err = os.Open(of)
	if err != nil {
		return nil, err
	}
	scores, err := oases.Score(f, idx, cov, frac)
	f.Close()
	if err != nil {
		return nil, fmt.Errorf("failed to score %s: %w", orderingFile, err)
	}

	log.Printf("choosing transcripts longer than %.2f%% of the longest transcript in each locus", frac*100)
	f, err = os.Open(tf)
	if err != nil {
		return nil, err
	}
	choices, err := oases.Select(f, idx, scores, frac)
	f.Close()
	if err != nil {
		return nil, err
	}
	return &result{all: all, choices: choices}, nil
}

// writeFasta writes the chosen transcripts to the named file, wrapping
// sequence lines at width if width is not zero. On failure the file
// is removed.
func writeFasta(path string, choices []oases.Choice, width int) (err error) {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer func() {
		if err != nil {
			f.Close()
			os.Remove(path)
		}
	}()

	w := bufio.NewWriter(f)
	for _, c := range choices {
		if width == 0 {
			_, err = fmt.Fprintf(w, "%a\n", c.Seq)
		} else {
			_, err = fmt.Fprintf(w, "%*a\n", width, c.Seq)
		}
		if err != nil {
			return err
		}
	}
	err = w.Flush()
	if err != nil {
		return err
	}
	return f.Close()
}
