package main

import (
	"log"
	"os"

	"github.com/gonuts/commander"
	"github.com/gonuts/flag"
	"github.com/google-research/turkish-morphology/fst"
)

var (
	outFile, entryName      string
	textFile                string
	inSymsFile, outSymsFile string
)

func readSymbols(path, name string) (*fst.SymbolTable, error) {
	if path == "" {
		return nil, nil
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return fst.ReadSymbols(f, name)
}

// Far packs a transducer printed in the AT&T text format into an archive
// entry.
func Far(cmd *commander.Command, args []string) error {
	if err := VerifyFlags(cmd, []string{"out", "name", "text"}); err != nil {
		return err
	}
	isyms, err := readSymbols(inSymsFile, "isymbols")
	if err != nil {
		return err
	}
	osyms := isyms
	if outSymsFile != "" && outSymsFile != inSymsFile {
		if osyms, err = readSymbols(outSymsFile, "osymbols"); err != nil {
			return err
		}
	}

	in, err := os.Open(textFile)
	if err != nil {
		return err
	}
	defer in.Close()
	log.Printf("Reading %s", textFile)
	t, err := fst.ReadText(in, isyms, osyms)
	if err != nil {
		return err
	}
	log.Printf("Read %d states, %d arcs", t.NumStates(), t.NumArcs())
	t.ArcSort(fst.InputOrder)
	if err := fst.WriteArchiveFile(outFile, map[string]*fst.Fst{entryName: t}); err != nil {
		return err
	}
	log.Printf("Wrote entry %q to %s", entryName, outFile)
	return nil
}

func FarCmd() *commander.Command {
	cmd := &commander.Command{
		Run:       Far,
		UsageLine: "far -out <archive> -name <entry> -text <fst text> [options]",
		Short:     "pack a text transducer into an automaton archive",
		Long: `
pack a transducer in the AT&T text format into an automaton archive

	$ ./turkmorph far -out turkish.far -name turkish_morphological_analyzer \
		-text analyzer.txt -isymbols analyzer.syms

`,
		Flag: *flag.NewFlagSet("far", flag.ExitOnError),
	}
	cmd.Flag.StringVar(&outFile, "out", "", "Output archive")
	cmd.Flag.StringVar(&entryName, "name", "", "Entry name")
	cmd.Flag.StringVar(&textFile, "text", "", "Transducer in the AT&T text format")
	cmd.Flag.StringVar(&inSymsFile, "isymbols", "", "Input symbol table (default: byte labels)")
	cmd.Flag.StringVar(&outSymsFile, "osymbols", "", "Output symbol table (default: the input table)")
	return cmd
}
