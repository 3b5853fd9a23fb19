package main

import (
	"fmt"
	"log"
	"os"
	"strings"

	"github.com/gonuts/commander"
	"github.com/gonuts/flag"
	morphology "github.com/google-research/turkish-morphology"
)

var (
	conllFile string
	workers   int
)

func readTokens(paths []string) ([]string, error) {
	var tokens []string
	for _, p := range paths {
		log.Printf("Reading tokens from %s", p)
		f, err := os.Open(p)
		if err != nil {
			return nil, err
		}
		t, err := morphology.ReadCoNLLTokens(f)
		f.Close()
		if err != nil {
			return nil, fmt.Errorf("%s: %v", p, err)
		}
		tokens = append(tokens, t...)
	}
	return tokens, nil
}

// Coverage analyzes every word form of CoNLL treebank files and reports
// how many the analyzer accepts.
func Coverage(cmd *commander.Command, args []string) error {
	paths := args
	if conllFile != "" {
		paths = append([]string{conllFile}, args...)
	}
	if len(paths) == 0 {
		cmd.Usage()
		return usageError("no CoNLL file given")
	}
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	configOut(cfg)
	model, err := morphology.LoadModel(cfg)
	if err != nil {
		return err
	}
	tokens, err := readTokens(paths)
	if err != nil {
		return err
	}
	if len(tokens) == 0 {
		return fmt.Errorf("no tokens in %s", strings.Join(paths, ", "))
	}
	log.Printf("Evaluating %d tokens on %d workers", len(tokens), workers)
	report, err := morphology.Evaluate(model, tokens, workers)
	if err != nil {
		return err
	}
	printReport(report)
	return nil
}

func printReport(r *morphology.CoverageReport) {
	fmt.Printf("Tokens:\t\t\t%d\n", r.Tokens)
	fmt.Printf("Word forms:\t\t%d\n", r.WordForms)
	fmt.Printf("Accepted:\t\t%d\n", r.Accepted)
	fmt.Printf("Rejected:\t\t%d\n", r.Rejected)
	fmt.Printf("Coverage (%%):\t\t%.2f\n", r.Coverage())
	for _, s := range []struct {
		title string
		c     morphology.AnalysisCount
	}{
		{"with Proper feature", r.WithProper},
		{"without Proper feature", r.WithoutProper},
	} {
		fmt.Println()
		fmt.Printf("Analyses %s:\t%d\n", s.title, s.c.Analyses)
		fmt.Printf("  per word form:\t%.3f\n", s.c.PerWord(r.Accepted))
		fmt.Printf("  IGs:\t\t\t%d\n", s.c.IGs)
		fmt.Printf("  IGs per analysis:\t%.3f\n", s.c.PerAnalysis())
	}
	if len(r.Unparsed) > 0 {
		fmt.Println()
		fmt.Println("Rejected word forms:")
		for _, w := range r.Unparsed {
			fmt.Println(w)
		}
	}
}

func CoverageCmd() *commander.Command {
	cmd := &commander.Command{
		Run:       Coverage,
		UsageLine: "coverage [options] [conll file ...]",
		Short:     "measure analyzer coverage on CoNLL treebank files",
		Long: `
measure analyzer coverage and ambiguity on CoNLL treebank files

	$ ./turkmorph coverage -far <archive> -conll <treebank.conll> [options]

`,
		Flag: *flag.NewFlagSet("coverage", flag.ExitOnError),
	}
	modelFlags(&cmd.Flag)
	cmd.Flag.StringVar(&conllFile, "conll", "", "CoNLL-format treebank file")
	cmd.Flag.IntVar(&workers, "workers", 0, "Analysis goroutines (0 = GOMAXPROCS)")
	return cmd
}
