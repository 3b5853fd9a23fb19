package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/gonuts/commander"
	"github.com/gonuts/flag"
)

var word, sentence string

// Analyze prints every analysis of each word named by -word, split from
// -sentence or given as an argument.
func Analyze(cmd *commander.Command, args []string) error {
	words := args
	if word != "" {
		words = append([]string{word}, words...)
	}
	if sentence != "" {
		words = append(strings.Fields(sentence), words...)
	}
	if len(words) == 0 {
		cmd.Usage()
		return usageError("no word to analyze")
	}
	m, err := loadMorphology(cmd)
	if err != nil {
		return err
	}
	if sentence != "" {
		fmt.Fprintf(os.Stdout, "Morphological analyses for the sentence '%s'\n\n", sentence)
	}
	for _, w := range words {
		analyses, err := m.Analyze(w)
		if err != nil {
			return err
		}
		if len(analyses) == 0 {
			fmt.Fprintf(os.Stdout, "'%s' is not accepted as a Turkish word\n", w)
			continue
		}
		fmt.Fprintf(os.Stdout, "Morphological analyses for the word '%s':\n", w)
		for _, a := range analyses {
			fmt.Fprintln(os.Stdout, a)
		}
	}
	return nil
}

func AnalyzeCmd() *commander.Command {
	cmd := &commander.Command{
		Run:       Analyze,
		UsageLine: "analyze [options] [word ...]",
		Short:     "print the morphological analyses of Turkish words",
		Long: `
print the morphological analyses of Turkish words

	$ ./turkmorph analyze -far <archive> -word <word> [options]
	$ ./turkmorph analyze -far <archive> evler yaşadıklarında
	$ ./turkmorph analyze -far <archive> -sentence 'Ayşe eve geldiğinde Ali gitmişti'

`,
		Flag: *flag.NewFlagSet("analyze", flag.ExitOnError),
	}
	modelFlags(&cmd.Flag)
	cmd.Flag.StringVar(&word, "word", "", "Word to analyze")
	cmd.Flag.StringVar(&sentence, "sentence", "", "Whitespace-separated sentence to analyze word by word")
	return cmd
}
