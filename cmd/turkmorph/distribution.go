package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/gonuts/commander"
	"github.com/gonuts/flag"
	morphology "github.com/google-research/turkish-morphology"
)

// Distribution prints how often each inflectional feature occurs in the
// analyses of a sentence.
func Distribution(cmd *commander.Command, args []string) error {
	tokens := args
	if sentence != "" {
		tokens = append(strings.Fields(sentence), args...)
	}
	if len(tokens) == 0 {
		cmd.Usage()
		return usageError("no sentence given")
	}
	m, err := loadMorphology(cmd)
	if err != nil {
		return err
	}
	d, err := morphology.InflectionDistribution(m.Model(), tokens)
	if err != nil {
		return err
	}
	fmt.Fprintf(os.Stdout, "Distribution of inflectional features in morphological analyses of the sentence '%s'\n\n",
		strings.Join(tokens, " "))
	for _, c := range d.Counts {
		fmt.Fprintf(os.Stdout, "%s-%s: %.2f%%\n", c.Feature.Category, c.Feature.Value, d.Frequency(c))
	}
	return nil
}

func DistributionCmd() *commander.Command {
	cmd := &commander.Command{
		Run:       Distribution,
		UsageLine: "distribution [options] [word ...]",
		Short:     "print the distribution of inflectional features over a sentence",
		Long: `
print the distribution of inflectional features in the analyses of a sentence

	$ ./turkmorph distribution -far <archive> -sentence 'Ayşe eve geldiğinde Ali gitmişti'

`,
		Flag: *flag.NewFlagSet("distribution", flag.ExitOnError),
	}
	modelFlags(&cmd.Flag)
	cmd.Flag.StringVar(&sentence, "sentence", "", "Whitespace-separated sentence")
	return cmd
}
