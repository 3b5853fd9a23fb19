package main

import (
	"fmt"
	"os"

	"github.com/gonuts/commander"
	"github.com/gonuts/flag"
)

// Generate prints the surface forms of an analysis string.
func Generate(cmd *commander.Command, args []string) error {
	if err := VerifyFlags(cmd, []string{"analysis"}); err != nil {
		return err
	}
	m, err := loadMorphology(cmd)
	if err != nil {
		return err
	}
	forms, err := m.GenerateString(analysisString)
	if err != nil {
		return err
	}
	if len(forms) == 0 {
		fmt.Fprintf(os.Stdout, "no surface form for '%s'\n", analysisString)
		return nil
	}
	for _, f := range forms {
		fmt.Fprintln(os.Stdout, f)
	}
	return nil
}

func GenerateCmd() *commander.Command {
	cmd := &commander.Command{
		Run:       Generate,
		UsageLine: "generate -analysis <analysis string> [options]",
		Short:     "print the surface forms of an analysis",
		Long: `
print the surface forms of an analysis

	$ ./turkmorph generate -far <archive> -analysis 'ev[NN]+lAr[PersonNumber=A3pl]'

`,
		Flag: *flag.NewFlagSet("generate", flag.ExitOnError),
	}
	modelFlags(&cmd.Flag)
	cmd.Flag.StringVar(&analysisString, "analysis", "", "Analysis string")
	return cmd
}
