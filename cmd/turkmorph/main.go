// Command turkmorph analyzes and generates Turkish word forms from the
// command line.
package main

import (
	"fmt"
	"io"
	"os"

	"github.com/gonuts/commander"
	"github.com/gonuts/flag"
	morphology "github.com/google-research/turkish-morphology"
)

func allCommands() *commander.Command {
	return &commander.Command{
		UsageLine: os.Args[0] + " <command> [options]",
		Short:     "Turkish morphological analysis and generation",
		Subcommands: []*commander.Command{
			AnalyzeCmd(),
			DecomposeCmd(),
			GenerateCmd(),
			CoverageCmd(),
			DistributionCmd(),
			FarCmd(),
		},
		Flag: *flag.NewFlagSet("turkmorph", flag.ExitOnError),
	}
}

// exit codes
const (
	exitMalformed = 1
	exitInternal  = 2
	exitLoad      = 3
	exitUsage     = 64
)

// report writes err to w and returns the exit code for its class.
func report(w io.Writer, err error) int {
	if _, ok := err.(usageError); ok {
		fmt.Fprintf(w, "%v\n", err)
		return exitUsage
	}
	switch morphology.Classify(err) {
	case morphology.Malformed:
		me, _ := morphology.AsMalformed(err)
		fmt.Fprintf(w, "malformed analysis '%s' (%s): %s\n", me.Analysis, me.Kind, me.Detail)
		return exitMalformed
	case morphology.LoadFailure:
		fmt.Fprintf(w, "cannot load model: %v\n", err)
		return exitLoad
	}
	fmt.Fprintf(w, "internal error: %v\n", err)
	return exitInternal
}

func main() {
	if err := allCommands().Dispatch(os.Args[1:]); err != nil {
		os.Exit(report(os.Stderr, err))
	}
}
