package main

import (
	"encoding/json"
	"os"

	"github.com/gonuts/commander"
	"github.com/gonuts/flag"
	morphology "github.com/google-research/turkish-morphology"
)

var analysisString string

// Decompose prints the structured form of an analysis string as JSON.
// It needs the tagset only, not the archive.
func Decompose(cmd *commander.Command, args []string) error {
	if err := VerifyFlags(cmd, []string{"analysis"}); err != nil {
		return err
	}
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	tagset := morphology.DefaultTagset()
	if cfg.Tagset != "" {
		if tagset, err = morphology.LoadTagset(cfg.Tagset); err != nil {
			return err
		}
	}
	a, err := morphology.NewDecomposer(tagset, 0, 0).Decompose(analysisString)
	if err != nil {
		return err
	}
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(a)
}

func DecomposeCmd() *commander.Command {
	cmd := &commander.Command{
		Run:       Decompose,
		UsageLine: "decompose -analysis <analysis string> [options]",
		Short:     "print the structured form of an analysis string",
		Long: `
print the structured form of an analysis string as JSON

	$ ./turkmorph decompose -analysis 'ev[NN]+lAr[PersonNumber=A3pl]'

`,
		Flag: *flag.NewFlagSet("decompose", flag.ExitOnError),
	}
	cmd.Flag.StringVar(&configFile, "config", "", "YAML configuration file")
	cmd.Flag.StringVar(&tagsetFile, "tagset", "", "YAML tagset file (default: built-in Turkish tagset)")
	cmd.Flag.StringVar(&analysisString, "analysis", "", "Analysis string")
	return cmd
}
