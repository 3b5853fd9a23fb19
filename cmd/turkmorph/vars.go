package main

import (
	"fmt"
	"log"

	"github.com/gonuts/commander"
	"github.com/gonuts/flag"
	morphology "github.com/google-research/turkish-morphology"
)

var (
	configFile                string
	farFile, fstName, genName string
	tagsetFile                string
	maxDepth                  int
	useProper, lowercase      bool
)

// modelFlags registers the flags every model-loading command shares.
// Values left at their zero value defer to the config file.
func modelFlags(fs *flag.FlagSet) {
	fs.StringVar(&configFile, "config", "", "YAML configuration file")
	fs.StringVar(&farFile, "far", "", "Automaton archive holding the analyzer")
	fs.StringVar(&fstName, "fst", "", "Analyzer entry in the archive")
	fs.StringVar(&genName, "generator", "", "Dedicated generator entry in the archive (default: inverted analyzer)")
	fs.StringVar(&tagsetFile, "tagset", "", "YAML tagset file (default: built-in Turkish tagset)")
	fs.IntVar(&maxDepth, "maxdepth", 0, "Maximum arcs on an enumerated path")
	fs.BoolVar(&useProper, "proper", true, "Keep the +[Proper=True|False] feature in analyses")
	fs.BoolVar(&lowercase, "lower", false, "Lowercase generated forms with Turkish rules")
}

// loadConfig reads the config file, if any, and lays the flags that were
// set on the command line over it.
func loadConfig(cmd *commander.Command) (morphology.Config, error) {
	cfg := morphology.DefaultConfig()
	if configFile != "" {
		var err error
		if cfg, err = morphology.LoadConfig(configFile); err != nil {
			return cfg, err
		}
	}
	cmd.Flag.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "far":
			cfg.Archive = farFile
		case "fst":
			cfg.Fst = fstName
		case "generator":
			cfg.Generator = genName
		case "tagset":
			cfg.Tagset = tagsetFile
		case "maxdepth":
			cfg.MaxDepth = maxDepth
		case "proper":
			cfg.ProperFeature = useProper
		case "lower":
			cfg.Lowercase = lowercase
		}
	})
	return cfg, nil
}

func configOut(cfg morphology.Config) {
	log.Println("Configuration")
	log.Printf("Archive:\t\t%s", cfg.Archive)
	log.Printf("Analyzer:\t\t%s", cfg.Fst)
	if cfg.Generator != "" {
		log.Printf("Generator:\t\t%s", cfg.Generator)
	}
	if cfg.Tagset != "" {
		log.Printf("Tagset:\t\t%s", cfg.Tagset)
	}
	log.Printf("Max depth:\t\t%d", cfg.MaxDepth)
	log.Printf("Proper feature:\t%v", cfg.ProperFeature)
	log.Println()
}

// loadMorphology builds the model the command's flags describe.
func loadMorphology(cmd *commander.Command) (*morphology.Morphology, error) {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return nil, err
	}
	return morphology.New(cfg)
}

// VerifyFlags fails when a required string flag is empty.
func VerifyFlags(cmd *commander.Command, required []string) error {
	for _, name := range required {
		f := cmd.Flag.Lookup(name)
		if f == nil || f.Value.String() == "" {
			cmd.Usage()
			return usageError(fmt.Sprintf("required flag -%s not set", name))
		}
	}
	return nil
}

type usageError string

func (e usageError) Error() string { return string(e) }
