package cmd

import (
	"flag"

	"github.com/google/subcommands"
	"github.com/posener/complete/v2"
	"github.com/posener/complete/v2/predict"
)

// flagPredictors are the predictions of flag values by flag name. Other flags take anything, boolean
// flags nothing.
var flagPredictors = map[string]complete.Predictor{
	"ledger-file": predict.Files("*.json"),
	"currency":    predict.Set{"INR", "USD", "EUR", "GBP", "JPY"},
	"kind":        predict.Set{"C", "D"},
	"format":      predict.Set{"json", "yaml"},
	"m":           predict.Set{"1", "2", "3", "4", "5", "6", "7", "8", "9", "10", "11", "12"},
}

// Completion describes the exp command line for shell completion: the global flags, and every
// command with its own flags.
//
// Call its Complete method first thing in main: it completes the line and exits when the shell asks
// for it.
func Completion() *complete.Command {
	root := &complete.Command{
		Sub:   make(map[string]*complete.Command),
		Flags: predictFlags(flag.CommandLine),
	}
	for _, c := range Commands {
		root.Sub[c.Name()] = commandCompletion(c)
	}
	for _, name := range []string{"help", "flags", "commands"} {
		root.Sub[name] = &complete.Command{}
	}
	return root
}

func commandCompletion(c subcommands.Command) *complete.Command {
	fs := flag.NewFlagSet(c.Name(), flag.ContinueOnError)
	c.SetFlags(fs)
	return &complete.Command{Flags: predictFlags(fs)}
}

func predictFlags(fs *flag.FlagSet) map[string]complete.Predictor {
	flags := make(map[string]complete.Predictor)
	fs.VisitAll(func(f *flag.Flag) {
		if p, ok := flagPredictors[f.Name]; ok {
			flags[f.Name] = p
			return
		}
		if b, ok := f.Value.(interface{ IsBoolFlag() bool }); ok && b.IsBoolFlag() {
			flags[f.Name] = predict.Nothing
			return
		}
		flags[f.Name] = predict.Something
	})
	return flags
}
