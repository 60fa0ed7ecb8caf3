// Copyright (c) 2021 Silvano DAL ZILIO
//
// MIT License

package main

import (
	"os"

	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

var (
	debugArgs     bool
	configArgs    string
	outputDirArgs string
)

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "robdd",
		Short: "robdd",
		Long: `A CLI tool to build binary decision diagrams and export them as
BLIF netlists, Graphviz graphs or AIGER circuits.`,
		SilenceUsage: true,

		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if debugArgs {
				log.SetLevel(log.DebugLevel)
			}
			return nil
		},
	}

	rootCmd.PersistentFlags().BoolVar(&debugArgs, "debug", false, "enable debug logging")
	rootCmd.PersistentFlags().StringVarP(&configArgs, "config", "c", "", "YAML file with the parameters of the BDD manager.")
	rootCmd.PersistentFlags().StringVarP(&outputDirArgs, "output-dir", "o", ".", "The directory where output files are written.")

	rootCmd.AddCommand(newTruthTableCmd(), newConstructCmd())
	return rootCmd
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}
