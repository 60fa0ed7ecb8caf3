// Copyright (c) 2021 Silvano DAL ZILIO
//
// MIT License

package main

import (
	"fmt"
	"io"
	"os"
	"os/exec"
	"strconv"

	"github.com/dalzilio/robdd"
	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

// maxVars is the largest number of variables accepted on the command line.
const maxVars = 16

var (
	radixArgs   int
	blifArgs    bool
	aigerArgs   bool
	renderArgs  bool
	metricsArgs bool
)

// newTruthTableCmd returns a command that builds the diagram of a function
// given by its truth table.
func newTruthTableCmd() *cobra.Command {
	truthTableCmd := &cobra.Command{
		Use:   "truthtable <num_vars> <truth> [output_name]",
		Short: "Build a BDD from the truth table of a function",
		Long: `The robdd truthtable command builds the BDD of a function with
num_vars variables (x0 to x{num_vars-1}, with x0 the most significant bit of
the minterm index) from its truth table, given as a string of hexadecimal
digits where the rightmost digit holds minterms 0 to 3. The diagram is written
in the Graphviz format in file <output_name>_bdd.dot.

        $ robdd truthtable 3 E8 Majority
        `,
		Args: cobra.RangeArgs(2, 3),
		RunE: truthTableFunc,
	}

	truthTableCmd.Flags().IntVarP(&radixArgs, "radix", "r", 16, "Base of the digits of the truth table. One of: [16, 2]")
	truthTableCmd.Flags().BoolVar(&blifArgs, "blif", false, "Also write the diagram as a BLIF netlist.")
	truthTableCmd.Flags().BoolVar(&aigerArgs, "aiger", false, "Also write the diagram as an ASCII AIGER circuit.")
	truthTableCmd.Flags().BoolVar(&renderArgs, "render", false, "Render the graph in PNG with Graphviz, if available.")
	truthTableCmd.Flags().BoolVar(&metricsArgs, "metrics", false, "Print the statistics of the manager in the Prometheus text format.")

	return truthTableCmd
}

func truthTableFunc(cmd *cobra.Command, args []string) error {
	numVars, err := strconv.Atoi(args[0])
	if err != nil {
		return errors.Wrapf(err, "bad number of variables %q", args[0])
	}
	if numVars < 1 || numVars > maxVars {
		return errors.Errorf("number of variables must be 1-%d, got %d", maxVars, numVars)
	}
	name := "F"
	if len(args) > 2 {
		name = args[2]
	}
	tt, err := robdd.ParseTruthTable(args[1], radixArgs, numVars)
	if err != nil {
		return err
	}

	m, err := newManager(numVars)
	if err != nil {
		return err
	}
	defer quit(m)
	f, err := m.FromTruthTable(numVars, tt)
	if err != nil {
		return err
	}
	defer m.DelRef(f)

	w := cmd.OutOrStdout()
	fmt.Fprintf(w, "Building BDD from:\n")
	fmt.Fprintf(w, "  Variables: %d\n", numVars)
	fmt.Fprintf(w, "  Truth table: %s\n", tt.String(radixArgs))

	roots := []robdd.Edge{f}
	inames := make([]string, numVars)
	for i := range inames {
		inames[i] = fmt.Sprintf("x%d", i)
	}
	onames := []string{name}

	dotFile := outputPath(name + "_bdd.dot")
	if err := writeFile(dotFile, func(out io.Writer) error {
		return m.DumpDot(out, roots, inames, onames)
	}); err != nil {
		return err
	}
	fmt.Fprintf(w, "\nBDD Statistics:\n")
	fmt.Fprintf(w, "  Number of nodes: %d\n", m.DagSize(f))
	fmt.Fprintf(w, "  DOT file created: %s\n", dotFile)

	if blifArgs {
		blifFile := outputPath(name + "_bdd.blif")
		if err := writeFile(blifFile, func(out io.Writer) error {
			return m.DumpBlif(out, roots, inames, onames, name)
		}); err != nil {
			return err
		}
		fmt.Fprintf(w, "  BLIF file created: %s\n", blifFile)
	}

	if aigerArgs {
		aigerFile := outputPath(name + "_bdd.aag")
		if err := writeFile(aigerFile, func(out io.Writer) error {
			return m.DumpAiger(out, roots, inames, onames)
		}); err != nil {
			return err
		}
		fmt.Fprintf(w, "  AIGER file created: %s\n", aigerFile)
	}

	if renderArgs {
		pngFile := outputPath(name + ".png")
		if err := executeCommand(renderCmd(dotFile, pngFile)); err != nil {
			log.WithError(err).Warn("cannot render the graph, is Graphviz installed?")
		} else {
			fmt.Fprintf(w, "  PNG image created: %s\n", pngFile)
		}
	}

	if metricsArgs {
		fmt.Fprintln(w)
		return writeMetrics(w, m)
	}
	return nil
}

// renderCmd returns the Graphviz command drawing file dot into file png.
func renderCmd(dot, png string) *exec.Cmd {
	return exec.Command("dot", "-Tpng", dot, "-o", png)
}

func executeCommand(cmd *exec.Cmd) error {
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr

	log.Debugf("Running %#v", cmd.Args)
	return cmd.Run()
}
