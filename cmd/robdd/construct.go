// Copyright (c) 2021 Silvano DAL ZILIO
//
// MIT License

package main

import (
	"fmt"
	"io"

	"github.com/dalzilio/robdd"
	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

const (
	constructBlif = "test_b.blif"
	constructDot  = "test_d.dot"
	modelName     = "test"
)

var varsArgs int

// newConstructCmd returns a command that builds the conjunction of the negated
// inputs and dumps it.
func newConstructCmd() *cobra.Command {
	constructCmd := &cobra.Command{
		Use:   "construct",
		Short: "Build a small BDD and export it",
		Long: `The robdd construct command builds the conjunction of the negation
of all the variables, in_0 to in_{vars-1}, and writes it as a BLIF netlist in
test_b.blif and as a Graphviz graph in test_d.dot.

        $ robdd construct --vars 4
        `,
		Args: cobra.NoArgs,
		RunE: constructFunc,
	}

	constructCmd.Flags().IntVarP(&varsArgs, "vars", "n", 4, "The number of variables.")

	return constructCmd
}

func constructFunc(cmd *cobra.Command, args []string) error {
	if varsArgs < 1 {
		return errors.Errorf("the number of variables must be positive, got %d", varsArgs)
	}
	m, err := newManager(varsArgs)
	if err != nil {
		return err
	}
	defer quit(m)

	f, err := negatedConjunction(m)
	if err != nil {
		return err
	}
	defer m.DelRef(f)
	log.Debug(m.Stats())

	roots := []robdd.Edge{f}
	inames := make([]string, varsArgs)
	for i := range inames {
		inames[i] = fmt.Sprintf("in_%d", i)
	}
	onames := []string{"f"}

	blifPath := outputPath(constructBlif)
	if err := writeFile(blifPath, func(w io.Writer) error {
		return m.DumpBlif(w, roots, inames, onames, modelName)
	}); err != nil {
		return err
	}
	dotPath := outputPath(constructDot)
	if err := writeFile(dotPath, func(w io.Writer) error {
		return m.DumpDot(w, roots, inames, onames)
	}); err != nil {
		return err
	}
	fmt.Fprintf(cmd.OutOrStdout(), "Files created: %s %s\n", blifPath, dotPath)
	return nil
}

// negatedConjunction returns the conjunction of the negation of all the
// variables of m, held once. On error nothing stays held.
func negatedConjunction(m *robdd.Manager) (robdd.Edge, error) {
	f := m.True()
	for i := m.Varnum() - 1; i >= 0; i-- {
		tmp := m.AddRef(m.And(m.NIthvar(i), f))
		m.DelRef(f)
		if tmp == robdd.EdgeNull {
			return robdd.EdgeNull, errors.Wrap(m.Err(), "building the conjunction")
		}
		f = tmp
	}
	return f, nil
}
