package main

import (
	"fmt"
	"io"
	"os"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/StefanJevtic63/ar/dp"
)

func newRootCmd() *cobra.Command {
	var verbose bool
	cmd := &cobra.Command{
		Use:   "dp [input.cnf]",
		Short: "dp decides CNF satisfiability with the Davis-Putnam resolution procedure",
		Long: `dp reads a single problem in the DIMACS CNF format and prints "true" if
it is satisfiable or "false" if it is not. No satisfying assignment is
produced; the procedure refutes by resolution rather than by search.

If no input file is given, dp reads from standard input.`,
		Args:          cobra.MaximumNArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			if verbose {
				logrus.SetLevel(logrus.DebugLevel)
			}
			var r io.Reader = cmd.InOrStdin()
			if len(args) == 1 {
				f, err := os.Open(args[0])
				if err != nil {
					return err
				}
				defer f.Close()
				r = f
			}
			problem, err := dp.ParseDIMACS(r)
			if err != nil {
				return fmt.Errorf("reading DIMACS CNF input: %w", err)
			}
			fmt.Fprintln(cmd.OutOrStdout(), dp.Solve(problem))
			return nil
		},
	}
	cmd.Flags().BoolVarP(&verbose, "verbose", "v", false,
		"trace every simplification and resolution step")
	return cmd
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		logrus.Error(err)
		os.Exit(1)
	}
}
