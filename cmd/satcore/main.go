// Command satcore is a CLI driver over the CDCL, DPLL, and DP engines: it
// walks a directory for DIMACS input files (or reads a single file/stdin)
// and reports each formula's verdict.
package main

import (
	"context"
	"fmt"
	"os"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/cnfkit/satcore/dimacs"
	"github.com/cnfkit/satcore/internal/driver"
)

func main() {
	log := logrus.New()
	log.SetFormatter(&logrus.TextFormatter{DisableTimestamp: true})

	var (
		dir     string
		engine  string
		verbose bool
	)

	root := &cobra.Command{
		Use:   "satcore [file]",
		Short: "A CNF satisfiability solver (CDCL, DPLL, and DP engines)",
		Long: `satcore reads propositional formulas in DIMACS CNF format and decides
satisfiability using a CDCL, DPLL, or DP engine.

Given no file argument, it walks --dir for files matching the input-extension
policy (.txt, .cnf, .cnf.txt) and processes each one in turn. Given a file
argument, it reads only that file; "-" reads standard input.`,
		Args:          cobra.MaximumNArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			if verbose {
				log.SetLevel(logrus.DebugLevel)
			} else {
				log.SetLevel(logrus.WarnLevel)
			}

			eng := driver.Engine(engine)
			switch eng {
			case driver.EngineCDCL, driver.EngineDPLL, driver.EngineDP:
			default:
				return fmt.Errorf("unknown engine %q (want cdcl, dpll, or dp)", engine)
			}

			ctx := context.Background()

			if len(args) == 1 {
				return runSingleFile(ctx, args[0], eng, log)
			}
			return driver.Run(ctx, driver.Config{Dir: dir, Engine: eng}, os.Stdout, log)
		},
	}

	root.Flags().StringVar(&dir, "dir", ".", "directory to scan for DIMACS input files")
	root.Flags().StringVar(&engine, "engine", string(driver.EngineCDCL), "solving engine: cdcl, dpll, or dp")
	root.Flags().BoolVarP(&verbose, "verbose", "v", false, "log solver statistics to stderr")

	if err := root.Execute(); err != nil {
		log.Fatal(err)
	}
}

// runSingleFile handles the single-file/stdin invocation, reporting just
// the verdict (no "Processing.../Time taken" framing, since there's only
// one file and no directory walk to narrate).
func runSingleFile(ctx context.Context, path string, eng driver.Engine, log *logrus.Logger) error {
	var r *os.File
	if path == "-" {
		r = os.Stdin
	} else {
		f, err := os.Open(path)
		if err != nil {
			return err
		}
		defer f.Close()
		r = f
	}

	p, err := dimacs.Parse(r)
	if err != nil {
		return err
	}

	return driver.SolveAndPrint(ctx, p, eng, os.Stdout, log)
}
