// Package driver implements the per-file DIMACS processing loop:
// enumerate input files in a directory, solve each with the selected
// engine, and print the "Processing.../<verdict>/[model]/Time taken"
// report. Parse and I/O errors are caught per-file and reported without
// aborting the run.
package driver

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/cnfkit/satcore/cdcl"
	"github.com/cnfkit/satcore/dimacs"
	"github.com/cnfkit/satcore/dp"
	"github.com/cnfkit/satcore/dpll"
	"github.com/cnfkit/satcore/errs"
	"github.com/cnfkit/satcore/report"
)

// Engine selects which of the three solving engines processes each file.
type Engine string

// The engines the driver can dispatch to; CDCL is the default.
const (
	EngineCDCL Engine = "cdcl"
	EngineDPLL Engine = "dpll"
	EngineDP   Engine = "dp"
)

// Config controls a single invocation of Run.
type Config struct {
	Dir    string // directory to walk for input files
	Files  []string
	Engine Engine
}

// inputExtensions lists the file-name suffixes Run treats as DIMACS
// input when walking a directory.
var inputExtensions = []string{".cnf.txt", ".cnf", ".txt"}

// Run enumerates the configured input files (or Config.Files, if set, for
// callers that already know which files to process) and solves each in
// turn, writing the per-file report to out.
func Run(ctx context.Context, cfg Config, out io.Writer, log *logrus.Logger) error {
	files := cfg.Files
	if files == nil {
		var err error
		files, err = discoverFiles(cfg.Dir)
		if err != nil {
			return errs.IOError{Path: cfg.Dir, Cause: err}
		}
	}
	if len(files) == 0 {
		fmt.Fprintln(out, "no input files found")
		return nil
	}
	for _, path := range files {
		processFile(ctx, path, cfg.Engine, out, log)
	}
	return nil
}

// discoverFiles lists, in sorted order, the files directly under dir whose
// name matches the input-extension policy.
func discoverFiles(dir string) ([]string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, err
	}
	var files []string
	for _, e := range entries {
		if e.IsDir() || !hasInputExtension(e.Name()) {
			continue
		}
		files = append(files, filepath.Join(dir, e.Name()))
	}
	sort.Strings(files)
	return files, nil
}

func hasInputExtension(name string) bool {
	for _, ext := range inputExtensions {
		if strings.HasSuffix(name, ext) {
			return true
		}
	}
	return false
}

func processFile(ctx context.Context, path string, engine Engine, out io.Writer, log *logrus.Logger) {
	fmt.Fprintf(out, "Processing %s...\n", filepath.Base(path))
	start := time.Now()
	if err := solveFile(ctx, path, engine, out, log); err != nil {
		log.WithError(err).WithField("file", path).Warn("could not process file")
		fmt.Fprintf(out, "Error processing %s: %s\n", filepath.Base(path), err)
	}
	fmt.Fprintf(out, "Time taken: %.6f seconds\n", time.Since(start).Seconds())
}

func solveFile(ctx context.Context, path string, engine Engine, out io.Writer, log *logrus.Logger) error {
	f, err := os.Open(path)
	if err != nil {
		return errs.IOError{Path: path, Cause: err}
	}
	defer f.Close()

	p, err := dimacs.Parse(f)
	if err != nil {
		return err
	}
	return SolveAndPrint(ctx, p, engine, out, log)
}

// SolveAndPrint runs the selected engine against an already-parsed
// problem and writes the verdict (and model, if any) to out. It is the
// single-file/stdin entry point the CLI uses when it isn't walking a
// directory.
func SolveAndPrint(ctx context.Context, p dimacs.Problem, engine Engine, out io.Writer, log *logrus.Logger) error {
	switch engine {
	case EngineDPLL:
		res := dpll.Solve(p)
		printVerdict(out, res.Sat, res.Model)
	case EngineDP:
		printVerdict(out, dp.Solve(p), nil)
	default:
		res, err := cdcl.Solve(ctx, p)
		if err != nil {
			return err
		}
		log.WithFields(logrus.Fields{
			"decisions":    res.Stats.Decisions,
			"propagations": res.Stats.Propagations,
			"conflicts":    res.Stats.Conflicts,
			"learned":      res.Stats.Learned,
		}).Debug("cdcl stats")
		printVerdict(out, res.Sat, res.Model)
	}
	return nil
}

// printVerdict prints the SAT/UNSAT line and, when a model is available,
// the assignment line. The DP engine never supplies a model: a nil model
// with sat == true prints the bare "SAT" verdict.
func printVerdict(out io.Writer, sat bool, model []int) {
	if !sat {
		fmt.Fprintln(out, report.FormatUNSAT())
		return
	}
	if model == nil {
		fmt.Fprintln(out, "SAT")
		return
	}
	fmt.Fprintln(out, report.FormatSAT(model))
}
