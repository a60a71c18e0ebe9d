// KSP Telemetry Grapher main entrypoint.
//
// Reads a MechJeb (Kerbal Space Program mod) telemetry CSV, renders a fixed
// grid of engineering charts and either saves the figure to an image file,
// shows it in a preview window, or both.
//
// Design notes:
//   - Configuration is resolved as plain data first (paths, strings, bools);
//     file handles are opened afterwards in scoped steps so argument
//     validation never leaves a handle behind.
//   - Exit codes: 0 success, 1 runtime failure (unreadable file, bad cell,
//     missing data columns), 2 invalid argument combination.
//   - stdout carries the user-facing progress lines; diagnostics go to the
//     leveled stderr logger in src/telemetry.
package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/joho/godotenv"

	"github.com/al2me6/ksp-telemetry/src/config"
	"github.com/al2me6/ksp-telemetry/src/render"
	"github.com/al2me6/ksp-telemetry/src/telemetry"
	"github.com/al2me6/ksp-telemetry/src/view"
)

const (
	progName = "ksp-telemetry-grapher"
	version  = "2.0.0"
)

const usageLine = "usage: " + progName +
	" [--title TITLE] [--verbose] [--out OUTPUT] [--no-view] [--log-level LEVEL] TELEMETRY_FILE"

// cliConfig is plain data only; no handle is opened while building it.
type cliConfig struct {
	telemetryPath string
	title         string
	verbose       bool
	outPath       string
	noView        bool
	logLevel      string
}

// parseArgs resolves the invocation into a cliConfig. The one dependent-flag
// rule (--no-view requires --out) is enforced here, before any file is
// touched.
func parseArgs(args []string) (cliConfig, error) {
	var cfg cliConfig
	fs := flag.NewFlagSet(progName, flag.ContinueOnError)
	fs.SetOutput(io.Discard)
	fs.StringVar(&cfg.title, "title", "", "add TITLE to graph")
	fs.BoolVar(&cfg.verbose, "verbose", false, "graph additional data")
	fs.StringVar(&cfg.outPath, "out", "", "save graph to OUTPUT, allowable filetypes: png, jpg, jpeg, gif, bmp, tif, tiff")
	fs.BoolVar(&cfg.noView, "no-view", false, "do not view graph after generation (requires --out)")
	fs.StringVar(&cfg.logLevel, "log-level", "info", "log level (debug|info|warn|error)")
	if err := fs.Parse(args); err != nil {
		return cfg, err
	}
	if fs.NArg() != 1 {
		return cfg, errors.New("exactly one TELEMETRY_FILE argument is required")
	}
	cfg.telemetryPath = fs.Arg(0)
	if cfg.noView && cfg.outPath == "" {
		return cfg, errors.New("argument --no-view: requires argument --out")
	}
	return cfg, nil
}

func main() {
	os.Exit(run(os.Args[1:]))
}

func run(args []string) int {
	cfg, err := parseArgs(args)
	if err != nil {
		fmt.Fprintln(os.Stderr, usageLine)
		fmt.Fprintf(os.Stderr, "%s: error: %v\n", progName, err)
		return 2
	}
	telemetry.SetLogLevel(cfg.logLevel)

	fmt.Printf("KSP Telemetry Grapher v%s\n", version)

	// Optional .env in the working directory feeds the KSPGRAPH_* render
	// defaults; absence is not an error.
	if err := godotenv.Load(); err == nil {
		telemetry.Debugf("loaded .env")
	}
	rc, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "%s: error: %v\n", progName, err)
		return 1
	}

	fmt.Printf("Loading Mechjeb telemetry file %q\n", cfg.telemetryPath)
	tbl, err := telemetry.LoadFile(cfg.telemetryPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "%s: error: %v\n", progName, err)
		return 1
	}
	telemetry.Debugf("loaded %d rows, %d columns", tbl.Rows(), len(tbl.Headers()))

	img, err := render.Figure(tbl, render.Options{
		Verbose:    cfg.verbose,
		Title:      cfg.title,
		CellWidth:  rc.CellWidth,
		CellHeight: rc.CellHeight,
		HSpace:     rc.HSpace,
		WSpace:     rc.WSpace,
	})
	if err != nil {
		if errors.Is(err, telemetry.ErrColumnMissing) {
			fmt.Fprintln(os.Stderr, "Error: could not find correct data entries in the file passed!")
		} else {
			fmt.Fprintf(os.Stderr, "%s: error: %v\n", progName, err)
		}
		return 1
	}

	if cfg.outPath != "" {
		fmt.Printf("Saving graph to %q\n", cfg.outPath)
		if err := render.SaveFile(cfg.outPath, img); err != nil {
			fmt.Fprintf(os.Stderr, "%s: error: %v\n", progName, err)
			return 1
		}
	}

	if !cfg.noView {
		fmt.Println("Opening preview")
		view.Show(img, cfg.title)
	}

	fmt.Println("Done")
	return 0
}
