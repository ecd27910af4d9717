// ctestdash turns a CTest dashboard file into per-label CI reports.
//
// Usage:
//
//	ctestdash [flags] <tester> <platform>
//
// Reads Test.xml (or -input) and writes, under the output directory:
//
//	results_<tester>_<platform>.txt        one "<label> <y|n|w>" line per label, appended
//	<label>/error.txt                      pass/fail line per test
//	<label>/ProgramOutput.<test>           captured output per test
//	<label>/TestReport_<tester>_<platform> consolidated report
//
// A label summary is printed on stdout:
//
//	terminal  styled output (default when TTY)
//	llm       plain text (default when piped)
//	json      structured JSON for automation
package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"os"

	"go.uber.org/zap"
	"golang.org/x/term"

	"github.com/dkoosis/ctestdash/internal/config"
	"github.com/dkoosis/ctestdash/internal/logging"
	"github.com/dkoosis/ctestdash/internal/version"
	"github.com/dkoosis/ctestdash/pkg/ctestxml"
	"github.com/dkoosis/ctestdash/pkg/dashreport"
	"github.com/dkoosis/ctestdash/pkg/mapper"
	"github.com/dkoosis/ctestdash/pkg/render"
)

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

func run(args []string, stdout, stderr io.Writer) int {
	fs := flag.NewFlagSet("ctestdash", flag.ContinueOnError)
	fs.SetOutput(stderr)
	fs.Usage = func() {
		fmt.Fprintf(stderr, "Usage: ctestdash [flags] <tester> <platform>\n")
		fs.PrintDefaults()
	}
	inputFlag := fs.String("input", "", "CTest dashboard file (default \"Test.xml\")")
	outFlag := fs.String("out", "", "Output root directory (default \".\")")
	configFlag := fs.String("config", "", "Config file (default .ctestdash.yaml, then user config dir)")
	aggregateFlag := fs.String("aggregate", "", "Label result policy: last-write, max-severity")
	formatFlag := fs.String("format", "", "Summary format: auto, terminal, llm, json")
	themeFlag := fs.String("theme", "", "Theme: default, orca, mono")
	noColorFlag := fs.Bool("no-color", false, "Disable colors in terminal output")
	strictFlag := fs.Bool("strict", false, "Exit 1 when any label result is n")
	verboseFlag := fs.Bool("v", false, "Verbose logging")
	versionFlag := fs.Bool("version", false, "Print version and exit")
	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return 0
		}
		return 2
	}

	if *versionFlag {
		fmt.Fprintln(stdout, version.String())
		return 0
	}

	if fs.NArg() != 2 {
		fmt.Fprintf(stderr, "ctestdash: expected <tester> <platform>, got %d argument(s)\n", fs.NArg())
		fs.Usage()
		return 2
	}
	tester, platform := fs.Arg(0), fs.Arg(1)

	cli := config.CliFlags{
		Input:     *inputFlag,
		OutputDir: *outFlag,
		Aggregate: *aggregateFlag,
		Format:    *formatFlag,
		Theme:     *themeFlag,
		Verbose:   *verboseFlag,
		NoColor:   *noColorFlag,
		Strict:    *strictFlag,
	}
	fs.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "v":
			cli.VerboseSet = true
		case "no-color":
			cli.NoColorSet = true
		}
	})

	cfg, err := loadConfig(cli, *configFlag)
	if err != nil {
		fmt.Fprintf(stderr, "ctestdash: %v\n", err)
		return 2
	}

	logger := logging.New(stderr, cfg.Verbose)
	defer func() { _ = logger.Sync() }()
	if cfg.LookupErr != nil {
		logger.Debug("config lookup failed, using defaults", zap.Error(cfg.LookupErr))
	}
	if cfg.ConfigPath != "" {
		logger.Debug("loaded config", zap.String("path", cfg.ConfigPath))
	}

	results, stats, err := generate(cfg, tester, platform, logger)
	if err != nil {
		fmt.Fprintf(stderr, "ctestdash: %v\n", err)
		return 2
	}

	patterns := mapper.FromDashboard(results, stats)
	src := render.Source{Tester: tester, Platform: platform}
	fmt.Fprint(stdout, selectRenderer(resolveFormat(cfg.Format, stdout), cfg, src, stdout).Render(patterns))
	return exitCode(results, cfg.Strict)
}

func loadConfig(cli config.CliFlags, path string) (*config.ResolvedConfig, error) {
	var (
		appCfg *config.AppConfig
		err    error
	)
	if path != "" {
		appCfg, err = config.LoadFile(path)
	} else {
		appCfg, err = config.LoadConfig()
	}
	if err != nil {
		return nil, err
	}
	return config.ResolveConfig(cli, appCfg)
}

// generate runs the load, group and report pipeline.
func generate(cfg *config.ResolvedConfig, tester, platform string, logger *zap.Logger) ([]dashreport.LabelResult, ctestxml.Stats, error) {
	records, err := ctestxml.ReadFile(cfg.Input, ctestxml.Options{UnknownLabel: cfg.UnknownLabel})
	if err != nil {
		return nil, ctestxml.Stats{}, fmt.Errorf("parsing %s: %w", cfg.Input, err)
	}

	groups := ctestxml.GroupByLabel(records, cfg.LabelSuffix)
	logger.Debug("parsed dashboard",
		zap.String("input", cfg.Input),
		zap.Int("tests", len(records)),
		zap.Int("labels", groups.Len()),
		zap.Strings("label_names", groups.Labels()))

	layout := dashreport.Layout{Root: cfg.OutputDir, Tester: tester, Platform: platform}
	results, err := dashreport.New(layout, cfg.Policy, logger).Run(groups)
	if err != nil {
		return nil, ctestxml.Stats{}, fmt.Errorf("writing reports: %w", err)
	}
	return results, ctestxml.ComputeStats(records, cfg.UnknownLabel), nil
}

func selectRenderer(mode string, cfg *config.ResolvedConfig, src render.Source, w io.Writer) render.Renderer {
	switch mode {
	case "json":
		return render.NewJSON(src)
	case "llm":
		return render.NewLLM()
	default:
		theme := render.ThemeByName(cfg.Theme)
		if cfg.NoColor {
			theme = render.MonoTheme()
		}
		width := 80
		if f, ok := w.(*os.File); ok {
			if tw, _, err := term.GetSize(int(f.Fd())); err == nil && tw > 0 {
				width = tw
			}
		}
		return render.NewTerminal(theme, width)
	}
}

func resolveFormat(format string, w io.Writer) string {
	if format != "auto" {
		return format
	}
	// Auto-detect: TTY = terminal, piped = llm
	if f, ok := w.(*os.File); ok && term.IsTerminal(int(f.Fd())) {
		return "terminal"
	}
	return "llm"
}

// exitCode returns 0 unless strict is set and some label result is n.
func exitCode(results []dashreport.LabelResult, strict bool) int {
	if !strict {
		return 0
	}
	for _, r := range results {
		if r.Code == ctestxml.CodeFailed {
			return 1
		}
	}
	return 0
}
