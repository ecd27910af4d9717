package config

import (
	"fmt"
	"os"
	"strconv"

	"github.com/dkoosis/ctestdash/pkg/ctestxml"
)

// CliFlags holds the values of command-line flags. Empty strings mean the
// flag was not given.
type CliFlags struct {
	Input     string
	OutputDir string
	Aggregate string
	Format    string
	Theme     string
	Verbose   bool
	NoColor   bool
	Strict    bool

	// Flags to track if they were explicitly set by the user
	VerboseSet bool
	NoColorSet bool
}

// ResolvedConfig holds the final configuration after applying all priority rules.
type ResolvedConfig struct {
	Input        string
	OutputDir    string
	Policy       ctestxml.Policy
	Format       string
	Theme        string
	UnknownLabel string
	LabelSuffix  string
	Verbose      bool
	NoColor      bool
	Strict       bool

	// Resolution metadata (for debugging)
	ConfigPath    string
	NoColorSource string // "cli", "env", "file", "default"
	LookupErr     error  // non-fatal config discovery failure
}

var validFormats = map[string]bool{"auto": true, "terminal": true, "llm": true, "json": true}

// ResolveConfig merges file settings, environment and CLI flags.
// appCfg may be nil when no config file was loaded.
func ResolveConfig(cli CliFlags, appCfg *AppConfig) (*ResolvedConfig, error) {
	if appCfg == nil {
		appCfg = &AppConfig{}
	}

	resolved := &ResolvedConfig{
		Input:         firstNonEmpty(cli.Input, appCfg.Input, DefaultInput),
		OutputDir:     firstNonEmpty(cli.OutputDir, appCfg.OutputDir, DefaultOutputDir),
		Format:        firstNonEmpty(cli.Format, appCfg.Format, DefaultFormat),
		Theme:         firstNonEmpty(cli.Theme, appCfg.Theme, DefaultTheme),
		UnknownLabel:  firstNonEmpty(appCfg.UnknownLabel, ctestxml.DefaultUnknownLabel),
		LabelSuffix:   ctestxml.DefaultLabelSuffix,
		Verbose:       appCfg.Verbose,
		NoColor:       appCfg.NoColor,
		Strict:        cli.Strict,
		ConfigPath:    appCfg.Path,
		LookupErr:     appCfg.LookupErr,
		NoColorSource: "default",
	}
	if appCfg.LabelSuffix != nil {
		resolved.LabelSuffix = *appCfg.LabelSuffix
	}
	if appCfg.NoColor {
		resolved.NoColorSource = "file"
	}

	policy, err := ctestxml.ParsePolicy(firstNonEmpty(cli.Aggregate, appCfg.Aggregate))
	if err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}
	resolved.Policy = policy

	// Resolve NoColor with priority: CLI > ENV > file > default
	if cli.NoColorSet {
		resolved.NoColor = cli.NoColor
		resolved.NoColorSource = "cli"
	} else if env := getEnvBool("CTESTDASH_NO_COLOR", "NO_COLOR"); env != nil {
		resolved.NoColor = *env
		resolved.NoColorSource = "env"
	}

	// Resolve Verbose with priority: CLI > ENV > file > default
	if cli.VerboseSet {
		resolved.Verbose = cli.Verbose
	} else if os.Getenv("CTESTDASH_DEBUG") != "" {
		resolved.Verbose = true
	}

	if !validFormats[resolved.Format] {
		return nil, fmt.Errorf("config validation failed: unknown format %q (expected auto, terminal, llm, json)", resolved.Format)
	}
	return resolved, nil
}

// getEnvBool returns the first parseable boolean among keys. NO_COLOR is
// conventionally "set means on", so any other non-empty value counts as true.
func getEnvBool(keys ...string) *bool {
	for _, key := range keys {
		val := os.Getenv(key)
		if val == "" {
			continue
		}
		b, err := strconv.ParseBool(val)
		if err != nil {
			b = true
		}
		return &b
	}
	return nil
}

func firstNonEmpty(vals ...string) string {
	for _, v := range vals {
		if v != "" {
			return v
		}
	}
	return ""
}
