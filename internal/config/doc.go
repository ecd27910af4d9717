// Package config handles configuration loading and merging for ctestdash.
//
// # Configuration Precedence
//
// Values are resolved in the following order (highest to lowest priority):
//
//  1. CLI flags (-input, -out, -aggregate, -format, -theme, -no-color, -v)
//  2. Environment variables (CTESTDASH_DEBUG, CTESTDASH_NO_COLOR, NO_COLOR)
//  3. YAML config file (-config, else .ctestdash.yaml in the working directory or
//     ~/.config/ctestdash/.ctestdash.yaml)
//  4. Hardcoded defaults
//
// # Environment Variables
//
//   - CTESTDASH_NO_COLOR or NO_COLOR: "true" or "1" disables colors
//   - CTESTDASH_DEBUG: any non-empty value enables debug logging
package config
