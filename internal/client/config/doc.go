// Package config loads runtime settings for the LibriVault CLI.
//
// Sources are applied in order of increasing precedence:
//
//  1. Built-in defaults (Config.LoadDefaults).
//  2. A JSON file named by -c/-config.
//  3. Environment variables (LIBRIVAULT_*), with a .env overlay.
//  4. Command-line flags (-a, -t, -d, -l).
//
// The JSON loader uses timex.Duration for the timeout, so values can be
// either strings like "15s" or integer nanoseconds.
package config
