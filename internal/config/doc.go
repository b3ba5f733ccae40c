// Package config assembles the case runner's configuration. Sources are
// layered from lowest to highest priority:
//
//  1. Defaults (in code)
//  2. An optional YAML file (-config flag or ALGOKIT_CONFIG)
//  3. Environment variables (ALGOKIT_*)
//  4. Command-line flags
//
// The merged result is checked with go-playground/validator struct tags.
package config
