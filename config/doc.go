// Package config loads and validates the settings shared by the parallel
// evaluator and the student query helper.
//
// Settings come from defaults, an optional YAML file, an optional .env file
// and the process environment, in increasing order of precedence.
// Environment keys carry the ITERPAR_ prefix, nested keys are joined by
// underscores:
//
//	ITERPAR_WORKERS=8
//	ITERPAR_LOGGER_LEVEL=debug
package config
