package config

import "errors"

// Configuration errors
var (
	// ErrConfigNotFound is returned when the configuration file does not exist.
	ErrConfigNotFound = errors.New("configuration file not found")

	// ErrInvalidWorkers is returned when the worker count is not positive.
	ErrInvalidWorkers = errors.New("invalid workers: must be positive")

	// ErrNoFormats is returned when no output format is selected.
	ErrNoFormats = errors.New("no output format selected")

	// ErrSameDirectory is returned when the source and destination are the same directory.
	ErrSameDirectory = errors.New("source and destination must differ")
)
