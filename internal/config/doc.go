// Package config defines the format-agnostic sweep model: the parameter
// axes and scalar constants that describe one job table, plus the Loader
// interface implemented by format-specific definition readers.
package config
