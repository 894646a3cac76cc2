// Package logger is a standardized event log for the interpreter: one JSON
// object per line for each unit that was run, skipped or failed.
package logger
