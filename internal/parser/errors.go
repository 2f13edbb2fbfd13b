package parser

import (
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrUnreadable marks files that could not be opened or read.
	ErrUnreadable = errors.New("file unreadable")
	// ErrNoTransactions marks files that parsed but yielded zero valid rows.
	ErrNoTransactions = errors.New("no transactions found")
	// ErrNoFiles is returned by FindRecent when the scan comes up empty.
	ErrNoFiles = errors.New("no statement files found")
)

func unreadable(err error) error {
	return fmt.Errorf("%w: %v", ErrUnreadable, err)
}

// SchemaError reports that a required column could not be resolved in a CSV.
type SchemaError struct {
	File    string
	Missing []string
}

func (e *SchemaError) Error() string {
	return fmt.Sprintf("%s: could not identify required columns: %s", e.File, strings.Join(e.Missing, ", "))
}

// FileError records the failure of a single file within a batch.
type FileError struct {
	File string
	Err  error
}

func (e FileError) Error() string { return fmt.Sprintf("%s: %v", e.File, e.Err) }

func (e FileError) Unwrap() error { return e.Err }

// BatchError is returned when no file in a batch parsed successfully.
type BatchError struct {
	Failures []FileError
}

func (e *BatchError) Error() string {
	names := make([]string, len(e.Failures))
	for i, f := range e.Failures {
		names[i] = f.File
	}
	return fmt.Sprintf("failed to parse any of %d files: %s", len(e.Failures), strings.Join(names, ", "))
}
