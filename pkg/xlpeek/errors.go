package xlpeek

import (
	"errors"
	"fmt"
)

// ErrFileNotFound indicates the input file does not exist.
var ErrFileNotFound = errors.New("file not found")

// InspectError represents a failure while reading a sheet.
type InspectError struct {
	SheetName string
	Stage     string // "dimensions", "cells", "used_range"
	Err       error
}

func (e *InspectError) Error() string {
	return fmt.Sprintf("inspect error in sheet %q (%s): %v", e.SheetName, e.Stage, e.Err)
}

func (e *InspectError) Unwrap() error {
	return e.Err
}

// NewInspectError creates a new InspectError.
func NewInspectError(sheetName, stage string, err error) *InspectError {
	return &InspectError{
		SheetName: sheetName,
		Stage:     stage,
		Err:       err,
	}
}
