package service

import (
	"errors"
	"fmt"
)

// SchemaError reports a sheet that is missing a column the pipeline cannot
// work without. It aborts the request; rows are never fabricated around a
// missing column.
type SchemaError struct {
	Sheet  string
	Column string
}

func (e *SchemaError) Error() string {
	return fmt.Sprintf("sheet %q has no %q column", e.Sheet, e.Column)
}

// ErrNoMatchingRows is the empty-result outcome: the selection matched no
// row with positive Units in any sheet. It is reported to the user as an
// informational notice, not treated as a failure.
var ErrNoMatchingRows = errors.New("no matching rows found with positive units")
