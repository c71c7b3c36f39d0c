package dataset

import "errors"

var (
	// ErrNilRow reports a nil *kinrow.Row passed to Append.
	ErrNilRow = errors.New("dataset: nil row")

	// ErrUnknownColumn reports a label the table has never seen.
	ErrUnknownColumn = errors.New("dataset: unknown column")

	// ErrEmptyTable reports an operation that needs at least one row.
	ErrEmptyTable = errors.New("dataset: empty table")

	// ErrBadWorkerCount reports a non-positive worker count.
	ErrBadWorkerCount = errors.New("dataset: worker count must be positive")
)
