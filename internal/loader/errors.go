package loader

import "errors"

// Sentinel kinds for import and maintenance failures.
var (
	// ErrNoRecords means the import payload contained nothing usable.
	ErrNoRecords = errors.New("no achievement records to import")

	// ErrBadCSV means the CSV payload could not be parsed or is missing
	// required header columns.
	ErrBadCSV = errors.New("malformed csv payload")
)
