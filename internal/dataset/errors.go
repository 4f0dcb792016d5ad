package dataset

import "errors"

// Sentinel errors surfaced by discovery. Handlers map these to RFC 7807
// problem documents; a file whose name matches no school is not an error
// and is skipped silently.
var (
	// ErrMissingDirectory indicates the configured data directory does not exist.
	ErrMissingDirectory = errors.New("data directory not found")

	// ErrMissingSpreadsheet indicates no growth spreadsheet was found in the data directory.
	ErrMissingSpreadsheet = errors.New("growth spreadsheet not found")

	// ErrEmptyDataset indicates a load succeeded but produced zero rows.
	ErrEmptyDataset = errors.New("dataset contains no rows")
)
