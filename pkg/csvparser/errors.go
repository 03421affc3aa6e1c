package csvparser

import "errors"

var (
	// Error definitions
	errNilCsvStream            = errors.New("csv stream cannot be nil")
	errNoHeader                = errors.New("csv stream has no header")
	errBlobColumnNotSpecified  = errors.New("blob column not specified")
	errBlobColumnIndexNegative = errors.New("blob column index cannot be negative")
	errBlobColumnMissing       = errors.New("blob column not found in CSV header")
	errNilSourceOrStream       = errors.New("source or stream is nil")
)
