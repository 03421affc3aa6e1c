package aggregator

import "errors"

var (
	errNilParser      = errors.New("address parser cannot be nil")
	errBadWorkerCount = errors.New("worker count must be at least one")
)
