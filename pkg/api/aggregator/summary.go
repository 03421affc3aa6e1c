package aggregators

import (
	"context"

	"addressvalidator/pkg/api/address"
)

// ValidityCount holds how many blobs fell into one classification, with the
// classification's exact percentage share of the total.
type ValidityCount interface {
	Validity() address.Validity
	Count() int64
	// Share returns the percentage of the total carried by this
	// classification, rendered with two decimal places.
	Share() string
}

// MissingFieldCount holds how many blobs were missing one required
// component.
type MissingFieldCount interface {
	Component() address.Component
	Count() int64
}

// Summary is the aggregated outcome of classifying a stream of blobs.
type Summary interface {
	// Total returns the number of blobs processed.
	Total() int64

	// Validities returns one count per classification, strongest first.
	Validities() []ValidityCount

	// MissingRequired returns per-component counts of absent required
	// fields, in standardized field order.
	MissingRequired() []MissingFieldCount
}

// SummaryAggregator consumes raw blobs from a channel, classifies each one,
// and reduces the results to a Summary.
type SummaryAggregator interface {
	Process(ctx context.Context, blobs <-chan string) (Summary, error)
}
