package parse

import (
	"context"

	"addressvalidator/pkg/api/address"
)

// AddressParser decomposes one free-text address blob into structured
// components plus a validity classification.
//
// Parse is total: every input, however malformed, produces a classified
// result. Malformed input is not an error, it is the expected case, so the
// failure mode is address.Unparseable rather than an error return.
// Implementations must be safe for unrestricted concurrent use.
type AddressParser interface {
	Parse(input string) (address.Parsed, address.Validity)
}

// BlobParser streams raw address blobs out of some record source and sends
// them to a channel. The channel is closed when the source is exhausted or
// an error occurs.
type BlobParser interface {
	ParseBlobs(ctx context.Context, out chan<- string) error
}
