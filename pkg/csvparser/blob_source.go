package csvparser

import (
	"context"
	"io"
	"log/slog"
	"strings"

	apiParse "addressvalidator/pkg/api/parse"
	apiStreams "addressvalidator/pkg/api/streams"
)

var _ apiParse.BlobParser = (*blobSource)(nil)

// blobSource extracts raw address blobs from one column of a CSV stream.
// It implements the BlobParser interface.
type blobSource struct {
	stream  apiStreams.CsvStream
	blobIdx int
}

// NewBlobSource creates a blob source over the given CSV stream. The blob
// column must be selected with one of the options.
func NewBlobSource(stream apiStreams.CsvStream, opts ...BlobSourceOption) (apiParse.BlobParser, error) {
	if stream == nil {
		return nil, errNilCsvStream
	}
	s := &blobSource{
		stream:  stream,
		blobIdx: -1,
	}
	for _, opt := range opts {
		if err := opt(s); err != nil {
			return nil, err
		}
	}
	if s.blobIdx == -1 {
		return nil, errBlobColumnNotSpecified
	}
	return s, nil
}

// ParseBlobs reads the CSV stream and sends the blob column of every record
// to the provided channel. Records too short to carry the column are
// skipped with a warning; blank blobs are forwarded as-is, since an empty
// address is a legitimate input for the classifier. The channel is closed
// when the stream ends or an error occurs.
func (s *blobSource) ParseBlobs(ctx context.Context, out chan<- string) error {
	if s == nil || s.stream == nil {
		close(out)
		return errNilSourceOrStream
	}

	defer close(out)

	for {
		record, err := s.stream.ReadCsvRecord(ctx)
		if err == io.EOF {
			slog.InfoContext(ctx, "End of CSV stream")
			return nil
		}
		if err != nil {
			return err
		}

		if len(record) <= s.blobIdx {
			slog.WarnContext(ctx, "Record has too few columns", slog.Int("columns", len(record)))
			continue
		}

		select {
		case <-ctx.Done():
			return ctx.Err()
		default:
			out <- strings.TrimSpace(record[s.blobIdx])
		}
	}
}
