package csvparser

import "strings"

// BlobSourceOption configures a blob source.
type BlobSourceOption func(*blobSource) error

// WithBlobColumn selects the blob column by header lookup.
func WithBlobColumn(name string) BlobSourceOption {
	return func(s *blobSource) error {
		name = strings.TrimSpace(name)
		if name == "" {
			return errBlobColumnNotSpecified
		}
		header := s.stream.GetHeader()
		if len(header) == 0 {
			return errNoHeader
		}
		for i, col := range header {
			if strings.EqualFold(strings.TrimSpace(col), name) {
				s.blobIdx = i
				return nil
			}
		}
		return errBlobColumnMissing
	}
}

// WithBlobColumnIndex selects the blob column by index.
func WithBlobColumnIndex(idx int) BlobSourceOption {
	return func(s *blobSource) error {
		if idx < 0 {
			return errBlobColumnIndexNegative
		}
		s.blobIdx = idx
		return nil
	}
}
