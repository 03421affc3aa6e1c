package streams

import (
	"context"
	"encoding/json"
	"io"

	iface "addressvalidator/pkg/api/streams"
)

type jsonReader struct {
	decoder *json.Decoder
}

var _ iface.JsonStream = (*jsonReader)(nil)

// NewJsonStream creates a new JSON token stream from an io.Reader, e.g. a
// lexicon extension document.
func NewJsonStream(reader io.Reader) iface.JsonStream {
	return &jsonReader{decoder: json.NewDecoder(reader)}
}

// ReadJsonToken implements JsonStream.
func (j *jsonReader) ReadJsonToken(ctx context.Context) (json.Token, error) {
	if j == nil || j.decoder == nil {
		return nil, io.EOF
	}
	select {
	case <-ctx.Done():
		return nil, ctx.Err()
	default:
		return j.decoder.Token()
	}
}
