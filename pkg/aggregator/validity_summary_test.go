package aggregator

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"addressvalidator/pkg/api/address"
)

// stubParser classifies by canned input tags instead of real parsing.
type stubParser struct{}

func (stubParser) Parse(input string) (address.Parsed, address.Validity) {
	switch input {
	case "valid":
		return address.NewParsed(map[address.Component]string{
			address.StreetName:      "Main",
			address.PostalCommunity: "Springfield",
			address.PostalCode:      "62701",
		}), address.Valid
	case "partial":
		return address.NewParsed(map[address.Component]string{
			address.StreetName: "Main",
		}), address.PartiallyValid
	default:
		return address.NewParsed(nil), address.Unparseable
	}
}

func feed(blobs ...string) <-chan string {
	ch := make(chan string, len(blobs))
	for _, b := range blobs {
		ch <- b
	}
	close(ch)
	return ch
}

func TestProcess(t *testing.T) {
	agg, err := NewValiditySummary(stubParser{}, WithWorkers(4))
	require.NoError(t, err)

	got, err := agg.Process(context.Background(), feed("valid", "partial", "partial", ""))
	require.NoError(t, err)

	assert.Equal(t, int64(4), got.Total())

	validities := got.Validities()
	require.Len(t, validities, 3)

	assert.Equal(t, address.Valid, validities[0].Validity())
	assert.Equal(t, int64(1), validities[0].Count())
	assert.Equal(t, "25.00", validities[0].Share())

	assert.Equal(t, address.PartiallyValid, validities[1].Validity())
	assert.Equal(t, int64(2), validities[1].Count())
	assert.Equal(t, "50.00", validities[1].Share())

	assert.Equal(t, address.Unparseable, validities[2].Validity())
	assert.Equal(t, int64(1), validities[2].Count())
	assert.Equal(t, "25.00", validities[2].Share())

	missing := got.MissingRequired()
	require.Len(t, missing, 3)
	assert.Equal(t, address.StreetName, missing[0].Component())
	assert.Equal(t, int64(1), missing[0].Count())
	assert.Equal(t, address.PostalCommunity, missing[1].Component())
	assert.Equal(t, int64(3), missing[1].Count())
	assert.Equal(t, address.PostalCode, missing[2].Component())
	assert.Equal(t, int64(3), missing[2].Count())
}

func TestProcessShares(t *testing.T) {
	agg, err := NewValiditySummary(stubParser{})
	require.NoError(t, err)

	got, err := agg.Process(context.Background(), feed("valid", "partial", "partial"))
	require.NoError(t, err)

	validities := got.Validities()
	require.Len(t, validities, 3)
	assert.Equal(t, "33.33", validities[0].Share())
	assert.Equal(t, "66.67", validities[1].Share())
	assert.Equal(t, "0.00", validities[2].Share())
}

func TestProcessEmptyStream(t *testing.T) {
	agg, err := NewValiditySummary(stubParser{})
	require.NoError(t, err)

	got, err := agg.Process(context.Background(), feed())
	require.NoError(t, err)

	assert.Equal(t, int64(0), got.Total())
	for _, vc := range got.Validities() {
		assert.Equal(t, int64(0), vc.Count())
		assert.Equal(t, "0.00", vc.Share())
	}
	assert.Empty(t, got.MissingRequired())
}

func TestProcessCanceled(t *testing.T) {
	agg, err := NewValiditySummary(stubParser{})
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	blobs := make(chan string) // never closed
	_, err = agg.Process(ctx, blobs)
	assert.ErrorIs(t, err, context.Canceled)
}

func TestNewValiditySummaryArguments(t *testing.T) {
	_, err := NewValiditySummary(nil)
	assert.ErrorIs(t, err, errNilParser)

	_, err = NewValiditySummary(stubParser{}, WithWorkers(0))
	assert.ErrorIs(t, err, errBadWorkerCount)
}
