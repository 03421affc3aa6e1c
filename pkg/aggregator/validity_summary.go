package aggregator

import (
	"context"
	"runtime"

	"addressvalidator/pkg/api/address"
	apiAgg "addressvalidator/pkg/api/aggregator"
	apiParse "addressvalidator/pkg/api/parse"

	"github.com/cockroachdb/apd/v3"
	"golang.org/x/sync/errgroup"
)

var (
	_ apiAgg.ValidityCount     = (*validityCount)(nil)
	_ apiAgg.MissingFieldCount = (*missingFieldCount)(nil)
	_ apiAgg.Summary           = (*summary)(nil)
	_ apiAgg.SummaryAggregator = (*validitySummary)(nil)

	shareCtx apd.Context = apd.Context{
		Precision:   50,
		MaxExponent: apd.MaxExponent,
		MinExponent: apd.MinExponent,
		Traps:       apd.DefaultTraps,
		Rounding:    apd.RoundHalfEven, // Banker's rounding for reported shares
	}
)

type validityCount struct {
	validity address.Validity
	count    int64
	share    string
}

func (v validityCount) Validity() address.Validity { return v.validity }
func (v validityCount) Count() int64               { return v.count }
func (v validityCount) Share() string              { return v.share }

type missingFieldCount struct {
	component address.Component
	count     int64
}

func (m missingFieldCount) Component() address.Component { return m.component }
func (m missingFieldCount) Count() int64                 { return m.count }

type summary struct {
	total      int64
	validities []apiAgg.ValidityCount
	missing    []apiAgg.MissingFieldCount
}

func (s *summary) Total() int64                                { return s.total }
func (s *summary) Validities() []apiAgg.ValidityCount          { return s.validities }
func (s *summary) MissingRequired() []apiAgg.MissingFieldCount { return s.missing }

// tally is one worker's private counts, merged after the pool drains.
type tally struct {
	validities map[address.Validity]int64
	missing    map[address.Component]int64
	total      int64
}

func newTally() *tally {
	return &tally{
		validities: make(map[address.Validity]int64),
		missing:    make(map[address.Component]int64),
	}
}

// validitySummary classifies a stream of blobs with a worker pool and
// reduces the outcomes to per-validity counts with exact percentage shares.
type validitySummary struct {
	parser  apiParse.AddressParser
	workers int
}

// NewValiditySummary creates a summary aggregator over the given parser.
func NewValiditySummary(parser apiParse.AddressParser, opts ...SummaryOption) (apiAgg.SummaryAggregator, error) {
	if parser == nil {
		return nil, errNilParser
	}
	a := &validitySummary{parser: parser}
	for _, opt := range opts {
		if err := opt(a); err != nil {
			return nil, err
		}
	}
	if a.workers == 0 {
		a.workers = runtime.GOMAXPROCS(0)
	}
	return a, nil
}

// Process implements aggregators.SummaryAggregator. The parser is pure and
// shared freely, so the workers only coordinate on the input channel.
func (a *validitySummary) Process(ctx context.Context, blobs <-chan string) (apiAgg.Summary, error) {
	tallies := make([]*tally, a.workers)
	for i := range tallies {
		tallies[i] = newTally()
	}

	eg, ctx := errgroup.WithContext(ctx)
	done := ctx.Done()
	for i := 0; i < a.workers; i++ {
		local := tallies[i]
		eg.Go(func() error {
			for {
				select {
				case <-done:
					return ctx.Err()
				case blob, ok := <-blobs:
					if !ok {
						return nil
					}
					parsed, validity := a.parser.Parse(blob)
					local.total++
					local.validities[validity]++
					if validity != address.Valid {
						for _, c := range parsed.MissingRequired() {
							local.missing[c]++
						}
					}
				}
			}
		})
	}
	if err := eg.Wait(); err != nil {
		return nil, err
	}

	merged := newTally()
	for _, t := range tallies {
		merged.total += t.total
		for v, n := range t.validities {
			merged.validities[v] += n
		}
		for c, n := range t.missing {
			merged.missing[c] += n
		}
	}
	return reduce(merged)
}

// reduce renders the merged counts, strongest classification first.
func reduce(t *tally) (apiAgg.Summary, error) {
	s := &summary{total: t.total}

	order := address.AllValidities()
	for i := len(order) - 1; i >= 0; i-- {
		v := order[i]
		count := t.validities[v]
		pct, err := share(count, t.total)
		if err != nil {
			return nil, err
		}
		s.validities = append(s.validities, validityCount{
			validity: v,
			count:    count,
			share:    pct,
		})
	}

	for _, c := range address.AllComponents() {
		if count, ok := t.missing[c]; ok && count > 0 {
			s.missing = append(s.missing, missingFieldCount{component: c, count: count})
		}
	}
	return s, nil
}

// share renders count/total as a percentage with two decimal places.
func share(count, total int64) (string, error) {
	if total == 0 {
		return "0.00", nil
	}
	q := apd.New(0, 0)
	if _, err := shareCtx.Quo(q, apd.New(count*100, 0), apd.New(total, 0)); err != nil {
		return "", err
	}
	if _, err := shareCtx.Quantize(q, q, -2); err != nil {
		return "", err
	}
	return q.Text('f'), nil
}
