package parser

import (
	"sort"

	"addressvalidator/pkg/api/address"
)

// classify turns the matched fields into the three-way validity outcome.
// Valid demands the required components and conventional ordering;
// recognized-but-incomplete or out-of-order input degrades to
// PartiallyValid, and no structure at all is Unparseable.
func classify(parsed address.Parsed, st fieldState) address.Validity {
	if parsed.Len() == 0 {
		return address.Unparseable
	}
	if len(parsed.MissingRequired()) > 0 {
		return address.PartiallyValid
	}
	if !inConventionalOrder(st) {
		return address.PartiallyValid
	}
	return address.Valid
}

// conventionalRank orders components as a conventionally written address
// lays them out. It follows the standardized field order except that the
// county name sits between the community and the state on the page.
func conventionalRank(c address.Component) int {
	if c == address.CountyName {
		return int(address.PostalCommunity)*2 + 1
	}
	return int(c) * 2
}

// inConventionalOrder reports whether the matched fields appeared in the
// input in conventional order. Fields recognized out of order (a postal
// code ahead of the street, a state ahead of the community) are kept but
// keep the address from classifying as Valid.
func inConventionalOrder(st fieldState) bool {
	type placement struct {
		rank int
		pos  int
	}
	placements := make([]placement, 0, len(st))
	for c, f := range st {
		placements = append(placements, placement{rank: conventionalRank(c), pos: f.Pos})
	}
	sort.Slice(placements, func(i, j int) bool {
		return placements[i].rank < placements[j].rank
	})

	last := -1
	for _, p := range placements {
		if p.pos < last {
			return false
		}
		if p.pos > last {
			last = p.pos
		}
	}
	return true
}
