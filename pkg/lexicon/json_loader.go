package lexicon

import (
	"context"
	"encoding/json"
	"io"
	"strings"

	apiStreams "addressvalidator/pkg/api/streams"
)

// section identifies the top-level lists an extension document may carry.
type section int

const (
	sectionNone section = iota
	sectionCommunities
	sectionCounties
)

// parseSection maps a top-level JSON key to its section.
func parseSection(key string) section {
	if strings.EqualFold(key, "communities") {
		return sectionCommunities
	} else if strings.EqualFold(key, "counties") {
		return sectionCounties
	}
	return sectionNone
}

// Extend returns a clone of base whose Communities and Counties sets carry
// the names listed in the JSON token stream. The expected document shape is
//
//	{"communities": ["Springfield", ...], "counties": ["Sangamon", ...]}
//
// Unknown top-level keys are ignored. The base lexicon is never touched.
func Extend(ctx context.Context, stream apiStreams.JsonStream, base *Lexicon) (*Lexicon, error) {
	if stream == nil {
		return nil, errNilJsonStream
	}
	if base == nil {
		return nil, errNilLexicon
	}

	lex := base.Clone()

	var depth int
	var lastKey string
	current := sectionNone

	for {
		tok, err := stream.ReadJsonToken(ctx)
		if err == io.EOF {
			return lex, nil
		}
		if err != nil {
			return nil, err
		}

		switch v := tok.(type) {
		case json.Delim:
			switch v {
			case '{', '[':
				if depth == 1 {
					current = parseSection(lastKey)
				}
				depth++
			case '}', ']':
				depth--
				if depth <= 1 {
					current = sectionNone
				}
			}
			lastKey = ""

		case string:
			if depth == 2 && current != sectionNone {
				// A name inside one of the recognized lists.
				switch current {
				case sectionCommunities:
					lex.Communities.Add(v)
				case sectionCounties:
					lex.Counties.Add(v)
				}
			} else {
				// An object key. Store it.
				lastKey = v
			}

		default:
			// Other value types (boolean, null, number).
		}
	}
}
