package parser

import (
	"addressvalidator/pkg/api/address"
	apiParse "addressvalidator/pkg/api/parse"
	"addressvalidator/pkg/recognize"
	"addressvalidator/pkg/tokens"
)

var _ apiParse.AddressParser = (*addressParser)(nil)

// fieldState tracks the components matched so far during one parse. It
// implements recognize.State.
type fieldState map[address.Component]recognize.Field

var _ recognize.State = (fieldState)(nil)

// Has implements recognize.State.
func (s fieldState) Has(c address.Component) bool {
	_, ok := s[c]
	return ok
}

// PosOf implements recognize.State.
func (s fieldState) PosOf(c address.Component) (int, bool) {
	f, ok := s[c]
	return f.Pos, ok
}

// addressParser classifies free-text address blobs against the recognizer
// chain. The chain and its lexicons are fixed at construction, so a single
// instance serves any number of concurrent Parse calls without coordination.
type addressParser struct {
	recognizers []recognize.Recognizer
}

// New creates an address parser. Without options it uses the default
// lexicon.
func New(opts ...Option) (apiParse.AddressParser, error) {
	cfg := newConfig()
	for _, opt := range opts {
		if err := opt(cfg); err != nil {
			return nil, err
		}
	}
	return &addressParser{recognizers: recognize.All(cfg.lex)}, nil
}

// Parse implements parse.AddressParser. It is total: every input yields a
// classified result and the zero-structure case comes back as
// address.Unparseable, never as an error.
func (p *addressParser) Parse(input string) (address.Parsed, address.Validity) {
	cur := tokens.NewCursor(tokens.Tokenize(input))
	st := make(fieldState)

	for !cur.Done() {
		if !p.matchOne(cur, st) {
			// noise token, skip it
			cur.Advance(1)
		}
	}

	fields := make(map[address.Component]string, len(st))
	for c, f := range st {
		fields[c] = f.Text
	}
	parsed := address.NewParsed(fields)
	return parsed, classify(parsed, st)
}

// matchOne tries the not-yet-filled recognizers in standardized field order
// against the current cursor position. The first match wins, which resolves
// ambiguous tokens toward the field expected earliest.
func (p *addressParser) matchOne(cur *tokens.Cursor, st fieldState) bool {
	for _, r := range p.recognizers {
		if st.Has(r.Primary()) {
			continue
		}
		fields := r.Match(cur, st)
		if len(fields) == 0 {
			continue
		}
		for _, f := range fields {
			if !st.Has(f.Component) {
				st[f.Component] = f
			}
		}
		return true
	}
	return false
}
