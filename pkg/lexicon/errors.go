package lexicon

import "errors"

var (
	errNilJsonStream = errors.New("lexicon json stream cannot be nil")
	errNilLexicon    = errors.New("base lexicon cannot be nil")
)
