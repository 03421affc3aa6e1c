package parser

import "errors"

var (
	errNilLexicon = errors.New("lexicon cannot be nil")
	errNoNames    = errors.New("at least one name must be given")
)
