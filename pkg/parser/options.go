package parser

import "addressvalidator/pkg/lexicon"

type config struct {
	lex *lexicon.Lexicon
	// owned marks a private clone that options may keep extending.
	owned bool
}

func newConfig() *config {
	return &config{lex: lexicon.Default()}
}

func (c *config) writable() *lexicon.Lexicon {
	if !c.owned {
		c.lex = c.lex.Clone()
		c.owned = true
	}
	return c.lex
}

// Option configures a parser at construction time.
type Option func(*config) error

// WithLexicon replaces the default lexicon.
func WithLexicon(lex *lexicon.Lexicon) Option {
	return func(c *config) error {
		if lex == nil {
			return errNilLexicon
		}
		c.lex = lex
		c.owned = false
		return nil
	}
}

// WithCommunities adds known community names to the lexicon.
func WithCommunities(names ...string) Option {
	return func(c *config) error {
		if len(names) == 0 {
			return errNoNames
		}
		c.writable().Communities.Add(names...)
		return nil
	}
}

// WithCounties adds known county names to the lexicon.
func WithCounties(names ...string) Option {
	return func(c *config) error {
		if len(names) == 0 {
			return errNoNames
		}
		c.writable().Counties.Add(names...)
		return nil
	}
}
