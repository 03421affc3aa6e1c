package tokens

// Cursor is a forward-only view over a token slice. Recognizers peek at the
// tokens ahead of the position and advance it only when they match, so a
// failed attempt never consumes anything.
type Cursor struct {
	toks []Token
	pos  int
}

// NewCursor returns a cursor positioned at the first token.
func NewCursor(toks []Token) *Cursor {
	return &Cursor{toks: toks}
}

// Done reports whether every token has been consumed.
func (c *Cursor) Done() bool {
	return c.pos >= len(c.toks)
}

// Pos returns the index of the next token to consume.
func (c *Cursor) Pos() int {
	return c.pos
}

// Len returns the total number of tokens.
func (c *Cursor) Len() int {
	return len(c.toks)
}

// Remaining returns the number of unconsumed tokens.
func (c *Cursor) Remaining() int {
	if c.Done() {
		return 0
	}
	return len(c.toks) - c.pos
}

// Peek returns the next token without consuming it. It must not be called
// on a finished cursor.
func (c *Cursor) Peek() Token {
	return c.toks[c.pos]
}

// PeekAt returns the token n positions ahead of the next one, if any.
func (c *Cursor) PeekAt(n int) (Token, bool) {
	i := c.pos + n
	if i < 0 || i >= len(c.toks) {
		return Token{}, false
	}
	return c.toks[i], true
}

// At returns the token at an absolute index, if any.
func (c *Cursor) At(i int) (Token, bool) {
	if i < 0 || i >= len(c.toks) {
		return Token{}, false
	}
	return c.toks[i], true
}

// Next consumes and returns the next token. It must not be called on a
// finished cursor.
func (c *Cursor) Next() Token {
	t := c.toks[c.pos]
	c.pos++
	return t
}

// Advance consumes n tokens.
func (c *Cursor) Advance(n int) {
	c.pos += n
	if c.pos > len(c.toks) {
		c.pos = len(c.toks)
	}
}
