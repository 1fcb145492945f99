package text

// ParseError reports a token of the wrong kind encountered while
// parsing.
type ParseError struct {
	Pos      Position
	Expected string
	Got      string
}

func (e *ParseError) Error() string {
	return "yagl: parse error at " + e.Pos.String() + ": expected " + e.Expected + ", got " + e.Got
}

// Stream is a small peekable wrapper over a Lexer; it centralises the
// "expect token kind X" pattern so every Parse method stays a flat
// sequence of expectations instead of repeating lookahead logic.
type Stream struct {
	lex  *Lexer
	peek *Token
}

func NewStream(src []byte) *Stream {
	return &Stream{lex: NewLexer(src)}
}

func (s *Stream) Peek() (Token, error) {
	if s.peek == nil {
		t, err := s.lex.Next()
		if err != nil {
			return Token{}, err
		}
		s.peek = &t
	}
	return *s.peek, nil
}

func (s *Stream) Next() (Token, error) {
	t, err := s.Peek()
	if err != nil {
		return Token{}, err
	}
	s.peek = nil
	return t, nil
}

func (s *Stream) Expect(kind Kind) (Token, error) {
	t, err := s.Next()
	if err != nil {
		return Token{}, err
	}
	if t.Kind != kind {
		return Token{}, &ParseError{Pos: t.Pos, Expected: kind.String(), Got: t.Describe()}
	}
	return t, nil
}

func (s *Stream) ExpectIdent(name string) (Token, error) {
	t, err := s.Next()
	if err != nil {
		return Token{}, err
	}
	if t.Kind != Ident || t.Text != name {
		return Token{}, &ParseError{Pos: t.Pos, Expected: "'" + name + "'", Got: t.Describe()}
	}
	return t, nil
}
