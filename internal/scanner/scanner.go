// Package scanner turns Lox source text into a token stream, using
// start/current/line index bookkeeping over the source string. The lexeme
// rules cover this language's punctuation and literals only — no bitwise
// operators, no compound assignment, no hex/octal/scientific number
// literals, no escape sequences in strings.
package scanner

import (
	"fmt"
	"io"
	"unicode/utf8"

	"github.com/koddsson/lox-interpreter/internal/lexerr"
	"github.com/koddsson/lox-interpreter/internal/token"
)

// Clean and LexicalError are the two scan-status values Tokenize can return.
const (
	Clean        = 0
	LexicalError = 65
)

// Scanner performs single-pass lexical analysis of Lox source code.
type Scanner struct {
	source string

	start   int // index of the current lexeme's first byte
	current int // index of the next byte to read
	line    int // 1-based line of the current lexeme

	tokens []token.Token
	errs   []*lexerr.LexError
}

// New creates a Scanner ready to tokenize source.
func New(source string) *Scanner {
	return &Scanner{source: source, line: 1}
}

// Tokenize scans source in a single pass and returns its token sequence
// (always EOF-terminated) together with a scan status: Clean or
// LexicalError. Diagnostics are written to stderr once the scan completes,
// in the order they were discovered.
func Tokenize(source string, stderr io.Writer) ([]token.Token, int) {
	s := New(source)
	tokens := s.ScanTokens()
	for _, e := range s.errs {
		fmt.Fprintln(stderr, e.Error())
	}
	status := Clean
	if len(s.errs) > 0 {
		status = LexicalError
	}
	return tokens, status
}

// Errors returns the lexical errors accumulated during ScanTokens, in the
// order they were discovered.
func (s *Scanner) Errors() []*lexerr.LexError {
	return s.errs
}

// ScanTokens repeatedly reads one lexeme at a time until the source is
// exhausted, appending EOF as the final token. It never stops early: a bad
// character is reported and scanning continues (the "continues"
// requirement).
func (s *Scanner) ScanTokens() []token.Token {
	for !s.atEnd() {
		s.start = s.current
		s.scanToken()
	}
	s.tokens = append(s.tokens, token.New(token.EOF, "", s.line))
	return s.tokens
}

func (s *Scanner) atEnd() bool {
	return s.current >= len(s.source)
}

// advance consumes and returns the current byte.
func (s *Scanner) advance() byte {
	b := s.source[s.current]
	s.current++
	return b
}

// peek returns the next unconsumed byte without advancing, or 0 at end of
// source.
func (s *Scanner) peek() byte {
	if s.atEnd() {
		return 0
	}
	return s.source[s.current]
}

// peekNext returns the byte after peek(), or 0 if that's past the end.
func (s *Scanner) peekNext() byte {
	if s.current+1 >= len(s.source) {
		return 0
	}
	return s.source[s.current+1]
}

// match consumes the current byte and returns true only if it equals want;
// otherwise it leaves the cursor untouched. This implements the
// one-or-two-char operator rule: the second char is
// consumed only if it matches.
func (s *Scanner) match(want byte) bool {
	if s.atEnd() || s.source[s.current] != want {
		return false
	}
	s.current++
	return true
}

func (s *Scanner) lexeme() string {
	return s.source[s.start:s.current]
}

func (s *Scanner) emit(kind token.Kind) {
	s.tokens = append(s.tokens, token.New(kind, s.lexeme(), s.line))
}

func (s *Scanner) emitLiteral(kind token.Kind, literal interface{}) {
	s.tokens = append(s.tokens, token.NewLiteral(kind, s.lexeme(), literal, s.line))
}

func (s *Scanner) reportf(format string, args ...interface{}) {
	s.errs = append(s.errs, &lexerr.LexError{Line: s.line, Message: fmt.Sprintf(format, args...)})
}

// scanToken consumes exactly one lexeme, emitting zero or one token.
func (s *Scanner) scanToken() {
	c := s.advance()
	switch c {
	case '(':
		s.emit(token.LeftParen)
	case ')':
		s.emit(token.RightParen)
	case '{':
		s.emit(token.LeftBrace)
	case '}':
		s.emit(token.RightBrace)
	case ',':
		s.emit(token.Comma)
	case '.':
		s.emit(token.Dot)
	case '-':
		s.emit(token.Minus)
	case '+':
		s.emit(token.Plus)
	case ';':
		s.emit(token.Semicolon)
	case '*':
		s.emit(token.Star)

	case '!':
		if s.match('=') {
			s.emit(token.BangEqual)
		} else {
			s.emit(token.Bang)
		}
	case '=':
		if s.match('=') {
			s.emit(token.EqualEqual)
		} else {
			s.emit(token.Equal)
		}
	case '<':
		if s.match('=') {
			s.emit(token.LessEqual)
		} else {
			s.emit(token.Less)
		}
	case '>':
		if s.match('=') {
			s.emit(token.GreaterEqual)
		} else {
			s.emit(token.Greater)
		}

	case '/':
		if s.match('/') {
			for s.peek() != '\n' && !s.atEnd() {
				s.advance()
			}
		} else {
			s.emit(token.Slash)
		}

	case ' ', '\r', '\t':
		// skipped
	case '\n':
		s.line++

	case '"':
		s.scanString()

	default:
		switch {
		case isDigit(c):
			s.scanNumber()
		case isAlpha(c):
			s.scanIdentifier()
		default:
			display, width := unexpectedCharDisplay(s.source, s.start)
			s.reportf("Unexpected character: %s", display)
			// advance() above only consumed the rune's first byte; consume
			// the remaining continuation bytes too, or they'd be rescanned
			// one at a time and each reported as a further spurious error.
			if extra := width - 1; extra > 0 {
				if s.current+extra > len(s.source) {
					extra = len(s.source) - s.current
				}
				s.current += extra
			}
		}
	}
}

// unexpectedCharDisplay decodes the rune starting at idx so multi-byte UTF-8
// characters are reported as themselves rather than as a mangled byte. It
// returns the display string and the rune's byte width.
func unexpectedCharDisplay(src string, idx int) (string, int) {
	r, size := utf8.DecodeRuneInString(src[idx:])
	if r == utf8.RuneError && size <= 1 {
		return src[idx : idx+1], 1
	}
	return string(r), size
}

func isDigit(c byte) bool {
	return c >= '0' && c <= '9'
}

func isAlpha(c byte) bool {
	return c == '_' || (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z')
}

func isAlphaNumeric(c byte) bool {
	return isAlpha(c) || isDigit(c)
}
