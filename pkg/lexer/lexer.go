// Package lexer implements the Logo dialect tokenizer.
package lexer

import (
	"fmt"
	"strings"

	"github.com/gologo-lang/gologo/pkg/ast"
	"github.com/gologo-lang/gologo/pkg/diagnostics"
)

// TokenType identifies the type of a lexer token.
type TokenType int

const (
	// Command keywords
	TokPenUp TokenType = iota
	TokPenDown
	TokForward
	TokBack
	TokLeft
	TokRight
	TokTurn
	TokSetHeading
	TokSetX
	TokSetY
	TokSetPenColor
	TokMake
	TokAddAssign
	TokIf
	TokWhile
	TokTo
	TokEnd

	// Boolean words
	TokTrue
	TokFalse

	// Prefix operators
	TokEq
	TokNe
	TokGt
	TokLt
	TokAnd
	TokOr
	TokPlus
	TokMinus
	TokStar
	TokSlash

	// Turtle queries
	TokXCor
	TokYCor
	TokHeading
	TokColor

	// Literals and references
	TokNumber // bare numeric literal: 42, -3.5
	TokWord   // quoted word: "X, "100, "TRUE
	TokVar    // variable reference: :X

	// Identifiers (procedure names)
	TokIdent

	// Punctuation
	TokLBracket // [
	TokRBracket // ]

	// Special
	TokEOF
)

// Token represents a single lexer token.
type Token struct {
	Type  TokenType
	Value string
	Span  ast.Span
}

// Keywords are case-insensitive; names are normalized to upper case.
var keywords = map[string]TokenType{
	"PENUP":       TokPenUp,
	"PENDOWN":     TokPenDown,
	"FORWARD":     TokForward,
	"BACK":        TokBack,
	"LEFT":        TokLeft,
	"RIGHT":       TokRight,
	"TURN":        TokTurn,
	"SETHEADING":  TokSetHeading,
	"SETX":        TokSetX,
	"SETY":        TokSetY,
	"SETPENCOLOR": TokSetPenColor,
	"MAKE":        TokMake,
	"ADDASSIGN":   TokAddAssign,
	"IF":          TokIf,
	"WHILE":       TokWhile,
	"TO":          TokTo,
	"END":         TokEnd,
	"TRUE":        TokTrue,
	"FALSE":       TokFalse,
	"EQ":          TokEq,
	"NE":          TokNe,
	"GT":          TokGt,
	"LT":          TokLt,
	"AND":         TokAnd,
	"OR":          TokOr,
	"XCOR":        TokXCor,
	"YCOR":        TokYCor,
	"HEADING":     TokHeading,
	"COLOR":       TokColor,
}

type scanner struct {
	source   string
	filename string
	pos      int
	line     int
	col      int
}

func newScanner(source, filename string) *scanner {
	return &scanner{
		source:   source,
		filename: filename,
		pos:      0,
		line:     1,
		col:      1,
	}
}

func (s *scanner) atEnd() bool {
	return s.pos >= len(s.source)
}

func (s *scanner) peek() byte {
	if s.atEnd() {
		return 0
	}
	return s.source[s.pos]
}

func (s *scanner) peekAt(offset int) byte {
	p := s.pos + offset
	if p >= len(s.source) {
		return 0
	}
	return s.source[p]
}

func (s *scanner) advance() byte {
	ch := s.source[s.pos]
	s.pos++
	if ch == '\n' {
		s.line++
		s.col = 1
	} else {
		s.col++
	}
	return ch
}

func (s *scanner) span(startLine, startCol int) ast.Span {
	return ast.Span{
		File:      s.filename,
		StartLine: startLine,
		StartCol:  startCol,
		EndLine:   s.line,
		EndCol:    s.col,
	}
}

func (s *scanner) skipWhitespaceAndComments() {
	for !s.atEnd() {
		ch := s.peek()
		if ch == ' ' || ch == '\t' || ch == '\r' || ch == '\n' {
			s.advance()
		} else if ch == '/' && s.peekAt(1) == '/' {
			// Skip comment to end of line
			for !s.atEnd() && s.peek() != '\n' {
				s.advance()
			}
		} else {
			break
		}
	}
}

func isAlpha(ch byte) bool {
	return (ch >= 'a' && ch <= 'z') || (ch >= 'A' && ch <= 'Z') || ch == '_'
}

func isDigit(ch byte) bool {
	return ch >= '0' && ch <= '9'
}

func isAlphaNumeric(ch byte) bool {
	return isAlpha(ch) || isDigit(ch)
}

func (s *scanner) scanNumber() Token {
	startLine, startCol := s.line, s.col
	startPos := s.pos

	if s.peek() == '-' {
		s.advance()
	}
	for !s.atEnd() && isDigit(s.peek()) {
		s.advance()
	}
	if !s.atEnd() && s.peek() == '.' && isDigit(s.peekAt(1)) {
		s.advance() // consume '.'
		for !s.atEnd() && isDigit(s.peek()) {
			s.advance()
		}
	}

	return Token{
		Type:  TokNumber,
		Value: s.source[startPos:s.pos],
		Span:  s.span(startLine, startCol),
	}
}

// scanWord scans the body of a "WORD literal after the quote has been
// consumed. Words may hold a name, a number (including sign and decimal
// point), or TRUE/FALSE.
func (s *scanner) scanWord(startLine, startCol int) (Token, error) {
	startPos := s.pos
	for !s.atEnd() {
		ch := s.peek()
		if isAlphaNumeric(ch) || ch == '-' || ch == '.' {
			s.advance()
		} else {
			break
		}
	}
	if s.pos == startPos {
		return Token{}, s.lexError(startLine, startCol, `expected a word after '"'`)
	}
	return Token{
		Type:  TokWord,
		Value: strings.ToUpper(s.source[startPos:s.pos]),
		Span:  s.span(startLine, startCol),
	}, nil
}

func (s *scanner) scanVariable(startLine, startCol int) (Token, error) {
	startPos := s.pos
	for !s.atEnd() && isAlphaNumeric(s.peek()) {
		s.advance()
	}
	if s.pos == startPos {
		return Token{}, s.lexError(startLine, startCol, "expected a variable name after ':'")
	}
	return Token{
		Type:  TokVar,
		Value: strings.ToUpper(s.source[startPos:s.pos]),
		Span:  s.span(startLine, startCol),
	}, nil
}

func (s *scanner) scanIdentOrKeyword() Token {
	startLine, startCol := s.line, s.col
	startPos := s.pos

	for !s.atEnd() && isAlphaNumeric(s.peek()) {
		s.advance()
	}

	text := strings.ToUpper(s.source[startPos:s.pos])
	if tokType, ok := keywords[text]; ok {
		return Token{
			Type:  tokType,
			Value: text,
			Span:  s.span(startLine, startCol),
		}
	}
	return Token{
		Type:  TokIdent,
		Value: text,
		Span:  s.span(startLine, startCol),
	}
}

func (s *scanner) lexError(line, col int, msg string) error {
	diag := diagnostics.MakeDiag(
		diagnostics.ELex,
		msg,
		&ast.Span{File: s.filename, StartLine: line, StartCol: col, EndLine: line, EndCol: col + 1},
		"",
	)
	return &LexError{Diag: diag}
}

// LexError wraps a diagnostic for lex errors.
type LexError struct {
	Diag diagnostics.Diagnostic
}

func (e *LexError) Error() string {
	return e.Diag.Message
}

func (s *scanner) nextToken() (Token, error) {
	s.skipWhitespaceAndComments()

	if s.atEnd() {
		return Token{
			Type:  TokEOF,
			Value: "",
			Span:  s.span(s.line, s.col),
		}, nil
	}

	ch := s.peek()
	startLine, startCol := s.line, s.col

	switch ch {
	case '[':
		s.advance()
		return Token{Type: TokLBracket, Value: "[", Span: s.span(startLine, startCol)}, nil
	case ']':
		s.advance()
		return Token{Type: TokRBracket, Value: "]", Span: s.span(startLine, startCol)}, nil
	case '"':
		s.advance()
		return s.scanWord(startLine, startCol)
	case ':':
		s.advance()
		return s.scanVariable(startLine, startCol)
	case '+':
		s.advance()
		return Token{Type: TokPlus, Value: "+", Span: s.span(startLine, startCol)}, nil
	case '-':
		// A '-' glued to a digit is a negative literal, otherwise the
		// subtraction operator.
		if isDigit(s.peekAt(1)) {
			return s.scanNumber(), nil
		}
		s.advance()
		return Token{Type: TokMinus, Value: "-", Span: s.span(startLine, startCol)}, nil
	case '*':
		s.advance()
		return Token{Type: TokStar, Value: "*", Span: s.span(startLine, startCol)}, nil
	case '/':
		s.advance()
		return Token{Type: TokSlash, Value: "/", Span: s.span(startLine, startCol)}, nil
	}

	if isDigit(ch) {
		return s.scanNumber(), nil
	}
	if isAlpha(ch) {
		return s.scanIdentOrKeyword(), nil
	}

	return Token{}, s.lexError(startLine, startCol, fmt.Sprintf("unexpected character %q", ch))
}

// Tokenize converts source text into a token slice ending with EOF.
func Tokenize(source, filename string) ([]Token, error) {
	s := newScanner(source, filename)
	var tokens []Token
	for {
		tok, err := s.nextToken()
		if err != nil {
			return nil, err
		}
		tokens = append(tokens, tok)
		if tok.Type == TokEOF {
			return tokens, nil
		}
	}
}
