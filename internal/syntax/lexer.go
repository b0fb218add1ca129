package syntax

import (
	"strings"
	"unicode"

	doppelerrors "github.com/toyz/doppel/internal/errors"
)

// Lexer scans Swift source text into tokens. Comments are kept as tokens so
// the parser can attach them to the declarations they precede.
type Lexer struct {
	src    []rune
	pos    int
	line   int
	column int
}

// NewLexer creates a lexer over the given source text
func NewLexer(source string) *Lexer {
	return &Lexer{
		src:    []rune(source),
		line:   1,
		column: 1,
	}
}

// Tokenize scans the whole input and returns the token stream, terminated by
// an EOF token. Unterminated strings and block comments are syntax errors.
func (l *Lexer) Tokenize() ([]Token, error) {
	var tokens []Token

	for {
		tok, err := l.next()
		if err != nil {
			return nil, err
		}
		tokens = append(tokens, tok)
		if tok.Type == TokenEOF {
			return tokens, nil
		}
	}
}

func (l *Lexer) next() (Token, error) {
	l.skipWhitespace()

	if l.pos >= len(l.src) {
		return l.token(TokenEOF, ""), nil
	}

	line, column := l.line, l.column
	c := l.src[l.pos]

	switch {
	case c == '/' && l.peekAt(1) == '/':
		return l.scanLineComment(line, column), nil
	case c == '/' && l.peekAt(1) == '*':
		return l.scanBlockComment(line, column)
	case c == '"':
		return l.scanString(line, column)
	case c == '`':
		return l.scanBacktickIdent(line, column)
	case isIdentStart(c):
		return l.scanIdent(line, column), nil
	case unicode.IsDigit(c):
		return l.scanNumber(line, column), nil
	case c == '-' && l.peekAt(1) == '>':
		l.advance()
		l.advance()
		return Token{Type: TokenArrow, Lexeme: "->", Line: line, Column: column}, nil
	}

	l.advance()
	tok := Token{Lexeme: string(c), Line: line, Column: column}

	switch c {
	case '{':
		tok.Type = TokenLeftBrace
	case '}':
		tok.Type = TokenRightBrace
	case '(':
		tok.Type = TokenLeftParen
	case ')':
		tok.Type = TokenRightParen
	case '[':
		tok.Type = TokenLeftBracket
	case ']':
		tok.Type = TokenRightBracket
	case '<':
		tok.Type = TokenLeftAngle
	case '>':
		tok.Type = TokenRightAngle
	case ':':
		tok.Type = TokenColon
	case ';':
		tok.Type = TokenSemicolon
	case ',':
		tok.Type = TokenComma
	case '.':
		tok.Type = TokenDot
	case '?':
		tok.Type = TokenQuestion
	case '!':
		tok.Type = TokenBang
	case '=':
		tok.Type = TokenEquals
	case '@':
		tok.Type = TokenAt
	case '&':
		tok.Type = TokenAmpersand
	default:
		tok.Type = TokenOther
	}

	return tok, nil
}

func (l *Lexer) scanLineComment(line, column int) Token {
	start := l.pos
	for l.pos < len(l.src) && l.src[l.pos] != '\n' {
		l.advance()
	}
	return Token{Type: TokenComment, Lexeme: string(l.src[start:l.pos]), Line: line, Column: column}
}

func (l *Lexer) scanBlockComment(line, column int) (Token, error) {
	start := l.pos
	l.advance() // '/'
	l.advance() // '*'

	depth := 1
	for l.pos < len(l.src) && depth > 0 {
		if l.src[l.pos] == '/' && l.peekAt(1) == '*' {
			depth++
			l.advance()
			l.advance()
			continue
		}
		if l.src[l.pos] == '*' && l.peekAt(1) == '/' {
			depth--
			l.advance()
			l.advance()
			continue
		}
		l.advance()
	}

	if depth > 0 {
		return Token{}, doppelerrors.NewSyntaxError("unterminated block comment").
			WithLocation(doppelerrors.SourceLocation{Line: line, Column: column})
	}

	return Token{Type: TokenComment, Lexeme: string(l.src[start:l.pos]), Line: line, Column: column}, nil
}

func (l *Lexer) scanString(line, column int) (Token, error) {
	start := l.pos

	// Multiline string literal
	if l.peekAt(1) == '"' && l.peekAt(2) == '"' {
		l.advance()
		l.advance()
		l.advance()
		for l.pos < len(l.src) {
			if l.src[l.pos] == '"' && l.peekAt(1) == '"' && l.peekAt(2) == '"' {
				l.advance()
				l.advance()
				l.advance()
				return Token{Type: TokenString, Lexeme: string(l.src[start:l.pos]), Line: line, Column: column}, nil
			}
			l.advance()
		}
		return Token{}, doppelerrors.NewSyntaxError("unterminated string literal").
			WithLocation(doppelerrors.SourceLocation{Line: line, Column: column})
	}

	l.advance() // opening quote
	for l.pos < len(l.src) {
		c := l.src[l.pos]
		if c == '\\' {
			l.advance()
			l.advance()
			continue
		}
		if c == '"' {
			l.advance()
			return Token{Type: TokenString, Lexeme: string(l.src[start:l.pos]), Line: line, Column: column}, nil
		}
		if c == '\n' {
			break
		}
		l.advance()
	}

	return Token{}, doppelerrors.NewSyntaxError("unterminated string literal").
		WithLocation(doppelerrors.SourceLocation{Line: line, Column: column})
}

func (l *Lexer) scanBacktickIdent(line, column int) (Token, error) {
	start := l.pos
	l.advance() // opening backtick

	for l.pos < len(l.src) && l.src[l.pos] != '`' && l.src[l.pos] != '\n' {
		l.advance()
	}

	if l.pos >= len(l.src) || l.src[l.pos] != '`' {
		return Token{}, doppelerrors.NewSyntaxError("unterminated backtick identifier").
			WithLocation(doppelerrors.SourceLocation{Line: line, Column: column})
	}

	l.advance() // closing backtick
	return Token{Type: TokenIdent, Lexeme: string(l.src[start:l.pos]), Line: line, Column: column}, nil
}

func (l *Lexer) scanIdent(line, column int) Token {
	start := l.pos
	for l.pos < len(l.src) && isIdentPart(l.src[l.pos]) {
		l.advance()
	}
	return Token{Type: TokenIdent, Lexeme: string(l.src[start:l.pos]), Line: line, Column: column}
}

func (l *Lexer) scanNumber(line, column int) Token {
	start := l.pos
	for l.pos < len(l.src) {
		c := l.src[l.pos]
		if unicode.IsDigit(c) || isIdentPart(c) {
			l.advance()
			continue
		}
		// Keep decimal points inside the number, but not range operators
		if c == '.' && l.pos+1 < len(l.src) && unicode.IsDigit(l.src[l.pos+1]) {
			l.advance()
			continue
		}
		break
	}
	return Token{Type: TokenNumber, Lexeme: string(l.src[start:l.pos]), Line: line, Column: column}
}

func (l *Lexer) skipWhitespace() {
	for l.pos < len(l.src) && unicode.IsSpace(l.src[l.pos]) {
		l.advance()
	}
}

func (l *Lexer) advance() {
	if l.pos >= len(l.src) {
		return
	}
	if l.src[l.pos] == '\n' {
		l.line++
		l.column = 1
	} else {
		l.column++
	}
	l.pos++
}

func (l *Lexer) peekAt(offset int) rune {
	if l.pos+offset >= len(l.src) {
		return 0
	}
	return l.src[l.pos+offset]
}

func (l *Lexer) token(t TokenType, lexeme string) Token {
	return Token{Type: t, Lexeme: lexeme, Line: l.line, Column: l.column}
}

func isIdentStart(c rune) bool {
	return unicode.IsLetter(c) || c == '_'
}

func isIdentPart(c rune) bool {
	return unicode.IsLetter(c) || unicode.IsDigit(c) || c == '_'
}

// CommentText strips the comment markers from a comment lexeme, returning the
// trimmed inner text. Doc comment markers ("///", "/**") are stripped too.
func CommentText(lexeme string) string {
	text := lexeme
	switch {
	case strings.HasPrefix(text, "//"):
		text = strings.TrimLeft(text, "/")
	case strings.HasPrefix(text, "/*"):
		text = strings.TrimPrefix(text, "/*")
		text = strings.TrimSuffix(text, "*/")
		text = strings.TrimLeft(text, "*")
	}
	return strings.TrimSpace(text)
}
