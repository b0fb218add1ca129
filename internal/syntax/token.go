// Package syntax implements a lightweight lexer and recursive-descent parser
// for the subset of Swift needed to scan protocol and struct declarations.
// It performs no type resolution; bodies and expressions are skipped with
// balanced-delimiter scanning.
package syntax

import "fmt"

// TokenType identifies the kind of a lexed token
type TokenType int

const (
	TokenEOF TokenType = iota
	TokenIdent
	TokenNumber
	TokenString
	TokenComment

	TokenArrow // ->

	TokenLeftBrace
	TokenRightBrace
	TokenLeftParen
	TokenRightParen
	TokenLeftBracket
	TokenRightBracket
	TokenLeftAngle
	TokenRightAngle

	TokenColon
	TokenSemicolon
	TokenComma
	TokenDot
	TokenQuestion
	TokenBang
	TokenEquals
	TokenAt
	TokenAmpersand

	TokenOther
)

// String returns a readable name for the token type
func (t TokenType) String() string {
	switch t {
	case TokenEOF:
		return "EOF"
	case TokenIdent:
		return "Ident"
	case TokenNumber:
		return "Number"
	case TokenString:
		return "String"
	case TokenComment:
		return "Comment"
	case TokenArrow:
		return "Arrow"
	case TokenLeftBrace:
		return "LeftBrace"
	case TokenRightBrace:
		return "RightBrace"
	case TokenLeftParen:
		return "LeftParen"
	case TokenRightParen:
		return "RightParen"
	case TokenLeftBracket:
		return "LeftBracket"
	case TokenRightBracket:
		return "RightBracket"
	case TokenLeftAngle:
		return "LeftAngle"
	case TokenRightAngle:
		return "RightAngle"
	case TokenColon:
		return "Colon"
	case TokenSemicolon:
		return "Semicolon"
	case TokenComma:
		return "Comma"
	case TokenDot:
		return "Dot"
	case TokenQuestion:
		return "Question"
	case TokenBang:
		return "Bang"
	case TokenEquals:
		return "Equals"
	case TokenAt:
		return "At"
	case TokenAmpersand:
		return "Ampersand"
	default:
		return "Other"
	}
}

// Token is a single lexed unit of Swift source
type Token struct {
	Type   TokenType
	Lexeme string
	Line   int // 1-based line of the first rune
	Column int // 1-based column of the first rune
}

// String renders the token for debugging output
func (t Token) String() string {
	return fmt.Sprintf("%s(%q)@%d:%d", t.Type, t.Lexeme, t.Line, t.Column)
}

// IsKeyword reports whether the token is an identifier with the given text
func (t Token) IsKeyword(word string) bool {
	return t.Type == TokenIdent && t.Lexeme == word
}
