package syntax

import "strings"

// Type expressions are rendered to canonical text while parsing: single
// spaces between words, a space after ',' and ':', spaces around '->', no
// space before suffix marks. Attributes like @escaping stay in the text;
// stripping them is the type classifier's job, not the parser's.

var typePrefixKeywords = map[string]bool{
	"inout":     true,
	"some":      true,
	"any":       true,
	"borrowing": true,
	"consuming": true,
}

var effectKeywords = map[string]bool{
	"async":    true,
	"throws":   true,
	"rethrows": true,
}

// Attributes known to take an argument list. Other attributes only get one
// when the parenthesis abuts the name, so "@escaping (Int) -> Void" keeps
// its parameter tuple.
var attributeArgKeywords = map[string]bool{
	"available":    true,
	"objc":         true,
	"convention":   true,
	"isolated":     true,
	"backDeployed": true,
	"freestanding": true,
	"attached":     true,
}

// parseTypeText parses a type expression starting at the current token and
// returns its canonical text. It is best effort: on unexpected input it
// returns what it has collected, leaving the cursor at the offending token.
func (p *Parser) parseTypeText() string {
	var parts []string

	for p.at(TokenAt) {
		parts = append(parts, p.parseAttribute())
	}

	for p.current().Type == TokenIdent && typePrefixKeywords[p.current().Lexeme] {
		parts = append(parts, p.current().Lexeme)
		p.advance()
	}

	core := p.parseTypeCore()
	if core == "" {
		return strings.Join(parts, " ")
	}

	parts = append(parts, core)
	return strings.Join(parts, " ")
}

// parseTypeCore parses a single type term with its suffixes, an optional
// protocol composition tail, and an optional function-type arrow.
func (p *Parser) parseTypeCore() string {
	var text string

	switch p.current().Type {
	case TokenLeftParen:
		text = p.parseTupleType()
	case TokenLeftBracket:
		text = p.parseCollectionType()
	case TokenIdent:
		text = p.parseNominalType()
	default:
		return ""
	}

	// Suffix marks bind tighter than composition and arrows
	for {
		switch p.current().Type {
		case TokenQuestion:
			text += "?"
			p.advance()
			continue
		case TokenBang:
			text += "!"
			p.advance()
			continue
		case TokenDot:
			if p.peek(1).Type == TokenIdent {
				p.advance()
				text += "." + p.current().Lexeme
				p.advance()
				if p.at(TokenLeftAngle) {
					text += p.parseGenericArguments()
				}
				continue
			}
		}
		break
	}

	for p.at(TokenAmpersand) {
		p.advance()
		next := p.parseTypeCore()
		if next == "" {
			break
		}
		text += " & " + next
	}

	// A function type: optional effects, then an arrow and the result
	save := p.pos
	var effects []string
	for p.current().Type == TokenIdent && effectKeywords[p.current().Lexeme] {
		effects = append(effects, p.current().Lexeme)
		p.advance()
	}

	if p.at(TokenArrow) {
		p.advance()
		result := p.parseTypeText()
		for _, e := range effects {
			text += " " + e
		}
		return text + " -> " + result
	}

	// Effects without an arrow belong to the surrounding declaration
	p.pos = save
	return text
}

func (p *Parser) parseNominalType() string {
	text := p.current().Lexeme
	p.advance()

	if p.at(TokenLeftAngle) {
		text += p.parseGenericArguments()
	}

	return text
}

func (p *Parser) parseGenericArguments() string {
	p.advance() // '<'

	var args []string
	for !p.at(TokenRightAngle) && !p.atEOF() {
		arg := p.parseTypeText()
		if arg == "" {
			// Unexpected token inside the argument list; drop it and move on
			p.advance()
			continue
		}
		args = append(args, arg)
		if p.at(TokenComma) {
			p.advance()
		}
	}

	if p.at(TokenRightAngle) {
		p.advance()
	}

	return "<" + strings.Join(args, ", ") + ">"
}

func (p *Parser) parseTupleType() string {
	p.advance() // '('

	var elems []string
	for !p.at(TokenRightParen) && !p.atEOF() {
		var elem string

		// Tuple element label
		if p.current().Type == TokenIdent && p.peek(1).Type == TokenColon {
			elem = p.current().Lexeme + ": "
			p.advance()
			p.advance()
		}

		t := p.parseTypeText()
		if t == "" {
			p.advance()
			continue
		}
		elem += t

		for p.at(TokenDot) {
			elem += "."
			p.advance()
		}

		elems = append(elems, elem)
		if p.at(TokenComma) {
			p.advance()
		}
	}

	if p.at(TokenRightParen) {
		p.advance()
	}

	return "(" + strings.Join(elems, ", ") + ")"
}

func (p *Parser) parseCollectionType() string {
	p.advance() // '['

	key := p.parseTypeText()

	if p.at(TokenColon) {
		p.advance()
		value := p.parseTypeText()
		if p.at(TokenRightBracket) {
			p.advance()
		}
		return "[" + key + ": " + value + "]"
	}

	if p.at(TokenRightBracket) {
		p.advance()
	}

	return "[" + key + "]"
}

func (p *Parser) parseAttribute() string {
	p.advance() // '@'

	text := "@"
	name := p.current()
	if name.Type == TokenIdent {
		text += name.Lexeme
		p.advance()
	}

	if p.at(TokenLeftParen) && p.attributeTakesArgs(name) {
		text += p.renderBalanced(TokenLeftParen, TokenRightParen)
	}

	return text
}

func (p *Parser) attributeTakesArgs(name Token) bool {
	if attributeArgKeywords[name.Lexeme] {
		return true
	}
	paren := p.current()
	return paren.Line == name.Line && paren.Column == name.Column+len(name.Lexeme)
}

// renderBalanced consumes a balanced delimiter group and renders it with
// canonical spacing. Used for attribute arguments and generic clauses.
func (p *Parser) renderBalanced(open, close TokenType) string {
	depth := 0
	var toks []Token

	for !p.atEOF() {
		tok := p.current()
		if tok.Type == open {
			depth++
		} else if tok.Type == close {
			depth--
		}
		toks = append(toks, tok)
		p.advance()
		if depth == 0 {
			break
		}
	}

	return joinTokens(toks)
}

// joinTokens renders a token sequence with canonical spacing
func joinTokens(toks []Token) string {
	var b strings.Builder

	for i, tok := range toks {
		if i > 0 && needsSpaceBetween(toks[i-1], tok) {
			b.WriteByte(' ')
		}
		b.WriteString(tok.Lexeme)
	}

	return b.String()
}

func needsSpaceBetween(prev, cur Token) bool {
	switch cur.Type {
	case TokenComma, TokenColon, TokenQuestion, TokenBang, TokenDot,
		TokenRightParen, TokenRightBracket, TokenRightAngle, TokenSemicolon:
		return false
	}

	switch prev.Type {
	case TokenLeftParen, TokenLeftBracket, TokenLeftAngle, TokenAt, TokenDot:
		return false
	case TokenComma, TokenColon:
		return true
	}

	return true
}
