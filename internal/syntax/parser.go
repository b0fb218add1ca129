package syntax

import (
	doppelerrors "github.com/toyz/doppel/internal/errors"
)

// Parser is a recursive-descent parser over the lexed token stream. It
// models protocol and struct declarations and skips everything else with
// balanced-delimiter scanning.
type Parser struct {
	tokens []Token
	pos    int
	path   string
}

// ParseSource lexes and parses Swift source text into a declaration tree
func ParseSource(path, source string) (*File, error) {
	lexer := NewLexer(source)
	tokens, err := lexer.Tokenize()
	if err != nil {
		if syntaxErr, ok := err.(*doppelerrors.SyntaxError); ok {
			loc := syntaxErr.Location()
			loc.File = path
			syntaxErr.WithLocation(loc)
			return nil, syntaxErr
		}
		return nil, doppelerrors.WrapParseError(path, err)
	}

	p := &Parser{tokens: tokens, path: path}
	return p.parseFile()
}

var declModifiers = map[string]bool{
	"public":      true,
	"internal":    true,
	"private":     true,
	"fileprivate": true,
	"open":        true,
	"package":     true,
	"final":       true,
	"static":      true,
	"lazy":        true,
	"weak":        true,
	"unowned":     true,
	"mutating":    true,
	"nonmutating": true,
	"nonisolated": true,
	"isolated":    true,
	"dynamic":     true,
	"optional":    true,
	"required":    true,
	"convenience": true,
	"override":    true,
	"indirect":    true,
	"distributed": true,
}

var memberStartKeywords = map[string]bool{
	"func":           true,
	"var":            true,
	"let":            true,
	"init":           true,
	"subscript":      true,
	"associatedtype": true,
	"typealias":      true,
	"struct":         true,
	"class":          true,
	"enum":           true,
	"actor":          true,
	"protocol":       true,
	"extension":      true,
	"case":           true,
	"deinit":         true,
}

func (p *Parser) parseFile() (*File, error) {
	file := &File{Path: p.path}
	var pending []Comment

	for !p.atEOF() {
		tok := p.current()

		if tok.Type == TokenComment {
			pending = append(pending, p.takeComment())
			continue
		}

		comments := adjacentComments(pending, tok.Line)
		pending = nil

		decl, err := p.parseDecl(comments)
		if err != nil {
			return nil, err
		}
		if decl != nil {
			file.Decls = append(file.Decls, decl)
		}
	}

	return file, nil
}

func (p *Parser) parseDecl(comments []Comment) (Decl, error) {
	p.parseModifiers()

	tok := p.current()
	switch {
	case tok.IsKeyword("protocol"):
		return p.parseProtocol(comments)
	case tok.IsKeyword("struct"):
		return p.parseStruct(comments)
	case tok.IsKeyword("class"), tok.IsKeyword("enum"), tok.IsKeyword("actor"), tok.IsKeyword("extension"):
		return p.skipTypeDecl(tok.Lexeme, comments)
	case tok.IsKeyword("import"):
		return p.skipImport(comments), nil
	case tok.IsKeyword("func"):
		return p.skipGlobalFunc(comments)
	case tok.IsKeyword("let"), tok.IsKeyword("var"):
		return p.skipGlobalBinding(tok.Lexeme, comments)
	case tok.IsKeyword("typealias"):
		decl := &OtherDecl{Keyword: "typealias", Comments: comments, Position: p.position(tok)}
		p.skipThroughLine(tok.Line)
		return decl, nil
	}

	// Not a construct we recognize; drop the token and keep scanning
	p.advance()
	return nil, nil
}

// parseProtocol parses "protocol Name[: Inherits] { members }"
func (p *Parser) parseProtocol(comments []Comment) (Decl, error) {
	keyword := p.current()
	p.advance()

	if p.current().Type != TokenIdent {
		return nil, p.errExpected("protocol name")
	}
	decl := &ProtocolDecl{
		Name:     p.current().Lexeme,
		Comments: comments,
		Position: p.position(keyword),
	}
	p.advance()

	if p.at(TokenColon) {
		p.advance()
		decl.Inherits = p.parseInheritanceClause()
	}
	p.skipWhereClause()

	if !p.at(TokenLeftBrace) {
		return nil, p.errExpected("'{' after protocol declaration")
	}
	p.advance()

	members, err := p.parseProtocolMembers()
	if err != nil {
		return nil, err
	}
	decl.Members = members

	if !p.at(TokenRightBrace) {
		return nil, p.errUnexpectedEOF("protocol body")
	}
	p.advance()

	return decl, nil
}

func (p *Parser) parseProtocolMembers() ([]Member, error) {
	var members []Member
	var pending []Comment

	for !p.atEOF() && !p.at(TokenRightBrace) {
		tok := p.current()

		if tok.Type == TokenComment {
			pending = append(pending, p.takeComment())
			continue
		}

		comments := adjacentComments(pending, tok.Line)
		pending = nil

		mods := p.parseModifiers()
		if p.at(TokenRightBrace) {
			break
		}
		cur := p.current()

		switch {
		case cur.IsKeyword("func"):
			member, err := p.parseFuncMember(mods, comments)
			if err != nil {
				return nil, err
			}
			members = append(members, member)
		case cur.IsKeyword("var"), cur.IsKeyword("let"):
			member, err := p.skipPropertyRequirement(cur.Lexeme)
			if err != nil {
				return nil, err
			}
			members = append(members, member)
		case cur.IsKeyword("init"):
			member, err := p.skipInitRequirement()
			if err != nil {
				return nil, err
			}
			members = append(members, member)
		case cur.IsKeyword("subscript"):
			member, err := p.skipSubscript()
			if err != nil {
				return nil, err
			}
			members = append(members, member)
		case cur.IsKeyword("associatedtype"), cur.IsKeyword("typealias"):
			members = append(members, &OtherMember{Keyword: cur.Lexeme, Position: p.position(cur)})
			p.skipThroughLine(cur.Line)
		case cur.Type == TokenLeftBrace:
			if err := p.skipBalanced(TokenLeftBrace, TokenRightBrace); err != nil {
				return nil, err
			}
		default:
			p.advance()
		}
	}

	return members, nil
}

// parseFuncMember parses a method requirement signature. Operator
// requirements are recognized but not modeled.
func (p *Parser) parseFuncMember(mods []string, comments []Comment) (Member, error) {
	keyword := p.current()
	p.advance()

	nameTok := p.current()
	if nameTok.Type != TokenIdent {
		// Operator requirement: skip the remaining signature
		member := &OtherMember{Keyword: "func", Name: nameTok.Lexeme, Position: p.position(keyword)}
		if err := p.skipFuncSignature(); err != nil {
			return nil, err
		}
		return member, nil
	}

	member := &FuncMember{
		Name:      nameTok.Lexeme,
		Modifiers: mods,
		Comments:  comments,
		Position:  p.position(keyword),
	}
	p.advance()

	if p.at(TokenLeftAngle) {
		if err := p.skipBalanced(TokenLeftAngle, TokenRightAngle); err != nil {
			return nil, err
		}
	}

	if !p.at(TokenLeftParen) {
		return &OtherMember{Keyword: "func", Name: member.Name, Position: member.Position}, nil
	}
	params, err := p.parseParams()
	if err != nil {
		return nil, err
	}
	member.Params = params

	for p.current().Type == TokenIdent && effectKeywords[p.current().Lexeme] {
		switch p.current().Lexeme {
		case "async":
			member.IsAsync = true
		case "throws", "rethrows":
			member.IsThrows = true
		}
		p.advance()
	}

	if p.at(TokenArrow) {
		p.advance()
		member.ReturnType = p.parseTypeText()
	}

	if p.current().IsKeyword("where") {
		p.skipThroughLine(p.current().Line)
	}

	return member, nil
}

func (p *Parser) parseParams() ([]Param, error) {
	p.advance() // '('

	var params []Param
	for !p.at(TokenRightParen) && !p.atEOF() {
		first := p.current()
		if first.Type != TokenIdent {
			p.advance()
			continue
		}
		p.advance()

		param := Param{Name: first.Lexeme}
		if p.current().Type == TokenIdent {
			param.Label = first.Lexeme
			param.Name = p.current().Lexeme
			p.advance()
		}

		if !p.at(TokenColon) {
			continue
		}
		p.advance()

		param.TypeText = p.parseTypeText()
		for p.at(TokenDot) {
			param.TypeText += "."
			p.advance()
		}

		if p.at(TokenEquals) {
			p.advance()
			if err := p.skipDefaultValue(); err != nil {
				return nil, err
			}
		}

		params = append(params, param)
		if p.at(TokenComma) {
			p.advance()
		}
	}

	if !p.at(TokenRightParen) {
		return nil, p.errUnexpectedEOF("parameter list")
	}
	p.advance()

	return params, nil
}

func (p *Parser) skipPropertyRequirement(keyword string) (Member, error) {
	start := p.current()
	p.advance()

	member := &OtherMember{Keyword: keyword, Position: p.position(start)}
	if p.current().Type == TokenIdent {
		member.Name = p.current().Lexeme
		p.advance()
	}

	if p.at(TokenColon) {
		p.advance()
		p.parseTypeText()
	}

	if p.at(TokenLeftBrace) {
		if err := p.skipBalanced(TokenLeftBrace, TokenRightBrace); err != nil {
			return nil, err
		}
	}

	return member, nil
}

func (p *Parser) skipInitRequirement() (Member, error) {
	start := p.current()
	p.advance()

	// Failable marker
	if p.at(TokenQuestion) || p.at(TokenBang) {
		p.advance()
	}
	if p.at(TokenLeftAngle) {
		if err := p.skipBalanced(TokenLeftAngle, TokenRightAngle); err != nil {
			return nil, err
		}
	}
	if p.at(TokenLeftParen) {
		if err := p.skipBalanced(TokenLeftParen, TokenRightParen); err != nil {
			return nil, err
		}
	}
	for p.current().Type == TokenIdent && effectKeywords[p.current().Lexeme] {
		p.advance()
	}
	if p.at(TokenLeftBrace) {
		if err := p.skipBalanced(TokenLeftBrace, TokenRightBrace); err != nil {
			return nil, err
		}
	}

	return &OtherMember{Keyword: "init", Position: p.position(start)}, nil
}

func (p *Parser) skipSubscript() (Member, error) {
	start := p.current()
	p.advance()

	if p.at(TokenLeftParen) {
		if err := p.skipBalanced(TokenLeftParen, TokenRightParen); err != nil {
			return nil, err
		}
	}
	if p.at(TokenArrow) {
		p.advance()
		p.parseTypeText()
	}
	if p.at(TokenLeftBrace) {
		if err := p.skipBalanced(TokenLeftBrace, TokenRightBrace); err != nil {
			return nil, err
		}
	}

	return &OtherMember{Keyword: "subscript", Position: p.position(start)}, nil
}

// parseStruct parses "struct Name[<Generics>][: Inherits] { members }"
func (p *Parser) parseStruct(comments []Comment) (Decl, error) {
	keyword := p.current()
	p.advance()

	if p.current().Type != TokenIdent {
		return nil, p.errExpected("struct name")
	}
	decl := &StructDecl{
		Name:     p.current().Lexeme,
		Comments: comments,
		Position: p.position(keyword),
	}
	p.advance()

	if p.at(TokenLeftAngle) {
		decl.GenericParams = p.renderBalanced(TokenLeftAngle, TokenRightAngle)
	}

	if p.at(TokenColon) {
		p.advance()
		decl.Inherits = p.parseInheritanceClause()
	}
	p.skipWhereClause()

	if !p.at(TokenLeftBrace) {
		return nil, p.errExpected("'{' after struct declaration")
	}
	p.advance()

	members, err := p.parseStructMembers()
	if err != nil {
		return nil, err
	}
	decl.Members = members

	if !p.at(TokenRightBrace) {
		return nil, p.errUnexpectedEOF("struct body")
	}
	p.advance()

	return decl, nil
}

func (p *Parser) parseStructMembers() ([]Member, error) {
	var members []Member
	var pending []Comment

	for !p.atEOF() && !p.at(TokenRightBrace) {
		tok := p.current()

		if tok.Type == TokenComment {
			pending = append(pending, p.takeComment())
			continue
		}

		comments := adjacentComments(pending, tok.Line)
		pending = nil

		mods := p.parseModifiers()
		if p.at(TokenRightBrace) {
			break
		}
		cur := p.current()

		switch {
		case cur.IsKeyword("let"), cur.IsKeyword("var"):
			props, err := p.parseProperties(cur.Lexeme, mods, comments)
			if err != nil {
				return nil, err
			}
			members = append(members, props...)
		case cur.IsKeyword("func"), cur.IsKeyword("init"), cur.IsKeyword("deinit"):
			member, err := p.skipFuncLike(cur.Lexeme)
			if err != nil {
				return nil, err
			}
			members = append(members, member)
		case cur.IsKeyword("subscript"):
			member, err := p.skipSubscript()
			if err != nil {
				return nil, err
			}
			members = append(members, member)
		case cur.IsKeyword("struct"), cur.IsKeyword("class"), cur.IsKeyword("enum"), cur.IsKeyword("actor"), cur.IsKeyword("extension"):
			member, err := p.skipNestedType(cur.Lexeme)
			if err != nil {
				return nil, err
			}
			members = append(members, member)
		case cur.IsKeyword("typealias"), cur.IsKeyword("case"):
			members = append(members, &OtherMember{Keyword: cur.Lexeme, Position: p.position(cur)})
			p.skipThroughLine(cur.Line)
		case cur.Type == TokenLeftBrace:
			if err := p.skipBalanced(TokenLeftBrace, TokenRightBrace); err != nil {
				return nil, err
			}
		default:
			p.advance()
		}
	}

	return members, nil
}

// parseProperties parses one let/var member, which may bind several names
func (p *Parser) parseProperties(keyword string, mods []string, comments []Comment) ([]Member, error) {
	start := p.current()
	p.advance()

	// "let a, b: Int" binds several names to one type annotation
	var names []string
	for p.current().Type == TokenIdent {
		names = append(names, p.current().Lexeme)
		p.advance()
		if p.at(TokenComma) && p.peek(1).Type == TokenIdent {
			p.advance()
			continue
		}
		break
	}

	typeText := ""
	if p.at(TokenColon) {
		p.advance()
		typeText = p.parseTypeText()
	}

	hasInit := false
	if p.at(TokenEquals) {
		p.advance()
		if err := p.skipInitializerExpr(); err != nil {
			return nil, err
		}
		hasInit = true
	}

	hasAccessor := false
	if p.at(TokenLeftBrace) {
		observer := p.peek(1).IsKeyword("didSet") || p.peek(1).IsKeyword("willSet")
		if err := p.skipBalanced(TokenLeftBrace, TokenRightBrace); err != nil {
			return nil, err
		}
		hasAccessor = !observer
	}

	members := make([]Member, 0, len(names))
	for _, name := range names {
		members = append(members, &PropertyMember{
			Keyword:          keyword,
			Name:             name,
			TypeText:         typeText,
			HasInitializer:   hasInit,
			HasAccessorBlock: hasAccessor,
			Modifiers:        mods,
			Comments:         comments,
			Position:         p.position(start),
		})
	}

	return members, nil
}

// skipFuncLike skips a func/init/deinit member including its body
func (p *Parser) skipFuncLike(keyword string) (Member, error) {
	start := p.current()
	p.advance()

	member := &OtherMember{Keyword: keyword, Position: p.position(start)}
	if p.current().Type == TokenIdent {
		member.Name = p.current().Lexeme
		p.advance()
	}

	if err := p.skipFuncSignature(); err != nil {
		return nil, err
	}

	return member, nil
}

// skipFuncSignature skips generics, parameters, effects, return type, where
// clause, and the body when present
func (p *Parser) skipFuncSignature() error {
	if p.at(TokenQuestion) || p.at(TokenBang) {
		p.advance()
	}
	if p.at(TokenLeftAngle) {
		if err := p.skipBalanced(TokenLeftAngle, TokenRightAngle); err != nil {
			return err
		}
	}
	if p.at(TokenLeftParen) {
		if err := p.skipBalanced(TokenLeftParen, TokenRightParen); err != nil {
			return err
		}
	}
	for p.current().Type == TokenIdent && effectKeywords[p.current().Lexeme] {
		p.advance()
	}
	if p.at(TokenArrow) {
		p.advance()
		p.parseTypeText()
	}
	if p.current().IsKeyword("where") {
		for !p.atEOF() && !p.at(TokenLeftBrace) {
			p.advance()
		}
	}
	if p.at(TokenLeftBrace) {
		return p.skipBalanced(TokenLeftBrace, TokenRightBrace)
	}
	return nil
}

func (p *Parser) skipNestedType(keyword string) (Member, error) {
	start := p.current()
	p.advance()

	member := &OtherMember{Keyword: keyword, Position: p.position(start)}
	if p.current().Type == TokenIdent {
		member.Name = p.current().Lexeme
		p.advance()
	}

	for !p.atEOF() && !p.at(TokenLeftBrace) {
		p.advance()
	}
	if p.at(TokenLeftBrace) {
		if err := p.skipBalanced(TokenLeftBrace, TokenRightBrace); err != nil {
			return nil, err
		}
	}

	return member, nil
}

func (p *Parser) skipTypeDecl(keyword string, comments []Comment) (Decl, error) {
	start := p.current()
	p.advance()

	decl := &OtherDecl{Keyword: keyword, Comments: comments, Position: p.position(start)}
	if p.current().Type == TokenIdent {
		decl.Name = p.current().Lexeme
		p.advance()
	}

	for !p.atEOF() && !p.at(TokenLeftBrace) {
		p.advance()
	}
	if p.at(TokenLeftBrace) {
		if err := p.skipBalanced(TokenLeftBrace, TokenRightBrace); err != nil {
			return nil, err
		}
	}

	return decl, nil
}

func (p *Parser) skipImport(comments []Comment) Decl {
	start := p.current()
	p.advance()

	decl := &OtherDecl{Keyword: "import", Comments: comments, Position: p.position(start)}
	if p.current().Type == TokenIdent {
		decl.Name = p.current().Lexeme
	}
	p.skipThroughLine(start.Line)

	return decl
}

func (p *Parser) skipGlobalFunc(comments []Comment) (Decl, error) {
	start := p.current()
	p.advance()

	decl := &OtherDecl{Keyword: "func", Comments: comments, Position: p.position(start)}
	if p.current().Type == TokenIdent {
		decl.Name = p.current().Lexeme
		p.advance()
	}

	if err := p.skipFuncSignature(); err != nil {
		return nil, err
	}

	return decl, nil
}

func (p *Parser) skipGlobalBinding(keyword string, comments []Comment) (Decl, error) {
	start := p.current()
	p.advance()

	decl := &OtherDecl{Keyword: keyword, Comments: comments, Position: p.position(start)}
	if p.current().Type == TokenIdent {
		decl.Name = p.current().Lexeme
		p.advance()
	}

	if p.at(TokenColon) {
		p.advance()
		p.parseTypeText()
	}
	if p.at(TokenEquals) {
		p.advance()
		if err := p.skipInitializerExpr(); err != nil {
			return nil, err
		}
	}
	if p.at(TokenLeftBrace) {
		if err := p.skipBalanced(TokenLeftBrace, TokenRightBrace); err != nil {
			return nil, err
		}
	}

	return decl, nil
}

// parseModifiers consumes attributes and declaration modifiers, returning
// the modifier names. Attributes are kept with their '@' prefix.
func (p *Parser) parseModifiers() []string {
	var mods []string

	for {
		tok := p.current()

		if tok.Type == TokenAt {
			mods = append(mods, p.parseAttribute())
			continue
		}

		if tok.Type != TokenIdent || !declModifiers[tok.Lexeme] {
			return mods
		}

		// "optional" is only a modifier when a member keyword follows;
		// otherwise it is an ordinary identifier such as a property name
		if tok.Lexeme == "optional" && !memberStartKeywords[p.peek(1).Lexeme] && !declModifiers[p.peek(1).Lexeme] {
			return mods
		}

		mods = append(mods, tok.Lexeme)
		p.advance()

		// Access modifiers may carry a setter scope like private(set)
		if p.at(TokenLeftParen) {
			p.renderBalanced(TokenLeftParen, TokenRightParen)
		}
	}
}

func (p *Parser) parseInheritanceClause() []string {
	var names []string

	for !p.atEOF() {
		tok := p.current()
		if tok.Type != TokenIdent || tok.IsKeyword("where") {
			break
		}

		name := p.parseNominalType()
		for p.at(TokenDot) && p.peek(1).Type == TokenIdent {
			p.advance()
			name += "." + p.current().Lexeme
			p.advance()
		}
		names = append(names, name)

		if p.at(TokenComma) || p.at(TokenAmpersand) {
			p.advance()
			continue
		}
		break
	}

	return names
}

func (p *Parser) skipWhereClause() {
	if !p.current().IsKeyword("where") {
		return
	}
	for !p.atEOF() && !p.at(TokenLeftBrace) {
		p.advance()
	}
}

// skipInitializerExpr skips a stored-property initializer expression. It
// stops at the first depth-zero line break, semicolon, or closing brace.
func (p *Parser) skipInitializerExpr() error {
	depth := 0
	lastLine := p.current().Line

	for !p.atEOF() {
		tok := p.current()

		if depth == 0 {
			if tok.Type == TokenRightBrace {
				return nil
			}
			if tok.Type == TokenSemicolon {
				p.advance()
				return nil
			}
			if tok.Line > lastLine {
				return nil
			}
		}

		switch tok.Type {
		case TokenLeftParen, TokenLeftBracket, TokenLeftBrace:
			depth++
		case TokenRightParen, TokenRightBracket, TokenRightBrace:
			if depth > 0 {
				depth--
			}
		}

		lastLine = tok.Line
		p.advance()
	}

	return p.errUnexpectedEOF("initializer expression")
}

// skipDefaultValue skips a parameter default value up to the next top-level
// comma or closing parenthesis
func (p *Parser) skipDefaultValue() error {
	depth := 0

	for !p.atEOF() {
		tok := p.current()

		if depth == 0 && (tok.Type == TokenComma || tok.Type == TokenRightParen) {
			return nil
		}

		switch tok.Type {
		case TokenLeftParen, TokenLeftBracket, TokenLeftBrace:
			depth++
		case TokenRightParen, TokenRightBracket, TokenRightBrace:
			if depth > 0 {
				depth--
			}
		}

		p.advance()
	}

	return p.errUnexpectedEOF("default value")
}

func (p *Parser) skipBalanced(open, close TokenType) error {
	depth := 0

	for !p.atEOF() {
		tok := p.current()
		if tok.Type == open {
			depth++
		} else if tok.Type == close {
			depth--
		}
		p.advance()
		if depth == 0 {
			return nil
		}
	}

	return p.errUnexpectedEOF("balanced group")
}

func (p *Parser) skipThroughLine(line int) {
	for !p.atEOF() && p.current().Line == line && !p.at(TokenLeftBrace) && !p.at(TokenRightBrace) {
		p.advance()
	}
}

// adjacentComments returns the trailing run of comments that sits directly
// above the given line with no blank gaps
func adjacentComments(pending []Comment, declLine int) []Comment {
	if len(pending) == 0 {
		return nil
	}

	start := len(pending)
	nextLine := declLine
	for i := len(pending) - 1; i >= 0; i-- {
		if nextLine-pending[i].EndLine > 1 {
			break
		}
		start = i
		nextLine = pending[i].Line
	}

	if start == len(pending) {
		return nil
	}
	return pending[start:]
}

func (p *Parser) takeComment() Comment {
	tok := p.current()
	p.advance()

	endLine := tok.Line
	for _, r := range tok.Lexeme {
		if r == '\n' {
			endLine++
		}
	}

	return Comment{Text: tok.Lexeme, Line: tok.Line, EndLine: endLine}
}

func (p *Parser) current() Token {
	if p.pos >= len(p.tokens) {
		return Token{Type: TokenEOF}
	}
	return p.tokens[p.pos]
}

func (p *Parser) peek(offset int) Token {
	if p.pos+offset >= len(p.tokens) {
		return Token{Type: TokenEOF}
	}
	return p.tokens[p.pos+offset]
}

func (p *Parser) at(t TokenType) bool {
	return p.current().Type == t
}

func (p *Parser) atEOF() bool {
	return p.current().Type == TokenEOF
}

func (p *Parser) advance() {
	if p.pos < len(p.tokens) {
		p.pos++
	}
}

func (p *Parser) position(tok Token) Position {
	return Position{Line: tok.Line, Column: tok.Column}
}

func (p *Parser) errExpected(what string) error {
	tok := p.current()
	return doppelerrors.NewSyntaxErrorWithToken("expected "+what, tok.Lexeme, p.pos).
		WithLocation(doppelerrors.SourceLocation{File: p.path, Line: tok.Line, Column: tok.Column})
}

func (p *Parser) errUnexpectedEOF(context string) error {
	line := 0
	if len(p.tokens) > 1 {
		line = p.tokens[len(p.tokens)-2].Line
	}
	return doppelerrors.NewSyntaxError("unexpected end of file in "+context).
		WithLocation(doppelerrors.SourceLocation{File: p.path, Line: line})
}
