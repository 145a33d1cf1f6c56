package parser

import (
	"fmt"
	"math/big"
)

// ParseError is a syntax error with source position
type ParseError struct {
	Pos Position
	Msg string
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("parse error at line %d, column %d: %s", e.Pos.Line, e.Pos.Column, e.Msg)
}

// Parser parses cara source code into an AST
// LL(1) recursive descent with one token of lookahead
type Parser struct {
	lexer   *Lexer
	current Token
	peek    Token
}

// NewParser creates a new Parser instance
func NewParser(input string) *Parser {
	p := &Parser{
		lexer: NewLexer(input),
	}
	// Read two tokens to initialize current and peek
	p.nextToken()
	p.nextToken()
	return p
}

// nextToken advances to the next token
func (p *Parser) nextToken() {
	p.current = p.peek
	p.peek = p.lexer.NextToken()
}

// errorf builds a ParseError at the current token
func (p *Parser) errorf(format string, args ...interface{}) error {
	return &ParseError{Pos: p.current.Position, Msg: fmt.Sprintf(format, args...)}
}

// expect consumes the current token if it has the given type, else errors
func (p *Parser) expect(t TokenType) (Token, error) {
	if p.current.Type != t {
		return Token{}, p.errorf("expected %s, found %s", t, p.current.Type)
	}
	tok := p.current
	p.nextToken()
	return tok, nil
}

// ParseProgram parses a whole compile unit
func (p *Parser) ParseProgram() (*Program, error) {
	var stmts []Stmt
	for p.current.Type != TOKEN_EOF {
		stmt, err := p.parseStatement()
		if err != nil {
			return nil, err
		}
		stmts = append(stmts, stmt)
	}
	return &Program{Stmts: stmts, Names: p.lexer.Names()}, nil
}

// parseStatement parses a single statement
func (p *Parser) parseStatement() (Stmt, error) {
	switch p.current.Type {
	case TOKEN_VAR:
		return p.parseVarDecl()
	case TOKEN_CONST:
		return p.parseConstDecl()
	case TOKEN_FN:
		return p.parseFnDecl()
	case TOKEN_RETURN:
		return p.parseReturn()
	case TOKEN_IF:
		return p.parseIf()
	case TOKEN_FOR:
		return p.parseFor()
	case TOKEN_WHILE:
		return p.parseWhile()
	case TOKEN_BREAK:
		pos := p.current.Position
		p.nextToken()
		p.skipSemicolon()
		return &BreakStmt{Pos: pos}, nil
	case TOKEN_CONTINUE:
		pos := p.current.Position
		p.nextToken()
		p.skipSemicolon()
		return &ContinueStmt{Pos: pos}, nil
	case TOKEN_IDENTIFIER:
		// Call statement or assignment - disambiguate on the next token
		if p.peek.Type == TOKEN_LPAREN {
			return p.parseCallStmt()
		}
		return p.parseAssign()
	case TOKEN_ILLEGAL:
		return nil, p.errorf("unexpected character %q", p.current.Value)
	default:
		return nil, p.errorf("unexpected token %s at start of statement", p.current.Type)
	}
}

// skipSemicolon consumes an optional trailing semicolon
// break and continue take none in the original grammar, but one is accepted
func (p *Parser) skipSemicolon() {
	if p.current.Type == TOKEN_SEMICOLON {
		p.nextToken()
	}
}

// parseBlock parses statements up to a closing brace (not consumed)
func (p *Parser) parseBlock() ([]Stmt, error) {
	var stmts []Stmt
	for p.current.Type != TOKEN_RBRACE && p.current.Type != TOKEN_EOF {
		stmt, err := p.parseStatement()
		if err != nil {
			return nil, err
		}
		stmts = append(stmts, stmt)
	}
	return stmts, nil
}

// parseBracedBlock parses { stmts }
func (p *Parser) parseBracedBlock() ([]Stmt, error) {
	if _, err := p.expect(TOKEN_LBRACE); err != nil {
		return nil, err
	}
	body, err := p.parseBlock()
	if err != nil {
		return nil, err
	}
	if _, err := p.expect(TOKEN_RBRACE); err != nil {
		return nil, err
	}
	return body, nil
}

// parseVarDecl parses: var x = expr;
func (p *Parser) parseVarDecl() (Stmt, error) {
	pos := p.current.Position
	p.nextToken() // consume 'var'
	id, err := p.expect(TOKEN_IDENTIFIER)
	if err != nil {
		return nil, err
	}
	if _, err := p.expect(TOKEN_ASSIGN); err != nil {
		return nil, err
	}
	init, err := p.parseExpression()
	if err != nil {
		return nil, err
	}
	if _, err := p.expect(TOKEN_SEMICOLON); err != nil {
		return nil, err
	}
	return &VarDeclStmt{Pos: pos, Sym: id.Sym, Init: init}, nil
}

// parseConstDecl parses: const x = expr;
func (p *Parser) parseConstDecl() (Stmt, error) {
	pos := p.current.Position
	p.nextToken() // consume 'const'
	id, err := p.expect(TOKEN_IDENTIFIER)
	if err != nil {
		return nil, err
	}
	if _, err := p.expect(TOKEN_ASSIGN); err != nil {
		return nil, err
	}
	init, err := p.parseExpression()
	if err != nil {
		return nil, err
	}
	if _, err := p.expect(TOKEN_SEMICOLON); err != nil {
		return nil, err
	}
	return &ConstDeclStmt{Pos: pos, Sym: id.Sym, Init: init}, nil
}

// parseFnDecl parses: fn name(params) { body }
func (p *Parser) parseFnDecl() (Stmt, error) {
	pos := p.current.Position
	p.nextToken() // consume 'fn'
	id, err := p.expect(TOKEN_IDENTIFIER)
	if err != nil {
		return nil, err
	}
	if _, err := p.expect(TOKEN_LPAREN); err != nil {
		return nil, err
	}
	var params []Symbol
	for p.current.Type != TOKEN_RPAREN {
		param, err := p.expect(TOKEN_IDENTIFIER)
		if err != nil {
			return nil, err
		}
		params = append(params, param.Sym)
		if p.current.Type == TOKEN_COMMA {
			p.nextToken()
		} else if p.current.Type != TOKEN_RPAREN {
			return nil, p.errorf("expected , or ) in parameter list, found %s", p.current.Type)
		}
	}
	p.nextToken() // consume ')'
	body, err := p.parseBracedBlock()
	if err != nil {
		return nil, err
	}
	return &FnDeclStmt{Pos: pos, Sym: id.Sym, Params: params, Body: body}, nil
}

// parseReturn parses: return expr;
func (p *Parser) parseReturn() (Stmt, error) {
	pos := p.current.Position
	p.nextToken() // consume 'return'
	value, err := p.parseExpression()
	if err != nil {
		return nil, err
	}
	if _, err := p.expect(TOKEN_SEMICOLON); err != nil {
		return nil, err
	}
	return &ReturnStmt{Pos: pos, Value: value}, nil
}

// parseIf parses: if cond { then } [else { else }]
func (p *Parser) parseIf() (Stmt, error) {
	pos := p.current.Position
	p.nextToken() // consume 'if'
	cond, err := p.parseExpression()
	if err != nil {
		return nil, err
	}
	then, err := p.parseBracedBlock()
	if err != nil {
		return nil, err
	}
	var elseBlock []Stmt
	if p.current.Type == TOKEN_ELSE {
		p.nextToken()
		elseBlock, err = p.parseBracedBlock()
		if err != nil {
			return nil, err
		}
	}
	return &IfStmt{Pos: pos, Condition: cond, Then: then, Else: elseBlock}, nil
}

// parseFor parses: for x in (start, end [, step]) { body }
func (p *Parser) parseFor() (Stmt, error) {
	pos := p.current.Position
	p.nextToken() // consume 'for'
	id, err := p.expect(TOKEN_IDENTIFIER)
	if err != nil {
		return nil, err
	}
	if _, err := p.expect(TOKEN_IN); err != nil {
		return nil, err
	}
	if _, err := p.expect(TOKEN_LPAREN); err != nil {
		return nil, err
	}
	start, err := p.parseExpression()
	if err != nil {
		return nil, err
	}
	if _, err := p.expect(TOKEN_COMMA); err != nil {
		return nil, err
	}
	end, err := p.parseExpression()
	if err != nil {
		return nil, err
	}
	// Step defaults to 1 when omitted
	var step Expr = &NumberExpr{Pos: p.current.Position, Val: big.NewInt(1)}
	if p.current.Type == TOKEN_COMMA {
		p.nextToken()
		step, err = p.parseExpression()
		if err != nil {
			return nil, err
		}
	}
	if _, err := p.expect(TOKEN_RPAREN); err != nil {
		return nil, err
	}
	body, err := p.parseBracedBlock()
	if err != nil {
		return nil, err
	}
	return &ForStmt{Pos: pos, Sym: id.Sym, Start: start, End: end, Step: step, Body: body}, nil
}

// parseWhile parses: while cond { body }
func (p *Parser) parseWhile() (Stmt, error) {
	pos := p.current.Position
	p.nextToken() // consume 'while'
	cond, err := p.parseExpression()
	if err != nil {
		return nil, err
	}
	body, err := p.parseBracedBlock()
	if err != nil {
		return nil, err
	}
	return &WhileStmt{Pos: pos, Condition: cond, Body: body}, nil
}

// parseCallStmt parses: name(args);
func (p *Parser) parseCallStmt() (Stmt, error) {
	pos := p.current.Position
	call, err := p.parseCall()
	if err != nil {
		return nil, err
	}
	if _, err := p.expect(TOKEN_SEMICOLON); err != nil {
		return nil, err
	}
	return &ExprStmt{Pos: pos, Expr: call}, nil
}

// parseAssign parses: x = expr; or x[i] = expr;
func (p *Parser) parseAssign() (Stmt, error) {
	pos := p.current.Position
	id, err := p.expect(TOKEN_IDENTIFIER)
	if err != nil {
		return nil, err
	}
	var index Expr
	if p.current.Type == TOKEN_LBRACKET {
		p.nextToken()
		index, err = p.parseExpression()
		if err != nil {
			return nil, err
		}
		if _, err := p.expect(TOKEN_RBRACKET); err != nil {
			return nil, err
		}
	}
	if _, err := p.expect(TOKEN_ASSIGN); err != nil {
		return nil, err
	}
	value, err := p.parseExpression()
	if err != nil {
		return nil, err
	}
	if _, err := p.expect(TOKEN_SEMICOLON); err != nil {
		return nil, err
	}
	return &AssignStmt{Pos: pos, Sym: id.Sym, Index: index, Value: value}, nil
}

// parseCall parses: name(args) with the identifier still current
func (p *Parser) parseCall() (Expr, error) {
	id, err := p.expect(TOKEN_IDENTIFIER)
	if err != nil {
		return nil, err
	}
	if _, err := p.expect(TOKEN_LPAREN); err != nil {
		return nil, err
	}
	var args []Expr
	for p.current.Type != TOKEN_RPAREN && p.current.Type != TOKEN_EOF {
		arg, err := p.parseExpression()
		if err != nil {
			return nil, err
		}
		args = append(args, arg)
		if p.current.Type == TOKEN_COMMA {
			p.nextToken()
		} else {
			break
		}
	}
	if _, err := p.expect(TOKEN_RPAREN); err != nil {
		return nil, err
	}
	return &CallExpr{Pos: id.Position, Name: id.Sym, Args: args}, nil
}

// ParseExpression parses a single expression (exposed for -e and tests)
func (p *Parser) ParseExpression() (Expr, error) {
	return p.parseExpression()
}

// Precedence climbing, lowest level first: || and &&
func (p *Parser) parseExpression() (Expr, error) {
	node, err := p.parseEquality()
	if err != nil {
		return nil, err
	}
	for p.current.Type == TOKEN_OR || p.current.Type == TOKEN_AND {
		op := p.current.Type
		pos := p.current.Position
		p.nextToken()
		right, err := p.parseEquality()
		if err != nil {
			return nil, err
		}
		node = &BinaryExpr{Pos: pos, Left: node, Operator: op, Right: right}
	}
	return node, nil
}

// parseEquality handles == != < <= > >=
func (p *Parser) parseEquality() (Expr, error) {
	node, err := p.parseAdditive()
	if err != nil {
		return nil, err
	}
	for isComparisonOp(p.current.Type) {
		op := p.current.Type
		pos := p.current.Position
		p.nextToken()
		right, err := p.parseAdditive()
		if err != nil {
			return nil, err
		}
		node = &BinaryExpr{Pos: pos, Left: node, Operator: op, Right: right}
	}
	return node, nil
}

func isComparisonOp(t TokenType) bool {
	switch t {
	case TOKEN_EQ, TOKEN_NE, TOKEN_LT, TOKEN_LE, TOKEN_GT, TOKEN_GE:
		return true
	}
	return false
}

// parseAdditive handles + -
func (p *Parser) parseAdditive() (Expr, error) {
	node, err := p.parseShift()
	if err != nil {
		return nil, err
	}
	for p.current.Type == TOKEN_PLUS || p.current.Type == TOKEN_MINUS {
		op := p.current.Type
		pos := p.current.Position
		p.nextToken()
		right, err := p.parseShift()
		if err != nil {
			return nil, err
		}
		node = &BinaryExpr{Pos: pos, Left: node, Operator: op, Right: right}
	}
	return node, nil
}

// parseShift handles << >>
func (p *Parser) parseShift() (Expr, error) {
	node, err := p.parseTerm()
	if err != nil {
		return nil, err
	}
	for p.current.Type == TOKEN_LSHIFT || p.current.Type == TOKEN_RSHIFT {
		op := p.current.Type
		pos := p.current.Position
		p.nextToken()
		right, err := p.parseTerm()
		if err != nil {
			return nil, err
		}
		node = &BinaryExpr{Pos: pos, Left: node, Operator: op, Right: right}
	}
	return node, nil
}

// parseTerm handles * / %
func (p *Parser) parseTerm() (Expr, error) {
	node, err := p.parseFactor()
	if err != nil {
		return nil, err
	}
	for p.current.Type == TOKEN_STAR || p.current.Type == TOKEN_SLASH || p.current.Type == TOKEN_PERCENT {
		op := p.current.Type
		pos := p.current.Position
		p.nextToken()
		right, err := p.parseFactor()
		if err != nil {
			return nil, err
		}
		node = &BinaryExpr{Pos: pos, Left: node, Operator: op, Right: right}
	}
	return node, nil
}

// parseFactor handles primaries and unary + -
func (p *Parser) parseFactor() (Expr, error) {
	switch p.current.Type {
	case TOKEN_INT:
		pos := p.current.Position
		val, ok := new(big.Int).SetString(p.current.Value, 10)
		if !ok {
			return nil, p.errorf("malformed integer literal %q", p.current.Value)
		}
		p.nextToken()
		return &NumberExpr{Pos: pos, Val: val}, nil

	case TOKEN_LPAREN:
		p.nextToken()
		node, err := p.parseExpression()
		if err != nil {
			return nil, err
		}
		if _, err := p.expect(TOKEN_RPAREN); err != nil {
			return nil, err
		}
		return node, nil

	case TOKEN_MINUS, TOKEN_PLUS:
		op := p.current.Type
		pos := p.current.Position
		p.nextToken()
		operand, err := p.parseFactor()
		if err != nil {
			return nil, err
		}
		return &UnaryExpr{Pos: pos, Operator: op, Operand: operand}, nil

	case TOKEN_LBRACKET:
		return p.parseList()

	case TOKEN_IDENTIFIER:
		switch p.peek.Type {
		case TOKEN_LPAREN:
			return p.parseCall()
		case TOKEN_LBRACKET:
			id := p.current
			p.nextToken() // consume identifier
			p.nextToken() // consume '['
			index, err := p.parseExpression()
			if err != nil {
				return nil, err
			}
			if _, err := p.expect(TOKEN_RBRACKET); err != nil {
				return nil, err
			}
			return &IndexExpr{Pos: id.Position, Name: id.Sym, Index: index}, nil
		default:
			id := p.current
			p.nextToken()
			return &VarRefExpr{Pos: id.Position, Sym: id.Sym}, nil
		}

	case TOKEN_ILLEGAL:
		return nil, p.errorf("unexpected character %q", p.current.Value)

	default:
		return nil, p.errorf("unexpected token %s in expression", p.current.Type)
	}
}

// parseList parses [a, b, c] or the template form [value; count]
func (p *Parser) parseList() (Expr, error) {
	pos := p.current.Position
	p.nextToken() // consume '['

	if p.current.Type == TOKEN_RBRACKET {
		p.nextToken()
		return &ListExpr{Pos: pos}, nil
	}

	first, err := p.parseExpression()
	if err != nil {
		return nil, err
	}

	// [value; count] repeats value count times
	if p.current.Type == TOKEN_SEMICOLON {
		p.nextToken()
		count, err := p.parseExpression()
		if err != nil {
			return nil, err
		}
		if _, err := p.expect(TOKEN_RBRACKET); err != nil {
			return nil, err
		}
		return &TemplateListExpr{Pos: pos, Template: first, Count: count}, nil
	}

	elems := []Expr{first}
	for p.current.Type != TOKEN_RBRACKET && p.current.Type != TOKEN_EOF {
		if _, err := p.expect(TOKEN_COMMA); err != nil {
			return nil, err
		}
		elem, err := p.parseExpression()
		if err != nil {
			return nil, err
		}
		elems = append(elems, elem)
	}
	if _, err := p.expect(TOKEN_RBRACKET); err != nil {
		return nil, err
	}
	return &ListExpr{Pos: pos, Elems: elems}, nil
}
