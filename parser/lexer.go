package parser

// Lexer tokenizes cara source code
// Identifiers are interned on first sight: each distinct spelling gets a
// dense Symbol id, and the id -> name table is kept for diagnostics
type Lexer struct {
	input        string
	position     int  // current position in input (points to current char)
	readPosition int  // current reading position in input (after current char)
	ch           byte // current char under examination
	line         int
	column       int

	symbols map[string]Symbol
	names   []string
}

// NewLexer creates a new Lexer instance
func NewLexer(input string) *Lexer {
	l := &Lexer{
		input:   input,
		line:    1,
		column:  0,
		symbols: make(map[string]Symbol),
	}
	l.readChar()
	return l
}

// Names returns the interned identifier table (id -> source name)
func (l *Lexer) Names() []string {
	return l.names
}

// intern returns the Symbol id for a spelling, assigning one if new
func (l *Lexer) intern(name string) Symbol {
	if sym, ok := l.symbols[name]; ok {
		return sym
	}
	sym := Symbol(len(l.names))
	l.symbols[name] = sym
	l.names = append(l.names, name)
	return sym
}

// readChar reads the next character and advances position
func (l *Lexer) readChar() {
	if l.readPosition >= len(l.input) {
		l.ch = 0 // ASCII NUL
	} else {
		l.ch = l.input[l.readPosition]
	}
	l.position = l.readPosition
	l.readPosition++
	l.column++
	if l.ch == '\n' {
		l.line++
		l.column = 0
	}
}

// peekChar returns the next character without advancing
func (l *Lexer) peekChar() byte {
	if l.readPosition >= len(l.input) {
		return 0
	}
	return l.input[l.readPosition]
}

// skipWhitespace skips over whitespace characters
func (l *Lexer) skipWhitespace() {
	for l.ch == ' ' || l.ch == '\t' || l.ch == '\n' || l.ch == '\r' {
		l.readChar()
	}
}

// skipComment skips over a comment (// to end of line)
func (l *Lexer) skipComment() {
	if l.ch == '/' && l.peekChar() == '/' {
		for l.ch != '\n' && l.ch != 0 {
			l.readChar()
		}
	}
}

// NextToken returns the next token from the input
func (l *Lexer) NextToken() Token {
	var tok Token

	l.skipWhitespace()

	// Check for comments
	for l.ch == '/' && l.peekChar() == '/' {
		l.skipComment()
		l.skipWhitespace()
	}

	tok.Position = Position{
		Line:   l.line,
		Column: l.column,
		Offset: l.position,
	}

	switch l.ch {
	case 0:
		tok.Type = TOKEN_EOF
		tok.Value = ""
	case '+':
		tok.Type = TOKEN_PLUS
		tok.Value = "+"
	case '-':
		tok.Type = TOKEN_MINUS
		tok.Value = "-"
	case '*':
		tok.Type = TOKEN_STAR
		tok.Value = "*"
	case '/':
		tok.Type = TOKEN_SLASH
		tok.Value = "/"
	case '%':
		tok.Type = TOKEN_PERCENT
		tok.Value = "%"
	case '=':
		if l.peekChar() == '=' {
			l.readChar()
			tok.Type = TOKEN_EQ
			tok.Value = "=="
		} else {
			tok.Type = TOKEN_ASSIGN
			tok.Value = "="
		}
	case '!':
		if l.peekChar() == '=' {
			l.readChar()
			tok.Type = TOKEN_NE
			tok.Value = "!="
		} else {
			tok.Type = TOKEN_ILLEGAL
			tok.Value = "!"
		}
	case '<':
		switch l.peekChar() {
		case '=':
			l.readChar()
			tok.Type = TOKEN_LE
			tok.Value = "<="
		case '<':
			l.readChar()
			tok.Type = TOKEN_LSHIFT
			tok.Value = "<<"
		default:
			tok.Type = TOKEN_LT
			tok.Value = "<"
		}
	case '>':
		switch l.peekChar() {
		case '=':
			l.readChar()
			tok.Type = TOKEN_GE
			tok.Value = ">="
		case '>':
			l.readChar()
			tok.Type = TOKEN_RSHIFT
			tok.Value = ">>"
		default:
			tok.Type = TOKEN_GT
			tok.Value = ">"
		}
	case '&':
		if l.peekChar() == '&' {
			l.readChar()
			tok.Type = TOKEN_AND
			tok.Value = "&&"
		} else {
			tok.Type = TOKEN_ILLEGAL
			tok.Value = "&"
		}
	case '|':
		if l.peekChar() == '|' {
			l.readChar()
			tok.Type = TOKEN_OR
			tok.Value = "||"
		} else {
			tok.Type = TOKEN_ILLEGAL
			tok.Value = "|"
		}
	case ';':
		tok.Type = TOKEN_SEMICOLON
		tok.Value = ";"
	case ',':
		tok.Type = TOKEN_COMMA
		tok.Value = ","
	case '(':
		tok.Type = TOKEN_LPAREN
		tok.Value = "("
	case ')':
		tok.Type = TOKEN_RPAREN
		tok.Value = ")"
	case '{':
		tok.Type = TOKEN_LBRACE
		tok.Value = "{"
	case '}':
		tok.Type = TOKEN_RBRACE
		tok.Value = "}"
	case '[':
		tok.Type = TOKEN_LBRACKET
		tok.Value = "["
	case ']':
		tok.Type = TOKEN_RBRACKET
		tok.Value = "]"
	default:
		if isDigit(l.ch) {
			tok.Type = TOKEN_INT
			tok.Value = l.readNumber()
			return tok // readNumber already advanced past the literal
		}
		if isLetter(l.ch) {
			name := l.readIdentifier()
			if kw, ok := keywords[name]; ok {
				tok.Type = kw
				tok.Value = name
				return tok
			}
			tok.Type = TOKEN_IDENTIFIER
			tok.Value = name
			tok.Sym = l.intern(name)
			return tok
		}
		tok.Type = TOKEN_ILLEGAL
		tok.Value = string(l.ch)
	}

	l.readChar()
	return tok
}

// readNumber reads a decimal integer literal of any length
func (l *Lexer) readNumber() string {
	start := l.position
	for isDigit(l.ch) {
		l.readChar()
	}
	return l.input[start:l.position]
}

// readIdentifier reads an identifier or keyword
func (l *Lexer) readIdentifier() string {
	start := l.position
	for isLetter(l.ch) || isDigit(l.ch) {
		l.readChar()
	}
	return l.input[start:l.position]
}

func isLetter(ch byte) bool {
	return ch == '_' || ('a' <= ch && ch <= 'z') || ('A' <= ch && ch <= 'Z')
}

func isDigit(ch byte) bool {
	return '0' <= ch && ch <= '9'
}
