package parser

// TokenType represents different types of lexical tokens
type TokenType int

const (
	// Special tokens
	TOKEN_EOF TokenType = iota
	TOKEN_ILLEGAL

	// Literals
	TOKEN_INT // 42 (arbitrary precision)

	// Keywords
	TOKEN_VAR
	TOKEN_CONST
	TOKEN_FN
	TOKEN_RETURN
	TOKEN_IF
	TOKEN_ELSE
	TOKEN_FOR
	TOKEN_IN
	TOKEN_WHILE
	TOKEN_BREAK
	TOKEN_CONTINUE

	// Identifiers (interned - see Token.Sym)
	TOKEN_IDENTIFIER

	// Operators
	TOKEN_PLUS    // +
	TOKEN_MINUS   // -
	TOKEN_STAR    // *
	TOKEN_SLASH   // /
	TOKEN_PERCENT // %

	TOKEN_EQ // ==
	TOKEN_NE // !=
	TOKEN_LT // <
	TOKEN_GT // >
	TOKEN_LE // <=
	TOKEN_GE // >=

	TOKEN_AND // &&
	TOKEN_OR  // ||

	TOKEN_LSHIFT // <<
	TOKEN_RSHIFT // >>

	// Punctuation
	TOKEN_ASSIGN    // =
	TOKEN_SEMICOLON // ;
	TOKEN_COMMA     // ,
	TOKEN_LPAREN    // (
	TOKEN_RPAREN    // )
	TOKEN_LBRACE    // {
	TOKEN_RBRACE    // }
	TOKEN_LBRACKET  // [
	TOKEN_RBRACKET  // ]
)

// String returns a readable name for a token type (for errors and AST dumps)
func (t TokenType) String() string {
	switch t {
	case TOKEN_EOF:
		return "EOF"
	case TOKEN_ILLEGAL:
		return "ILLEGAL"
	case TOKEN_INT:
		return "INT"
	case TOKEN_VAR:
		return "var"
	case TOKEN_CONST:
		return "const"
	case TOKEN_FN:
		return "fn"
	case TOKEN_RETURN:
		return "return"
	case TOKEN_IF:
		return "if"
	case TOKEN_ELSE:
		return "else"
	case TOKEN_FOR:
		return "for"
	case TOKEN_IN:
		return "in"
	case TOKEN_WHILE:
		return "while"
	case TOKEN_BREAK:
		return "break"
	case TOKEN_CONTINUE:
		return "continue"
	case TOKEN_IDENTIFIER:
		return "IDENTIFIER"
	case TOKEN_PLUS:
		return "+"
	case TOKEN_MINUS:
		return "-"
	case TOKEN_STAR:
		return "*"
	case TOKEN_SLASH:
		return "/"
	case TOKEN_PERCENT:
		return "%"
	case TOKEN_EQ:
		return "=="
	case TOKEN_NE:
		return "!="
	case TOKEN_LT:
		return "<"
	case TOKEN_GT:
		return ">"
	case TOKEN_LE:
		return "<="
	case TOKEN_GE:
		return ">="
	case TOKEN_AND:
		return "&&"
	case TOKEN_OR:
		return "||"
	case TOKEN_LSHIFT:
		return "<<"
	case TOKEN_RSHIFT:
		return ">>"
	case TOKEN_ASSIGN:
		return "="
	case TOKEN_SEMICOLON:
		return ";"
	case TOKEN_COMMA:
		return ","
	case TOKEN_LPAREN:
		return "("
	case TOKEN_RPAREN:
		return ")"
	case TOKEN_LBRACE:
		return "{"
	case TOKEN_RBRACE:
		return "}"
	case TOKEN_LBRACKET:
		return "["
	case TOKEN_RBRACKET:
		return "]"
	default:
		return "UNKNOWN"
	}
}

// keywords maps identifier spellings to keyword token types
var keywords = map[string]TokenType{
	"var":      TOKEN_VAR,
	"const":    TOKEN_CONST,
	"fn":       TOKEN_FN,
	"return":   TOKEN_RETURN,
	"if":       TOKEN_IF,
	"else":     TOKEN_ELSE,
	"for":      TOKEN_FOR,
	"in":       TOKEN_IN,
	"while":    TOKEN_WHILE,
	"break":    TOKEN_BREAK,
	"continue": TOKEN_CONTINUE,
}

// Position tracks source location for error reporting
type Position struct {
	Line   int
	Column int
	Offset int
}

// Symbol is an interned identifier id
// The lexer assigns ids densely in order of first appearance; the id -> name
// table travels with the Program for diagnostics
type Symbol int

// Token represents a single lexical token
type Token struct {
	Type     TokenType
	Value    string // raw text (identifier spelling, number digits, operator)
	Sym      Symbol // valid when Type == TOKEN_IDENTIFIER
	Position Position
}
