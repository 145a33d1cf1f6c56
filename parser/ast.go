package parser

import "math/big"

// Node is the base interface for all AST nodes
type Node interface {
	Position() Position
}

// Expr represents an expression node
type Expr interface {
	Node
	exprNode()
}

// Stmt represents a statement node
type Stmt interface {
	Node
	stmtNode()
}

// Program is the root of a parsed compile unit
// Names is the interned identifier table (Symbol id -> source name), used
// only for diagnostics; the evaluator works with ids
type Program struct {
	Stmts []Stmt
	Names []string
}

// NumberExpr represents an integer literal (arbitrary precision)
type NumberExpr struct {
	Pos Position
	Val *big.Int
}

func (e *NumberExpr) Position() Position { return e.Pos }
func (e *NumberExpr) exprNode()          {}

// VarRefExpr represents a variable read
type VarRefExpr struct {
	Pos Position
	Sym Symbol
}

func (e *VarRefExpr) Position() Position { return e.Pos }
func (e *VarRefExpr) exprNode()          {}

// UnaryExpr represents a unary operation: -x or +x
type UnaryExpr struct {
	Pos      Position
	Operator TokenType // TOKEN_MINUS or TOKEN_PLUS
	Operand  Expr
}

func (e *UnaryExpr) Position() Position { return e.Pos }
func (e *UnaryExpr) exprNode()          {}

// BinaryExpr represents a binary operation
type BinaryExpr struct {
	Pos      Position
	Left     Expr
	Operator TokenType
	Right    Expr
}

func (e *BinaryExpr) Position() Position { return e.Pos }
func (e *BinaryExpr) exprNode()          {}

// CallExpr represents a function call: name(args)
// Builtin names are resolved at evaluation time, not parse time
type CallExpr struct {
	Pos  Position
	Name Symbol
	Args []Expr
}

func (e *CallExpr) Position() Position { return e.Pos }
func (e *CallExpr) exprNode()          {}

// IndexExpr represents reading a list element: name[index]
type IndexExpr struct {
	Pos   Position
	Name  Symbol
	Index Expr
}

func (e *IndexExpr) Position() Position { return e.Pos }
func (e *IndexExpr) exprNode()          {}

// ListExpr represents a list literal: [a, b, c]
type ListExpr struct {
	Pos   Position
	Elems []Expr
}

func (e *ListExpr) Position() Position { return e.Pos }
func (e *ListExpr) exprNode()          {}

// TemplateListExpr represents a repeated-element list literal: [value; count]
type TemplateListExpr struct {
	Pos      Position
	Template Expr
	Count    Expr
}

func (e *TemplateListExpr) Position() Position { return e.Pos }
func (e *TemplateListExpr) exprNode()          {}

// VarDeclStmt represents a variable definition: var x = expr;
type VarDeclStmt struct {
	Pos  Position
	Sym  Symbol
	Init Expr
}

func (s *VarDeclStmt) Position() Position { return s.Pos }
func (s *VarDeclStmt) stmtNode()          {}

// ConstDeclStmt represents a constant definition: const x = expr;
type ConstDeclStmt struct {
	Pos  Position
	Sym  Symbol
	Init Expr
}

func (s *ConstDeclStmt) Position() Position { return s.Pos }
func (s *ConstDeclStmt) stmtNode()          {}

// AssignStmt represents an assignment: x = expr; or x[i] = expr;
// Index is nil for plain variable assignment
type AssignStmt struct {
	Pos   Position
	Sym   Symbol
	Index Expr
	Value Expr
}

func (s *AssignStmt) Position() Position { return s.Pos }
func (s *AssignStmt) stmtNode()          {}

// FnDeclStmt represents a function definition: fn name(params) { body }
// The body statement slice is shared by every call; it is never copied
type FnDeclStmt struct {
	Pos    Position
	Sym    Symbol
	Params []Symbol
	Body   []Stmt
}

func (s *FnDeclStmt) Position() Position { return s.Pos }
func (s *FnDeclStmt) stmtNode()          {}

// ReturnStmt represents: return expr;
type ReturnStmt struct {
	Pos   Position
	Value Expr
}

func (s *ReturnStmt) Position() Position { return s.Pos }
func (s *ReturnStmt) stmtNode()          {}

// IfStmt represents: if cond { then } else { else }
// Else is nil when there is no else block
type IfStmt struct {
	Pos       Position
	Condition Expr
	Then      []Stmt
	Else      []Stmt
}

func (s *IfStmt) Position() Position { return s.Pos }
func (s *IfStmt) stmtNode()          {}

// ForStmt represents: for x in (start, end [, step]) { body }
// Step is a NumberExpr of 1 when omitted in source
type ForStmt struct {
	Pos   Position
	Sym   Symbol
	Start Expr
	End   Expr
	Step  Expr
	Body  []Stmt
}

func (s *ForStmt) Position() Position { return s.Pos }
func (s *ForStmt) stmtNode()          {}

// WhileStmt represents: while cond { body }
type WhileStmt struct {
	Pos       Position
	Condition Expr
	Body      []Stmt
}

func (s *WhileStmt) Position() Position { return s.Pos }
func (s *WhileStmt) stmtNode()          {}

// BreakStmt represents the break keyword
type BreakStmt struct {
	Pos Position
}

func (s *BreakStmt) Position() Position { return s.Pos }
func (s *BreakStmt) stmtNode()          {}

// ContinueStmt represents the continue keyword
type ContinueStmt struct {
	Pos Position
}

func (s *ContinueStmt) Position() Position { return s.Pos }
func (s *ContinueStmt) stmtNode()          {}

// ExprStmt wraps an expression used in statement position (call statements)
type ExprStmt struct {
	Pos  Position
	Expr Expr
}

func (s *ExprStmt) Position() Position { return s.Pos }
func (s *ExprStmt) stmtNode()          {}
