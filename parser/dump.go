package parser

import (
	"fmt"
	"strings"
)

// Dump renders a program as an indented tree for debugging (-dump-ast)
func Dump(prog *Program) string {
	var b strings.Builder
	for _, stmt := range prog.Stmts {
		dumpStmt(&b, stmt, prog.Names, 0)
	}
	return b.String()
}

func name(names []string, sym Symbol) string {
	if int(sym) < len(names) {
		return names[sym]
	}
	return fmt.Sprintf("sym#%d", sym)
}

func indent(b *strings.Builder, depth int) {
	b.WriteString(strings.Repeat("  ", depth))
}

func dumpStmt(b *strings.Builder, stmt Stmt, names []string, depth int) {
	indent(b, depth)
	switch s := stmt.(type) {
	case *VarDeclStmt:
		fmt.Fprintf(b, "var %s =\n", name(names, s.Sym))
		dumpExpr(b, s.Init, names, depth+1)
	case *ConstDeclStmt:
		fmt.Fprintf(b, "const %s =\n", name(names, s.Sym))
		dumpExpr(b, s.Init, names, depth+1)
	case *AssignStmt:
		if s.Index != nil {
			fmt.Fprintf(b, "assign %s[...] =\n", name(names, s.Sym))
			dumpExpr(b, s.Index, names, depth+1)
		} else {
			fmt.Fprintf(b, "assign %s =\n", name(names, s.Sym))
		}
		dumpExpr(b, s.Value, names, depth+1)
	case *FnDeclStmt:
		params := make([]string, len(s.Params))
		for i, p := range s.Params {
			params[i] = name(names, p)
		}
		fmt.Fprintf(b, "fn %s(%s)\n", name(names, s.Sym), strings.Join(params, ", "))
		for _, inner := range s.Body {
			dumpStmt(b, inner, names, depth+1)
		}
	case *ReturnStmt:
		b.WriteString("return\n")
		dumpExpr(b, s.Value, names, depth+1)
	case *IfStmt:
		b.WriteString("if\n")
		dumpExpr(b, s.Condition, names, depth+1)
		indent(b, depth)
		b.WriteString("then\n")
		for _, inner := range s.Then {
			dumpStmt(b, inner, names, depth+1)
		}
		if s.Else != nil {
			indent(b, depth)
			b.WriteString("else\n")
			for _, inner := range s.Else {
				dumpStmt(b, inner, names, depth+1)
			}
		}
	case *ForStmt:
		fmt.Fprintf(b, "for %s in\n", name(names, s.Sym))
		dumpExpr(b, s.Start, names, depth+1)
		dumpExpr(b, s.End, names, depth+1)
		dumpExpr(b, s.Step, names, depth+1)
		for _, inner := range s.Body {
			dumpStmt(b, inner, names, depth+1)
		}
	case *WhileStmt:
		b.WriteString("while\n")
		dumpExpr(b, s.Condition, names, depth+1)
		for _, inner := range s.Body {
			dumpStmt(b, inner, names, depth+1)
		}
	case *BreakStmt:
		b.WriteString("break\n")
	case *ContinueStmt:
		b.WriteString("continue\n")
	case *ExprStmt:
		b.WriteString("expr\n")
		dumpExpr(b, s.Expr, names, depth+1)
	default:
		fmt.Fprintf(b, "?stmt %T\n", stmt)
	}
}

func dumpExpr(b *strings.Builder, expr Expr, names []string, depth int) {
	indent(b, depth)
	switch e := expr.(type) {
	case *NumberExpr:
		fmt.Fprintf(b, "number %s\n", e.Val.String())
	case *VarRefExpr:
		fmt.Fprintf(b, "read %s\n", name(names, e.Sym))
	case *UnaryExpr:
		fmt.Fprintf(b, "unary %s\n", e.Operator)
		dumpExpr(b, e.Operand, names, depth+1)
	case *BinaryExpr:
		fmt.Fprintf(b, "binary %s\n", e.Operator)
		dumpExpr(b, e.Left, names, depth+1)
		dumpExpr(b, e.Right, names, depth+1)
	case *CallExpr:
		fmt.Fprintf(b, "call %s\n", name(names, e.Name))
		for _, arg := range e.Args {
			dumpExpr(b, arg, names, depth+1)
		}
	case *IndexExpr:
		fmt.Fprintf(b, "index %s\n", name(names, e.Name))
		dumpExpr(b, e.Index, names, depth+1)
	case *ListExpr:
		b.WriteString("list\n")
		for _, elem := range e.Elems {
			dumpExpr(b, elem, names, depth+1)
		}
	case *TemplateListExpr:
		b.WriteString("template-list\n")
		dumpExpr(b, e.Template, names, depth+1)
		dumpExpr(b, e.Count, names, depth+1)
	default:
		fmt.Fprintf(b, "?expr %T\n", expr)
	}
}
