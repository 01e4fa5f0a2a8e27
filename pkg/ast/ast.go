// Package ast defines the Logo dialect AST node types.
package ast

// Span represents a source location range.
type Span struct {
	File      string `json:"file"`
	StartLine int    `json:"startLine"`
	StartCol  int    `json:"startCol"`
	EndLine   int    `json:"endLine"`
	EndCol    int    `json:"endCol"`
}

// Node is the interface implemented by all AST nodes.
type Node interface {
	Kind() string
	NodeSpan() Span
}

// BinaryOp represents a prefix binary operator.
type BinaryOp string

const (
	OpAdd BinaryOp = "+"
	OpSub BinaryOp = "-"
	OpMul BinaryOp = "*"
	OpDiv BinaryOp = "/"
	OpEq  BinaryOp = "EQ"
	OpNe  BinaryOp = "NE"
	OpGt  BinaryOp = "GT"
	OpLt  BinaryOp = "LT"
	OpAnd BinaryOp = "AND"
	OpOr  BinaryOp = "OR"
)

// QueryKind identifies a turtle state query usable in expressions.
type QueryKind string

const (
	QueryXCor    QueryKind = "XCOR"
	QueryYCor    QueryKind = "YCOR"
	QueryHeading QueryKind = "HEADING"
	QueryColor   QueryKind = "COLOR"
)

// Expr is the interface for all expression nodes.
type Expr interface {
	Node
	exprNode() // sealed marker
}

// Command is the interface for all command nodes.
type Command interface {
	Node
	commandNode() // sealed marker
}

// --- Expressions ---

// NumberLiteral is a numeric literal such as "5 or "-3.5.
type NumberLiteral struct {
	Span  Span
	Value float64
}

func (n *NumberLiteral) Kind() string   { return "NumberLiteral" }
func (n *NumberLiteral) NodeSpan() Span { return n.Span }
func (n *NumberLiteral) exprNode()      {}

// BooleanLiteral is TRUE or FALSE, quoted or bare.
type BooleanLiteral struct {
	Span  Span
	Value bool
}

func (n *BooleanLiteral) Kind() string   { return "BooleanLiteral" }
func (n *BooleanLiteral) NodeSpan() Span { return n.Span }
func (n *BooleanLiteral) exprNode()      {}

// VariableRef is a :NAME reference resolved against the global store.
type VariableRef struct {
	Span Span
	Name string
}

func (n *VariableRef) Kind() string   { return "VariableRef" }
func (n *VariableRef) NodeSpan() Span { return n.Span }
func (n *VariableRef) exprNode()      {}

// BinaryExpr applies a prefix operator to exactly two operands.
type BinaryExpr struct {
	Span  Span
	Op    BinaryOp
	Left  Expr
	Right Expr
}

func (n *BinaryExpr) Kind() string   { return "BinaryExpr" }
func (n *BinaryExpr) NodeSpan() Span { return n.Span }
func (n *BinaryExpr) exprNode()      {}

// QueryExpr reads a turtle attribute (XCOR, YCOR, HEADING, COLOR).
type QueryExpr struct {
	Span  Span
	Query QueryKind
}

func (n *QueryExpr) Kind() string   { return "QueryExpr" }
func (n *QueryExpr) NodeSpan() Span { return n.Span }
func (n *QueryExpr) exprNode()      {}

// --- Commands ---

// MoveKind identifies a single-argument turtle command.
type MoveKind string

const (
	MoveForward    MoveKind = "FORWARD"
	MoveBack       MoveKind = "BACK"
	MoveLeft       MoveKind = "LEFT"
	MoveRight      MoveKind = "RIGHT"
	MoveTurn       MoveKind = "TURN"
	MoveSetHeading MoveKind = "SETHEADING"
	MoveSetX       MoveKind = "SETX"
	MoveSetY       MoveKind = "SETY"
	MoveSetColor   MoveKind = "SETPENCOLOR"
)

// MoveCmd is a turtle command taking one expression argument.
type MoveCmd struct {
	Span Span
	Move MoveKind
	Arg  Expr
}

func (n *MoveCmd) Kind() string   { return string(n.Move) }
func (n *MoveCmd) NodeSpan() Span { return n.Span }
func (n *MoveCmd) commandNode()   {}

// PenCmd is PENUP or PENDOWN.
type PenCmd struct {
	Span Span
	Down bool
}

func (n *PenCmd) Kind() string {
	if n.Down {
		return "PENDOWN"
	}
	return "PENUP"
}
func (n *PenCmd) NodeSpan() Span { return n.Span }
func (n *PenCmd) commandNode()   {}

// MakeCmd binds a variable in the global store.
type MakeCmd struct {
	Span  Span
	Name  string
	Value Expr
}

func (n *MakeCmd) Kind() string   { return "MAKE" }
func (n *MakeCmd) NodeSpan() Span { return n.Span }
func (n *MakeCmd) commandNode()   {}

// AddAssignCmd adds a numeric expression to an existing variable.
type AddAssignCmd struct {
	Span  Span
	Name  string
	Value Expr
}

func (n *AddAssignCmd) Kind() string   { return "ADDASSIGN" }
func (n *AddAssignCmd) NodeSpan() Span { return n.Span }
func (n *AddAssignCmd) commandNode()   {}

// IfCmd executes Body when Cond is true. There is no ELSE.
type IfCmd struct {
	Span Span
	Cond Expr
	Body []Command
}

func (n *IfCmd) Kind() string   { return "IF" }
func (n *IfCmd) NodeSpan() Span { return n.Span }
func (n *IfCmd) commandNode()   {}

// WhileCmd re-evaluates Cond before every iteration.
type WhileCmd struct {
	Span Span
	Cond Expr
	Body []Command
}

func (n *WhileCmd) Kind() string   { return "WHILE" }
func (n *WhileCmd) NodeSpan() Span { return n.Span }
func (n *WhileCmd) commandNode()   {}

// ProcDef registers a TO ... END procedure definition.
type ProcDef struct {
	Span   Span
	Name   string
	Params []string
	Body   []Command
}

func (n *ProcDef) Kind() string   { return "TO" }
func (n *ProcDef) NodeSpan() Span { return n.Span }
func (n *ProcDef) commandNode()   {}

// ProcCall invokes a previously defined procedure.
type ProcCall struct {
	Span Span
	Name string
	Args []Expr
}

func (n *ProcCall) Kind() string   { return "CALL" }
func (n *ProcCall) NodeSpan() Span { return n.Span }
func (n *ProcCall) commandNode()   {}

// Program is an ordered top-level command sequence.
type Program struct {
	Span     Span
	Commands []Command
}

func (n *Program) Kind() string   { return "Program" }
func (n *Program) NodeSpan() Span { return n.Span }
