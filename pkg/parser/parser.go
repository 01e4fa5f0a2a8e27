// Package parser implements the Logo dialect recursive-descent parser.
package parser

import (
	"fmt"
	"strconv"

	"github.com/gologo-lang/gologo/pkg/ast"
	"github.com/gologo-lang/gologo/pkg/diagnostics"
	"github.com/gologo-lang/gologo/pkg/lexer"
)

type parser struct {
	tokens []lexer.Token
	pos    int
	diags  []diagnostics.Diagnostic
}

// Parse tokenizes source and parses it into an AST.
func Parse(source, filename string) (*ast.Program, []diagnostics.Diagnostic) {
	tokens, err := lexer.Tokenize(source, filename)
	if err != nil {
		if le, ok := err.(*lexer.LexError); ok {
			return nil, []diagnostics.Diagnostic{le.Diag}
		}
		return nil, []diagnostics.Diagnostic{diagnostics.MakeDiag(diagnostics.ELex, err.Error(), nil, "")}
	}

	p := &parser{tokens: tokens, pos: 0}
	prog := p.parseProgram(filename)
	if len(p.diags) > 0 {
		return nil, p.diags
	}
	return prog, nil
}

func (p *parser) current() lexer.Token {
	if p.pos >= len(p.tokens) {
		return p.tokens[len(p.tokens)-1] // EOF
	}
	return p.tokens[p.pos]
}

func (p *parser) peek() lexer.TokenType {
	return p.current().Type
}

func (p *parser) advance() lexer.Token {
	tok := p.current()
	if p.pos < len(p.tokens)-1 {
		p.pos++
	}
	return tok
}

func (p *parser) expect(typ lexer.TokenType) (lexer.Token, bool) {
	tok := p.current()
	if tok.Type != typ {
		p.addError(fmt.Sprintf("expected %s, got '%s'", tokenName(typ), tok.Value), &tok.Span)
		return tok, false
	}
	return p.advance(), true
}

func (p *parser) addError(msg string, span *ast.Span) {
	p.diags = append(p.diags, diagnostics.MakeDiag(diagnostics.EParse, msg, span, ""))
}

func (p *parser) spanFromTo(start, end ast.Span) ast.Span {
	return ast.Span{
		File:      start.File,
		StartLine: start.StartLine,
		StartCol:  start.StartCol,
		EndLine:   end.EndLine,
		EndCol:    end.EndCol,
	}
}

func tokenName(t lexer.TokenType) string {
	switch t {
	case lexer.TokLBracket:
		return "'['"
	case lexer.TokRBracket:
		return "']'"
	case lexer.TokWord:
		return "a quoted word"
	case lexer.TokVar:
		return "a variable reference"
	case lexer.TokNumber:
		return "a number"
	case lexer.TokIdent:
		return "identifier"
	case lexer.TokEnd:
		return "'END'"
	case lexer.TokEOF:
		return "end of file"
	default:
		return fmt.Sprintf("token(%d)", t)
	}
}

// isOperator reports whether the token is a prefix operator.
func isOperator(t lexer.TokenType) bool {
	switch t {
	case lexer.TokEq, lexer.TokNe, lexer.TokGt, lexer.TokLt,
		lexer.TokAnd, lexer.TokOr,
		lexer.TokPlus, lexer.TokMinus, lexer.TokStar, lexer.TokSlash:
		return true
	}
	return false
}

// isQuery reports whether the token is a turtle state query.
func isQuery(t lexer.TokenType) bool {
	switch t {
	case lexer.TokXCor, lexer.TokYCor, lexer.TokHeading, lexer.TokColor:
		return true
	}
	return false
}

// isExprStart reports whether a token can begin an expression. Used to
// delimit greedy procedure-call argument lists.
func isExprStart(t lexer.TokenType) bool {
	switch t {
	case lexer.TokNumber, lexer.TokWord, lexer.TokVar,
		lexer.TokTrue, lexer.TokFalse:
		return true
	}
	return isOperator(t) || isQuery(t)
}

func operatorOf(t lexer.TokenType) ast.BinaryOp {
	switch t {
	case lexer.TokEq:
		return ast.OpEq
	case lexer.TokNe:
		return ast.OpNe
	case lexer.TokGt:
		return ast.OpGt
	case lexer.TokLt:
		return ast.OpLt
	case lexer.TokAnd:
		return ast.OpAnd
	case lexer.TokOr:
		return ast.OpOr
	case lexer.TokPlus:
		return ast.OpAdd
	case lexer.TokMinus:
		return ast.OpSub
	case lexer.TokStar:
		return ast.OpMul
	default:
		return ast.OpDiv
	}
}

func queryOf(t lexer.TokenType) ast.QueryKind {
	switch t {
	case lexer.TokXCor:
		return ast.QueryXCor
	case lexer.TokYCor:
		return ast.QueryYCor
	case lexer.TokHeading:
		return ast.QueryHeading
	default:
		return ast.QueryColor
	}
}

var moveOf = map[lexer.TokenType]ast.MoveKind{
	lexer.TokForward:     ast.MoveForward,
	lexer.TokBack:        ast.MoveBack,
	lexer.TokLeft:        ast.MoveLeft,
	lexer.TokRight:       ast.MoveRight,
	lexer.TokTurn:        ast.MoveTurn,
	lexer.TokSetHeading:  ast.MoveSetHeading,
	lexer.TokSetX:        ast.MoveSetX,
	lexer.TokSetY:        ast.MoveSetY,
	lexer.TokSetPenColor: ast.MoveSetColor,
}

// --- Program ---

func (p *parser) parseProgram(filename string) *ast.Program {
	startSpan := p.current().Span

	var cmds []ast.Command
	for p.peek() != lexer.TokEOF {
		cmd, ok := p.parseCommand(true)
		if !ok {
			return nil
		}
		cmds = append(cmds, cmd)
	}

	return &ast.Program{
		Span:     p.spanFromTo(startSpan, p.current().Span),
		Commands: cmds,
	}
}

// parseCommand parses one command. Procedure definitions are only legal at
// the top level.
func (p *parser) parseCommand(topLevel bool) (ast.Command, bool) {
	tok := p.current()

	if kind, ok := moveOf[tok.Type]; ok {
		p.advance()
		arg, ok := p.parseExpr()
		if !ok {
			return nil, false
		}
		return &ast.MoveCmd{
			Span: p.spanFromTo(tok.Span, arg.NodeSpan()),
			Move: kind,
			Arg:  arg,
		}, true
	}

	switch tok.Type {
	case lexer.TokPenUp, lexer.TokPenDown:
		p.advance()
		return &ast.PenCmd{Span: tok.Span, Down: tok.Type == lexer.TokPenDown}, true

	case lexer.TokMake:
		return p.parseMake()

	case lexer.TokAddAssign:
		return p.parseAddAssign()

	case lexer.TokIf, lexer.TokWhile:
		return p.parseConditional()

	case lexer.TokTo:
		if !topLevel {
			p.addError("procedure definitions cannot be nested", &tok.Span)
			return nil, false
		}
		return p.parseProcDef()

	case lexer.TokEnd:
		p.addError("found 'END' without a matching 'TO' procedure definition", &tok.Span)
		return nil, false

	case lexer.TokIdent:
		return p.parseProcCall()
	}

	p.addError(fmt.Sprintf("expected a command, got '%s'", tok.Value), &tok.Span)
	return nil, false
}

func (p *parser) parseMake() (ast.Command, bool) {
	start := p.advance() // MAKE
	name, ok := p.expect(lexer.TokWord)
	if !ok {
		return nil, false
	}
	value, ok := p.parseExpr()
	if !ok {
		return nil, false
	}
	return &ast.MakeCmd{
		Span:  p.spanFromTo(start.Span, value.NodeSpan()),
		Name:  name.Value,
		Value: value,
	}, true
}

func (p *parser) parseAddAssign() (ast.Command, bool) {
	start := p.advance() // ADDASSIGN
	tok := p.current()
	if tok.Type != lexer.TokWord && tok.Type != lexer.TokVar {
		p.addError(fmt.Sprintf("expected a variable name, got '%s'", tok.Value), &tok.Span)
		return nil, false
	}
	p.advance()
	value, ok := p.parseExpr()
	if !ok {
		return nil, false
	}
	return &ast.AddAssignCmd{
		Span:  p.spanFromTo(start.Span, value.NodeSpan()),
		Name:  tok.Value,
		Value: value,
	}, true
}

func (p *parser) parseConditional() (ast.Command, bool) {
	start := p.advance() // IF or WHILE
	cond, ok := p.parseExpr()
	if !ok {
		return nil, false
	}
	body, endSpan, ok := p.parseBlock()
	if !ok {
		return nil, false
	}
	span := p.spanFromTo(start.Span, endSpan)
	if start.Type == lexer.TokIf {
		return &ast.IfCmd{Span: span, Cond: cond, Body: body}, true
	}
	return &ast.WhileCmd{Span: span, Cond: cond, Body: body}, true
}

// parseBlock parses a bracketed [ ... ] command sequence and returns the
// closing bracket's span.
func (p *parser) parseBlock() ([]ast.Command, ast.Span, bool) {
	if _, ok := p.expect(lexer.TokLBracket); !ok {
		return nil, ast.Span{}, false
	}
	var cmds []ast.Command
	for p.peek() != lexer.TokRBracket {
		if p.peek() == lexer.TokEOF {
			tok := p.current()
			p.addError("unterminated block: expected ']'", &tok.Span)
			return nil, ast.Span{}, false
		}
		cmd, ok := p.parseCommand(false)
		if !ok {
			return nil, ast.Span{}, false
		}
		cmds = append(cmds, cmd)
	}
	end := p.advance() // ]
	return cmds, end.Span, true
}

func (p *parser) parseProcDef() (ast.Command, bool) {
	start := p.advance() // TO
	name, ok := p.expect(lexer.TokIdent)
	if !ok {
		return nil, false
	}

	var params []string
	for p.peek() == lexer.TokVar || p.peek() == lexer.TokWord {
		params = append(params, p.advance().Value)
	}

	var body []ast.Command
	for p.peek() != lexer.TokEnd {
		if p.peek() == lexer.TokEOF {
			tok := p.current()
			p.addError(fmt.Sprintf("unterminated procedure definition '%s': expected 'END'", name.Value), &tok.Span)
			return nil, false
		}
		cmd, ok := p.parseCommand(false)
		if !ok {
			return nil, false
		}
		body = append(body, cmd)
	}
	end := p.advance() // END

	return &ast.ProcDef{
		Span:   p.spanFromTo(start.Span, end.Span),
		Name:   name.Value,
		Params: params,
		Body:   body,
	}, true
}

// parseProcCall parses a call with greedy argument consumption: every
// following token that can start an expression becomes an argument. Arity
// is checked at call time, not parse time.
func (p *parser) parseProcCall() (ast.Command, bool) {
	name := p.advance()
	endSpan := name.Span

	var args []ast.Expr
	for isExprStart(p.peek()) {
		arg, ok := p.parseExpr()
		if !ok {
			return nil, false
		}
		args = append(args, arg)
		endSpan = arg.NodeSpan()
	}

	return &ast.ProcCall{
		Span: p.spanFromTo(name.Span, endSpan),
		Name: name.Value,
		Args: args,
	}, true
}

// --- Expressions ---

// parseExpr parses a mandatory prefix-form expression: an operator token
// consumes exactly two operand expressions; anything else must be a
// literal, a variable reference, or a turtle query.
func (p *parser) parseExpr() (ast.Expr, bool) {
	tok := p.current()

	if isOperator(tok.Type) {
		p.advance()
		left, ok := p.parseExpr()
		if !ok {
			return nil, false
		}
		right, ok := p.parseExpr()
		if !ok {
			return nil, false
		}
		return &ast.BinaryExpr{
			Span:  p.spanFromTo(tok.Span, right.NodeSpan()),
			Op:    operatorOf(tok.Type),
			Left:  left,
			Right: right,
		}, true
	}

	if isQuery(tok.Type) {
		p.advance()
		return &ast.QueryExpr{Span: tok.Span, Query: queryOf(tok.Type)}, true
	}

	switch tok.Type {
	case lexer.TokNumber:
		p.advance()
		value, err := strconv.ParseFloat(tok.Value, 64)
		if err != nil {
			p.addError(fmt.Sprintf("invalid number literal '%s'", tok.Value), &tok.Span)
			return nil, false
		}
		return &ast.NumberLiteral{Span: tok.Span, Value: value}, true

	case lexer.TokWord:
		p.advance()
		return p.wordExpr(tok)

	case lexer.TokVar:
		p.advance()
		return &ast.VariableRef{Span: tok.Span, Name: tok.Value}, true

	case lexer.TokTrue, lexer.TokFalse:
		p.advance()
		return &ast.BooleanLiteral{Span: tok.Span, Value: tok.Type == lexer.TokTrue}, true
	}

	p.addError(fmt.Sprintf("expected an expression, got '%s'", tok.Value), &tok.Span)
	return nil, false
}

// wordExpr interprets a quoted word at expression position. Values are
// numbers and booleans only, so the word must spell one of those.
func (p *parser) wordExpr(tok lexer.Token) (ast.Expr, bool) {
	switch tok.Value {
	case "TRUE":
		return &ast.BooleanLiteral{Span: tok.Span, Value: true}, true
	case "FALSE":
		return &ast.BooleanLiteral{Span: tok.Span, Value: false}, true
	}
	value, err := strconv.ParseFloat(tok.Value, 64)
	if err != nil {
		p.addError(fmt.Sprintf(`word "%s is not a number or boolean`, tok.Value), &tok.Span)
		return nil, false
	}
	return &ast.NumberLiteral{Span: tok.Span, Value: value}, true
}
