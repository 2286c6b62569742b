package tally

import (
	"errors"
	"fmt"
	"strconv"
)

// Evaluate lexes and folds one line of input into a single numeric
// result. Every call builds fresh lexer and evaluator state, so repeated
// or concurrent evaluations never interact.
func Evaluate(input string) (Value, error) {
	e := &evaluator{l: newLexer(input)}
	return e.run()
}

type evaluator struct {
	l   *lexer
	cur Token
}

func (e *evaluator) next() {
	e.cur = e.l.NextToken()
}

// run folds the token stream left to right: seed the accumulator from
// the first operand, then consume (operator, operand) pairs until EOF.
func (e *evaluator) run() (Value, error) {
	e.next()
	acc, err := e.operand()
	if err != nil {
		return Value{}, err
	}

	for {
		e.next()
		if e.cur.Type == tokenEOF {
			return acc, nil
		}
		op, err := e.operator()
		if err != nil {
			return Value{}, err
		}

		e.next()
		right, err := e.operand()
		if err != nil {
			return Value{}, err
		}

		acc, err = e.apply(op, acc, right)
		if err != nil {
			return Value{}, err
		}
	}
}

// operand requires the current token to be an integer literal and
// converts it.
func (e *evaluator) operand() (Value, error) {
	tok := e.cur
	switch tok.Type {
	case tokenInt:
		n, err := strconv.ParseInt(tok.Literal, 10, 64)
		if err != nil {
			return Value{}, &LexError{
				pos:    tok.Pos,
				lexeme: tok.Literal,
				msg:    fmt.Sprintf("integer literal %s overflows int64", tok.Literal),
				source: e.l.input,
			}
		}
		return NewInt(n), nil
	case tokenIllegal:
		return Value{}, e.lexError(tok)
	default:
		return Value{}, &SyntaxError{pos: tok.Pos, expected: "operand", got: tok.Type, source: e.l.input}
	}
}

// operator requires the current token to be one of the four operators.
func (e *evaluator) operator() (Token, error) {
	tok := e.cur
	if tok.Type.isOperator() {
		return tok, nil
	}
	if tok.Type == tokenIllegal {
		return Token{}, e.lexError(tok)
	}
	return Token{}, &SyntaxError{pos: tok.Pos, expected: "operator", got: tok.Type, source: e.l.input}
}

func (e *evaluator) apply(op Token, left, right Value) (Value, error) {
	var (
		result Value
		err    error
	)
	switch op.Type {
	case tokenPlus:
		result, err = addValues(left, right)
	case tokenMinus:
		result, err = subtractValues(left, right)
	case tokenAsterisk:
		result, err = multiplyValues(left, right)
	case tokenSlash:
		result, err = divideValues(left, right)
	default:
		return Value{}, &SyntaxError{pos: op.Pos, expected: "operator", got: op.Type, source: e.l.input}
	}
	if err != nil {
		if errors.Is(err, errDivisionByZero) {
			return Value{}, &DivisionByZeroError{pos: e.cur.Pos, source: e.l.input}
		}
		return Value{}, err
	}
	return result, nil
}

func (e *evaluator) lexError(tok Token) error {
	return &LexError{
		pos:    tok.Pos,
		lexeme: tok.Literal,
		msg:    fmt.Sprintf("invalid character %q", tok.Literal),
		source: e.l.input,
	}
}
