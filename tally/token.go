package tally

// TokenType identifies the lexical category of a token.
type TokenType string

const (
	tokenIllegal TokenType = "ILLEGAL"
	tokenEOF     TokenType = "EOF"

	tokenInt TokenType = "INT"

	tokenPlus     TokenType = "+"
	tokenMinus    TokenType = "-"
	tokenAsterisk TokenType = "*"
	tokenSlash    TokenType = "/"
)

// Token captures lexical information for the evaluator.
type Token struct {
	Type    TokenType
	Literal string
	Pos     Position
}

// Position identifies a location in the source line.
type Position struct {
	Line   int
	Column int
}

func (tt TokenType) isOperator() bool {
	switch tt {
	case tokenPlus, tokenMinus, tokenAsterisk, tokenSlash:
		return true
	}
	return false
}
