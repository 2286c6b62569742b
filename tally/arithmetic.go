package tally

import "errors"

var errDivisionByZero = errors.New("division by zero")

func addValues(left, right Value) (Value, error) {
	if left.Kind() == KindInt && right.Kind() == KindInt {
		return NewInt(left.Int() + right.Int()), nil
	}
	return NewFloat(left.Float() + right.Float()), nil
}

func subtractValues(left, right Value) (Value, error) {
	if left.Kind() == KindInt && right.Kind() == KindInt {
		return NewInt(left.Int() - right.Int()), nil
	}
	return NewFloat(left.Float() - right.Float()), nil
}

func multiplyValues(left, right Value) (Value, error) {
	if left.Kind() == KindInt && right.Kind() == KindInt {
		return NewInt(left.Int() * right.Int()), nil
	}
	return NewFloat(left.Float() * right.Float()), nil
}

// divideValues always produces a float, even when the division is exact.
func divideValues(left, right Value) (Value, error) {
	if right.Float() == 0 {
		return Value{}, errDivisionByZero
	}
	return NewFloat(left.Float() / right.Float()), nil
}
