package builtin

import (
	"math"

	"github.com/leofalp/opcalc/providers/operation"
)

func arithmetic() []*operation.Operation {
	return []*operation.Operation{
		operation.New("+", operation.AtLeast(1), add, operation.WithDescription("addition")),
		operation.New("-", operation.AtLeast(1), subtract, operation.WithDescription("subtraction")),
		operation.New("*", operation.AtLeast(1), multiply, operation.WithDescription("multiplication")),
		operation.New("/", operation.AtLeast(1), divide, operation.WithDescription("division")),
		operation.NewTyped("**", power, operation.WithDescription("power of")),
		operation.New("%", operation.AtLeast(1), modulo, operation.WithDescription("modulo")),
		operation.NewTyped("sq", squareRoot, operation.WithDescription("square root")),
		operation.NewTyped("!", factorialOf, operation.WithDescription("factorial")),
		operation.NewTyped("per", percentage, operation.WithDescription("percentage of")),
	}
}

func add(operands []float64) (float64, error) {
	total := 0.0
	for _, v := range operands {
		total += v
	}
	return total, nil
}

func subtract(operands []float64) (float64, error) {
	rest, _ := add(operands[1:])
	return operands[0] - rest, nil
}

func multiply(operands []float64) (float64, error) {
	product := 1.0
	for _, v := range operands {
		product *= v
	}
	return product, nil
}

func divide(operands []float64) (float64, error) {
	result := operands[0]
	for _, divisor := range operands[1:] {
		if divisor == 0 {
			return 0, operation.Domain("division by zero is not allowed")
		}
		result /= divisor
	}
	return result, nil
}

// modulo folds left with a floored remainder: the result takes the sign of
// the divisor, so -7 % 3 is 2.
func modulo(operands []float64) (float64, error) {
	result := operands[0]
	for _, modulus := range operands[1:] {
		if modulus == 0 {
			return 0, operation.Domain("modulo by zero is not allowed")
		}
		result = flooredMod(result, modulus)
	}
	return result, nil
}

func flooredMod(a, b float64) float64 {
	r := math.Mod(a, b)
	if r != 0 && (r < 0) != (b < 0) {
		r += b
	}
	return r
}

type powerInput struct {
	Base     float64 `operand:"base"`
	Exponent float64 `operand:"exponent"`
}

func power(in powerInput) (float64, error) {
	return math.Pow(in.Base, in.Exponent), nil
}

type unaryInput struct {
	X float64 `operand:"number"`
}

func squareRoot(in unaryInput) (float64, error) {
	if in.X < 0 {
		return 0, operation.Domain("square root of negative number %v", in.X)
	}
	return math.Sqrt(in.X), nil
}

func factorialOf(in unaryInput) (float64, error) {
	return factorial(in.X)
}

type percentageInput struct {
	Percent float64 `operand:"percent"`
	Value   float64 `operand:"value" help:"the amount the percentage is taken of"`
}

func percentage(in percentageInput) (float64, error) {
	return in.Percent * in.Value / 100, nil
}
