package builtin

import (
	"math"

	"github.com/leofalp/opcalc/providers/operation"
)

// maxFactorial is the largest n whose factorial fits in a float64.
const maxFactorial = 170

func factorial(n float64) (float64, error) {
	if n < 0 {
		return 0, operation.Domain("factorial of negative number %v", n)
	}
	if n != math.Trunc(n) {
		return 0, operation.Domain("factorial of non-integral number %v", n)
	}
	if n > maxFactorial {
		return 0, operation.Domain("factorial of %v overflows", n)
	}

	result := 1.0
	for i := 2.0; i <= n; i++ {
		result *= i
	}
	return result, nil
}

func combinatorics() []*operation.Operation {
	return []*operation.Operation{
		operation.NewTyped("nCr", choose, operation.WithDescription("n choose r")),
		operation.NewTyped("bD", binomial, operation.WithDescription("binomial distribution")),
		operation.NewTyped("pD", poisson, operation.WithDescription("poisson distribution")),
	}
}

type chooseInput struct {
	N float64 `operand:"n" help:"size of the set"`
	R float64 `operand:"r" help:"number of chosen elements"`
}

// choose uses the multiplicative form so that large n does not overflow
// through the intermediate factorials.
func choose(in chooseInput) (float64, error) {
	if in.N < 0 || in.R < 0 {
		return 0, operation.Domain("n and r must not be negative")
	}
	if in.N != math.Trunc(in.N) || in.R != math.Trunc(in.R) {
		return 0, operation.Domain("n and r must be integers")
	}
	if in.R > in.N {
		return 0, operation.Domain("r (%v) must not exceed n (%v)", in.R, in.N)
	}

	k := math.Min(in.R, in.N-in.R)
	result := 1.0
	for i := 1.0; i <= k; i++ {
		result = result * (in.N - k + i) / i
	}
	return math.Round(result), nil
}

// binomialInput keeps the historical operand order: the binomial
// coefficient is supplied precomputed rather than derived from N and X.
type binomialInput struct {
	Coefficient float64 `operand:"nCx" help:"precomputed n choose x"`
	P           float64 `operand:"p" help:"probability of success"`
	X           float64 `operand:"x" help:"number of successes"`
	N           float64 `operand:"n" help:"number of trials"`
}

func binomial(in binomialInput) (float64, error) {
	return in.Coefficient * math.Pow(in.P, in.X) * math.Pow(1-in.P, in.N-in.X), nil
}

type poissonInput struct {
	Lambda float64 `operand:"lambda" help:"expected number of events"`
	X      float64 `operand:"x" help:"number of events"`
}

func poisson(in poissonInput) (float64, error) {
	xFactorial, err := factorial(in.X)
	if err != nil {
		return 0, err
	}
	return math.Pow(in.Lambda, in.X) * math.Exp(-in.Lambda) / xFactorial, nil
}
