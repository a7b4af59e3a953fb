package builtin

import (
	"math"

	"github.com/leofalp/opcalc/providers/operation"
)

func algebra() []*operation.Operation {
	return []*operation.Operation{
		operation.NewTyped("mag", func(in vectorInput) (float64, error) {
			return math.Hypot(in.X, in.Y), nil
		}, operation.WithDescription("magnitude of a vector")),
		operation.NewTyped("dis", func(in quadraticInput) (float64, error) {
			return discriminant(in), nil
		}, operation.WithDescription("discriminant")),
		operation.NewTyped("quadP", func(in quadraticInput) (float64, error) {
			return quadraticRoot(in, 1)
		}, operation.WithDescription("quadratic formula, plus root")),
		operation.NewTyped("quadM", func(in quadraticInput) (float64, error) {
			return quadraticRoot(in, -1)
		}, operation.WithDescription("quadratic formula, minus root")),
	}
}

type vectorInput struct {
	X float64 `operand:"x"`
	Y float64 `operand:"y"`
}

// quadraticInput takes b before a: a*x^2 + b*x + c is entered as b, a, c.
type quadraticInput struct {
	B float64 `operand:"b" help:"linear coefficient"`
	A float64 `operand:"a" help:"quadratic coefficient"`
	C float64 `operand:"c" help:"constant term"`
}

func discriminant(in quadraticInput) float64 {
	return in.B*in.B - 4*in.A*in.C
}

func quadraticRoot(in quadraticInput, sign float64) (float64, error) {
	if in.A == 0 {
		return 0, operation.Domain("coefficient a must not be zero")
	}
	d := discriminant(in)
	if d < 0 {
		return 0, operation.Domain("negative discriminant %v has no real root", d)
	}
	return (-in.B + sign*math.Sqrt(d)) / (2 * in.A), nil
}

func logarithms() []*operation.Operation {
	return []*operation.Operation{
		operation.NewTyped("logDeB", func(in struct {
			X float64 `operand:"number"`
		}) (float64, error) {
			if in.X <= 0 {
				return 0, operation.Domain("logarithm of non-positive number %v", in.X)
			}
			return math.Log(in.X), nil
		}, operation.WithDescription("natural logarithm")),
		operation.NewTyped("logWB", logWithBase, operation.WithDescription("logarithm with a chosen base")),
	}
}

type logInput struct {
	X    float64 `operand:"number"`
	Base float64 `operand:"base"`
}

func logWithBase(in logInput) (float64, error) {
	if in.X <= 0 {
		return 0, operation.Domain("logarithm of non-positive number %v", in.X)
	}
	if in.Base <= 0 || in.Base == 1 {
		return 0, operation.Domain("invalid logarithm base %v", in.Base)
	}
	return math.Log(in.X) / math.Log(in.Base), nil
}
