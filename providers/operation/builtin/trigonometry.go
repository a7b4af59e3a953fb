package builtin

import (
	"math"

	"github.com/leofalp/opcalc/providers/operation"
)

type angleInput struct {
	Radians float64 `operand:"angle" help:"in radians"`
}

type ratioInput struct {
	X float64 `operand:"number"`
}

func trigonometry() []*operation.Operation {
	return []*operation.Operation{
		operation.NewTyped("sin", func(in angleInput) (float64, error) {
			return math.Sin(in.Radians), nil
		}, operation.WithDescription("sine (in radians)")),
		operation.NewTyped("cos", func(in angleInput) (float64, error) {
			return math.Cos(in.Radians), nil
		}, operation.WithDescription("cosine (in radians)")),
		operation.NewTyped("tan", func(in angleInput) (float64, error) {
			return math.Tan(in.Radians), nil
		}, operation.WithDescription("tangent (in radians)")),
		operation.NewTyped("sinM", arcsine, operation.WithDescription("inverse sine (result in radians)")),
		operation.NewTyped("cosM", arccosine, operation.WithDescription("inverse cosine (result in radians)")),
		operation.NewTyped("tanM", func(in ratioInput) (float64, error) {
			return math.Atan(in.X), nil
		}, operation.WithDescription("inverse tangent (result in radians)")),
	}
}

func arcsine(in ratioInput) (float64, error) {
	if in.X < -1 || in.X > 1 {
		return 0, operation.Domain("arcsine is only defined on [-1, 1], got %v", in.X)
	}
	return math.Asin(in.X), nil
}

func arccosine(in ratioInput) (float64, error) {
	if in.X < -1 || in.X > 1 {
		return 0, operation.Domain("arccosine is only defined on [-1, 1], got %v", in.X)
	}
	return math.Acos(in.X), nil
}

type degreesInput struct {
	Degrees float64 `operand:"degrees"`
}

func angles() []*operation.Operation {
	return []*operation.Operation{
		operation.NewTyped("deg-rad", func(in degreesInput) (float64, error) {
			return in.Degrees * (math.Pi / 180), nil
		}, operation.WithDescription("degrees to radians")),
		operation.NewTyped("rad-deg", func(in angleInput) (float64, error) {
			return in.Radians / (math.Pi / 180), nil
		}, operation.WithDescription("radians to degrees")),
	}
}
