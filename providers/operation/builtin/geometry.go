package builtin

import (
	"math"

	"github.com/leofalp/opcalc/providers/operation"
)

func circle() []*operation.Operation {
	return []*operation.Operation{
		operation.NewTyped("rad", func(in struct {
			Circumference float64 `operand:"circumference"`
		}) (float64, error) {
			return in.Circumference / (2 * math.Pi), nil
		}, operation.WithDescription("radius from circumference")),
		operation.NewTyped("dia", func(in struct {
			Diameter float64 `operand:"diameter"`
		}) (float64, error) {
			return in.Diameter / 2, nil
		}, operation.WithDescription("radius from diameter")),
		operation.NewTyped("cir", func(in radiusInput) (float64, error) {
			return 2 * math.Pi * in.Radius, nil
		}, operation.WithDescription("circumference")),
	}
}

type radiusInput struct {
	Radius float64 `operand:"radius"`
}

type roundSolidInput struct {
	Radius float64 `operand:"radius"`
	Height float64 `operand:"height"`
}

type cuboidInput struct {
	Length float64 `operand:"length"`
	Width  float64 `operand:"width"`
	Height float64 `operand:"height"`
}

func volumes() []*operation.Operation {
	return []*operation.Operation{
		operation.NewTyped("volCo", func(in roundSolidInput) (float64, error) {
			return (1.0 / 3.0) * math.Pi * in.Radius * in.Radius * in.Height, nil
		}, operation.WithDescription("volume of a cone")),
		operation.NewTyped("volCu", func(in cuboidInput) (float64, error) {
			return in.Length * in.Width * in.Height, nil
		}, operation.WithDescription("volume of a cuboid")),
		operation.NewTyped("volS", func(in radiusInput) (float64, error) {
			return (4.0 / 3.0) * math.Pi * math.Pow(in.Radius, 3), nil
		}, operation.WithDescription("volume of a sphere")),
		operation.NewTyped("volCy", func(in roundSolidInput) (float64, error) {
			return math.Pi * in.Radius * in.Radius * in.Height, nil
		}, operation.WithDescription("volume of a cylinder")),
	}
}
