package parse

import (
	"encoding/json"
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/kaptinlin/jsonrepair"
)

var (
	// ErrEmpty is returned when the input holds no operand at all.
	ErrEmpty = errors.New("opcalc: no operands")

	// ErrInvalidNumber is returned for tokens that are not finite numbers.
	ErrInvalidNumber = errors.New("opcalc: invalid number")
)

// Number parses a single finite number, ignoring surrounding spaces.
func Number(content string) (float64, error) {
	token := strings.TrimSpace(content)
	value, err := strconv.ParseFloat(token, 64)
	if err != nil || math.IsNaN(value) || math.IsInf(value, 0) {
		return 0, fmt.Errorf("%w: %q", ErrInvalidNumber, token)
	}
	return value, nil
}

// Operands parses a list of numbers.
//
//	parse.Operands("1 2 3")     // [1 2 3]
//	parse.Operands("1,2,3")     // [1 2 3]
//	parse.Operands("[1, 2, 3")  // [1 2 3], repaired
func Operands(content string) ([]float64, error) {
	content = strings.TrimSpace(content)
	if content == "" {
		return nil, ErrEmpty
	}
	if strings.HasPrefix(content, "[") {
		return bracketed(content)
	}

	fields := strings.FieldsFunc(content, func(r rune) bool {
		return r == ',' || r == ';' || r == ' ' || r == '\t'
	})
	if len(fields) == 0 {
		return nil, ErrEmpty
	}

	operands := make([]float64, 0, len(fields))
	for _, field := range fields {
		value, err := Number(field)
		if err != nil {
			return nil, err
		}
		operands = append(operands, value)
	}
	return operands, nil
}

// bracketed decodes a JSON list. Elements are decoded through pointers so
// that null, which json leaves as 0 in a []float64, is rejected.
func bracketed(content string) ([]float64, error) {
	var elements []*float64
	err := json.Unmarshal([]byte(content), &elements)
	if err != nil {
		repaired, repairErr := jsonrepair.JSONRepair(content)
		if repairErr != nil {
			return nil, fmt.Errorf("%w: %q: %v", ErrInvalidNumber, content, repairErr)
		}
		elements = nil
		if err = json.Unmarshal([]byte(repaired), &elements); err != nil {
			return nil, fmt.Errorf("%w: %q", ErrInvalidNumber, content)
		}
	}
	if len(elements) == 0 {
		return nil, ErrEmpty
	}

	operands := make([]float64, 0, len(elements))
	for i, element := range elements {
		if element == nil {
			return nil, fmt.Errorf("%w: element %d of %q is null", ErrInvalidNumber, i, content)
		}
		operands = append(operands, *element)
	}
	return operands, nil
}
