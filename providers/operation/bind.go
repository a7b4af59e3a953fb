package operation

import (
	"fmt"
	"reflect"
	"strings"
)

// binder maps a positional operand list onto the float64 fields of I.
type binder[I any] struct {
	fields   []int
	operands []Operand
}

func newBinder[I any]() *binder[I] {
	t := reflect.TypeOf((*I)(nil)).Elem()
	if t.Kind() != reflect.Struct {
		panic(fmt.Sprintf("operation: input type %s must be a struct", t))
	}

	b := &binder[I]{}
	for i := 0; i < t.NumField(); i++ {
		field := t.Field(i)
		if !field.IsExported() {
			continue
		}
		name := field.Tag.Get("operand")
		if name == "-" {
			continue
		}
		if field.Type.Kind() != reflect.Float64 {
			panic(fmt.Sprintf("operation: field %s.%s must be float64, got %s", t, field.Name, field.Type))
		}
		if name == "" {
			name = strings.ToLower(field.Name)
		}

		b.fields = append(b.fields, i)
		b.operands = append(b.operands, Operand{
			Name:        name,
			Description: field.Tag.Get("help"),
		})
	}
	return b
}

// bind copies operands into a fresh I. The caller guarantees the length.
func (b *binder[I]) bind(operands []float64) I {
	var input I
	v := reflect.ValueOf(&input).Elem()
	for i, index := range b.fields {
		v.Field(index).SetFloat(operands[i])
	}
	return input
}
