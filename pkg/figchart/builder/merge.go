package builder

import (
	"fmt"
	"reflect"

	"dario.cat/mergo"
	"github.com/tiendc/go-deepcopy"
)

// merge returns a fresh copy of base with every non-empty field of override
// applied on top. Nested structs merge field by field; optional scalars
// (*bool, *float64, *int) set in override replace the base value whole, so an
// explicit false or zero wins.
func merge[T any](base, override T) (T, error) {
	var out, over T
	if err := deepcopy.Copy(&out, &base); err != nil {
		return out, fmt.Errorf("copy base style: %w", err)
	}
	if err := deepcopy.Copy(&over, &override); err != nil {
		return out, fmt.Errorf("copy override: %w", err)
	}
	if err := mergo.Merge(&out, over, mergo.WithOverride, mergo.WithTransformers(scalarPointers{})); err != nil {
		return out, fmt.Errorf("merge style: %w", err)
	}
	return out, nil
}

var (
	boolPtrType  = reflect.TypeOf((*bool)(nil))
	floatPtrType = reflect.TypeOf((*float64)(nil))
	intPtrType   = reflect.TypeOf((*int)(nil))
)

// scalarPointers stops mergo from merging through optional scalars, where a
// dereferenced false or zero would count as empty and be skipped.
type scalarPointers struct{}

func (scalarPointers) Transformer(t reflect.Type) func(dst, src reflect.Value) error {
	switch t {
	case boolPtrType, floatPtrType, intPtrType:
		return func(dst, src reflect.Value) error {
			if !src.IsNil() && dst.CanSet() {
				dst.Set(src)
			}
			return nil
		}
	}
	return nil
}
