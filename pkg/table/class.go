package table

import "fmt"

// ClassError reports a caller-supplied container class that does not satisfy
// the Class contract.
type ClassError struct {
	Value any
}

func (e *ClassError) Error() string {
	return fmt.Sprintf("table: 'cls' must be a table.Class constructor returning a table.Interface (table.NewArray or table.NewPlain), got %T", e.Value)
}

// ResolveClass validates a caller-supplied class value at the call boundary.
// A nil value selects the array-aware default. Anything that is not a Class
// (or a bare func() Interface) fails with a *ClassError.
func ResolveClass(cls any) (Class, error) {
	switch v := cls.(type) {
	case nil:
		return NewArray, nil
	case Class:
		if v == nil {
			return NewArray, nil
		}
		return v, nil
	case func() Interface:
		if v == nil {
			return NewArray, nil
		}
		return Class(v), nil
	default:
		return nil, &ClassError{Value: cls}
	}
}
