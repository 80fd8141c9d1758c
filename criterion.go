package keysort

import "reflect"

// Criterion is a single sort key for records of type T: either the name of a
// record field or an accessor function producing the value to sort by.
// Criteria are applied in order; the first criterion on which two records
// differ decides their relative order.
type Criterion[T any] struct {
	name string
	fn   func(T) any
}

// Key returns a Criterion that sorts records by the named field.
// For map records the name is looked up as a key; for struct records it is
// looked up as an exported field. A missing field yields nil, which is ordered
// by the null placement policy.
func Key[T any](name string) Criterion[T] {
	return Criterion[T]{name: name}
}

// By returns a Criterion that sorts records by the value fn extracts.
// fn must be pure; a panic raised by fn during a slice sort propagates to the
// caller unchanged.
func By[T any](fn func(T) any) Criterion[T] {
	return Criterion[T]{fn: fn}
}

// value resolves the criterion against a single record.
func (c Criterion[T]) value(rec T) any {
	if c.fn != nil {
		return c.fn(rec)
	}
	if m, ok := any(rec).(map[string]any); ok {
		// missing keys yield nil
		return m[c.name]
	}
	return fieldValue(reflect.ValueOf(rec), c.name)
}

// fieldValue looks up a named field on an arbitrary record value.
// Pointers and interfaces are followed, maps keyed by string kinds are indexed,
// and structs expose their exported fields. Anything else has no fields and
// resolves to nil.
func fieldValue(rv reflect.Value, name string) any {
	for rv.Kind() == reflect.Pointer || rv.Kind() == reflect.Interface {
		if rv.IsNil() {
			return nil
		}
		rv = rv.Elem()
	}
	switch rv.Kind() {
	case reflect.Map:
		kt := rv.Type().Key()
		if kt.Kind() != reflect.String {
			return nil
		}
		v := rv.MapIndex(reflect.ValueOf(name).Convert(kt))
		if !v.IsValid() {
			return nil
		}
		return v.Interface()
	case reflect.Struct:
		v := rv.FieldByName(name)
		if !v.IsValid() || !v.CanInterface() {
			return nil
		}
		return v.Interface()
	}
	return nil
}

// compareRecords applies the criteria in order, stopping at the first non-zero
// relation. Records equal on every criterion compare as equal.
func compareRecords[T any](a, b T, criteria []Criterion[T], nulls NullOrder) int {
	for _, c := range criteria {
		if rel := compareValues(c.value(a), c.value(b), nulls); rel != 0 {
			return rel
		}
	}
	return 0
}
