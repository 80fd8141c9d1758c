package keysort

import (
	"cmp"
	"fmt"
	"math"
	"reflect"
	"time"
)

// NullOrder controls where nil values are placed in the sorted output.
type NullOrder int

const (
	// NullsLast places nil values after all non-nil values. This is the default.
	NullsLast NullOrder = iota
	// NullsFirst places nil values before all non-nil values.
	NullsFirst
)

// class partitions values into comparison classes. Values in the same class
// compare directly; values in different classes fall back to string comparison,
// except nil which is ordered by the NullOrder policy.
type class int

const (
	classBool class = iota
	classNumber
	classString
	classOther
	classNull
)

// numKind records which numeric representation an ordValue carries, so signed,
// unsigned, and float values keep their full precision until compared.
type numKind int

const (
	numInt numKind = iota
	numUint
	numFloat
)

// ordValue is a value normalized for comparison: its class plus the
// class-specific key and the dereferenced original for the string fallback.
type ordValue struct {
	cls class
	nk  numKind
	i   int64   // numInt and classBool
	u   uint64  // numUint
	f   float64 // numFloat
	str string  // classString
	raw any     // dereferenced original value, used by the string fallback
}

var timeType = reflect.TypeOf(time.Time{})

func intVal(i int64, raw any) ordValue {
	return ordValue{cls: classNumber, nk: numInt, i: i, raw: raw}
}

func uintVal(u uint64, raw any) ordValue {
	return ordValue{cls: classNumber, nk: numUint, u: u, raw: raw}
}

func floatVal(f float64, raw any) ordValue {
	return ordValue{cls: classNumber, nk: numFloat, f: f, raw: raw}
}

// classify normalizes an arbitrary value into an ordValue.
// Non-nil pointers are dereferenced first; nil pointers and interfaces
// classify as null. time.Time joins the numeric class via its epoch value.
func classify(v any) ordValue {
	switch x := v.(type) {
	case nil:
		return ordValue{cls: classNull}
	case bool:
		return ordValue{cls: classBool, i: boolInt(x), raw: v}
	case int:
		return intVal(int64(x), v)
	case int8:
		return intVal(int64(x), v)
	case int16:
		return intVal(int64(x), v)
	case int32:
		return intVal(int64(x), v)
	case int64:
		return intVal(x, v)
	case uint:
		return uintVal(uint64(x), v)
	case uint8:
		return uintVal(uint64(x), v)
	case uint16:
		return uintVal(uint64(x), v)
	case uint32:
		return uintVal(uint64(x), v)
	case uint64:
		return uintVal(x, v)
	case uintptr:
		return uintVal(uint64(x), v)
	case float32:
		return floatVal(float64(x), v)
	case float64:
		return floatVal(x, v)
	case string:
		return ordValue{cls: classString, str: x, raw: v}
	case time.Time:
		return intVal(x.UnixMilli(), v)
	}

	// named types, pointers, and everything else go through reflection
	rv := reflect.ValueOf(v)
	for rv.Kind() == reflect.Pointer || rv.Kind() == reflect.Interface {
		if rv.IsNil() {
			return ordValue{cls: classNull}
		}
		rv = rv.Elem()
	}
	if rv.Type() == timeType {
		t := rv.Interface().(time.Time)
		return intVal(t.UnixMilli(), t)
	}
	switch rv.Kind() {
	case reflect.Bool:
		return ordValue{cls: classBool, i: boolInt(rv.Bool()), raw: rv.Interface()}
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return intVal(rv.Int(), rv.Interface())
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		return uintVal(rv.Uint(), rv.Interface())
	case reflect.Float32, reflect.Float64:
		return floatVal(rv.Float(), rv.Interface())
	case reflect.String:
		return ordValue{cls: classString, str: rv.String(), raw: rv.Interface()}
	}
	return ordValue{cls: classOther, raw: v}
}

func boolInt(b bool) int64 {
	if b {
		return 1
	}
	return 0
}

// Compare compares two arbitrary values for ascending order and returns
// -1, 0, or 1. It defines a total preorder: every pair of inputs yields a
// result and Compare never panics.
//
// Ordering rules:
//   - nil (including nil pointers and interfaces) sorts after everything else;
//     two nils are equal.
//   - numbers of any kind and time.Time compare numerically, times by their
//     Unix epoch milliseconds. Integer kinds compare exactly, without loss
//     of precision; NaN sorts before all other numbers.
//   - strings compare byte-wise, which is code-point order for UTF-8.
//   - booleans order false before true.
//   - non-nil pointers compare by the value they point to.
//   - any other pairing falls back to comparing fmt.Sprint of both sides.
func Compare(a, b any) int {
	return compareValues(a, b, NullsLast)
}

// compareValues is Compare with an explicit null placement policy.
func compareValues(a, b any, nulls NullOrder) int {
	va, vb := classify(a), classify(b)
	if va.cls == classNull || vb.cls == classNull {
		if va.cls == vb.cls {
			return 0
		}
		rel := 1
		if vb.cls == classNull {
			rel = -1
		}
		if nulls == NullsFirst {
			rel = -rel
		}
		return rel
	}
	if va.cls != vb.cls {
		return cmp.Compare(fmt.Sprint(va.raw), fmt.Sprint(vb.raw))
	}
	switch va.cls {
	case classNumber:
		return compareNumeric(va, vb)
	case classBool:
		return cmp.Compare(va.i, vb.i)
	case classString:
		return cmp.Compare(va.str, vb.str)
	}
	return cmp.Compare(fmt.Sprint(va.raw), fmt.Sprint(vb.raw))
}

// compareNumeric compares two numeric ordValues exactly. Same-kind values
// compare directly; int/uint pairs compare through sign and magnitude; a float
// on one side is compared against the integer side's exact value rather than
// converting the integer to float64, which would lose precision above 2^53.
func compareNumeric(a, b ordValue) int {
	switch {
	case a.nk == numInt && b.nk == numInt:
		return cmp.Compare(a.i, b.i)
	case a.nk == numUint && b.nk == numUint:
		return cmp.Compare(a.u, b.u)
	case a.nk == numInt && b.nk == numUint:
		return compareIntUint(a.i, b.u)
	case a.nk == numUint && b.nk == numInt:
		return -compareIntUint(b.i, a.u)
	case a.nk == numFloat && b.nk == numFloat:
		return cmp.Compare(a.f, b.f)
	case a.nk == numInt:
		return compareIntFloat(a.i, b.f)
	case a.nk == numUint:
		return compareUintFloat(a.u, b.f)
	case b.nk == numInt:
		return -compareIntFloat(b.i, a.f)
	default:
		return -compareUintFloat(b.u, a.f)
	}
}

func compareIntUint(i int64, u uint64) int {
	if i < 0 {
		return -1
	}
	return cmp.Compare(uint64(i), u)
}

func compareIntFloat(i int64, f float64) int {
	if math.IsNaN(f) {
		return 1 // NaN sorts before all numbers, matching cmp.Compare
	}
	// 2^63 and -2^63 are exactly representable as float64
	if f >= 1<<63 {
		return -1
	}
	if f < -(1 << 63) {
		return 1
	}
	t := math.Trunc(f)
	if rel := cmp.Compare(i, int64(t)); rel != 0 {
		return rel
	}
	return cmp.Compare(t, f) // equal integer parts, the fraction decides
}

func compareUintFloat(u uint64, f float64) int {
	if math.IsNaN(f) {
		return 1
	}
	if f < 0 {
		return 1
	}
	if f >= 1<<64 {
		return -1
	}
	t := math.Trunc(f)
	if rel := cmp.Compare(u, uint64(t)); rel != 0 {
		return rel
	}
	return cmp.Compare(t, f)
}
