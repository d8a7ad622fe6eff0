package query

import (
	"cmp"
	"fmt"
	"reflect"
	"slices"
	"strings"

	"fortio.org/safecast"
	orderedmap "github.com/wk8/go-ordered-map/v2"
)

// Value is an argument as the engine sees it. The concrete types are Null, Bool,
// Int, Float, String, List, *Assoc and the skip marker returned by Skip.
type Value interface {
	isValue()
}

type (
	Null   struct{}
	Bool   bool
	Int    int64
	Float  float64
	String string
	List   []Value
)

type skipValue struct{}

// opaque holds a Go value with no rendering rule.
type opaque struct {
	v any
}

func (Null) isValue()      {}
func (Bool) isValue()      {}
func (Int) isValue()       {}
func (Float) isValue()     {}
func (String) isValue()    {}
func (List) isValue()      {}
func (*Assoc) isValue()    {}
func (skipValue) isValue() {}
func (opaque) isValue()    {}

// Skip returns the marker that suppresses the enclosing conditional block.
func Skip() Value {
	return skipValue{}
}

// IsSkip reports whether v is the skip marker.
func IsSkip(v Value) bool {
	_, ok := v.(skipValue)
	return ok
}

// Assoc is an ordered array with explicit keys. Keys are Int or String.
// Setting an existing key replaces its value and keeps its position.
type Assoc struct {
	m *orderedmap.OrderedMap[Value, Value]
}

func NewAssoc() *Assoc {
	return &Assoc{m: orderedmap.New[Value, Value]()}
}

// Set stores value under a string key.
func (a *Assoc) Set(key string, value any) *Assoc {
	return a.set(String(key), value)
}

// SetIndex stores value under an integer key.
func (a *Assoc) SetIndex(key int64, value any) *Assoc {
	return a.set(Int(key), value)
}

func (a *Assoc) set(key Value, value any) *Assoc {
	if a.m == nil {
		a.m = orderedmap.New[Value, Value]()
	}
	a.m.Set(key, ValueOf(value))
	return a
}

func (a *Assoc) Len() int {
	if a == nil || a.m == nil {
		return 0
	}
	return a.m.Len()
}

// IsList reports whether the keys are exactly 0..n-1 in insertion order.
func (a *Assoc) IsList() bool {
	var i Int
	for p := a.oldest(); p != nil; p = p.Next() {
		if k, ok := p.Key.(Int); !ok || k != i {
			return false
		}
		i++
	}
	return true
}

// Values returns the values in key order.
func (a *Assoc) Values() List {
	out := make(List, 0, a.Len())
	for p := a.oldest(); p != nil; p = p.Next() {
		out = append(out, p.Value)
	}
	return out
}

func (a *Assoc) each(fn func(key, value Value) error) error {
	for p := a.oldest(); p != nil; p = p.Next() {
		if err := fn(p.Key, p.Value); err != nil {
			return err
		}
	}
	return nil
}

func (a *Assoc) oldest() *orderedmap.Pair[Value, Value] {
	if a == nil || a.m == nil {
		return nil
	}
	return a.m.Oldest()
}

// ValueOf converts a Go value to a Value.
//
// Slices and arrays become List ([]byte is a String). Ordered maps keep their
// insertion order. Go maps with string or integer keys become an Assoc sorted by
// key. Pointers are dereferenced, nil ones become Null. Unsigned integers that do
// not fit in int64, and every type without a rule, are kept opaque and fail with
// ErrInvalidArgumentType once rendered.
func ValueOf(v any) Value {
	switch x := v.(type) {
	case nil:
		return Null{}
	case Value:
		return x
	case bool:
		return Bool(x)
	case int:
		return Int(x)
	case int8:
		return Int(x)
	case int16:
		return Int(x)
	case int32:
		return Int(x)
	case int64:
		return Int(x)
	case float32:
		return Float(x)
	case float64:
		return Float(x)
	case string:
		return String(x)
	case []byte:
		return String(x)
	case []any:
		out := make(List, len(x))
		for i, e := range x {
			out[i] = ValueOf(e)
		}
		return out
	case *orderedmap.OrderedMap[string, any]:
		if x == nil {
			return Null{}
		}
		a := NewAssoc()
		for p := x.Oldest(); p != nil; p = p.Next() {
			a.Set(p.Key, p.Value)
		}
		return a
	case *orderedmap.OrderedMap[int, any]:
		if x == nil {
			return Null{}
		}
		a := NewAssoc()
		for p := x.Oldest(); p != nil; p = p.Next() {
			a.SetIndex(int64(p.Key), p.Value)
		}
		return a
	}
	return reflectValue(reflect.ValueOf(v))
}

func reflectValue(rv reflect.Value) Value {
	switch rv.Kind() {
	case reflect.Bool:
		return Bool(rv.Bool())
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return Int(rv.Int())
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		n, err := safecast.Conv[int64](rv.Uint())
		if err != nil {
			return opaque{v: rv.Interface()}
		}
		return Int(n)
	case reflect.Float32, reflect.Float64:
		return Float(rv.Float())
	case reflect.String:
		return String(rv.String())
	case reflect.Pointer:
		if rv.IsNil() {
			return Null{}
		}
		return ValueOf(rv.Elem().Interface())
	case reflect.Slice, reflect.Array:
		if rv.Kind() == reflect.Slice && rv.Type().Elem().Kind() == reflect.Uint8 {
			return String(rv.Bytes())
		}
		out := make(List, rv.Len())
		for i := range out {
			out[i] = ValueOf(rv.Index(i).Interface())
		}
		return out
	case reflect.Map:
		return assocFromMap(rv)
	}
	return opaque{v: rv.Interface()}
}

func assocFromMap(rv reflect.Value) Value {
	keys := rv.MapKeys()
	a := NewAssoc()

	switch rv.Type().Key().Kind() {
	case reflect.String:
		slices.SortFunc(keys, func(x, y reflect.Value) int { return strings.Compare(x.String(), y.String()) })
		for _, k := range keys {
			a.Set(k.String(), rv.MapIndex(k).Interface())
		}
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		slices.SortFunc(keys, func(x, y reflect.Value) int { return cmp.Compare(x.Int(), y.Int()) })
		for _, k := range keys {
			a.SetIndex(k.Int(), rv.MapIndex(k).Interface())
		}
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		slices.SortFunc(keys, func(x, y reflect.Value) int { return cmp.Compare(x.Uint(), y.Uint()) })
		for _, k := range keys {
			n, err := safecast.Conv[int64](k.Uint())
			if err != nil {
				return opaque{v: rv.Interface()}
			}
			a.SetIndex(n, rv.MapIndex(k).Interface())
		}
	default:
		return opaque{v: rv.Interface()}
	}
	return a
}

func typeName(v Value) string {
	switch x := v.(type) {
	case Null:
		return "null"
	case Bool:
		return "bool"
	case Int:
		return "int"
	case Float:
		return "float"
	case String:
		return "string"
	case List:
		return "list"
	case *Assoc:
		return "assoc"
	case skipValue:
		return "skip"
	case opaque:
		return fmt.Sprintf("%T", x.v)
	}
	return fmt.Sprintf("%T", v)
}
