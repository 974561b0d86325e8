package attributes

import (
	"fmt"
	"strconv"

	"github.com/goliatone/go-ui/pkg/safehtml"
)

// Kind identifies the variant held by a Value.
type Kind uint8

const (
	// KindFlag renders the bare attribute name.
	KindFlag Kind = iota
	// KindText renders an attribute escaped string.
	KindText
	// KindNumber renders a number without further escaping.
	KindNumber
	// KindSafe renders trusted HTML.
	KindSafe
	// KindClasses renders the class token list.
	KindClasses
	// KindOther renders any other value through safehtml.Escape.
	KindOther
)

func (k Kind) String() string {
	switch k {
	case KindFlag:
		return "flag"
	case KindText:
		return "text"
	case KindNumber:
		return "number"
	case KindSafe:
		return "safe"
	case KindClasses:
		return "classes"
	case KindOther:
		return "other"
	default:
		return "unknown"
	}
}

// Value is a single attribute value.
type Value struct {
	kind    Kind
	text    string
	safe    safehtml.HTML
	classes *ClassList
	other   any
}

// Flag returns a value rendered as a bare attribute name.
func Flag() Value { return Value{kind: KindFlag} }

// Text returns a string value.
func Text(s string) Value { return Value{kind: KindText, text: s} }

// Int returns a numeric value.
func Int(n int64) Value { return Value{kind: KindNumber, text: strconv.FormatInt(n, 10)} }

// Float returns a numeric value using the shortest representation.
func Float(f float64) Value {
	return Value{kind: KindNumber, text: strconv.FormatFloat(f, 'f', -1, 64)}
}

// Safe returns a trusted HTML value.
func Safe(h safehtml.HTML) Value { return Value{kind: KindSafe, safe: h} }

// Classes returns a class list value. The list is copied.
func Classes(list ClassList) Value {
	cp := list.Clone()
	return Value{kind: KindClasses, classes: &cp}
}

// Other wraps a value that is rendered through safehtml.Escape.
func Other(v any) Value { return Value{kind: KindOther, other: v} }

// ValueOf converts a Go value into its attribute variant. nil and true become
// flags.
func ValueOf(v any) Value {
	switch x := v.(type) {
	case nil:
		return Flag()
	case Value:
		return x
	case bool:
		if x {
			return Flag()
		}
		return Other(x)
	case string:
		return Text(x)
	case int:
		return Int(int64(x))
	case int8:
		return Int(int64(x))
	case int16:
		return Int(int64(x))
	case int32:
		return Int(int64(x))
	case int64:
		return Int(x)
	case uint:
		return Value{kind: KindNumber, text: strconv.FormatUint(uint64(x), 10)}
	case uint8:
		return Int(int64(x))
	case uint16:
		return Int(int64(x))
	case uint32:
		return Int(int64(x))
	case uint64:
		return Value{kind: KindNumber, text: strconv.FormatUint(x, 10)}
	case float32:
		return Float(float64(x))
	case float64:
		return Float(x)
	case safehtml.HTML:
		return Safe(x)
	case ClassList:
		return Classes(x)
	case *ClassList:
		if x == nil {
			return Flag()
		}
		return Classes(*x)
	default:
		return Other(x)
	}
}

// Kind reports the variant.
func (v Value) Kind() Kind { return v.kind }

// IsFlag reports whether the value renders as a bare attribute.
func (v Value) IsFlag() bool { return v.kind == KindFlag }

// Interface returns the value in its natural Go form.
func (v Value) Interface() any {
	switch v.kind {
	case KindFlag:
		return nil
	case KindText, KindNumber:
		return v.text
	case KindSafe:
		return v.safe
	case KindClasses:
		return v.classes.Clone()
	default:
		return v.other
	}
}

// String formats the value for reading back through Set.Get. Flags format as
// the empty string and classes join with single spaces.
func (v Value) String() string {
	switch v.kind {
	case KindFlag:
		return ""
	case KindText, KindNumber:
		return v.text
	case KindSafe:
		return v.safe.String()
	case KindClasses:
		return v.classes.String()
	default:
		return stringify(v.other)
	}
}

// isEmpty reports whether a raw input counts as empty for SetOrRemove and
// SetIgnoreEmpty.
func isEmpty(v any) bool {
	switch x := v.(type) {
	case nil:
		return true
	case string:
		return x == ""
	default:
		return false
	}
}

func stringify(v any) string {
	switch x := v.(type) {
	case nil:
		return ""
	case string:
		return x
	case bool:
		if x {
			return "1"
		}
		return ""
	case fmt.Stringer:
		return x.String()
	default:
		return fmt.Sprint(x)
	}
}
