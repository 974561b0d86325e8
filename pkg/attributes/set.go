package attributes

import (
	"sort"

	"github.com/goliatone/go-ui/pkg/safehtml"
)

// ClassKey is the attribute backed by a ClassList.
const ClassKey = "class"

// IDKey is the attribute managed by ID and SetID.
const IDKey = "id"

// Attr is a key/value pair used for ordered bulk updates.
type Attr struct {
	Key   string
	Value any
}

// A is shorthand for building an Attr.
func A(key string, value any) Attr {
	return Attr{Key: key, Value: value}
}

// Set is an insertion ordered attribute mapping. The zero value is ready to
// use.
type Set struct {
	keys   []string
	values map[string]Value
}

// New returns a set populated with attrs in order.
func New(attrs ...Attr) *Set {
	s := &Set{}
	for _, attr := range attrs {
		s.Set(attr.Key, attr.Value)
	}
	return s
}

// Set stores value under key, replacing any previous value while keeping the
// key's original position.
func (s *Set) Set(key string, value any) *Set {
	if key == "" {
		return s
	}
	s.store(key, normalize(key, value))
	return s
}

// SetIgnoreEmpty behaves like Set but ignores nil and empty string values.
func (s *Set) SetIgnoreEmpty(key string, value any) *Set {
	if isEmpty(value) {
		return s
	}
	return s.Set(key, value)
}

// SetOrRemove removes key when value is nil or the empty string, otherwise it
// stores value.
func (s *Set) SetOrRemove(key string, value any) *Set {
	if isEmpty(value) {
		return s.Remove(key)
	}
	return s.Set(key, value)
}

// Remove deletes key. Missing keys are ignored.
func (s *Set) Remove(key string) *Set {
	if _, ok := s.values[key]; !ok {
		return s
	}
	delete(s.values, key)
	for i, k := range s.keys {
		if k == key {
			s.keys = append(s.keys[:i], s.keys[i+1:]...)
			break
		}
	}
	return s
}

// Get returns the stored value in string form, or def when key is absent.
func (s *Set) Get(key, def string) string {
	v, ok := s.values[key]
	if !ok {
		return def
	}
	return v.String()
}

// Value returns the typed value stored under key.
func (s *Set) Value(key string) (Value, bool) {
	v, ok := s.values[key]
	return v, ok
}

// Has reports whether key is present.
func (s *Set) Has(key string) bool {
	_, ok := s.values[key]
	return ok
}

// Len returns the number of attributes.
func (s *Set) Len() int { return len(s.keys) }

// Keys returns the attribute names in insertion order.
func (s *Set) Keys() []string {
	out := make([]string, len(s.keys))
	copy(out, s.keys)
	return out
}

// AddAttributes applies attrs in order through SetOrRemove. Existing keys are
// only touched when overwrite is set.
func (s *Set) AddAttributes(attrs []Attr, overwrite bool) *Set {
	for _, attr := range attrs {
		if overwrite || !s.Has(attr.Key) {
			s.SetOrRemove(attr.Key, attr.Value)
		}
	}
	return s
}

// AddMap is AddAttributes for a map. Keys are applied in sorted order so the
// resulting attribute order is deterministic.
func (s *Set) AddMap(attrs map[string]any, overwrite bool) *Set {
	keys := make([]string, 0, len(attrs))
	for key := range attrs {
		keys = append(keys, key)
	}
	sort.Strings(keys)

	ordered := make([]Attr, 0, len(keys))
	for _, key := range keys {
		ordered = append(ordered, Attr{Key: key, Value: attrs[key]})
	}
	return s.AddAttributes(ordered, overwrite)
}

// SetAttributes replaces every attribute with attrs.
func (s *Set) SetAttributes(attrs ...Attr) *Set {
	s.keys = nil
	s.values = nil
	for _, attr := range attrs {
		s.Set(attr.Key, attr.Value)
	}
	return s
}

// Attributes returns an ordered snapshot of the mapping.
func (s *Set) Attributes() []Attr {
	out := make([]Attr, 0, len(s.keys))
	for _, key := range s.keys {
		out = append(out, Attr{Key: key, Value: s.values[key].Interface()})
	}
	return out
}

// ID returns the id attribute, or the empty string.
func (s *Set) ID() string {
	return s.Get(IDKey, "")
}

// SetID sets the id attribute; the empty string removes it.
func (s *Set) SetID(id string) *Set {
	return s.SetOrRemove(IDKey, id)
}

// AddClass adds class tokens. Each argument may be a string, a []string or a
// ClassList.
func (s *Set) AddClass(tokens ...any) *Set {
	list := s.classList()
	list.Add(classTokens(tokens)...)
	s.store(ClassKey, Value{kind: KindClasses, classes: &list})
	return s
}

// RemoveClass removes class tokens. It accepts the same arguments as AddClass.
func (s *Set) RemoveClass(tokens ...any) *Set {
	if !s.Has(ClassKey) {
		return s
	}
	list := s.classList()
	list.Remove(classTokens(tokens)...)
	s.store(ClassKey, Value{kind: KindClasses, classes: &list})
	return s
}

// HasClass reports whether token is one of the element's classes.
func (s *Set) HasClass(token string) bool {
	v, ok := s.values[ClassKey]
	if !ok {
		return false
	}
	if v.kind == KindClasses {
		return v.classes.Has(token)
	}
	return ParseClassList(v.String()).Has(token)
}

// ToggleClass flips token. When explicit is given, true adds and false
// removes regardless of the current state.
func (s *Set) ToggleClass(token string, explicit ...bool) *Set {
	add := !s.HasClass(token)
	if len(explicit) > 0 {
		add = explicit[0]
	}
	if add {
		return s.AddClass(token)
	}
	return s.RemoveClass(token)
}

// Classes returns the class tokens in insertion order.
func (s *Set) Classes() []string {
	list := s.classList()
	return list.Tokens()
}

// Clone returns a deep copy.
func (s *Set) Clone() *Set {
	out := &Set{}
	for _, key := range s.keys {
		v := s.values[key]
		if v.kind == KindClasses {
			v = Classes(*v.classes)
		}
		out.store(key, v)
	}
	return out
}

// String serializes the attributes as they appear inside an opening tag,
// each one prefixed by a space.
func (s *Set) String() string {
	return string(s.AppendTo(nil))
}

// AppendTo appends the serialized attributes to buf.
//
// Flags render as ` key`, text is attribute escaped, numbers are written
// as-is, and every other variant goes through safehtml.Escape.
func (s *Set) AppendTo(buf []byte) []byte {
	for _, key := range s.keys {
		v := s.values[key]
		buf = append(buf, ' ')
		buf = append(buf, key...)
		switch v.kind {
		case KindFlag:
			continue
		case KindText:
			buf = appendQuoted(buf, safehtml.EscapeAttribute(v.text))
		case KindNumber:
			buf = appendQuoted(buf, v.text)
		case KindClasses:
			buf = appendQuoted(buf, safehtml.EscapeAttribute(v.classes.String()))
		case KindSafe:
			buf = appendQuoted(buf, v.safe.String())
		default:
			buf = appendQuoted(buf, safehtml.Escape(v.other).String())
		}
	}
	return buf
}

func appendQuoted(buf []byte, s string) []byte {
	buf = append(buf, '=', '"')
	buf = append(buf, s...)
	return append(buf, '"')
}

func (s *Set) store(key string, v Value) {
	if s.values == nil {
		s.values = make(map[string]Value)
	}
	if _, exists := s.values[key]; !exists {
		s.keys = append(s.keys, key)
	}
	s.values[key] = v
}

// classList returns a copy of the current classes, parsing non list values.
func (s *Set) classList() ClassList {
	v, ok := s.values[ClassKey]
	if !ok {
		return ClassList{}
	}
	if v.kind == KindClasses {
		return v.classes.Clone()
	}
	return ParseClassList(v.String())
}

func normalize(key string, value any) Value {
	if key != ClassKey {
		return ValueOf(value)
	}
	switch v := value.(type) {
	case string:
		list := ParseClassList(v)
		return Value{kind: KindClasses, classes: &list}
	case []string:
		list := NewClassList(v...)
		return Value{kind: KindClasses, classes: &list}
	default:
		return ValueOf(value)
	}
}
